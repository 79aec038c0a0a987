package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

const completeApplication = "I want to apply for leave. Name: John, Emp ID: 123, " +
	"Manager: Alice, Days: 2, Date: 2025-07-25, Reason: Family event"

func TestLeaveApplicationConfirmation(t *testing.T) {
	retriever := &fakeRetriever{}
	responder := &fakeResponder{}
	tool := NewLeaveTool(retriever, responder, 3, nil)

	got := tool.Run(context.Background(), completeApplication)

	assert.Contains(t, got, "Leave application received for John (ID: 123)")
	assert.Contains(t, got, "Duration: 2 days")
	assert.Contains(t, got, "Dates: 2025-07-25")
	assert.Contains(t, got, "Reason: Family event")
	assert.Contains(t, got, "Reporting to: Alice")
	assert.Contains(t, got, "submitted for approval")
	assert.Zero(t, retriever.calls, "applications must not hit the index")
	assert.Zero(t, responder.calls, "applications must not hit the provider")
}

func TestLeaveApplicationMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		missing string
	}{
		{
			"no manager",
			"I want to apply for leave. Name: John, Emp ID: 123, Days: 2, Date: 2025-07-25, Reason: Family event",
			"Please provide: manager.",
		},
		{
			"no reason",
			"I want to apply for leave. Name: John, Emp ID: 123, Manager: Alice, Days: 2, Date: 2025-07-25",
			"Please provide: reason.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responder := &fakeResponder{}
			tool := NewLeaveTool(&fakeRetriever{}, responder, 3, nil)

			got := tool.Run(context.Background(), tt.query)

			assert.Contains(t, got, "I need more information to process your leave application.")
			assert.Contains(t, got, tt.missing)
			assert.Contains(t, got, leaveExampleFormat)
			assert.Zero(t, responder.calls)
		})
	}
}

func TestIsLeaveApplication(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"full application", completeApplication, true},
		{"apply without fields", "how do I apply for leave", false},
		{"policy question", "what is the annual leave policy", false},
		{"application with manager only", "leave application, manager is Alice", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLeaveApplication(tt.query))
		})
	}
}

func TestExtractField(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		keywords []string
		want     string
	}{
		{"simple value", "Name: John, Emp ID: 123", []string{"name", "employee"}, "John"},
		{"last field runs to end", "Days: 2, Reason: Family event", []string{"reason", "because"}, "Family event"},
		{"synonym match", "reporting to: Alice, Days: 2", []string{"manager", "reporting to"}, "Alice"},
		{"case preserved", "Name: McArthur, Days: 1", []string{"name"}, "McArthur"},
		{"comma truncates value", "Reason: sick, again, Days: 1", []string{"reason"}, "sick"},
		{"absent keyword", "Days: 2", []string{"manager", "reporting to"}, ""},
		{"keyword with no value", "Name: , Days: 2", []string{"name"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractField(tt.query, tt.keywords))
		})
	}
}

package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeGenerator records prompts and counts calls.
type fakeGenerator struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGreetingShortCircuit(t *testing.T) {
	gen := &fakeGenerator{response: "should not be used"}
	a := NewAdapter(gen, time.Second, nil)

	got := a.GenerateAnswer(context.Background(), "", "hi", "General HR Inquiry")

	assert.Equal(t, greetingResponse, got)
	assert.Zero(t, gen.calls, "greetings must not reach the provider")
}

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"hello", true},
		{"Hey there", true},
		{"who are you?", true},
		{"please introduce yourself", true},
		{"tell me about leave policy", false},
		{"reimbursement process", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGreeting(tt.query))
		})
	}
}

func TestGenerateAnswerPassesPromptThrough(t *testing.T) {
	gen := &fakeGenerator{response: "Detected Use Case: Leave Policy\nYou get 20 days."}
	a := NewAdapter(gen, time.Second, nil)

	got := a.GenerateAnswer(context.Background(),
		"Employees receive 20 days of annual leave.", "leave quota", "Leave Policy")

	assert.Equal(t, "Detected Use Case: Leave Policy\nYou get 20 days.", got)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.lastPrompt, "USE CASE: Leave Policy")
	assert.Contains(t, gen.lastPrompt, `USER QUESTION: "leave quota"`)
	assert.Contains(t, gen.lastPrompt, "Employees receive 20 days of annual leave.")
}

func TestGenerateAnswerFallbackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream 503")}
	a := NewAdapter(gen, time.Second, nil)

	got := a.GenerateAnswer(context.Background(), "some context", "leave quota", "Leave Policy")

	assert.Contains(t, got, "I apologize, but I encountered a technical difficulty")
	assert.Contains(t, got, "Detected Use Case: Leave Policy")
	assert.Contains(t, got, "Question: leave quota")
}

func TestBuildPromptEmptyContextPlaceholder(t *testing.T) {
	tests := []struct {
		name    string
		context string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildPrompt(tt.context, "leave quota", "Leave Policy")
			assert.Contains(t, prompt, "No relevant documents found")
		})
	}
}

func TestAdapterAppliesTimeoutWhenMissing(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	a := NewAdapter(gen, time.Second, nil)

	var sawDeadline bool
	probe := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		_, sawDeadline = ctx.Deadline()
		return gen.Complete(ctx, prompt)
	})
	a.generator = probe

	a.GenerateAnswer(context.Background(), "ctx", "leave quota", "Leave Policy")
	assert.True(t, sawDeadline, "adapter must bound provider calls with a deadline")
}

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

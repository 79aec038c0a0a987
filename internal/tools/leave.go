package tools

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// LeaveTool answers leave-policy questions and additionally recognizes
// structured leave-application submissions.
type LeaveTool struct {
	base
}

func NewLeaveTool(retriever domain.Retriever, responder Responder, topK int, logger *zap.Logger) *LeaveTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveTool{base: base{
		name:    "leave_policy",
		useCase: "Leave Policy",
		keywords: []string{
			"leave", "vacation", "sick", "holiday", "time off",
			"annual leave", "casual leave", "maternity", "paternity",
			"leave policy", "leave balance", "leave quota",
		},
		retriever: retriever,
		responder: responder,
		topK:      topK,
		logger:    logger,
	}}
}

func (t *LeaveTool) Run(ctx context.Context, query string) string {
	if !t.Relevant(query) {
		return refusalMessage
	}
	if isLeaveApplication(query) {
		return processLeaveApplication(query)
	}

	lower := strings.ToLower(query)
	prefix := "Here's information about our leave policies:\n\n"
	if strings.Contains(lower, "sick") {
		prefix = "Regarding sick leave policies:\n\n"
	} else if strings.Contains(lower, "annual") || strings.Contains(lower, "vacation") {
		prefix = "Regarding annual/vacation leave:\n\n"
	}
	return t.answer(ctx, query, prefix)
}

// leaveField pairs a reported field label with the synonym keywords that
// anchor its extraction.
type leaveField struct {
	label    string
	keywords []string
}

var leaveFields = []leaveField{
	{"name", []string{"name", "employee"}},
	{"emp id", []string{"emp id", "employee id"}},
	{"manager", []string{"manager", "reporting to"}},
	{"days", []string{"days", "duration"}},
	{"date", []string{"date", "on"}},
	{"reason", []string{"reason", "because"}},
}

const leaveExampleFormat = "Example format: 'I want to apply for leave. Name: John, Emp ID: 123, " +
	"Manager: Alice, Days: 2, Date: 2025-07-25, Reason: Family event'"

// isLeaveApplication detects a submission attempt: an apply/application verb
// together with at least one identifying field.
func isLeaveApplication(query string) bool {
	lower := strings.ToLower(query)
	if !strings.Contains(lower, "apply") && !strings.Contains(lower, "application") {
		return false
	}
	for _, marker := range []string{"name", "emp id", "employee id", "manager"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// processLeaveApplication extracts the six required fields and either asks
// for the missing ones or confirms receipt. Neither path calls the
// generation provider.
func processLeaveApplication(query string) string {
	values := make(map[string]string, len(leaveFields))
	var missing []string
	for _, f := range leaveFields {
		v := extractField(query, f.keywords)
		values[f.label] = v
		if v == "" {
			missing = append(missing, f.label)
		}
	}

	if len(missing) > 0 {
		return fmt.Sprintf("I need more information to process your leave application. "+
			"Please provide: %s.\n\n%s", strings.Join(missing, ", "), leaveExampleFormat)
	}

	return fmt.Sprintf("Leave application received for %s (ID: %s):\n"+
		"- Duration: %s days\n"+
		"- Dates: %s\n"+
		"- Reason: %s\n"+
		"- Reporting to: %s\n\n"+
		"Your leave application has been submitted for approval. "+
		"You'll receive a confirmation email shortly.",
		values["name"], values["emp id"], values["days"], values["date"],
		values["reason"], values["manager"])
}

// extractField finds the first synonym keyword in the lower-cased query and
// slices the original query from just after it up to the next comma (or end
// of string), trimming surrounding whitespace and punctuation. No format
// validation beyond non-emptiness: a comma inside a free-text value
// truncates it.
func extractField(query string, keywords []string) string {
	lower := strings.ToLower(query)
	for _, kw := range keywords {
		idx := strings.Index(lower, kw)
		if idx < 0 {
			continue
		}
		start := idx + len(kw)
		end := len(query)
		if comma := strings.Index(lower[start:], ","); comma >= 0 {
			end = start + comma
		}
		return strings.Trim(query[start:end], " :;,")
	}
	return ""
}

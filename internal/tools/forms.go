package tools

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// FormsTool answers HR form and procedure queries.
type FormsTool struct {
	base
}

func NewFormsTool(retriever domain.Retriever, responder Responder, topK int, logger *zap.Logger) *FormsTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormsTool{base: base{
		name:    "hr_forms",
		useCase: "HR Forms",
		keywords: []string{
			"form", "procedure", "process", "application",
			"request", "template", "document", "paperwork",
			"how to apply", "where to find", "submit", "download",
		},
		retriever: retriever,
		responder: responder,
		topK:      topK,
		logger:    logger,
	}}
}

func (t *FormsTool) Run(ctx context.Context, query string) string {
	lower := strings.ToLower(query)
	prefix := "Here's information about HR forms and procedures:\n\n"
	if strings.Contains(lower, "where") && strings.Contains(lower, "form") {
		prefix = "You can find the requested form here:\n\n"
	} else if strings.Contains(lower, "how to") &&
		(strings.Contains(lower, "apply") || strings.Contains(lower, "submit")) {
		prefix = "Here's the process you need to follow:\n\n"
	}
	return t.answer(ctx, query, prefix)
}

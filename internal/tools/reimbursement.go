package tools

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// ReimbursementTool answers expense and reimbursement queries.
type ReimbursementTool struct {
	base
}

func NewReimbursementTool(retriever domain.Retriever, responder Responder, topK int, logger *zap.Logger) *ReimbursementTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReimbursementTool{base: base{
		name:    "reimbursement",
		useCase: "Reimbursement",
		keywords: []string{
			"reimbursement", "expense", "travel", "claim",
			"receipt", "refund", "allowance", "per diem",
			"business trip", "travel policy", "mileage",
		},
		retriever: retriever,
		responder: responder,
		topK:      topK,
		logger:    logger,
	}}
}

func (t *ReimbursementTool) Run(ctx context.Context, query string) string {
	lower := strings.ToLower(query)
	prefix := "Here's information about reimbursement policies:\n\n"
	switch {
	case strings.Contains(lower, "travel"):
		prefix = "Regarding travel reimbursement:\n\n"
	case strings.Contains(lower, "meal"), strings.Contains(lower, "food"):
		prefix = "Regarding meal allowances:\n\n"
	case strings.Contains(lower, "receipt"):
		prefix = "About receipt requirements for reimbursement:\n\n"
	}
	return t.answer(ctx, query, prefix)
}

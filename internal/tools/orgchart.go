package tools

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// OrgChartTool answers organizational structure and reporting queries.
type OrgChartTool struct {
	base
}

func NewOrgChartTool(retriever domain.Retriever, responder Responder, topK int, logger *zap.Logger) *OrgChartTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrgChartTool{base: base{
		name:    "org_chart",
		useCase: "Organization Structure",
		keywords: []string{
			"org chart", "organization", "structure", "reporting",
			"manager", "team lead", "department", "hierarchy",
			"who reports to", "reporting structure", "organization chart",
		},
		retriever: retriever,
		responder: responder,
		topK:      topK,
		logger:    logger,
	}}
}

func (t *OrgChartTool) Run(ctx context.Context, query string) string {
	lower := strings.ToLower(query)
	prefix := "Here's information about our organizational structure:\n\n"
	switch {
	case strings.Contains(lower, "who is"), strings.Contains(lower, "who's the"):
		prefix = "Regarding specific positions:\n\n"
	case strings.Contains(lower, "report"):
		prefix = "Regarding reporting structure:\n\n"
	}
	return t.answer(ctx, query, prefix)
}

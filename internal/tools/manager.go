package tools

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// Manager owns the topic tools and routes each query to the one that claims
// it most strongly. Registration order is fixed at construction and breaks
// score ties, so routing is deterministic and reproducible.
type Manager struct {
	tools     []Tool
	responder Responder
	logger    *zap.Logger
}

// NewManager registers the topic tools in their canonical order:
// leave, holiday, reimbursement, org chart, forms.
func NewManager(retriever domain.Retriever, responder Responder, topK int, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		tools: []Tool{
			NewLeaveTool(retriever, responder, topK, logger),
			NewHolidayTool(retriever, responder, topK, logger),
			NewReimbursementTool(retriever, responder, topK, logger),
			NewOrgChartTool(retriever, responder, topK, logger),
			NewFormsTool(retriever, responder, topK, logger),
		},
		responder: responder,
		logger:    logger,
	}
}

// Tools returns the registered tools in registration order.
func (m *Manager) Tools() []Tool { return m.tools }

// Route returns the tool that should answer the query, or nil when no tool
// claims it. Candidates are ranked by keyword match count; the stable sort
// keeps registration order among equal scores. Pure and side-effect-free.
func (m *Manager) Route(query string) Tool {
	type candidate struct {
		tool  Tool
		score int
	}
	var candidates []candidate
	for _, t := range m.tools {
		if t.Relevant(query) {
			candidates = append(candidates, candidate{t, t.MatchCount(query)})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return candidates[0].tool
}

// Process answers the query with the routed tool, or falls back to the
// generic provider path when no tool is relevant. Always returns a string.
func (m *Manager) Process(ctx context.Context, query string) string {
	tool := m.Route(query)
	if tool == nil {
		m.logger.Debug("no tool matched, using generic path", zap.String("query", query))
		return m.responder.GenerateAnswer(ctx,
			"No specific HR documents matched this query", query, "General HR Inquiry")
	}
	m.logger.Debug("routed query",
		zap.String("tool", tool.Name()),
		zap.Int("score", tool.MatchCount(query)))
	return tool.Run(ctx, query)
}

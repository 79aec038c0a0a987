package tools

import (
	"context"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// HolidayTool answers holiday calendar and schedule queries.
type HolidayTool struct {
	base
}

func NewHolidayTool(retriever domain.Retriever, responder Responder, topK int, logger *zap.Logger) *HolidayTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayTool{base: base{
		name:    "holiday_calendar",
		useCase: "Holiday Calendar",
		keywords: []string{
			"holiday", "calendar", "public holiday", "company holiday",
			"day off", "holiday schedule", "holiday list", "festival",
		},
		retriever: retriever,
		responder: responder,
		topK:      topK,
		logger:    logger,
	}}
}

func (t *HolidayTool) Run(ctx context.Context, query string) string {
	return t.answer(ctx, query, "")
}

// Package assistant exposes the single entry point the surrounding
// application needs: a query in, an answer string out.
package assistant

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hrdesk/internal/tools"
)

// Assistant is the process-wide answering handle. Construct it once after
// the index loads and share it across conversation sessions; it holds no
// per-query mutable state.
type Assistant struct {
	manager *tools.Manager
	logger  *zap.Logger
}

func New(manager *tools.Manager, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{manager: manager, logger: logger}
}

// Answer processes one query synchronously end-to-end. It returns a string
// under all conditions; failures downstream have already been converted to
// user-facing text by the tool and provider layers.
func (a *Assistant) Answer(ctx context.Context, query string) string {
	start := time.Now()
	answer := a.manager.Process(ctx, query)
	a.logger.Info("answered query",
		zap.Int("query_len", len(query)),
		zap.Int("answer_len", len(answer)),
		zap.Duration("elapsed", time.Since(start)))
	return answer
}

// Package retrieval embeds queries and fetches the most similar chunks.
package retrieval

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
	"hrdesk/internal/vectorstore"
)

// Retriever is the query-side pairing of an embedder and a vector store.
// It holds no per-query state and is safe to share across sessions.
type Retriever struct {
	embedder domain.Embedder
	store    vectorstore.Storage
	logger   *zap.Logger
}

func New(embedder domain.Embedder, store vectorstore.Storage, logger *zap.Logger) *Retriever {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{embedder: embedder, store: store, logger: logger}
}

// Search embeds the raw query and returns the top-k stored chunks.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]domain.SearchResult, error) {
	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	results, err := r.store.Search(ctx, vec, k)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	r.logger.Debug("retrieved chunks",
		zap.String("embedder", r.embedder.Name()),
		zap.Int("k", k),
		zap.Int("results", len(results)))
	return results, nil
}

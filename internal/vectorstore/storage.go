package vectorstore

import (
	"context"
	"errors"

	"hrdesk/internal/domain"
)

// ErrIndexUnavailable marks a similarity index that could not be loaded at
// startup. It is fatal to the serving session and must be distinguishable
// from per-query failures.
var ErrIndexUnavailable = errors.New("similarity index unavailable")

// Storage persists vectors and supports similarity search.
type Storage interface {
	Init(dimension int) error
	Upsert(ctx context.Context, chunks []domain.Chunk, vectors [][]float64) error
	Search(ctx context.Context, vector []float64, topK int) ([]domain.SearchResult, error)
	Clear(ctx context.Context) error
}

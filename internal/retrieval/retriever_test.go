package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain"
	"hrdesk/internal/vectorstore/memory"
)

type fakeEmbedder struct {
	vector []float64
	err    error
}

func (f *fakeEmbedder) Name() string { return "fake" }

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func TestSearchReturnsNearestChunks(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Init(2))
	require.NoError(t, store.Upsert(context.Background(),
		[]domain.Chunk{
			{ChunkID: "a", Text: "leave policy"},
			{ChunkID: "b", Text: "holiday calendar"},
		},
		[][]float64{{1, 0}, {0, 1}},
	))
	r := New(&fakeEmbedder{vector: []float64{0, 1}}, store, nil)

	results, err := r.Search(context.Background(), "holidays", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "holiday calendar", results[0].Chunk.Text)
}

func TestSearchWrapsEmbedderError(t *testing.T) {
	r := New(&fakeEmbedder{err: errors.New("quota exceeded")}, memory.NewStore(), nil)

	_, err := r.Search(context.Background(), "holidays", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding query")
}

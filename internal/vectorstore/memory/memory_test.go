package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain"
	"hrdesk/internal/vectorstore"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Init(3))
	chunks := []domain.Chunk{
		{DocumentID: "d1", ChunkID: "d1-0", Source: "leave.txt", Text: "annual leave is 20 days"},
		{DocumentID: "d1", ChunkID: "d1-1", Source: "leave.txt", Text: "sick leave needs a certificate"},
		{DocumentID: "d2", ChunkID: "d2-0", Source: "holidays.txt", Text: "ten public holidays"},
	}
	vectors := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	require.NoError(t, s.Upsert(context.Background(), chunks, vectors))
	return s
}

func TestSearchOrdersByCosine(t *testing.T) {
	s := seedStore(t)

	results, err := s.Search(context.Background(), []float64{0.9, 0.1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "annual leave is 20 days", results[0].Chunk.Text)
	assert.Equal(t, "sick leave needs a certificate", results[1].Chunk.Text)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Greater(t, results[1].Score, results[2].Score)
}

func TestSearchClampsTopK(t *testing.T) {
	s := seedStore(t)

	results, err := s.Search(context.Background(), []float64{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = s.Search(context.Background(), []float64{1, 0, 0}, 0)
	require.NoError(t, err)
	assert.Len(t, results, 3, "non-positive topK defaults to 3")

	results, err = s.Search(context.Background(), []float64{1, 0, 0}, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestUpsertRejectsMismatches(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Init(3))

	err := s.Upsert(context.Background(),
		[]domain.Chunk{{Text: "a"}, {Text: "b"}}, [][]float64{{1, 0, 0}})
	assert.Error(t, err)

	err = s.Upsert(context.Background(),
		[]domain.Chunk{{Text: "a"}}, [][]float64{{1, 0}})
	assert.Error(t, err)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := seedStore(t)
	s.SetDigest("policy corpus digest")
	path := filepath.Join(t.TempDir(), "index", "hr_index.json")

	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "policy corpus digest", loaded.Digest())

	results, err := loaded.Search(context.Background(), []float64{0, 0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ten public holidays", results[0].Chunk.Text)
	assert.Equal(t, "holidays.txt", results[0].Chunk.Source)
}

func TestLoadFailuresWrapIndexUnavailable(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o644))
	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed,
		[]byte(`{"dimension":0,"chunks":[],"vectors":[]}`), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.json")},
		{"corrupt json", corrupt},
		{"malformed index", malformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, vectorstore.ErrIndexUnavailable)
		})
	}
}

func TestClearEmptiesStore(t *testing.T) {
	s := seedStore(t)
	require.NoError(t, s.Clear(context.Background()))

	results, err := s.Search(context.Background(), []float64{1, 0, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

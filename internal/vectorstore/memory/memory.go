package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"hrdesk/internal/domain"
	"hrdesk/internal/vectorstore"
)

// Store is a brute-force cosine similarity store that can persist itself to
// a single JSON file. The indexer writes the file once; the chat binary loads
// it read-only at startup.
type Store struct {
	mu        sync.RWMutex
	dimension int
	digest    string
	chunks    []domain.Chunk
	vectors   [][]float64
}

// indexFile is the on-disk shape of a persisted index.
type indexFile struct {
	Dimension int            `json:"dimension"`
	Digest    string         `json:"digest,omitempty"`
	Chunks    []domain.Chunk `json:"chunks"`
	Vectors   [][]float64    `json:"vectors"`
}

func NewStore() *Store { return &Store{} }

// Load reads a persisted index from path. Failure wraps ErrIndexUnavailable
// so callers can tell a dead knowledge base from a per-query error.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", vectorstore.ErrIndexUnavailable, path, err)
	}
	var f indexFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", vectorstore.ErrIndexUnavailable, path, err)
	}
	if f.Dimension <= 0 || len(f.Chunks) != len(f.Vectors) {
		return nil, fmt.Errorf("%w: %s is malformed", vectorstore.ErrIndexUnavailable, path)
	}
	return &Store{
		dimension: f.Dimension,
		digest:    f.Digest,
		chunks:    f.Chunks,
		vectors:   f.Vectors,
	}, nil
}

// Save writes the index to path, creating parent directories as needed.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	f := indexFile{Dimension: s.dimension, Digest: s.digest, Chunks: s.chunks, Vectors: s.vectors}
	s.mu.RUnlock()
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// SetDigest attaches a short corpus digest shown by the chat UI header.
func (s *Store) SetDigest(digest string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.digest = digest
}

func (s *Store) Digest() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.digest
}

func (s *Store) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.chunks = nil
	s.vectors = nil
	return nil
}

func (s *Store) Upsert(_ context.Context, chunks []domain.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return errors.New("chunks and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	s.chunks = append(s.chunks, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

func (s *Store) Search(_ context.Context, vector []float64, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 {
		topK = 3
	}
	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(s.vectors))
	for i := range s.vectors {
		scores[i] = scored{i, cosine(s.vectors[i], vector)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if topK > len(scores) {
		topK = len(scores)
	}
	results := make([]domain.SearchResult, 0, topK)
	for i := 0; i < topK; i++ {
		sc := scores[i]
		results = append(results, domain.SearchResult{Chunk: s.chunks[sc.idx], Score: sc.score})
	}
	return results, nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
	s.vectors = nil
	return nil
}

// cosine computes the cosine similarity of a and b. Stored vectors are not
// assumed normalized since they come straight from the embedding provider.
func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

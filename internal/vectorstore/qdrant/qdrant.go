package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hrdesk/internal/domain"
)

// Store is a minimal REST client to Qdrant for deployments where the HR
// corpus outgrows the single-file index. It assumes cosine distance and
// creates the collection if missing.
type Store struct {
	url        string
	apiKey     string
	collection string
	dimension  int
	client     *http.Client
}

type Config struct {
	URL        string
	APIKey     string
	Collection string
	Timeout    time.Duration
}

func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Store{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *Store) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.dimension = dimension
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	return s.putJSON(context.Background(), fmt.Sprintf("%s/collections/%s", s.url, s.collection), body)
}

func (s *Store) Upsert(ctx context.Context, chunks []domain.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return errors.New("chunks and vectors length mismatch")
	}
	points := make([]map[string]any, len(chunks))
	for i := range chunks {
		points[i] = map[string]any{
			"id":     fmt.Sprintf("%s:%d", chunks[i].DocumentID, chunks[i].Index),
			"vector": vectors[i],
			"payload": map[string]any{
				"document_id": chunks[i].DocumentID,
				"chunk_id":    chunks[i].ChunkID,
				"source":      chunks[i].Source,
				"index":       chunks[i].Index,
				"text":        chunks[i].Text,
			},
		}
	}
	body := map[string]any{"points": points}
	return s.putJSON(ctx, fmt.Sprintf("%s/collections/%s/points?wait=true", s.url, s.collection), body)
}

func (s *Store) Search(ctx context.Context, vector []float64, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = 3
	}
	req := map[string]any{
		"vector":       vector,
		"limit":        topK,
		"with_payload": true,
	}
	var resp struct {
		Result []struct {
			Score   float64        `json:"score"`
			Payload map[string]any `json:"payload"`
		} `json:"result"`
	}
	if err := s.postJSON(ctx, fmt.Sprintf("%s/collections/%s/points/search", s.url, s.collection), req, &resp); err != nil {
		return nil, err
	}
	results := make([]domain.SearchResult, 0, len(resp.Result))
	for _, r := range resp.Result {
		chunk := domain.Chunk{}
		if v, ok := r.Payload["document_id"].(string); ok {
			chunk.DocumentID = v
		}
		if v, ok := r.Payload["chunk_id"].(string); ok {
			chunk.ChunkID = v
		}
		if v, ok := r.Payload["source"].(string); ok {
			chunk.Source = v
		}
		if v, ok := r.Payload["index"].(float64); ok {
			chunk.Index = int(v)
		}
		if v, ok := r.Payload["text"].(string); ok {
			chunk.Text = v
		}
		results = append(results, domain.SearchResult{Chunk: chunk, Score: r.Score})
	}
	return results, nil
}

func (s *Store) Clear(ctx context.Context) error {
	// Best-effort: drop the collection
	req, _ := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/collections/%s", s.url, s.collection), nil)
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
	_, _ = s.client.Do(req)
	return nil
}

func (s *Store) putJSON(ctx context.Context, url string, body any) error {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant PUT %s failed: %s", url, resp.Status)
	}
	return nil
}

func (s *Store) postJSON(ctx context.Context, url string, body any, out any) error {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant POST %s failed: %s", url, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Client is a Gemini embeddings client over the generativelanguage REST API.
type Client struct {
	baseURL   string
	apiKey    string
	model     string
	taskType  string
	dimension int
	client    *http.Client
}

// Config configures the Gemini embeddings client.
type Config struct {
	BaseURL   string
	APIKeyEnv string
	Model     string
	TaskType  string
	Timeout   time.Duration
}

// NewClient creates a new embeddings client using the provided configuration.
func NewClient(cfg Config) (*Client, error) {
	keyEnv := cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "GEMINI_API_KEY"
	}
	key := os.Getenv(keyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", keyEnv)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "embedding-001"
	}
	if cfg.TaskType == "" {
		cfg.TaskType = "RETRIEVAL_DOCUMENT"
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   key,
		model:    cfg.Model,
		taskType: cfg.TaskType,
		client:   &http.Client{Timeout: t},
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (c *Client) Name() string { return "gemini" }

// Dimension reports the vector size seen on the first successful embed.
func (c *Client) Dimension() int { return c.dimension }

// Embed returns an embedding vector for the given text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	type part struct {
		Text string `json:"text"`
	}
	type content struct {
		Parts []part `json:"parts"`
	}
	body := struct {
		Model    string  `json:"model"`
		Content  content `json:"content"`
		TaskType string  `json:"taskType,omitempty"`
	}{
		Model:    "models/" + c.model,
		Content:  content{Parts: []part{{Text: text}}},
		TaskType: c.taskType,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:embedContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini embeddings failed: %s", resp.Status)
	}

	var out struct {
		Embedding struct {
			Values []float64 `json:"values"`
		} `json:"embedding"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Embedding.Values) == 0 {
		return nil, errors.New("no embedding returned")
	}
	if c.dimension == 0 {
		c.dimension = len(out.Embedding.Values)
	}
	return out.Embedding.Values, nil
}

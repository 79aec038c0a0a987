package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// GeminiClient generates text through the Gemini generateContent REST API.
// One request per call; the adapter layer owns fallback behavior, so no
// retries happen here.
type GeminiClient struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	topP        float64
	client      *http.Client
}

// GeminiConfig configures the generation client. Sampling parameters are
// fixed at startup, not per call.
type GeminiConfig struct {
	BaseURL     string
	APIKeyEnv   string
	Model       string
	Temperature float64
	TopP        float64
	Timeout     time.Duration
}

func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
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
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	if cfg.TopP == 0 {
		cfg.TopP = 0.85
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &GeminiClient{
		baseURL:     cfg.BaseURL,
		apiKey:      key,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		client:      &http.Client{Timeout: t},
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt and returns the generated text.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature: c.temperature,
			TopP:        c.topP,
		},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini generate failed: %s", resp.Status)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini error: %s", out.Error.Message)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no completion returned")
	}

	var sb strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProviderConfig holds the text-generation settings. Sampling parameters are
// fixed at startup, not per call.
type ProviderConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"top_p"`
	TimeoutSecs int     `yaml:"timeout_secs"`
}

// EmbedderConfig configures the embedding model used at index and query time.
type EmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// IndexConfig points at the persisted similarity index.
type IndexConfig struct {
	Path string `yaml:"path"`
	TopK int    `yaml:"top_k"`
}

// VectorStoreConfig selects and configures the vector store implementation.
type VectorStoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	URL         string `yaml:"url"`
	APIKey      string `yaml:"api_key"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	SentencesPerChunk int `yaml:"sentences_per_chunk"`
	OverlapSentences  int `yaml:"overlap_sentences"`
}

// DocsConfig lists the directories holding the HR source documents.
type DocsConfig struct {
	Dirs []string `yaml:"dirs"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Provider    ProviderConfig    `yaml:"provider"`
	Embedder    EmbedderConfig    `yaml:"embedder"`
	Index       IndexConfig       `yaml:"index"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
	Chunker     ChunkerConfig     `yaml:"chunker"`
	Docs        DocsConfig        `yaml:"docs"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/hrdesk/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hrdesk", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Provider.APIKeyEnv == "" {
		cfg.Provider.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = "gemini-1.5-flash"
	}
	if cfg.Provider.Temperature == 0 {
		cfg.Provider.Temperature = 0.3
	}
	if cfg.Provider.TopP == 0 {
		cfg.Provider.TopP = 0.85
	}
	if cfg.Provider.TimeoutSecs == 0 {
		cfg.Provider.TimeoutSecs = 30
	}
	if cfg.Embedder.BaseURL == "" {
		cfg.Embedder.BaseURL = cfg.Provider.BaseURL
	}
	if cfg.Embedder.APIKeyEnv == "" {
		cfg.Embedder.APIKeyEnv = cfg.Provider.APIKeyEnv
	}
	if cfg.Embedder.Model == "" {
		cfg.Embedder.Model = "embedding-001"
	}
	if cfg.Embedder.TimeoutSecs == 0 {
		cfg.Embedder.TimeoutSecs = 30
	}
	if cfg.Index.Path == "" {
		cfg.Index.Path = "hr_index.json"
	}
	if cfg.Index.TopK == 0 {
		cfg.Index.TopK = 3
	}
	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = "memory"
	}
	if cfg.Chunker.SentencesPerChunk == 0 {
		cfg.Chunker.SentencesPerChunk = 5
	}
	if cfg.Chunker.OverlapSentences < 0 {
		cfg.Chunker.OverlapSentences = 0
	}
	if len(cfg.Docs.Dirs) == 0 {
		cfg.Docs.Dirs = []string{"docs"}
	}
}

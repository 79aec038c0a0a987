package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hrdesk/internal/assistant"
	"hrdesk/internal/config"
	"hrdesk/internal/embedding/gemini"
	"hrdesk/internal/provider"
	"hrdesk/internal/retrieval"
	"hrdesk/internal/tools"
	"hrdesk/internal/tui"
	"hrdesk/internal/vectorstore"
	"hrdesk/internal/vectorstore/memory"
	"hrdesk/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var logPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/hrdesk/config.yaml if not provided)")
	flag.StringVar(&logPath, "log", "hrdesk.log", "Path to the log file")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := fileLogger(logPath)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logger.Sync()

	// Assemble the vector store. A missing or corrupt index is fatal to the
	// serving session and reported distinctly from per-query failures.
	var store vectorstore.Storage
	summary := ""
	switch cfg.VectorStore.Type {
	case "memory", "":
		ms, err := memory.Load(cfg.Index.Path)
		if err != nil {
			if errors.Is(err, vectorstore.ErrIndexUnavailable) {
				fmt.Fprintln(os.Stderr, "The HR knowledge base could not be loaded.")
				fmt.Fprintln(os.Stderr, "Run hrdesk-index first to build the index at", cfg.Index.Path)
			}
			log.Fatalf("index load failed: %v", err)
		}
		summary = ms.Digest()
		store = ms
	case "qdrant":
		if cfg.VectorStore.Qdrant == nil {
			log.Fatalf("qdrant config missing")
		}
		store = qdrant.NewStore(qdrant.Config{
			URL:        cfg.VectorStore.Qdrant.URL,
			APIKey:     cfg.VectorStore.Qdrant.APIKey,
			Collection: cfg.VectorStore.Qdrant.Collection,
			Timeout:    time.Duration(cfg.VectorStore.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		log.Fatalf("unknown vector store: %s", cfg.VectorStore.Type)
	}

	embedder, err := gemini.NewClient(gemini.Config{
		BaseURL:   cfg.Embedder.BaseURL,
		APIKeyEnv: cfg.Embedder.APIKeyEnv,
		Model:     cfg.Embedder.Model,
		TaskType:  "RETRIEVAL_QUERY",
		Timeout:   time.Duration(cfg.Embedder.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("embedder init failed: %v", err)
	}

	generator, err := provider.NewGeminiClient(provider.GeminiConfig{
		BaseURL:     cfg.Provider.BaseURL,
		APIKeyEnv:   cfg.Provider.APIKeyEnv,
		Model:       cfg.Provider.Model,
		Temperature: cfg.Provider.Temperature,
		TopP:        cfg.Provider.TopP,
		Timeout:     time.Duration(cfg.Provider.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("generator init failed: %v", err)
	}

	retriever := retrieval.New(embedder, store, logger)
	adapter := provider.NewAdapter(generator, time.Duration(cfg.Provider.TimeoutSecs)*time.Second, logger)
	manager := tools.NewManager(retriever, adapter, cfg.Index.TopK, logger)
	svc := assistant.New(manager, logger)

	m := tui.New(svc, summary)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

// fileLogger writes structured logs to a file so the TUI output stays clean.
func fileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hrdesk/internal/chunker"
	"hrdesk/internal/config"
	"hrdesk/internal/embedding/gemini"
	"hrdesk/internal/ingest"
	"hrdesk/internal/summarizer"
	"hrdesk/internal/vectorstore"
	"hrdesk/internal/vectorstore/memory"
	"hrdesk/internal/vectorstore/qdrant"
)

// hrdesk-index is the one-shot batch indexer: it loads the HR document set,
// chunks and embeds the text and writes the similarity index the chat
// binary serves from.
func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
	flag.Parse()
	dirs := flag.Args()

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
	if len(dirs) == 0 {
		dirs = cfg.Docs.Dirs
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	embedder, err := gemini.NewClient(gemini.Config{
		BaseURL:   cfg.Embedder.BaseURL,
		APIKeyEnv: cfg.Embedder.APIKeyEnv,
		Model:     cfg.Embedder.Model,
		TaskType:  "RETRIEVAL_DOCUMENT",
		Timeout:   time.Duration(cfg.Embedder.TimeoutSecs) * time.Second,
	})
	if err != nil {
		log.Fatalf("embedder init failed: %v", err)
	}

	var store vectorstore.Storage
	var ms *memory.Store
	switch cfg.VectorStore.Type {
	case "memory", "":
		ms = memory.NewStore()
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

	ch := chunker.NewSentenceChunker(cfg.Chunker.SentencesPerChunk, cfg.Chunker.OverlapSentences)
	pipeline := ingest.NewPipeline(ch, embedder, store, summarizer.NewFrequency(), logger)

	count, digest, err := pipeline.Run(context.Background(), dirs)
	if err != nil {
		log.Fatalf("indexing failed: %v", err)
	}
	logger.Info("indexed corpus", zap.Int("chunks", count), zap.Strings("dirs", dirs))

	if ms != nil {
		ms.SetDigest(digest)
		if err := ms.Save(cfg.Index.Path); err != nil {
			log.Fatalf("saving index failed: %v", err)
		}
		logger.Info("index written", zap.String("path", cfg.Index.Path))
	}
}

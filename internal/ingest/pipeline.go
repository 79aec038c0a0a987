// Package ingest builds the similarity index from the HR document set.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
	"hrdesk/internal/loader"
	"hrdesk/internal/vectorstore"
)

// Digester produces a short digest of the ingested corpus.
type Digester interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Pipeline chunks, embeds and stores the HR corpus. It runs once, from the
// indexer binary, not during query serving.
type Pipeline struct {
	chunker  domain.Chunker
	embedder domain.Embedder
	store    vectorstore.Storage
	digester Digester
	logger   *zap.Logger
}

func NewPipeline(chunker domain.Chunker, embedder domain.Embedder, store vectorstore.Storage, digester Digester, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{chunker: chunker, embedder: embedder, store: store, digester: digester, logger: logger}
}

// Run loads every supported file under dirs, chunks and embeds the text and
// replaces the store contents. It returns the chunk count and a corpus
// digest for the chat header.
func (p *Pipeline) Run(ctx context.Context, dirs []string) (int, string, error) {
	documents, err := loader.LoadDirs(dirs)
	if err != nil {
		return 0, "", fmt.Errorf("loading documents: %w", err)
	}
	if len(documents) == 0 {
		return 0, "", fmt.Errorf("no supported documents found under %v", dirs)
	}

	var chunks []domain.Chunk
	var corpus strings.Builder
	for _, doc := range documents {
		cs, err := p.chunker.Chunk(doc)
		if err != nil {
			return 0, "", fmt.Errorf("chunking %s: %w", doc.Source, err)
		}
		chunks = append(chunks, cs...)
		corpus.WriteString(doc.Content)
		corpus.WriteString("\n")
		p.logger.Info("loaded document", zap.String("source", doc.Source), zap.Int("chunks", len(cs)))
	}
	if len(chunks) == 0 {
		return 0, "", fmt.Errorf("documents produced no chunks")
	}

	vectors := make([][]float64, len(chunks))
	dimension := 0
	for i := range chunks {
		vec, err := p.embedder.Embed(ctx, chunks[i].Text)
		if err != nil {
			return 0, "", fmt.Errorf("embedding chunk %s: %w", chunks[i].ChunkID, err)
		}
		vectors[i] = vec
		if dimension == 0 {
			dimension = len(vec)
		}
	}

	if err := p.store.Clear(ctx); err != nil {
		return 0, "", err
	}
	if err := p.store.Init(dimension); err != nil {
		return 0, "", err
	}
	if err := p.store.Upsert(ctx, chunks, vectors); err != nil {
		return 0, "", err
	}

	digest := ""
	if p.digester != nil {
		digest, err = p.digester.Summarize(corpus.String(), 3)
		if err != nil {
			p.logger.Warn("corpus digest failed", zap.Error(err))
			digest = ""
		}
	}
	return len(chunks), digest, nil
}

package domain

import "context"

// Document is a single HR source file (policy doc, holiday sheet, org chart)
// loaded during indexing.
type Document struct {
	ID      string
	Path    string
	Source  string
	Content string
}

// Chunk is an indexable slice of a document.
type Chunk struct {
	DocumentID string
	ChunkID    string
	Source     string
	Text       string
	Index      int
}

// SearchResult is a retrieved chunk with its similarity score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// Message is one turn of the chat transcript. The transcript belongs to the
// presentation layer; the answering core is stateless across turns.
type Message struct {
	Role    string
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Embedder converts free text into a vector representation.
type Embedder interface {
	Name() string
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Chunker splits documents into chunks suitable for retrieval indexing.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Retriever returns the k most similar stored chunks for a query string.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]SearchResult, error)
}

// Generator is the remote text-generation capability.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Assistant is the single contract the surrounding application needs from
// the answering core: a query in, a user-facing string out, always.
type Assistant interface {
	Answer(ctx context.Context, query string) string
}

// Package tools holds the HR topic tools and the router that dispatches
// free-text queries to the right one.
package tools

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"hrdesk/internal/domain"
)

// Responder is the tool-facing subset of the provider adapter. It always
// returns user-facing text, never an error.
type Responder interface {
	GenerateAnswer(ctx context.Context, contextText, query, useCase string) string
}

// Tool answers queries for one HR topic. Tools are configured at
// construction and hold no per-query state.
type Tool interface {
	Name() string
	UseCase() string
	// Relevant reports whether any keyword is a substring of the lower-cased
	// query. Substring, not whole-word: routing scores depend on these exact
	// match counts, false positives included.
	Relevant(query string) bool
	// MatchCount counts how many keywords are substrings of the query.
	// The router ranks relevant tools by it.
	MatchCount(query string) int
	// Run answers the query. It must return a string under all conditions.
	Run(ctx context.Context, query string) string
}

const refusalMessage = "I'm here to assist only with HR and company-related questions. " +
	"Topics like food, entertainment, or general inquiries are outside my scope. " +
	"Please ask about leave policy, reimbursements, holidays, org charts, or HR forms."

const defaultTopK = 3

var (
	bracketRe = regexp.MustCompile(`\[[^\]]*\]`)
	parenRe   = regexp.MustCompile(`\([^)]*\)`)
	sourceRe  = regexp.MustCompile(`\(Source:[^)]*\)`)
)

// base carries the behavior shared by every topic tool: keyword relevance,
// retrieval, context cleansing and answer post-processing.
type base struct {
	name      string
	useCase   string
	keywords  []string
	retriever domain.Retriever
	responder Responder
	topK      int
	logger    *zap.Logger
}

func (b *base) Name() string    { return b.name }
func (b *base) UseCase() string { return b.useCase }

func (b *base) Relevant(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range b.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (b *base) MatchCount(query string) int {
	lower := strings.ToLower(query)
	count := 0
	for _, kw := range b.keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

// answer runs the shared retrieve-and-generate pipeline and prepends the
// tool-specific prefix, which may be empty.
func (b *base) answer(ctx context.Context, query, prefix string) string {
	if !b.Relevant(query) {
		return refusalMessage
	}
	contextText := b.retrieveContext(ctx, query)
	generated := b.responder.GenerateAnswer(ctx, contextText, query, b.useCase)
	return prefix + stripSourceRefs(generated)
}

// retrieveContext fetches top-k chunks and joins their cleansed text. A
// retrieval failure degrades to an empty context rather than failing the
// query; the adapter inserts its no-documents placeholder.
func (b *base) retrieveContext(ctx context.Context, query string) string {
	k := b.topK
	if k <= 0 {
		k = defaultTopK
	}
	results, err := b.retriever.Search(ctx, query, k)
	if err != nil {
		b.logger.Warn("retrieval failed, answering without context",
			zap.String("tool", b.name), zap.Error(err))
		return ""
	}
	if len(results) == 0 {
		return "No relevant documents found in company records."
	}
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, strings.TrimSpace(cleanseContext(r.Chunk.Text)))
	}
	return strings.Join(parts, "\n")
}

// cleanseContext strips bracketed and parenthetical substrings, delimiters
// included. Citation-like artifacts in the source documents would otherwise
// leak into the grounding prompt. Idempotent on already-clean text.
func cleanseContext(text string) string {
	text = bracketRe.ReplaceAllString(text, "")
	return parenRe.ReplaceAllString(text, "")
}

// stripSourceRefs removes any "(Source: ...)" parenthetical the model may
// hallucinate and trims surrounding whitespace.
func stripSourceRefs(text string) string {
	return strings.TrimSpace(sourceRe.ReplaceAllString(text, ""))
}

package chunker

import (
	"regexp"
	"strconv"
	"strings"

	"hrdesk/internal/domain"
)

// SentenceChunker splits document text into sentence-based chunks with
// overlap between consecutive chunks.
type SentenceChunker struct {
	sentencesPerChunk int
	overlapSentences  int
	splitter          *regexp.Regexp
}

func NewSentenceChunker(sentencesPerChunk, overlapSentences int) *SentenceChunker {
	if sentencesPerChunk <= 0 {
		sentencesPerChunk = 5
	}
	if overlapSentences < 0 {
		overlapSentences = 0
	}
	return &SentenceChunker{
		sentencesPerChunk: sentencesPerChunk,
		overlapSentences:  overlapSentences,
		splitter:          regexp.MustCompile(`(?m)(?U)([^.!?\n]+[.!?\n])`),
	}
}

func (c *SentenceChunker) Chunk(document domain.Document) ([]domain.Chunk, error) {
	sentences := c.splitter.FindAllString(document.Content, -1)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(document.Content)
		if trimmed == "" {
			return nil, nil
		}
		sentences = []string{trimmed}
	}
	kept := sentences[:0]
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	sentences = kept

	var chunks []domain.Chunk
	i := 0
	idx := 0
	for i < len(sentences) {
		end := i + c.sentencesPerChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, domain.Chunk{
			DocumentID: document.ID,
			ChunkID:    document.ID + ":" + strconv.Itoa(idx),
			Source:     document.Source,
			Text:       strings.Join(sentences[i:end], " "),
			Index:      idx,
		})
		if end == len(sentences) {
			break
		}
		i = end - c.overlapSentences
		if i < 0 {
			i = 0
		}
		idx++
	}
	return chunks, nil
}

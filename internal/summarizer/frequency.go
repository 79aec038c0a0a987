package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Frequency produces a short digest of an ingested corpus by ranking
// sentences on normalized token frequency. The digest is stored with the
// index and shown in the chat header.
type Frequency struct {
	tokenPattern *regexp.Regexp
	sentenceRe   *regexp.Regexp
	stopwords    map[string]struct{}
}

func NewFrequency() *Frequency {
	return &Frequency{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		sentenceRe:   regexp.MustCompile(`(?m)(?U)([^.!?\n]+[.!?\n])`),
		stopwords:    defaultStopwords(),
	}
}

// Summarize returns up to maxSentences of the text, ranked by token
// frequency, in their original order.
func (s *Frequency) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	sentences := s.sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}

	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range s.tokens(sent) {
			if _, ok := s.stopwords[tok]; ok {
				continue
			}
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, sent := range sentences {
		toks := s.tokens(sent)
		total := 0.0
		for _, tok := range toks {
			total += freq[tok]
		}
		if l := float64(len(toks)); l > 0 {
			total /= math.Sqrt(l)
		}
		scores[i] = scored{i, total}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	var out []string
	for _, idx := range selected {
		out = append(out, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(out, " "), nil
}

func (s *Frequency) tokens(text string) []string {
	return s.tokenPattern.FindAllString(strings.ToLower(text), -1)
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to",
		"of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were",
		"be", "been", "being", "it", "this", "that", "these", "those", "from",
		"up", "down", "over", "under", "than", "so", "such", "into", "about",
		"between", "through", "during", "before", "after", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

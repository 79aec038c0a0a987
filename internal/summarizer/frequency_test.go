package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeKeepsOriginalOrder(t *testing.T) {
	s := NewFrequency()
	text := "Leave policy grants twenty days of annual leave. " +
		"The cafeteria serves coffee. " +
		"Leave requests need manager approval before the leave starts. " +
		"Unused leave days expire at year end."

	digest, err := s.Summarize(text, 2)
	require.NoError(t, err)

	sentences := strings.Split(digest, ". ")
	require.NotEmpty(t, sentences)
	assert.NotContains(t, digest, "cafeteria", "low-signal sentence should be dropped")

	// Selected sentences keep their order of appearance in the source text.
	last := -1
	for _, sent := range sentences {
		idx := strings.Index(text, strings.TrimSuffix(sent, "."))
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestSummarizeBounds(t *testing.T) {
	s := NewFrequency()

	digest, err := s.Summarize("Only one sentence here.", 3)
	require.NoError(t, err)
	assert.Equal(t, "Only one sentence here.", digest)

	digest, err = s.Summarize("no punctuation at all", 3)
	require.NoError(t, err)
	assert.Equal(t, "no punctuation at all", digest)

	digest, err = s.Summarize("A. B. C. D. E.", 2)
	require.NoError(t, err)
	assert.Len(t, strings.FieldsFunc(digest, func(r rune) bool { return r == '.' }), 2)
}

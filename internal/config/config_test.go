package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-flash", cfg.Provider.Model)
	assert.Equal(t, 0.3, cfg.Provider.Temperature)
	assert.Equal(t, 0.85, cfg.Provider.TopP)
	assert.Equal(t, 30, cfg.Provider.TimeoutSecs)
	assert.Equal(t, "embedding-001", cfg.Embedder.Model)
	assert.Equal(t, "hr_index.json", cfg.Index.Path)
	assert.Equal(t, 3, cfg.Index.TopK)
	assert.Equal(t, "memory", cfg.VectorStore.Type)
	assert.Equal(t, 5, cfg.Chunker.SentencesPerChunk)
	assert.Equal(t, []string{"docs"}, cfg.Docs.Dirs)
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"provider:\n  model: gemini-1.5-pro\nindex:\n  path: /var/lib/hrdesk/index.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-pro", cfg.Provider.Model)
	assert.Equal(t, "/var/lib/hrdesk/index.json", cfg.Index.Path)
	assert.Equal(t, 0.3, cfg.Provider.Temperature, "unset fields still get defaults")
	assert.Equal(t, 3, cfg.Index.TopK)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := defaultConfig()
	cfg.Docs.Dirs = []string{"/srv/hr-docs"}
	cfg.VectorStore.Type = "qdrant"
	cfg.VectorStore.Qdrant = &QdrantConfig{URL: "http://localhost:6333", Collection: "hrdesk"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/hr-docs"}, loaded.Docs.Dirs)
	assert.Equal(t, "qdrant", loaded.VectorStore.Type)
	require.NotNil(t, loaded.VectorStore.Qdrant)
	assert.Equal(t, "hrdesk", loaded.VectorStore.Qdrant.Collection)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":8081"
database:
  url: "postgres://u:p@db:5432/resumes"
  max_conns: 4
ai:
  provider: groq
  model: llama-3.1-8b-instant
  qpm: 30
  cache_ttl: 1h
minio:
  endpoint: "minio:9000"
  bucket: exports
logger:
  level: debug
  format: pretty
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Address)
	assert.Equal(t, "postgres://u:p@db:5432/resumes", cfg.Database.URL)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.AI.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.AI.BaseURL)
	assert.Equal(t, 30, cfg.AI.QPM)
	assert.Equal(t, time.Hour, GetDuration(cfg.AI.CacheTTL, 0))
	assert.Equal(t, "exports", cfg.MinIO.Bucket)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "pretty", cfg.Logger.Format)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Address)
	assert.Equal(t, "groq", cfg.AI.Provider)
	assert.Equal(t, "mixtral-8x7b-32768", cfg.AI.Model)
	assert.InDelta(t, 0.7, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 1, cfg.AI.MaxAttempts)
	assert.Equal(t, "resume-exports", cfg.MinIO.Bucket)
	assert.InDelta(t, 8.27, cfg.Renderer.PaperWidth, 1e-9)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
ai:
  provider: gemini
database:
  url: "postgres://file"
`)
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("PORT", "9090")
	t.Setenv("RENDERER_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Database.URL)
	assert.Equal(t, "g-key", cfg.AI.APIKey)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Empty(t, cfg.AI.BaseURL)
	assert.True(t, cfg.Renderer.Enabled)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		in   string
		def  time.Duration
		want time.Duration
	}{
		{"", time.Second, time.Second},
		{"90s", time.Second, 90 * time.Second},
		{"soon", time.Minute, time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetDuration(tt.in, tt.def), tt.in)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/llm"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 100, cfg.Generation.AttemptsPerCall)
	assert.Equal(t, 50, cfg.Generation.BatchAttemptFactor)
	assert.Equal(t, 1000, cfg.Generation.DistractorAttempts)
	assert.Zero(t, cfg.Generation.Seed)
	assert.Equal(t, "Letter", cfg.PDF.PageSize)
	assert.Equal(t, ".", cfg.PDF.OutputDir)
	assert.Equal(t, llm.ProviderAnthropic, cfg.Providers.Provider)
	assert.Equal(t, 60*time.Second, cfg.Providers.Timeout)
	assert.Equal(t, 3, cfg.Providers.Retry.MaxAttempts)
}

func TestLoadFrom_File(t *testing.T) {
	dir := writeConfig(t, `
env: production
log:
  level: warn
generation:
  batch_attempt_factor: 100
  seed: 42
pdf:
  page_size: A4
  header_title: Entrance Test
llm:
  provider: openai
  model: gpt-4.1-mini
  timeout: 15s
  openai:
    api_key: sk-file
  retry:
    max_attempts: 5
    initial_wait: 250ms
`)
	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, uint64(42), cfg.Generation.Seed)

	gen := cfg.Problemgen()
	assert.Equal(t, 100, gen.BatchAttemptFactor)
	assert.Equal(t, 100, gen.AttemptsPerCall)
	assert.NotEmpty(t, gen.Validators)

	doc := cfg.Export()
	assert.Equal(t, "A4", doc.PageSize)
	assert.Equal(t, "Entrance Test", doc.HeaderTitle)

	ai := cfg.LLM()
	assert.Equal(t, llm.ProviderOpenAI, ai.Provider)
	assert.Equal(t, "sk-file", ai.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", ai.OpenAI.Model)
	assert.Equal(t, "claude-haiku", ai.Anthropic.Model, "model override applies to the selected provider only")
	assert.Equal(t, 15*time.Second, ai.Timeout)
	assert.Equal(t, 5, ai.Retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, ai.Retry.InitialWait)
	assert.Equal(t, 10*time.Second, ai.Retry.MaxWait)
	require.NoError(t, ai.Validate())
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "pdf:\n  page_size: A4\n")
	t.Setenv("QUIZGEN_PDF_PAGE_SIZE", "Legal")
	t.Setenv("QUIZGEN_GENERATION_SEED", "7")
	t.Setenv("QUIZGEN_LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("QUIZGEN_LLM_BASE_URL", "http://localhost:9999")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "Legal", cfg.PDF.PageSize)
	assert.Equal(t, uint64(7), cfg.Generation.Seed)

	ai := cfg.LLM()
	assert.Equal(t, llm.ProviderGemini, ai.Provider)
	assert.Equal(t, "g-key", ai.Gemini.APIKey)
	assert.Equal(t, "http://localhost:9999", ai.Gemini.BaseURL)
	assert.Empty(t, ai.OpenAI.BaseURL)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"page size", "pdf:\n  page_size: Napkin\n"},
		{"negative budget", "generation:\n  attempts_per_call: -1\n"},
		{"malformed yaml", "pdf: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

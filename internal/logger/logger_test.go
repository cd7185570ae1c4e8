package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Config
		level zap.AtomicLevel
	}{
		{"development default", config.Config{Env: "local"}, zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"production default", config.Config{Env: "production"}, zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"override", config.Config{Env: "production", Log: config.Log{Level: "error"}}, zap.NewAtomicLevelAt(zap.ErrorLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.level.Level(), log.Level())
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.Log{Level: "loud"}})
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizgen.log")
	cfg := &config.Config{Env: "production", Log: config.Log{File: path}}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("batch generated", zap.Int("count", 3))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"batch generated"`)
	assert.Contains(t, string(data), `"count":3`)
}

func TestForTUI_DiscardsWithoutFile(t *testing.T) {
	log, err := ForTUI(&config.Config{Env: "local"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

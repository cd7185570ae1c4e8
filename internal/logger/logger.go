package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/config"
)

// New builds the process logger: JSON in production, console otherwise.
// log.level overrides the environment's default level and log.file
// redirects output away from stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = level
	}
	if cfg.Log.File != "" {
		zc.OutputPaths = []string{cfg.Log.File}
		zc.ErrorOutputPaths = []string{cfg.Log.File}
	}

	return zc.Build()
}

// ForTUI returns a logger that never writes to the terminal the TUI owns.
// Without log.file it discards everything.
func ForTUI(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.File == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}

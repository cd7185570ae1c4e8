package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/config"
	"github.com/abhisek/quizgen/internal/explain"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/logger"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/pdfexport"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/randx"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/store"
)

// explainMode controls whether deps wires an LLM provider.
type explainMode int

const (
	explainOff explainMode = iota
	explainOptional
	explainRequired
)

// deps is everything a command needs for one run.
type deps struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *store.Store
	session *session.Session
}

// loadConfig is swapped in tests.
var loadConfig = config.Load

// buildDeps loads configuration, opens the in-memory store and assembles
// the session. tui routes logs away from the terminal.
func buildDeps(cmd *cobra.Command, tui bool, mode explainMode) (*deps, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Generation.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if f := cmd.Flags().Lookup("out"); f != nil && f.Changed {
		cfg.PDF.OutputDir, _ = cmd.Flags().GetString("out")
	}

	var log *zap.Logger
	if tui {
		log, err = logger.ForTUI(cfg)
	} else {
		log, err = logger.New(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	st, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var src randx.Source = randx.NewTimeSeeded()
	if cfg.Generation.Seed != 0 {
		src = randx.New(cfg.Generation.Seed)
	}

	opts := session.Options{
		Questions: problemgen.NewService(src, cfg.Problemgen(), log.Named("problemgen")),
		Papers:    paper.NewService(st.PaperRepo(), log.Named("paper")),
		Exporter:  pdfexport.New(cfg.Export()),
		OutputDir: cfg.PDF.OutputDir,
		Logger:    log,
	}

	if mode != explainOff {
		explainer, err := buildExplainer(cmd.Context(), cfg, st, log)
		switch {
		case err != nil && mode == explainRequired:
			st.Close()
			return nil, err
		case err != nil:
			log.Warn("explanations unavailable", zap.Error(err))
			if tui {
				fmt.Fprintln(cmd.ErrOrStderr(), "LLM provider not configured:", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "Explanations will be unavailable.")
			}
		default:
			opts.Explainer = explainer
		}
	}

	return &deps{cfg: cfg, logger: log, store: st, session: session.New(opts)}, nil
}

func buildExplainer(ctx context.Context, cfg *config.Config, st *store.Store, log *zap.Logger) (*explain.Service, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := llm.NewProvider(ctx, cfg.LLM(), st.EventRepo(), log.Named("llm"))
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	return explain.NewService(provider, explain.DefaultConfig(), log.Named("explain")), nil
}

func (d *deps) Close() {
	_ = d.logger.Sync()
	d.store.Close()
}

// out is where command results are printed.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

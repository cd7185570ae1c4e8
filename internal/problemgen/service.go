package problemgen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/randx"
)

// ErrInvalidCount is returned when fewer than one question is requested.
var ErrInvalidCount = errors.New("count must be at least 1")

// Service is the entry point used by the CLI, the TUI and PDF export. It
// owns the ledger for the current batch and the randomness source.
// Not safe for concurrent use.
type Service struct {
	src    randx.Source
	ledger *Ledger
	cfg    Config
	logger *zap.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(src randx.Source, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		src:    src,
		ledger: NewLedger(),
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// ResetLedger starts a new batch scope.
func (s *Service) ResetLedger() {
	s.ledger = NewLedger()
}

// Generate resets the ledger and produces up to count questions. A short
// batch is not an error; it is logged and reported through Batch.Outcome.
func (s *Service) Generate(id GeneratorID, v Variant, count int) (*Batch, error) {
	return s.generate(id, v, count, s.cfg)
}

// GenerateClassic is Generate with the classic worksheet's larger budget.
func (s *Service) GenerateClassic(v Variant, count int) (*Batch, error) {
	cfg := s.cfg
	cfg.BatchAttemptFactor = ClassicBatchAttemptFactor
	return s.generate(GenPercentageClassic, v, count, cfg)
}

func (s *Service) generate(id GeneratorID, v Variant, count int, cfg Config) (*Batch, error) {
	gen, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("generate %s: %w", id, ErrInvalidCount)
	}

	s.ResetLedger()
	batch := GenerateBatch(s.src, s.ledger, gen, v, count, cfg)

	for i, q := range batch.Questions {
		for _, val := range cfg.Validators {
			if verr := val.Validate(q); verr != nil {
				return nil, fmt.Errorf("generate %s question %d: %w", id, i+1, verr)
			}
		}
	}

	fields := []zap.Field{
		zap.String("generator", string(id)),
		zap.String("variant", string(v)),
		zap.Int("requested", count),
		zap.Int("fulfilled", batch.Fulfilled()),
		zap.Int("calls", batch.Calls),
	}
	switch batch.Outcome() {
	case OutcomeFull:
		s.logger.Debug("generated batch", fields...)
	case OutcomePartial:
		s.logger.Warn(fmt.Sprintf("could only generate %d unique questions", batch.Fulfilled()), fields...)
	case OutcomeEmpty:
		s.logger.Warn("unable to generate questions", fields...)
	}
	return batch, nil
}

// SynthesizeOptions builds the option set for q and checks its invariants.
func (s *Service) SynthesizeOptions(q *Question) (OptionSet, error) {
	set := SynthesizeOptions(s.src, q, s.cfg.DistractorAttempts)
	if verr := ValidateOptions(q, set); verr != nil {
		return OptionSet{}, fmt.Errorf("synthesize options for %s: %w", q.Key, verr)
	}
	return set, nil
}

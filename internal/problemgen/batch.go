package problemgen

import "github.com/abhisek/quizgen/internal/randx"

// Outcome summarises how much of a batch request was met.
type Outcome int

const (
	OutcomeEmpty Outcome = iota
	OutcomePartial
	OutcomeFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomePartial:
		return "partial"
	case OutcomeFull:
		return "full"
	default:
		return "unknown"
	}
}

// Batch is the result of one generation request.
type Batch struct {
	Questions []*Question
	Requested int

	// Calls is the number of generator calls spent.
	Calls int
}

// Fulfilled returns the number of questions produced.
func (b *Batch) Fulfilled() int {
	return len(b.Questions)
}

// Outcome classifies the batch as empty, partial or full.
func (b *Batch) Outcome() Outcome {
	switch {
	case len(b.Questions) == 0:
		return OutcomeEmpty
	case len(b.Questions) < b.Requested:
		return OutcomePartial
	default:
		return OutcomeFull
	}
}

// GenerateBatch calls gen until count questions exist or count×factor
// calls have been spent. The budget is shared across the batch. Running
// short is reported through the Batch, never as an error.
func GenerateBatch(src randx.Source, ledger *Ledger, gen *Generator, v Variant, count int, cfg Config) *Batch {
	cfg = cfg.withDefaults()
	b := &Batch{Requested: count}
	budget := count * cfg.BatchAttemptFactor
	for b.Calls < budget && len(b.Questions) < count {
		b.Calls++
		if q := gen.Generate(src, ledger, v, cfg.AttemptsPerCall); q != nil {
			b.Questions = append(b.Questions, q)
		}
	}
	return b
}

package problemgen

// Config controls generation budgets and the validator chain.
type Config struct {
	// Validators run in order on every generated question. The first
	// failure stops the pipeline.
	Validators []Validator

	// AttemptsPerCall bounds a single generator call.
	AttemptsPerCall int

	// BatchAttemptFactor times the requested count is the generator-call
	// budget shared by the whole batch.
	BatchAttemptFactor int

	// DistractorAttempts bounds numeric distractor sampling.
	DistractorAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and the usual budgets.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&KeyPrefixValidator{},
		},
		AttemptsPerCall:    100,
		BatchAttemptFactor: 50,
		DistractorAttempts: 1000,
	}
}

// ClassicBatchAttemptFactor is the batch multiplier of the classic
// percentage worksheet.
const ClassicBatchAttemptFactor = 100

// withDefaults fills zero budgets from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.AttemptsPerCall <= 0 {
		c.AttemptsPerCall = d.AttemptsPerCall
	}
	if c.BatchAttemptFactor <= 0 {
		c.BatchAttemptFactor = d.BatchAttemptFactor
	}
	if c.DistractorAttempts <= 0 {
		c.DistractorAttempts = d.DistractorAttempts
	}
	return c
}

package problemgen

import "fmt"

// Validator checks a generated question for internal consistency.
// Implementations should be stateless.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation. Generated
// questions failing validation indicate a template defect.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// ValidateOptions checks the option-set invariants against q: four
// options lettered A–D, pairwise-distinct texts, and exactly one correct
// option whose text is the rendered answer.
func ValidateOptions(q *Question, set OptionSet) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: "options", Message: fmt.Sprintf(format, args...)}
	}
	if len(set.Options) != len(Letters) {
		return fail("expected %d options, got %d", len(Letters), len(set.Options))
	}
	seen := make(map[string]bool, len(set.Options))
	correct := 0
	for i, o := range set.Options {
		if o.Letter != Letters[i] {
			return fail("option %d has letter %q", i, o.Letter)
		}
		if seen[o.Text] {
			return fail("duplicate option text %q", o.Text)
		}
		seen[o.Text] = true
		if o.Correct {
			correct++
			if o.Text != AnswerText(q) {
				return fail("correct option %q does not match answer %q", o.Text, AnswerText(q))
			}
			if o.Letter != set.CorrectLetter {
				return fail("correct letter %q does not match option %q", set.CorrectLetter, o.Letter)
			}
		}
	}
	if correct != 1 {
		return fail("expected exactly one correct option, got %d", correct)
	}
	return nil
}

package problemgen

import "strings"

// StructuralValidator checks that required fields are present and the
// answer is a positive whole amount.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	if strings.TrimSpace(q.Text) == "" {
		return fail("question text is empty")
	}
	if q.Key == "" {
		return fail("parameter key is empty")
	}
	if q.Generator == "" || q.Variant == "" {
		return fail("question provenance is missing")
	}
	if q.Tag != TagNone && q.Tag != TagProfit && q.Tag != TagLoss {
		return fail("tag must be \"profit\" or \"loss\"")
	}
	if p := q.Answer.Pair; p != nil {
		if p.First <= 0 || p.Second <= 0 {
			return fail("compound answer counts must be positive")
		}
		if strings.Count(p.Format, "%d") != 2 {
			return fail("compound answer format needs two %d verbs")
		}
		if q.Tag != TagNone {
			return fail("compound answers cannot be tagged")
		}
		return nil
	}
	if q.Answer.Value <= 0 {
		return fail("answer must be positive")
	}
	return nil
}

// keyPrefixes maps each generator to the prefixes its keys start with.
var keyPrefixes = map[GeneratorID][]string{
	GenNumberPattern:      {"np_"},
	GenPercentage:         {"pct_easy_", "pct_med_", "pct_hard_"},
	GenPercentageClassic:  {"easy-", "medium-", "hard-"},
	GenPercentageBusiness: {"pct_sob_"},
	GenWorkTime:           {"wt_"},
	GenProfitLoss:         {"pl_"},
	GenSimpleInterest:     {"si_"},
	GenLinearEquation:     {"le_"},
}

// KeyPrefixValidator checks that a key carries its generator's prefix, so
// keys from different concepts never collide in a shared ledger.
type KeyPrefixValidator struct{}

func (v *KeyPrefixValidator) Name() string { return "key-prefix" }

func (v *KeyPrefixValidator) Validate(q *Question) *ValidationError {
	prefixes, ok := keyPrefixes[q.Generator]
	if !ok {
		// Generators outside the built-in set carry no prefix contract.
		return nil
	}
	for _, p := range prefixes {
		if strings.HasPrefix(q.Key, p) {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   "key " + q.Key + " does not match generator " + string(q.Generator),
	}
}

package problemgen

import (
	"testing"

	"github.com/abhisek/quizgen/internal/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeKeyGenerator can only ever produce three distinct questions.
func threeKeyGenerator() *Generator {
	keys := []string{"stub_a", "stub_b", "stub_c"}
	return newGenerator("stub", "Stub").on(func(src randx.Source) *Question {
		k := randx.Pick(src, keys)
		return &Question{Text: "Stub " + k, Answer: Answer{Value: 7}, Key: k}
	}, VariantEasy)
}

func TestGenerateBatch_PartialFulfilment(t *testing.T) {
	b := GenerateBatch(randx.New(1), NewLedger(), threeKeyGenerator(), VariantEasy, 5, DefaultConfig())

	assert.Equal(t, 3, b.Fulfilled())
	assert.Equal(t, 5, b.Requested)
	assert.Equal(t, OutcomePartial, b.Outcome())
	assert.Equal(t, 5*50, b.Calls, "budget is shared across the batch")
}

func TestGenerateBatch_Full(t *testing.T) {
	b := GenerateBatch(randx.New(1), NewLedger(), threeKeyGenerator(), VariantEasy, 3, DefaultConfig())

	assert.Equal(t, OutcomeFull, b.Outcome())
	assert.LessOrEqual(t, b.Calls, 3*50)
}

func TestGenerateBatch_UnknownVariantIsEmpty(t *testing.T) {
	b := GenerateBatch(randx.New(1), NewLedger(), threeKeyGenerator(), VariantHard2, 4, DefaultConfig())

	assert.Empty(t, b.Questions)
	assert.Equal(t, OutcomeEmpty, b.Outcome())
	assert.Equal(t, "empty", b.Outcome().String())
}

func TestGenerateBatch_NoDuplicateKeys(t *testing.T) {
	for _, gen := range Generators() {
		for _, v := range gen.Variants() {
			b := GenerateBatch(randx.New(17), NewLedger(), gen, v, 25, DefaultConfig())
			seen := make(map[string]bool)
			for _, q := range b.Questions {
				if seen[q.Key] {
					t.Fatalf("%s/%s: duplicate key %s", gen.ID, v, q.Key)
				}
				seen[q.Key] = true
			}
		}
	}
}

func TestGenerateBatch_Deterministic(t *testing.T) {
	gen, err := Lookup(GenLinearEquation)
	require.NoError(t, err)

	run := func() []string {
		b := GenerateBatch(randx.New(2024), NewLedger(), gen, VariantMedium, 8, DefaultConfig())
		texts := make([]string, 0, len(b.Questions))
		for _, q := range b.Questions {
			texts = append(texts, q.Text+"|"+q.Answer.String())
		}
		return texts
	}
	assert.Equal(t, run(), run())
}

func TestGenerateBatch_SharedLedgerAcrossVariants(t *testing.T) {
	gen, err := Lookup(GenPercentage)
	require.NoError(t, err)

	ledger := NewLedger()
	src := randx.New(8)
	// "easy 1" and "easy 2" share a template and therefore a key space.
	a := GenerateBatch(src, ledger, gen, VariantEasy1, 10, DefaultConfig())
	b := GenerateBatch(src, ledger, gen, VariantEasy2, 10, DefaultConfig())
	for _, qa := range a.Questions {
		for _, qb := range b.Questions {
			assert.NotEqual(t, qa.Key, qb.Key)
		}
	}
	assert.Equal(t, a.Fulfilled()+b.Fulfilled(), ledger.Len())
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{BatchAttemptFactor: 7}.withDefaults()
	if cfg.BatchAttemptFactor != 7 {
		t.Errorf("BatchAttemptFactor = %d, want 7", cfg.BatchAttemptFactor)
	}
	if cfg.AttemptsPerCall != 100 {
		t.Errorf("AttemptsPerCall = %d, want 100", cfg.AttemptsPerCall)
	}
	if cfg.DistractorAttempts != 1000 {
		t.Errorf("DistractorAttempts = %d, want 1000", cfg.DistractorAttempts)
	}
}

func TestLedger(t *testing.T) {
	l := NewLedger()
	if !l.TryReserve("k") {
		t.Fatal("first reserve should succeed")
	}
	if l.TryReserve("k") {
		t.Fatal("second reserve should fail")
	}
	if !l.Has("k") || l.Len() != 1 {
		t.Fatalf("unexpected ledger state: has=%v len=%d", l.Has("k"), l.Len())
	}
	l.Reset()
	if l.Has("k") || l.Len() != 0 {
		t.Fatal("reset should clear keys")
	}
}

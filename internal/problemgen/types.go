package problemgen

import (
	"fmt"
	"strconv"
)

// AllowedPercentages are the target percentages templates may ask for.
// Each divides cleanly against the sampled ranges, keeping retries cheap.
var AllowedPercentages = []int{20, 25, 28, 34, 38, 40, 45, 50}

// GeneratorID identifies a concept generator.
type GeneratorID string

const (
	GenNumberPattern      GeneratorID = "number-patterns"
	GenPercentage         GeneratorID = "percentages"
	GenPercentageClassic  GeneratorID = "percentages-classic"
	GenPercentageBusiness GeneratorID = "percentages-business"
	GenWorkTime           GeneratorID = "work-and-time"
	GenProfitLoss         GeneratorID = "profit-and-loss"
	GenSimpleInterest     GeneratorID = "simple-interest"
	GenLinearEquation     GeneratorID = "linear-equations"
)

// Variant is a difficulty label. The set is closed; each generator maps the
// variants it supports to a template.
type Variant string

const (
	VariantEasy    Variant = "easy only"
	VariantEasy1   Variant = "easy 1"
	VariantEasy2   Variant = "easy 2"
	VariantMedium  Variant = "medium only"
	VariantMedium1 Variant = "medium 1"
	VariantMedium2 Variant = "medium 2"
	VariantHard    Variant = "hard only"
	VariantHard1   Variant = "hard 1"
	VariantHard2   Variant = "hard 2"
)

// AllVariants returns every known variant in display order.
func AllVariants() []Variant {
	return []Variant{
		VariantEasy, VariantEasy1, VariantEasy2,
		VariantMedium, VariantMedium1, VariantMedium2,
		VariantHard, VariantHard1, VariantHard2,
	}
}

// ParseVariant maps a label to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range AllVariants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty variant %q", s)
}

// Tag classifies an answer for rendering, e.g. profit vs loss.
type Tag string

const (
	TagNone   Tag = ""
	TagProfit Tag = "profit"
	TagLoss   Tag = "loss"
)

// Label returns the capitalised tag, e.g. "Profit".
func (t Tag) Label() string {
	switch t {
	case TagProfit:
		return "Profit"
	case TagLoss:
		return "Loss"
	default:
		return ""
	}
}

// Pair is a two-count compound answer. Format holds two %d verbs and the
// unit labels, e.g. "%d notebooks and %d pens".
type Pair struct {
	First  int
	Second int
	Format string
}

// Render returns the display text of the pair.
func (p Pair) Render() string {
	return fmt.Sprintf(p.Format, p.First, p.Second)
}

// Answer is either a single number or a Pair.
type Answer struct {
	Value int
	Pair  *Pair
}

// IsCompound reports whether the answer is a two-value pair.
func (a Answer) IsCompound() bool {
	return a.Pair != nil
}

func (a Answer) String() string {
	if a.Pair != nil {
		return a.Pair.Render()
	}
	return strconv.Itoa(a.Value)
}

// Question is a generated word problem. It is never mutated after a
// generator returns it.
type Question struct {
	// Text is the prompt with parameters embedded. May span several lines.
	Text string

	// Answer is the correct answer.
	Answer Answer

	// Tag is set for profit/loss style answers.
	Tag Tag

	// Key fingerprints the sampled parameters for deduplication.
	Key string

	// Suffix is appended to numeric option values, e.g. "%".
	Suffix string

	// TrailingZeroFree makes numeric distractors avoid values ending in 0.
	TrailingZeroFree bool

	Generator GeneratorID
	Variant   Variant
}

package problemgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

// classicMultipliers divide 100; X is drawn as a multiple-friendly range
// around one of them so that P·X/100 is often whole.
var classicMultipliers = []int{4, 5, 8, 10, 20, 25, 50}

var classicNames = []string{"Ravi", "Sara", "Mike", "Emma", "John", "Lisa", "David", "Maya"}

// classicPercentageGenerator is the stricter percentage family: every
// sampled count and answer avoids a trailing zero, and options carry a
// unit suffix.
func classicPercentageGenerator() *Generator {
	return newGenerator(GenPercentageClassic, "Percentages (classic)").
		on(classicNotFresh, VariantEasy, VariantEasy1, VariantEasy2).
		on(classicRoses, VariantMedium, VariantMedium1, VariantMedium2).
		on(classicRibbons, VariantHard, VariantHard1, VariantHard2).
		allowRoundDistractors()
}

func classicNotFresh(src randx.Source) *Question {
	p := randx.Pick(src, AllowedPercentages)
	m := randx.Pick(src, classicMultipliers)
	return buildClassicNotFresh(p, randx.NoTrailingZero(src, 2*m, 20*m))
}

func buildClassicNotFresh(p, x int) *Question {
	notFresh, ok := exactDiv(p*x, 100)
	if !ok {
		return nil
	}
	y := x - notFresh
	if y <= 0 || y >= x || randx.HasTrailingZero(x) || randx.HasTrailingZero(y) {
		return nil
	}
	return &Question{
		Text:   fmt.Sprintf("I bought %d apples, out of which %d were fresh.\nWhat percentage of apples are not fresh?", x, y),
		Answer: Answer{Value: p},
		Key:    fmt.Sprintf("easy-%d-%d", x, y),
		Suffix: "%",
	}
}

func classicRoses(src randx.Source) *Question {
	p := randx.Pick(src, AllowedPercentages)
	x := randx.NoTrailingZero(src, 15, 99)
	z := randx.NoTrailingZero(src, 5, 50)
	return buildClassicRoses(randx.Pick(src, classicNames), x, z, p)
}

func buildClassicRoses(name string, x, z, p int) *Question {
	finalRoses, ok := exactDiv(p*(x+z), 100)
	if !ok {
		return nil
	}
	y := finalRoses - z
	if y <= 0 || y >= x {
		return nil
	}
	if randx.HasTrailingZero(x) || randx.HasTrailingZero(y) || randx.HasTrailingZero(z) {
		return nil
	}
	pronoun := "she"
	switch name {
	case "Ravi", "Mike", "John", "David":
		pronoun = "he"
	}
	return &Question{
		Text: fmt.Sprintf("%s bought %d flowers, out of which %d are roses.\nIf %s bought %d more roses, then what is the percentage of roses?",
			name, x, y, pronoun, z),
		Answer: Answer{Value: p},
		Key:    fmt.Sprintf("medium-%d-%d-%d", x, y, z),
		Suffix: "%",
	}
}

func classicRibbons(src randx.Source) *Question {
	p := randx.Pick(src, AllowedPercentages)
	x := randx.NoTrailingZero(src, 10, 80)
	y := randx.NoTrailingZero(src, 5, 50)
	return buildClassicRibbons(x, y, p)
}

func buildClassicRibbons(x, y, p int) *Question {
	b, ok := solveRibbon(p, x, y)
	if !ok {
		return nil
	}
	if randx.HasTrailingZero(x) || randx.HasTrailingZero(y) || randx.HasTrailingZero(b) {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("Arman has %d red ribbons and %d blue ribbons.\nHow many blue ribbons should he buy so that the percentage of blue ribbons becomes %d%%?",
			x, y, p),
		Answer: Answer{Value: b},
		Key:    fmt.Sprintf("hard-%d-%d-%d", x, y, p),
		Suffix: " ribbons",
	}
}

package problemgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

// exactDiv returns n/d when d divides n exactly and d is non-zero.
func exactDiv(n, d int) (int, bool) {
	if d == 0 || n%d != 0 {
		return 0, false
	}
	return n / d, true
}

// solveRibbon returns B in (Y+B)/(X+Y+B) = P/100, i.e.
// B = (P·X + P·Y − 100·Y) / (100 − P). It reports false when the
// denominator is zero or B is not a positive whole number.
func solveRibbon(p, x, y int) (int, bool) {
	den := 100 - p
	num := p*x + p*y - 100*y
	if den <= 0 || num <= 0 {
		return 0, false
	}
	return exactDiv(num, den)
}

// heShe returns the subject pronoun used for a given first name.
func heShe(name string, feminine ...string) string {
	for _, f := range feminine {
		if f == name {
			return "she"
		}
	}
	return "he"
}

var roseBuyers = []string{"Rahul", "Priya", "Arman", "Sita", "Rohan"}

func percentageGenerator() *Generator {
	return newGenerator(GenPercentage, "Percentages").
		on(percentNotFresh, VariantEasy, VariantEasy1, VariantEasy2).
		on(percentRoses, VariantMedium, VariantMedium1, VariantMedium2).
		on(percentRibbons, VariantHard, VariantHard1, VariantHard2)
}

func percentNotFresh(src randx.Source) *Question {
	return buildNotFresh(randx.Pick(src, AllowedPercentages), randx.Int(src, 20, 100))
}

// buildNotFresh: x apples, p% of them not fresh.
func buildNotFresh(p, x int) *Question {
	notFresh, ok := exactDiv(p*x, 100)
	if !ok || notFresh <= 0 || notFresh >= x {
		return nil
	}
	y := x - notFresh
	return &Question{
		Text:   fmt.Sprintf("I bought %d apples, out of which %d were fresh.\nWhat percentage of apples are not fresh?", x, y),
		Answer: Answer{Value: p},
		Key:    fmt.Sprintf("pct_easy_%d_%d", x, y),
	}
}

func percentRoses(src randx.Source) *Question {
	name := randx.Pick(src, roseBuyers)
	return buildRoses(name, randx.Int(src, 30, 100), randx.Int(src, 5, 30), randx.Pick(src, AllowedPercentages))
}

// buildRoses: name has x flowers, some roses, then buys z more roses so
// that p% of all flowers are roses.
func buildRoses(name string, x, z, p int) *Question {
	finalRoses, ok := exactDiv(p*(x+z), 100)
	if !ok {
		return nil
	}
	y := finalRoses - z
	if y <= 0 || y >= x {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("%s bought %d flowers, out of which %d are roses.\nIf %s bought %d more roses, then what is the percentage of roses?",
			name, x, y, heShe(name, "Priya", "Sita"), z),
		Answer: Answer{Value: p},
		Key:    fmt.Sprintf("pct_med_%d_%d_%d", x, y, z),
	}
}

func percentRibbons(src randx.Source) *Question {
	return buildRibbons(randx.Int(src, 20, 50), randx.Int(src, 5, 30), randx.Pick(src, AllowedPercentages))
}

func buildRibbons(x, y, p int) *Question {
	b, ok := solveRibbon(p, x, y)
	if !ok {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("Arman has %d red ribbons and %d blue ribbons.\nHow many blue ribbons should he buy so that the percentage of blue ribbons becomes %d%%?",
			x, y, p),
		Answer: Answer{Value: b},
		Key:    fmt.Sprintf("pct_hard_%d_%d_%d", x, y, p),
	}
}

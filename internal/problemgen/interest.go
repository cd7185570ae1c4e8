package problemgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

// simpleInterest returns P·R·T/100 when it is whole.
func simpleInterest(principal, rate, years int) (int, bool) {
	return exactDiv(principal*rate*years, 100)
}

var (
	depositors     = []string{"Rahul", "Priya", "Arman", "Sita"}
	longDepositors = []string{"Rahul", "Priya", "Arman"}
)

func simpleInterestGenerator() *Generator {
	return newGenerator(GenSimpleInterest, "Simple Interest").
		on(interestOneYear, VariantEasy, VariantEasy1, VariantEasy2).
		on(interestPrincipal, VariantMedium1).
		on(interestMaturity, VariantMedium2).
		on(interestRate, VariantHard, VariantHard1, VariantHard2)
}

func interestOneYear(src randx.Source) *Question {
	p := randx.Int(src, 1000, 10000)
	r := randx.Int(src, 5, 15)
	return buildOneYear(randx.Pick(src, depositors), p, r)
}

func buildOneYear(name string, p, r int) *Question {
	si, ok := simpleInterest(p, r, 1)
	if !ok {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("%s deposits ₹%d in a bank.\nThe bank gives %d%% interest per year.\nHow much interest will %s get in 1 year?",
			name, p, r, name),
		Answer: Answer{Value: si},
		Key:    fmt.Sprintf("si_easy_%d_%d", p, r),
	}
}

func interestPrincipal(src randx.Source) *Question {
	r := randx.Int(src, 5, 15)
	t := randx.Int(src, 2, 4)
	return buildPrincipal(randx.Int(src, 1000, 8000), r, t)
}

// buildPrincipal asks for P given the maturity amount after t years.
func buildPrincipal(p, r, t int) *Question {
	si, ok := simpleInterest(p, r, t)
	if !ok {
		return nil
	}
	amount := p + si
	return &Question{
		Text: fmt.Sprintf("An amount becomes ₹%d in %d years at %d%% per year simple interest.\nWhat was the original principal amount?",
			amount, t, r),
		Answer: Answer{Value: p},
		Key:    fmt.Sprintf("si_m1_%d_%d_%d", amount, t, r),
	}
}

func interestMaturity(src randx.Source) *Question {
	p := randx.Int(src, 500, 5000)
	r := randx.Int(src, 10, 30)
	t := randx.Int(src, 2, 4)
	return buildMaturity(randx.Pick(src, longDepositors), p, r, t)
}

func buildMaturity(name string, p, r, t int) *Question {
	si, ok := simpleInterest(p, r, t)
	if !ok {
		return nil
	}
	pronoun := heShe(name, "Priya")
	return &Question{
		Text: fmt.Sprintf("%s deposits ₹%d in a bank\nwhere %s gets %d%% simple interest per year.\nHow much total amount will %s have after %d years?",
			name, p, pronoun, r, pronoun, t),
		Answer: Answer{Value: p + si},
		Key:    fmt.Sprintf("si_m2_%d_%d_%d", p, r, t),
	}
}

func interestRate(src randx.Source) *Question {
	return buildRate(randx.Int(src, 200, 1000), randx.Int(src, 10, 30))
}

// buildRate asks for R given one year's interest on p.
func buildRate(p, r int) *Question {
	si, ok := simpleInterest(p, r, 1)
	if !ok {
		return nil
	}
	return &Question{
		Text:   fmt.Sprintf("The interest on ₹%d for 1 year is ₹%d.\nWhat is the annual rate of interest?", p, si),
		Answer: Answer{Value: r},
		Key:    fmt.Sprintf("si_hard_%d_%d", p, si),
	}
}

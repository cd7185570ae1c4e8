package problemgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

// denomination is a pair of Indian coins or notes, smaller value first.
type denomination struct {
	small, large           int
	smallLabel, largeLabel string
}

func coins(small, large int, smallKind, largeKind string) denomination {
	return denomination{
		small:      small,
		large:      large,
		smallLabel: fmt.Sprintf("₹%d %s", small, smallKind),
		largeLabel: fmt.Sprintf("₹%d %s", large, largeKind),
	}
}

var cashierPairs = []denomination{
	coins(1, 2, "coins", "coins"),
	coins(1, 5, "coins", "coins"),
	coins(2, 5, "coins", "coins"),
	coins(5, 10, "coins", "notes"),
	coins(5, 20, "coins", "notes"),
	coins(10, 20, "notes", "notes"),
	coins(10, 50, "notes", "notes"),
	coins(20, 50, "notes", "notes"),
	coins(50, 100, "notes", "notes"),
	coins(100, 500, "notes", "notes"),
}

var ratioPairs = []denomination{
	coins(1, 5, "coins", "coins"),
	coins(2, 5, "coins", "coins"),
	coins(1, 10, "coins", "notes"),
	coins(2, 10, "coins", "notes"),
	coins(5, 20, "coins", "notes"),
	coins(5, 50, "coins", "notes"),
	coins(10, 50, "notes", "notes"),
	coins(10, 100, "notes", "notes"),
	coins(20, 100, "notes", "notes"),
	coins(50, 500, "notes", "notes"),
	coins(100, 500, "notes", "notes"),
}

type sackPair struct {
	item1 string
	w1    int
	item2 string
	w2    int
}

var sackPairs = []sackPair{
	{"rice", 25, "sugar", 50},
	{"rice", 50, "sugar", 25},
	{"rice", 25, "wheat", 50},
	{"wheat", 50, "sugar", 25},
	{"rice", 10, "sugar", 5},
	{"wheat", 10, "rice", 25},
	{"cement", 50, "sand", 25},
	{"rice", 5, "flour", 10},
	{"flour", 5, "sugar", 25},
	{"cement", 50, "gravel", 40},
	{"wheat", 25, "flour", 10},
	{"rice", 10, "lentils", 5},
}

var (
	boxPackers = []string{"Rahul", "Priya", "Arman"}
	savers     = []string{"Bhumika", "Priya", "Sita"}
)

func linearEquationGenerator() *Generator {
	return newGenerator(GenLinearEquation, "Linear Equations in Two Variables").
		on(linearEither(linearBuses, linearBoxes), VariantEasy).
		on(linearBuses, VariantEasy1).
		on(linearBoxes, VariantEasy2).
		on(linearEither(linearCashier, linearNotebooks), VariantMedium).
		on(linearCashier, VariantMedium1).
		on(linearNotebooks, VariantMedium2).
		on(linearRatioNotes, VariantHard1).
		on(linearSacks, VariantHard, VariantHard2)
}

// linearEither picks one of two templates per attempt.
func linearEither(a, b template) template {
	return func(src randx.Source) *Question {
		if randx.Int(src, 1, 2) == 1 {
			return a(src)
		}
		return b(src)
	}
}

func linearBuses(src randx.Source) *Question {
	red := randx.Int(src, 60, 100)
	green := randx.Int(src, 50, 90)
	nRed := randx.Int(src, 3, 7)
	nGreen := randx.Int(src, 4, 8)
	return buildBuses(red, green, nRed, nGreen)
}

func buildBuses(red, green, nRed, nGreen int) *Question {
	return &Question{
		Text: fmt.Sprintf("A Red bus has %d seats, whereas Green bus has %d seats.\nThe school arranges for %d Red buses and %d Green buses.\nHow many people can travel in total?",
			red, green, nRed, nGreen),
		Answer: Answer{Value: red*nRed + green*nGreen},
		Key:    fmt.Sprintf("le_easy1_%d_%d_%d_%d", red, green, nRed, nGreen),
	}
}

func linearBoxes(src randx.Source) *Question {
	yellow := randx.Int(src, 60, 100)
	brown := randx.Int(src, 50, 90)
	nYellow := randx.Int(src, 4, 8)
	nBrown := randx.Int(src, 5, 10)
	return buildBoxes(randx.Pick(src, boxPackers), yellow, brown, nYellow, nBrown)
}

func buildBoxes(name string, yellow, brown, nYellow, nBrown int) *Question {
	subject, object := "He", "he"
	if name == "Priya" {
		subject, object = "She", "she"
	}
	return &Question{
		Text: fmt.Sprintf("%s has two types of boxes.\nYellow boxes can hold %d books each and Brown boxes can hold %d books each. %s uses %d Yellow boxes and %d Brown boxes.\nHow many books can %s pack in total?",
			name, yellow, brown, subject, nYellow, nBrown, object),
		Answer: Answer{Value: yellow*nYellow + brown*nBrown},
		Key:    fmt.Sprintf("le_easy2_%d_%d_%d_%d", yellow, brown, nYellow, nBrown),
	}
}

func linearCashier(src randx.Source) *Question {
	d := randx.Pick(src, cashierPairs)
	count := randx.Int(src, 100, 200)
	amount := randx.Int(src, 20*d.small, d.large*count)
	return buildCashier(d, count, amount)
}

// buildCashier solves x + y = count, small·x + large·y = amount.
func buildCashier(d denomination, count, amount int) *Question {
	x, ok := exactDiv(d.large*count-amount, d.large-d.small)
	if !ok {
		return nil
	}
	y := count - x
	if x <= 0 || y <= 0 {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("A cashier has ₹%d in total. The money is only in %s and %s.\nThere are %d coins/notes altogether. How many %s and %s can she have from the following?",
			amount, d.smallLabel, d.largeLabel, count, d.smallLabel, d.largeLabel),
		Answer: Answer{Pair: &Pair{
			First:  x,
			Second: y,
			Format: "%d of " + d.smallLabel + " and %d of " + d.largeLabel,
		}},
		Key: fmt.Sprintf("le_m1_%d_%d_%d_%d", d.small, d.large, amount, count),
	}
}

func linearNotebooks(src randx.Source) *Question {
	nbPrice := randx.Int(src, 50, 100)
	penPrice := randx.Int(src, 20, 50)
	notebooks := randx.Int(src, 20, 50)
	pens := randx.Int(src, 20, 80)
	return buildNotebooks(nbPrice, penPrice, notebooks, pens)
}

// buildNotebooks derives the total from the sampled combination. Equal
// prices are rejected: every count-preserving alternative would then cost
// the same and the options could not be told apart.
func buildNotebooks(nbPrice, penPrice, notebooks, pens int) *Question {
	if nbPrice == penPrice {
		return nil
	}
	total := notebooks*nbPrice + pens*penPrice
	return &Question{
		Text: fmt.Sprintf("The price of one notebook is ₹%d and the price of one pen is ₹%d.\nWhich of the following combinations costs exactly ₹%d?",
			nbPrice, penPrice, total),
		Answer: Answer{Pair: &Pair{First: notebooks, Second: pens, Format: "%d notebooks and %d pens"}},
		Key:    fmt.Sprintf("le_m2_%d_%d_%d", nbPrice, penPrice, total),
	}
}

func linearRatioNotes(src randx.Source) *Question {
	d := randx.Pick(src, ratioPairs)
	ratio := randx.Int(src, 2, 4)
	n2 := randx.Int(src, 5, 15)
	return buildRatioNotes(randx.Pick(src, savers), d, ratio, n2)
}

// buildRatioNotes: there are ratio times as many small coins as large ones.
func buildRatioNotes(name string, d denomination, ratio, n2 int) *Question {
	n1 := ratio * n2
	total := n1*d.small + n2*d.large
	return &Question{
		Text: fmt.Sprintf("%s has ₹%d. All her money is in %s and %s.\nThe number of %s is %d times the number of %s.\nHow many %s does she have?",
			name, total, d.smallLabel, d.largeLabel, d.smallLabel, ratio, d.largeLabel, d.largeLabel),
		Answer: Answer{Value: n2},
		Key:    fmt.Sprintf("le_h1_%d_%d_%d_%d", d.small, d.large, total, ratio),
	}
}

func linearSacks(src randx.Source) *Question {
	s := randx.Pick(src, sackPairs)
	r1 := randx.Int(src, 2, 4)
	r2 := randx.Int(src, 2, 5)
	n := randx.Int(src, 50, 200)
	return buildSacks(s, r1, r2, n)
}

// buildSacks: sacks come in groups of r1 item1 to r2 item2, n groups in all.
func buildSacks(s sackPair, r1, r2, n int) *Question {
	total := s.w1*r1*n + s.w2*r2*n
	return &Question{
		Text: fmt.Sprintf("The weight of one %s sack is %dkg, and the weight of one %s sack is %dkg. For every %d %s sacks, you have %d %s sacks.\n\n"+
			"(Example: If there are %d %s sacks, then there are %d %s sacks. If there are %d %s sacks, then there are %d %s sacks, and so on.)\n\n"+
			"The total weight of all the sacks is %d kg. How many %s sacks are there?",
			s.item1, s.w1, s.item2, s.w2, r1, s.item1, r2, s.item2,
			r2, s.item2, r1, s.item1, 2*r2, s.item2, 2*r1, s.item1,
			total, s.item1),
		Answer: Answer{Value: r1 * n},
		Key:    fmt.Sprintf("le_h2_%s_%s_%d_%d_%d_%d_%d", s.item1, s.item2, s.w1, s.w2, r1, r2, total),
	}
}

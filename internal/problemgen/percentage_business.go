package problemgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

// shareContexts phrase "y out of x, what percentage?" questions.
var shareContexts = []string{
	"In a class of %d students, %d students are absent.\nWhat is the percentage of absent students?",
	"In a class of %d students, %d are girls.\nWhat is the percentage of girls in the class?",
	"Out of %d students who appeared for a test, %d students failed.\nWhat is the percentage of students who failed?",
	"A school has %d teachers. %d of them teach science.\nWhat percentage of teachers teach science?",
	"In a garden, there are %d flowers. %d of them are red.\nWhat is the percentage of red flowers?",
	"A library has %d books. %d of them are fiction.\nWhat percentage of books are fiction?",
}

var shopItems = []string{
	"jacket", "shirt", "bag", "pair of shoes", "watch",
	"saree", "kurta", "laptop bag", "sweater", "blazer",
}

type priceAction struct {
	verb  string
	label string
}

var priceActions = []priceAction{
	{verb: "gives a discount of", label: "discount"},
	{verb: "charges a tax of", label: "tax"},
	{verb: "offers a cashback of", label: "cashback"},
}

var (
	examTakers   = []string{"Aman", "Priya", "Rohan", "Sita", "Kavya", "Arjun", "Meera", "Vikram"}
	examSubjects = []string{"a test", "an exam", "a quiz", "a maths test", "a science exam", "a class test"}
)

// growthScenarios take the base value, the rate and the direction verb.
var growthScenarios = []string{
	"The population of a village is %d.\nIn one year, it %s by %d%%.\nWhat will be the new population?",
	"The population of a town is %d.\nIn one year, it %s by %d%%.\nWhat will be the new population?",
	"A company has %d employees.\nThis year, the number %s by %d%%.\nWhat is the new number of employees?",
	"The number of students in a school is %d.\nNext year, it %s by %d%%.\nWhat will be the new number of students?",
	"The price of a plot of land is ₹%d.\nIn one year, the price %s by %d%%.\nWhat is the new price?",
}

func businessPercentageGenerator() *Generator {
	return newGenerator(GenPercentageBusiness, "Percentages (business)").
		on(businessShare, VariantEasy, VariantEasy1, VariantEasy2).
		on(businessPriceChange, VariantMedium1).
		on(businessMarks, VariantMedium2).
		on(businessGrowth, VariantHard, VariantHard1, VariantHard2)
}

func businessShare(src randx.Source) *Question {
	x := randx.Int(src, 30, 100)
	y := randx.Int(src, 5, x-5)
	return buildShare(randx.Pick(src, shareContexts), x, y)
}

func buildShare(context string, x, y int) *Question {
	pct, ok := exactDiv(y*100, x)
	if !ok || randx.HasTrailingZero(pct) {
		return nil
	}
	return &Question{
		Text:   fmt.Sprintf(context, x, y),
		Answer: Answer{Value: pct},
		Key:    fmt.Sprintf("pct_sob_easy_%d_%d", x, y),
	}
}

func businessPriceChange(src randx.Source) *Question {
	item := randx.Pick(src, shopItems)
	action := randx.Pick(src, priceActions)
	return buildPriceChange(item, action, randx.NoTrailingZero(src, 200, 2000), randx.Int(src, 5, 30))
}

func buildPriceChange(item string, action priceAction, price, rate int) *Question {
	amount, ok := exactDiv(price*rate, 100)
	if !ok || randx.HasTrailingZero(amount) {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("The price of a %s is ₹%d. The shopkeeper %s %d%%.\nWhat is the amount of the %s?",
			item, price, action.verb, rate, action.label),
		Answer: Answer{Value: amount},
		Key:    fmt.Sprintf("pct_sob_m1_%d_%d_%s", price, rate, action.label),
	}
}

func businessMarks(src randx.Source) *Question {
	name := randx.Pick(src, examTakers)
	subject := randx.Pick(src, examSubjects)
	total := randx.NoTrailingZero(src, 25, 100)
	return buildMarks(name, subject, randx.Int(src, 10, total-5), total)
}

func buildMarks(name, subject string, marks, total int) *Question {
	pct, ok := exactDiv(marks*100, total)
	if !ok || randx.HasTrailingZero(pct) {
		return nil
	}
	pronoun := "his"
	switch name {
	case "Priya", "Sita", "Kavya", "Meera":
		pronoun = "her"
	}
	return &Question{
		Text:   fmt.Sprintf("In %s, %s got %d marks out of %d.\nWhat is %s percentage?", subject, name, marks, total, pronoun),
		Answer: Answer{Value: pct},
		Key:    fmt.Sprintf("pct_sob_m2_%d_%d", marks, total),
	}
}

func businessGrowth(src randx.Source) *Question {
	base := randx.NoTrailingZero(src, 500, 5000)
	rate := randx.Int(src, 5, 25)
	increase := randx.Coin(src)
	return buildGrowth(randx.Pick(src, growthScenarios), base, rate, increase)
}

func buildGrowth(scenario string, base, rate int, increase bool) *Question {
	change, ok := exactDiv(base*rate, 100)
	if !ok {
		return nil
	}
	direction, answer := "decreased", base-change
	if increase {
		direction, answer = "increased", base+change
	}
	if answer <= 0 || randx.HasTrailingZero(answer) {
		return nil
	}
	return &Question{
		Text:   fmt.Sprintf(scenario, base, direction, rate),
		Answer: Answer{Value: answer},
		Key:    fmt.Sprintf("pct_sob_hard_%d_%d_%s", base, rate, direction),
	}
}

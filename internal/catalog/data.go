package catalog

import "github.com/abhisek/quizgen/internal/problemgen"

var (
	easyMediumHard = []Difficulty{
		{problemgen.VariantEasy, "Easy"},
		{problemgen.VariantMedium, "Medium"},
		{problemgen.VariantHard, "Hard"},
	}
	easyTwoMediumsHard = []Difficulty{
		{problemgen.VariantEasy, "Easy"},
		{problemgen.VariantMedium1, "Medium 1"},
		{problemgen.VariantMedium2, "Medium 2"},
		{problemgen.VariantHard, "Hard"},
	}
	twoOfEach = []Difficulty{
		{problemgen.VariantEasy1, "Easy 1"},
		{problemgen.VariantEasy2, "Easy 2"},
		{problemgen.VariantMedium1, "Medium 1"},
		{problemgen.VariantMedium2, "Medium 2"},
		{problemgen.VariantHard1, "Hard 1"},
		{problemgen.VariantHard2, "Hard 2"},
	}
)

var (
	numberPatterns = Concept{ConceptNumberPatterns, problemgen.GenNumberPattern, easyTwoMediumsHard}
	workTime       = Concept{ConceptWorkTime, problemgen.GenWorkTime, easyMediumHard}
	linear         = Concept{ConceptLinear, problemgen.GenLinearEquation, twoOfEach}
	profitLoss     = Concept{ConceptProfitLoss, problemgen.GenProfitLoss, easyTwoMediumsHard}
	interest       = Concept{ConceptInterest, problemgen.GenSimpleInterest, easyTwoMediumsHard}

	percentages         = Concept{ConceptPercentages, problemgen.GenPercentage, easyMediumHard}
	businessPercentages = Concept{ConceptPercentages, problemgen.GenPercentageBusiness, easyTwoMediumsHard}
)

var schools = []School{
	{
		ID:       SchoolProgramming,
		Label:    "School of Programming (SOP)",
		FullName: "School Of Programming",
		Concepts: []Concept{numberPatterns, percentages, workTime, linear},
	},
	{
		ID:       SchoolBusiness,
		Label:    "School of Business (SOB)",
		FullName: "School Of Business",
		Concepts: []Concept{numberPatterns, businessPercentages, profitLoss, interest},
	},
	{
		ID:       SchoolFinance,
		Label:    "School of Finance (SOF)",
		FullName: "School Of Finance",
		Concepts: []Concept{numberPatterns, businessPercentages, profitLoss, interest},
	},
	{
		ID:       SchoolBCA,
		Label:    "BCA",
		FullName: "BCA",
		Concepts: []Concept{numberPatterns, percentages, workTime, linear},
	},
}

var titles = map[ConceptID]string{
	ConceptNumberPatterns: "Number Patterns",
	ConceptPercentages:    "Percentages",
	ConceptWorkTime:       "Work and Time",
	ConceptLinear:         "Linear Equations in Two Variables",
	ConceptProfitLoss:     "Profit and Loss",
	ConceptInterest:       "Simple Interest",
}

var explanations = map[ConceptID][]string{
	ConceptPercentages: {
		"A percentage helps us understand how much a part is of the whole.",
		`The word "percent" means "out of 100."`,
		"",
		"For example, if a school has 50 students and 10 of them are unhealthy, then the percentage of unhealthy students will be:",
		"",
		"Percentage = (Part ÷ Total) × 100",
		"       = (10 ÷ 50) × 100 = 20%",
		"",
		"Now answer the following questions.",
	},
	ConceptWorkTime: {
		"For the next questions, think in a practical way. For example, if you can plant 100 trees in 1 hour, then in 4 hours you can plant: 100 × 4 = 400 trees.",
		"",
		"This means the work done increases with time.",
		"",
		"Using the same idea, answer the following questions.",
	},
	ConceptLinear: {
		"Think of these questions like real-life situations. Two values are unknown. Use letters like x and y to represent them. Then use the given information to write an equation.",
		"",
		"Example:",
		"If the total cost of apples and oranges is Rs.100, and apples cost Rs.3 each while oranges cost Rs.2 each, the equation can be written as:",
		"3x + 2y = 100",
		"",
		"Now answer the following questions.",
	},
	ConceptProfitLoss: {
		"Profit and loss help us understand buying and selling things.",
		"",
		"   •  Cost price (CP) is the price at which something is bought.",
		"   •  Selling price (SP) is the price at which something is sold.",
		"",
		"If we sell something for more money than we bought it for, we get profit.",
		"If we sell it for less money than we bought it for, we get loss.",
		"",
		"Now answer the following questions.",
	},
	ConceptInterest: {
		"Simple interest is the extra money paid or earned on a fixed amount for a fixed time at a fixed rate.",
		"",
		"Simple Interest = Principal × Rate × Time ÷ 100",
		"",
		"   •  Principal (P) is the amount of money we first take or invest.",
		"   •  The Rate of interest (R) is the percentage of interest per year.",
		"   •  Time (T) means how many years the money is taken/lent for.",
		"",
		"Now answer the following questions.",
	},
}

package problemgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

func profitLossGenerator() *Generator {
	return newGenerator(GenProfitLoss, "Profit and Loss").
		on(profitSingleSale, VariantEasy, VariantEasy1, VariantEasy2).
		on(profitTargetPrice, VariantMedium1).
		on(profitBulkSale, VariantMedium2).
		on(profitSplitLot, VariantHard, VariantHard1, VariantHard2)
}

// signedResult turns a sell-minus-cost difference into a tagged amount.
func signedResult(diff int) (int, Tag) {
	if diff > 0 {
		return diff, TagProfit
	}
	return -diff, TagLoss
}

func profitSingleSale(src randx.Source) *Question {
	return buildSingleSale(randx.Int(src, 50, 200), randx.Int(src, 30, 250))
}

func buildSingleSale(cp, sp int) *Question {
	if cp == sp {
		return nil
	}
	amount, tag := signedResult(sp - cp)
	return &Question{
		Text:   fmt.Sprintf("Anwar buys a notebook for ₹%d and sells it for ₹%d.\nDid he make a profit or a loss? How much?", cp, sp),
		Answer: Answer{Value: amount},
		Tag:    tag,
		Key:    fmt.Sprintf("pl_easy_%d_%d", cp, sp),
	}
}

func profitTargetPrice(src randx.Source) *Question {
	return buildTargetPrice(randx.Int(src, 100, 800), randx.Int(src, 50, 300))
}

func buildTargetPrice(cp, profit int) *Question {
	return &Question{
		Text: fmt.Sprintf("Riya buys a chair for ₹%d.\nShe wants to make an exact profit of ₹%d.\nAt what price should she sell the chair?",
			cp, profit),
		Answer: Answer{Value: cp + profit},
		Key:    fmt.Sprintf("pl_m1_%d_%d", cp, profit),
	}
}

func profitBulkSale(src randx.Source) *Question {
	return buildBulkSale(randx.Int(src, 3, 8), randx.Int(src, 20, 60), randx.Int(src, 100, 400))
}

func buildBulkSale(kg, perKg, spTotal int) *Question {
	diff := spTotal - kg*perKg
	if diff == 0 {
		return nil
	}
	amount, tag := signedResult(diff)
	return &Question{
		Text: fmt.Sprintf("A trader buys %d kg of oranges at ₹%d per kg\nand sells all the oranges for ₹%d.\nFind the profit or loss.",
			kg, perKg, spTotal),
		Answer: Answer{Value: amount},
		Tag:    tag,
		Key:    fmt.Sprintf("pl_m2_%d_%d_%d", kg, perKg, spTotal),
	}
}

func profitSplitLot(src randx.Source) *Question {
	n := randx.Int(src, 10, 20)
	cp := randx.Int(src, 15, 30)
	n2 := randx.Int(src, n/2, n-2)
	sp1 := randx.Int(src, 12, 35)
	sp2 := randx.Int(src, 12, 35)
	return buildSplitLot(n, cp, n2, sp1, sp2)
}

// buildSplitLot: n pens bought at cp each; n2 sold at sp1, the rest at sp2.
func buildSplitLot(n, cp, n2, sp1, sp2 int) *Question {
	diff := n2*sp1 + (n-n2)*sp2 - n*cp
	if diff == 0 {
		return nil
	}
	amount, tag := signedResult(diff)
	return &Question{
		Text: fmt.Sprintf("A shopkeeper buys %d pens at ₹%d per pen.\nHe sells %d pens at ₹%d per pen and\nthe remaining %d pens at ₹%d per pen.\nWhat is his total profit or loss?",
			n, cp, n2, sp1, n-n2, sp2),
		Answer: Answer{Value: amount},
		Tag:    tag,
		Key:    fmt.Sprintf("pl_hard_%d_%d_%d_%d_%d", n, cp, n2, sp1, sp2),
	}
}

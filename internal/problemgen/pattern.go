package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/quizgen/internal/randx"
)

func numberPatternGenerator() *Generator {
	return newGenerator(GenNumberPattern, "Number Patterns").
		on(patternArithmetic, VariantEasy, VariantEasy1, VariantEasy2).
		on(patternGrowingGap, VariantMedium1).
		on(patternSquares, VariantMedium2).
		on(patternInterleaved, VariantHard, VariantHard1, VariantHard2)
}

// nextTerm renders the shared "what comes next" prompt.
func nextTerm(terms ...int) string {
	parts := make([]string, 0, len(terms)+1)
	for _, t := range terms {
		parts = append(parts, strconv.Itoa(t))
	}
	parts = append(parts, "___")
	return "What will be the next term in the pattern?\n" + strings.Join(parts, ", ")
}

func patternArithmetic(src randx.Source) *Question {
	return buildArithmetic(randx.NoTrailingZero(src, 1, 50), randx.Int(src, 2, 9))
}

func buildArithmetic(a, d int) *Question {
	return &Question{
		Text:   nextTerm(a, a+d, a+2*d, a+3*d),
		Answer: Answer{Value: a + 4*d},
		Key:    fmt.Sprintf("np_easy_%d_%d", a, d),
	}
}

func patternGrowingGap(src randx.Source) *Question {
	return buildGrowingGap(randx.NoTrailingZero(src, 1, 50))
}

// buildGrowingGap: gaps of 5, 7, 9, then 11.
func buildGrowingGap(a int) *Question {
	return &Question{
		Text:   nextTerm(a, a+5, a+12, a+21),
		Answer: Answer{Value: a + 32},
		Key:    fmt.Sprintf("np_m1_%d", a),
	}
}

func patternSquares(src randx.Source) *Question {
	return buildSquares(randx.Int(src, 2, 8))
}

func buildSquares(n int) *Question {
	sq := func(k int) int { return k * k }
	return &Question{
		Text:   nextTerm(sq(n), sq(n+1), sq(n+2), sq(n+3)),
		Answer: Answer{Value: sq(n + 4)},
		Key:    fmt.Sprintf("np_m2_%d", n),
	}
}

func patternInterleaved(src randx.Source) *Question {
	return buildInterleaved(randx.Int(src, 1, 5), randx.Int(src, 1, 5))
}

// buildInterleaved: two interleaved chains. Odd positions double
// (x1, 2·x1, 4·x1), even positions triple (x2, 3·x2, 9·x2).
func buildInterleaved(x1, x2 int) *Question {
	return &Question{
		Text:   nextTerm(x1, x2, 2*x1, 3*x2, 4*x1),
		Answer: Answer{Value: 9 * x2},
		Key:    fmt.Sprintf("np_hard_%d_%d", x1, x2),
	}
}

package problemgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

// All three templates rest on taps₁·minutes₁·glasses₂ = taps₂·minutes₂·glasses₁.

func workTimeGenerator() *Generator {
	return newGenerator(GenWorkTime, "Work and Time").
		on(workFewerTaps, VariantEasy, VariantEasy1, VariantEasy2).
		on(workTapsNeeded, VariantMedium, VariantMedium1, VariantMedium2).
		on(workNewJob, VariantHard, VariantHard1, VariantHard2)
}

func workFewerTaps(src randx.Source) *Question {
	g := randx.Int(src, 10, 50)
	t1 := randx.Int(src, 2, 8)
	m1 := randx.Int(src, 5, 30)
	t2 := randx.Int(src, 2, 8)
	return buildFewerTaps(g, t1, m1, t2)
}

// buildFewerTaps solves for the minutes t2 taps need for the same job.
func buildFewerTaps(g, t1, m1, t2 int) *Question {
	if t1 == t2 {
		return nil
	}
	m2, ok := exactDiv(t1*m1, t2)
	if !ok || m2 <= 0 {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("To fill %d glasses of water, %d taps take %d minutes.\nThen with %d taps, how much time is needed to fill %d glasses?",
			g, t1, m1, t2, g),
		Answer: Answer{Value: m2},
		Key:    fmt.Sprintf("wt_easy_%d_%d_%d_%d", g, t1, m1, t2),
	}
}

func workTapsNeeded(src randx.Source) *Question {
	g1 := randx.Int(src, 10, 40)
	t1 := randx.Int(src, 2, 6)
	m1 := randx.Int(src, 5, 25)
	g2 := randx.Int(src, 10, 40)
	m2 := randx.Int(src, 5, 25)
	return buildTapsNeeded(g1, t1, m1, g2, m2)
}

// buildTapsNeeded solves for the taps needed to fill g2 glasses in m2 minutes.
func buildTapsNeeded(g1, t1, m1, g2, m2 int) *Question {
	t2, ok := exactDiv(t1*m1*g2, g1*m2)
	if !ok || t2 <= 0 {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("To fill %d glasses, %d taps take %d minutes.\nTo fill %d glasses in %d minutes, how many taps are needed?",
			g1, t1, m1, g2, m2),
		Answer: Answer{Value: t2},
		Key:    fmt.Sprintf("wt_med_%d_%d_%d_%d_%d", g1, t1, m1, g2, m2),
	}
}

func workNewJob(src randx.Source) *Question {
	g1 := randx.Int(src, 10, 30)
	t1 := randx.Int(src, 2, 6)
	m1 := randx.Int(src, 5, 20)
	g2 := randx.Int(src, 10, 30)
	t2 := randx.Int(src, 2, 6)
	return buildNewJob(g1, t1, m1, g2, t2)
}

// buildNewJob solves for the minutes t2 taps need to fill g2 glasses.
func buildNewJob(g1, t1, m1, g2, t2 int) *Question {
	m2, ok := exactDiv(t1*m1*g2, g1*t2)
	if !ok || m2 <= 0 {
		return nil
	}
	return &Question{
		Text: fmt.Sprintf("To fill %d glasses, %d taps take %d minutes.\nWith %d taps, how much time is needed to fill %d glasses?",
			g1, t1, m1, t2, g2),
		Answer: Answer{Value: m2},
		Key:    fmt.Sprintf("wt_hard_%d_%d_%d_%d_%d", g1, t1, m1, g2, t2),
	}
}

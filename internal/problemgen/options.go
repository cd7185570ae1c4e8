package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/quizgen/internal/randx"
)

// Letters label the four options in display order.
var Letters = []string{"A", "B", "C", "D"}

// Option is one labeled multiple-choice entry.
type Option struct {
	Letter  string
	Text    string
	Correct bool
}

// OptionSet holds four labeled options, exactly one of them correct.
type OptionSet struct {
	Options       []Option
	CorrectLetter string
}

// Correct returns the correct option.
func (s OptionSet) Correct() Option {
	for _, o := range s.Options {
		if o.Correct {
			return o
		}
	}
	return Option{}
}

// Lookup returns the option carrying letter (case-insensitive).
func (s OptionSet) Lookup(letter string) (Option, bool) {
	for _, o := range s.Options {
		if strings.EqualFold(o.Letter, letter) {
			return o, true
		}
	}
	return Option{}, false
}

// distractorRadius is max(10, round(0.3·c)).
func distractorRadius(c int) int {
	r := (3*c + 5) / 10
	if r < 10 {
		return 10
	}
	return r
}

// numericDistractors returns up to three wrong values near c. It may return
// fewer when attempts run out.
func numericDistractors(src randx.Source, c int, avoidRound bool, attempts int) []int {
	r := distractorRadius(c)
	seen := map[int]bool{c: true}
	out := make([]int, 0, 3)
	for i := 0; i < attempts && len(out) < 3; i++ {
		off := randx.Int(src, 1, r)
		d := c + off
		if randx.Coin(src) {
			d = c - off
		}
		if d <= 0 || seen[d] || (avoidRound && randx.HasTrailingZero(d)) {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// topUpDistractors extends ds to three values by walking outward from c
// (c+1, c−1, c+2, ...) under the same filters.
func topUpDistractors(c int, ds []int, avoidRound bool) []int {
	seen := map[int]bool{c: true}
	for _, d := range ds {
		seen[d] = true
	}
	for step := 1; len(ds) < 3; step++ {
		for _, d := range []int{c + step, c - step} {
			if len(ds) == 3 || d <= 0 || seen[d] || (avoidRound && randx.HasTrailingZero(d)) {
				continue
			}
			seen[d] = true
			ds = append(ds, d)
		}
	}
	return ds
}

// pairDistractors moves an offset in [5,20] between the two counts, keeping
// their sum. Each of three tries gets up to randx.MaxResamples draws.
func pairDistractors(src randx.Source, p Pair) []Pair {
	seen := map[Pair]bool{p: true}
	var out []Pair
	for range 3 {
		for range randx.MaxResamples {
			off := randx.Int(src, 5, 20)
			v := Pair{First: p.First - off, Second: p.Second + off, Format: p.Format}
			if randx.Coin(src) {
				v = Pair{First: p.First + off, Second: p.Second - off, Format: p.Format}
			}
			if v.First <= 0 || v.Second <= 0 {
				continue
			}
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
			break
		}
	}
	return out
}

// moneyText renders a tagged amount, e.g. "Profit of ₹25".
func moneyText(tag Tag, v int) string {
	return fmt.Sprintf("%s of ₹%d", tag.Label(), v)
}

// AnswerText renders the correct answer the way its option displays it.
func AnswerText(q *Question) string {
	switch {
	case q.Answer.Pair != nil:
		return q.Answer.Pair.Render()
	case q.Tag != TagNone:
		return moneyText(q.Tag, q.Answer.Value)
	default:
		return strconv.Itoa(q.Answer.Value) + q.Suffix
	}
}

// SynthesizeOptions builds the shuffled A–D option set for q. Numeric
// answers get nearby distractors; compound answers get sum-preserving
// variants padded with labeled copies when too few distinct ones exist.
func SynthesizeOptions(src randx.Source, q *Question, attempts int) OptionSet {
	if attempts <= 0 {
		attempts = DefaultConfig().DistractorAttempts
	}
	correct := AnswerText(q)
	texts := []string{correct}

	if p := q.Answer.Pair; p != nil {
		for _, v := range pairDistractors(src, *p) {
			texts = append(texts, v.Render())
		}
		for n := 1; len(texts) < len(Letters); n++ {
			suffix := " (variant)"
			if n > 1 {
				suffix = fmt.Sprintf(" (variant %d)", n)
			}
			texts = append(texts, correct+suffix)
		}
	} else {
		c := q.Answer.Value
		ds := numericDistractors(src, c, q.TrailingZeroFree, attempts)
		ds = topUpDistractors(c, ds, q.TrailingZeroFree)
		for _, d := range ds {
			switch {
			case q.Tag != TagNone:
				tag := TagLoss
				if randx.Coin(src) {
					tag = TagProfit
				}
				texts = append(texts, moneyText(tag, d))
			default:
				texts = append(texts, strconv.Itoa(d)+q.Suffix)
			}
		}
	}

	shuffled := randx.Shuffle(src, texts)
	set := OptionSet{Options: make([]Option, len(shuffled))}
	for i, t := range shuffled {
		set.Options[i] = Option{Letter: Letters[i], Text: t, Correct: t == correct}
		if t == correct {
			set.CorrectLetter = Letters[i]
		}
	}
	return set
}

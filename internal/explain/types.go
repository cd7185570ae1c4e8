package explain

import (
	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/problemgen"
)

// Problem is the question to explain together with its known answer.
type Problem struct {
	Concept string
	Text    string
	Answer  string
	Options []problemgen.Option
}

// FromQuestion builds a Problem from a freshly generated question.
func FromQuestion(concept catalog.ConceptID, q *problemgen.Question, set problemgen.OptionSet) Problem {
	return Problem{
		Concept: catalog.Title(concept),
		Text:    q.Text,
		Answer:  problemgen.AnswerText(q),
		Options: set.Options,
	}
}

// FromEntry builds a Problem from a paper entry.
func FromEntry(e paper.Entry) Problem {
	return Problem{
		Concept: catalog.Title(e.Concept),
		Text:    e.Text,
		Answer:  e.Answer,
		Options: e.Options,
	}
}

// Solution is a worked explanation of one question.
type Solution struct {
	RequestID string
	Steps     []string
	Answer    string
	Tip       string

	// Agrees reports whether the model's final answer carries the same
	// numbers as the known answer.
	Agrees bool

	Model string
	Usage llm.Usage
}

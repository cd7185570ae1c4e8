// Package paper collects selected questions into named question papers
// for the current session.
package paper

import (
	"errors"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/store"
)

var (
	ErrEmptySetName = errors.New("set name is required")
	ErrExists       = errors.New("paper already exists")
	ErrNotFound     = errors.New("paper not found")
	ErrNoActive     = errors.New("no active paper")
	ErrNoQuestions  = errors.New("no questions selected")
	ErrBadIndex     = errors.New("question index out of range")
)

// ID builds a paper id from its school and set name, e.g. "SOP A".
func ID(school catalog.SchoolID, setName string) string {
	return string(school) + " " + setName
}

// Entry is a question copied into a paper with its options fixed.
type Entry struct {
	ID            string
	Concept       catalog.ConceptID
	Variant       problemgen.Variant
	Generator     problemgen.GeneratorID
	Key           string
	Text          string
	Answer        string
	Options       []problemgen.Option
	CorrectLetter string
}

// NewEntry copies q and its option set into an entry.
func NewEntry(concept catalog.ConceptID, q *problemgen.Question, set problemgen.OptionSet) Entry {
	opts := make([]problemgen.Option, len(set.Options))
	copy(opts, set.Options)
	return Entry{
		Concept:       concept,
		Variant:       q.Variant,
		Generator:     q.Generator,
		Key:           q.Key,
		Text:          q.Text,
		Answer:        problemgen.AnswerText(q),
		Options:       opts,
		CorrectLetter: set.CorrectLetter,
	}
}

// Paper is a question paper for one school and set.
type Paper struct {
	ID      string
	School  catalog.SchoolID
	SetName string
	Entries []Entry
}

// Summary is a paper as shown in the paper list.
type Summary struct {
	ID        string
	School    catalog.SchoolID
	SetName   string
	Questions int
	Active    bool
}

func (e Entry) record(school catalog.SchoolID) store.QuestionRecord {
	opts := make([]store.OptionRecord, len(e.Options))
	for i, o := range e.Options {
		opts[i] = store.OptionRecord{Letter: o.Letter, Text: o.Text}
	}
	return store.QuestionRecord{
		ID:            e.ID,
		School:        string(school),
		Concept:       string(e.Concept),
		Variant:       string(e.Variant),
		Generator:     string(e.Generator),
		ParamKey:      e.Key,
		Text:          e.Text,
		AnswerText:    e.Answer,
		Options:       opts,
		CorrectLetter: e.CorrectLetter,
	}
}

func entryFromRecord(r store.QuestionRecord) Entry {
	opts := make([]problemgen.Option, len(r.Options))
	for i, o := range r.Options {
		opts[i] = problemgen.Option{Letter: o.Letter, Text: o.Text, Correct: o.Letter == r.CorrectLetter}
	}
	return Entry{
		ID:            r.ID,
		Concept:       catalog.ConceptID(r.Concept),
		Variant:       problemgen.Variant(r.Variant),
		Generator:     problemgen.GeneratorID(r.Generator),
		Key:           r.ParamKey,
		Text:          r.Text,
		Answer:        r.AnswerText,
		Options:       opts,
		CorrectLetter: r.CorrectLetter,
	}
}

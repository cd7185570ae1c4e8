// Package catalog describes which concepts and difficulty variants each
// school track offers, and the display text used for them in papers.
package catalog

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/problemgen"
)

// SchoolID is the short key of a school track, e.g. "SOP".
type SchoolID string

const (
	SchoolProgramming SchoolID = "SOP"
	SchoolBusiness    SchoolID = "SOB"
	SchoolFinance     SchoolID = "SOF"
	SchoolBCA         SchoolID = "BCA"
)

// ConceptID names a concept, e.g. "simple interest".
type ConceptID string

const (
	ConceptNumberPatterns ConceptID = "number patterns"
	ConceptPercentages    ConceptID = "percentages"
	ConceptWorkTime       ConceptID = "work and time"
	ConceptLinear         ConceptID = "linear equations in two variables"
	ConceptProfitLoss     ConceptID = "profit and loss"
	ConceptInterest       ConceptID = "simple interest"
)

// Difficulty pairs a generator variant with the label shown to users.
type Difficulty struct {
	Variant problemgen.Variant
	Label   string
}

// Concept is one concept as offered by a school.
type Concept struct {
	ID           ConceptID
	Generator    problemgen.GeneratorID
	Difficulties []Difficulty
}

// School is a track with its ordered concepts.
type School struct {
	ID       SchoolID
	Label    string
	FullName string
	Concepts []Concept
}

// Concept returns the school's concept with the given id.
func (s School) Concept(id ConceptID) (Concept, bool) {
	for _, c := range s.Concepts {
		if c.ID == id {
			return c, true
		}
	}
	return Concept{}, false
}

// ConceptOrder returns the concept ids in paper section order.
func (s School) ConceptOrder() []ConceptID {
	out := make([]ConceptID, len(s.Concepts))
	for i, c := range s.Concepts {
		out[i] = c.ID
	}
	return out
}

// Difficulty returns the difficulty entry for v.
func (c Concept) Difficulty(v problemgen.Variant) (Difficulty, bool) {
	for _, d := range c.Difficulties {
		if d.Variant == v {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Schools returns all schools in display order.
func Schools() []School {
	out := make([]School, len(schools))
	copy(out, schools)
	return out
}

// GetSchool returns the school with the given id.
func GetSchool(id SchoolID) (School, error) {
	for _, s := range schools {
		if s.ID == id {
			return s, nil
		}
	}
	return School{}, fmt.Errorf("school %q not found", id)
}

// Resolve finds the concept of a school and checks that v is offered.
func Resolve(school SchoolID, concept ConceptID, v problemgen.Variant) (Concept, error) {
	s, err := GetSchool(school)
	if err != nil {
		return Concept{}, err
	}
	c, ok := s.Concept(concept)
	if !ok {
		return Concept{}, fmt.Errorf("school %s has no concept %q", school, concept)
	}
	if _, ok := c.Difficulty(v); !ok {
		return Concept{}, fmt.Errorf("concept %q of %s has no difficulty %q", concept, school, v)
	}
	return c, nil
}

// Title returns the display title of a concept.
func Title(id ConceptID) string {
	if t, ok := titles[id]; ok {
		return t
	}
	return string(id)
}

// Explanation returns the introduction printed above a concept's section.
// An empty string paragraph is a blank line. Number patterns have none.
func Explanation(id ConceptID) []string {
	return explanations[id]
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/session"
)

// addSelectionFlags registers the school/concept/difficulty/count flags.
func addSelectionFlags(c *cobra.Command, count int) {
	c.Flags().String("school", string(catalog.SchoolProgramming), "School track: SOP, SOB, SOF or BCA")
	c.Flags().String("concept", "", "Concept, e.g. \"percentages\" or \"simple interest\"")
	c.Flags().String("difficulty", string(problemgen.VariantEasy), "Difficulty, e.g. \"easy only\" or \"medium 2\"")
	c.Flags().Int("count", count, "Number of questions")
}

// selectionFromFlags builds a request from the selection flags.
func selectionFromFlags(c *cobra.Command) (session.Request, error) {
	school, _ := c.Flags().GetString("school")
	concept, _ := c.Flags().GetString("concept")
	difficulty, _ := c.Flags().GetString("difficulty")
	count, _ := c.Flags().GetInt("count")
	return parseRequest(school, concept, difficulty, count)
}

func parseRequest(school, concept, difficulty string, count int) (session.Request, error) {
	s, err := parseSchool(school)
	if err != nil {
		return session.Request{}, err
	}
	c, err := parseConcept(s, concept)
	if err != nil {
		return session.Request{}, err
	}
	v, err := parseDifficulty(c, difficulty)
	if err != nil {
		return session.Request{}, err
	}
	return session.Request{School: s.ID, Concept: c.ID, Variant: v, Count: count}, nil
}

func parseSchool(s string) (catalog.School, error) {
	return catalog.GetSchool(catalog.SchoolID(strings.ToUpper(strings.TrimSpace(s))))
}

// parseConcept matches a concept id or display title, ignoring case.
func parseConcept(school catalog.School, s string) (catalog.Concept, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return catalog.Concept{}, fmt.Errorf("--concept is required (one of %s)", conceptList(school))
	}
	for _, c := range school.Concepts {
		if strings.EqualFold(string(c.ID), s) || strings.EqualFold(catalog.Title(c.ID), s) {
			return c, nil
		}
	}
	return catalog.Concept{}, fmt.Errorf("school %s has no concept %q (one of %s)", school.ID, s, conceptList(school))
}

// parseDifficulty accepts a variant ("medium 2") or its label ("Medium 2").
func parseDifficulty(c catalog.Concept, s string) (problemgen.Variant, error) {
	s = strings.TrimSpace(s)
	var labels []string
	for _, d := range c.Difficulties {
		if strings.EqualFold(string(d.Variant), s) || strings.EqualFold(d.Label, s) {
			return d.Variant, nil
		}
		labels = append(labels, string(d.Variant))
	}
	return "", fmt.Errorf("concept %q has no difficulty %q (one of %s)", c.ID, s, strings.Join(labels, ", "))
}

func conceptList(school catalog.School) string {
	ids := make([]string, len(school.Concepts))
	for i, c := range school.Concepts {
		ids[i] = strconv.Quote(string(c.ID))
	}
	return strings.Join(ids, ", ")
}

// parseSectionSpec parses "concept:difficulty:count" for the paper command.
func parseSectionSpec(school catalog.School, spec string) (session.Request, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return session.Request{}, fmt.Errorf("section %q: want concept:difficulty:count", spec)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || n < 1 {
		return session.Request{}, fmt.Errorf("section %q: count must be a positive number", spec)
	}
	return parseRequest(string(school.ID), parts[0], parts[1], n)
}

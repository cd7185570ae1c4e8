package catalog

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/problemgen"
)

// Validate checks every school entry against the registered generators.
// Returns a combined error describing all problems found, or nil if valid.
func Validate() error {
	return validateSchools(schools)
}

func validateSchools(list []School) error {
	var errs []string

	ids := make(map[SchoolID]bool, len(list))
	for _, s := range list {
		if ids[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate school ID: %q", s.ID))
		}
		ids[s.ID] = true

		seen := make(map[ConceptID]bool, len(s.Concepts))
		for _, c := range s.Concepts {
			if seen[c.ID] {
				errs = append(errs, fmt.Sprintf("school %s lists concept %q twice", s.ID, c.ID))
			}
			seen[c.ID] = true

			gen, err := problemgen.Lookup(c.Generator)
			if err != nil {
				errs = append(errs, fmt.Sprintf("school %s concept %q: %v", s.ID, c.ID, err))
				continue
			}
			if len(c.Difficulties) == 0 {
				errs = append(errs, fmt.Sprintf("school %s concept %q offers no difficulty", s.ID, c.ID))
			}
			for _, d := range c.Difficulties {
				if !gen.Supports(d.Variant) {
					errs = append(errs, fmt.Sprintf("school %s concept %q: generator %s has no %q template", s.ID, c.ID, c.Generator, d.Variant))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

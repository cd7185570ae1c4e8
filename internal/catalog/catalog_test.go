package catalog

import (
	"strings"
	"testing"

	"github.com/abhisek/quizgen/internal/problemgen"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidate_ReportsProblems(t *testing.T) {
	bad := []School{{
		ID: "X",
		Concepts: []Concept{
			{ID: ConceptProfitLoss, Generator: problemgen.GenProfitLoss, Difficulties: []Difficulty{{problemgen.VariantMedium, "Medium"}}},
			{ID: ConceptProfitLoss, Generator: "missing"},
		},
	}}
	err := validateSchools(bad)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{`has no "medium only" template`, "twice", "unknown generator"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestSchools_Order(t *testing.T) {
	var ids []SchoolID
	for _, s := range Schools() {
		ids = append(ids, s.ID)
	}
	want := []SchoolID{SchoolProgramming, SchoolBusiness, SchoolFinance, SchoolBCA}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("school %d = %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestConceptOrder(t *testing.T) {
	tests := []struct {
		school SchoolID
		want   []ConceptID
	}{
		{SchoolProgramming, []ConceptID{ConceptNumberPatterns, ConceptPercentages, ConceptWorkTime, ConceptLinear}},
		{SchoolFinance, []ConceptID{ConceptNumberPatterns, ConceptPercentages, ConceptProfitLoss, ConceptInterest}},
	}
	for _, tt := range tests {
		s, err := GetSchool(tt.school)
		if err != nil {
			t.Fatal(err)
		}
		got := s.ConceptOrder()
		if strings.Join(conceptStrings(got), ",") != strings.Join(conceptStrings(tt.want), ",") {
			t.Errorf("%s: got %v, want %v", tt.school, got, tt.want)
		}
	}
}

func conceptStrings(ids []ConceptID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func TestResolve(t *testing.T) {
	c, err := Resolve(SchoolBusiness, ConceptPercentages, problemgen.VariantMedium1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Generator != problemgen.GenPercentageBusiness {
		t.Errorf("SOB percentages should use the business generator, got %s", c.Generator)
	}

	c, err = Resolve(SchoolBCA, ConceptPercentages, problemgen.VariantMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Generator != problemgen.GenPercentage {
		t.Errorf("BCA percentages should use the standard generator, got %s", c.Generator)
	}

	if _, err := Resolve(SchoolBCA, ConceptPercentages, problemgen.VariantMedium1); err == nil {
		t.Error("BCA percentages have no Medium 1")
	}
	if _, err := Resolve(SchoolProgramming, ConceptInterest, problemgen.VariantEasy); err == nil {
		t.Error("SOP has no simple interest")
	}
	if _, err := Resolve("MBA", ConceptInterest, problemgen.VariantEasy); err == nil {
		t.Error("unknown school must fail")
	}
}

func TestTitleAndExplanation(t *testing.T) {
	if got := Title(ConceptLinear); got != "Linear Equations in Two Variables" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("geometry"); got != "geometry" {
		t.Errorf("unknown concept title should fall back to its id, got %q", got)
	}
	if len(Explanation(ConceptNumberPatterns)) != 0 {
		t.Error("number patterns have no explanation")
	}
	if ex := Explanation(ConceptInterest); len(ex) == 0 || !strings.HasPrefix(ex[0], "Simple interest") {
		t.Errorf("unexpected interest explanation: %v", ex)
	}
}

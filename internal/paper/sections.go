package paper

import "github.com/abhisek/quizgen/internal/catalog"

// Item is an entry with its printed number and its position in the paper.
type Item struct {
	Number int
	Index  int
	Entry  Entry
}

// Section groups a paper's entries of one concept.
type Section struct {
	Concept     catalog.ConceptID
	Title       string
	Explanation []string
	Items       []Item
}

// Sections groups entries by concept in the school's concept order.
// Concepts the school does not list follow in first-seen order.
// Numbering runs across sections starting at 1.
func (p *Paper) Sections() []Section {
	grouped := make(map[catalog.ConceptID][]Item)
	var seen []catalog.ConceptID
	for i, e := range p.Entries {
		if _, ok := grouped[e.Concept]; !ok {
			seen = append(seen, e.Concept)
		}
		grouped[e.Concept] = append(grouped[e.Concept], Item{Index: i, Entry: e})
	}

	var order []catalog.ConceptID
	if s, err := catalog.GetSchool(p.School); err == nil {
		order = s.ConceptOrder()
	}
	listed := make(map[catalog.ConceptID]bool, len(order))
	for _, c := range order {
		listed[c] = true
	}
	for _, c := range seen {
		if !listed[c] {
			order = append(order, c)
		}
	}

	var out []Section
	n := 1
	for _, c := range order {
		items := grouped[c]
		if len(items) == 0 {
			continue
		}
		for i := range items {
			items[i].Number = n
			n++
		}
		out = append(out, Section{
			Concept:     c,
			Title:       catalog.Title(c),
			Explanation: catalog.Explanation(c),
			Items:       items,
		})
	}
	return out
}

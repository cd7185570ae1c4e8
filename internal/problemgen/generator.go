package problemgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/quizgen/internal/randx"
)

// ErrUnknownGenerator is returned when a GeneratorID is not registered.
var ErrUnknownGenerator = errors.New("unknown generator")

// template makes one attempt at an instance. It returns nil when the draw is
// rejected (non-integral, out of order, trailing zero, ...). The returned
// question must carry its Key; the generator loop handles deduplication.
type template func(src randx.Source) *Question

// Generator produces questions for one concept. Each supported Variant maps
// to exactly one template.
type Generator struct {
	ID        GeneratorID
	Name      string
	variants  []Variant
	templates map[Variant]template

	// roundDistractors allows numeric distractors ending in 0.
	roundDistractors bool
}

func newGenerator(id GeneratorID, name string) *Generator {
	return &Generator{
		ID:        id,
		Name:      name,
		templates: make(map[Variant]template),
	}
}

// allowRoundDistractors turns off trailing-zero filtering of distractors.
func (g *Generator) allowRoundDistractors() *Generator {
	g.roundDistractors = true
	return g
}

// on registers tmpl for each of the given variants.
func (g *Generator) on(tmpl template, variants ...Variant) *Generator {
	for _, v := range variants {
		if _, dup := g.templates[v]; !dup {
			g.variants = append(g.variants, v)
		}
		g.templates[v] = tmpl
	}
	return g
}

// Variants returns the supported variants in registration order.
func (g *Generator) Variants() []Variant {
	out := make([]Variant, len(g.variants))
	copy(out, g.variants)
	return out
}

// Supports reports whether v selects a template.
func (g *Generator) Supports(v Variant) bool {
	_, ok := g.templates[v]
	return ok
}

// Generate makes up to attempts draws and returns the first accepted
// question whose key the ledger had not seen. It returns nil when the
// budget runs out or v is not supported.
func (g *Generator) Generate(src randx.Source, ledger *Ledger, v Variant, attempts int) *Question {
	tmpl, ok := g.templates[v]
	if !ok {
		return nil
	}
	for range attempts {
		q := tmpl(src)
		if q == nil {
			continue
		}
		if !ledger.TryReserve(q.Key) {
			continue
		}
		q.Generator = g.ID
		q.Variant = v
		q.TrailingZeroFree = !g.roundDistractors
		return q
	}
	return nil
}

var registry = map[GeneratorID]*Generator{}

var registryOrder []GeneratorID

func register(g *Generator) {
	if _, dup := registry[g.ID]; dup {
		panic(fmt.Sprintf("problemgen: generator %q registered twice", g.ID))
	}
	registry[g.ID] = g
	registryOrder = append(registryOrder, g.ID)
}

// Lookup returns the generator registered under id.
func Lookup(id GeneratorID) (*Generator, error) {
	g, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, id)
	}
	return g, nil
}

// Generators returns all registered generators in registration order.
func Generators() []*Generator {
	out := make([]*Generator, 0, len(registryOrder))
	for _, id := range registryOrder {
		out = append(out, registry[id])
	}
	return out
}

func init() {
	register(numberPatternGenerator())
	register(percentageGenerator())
	register(classicPercentageGenerator())
	register(businessPercentageGenerator())
	register(workTimeGenerator())
	register(profitLossGenerator())
	register(simpleInterestGenerator())
	register(linearEquationGenerator())
}

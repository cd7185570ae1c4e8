// Package generate is the question generation flow: pick a school, a
// concept and a difficulty, ask for a count, then browse the batch.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/practice"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// MaxCount is the largest batch the screen asks for.
const MaxCount = 50

type stage int

const (
	stageSchool stage = iota
	stageConcept
	stageDifficulty
	stageCount
	stageResults
)

type (
	schoolPickedMsg     struct{ school catalog.School }
	conceptPickedMsg    struct{ concept catalog.Concept }
	difficultyPickedMsg struct{ difficulty catalog.Difficulty }
	generatedMsg        struct {
		draw *session.Draw
		err  error
	}
)

// GenerateScreen walks through the selections and shows the batch.
type GenerateScreen struct {
	sess  *session.Session
	stage stage

	menu  components.Menu
	input components.TextInput

	school     catalog.School
	concept    catalog.Concept
	difficulty catalog.Difficulty

	busy   bool
	draw   *session.Draw
	cursor int
	picked map[int]bool
	status string
	err    error
}

var (
	_ screen.Screen          = (*GenerateScreen)(nil)
	_ screen.Capturer        = (*GenerateScreen)(nil)
	_ screen.KeyHintProvider = (*GenerateScreen)(nil)
)

// New creates a GenerateScreen starting at school selection.
func New(sess *session.Session) *GenerateScreen {
	g := &GenerateScreen{sess: sess}
	g.toSchools()
	return g
}

func (g *GenerateScreen) toSchools() {
	g.stage = stageSchool
	var items []components.MenuItem
	for _, s := range catalog.Schools() {
		items = append(items, components.MenuItem{
			Label:  s.Label,
			Detail: fmt.Sprintf("%d concepts", len(s.Concepts)),
			Action: func() tea.Cmd {
				return func() tea.Msg { return schoolPickedMsg{school: s} }
			},
		})
	}
	g.menu = components.NewMenu(items)
}

func (g *GenerateScreen) toConcepts() {
	g.stage = stageConcept
	var items []components.MenuItem
	for _, c := range g.school.Concepts {
		items = append(items, components.MenuItem{
			Label:  catalog.Title(c.ID),
			Detail: fmt.Sprintf("%d difficulties", len(c.Difficulties)),
			Action: func() tea.Cmd {
				return func() tea.Msg { return conceptPickedMsg{concept: c} }
			},
		})
	}
	g.menu = components.NewMenu(items)
}

func (g *GenerateScreen) toDifficulties() {
	g.stage = stageDifficulty
	var items []components.MenuItem
	for _, d := range g.concept.Difficulties {
		items = append(items, components.MenuItem{
			Label: d.Label,
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyPickedMsg{difficulty: d} }
			},
		})
	}
	g.menu = components.NewMenu(items)
}

func (g *GenerateScreen) toCount() tea.Cmd {
	g.stage = stageCount
	g.input = components.NewTextInput("How many questions?", fmt.Sprintf("1-%d", MaxCount), true, 2)
	return g.input.Init()
}

// back moves one selection stage up. It reports false at the first stage.
func (g *GenerateScreen) back() bool {
	switch g.stage {
	case stageConcept:
		g.toSchools()
	case stageDifficulty:
		g.toConcepts()
	case stageCount:
		g.toDifficulties()
	default:
		return false
	}
	g.err = nil
	return true
}

func (g *GenerateScreen) request(count int) session.Request {
	return session.Request{
		School:  g.school.ID,
		Concept: g.concept.ID,
		Variant: g.difficulty.Variant,
		Count:   count,
	}
}

func (g *GenerateScreen) run(req session.Request) tea.Cmd {
	g.busy = true
	g.err = nil
	g.status = ""
	sess := g.sess
	return func() tea.Msg {
		draw, err := sess.Generate(req)
		return generatedMsg{draw: draw, err: err}
	}
}

// Capturing is true while a selection stage handles Esc itself.
func (g *GenerateScreen) Capturing() bool {
	return g.stage > stageSchool && g.stage < stageResults
}

func (g *GenerateScreen) Init() tea.Cmd {
	return nil
}

func (g *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case schoolPickedMsg:
		g.school = msg.school
		g.toConcepts()
		return g, nil

	case conceptPickedMsg:
		g.concept = msg.concept
		g.toDifficulties()
		return g, nil

	case difficultyPickedMsg:
		g.difficulty = msg.difficulty
		return g, g.toCount()

	case generatedMsg:
		g.busy = false
		if msg.err != nil {
			g.err = msg.err
			return g, nil
		}
		g.draw = msg.draw
		g.stage = stageResults
		g.cursor = 0
		g.picked = make(map[int]bool)
		return g, nil

	case tea.KeyMsg:
		if g.busy {
			return g, nil
		}
		if msg.String() == "esc" && g.back() {
			return g, nil
		}
		switch g.stage {
		case stageCount:
			return g.updateCount(msg)
		case stageResults:
			return g.updateResults(msg)
		}
	}

	if g.stage < stageCount {
		var cmd tea.Cmd
		g.menu, cmd = g.menu.Update(msg)
		return g, cmd
	}
	if g.stage == stageCount {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GenerateScreen) updateCount(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		n, ok := g.input.IntInRange(1, MaxCount)
		if !ok {
			return g, nil
		}
		return g, g.run(g.request(n))
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GenerateScreen) updateResults(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	n := len(g.draw.MCQs)
	switch msg.String() {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < n-1 {
			g.cursor++
		}
	case "space", " ":
		if n > 0 {
			g.picked[g.cursor] = !g.picked[g.cursor]
		}
	case "a":
		all := len(g.pickedIndexes()) < n
		for i := range n {
			g.picked[i] = all
		}
	case "enter":
		if n > 0 {
			return g, router.Push(practice.New(g.sess, g.draw.Concept, g.draw.MCQs, g.cursor))
		}
	case "p":
		g.addPicked()
	case "g":
		return g, g.run(g.draw.Request)
	case "w":
		g.exportWorksheet()
	}
	return g, nil
}

func (g *GenerateScreen) pickedIndexes() []int {
	var idx []int
	for i := range g.draw.MCQs {
		if g.picked[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func (g *GenerateScreen) addPicked() {
	idx := g.pickedIndexes()
	if len(idx) == 0 {
		g.status = "Select questions with space first."
		return
	}
	p, err := g.sess.AddToActive(context.Background(), g.draw.Entries(idx...))
	switch {
	case errors.Is(err, paper.ErrNoActive):
		g.status = "No active paper. Create one under Question Papers."
		return
	case err != nil:
		g.status = "Could not add questions: " + err.Error()
		return
	}
	g.status = fmt.Sprintf("Added %d to %s (%d questions).", len(idx), p.ID, len(p.Entries))
	clear(g.picked)
}

func (g *GenerateScreen) exportWorksheet() {
	if len(g.draw.MCQs) == 0 {
		g.status = "Nothing to export."
		return
	}
	path, err := g.sess.ExportWorksheet(g.draw)
	if err != nil {
		g.status = "Export failed: " + err.Error()
		return
	}
	g.status = "Worksheet saved to " + path
}

func (g *GenerateScreen) breadcrumb() string {
	parts := []string{}
	if g.stage > stageSchool {
		parts = append(parts, string(g.school.ID))
	}
	if g.stage > stageConcept {
		parts = append(parts, catalog.Title(g.concept.ID))
	}
	if g.stage > stageDifficulty {
		parts = append(parts, g.difficulty.Label)
	}
	return theme.Muted.Render(strings.Join(parts, " › "))
}

func (g *GenerateScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(g.breadcrumb() + "\n\n")

	switch g.stage {
	case stageSchool:
		b.WriteString(theme.Heading.Render("Choose a school") + "\n\n" + g.menu.View())
	case stageConcept:
		b.WriteString(theme.Heading.Render("Choose a concept") + "\n\n" + g.menu.View())
	case stageDifficulty:
		b.WriteString(theme.Heading.Render("Choose a difficulty") + "\n\n" + g.menu.View())
	case stageCount:
		b.WriteString(g.input.View())
	case stageResults:
		b.WriteString(g.resultsView(width, height))
	}

	if g.busy {
		b.WriteString("\n\n" + theme.Hint.Render("Generating..."))
	}
	if g.err != nil {
		b.WriteString("\n\n" + theme.Incorrect.Render("✗ "+g.err.Error()))
	}
	if g.status != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(g.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (g *GenerateScreen) resultsView(width, height int) string {
	d := g.draw
	var b strings.Builder

	if d.Outcome != problemgen.OutcomeFull {
		b.WriteString(components.NewGauge("Generated", len(d.MCQs), d.Count, min(width-8, 60)).View() + "\n")
		b.WriteString(theme.Muted.Render(fmt.Sprintf("Could only generate %d unique questions.", len(d.MCQs))) + "\n\n")
	}
	if len(d.MCQs) == 0 {
		return b.String()
	}

	rows := max(height/3, 3)
	start, end := layout.Window(len(d.MCQs), g.cursor, rows)
	lineWidth := max(width-16, 20)
	for i := start; i < end; i++ {
		mark := "[ ]"
		if g.picked[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %2d. %s", mark, i+1, firstLine(d.MCQs[i].Question.Text, lineWidth))
		if i == g.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	m := d.MCQs[g.cursor]
	var card strings.Builder
	card.WriteString(m.Question.Text + "\n\n")
	for _, o := range m.Set.Options {
		line := fmt.Sprintf("%s) %s", o.Letter, o.Text)
		if o.Correct {
			line = theme.Correct.Render(line)
		}
		card.WriteString(line + "\n")
	}
	b.WriteString("\n" + theme.Card.Width(min(width-6, 90)).Render(strings.TrimRight(card.String(), "\n")))
	b.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("%d selected", len(g.pickedIndexes()))))
	return b.String()
}

// firstLine returns the first line of s cut to n runes.
func firstLine(s string, n int) string {
	s, _, _ = strings.Cut(s, "\n")
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

func (g *GenerateScreen) Title() string {
	return "Generate Questions"
}

func (g *GenerateScreen) KeyHints() []layout.KeyHint {
	switch g.stage {
	case stageCount:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case stageResults:
		return []layout.KeyHint{
			{Key: "Space", Description: "Select"},
			{Key: "a", Description: "All"},
			{Key: "Enter", Description: "Try"},
			{Key: "p", Description: "Add to paper"},
			{Key: "w", Description: "Worksheet"},
			{Key: "g", Description: "Regenerate"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

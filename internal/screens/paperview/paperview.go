// Package paperview shows one paper grouped into its concept sections.
package paperview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/explain"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/practice"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

type explainedMsg struct {
	key      string
	solution *explain.Solution
	err      error
}

// row is a section title (item < 0) or an index into items.
type row struct {
	title string
	item  int
}

// PaperScreen lists a paper's questions in printed order.
type PaperScreen struct {
	sess  *session.Session
	id    string
	paper *paper.Paper
	items []paper.Item
	rows  []row

	cursor     int
	explaining bool
	solution   *explain.Solution
	solvedKey  string
	status     string
}

var (
	_ screen.Screen          = (*PaperScreen)(nil)
	_ screen.KeyHintProvider = (*PaperScreen)(nil)
)

// New creates a PaperScreen for the paper id.
func New(sess *session.Session, id string) *PaperScreen {
	p := &PaperScreen{sess: sess, id: id}
	p.reload()
	return p
}

func (p *PaperScreen) reload() {
	pp, err := p.sess.Papers().Get(context.Background(), p.id)
	if err != nil {
		p.status = err.Error()
		p.paper, p.items, p.rows = nil, nil, nil
		return
	}
	p.paper = pp
	p.items = p.items[:0]
	p.rows = p.rows[:0]
	for _, sec := range pp.Sections() {
		p.rows = append(p.rows, row{title: sec.Title, item: -1})
		for _, it := range sec.Items {
			p.rows = append(p.rows, row{item: len(p.items)})
			p.items = append(p.items, it)
		}
	}
	p.cursor = min(p.cursor, max(len(p.items)-1, 0))
}

func (p *PaperScreen) current() (*paper.Item, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return nil, false
	}
	return &p.items[p.cursor], true
}

func (p *PaperScreen) Init() tea.Cmd {
	return nil
}

func (p *PaperScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainedMsg:
		p.explaining = false
		if msg.err != nil {
			p.status = "Explanation failed: " + msg.err.Error()
			return p, nil
		}
		p.solution, p.solvedKey = msg.solution, msg.key
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
		case "x":
			p.remove()
		case "s":
			p.setActive()
		case "p":
			p.export()
		case "e":
			return p, p.explain()
		}
	}
	return p, nil
}

func (p *PaperScreen) remove() {
	it, ok := p.current()
	if !ok {
		return
	}
	n := it.Number
	if err := p.sess.Papers().Remove(context.Background(), p.id, it.Index); err != nil {
		p.status = err.Error()
		return
	}
	p.status = fmt.Sprintf("Removed Q%d.", n)
	p.reload()
}

func (p *PaperScreen) setActive() {
	if err := p.sess.Papers().SetActive(context.Background(), p.id); err != nil {
		p.status = err.Error()
		return
	}
	p.status = p.id + " is now active."
}

func (p *PaperScreen) export() {
	paperPath, keyPath, err := p.sess.ExportPaper(context.Background(), p.id)
	switch {
	case errors.Is(err, paper.ErrNoQuestions):
		p.status = "Add questions before exporting."
	case err != nil:
		p.status = "Export failed: " + err.Error()
	default:
		p.status = fmt.Sprintf("Saved %s and %s", paperPath, keyPath)
	}
}

func (p *PaperScreen) explain() tea.Cmd {
	it, ok := p.current()
	if !ok || p.explaining {
		return nil
	}
	if !p.sess.CanExplain() {
		p.status = "Explanations need an LLM provider (set llm.provider)."
		return nil
	}
	p.explaining = true
	p.status = ""
	sess, key := p.sess, it.Entry.ID
	problem := explain.FromEntry(it.Entry)
	return func() tea.Msg {
		sol, err := sess.Explain(context.Background(), problem)
		return explainedMsg{key: key, solution: sol, err: err}
	}
}

func (p *PaperScreen) View(width, height int) string {
	if p.paper == nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(theme.Incorrect.Render(p.status))
	}

	var b strings.Builder
	heading := fmt.Sprintf("%s · %d questions", p.paper.ID, len(p.paper.Entries))
	if p.sess.Papers().ActiveID() == p.id {
		heading += " · active"
	}
	b.WriteString(theme.Heading.Render(heading) + "\n\n")

	if len(p.items) == 0 {
		b.WriteString(theme.Muted.Render("This paper is empty. Add questions from Generate Questions."))
	} else {
		b.WriteString(p.listView(width, height))
		b.WriteString("\n\n" + p.detailView(width))
	}

	if p.explaining {
		b.WriteString("\n\n" + theme.Hint.Render("Working it out..."))
	}
	if p.status != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(p.status))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (p *PaperScreen) listView(width, height int) string {
	cursorRow := 0
	for i, r := range p.rows {
		if r.item == p.cursor {
			cursorRow = i
		}
	}
	start, end := layout.Window(len(p.rows), cursorRow, max(height/3, 4))
	lineWidth := max(width-14, 20)

	var b strings.Builder
	for i := start; i < end; i++ {
		r := p.rows[i]
		if r.item < 0 {
			b.WriteString(theme.Muted.Render(strings.ToUpper(r.title)) + "\n")
			continue
		}
		it := p.items[r.item]
		text, _, _ := strings.Cut(it.Entry.Text, "\n")
		if rs := []rune(text); len(rs) > lineWidth {
			text = string(rs[:lineWidth-1]) + "…"
		}
		line := fmt.Sprintf("Q%d. %s", it.Number, text)
		if i == cursorRow {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *PaperScreen) detailView(width int) string {
	it, _ := p.current()
	e := it.Entry

	var b strings.Builder
	b.WriteString(e.Text + "\n\n")
	for _, o := range e.Options {
		line := fmt.Sprintf("%s) %s", o.Letter, o.Text)
		if o.Letter == e.CorrectLetter {
			line = theme.Correct.Render(line)
		}
		b.WriteString(line + "\n")
	}
	card := theme.Card.Width(min(width-6, 90)).Render(strings.TrimRight(b.String(), "\n"))

	if p.solution != nil && p.solvedKey == e.ID {
		card += "\n" + practice.RenderSolution(p.solution, min(width-6, 90))
	}
	return card
}

func (p *PaperScreen) Title() string {
	return "Paper " + p.id
}

func (p *PaperScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "x", Description: "Remove"},
		{Key: "e", Description: "Explain"},
		{Key: "p", Description: "Export PDFs"},
		{Key: "s", Description: "Set active"},
		{Key: "Esc", Description: "Back"},
	}
}

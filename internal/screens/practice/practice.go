// Package practice lets the setter attempt generated questions one at a
// time, ask for a worked solution and keep the good ones.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/explain"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

type explainedMsg struct {
	index    int
	solution *explain.Solution
	err      error
}

// PracticeScreen shows one MCQ of a batch at a time.
type PracticeScreen struct {
	sess    *session.Session
	concept catalog.ConceptID
	mcqs    []session.MCQ
	index   int
	mc      components.MultiChoice

	explaining bool
	solution   *explain.Solution
	status     string
}

var (
	_ screen.Screen          = (*PracticeScreen)(nil)
	_ screen.KeyHintProvider = (*PracticeScreen)(nil)
)

// New creates a PracticeScreen over mcqs starting at start. mcqs must not
// be empty.
func New(sess *session.Session, concept catalog.ConceptID, mcqs []session.MCQ, start int) *PracticeScreen {
	p := &PracticeScreen{sess: sess, concept: concept, mcqs: mcqs}
	p.show(min(max(start, 0), len(mcqs)-1))
	return p
}

func (p *PracticeScreen) show(i int) {
	p.index = i
	p.mc = components.NewMultiChoice(p.mcqs[i].Question, p.mcqs[i].Set)
	p.solution = nil
	p.status = ""
}

func (p *PracticeScreen) current() session.MCQ {
	return p.mcqs[p.index]
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainedMsg:
		if msg.index != p.index {
			return p, nil
		}
		p.explaining = false
		if msg.err != nil {
			p.status = "Explanation failed: " + msg.err.Error()
			return p, nil
		}
		p.solution = msg.solution
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "n", "right":
			if p.index < len(p.mcqs)-1 {
				p.show(p.index + 1)
			}
			return p, nil
		case "left":
			if p.index > 0 {
				p.show(p.index - 1)
			}
			return p, nil
		}
		if !p.mc.Submitted {
			var cmd tea.Cmd
			p.mc, cmd = p.mc.Update(msg)
			return p, cmd
		}
		switch msg.String() {
		case "e":
			return p, p.explain()
		case "p":
			p.add()
		}
	}
	return p, nil
}

func (p *PracticeScreen) explain() tea.Cmd {
	if p.explaining || p.solution != nil {
		return nil
	}
	if !p.sess.CanExplain() {
		p.status = "Explanations need an LLM provider (set llm.provider)."
		return nil
	}
	p.explaining = true
	p.status = ""
	sess, index := p.sess, p.index
	m := p.current()
	problem := explain.FromQuestion(p.concept, m.Question, m.Set)
	return func() tea.Msg {
		sol, err := sess.Explain(context.Background(), problem)
		return explainedMsg{index: index, solution: sol, err: err}
	}
}

func (p *PracticeScreen) add() {
	m := p.current()
	pp, err := p.sess.AddToActive(context.Background(), []paper.Entry{paper.NewEntry(p.concept, m.Question, m.Set)})
	switch {
	case errors.Is(err, paper.ErrNoActive):
		p.status = "No active paper. Create one under Question Papers."
	case err != nil:
		p.status = "Could not add question: " + err.Error()
	default:
		p.status = fmt.Sprintf("Added to %s (%d questions).", pp.ID, len(pp.Entries))
	}
}

func (p *PracticeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Muted.Render(fmt.Sprintf("%s · question %d of %d", catalog.Title(p.concept), p.index+1, len(p.mcqs))) + "\n\n")
	b.WriteString(p.mc.View(min(width-8, 90)))

	if p.mc.Submitted {
		if p.mc.IsCorrect() {
			b.WriteString("\n" + theme.Correct.Render("✓ Correct"))
		} else {
			b.WriteString("\n" + theme.Incorrect.Render("✗ The answer is "+p.current().Set.CorrectLetter))
		}
	}

	if p.explaining {
		b.WriteString("\n\n" + theme.Hint.Render("Working it out..."))
	}
	if p.solution != nil {
		b.WriteString("\n\n" + RenderSolution(p.solution, min(width-8, 90)))
	}
	if p.status != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(p.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// RenderSolution draws a worked solution as a card.
func RenderSolution(s *explain.Solution, width int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Worked solution") + "\n")
	for i, step := range s.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\nAnswer: " + s.Answer)
	if s.Tip != "" {
		b.WriteString("\n" + theme.Muted.Render("Tip: "+s.Tip))
	}
	if !s.Agrees {
		b.WriteString("\n" + theme.Incorrect.Render("The explanation does not match the generated answer."))
	}
	return theme.Card.Width(max(width, 20)).Render(b.String())
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if !p.mc.Submitted {
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "←→", Description: "Prev/Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "e", Description: "Explain"},
		{Key: "p", Description: "Add to paper"},
		{Key: "n", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// MultiChoice shows one MCQ and lets the user try it. Options are picked
// with the arrows or by typing their letter.
type MultiChoice struct {
	Question  *problemgen.Question
	Set       problemgen.OptionSet
	Selected  int
	Submitted bool
	Chosen    int
}

// NewMultiChoice creates a multiple-choice component for q.
func NewMultiChoice(q *problemgen.Question, set problemgen.OptionSet) MultiChoice {
	return MultiChoice{Question: q, Set: set, Chosen: -1}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Set.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Selected
	default:
		for i, o := range m.Set.Options {
			if strings.EqualFold(o.Letter, key) {
				m.Selected = i
				m.Submitted = true
				m.Chosen = i
			}
		}
	}

	return m, nil
}

// Response returns the letter of the chosen option, or "".
func (m MultiChoice) Response() string {
	if !m.Submitted || m.Chosen < 0 || m.Chosen >= len(m.Set.Options) {
		return ""
	}
	return m.Set.Options[m.Chosen].Letter
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && problemgen.CheckAnswer(m.Response(), m.Question, m.Set)
}

// View renders the question and its options within width.
func (m MultiChoice) View(width int) string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(max(width, 20))
	s := questionStyle.Render(m.Question.Text) + "\n\n"

	for i, opt := range m.Set.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Letter, opt.Text)

		switch {
		case m.Submitted && opt.Correct:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += theme.Muted.Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

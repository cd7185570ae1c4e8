// Package papers lists the session's question papers and creates new ones.
package papers

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/paperview"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeSchool
	modeSetName
	modeConfirmDelete
)

type schoolPickedMsg struct{ school catalog.SchoolID }

// PapersScreen lists papers and hosts the create and delete dialogs.
type PapersScreen struct {
	sess   *session.Session
	list   []paper.Summary
	cursor int
	mode   mode

	schools components.Menu
	school  catalog.SchoolID
	input   components.TextInput

	status string
}

var (
	_ screen.Screen          = (*PapersScreen)(nil)
	_ screen.Resumer         = (*PapersScreen)(nil)
	_ screen.Capturer        = (*PapersScreen)(nil)
	_ screen.KeyHintProvider = (*PapersScreen)(nil)
)

// New creates a PapersScreen.
func New(sess *session.Session) *PapersScreen {
	p := &PapersScreen{sess: sess}
	p.reload()
	return p
}

func (p *PapersScreen) reload() {
	list, err := p.sess.Papers().List(context.Background())
	if err != nil {
		p.status = "Could not load papers: " + err.Error()
		return
	}
	p.list = list
	p.cursor = min(p.cursor, max(len(list)-1, 0))
}

func (p *PapersScreen) selected() (paper.Summary, bool) {
	if p.cursor < 0 || p.cursor >= len(p.list) {
		return paper.Summary{}, false
	}
	return p.list[p.cursor], true
}

func (p *PapersScreen) Init() tea.Cmd {
	return nil
}

func (p *PapersScreen) Resume() tea.Cmd {
	p.reload()
	return nil
}

// Capturing is true while a dialog is open.
func (p *PapersScreen) Capturing() bool {
	return p.mode != modeList
}

func (p *PapersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(schoolPickedMsg); ok {
		p.school = m.school
		p.mode = modeSetName
		p.input = components.NewTextInput("Set name for "+string(m.school), "e.g. A", false, 20)
		return p, p.input.Init()
	}

	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey && kmsg.String() == "esc" && p.mode != modeList {
		p.mode = modeList
		return p, nil
	}

	switch p.mode {
	case modeSchool:
		var cmd tea.Cmd
		p.schools, cmd = p.schools.Update(msg)
		return p, cmd
	case modeSetName:
		if isKey && kmsg.String() == "enter" {
			p.create()
			return p, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	case modeConfirmDelete:
		if isKey {
			p.confirmDelete(kmsg.String())
		}
		return p, nil
	}

	if !isKey {
		return p, nil
	}
	return p, p.updateList(kmsg)
}

func (p *PapersScreen) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.list)-1 {
			p.cursor++
		}
	case "n":
		p.openSchoolPicker()
	case "enter":
		if s, ok := p.selected(); ok {
			return router.Push(paperview.New(p.sess, s.ID))
		}
	case "s":
		if s, ok := p.selected(); ok {
			if err := p.sess.Papers().SetActive(context.Background(), s.ID); err != nil {
				p.status = err.Error()
				return nil
			}
			p.status = s.ID + " is now active."
			p.reload()
		}
	case "d":
		if _, ok := p.selected(); ok {
			p.mode = modeConfirmDelete
		}
	}
	return nil
}

func (p *PapersScreen) openSchoolPicker() {
	var items []components.MenuItem
	for _, s := range catalog.Schools() {
		items = append(items, components.MenuItem{
			Label: s.Label,
			Action: func() tea.Cmd {
				return func() tea.Msg { return schoolPickedMsg{school: s.ID} }
			},
		})
	}
	p.schools = components.NewMenu(items)
	p.mode = modeSchool
	p.status = ""
}

func (p *PapersScreen) create() {
	created, err := p.sess.Papers().Create(context.Background(), p.school, p.input.Value())
	if err != nil {
		p.input.Err = err.Error()
		return
	}
	p.mode = modeList
	p.status = fmt.Sprintf("Created %s. It is now the active paper.", created.ID)
	p.reload()
	for i, s := range p.list {
		if s.ID == created.ID {
			p.cursor = i
		}
	}
}

func (p *PapersScreen) confirmDelete(key string) {
	p.mode = modeList
	s, ok := p.selected()
	if key != "y" || !ok {
		return
	}
	if err := p.sess.Papers().Delete(context.Background(), s.ID); err != nil {
		p.status = err.Error()
		return
	}
	p.status = "Deleted " + s.ID + "."
	p.reload()
}

func (p *PapersScreen) View(width, height int) string {
	var b strings.Builder

	switch p.mode {
	case modeSchool:
		b.WriteString(theme.Heading.Render("New paper: choose a school") + "\n\n" + p.schools.View())
	case modeSetName:
		b.WriteString(p.input.View())
	default:
		b.WriteString(p.listView(height))
	}

	if p.mode == modeConfirmDelete {
		if s, ok := p.selected(); ok {
			b.WriteString("\n\n" + theme.Incorrect.Render(fmt.Sprintf("Delete %s? (y/n)", s.ID)))
		}
	}
	if p.status != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(p.status))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (p *PapersScreen) listView(height int) string {
	if len(p.list) == 0 {
		return theme.Muted.Render("No papers yet. Press n to create one.")
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Question papers") + "\n\n")
	start, end := layout.Window(len(p.list), p.cursor, max(height-8, 3))
	for i := start; i < end; i++ {
		s := p.list[i]
		line := fmt.Sprintf("%-12s %3d questions", s.ID, s.Questions)
		if s.Active {
			line += "  (active)"
		}
		if i == p.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *PapersScreen) Title() string {
	return "Question Papers"
}

func (p *PapersScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeSchool, modeSetName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "y", Description: "Delete"},
			{Key: "n", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "n", Description: "New"},
		{Key: "Enter", Description: "Open"},
		{Key: "s", Description: "Set active"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

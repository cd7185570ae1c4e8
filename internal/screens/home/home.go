package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/generate"
	"github.com/abhisek/quizgen/internal/screens/papers"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	sess   *session.Session
	menu   components.Menu
	active string
	papers int
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(sess *session.Session) *HomeScreen {
	h := &HomeScreen{sess: sess}
	h.refresh()
	return h
}

// refresh reloads the paper summary and rebuilds the menu details.
func (h *HomeScreen) refresh() {
	h.active = h.sess.Papers().ActiveID()
	h.papers = 0
	if list, err := h.sess.Papers().List(context.Background()); err == nil {
		h.papers = len(list)
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "GENERATE QUESTIONS", Action: func() tea.Cmd {
			return router.Push(generate.New(h.sess))
		}},
		{Label: "QUESTION PAPERS", Detail: fmt.Sprintf("%d in this session", h.papers), Action: func() tea.Cmd {
			return router.Push(papers.New(h.sess))
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	h.menu.Selected = selected
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("QUIZGEN")
	sub := theme.Muted.Render("Generate, collect and export screening-test MCQs")

	status := theme.Muted.Render("No active paper. Create one under QUESTION PAPERS.")
	if h.active != "" {
		status = theme.Heading.Render("Active paper: ") + theme.Body.Render(h.active)
	}

	card := theme.Card.Width(min(width-4, 60)).Render(h.menu.View())

	content := strings.Join([]string{title, sub, "", status, "", card}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

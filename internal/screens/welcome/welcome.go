package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealEnd    = 800 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows the banner and the school tracks, then hands over
// to the home screen on the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= revealEnd {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// revealed returns how many banner lines are visible.
func (w *WelcomeScreen) revealed(total int) int {
	if w.elapsed >= revealEnd {
		return total
	}
	return min(total, int(w.elapsed/tickInterval)*total/int(revealEnd/tickInterval))
}

func (w *WelcomeScreen) View(width, height int) string {
	banner := strings.Split(RenderBanner(width), "\n")
	shown := w.revealed(len(banner))

	sections := []string{strings.Join(banner[:shown], "\n")}

	if shown == len(banner) {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Screening-test question papers"),
			"")

		var tracks []string
		for _, s := range catalog.Schools() {
			tracks = append(tracks, s.Label)
		}
		sections = append(sections,
			theme.Muted.Render(strings.Join(tracks, "  ·  ")),
			"",
			theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

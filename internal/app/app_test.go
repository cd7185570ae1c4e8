package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/screens/generate"
	"github.com/abhisek/quizgen/internal/screens/home"
	"github.com/abhisek/quizgen/internal/screens/screentest"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("expected AppModel, got %T", next)
	}
	return am, cmd
}

// run feeds msg and then every message produced by the resulting commands.
func run(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	m, cmd := update(t, m, msg)
	if next := screentest.Drain(cmd); next != nil {
		if _, ok := next.(tea.QuitMsg); ok {
			return m
		}
		m, _ = update(t, m, next)
	}
	return m
}

func TestWelcomeThenHome(t *testing.T) {
	m := newAppModel(screentest.NewSession(t, nil))
	m = run(t, m, screentest.Key('x'))

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("welcome should be replaced, depth %d", m.router.Depth())
	}
}

func TestEscRespectsCapturingScreens(t *testing.T) {
	m := newAppModel(screentest.NewSession(t, nil))
	m = run(t, m, screentest.Key('x'))
	m = run(t, m, screentest.Special(tea.KeyEnter))

	if _, ok := m.router.Active().(*generate.GenerateScreen); !ok {
		t.Fatalf("expected generate screen, got %T", m.router.Active())
	}

	// Into the concept menu, where Esc goes back a stage.
	m = run(t, m, screentest.Special(tea.KeyEnter))
	m = run(t, m, screentest.Special(tea.KeyEscape))
	if m.router.Depth() != 2 {
		t.Fatalf("esc in a capturing screen should not pop, depth %d", m.router.Depth())
	}

	m = run(t, m, screentest.Special(tea.KeyEscape))
	if m.router.Depth() != 1 {
		t.Errorf("esc at the first stage should pop, depth %d", m.router.Depth())
	}
}

func TestViewShowsActivePaper(t *testing.T) {
	sess := screentest.NewSession(t, nil)
	m := newAppModel(sess)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if _, err := sess.Papers().Create(context.Background(), catalog.SchoolBCA, "A"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.frame(), "Paper: BCA A") {
		t.Error("header should show the active paper")
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(screentest.NewSession(t, nil))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.frame(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(screentest.NewSession(t, nil))
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if _, ok := screentest.Drain(cmd).(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

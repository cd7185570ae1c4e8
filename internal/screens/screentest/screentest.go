// Package screentest builds sessions and key messages for screen tests.
package screentest

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/explain"
	"github.com/abhisek/quizgen/internal/paper"
	"github.com/abhisek/quizgen/internal/pdfexport"
	"github.com/abhisek/quizgen/internal/problemgen"
	"github.com/abhisek/quizgen/internal/randx"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/store"
)

// NewSession returns a seeded session over an in-memory store that
// exports into a temp dir. explainer may be nil.
func NewSession(t *testing.T, explainer *explain.Service) *session.Session {
	t.Helper()
	st, err := store.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return session.New(session.Options{
		Questions: problemgen.NewService(randx.New(7), problemgen.DefaultConfig(), nil),
		Papers:    paper.NewService(st.PaperRepo(), nil),
		Exporter:  pdfexport.New(pdfexport.Config{Compress: false}),
		Explainer: explainer,
		OutputDir: t.TempDir(),
	})
}

// Key returns a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special returns a non-printable key press such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Type returns one key press per rune of s.
func Type(s string) []tea.Msg {
	out := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		out = append(out, Key(r))
	}
	return out
}

// Drain runs cmd and returns its message, or nil when cmd is nil.
func Drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

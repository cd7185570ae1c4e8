package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizgen/internal/problemgen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func sampleMCQ() MultiChoice {
	q := &problemgen.Question{Text: "What is 20% of 80?", Answer: problemgen.Answer{Value: 16}}
	set := problemgen.OptionSet{
		Options: []problemgen.Option{
			{Letter: "A", Text: "12"},
			{Letter: "B", Text: "16", Correct: true},
			{Letter: "C", Text: "18"},
			{Letter: "D", Text: "21"},
		},
		CorrectLetter: "B",
	}
	return NewMultiChoice(q, set)
}

func TestMenu_SkipsDisabled(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "one", Action: func() tea.Cmd { ran = "one"; return nil }},
		{Label: "two", Disabled: true},
		{Label: "three", Action: func() tea.Cmd { ran = "three"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "three", ran)

	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 1, m.Selected)
	assert.Contains(t, m.View(), "▸ one")
}

func TestMultiChoice_ArrowAndEnter(t *testing.T) {
	mc := sampleMCQ()
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyEnter))

	assert.True(t, mc.Submitted)
	assert.Equal(t, "B", mc.Response())
	assert.True(t, mc.IsCorrect())

	// Further input is ignored once submitted.
	mc, _ = mc.Update(keyPress('a'))
	assert.Equal(t, "B", mc.Response())
}

func TestMultiChoice_LetterKey(t *testing.T) {
	mc := sampleMCQ()
	mc, _ = mc.Update(keyPress('d'))

	assert.True(t, mc.Submitted)
	assert.Equal(t, "D", mc.Response())
	assert.False(t, mc.IsCorrect())
	assert.Contains(t, mc.View(60), "What is 20% of 80?")
}

func TestTextInput_NumericRange(t *testing.T) {
	ti := NewTextInput("How many?", "10", true, 3)
	for _, r := range "1x2" {
		ti, _ = ti.Update(keyPress(r))
	}
	assert.Equal(t, "12", ti.Value())

	n, ok := ti.IntInRange(1, 50)
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = ti.IntInRange(1, 10)
	assert.False(t, ok)
	assert.Contains(t, ti.View(), "from 1 to 10")

	ti, _ = ti.Update(specialKey(tea.KeyBackspace))
	assert.Empty(t, ti.Err)
}

func TestGauge(t *testing.T) {
	full := NewGauge("Generated", 10, 10, 40).View()
	short := NewGauge("Generated", 3, 10, 40).View()
	assert.Contains(t, full, "10/10")
	assert.NotEqual(t, full, short)
	assert.Contains(t, short, "3/10")
}

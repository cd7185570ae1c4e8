package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Gauge shows how much of a requested batch was generated.
type Gauge struct {
	Label     string
	Got, Want int
	Width     int
}

// NewGauge creates a fulfilment gauge.
func NewGauge(label string, got, want, width int) Gauge {
	return Gauge{Label: label, Got: got, Want: want, Width: width}
}

// View renders the gauge. A short batch is drawn in the accent colour.
func (g Gauge) View() string {
	var result string
	if g.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(g.Label) + "  "
	}

	count := fmt.Sprintf(" %d/%d", g.Got, g.Want)
	barWidth := max(g.Width-lipgloss.Width(result)-len(count), 1)

	filled := 0
	if g.Want > 0 {
		filled = min(barWidth*g.Got/g.Want, barWidth)
	}

	style := theme.GaugeFilled
	if g.Got < g.Want {
		style = theme.GaugeShort
	}
	result += style.Render(strings.Repeat(" ", filled))
	result += theme.GaugeEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	return result
}

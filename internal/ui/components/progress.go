package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/linwei/studymap/internal/ui/theme"
)

// Accuracy bands for bar coloring. They mirror the classifier cutoffs so a
// red bar means diagnosis-weak and a green bar means mastered-range accuracy.
const (
	barWeakBelow = 0.6
	barGoodFrom  = 0.8
)

// ProgressBar renders a labelled horizontal accuracy bar. The filled segment
// is colored by the accuracy band the value falls in.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0.0-1.0
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar sized to the given total width.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar. Label and percentage are carved out of the total
// width first; the bar takes whatever remains, with a small floor.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}
	barWidth := p.Width - lipgloss.Width(b.String()) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(float64(barWidth) * pct)

	b.WriteString(lipgloss.NewStyle().
		Background(p.fillColor()).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100))))
	}

	return b.String()
}

func (p ProgressBar) fillColor() color.Color {
	switch {
	case p.Percent < barWeakBelow:
		return theme.Error
	case p.Percent < barGoodFrom:
		return theme.Warning
	default:
		return theme.Success
	}
}

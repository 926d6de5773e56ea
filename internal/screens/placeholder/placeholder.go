// Package placeholder stands in for screens whose backing service is not
// available in the current session.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linwei/studymap/internal/screen"
	"github.com/linwei/studymap/internal/ui/theme"
)

// PlaceholderScreen explains why a feature cannot be shown right now.
type PlaceholderScreen struct {
	title  string
	reason string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a placeholder with a title and a short reason line.
func New(title, reason string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, reason: reason}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	msg := theme.Body.Render(p.title+" is unavailable") + "\n\n" +
		theme.Hint.Render(p.reason)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

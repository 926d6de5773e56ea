// Package screen defines the contract between the router and the screens it
// stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/linwei/studymap/internal/ui/layout"
)

// Screen is one stacked view. Update returns the screen to keep on the stack,
// which lets value-type screens replace themselves. View receives the content
// area only; header and footer belong to the app frame.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints instead of
// the frame defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linwei/studymap/internal/ui/theme"
)

// TextInput is a themed single-line input. With NumericOnly set, printable
// keys other than digits are swallowed before they reach the model.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool

	submitted bool
	valid     bool
}

// NewTextInput creates a focused input. maxLen > 0 caps the entry length.
func NewTextInput(placeholder string, numericOnly bool, maxLen int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	if maxLen > 0 {
		m.CharLimit = maxLen
	}
	m.Focus()

	return TextInput{Model: m, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && t.NumericOnly {
		if s := key.String(); len(s) == 1 && (s[0] < '0' || s[0] > '9') {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, with a validity mark after Submit.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	if t.valid {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

// Value returns the raw entry.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the entry as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records a validation outcome for display.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

package components

import (
	"image/color"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/linwei/studymap/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestProgressBarRendersLabelAndPercent(t *testing.T) {
	view := NewProgressBar("两位数乘法", 0.42, true, 40).View()
	if !strings.Contains(view, "两位数乘法") {
		t.Errorf("view missing label: %q", view)
	}
	if !strings.Contains(view, "42%") {
		t.Errorf("view missing percentage: %q", view)
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	over := NewProgressBar("", 1.5, true, 30).View()
	if !strings.Contains(over, "100%") {
		t.Errorf("over-range view = %q, want 100%%", over)
	}

	under := NewProgressBar("", -0.2, true, 30).View()
	if !strings.Contains(under, "0%") {
		t.Errorf("under-range view = %q, want 0%%", under)
	}
}

func TestProgressBarFillColorBands(t *testing.T) {
	cases := []struct {
		percent float64
		want    color.Color
	}{
		{0.30, theme.Error},
		{0.59, theme.Error},
		{0.60, theme.Warning},
		{0.79, theme.Warning},
		{0.80, theme.Success},
		{0.95, theme.Success},
	}
	for _, tc := range cases {
		if got := (ProgressBar{Percent: tc.percent}).fillColor(); got != tc.want {
			t.Errorf("fillColor(%.2f) = %v, want %v", tc.percent, got, tc.want)
		}
	}
}

func TestMenuStartsOnFirstEnabledItem(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "History", Disabled: true},
		{Label: "Diagnose"},
		{Label: "Plans"},
	})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestMenuNavigationSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Diagnose"},
		{Label: "History", Disabled: true},
		{Label: "Plans"},
	})

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("after down: Selected = %d, want 2 (disabled item skipped)", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 0 {
		t.Errorf("after up: Selected = %d, want 0", m.Selected)
	}

	// At the top edge the cursor stays put.
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 0 {
		t.Errorf("at edge: Selected = %d, want 0", m.Selected)
	}
}

func TestMenuEnterFiresSelectedAction(t *testing.T) {
	fired := false
	m := NewMenu([]MenuItem{
		{Label: "Diagnose", Action: func() tea.Cmd {
			fired = true
			return nil
		}},
	})

	m.Update(specialKey(tea.KeyEnter))
	if !fired {
		t.Error("enter did not fire the selected action")
	}
}

func TestMenuViewMarksSelection(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Diagnose"},
		{Label: "Plans"},
	})

	lines := strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("view has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "▸") {
		t.Errorf("selected line missing cursor: %q", lines[0])
	}
	if strings.Contains(lines[1], "▸") {
		t.Errorf("unselected line has cursor: %q", lines[1])
	}
}

func TestTextInputNumericOnlySwallowsLetters(t *testing.T) {
	in := NewTextInput("1-6", true, 1)

	in, _ = in.Update(keyPress('a'))
	if in.Value() != "" {
		t.Errorf("value = %q after letter, want empty", in.Value())
	}

	in, _ = in.Update(keyPress('4'))
	if in.Value() != "4" {
		t.Errorf("value = %q after digit, want 4", in.Value())
	}

	n, err := in.NumericValue()
	if err != nil || n != 4 {
		t.Errorf("NumericValue() = %d, %v, want 4", n, err)
	}
}

func TestTextInputSubmitMarksValidity(t *testing.T) {
	in := NewTextInput("1-6", true, 1)
	in, _ = in.Update(keyPress('9'))

	in.Submit(false)
	if !strings.Contains(in.View(), "✗") {
		t.Errorf("view missing invalid mark: %q", in.View())
	}

	in.Submit(true)
	if !strings.Contains(in.View(), "✓") {
		t.Errorf("view missing valid mark: %q", in.View())
	}
}

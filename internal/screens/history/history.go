// Package history shows a student's past diagnosis runs.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/router"
	"github.com/linwei/studymap/internal/screen"
	"github.com/linwei/studymap/internal/store"
	"github.com/linwei/studymap/internal/ui/layout"
	"github.com/linwei/studymap/internal/ui/theme"
)

const maxRuns = 50

type runsLoadedMsg struct {
	Runs []store.DiagnosisRun
	Err  error
}

// HistoryScreen displays past diagnosis runs, newest first.
type HistoryScreen struct {
	repo     store.DiagnosisRepo
	student  string
	runs     []store.DiagnosisRun
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen for the given student.
func New(repo store.DiagnosisRepo, student string) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		student:  student,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		runs, err := s.repo.ListByStudent(context.Background(), s.student, maxRuns)
		return runsLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No diagnosis runs yet. Run a diagnosis first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		dateStr := run.Timestamp.Format("Jan 02, 2006 15:04")
		subject := knowledge.SubjectDisplayName(knowledge.Subject(run.Subject))

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  grade %d  level %.1f  %d weak",
			prefix, dateStr, subject, run.TargetGrade, run.GradeLevel, run.Report.WeakCount)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, line := range runDetails(run) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+line)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// runDetails summarizes a run's root causes and top weak points.
func runDetails(run store.DiagnosisRun) []string {
	var lines []string
	if len(run.Report.RootCauses) == 0 {
		lines = append(lines, "No root causes found")
	}
	for _, rc := range run.Report.RootCauses {
		lines = append(lines, fmt.Sprintf("Root cause: %s (grade %d)", rc.Name, rc.Grade))
	}
	for i, wp := range run.Report.WeakPoints {
		if i >= 3 {
			lines = append(lines, fmt.Sprintf("… and %d more weak points", len(run.Report.WeakPoints)-3))
			break
		}
		lines = append(lines, fmt.Sprintf("Weak: %s (%.0f%%)", wp.Point.Name, wp.Accuracy))
	}
	return lines
}

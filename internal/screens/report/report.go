// Package report runs a diagnosis and renders the resulting report.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
	"github.com/linwei/studymap/internal/router"
	"github.com/linwei/studymap/internal/screen"
	"github.com/linwei/studymap/internal/store"
	"github.com/linwei/studymap/internal/ui/components"
	"github.com/linwei/studymap/internal/ui/layout"
	"github.com/linwei/studymap/internal/ui/theme"
)

type diagnosisDoneMsg struct {
	Report *diagnosis.Report
	RunID  string
	Err    error
}

// ReportScreen runs one diagnosis when it is pushed and displays the result.
type ReportScreen struct {
	service     *diagnosis.Service
	repo        store.DiagnosisRepo // nil disables persistence
	profile     *profile.Profile
	subject     knowledge.Subject
	targetGrade int

	report *diagnosis.Report
	runID  string
	errMsg string
	noData bool
	done   bool
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen. The diagnosis runs asynchronously on Init.
func New(service *diagnosis.Service, repo store.DiagnosisRepo, p *profile.Profile, subject knowledge.Subject, targetGrade int) *ReportScreen {
	return &ReportScreen{
		service:     service,
		repo:        repo,
		profile:     p,
		subject:     subject,
		targetGrade: targetGrade,
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rep, err := s.service.Diagnose(s.profile, s.subject, s.targetGrade)
		if err != nil {
			return diagnosisDoneMsg{Err: err}
		}

		var runID string
		if s.repo != nil {
			// Persistence failure should not hide the report.
			runID, _ = s.repo.Append(context.Background(), *rep)
		}
		return diagnosisDoneMsg{Report: rep, RunID: runID}
	}
}

func (s *ReportScreen) Title() string {
	return "Diagnosis"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case diagnosisDoneMsg:
		s.done = true
		if msg.Err != nil {
			if errors.Is(msg.Err, diagnosis.ErrNoProfile) {
				s.noData = true
			} else {
				s.errMsg = msg.Err.Error()
			}
			return s, nil
		}
		s.report = msg.Report
		s.runID = msg.RunID
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	if !s.done {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Analyzing mastery data...")
	}
	if s.noData {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No practice data recorded yet.\n  Work through some exercises first, then come back.")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nDiagnosis failed: %s", s.errMsg))
	}

	rep := s.report
	var b strings.Builder

	levelStyle := theme.Good
	if rep.ActualGradeLevel < float64(rep.TargetGrade)-0.5 {
		levelStyle = theme.Bad
	}

	b.WriteString(theme.Title.Render(fmt.Sprintf("%s — %s, Grade %d",
		rep.StudentName, knowledge.SubjectDisplayName(rep.Subject), rep.TargetGrade)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Estimated level: %s    Mastered: %d    Weak: %d\n",
		levelStyle.Render(fmt.Sprintf("%.1f", rep.ActualGradeLevel)),
		rep.MasteredCount, rep.WeakCount))

	if len(rep.RootCauses) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Root causes") + "\n")
		for _, rc := range rep.RootCauses {
			b.WriteString(fmt.Sprintf("  • %s (grade %d, %s)\n", rc.Name, rc.Grade, rc.Difficulty.Label()))
		}
	}

	if len(rep.WeakPoints) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Weak points") + "\n")
		barWidth := width / 2
		if barWidth > 48 {
			barWidth = 48
		}
		for _, wp := range rep.WeakPoints {
			bar := components.NewProgressBar(padName(wp.Point.Name, 14), wp.Accuracy/100, true, barWidth)
			b.WriteString("  " + bar.View() + "\n")
		}
	}

	if len(rep.Recommendations) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Advice") + "\n")
		for _, adv := range rep.Recommendations {
			badge := theme.PriorityMedium.Render("[" + string(adv.Priority) + "]")
			if adv.Priority == diagnosis.PriorityHigh {
				badge = theme.PriorityHigh.Render("[" + string(adv.Priority) + "]")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", badge, adv.Title))
			b.WriteString(theme.Hint.Render("        "+adv.Action) + "\n")
		}
	}

	if s.runID != "" {
		b.WriteString("\n" + theme.Hint.Render("saved as run "+s.runID[:8]))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// padName trims or pads a point name so progress bars line up.
func padName(name string, width int) string {
	runes := []rune(name)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return name + strings.Repeat(" ", width-len(runes))
}

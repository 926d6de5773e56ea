// Package plans displays the recommended daily study plans.
package plans

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
	"github.com/linwei/studymap/internal/recommend"
	"github.com/linwei/studymap/internal/router"
	"github.com/linwei/studymap/internal/screen"
	"github.com/linwei/studymap/internal/ui/layout"
	"github.com/linwei/studymap/internal/ui/theme"
)

// PlansScreen lists the day's recommended plans and lets the student browse
// each plan's point breakdown.
type PlansScreen struct {
	plans    []recommend.Plan
	selected int
}

var _ screen.Screen = (*PlansScreen)(nil)
var _ screen.KeyHintProvider = (*PlansScreen)(nil)

// New builds the plan list for the student. Plans are computed synchronously;
// recommendation is pure graph-and-profile work with no I/O.
func New(r *recommend.Recommender, p *profile.Profile, subject knowledge.Subject, grade int) *PlansScreen {
	return &PlansScreen{
		plans: r.DailyPlans(p, subject, grade),
	}
}

func (s *PlansScreen) Init() tea.Cmd {
	return nil
}

func (s *PlansScreen) Title() string {
	return "Study Plans"
}

func (s *PlansScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlansScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.plans)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *PlansScreen) View(width, height int) string {
	var b strings.Builder

	for i, plan := range s.plans {
		b.WriteString(renderPlanCard(plan, i == s.selected, width))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderPlanCard(plan recommend.Plan, selected bool, width int) string {
	cardWidth := width - 20
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	badge := priorityStyle(plan.Priority).Render(strings.ToUpper(string(plan.Priority)))
	header := theme.Body.Bold(true).Render(plan.Name) + "  " + badge
	if plan.Remedial {
		header += "  " + theme.Bad.Render("⚑ remedial")
	}

	meta := theme.Hint.Render(fmt.Sprintf("%d questions · %d min · %s",
		plan.TotalQuestions, plan.EstimatedMins, plan.Difficulty))

	lines := []string{header, meta, theme.Body.Render(plan.Description)}

	if selected && len(plan.Points) > 0 {
		for _, pt := range plan.Points {
			detail := fmt.Sprintf("  – %s (grade %d, %d questions", pt.Name, pt.Grade, pt.Questions)
			if pt.CurrentAccuracy > 0 {
				detail += fmt.Sprintf(", now %.0f%%", pt.CurrentAccuracy)
			}
			detail += ")"
			lines = append(lines, theme.Subtitle.Align(lipgloss.Left).Render(detail))
		}
		lines = append(lines, theme.Hint.Render("Goal: "+plan.Goal))
	}

	card := theme.Card.Width(cardWidth)
	if selected {
		card = card.BorderForeground(theme.Primary)
	}
	return card.Render(strings.Join(lines, "\n"))
}

func priorityStyle(p recommend.PlanPriority) lipgloss.Style {
	switch p {
	case recommend.PriorityHigh:
		return theme.PriorityHigh
	case recommend.PriorityMedium:
		return theme.PriorityMedium
	default:
		return theme.PriorityLow
	}
}

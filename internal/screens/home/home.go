// Package home is the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/mastery"
	"github.com/linwei/studymap/internal/profile"
	"github.com/linwei/studymap/internal/recommend"
	"github.com/linwei/studymap/internal/router"
	"github.com/linwei/studymap/internal/screen"
	"github.com/linwei/studymap/internal/screens/history"
	"github.com/linwei/studymap/internal/screens/placeholder"
	"github.com/linwei/studymap/internal/screens/plans"
	"github.com/linwei/studymap/internal/screens/report"
	"github.com/linwei/studymap/internal/store"
	"github.com/linwei/studymap/internal/ui/components"
	"github.com/linwei/studymap/internal/ui/layout"
	"github.com/linwei/studymap/internal/ui/theme"
)

// Deps carries everything the home screen and its children need.
type Deps struct {
	Knowledge   *knowledge.Store
	Diagnosis   *diagnosis.Service
	Recommender *recommend.Recommender
	Profile     *profile.Profile
	Store       *store.Store // nil when the database could not be opened
	Student     string
	Subject     knowledge.Subject
	TargetGrade int
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu

	editingGrade bool
	gradeInput   components.TextInput

	masteredCount int
	weakCount     int
	pointCount    int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen and precomputes the stats bar from the
// student's profile.
func New(deps Deps) *HomeScreen {
	classifier := mastery.NewClassifier(deps.Knowledge)
	mastered := classifier.MasteredSet(deps.Profile, deps.Subject)
	weak := classifier.ListWeakPoints(deps.Profile, deps.Subject, deps.TargetGrade)

	items := []components.MenuItem{
		{Label: "RUN DIAGNOSIS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: report.New(deps.Diagnosis, diagnosisRepo(deps.Store), deps.Profile, deps.Subject, deps.TargetGrade),
				}
			}
		}},
		{Label: "STUDY PLANS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: plans.New(deps.Recommender, deps.Profile, deps.Subject, deps.TargetGrade),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if deps.Store == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History",
						"The history database could not be opened; past runs cannot be shown.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Store.DiagnosisRepo(), deps.Student)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:          deps,
		menu:          components.NewMenu(items),
		masteredCount: len(mastered),
		weakCount:     len(weak),
		pointCount:    len(deps.Knowledge.ByGradeSubject(deps.Subject, deps.TargetGrade)),
	}
}

func diagnosisRepo(s *store.Store) store.DiagnosisRepo {
	if s == nil {
		return nil
	}
	return s.DiagnosisRepo()
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.editingGrade {
		return h.updateGradeInput(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "g" {
		h.editingGrade = true
		h.gradeInput = components.NewTextInput("1-6", true, 1)
		return h, h.gradeInput.Init()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// updateGradeInput handles keys while the target-grade input is open. A valid
// grade rebuilds the screen so the stats bar and menu actions pick it up.
func (h *HomeScreen) updateGradeInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			h.editingGrade = false
			return h, nil
		case "enter":
			grade, err := h.gradeInput.NumericValue()
			if err != nil || grade < 1 || grade > 6 {
				h.gradeInput.Submit(false)
				return h, nil
			}
			deps := h.deps
			deps.TargetGrade = grade
			return h, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(deps)}
			}
		}
	}

	var cmd tea.Cmd
	h.gradeInput, cmd = h.gradeInput.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("S T U D Y M A P")
	subtitle := theme.Subtitle.Render(fmt.Sprintf("%s · %s · Grade %d",
		h.deps.Student, knowledge.SubjectDisplayName(h.deps.Subject), h.deps.TargetGrade))
	sections = append(sections, title, subtitle, "")

	sections = append(sections, h.renderStats())
	if h.editingGrade {
		prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Target grade: ")
		sections = append(sections, "", prompt+h.gradeInput.View())
	} else {
		sections = append(sections, "", h.menu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	stat := func(label string, value int, color lipgloss.Style) string {
		return color.Render(fmt.Sprintf("%d", value)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+label)
	}

	line := strings.Join([]string{
		stat("mastered", h.masteredCount, theme.Good),
		stat("weak", h.weakCount, theme.Bad),
		stat("in curriculum", h.pointCount, theme.Body),
	}, "    ")

	return theme.Card.Render(line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.editingGrade {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Set"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "g", Description: "Target grade"},
		{Key: "↑↓", Description: "Navigate"},
	}
}

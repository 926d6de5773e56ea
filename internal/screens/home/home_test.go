package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
	"github.com/linwei/studymap/internal/recommend"
	"github.com/linwei/studymap/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testDeps() Deps {
	ks := knowledge.New([]knowledge.Point{
		{ID: "math_1_1", Subject: knowledge.SubjectMath, Grade: 1, Name: "20以内加减法"},
		{ID: "math_2_1", Subject: knowledge.SubjectMath, Grade: 2, Name: "100以内加减法", Prerequisites: []string{"math_1_1"}},
		{ID: "math_3_1", Subject: knowledge.SubjectMath, Grade: 3, Name: "两位数乘法", Prerequisites: []string{"math_2_1"}},
	})

	p := profile.Empty("小明")
	p.PointStats = map[string]profile.Stat{
		"20以内加减法": {Total: 10, Mistakes: 1, AccuracyRate: 90},
		"两位数乘法":   {Total: 6, Mistakes: 4, AccuracyRate: 33.3},
	}

	return Deps{
		Knowledge:   ks,
		Diagnosis:   diagnosis.NewService(ks),
		Recommender: recommend.New(ks),
		Profile:     p,
		Student:     "小明",
		Subject:     knowledge.SubjectMath,
		TargetGrade: 3,
	}
}

func TestHomeViewShowsStatsAndMenu(t *testing.T) {
	h := New(testDeps())

	view := h.View(80, 24)
	for _, want := range []string{"小明", "Grade 3", "mastered", "weak", "RUN DIAGNOSIS", "STUDY PLANS"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if h.masteredCount != 1 {
		t.Errorf("masteredCount = %d, want 1", h.masteredCount)
	}
	if h.weakCount != 1 {
		t.Errorf("weakCount = %d, want 1", h.weakCount)
	}
}

func TestHomeGradeInputRebuildsScreen(t *testing.T) {
	h := New(testDeps())

	// "g" opens the input, a digit fills it, enter replaces the screen.
	s, _ := h.Update(keyPress('g'))
	s, _ = s.Update(keyPress('2'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a valid grade produced no command")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want router.ReplaceScreenMsg", cmd())
	}
	next, ok := msg.Screen.(*HomeScreen)
	if !ok {
		t.Fatalf("replacement screen is %T, want *HomeScreen", msg.Screen)
	}
	if next.deps.TargetGrade != 2 {
		t.Errorf("TargetGrade = %d, want 2", next.deps.TargetGrade)
	}
}

func TestHomeGradeInputRejectsOutOfRange(t *testing.T) {
	h := New(testDeps())

	s, _ := h.Update(keyPress('g'))
	s, _ = s.Update(keyPress('9'))
	s, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on grade 9 should not produce a command")
	}
	if !strings.Contains(s.View(80, 24), "✗") {
		t.Error("invalid grade not marked in the view")
	}
}

func TestHomeGradeInputCancelsOnEscape(t *testing.T) {
	h := New(testDeps())

	s, _ := h.Update(keyPress('g'))
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	hs := s.(*HomeScreen)
	if hs.editingGrade {
		t.Error("escape did not close the grade input")
	}
}

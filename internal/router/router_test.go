package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/linwei/studymap/internal/screen"
)

// fakeScreen records lifecycle calls so tests can see where messages land.
type fakeScreen struct {
	name    string
	inits   int
	updates int
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }

type tickMsg struct{}

func TestPushAndPop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	child := &fakeScreen{name: "child"}
	r.Update(PushScreenMsg{Screen: child})

	if r.Depth() != 2 || r.Active() != child {
		t.Fatalf("after push: depth=%d active=%s", r.Depth(), r.Active().Title())
	}
	if child.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", child.inits)
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("after pop: depth=%d active=%s", r.Depth(), r.Active().Title())
	}
}

func TestPopKeepsRootScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("root screen must survive pops: depth=%d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "loading"}})

	result := &fakeScreen{name: "result"}
	r.Update(ReplaceScreenMsg{Screen: result})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2 (replace must not grow the stack)", r.Depth())
	}
	if r.Active() != result {
		t.Errorf("active = %s, want result", r.Active().Title())
	}
	if result.inits != 1 {
		t.Errorf("replacement inits = %d, want 1", result.inits)
	}
}

func TestUpdateReachesOnlyActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	child := &fakeScreen{name: "child"}
	r.Update(PushScreenMsg{Screen: child})

	r.Update(tickMsg{})

	if child.updates != 1 {
		t.Errorf("active screen updates = %d, want 1", child.updates)
	}
	if home.updates != 0 {
		t.Errorf("covered screen updates = %d, want 0", home.updates)
	}

	r.Update(PopScreenMsg{})
	r.Update(tickMsg{})
	if home.updates != 1 {
		t.Errorf("uncovered screen updates = %d, want 1", home.updates)
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "child"}})

	if got := r.View(80, 24); got != "child" {
		t.Errorf("view = %q, want the active screen's content", got)
	}
}

package knowledge

import (
	"testing"
)

// chainPoints builds the grade 1-3 math chain used across graph tests:
//
//	add20 ← add100 ← mult ← multBig
//	             └── sub100
func chainPoints() []Point {
	return []Point{
		{ID: "math_1_1", Subject: SubjectMath, Grade: 1, Name: "20以内加减法"},
		{ID: "math_2_1", Subject: SubjectMath, Grade: 2, Name: "100以内加减法", Prerequisites: []string{"math_1_1"}},
		{ID: "math_2_2", Subject: SubjectMath, Grade: 2, Name: "表内乘法", Prerequisites: []string{"math_2_1"}},
		{ID: "math_3_1", Subject: SubjectMath, Grade: 3, Name: "两位数乘法", Prerequisites: []string{"math_2_2"}},
		{ID: "math_3_2", Subject: SubjectMath, Grade: 3, Name: "万以内减法", Prerequisites: []string{"math_2_1"}},
	}
}

func TestGet(t *testing.T) {
	s := New(chainPoints())

	p, ok := s.Get("math_2_2")
	if !ok {
		t.Fatal("expected math_2_2 to resolve")
	}
	if p.Name != "表内乘法" {
		t.Errorf("name = %q, want 表内乘法", p.Name)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("unknown ID should not resolve")
	}
}

func TestNewDuplicateIDLastWinsKeepsPosition(t *testing.T) {
	s := New([]Point{
		{ID: "a", Subject: SubjectMath, Grade: 1, Name: "first"},
		{ID: "b", Subject: SubjectMath, Grade: 1, Name: "middle"},
		{ID: "a", Subject: SubjectMath, Grade: 1, Name: "second"},
	})

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}

	p, _ := s.Get("a")
	if p.Name != "second" {
		t.Errorf("duplicate ID should keep the later point, got %q", p.Name)
	}

	// The later point occupies the earlier position.
	all := s.All()
	if all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("order = [%s %s], want [a b]", all[0].ID, all[1].ID)
	}
}

func TestResolveNameScopedBySubject(t *testing.T) {
	s := New([]Point{
		{ID: "math_1", Subject: SubjectMath, Grade: 1, Name: "阅读理解"},
		{ID: "chinese_1", Subject: SubjectChinese, Grade: 1, Name: "阅读理解"},
	})

	p, ok := s.ResolveName(SubjectChinese, "阅读理解")
	if !ok || p.ID != "chinese_1" {
		t.Errorf("ResolveName(chinese) = %v %v, want chinese_1", p.ID, ok)
	}
	p, ok = s.ResolveName(SubjectMath, "阅读理解")
	if !ok || p.ID != "math_1" {
		t.Errorf("ResolveName(math) = %v %v, want math_1", p.ID, ok)
	}
	if _, ok := s.ResolveName(SubjectEnglish, "阅读理解"); ok {
		t.Error("name should not resolve in a subject that lacks it")
	}
}

func TestResolveNameFirstWins(t *testing.T) {
	s := New([]Point{
		{ID: "first", Subject: SubjectMath, Grade: 1, Name: "同名"},
		{ID: "second", Subject: SubjectMath, Grade: 2, Name: "同名"},
	})

	p, ok := s.ResolveName(SubjectMath, "同名")
	if !ok || p.ID != "first" {
		t.Errorf("duplicate name should resolve to the earlier point, got %q", p.ID)
	}
}

func TestByGradeSubjectKeepsLoadOrder(t *testing.T) {
	s := New(chainPoints())

	points := s.ByGradeSubject(SubjectMath, 3)
	if len(points) != 2 {
		t.Fatalf("got %d grade-3 points, want 2", len(points))
	}
	if points[0].ID != "math_3_1" || points[1].ID != "math_3_2" {
		t.Errorf("order = [%s %s], want [math_3_1 math_3_2]", points[0].ID, points[1].ID)
	}

	if got := s.ByGradeSubject(SubjectMath, 6); len(got) != 0 {
		t.Errorf("empty grade should return no points, got %d", len(got))
	}
}

func TestDirectPrerequisitesDropsDangling(t *testing.T) {
	s := New([]Point{
		{ID: "a", Subject: SubjectMath, Grade: 1, Name: "a"},
		{ID: "b", Subject: SubjectMath, Grade: 2, Name: "b", Prerequisites: []string{"a", "ghost"}},
	})

	prereqs := s.DirectPrerequisites("b")
	if len(prereqs) != 1 || prereqs[0].ID != "a" {
		t.Errorf("prereqs = %v, want just a", prereqs)
	}
}

func TestAllPrerequisitesOrderedFoundationalFirst(t *testing.T) {
	s := New(chainPoints())

	prereqs := s.AllPrerequisites("math_3_1")
	want := []string{"math_1_1", "math_2_1", "math_2_2"}
	if len(prereqs) != len(want) {
		t.Fatalf("got %d prereqs, want %d", len(prereqs), len(want))
	}
	for i, id := range want {
		if prereqs[i].ID != id {
			t.Errorf("prereqs[%d] = %s, want %s", i, prereqs[i].ID, id)
		}
	}
}

func TestAllPrerequisitesExcludesSelf(t *testing.T) {
	s := New(chainPoints())

	for _, p := range s.AllPrerequisites("math_3_1") {
		if p.ID == "math_3_1" {
			t.Error("closure must not contain the point itself")
		}
	}

	if got := s.AllPrerequisites("math_1_1"); len(got) != 0 {
		t.Errorf("root point should have empty closure, got %d", len(got))
	}
}

func TestAllPrerequisitesDiamondVisitsOnce(t *testing.T) {
	s := New([]Point{
		{ID: "base", Subject: SubjectMath, Grade: 1, Name: "base"},
		{ID: "left", Subject: SubjectMath, Grade: 2, Name: "left", Prerequisites: []string{"base"}},
		{ID: "right", Subject: SubjectMath, Grade: 2, Name: "right", Prerequisites: []string{"base"}},
		{ID: "top", Subject: SubjectMath, Grade: 3, Name: "top", Prerequisites: []string{"left", "right"}},
	})

	prereqs := s.AllPrerequisites("top")
	if len(prereqs) != 3 {
		t.Fatalf("got %d prereqs, want 3 (base counted once)", len(prereqs))
	}
	if prereqs[0].ID != "base" {
		t.Errorf("most foundational should come first, got %s", prereqs[0].ID)
	}
}

func TestAllPrerequisitesTerminatesOnCycle(t *testing.T) {
	s := New([]Point{
		{ID: "a", Subject: SubjectMath, Grade: 1, Name: "a", Prerequisites: []string{"b"}},
		{ID: "b", Subject: SubjectMath, Grade: 1, Name: "b", Prerequisites: []string{"a"}},
		{ID: "self", Subject: SubjectMath, Grade: 1, Name: "self", Prerequisites: []string{"self"}},
	})

	prereqs := s.AllPrerequisites("a")
	if len(prereqs) != 1 || prereqs[0].ID != "b" {
		t.Errorf("cycle closure = %v, want just b", prereqs)
	}

	if got := s.AllPrerequisites("self"); len(got) != 0 {
		t.Errorf("self-referencing point should have empty closure, got %v", got)
	}
}

func TestFindRootCause(t *testing.T) {
	s := New(chainPoints())

	tests := []struct {
		name     string
		weakID   string
		mastered map[string]bool
		want     string
	}{
		{
			name:     "nothing mastered picks deepest prerequisite",
			weakID:   "math_3_1",
			mastered: map[string]bool{},
			want:     "math_1_1",
		},
		{
			name:     "mastered foundation moves the cause up the chain",
			weakID:   "math_3_1",
			mastered: map[string]bool{"math_1_1": true, "math_2_1": true},
			want:     "math_2_2",
		},
		{
			name:     "all prerequisites mastered falls back to the point itself",
			weakID:   "math_3_1",
			mastered: map[string]bool{"math_1_1": true, "math_2_1": true, "math_2_2": true},
			want:     "math_3_1",
		},
		{
			name:     "no prerequisites falls back to the point itself",
			weakID:   "math_1_1",
			mastered: map[string]bool{},
			want:     "math_1_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause, ok := s.FindRootCause(tt.weakID, tt.mastered)
			if !ok {
				t.Fatal("expected a root cause")
			}
			if cause.ID != tt.want {
				t.Errorf("root cause = %s, want %s", cause.ID, tt.want)
			}
		})
	}

	if _, ok := s.FindRootCause("missing", nil); ok {
		t.Error("unknown weak ID should report no root cause")
	}
}

func TestLearningPath(t *testing.T) {
	s := New(chainPoints())

	path := s.LearningPath("math_2_1", "math_3_1")
	want := []string{"math_2_1", "math_2_2", "math_3_1"}
	if len(path) != len(want) {
		t.Fatalf("got %d steps, want %d", len(path), len(want))
	}
	for i, id := range want {
		if path[i].ID != id {
			t.Errorf("path[%d] = %s, want %s", i, path[i].ID, id)
		}
	}

	// Start not in the closure: path is just the target.
	path = s.LearningPath("math_3_2", "math_3_1")
	if len(path) != 1 || path[0].ID != "math_3_1" {
		t.Errorf("unrelated start should give only the target, got %v", path)
	}
}

func TestReadiness(t *testing.T) {
	s := New(chainPoints())

	ready, missing := s.Readiness("math_3_1", map[string]bool{"math_2_2": true})
	if !ready || len(missing) != 0 {
		t.Errorf("expected ready with direct prereq mastered, got ready=%v missing=%v", ready, missing)
	}

	ready, missing = s.Readiness("math_3_1", map[string]bool{})
	if ready {
		t.Error("expected not ready with unmastered prereq")
	}
	if len(missing) != 1 || missing[0].ID != "math_2_2" {
		t.Errorf("missing = %v, want math_2_2", missing)
	}
}

package recommend

import (
	"fmt"
	"testing"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
)

func planStore() *knowledge.Store {
	return knowledge.New([]knowledge.Point{
		{ID: "math_1_1", Subject: knowledge.SubjectMath, Grade: 1, Name: "20以内加减法"},
		{ID: "math_2_1", Subject: knowledge.SubjectMath, Grade: 2, Name: "100以内加减法", Prerequisites: []string{"math_1_1"}},
		{ID: "math_3_1", Subject: knowledge.SubjectMath, Grade: 3, Name: "两位数乘法", Prerequisites: []string{"math_2_1"}},
		{ID: "math_3_2", Subject: knowledge.SubjectMath, Grade: 3, Name: "万以内减法", Prerequisites: []string{"math_2_1"}},
	})
}

func planIDs(plans []Plan) []PlanID {
	ids := make([]PlanID, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestDailyPlansNoData(t *testing.T) {
	r := New(planStore())

	plans := r.DailyPlans(profile.Empty("xiaoming"), knowledge.SubjectMath, 3)
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2: %v", len(plans), planIDs(plans))
	}
	if plans[0].ID != PlanComprehensive || plans[1].ID != PlanQuick {
		t.Errorf("order = %v, want [comprehensive quick]", planIDs(plans))
	}

	// Nil profile behaves the same as an empty one.
	plans = r.DailyPlans(nil, knowledge.SubjectMath, 3)
	if len(plans) != 2 {
		t.Errorf("nil profile: got %d plans, want 2", len(plans))
	}
}

func TestDailyPlansWithWeaknesses(t *testing.T) {
	r := New(planStore())

	// Grade 1 mastered, grades 2-3 weak: root cause is 100以内加减法.
	p := &profile.Profile{
		StudentName: "xiaoming",
		PointStats: map[string]profile.Stat{
			"20以内加减法":  {Total: 10, AccuracyRate: 90},
			"100以内加减法": {Total: 4, AccuracyRate: 50},
			"两位数乘法":    {Total: 5, AccuracyRate: 40},
		},
	}

	plans := r.DailyPlans(p, knowledge.SubjectMath, 3)
	wantOrder := []PlanID{PlanRemedial, PlanWeakness, PlanComprehensive, PlanQuick}
	if len(plans) != len(wantOrder) {
		t.Fatalf("got %d plans (%v), want %v", len(plans), planIDs(plans), wantOrder)
	}
	for i, id := range wantOrder {
		if plans[i].ID != id {
			t.Errorf("plans[%d] = %s, want %s", i, plans[i].ID, id)
		}
	}

	remedial := plans[0]
	if !remedial.Remedial {
		t.Error("remedial plan should carry the Remedial flag")
	}
	if len(remedial.Points) != 1 || remedial.Points[0].ID != "math_2_1" {
		t.Errorf("remedial target = %v, want math_2_1", remedial.Points)
	}
	if remedial.Priority != PriorityHigh {
		t.Errorf("remedial priority = %s, want high", remedial.Priority)
	}
	// The root cause sits right above mastered ground, so nothing is missing
	// underneath it.
	if remedial.MissingPrereqs != 0 {
		t.Errorf("missing prereqs = %d, want 0", remedial.MissingPrereqs)
	}

	weakness := plans[1]
	// Both weak points fit; worst accuracy leads.
	if len(weakness.Points) != 2 {
		t.Fatalf("weakness targets = %d, want 2", len(weakness.Points))
	}
	if weakness.Points[0].ID != "math_3_1" || weakness.Points[1].ID != "math_2_1" {
		t.Errorf("weakness order = [%s %s], want [math_3_1 math_2_1]",
			weakness.Points[0].ID, weakness.Points[1].ID)
	}
	if weakness.Points[0].CurrentAccuracy != 40 {
		t.Errorf("accuracy = %v, want 40", weakness.Points[0].CurrentAccuracy)
	}
}

func TestWeaknessPlanCapsAtThreePoints(t *testing.T) {
	var points []knowledge.Point
	stats := make(map[string]profile.Stat)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("math_3_%d", i)
		name := fmt.Sprintf("点%d", i)
		points = append(points, knowledge.Point{
			ID: id, Subject: knowledge.SubjectMath, Grade: 3, Name: name,
		})
		stats[name] = profile.Stat{Total: 4, AccuracyRate: float64(10 + i*5)}
	}
	r := New(knowledge.New(points))

	plans := r.DailyPlans(&profile.Profile{StudentName: "x", PointStats: stats}, knowledge.SubjectMath, 3)

	var weakness *Plan
	for i := range plans {
		if plans[i].ID == PlanWeakness {
			weakness = &plans[i]
		}
	}
	if weakness == nil {
		t.Fatal("expected a weakness plan")
	}
	if len(weakness.Points) != 3 {
		t.Fatalf("got %d targets, want 3", len(weakness.Points))
	}
	// Worst three, five questions each.
	for i, pt := range weakness.Points {
		if pt.ID != fmt.Sprintf("math_3_%d", i) {
			t.Errorf("targets[%d] = %s, want math_3_%d", i, pt.ID, i)
		}
		if pt.Questions != 5 {
			t.Errorf("questions per point = %d, want 5", pt.Questions)
		}
	}
}

func TestPlanParameters(t *testing.T) {
	r := New(planStore())

	p := &profile.Profile{
		StudentName: "x",
		PointStats: map[string]profile.Stat{
			"两位数乘法": {Total: 4, AccuracyRate: 40},
		},
	}

	plans := r.DailyPlans(p, knowledge.SubjectMath, 3)
	byID := make(map[PlanID]Plan, len(plans))
	for _, pl := range plans {
		byID[pl.ID] = pl
	}

	tests := []struct {
		id        PlanID
		questions int
		mins      int
		priority  PlanPriority
	}{
		{PlanRemedial, 15, 20, PriorityHigh},
		{PlanWeakness, 15, 20, PriorityHigh},
		{PlanComprehensive, 20, 30, PriorityMedium},
		{PlanQuick, 10, 10, PriorityLow},
	}
	for _, tt := range tests {
		pl, ok := byID[tt.id]
		if !ok {
			t.Errorf("plan %s missing", tt.id)
			continue
		}
		if pl.TotalQuestions != tt.questions || pl.EstimatedMins != tt.mins {
			t.Errorf("%s: %dq/%dmin, want %dq/%dmin",
				tt.id, pl.TotalQuestions, pl.EstimatedMins, tt.questions, tt.mins)
		}
		if pl.Priority != tt.priority {
			t.Errorf("%s priority = %s, want %s", tt.id, pl.Priority, tt.priority)
		}
	}
}

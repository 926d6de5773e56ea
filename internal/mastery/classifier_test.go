package mastery

import (
	"testing"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
)

func testStore() *knowledge.Store {
	return knowledge.New([]knowledge.Point{
		{ID: "math_1_1", Subject: knowledge.SubjectMath, Grade: 1, Name: "20以内加减法"},
		{ID: "math_2_1", Subject: knowledge.SubjectMath, Grade: 2, Name: "100以内加减法"},
		{ID: "math_3_1", Subject: knowledge.SubjectMath, Grade: 3, Name: "两位数乘法"},
		{ID: "math_4_1", Subject: knowledge.SubjectMath, Grade: 4, Name: "四则混合运算"},
	})
}

func profileWith(stats map[string]profile.Stat) *profile.Profile {
	return &profile.Profile{StudentName: "xiaoming", PointStats: stats}
}

func TestMasteredSet(t *testing.T) {
	c := NewClassifier(testStore())

	tests := []struct {
		name string
		stat profile.Stat
		want bool
	}{
		{"high accuracy enough attempts", profile.Stat{Total: 5, AccuracyRate: 90}, true},
		{"exactly at both thresholds", profile.Stat{Total: 3, AccuracyRate: 80}, true},
		{"accuracy below threshold", profile.Stat{Total: 5, AccuracyRate: 79.9}, false},
		{"too few attempts", profile.Stat{Total: 2, AccuracyRate: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileWith(map[string]profile.Stat{"两位数乘法": tt.stat})
			mastered := c.MasteredSet(p, knowledge.SubjectMath)
			if got := mastered["math_3_1"]; got != tt.want {
				t.Errorf("mastered = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMasteredSetDropsUnresolvableNames(t *testing.T) {
	c := NewClassifier(testStore())
	p := profileWith(map[string]profile.Stat{
		"不存在的知识点": {Total: 10, AccuracyRate: 95},
	})

	if got := c.MasteredSet(p, knowledge.SubjectMath); len(got) != 0 {
		t.Errorf("unresolvable stat should be dropped, got %v", got)
	}
}

func TestMasteredSetNilProfile(t *testing.T) {
	c := NewClassifier(testStore())
	if got := c.MasteredSet(nil, knowledge.SubjectMath); len(got) != 0 {
		t.Errorf("nil profile should yield empty set, got %v", got)
	}
}

func TestDiagnosisAndListingThresholdsDiffer(t *testing.T) {
	c := NewClassifier(testStore())

	// 65% sits between the diagnosis cutoff (60) and the listing cutoff (70):
	// shaky enough to show the student, not serious enough for a root-cause
	// walk.
	p := profileWith(map[string]profile.Stat{
		"两位数乘法": {Total: 4, AccuracyRate: 65},
	})

	if got := c.DiagnosisWeakPoints(p, knowledge.SubjectMath, 4); len(got) != 0 {
		t.Errorf("65%% should not be diagnosis-weak, got %v", got)
	}
	if got := c.ListWeakPoints(p, knowledge.SubjectMath, 4); len(got) != 1 {
		t.Errorf("65%% should be listing-weak, got %v", got)
	}
}

func TestWeakPointsSingleAttemptNeverFlagged(t *testing.T) {
	c := NewClassifier(testStore())

	// One bad attempt is not evidence of weakness under either threshold.
	p := profileWith(map[string]profile.Stat{
		"两位数乘法": {Total: 1, AccuracyRate: 0},
	})

	if got := c.DiagnosisWeakPoints(p, knowledge.SubjectMath, 4); len(got) != 0 {
		t.Errorf("single attempt flagged as diagnosis-weak: %v", got)
	}
	if got := c.ListWeakPoints(p, knowledge.SubjectMath, 4); len(got) != 0 {
		t.Errorf("single attempt flagged as listing-weak: %v", got)
	}
}

func TestWeakPointsSortedWorstFirst(t *testing.T) {
	c := NewClassifier(testStore())

	p := profileWith(map[string]profile.Stat{
		"两位数乘法":   {Total: 4, AccuracyRate: 50},
		"20以内加减法": {Total: 4, AccuracyRate: 30},
		"100以内加减法": {Total: 4, AccuracyRate: 50},
	})

	weak := c.DiagnosisWeakPoints(p, knowledge.SubjectMath, 4)
	if len(weak) != 3 {
		t.Fatalf("got %d weak points, want 3", len(weak))
	}
	if weak[0].Point.ID != "math_1_1" {
		t.Errorf("worst point should come first, got %s", weak[0].Point.ID)
	}
	// Equal accuracy breaks ties by ID so the order is deterministic.
	if weak[1].Point.ID != "math_2_1" || weak[2].Point.ID != "math_3_1" {
		t.Errorf("tie order = [%s %s], want [math_2_1 math_3_1]",
			weak[1].Point.ID, weak[2].Point.ID)
	}
}

func TestWeakPointsRespectMaxGrade(t *testing.T) {
	c := NewClassifier(testStore())

	p := profileWith(map[string]profile.Stat{
		"四则混合运算": {Total: 4, AccuracyRate: 40}, // grade 4
		"两位数乘法":  {Total: 4, AccuracyRate: 40}, // grade 3
	})

	weak := c.DiagnosisWeakPoints(p, knowledge.SubjectMath, 3)
	if len(weak) != 1 || weak[0].Point.ID != "math_3_1" {
		t.Errorf("grade filter failed, got %v", weak)
	}
}

func TestAccuracyDefaultsToFull(t *testing.T) {
	pt := knowledge.Point{Name: "两位数乘法"}

	if got := Accuracy(nil, pt); got != 100 {
		t.Errorf("nil profile accuracy = %v, want 100", got)
	}

	p := profileWith(map[string]profile.Stat{})
	if got := Accuracy(p, pt); got != 100 {
		t.Errorf("unpracticed accuracy = %v, want 100", got)
	}

	p = profileWith(map[string]profile.Stat{"两位数乘法": {Total: 4, AccuracyRate: 62.5}})
	if got := Accuracy(p, pt); got != 62.5 {
		t.Errorf("accuracy = %v, want 62.5", got)
	}
}

package diagnosis

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
)

// chainStore is the grade 1-3 multiplication chain:
// 20以内加减法 ← 100以内加减法 ← 两位数乘法
func chainStore() *knowledge.Store {
	return knowledge.New([]knowledge.Point{
		{ID: "math_1_1", Subject: knowledge.SubjectMath, Grade: 1, Name: "20以内加减法"},
		{ID: "math_2_1", Subject: knowledge.SubjectMath, Grade: 2, Name: "100以内加减法", Prerequisites: []string{"math_1_1"}},
		{ID: "math_3_1", Subject: knowledge.SubjectMath, Grade: 3, Name: "两位数乘法", Prerequisites: []string{"math_2_1"}},
		{ID: "math_3_2", Subject: knowledge.SubjectMath, Grade: 3, Name: "万以内减法", Prerequisites: []string{"math_2_1"}},
	})
}

func chainProfile() *profile.Profile {
	return &profile.Profile{
		StudentName: "xiaoming",
		PointStats: map[string]profile.Stat{
			"20以内加减法":  {Total: 10, AccuracyRate: 90}, // mastered
			"100以内加减法": {Total: 4, AccuracyRate: 50},  // weak
			"两位数乘法":    {Total: 5, AccuracyRate: 40},  // weak
		},
	}
}

func TestDiagnoseRequiresData(t *testing.T) {
	svc := NewService(chainStore())

	_, err := svc.Diagnose(profile.Empty("xiaoming"), knowledge.SubjectMath, 3)
	if !errors.Is(err, ErrNoProfile) {
		t.Errorf("err = %v, want ErrNoProfile", err)
	}
}

func TestDiagnoseRequiresCurriculum(t *testing.T) {
	svc := NewService(chainStore())

	_, err := svc.Diagnose(chainProfile(), knowledge.SubjectEnglish, 3)
	if err == nil {
		t.Error("expected error for a subject with no loaded points")
	}
}

func TestDiagnoseReport(t *testing.T) {
	svc := NewService(chainStore())

	rep, err := svc.Diagnose(chainProfile(), knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}

	if rep.StudentName != "xiaoming" {
		t.Errorf("student = %q, want xiaoming", rep.StudentName)
	}
	if rep.MasteredCount != 1 {
		t.Errorf("mastered = %d, want 1", rep.MasteredCount)
	}
	if rep.WeakCount != 2 {
		t.Errorf("weak = %d, want 2", rep.WeakCount)
	}

	// Weak points ordered worst first.
	if rep.WeakPoints[0].Point.ID != "math_3_1" || rep.WeakPoints[1].Point.ID != "math_2_1" {
		t.Errorf("weak order = [%s %s], want [math_3_1 math_2_1]",
			rep.WeakPoints[0].Point.ID, rep.WeakPoints[1].Point.ID)
	}

	// Grade 1 is mastered, grade 2 is the gap: both weak points trace back to
	// the unmastered 100以内加减法, deduplicated into one cause.
	if len(rep.RootCauses) != 1 || rep.RootCauses[0].ID != "math_2_1" {
		t.Errorf("root causes = %v, want [math_2_1]", rep.RootCauses)
	}

	// Grade 1 fully mastered, grades 2-3 not: level 1.0.
	if rep.ActualGradeLevel != 1.0 {
		t.Errorf("level = %v, want 1.0", rep.ActualGradeLevel)
	}
}

func TestDiagnoseIsDeterministic(t *testing.T) {
	svc := NewService(chainStore())
	p := chainProfile()

	first, err := svc.Diagnose(p, knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Diagnose(p, knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two diagnoses of the same inputs differ")
	}
}

// wideFixture builds n independent weak points, each with its own unmastered
// base prerequisite, so every probe yields a distinct root cause.
func wideFixture(n int) (*knowledge.Store, *profile.Profile) {
	var points []knowledge.Point
	stats := make(map[string]profile.Stat)
	for i := 0; i < n; i++ {
		base := fmt.Sprintf("base_%02d", i)
		weak := fmt.Sprintf("weak_%02d", i)
		points = append(points,
			knowledge.Point{ID: base, Subject: knowledge.SubjectMath, Grade: 1, Name: base},
			knowledge.Point{ID: weak, Subject: knowledge.SubjectMath, Grade: 2, Name: weak, Prerequisites: []string{base}},
		)
		// Ascending accuracy keeps probe order aligned with point index.
		stats[weak] = profile.Stat{Total: 4, AccuracyRate: float64(10 + i)}
	}
	return knowledge.New(points), &profile.Profile{StudentName: "x", PointStats: stats}
}

func TestRootCausesCappedAtMaxProbes(t *testing.T) {
	store, p := wideFixture(8)
	svc := NewService(store)

	weak := svc.classifier.DiagnosisWeakPoints(p, knowledge.SubjectMath, 2)
	if len(weak) != 8 {
		t.Fatalf("fixture: got %d weak points, want 8", len(weak))
	}

	causes := svc.RootCauses(weak, map[string]bool{})
	if len(causes) != MaxRootCauseProbes {
		t.Fatalf("got %d causes, want %d", len(causes), MaxRootCauseProbes)
	}
	// The probes hit the worst points, in order.
	for i, c := range causes {
		want := fmt.Sprintf("base_%02d", i)
		if c.ID != want {
			t.Errorf("causes[%d] = %s, want %s", i, c.ID, want)
		}
	}
}

func TestRootCausesDeduplicated(t *testing.T) {
	store := chainStore()
	svc := NewService(store)

	// Both grade-3 points share the same unmastered prerequisite chain.
	weak := svc.classifier.DiagnosisWeakPoints(&profile.Profile{
		StudentName: "x",
		PointStats: map[string]profile.Stat{
			"两位数乘法": {Total: 4, AccuracyRate: 40},
			"万以内减法": {Total: 4, AccuracyRate: 50},
		},
	}, knowledge.SubjectMath, 3)

	causes := svc.RootCauses(weak, map[string]bool{})
	if len(causes) != 1 || causes[0].ID != "math_1_1" {
		t.Errorf("causes = %v, want just math_1_1", causes)
	}
}

func TestReportListsCapped(t *testing.T) {
	store, p := wideFixture(14)
	svc := NewService(store)

	rep, err := svc.Diagnose(p, knowledge.SubjectMath, 2)
	if err != nil {
		t.Fatal(err)
	}
	if rep.WeakCount != 14 {
		t.Errorf("weak count = %d, want 14", rep.WeakCount)
	}
	if len(rep.WeakPoints) != maxReportEntries {
		t.Errorf("listed weak points = %d, want %d", len(rep.WeakPoints), maxReportEntries)
	}
}

func TestBuildAdvice(t *testing.T) {
	store := chainStore()
	svc := NewService(store)

	rep, err := svc.Diagnose(chainProfile(), knowledge.SubjectMath, 3)
	if err != nil {
		t.Fatal(err)
	}

	kinds := make([]string, 0, len(rep.Recommendations))
	for _, adv := range rep.Recommendations {
		kinds = append(kinds, adv.Kind)
	}

	// Level 1.0 against target 3 trips the grade-gap advice; a root cause and
	// weak points exist, so all three kinds appear in priority order.
	want := []string{"remedial", "grade-gap", "focus"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("advice kinds = %v, want %v", kinds, want)
	}

	if rep.Recommendations[0].PointID != "math_2_1" {
		t.Errorf("remedial advice targets %s, want math_2_1", rep.Recommendations[0].PointID)
	}
	if rep.Recommendations[1].Grade != 2 {
		t.Errorf("grade-gap restart grade = %d, want 2", rep.Recommendations[1].Grade)
	}
}

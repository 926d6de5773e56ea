package diagnosis

import (
	"fmt"
	"testing"

	"github.com/linwei/studymap/internal/knowledge"
)

// levelStore has 2 points per grade for math grades 1-3 so mastery rates are
// easy to dial: 0, 1, or 2 mastered points per grade give 0%, 50%, 100%.
func levelStore() *knowledge.Store {
	var points []knowledge.Point
	for grade := 1; grade <= 3; grade++ {
		for i := 1; i <= 2; i++ {
			id := fmt.Sprintf("math_%d_%d", grade, i)
			points = append(points, knowledge.Point{
				ID: id, Subject: knowledge.SubjectMath, Grade: grade, Name: id,
			})
		}
	}
	return knowledge.New(points)
}

func TestEstimateGradeLevel(t *testing.T) {
	s := levelStore()

	tests := []struct {
		name     string
		mastered []string
		target   int
		want     float64
	}{
		{
			name:     "nothing mastered",
			mastered: nil,
			target:   3,
			want:     0,
		},
		{
			name:     "all mastered reaches the target",
			mastered: []string{"math_1_1", "math_1_2", "math_2_1", "math_2_2", "math_3_1", "math_3_2"},
			target:   3,
			want:     3,
		},
		{
			name:     "half of grade 2 credits grade 1.5",
			mastered: []string{"math_1_1", "math_1_2", "math_2_1"},
			target:   3,
			want:     1.5,
		},
		{
			name: "a gap stops the walk even when later grades are mastered",
			// Grade 2 fully missed; grade 3 fully mastered must not count.
			mastered: []string{"math_1_1", "math_1_2", "math_3_1", "math_3_2"},
			target:   3,
			want:     1,
		},
		{
			name:     "half credit then full miss keeps the half grade",
			mastered: []string{"math_1_1"},
			target:   3,
			want:     0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := make(map[string]bool, len(tt.mastered))
			for _, id := range tt.mastered {
				set[id] = true
			}
			got := EstimateGradeLevel(s, set, knowledge.SubjectMath, tt.target)
			if got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateGradeLevelSkipsEmptyGrades(t *testing.T) {
	// Curriculum only has grades 1 and 3; grade 2 must not stop the walk.
	s := knowledge.New([]knowledge.Point{
		{ID: "math_1_1", Subject: knowledge.SubjectMath, Grade: 1, Name: "a"},
		{ID: "math_3_1", Subject: knowledge.SubjectMath, Grade: 3, Name: "b"},
	})

	mastered := map[string]bool{"math_1_1": true, "math_3_1": true}
	if got := EstimateGradeLevel(s, mastered, knowledge.SubjectMath, 3); got != 3 {
		t.Errorf("level = %v, want 3 (empty grade 2 skipped)", got)
	}
}

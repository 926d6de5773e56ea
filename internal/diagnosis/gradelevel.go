package diagnosis

import (
	"math"

	"github.com/linwei/studymap/internal/knowledge"
)

// Mastery-rate cutoffs for crediting a grade.
const (
	fullCreditRate = 0.8
	halfCreditRate = 0.5
)

// EstimateGradeLevel converts a mastered-ID set into an effective grade level
// with half-grade granularity. Grades are evaluated in ascending order:
// mastering at least 80% of a grade's points credits the full grade, 50-80%
// credits grade-0.5, and below 50% stops the walk so later grades cannot
// raise the estimate past the gap. Grades without curriculum points are
// skipped without resetting the running estimate.
func EstimateGradeLevel(store *knowledge.Store, mastered map[string]bool, subject knowledge.Subject, targetGrade int) float64 {
	level := 0.0

	for grade := knowledge.MinGrade; grade <= targetGrade; grade++ {
		points := store.ByGradeSubject(subject, grade)
		if len(points) == 0 {
			continue
		}

		masteredCount := 0
		for _, p := range points {
			if mastered[p.ID] {
				masteredCount++
			}
		}
		rate := float64(masteredCount) / float64(len(points))

		switch {
		case rate >= fullCreditRate:
			level = float64(grade)
		case rate >= halfCreditRate:
			level = float64(grade) - 0.5
		default:
			return math.Round(level*10) / 10
		}
	}

	return math.Round(level*10) / 10
}

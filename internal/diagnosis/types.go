package diagnosis

import (
	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/mastery"
)

// Priority labels advice urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Advice is one actionable line in a diagnosis report.
type Advice struct {
	Priority    Priority `json:"priority"`
	Kind        string   `json:"kind"` // "remedial", "grade-gap", "focus"
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PointID     string   `json:"point_id,omitempty"` // set for point-targeted advice
	PointName   string   `json:"point_name,omitempty"`
	Grade       int      `json:"grade,omitempty"`
	Action      string   `json:"action"`
}

// Report is the complete outcome of one diagnosis run. It is constructed
// fresh per call and never mutated afterwards.
type Report struct {
	StudentName string            `json:"student_name"`
	Subject     knowledge.Subject `json:"subject"`
	TargetGrade int               `json:"target_grade"`

	// ActualGradeLevel is the estimated effective grade in half-grade steps.
	ActualGradeLevel float64 `json:"actual_grade_level"`

	MasteredCount int `json:"mastered_count"`
	WeakCount     int `json:"weak_count"`

	// RootCauses are the prerequisite points to remediate first, most
	// foundational first.
	RootCauses []knowledge.Point `json:"root_causes"`

	// WeakPoints are the flagged points themselves, worst accuracy first.
	WeakPoints []mastery.WeakPoint `json:"weak_points"`

	Recommendations []Advice `json:"recommendations"`
}

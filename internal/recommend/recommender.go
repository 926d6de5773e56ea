package recommend

import (
	"fmt"

	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/mastery"
	"github.com/linwei/studymap/internal/profile"
)

// Recommender assembles the daily practice plans for a student. It reads the
// shared knowledge store and the student's profile; it never mutates either.
type Recommender struct {
	store      *knowledge.Store
	classifier *mastery.Classifier
	diag       *diagnosis.Service
}

// New creates a Recommender over the given store.
func New(store *knowledge.Store) *Recommender {
	return &Recommender{
		store:      store,
		classifier: mastery.NewClassifier(store),
		diag:       diagnosis.NewService(store),
	}
}

// DailyPlans returns the ordered plan list for one student, subject, and
// grade. A remedial plan leads when a root cause exists, followed by a
// weakness plan when weak points exist; the comprehensive and quick plans are
// always present. Without any student data the result is exactly the
// comprehensive and quick plans.
func (r *Recommender) DailyPlans(p *profile.Profile, subject knowledge.Subject, grade int) []Plan {
	var plans []Plan

	weak := r.classifier.DiagnosisWeakPoints(p, subject, grade)
	if len(weak) > 0 {
		mastered := r.classifier.MasteredSet(p, subject)
		if causes := r.diag.RootCauses(weak, mastered); len(causes) > 0 {
			plans = append(plans, r.remedialPlan(causes[0], mastered))
		}
		plans = append(plans, weaknessPlan(weak))
	}

	plans = append(plans, comprehensivePlan(r.store, subject, grade))
	plans = append(plans, quickPlan())

	return plans
}

// remedialPlan targets the single highest-ranked root cause.
func (r *Recommender) remedialPlan(cause knowledge.Point, mastered map[string]bool) Plan {
	_, missing := r.store.Readiness(cause.ID, mastered)

	return Plan{
		ID:   PlanRemedial,
		Name: "Foundation Catch-up",
		Description: fmt.Sprintf("Go back to grade %d and rebuild %q, the root cause of the current gaps",
			cause.Grade, cause.Name),
		Points: []PlanPoint{{
			ID:        cause.ID,
			Name:      cause.Name,
			Grade:     cause.Grade,
			Questions: remedialPlanQuestions,
		}},
		TotalQuestions: remedialPlanQuestions,
		EstimatedMins:  remedialPlanMins,
		Difficulty:     knowledge.DifficultyEasy.Label(),
		Goal:           "Solidify the foundation before moving on",
		Priority:       PriorityHigh,
		Remedial:       true,
		MissingPrereqs: len(missing),
	}
}

// weaknessPlan drills the worst few weak points.
func weaknessPlan(weak []mastery.WeakPoint) Plan {
	selected := weak
	if len(selected) > weaknessPlanPoints {
		selected = selected[:weaknessPlanPoints]
	}

	perPoint := weaknessPlanQuestions / weaknessPlanPoints
	points := make([]PlanPoint, 0, len(selected))
	for _, wp := range selected {
		points = append(points, PlanPoint{
			ID:              wp.Point.ID,
			Name:            wp.Point.Name,
			Grade:           wp.Point.Grade,
			CurrentAccuracy: wp.Accuracy,
			Questions:       perPoint,
		})
	}

	return Plan{
		ID:             PlanWeakness,
		Name:           "Weak-point Breakthrough",
		Description:    fmt.Sprintf("Drill the %d weakest knowledge points, %d questions each", len(points), perPoint),
		Points:         points,
		TotalQuestions: weaknessPlanQuestions,
		EstimatedMins:  weaknessPlanMins,
		Difficulty:     "Easy to Medium",
		Goal:           "Shore up weak spots and raise accuracy",
		Priority:       PriorityHigh,
	}
}

// comprehensivePlan covers the grade's main points.
func comprehensivePlan(store *knowledge.Store, subject knowledge.Subject, grade int) Plan {
	count := len(store.ByGradeSubject(subject, grade))
	if count > 10 {
		count = 10
	}

	return Plan{
		ID:             PlanComprehensive,
		Name:           "Comprehensive Review",
		Description:    fmt.Sprintf("Cover the main grade %d knowledge points (%d topics)", grade, count),
		TotalQuestions: comprehensivePlanQuestions,
		EstimatedMins:  comprehensivePlanMins,
		Difficulty:     knowledge.DifficultyMedium.Label(),
		Goal:           "Review broadly and find remaining gaps",
		Priority:       PriorityMedium,
	}
}

// quickPlan is the fixed daily warm-up.
func quickPlan() Plan {
	return Plan{
		ID:             PlanQuick,
		Name:           "Quick Practice",
		Description:    "Ten picked questions for a fast daily round",
		TotalQuestions: quickPlanQuestions,
		EstimatedMins:  quickPlanMins,
		Difficulty:     knowledge.DifficultyEasy.Label(),
		Goal:           "Stay sharp with a daily touch",
		Priority:       PriorityLow,
	}
}

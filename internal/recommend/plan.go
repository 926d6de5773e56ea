package recommend

// PlanID identifies a remediation plan family.
type PlanID string

const (
	PlanRemedial      PlanID = "remedial-study"
	PlanWeakness      PlanID = "weakness-breakthrough"
	PlanComprehensive PlanID = "comprehensive-review"
	PlanQuick         PlanID = "quick-practice"
)

// PlanPriority labels plan urgency for display ordering.
type PlanPriority string

const (
	PriorityHigh   PlanPriority = "high"
	PriorityMedium PlanPriority = "medium"
	PriorityLow    PlanPriority = "low"
)

// PlanPoint is one knowledge point targeted by a plan.
type PlanPoint struct {
	ID              string
	Name            string
	Grade           int
	CurrentAccuracy float64
	Questions       int
}

// Plan is a recommended practice session. Plans are pure data constructions:
// fixed or templated text with fixed numeric targets, never persisted and
// never fetched from configuration.
type Plan struct {
	ID          PlanID
	Name        string
	Description string

	// Points lists the specific targets for point-scoped plans; empty for
	// the comprehensive and quick plans.
	Points []PlanPoint

	TotalQuestions int
	EstimatedMins  int
	Difficulty     string
	Goal           string
	Priority       PlanPriority

	// Remedial marks the prerequisite catch-up plan.
	Remedial bool

	// MissingPrereqs counts unmastered direct prerequisites of the remedial
	// target, so the UI can warn when even the root cause needs groundwork.
	MissingPrereqs int
}

// Fixed plan parameters.
const (
	weaknessPlanPoints    = 3
	weaknessPlanQuestions = 15
	weaknessPlanMins      = 20

	comprehensivePlanQuestions = 20
	comprehensivePlanMins      = 30

	quickPlanQuestions = 10
	quickPlanMins      = 10

	remedialPlanQuestions = 15
	remedialPlanMins      = 20
)

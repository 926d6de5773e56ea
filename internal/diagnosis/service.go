package diagnosis

import (
	"errors"
	"fmt"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/mastery"
	"github.com/linwei/studymap/internal/profile"
)

// ErrNoProfile is returned when diagnosis is requested for a student with no
// recorded data. Unlike the listing and recommendation paths, diagnosis has
// nothing sensible to degrade to.
var ErrNoProfile = errors.New("diagnosis requires a student profile with recorded data")

// MaxRootCauseProbes bounds how many weak points get a prerequisite walk per
// diagnosis; the weak list is sorted worst-first upstream, so the probes hit
// the points that matter most.
const MaxRootCauseProbes = 5

// maxReportEntries caps the root-cause and weak-point lists in a report.
const maxReportEntries = 10

// Service runs diagnoses against a loaded knowledge store. It is stateless
// between calls; two calls with the same inputs produce identical reports.
type Service struct {
	store      *knowledge.Store
	classifier *mastery.Classifier
}

// NewService creates a diagnosis service over the given store.
func NewService(store *knowledge.Store) *Service {
	return &Service{
		store:      store,
		classifier: mastery.NewClassifier(store),
	}
}

// Diagnose analyzes a student's mastery of one subject up to targetGrade and
// returns a full report: mastered/weak counts, root-cause prerequisites,
// estimated grade level, and prioritized advice.
func (s *Service) Diagnose(p *profile.Profile, subject knowledge.Subject, targetGrade int) (*Report, error) {
	if !p.HasData() {
		return nil, ErrNoProfile
	}

	targetPoints := s.store.ByGradeSubject(subject, targetGrade)
	if len(targetPoints) == 0 {
		return nil, fmt.Errorf("no curriculum loaded for %s grade %d", subject, targetGrade)
	}

	mastered := s.classifier.MasteredSet(p, subject)
	weak := s.classifier.DiagnosisWeakPoints(p, subject, targetGrade)
	rootCauses := s.RootCauses(weak, mastered)
	level := EstimateGradeLevel(s.store, mastered, subject, targetGrade)

	report := &Report{
		StudentName:      p.StudentName,
		Subject:          subject,
		TargetGrade:      targetGrade,
		ActualGradeLevel: level,
		MasteredCount:    len(mastered),
		WeakCount:        len(weak),
		RootCauses:       capPoints(rootCauses, maxReportEntries),
		WeakPoints:       capWeak(weak, maxReportEntries),
		Recommendations:  buildAdvice(rootCauses, weak, level, targetGrade),
	}
	return report, nil
}

// RootCauses resolves the root cause of each weak point, probing at most
// MaxRootCauseProbes points and suppressing duplicate causes. The first
// occurrence of a cause wins its place in the order.
func (s *Service) RootCauses(weak []mastery.WeakPoint, mastered map[string]bool) []knowledge.Point {
	var causes []knowledge.Point
	seen := make(map[string]bool)

	probes := weak
	if len(probes) > MaxRootCauseProbes {
		probes = probes[:MaxRootCauseProbes]
	}
	for _, wp := range probes {
		cause, ok := s.store.FindRootCause(wp.Point.ID, mastered)
		if !ok || seen[cause.ID] {
			continue
		}
		seen[cause.ID] = true
		causes = append(causes, cause)
	}
	return causes
}

// buildAdvice turns diagnosis findings into ordered, prioritized advice.
func buildAdvice(rootCauses []knowledge.Point, weak []mastery.WeakPoint, level float64, targetGrade int) []Advice {
	var advice []Advice

	if len(rootCauses) > 0 {
		rc := rootCauses[0]
		advice = append(advice, Advice{
			Priority:    PriorityHigh,
			Kind:        "remedial",
			Title:       fmt.Sprintf("Remediate first: grade %d — %s", rc.Grade, rc.Name),
			Description: "This prerequisite is the root cause of the current weaknesses; start here.",
			PointID:     rc.ID,
			PointName:   rc.Name,
			Grade:       rc.Grade,
			Action:      fmt.Sprintf("Generate a targeted practice sheet for %q", rc.Name),
		})
	}

	if level < float64(targetGrade)-0.5 {
		restartGrade := int(level + 1)
		advice = append(advice, Advice{
			Priority: PriorityHigh,
			Kind:     "grade-gap",
			Title:    fmt.Sprintf("Restart systematic study from grade %d material", restartGrade),
			Description: fmt.Sprintf("Estimated level is %.1f, below the grade %d target.",
				level, targetGrade),
			Grade:  restartGrade,
			Action: "Build a catch-up study plan",
		})
	}

	if len(weak) > 0 {
		wp := weak[0]
		advice = append(advice, Advice{
			Priority:    PriorityMedium,
			Kind:        "focus",
			Title:       fmt.Sprintf("Focus practice: %s", wp.Point.Name),
			Description: fmt.Sprintf("Accuracy is %.0f%% over %d attempts; this point needs repetition.", wp.Accuracy, wp.Attempts),
			PointID:     wp.Point.ID,
			PointName:   wp.Point.Name,
			Grade:       wp.Point.Grade,
			Action:      "Practice 5-10 related questions daily",
		})
	}

	return advice
}

func capPoints(points []knowledge.Point, n int) []knowledge.Point {
	if len(points) > n {
		return points[:n]
	}
	return points
}

func capWeak(weak []mastery.WeakPoint, n int) []mastery.WeakPoint {
	if len(weak) > n {
		return weak[:n]
	}
	return weak
}

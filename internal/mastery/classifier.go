package mastery

import (
	"sort"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/profile"
)

// Threshold constants. The two weak thresholds are intentionally different:
// diagnosis hunts for serious gaps worth a prerequisite walk, while the
// listing surfaces anything shaky enough to show the student. Keep them
// separate per consumer.
const (
	// MasteredMinAccuracy / MasteredMinAttempts gate the mastered judgment.
	MasteredMinAccuracy = 80.0
	MasteredMinAttempts = 3

	// DiagnosisWeakMaxAccuracy / DiagnosisWeakMinAttempts gate the weak set
	// fed into root-cause resolution.
	DiagnosisWeakMaxAccuracy = 60.0
	DiagnosisWeakMinAttempts = 2

	// ListingWeakMaxAccuracy / ListingWeakMinAttempts gate the lighter-weight
	// weak-point listing shown outside diagnosis.
	ListingWeakMaxAccuracy = 70.0
	ListingWeakMinAttempts = 2
)

// WeakPoint pairs a knowledge point with the accuracy that flagged it.
type WeakPoint struct {
	Point    knowledge.Point `json:"point"`
	Accuracy float64         `json:"accuracy"`
	Attempts int             `json:"attempts"`
}

// Classifier turns raw per-point statistics into mastery judgments. It holds
// no state beyond the store reference; every method is a pure function of its
// inputs.
type Classifier struct {
	store *knowledge.Store
}

// NewClassifier creates a classifier over the given knowledge store.
func NewClassifier(store *knowledge.Store) *Classifier {
	return &Classifier{store: store}
}

// MasteredSet returns the IDs of the subject's points the student has
// mastered. Stats whose display name does not resolve to a point in the
// subject are dropped silently.
func (c *Classifier) MasteredSet(p *profile.Profile, subject knowledge.Subject) map[string]bool {
	mastered := make(map[string]bool)
	if p == nil {
		return mastered
	}
	for name, stat := range p.PointStats {
		if stat.AccuracyRate < MasteredMinAccuracy || stat.Total < MasteredMinAttempts {
			continue
		}
		if point, ok := c.store.ResolveName(subject, name); ok {
			mastered[point.ID] = true
		}
	}
	return mastered
}

// DiagnosisWeakPoints returns the subject's weak points at or below maxGrade
// under the diagnosis thresholds, sorted by accuracy ascending.
func (c *Classifier) DiagnosisWeakPoints(p *profile.Profile, subject knowledge.Subject, maxGrade int) []WeakPoint {
	return c.weakPoints(p, subject, maxGrade, DiagnosisWeakMaxAccuracy, DiagnosisWeakMinAttempts)
}

// ListWeakPoints returns the subject's weak points at or below maxGrade under
// the looser listing thresholds, sorted by accuracy ascending.
func (c *Classifier) ListWeakPoints(p *profile.Profile, subject knowledge.Subject, maxGrade int) []WeakPoint {
	return c.weakPoints(p, subject, maxGrade, ListingWeakMaxAccuracy, ListingWeakMinAttempts)
}

func (c *Classifier) weakPoints(p *profile.Profile, subject knowledge.Subject, maxGrade int, maxAccuracy float64, minAttempts int) []WeakPoint {
	if p == nil {
		return nil
	}

	var weak []WeakPoint
	for name, stat := range p.PointStats {
		if stat.AccuracyRate >= maxAccuracy || stat.Total < minAttempts {
			continue
		}
		point, ok := c.store.ResolveName(subject, name)
		if !ok || point.Grade > maxGrade {
			continue
		}
		weak = append(weak, WeakPoint{
			Point:    point,
			Accuracy: stat.AccuracyRate,
			Attempts: stat.Total,
		})
	}

	// Worst first; point ID breaks ties so the order is stable across runs.
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Accuracy != weak[j].Accuracy {
			return weak[i].Accuracy < weak[j].Accuracy
		}
		return weak[i].Point.ID < weak[j].Point.ID
	})

	return weak
}

// Accuracy returns the recorded accuracy for a point, or 100 when the profile
// has no stat for it. Unpracticed points are not treated as weak.
func Accuracy(p *profile.Profile, point knowledge.Point) float64 {
	if p == nil {
		return 100
	}
	if stat, ok := p.PointStats[point.Name]; ok {
		return stat.AccuracyRate
	}
	return 100
}

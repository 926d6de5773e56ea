package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Store holds the loaded knowledge-point graph with precomputed indices.
// It is immutable after construction and safe for concurrent readers.
// The graph is an arena: points live in one slice, edges are ID lists
// resolved through the ID index at query time.
type Store struct {
	points         []Point
	byID           map[string]int
	byName         map[nameKey]int
	byGradeSubject map[gradeSubjectKey][]int
}

// nameKey is the composite (subject, display name) lookup key. Display names
// alone are ambiguous across subjects, so name resolution always carries the
// subject.
type nameKey struct {
	subject Subject
	name    string
}

type gradeSubjectKey struct {
	subject Subject
	grade   int
}

// New builds a Store from a slice of points. Points keep their given order;
// when two points share an ID the later one wins and keeps the earlier
// point's position. When two points share a (subject, name) pair the first
// one wins name resolution.
func New(points []Point) *Store {
	s := &Store{
		byID:           make(map[string]int, len(points)),
		byName:         make(map[nameKey]int, len(points)),
		byGradeSubject: make(map[gradeSubjectKey][]int),
	}

	for _, p := range points {
		if idx, ok := s.byID[p.ID]; ok {
			s.points[idx] = p
			continue
		}
		s.byID[p.ID] = len(s.points)
		s.points = append(s.points, p)
	}

	for i, p := range s.points {
		nk := nameKey{subject: p.Subject, name: p.Name}
		if _, ok := s.byName[nk]; !ok {
			s.byName[nk] = i
		}
		gk := gradeSubjectKey{subject: p.Subject, grade: p.Grade}
		s.byGradeSubject[gk] = append(s.byGradeSubject[gk], i)
	}

	return s
}

// Load reads all curriculum sources under dir, one JSON file per
// (subject, grade) at <dir>/<subject>/grade_<N>.json. Missing or malformed
// sources are skipped so a partial curriculum still loads.
func Load(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("curriculum directory not set")
	}

	var points []Point
	for _, subject := range AllSubjects() {
		for grade := MinGrade; grade <= MaxGrade; grade++ {
			path := filepath.Join(dir, string(subject), fmt.Sprintf("grade_%d.json", grade))
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			cfg, err := parseGradeConfig(data, subject, grade)
			if err != nil {
				continue
			}
			points = append(points, pointsFromConfig(cfg, subject, grade)...)
		}
	}

	return New(points), nil
}

// pointsFromConfig flattens a source's modules into points, in sorted module
// order so that insertion order is stable across loads.
func pointsFromConfig(cfg *gradeConfig, subject Subject, grade int) []Point {
	names := make([]string, 0, len(cfg.Modules))
	for name := range cfg.Modules {
		names = append(names, name)
	}
	slices.Sort(names)

	var points []Point
	for _, name := range names {
		for _, rec := range cfg.Modules[name].Points {
			p, err := rec.toPoint(subject, grade)
			if err != nil {
				continue
			}
			points = append(points, p)
		}
	}
	return points
}

// Len returns the number of points in the store.
func (s *Store) Len() int {
	return len(s.points)
}

// Get returns a point by ID.
func (s *Store) Get(id string) (Point, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Point{}, false
	}
	return s.points[idx], true
}

// All returns every point in insertion order.
func (s *Store) All() []Point {
	return slices.Clone(s.points)
}

// ByGradeSubject returns the points for one (subject, grade), in the order
// they were loaded. The order is not sorted; callers relying on ranking must
// sort themselves.
func (s *Store) ByGradeSubject(subject Subject, grade int) []Point {
	idxs := s.byGradeSubject[gradeSubjectKey{subject: subject, grade: grade}]
	result := make([]Point, 0, len(idxs))
	for _, i := range idxs {
		result = append(result, s.points[i])
	}
	return result
}

// ByCategory returns the points in one (subject, grade) category.
func (s *Store) ByCategory(subject Subject, grade int, category string) []Point {
	var result []Point
	for _, p := range s.ByGradeSubject(subject, grade) {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// ResolveName resolves a (subject, display name) pair to a point. When two
// loaded points share both, the earlier-loaded one wins.
func (s *Store) ResolveName(subject Subject, name string) (Point, bool) {
	idx, ok := s.byName[nameKey{subject: subject, name: name}]
	if !ok {
		return Point{}, false
	}
	return s.points[idx], true
}

// DirectPrerequisites returns the resolvable direct prerequisites of a point.
// Dangling prerequisite IDs are dropped.
func (s *Store) DirectPrerequisites(id string) []Point {
	idx, ok := s.byID[id]
	if !ok {
		return nil
	}
	p := s.points[idx]
	result := make([]Point, 0, len(p.Prerequisites))
	for _, prereqID := range p.Prerequisites {
		if prereq, ok := s.Get(prereqID); ok {
			result = append(result, prereq)
		}
	}
	return result
}

// AllPrerequisites returns the full transitive prerequisite closure of a
// point, never including the point itself. A point appears only after all of
// its own prerequisites, so earlier entries are more foundational. The
// visited set makes the walk terminate even when the edge data contains
// cycles or self-references.
func (s *Store) AllPrerequisites(id string) []Point {
	visited := make(map[string]bool)
	var result []Point

	var walk func(pid string)
	walk = func(pid string) {
		if visited[pid] {
			return
		}
		visited[pid] = true

		p, ok := s.Get(pid)
		if !ok {
			return
		}
		for _, prereqID := range p.Prerequisites {
			walk(prereqID)
		}
		if pid != id {
			result = append(result, p)
		}
	}

	walk(id)
	return result
}

// FindRootCause returns the most foundational unmastered prerequisite of a
// weak point: the first entry of the prerequisite closure not in the
// mastered set. When every prerequisite is mastered (or there are none) the
// weak point is its own root cause. Returns false only for unknown IDs.
func (s *Store) FindRootCause(weakID string, mastered map[string]bool) (Point, bool) {
	for _, p := range s.AllPrerequisites(weakID) {
		if !mastered[p.ID] {
			return p, true
		}
	}
	return s.Get(weakID)
}

// LearningPath returns the ordered prerequisite path from one point to
// another, ending at the target. When the starting point is not among the
// target's prerequisites the path holds only the target.
func (s *Store) LearningPath(fromID, toID string) []Point {
	var path []Point
	foundStart := false
	for _, p := range s.AllPrerequisites(toID) {
		if p.ID == fromID {
			foundStart = true
		}
		if foundStart {
			path = append(path, p)
		}
	}
	if target, ok := s.Get(toID); ok {
		path = append(path, target)
	}
	return path
}

// Readiness reports whether all direct prerequisites of a point are in the
// mastered set, and returns the ones that are not.
func (s *Store) Readiness(id string, mastered map[string]bool) (bool, []Point) {
	var missing []Point
	for _, prereq := range s.DirectPrerequisites(id) {
		if !mastered[prereq.ID] {
			missing = append(missing, prereq)
		}
	}
	return len(missing) == 0, missing
}

package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound indicates no profile exists for the requested student.
// Diagnosis treats this as a hard failure; the weak-point and
// recommendation paths substitute an empty profile instead.
var ErrNotFound = errors.New("student profile not found")

// Stat is the accuracy record for one knowledge point, keyed by the point's
// display name in the profile blob.
type Stat struct {
	Total        int     `json:"total"`
	Mistakes     int     `json:"mistakes"`
	AccuracyRate float64 `json:"accuracy_rate"` // 0-100
}

// Exam is one recorded exam in the profile history.
type Exam struct {
	ExamID         int     `json:"exam_id"`
	Date           string  `json:"date"`
	Source         string  `json:"source"`
	TotalQuestions int     `json:"total_questions"`
	Mistakes       int     `json:"mistakes"`
	Correct        int     `json:"correct"`
	AccuracyRate   float64 `json:"accuracy_rate"`
}

// Profile is a student's learning record, supplied by the profile collaborator
// as a JSON blob. The analytics core only ever reads it.
type Profile struct {
	StudentName    string          `json:"student_name"`
	TotalQuestions int             `json:"total_questions"`
	TotalMistakes  int             `json:"total_mistakes"`
	Exams          []Exam          `json:"exams"`
	PointStats     map[string]Stat `json:"knowledge_point_stats"`
}

// Empty returns a profile with no recorded data for the given student.
func Empty(studentName string) *Profile {
	return &Profile{
		StudentName: studentName,
		PointStats:  map[string]Stat{},
	}
}

// HasData reports whether the profile contains any per-point statistics.
func (p *Profile) HasData() bool {
	return p != nil && len(p.PointStats) > 0
}

// Load reads <dir>/<student>_profile.json. A missing file yields ErrNotFound.
func Load(dir, studentName string) (*Profile, error) {
	path := filepath.Join(dir, studentName+"_profile.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, studentName)
		}
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", path, err)
	}
	if p.StudentName == "" {
		p.StudentName = studentName
	}
	if p.PointStats == nil {
		p.PointStats = map[string]Stat{}
	}
	return &p, nil
}

// LoadOrEmpty reads the student's profile, substituting an empty profile when
// none exists. Other read failures are still returned.
func LoadOrEmpty(dir, studentName string) (*Profile, error) {
	p, err := Load(dir, studentName)
	if errors.Is(err, ErrNotFound) {
		return Empty(studentName), nil
	}
	return p, err
}

// DefaultDir resolves the profile directory in priority order:
// 1. STUDYMAP_PROFILES environment variable
// 2. $XDG_DATA_HOME/studymap/profiles
// 3. ~/.local/share/studymap/profiles
func DefaultDir() (string, error) {
	if p := os.Getenv("STUDYMAP_PROFILES"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "studymap", "profiles"), nil
}

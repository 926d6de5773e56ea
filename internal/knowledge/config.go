package knowledge

import (
	"encoding/json"
	"fmt"
)

// gradeConfig is the on-disk shape of one (subject, grade) curriculum source:
// a header plus named modules, each holding a list of point records.
// Grade and subject are taken from the header, not from the point records.
type gradeConfig struct {
	Grade   int                     `json:"grade"`
	Subject string                  `json:"subject"`
	Modules map[string]moduleConfig `json:"modules"`
}

type moduleConfig struct {
	Description string        `json:"description"`
	Points      []pointRecord `json:"points"`
}

type pointRecord struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Difficulty       int      `json:"difficulty"`
	Keywords         []string `json:"keywords"`
	Prerequisites    []string `json:"prerequisites"`
	NextPoints       []string `json:"next_points"`
	TypicalQuestions []string `json:"typical_questions"`
	CommonMistakes   []string `json:"common_mistakes"`
	LearningTips     string   `json:"learning_tips"`
	Importance       int      `json:"importance"`
	AvgLearningMins  int      `json:"avg_learning_time"`
}

// parseGradeConfig decodes one curriculum source. The subject and grade given
// by the caller (derived from the file location) win over the header when the
// header is empty, matching how sources are laid out on disk.
func parseGradeConfig(data []byte, subject Subject, grade int) (*gradeConfig, error) {
	var cfg gradeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode curriculum source: %w", err)
	}
	if cfg.Subject == "" {
		cfg.Subject = string(subject)
	}
	if cfg.Grade == 0 {
		cfg.Grade = grade
	}
	return &cfg, nil
}

// toPoint converts a raw record to a Point, stamping the source's subject and
// grade onto it. Records without an ID or name are rejected.
func (r pointRecord) toPoint(subject Subject, grade int) (Point, error) {
	if r.ID == "" {
		return Point{}, fmt.Errorf("point record missing id")
	}
	if r.Name == "" {
		return Point{}, fmt.Errorf("point record %q missing name", r.ID)
	}

	difficulty := Difficulty(r.Difficulty)
	if difficulty < DifficultyVeryEasy || difficulty > DifficultyVeryHard {
		difficulty = DifficultyMedium
	}
	importance := r.Importance
	if importance < 1 || importance > 5 {
		importance = 3
	}
	avgMins := r.AvgLearningMins
	if avgMins <= 0 {
		avgMins = 30
	}

	return Point{
		ID:               r.ID,
		Subject:          subject,
		Grade:            grade,
		Category:         r.Category,
		Name:             r.Name,
		Description:      r.Description,
		Difficulty:       difficulty,
		Keywords:         r.Keywords,
		Prerequisites:    r.Prerequisites,
		NextPoints:       r.NextPoints,
		TypicalQuestions: r.TypicalQuestions,
		CommonMistakes:   r.CommonMistakes,
		LearningTips:     r.LearningTips,
		Importance:       importance,
		AvgLearningMins:  avgMins,
	}, nil
}

package knowledge

// Subject identifies a curriculum subject.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectChinese Subject = "chinese"
	SubjectEnglish Subject = "english"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath, SubjectChinese, SubjectEnglish}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectMath:
		return "Math"
	case SubjectChinese:
		return "Chinese"
	case SubjectEnglish:
		return "English"
	default:
		return string(s)
	}
}

// ParseSubject maps a subject string to a Subject, accepting display names too.
func ParseSubject(s string) (Subject, bool) {
	switch s {
	case "math", "Math":
		return SubjectMath, true
	case "chinese", "Chinese":
		return SubjectChinese, true
	case "english", "English":
		return SubjectEnglish, true
	}
	return "", false
}

// Difficulty is a 1-5 ordinal difficulty rating.
type Difficulty int

const (
	DifficultyVeryEasy Difficulty = 1
	DifficultyEasy     Difficulty = 2
	DifficultyMedium   Difficulty = 3
	DifficultyHard     Difficulty = 4
	DifficultyVeryHard Difficulty = 5
)

// Label returns the display label for a difficulty level.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyVeryEasy:
		return "Very Easy"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyVeryHard:
		return "Very Hard"
	default:
		return "Unknown"
	}
}

// MinGrade and MaxGrade bound the curriculum grade range.
const (
	MinGrade = 1
	MaxGrade = 6
)

// Point is a single knowledge point in the curriculum graph.
// Points are immutable after load; prerequisite and next edges reference
// other points by ID only, never by pointer.
type Point struct {
	ID          string  `json:"id"`
	Subject     Subject `json:"subject"`
	Grade       int     `json:"grade"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description string  `json:"description"`

	Difficulty Difficulty `json:"difficulty"`
	Keywords   []string   `json:"keywords,omitempty"`

	Prerequisites []string `json:"prerequisites,omitempty"` // IDs of points that should be mastered first
	NextPoints    []string `json:"next_points,omitempty"`   // informational; not used by traversal

	TypicalQuestions []string `json:"typical_questions,omitempty"`
	CommonMistakes   []string `json:"common_mistakes,omitempty"`
	LearningTips     string   `json:"learning_tips,omitempty"`

	Importance      int `json:"importance"` // 1-5 ranking weight
	AvgLearningMins int `json:"avg_learning_mins"`
}

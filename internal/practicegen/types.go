// Package practicegen generates targeted practice sheets for a knowledge
// point using the configured LLM provider. Responses are validated against a
// JSON schema before they reach the caller.
package practicegen

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	TypeCalculation    QuestionType = "calculation"
	TypeWordProblem    QuestionType = "word_problem"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeMultipleChoice QuestionType = "multiple_choice"
)

// Question is one generated practice question.
type Question struct {
	Number      int          `json:"question_number"`
	Content     string       `json:"question_content"`
	Type        QuestionType `json:"question_type"`
	Answer      string       `json:"correct_answer"`
	Explanation string       `json:"explanation"`
	Difficulty  int          `json:"difficulty"`
	PointName   string       `json:"knowledge_point"`
}

// Sheet is a full practice sheet for one knowledge point.
type Sheet struct {
	PointID   string     `json:"point_id"`
	PointName string     `json:"point_name"`
	Subject   string     `json:"subject"`
	Grade     int        `json:"grade"`
	Questions []Question `json:"questions"`
}

// Config controls sheet generation.
type Config struct {
	// Count is the number of questions per sheet.
	Count int
	// MaxTokens caps the LLM response length.
	MaxTokens int
	// Temperature controls response variety.
	Temperature float64
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		Count:       5,
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

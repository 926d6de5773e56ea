package practicegen

import "github.com/linwei/studymap/internal/llm"

// SheetSchema defines the JSON schema for generated practice sheets.
var SheetSchema = &llm.Schema{
	Name:        "practice-sheet",
	Description: "A set of practice questions for a single knowledge point",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_number": map[string]any{
							"type":        "integer",
							"description": "1-based position of the question on the sheet",
						},
						"question_content": map[string]any{
							"type":        "string",
							"description": "The full question text shown to the student",
						},
						"question_type": map[string]any{
							"type":        "string",
							"enum":        []any{"calculation", "word_problem", "fill_blank", "multiple_choice"},
							"description": "How the student answers the question",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer in its simplest form",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Step-by-step solution a student at this grade can follow",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Difficulty from 1 (easy) to 5 (hard)",
						},
						"knowledge_point": map[string]any{
							"type":        "string",
							"description": "Name of the knowledge point this question exercises",
						},
					},
					"required": []any{
						"question_number", "question_content", "question_type",
						"correct_answer", "explanation", "difficulty", "knowledge_point",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

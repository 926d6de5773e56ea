package practicegen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/llm"
)

var testPoint = knowledge.Point{
	ID:          "math_3_1",
	Subject:     knowledge.SubjectMath,
	Grade:       3,
	Name:        "两位数乘法",
	Description: "两位数乘两位数的笔算",
	Difficulty:  3,
	CommonMistakes: []string{
		"进位错误",
		"数位没有对齐",
	},
}

const validSheetJSON = `{
	"questions": [
		{
			"question_number": 1,
			"question_content": "23 * 14 = ?",
			"question_type": "calculation",
			"correct_answer": "322",
			"explanation": "23 * 14 = 23 * 10 + 23 * 4 = 230 + 92 = 322",
			"difficulty": 3,
			"knowledge_point": "两位数乘法"
		},
		{
			"question_number": 2,
			"question_content": "每盒有12支铅笔，15盒共有多少支？",
			"question_type": "word_problem",
			"correct_answer": "180",
			"explanation": "12 * 15 = 180",
			"difficulty": 3,
			"knowledge_point": "两位数乘法"
		}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validSheetJSON),
	})
	gen := New(mock, DefaultConfig())

	sheet, err := gen.Generate(context.Background(), testPoint)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if sheet.PointID != "math_3_1" {
		t.Errorf("PointID = %q, want math_3_1", sheet.PointID)
	}
	if sheet.Grade != 3 {
		t.Errorf("Grade = %d, want 3", sheet.Grade)
	}
	if len(sheet.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(sheet.Questions))
	}
	if sheet.Questions[1].Type != TypeWordProblem {
		t.Errorf("question 2 type = %q, want word_problem", sheet.Questions[1].Type)
	}
}

func TestGeneratePromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validSheetJSON),
	})
	gen := New(mock, Config{Count: 7})

	if _, err := gen.Generate(context.Background(), testPoint); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("got %d provider calls, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != SheetSchema {
		t.Error("request did not carry the sheet schema")
	}
	for _, want := range []string{"两位数乘法", "Grade: 3", "进位错误", "exactly 7 questions"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateFencedResponse(t *testing.T) {
	fenced := "```json\n" + validSheetJSON + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(fenced),
	})
	gen := New(mock, DefaultConfig())

	sheet, err := gen.Generate(context.Background(), testPoint)
	if err != nil {
		t.Fatalf("Generate failed on fenced response: %v", err)
	}
	if len(sheet.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(sheet.Questions))
	}
}

func TestGenerateInvalidResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", "here are your questions: 1+1=2"},
		{"missing required field", `{"questions": [{"question_number": 1}]}`},
		{"empty questions", `{"questions": []}`},
		{"difficulty out of range", `{"questions": [{
			"question_number": 1, "question_content": "q", "question_type": "calculation",
			"correct_answer": "1", "explanation": "e", "difficulty": 9, "knowledge_point": "p"
		}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(tt.content),
			})
			gen := New(mock, DefaultConfig())

			if _, err := gen.Generate(context.Background(), testPoint); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns ErrUnavailable
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testPoint); err == nil {
		t.Error("expected error when provider fails")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  {\"a\":1}", `  {"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractJSON(json.RawMessage(tt.in)))
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package practicegen

import (
	"fmt"
	"strings"

	"github.com/linwei/studymap/internal/knowledge"
)

const systemPrompt = `You are an experienced elementary school teacher creating practice questions for grades 1-6.

Rules:
- Generate questions that exercise exactly the given knowledge point, appropriate for the given grade and subject.
- Use plain text for all content. For math, use / for fractions, * for multiplication, and standard operators. No LaTeX.
- Each question must be clear, self-contained, and age-appropriate.
- The correct answer must be accurate and in its simplest form.
- The explanation must walk through the solution step by step, suitable for a student at this grade.
- Mix question types where the knowledge point allows it: calculation, word_problem, fill_blank, multiple_choice.
- Target the stated difficulty, with at most one question a step easier and one a step harder.
- Where common mistakes are listed, design at least one question that would expose each mistake.`

// buildPrompt constructs the generation prompt from a knowledge point.
func buildPrompt(point knowledge.Point, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Knowledge point: %s\n", point.Name)
	fmt.Fprintf(&b, "Subject: %s\n", knowledge.SubjectDisplayName(point.Subject))
	fmt.Fprintf(&b, "Grade: %d\n", point.Grade)
	fmt.Fprintf(&b, "Description: %s\n", point.Description)
	fmt.Fprintf(&b, "Difficulty: %d/5\n", int(point.Difficulty))

	if len(point.TypicalQuestions) > 0 {
		b.WriteString("\nTypical question forms:\n")
		b.WriteString(bulleted(point.TypicalQuestions))
	}
	if len(point.CommonMistakes) > 0 {
		b.WriteString("\nCommon mistakes to target:\n")
		b.WriteString(bulleted(point.CommonMistakes))
	}
	if point.LearningTips != "" {
		fmt.Fprintf(&b, "\nLearning tips for this point:\n%s\n", point.LearningTips)
	}

	fmt.Fprintf(&b, "\nGenerate exactly %d questions.\n", count)
	return b.String()
}

func bulleted(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

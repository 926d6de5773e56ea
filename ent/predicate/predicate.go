// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DiagnosisRun is the predicate function for diagnosisrun builders.
type DiagnosisRun func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PracticeSheet is the predicate function for practicesheet builders.
type PracticeSheet func(*sql.Selector)

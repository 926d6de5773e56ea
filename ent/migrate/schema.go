// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DiagnosisRunsColumns holds the columns for the "diagnosis_runs" table.
	DiagnosisRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "student_name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "target_grade", Type: field.TypeInt},
		{Name: "grade_level", Type: field.TypeFloat64},
		{Name: "mastered_count", Type: field.TypeInt, Default: 0},
		{Name: "weak_count", Type: field.TypeInt, Default: 0},
		{Name: "report", Type: field.TypeJSON},
	}
	// DiagnosisRunsTable holds the schema information for the "diagnosis_runs" table.
	DiagnosisRunsTable = &schema.Table{
		Name:       "diagnosis_runs",
		Columns:    DiagnosisRunsColumns,
		PrimaryKey: []*schema.Column{DiagnosisRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosisrun_sequence",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisRunsColumns[1]},
			},
			{
				Name:    "diagnosisrun_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisRunsColumns[2]},
			},
			{
				Name:    "diagnosisrun_student_name",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisRunsColumns[4]},
			},
			{
				Name:    "diagnosisrun_student_name_subject",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisRunsColumns[4], DiagnosisRunsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
		},
	}
	// PracticeSheetsColumns holds the columns for the "practice_sheets" table.
	PracticeSheetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "sheet_id", Type: field.TypeString, Unique: true},
		{Name: "student_name", Type: field.TypeString},
		{Name: "point_id", Type: field.TypeString},
		{Name: "point_name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "sheet", Type: field.TypeJSON},
	}
	// PracticeSheetsTable holds the schema information for the "practice_sheets" table.
	PracticeSheetsTable = &schema.Table{
		Name:       "practice_sheets",
		Columns:    PracticeSheetsColumns,
		PrimaryKey: []*schema.Column{PracticeSheetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesheet_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeSheetsColumns[1]},
			},
			{
				Name:    "practicesheet_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeSheetsColumns[2]},
			},
			{
				Name:    "practicesheet_student_name",
				Unique:  false,
				Columns: []*schema.Column{PracticeSheetsColumns[4]},
			},
			{
				Name:    "practicesheet_point_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSheetsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DiagnosisRunsTable,
		LlmRequestEventsTable,
		PracticeSheetsTable,
	}
)

func init() {
}

package store

import (
	"context"
	"time"

	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/practicegen"
)

// DiagnosisRun is one persisted diagnosis with its full report.
type DiagnosisRun struct {
	RunID       string
	Sequence    int64
	Timestamp   time.Time
	StudentName string
	Subject     string
	TargetGrade int
	GradeLevel  float64
	Report      diagnosis.Report
}

// DiagnosisRepo manages persisted diagnosis runs.
type DiagnosisRepo interface {
	// Append records a completed diagnosis and returns its assigned run ID.
	Append(ctx context.Context, report diagnosis.Report) (string, error)

	// ListByStudent returns a student's runs, newest first.
	// limit <= 0 means no limit.
	ListByStudent(ctx context.Context, student string, limit int) ([]DiagnosisRun, error)

	// Latest returns a student's most recent run, or nil if none exist.
	Latest(ctx context.Context, student string) (*DiagnosisRun, error)
}

// PracticeRecord is one persisted practice sheet.
type PracticeRecord struct {
	SheetID     string
	Sequence    int64
	Timestamp   time.Time
	StudentName string
	Sheet       practicegen.Sheet
}

// PracticeRepo manages persisted practice sheets.
type PracticeRepo interface {
	// Append records a generated sheet and returns its assigned sheet ID.
	Append(ctx context.Context, student string, sheet practicegen.Sheet) (string, error)

	// ListByStudent returns a student's sheets, newest first.
	// limit <= 0 means no limit.
	ListByStudent(ctx context.Context, student string, limit int) ([]PracticeRecord, error)
}

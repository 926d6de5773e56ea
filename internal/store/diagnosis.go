package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/linwei/studymap/ent"
	"github.com/linwei/studymap/ent/diagnosisrun"
	"github.com/linwei/studymap/internal/diagnosis"
)

// diagnosisRepo implements DiagnosisRepo using the ent client.
type diagnosisRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *diagnosisRepo) Append(ctx context.Context, report diagnosis.Report) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	reportMap, err := toMap(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	runID := uuid.NewString()
	_, err = r.client.DiagnosisRun.Create().
		SetSequence(seqNum).
		SetRunID(runID).
		SetStudentName(report.StudentName).
		SetSubject(string(report.Subject)).
		SetTargetGrade(report.TargetGrade).
		SetGradeLevel(report.ActualGradeLevel).
		SetMasteredCount(report.MasteredCount).
		SetWeakCount(report.WeakCount).
		SetReport(reportMap).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save diagnosis run: %w", err)
	}
	return runID, nil
}

func (r *diagnosisRepo) ListByStudent(ctx context.Context, student string, limit int) ([]DiagnosisRun, error) {
	q := r.client.DiagnosisRun.Query().
		Where(diagnosisrun.StudentName(student)).
		Order(ent.Desc(diagnosisrun.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query diagnosis runs: %w", err)
	}

	runs := make([]DiagnosisRun, 0, len(rows))
	for _, row := range rows {
		run, err := entRunToRun(row)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, nil
}

func (r *diagnosisRepo) Latest(ctx context.Context, student string) (*DiagnosisRun, error) {
	row, err := r.client.DiagnosisRun.Query().
		Where(diagnosisrun.StudentName(student)).
		Order(ent.Desc(diagnosisrun.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest diagnosis run: %w", err)
	}
	return entRunToRun(row)
}

// entRunToRun converts an ent DiagnosisRun row to the store type.
func entRunToRun(row *ent.DiagnosisRun) (*DiagnosisRun, error) {
	var report diagnosis.Report
	if err := fromMap(row.Report, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", row.RunID, err)
	}
	return &DiagnosisRun{
		RunID:       row.RunID,
		Sequence:    row.Sequence,
		Timestamp:   row.Timestamp,
		StudentName: row.StudentName,
		Subject:     row.Subject,
		TargetGrade: row.TargetGrade,
		GradeLevel:  row.GradeLevel,
		Report:      report,
	}, nil
}

// toMap converts a struct to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap converts an ent JSON map back into a struct.
func fromMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

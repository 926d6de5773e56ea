package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/linwei/studymap/ent"
	"github.com/linwei/studymap/ent/practicesheet"
	"github.com/linwei/studymap/internal/practicegen"
)

// practiceRepo implements PracticeRepo using the ent client.
type practiceRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *practiceRepo) Append(ctx context.Context, student string, sheet practicegen.Sheet) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	sheetMap, err := toMap(sheet)
	if err != nil {
		return "", fmt.Errorf("marshal sheet: %w", err)
	}

	sheetID := uuid.NewString()
	_, err = r.client.PracticeSheet.Create().
		SetSequence(seqNum).
		SetSheetID(sheetID).
		SetStudentName(student).
		SetPointID(sheet.PointID).
		SetPointName(sheet.PointName).
		SetSubject(sheet.Subject).
		SetGrade(sheet.Grade).
		SetQuestionCount(len(sheet.Questions)).
		SetSheet(sheetMap).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save practice sheet: %w", err)
	}
	return sheetID, nil
}

func (r *practiceRepo) ListByStudent(ctx context.Context, student string, limit int) ([]PracticeRecord, error) {
	q := r.client.PracticeSheet.Query().
		Where(practicesheet.StudentName(student)).
		Order(ent.Desc(practicesheet.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice sheets: %w", err)
	}

	records := make([]PracticeRecord, 0, len(rows))
	for _, row := range rows {
		var sheet practicegen.Sheet
		if err := fromMap(row.Sheet, &sheet); err != nil {
			return nil, fmt.Errorf("unmarshal sheet %s: %w", row.SheetID, err)
		}
		records = append(records, PracticeRecord{
			SheetID:     row.SheetID,
			Sequence:    row.Sequence,
			Timestamp:   row.Timestamp,
			StudentName: row.StudentName,
			Sheet:       sheet,
		})
	}
	return records, nil
}

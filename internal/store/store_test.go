package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linwei/studymap/internal/diagnosis"
	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/llm"
	"github.com/linwei/studymap/internal/practicegen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func testReport(student string, gradeLevel float64) diagnosis.Report {
	return diagnosis.Report{
		StudentName:      student,
		Subject:          knowledge.SubjectMath,
		TargetGrade:      3,
		ActualGradeLevel: gradeLevel,
		MasteredCount:    4,
		WeakCount:        2,
		RootCauses: []knowledge.Point{
			{ID: "math_1_1", Subject: knowledge.SubjectMath, Grade: 1, Name: "20以内加减法"},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestDiagnosisAppendAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.DiagnosisRepo()
	ctx := context.Background()

	// No runs yet.
	run, err := repo.Latest(ctx, "xiaoming")
	require.NoError(t, err)
	require.Nil(t, run)

	runID, err := repo.Append(ctx, testReport("xiaoming", 2.5))
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	run, err = repo.Latest(ctx, "xiaoming")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, 2.5, run.GradeLevel)
	require.Len(t, run.Report.RootCauses, 1, "report root causes must round-trip")
	assert.Equal(t, "math_1_1", run.Report.RootCauses[0].ID)
}

func TestDiagnosisListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.DiagnosisRepo()
	ctx := context.Background()

	for _, lv := range []float64{1.0, 1.5, 2.0} {
		_, err := repo.Append(ctx, testReport("xiaoming", lv))
		require.NoError(t, err)
	}
	_, err := repo.Append(ctx, testReport("other", 3.0))
	require.NoError(t, err)

	runs, err := repo.ListByStudent(ctx, "xiaoming", 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, want := range []float64{2.0, 1.5, 1.0} {
		assert.Equal(t, want, runs[i].GradeLevel, "runs[%d]", i)
	}

	limited, err := repo.ListByStudent(ctx, "xiaoming", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestPracticeAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.PracticeRepo()
	ctx := context.Background()

	sheet := practicegen.Sheet{
		PointID:   "math_3_1",
		PointName: "两位数乘法",
		Subject:   "math",
		Grade:     3,
		Questions: []practicegen.Question{
			{Number: 1, Content: "23 * 14 = ?", Type: practicegen.TypeCalculation, Answer: "322"},
		},
	}

	sheetID, err := repo.Append(ctx, "xiaoming", sheet)
	require.NoError(t, err)
	require.NotEmpty(t, sheetID)

	records, err := repo.ListByStudent(ctx, "xiaoming", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, sheetID, records[0].SheetID)
	require.Len(t, records[0].Sheet.Questions, 1, "sheet questions must round-trip")
	assert.Equal(t, "322", records[0].Sheet.Questions[0].Answer)
}

func TestRecordLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.RecordLLMRequest(ctx, llm.RequestLog{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "practice-generation",
		InputTokens:  120,
		OutputTokens: 900,
		LatencyMs:    1500,
		Success:      true,
	})
	require.NoError(t, err)

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Monotonically increasing from 1.
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DiagnosisRepo().Append(ctx, testReport("xiaoming", 2.0))
	require.NoError(t, err)
	_, err = s.PracticeRepo().Append(ctx, "xiaoming", practicegen.Sheet{
		PointID: "math_3_1", PointName: "两位数乘法", Subject: "math", Grade: 3,
	})
	require.NoError(t, err)

	run, err := s.DiagnosisRepo().Latest(ctx, "xiaoming")
	require.NoError(t, err)
	sheets, err := s.PracticeRepo().ListByStudent(ctx, "xiaoming", 1)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Greater(t, sheets[0].Sequence, run.Sequence, "sheet written after the run")
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"diagnosis_runs", "practice_sheets", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s missing", table)
	}
}

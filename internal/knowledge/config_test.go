package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

const grade1Math = `{
	"grade": 1,
	"subject": "math",
	"modules": {
		"b_numbers": {
			"description": "数的认识",
			"points": [
				{"id": "math_1_2", "name": "数的组成", "category": "数与代数", "difficulty": 1}
			]
		},
		"a_arith": {
			"description": "加减法",
			"points": [
				{"id": "math_1_1", "name": "20以内加减法", "category": "数与代数", "difficulty": 2,
				 "importance": 5, "avg_learning_time": 40},
				{"id": "", "name": "no id"},
				{"id": "math_1_x"}
			]
		}
	}
}`

func writeCurriculum(t *testing.T, dir, subject, file, content string) {
	t.Helper()
	subjDir := filepath.Join(dir, subject)
	if err := os.MkdirAll(subjDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(subjDir, file), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeCurriculum(t, dir, "math", "grade_1.json", grade1Math)

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Records missing id or name are dropped: 2 valid points survive.
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}

	// Modules flatten in sorted module-name order.
	all := s.All()
	if all[0].ID != "math_1_1" || all[1].ID != "math_1_2" {
		t.Errorf("order = [%s %s], want [math_1_1 math_1_2]", all[0].ID, all[1].ID)
	}

	p, _ := s.Get("math_1_1")
	if p.Subject != SubjectMath || p.Grade != 1 {
		t.Errorf("subject/grade = %s/%d, want math/1", p.Subject, p.Grade)
	}
	if p.Importance != 5 || p.AvgLearningMins != 40 {
		t.Errorf("importance/mins = %d/%d, want 5/40", p.Importance, p.AvgLearningMins)
	}
}

func TestLoadSkipsMissingAndMalformed(t *testing.T) {
	dir := t.TempDir()
	writeCurriculum(t, dir, "math", "grade_1.json", grade1Math)
	writeCurriculum(t, dir, "math", "grade_2.json", `{not json`)
	// No chinese/english dirs at all.

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("load should tolerate gaps: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2 (only grade 1 loads)", s.Len())
	}
}

func TestLoadEmptyDirFails(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty directory should be rejected")
	}
}

func TestToPointDefaults(t *testing.T) {
	rec := pointRecord{ID: "p1", Name: "point", Difficulty: 9, Importance: 0, AvgLearningMins: -5}
	p, err := rec.toPoint(SubjectMath, 2)
	if err != nil {
		t.Fatalf("toPoint: %v", err)
	}

	if p.Difficulty != DifficultyMedium {
		t.Errorf("out-of-range difficulty should default to medium, got %d", p.Difficulty)
	}
	if p.Importance != 3 {
		t.Errorf("importance = %d, want default 3", p.Importance)
	}
	if p.AvgLearningMins != 30 {
		t.Errorf("avg mins = %d, want default 30", p.AvgLearningMins)
	}
}

func TestParseGradeConfigHeaderWins(t *testing.T) {
	cfg, err := parseGradeConfig([]byte(`{"grade": 4, "subject": "chinese", "modules": {}}`), SubjectMath, 2)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grade != 4 || cfg.Subject != "chinese" {
		t.Errorf("header values should win, got %s/%d", cfg.Subject, cfg.Grade)
	}

	cfg, err = parseGradeConfig([]byte(`{"modules": {}}`), SubjectMath, 2)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grade != 2 || cfg.Subject != "math" {
		t.Errorf("empty header should take location values, got %s/%d", cfg.Subject, cfg.Grade)
	}
}

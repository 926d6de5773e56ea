package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const xiaomingProfile = `{
	"student_name": "小明",
	"total_questions": 120,
	"total_mistakes": 30,
	"exams": [
		{"exam_id": 1, "date": "2026-06-10", "source": "期末考试",
		 "total_questions": 40, "mistakes": 10, "correct": 30, "accuracy_rate": 75}
	],
	"knowledge_point_stats": {
		"两位数乘法": {"total": 12, "mistakes": 7, "accuracy_rate": 41.7}
	}
}`

func writeProfile(t *testing.T, dir, student, content string) {
	t.Helper()
	path := filepath.Join(dir, student+"_profile.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "xiaoming", xiaomingProfile)

	p, err := Load(dir, "xiaoming")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if p.StudentName != "小明" {
		t.Errorf("name = %q, want 小明", p.StudentName)
	}
	if p.TotalQuestions != 120 || p.TotalMistakes != 30 {
		t.Errorf("totals = %d/%d, want 120/30", p.TotalQuestions, p.TotalMistakes)
	}
	if len(p.Exams) != 1 || p.Exams[0].Source != "期末考试" {
		t.Errorf("exams = %+v", p.Exams)
	}

	stat, ok := p.PointStats["两位数乘法"]
	if !ok {
		t.Fatal("missing point stat")
	}
	if stat.Total != 12 || stat.AccuracyRate != 41.7 {
		t.Errorf("stat = %+v", stat)
	}
}

func TestLoadMissingIsNotFound(t *testing.T) {
	_, err := Load(t.TempDir(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "broken", `{not json`)

	_, err := Load(dir, "broken")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want a decode error", err)
	}
}

func TestLoadBackfillsDefaults(t *testing.T) {
	dir := t.TempDir()
	// No student_name, no stats map.
	writeProfile(t, dir, "xiaohong", `{"total_questions": 5}`)

	p, err := Load(dir, "xiaohong")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.StudentName != "xiaohong" {
		t.Errorf("name = %q, want the requested student", p.StudentName)
	}
	if p.PointStats == nil {
		t.Error("stats map should be initialized")
	}
}

func TestLoadOrEmpty(t *testing.T) {
	p, err := LoadOrEmpty(t.TempDir(), "nobody")
	if err != nil {
		t.Fatalf("missing profile should not error: %v", err)
	}
	if p.StudentName != "nobody" || p.HasData() {
		t.Errorf("got %+v, want an empty profile", p)
	}

	// Read failures other than not-found still surface.
	dir := t.TempDir()
	writeProfile(t, dir, "broken", `{not json`)
	if _, err := LoadOrEmpty(dir, "broken"); err == nil {
		t.Error("decode error should surface through LoadOrEmpty")
	}
}

func TestHasData(t *testing.T) {
	if (*Profile)(nil).HasData() {
		t.Error("nil profile has no data")
	}
	if Empty("x").HasData() {
		t.Error("empty profile has no data")
	}
	p := &Profile{PointStats: map[string]Stat{"a": {Total: 1}}}
	if !p.HasData() {
		t.Error("profile with stats has data")
	}
}

func TestDefaultDirPrecedence(t *testing.T) {
	t.Setenv("STUDYMAP_PROFILES", "/tmp/profiles-override")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/profiles-override" {
		t.Errorf("dir = %q, want the override", dir)
	}

	t.Setenv("STUDYMAP_PROFILES", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	dir, err = DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "studymap", "profiles") {
		t.Errorf("dir = %q, want the XDG path", dir)
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisRun records one completed diagnosis for a student, including the
// full report so past runs can be replayed without the original profile.
type DiagnosisRun struct {
	ent.Schema
}

func (DiagnosisRun) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID assigned when the run is recorded"),
		field.String("student_name").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.Int("target_grade"),
		field.Float("grade_level").
			Comment("Estimated actual grade level, e.g. 2.5"),
		field.Int("mastered_count").Default(0),
		field.Int("weak_count").Default(0),
		field.JSON("report", map[string]any{}).
			Comment("Full diagnosis report as JSON"),
	}
}

func (DiagnosisRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_name"),
		index.Fields("student_name", "subject"),
	}
}

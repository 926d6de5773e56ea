package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSheet records a generated practice sheet so students can revisit
// past sheets without spending another LLM call.
type PracticeSheet struct {
	ent.Schema
}

func (PracticeSheet) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeSheet) Fields() []ent.Field {
	return []ent.Field{
		field.String("sheet_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID assigned when the sheet is recorded"),
		field.String("student_name").NotEmpty(),
		field.String("point_id").NotEmpty(),
		field.String("point_name").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.Int("grade"),
		field.Int("question_count").Default(0),
		field.JSON("sheet", map[string]any{}).
			Comment("Full practice sheet as JSON"),
	}
}

func (PracticeSheet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_name"),
		index.Fields("point_id"),
	}
}

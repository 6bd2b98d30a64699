package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Choice is one MCQ option.
type Choice struct {
	ent.Schema
}

func (Choice) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id"),
		field.Int("position").
			Comment("Zero-based order; correct_choice on the question refers to this"),
		field.Text("text").
			NotEmpty(),
	}
}

func (Choice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("question_id", "position"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one question within a quiz. MCQ questions key their
// correct choice by position; other kinds carry an answer key.
type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quiz_id"),
		field.Int("position").
			Comment("One-based order within the quiz"),
		field.String("kind").
			NotEmpty().
			Comment("mcq, coding, or short_answer"),
		field.Text("prompt").
			NotEmpty(),
		field.Int("correct_choice").
			Default(0).
			Comment("Position of the correct choice. MCQ only."),
		field.Text("answer_key").
			Default("").
			Comment("Expected answer for coding and short_answer"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("quiz_id", "position"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt is one user's sitting of a quiz. attempt_index counts
// sittings per user per quiz starting at 1.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quiz_id"),
		field.String("user_id").
			NotEmpty(),
		field.Int("attempt_index"),
		field.String("status").
			Default("started").
			Comment("started or completed"),
		field.Float("score").
			Default(0).
			Comment("Fraction of questions answered correctly, 0..1"),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id", "user_id", "attempt_index").
			Unique(),
		index.Fields("user_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProgress tracks one user's state on one topic. A row is created
// for every topic as soon as its roadmap is persisted.
type UserProgress struct {
	ent.Schema
}

func (UserProgress) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Int("topic_id"),
		field.String("status").
			Default("not_started").
			Comment("not_started, in_progress, or completed"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("first transition to in_progress"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("most recent transition to completed"),
	}
}

func (UserProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").
			Unique(),
		index.Fields("topic_id"),
	}
}

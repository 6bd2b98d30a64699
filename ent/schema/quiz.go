package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quiz is a persisted question set scoped to a milestone or topic.
// One quiz exists per (scope, scope_id, quiz_type); attempts reference
// it rather than regenerating questions.
type Quiz struct {
	ent.Schema
}

func (Quiz) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("scope").
			NotEmpty().
			Comment("milestone or topic"),
		field.Int("scope_id").
			Comment("ID of the milestone or topic"),
		field.String("quiz_type").
			NotEmpty().
			Comment("mcq_only, coding_only, or mixed"),
		field.String("provenance").
			Default("clean"),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope", "scope_id", "quiz_type").
			Unique(),
	}
}

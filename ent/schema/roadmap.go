package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Roadmap is a user's personalized learning plan covering one or more
// interests. Status moves from pending to ready once generation and
// persistence complete.
type Roadmap struct {
	ent.Schema
}

func (Roadmap) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Roadmap) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("External identity from the auth layer"),
		field.String("title").
			NotEmpty(),
		field.JSON("interests", []string{}).
			Comment("Subjects the user asked to learn, in request order"),
		field.String("skill_level").
			NotEmpty().
			Comment("Declared starting level: basic, intermediate, advanced"),
		field.String("duration").
			Default("").
			Comment("Optional target timeline, e.g. '3 months'"),
		field.String("domain").
			Default("").
			Comment("Content domain tag selecting fallback templates, e.g. 'programming'"),
		field.String("status").
			Default("pending").
			Comment("pending or ready"),
	}
}

func (Roadmap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
	}
}

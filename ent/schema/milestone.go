package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Milestone is one ordered stage of a roadmap.
type Milestone struct {
	ent.Schema
}

func (Milestone) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Milestone) Fields() []ent.Field {
	return []ent.Field{
		field.Int("roadmap_id"),
		field.Int("position").
			Comment("One-based order within the roadmap"),
		field.String("name").
			NotEmpty().
			Comment("Display name, e.g. 'Milestone 2: Core Concepts'"),
		field.String("description").
			Default(""),
		field.String("estimated_duration").
			Default(""),
		field.String("subject").
			NotEmpty().
			Comment("Interest this milestone belongs to"),
		field.String("provenance").
			Default("clean").
			Comment("clean, recovered, or fallback"),
	}
}

func (Milestone) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roadmap_id"),
		index.Fields("roadmap_id", "position"),
	}
}

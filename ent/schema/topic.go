package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is one ordered unit of study within a milestone.
type Topic struct {
	ent.Schema
}

func (Topic) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("milestone_id"),
		field.Int("position").
			Comment("One-based order within the milestone"),
		field.String("name").
			NotEmpty(),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("milestone_id"),
		index.Fields("milestone_id", "position"),
	}
}

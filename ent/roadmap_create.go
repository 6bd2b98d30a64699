// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulm/learnpath/ent/roadmap"
)

// RoadmapCreate is the builder for creating a Roadmap entity.
type RoadmapCreate struct {
	config
	mutation *RoadmapMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoadmapCreate) SetCreatedAt(v time.Time) *RoadmapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableCreatedAt(v *time.Time) *RoadmapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoadmapCreate) SetUpdatedAt(v time.Time) *RoadmapCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableUpdatedAt(v *time.Time) *RoadmapCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RoadmapCreate) SetUserID(v string) *RoadmapCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RoadmapCreate) SetTitle(v string) *RoadmapCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetInterests sets the "interests" field.
func (_c *RoadmapCreate) SetInterests(v []string) *RoadmapCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetSkillLevel sets the "skill_level" field.
func (_c *RoadmapCreate) SetSkillLevel(v string) *RoadmapCreate {
	_c.mutation.SetSkillLevel(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *RoadmapCreate) SetDuration(v string) *RoadmapCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableDuration(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *RoadmapCreate) SetDomain(v string) *RoadmapCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableDomain(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RoadmapCreate) SetStatus(v string) *RoadmapCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableStatus(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// Mutation returns the RoadmapMutation object of the builder.
func (_c *RoadmapCreate) Mutation() *RoadmapMutation {
	return _c.mutation
}

// Save creates the Roadmap in the database.
func (_c *RoadmapCreate) Save(ctx context.Context) (*Roadmap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoadmapCreate) SaveX(ctx context.Context) *Roadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoadmapCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roadmap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := roadmap.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Duration(); !ok {
		v := roadmap.DefaultDuration
		_c.mutation.SetDuration(v)
	}
	if _, ok := _c.mutation.Domain(); !ok {
		v := roadmap.DefaultDomain
		_c.mutation.SetDomain(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := roadmap.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoadmapCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Roadmap.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Roadmap.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Roadmap.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := roadmap.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Roadmap.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := roadmap.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Roadmap.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Interests(); !ok {
		return &ValidationError{Name: "interests", err: errors.New(`ent: missing required field "Roadmap.interests"`)}
	}
	if _, ok := _c.mutation.SkillLevel(); !ok {
		return &ValidationError{Name: "skill_level", err: errors.New(`ent: missing required field "Roadmap.skill_level"`)}
	}
	if v, ok := _c.mutation.SkillLevel(); ok {
		if err := roadmap.SkillLevelValidator(v); err != nil {
			return &ValidationError{Name: "skill_level", err: fmt.Errorf(`ent: validator failed for field "Roadmap.skill_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "Roadmap.duration"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Roadmap.domain"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Roadmap.status"`)}
	}
	return nil
}

func (_c *RoadmapCreate) sqlSave(ctx context.Context) (*Roadmap, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoadmapCreate) createSpec() (*Roadmap, *sqlgraph.CreateSpec) {
	var (
		_node = &Roadmap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roadmap.Table, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roadmap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmap.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(roadmap.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(roadmap.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(roadmap.FieldInterests, field.TypeJSON, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.SkillLevel(); ok {
		_spec.SetField(roadmap.FieldSkillLevel, field.TypeString, value)
		_node.SkillLevel = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(roadmap.FieldDuration, field.TypeString, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(roadmap.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// RoadmapCreateBulk is the builder for creating many Roadmap entities in bulk.
type RoadmapCreateBulk struct {
	config
	err      error
	builders []*RoadmapCreate
}

// Save creates the Roadmap entities in the database.
func (_c *RoadmapCreateBulk) Save(ctx context.Context) ([]*Roadmap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Roadmap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoadmapMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoadmapCreateBulk) SaveX(ctx context.Context) []*Roadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

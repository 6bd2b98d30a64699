// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rahulm/learnpath/ent/predicate"
	"github.com/rahulm/learnpath/ent/roadmap"
)

// RoadmapUpdate is the builder for updating Roadmap entities.
type RoadmapUpdate struct {
	config
	hooks    []Hook
	mutation *RoadmapMutation
}

// Where appends a list predicates to the RoadmapUpdate builder.
func (_u *RoadmapUpdate) Where(ps ...predicate.Roadmap) *RoadmapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoadmapUpdate) SetUpdatedAt(v time.Time) *RoadmapUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RoadmapUpdate) SetUserID(v string) *RoadmapUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableUserID(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RoadmapUpdate) SetTitle(v string) *RoadmapUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableTitle(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *RoadmapUpdate) SetInterests(v []string) *RoadmapUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *RoadmapUpdate) AppendInterests(v []string) *RoadmapUpdate {
	_u.mutation.AppendInterests(v)
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *RoadmapUpdate) SetSkillLevel(v string) *RoadmapUpdate {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableSkillLevel(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *RoadmapUpdate) SetDuration(v string) *RoadmapUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableDuration(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *RoadmapUpdate) SetDomain(v string) *RoadmapUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableDomain(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapUpdate) SetStatus(v string) *RoadmapUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableStatus(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoadmapMutation object of the builder.
func (_u *RoadmapUpdate) Mutation() *RoadmapMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoadmapUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoadmapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoadmapUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roadmap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := roadmap.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := roadmap.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Roadmap.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillLevel(); ok {
		if err := roadmap.SkillLevelValidator(v); err != nil {
			return &ValidationError{Name: "skill_level", err: fmt.Errorf(`ent: validator failed for field "Roadmap.skill_level": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmap.Table, roadmap.Columns, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmap.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(roadmap.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(roadmap.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(roadmap.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldInterests, value)
		})
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(roadmap.FieldSkillLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(roadmap.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(roadmap.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoadmapUpdateOne is the builder for updating a single Roadmap entity.
type RoadmapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoadmapMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoadmapUpdateOne) SetUpdatedAt(v time.Time) *RoadmapUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RoadmapUpdateOne) SetUserID(v string) *RoadmapUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableUserID(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RoadmapUpdateOne) SetTitle(v string) *RoadmapUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableTitle(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *RoadmapUpdateOne) SetInterests(v []string) *RoadmapUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *RoadmapUpdateOne) AppendInterests(v []string) *RoadmapUpdateOne {
	_u.mutation.AppendInterests(v)
	return _u
}

// SetSkillLevel sets the "skill_level" field.
func (_u *RoadmapUpdateOne) SetSkillLevel(v string) *RoadmapUpdateOne {
	_u.mutation.SetSkillLevel(v)
	return _u
}

// SetNillableSkillLevel sets the "skill_level" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableSkillLevel(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetSkillLevel(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *RoadmapUpdateOne) SetDuration(v string) *RoadmapUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableDuration(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *RoadmapUpdateOne) SetDomain(v string) *RoadmapUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableDomain(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapUpdateOne) SetStatus(v string) *RoadmapUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableStatus(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoadmapMutation object of the builder.
func (_u *RoadmapUpdateOne) Mutation() *RoadmapMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoadmapUpdate builder.
func (_u *RoadmapUpdateOne) Where(ps ...predicate.Roadmap) *RoadmapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoadmapUpdateOne) Select(field string, fields ...string) *RoadmapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Roadmap entity.
func (_u *RoadmapUpdateOne) Save(ctx context.Context) (*Roadmap, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapUpdateOne) SaveX(ctx context.Context) *Roadmap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoadmapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoadmapUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roadmap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := roadmap.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := roadmap.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Roadmap.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillLevel(); ok {
		if err := roadmap.SkillLevelValidator(v); err != nil {
			return &ValidationError{Name: "skill_level", err: fmt.Errorf(`ent: validator failed for field "Roadmap.skill_level": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapUpdateOne) sqlSave(ctx context.Context) (_node *Roadmap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmap.Table, roadmap.Columns, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Roadmap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roadmap.FieldID)
		for _, f := range fields {
			if !roadmap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roadmap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmap.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(roadmap.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(roadmap.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(roadmap.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldInterests, value)
		})
	}
	if value, ok := _u.mutation.SkillLevel(); ok {
		_spec.SetField(roadmap.FieldSkillLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(roadmap.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(roadmap.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
	}
	_node = &Roadmap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulm/learnpath/ent/milestone"
	"github.com/rahulm/learnpath/ent/predicate"
)

// MilestoneUpdate is the builder for updating Milestone entities.
type MilestoneUpdate struct {
	config
	hooks    []Hook
	mutation *MilestoneMutation
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdate) Where(ps ...predicate.Milestone) *MilestoneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MilestoneUpdate) SetUpdatedAt(v time.Time) *MilestoneUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *MilestoneUpdate) SetRoadmapID(v int) *MilestoneUpdate {
	_u.mutation.ResetRoadmapID()
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableRoadmapID(v *int) *MilestoneUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// AddRoadmapID adds value to the "roadmap_id" field.
func (_u *MilestoneUpdate) AddRoadmapID(v int) *MilestoneUpdate {
	_u.mutation.AddRoadmapID(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *MilestoneUpdate) SetPosition(v int) *MilestoneUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillablePosition(v *int) *MilestoneUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *MilestoneUpdate) AddPosition(v int) *MilestoneUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetName sets the "name" field.
func (_u *MilestoneUpdate) SetName(v string) *MilestoneUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableName(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MilestoneUpdate) SetDescription(v string) *MilestoneUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableDescription(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *MilestoneUpdate) SetEstimatedDuration(v string) *MilestoneUpdate {
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableEstimatedDuration(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MilestoneUpdate) SetSubject(v string) *MilestoneUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableSubject(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *MilestoneUpdate) SetProvenance(v string) *MilestoneUpdate {
	_u.mutation.SetProvenance(v)
	return _u
}

// SetNillableProvenance sets the "provenance" field if the given value is not nil.
func (_u *MilestoneUpdate) SetNillableProvenance(v *string) *MilestoneUpdate {
	if v != nil {
		_u.SetProvenance(*v)
	}
	return _u
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdate) Mutation() *MilestoneMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MilestoneUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MilestoneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MilestoneUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := milestone.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := milestone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Milestone.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := milestone.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Milestone.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(milestone.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(milestone.FieldRoadmapID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoadmapID(); ok {
		_spec.AddField(milestone.FieldRoadmapID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(milestone.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(milestone.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(milestone.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(milestone.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(milestone.FieldEstimatedDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(milestone.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(milestone.FieldProvenance, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MilestoneUpdateOne is the builder for updating a single Milestone entity.
type MilestoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MilestoneMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MilestoneUpdateOne) SetUpdatedAt(v time.Time) *MilestoneUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *MilestoneUpdateOne) SetRoadmapID(v int) *MilestoneUpdateOne {
	_u.mutation.ResetRoadmapID()
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableRoadmapID(v *int) *MilestoneUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// AddRoadmapID adds value to the "roadmap_id" field.
func (_u *MilestoneUpdateOne) AddRoadmapID(v int) *MilestoneUpdateOne {
	_u.mutation.AddRoadmapID(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *MilestoneUpdateOne) SetPosition(v int) *MilestoneUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillablePosition(v *int) *MilestoneUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *MilestoneUpdateOne) AddPosition(v int) *MilestoneUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetName sets the "name" field.
func (_u *MilestoneUpdateOne) SetName(v string) *MilestoneUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableName(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MilestoneUpdateOne) SetDescription(v string) *MilestoneUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableDescription(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *MilestoneUpdateOne) SetEstimatedDuration(v string) *MilestoneUpdateOne {
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableEstimatedDuration(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MilestoneUpdateOne) SetSubject(v string) *MilestoneUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableSubject(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *MilestoneUpdateOne) SetProvenance(v string) *MilestoneUpdateOne {
	_u.mutation.SetProvenance(v)
	return _u
}

// SetNillableProvenance sets the "provenance" field if the given value is not nil.
func (_u *MilestoneUpdateOne) SetNillableProvenance(v *string) *MilestoneUpdateOne {
	if v != nil {
		_u.SetProvenance(*v)
	}
	return _u
}

// Mutation returns the MilestoneMutation object of the builder.
func (_u *MilestoneUpdateOne) Mutation() *MilestoneMutation {
	return _u.mutation
}

// Where appends a list predicates to the MilestoneUpdate builder.
func (_u *MilestoneUpdateOne) Where(ps ...predicate.Milestone) *MilestoneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MilestoneUpdateOne) Select(field string, fields ...string) *MilestoneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Milestone entity.
func (_u *MilestoneUpdateOne) Save(ctx context.Context) (*Milestone, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MilestoneUpdateOne) SaveX(ctx context.Context) *Milestone {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MilestoneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MilestoneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MilestoneUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := milestone.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MilestoneUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := milestone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Milestone.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := milestone.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Milestone.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *MilestoneUpdateOne) sqlSave(ctx context.Context) (_node *Milestone, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(milestone.Table, milestone.Columns, sqlgraph.NewFieldSpec(milestone.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Milestone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, milestone.FieldID)
		for _, f := range fields {
			if !milestone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != milestone.FieldID {
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
		_spec.SetField(milestone.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(milestone.FieldRoadmapID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoadmapID(); ok {
		_spec.AddField(milestone.FieldRoadmapID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(milestone.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(milestone.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(milestone.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(milestone.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(milestone.FieldEstimatedDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(milestone.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(milestone.FieldProvenance, field.TypeString, value)
	}
	_node = &Milestone{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{milestone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

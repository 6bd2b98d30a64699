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
	"github.com/rahulm/learnpath/ent/predicate"
	"github.com/rahulm/learnpath/ent/quiz"
)

// QuizUpdate is the builder for updating Quiz entities.
type QuizUpdate struct {
	config
	hooks    []Hook
	mutation *QuizMutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdate) Where(ps ...predicate.Quiz) *QuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizUpdate) SetUpdatedAt(v time.Time) *QuizUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScope sets the "scope" field.
func (_u *QuizUpdate) SetScope(v string) *QuizUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableScope(v *string) *QuizUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *QuizUpdate) SetScopeID(v int) *QuizUpdate {
	_u.mutation.ResetScopeID()
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableScopeID(v *int) *QuizUpdate {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// AddScopeID adds value to the "scope_id" field.
func (_u *QuizUpdate) AddScopeID(v int) *QuizUpdate {
	_u.mutation.AddScopeID(v)
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *QuizUpdate) SetQuizType(v string) *QuizUpdate {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableQuizType(v *string) *QuizUpdate {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *QuizUpdate) SetProvenance(v string) *QuizUpdate {
	_u.mutation.SetProvenance(v)
	return _u
}

// SetNillableProvenance sets the "provenance" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableProvenance(v *string) *QuizUpdate {
	if v != nil {
		_u.SetProvenance(*v)
	}
	return _u
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdate) Mutation() *QuizMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quiz.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := quiz.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Quiz.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := quiz.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "Quiz.quiz_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quiz.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(quiz.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(quiz.FieldScopeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScopeID(); ok {
		_spec.AddField(quiz.FieldScopeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(quiz.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(quiz.FieldProvenance, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizUpdateOne is the builder for updating a single Quiz entity.
type QuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizUpdateOne) SetUpdatedAt(v time.Time) *QuizUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScope sets the "scope" field.
func (_u *QuizUpdateOne) SetScope(v string) *QuizUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableScope(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *QuizUpdateOne) SetScopeID(v int) *QuizUpdateOne {
	_u.mutation.ResetScopeID()
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableScopeID(v *int) *QuizUpdateOne {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// AddScopeID adds value to the "scope_id" field.
func (_u *QuizUpdateOne) AddScopeID(v int) *QuizUpdateOne {
	_u.mutation.AddScopeID(v)
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *QuizUpdateOne) SetQuizType(v string) *QuizUpdateOne {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableQuizType(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *QuizUpdateOne) SetProvenance(v string) *QuizUpdateOne {
	_u.mutation.SetProvenance(v)
	return _u
}

// SetNillableProvenance sets the "provenance" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableProvenance(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetProvenance(*v)
	}
	return _u
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdateOne) Mutation() *QuizMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdateOne) Where(ps ...predicate.Quiz) *QuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizUpdateOne) Select(field string, fields ...string) *QuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quiz entity.
func (_u *QuizUpdateOne) Save(ctx context.Context) (*Quiz, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdateOne) SaveX(ctx context.Context) *Quiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quiz.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := quiz.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Quiz.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := quiz.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "Quiz.quiz_type": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdateOne) sqlSave(ctx context.Context) (_node *Quiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quiz.FieldID)
		for _, f := range fields {
			if !quiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quiz.FieldID {
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
		_spec.SetField(quiz.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(quiz.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(quiz.FieldScopeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScopeID(); ok {
		_spec.AddField(quiz.FieldScopeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(quiz.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(quiz.FieldProvenance, field.TypeString, value)
	}
	_node = &Quiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

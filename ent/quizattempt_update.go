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
	"github.com/rahulm/learnpath/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizAttemptUpdate) SetUpdatedAt(v time.Time) *QuizAttemptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptUpdate) SetQuizID(v int) *QuizAttemptUpdate {
	_u.mutation.ResetQuizID()
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableQuizID(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// AddQuizID adds value to the "quiz_id" field.
func (_u *QuizAttemptUpdate) AddQuizID(v int) *QuizAttemptUpdate {
	_u.mutation.AddQuizID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdate) SetUserID(v string) *QuizAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableUserID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAttemptIndex sets the "attempt_index" field.
func (_u *QuizAttemptUpdate) SetAttemptIndex(v int) *QuizAttemptUpdate {
	_u.mutation.ResetAttemptIndex()
	_u.mutation.SetAttemptIndex(v)
	return _u
}

// SetNillableAttemptIndex sets the "attempt_index" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableAttemptIndex(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetAttemptIndex(*v)
	}
	return _u
}

// AddAttemptIndex adds value to the "attempt_index" field.
func (_u *QuizAttemptUpdate) AddAttemptIndex(v int) *QuizAttemptUpdate {
	_u.mutation.AddAttemptIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizAttemptUpdate) SetStatus(v string) *QuizAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableStatus(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdate) SetScore(v float64) *QuizAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScore(v *float64) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdate) AddScore(v float64) *QuizAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizAttemptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizattempt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quizattempt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizattempt.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizID(); ok {
		_spec.AddField(quizattempt.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptIndex(); ok {
		_spec.SetField(quizattempt.FieldAttemptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptIndex(); ok {
		_spec.AddField(quizattempt.FieldAttemptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizattempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizAttemptUpdateOne) SetUpdatedAt(v time.Time) *QuizAttemptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizAttemptUpdateOne) SetQuizID(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetQuizID()
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableQuizID(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// AddQuizID adds value to the "quiz_id" field.
func (_u *QuizAttemptUpdateOne) AddQuizID(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddQuizID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizAttemptUpdateOne) SetUserID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableUserID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAttemptIndex sets the "attempt_index" field.
func (_u *QuizAttemptUpdateOne) SetAttemptIndex(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetAttemptIndex()
	_u.mutation.SetAttemptIndex(v)
	return _u
}

// SetNillableAttemptIndex sets the "attempt_index" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableAttemptIndex(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptIndex(*v)
	}
	return _u
}

// AddAttemptIndex adds value to the "attempt_index" field.
func (_u *QuizAttemptUpdateOne) AddAttemptIndex(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddAttemptIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizAttemptUpdateOne) SetStatus(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableStatus(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdateOne) SetScore(v float64) *QuizAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScore(v *float64) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdateOne) AddScore(v float64) *QuizAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizAttemptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizattempt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := quizattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
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
		_spec.SetField(quizattempt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizattempt.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizID(); ok {
		_spec.AddField(quizattempt.FieldQuizID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptIndex(); ok {
		_spec.SetField(quizattempt.FieldAttemptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptIndex(); ok {
		_spec.AddField(quizattempt.FieldAttemptIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizattempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeFloat64, value)
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

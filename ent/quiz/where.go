// Code generated by ent, DO NOT EDIT.

package quiz

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulm/learnpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldUpdatedAt, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldScope, v))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldScopeID, v))
}

// QuizType applies equality check predicate on the "quiz_type" field. It's identical to QuizTypeEQ.
func QuizType(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldQuizType, v))
}

// Provenance applies equality check predicate on the "provenance" field. It's identical to ProvenanceEQ.
func Provenance(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldProvenance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldUpdatedAt, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContainsFold(FieldScope, v))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...int) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...int) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldScopeID, v))
}

// QuizTypeEQ applies the EQ predicate on the "quiz_type" field.
func QuizTypeEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldQuizType, v))
}

// QuizTypeNEQ applies the NEQ predicate on the "quiz_type" field.
func QuizTypeNEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldQuizType, v))
}

// QuizTypeIn applies the In predicate on the "quiz_type" field.
func QuizTypeIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldQuizType, vs...))
}

// QuizTypeNotIn applies the NotIn predicate on the "quiz_type" field.
func QuizTypeNotIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldQuizType, vs...))
}

// QuizTypeGT applies the GT predicate on the "quiz_type" field.
func QuizTypeGT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldQuizType, v))
}

// QuizTypeGTE applies the GTE predicate on the "quiz_type" field.
func QuizTypeGTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldQuizType, v))
}

// QuizTypeLT applies the LT predicate on the "quiz_type" field.
func QuizTypeLT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldQuizType, v))
}

// QuizTypeLTE applies the LTE predicate on the "quiz_type" field.
func QuizTypeLTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldQuizType, v))
}

// QuizTypeContains applies the Contains predicate on the "quiz_type" field.
func QuizTypeContains(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContains(FieldQuizType, v))
}

// QuizTypeHasPrefix applies the HasPrefix predicate on the "quiz_type" field.
func QuizTypeHasPrefix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasPrefix(FieldQuizType, v))
}

// QuizTypeHasSuffix applies the HasSuffix predicate on the "quiz_type" field.
func QuizTypeHasSuffix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasSuffix(FieldQuizType, v))
}

// QuizTypeEqualFold applies the EqualFold predicate on the "quiz_type" field.
func QuizTypeEqualFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEqualFold(FieldQuizType, v))
}

// QuizTypeContainsFold applies the ContainsFold predicate on the "quiz_type" field.
func QuizTypeContainsFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContainsFold(FieldQuizType, v))
}

// ProvenanceEQ applies the EQ predicate on the "provenance" field.
func ProvenanceEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldProvenance, v))
}

// ProvenanceNEQ applies the NEQ predicate on the "provenance" field.
func ProvenanceNEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldProvenance, v))
}

// ProvenanceIn applies the In predicate on the "provenance" field.
func ProvenanceIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldProvenance, vs...))
}

// ProvenanceNotIn applies the NotIn predicate on the "provenance" field.
func ProvenanceNotIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldProvenance, vs...))
}

// ProvenanceGT applies the GT predicate on the "provenance" field.
func ProvenanceGT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldProvenance, v))
}

// ProvenanceGTE applies the GTE predicate on the "provenance" field.
func ProvenanceGTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldProvenance, v))
}

// ProvenanceLT applies the LT predicate on the "provenance" field.
func ProvenanceLT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldProvenance, v))
}

// ProvenanceLTE applies the LTE predicate on the "provenance" field.
func ProvenanceLTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldProvenance, v))
}

// ProvenanceContains applies the Contains predicate on the "provenance" field.
func ProvenanceContains(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContains(FieldProvenance, v))
}

// ProvenanceHasPrefix applies the HasPrefix predicate on the "provenance" field.
func ProvenanceHasPrefix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasPrefix(FieldProvenance, v))
}

// ProvenanceHasSuffix applies the HasSuffix predicate on the "provenance" field.
func ProvenanceHasSuffix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasSuffix(FieldProvenance, v))
}

// ProvenanceEqualFold applies the EqualFold predicate on the "provenance" field.
func ProvenanceEqualFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEqualFold(FieldProvenance, v))
}

// ProvenanceContainsFold applies the ContainsFold predicate on the "provenance" field.
func ProvenanceContainsFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContainsFold(FieldProvenance, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quiz) predicate.Quiz {
	return predicate.Quiz(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quiz) predicate.Quiz {
	return predicate.Quiz(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quiz) predicate.Quiz {
	return predicate.Quiz(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package milestone

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulm/learnpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldUpdatedAt, v))
}

// RoadmapID applies equality check predicate on the "roadmap_id" field. It's identical to RoadmapIDEQ.
func RoadmapID(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldRoadmapID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldPosition, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldDescription, v))
}

// EstimatedDuration applies equality check predicate on the "estimated_duration" field. It's identical to EstimatedDurationEQ.
func EstimatedDuration(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldEstimatedDuration, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldSubject, v))
}

// Provenance applies equality check predicate on the "provenance" field. It's identical to ProvenanceEQ.
func Provenance(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldProvenance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldUpdatedAt, v))
}

// RoadmapIDEQ applies the EQ predicate on the "roadmap_id" field.
func RoadmapIDEQ(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldRoadmapID, v))
}

// RoadmapIDNEQ applies the NEQ predicate on the "roadmap_id" field.
func RoadmapIDNEQ(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldRoadmapID, v))
}

// RoadmapIDIn applies the In predicate on the "roadmap_id" field.
func RoadmapIDIn(vs ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldRoadmapID, vs...))
}

// RoadmapIDNotIn applies the NotIn predicate on the "roadmap_id" field.
func RoadmapIDNotIn(vs ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldRoadmapID, vs...))
}

// RoadmapIDGT applies the GT predicate on the "roadmap_id" field.
func RoadmapIDGT(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldRoadmapID, v))
}

// RoadmapIDGTE applies the GTE predicate on the "roadmap_id" field.
func RoadmapIDGTE(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldRoadmapID, v))
}

// RoadmapIDLT applies the LT predicate on the "roadmap_id" field.
func RoadmapIDLT(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldRoadmapID, v))
}

// RoadmapIDLTE applies the LTE predicate on the "roadmap_id" field.
func RoadmapIDLTE(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldRoadmapID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldPosition, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldDescription, v))
}

// EstimatedDurationEQ applies the EQ predicate on the "estimated_duration" field.
func EstimatedDurationEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationNEQ applies the NEQ predicate on the "estimated_duration" field.
func EstimatedDurationNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationIn applies the In predicate on the "estimated_duration" field.
func EstimatedDurationIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationNotIn applies the NotIn predicate on the "estimated_duration" field.
func EstimatedDurationNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationGT applies the GT predicate on the "estimated_duration" field.
func EstimatedDurationGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldEstimatedDuration, v))
}

// EstimatedDurationGTE applies the GTE predicate on the "estimated_duration" field.
func EstimatedDurationGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldEstimatedDuration, v))
}

// EstimatedDurationLT applies the LT predicate on the "estimated_duration" field.
func EstimatedDurationLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldEstimatedDuration, v))
}

// EstimatedDurationLTE applies the LTE predicate on the "estimated_duration" field.
func EstimatedDurationLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldEstimatedDuration, v))
}

// EstimatedDurationContains applies the Contains predicate on the "estimated_duration" field.
func EstimatedDurationContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldEstimatedDuration, v))
}

// EstimatedDurationHasPrefix applies the HasPrefix predicate on the "estimated_duration" field.
func EstimatedDurationHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldEstimatedDuration, v))
}

// EstimatedDurationHasSuffix applies the HasSuffix predicate on the "estimated_duration" field.
func EstimatedDurationHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldEstimatedDuration, v))
}

// EstimatedDurationEqualFold applies the EqualFold predicate on the "estimated_duration" field.
func EstimatedDurationEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldEstimatedDuration, v))
}

// EstimatedDurationContainsFold applies the ContainsFold predicate on the "estimated_duration" field.
func EstimatedDurationContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldEstimatedDuration, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldSubject, v))
}

// ProvenanceEQ applies the EQ predicate on the "provenance" field.
func ProvenanceEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEQ(FieldProvenance, v))
}

// ProvenanceNEQ applies the NEQ predicate on the "provenance" field.
func ProvenanceNEQ(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNEQ(FieldProvenance, v))
}

// ProvenanceIn applies the In predicate on the "provenance" field.
func ProvenanceIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldIn(FieldProvenance, vs...))
}

// ProvenanceNotIn applies the NotIn predicate on the "provenance" field.
func ProvenanceNotIn(vs ...string) predicate.Milestone {
	return predicate.Milestone(sql.FieldNotIn(FieldProvenance, vs...))
}

// ProvenanceGT applies the GT predicate on the "provenance" field.
func ProvenanceGT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGT(FieldProvenance, v))
}

// ProvenanceGTE applies the GTE predicate on the "provenance" field.
func ProvenanceGTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldGTE(FieldProvenance, v))
}

// ProvenanceLT applies the LT predicate on the "provenance" field.
func ProvenanceLT(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLT(FieldProvenance, v))
}

// ProvenanceLTE applies the LTE predicate on the "provenance" field.
func ProvenanceLTE(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldLTE(FieldProvenance, v))
}

// ProvenanceContains applies the Contains predicate on the "provenance" field.
func ProvenanceContains(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContains(FieldProvenance, v))
}

// ProvenanceHasPrefix applies the HasPrefix predicate on the "provenance" field.
func ProvenanceHasPrefix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasPrefix(FieldProvenance, v))
}

// ProvenanceHasSuffix applies the HasSuffix predicate on the "provenance" field.
func ProvenanceHasSuffix(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldHasSuffix(FieldProvenance, v))
}

// ProvenanceEqualFold applies the EqualFold predicate on the "provenance" field.
func ProvenanceEqualFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldEqualFold(FieldProvenance, v))
}

// ProvenanceContainsFold applies the ContainsFold predicate on the "provenance" field.
func ProvenanceContainsFold(v string) predicate.Milestone {
	return predicate.Milestone(sql.FieldContainsFold(FieldProvenance, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Milestone) predicate.Milestone {
	return predicate.Milestone(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package roadmap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulm/learnpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTitle, v))
}

// SkillLevel applies equality check predicate on the "skill_level" field. It's identical to SkillLevelEQ.
func SkillLevel(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldSkillLevel, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDuration, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDomain, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldTitle, v))
}

// SkillLevelEQ applies the EQ predicate on the "skill_level" field.
func SkillLevelEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldSkillLevel, v))
}

// SkillLevelNEQ applies the NEQ predicate on the "skill_level" field.
func SkillLevelNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldSkillLevel, v))
}

// SkillLevelIn applies the In predicate on the "skill_level" field.
func SkillLevelIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldSkillLevel, vs...))
}

// SkillLevelNotIn applies the NotIn predicate on the "skill_level" field.
func SkillLevelNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldSkillLevel, vs...))
}

// SkillLevelGT applies the GT predicate on the "skill_level" field.
func SkillLevelGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldSkillLevel, v))
}

// SkillLevelGTE applies the GTE predicate on the "skill_level" field.
func SkillLevelGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldSkillLevel, v))
}

// SkillLevelLT applies the LT predicate on the "skill_level" field.
func SkillLevelLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldSkillLevel, v))
}

// SkillLevelLTE applies the LTE predicate on the "skill_level" field.
func SkillLevelLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldSkillLevel, v))
}

// SkillLevelContains applies the Contains predicate on the "skill_level" field.
func SkillLevelContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldSkillLevel, v))
}

// SkillLevelHasPrefix applies the HasPrefix predicate on the "skill_level" field.
func SkillLevelHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldSkillLevel, v))
}

// SkillLevelHasSuffix applies the HasSuffix predicate on the "skill_level" field.
func SkillLevelHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldSkillLevel, v))
}

// SkillLevelEqualFold applies the EqualFold predicate on the "skill_level" field.
func SkillLevelEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldSkillLevel, v))
}

// SkillLevelContainsFold applies the ContainsFold predicate on the "skill_level" field.
func SkillLevelContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldSkillLevel, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldDuration, v))
}

// DurationContains applies the Contains predicate on the "duration" field.
func DurationContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldDuration, v))
}

// DurationHasPrefix applies the HasPrefix predicate on the "duration" field.
func DurationHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldDuration, v))
}

// DurationHasSuffix applies the HasSuffix predicate on the "duration" field.
func DurationHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldDuration, v))
}

// DurationEqualFold applies the EqualFold predicate on the "duration" field.
func DurationEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldDuration, v))
}

// DurationContainsFold applies the ContainsFold predicate on the "duration" field.
func DurationContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldDuration, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldDomain, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.NotPredicates(p))
}

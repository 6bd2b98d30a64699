// Code generated by ent, DO NOT EDIT.

package milestone

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the milestone type in the database.
	Label = "milestone"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRoadmapID holds the string denoting the roadmap_id field in the database.
	FieldRoadmapID = "roadmap_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEstimatedDuration holds the string denoting the estimated_duration field in the database.
	FieldEstimatedDuration = "estimated_duration"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldProvenance holds the string denoting the provenance field in the database.
	FieldProvenance = "provenance"
	// Table holds the table name of the milestone in the database.
	Table = "milestones"
)

// Columns holds all SQL columns for milestone fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRoadmapID,
	FieldPosition,
	FieldName,
	FieldDescription,
	FieldEstimatedDuration,
	FieldSubject,
	FieldProvenance,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultEstimatedDuration holds the default value on creation for the "estimated_duration" field.
	DefaultEstimatedDuration string
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultProvenance holds the default value on creation for the "provenance" field.
	DefaultProvenance string
)

// OrderOption defines the ordering options for the Milestone queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRoadmapID orders the results by the roadmap_id field.
func ByRoadmapID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoadmapID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByEstimatedDuration orders the results by the estimated_duration field.
func ByEstimatedDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDuration, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByProvenance orders the results by the provenance field.
func ByProvenance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvenance, opts...).ToFunc()
}

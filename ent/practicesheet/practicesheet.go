// Code generated by ent, DO NOT EDIT.

package practicesheet

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesheet type in the database.
	Label = "practice_sheet"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSheetID holds the string denoting the sheet_id field in the database.
	FieldSheetID = "sheet_id"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldPointID holds the string denoting the point_id field in the database.
	FieldPointID = "point_id"
	// FieldPointName holds the string denoting the point_name field in the database.
	FieldPointName = "point_name"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldSheet holds the string denoting the sheet field in the database.
	FieldSheet = "sheet"
	// Table holds the table name of the practicesheet in the database.
	Table = "practice_sheets"
)

// Columns holds all SQL columns for practicesheet fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSheetID,
	FieldStudentName,
	FieldPointID,
	FieldPointName,
	FieldSubject,
	FieldGrade,
	FieldQuestionCount,
	FieldSheet,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SheetIDValidator is a validator for the "sheet_id" field. It is called by the builders before save.
	SheetIDValidator func(string) error
	// StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	StudentNameValidator func(string) error
	// PointIDValidator is a validator for the "point_id" field. It is called by the builders before save.
	PointIDValidator func(string) error
	// PointNameValidator is a validator for the "point_name" field. It is called by the builders before save.
	PointNameValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
)

// OrderOption defines the ordering options for the PracticeSheet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySheetID orders the results by the sheet_id field.
func BySheetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSheetID, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// ByPointID orders the results by the point_id field.
func ByPointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointID, opts...).ToFunc()
}

// ByPointName orders the results by the point_name field.
func ByPointName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointName, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

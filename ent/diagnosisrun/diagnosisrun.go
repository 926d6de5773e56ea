// Code generated by ent, DO NOT EDIT.

package diagnosisrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagnosisrun type in the database.
	Label = "diagnosis_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTargetGrade holds the string denoting the target_grade field in the database.
	FieldTargetGrade = "target_grade"
	// FieldGradeLevel holds the string denoting the grade_level field in the database.
	FieldGradeLevel = "grade_level"
	// FieldMasteredCount holds the string denoting the mastered_count field in the database.
	FieldMasteredCount = "mastered_count"
	// FieldWeakCount holds the string denoting the weak_count field in the database.
	FieldWeakCount = "weak_count"
	// FieldReport holds the string denoting the report field in the database.
	FieldReport = "report"
	// Table holds the table name of the diagnosisrun in the database.
	Table = "diagnosis_runs"
)

// Columns holds all SQL columns for diagnosisrun fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldStudentName,
	FieldSubject,
	FieldTargetGrade,
	FieldGradeLevel,
	FieldMasteredCount,
	FieldWeakCount,
	FieldReport,
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
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	StudentNameValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultMasteredCount holds the default value on creation for the "mastered_count" field.
	DefaultMasteredCount int
	// DefaultWeakCount holds the default value on creation for the "weak_count" field.
	DefaultWeakCount int
)

// OrderOption defines the ordering options for the DiagnosisRun queries.
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

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTargetGrade orders the results by the target_grade field.
func ByTargetGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetGrade, opts...).ToFunc()
}

// ByGradeLevel orders the results by the grade_level field.
func ByGradeLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevel, opts...).ToFunc()
}

// ByMasteredCount orders the results by the mastered_count field.
func ByMasteredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredCount, opts...).ToFunc()
}

// ByWeakCount orders the results by the weak_count field.
func ByWeakCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeakCount, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package diagnosisrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/linwei/studymap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldRunID, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldStudentName, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldSubject, v))
}

// TargetGrade applies equality check predicate on the "target_grade" field. It's identical to TargetGradeEQ.
func TargetGrade(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldTargetGrade, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldGradeLevel, v))
}

// MasteredCount applies equality check predicate on the "mastered_count" field. It's identical to MasteredCountEQ.
func MasteredCount(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldMasteredCount, v))
}

// WeakCount applies equality check predicate on the "weak_count" field. It's identical to WeakCountEQ.
func WeakCount(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldWeakCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldContainsFold(FieldRunID, v))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldContainsFold(FieldStudentName, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldContainsFold(FieldSubject, v))
}

// TargetGradeEQ applies the EQ predicate on the "target_grade" field.
func TargetGradeEQ(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldTargetGrade, v))
}

// TargetGradeNEQ applies the NEQ predicate on the "target_grade" field.
func TargetGradeNEQ(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldTargetGrade, v))
}

// TargetGradeIn applies the In predicate on the "target_grade" field.
func TargetGradeIn(vs ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldTargetGrade, vs...))
}

// TargetGradeNotIn applies the NotIn predicate on the "target_grade" field.
func TargetGradeNotIn(vs ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldTargetGrade, vs...))
}

// TargetGradeGT applies the GT predicate on the "target_grade" field.
func TargetGradeGT(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldTargetGrade, v))
}

// TargetGradeGTE applies the GTE predicate on the "target_grade" field.
func TargetGradeGTE(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldTargetGrade, v))
}

// TargetGradeLT applies the LT predicate on the "target_grade" field.
func TargetGradeLT(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldTargetGrade, v))
}

// TargetGradeLTE applies the LTE predicate on the "target_grade" field.
func TargetGradeLTE(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldTargetGrade, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v float64) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldGradeLevel, v))
}

// MasteredCountEQ applies the EQ predicate on the "mastered_count" field.
func MasteredCountEQ(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldMasteredCount, v))
}

// MasteredCountNEQ applies the NEQ predicate on the "mastered_count" field.
func MasteredCountNEQ(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldMasteredCount, v))
}

// MasteredCountIn applies the In predicate on the "mastered_count" field.
func MasteredCountIn(vs ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldMasteredCount, vs...))
}

// MasteredCountNotIn applies the NotIn predicate on the "mastered_count" field.
func MasteredCountNotIn(vs ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldMasteredCount, vs...))
}

// MasteredCountGT applies the GT predicate on the "mastered_count" field.
func MasteredCountGT(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldMasteredCount, v))
}

// MasteredCountGTE applies the GTE predicate on the "mastered_count" field.
func MasteredCountGTE(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldMasteredCount, v))
}

// MasteredCountLT applies the LT predicate on the "mastered_count" field.
func MasteredCountLT(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldMasteredCount, v))
}

// MasteredCountLTE applies the LTE predicate on the "mastered_count" field.
func MasteredCountLTE(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldMasteredCount, v))
}

// WeakCountEQ applies the EQ predicate on the "weak_count" field.
func WeakCountEQ(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldEQ(FieldWeakCount, v))
}

// WeakCountNEQ applies the NEQ predicate on the "weak_count" field.
func WeakCountNEQ(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNEQ(FieldWeakCount, v))
}

// WeakCountIn applies the In predicate on the "weak_count" field.
func WeakCountIn(vs ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldIn(FieldWeakCount, vs...))
}

// WeakCountNotIn applies the NotIn predicate on the "weak_count" field.
func WeakCountNotIn(vs ...int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldNotIn(FieldWeakCount, vs...))
}

// WeakCountGT applies the GT predicate on the "weak_count" field.
func WeakCountGT(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGT(FieldWeakCount, v))
}

// WeakCountGTE applies the GTE predicate on the "weak_count" field.
func WeakCountGTE(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldGTE(FieldWeakCount, v))
}

// WeakCountLT applies the LT predicate on the "weak_count" field.
func WeakCountLT(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLT(FieldWeakCount, v))
}

// WeakCountLTE applies the LTE predicate on the "weak_count" field.
func WeakCountLTE(v int) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.FieldLTE(FieldWeakCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosisRun) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosisRun) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosisRun) predicate.DiagnosisRun {
	return predicate.DiagnosisRun(sql.NotPredicates(p))
}

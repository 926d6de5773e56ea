// Code generated by ent, DO NOT EDIT.

package practicesheet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/linwei/studymap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldTimestamp, v))
}

// SheetID applies equality check predicate on the "sheet_id" field. It's identical to SheetIDEQ.
func SheetID(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldSheetID, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldStudentName, v))
}

// PointID applies equality check predicate on the "point_id" field. It's identical to PointIDEQ.
func PointID(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldPointID, v))
}

// PointName applies equality check predicate on the "point_name" field. It's identical to PointNameEQ.
func PointName(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldPointName, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldSubject, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldGrade, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldQuestionCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldTimestamp, v))
}

// SheetIDEQ applies the EQ predicate on the "sheet_id" field.
func SheetIDEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldSheetID, v))
}

// SheetIDNEQ applies the NEQ predicate on the "sheet_id" field.
func SheetIDNEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldSheetID, v))
}

// SheetIDIn applies the In predicate on the "sheet_id" field.
func SheetIDIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldSheetID, vs...))
}

// SheetIDNotIn applies the NotIn predicate on the "sheet_id" field.
func SheetIDNotIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldSheetID, vs...))
}

// SheetIDGT applies the GT predicate on the "sheet_id" field.
func SheetIDGT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldSheetID, v))
}

// SheetIDGTE applies the GTE predicate on the "sheet_id" field.
func SheetIDGTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldSheetID, v))
}

// SheetIDLT applies the LT predicate on the "sheet_id" field.
func SheetIDLT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldSheetID, v))
}

// SheetIDLTE applies the LTE predicate on the "sheet_id" field.
func SheetIDLTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldSheetID, v))
}

// SheetIDContains applies the Contains predicate on the "sheet_id" field.
func SheetIDContains(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContains(FieldSheetID, v))
}

// SheetIDHasPrefix applies the HasPrefix predicate on the "sheet_id" field.
func SheetIDHasPrefix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasPrefix(FieldSheetID, v))
}

// SheetIDHasSuffix applies the HasSuffix predicate on the "sheet_id" field.
func SheetIDHasSuffix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasSuffix(FieldSheetID, v))
}

// SheetIDEqualFold applies the EqualFold predicate on the "sheet_id" field.
func SheetIDEqualFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEqualFold(FieldSheetID, v))
}

// SheetIDContainsFold applies the ContainsFold predicate on the "sheet_id" field.
func SheetIDContainsFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContainsFold(FieldSheetID, v))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContainsFold(FieldStudentName, v))
}

// PointIDEQ applies the EQ predicate on the "point_id" field.
func PointIDEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldPointID, v))
}

// PointIDNEQ applies the NEQ predicate on the "point_id" field.
func PointIDNEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldPointID, v))
}

// PointIDIn applies the In predicate on the "point_id" field.
func PointIDIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldPointID, vs...))
}

// PointIDNotIn applies the NotIn predicate on the "point_id" field.
func PointIDNotIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldPointID, vs...))
}

// PointIDGT applies the GT predicate on the "point_id" field.
func PointIDGT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldPointID, v))
}

// PointIDGTE applies the GTE predicate on the "point_id" field.
func PointIDGTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldPointID, v))
}

// PointIDLT applies the LT predicate on the "point_id" field.
func PointIDLT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldPointID, v))
}

// PointIDLTE applies the LTE predicate on the "point_id" field.
func PointIDLTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldPointID, v))
}

// PointIDContains applies the Contains predicate on the "point_id" field.
func PointIDContains(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContains(FieldPointID, v))
}

// PointIDHasPrefix applies the HasPrefix predicate on the "point_id" field.
func PointIDHasPrefix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasPrefix(FieldPointID, v))
}

// PointIDHasSuffix applies the HasSuffix predicate on the "point_id" field.
func PointIDHasSuffix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasSuffix(FieldPointID, v))
}

// PointIDEqualFold applies the EqualFold predicate on the "point_id" field.
func PointIDEqualFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEqualFold(FieldPointID, v))
}

// PointIDContainsFold applies the ContainsFold predicate on the "point_id" field.
func PointIDContainsFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContainsFold(FieldPointID, v))
}

// PointNameEQ applies the EQ predicate on the "point_name" field.
func PointNameEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldPointName, v))
}

// PointNameNEQ applies the NEQ predicate on the "point_name" field.
func PointNameNEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldPointName, v))
}

// PointNameIn applies the In predicate on the "point_name" field.
func PointNameIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldPointName, vs...))
}

// PointNameNotIn applies the NotIn predicate on the "point_name" field.
func PointNameNotIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldPointName, vs...))
}

// PointNameGT applies the GT predicate on the "point_name" field.
func PointNameGT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldPointName, v))
}

// PointNameGTE applies the GTE predicate on the "point_name" field.
func PointNameGTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldPointName, v))
}

// PointNameLT applies the LT predicate on the "point_name" field.
func PointNameLT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldPointName, v))
}

// PointNameLTE applies the LTE predicate on the "point_name" field.
func PointNameLTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldPointName, v))
}

// PointNameContains applies the Contains predicate on the "point_name" field.
func PointNameContains(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContains(FieldPointName, v))
}

// PointNameHasPrefix applies the HasPrefix predicate on the "point_name" field.
func PointNameHasPrefix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasPrefix(FieldPointName, v))
}

// PointNameHasSuffix applies the HasSuffix predicate on the "point_name" field.
func PointNameHasSuffix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasSuffix(FieldPointName, v))
}

// PointNameEqualFold applies the EqualFold predicate on the "point_name" field.
func PointNameEqualFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEqualFold(FieldPointName, v))
}

// PointNameContainsFold applies the ContainsFold predicate on the "point_name" field.
func PointNameContainsFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContainsFold(FieldPointName, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldContainsFold(FieldSubject, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldGrade, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.FieldLTE(FieldQuestionCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSheet) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSheet) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSheet) predicate.PracticeSheet {
	return predicate.PracticeSheet(sql.NotPredicates(p))
}

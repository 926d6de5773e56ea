// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/linwei/studymap/ent/diagnosisrun"
	"github.com/linwei/studymap/ent/llmrequestevent"
	"github.com/linwei/studymap/ent/practicesheet"
	"github.com/linwei/studymap/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diagnosisrunMixin := schema.DiagnosisRun{}.Mixin()
	diagnosisrunMixinFields0 := diagnosisrunMixin[0].Fields()
	_ = diagnosisrunMixinFields0
	diagnosisrunFields := schema.DiagnosisRun{}.Fields()
	_ = diagnosisrunFields
	// diagnosisrunDescTimestamp is the schema descriptor for timestamp field.
	diagnosisrunDescTimestamp := diagnosisrunMixinFields0[1].Descriptor()
	// diagnosisrun.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisrun.DefaultTimestamp = diagnosisrunDescTimestamp.Default.(func() time.Time)
	// diagnosisrunDescRunID is the schema descriptor for run_id field.
	diagnosisrunDescRunID := diagnosisrunFields[0].Descriptor()
	// diagnosisrun.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	diagnosisrun.RunIDValidator = diagnosisrunDescRunID.Validators[0].(func(string) error)
	// diagnosisrunDescStudentName is the schema descriptor for student_name field.
	diagnosisrunDescStudentName := diagnosisrunFields[1].Descriptor()
	// diagnosisrun.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	diagnosisrun.StudentNameValidator = diagnosisrunDescStudentName.Validators[0].(func(string) error)
	// diagnosisrunDescSubject is the schema descriptor for subject field.
	diagnosisrunDescSubject := diagnosisrunFields[2].Descriptor()
	// diagnosisrun.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	diagnosisrun.SubjectValidator = diagnosisrunDescSubject.Validators[0].(func(string) error)
	// diagnosisrunDescMasteredCount is the schema descriptor for mastered_count field.
	diagnosisrunDescMasteredCount := diagnosisrunFields[5].Descriptor()
	// diagnosisrun.DefaultMasteredCount holds the default value on creation for the mastered_count field.
	diagnosisrun.DefaultMasteredCount = diagnosisrunDescMasteredCount.Default.(int)
	// diagnosisrunDescWeakCount is the schema descriptor for weak_count field.
	diagnosisrunDescWeakCount := diagnosisrunFields[6].Descriptor()
	// diagnosisrun.DefaultWeakCount holds the default value on creation for the weak_count field.
	diagnosisrun.DefaultWeakCount = diagnosisrunDescWeakCount.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	practicesheetMixin := schema.PracticeSheet{}.Mixin()
	practicesheetMixinFields0 := practicesheetMixin[0].Fields()
	_ = practicesheetMixinFields0
	practicesheetFields := schema.PracticeSheet{}.Fields()
	_ = practicesheetFields
	// practicesheetDescTimestamp is the schema descriptor for timestamp field.
	practicesheetDescTimestamp := practicesheetMixinFields0[1].Descriptor()
	// practicesheet.DefaultTimestamp holds the default value on creation for the timestamp field.
	practicesheet.DefaultTimestamp = practicesheetDescTimestamp.Default.(func() time.Time)
	// practicesheetDescSheetID is the schema descriptor for sheet_id field.
	practicesheetDescSheetID := practicesheetFields[0].Descriptor()
	// practicesheet.SheetIDValidator is a validator for the "sheet_id" field. It is called by the builders before save.
	practicesheet.SheetIDValidator = practicesheetDescSheetID.Validators[0].(func(string) error)
	// practicesheetDescStudentName is the schema descriptor for student_name field.
	practicesheetDescStudentName := practicesheetFields[1].Descriptor()
	// practicesheet.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	practicesheet.StudentNameValidator = practicesheetDescStudentName.Validators[0].(func(string) error)
	// practicesheetDescPointID is the schema descriptor for point_id field.
	practicesheetDescPointID := practicesheetFields[2].Descriptor()
	// practicesheet.PointIDValidator is a validator for the "point_id" field. It is called by the builders before save.
	practicesheet.PointIDValidator = practicesheetDescPointID.Validators[0].(func(string) error)
	// practicesheetDescPointName is the schema descriptor for point_name field.
	practicesheetDescPointName := practicesheetFields[3].Descriptor()
	// practicesheet.PointNameValidator is a validator for the "point_name" field. It is called by the builders before save.
	practicesheet.PointNameValidator = practicesheetDescPointName.Validators[0].(func(string) error)
	// practicesheetDescSubject is the schema descriptor for subject field.
	practicesheetDescSubject := practicesheetFields[4].Descriptor()
	// practicesheet.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	practicesheet.SubjectValidator = practicesheetDescSubject.Validators[0].(func(string) error)
	// practicesheetDescQuestionCount is the schema descriptor for question_count field.
	practicesheetDescQuestionCount := practicesheetFields[6].Descriptor()
	// practicesheet.DefaultQuestionCount holds the default value on creation for the question_count field.
	practicesheet.DefaultQuestionCount = practicesheetDescQuestionCount.Default.(int)
}

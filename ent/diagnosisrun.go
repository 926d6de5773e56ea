// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linwei/studymap/ent/diagnosisrun"
)

// DiagnosisRun is the model entity for the DiagnosisRun schema.
type DiagnosisRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the store-wide ordering; drawn from one counter
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned when the run is recorded
	RunID string `json:"run_id,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName string `json:"student_name,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// TargetGrade holds the value of the "target_grade" field.
	TargetGrade int `json:"target_grade,omitempty"`
	// Estimated actual grade level, e.g. 2.5
	GradeLevel float64 `json:"grade_level,omitempty"`
	// MasteredCount holds the value of the "mastered_count" field.
	MasteredCount int `json:"mastered_count,omitempty"`
	// WeakCount holds the value of the "weak_count" field.
	WeakCount int `json:"weak_count,omitempty"`
	// Full diagnosis report as JSON
	Report       map[string]interface{} `json:"report,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosisRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosisrun.FieldReport:
			values[i] = new([]byte)
		case diagnosisrun.FieldGradeLevel:
			values[i] = new(sql.NullFloat64)
		case diagnosisrun.FieldID, diagnosisrun.FieldSequence, diagnosisrun.FieldTargetGrade, diagnosisrun.FieldMasteredCount, diagnosisrun.FieldWeakCount:
			values[i] = new(sql.NullInt64)
		case diagnosisrun.FieldRunID, diagnosisrun.FieldStudentName, diagnosisrun.FieldSubject:
			values[i] = new(sql.NullString)
		case diagnosisrun.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosisRun fields.
func (_m *DiagnosisRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosisrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagnosisrun.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case diagnosisrun.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case diagnosisrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case diagnosisrun.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		case diagnosisrun.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case diagnosisrun.FieldTargetGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_grade", values[i])
			} else if value.Valid {
				_m.TargetGrade = int(value.Int64)
			}
		case diagnosisrun.FieldGradeLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level", values[i])
			} else if value.Valid {
				_m.GradeLevel = value.Float64
			}
		case diagnosisrun.FieldMasteredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_count", values[i])
			} else if value.Valid {
				_m.MasteredCount = int(value.Int64)
			}
		case diagnosisrun.FieldWeakCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weak_count", values[i])
			} else if value.Valid {
				_m.WeakCount = int(value.Int64)
			}
		case diagnosisrun.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosisRun.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosisRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosisRun.
// Note that you need to call DiagnosisRun.Unwrap() before calling this method if this DiagnosisRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosisRun) Update() *DiagnosisRunUpdateOne {
	return NewDiagnosisRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosisRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosisRun) Unwrap() *DiagnosisRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosisRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosisRun) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosisRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("target_grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetGrade))
	builder.WriteString(", ")
	builder.WriteString("grade_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.GradeLevel))
	builder.WriteString(", ")
	builder.WriteString("mastered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteredCount))
	builder.WriteString(", ")
	builder.WriteString("weak_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakCount))
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosisRuns is a parsable slice of DiagnosisRun.
type DiagnosisRuns []*DiagnosisRun

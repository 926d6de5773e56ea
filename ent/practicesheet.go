// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/linwei/studymap/ent/practicesheet"
)

// PracticeSheet is the model entity for the PracticeSheet schema.
type PracticeSheet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the store-wide ordering; drawn from one counter
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned when the sheet is recorded
	SheetID string `json:"sheet_id,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName string `json:"student_name,omitempty"`
	// PointID holds the value of the "point_id" field.
	PointID string `json:"point_id,omitempty"`
	// PointName holds the value of the "point_name" field.
	PointName string `json:"point_name,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade int `json:"grade,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// Full practice sheet as JSON
	Sheet        map[string]interface{} `json:"sheet,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSheet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesheet.FieldSheet:
			values[i] = new([]byte)
		case practicesheet.FieldID, practicesheet.FieldSequence, practicesheet.FieldGrade, practicesheet.FieldQuestionCount:
			values[i] = new(sql.NullInt64)
		case practicesheet.FieldSheetID, practicesheet.FieldStudentName, practicesheet.FieldPointID, practicesheet.FieldPointName, practicesheet.FieldSubject:
			values[i] = new(sql.NullString)
		case practicesheet.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSheet fields.
func (_m *PracticeSheet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesheet.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practicesheet.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practicesheet.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practicesheet.FieldSheetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_id", values[i])
			} else if value.Valid {
				_m.SheetID = value.String
			}
		case practicesheet.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		case practicesheet.FieldPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field point_id", values[i])
			} else if value.Valid {
				_m.PointID = value.String
			}
		case practicesheet.FieldPointName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field point_name", values[i])
			} else if value.Valid {
				_m.PointName = value.String
			}
		case practicesheet.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case practicesheet.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case practicesheet.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case practicesheet.FieldSheet:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sheet", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sheet); err != nil {
					return fmt.Errorf("unmarshal field sheet: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSheet.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeSheet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSheet.
// Note that you need to call PracticeSheet.Unwrap() before calling this method if this PracticeSheet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeSheet) Update() *PracticeSheetUpdateOne {
	return NewPracticeSheetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeSheet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeSheet) Unwrap() *PracticeSheet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSheet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeSheet) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSheet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sheet_id=")
	builder.WriteString(_m.SheetID)
	builder.WriteString(", ")
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteString(", ")
	builder.WriteString("point_id=")
	builder.WriteString(_m.PointID)
	builder.WriteString(", ")
	builder.WriteString("point_name=")
	builder.WriteString(_m.PointName)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("sheet=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sheet))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSheets is a parsable slice of PracticeSheet.
type PracticeSheets []*PracticeSheet

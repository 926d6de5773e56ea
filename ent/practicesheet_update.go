// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linwei/studymap/ent/practicesheet"
	"github.com/linwei/studymap/ent/predicate"
)

// PracticeSheetUpdate is the builder for updating PracticeSheet entities.
type PracticeSheetUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSheetMutation
}

// Where appends a list predicates to the PracticeSheetUpdate builder.
func (_u *PracticeSheetUpdate) Where(ps ...predicate.PracticeSheet) *PracticeSheetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *PracticeSheetUpdate) SetStudentName(v string) *PracticeSheetUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *PracticeSheetUpdate) SetNillableStudentName(v *string) *PracticeSheetUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *PracticeSheetUpdate) SetPointID(v string) *PracticeSheetUpdate {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *PracticeSheetUpdate) SetNillablePointID(v *string) *PracticeSheetUpdate {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// SetPointName sets the "point_name" field.
func (_u *PracticeSheetUpdate) SetPointName(v string) *PracticeSheetUpdate {
	_u.mutation.SetPointName(v)
	return _u
}

// SetNillablePointName sets the "point_name" field if the given value is not nil.
func (_u *PracticeSheetUpdate) SetNillablePointName(v *string) *PracticeSheetUpdate {
	if v != nil {
		_u.SetPointName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PracticeSheetUpdate) SetSubject(v string) *PracticeSheetUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PracticeSheetUpdate) SetNillableSubject(v *string) *PracticeSheetUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PracticeSheetUpdate) SetGrade(v int) *PracticeSheetUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PracticeSheetUpdate) SetNillableGrade(v *int) *PracticeSheetUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *PracticeSheetUpdate) AddGrade(v int) *PracticeSheetUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *PracticeSheetUpdate) SetQuestionCount(v int) *PracticeSheetUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *PracticeSheetUpdate) SetNillableQuestionCount(v *int) *PracticeSheetUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *PracticeSheetUpdate) AddQuestionCount(v int) *PracticeSheetUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetSheet sets the "sheet" field.
func (_u *PracticeSheetUpdate) SetSheet(v map[string]interface{}) *PracticeSheetUpdate {
	_u.mutation.SetSheet(v)
	return _u
}

// Mutation returns the PracticeSheetMutation object of the builder.
func (_u *PracticeSheetUpdate) Mutation() *PracticeSheetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSheetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSheetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSheetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSheetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSheetUpdate) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := practicesheet.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointID(); ok {
		if err := practicesheet.PointIDValidator(v); err != nil {
			return &ValidationError{Name: "point_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.point_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointName(); ok {
		if err := practicesheet.PointNameValidator(v); err != nil {
			return &ValidationError{Name: "point_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.point_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := practicesheet.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSheetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesheet.Table, practicesheet.Columns, sqlgraph.NewFieldSpec(practicesheet.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(practicesheet.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(practicesheet.FieldPointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointName(); ok {
		_spec.SetField(practicesheet.FieldPointName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(practicesheet.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(practicesheet.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(practicesheet.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(practicesheet.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(practicesheet.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sheet(); ok {
		_spec.SetField(practicesheet.FieldSheet, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSheetUpdateOne is the builder for updating a single PracticeSheet entity.
type PracticeSheetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSheetMutation
}

// SetStudentName sets the "student_name" field.
func (_u *PracticeSheetUpdateOne) SetStudentName(v string) *PracticeSheetUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *PracticeSheetUpdateOne) SetNillableStudentName(v *string) *PracticeSheetUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *PracticeSheetUpdateOne) SetPointID(v string) *PracticeSheetUpdateOne {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *PracticeSheetUpdateOne) SetNillablePointID(v *string) *PracticeSheetUpdateOne {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// SetPointName sets the "point_name" field.
func (_u *PracticeSheetUpdateOne) SetPointName(v string) *PracticeSheetUpdateOne {
	_u.mutation.SetPointName(v)
	return _u
}

// SetNillablePointName sets the "point_name" field if the given value is not nil.
func (_u *PracticeSheetUpdateOne) SetNillablePointName(v *string) *PracticeSheetUpdateOne {
	if v != nil {
		_u.SetPointName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PracticeSheetUpdateOne) SetSubject(v string) *PracticeSheetUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PracticeSheetUpdateOne) SetNillableSubject(v *string) *PracticeSheetUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PracticeSheetUpdateOne) SetGrade(v int) *PracticeSheetUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PracticeSheetUpdateOne) SetNillableGrade(v *int) *PracticeSheetUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *PracticeSheetUpdateOne) AddGrade(v int) *PracticeSheetUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *PracticeSheetUpdateOne) SetQuestionCount(v int) *PracticeSheetUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *PracticeSheetUpdateOne) SetNillableQuestionCount(v *int) *PracticeSheetUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *PracticeSheetUpdateOne) AddQuestionCount(v int) *PracticeSheetUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetSheet sets the "sheet" field.
func (_u *PracticeSheetUpdateOne) SetSheet(v map[string]interface{}) *PracticeSheetUpdateOne {
	_u.mutation.SetSheet(v)
	return _u
}

// Mutation returns the PracticeSheetMutation object of the builder.
func (_u *PracticeSheetUpdateOne) Mutation() *PracticeSheetMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSheetUpdate builder.
func (_u *PracticeSheetUpdateOne) Where(ps ...predicate.PracticeSheet) *PracticeSheetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSheetUpdateOne) Select(field string, fields ...string) *PracticeSheetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSheet entity.
func (_u *PracticeSheetUpdateOne) Save(ctx context.Context) (*PracticeSheet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSheetUpdateOne) SaveX(ctx context.Context) *PracticeSheet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSheetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSheetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSheetUpdateOne) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := practicesheet.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointID(); ok {
		if err := practicesheet.PointIDValidator(v); err != nil {
			return &ValidationError{Name: "point_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.point_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointName(); ok {
		if err := practicesheet.PointNameValidator(v); err != nil {
			return &ValidationError{Name: "point_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.point_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := practicesheet.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSheetUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSheet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesheet.Table, practicesheet.Columns, sqlgraph.NewFieldSpec(practicesheet.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSheet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesheet.FieldID)
		for _, f := range fields {
			if !practicesheet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesheet.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(practicesheet.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(practicesheet.FieldPointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointName(); ok {
		_spec.SetField(practicesheet.FieldPointName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(practicesheet.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(practicesheet.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(practicesheet.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(practicesheet.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(practicesheet.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Sheet(); ok {
		_spec.SetField(practicesheet.FieldSheet, field.TypeJSON, value)
	}
	_node = &PracticeSheet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

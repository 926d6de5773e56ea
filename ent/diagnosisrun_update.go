// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linwei/studymap/ent/diagnosisrun"
	"github.com/linwei/studymap/ent/predicate"
)

// DiagnosisRunUpdate is the builder for updating DiagnosisRun entities.
type DiagnosisRunUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisRunMutation
}

// Where appends a list predicates to the DiagnosisRunUpdate builder.
func (_u *DiagnosisRunUpdate) Where(ps ...predicate.DiagnosisRun) *DiagnosisRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *DiagnosisRunUpdate) SetStudentName(v string) *DiagnosisRunUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *DiagnosisRunUpdate) SetNillableStudentName(v *string) *DiagnosisRunUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DiagnosisRunUpdate) SetSubject(v string) *DiagnosisRunUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DiagnosisRunUpdate) SetNillableSubject(v *string) *DiagnosisRunUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *DiagnosisRunUpdate) SetTargetGrade(v int) *DiagnosisRunUpdate {
	_u.mutation.ResetTargetGrade()
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *DiagnosisRunUpdate) SetNillableTargetGrade(v *int) *DiagnosisRunUpdate {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// AddTargetGrade adds value to the "target_grade" field.
func (_u *DiagnosisRunUpdate) AddTargetGrade(v int) *DiagnosisRunUpdate {
	_u.mutation.AddTargetGrade(v)
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *DiagnosisRunUpdate) SetGradeLevel(v float64) *DiagnosisRunUpdate {
	_u.mutation.ResetGradeLevel()
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *DiagnosisRunUpdate) SetNillableGradeLevel(v *float64) *DiagnosisRunUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// AddGradeLevel adds value to the "grade_level" field.
func (_u *DiagnosisRunUpdate) AddGradeLevel(v float64) *DiagnosisRunUpdate {
	_u.mutation.AddGradeLevel(v)
	return _u
}

// SetMasteredCount sets the "mastered_count" field.
func (_u *DiagnosisRunUpdate) SetMasteredCount(v int) *DiagnosisRunUpdate {
	_u.mutation.ResetMasteredCount()
	_u.mutation.SetMasteredCount(v)
	return _u
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_u *DiagnosisRunUpdate) SetNillableMasteredCount(v *int) *DiagnosisRunUpdate {
	if v != nil {
		_u.SetMasteredCount(*v)
	}
	return _u
}

// AddMasteredCount adds value to the "mastered_count" field.
func (_u *DiagnosisRunUpdate) AddMasteredCount(v int) *DiagnosisRunUpdate {
	_u.mutation.AddMasteredCount(v)
	return _u
}

// SetWeakCount sets the "weak_count" field.
func (_u *DiagnosisRunUpdate) SetWeakCount(v int) *DiagnosisRunUpdate {
	_u.mutation.ResetWeakCount()
	_u.mutation.SetWeakCount(v)
	return _u
}

// SetNillableWeakCount sets the "weak_count" field if the given value is not nil.
func (_u *DiagnosisRunUpdate) SetNillableWeakCount(v *int) *DiagnosisRunUpdate {
	if v != nil {
		_u.SetWeakCount(*v)
	}
	return _u
}

// AddWeakCount adds value to the "weak_count" field.
func (_u *DiagnosisRunUpdate) AddWeakCount(v int) *DiagnosisRunUpdate {
	_u.mutation.AddWeakCount(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *DiagnosisRunUpdate) SetReport(v map[string]interface{}) *DiagnosisRunUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// Mutation returns the DiagnosisRunMutation object of the builder.
func (_u *DiagnosisRunUpdate) Mutation() *DiagnosisRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisRunUpdate) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := diagnosisrun.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "DiagnosisRun.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := diagnosisrun.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "DiagnosisRun.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisrun.Table, diagnosisrun.Columns, sqlgraph.NewFieldSpec(diagnosisrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(diagnosisrun.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(diagnosisrun.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(diagnosisrun.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetGrade(); ok {
		_spec.AddField(diagnosisrun.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(diagnosisrun.FieldGradeLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGradeLevel(); ok {
		_spec.AddField(diagnosisrun.FieldGradeLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteredCount(); ok {
		_spec.SetField(diagnosisrun.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteredCount(); ok {
		_spec.AddField(diagnosisrun.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakCount(); ok {
		_spec.SetField(diagnosisrun.FieldWeakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeakCount(); ok {
		_spec.AddField(diagnosisrun.FieldWeakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(diagnosisrun.FieldReport, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisRunUpdateOne is the builder for updating a single DiagnosisRun entity.
type DiagnosisRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisRunMutation
}

// SetStudentName sets the "student_name" field.
func (_u *DiagnosisRunUpdateOne) SetStudentName(v string) *DiagnosisRunUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *DiagnosisRunUpdateOne) SetNillableStudentName(v *string) *DiagnosisRunUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DiagnosisRunUpdateOne) SetSubject(v string) *DiagnosisRunUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DiagnosisRunUpdateOne) SetNillableSubject(v *string) *DiagnosisRunUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *DiagnosisRunUpdateOne) SetTargetGrade(v int) *DiagnosisRunUpdateOne {
	_u.mutation.ResetTargetGrade()
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *DiagnosisRunUpdateOne) SetNillableTargetGrade(v *int) *DiagnosisRunUpdateOne {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// AddTargetGrade adds value to the "target_grade" field.
func (_u *DiagnosisRunUpdateOne) AddTargetGrade(v int) *DiagnosisRunUpdateOne {
	_u.mutation.AddTargetGrade(v)
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *DiagnosisRunUpdateOne) SetGradeLevel(v float64) *DiagnosisRunUpdateOne {
	_u.mutation.ResetGradeLevel()
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *DiagnosisRunUpdateOne) SetNillableGradeLevel(v *float64) *DiagnosisRunUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// AddGradeLevel adds value to the "grade_level" field.
func (_u *DiagnosisRunUpdateOne) AddGradeLevel(v float64) *DiagnosisRunUpdateOne {
	_u.mutation.AddGradeLevel(v)
	return _u
}

// SetMasteredCount sets the "mastered_count" field.
func (_u *DiagnosisRunUpdateOne) SetMasteredCount(v int) *DiagnosisRunUpdateOne {
	_u.mutation.ResetMasteredCount()
	_u.mutation.SetMasteredCount(v)
	return _u
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_u *DiagnosisRunUpdateOne) SetNillableMasteredCount(v *int) *DiagnosisRunUpdateOne {
	if v != nil {
		_u.SetMasteredCount(*v)
	}
	return _u
}

// AddMasteredCount adds value to the "mastered_count" field.
func (_u *DiagnosisRunUpdateOne) AddMasteredCount(v int) *DiagnosisRunUpdateOne {
	_u.mutation.AddMasteredCount(v)
	return _u
}

// SetWeakCount sets the "weak_count" field.
func (_u *DiagnosisRunUpdateOne) SetWeakCount(v int) *DiagnosisRunUpdateOne {
	_u.mutation.ResetWeakCount()
	_u.mutation.SetWeakCount(v)
	return _u
}

// SetNillableWeakCount sets the "weak_count" field if the given value is not nil.
func (_u *DiagnosisRunUpdateOne) SetNillableWeakCount(v *int) *DiagnosisRunUpdateOne {
	if v != nil {
		_u.SetWeakCount(*v)
	}
	return _u
}

// AddWeakCount adds value to the "weak_count" field.
func (_u *DiagnosisRunUpdateOne) AddWeakCount(v int) *DiagnosisRunUpdateOne {
	_u.mutation.AddWeakCount(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *DiagnosisRunUpdateOne) SetReport(v map[string]interface{}) *DiagnosisRunUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// Mutation returns the DiagnosisRunMutation object of the builder.
func (_u *DiagnosisRunUpdateOne) Mutation() *DiagnosisRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisRunUpdate builder.
func (_u *DiagnosisRunUpdateOne) Where(ps ...predicate.DiagnosisRun) *DiagnosisRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisRunUpdateOne) Select(field string, fields ...string) *DiagnosisRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisRun entity.
func (_u *DiagnosisRunUpdateOne) Save(ctx context.Context) (*DiagnosisRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisRunUpdateOne) SaveX(ctx context.Context) *DiagnosisRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisRunUpdateOne) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := diagnosisrun.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "DiagnosisRun.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := diagnosisrun.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "DiagnosisRun.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisRunUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisrun.Table, diagnosisrun.Columns, sqlgraph.NewFieldSpec(diagnosisrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosisrun.FieldID)
		for _, f := range fields {
			if !diagnosisrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosisrun.FieldID {
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
		_spec.SetField(diagnosisrun.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(diagnosisrun.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(diagnosisrun.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetGrade(); ok {
		_spec.AddField(diagnosisrun.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(diagnosisrun.FieldGradeLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGradeLevel(); ok {
		_spec.AddField(diagnosisrun.FieldGradeLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteredCount(); ok {
		_spec.SetField(diagnosisrun.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteredCount(); ok {
		_spec.AddField(diagnosisrun.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakCount(); ok {
		_spec.SetField(diagnosisrun.FieldWeakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeakCount(); ok {
		_spec.AddField(diagnosisrun.FieldWeakCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(diagnosisrun.FieldReport, field.TypeJSON, value)
	}
	_node = &DiagnosisRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

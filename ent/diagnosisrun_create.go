// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linwei/studymap/ent/diagnosisrun"
)

// DiagnosisRunCreate is the builder for creating a DiagnosisRun entity.
type DiagnosisRunCreate struct {
	config
	mutation *DiagnosisRunMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DiagnosisRunCreate) SetSequence(v int64) *DiagnosisRunCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DiagnosisRunCreate) SetTimestamp(v time.Time) *DiagnosisRunCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DiagnosisRunCreate) SetNillableTimestamp(v *time.Time) *DiagnosisRunCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *DiagnosisRunCreate) SetRunID(v string) *DiagnosisRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *DiagnosisRunCreate) SetStudentName(v string) *DiagnosisRunCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *DiagnosisRunCreate) SetSubject(v string) *DiagnosisRunCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTargetGrade sets the "target_grade" field.
func (_c *DiagnosisRunCreate) SetTargetGrade(v int) *DiagnosisRunCreate {
	_c.mutation.SetTargetGrade(v)
	return _c
}

// SetGradeLevel sets the "grade_level" field.
func (_c *DiagnosisRunCreate) SetGradeLevel(v float64) *DiagnosisRunCreate {
	_c.mutation.SetGradeLevel(v)
	return _c
}

// SetMasteredCount sets the "mastered_count" field.
func (_c *DiagnosisRunCreate) SetMasteredCount(v int) *DiagnosisRunCreate {
	_c.mutation.SetMasteredCount(v)
	return _c
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (_c *DiagnosisRunCreate) SetNillableMasteredCount(v *int) *DiagnosisRunCreate {
	if v != nil {
		_c.SetMasteredCount(*v)
	}
	return _c
}

// SetWeakCount sets the "weak_count" field.
func (_c *DiagnosisRunCreate) SetWeakCount(v int) *DiagnosisRunCreate {
	_c.mutation.SetWeakCount(v)
	return _c
}

// SetNillableWeakCount sets the "weak_count" field if the given value is not nil.
func (_c *DiagnosisRunCreate) SetNillableWeakCount(v *int) *DiagnosisRunCreate {
	if v != nil {
		_c.SetWeakCount(*v)
	}
	return _c
}

// SetReport sets the "report" field.
func (_c *DiagnosisRunCreate) SetReport(v map[string]interface{}) *DiagnosisRunCreate {
	_c.mutation.SetReport(v)
	return _c
}

// Mutation returns the DiagnosisRunMutation object of the builder.
func (_c *DiagnosisRunCreate) Mutation() *DiagnosisRunMutation {
	return _c.mutation
}

// Save creates the DiagnosisRun in the database.
func (_c *DiagnosisRunCreate) Save(ctx context.Context) (*DiagnosisRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosisRunCreate) SaveX(ctx context.Context) *DiagnosisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosisRunCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := diagnosisrun.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MasteredCount(); !ok {
		v := diagnosisrun.DefaultMasteredCount
		_c.mutation.SetMasteredCount(v)
	}
	if _, ok := _c.mutation.WeakCount(); !ok {
		v := diagnosisrun.DefaultWeakCount
		_c.mutation.SetWeakCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosisRunCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DiagnosisRun.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DiagnosisRun.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "DiagnosisRun.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := diagnosisrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisRun.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "DiagnosisRun.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := diagnosisrun.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "DiagnosisRun.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "DiagnosisRun.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := diagnosisrun.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "DiagnosisRun.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetGrade(); !ok {
		return &ValidationError{Name: "target_grade", err: errors.New(`ent: missing required field "DiagnosisRun.target_grade"`)}
	}
	if _, ok := _c.mutation.GradeLevel(); !ok {
		return &ValidationError{Name: "grade_level", err: errors.New(`ent: missing required field "DiagnosisRun.grade_level"`)}
	}
	if _, ok := _c.mutation.MasteredCount(); !ok {
		return &ValidationError{Name: "mastered_count", err: errors.New(`ent: missing required field "DiagnosisRun.mastered_count"`)}
	}
	if _, ok := _c.mutation.WeakCount(); !ok {
		return &ValidationError{Name: "weak_count", err: errors.New(`ent: missing required field "DiagnosisRun.weak_count"`)}
	}
	if _, ok := _c.mutation.Report(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required field "DiagnosisRun.report"`)}
	}
	return nil
}

func (_c *DiagnosisRunCreate) sqlSave(ctx context.Context) (*DiagnosisRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiagnosisRunCreate) createSpec() (*DiagnosisRun, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosisRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosisrun.Table, sqlgraph.NewFieldSpec(diagnosisrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(diagnosisrun.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(diagnosisrun.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(diagnosisrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(diagnosisrun.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(diagnosisrun.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.TargetGrade(); ok {
		_spec.SetField(diagnosisrun.FieldTargetGrade, field.TypeInt, value)
		_node.TargetGrade = value
	}
	if value, ok := _c.mutation.GradeLevel(); ok {
		_spec.SetField(diagnosisrun.FieldGradeLevel, field.TypeFloat64, value)
		_node.GradeLevel = value
	}
	if value, ok := _c.mutation.MasteredCount(); ok {
		_spec.SetField(diagnosisrun.FieldMasteredCount, field.TypeInt, value)
		_node.MasteredCount = value
	}
	if value, ok := _c.mutation.WeakCount(); ok {
		_spec.SetField(diagnosisrun.FieldWeakCount, field.TypeInt, value)
		_node.WeakCount = value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(diagnosisrun.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	return _node, _spec
}

// DiagnosisRunCreateBulk is the builder for creating many DiagnosisRun entities in bulk.
type DiagnosisRunCreateBulk struct {
	config
	err      error
	builders []*DiagnosisRunCreate
}

// Save creates the DiagnosisRun entities in the database.
func (_c *DiagnosisRunCreateBulk) Save(ctx context.Context) ([]*DiagnosisRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosisRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosisRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DiagnosisRunCreateBulk) SaveX(ctx context.Context) []*DiagnosisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

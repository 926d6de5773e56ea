// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linwei/studymap/ent/practicesheet"
)

// PracticeSheetCreate is the builder for creating a PracticeSheet entity.
type PracticeSheetCreate struct {
	config
	mutation *PracticeSheetMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeSheetCreate) SetSequence(v int64) *PracticeSheetCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeSheetCreate) SetTimestamp(v time.Time) *PracticeSheetCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeSheetCreate) SetNillableTimestamp(v *time.Time) *PracticeSheetCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSheetID sets the "sheet_id" field.
func (_c *PracticeSheetCreate) SetSheetID(v string) *PracticeSheetCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *PracticeSheetCreate) SetStudentName(v string) *PracticeSheetCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetPointID sets the "point_id" field.
func (_c *PracticeSheetCreate) SetPointID(v string) *PracticeSheetCreate {
	_c.mutation.SetPointID(v)
	return _c
}

// SetPointName sets the "point_name" field.
func (_c *PracticeSheetCreate) SetPointName(v string) *PracticeSheetCreate {
	_c.mutation.SetPointName(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PracticeSheetCreate) SetSubject(v string) *PracticeSheetCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *PracticeSheetCreate) SetGrade(v int) *PracticeSheetCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *PracticeSheetCreate) SetQuestionCount(v int) *PracticeSheetCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *PracticeSheetCreate) SetNillableQuestionCount(v *int) *PracticeSheetCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetSheet sets the "sheet" field.
func (_c *PracticeSheetCreate) SetSheet(v map[string]interface{}) *PracticeSheetCreate {
	_c.mutation.SetSheet(v)
	return _c
}

// Mutation returns the PracticeSheetMutation object of the builder.
func (_c *PracticeSheetCreate) Mutation() *PracticeSheetMutation {
	return _c.mutation
}

// Save creates the PracticeSheet in the database.
func (_c *PracticeSheetCreate) Save(ctx context.Context) (*PracticeSheet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSheetCreate) SaveX(ctx context.Context) *PracticeSheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSheetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSheetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSheetCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practicesheet.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := practicesheet.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSheetCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeSheet.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeSheet.timestamp"`)}
	}
	if _, ok := _c.mutation.SheetID(); !ok {
		return &ValidationError{Name: "sheet_id", err: errors.New(`ent: missing required field "PracticeSheet.sheet_id"`)}
	}
	if v, ok := _c.mutation.SheetID(); ok {
		if err := practicesheet.SheetIDValidator(v); err != nil {
			return &ValidationError{Name: "sheet_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.sheet_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "PracticeSheet.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := practicesheet.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointID(); !ok {
		return &ValidationError{Name: "point_id", err: errors.New(`ent: missing required field "PracticeSheet.point_id"`)}
	}
	if v, ok := _c.mutation.PointID(); ok {
		if err := practicesheet.PointIDValidator(v); err != nil {
			return &ValidationError{Name: "point_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.point_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointName(); !ok {
		return &ValidationError{Name: "point_name", err: errors.New(`ent: missing required field "PracticeSheet.point_name"`)}
	}
	if v, ok := _c.mutation.PointName(); ok {
		if err := practicesheet.PointNameValidator(v); err != nil {
			return &ValidationError{Name: "point_name", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.point_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PracticeSheet.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := practicesheet.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeSheet.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "PracticeSheet.grade"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "PracticeSheet.question_count"`)}
	}
	if _, ok := _c.mutation.Sheet(); !ok {
		return &ValidationError{Name: "sheet", err: errors.New(`ent: missing required field "PracticeSheet.sheet"`)}
	}
	return nil
}

func (_c *PracticeSheetCreate) sqlSave(ctx context.Context) (*PracticeSheet, error) {
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

func (_c *PracticeSheetCreate) createSpec() (*PracticeSheet, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSheet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesheet.Table, sqlgraph.NewFieldSpec(practicesheet.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practicesheet.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practicesheet.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SheetID(); ok {
		_spec.SetField(practicesheet.FieldSheetID, field.TypeString, value)
		_node.SheetID = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(practicesheet.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.PointID(); ok {
		_spec.SetField(practicesheet.FieldPointID, field.TypeString, value)
		_node.PointID = value
	}
	if value, ok := _c.mutation.PointName(); ok {
		_spec.SetField(practicesheet.FieldPointName, field.TypeString, value)
		_node.PointName = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(practicesheet.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(practicesheet.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(practicesheet.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Sheet(); ok {
		_spec.SetField(practicesheet.FieldSheet, field.TypeJSON, value)
		_node.Sheet = value
	}
	return _node, _spec
}

// PracticeSheetCreateBulk is the builder for creating many PracticeSheet entities in bulk.
type PracticeSheetCreateBulk struct {
	config
	err      error
	builders []*PracticeSheetCreate
}

// Save creates the PracticeSheet entities in the database.
func (_c *PracticeSheetCreateBulk) Save(ctx context.Context) ([]*PracticeSheet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSheet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSheetMutation)
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
func (_c *PracticeSheetCreateBulk) SaveX(ctx context.Context) []*PracticeSheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSheetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSheetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

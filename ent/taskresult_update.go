// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
)

// TaskResultUpdate is the builder for updating TaskResult entities.
type TaskResultUpdate struct {
	config
	hooks    []Hook
	mutation *TaskResultMutation
}

// Where appends a list predicates to the TaskResultUpdate builder.
func (_u *TaskResultUpdate) Where(ps ...predicate.TaskResult) *TaskResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *TaskResultUpdate) SetVerificationStatus(v taskresult.VerificationStatus) *TaskResultUpdate {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableVerificationStatus(v *taskresult.VerificationStatus) *TaskResultUpdate {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *TaskResultUpdate) SetVerifiedAt(v time.Time) *TaskResultUpdate {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableVerifiedAt(v *time.Time) *TaskResultUpdate {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *TaskResultUpdate) ClearVerifiedAt() *TaskResultUpdate {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerifiedByValidationID sets the "verified_by_validation_id" field.
func (_u *TaskResultUpdate) SetVerifiedByValidationID(v string) *TaskResultUpdate {
	_u.mutation.SetVerifiedByValidationID(v)
	return _u
}

// SetNillableVerifiedByValidationID sets the "verified_by_validation_id" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableVerifiedByValidationID(v *string) *TaskResultUpdate {
	if v != nil {
		_u.SetVerifiedByValidationID(*v)
	}
	return _u
}

// ClearVerifiedByValidationID clears the value of the "verified_by_validation_id" field.
func (_u *TaskResultUpdate) ClearVerifiedByValidationID() *TaskResultUpdate {
	_u.mutation.ClearVerifiedByValidationID()
	return _u
}

// Mutation returns the TaskResultMutation object of the builder.
func (_u *TaskResultUpdate) Mutation() *TaskResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskResultUpdate) check() error {
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := taskresult.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "TaskResult.verification_status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskResult.task"`)
	}
	return nil
}

func (_u *TaskResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskresult.Table, taskresult.Columns, sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(taskresult.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(taskresult.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(taskresult.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifiedByValidationID(); ok {
		_spec.SetField(taskresult.FieldVerifiedByValidationID, field.TypeString, value)
	}
	if _u.mutation.VerifiedByValidationIDCleared() {
		_spec.ClearField(taskresult.FieldVerifiedByValidationID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskResultUpdateOne is the builder for updating a single TaskResult entity.
type TaskResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskResultMutation
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *TaskResultUpdateOne) SetVerificationStatus(v taskresult.VerificationStatus) *TaskResultUpdateOne {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableVerificationStatus(v *taskresult.VerificationStatus) *TaskResultUpdateOne {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetVerifiedAt sets the "verified_at" field.
func (_u *TaskResultUpdateOne) SetVerifiedAt(v time.Time) *TaskResultUpdateOne {
	_u.mutation.SetVerifiedAt(v)
	return _u
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableVerifiedAt(v *time.Time) *TaskResultUpdateOne {
	if v != nil {
		_u.SetVerifiedAt(*v)
	}
	return _u
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (_u *TaskResultUpdateOne) ClearVerifiedAt() *TaskResultUpdateOne {
	_u.mutation.ClearVerifiedAt()
	return _u
}

// SetVerifiedByValidationID sets the "verified_by_validation_id" field.
func (_u *TaskResultUpdateOne) SetVerifiedByValidationID(v string) *TaskResultUpdateOne {
	_u.mutation.SetVerifiedByValidationID(v)
	return _u
}

// SetNillableVerifiedByValidationID sets the "verified_by_validation_id" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableVerifiedByValidationID(v *string) *TaskResultUpdateOne {
	if v != nil {
		_u.SetVerifiedByValidationID(*v)
	}
	return _u
}

// ClearVerifiedByValidationID clears the value of the "verified_by_validation_id" field.
func (_u *TaskResultUpdateOne) ClearVerifiedByValidationID() *TaskResultUpdateOne {
	_u.mutation.ClearVerifiedByValidationID()
	return _u
}

// Mutation returns the TaskResultMutation object of the builder.
func (_u *TaskResultUpdateOne) Mutation() *TaskResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskResultUpdate builder.
func (_u *TaskResultUpdateOne) Where(ps ...predicate.TaskResult) *TaskResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskResultUpdateOne) Select(field string, fields ...string) *TaskResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskResult entity.
func (_u *TaskResultUpdateOne) Save(ctx context.Context) (*TaskResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskResultUpdateOne) SaveX(ctx context.Context) *TaskResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskResultUpdateOne) check() error {
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := taskresult.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "TaskResult.verification_status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskResult.task"`)
	}
	return nil
}

func (_u *TaskResultUpdateOne) sqlSave(ctx context.Context) (_node *TaskResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskresult.Table, taskresult.Columns, sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskresult.FieldID)
		for _, f := range fields {
			if !taskresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskresult.FieldID {
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
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(taskresult.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerifiedAt(); ok {
		_spec.SetField(taskresult.FieldVerifiedAt, field.TypeTime, value)
	}
	if _u.mutation.VerifiedAtCleared() {
		_spec.ClearField(taskresult.FieldVerifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerifiedByValidationID(); ok {
		_spec.SetField(taskresult.FieldVerifiedByValidationID, field.TypeString, value)
	}
	if _u.mutation.VerifiedByValidationIDCleared() {
		_spec.ClearField(taskresult.FieldVerifiedByValidationID, field.TypeString)
	}
	_node = &TaskResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

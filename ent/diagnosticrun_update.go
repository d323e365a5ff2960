// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// DiagnosticRunUpdate is the builder for updating DiagnosticRun entities.
type DiagnosticRunUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosticRunMutation
}

// Where appends a list predicates to the DiagnosticRunUpdate builder.
func (_u *DiagnosticRunUpdate) Where(ps ...predicate.DiagnosticRun) *DiagnosticRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTriggerStats sets the "trigger_stats" field.
func (_u *DiagnosticRunUpdate) SetTriggerStats(v map[string]interface{}) *DiagnosticRunUpdate {
	_u.mutation.SetTriggerStats(v)
	return _u
}

// ClearTriggerStats clears the value of the "trigger_stats" field.
func (_u *DiagnosticRunUpdate) ClearTriggerStats() *DiagnosticRunUpdate {
	_u.mutation.ClearTriggerStats()
	return _u
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdate) SetTasksCreatedIds(v []string) *DiagnosticRunUpdate {
	_u.mutation.SetTasksCreatedIds(v)
	return _u
}

// AppendTasksCreatedIds appends value to the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdate) AppendTasksCreatedIds(v []string) *DiagnosticRunUpdate {
	_u.mutation.AppendTasksCreatedIds(v)
	return _u
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdate) ClearTasksCreatedIds() *DiagnosticRunUpdate {
	_u.mutation.ClearTasksCreatedIds()
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *DiagnosticRunUpdate) SetDiagnosis(v string) *DiagnosticRunUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableDiagnosis(v *string) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *DiagnosticRunUpdate) ClearDiagnosis() *DiagnosticRunUpdate {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosticRunUpdate) SetStatus(v diagnosticrun.Status) *DiagnosticRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableStatus(v *diagnosticrun.Status) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DiagnosticRunMutation object of the builder.
func (_u *DiagnosticRunUpdate) Mutation() *DiagnosticRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosticRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosticRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := diagnosticrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosticRun.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiagnosticRun.workflow"`)
	}
	return nil
}

func (_u *DiagnosticRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticrun.Table, diagnosticrun.Columns, sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TriggerStats(); ok {
		_spec.SetField(diagnosticrun.FieldTriggerStats, field.TypeJSON, value)
	}
	if _u.mutation.TriggerStatsCleared() {
		_spec.ClearField(diagnosticrun.FieldTriggerStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.TasksCreatedIds(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTasksCreatedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldTasksCreatedIds, value)
		})
	}
	if _u.mutation.TasksCreatedIdsCleared() {
		_spec.ClearField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(diagnosticrun.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(diagnosticrun.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosticrun.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosticRunUpdateOne is the builder for updating a single DiagnosticRun entity.
type DiagnosticRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosticRunMutation
}

// SetTriggerStats sets the "trigger_stats" field.
func (_u *DiagnosticRunUpdateOne) SetTriggerStats(v map[string]interface{}) *DiagnosticRunUpdateOne {
	_u.mutation.SetTriggerStats(v)
	return _u
}

// ClearTriggerStats clears the value of the "trigger_stats" field.
func (_u *DiagnosticRunUpdateOne) ClearTriggerStats() *DiagnosticRunUpdateOne {
	_u.mutation.ClearTriggerStats()
	return _u
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdateOne) SetTasksCreatedIds(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.SetTasksCreatedIds(v)
	return _u
}

// AppendTasksCreatedIds appends value to the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdateOne) AppendTasksCreatedIds(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.AppendTasksCreatedIds(v)
	return _u
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdateOne) ClearTasksCreatedIds() *DiagnosticRunUpdateOne {
	_u.mutation.ClearTasksCreatedIds()
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *DiagnosticRunUpdateOne) SetDiagnosis(v string) *DiagnosticRunUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableDiagnosis(v *string) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *DiagnosticRunUpdateOne) ClearDiagnosis() *DiagnosticRunUpdateOne {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosticRunUpdateOne) SetStatus(v diagnosticrun.Status) *DiagnosticRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableStatus(v *diagnosticrun.Status) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DiagnosticRunMutation object of the builder.
func (_u *DiagnosticRunUpdateOne) Mutation() *DiagnosticRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosticRunUpdate builder.
func (_u *DiagnosticRunUpdateOne) Where(ps ...predicate.DiagnosticRun) *DiagnosticRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosticRunUpdateOne) Select(field string, fields ...string) *DiagnosticRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosticRun entity.
func (_u *DiagnosticRunUpdateOne) Save(ctx context.Context) (*DiagnosticRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticRunUpdateOne) SaveX(ctx context.Context) *DiagnosticRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosticRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := diagnosticrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosticRun.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiagnosticRun.workflow"`)
	}
	return nil
}

func (_u *DiagnosticRunUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosticRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticrun.Table, diagnosticrun.Columns, sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosticRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosticrun.FieldID)
		for _, f := range fields {
			if !diagnosticrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosticrun.FieldID {
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
	if value, ok := _u.mutation.TriggerStats(); ok {
		_spec.SetField(diagnosticrun.FieldTriggerStats, field.TypeJSON, value)
	}
	if _u.mutation.TriggerStatsCleared() {
		_spec.ClearField(diagnosticrun.FieldTriggerStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.TasksCreatedIds(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTasksCreatedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldTasksCreatedIds, value)
		})
	}
	if _u.mutation.TasksCreatedIdsCleared() {
		_spec.ClearField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(diagnosticrun.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(diagnosticrun.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosticrun.FieldStatus, field.TypeEnum, value)
	}
	_node = &DiagnosticRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

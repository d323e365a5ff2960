// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
)

// WorkflowResultUpdate is the builder for updating WorkflowResult entities.
type WorkflowResultUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowResultMutation
}

// Where appends a list predicates to the WorkflowResultUpdate builder.
func (_u *WorkflowResultUpdate) Where(ps ...predicate.WorkflowResult) *WorkflowResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowResultUpdate) SetStatus(v workflowresult.Status) *WorkflowResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableStatus(v *workflowresult.Status) *WorkflowResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidationFeedback sets the "validation_feedback" field.
func (_u *WorkflowResultUpdate) SetValidationFeedback(v string) *WorkflowResultUpdate {
	_u.mutation.SetValidationFeedback(v)
	return _u
}

// SetNillableValidationFeedback sets the "validation_feedback" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableValidationFeedback(v *string) *WorkflowResultUpdate {
	if v != nil {
		_u.SetValidationFeedback(*v)
	}
	return _u
}

// ClearValidationFeedback clears the value of the "validation_feedback" field.
func (_u *WorkflowResultUpdate) ClearValidationFeedback() *WorkflowResultUpdate {
	_u.mutation.ClearValidationFeedback()
	return _u
}

// SetValidationEvidence sets the "validation_evidence" field.
func (_u *WorkflowResultUpdate) SetValidationEvidence(v []string) *WorkflowResultUpdate {
	_u.mutation.SetValidationEvidence(v)
	return _u
}

// AppendValidationEvidence appends value to the "validation_evidence" field.
func (_u *WorkflowResultUpdate) AppendValidationEvidence(v []string) *WorkflowResultUpdate {
	_u.mutation.AppendValidationEvidence(v)
	return _u
}

// ClearValidationEvidence clears the value of the "validation_evidence" field.
func (_u *WorkflowResultUpdate) ClearValidationEvidence() *WorkflowResultUpdate {
	_u.mutation.ClearValidationEvidence()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *WorkflowResultUpdate) SetValidatedAt(v time.Time) *WorkflowResultUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableValidatedAt(v *time.Time) *WorkflowResultUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *WorkflowResultUpdate) ClearValidatedAt() *WorkflowResultUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetValidatedByAgentID sets the "validated_by_agent_id" field.
func (_u *WorkflowResultUpdate) SetValidatedByAgentID(v string) *WorkflowResultUpdate {
	_u.mutation.SetValidatedByAgentID(v)
	return _u
}

// SetNillableValidatedByAgentID sets the "validated_by_agent_id" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableValidatedByAgentID(v *string) *WorkflowResultUpdate {
	if v != nil {
		_u.SetValidatedByAgentID(*v)
	}
	return _u
}

// ClearValidatedByAgentID clears the value of the "validated_by_agent_id" field.
func (_u *WorkflowResultUpdate) ClearValidatedByAgentID() *WorkflowResultUpdate {
	_u.mutation.ClearValidatedByAgentID()
	return _u
}

// Mutation returns the WorkflowResultMutation object of the builder.
func (_u *WorkflowResultUpdate) Mutation() *WorkflowResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowResult.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowResult.workflow"`)
	}
	return nil
}

func (_u *WorkflowResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowresult.Table, workflowresult.Columns, sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationFeedback(); ok {
		_spec.SetField(workflowresult.FieldValidationFeedback, field.TypeString, value)
	}
	if _u.mutation.ValidationFeedbackCleared() {
		_spec.ClearField(workflowresult.FieldValidationFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationEvidence(); ok {
		_spec.SetField(workflowresult.FieldValidationEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowresult.FieldValidationEvidence, value)
		})
	}
	if _u.mutation.ValidationEvidenceCleared() {
		_spec.ClearField(workflowresult.FieldValidationEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(workflowresult.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(workflowresult.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidatedByAgentID(); ok {
		_spec.SetField(workflowresult.FieldValidatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.ValidatedByAgentIDCleared() {
		_spec.ClearField(workflowresult.FieldValidatedByAgentID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowResultUpdateOne is the builder for updating a single WorkflowResult entity.
type WorkflowResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowResultMutation
}

// SetStatus sets the "status" field.
func (_u *WorkflowResultUpdateOne) SetStatus(v workflowresult.Status) *WorkflowResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableStatus(v *workflowresult.Status) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidationFeedback sets the "validation_feedback" field.
func (_u *WorkflowResultUpdateOne) SetValidationFeedback(v string) *WorkflowResultUpdateOne {
	_u.mutation.SetValidationFeedback(v)
	return _u
}

// SetNillableValidationFeedback sets the "validation_feedback" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableValidationFeedback(v *string) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetValidationFeedback(*v)
	}
	return _u
}

// ClearValidationFeedback clears the value of the "validation_feedback" field.
func (_u *WorkflowResultUpdateOne) ClearValidationFeedback() *WorkflowResultUpdateOne {
	_u.mutation.ClearValidationFeedback()
	return _u
}

// SetValidationEvidence sets the "validation_evidence" field.
func (_u *WorkflowResultUpdateOne) SetValidationEvidence(v []string) *WorkflowResultUpdateOne {
	_u.mutation.SetValidationEvidence(v)
	return _u
}

// AppendValidationEvidence appends value to the "validation_evidence" field.
func (_u *WorkflowResultUpdateOne) AppendValidationEvidence(v []string) *WorkflowResultUpdateOne {
	_u.mutation.AppendValidationEvidence(v)
	return _u
}

// ClearValidationEvidence clears the value of the "validation_evidence" field.
func (_u *WorkflowResultUpdateOne) ClearValidationEvidence() *WorkflowResultUpdateOne {
	_u.mutation.ClearValidationEvidence()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *WorkflowResultUpdateOne) SetValidatedAt(v time.Time) *WorkflowResultUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableValidatedAt(v *time.Time) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *WorkflowResultUpdateOne) ClearValidatedAt() *WorkflowResultUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetValidatedByAgentID sets the "validated_by_agent_id" field.
func (_u *WorkflowResultUpdateOne) SetValidatedByAgentID(v string) *WorkflowResultUpdateOne {
	_u.mutation.SetValidatedByAgentID(v)
	return _u
}

// SetNillableValidatedByAgentID sets the "validated_by_agent_id" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableValidatedByAgentID(v *string) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetValidatedByAgentID(*v)
	}
	return _u
}

// ClearValidatedByAgentID clears the value of the "validated_by_agent_id" field.
func (_u *WorkflowResultUpdateOne) ClearValidatedByAgentID() *WorkflowResultUpdateOne {
	_u.mutation.ClearValidatedByAgentID()
	return _u
}

// Mutation returns the WorkflowResultMutation object of the builder.
func (_u *WorkflowResultUpdateOne) Mutation() *WorkflowResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowResultUpdate builder.
func (_u *WorkflowResultUpdateOne) Where(ps ...predicate.WorkflowResult) *WorkflowResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowResultUpdateOne) Select(field string, fields ...string) *WorkflowResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowResult entity.
func (_u *WorkflowResultUpdateOne) Save(ctx context.Context) (*WorkflowResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowResultUpdateOne) SaveX(ctx context.Context) *WorkflowResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowResult.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowResult.workflow"`)
	}
	return nil
}

func (_u *WorkflowResultUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowresult.Table, workflowresult.Columns, sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowresult.FieldID)
		for _, f := range fields {
			if !workflowresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowresult.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationFeedback(); ok {
		_spec.SetField(workflowresult.FieldValidationFeedback, field.TypeString, value)
	}
	if _u.mutation.ValidationFeedbackCleared() {
		_spec.ClearField(workflowresult.FieldValidationFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationEvidence(); ok {
		_spec.SetField(workflowresult.FieldValidationEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowresult.FieldValidationEvidence, value)
		})
	}
	if _u.mutation.ValidationEvidenceCleared() {
		_spec.ClearField(workflowresult.FieldValidationEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(workflowresult.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(workflowresult.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidatedByAgentID(); ok {
		_spec.SetField(workflowresult.FieldValidatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.ValidatedByAgentIDCleared() {
		_spec.ClearField(workflowresult.FieldValidatedByAgentID, field.TypeString)
	}
	_node = &WorkflowResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// PhaseUpdate is the builder for updating Phase entities.
type PhaseUpdate struct {
	config
	hooks    []Hook
	mutation *PhaseMutation
}

// Where appends a list predicates to the PhaseUpdate builder.
func (_u *PhaseUpdate) Where(ps ...predicate.Phase) *PhaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDoneDefinitions sets the "done_definitions" field.
func (_u *PhaseUpdate) SetDoneDefinitions(v []string) *PhaseUpdate {
	_u.mutation.SetDoneDefinitions(v)
	return _u
}

// AppendDoneDefinitions appends value to the "done_definitions" field.
func (_u *PhaseUpdate) AppendDoneDefinitions(v []string) *PhaseUpdate {
	_u.mutation.AppendDoneDefinitions(v)
	return _u
}

// SetAdditionalNotes sets the "additional_notes" field.
func (_u *PhaseUpdate) SetAdditionalNotes(v string) *PhaseUpdate {
	_u.mutation.SetAdditionalNotes(v)
	return _u
}

// SetNillableAdditionalNotes sets the "additional_notes" field if the given value is not nil.
func (_u *PhaseUpdate) SetNillableAdditionalNotes(v *string) *PhaseUpdate {
	if v != nil {
		_u.SetAdditionalNotes(*v)
	}
	return _u
}

// ClearAdditionalNotes clears the value of the "additional_notes" field.
func (_u *PhaseUpdate) ClearAdditionalNotes() *PhaseUpdate {
	_u.mutation.ClearAdditionalNotes()
	return _u
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_u *PhaseUpdate) SetValidationEnabled(v bool) *PhaseUpdate {
	_u.mutation.SetValidationEnabled(v)
	return _u
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_u *PhaseUpdate) SetNillableValidationEnabled(v *bool) *PhaseUpdate {
	if v != nil {
		_u.SetValidationEnabled(*v)
	}
	return _u
}

// SetValidationCriteria sets the "validation_criteria" field.
func (_u *PhaseUpdate) SetValidationCriteria(v []string) *PhaseUpdate {
	_u.mutation.SetValidationCriteria(v)
	return _u
}

// AppendValidationCriteria appends value to the "validation_criteria" field.
func (_u *PhaseUpdate) AppendValidationCriteria(v []string) *PhaseUpdate {
	_u.mutation.AppendValidationCriteria(v)
	return _u
}

// ClearValidationCriteria clears the value of the "validation_criteria" field.
func (_u *PhaseUpdate) ClearValidationCriteria() *PhaseUpdate {
	_u.mutation.ClearValidationCriteria()
	return _u
}

// SetValidatorInstructions sets the "validator_instructions" field.
func (_u *PhaseUpdate) SetValidatorInstructions(v string) *PhaseUpdate {
	_u.mutation.SetValidatorInstructions(v)
	return _u
}

// SetNillableValidatorInstructions sets the "validator_instructions" field if the given value is not nil.
func (_u *PhaseUpdate) SetNillableValidatorInstructions(v *string) *PhaseUpdate {
	if v != nil {
		_u.SetValidatorInstructions(*v)
	}
	return _u
}

// ClearValidatorInstructions clears the value of the "validator_instructions" field.
func (_u *PhaseUpdate) ClearValidatorInstructions() *PhaseUpdate {
	_u.mutation.ClearValidatorInstructions()
	return _u
}

// Mutation returns the PhaseMutation object of the builder.
func (_u *PhaseUpdate) Mutation() *PhaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Phase.workflow"`)
	}
	return nil
}

func (_u *PhaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phase.Table, phase.Columns, sqlgraph.NewFieldSpec(phase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DoneDefinitions(); ok {
		_spec.SetField(phase.FieldDoneDefinitions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDoneDefinitions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, phase.FieldDoneDefinitions, value)
		})
	}
	if value, ok := _u.mutation.AdditionalNotes(); ok {
		_spec.SetField(phase.FieldAdditionalNotes, field.TypeString, value)
	}
	if _u.mutation.AdditionalNotesCleared() {
		_spec.ClearField(phase.FieldAdditionalNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationEnabled(); ok {
		_spec.SetField(phase.FieldValidationEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationCriteria(); ok {
		_spec.SetField(phase.FieldValidationCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, phase.FieldValidationCriteria, value)
		})
	}
	if _u.mutation.ValidationCriteriaCleared() {
		_spec.ClearField(phase.FieldValidationCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatorInstructions(); ok {
		_spec.SetField(phase.FieldValidatorInstructions, field.TypeString, value)
	}
	if _u.mutation.ValidatorInstructionsCleared() {
		_spec.ClearField(phase.FieldValidatorInstructions, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhaseUpdateOne is the builder for updating a single Phase entity.
type PhaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhaseMutation
}

// SetDoneDefinitions sets the "done_definitions" field.
func (_u *PhaseUpdateOne) SetDoneDefinitions(v []string) *PhaseUpdateOne {
	_u.mutation.SetDoneDefinitions(v)
	return _u
}

// AppendDoneDefinitions appends value to the "done_definitions" field.
func (_u *PhaseUpdateOne) AppendDoneDefinitions(v []string) *PhaseUpdateOne {
	_u.mutation.AppendDoneDefinitions(v)
	return _u
}

// SetAdditionalNotes sets the "additional_notes" field.
func (_u *PhaseUpdateOne) SetAdditionalNotes(v string) *PhaseUpdateOne {
	_u.mutation.SetAdditionalNotes(v)
	return _u
}

// SetNillableAdditionalNotes sets the "additional_notes" field if the given value is not nil.
func (_u *PhaseUpdateOne) SetNillableAdditionalNotes(v *string) *PhaseUpdateOne {
	if v != nil {
		_u.SetAdditionalNotes(*v)
	}
	return _u
}

// ClearAdditionalNotes clears the value of the "additional_notes" field.
func (_u *PhaseUpdateOne) ClearAdditionalNotes() *PhaseUpdateOne {
	_u.mutation.ClearAdditionalNotes()
	return _u
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_u *PhaseUpdateOne) SetValidationEnabled(v bool) *PhaseUpdateOne {
	_u.mutation.SetValidationEnabled(v)
	return _u
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_u *PhaseUpdateOne) SetNillableValidationEnabled(v *bool) *PhaseUpdateOne {
	if v != nil {
		_u.SetValidationEnabled(*v)
	}
	return _u
}

// SetValidationCriteria sets the "validation_criteria" field.
func (_u *PhaseUpdateOne) SetValidationCriteria(v []string) *PhaseUpdateOne {
	_u.mutation.SetValidationCriteria(v)
	return _u
}

// AppendValidationCriteria appends value to the "validation_criteria" field.
func (_u *PhaseUpdateOne) AppendValidationCriteria(v []string) *PhaseUpdateOne {
	_u.mutation.AppendValidationCriteria(v)
	return _u
}

// ClearValidationCriteria clears the value of the "validation_criteria" field.
func (_u *PhaseUpdateOne) ClearValidationCriteria() *PhaseUpdateOne {
	_u.mutation.ClearValidationCriteria()
	return _u
}

// SetValidatorInstructions sets the "validator_instructions" field.
func (_u *PhaseUpdateOne) SetValidatorInstructions(v string) *PhaseUpdateOne {
	_u.mutation.SetValidatorInstructions(v)
	return _u
}

// SetNillableValidatorInstructions sets the "validator_instructions" field if the given value is not nil.
func (_u *PhaseUpdateOne) SetNillableValidatorInstructions(v *string) *PhaseUpdateOne {
	if v != nil {
		_u.SetValidatorInstructions(*v)
	}
	return _u
}

// ClearValidatorInstructions clears the value of the "validator_instructions" field.
func (_u *PhaseUpdateOne) ClearValidatorInstructions() *PhaseUpdateOne {
	_u.mutation.ClearValidatorInstructions()
	return _u
}

// Mutation returns the PhaseMutation object of the builder.
func (_u *PhaseUpdateOne) Mutation() *PhaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the PhaseUpdate builder.
func (_u *PhaseUpdateOne) Where(ps ...predicate.Phase) *PhaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhaseUpdateOne) Select(field string, fields ...string) *PhaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Phase entity.
func (_u *PhaseUpdateOne) Save(ctx context.Context) (*Phase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseUpdateOne) SaveX(ctx context.Context) *Phase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Phase.workflow"`)
	}
	return nil
}

func (_u *PhaseUpdateOne) sqlSave(ctx context.Context) (_node *Phase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phase.Table, phase.Columns, sqlgraph.NewFieldSpec(phase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Phase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phase.FieldID)
		for _, f := range fields {
			if !phase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phase.FieldID {
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
	if value, ok := _u.mutation.DoneDefinitions(); ok {
		_spec.SetField(phase.FieldDoneDefinitions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDoneDefinitions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, phase.FieldDoneDefinitions, value)
		})
	}
	if value, ok := _u.mutation.AdditionalNotes(); ok {
		_spec.SetField(phase.FieldAdditionalNotes, field.TypeString, value)
	}
	if _u.mutation.AdditionalNotesCleared() {
		_spec.ClearField(phase.FieldAdditionalNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationEnabled(); ok {
		_spec.SetField(phase.FieldValidationEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationCriteria(); ok {
		_spec.SetField(phase.FieldValidationCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, phase.FieldValidationCriteria, value)
		})
	}
	if _u.mutation.ValidationCriteriaCleared() {
		_spec.ClearField(phase.FieldValidationCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatorInstructions(); ok {
		_spec.SetField(phase.FieldValidatorInstructions, field.TypeString, value)
	}
	if _u.mutation.ValidatorInstructionsCleared() {
		_spec.ClearField(phase.FieldValidatorInstructions, field.TypeString)
	}
	_node = &Phase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

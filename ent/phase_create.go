// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
)

// PhaseCreate is the builder for creating a Phase entity.
type PhaseCreate struct {
	config
	mutation *PhaseMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *PhaseCreate) SetWorkflowID(v string) *PhaseCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetNumber sets the "number" field.
func (_c *PhaseCreate) SetNumber(v int) *PhaseCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PhaseCreate) SetName(v string) *PhaseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PhaseCreate) SetDescription(v string) *PhaseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetDoneDefinitions sets the "done_definitions" field.
func (_c *PhaseCreate) SetDoneDefinitions(v []string) *PhaseCreate {
	_c.mutation.SetDoneDefinitions(v)
	return _c
}

// SetAdditionalNotes sets the "additional_notes" field.
func (_c *PhaseCreate) SetAdditionalNotes(v string) *PhaseCreate {
	_c.mutation.SetAdditionalNotes(v)
	return _c
}

// SetNillableAdditionalNotes sets the "additional_notes" field if the given value is not nil.
func (_c *PhaseCreate) SetNillableAdditionalNotes(v *string) *PhaseCreate {
	if v != nil {
		_c.SetAdditionalNotes(*v)
	}
	return _c
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_c *PhaseCreate) SetValidationEnabled(v bool) *PhaseCreate {
	_c.mutation.SetValidationEnabled(v)
	return _c
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_c *PhaseCreate) SetNillableValidationEnabled(v *bool) *PhaseCreate {
	if v != nil {
		_c.SetValidationEnabled(*v)
	}
	return _c
}

// SetValidationCriteria sets the "validation_criteria" field.
func (_c *PhaseCreate) SetValidationCriteria(v []string) *PhaseCreate {
	_c.mutation.SetValidationCriteria(v)
	return _c
}

// SetValidatorInstructions sets the "validator_instructions" field.
func (_c *PhaseCreate) SetValidatorInstructions(v string) *PhaseCreate {
	_c.mutation.SetValidatorInstructions(v)
	return _c
}

// SetNillableValidatorInstructions sets the "validator_instructions" field if the given value is not nil.
func (_c *PhaseCreate) SetNillableValidatorInstructions(v *string) *PhaseCreate {
	if v != nil {
		_c.SetValidatorInstructions(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhaseCreate) SetID(v string) *PhaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *PhaseCreate) SetWorkflow(v *Workflow) *PhaseCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the PhaseMutation object of the builder.
func (_c *PhaseCreate) Mutation() *PhaseMutation {
	return _c.mutation
}

// Save creates the Phase in the database.
func (_c *PhaseCreate) Save(ctx context.Context) (*Phase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhaseCreate) SaveX(ctx context.Context) *Phase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhaseCreate) defaults() {
	if _, ok := _c.mutation.ValidationEnabled(); !ok {
		v := phase.DefaultValidationEnabled
		_c.mutation.SetValidationEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhaseCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "Phase.workflow_id"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "Phase.number"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Phase.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Phase.description"`)}
	}
	if _, ok := _c.mutation.DoneDefinitions(); !ok {
		return &ValidationError{Name: "done_definitions", err: errors.New(`ent: missing required field "Phase.done_definitions"`)}
	}
	if _, ok := _c.mutation.ValidationEnabled(); !ok {
		return &ValidationError{Name: "validation_enabled", err: errors.New(`ent: missing required field "Phase.validation_enabled"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "Phase.workflow"`)}
	}
	return nil
}

func (_c *PhaseCreate) sqlSave(ctx context.Context) (*Phase, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Phase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PhaseCreate) createSpec() (*Phase, *sqlgraph.CreateSpec) {
	var (
		_node = &Phase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(phase.Table, sqlgraph.NewFieldSpec(phase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(phase.FieldNumber, field.TypeInt, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(phase.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(phase.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DoneDefinitions(); ok {
		_spec.SetField(phase.FieldDoneDefinitions, field.TypeJSON, value)
		_node.DoneDefinitions = value
	}
	if value, ok := _c.mutation.AdditionalNotes(); ok {
		_spec.SetField(phase.FieldAdditionalNotes, field.TypeString, value)
		_node.AdditionalNotes = value
	}
	if value, ok := _c.mutation.ValidationEnabled(); ok {
		_spec.SetField(phase.FieldValidationEnabled, field.TypeBool, value)
		_node.ValidationEnabled = value
	}
	if value, ok := _c.mutation.ValidationCriteria(); ok {
		_spec.SetField(phase.FieldValidationCriteria, field.TypeJSON, value)
		_node.ValidationCriteria = value
	}
	if value, ok := _c.mutation.ValidatorInstructions(); ok {
		_spec.SetField(phase.FieldValidatorInstructions, field.TypeString, value)
		_node.ValidatorInstructions = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   phase.WorkflowTable,
			Columns: []string{phase.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PhaseCreateBulk is the builder for creating many Phase entities in bulk.
type PhaseCreateBulk struct {
	config
	err      error
	builders []*PhaseCreate
}

// Save creates the Phase entities in the database.
func (_c *PhaseCreateBulk) Save(ctx context.Context) ([]*Phase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Phase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhaseMutation)
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
func (_c *PhaseCreateBulk) SaveX(ctx context.Context) []*Phase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
)

// SteeringInterventionCreate is the builder for creating a SteeringIntervention entity.
type SteeringInterventionCreate struct {
	config
	mutation *SteeringInterventionMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *SteeringInterventionCreate) SetAgentID(v string) *SteeringInterventionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetGuardianAnalysisID sets the "guardian_analysis_id" field.
func (_c *SteeringInterventionCreate) SetGuardianAnalysisID(v string) *SteeringInterventionCreate {
	_c.mutation.SetGuardianAnalysisID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SteeringInterventionCreate) SetTimestamp(v time.Time) *SteeringInterventionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SteeringInterventionCreate) SetNillableTimestamp(v *time.Time) *SteeringInterventionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSteeringType sets the "steering_type" field.
func (_c *SteeringInterventionCreate) SetSteeringType(v string) *SteeringInterventionCreate {
	_c.mutation.SetSteeringType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *SteeringInterventionCreate) SetMessage(v string) *SteeringInterventionCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetWasSuccessful sets the "was_successful" field.
func (_c *SteeringInterventionCreate) SetWasSuccessful(v bool) *SteeringInterventionCreate {
	_c.mutation.SetWasSuccessful(v)
	return _c
}

// SetNillableWasSuccessful sets the "was_successful" field if the given value is not nil.
func (_c *SteeringInterventionCreate) SetNillableWasSuccessful(v *bool) *SteeringInterventionCreate {
	if v != nil {
		_c.SetWasSuccessful(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SteeringInterventionCreate) SetID(v string) *SteeringInterventionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SteeringInterventionMutation object of the builder.
func (_c *SteeringInterventionCreate) Mutation() *SteeringInterventionMutation {
	return _c.mutation
}

// Save creates the SteeringIntervention in the database.
func (_c *SteeringInterventionCreate) Save(ctx context.Context) (*SteeringIntervention, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SteeringInterventionCreate) SaveX(ctx context.Context) *SteeringIntervention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SteeringInterventionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SteeringInterventionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SteeringInterventionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := steeringintervention.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SteeringInterventionCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "SteeringIntervention.agent_id"`)}
	}
	if _, ok := _c.mutation.GuardianAnalysisID(); !ok {
		return &ValidationError{Name: "guardian_analysis_id", err: errors.New(`ent: missing required field "SteeringIntervention.guardian_analysis_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SteeringIntervention.timestamp"`)}
	}
	if _, ok := _c.mutation.SteeringType(); !ok {
		return &ValidationError{Name: "steering_type", err: errors.New(`ent: missing required field "SteeringIntervention.steering_type"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "SteeringIntervention.message"`)}
	}
	return nil
}

func (_c *SteeringInterventionCreate) sqlSave(ctx context.Context) (*SteeringIntervention, error) {
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
			return nil, fmt.Errorf("unexpected SteeringIntervention.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SteeringInterventionCreate) createSpec() (*SteeringIntervention, *sqlgraph.CreateSpec) {
	var (
		_node = &SteeringIntervention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(steeringintervention.Table, sqlgraph.NewFieldSpec(steeringintervention.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(steeringintervention.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.GuardianAnalysisID(); ok {
		_spec.SetField(steeringintervention.FieldGuardianAnalysisID, field.TypeString, value)
		_node.GuardianAnalysisID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(steeringintervention.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SteeringType(); ok {
		_spec.SetField(steeringintervention.FieldSteeringType, field.TypeString, value)
		_node.SteeringType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(steeringintervention.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.WasSuccessful(); ok {
		_spec.SetField(steeringintervention.FieldWasSuccessful, field.TypeBool, value)
		_node.WasSuccessful = &value
	}
	return _node, _spec
}

// SteeringInterventionCreateBulk is the builder for creating many SteeringIntervention entities in bulk.
type SteeringInterventionCreateBulk struct {
	config
	err      error
	builders []*SteeringInterventionCreate
}

// Save creates the SteeringIntervention entities in the database.
func (_c *SteeringInterventionCreateBulk) Save(ctx context.Context) ([]*SteeringIntervention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SteeringIntervention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SteeringInterventionMutation)
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
func (_c *SteeringInterventionCreateBulk) SaveX(ctx context.Context) []*SteeringIntervention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SteeringInterventionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SteeringInterventionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

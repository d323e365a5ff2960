// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
)

// GuardianAnalysisCreate is the builder for creating a GuardianAnalysis entity.
type GuardianAnalysisCreate struct {
	config
	mutation *GuardianAnalysisMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *GuardianAnalysisCreate) SetAgentID(v string) *GuardianAnalysisCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GuardianAnalysisCreate) SetTimestamp(v time.Time) *GuardianAnalysisCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GuardianAnalysisCreate) SetNillableTimestamp(v *time.Time) *GuardianAnalysisCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *GuardianAnalysisCreate) SetCurrentPhase(v string) *GuardianAnalysisCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *GuardianAnalysisCreate) SetNillableCurrentPhase(v *string) *GuardianAnalysisCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetAlignmentScore sets the "alignment_score" field.
func (_c *GuardianAnalysisCreate) SetAlignmentScore(v float64) *GuardianAnalysisCreate {
	_c.mutation.SetAlignmentScore(v)
	return _c
}

// SetTrajectoryAligned sets the "trajectory_aligned" field.
func (_c *GuardianAnalysisCreate) SetTrajectoryAligned(v bool) *GuardianAnalysisCreate {
	_c.mutation.SetTrajectoryAligned(v)
	return _c
}

// SetTrajectorySummary sets the "trajectory_summary" field.
func (_c *GuardianAnalysisCreate) SetTrajectorySummary(v string) *GuardianAnalysisCreate {
	_c.mutation.SetTrajectorySummary(v)
	return _c
}

// SetNeedsSteering sets the "needs_steering" field.
func (_c *GuardianAnalysisCreate) SetNeedsSteering(v bool) *GuardianAnalysisCreate {
	_c.mutation.SetNeedsSteering(v)
	return _c
}

// SetSteeringType sets the "steering_type" field.
func (_c *GuardianAnalysisCreate) SetSteeringType(v guardiananalysis.SteeringType) *GuardianAnalysisCreate {
	_c.mutation.SetSteeringType(v)
	return _c
}

// SetNillableSteeringType sets the "steering_type" field if the given value is not nil.
func (_c *GuardianAnalysisCreate) SetNillableSteeringType(v *guardiananalysis.SteeringType) *GuardianAnalysisCreate {
	if v != nil {
		_c.SetSteeringType(*v)
	}
	return _c
}

// SetSteeringMessage sets the "steering_message" field.
func (_c *GuardianAnalysisCreate) SetSteeringMessage(v string) *GuardianAnalysisCreate {
	_c.mutation.SetSteeringMessage(v)
	return _c
}

// SetNillableSteeringMessage sets the "steering_message" field if the given value is not nil.
func (_c *GuardianAnalysisCreate) SetNillableSteeringMessage(v *string) *GuardianAnalysisCreate {
	if v != nil {
		_c.SetSteeringMessage(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *GuardianAnalysisCreate) SetDetails(v map[string]interface{}) *GuardianAnalysisCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GuardianAnalysisCreate) SetID(v string) *GuardianAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GuardianAnalysisMutation object of the builder.
func (_c *GuardianAnalysisCreate) Mutation() *GuardianAnalysisMutation {
	return _c.mutation
}

// Save creates the GuardianAnalysis in the database.
func (_c *GuardianAnalysisCreate) Save(ctx context.Context) (*GuardianAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GuardianAnalysisCreate) SaveX(ctx context.Context) *GuardianAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuardianAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuardianAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GuardianAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := guardiananalysis.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SteeringType(); !ok {
		v := guardiananalysis.DefaultSteeringType
		_c.mutation.SetSteeringType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GuardianAnalysisCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "GuardianAnalysis.agent_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GuardianAnalysis.timestamp"`)}
	}
	if _, ok := _c.mutation.AlignmentScore(); !ok {
		return &ValidationError{Name: "alignment_score", err: errors.New(`ent: missing required field "GuardianAnalysis.alignment_score"`)}
	}
	if _, ok := _c.mutation.TrajectoryAligned(); !ok {
		return &ValidationError{Name: "trajectory_aligned", err: errors.New(`ent: missing required field "GuardianAnalysis.trajectory_aligned"`)}
	}
	if _, ok := _c.mutation.TrajectorySummary(); !ok {
		return &ValidationError{Name: "trajectory_summary", err: errors.New(`ent: missing required field "GuardianAnalysis.trajectory_summary"`)}
	}
	if _, ok := _c.mutation.NeedsSteering(); !ok {
		return &ValidationError{Name: "needs_steering", err: errors.New(`ent: missing required field "GuardianAnalysis.needs_steering"`)}
	}
	if _, ok := _c.mutation.SteeringType(); !ok {
		return &ValidationError{Name: "steering_type", err: errors.New(`ent: missing required field "GuardianAnalysis.steering_type"`)}
	}
	if v, ok := _c.mutation.SteeringType(); ok {
		if err := guardiananalysis.SteeringTypeValidator(v); err != nil {
			return &ValidationError{Name: "steering_type", err: fmt.Errorf(`ent: validator failed for field "GuardianAnalysis.steering_type": %w`, err)}
		}
	}
	return nil
}

func (_c *GuardianAnalysisCreate) sqlSave(ctx context.Context) (*GuardianAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected GuardianAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GuardianAnalysisCreate) createSpec() (*GuardianAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &GuardianAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(guardiananalysis.Table, sqlgraph.NewFieldSpec(guardiananalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(guardiananalysis.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(guardiananalysis.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(guardiananalysis.FieldCurrentPhase, field.TypeString, value)
		_node.CurrentPhase = value
	}
	if value, ok := _c.mutation.AlignmentScore(); ok {
		_spec.SetField(guardiananalysis.FieldAlignmentScore, field.TypeFloat64, value)
		_node.AlignmentScore = value
	}
	if value, ok := _c.mutation.TrajectoryAligned(); ok {
		_spec.SetField(guardiananalysis.FieldTrajectoryAligned, field.TypeBool, value)
		_node.TrajectoryAligned = value
	}
	if value, ok := _c.mutation.TrajectorySummary(); ok {
		_spec.SetField(guardiananalysis.FieldTrajectorySummary, field.TypeString, value)
		_node.TrajectorySummary = value
	}
	if value, ok := _c.mutation.NeedsSteering(); ok {
		_spec.SetField(guardiananalysis.FieldNeedsSteering, field.TypeBool, value)
		_node.NeedsSteering = value
	}
	if value, ok := _c.mutation.SteeringType(); ok {
		_spec.SetField(guardiananalysis.FieldSteeringType, field.TypeEnum, value)
		_node.SteeringType = value
	}
	if value, ok := _c.mutation.SteeringMessage(); ok {
		_spec.SetField(guardiananalysis.FieldSteeringMessage, field.TypeString, value)
		_node.SteeringMessage = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(guardiananalysis.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	return _node, _spec
}

// GuardianAnalysisCreateBulk is the builder for creating many GuardianAnalysis entities in bulk.
type GuardianAnalysisCreateBulk struct {
	config
	err      error
	builders []*GuardianAnalysisCreate
}

// Save creates the GuardianAnalysis entities in the database.
func (_c *GuardianAnalysisCreateBulk) Save(ctx context.Context) ([]*GuardianAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GuardianAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GuardianAnalysisMutation)
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
func (_c *GuardianAnalysisCreateBulk) SaveX(ctx context.Context) []*GuardianAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuardianAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuardianAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

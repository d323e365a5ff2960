// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
)

// ConductorAnalysisCreate is the builder for creating a ConductorAnalysis entity.
type ConductorAnalysisCreate struct {
	config
	mutation *ConductorAnalysisMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *ConductorAnalysisCreate) SetTimestamp(v time.Time) *ConductorAnalysisCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ConductorAnalysisCreate) SetNillableTimestamp(v *time.Time) *ConductorAnalysisCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCoherenceScore sets the "coherence_score" field.
func (_c *ConductorAnalysisCreate) SetCoherenceScore(v float64) *ConductorAnalysisCreate {
	_c.mutation.SetCoherenceScore(v)
	return _c
}

// SetNumAgents sets the "num_agents" field.
func (_c *ConductorAnalysisCreate) SetNumAgents(v int) *ConductorAnalysisCreate {
	_c.mutation.SetNumAgents(v)
	return _c
}

// SetSystemStatus sets the "system_status" field.
func (_c *ConductorAnalysisCreate) SetSystemStatus(v string) *ConductorAnalysisCreate {
	_c.mutation.SetSystemStatus(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *ConductorAnalysisCreate) SetRecommendations(v string) *ConductorAnalysisCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_c *ConductorAnalysisCreate) SetNillableRecommendations(v *string) *ConductorAnalysisCreate {
	if v != nil {
		_c.SetRecommendations(*v)
	}
	return _c
}

// SetDetectedDuplicates sets the "detected_duplicates" field.
func (_c *ConductorAnalysisCreate) SetDetectedDuplicates(v []map[string]interface{}) *ConductorAnalysisCreate {
	_c.mutation.SetDetectedDuplicates(v)
	return _c
}

// SetTerminationRecommendations sets the "termination_recommendations" field.
func (_c *ConductorAnalysisCreate) SetTerminationRecommendations(v []string) *ConductorAnalysisCreate {
	_c.mutation.SetTerminationRecommendations(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ConductorAnalysisCreate) SetID(v string) *ConductorAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConductorAnalysisMutation object of the builder.
func (_c *ConductorAnalysisCreate) Mutation() *ConductorAnalysisMutation {
	return _c.mutation
}

// Save creates the ConductorAnalysis in the database.
func (_c *ConductorAnalysisCreate) Save(ctx context.Context) (*ConductorAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConductorAnalysisCreate) SaveX(ctx context.Context) *ConductorAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConductorAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConductorAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConductorAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := conductoranalysis.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConductorAnalysisCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ConductorAnalysis.timestamp"`)}
	}
	if _, ok := _c.mutation.CoherenceScore(); !ok {
		return &ValidationError{Name: "coherence_score", err: errors.New(`ent: missing required field "ConductorAnalysis.coherence_score"`)}
	}
	if _, ok := _c.mutation.NumAgents(); !ok {
		return &ValidationError{Name: "num_agents", err: errors.New(`ent: missing required field "ConductorAnalysis.num_agents"`)}
	}
	if _, ok := _c.mutation.SystemStatus(); !ok {
		return &ValidationError{Name: "system_status", err: errors.New(`ent: missing required field "ConductorAnalysis.system_status"`)}
	}
	return nil
}

func (_c *ConductorAnalysisCreate) sqlSave(ctx context.Context) (*ConductorAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected ConductorAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConductorAnalysisCreate) createSpec() (*ConductorAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &ConductorAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conductoranalysis.Table, sqlgraph.NewFieldSpec(conductoranalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(conductoranalysis.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CoherenceScore(); ok {
		_spec.SetField(conductoranalysis.FieldCoherenceScore, field.TypeFloat64, value)
		_node.CoherenceScore = value
	}
	if value, ok := _c.mutation.NumAgents(); ok {
		_spec.SetField(conductoranalysis.FieldNumAgents, field.TypeInt, value)
		_node.NumAgents = value
	}
	if value, ok := _c.mutation.SystemStatus(); ok {
		_spec.SetField(conductoranalysis.FieldSystemStatus, field.TypeString, value)
		_node.SystemStatus = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(conductoranalysis.FieldRecommendations, field.TypeString, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.DetectedDuplicates(); ok {
		_spec.SetField(conductoranalysis.FieldDetectedDuplicates, field.TypeJSON, value)
		_node.DetectedDuplicates = value
	}
	if value, ok := _c.mutation.TerminationRecommendations(); ok {
		_spec.SetField(conductoranalysis.FieldTerminationRecommendations, field.TypeJSON, value)
		_node.TerminationRecommendations = value
	}
	return _node, _spec
}

// ConductorAnalysisCreateBulk is the builder for creating many ConductorAnalysis entities in bulk.
type ConductorAnalysisCreateBulk struct {
	config
	err      error
	builders []*ConductorAnalysisCreate
}

// Save creates the ConductorAnalysis entities in the database.
func (_c *ConductorAnalysisCreateBulk) Save(ctx context.Context) ([]*ConductorAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConductorAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConductorAnalysisMutation)
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
func (_c *ConductorAnalysisCreateBulk) SaveX(ctx context.Context) []*ConductorAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConductorAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConductorAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

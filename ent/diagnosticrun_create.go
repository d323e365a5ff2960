// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
)

// DiagnosticRunCreate is the builder for creating a DiagnosticRun entity.
type DiagnosticRunCreate struct {
	config
	mutation *DiagnosticRunMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *DiagnosticRunCreate) SetWorkflowID(v string) *DiagnosticRunCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetTriggeredAt sets the "triggered_at" field.
func (_c *DiagnosticRunCreate) SetTriggeredAt(v time.Time) *DiagnosticRunCreate {
	_c.mutation.SetTriggeredAt(v)
	return _c
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableTriggeredAt(v *time.Time) *DiagnosticRunCreate {
	if v != nil {
		_c.SetTriggeredAt(*v)
	}
	return _c
}

// SetTriggerStats sets the "trigger_stats" field.
func (_c *DiagnosticRunCreate) SetTriggerStats(v map[string]interface{}) *DiagnosticRunCreate {
	_c.mutation.SetTriggerStats(v)
	return _c
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (_c *DiagnosticRunCreate) SetTasksCreatedIds(v []string) *DiagnosticRunCreate {
	_c.mutation.SetTasksCreatedIds(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *DiagnosticRunCreate) SetDiagnosis(v string) *DiagnosticRunCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableDiagnosis(v *string) *DiagnosticRunCreate {
	if v != nil {
		_c.SetDiagnosis(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DiagnosticRunCreate) SetStatus(v diagnosticrun.Status) *DiagnosticRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableStatus(v *diagnosticrun.Status) *DiagnosticRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiagnosticRunCreate) SetID(v string) *DiagnosticRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *DiagnosticRunCreate) SetWorkflow(v *Workflow) *DiagnosticRunCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the DiagnosticRunMutation object of the builder.
func (_c *DiagnosticRunCreate) Mutation() *DiagnosticRunMutation {
	return _c.mutation
}

// Save creates the DiagnosticRun in the database.
func (_c *DiagnosticRunCreate) Save(ctx context.Context) (*DiagnosticRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosticRunCreate) SaveX(ctx context.Context) *DiagnosticRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosticRunCreate) defaults() {
	if _, ok := _c.mutation.TriggeredAt(); !ok {
		v := diagnosticrun.DefaultTriggeredAt()
		_c.mutation.SetTriggeredAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := diagnosticrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosticRunCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "DiagnosticRun.workflow_id"`)}
	}
	if _, ok := _c.mutation.TriggeredAt(); !ok {
		return &ValidationError{Name: "triggered_at", err: errors.New(`ent: missing required field "DiagnosticRun.triggered_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DiagnosticRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := diagnosticrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosticRun.status": %w`, err)}
		}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "DiagnosticRun.workflow"`)}
	}
	return nil
}

func (_c *DiagnosticRunCreate) sqlSave(ctx context.Context) (*DiagnosticRun, error) {
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
			return nil, fmt.Errorf("unexpected DiagnosticRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiagnosticRunCreate) createSpec() (*DiagnosticRun, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosticRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosticrun.Table, sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TriggeredAt(); ok {
		_spec.SetField(diagnosticrun.FieldTriggeredAt, field.TypeTime, value)
		_node.TriggeredAt = value
	}
	if value, ok := _c.mutation.TriggerStats(); ok {
		_spec.SetField(diagnosticrun.FieldTriggerStats, field.TypeJSON, value)
		_node.TriggerStats = value
	}
	if value, ok := _c.mutation.TasksCreatedIds(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON, value)
		_node.TasksCreatedIds = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(diagnosticrun.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(diagnosticrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   diagnosticrun.WorkflowTable,
			Columns: []string{diagnosticrun.WorkflowColumn},
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

// DiagnosticRunCreateBulk is the builder for creating many DiagnosticRun entities in bulk.
type DiagnosticRunCreateBulk struct {
	config
	err      error
	builders []*DiagnosticRunCreate
}

// Save creates the DiagnosticRun entities in the database.
func (_c *DiagnosticRunCreateBulk) Save(ctx context.Context) ([]*DiagnosticRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosticRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosticRunMutation)
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
func (_c *DiagnosticRunCreateBulk) SaveX(ctx context.Context) []*DiagnosticRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

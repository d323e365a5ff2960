// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
)

// WorkflowResultCreate is the builder for creating a WorkflowResult entity.
type WorkflowResultCreate struct {
	config
	mutation *WorkflowResultMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowResultCreate) SetWorkflowID(v string) *WorkflowResultCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *WorkflowResultCreate) SetAgentID(v string) *WorkflowResultCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetMarkdownPath sets the "markdown_path" field.
func (_c *WorkflowResultCreate) SetMarkdownPath(v string) *WorkflowResultCreate {
	_c.mutation.SetMarkdownPath(v)
	return _c
}

// SetMarkdownContent sets the "markdown_content" field.
func (_c *WorkflowResultCreate) SetMarkdownContent(v string) *WorkflowResultCreate {
	_c.mutation.SetMarkdownContent(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowResultCreate) SetStatus(v workflowresult.Status) *WorkflowResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableStatus(v *workflowresult.Status) *WorkflowResultCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetValidationFeedback sets the "validation_feedback" field.
func (_c *WorkflowResultCreate) SetValidationFeedback(v string) *WorkflowResultCreate {
	_c.mutation.SetValidationFeedback(v)
	return _c
}

// SetNillableValidationFeedback sets the "validation_feedback" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableValidationFeedback(v *string) *WorkflowResultCreate {
	if v != nil {
		_c.SetValidationFeedback(*v)
	}
	return _c
}

// SetValidationEvidence sets the "validation_evidence" field.
func (_c *WorkflowResultCreate) SetValidationEvidence(v []string) *WorkflowResultCreate {
	_c.mutation.SetValidationEvidence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowResultCreate) SetCreatedAt(v time.Time) *WorkflowResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableCreatedAt(v *time.Time) *WorkflowResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *WorkflowResultCreate) SetValidatedAt(v time.Time) *WorkflowResultCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableValidatedAt(v *time.Time) *WorkflowResultCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetValidatedByAgentID sets the "validated_by_agent_id" field.
func (_c *WorkflowResultCreate) SetValidatedByAgentID(v string) *WorkflowResultCreate {
	_c.mutation.SetValidatedByAgentID(v)
	return _c
}

// SetNillableValidatedByAgentID sets the "validated_by_agent_id" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableValidatedByAgentID(v *string) *WorkflowResultCreate {
	if v != nil {
		_c.SetValidatedByAgentID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowResultCreate) SetID(v string) *WorkflowResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowResultCreate) SetWorkflow(v *Workflow) *WorkflowResultCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowResultMutation object of the builder.
func (_c *WorkflowResultCreate) Mutation() *WorkflowResultMutation {
	return _c.mutation
}

// Save creates the WorkflowResult in the database.
func (_c *WorkflowResultCreate) Save(ctx context.Context) (*WorkflowResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowResultCreate) SaveX(ctx context.Context) *WorkflowResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowResultCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowresult.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowResultCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowResult.workflow_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "WorkflowResult.agent_id"`)}
	}
	if _, ok := _c.mutation.MarkdownPath(); !ok {
		return &ValidationError{Name: "markdown_path", err: errors.New(`ent: missing required field "WorkflowResult.markdown_path"`)}
	}
	if _, ok := _c.mutation.MarkdownContent(); !ok {
		return &ValidationError{Name: "markdown_content", err: errors.New(`ent: missing required field "WorkflowResult.markdown_content"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowResult.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowResult.workflow"`)}
	}
	return nil
}

func (_c *WorkflowResultCreate) sqlSave(ctx context.Context) (*WorkflowResult, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowResultCreate) createSpec() (*WorkflowResult, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowresult.Table, sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(workflowresult.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.MarkdownPath(); ok {
		_spec.SetField(workflowresult.FieldMarkdownPath, field.TypeString, value)
		_node.MarkdownPath = value
	}
	if value, ok := _c.mutation.MarkdownContent(); ok {
		_spec.SetField(workflowresult.FieldMarkdownContent, field.TypeString, value)
		_node.MarkdownContent = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ValidationFeedback(); ok {
		_spec.SetField(workflowresult.FieldValidationFeedback, field.TypeString, value)
		_node.ValidationFeedback = &value
	}
	if value, ok := _c.mutation.ValidationEvidence(); ok {
		_spec.SetField(workflowresult.FieldValidationEvidence, field.TypeJSON, value)
		_node.ValidationEvidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(workflowresult.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.ValidatedByAgentID(); ok {
		_spec.SetField(workflowresult.FieldValidatedByAgentID, field.TypeString, value)
		_node.ValidatedByAgentID = &value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowresult.WorkflowTable,
			Columns: []string{workflowresult.WorkflowColumn},
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

// WorkflowResultCreateBulk is the builder for creating many WorkflowResult entities in bulk.
type WorkflowResultCreateBulk struct {
	config
	err      error
	builders []*WorkflowResultCreate
}

// Save creates the WorkflowResult entities in the database.
func (_c *WorkflowResultCreateBulk) Save(ctx context.Context) ([]*WorkflowResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowResultMutation)
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
func (_c *WorkflowResultCreateBulk) SaveX(ctx context.Context) []*WorkflowResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
)

// TaskResultCreate is the builder for creating a TaskResult entity.
type TaskResultCreate struct {
	config
	mutation *TaskResultMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *TaskResultCreate) SetAgentID(v string) *TaskResultCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskResultCreate) SetTaskID(v string) *TaskResultCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetMarkdownPath sets the "markdown_path" field.
func (_c *TaskResultCreate) SetMarkdownPath(v string) *TaskResultCreate {
	_c.mutation.SetMarkdownPath(v)
	return _c
}

// SetMarkdownContent sets the "markdown_content" field.
func (_c *TaskResultCreate) SetMarkdownContent(v string) *TaskResultCreate {
	_c.mutation.SetMarkdownContent(v)
	return _c
}

// SetResultType sets the "result_type" field.
func (_c *TaskResultCreate) SetResultType(v taskresult.ResultType) *TaskResultCreate {
	_c.mutation.SetResultType(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TaskResultCreate) SetSummary(v string) *TaskResultCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetVerificationStatus sets the "verification_status" field.
func (_c *TaskResultCreate) SetVerificationStatus(v taskresult.VerificationStatus) *TaskResultCreate {
	_c.mutation.SetVerificationStatus(v)
	return _c
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableVerificationStatus(v *taskresult.VerificationStatus) *TaskResultCreate {
	if v != nil {
		_c.SetVerificationStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskResultCreate) SetCreatedAt(v time.Time) *TaskResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableCreatedAt(v *time.Time) *TaskResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetVerifiedAt sets the "verified_at" field.
func (_c *TaskResultCreate) SetVerifiedAt(v time.Time) *TaskResultCreate {
	_c.mutation.SetVerifiedAt(v)
	return _c
}

// SetNillableVerifiedAt sets the "verified_at" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableVerifiedAt(v *time.Time) *TaskResultCreate {
	if v != nil {
		_c.SetVerifiedAt(*v)
	}
	return _c
}

// SetVerifiedByValidationID sets the "verified_by_validation_id" field.
func (_c *TaskResultCreate) SetVerifiedByValidationID(v string) *TaskResultCreate {
	_c.mutation.SetVerifiedByValidationID(v)
	return _c
}

// SetNillableVerifiedByValidationID sets the "verified_by_validation_id" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableVerifiedByValidationID(v *string) *TaskResultCreate {
	if v != nil {
		_c.SetVerifiedByValidationID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskResultCreate) SetID(v string) *TaskResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskResultCreate) SetTask(v *Task) *TaskResultCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskResultMutation object of the builder.
func (_c *TaskResultCreate) Mutation() *TaskResultMutation {
	return _c.mutation
}

// Save creates the TaskResult in the database.
func (_c *TaskResultCreate) Save(ctx context.Context) (*TaskResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskResultCreate) SaveX(ctx context.Context) *TaskResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskResultCreate) defaults() {
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		v := taskresult.DefaultVerificationStatus
		_c.mutation.SetVerificationStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskResultCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "TaskResult.agent_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskResult.task_id"`)}
	}
	if _, ok := _c.mutation.MarkdownPath(); !ok {
		return &ValidationError{Name: "markdown_path", err: errors.New(`ent: missing required field "TaskResult.markdown_path"`)}
	}
	if _, ok := _c.mutation.MarkdownContent(); !ok {
		return &ValidationError{Name: "markdown_content", err: errors.New(`ent: missing required field "TaskResult.markdown_content"`)}
	}
	if _, ok := _c.mutation.ResultType(); !ok {
		return &ValidationError{Name: "result_type", err: errors.New(`ent: missing required field "TaskResult.result_type"`)}
	}
	if v, ok := _c.mutation.ResultType(); ok {
		if err := taskresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "TaskResult.result_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "TaskResult.summary"`)}
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		return &ValidationError{Name: "verification_status", err: errors.New(`ent: missing required field "TaskResult.verification_status"`)}
	}
	if v, ok := _c.mutation.VerificationStatus(); ok {
		if err := taskresult.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "TaskResult.verification_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskResult.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskResult.task"`)}
	}
	return nil
}

func (_c *TaskResultCreate) sqlSave(ctx context.Context) (*TaskResult, error) {
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
			return nil, fmt.Errorf("unexpected TaskResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskResultCreate) createSpec() (*TaskResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskresult.Table, sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(taskresult.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.MarkdownPath(); ok {
		_spec.SetField(taskresult.FieldMarkdownPath, field.TypeString, value)
		_node.MarkdownPath = value
	}
	if value, ok := _c.mutation.MarkdownContent(); ok {
		_spec.SetField(taskresult.FieldMarkdownContent, field.TypeString, value)
		_node.MarkdownContent = value
	}
	if value, ok := _c.mutation.ResultType(); ok {
		_spec.SetField(taskresult.FieldResultType, field.TypeEnum, value)
		_node.ResultType = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(taskresult.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.VerificationStatus(); ok {
		_spec.SetField(taskresult.FieldVerificationStatus, field.TypeEnum, value)
		_node.VerificationStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.VerifiedAt(); ok {
		_spec.SetField(taskresult.FieldVerifiedAt, field.TypeTime, value)
		_node.VerifiedAt = &value
	}
	if value, ok := _c.mutation.VerifiedByValidationID(); ok {
		_spec.SetField(taskresult.FieldVerifiedByValidationID, field.TypeString, value)
		_node.VerifiedByValidationID = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskresult.TaskTable,
			Columns: []string{taskresult.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskResultCreateBulk is the builder for creating many TaskResult entities in bulk.
type TaskResultCreateBulk struct {
	config
	err      error
	builders []*TaskResultCreate
}

// Save creates the TaskResult entities in the database.
func (_c *TaskResultCreateBulk) Save(ctx context.Context) ([]*TaskResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskResultMutation)
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
func (_c *TaskResultCreateBulk) SaveX(ctx context.Context) []*TaskResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

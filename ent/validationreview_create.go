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
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
)

// ValidationReviewCreate is the builder for creating a ValidationReview entity.
type ValidationReviewCreate struct {
	config
	mutation *ValidationReviewMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ValidationReviewCreate) SetTaskID(v string) *ValidationReviewCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (_c *ValidationReviewCreate) SetValidatorAgentID(v string) *ValidationReviewCreate {
	_c.mutation.SetValidatorAgentID(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *ValidationReviewCreate) SetIteration(v int) *ValidationReviewCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetValidationPassed sets the "validation_passed" field.
func (_c *ValidationReviewCreate) SetValidationPassed(v bool) *ValidationReviewCreate {
	_c.mutation.SetValidationPassed(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ValidationReviewCreate) SetFeedback(v string) *ValidationReviewCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *ValidationReviewCreate) SetEvidence(v map[string]interface{}) *ValidationReviewCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationReviewCreate) SetCreatedAt(v time.Time) *ValidationReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationReviewCreate) SetNillableCreatedAt(v *time.Time) *ValidationReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationReviewCreate) SetID(v string) *ValidationReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ValidationReviewCreate) SetTask(v *Task) *ValidationReviewCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ValidationReviewMutation object of the builder.
func (_c *ValidationReviewCreate) Mutation() *ValidationReviewMutation {
	return _c.mutation
}

// Save creates the ValidationReview in the database.
func (_c *ValidationReviewCreate) Save(ctx context.Context) (*ValidationReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationReviewCreate) SaveX(ctx context.Context) *ValidationReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationReviewCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationReviewCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ValidationReview.task_id"`)}
	}
	if _, ok := _c.mutation.ValidatorAgentID(); !ok {
		return &ValidationError{Name: "validator_agent_id", err: errors.New(`ent: missing required field "ValidationReview.validator_agent_id"`)}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "ValidationReview.iteration"`)}
	}
	if _, ok := _c.mutation.ValidationPassed(); !ok {
		return &ValidationError{Name: "validation_passed", err: errors.New(`ent: missing required field "ValidationReview.validation_passed"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "ValidationReview.feedback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationReview.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ValidationReview.task"`)}
	}
	return nil
}

func (_c *ValidationReviewCreate) sqlSave(ctx context.Context) (*ValidationReview, error) {
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
			return nil, fmt.Errorf("unexpected ValidationReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ValidationReviewCreate) createSpec() (*ValidationReview, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationreview.Table, sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ValidatorAgentID(); ok {
		_spec.SetField(validationreview.FieldValidatorAgentID, field.TypeString, value)
		_node.ValidatorAgentID = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(validationreview.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.ValidationPassed(); ok {
		_spec.SetField(validationreview.FieldValidationPassed, field.TypeBool, value)
		_node.ValidationPassed = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(validationreview.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(validationreview.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationreview.TaskTable,
			Columns: []string{validationreview.TaskColumn},
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

// ValidationReviewCreateBulk is the builder for creating many ValidationReview entities in bulk.
type ValidationReviewCreateBulk struct {
	config
	err      error
	builders []*ValidationReviewCreate
}

// Save creates the ValidationReview entities in the database.
func (_c *ValidationReviewCreateBulk) Save(ctx context.Context) ([]*ValidationReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationReviewMutation)
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
func (_c *ValidationReviewCreateBulk) SaveX(ctx context.Context) []*ValidationReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

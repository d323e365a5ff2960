// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/ticketcomment"
)

// TicketCommentCreate is the builder for creating a TicketComment entity.
type TicketCommentCreate struct {
	config
	mutation *TicketCommentMutation
	hooks    []Hook
}

// SetTicketID sets the "ticket_id" field.
func (_c *TicketCommentCreate) SetTicketID(v string) *TicketCommentCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetAuthorAgentID sets the "author_agent_id" field.
func (_c *TicketCommentCreate) SetAuthorAgentID(v string) *TicketCommentCreate {
	_c.mutation.SetAuthorAgentID(v)
	return _c
}

// SetNillableAuthorAgentID sets the "author_agent_id" field if the given value is not nil.
func (_c *TicketCommentCreate) SetNillableAuthorAgentID(v *string) *TicketCommentCreate {
	if v != nil {
		_c.SetAuthorAgentID(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *TicketCommentCreate) SetText(v string) *TicketCommentCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCommentCreate) SetCreatedAt(v time.Time) *TicketCommentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCommentCreate) SetNillableCreatedAt(v *time.Time) *TicketCommentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCommentCreate) SetID(v string) *TicketCommentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TicketCommentMutation object of the builder.
func (_c *TicketCommentCreate) Mutation() *TicketCommentMutation {
	return _c.mutation
}

// Save creates the TicketComment in the database.
func (_c *TicketCommentCreate) Save(ctx context.Context) (*TicketComment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCommentCreate) SaveX(ctx context.Context) *TicketComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCommentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCommentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCommentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticketcomment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCommentCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "TicketComment.ticket_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "TicketComment.text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TicketComment.created_at"`)}
	}
	return nil
}

func (_c *TicketCommentCreate) sqlSave(ctx context.Context) (*TicketComment, error) {
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
			return nil, fmt.Errorf("unexpected TicketComment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCommentCreate) createSpec() (*TicketComment, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketComment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketcomment.Table, sqlgraph.NewFieldSpec(ticketcomment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(ticketcomment.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.AuthorAgentID(); ok {
		_spec.SetField(ticketcomment.FieldAuthorAgentID, field.TypeString, value)
		_node.AuthorAgentID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(ticketcomment.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticketcomment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TicketCommentCreateBulk is the builder for creating many TicketComment entities in bulk.
type TicketCommentCreateBulk struct {
	config
	err      error
	builders []*TicketCommentCreate
}

// Save creates the TicketComment entities in the database.
func (_c *TicketCommentCreateBulk) Save(ctx context.Context) ([]*TicketComment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketComment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketCommentMutation)
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
func (_c *TicketCommentCreateBulk) SaveX(ctx context.Context) []*TicketComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCommentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCommentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/ticketblock"
)

// TicketBlockCreate is the builder for creating a TicketBlock entity.
type TicketBlockCreate struct {
	config
	mutation *TicketBlockMutation
	hooks    []Hook
}

// SetBlockerID sets the "blocker_id" field.
func (_c *TicketBlockCreate) SetBlockerID(v string) *TicketBlockCreate {
	_c.mutation.SetBlockerID(v)
	return _c
}

// SetBlockedID sets the "blocked_id" field.
func (_c *TicketBlockCreate) SetBlockedID(v string) *TicketBlockCreate {
	_c.mutation.SetBlockedID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketBlockCreate) SetCreatedAt(v time.Time) *TicketBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketBlockCreate) SetNillableCreatedAt(v *time.Time) *TicketBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketBlockCreate) SetID(v string) *TicketBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TicketBlockMutation object of the builder.
func (_c *TicketBlockCreate) Mutation() *TicketBlockMutation {
	return _c.mutation
}

// Save creates the TicketBlock in the database.
func (_c *TicketBlockCreate) Save(ctx context.Context) (*TicketBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketBlockCreate) SaveX(ctx context.Context) *TicketBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketBlockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticketblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketBlockCreate) check() error {
	if _, ok := _c.mutation.BlockerID(); !ok {
		return &ValidationError{Name: "blocker_id", err: errors.New(`ent: missing required field "TicketBlock.blocker_id"`)}
	}
	if _, ok := _c.mutation.BlockedID(); !ok {
		return &ValidationError{Name: "blocked_id", err: errors.New(`ent: missing required field "TicketBlock.blocked_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TicketBlock.created_at"`)}
	}
	return nil
}

func (_c *TicketBlockCreate) sqlSave(ctx context.Context) (*TicketBlock, error) {
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
			return nil, fmt.Errorf("unexpected TicketBlock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketBlockCreate) createSpec() (*TicketBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketblock.Table, sqlgraph.NewFieldSpec(ticketblock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BlockerID(); ok {
		_spec.SetField(ticketblock.FieldBlockerID, field.TypeString, value)
		_node.BlockerID = value
	}
	if value, ok := _c.mutation.BlockedID(); ok {
		_spec.SetField(ticketblock.FieldBlockedID, field.TypeString, value)
		_node.BlockedID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticketblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TicketBlockCreateBulk is the builder for creating many TicketBlock entities in bulk.
type TicketBlockCreateBulk struct {
	config
	err      error
	builders []*TicketBlockCreate
}

// Save creates the TicketBlock entities in the database.
func (_c *TicketBlockCreateBulk) Save(ctx context.Context) ([]*TicketBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketBlockMutation)
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
func (_c *TicketBlockCreateBulk) SaveX(ctx context.Context) []*TicketBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

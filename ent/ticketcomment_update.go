// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/ticketcomment"
)

// TicketCommentUpdate is the builder for updating TicketComment entities.
type TicketCommentUpdate struct {
	config
	hooks    []Hook
	mutation *TicketCommentMutation
}

// Where appends a list predicates to the TicketCommentUpdate builder.
func (_u *TicketCommentUpdate) Where(ps ...predicate.TicketComment) *TicketCommentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuthorAgentID sets the "author_agent_id" field.
func (_u *TicketCommentUpdate) SetAuthorAgentID(v string) *TicketCommentUpdate {
	_u.mutation.SetAuthorAgentID(v)
	return _u
}

// SetNillableAuthorAgentID sets the "author_agent_id" field if the given value is not nil.
func (_u *TicketCommentUpdate) SetNillableAuthorAgentID(v *string) *TicketCommentUpdate {
	if v != nil {
		_u.SetAuthorAgentID(*v)
	}
	return _u
}

// ClearAuthorAgentID clears the value of the "author_agent_id" field.
func (_u *TicketCommentUpdate) ClearAuthorAgentID() *TicketCommentUpdate {
	_u.mutation.ClearAuthorAgentID()
	return _u
}

// SetText sets the "text" field.
func (_u *TicketCommentUpdate) SetText(v string) *TicketCommentUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TicketCommentUpdate) SetNillableText(v *string) *TicketCommentUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the TicketCommentMutation object of the builder.
func (_u *TicketCommentUpdate) Mutation() *TicketCommentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketCommentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketCommentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketCommentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketCommentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TicketCommentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ticketcomment.Table, ticketcomment.Columns, sqlgraph.NewFieldSpec(ticketcomment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AuthorAgentID(); ok {
		_spec.SetField(ticketcomment.FieldAuthorAgentID, field.TypeString, value)
	}
	if _u.mutation.AuthorAgentIDCleared() {
		_spec.ClearField(ticketcomment.FieldAuthorAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(ticketcomment.FieldText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketcomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketCommentUpdateOne is the builder for updating a single TicketComment entity.
type TicketCommentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketCommentMutation
}

// SetAuthorAgentID sets the "author_agent_id" field.
func (_u *TicketCommentUpdateOne) SetAuthorAgentID(v string) *TicketCommentUpdateOne {
	_u.mutation.SetAuthorAgentID(v)
	return _u
}

// SetNillableAuthorAgentID sets the "author_agent_id" field if the given value is not nil.
func (_u *TicketCommentUpdateOne) SetNillableAuthorAgentID(v *string) *TicketCommentUpdateOne {
	if v != nil {
		_u.SetAuthorAgentID(*v)
	}
	return _u
}

// ClearAuthorAgentID clears the value of the "author_agent_id" field.
func (_u *TicketCommentUpdateOne) ClearAuthorAgentID() *TicketCommentUpdateOne {
	_u.mutation.ClearAuthorAgentID()
	return _u
}

// SetText sets the "text" field.
func (_u *TicketCommentUpdateOne) SetText(v string) *TicketCommentUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TicketCommentUpdateOne) SetNillableText(v *string) *TicketCommentUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the TicketCommentMutation object of the builder.
func (_u *TicketCommentUpdateOne) Mutation() *TicketCommentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketCommentUpdate builder.
func (_u *TicketCommentUpdateOne) Where(ps ...predicate.TicketComment) *TicketCommentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketCommentUpdateOne) Select(field string, fields ...string) *TicketCommentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TicketComment entity.
func (_u *TicketCommentUpdateOne) Save(ctx context.Context) (*TicketComment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketCommentUpdateOne) SaveX(ctx context.Context) *TicketComment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketCommentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketCommentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TicketCommentUpdateOne) sqlSave(ctx context.Context) (_node *TicketComment, err error) {
	_spec := sqlgraph.NewUpdateSpec(ticketcomment.Table, ticketcomment.Columns, sqlgraph.NewFieldSpec(ticketcomment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TicketComment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketcomment.FieldID)
		for _, f := range fields {
			if !ticketcomment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticketcomment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AuthorAgentID(); ok {
		_spec.SetField(ticketcomment.FieldAuthorAgentID, field.TypeString, value)
	}
	if _u.mutation.AuthorAgentIDCleared() {
		_spec.ClearField(ticketcomment.FieldAuthorAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(ticketcomment.FieldText, field.TypeString, value)
	}
	_node = &TicketComment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketcomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

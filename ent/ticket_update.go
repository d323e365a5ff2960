// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdate) SetTitle(v string) *TicketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTitle(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTicketType sets the "ticket_type" field.
func (_u *TicketUpdate) SetTicketType(v string) *TicketUpdate {
	_u.mutation.SetTicketType(v)
	return _u
}

// SetNillableTicketType sets the "ticket_type" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTicketType(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTicketType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdate) SetStatus(v string) *TicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatus(v *string) *TicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdate) SetPriority(v ticket.Priority) *TicketUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePriority(v *ticket.Priority) *TicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_u *TicketUpdate) SetCreatedByAgentID(v string) *TicketUpdate {
	_u.mutation.SetCreatedByAgentID(v)
	return _u
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCreatedByAgentID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetCreatedByAgentID(*v)
	}
	return _u
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (_u *TicketUpdate) ClearCreatedByAgentID() *TicketUpdate {
	_u.mutation.ClearCreatedByAgentID()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *TicketUpdate) SetResolved(v bool) *TicketUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableResolved(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolutionComment sets the "resolution_comment" field.
func (_u *TicketUpdate) SetResolutionComment(v string) *TicketUpdate {
	_u.mutation.SetResolutionComment(v)
	return _u
}

// SetNillableResolutionComment sets the "resolution_comment" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableResolutionComment(v *string) *TicketUpdate {
	if v != nil {
		_u.SetResolutionComment(*v)
	}
	return _u
}

// ClearResolutionComment clears the value of the "resolution_comment" field.
func (_u *TicketUpdate) ClearResolutionComment() *TicketUpdate {
	_u.mutation.ClearResolutionComment()
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *TicketUpdate) SetApprovalStatus(v ticket.ApprovalStatus) *TicketUpdate {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableApprovalStatus(v *ticket.ApprovalStatus) *TicketUpdate {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetTitleEmbedding sets the "title_embedding" field.
func (_u *TicketUpdate) SetTitleEmbedding(v []float32) *TicketUpdate {
	_u.mutation.SetTitleEmbedding(v)
	return _u
}

// AppendTitleEmbedding appends value to the "title_embedding" field.
func (_u *TicketUpdate) AppendTitleEmbedding(v []float32) *TicketUpdate {
	_u.mutation.AppendTitleEmbedding(v)
	return _u
}

// ClearTitleEmbedding clears the value of the "title_embedding" field.
func (_u *TicketUpdate) ClearTitleEmbedding() *TicketUpdate {
	_u.mutation.ClearTitleEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := ticket.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.approval_status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.workflow"`)
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TicketType(); ok {
		_spec.SetField(ticket.FieldTicketType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedByAgentID(); ok {
		_spec.SetField(ticket.FieldCreatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentIDCleared() {
		_spec.ClearField(ticket.FieldCreatedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(ticket.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolutionComment(); ok {
		_spec.SetField(ticket.FieldResolutionComment, field.TypeString, value)
	}
	if _u.mutation.ResolutionCommentCleared() {
		_spec.ClearField(ticket.FieldResolutionComment, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(ticket.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TitleEmbedding(); ok {
		_spec.SetField(ticket.FieldTitleEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitleEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldTitleEmbedding, value)
		})
	}
	if _u.mutation.TitleEmbeddingCleared() {
		_spec.ClearField(ticket.FieldTitleEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetTitle sets the "title" field.
func (_u *TicketUpdateOne) SetTitle(v string) *TicketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTitle(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTicketType sets the "ticket_type" field.
func (_u *TicketUpdateOne) SetTicketType(v string) *TicketUpdateOne {
	_u.mutation.SetTicketType(v)
	return _u
}

// SetNillableTicketType sets the "ticket_type" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTicketType(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTicketType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdateOne) SetStatus(v string) *TicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatus(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdateOne) SetPriority(v ticket.Priority) *TicketUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePriority(v *ticket.Priority) *TicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_u *TicketUpdateOne) SetCreatedByAgentID(v string) *TicketUpdateOne {
	_u.mutation.SetCreatedByAgentID(v)
	return _u
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCreatedByAgentID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetCreatedByAgentID(*v)
	}
	return _u
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (_u *TicketUpdateOne) ClearCreatedByAgentID() *TicketUpdateOne {
	_u.mutation.ClearCreatedByAgentID()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *TicketUpdateOne) SetResolved(v bool) *TicketUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableResolved(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolutionComment sets the "resolution_comment" field.
func (_u *TicketUpdateOne) SetResolutionComment(v string) *TicketUpdateOne {
	_u.mutation.SetResolutionComment(v)
	return _u
}

// SetNillableResolutionComment sets the "resolution_comment" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableResolutionComment(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetResolutionComment(*v)
	}
	return _u
}

// ClearResolutionComment clears the value of the "resolution_comment" field.
func (_u *TicketUpdateOne) ClearResolutionComment() *TicketUpdateOne {
	_u.mutation.ClearResolutionComment()
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *TicketUpdateOne) SetApprovalStatus(v ticket.ApprovalStatus) *TicketUpdateOne {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableApprovalStatus(v *ticket.ApprovalStatus) *TicketUpdateOne {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetTitleEmbedding sets the "title_embedding" field.
func (_u *TicketUpdateOne) SetTitleEmbedding(v []float32) *TicketUpdateOne {
	_u.mutation.SetTitleEmbedding(v)
	return _u
}

// AppendTitleEmbedding appends value to the "title_embedding" field.
func (_u *TicketUpdateOne) AppendTitleEmbedding(v []float32) *TicketUpdateOne {
	_u.mutation.AppendTitleEmbedding(v)
	return _u
}

// ClearTitleEmbedding clears the value of the "title_embedding" field.
func (_u *TicketUpdateOne) ClearTitleEmbedding() *TicketUpdateOne {
	_u.mutation.ClearTitleEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := ticket.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.approval_status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.workflow"`)
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TicketType(); ok {
		_spec.SetField(ticket.FieldTicketType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedByAgentID(); ok {
		_spec.SetField(ticket.FieldCreatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentIDCleared() {
		_spec.ClearField(ticket.FieldCreatedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(ticket.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolutionComment(); ok {
		_spec.SetField(ticket.FieldResolutionComment, field.TypeString, value)
	}
	if _u.mutation.ResolutionCommentCleared() {
		_spec.ClearField(ticket.FieldResolutionComment, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(ticket.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TitleEmbedding(); ok {
		_spec.SetField(ticket.FieldTitleEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitleEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldTitleEmbedding, value)
		})
	}
	if _u.mutation.TitleEmbeddingCleared() {
		_spec.ClearField(ticket.FieldTitleEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AgentUpdate) SetTaskID(v string) *AgentUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTaskID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AgentUpdate) ClearTaskID() *AgentUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdate) SetAgentType(v agent.AgentType) *AgentUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentType(v *agent.AgentType) *AgentUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionName sets the "session_name" field.
func (_u *AgentUpdate) SetSessionName(v string) *AgentUpdate {
	_u.mutation.SetSessionName(v)
	return _u
}

// SetNillableSessionName sets the "session_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSessionName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSessionName(*v)
	}
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *AgentUpdate) SetWorktreePath(v string) *AgentUpdate {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableWorktreePath(v *string) *AgentUpdate {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *AgentUpdate) ClearWorktreePath() *AgentUpdate {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *AgentUpdate) SetLastActivity(v time.Time) *AgentUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastActivity(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (_u *AgentUpdate) SetKeptAliveForValidation(v bool) *AgentUpdate {
	_u.mutation.SetKeptAliveForValidation(v)
	return _u
}

// SetNillableKeptAliveForValidation sets the "kept_alive_for_validation" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableKeptAliveForValidation(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetKeptAliveForValidation(*v)
	}
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *AgentUpdate) SetTerminationReason(v string) *AgentUpdate {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTerminationReason(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *AgentUpdate) ClearTerminationReason() *AgentUpdate {
	_u.mutation.ClearTerminationReason()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := agent.ValidateAgentType(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.workflow"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(agent.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(agent.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionName(); ok {
		_spec.SetField(agent.FieldSessionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(agent.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(agent.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(agent.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.KeptAliveForValidation(); ok {
		_spec.SetField(agent.FieldKeptAliveForValidation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(agent.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(agent.FieldTerminationReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetTaskID sets the "task_id" field.
func (_u *AgentUpdateOne) SetTaskID(v string) *AgentUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTaskID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AgentUpdateOne) ClearTaskID() *AgentUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdateOne) SetAgentType(v agent.AgentType) *AgentUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentType(v *agent.AgentType) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionName sets the "session_name" field.
func (_u *AgentUpdateOne) SetSessionName(v string) *AgentUpdateOne {
	_u.mutation.SetSessionName(v)
	return _u
}

// SetNillableSessionName sets the "session_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSessionName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSessionName(*v)
	}
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *AgentUpdateOne) SetWorktreePath(v string) *AgentUpdateOne {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableWorktreePath(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *AgentUpdateOne) ClearWorktreePath() *AgentUpdateOne {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *AgentUpdateOne) SetLastActivity(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastActivity(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (_u *AgentUpdateOne) SetKeptAliveForValidation(v bool) *AgentUpdateOne {
	_u.mutation.SetKeptAliveForValidation(v)
	return _u
}

// SetNillableKeptAliveForValidation sets the "kept_alive_for_validation" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableKeptAliveForValidation(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetKeptAliveForValidation(*v)
	}
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *AgentUpdateOne) SetTerminationReason(v string) *AgentUpdateOne {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTerminationReason(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *AgentUpdateOne) ClearTerminationReason() *AgentUpdateOne {
	_u.mutation.ClearTerminationReason()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := agent.ValidateAgentType(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.workflow"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(agent.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(agent.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionName(); ok {
		_spec.SetField(agent.FieldSessionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(agent.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(agent.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(agent.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.KeptAliveForValidation(); ok {
		_spec.SetField(agent.FieldKeptAliveForValidation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(agent.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(agent.FieldTerminationReason, field.TypeString)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

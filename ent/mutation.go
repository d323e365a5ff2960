// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/ent/ticketblock"
	"github.com/hephaestus-ai/hephaestus/ent/ticketcomment"
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent                = "Agent"
	TypeConductorAnalysis    = "ConductorAnalysis"
	TypeDiagnosticRun        = "DiagnosticRun"
	TypeGuardianAnalysis     = "GuardianAnalysis"
	TypePhase                = "Phase"
	TypeSteeringIntervention = "SteeringIntervention"
	TypeTask                 = "Task"
	TypeTaskResult           = "TaskResult"
	TypeTicket               = "Ticket"
	TypeTicketBlock          = "TicketBlock"
	TypeTicketComment        = "TicketComment"
	TypeValidationReview     = "ValidationReview"
	TypeWorkflow             = "Workflow"
	TypeWorkflowResult       = "WorkflowResult"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	task_id                   *string
	agent_type                *agent.AgentType
	status                    *agent.Status
	session_name              *string
	worktree_path             *string
	created_at                *time.Time
	last_activity             *time.Time
	kept_alive_for_validation *bool
	termination_reason        *string
	clearedFields             map[string]struct{}
	workflow                  *string
	clearedworkflow           bool
	done                      bool
	oldValue                  func(context.Context) (*Agent, error)
	predicates                []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *AgentMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *AgentMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *AgentMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetTaskID sets the "task_id" field.
func (m *AgentMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *AgentMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[agent.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *AgentMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, agent.FieldTaskID)
}

// SetAgentType sets the "agent_type" field.
func (m *AgentMutation) SetAgentType(at agent.AgentType) {
	m.agent_type = &at
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentMutation) AgentType() (r agent.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentType(ctx context.Context) (v agent.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetSessionName sets the "session_name" field.
func (m *AgentMutation) SetSessionName(s string) {
	m.session_name = &s
}

// SessionName returns the value of the "session_name" field in the mutation.
func (m *AgentMutation) SessionName() (r string, exists bool) {
	v := m.session_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionName returns the old "session_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSessionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionName: %w", err)
	}
	return oldValue.SessionName, nil
}

// ResetSessionName resets all changes to the "session_name" field.
func (m *AgentMutation) ResetSessionName() {
	m.session_name = nil
}

// SetWorktreePath sets the "worktree_path" field.
func (m *AgentMutation) SetWorktreePath(s string) {
	m.worktree_path = &s
}

// WorktreePath returns the value of the "worktree_path" field in the mutation.
func (m *AgentMutation) WorktreePath() (r string, exists bool) {
	v := m.worktree_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWorktreePath returns the old "worktree_path" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldWorktreePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorktreePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorktreePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorktreePath: %w", err)
	}
	return oldValue.WorktreePath, nil
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (m *AgentMutation) ClearWorktreePath() {
	m.worktree_path = nil
	m.clearedFields[agent.FieldWorktreePath] = struct{}{}
}

// WorktreePathCleared returns if the "worktree_path" field was cleared in this mutation.
func (m *AgentMutation) WorktreePathCleared() bool {
	_, ok := m.clearedFields[agent.FieldWorktreePath]
	return ok
}

// ResetWorktreePath resets all changes to the "worktree_path" field.
func (m *AgentMutation) ResetWorktreePath() {
	m.worktree_path = nil
	delete(m.clearedFields, agent.FieldWorktreePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastActivity sets the "last_activity" field.
func (m *AgentMutation) SetLastActivity(t time.Time) {
	m.last_activity = &t
}

// LastActivity returns the value of the "last_activity" field in the mutation.
func (m *AgentMutation) LastActivity() (r time.Time, exists bool) {
	v := m.last_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivity returns the old "last_activity" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastActivity(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivity: %w", err)
	}
	return oldValue.LastActivity, nil
}

// ResetLastActivity resets all changes to the "last_activity" field.
func (m *AgentMutation) ResetLastActivity() {
	m.last_activity = nil
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (m *AgentMutation) SetKeptAliveForValidation(b bool) {
	m.kept_alive_for_validation = &b
}

// KeptAliveForValidation returns the value of the "kept_alive_for_validation" field in the mutation.
func (m *AgentMutation) KeptAliveForValidation() (r bool, exists bool) {
	v := m.kept_alive_for_validation
	if v == nil {
		return
	}
	return *v, true
}

// OldKeptAliveForValidation returns the old "kept_alive_for_validation" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldKeptAliveForValidation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeptAliveForValidation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeptAliveForValidation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeptAliveForValidation: %w", err)
	}
	return oldValue.KeptAliveForValidation, nil
}

// ResetKeptAliveForValidation resets all changes to the "kept_alive_for_validation" field.
func (m *AgentMutation) ResetKeptAliveForValidation() {
	m.kept_alive_for_validation = nil
}

// SetTerminationReason sets the "termination_reason" field.
func (m *AgentMutation) SetTerminationReason(s string) {
	m.termination_reason = &s
}

// TerminationReason returns the value of the "termination_reason" field in the mutation.
func (m *AgentMutation) TerminationReason() (r string, exists bool) {
	v := m.termination_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationReason returns the old "termination_reason" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTerminationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationReason: %w", err)
	}
	return oldValue.TerminationReason, nil
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (m *AgentMutation) ClearTerminationReason() {
	m.termination_reason = nil
	m.clearedFields[agent.FieldTerminationReason] = struct{}{}
}

// TerminationReasonCleared returns if the "termination_reason" field was cleared in this mutation.
func (m *AgentMutation) TerminationReasonCleared() bool {
	_, ok := m.clearedFields[agent.FieldTerminationReason]
	return ok
}

// ResetTerminationReason resets all changes to the "termination_reason" field.
func (m *AgentMutation) ResetTerminationReason() {
	m.termination_reason = nil
	delete(m.clearedFields, agent.FieldTerminationReason)
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *AgentMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[agent.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *AgentMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *AgentMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workflow != nil {
		fields = append(fields, agent.FieldWorkflowID)
	}
	if m.task_id != nil {
		fields = append(fields, agent.FieldTaskID)
	}
	if m.agent_type != nil {
		fields = append(fields, agent.FieldAgentType)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.session_name != nil {
		fields = append(fields, agent.FieldSessionName)
	}
	if m.worktree_path != nil {
		fields = append(fields, agent.FieldWorktreePath)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.last_activity != nil {
		fields = append(fields, agent.FieldLastActivity)
	}
	if m.kept_alive_for_validation != nil {
		fields = append(fields, agent.FieldKeptAliveForValidation)
	}
	if m.termination_reason != nil {
		fields = append(fields, agent.FieldTerminationReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldWorkflowID:
		return m.WorkflowID()
	case agent.FieldTaskID:
		return m.TaskID()
	case agent.FieldAgentType:
		return m.AgentType()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldSessionName:
		return m.SessionName()
	case agent.FieldWorktreePath:
		return m.WorktreePath()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldLastActivity:
		return m.LastActivity()
	case agent.FieldKeptAliveForValidation:
		return m.KeptAliveForValidation()
	case agent.FieldTerminationReason:
		return m.TerminationReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case agent.FieldTaskID:
		return m.OldTaskID(ctx)
	case agent.FieldAgentType:
		return m.OldAgentType(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldSessionName:
		return m.OldSessionName(ctx)
	case agent.FieldWorktreePath:
		return m.OldWorktreePath(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldLastActivity:
		return m.OldLastActivity(ctx)
	case agent.FieldKeptAliveForValidation:
		return m.OldKeptAliveForValidation(ctx)
	case agent.FieldTerminationReason:
		return m.OldTerminationReason(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case agent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agent.FieldAgentType:
		v, ok := value.(agent.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldSessionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionName(v)
		return nil
	case agent.FieldWorktreePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorktreePath(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldLastActivity:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivity(v)
		return nil
	case agent.FieldKeptAliveForValidation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeptAliveForValidation(v)
		return nil
	case agent.FieldTerminationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationReason(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldTaskID) {
		fields = append(fields, agent.FieldTaskID)
	}
	if m.FieldCleared(agent.FieldWorktreePath) {
		fields = append(fields, agent.FieldWorktreePath)
	}
	if m.FieldCleared(agent.FieldTerminationReason) {
		fields = append(fields, agent.FieldTerminationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldTaskID:
		m.ClearTaskID()
		return nil
	case agent.FieldWorktreePath:
		m.ClearWorktreePath()
		return nil
	case agent.FieldTerminationReason:
		m.ClearTerminationReason()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case agent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agent.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldSessionName:
		m.ResetSessionName()
		return nil
	case agent.FieldWorktreePath:
		m.ResetWorktreePath()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldLastActivity:
		m.ResetLastActivity()
		return nil
	case agent.FieldKeptAliveForValidation:
		m.ResetKeptAliveForValidation()
		return nil
	case agent.FieldTerminationReason:
		m.ResetTerminationReason()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, agent.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, agent.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// ConductorAnalysisMutation represents an operation that mutates the ConductorAnalysis nodes in the graph.
type ConductorAnalysisMutation struct {
	config
	op                                Op
	typ                               string
	id                                *string
	timestamp                         *time.Time
	coherence_score                   *float64
	addcoherence_score                *float64
	num_agents                        *int
	addnum_agents                     *int
	system_status                     *string
	recommendations                   *string
	detected_duplicates               *[]map[string]interface{}
	appenddetected_duplicates         []map[string]interface{}
	termination_recommendations       *[]string
	appendtermination_recommendations []string
	clearedFields                     map[string]struct{}
	done                              bool
	oldValue                          func(context.Context) (*ConductorAnalysis, error)
	predicates                        []predicate.ConductorAnalysis
}

var _ ent.Mutation = (*ConductorAnalysisMutation)(nil)

// conductoranalysisOption allows management of the mutation configuration using functional options.
type conductoranalysisOption func(*ConductorAnalysisMutation)

// newConductorAnalysisMutation creates new mutation for the ConductorAnalysis entity.
func newConductorAnalysisMutation(c config, op Op, opts ...conductoranalysisOption) *ConductorAnalysisMutation {
	m := &ConductorAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeConductorAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConductorAnalysisID sets the ID field of the mutation.
func withConductorAnalysisID(id string) conductoranalysisOption {
	return func(m *ConductorAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *ConductorAnalysis
		)
		m.oldValue = func(ctx context.Context) (*ConductorAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConductorAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConductorAnalysis sets the old ConductorAnalysis of the mutation.
func withConductorAnalysis(node *ConductorAnalysis) conductoranalysisOption {
	return func(m *ConductorAnalysisMutation) {
		m.oldValue = func(context.Context) (*ConductorAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConductorAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConductorAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConductorAnalysis entities.
func (m *ConductorAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConductorAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConductorAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConductorAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *ConductorAnalysisMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ConductorAnalysisMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ConductorAnalysis entity.
// If the ConductorAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorAnalysisMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ConductorAnalysisMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCoherenceScore sets the "coherence_score" field.
func (m *ConductorAnalysisMutation) SetCoherenceScore(f float64) {
	m.coherence_score = &f
	m.addcoherence_score = nil
}

// CoherenceScore returns the value of the "coherence_score" field in the mutation.
func (m *ConductorAnalysisMutation) CoherenceScore() (r float64, exists bool) {
	v := m.coherence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCoherenceScore returns the old "coherence_score" field's value of the ConductorAnalysis entity.
// If the ConductorAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorAnalysisMutation) OldCoherenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoherenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoherenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoherenceScore: %w", err)
	}
	return oldValue.CoherenceScore, nil
}

// AddCoherenceScore adds f to the "coherence_score" field.
func (m *ConductorAnalysisMutation) AddCoherenceScore(f float64) {
	if m.addcoherence_score != nil {
		*m.addcoherence_score += f
	} else {
		m.addcoherence_score = &f
	}
}

// AddedCoherenceScore returns the value that was added to the "coherence_score" field in this mutation.
func (m *ConductorAnalysisMutation) AddedCoherenceScore() (r float64, exists bool) {
	v := m.addcoherence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoherenceScore resets all changes to the "coherence_score" field.
func (m *ConductorAnalysisMutation) ResetCoherenceScore() {
	m.coherence_score = nil
	m.addcoherence_score = nil
}

// SetNumAgents sets the "num_agents" field.
func (m *ConductorAnalysisMutation) SetNumAgents(i int) {
	m.num_agents = &i
	m.addnum_agents = nil
}

// NumAgents returns the value of the "num_agents" field in the mutation.
func (m *ConductorAnalysisMutation) NumAgents() (r int, exists bool) {
	v := m.num_agents
	if v == nil {
		return
	}
	return *v, true
}

// OldNumAgents returns the old "num_agents" field's value of the ConductorAnalysis entity.
// If the ConductorAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorAnalysisMutation) OldNumAgents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumAgents: %w", err)
	}
	return oldValue.NumAgents, nil
}

// AddNumAgents adds i to the "num_agents" field.
func (m *ConductorAnalysisMutation) AddNumAgents(i int) {
	if m.addnum_agents != nil {
		*m.addnum_agents += i
	} else {
		m.addnum_agents = &i
	}
}

// AddedNumAgents returns the value that was added to the "num_agents" field in this mutation.
func (m *ConductorAnalysisMutation) AddedNumAgents() (r int, exists bool) {
	v := m.addnum_agents
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumAgents resets all changes to the "num_agents" field.
func (m *ConductorAnalysisMutation) ResetNumAgents() {
	m.num_agents = nil
	m.addnum_agents = nil
}

// SetSystemStatus sets the "system_status" field.
func (m *ConductorAnalysisMutation) SetSystemStatus(s string) {
	m.system_status = &s
}

// SystemStatus returns the value of the "system_status" field in the mutation.
func (m *ConductorAnalysisMutation) SystemStatus() (r string, exists bool) {
	v := m.system_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemStatus returns the old "system_status" field's value of the ConductorAnalysis entity.
// If the ConductorAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorAnalysisMutation) OldSystemStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemStatus: %w", err)
	}
	return oldValue.SystemStatus, nil
}

// ResetSystemStatus resets all changes to the "system_status" field.
func (m *ConductorAnalysisMutation) ResetSystemStatus() {
	m.system_status = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *ConductorAnalysisMutation) SetRecommendations(s string) {
	m.recommendations = &s
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *ConductorAnalysisMutation) Recommendations() (r string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the ConductorAnalysis entity.
// If the ConductorAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorAnalysisMutation) OldRecommendations(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *ConductorAnalysisMutation) ClearRecommendations() {
	m.recommendations = nil
	m.clearedFields[conductoranalysis.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *ConductorAnalysisMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[conductoranalysis.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *ConductorAnalysisMutation) ResetRecommendations() {
	m.recommendations = nil
	delete(m.clearedFields, conductoranalysis.FieldRecommendations)
}

// SetDetectedDuplicates sets the "detected_duplicates" field.
func (m *ConductorAnalysisMutation) SetDetectedDuplicates(value []map[string]interface{}) {
	m.detected_duplicates = &value
	m.appenddetected_duplicates = nil
}

// DetectedDuplicates returns the value of the "detected_duplicates" field in the mutation.
func (m *ConductorAnalysisMutation) DetectedDuplicates() (r []map[string]interface{}, exists bool) {
	v := m.detected_duplicates
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedDuplicates returns the old "detected_duplicates" field's value of the ConductorAnalysis entity.
// If the ConductorAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorAnalysisMutation) OldDetectedDuplicates(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedDuplicates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedDuplicates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedDuplicates: %w", err)
	}
	return oldValue.DetectedDuplicates, nil
}

// AppendDetectedDuplicates adds value to the "detected_duplicates" field.
func (m *ConductorAnalysisMutation) AppendDetectedDuplicates(value []map[string]interface{}) {
	m.appenddetected_duplicates = append(m.appenddetected_duplicates, value...)
}

// AppendedDetectedDuplicates returns the list of values that were appended to the "detected_duplicates" field in this mutation.
func (m *ConductorAnalysisMutation) AppendedDetectedDuplicates() ([]map[string]interface{}, bool) {
	if len(m.appenddetected_duplicates) == 0 {
		return nil, false
	}
	return m.appenddetected_duplicates, true
}

// ClearDetectedDuplicates clears the value of the "detected_duplicates" field.
func (m *ConductorAnalysisMutation) ClearDetectedDuplicates() {
	m.detected_duplicates = nil
	m.appenddetected_duplicates = nil
	m.clearedFields[conductoranalysis.FieldDetectedDuplicates] = struct{}{}
}

// DetectedDuplicatesCleared returns if the "detected_duplicates" field was cleared in this mutation.
func (m *ConductorAnalysisMutation) DetectedDuplicatesCleared() bool {
	_, ok := m.clearedFields[conductoranalysis.FieldDetectedDuplicates]
	return ok
}

// ResetDetectedDuplicates resets all changes to the "detected_duplicates" field.
func (m *ConductorAnalysisMutation) ResetDetectedDuplicates() {
	m.detected_duplicates = nil
	m.appenddetected_duplicates = nil
	delete(m.clearedFields, conductoranalysis.FieldDetectedDuplicates)
}

// SetTerminationRecommendations sets the "termination_recommendations" field.
func (m *ConductorAnalysisMutation) SetTerminationRecommendations(s []string) {
	m.termination_recommendations = &s
	m.appendtermination_recommendations = nil
}

// TerminationRecommendations returns the value of the "termination_recommendations" field in the mutation.
func (m *ConductorAnalysisMutation) TerminationRecommendations() (r []string, exists bool) {
	v := m.termination_recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationRecommendations returns the old "termination_recommendations" field's value of the ConductorAnalysis entity.
// If the ConductorAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConductorAnalysisMutation) OldTerminationRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationRecommendations: %w", err)
	}
	return oldValue.TerminationRecommendations, nil
}

// AppendTerminationRecommendations adds s to the "termination_recommendations" field.
func (m *ConductorAnalysisMutation) AppendTerminationRecommendations(s []string) {
	m.appendtermination_recommendations = append(m.appendtermination_recommendations, s...)
}

// AppendedTerminationRecommendations returns the list of values that were appended to the "termination_recommendations" field in this mutation.
func (m *ConductorAnalysisMutation) AppendedTerminationRecommendations() ([]string, bool) {
	if len(m.appendtermination_recommendations) == 0 {
		return nil, false
	}
	return m.appendtermination_recommendations, true
}

// ClearTerminationRecommendations clears the value of the "termination_recommendations" field.
func (m *ConductorAnalysisMutation) ClearTerminationRecommendations() {
	m.termination_recommendations = nil
	m.appendtermination_recommendations = nil
	m.clearedFields[conductoranalysis.FieldTerminationRecommendations] = struct{}{}
}

// TerminationRecommendationsCleared returns if the "termination_recommendations" field was cleared in this mutation.
func (m *ConductorAnalysisMutation) TerminationRecommendationsCleared() bool {
	_, ok := m.clearedFields[conductoranalysis.FieldTerminationRecommendations]
	return ok
}

// ResetTerminationRecommendations resets all changes to the "termination_recommendations" field.
func (m *ConductorAnalysisMutation) ResetTerminationRecommendations() {
	m.termination_recommendations = nil
	m.appendtermination_recommendations = nil
	delete(m.clearedFields, conductoranalysis.FieldTerminationRecommendations)
}

// Where appends a list predicates to the ConductorAnalysisMutation builder.
func (m *ConductorAnalysisMutation) Where(ps ...predicate.ConductorAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConductorAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConductorAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConductorAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConductorAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConductorAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConductorAnalysis).
func (m *ConductorAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConductorAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.timestamp != nil {
		fields = append(fields, conductoranalysis.FieldTimestamp)
	}
	if m.coherence_score != nil {
		fields = append(fields, conductoranalysis.FieldCoherenceScore)
	}
	if m.num_agents != nil {
		fields = append(fields, conductoranalysis.FieldNumAgents)
	}
	if m.system_status != nil {
		fields = append(fields, conductoranalysis.FieldSystemStatus)
	}
	if m.recommendations != nil {
		fields = append(fields, conductoranalysis.FieldRecommendations)
	}
	if m.detected_duplicates != nil {
		fields = append(fields, conductoranalysis.FieldDetectedDuplicates)
	}
	if m.termination_recommendations != nil {
		fields = append(fields, conductoranalysis.FieldTerminationRecommendations)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConductorAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conductoranalysis.FieldTimestamp:
		return m.Timestamp()
	case conductoranalysis.FieldCoherenceScore:
		return m.CoherenceScore()
	case conductoranalysis.FieldNumAgents:
		return m.NumAgents()
	case conductoranalysis.FieldSystemStatus:
		return m.SystemStatus()
	case conductoranalysis.FieldRecommendations:
		return m.Recommendations()
	case conductoranalysis.FieldDetectedDuplicates:
		return m.DetectedDuplicates()
	case conductoranalysis.FieldTerminationRecommendations:
		return m.TerminationRecommendations()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConductorAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conductoranalysis.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case conductoranalysis.FieldCoherenceScore:
		return m.OldCoherenceScore(ctx)
	case conductoranalysis.FieldNumAgents:
		return m.OldNumAgents(ctx)
	case conductoranalysis.FieldSystemStatus:
		return m.OldSystemStatus(ctx)
	case conductoranalysis.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case conductoranalysis.FieldDetectedDuplicates:
		return m.OldDetectedDuplicates(ctx)
	case conductoranalysis.FieldTerminationRecommendations:
		return m.OldTerminationRecommendations(ctx)
	}
	return nil, fmt.Errorf("unknown ConductorAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConductorAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conductoranalysis.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case conductoranalysis.FieldCoherenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoherenceScore(v)
		return nil
	case conductoranalysis.FieldNumAgents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumAgents(v)
		return nil
	case conductoranalysis.FieldSystemStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemStatus(v)
		return nil
	case conductoranalysis.FieldRecommendations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case conductoranalysis.FieldDetectedDuplicates:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedDuplicates(v)
		return nil
	case conductoranalysis.FieldTerminationRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationRecommendations(v)
		return nil
	}
	return fmt.Errorf("unknown ConductorAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConductorAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addcoherence_score != nil {
		fields = append(fields, conductoranalysis.FieldCoherenceScore)
	}
	if m.addnum_agents != nil {
		fields = append(fields, conductoranalysis.FieldNumAgents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConductorAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conductoranalysis.FieldCoherenceScore:
		return m.AddedCoherenceScore()
	case conductoranalysis.FieldNumAgents:
		return m.AddedNumAgents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConductorAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conductoranalysis.FieldCoherenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoherenceScore(v)
		return nil
	case conductoranalysis.FieldNumAgents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumAgents(v)
		return nil
	}
	return fmt.Errorf("unknown ConductorAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConductorAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conductoranalysis.FieldRecommendations) {
		fields = append(fields, conductoranalysis.FieldRecommendations)
	}
	if m.FieldCleared(conductoranalysis.FieldDetectedDuplicates) {
		fields = append(fields, conductoranalysis.FieldDetectedDuplicates)
	}
	if m.FieldCleared(conductoranalysis.FieldTerminationRecommendations) {
		fields = append(fields, conductoranalysis.FieldTerminationRecommendations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConductorAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConductorAnalysisMutation) ClearField(name string) error {
	switch name {
	case conductoranalysis.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case conductoranalysis.FieldDetectedDuplicates:
		m.ClearDetectedDuplicates()
		return nil
	case conductoranalysis.FieldTerminationRecommendations:
		m.ClearTerminationRecommendations()
		return nil
	}
	return fmt.Errorf("unknown ConductorAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConductorAnalysisMutation) ResetField(name string) error {
	switch name {
	case conductoranalysis.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case conductoranalysis.FieldCoherenceScore:
		m.ResetCoherenceScore()
		return nil
	case conductoranalysis.FieldNumAgents:
		m.ResetNumAgents()
		return nil
	case conductoranalysis.FieldSystemStatus:
		m.ResetSystemStatus()
		return nil
	case conductoranalysis.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case conductoranalysis.FieldDetectedDuplicates:
		m.ResetDetectedDuplicates()
		return nil
	case conductoranalysis.FieldTerminationRecommendations:
		m.ResetTerminationRecommendations()
		return nil
	}
	return fmt.Errorf("unknown ConductorAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConductorAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConductorAnalysisMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConductorAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConductorAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConductorAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConductorAnalysisMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConductorAnalysisMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConductorAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConductorAnalysisMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConductorAnalysis edge %s", name)
}

// DiagnosticRunMutation represents an operation that mutates the DiagnosticRun nodes in the graph.
type DiagnosticRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	triggered_at            *time.Time
	trigger_stats           *map[string]interface{}
	tasks_created_ids       *[]string
	appendtasks_created_ids []string
	diagnosis               *string
	status                  *diagnosticrun.Status
	clearedFields           map[string]struct{}
	workflow                *string
	clearedworkflow         bool
	done                    bool
	oldValue                func(context.Context) (*DiagnosticRun, error)
	predicates              []predicate.DiagnosticRun
}

var _ ent.Mutation = (*DiagnosticRunMutation)(nil)

// diagnosticrunOption allows management of the mutation configuration using functional options.
type diagnosticrunOption func(*DiagnosticRunMutation)

// newDiagnosticRunMutation creates new mutation for the DiagnosticRun entity.
func newDiagnosticRunMutation(c config, op Op, opts ...diagnosticrunOption) *DiagnosticRunMutation {
	m := &DiagnosticRunMutation{
		config:        c,
		op:            op,
		typ:           TypeDiagnosticRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiagnosticRunID sets the ID field of the mutation.
func withDiagnosticRunID(id string) diagnosticrunOption {
	return func(m *DiagnosticRunMutation) {
		var (
			err   error
			once  sync.Once
			value *DiagnosticRun
		)
		m.oldValue = func(ctx context.Context) (*DiagnosticRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DiagnosticRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiagnosticRun sets the old DiagnosticRun of the mutation.
func withDiagnosticRun(node *DiagnosticRun) diagnosticrunOption {
	return func(m *DiagnosticRunMutation) {
		m.oldValue = func(context.Context) (*DiagnosticRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiagnosticRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiagnosticRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DiagnosticRun entities.
func (m *DiagnosticRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiagnosticRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiagnosticRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DiagnosticRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *DiagnosticRunMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *DiagnosticRunMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *DiagnosticRunMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetTriggeredAt sets the "triggered_at" field.
func (m *DiagnosticRunMutation) SetTriggeredAt(t time.Time) {
	m.triggered_at = &t
}

// TriggeredAt returns the value of the "triggered_at" field in the mutation.
func (m *DiagnosticRunMutation) TriggeredAt() (r time.Time, exists bool) {
	v := m.triggered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredAt returns the old "triggered_at" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTriggeredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredAt: %w", err)
	}
	return oldValue.TriggeredAt, nil
}

// ResetTriggeredAt resets all changes to the "triggered_at" field.
func (m *DiagnosticRunMutation) ResetTriggeredAt() {
	m.triggered_at = nil
}

// SetTriggerStats sets the "trigger_stats" field.
func (m *DiagnosticRunMutation) SetTriggerStats(value map[string]interface{}) {
	m.trigger_stats = &value
}

// TriggerStats returns the value of the "trigger_stats" field in the mutation.
func (m *DiagnosticRunMutation) TriggerStats() (r map[string]interface{}, exists bool) {
	v := m.trigger_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerStats returns the old "trigger_stats" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTriggerStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerStats: %w", err)
	}
	return oldValue.TriggerStats, nil
}

// ClearTriggerStats clears the value of the "trigger_stats" field.
func (m *DiagnosticRunMutation) ClearTriggerStats() {
	m.trigger_stats = nil
	m.clearedFields[diagnosticrun.FieldTriggerStats] = struct{}{}
}

// TriggerStatsCleared returns if the "trigger_stats" field was cleared in this mutation.
func (m *DiagnosticRunMutation) TriggerStatsCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldTriggerStats]
	return ok
}

// ResetTriggerStats resets all changes to the "trigger_stats" field.
func (m *DiagnosticRunMutation) ResetTriggerStats() {
	m.trigger_stats = nil
	delete(m.clearedFields, diagnosticrun.FieldTriggerStats)
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) SetTasksCreatedIds(s []string) {
	m.tasks_created_ids = &s
	m.appendtasks_created_ids = nil
}

// TasksCreatedIds returns the value of the "tasks_created_ids" field in the mutation.
func (m *DiagnosticRunMutation) TasksCreatedIds() (r []string, exists bool) {
	v := m.tasks_created_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCreatedIds returns the old "tasks_created_ids" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldTasksCreatedIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCreatedIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCreatedIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCreatedIds: %w", err)
	}
	return oldValue.TasksCreatedIds, nil
}

// AppendTasksCreatedIds adds s to the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) AppendTasksCreatedIds(s []string) {
	m.appendtasks_created_ids = append(m.appendtasks_created_ids, s...)
}

// AppendedTasksCreatedIds returns the list of values that were appended to the "tasks_created_ids" field in this mutation.
func (m *DiagnosticRunMutation) AppendedTasksCreatedIds() ([]string, bool) {
	if len(m.appendtasks_created_ids) == 0 {
		return nil, false
	}
	return m.appendtasks_created_ids, true
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) ClearTasksCreatedIds() {
	m.tasks_created_ids = nil
	m.appendtasks_created_ids = nil
	m.clearedFields[diagnosticrun.FieldTasksCreatedIds] = struct{}{}
}

// TasksCreatedIdsCleared returns if the "tasks_created_ids" field was cleared in this mutation.
func (m *DiagnosticRunMutation) TasksCreatedIdsCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldTasksCreatedIds]
	return ok
}

// ResetTasksCreatedIds resets all changes to the "tasks_created_ids" field.
func (m *DiagnosticRunMutation) ResetTasksCreatedIds() {
	m.tasks_created_ids = nil
	m.appendtasks_created_ids = nil
	delete(m.clearedFields, diagnosticrun.FieldTasksCreatedIds)
}

// SetDiagnosis sets the "diagnosis" field.
func (m *DiagnosticRunMutation) SetDiagnosis(s string) {
	m.diagnosis = &s
}

// Diagnosis returns the value of the "diagnosis" field in the mutation.
func (m *DiagnosticRunMutation) Diagnosis() (r string, exists bool) {
	v := m.diagnosis
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosis returns the old "diagnosis" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldDiagnosis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosis: %w", err)
	}
	return oldValue.Diagnosis, nil
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (m *DiagnosticRunMutation) ClearDiagnosis() {
	m.diagnosis = nil
	m.clearedFields[diagnosticrun.FieldDiagnosis] = struct{}{}
}

// DiagnosisCleared returns if the "diagnosis" field was cleared in this mutation.
func (m *DiagnosticRunMutation) DiagnosisCleared() bool {
	_, ok := m.clearedFields[diagnosticrun.FieldDiagnosis]
	return ok
}

// ResetDiagnosis resets all changes to the "diagnosis" field.
func (m *DiagnosticRunMutation) ResetDiagnosis() {
	m.diagnosis = nil
	delete(m.clearedFields, diagnosticrun.FieldDiagnosis)
}

// SetStatus sets the "status" field.
func (m *DiagnosticRunMutation) SetStatus(d diagnosticrun.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DiagnosticRunMutation) Status() (r diagnosticrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DiagnosticRun entity.
// If the DiagnosticRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticRunMutation) OldStatus(ctx context.Context) (v diagnosticrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DiagnosticRunMutation) ResetStatus() {
	m.status = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *DiagnosticRunMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[diagnosticrun.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *DiagnosticRunMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *DiagnosticRunMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *DiagnosticRunMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the DiagnosticRunMutation builder.
func (m *DiagnosticRunMutation) Where(ps ...predicate.DiagnosticRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiagnosticRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiagnosticRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DiagnosticRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiagnosticRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiagnosticRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DiagnosticRun).
func (m *DiagnosticRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiagnosticRunMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workflow != nil {
		fields = append(fields, diagnosticrun.FieldWorkflowID)
	}
	if m.triggered_at != nil {
		fields = append(fields, diagnosticrun.FieldTriggeredAt)
	}
	if m.trigger_stats != nil {
		fields = append(fields, diagnosticrun.FieldTriggerStats)
	}
	if m.tasks_created_ids != nil {
		fields = append(fields, diagnosticrun.FieldTasksCreatedIds)
	}
	if m.diagnosis != nil {
		fields = append(fields, diagnosticrun.FieldDiagnosis)
	}
	if m.status != nil {
		fields = append(fields, diagnosticrun.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiagnosticRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		return m.WorkflowID()
	case diagnosticrun.FieldTriggeredAt:
		return m.TriggeredAt()
	case diagnosticrun.FieldTriggerStats:
		return m.TriggerStats()
	case diagnosticrun.FieldTasksCreatedIds:
		return m.TasksCreatedIds()
	case diagnosticrun.FieldDiagnosis:
		return m.Diagnosis()
	case diagnosticrun.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiagnosticRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case diagnosticrun.FieldTriggeredAt:
		return m.OldTriggeredAt(ctx)
	case diagnosticrun.FieldTriggerStats:
		return m.OldTriggerStats(ctx)
	case diagnosticrun.FieldTasksCreatedIds:
		return m.OldTasksCreatedIds(ctx)
	case diagnosticrun.FieldDiagnosis:
		return m.OldDiagnosis(ctx)
	case diagnosticrun.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown DiagnosticRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosticRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case diagnosticrun.FieldTriggeredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredAt(v)
		return nil
	case diagnosticrun.FieldTriggerStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerStats(v)
		return nil
	case diagnosticrun.FieldTasksCreatedIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCreatedIds(v)
		return nil
	case diagnosticrun.FieldDiagnosis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosis(v)
		return nil
	case diagnosticrun.FieldStatus:
		v, ok := value.(diagnosticrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiagnosticRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiagnosticRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosticRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DiagnosticRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiagnosticRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(diagnosticrun.FieldTriggerStats) {
		fields = append(fields, diagnosticrun.FieldTriggerStats)
	}
	if m.FieldCleared(diagnosticrun.FieldTasksCreatedIds) {
		fields = append(fields, diagnosticrun.FieldTasksCreatedIds)
	}
	if m.FieldCleared(diagnosticrun.FieldDiagnosis) {
		fields = append(fields, diagnosticrun.FieldDiagnosis)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiagnosticRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiagnosticRunMutation) ClearField(name string) error {
	switch name {
	case diagnosticrun.FieldTriggerStats:
		m.ClearTriggerStats()
		return nil
	case diagnosticrun.FieldTasksCreatedIds:
		m.ClearTasksCreatedIds()
		return nil
	case diagnosticrun.FieldDiagnosis:
		m.ClearDiagnosis()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiagnosticRunMutation) ResetField(name string) error {
	switch name {
	case diagnosticrun.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case diagnosticrun.FieldTriggeredAt:
		m.ResetTriggeredAt()
		return nil
	case diagnosticrun.FieldTriggerStats:
		m.ResetTriggerStats()
		return nil
	case diagnosticrun.FieldTasksCreatedIds:
		m.ResetTasksCreatedIds()
		return nil
	case diagnosticrun.FieldDiagnosis:
		m.ResetDiagnosis()
		return nil
	case diagnosticrun.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiagnosticRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, diagnosticrun.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiagnosticRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case diagnosticrun.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiagnosticRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiagnosticRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiagnosticRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, diagnosticrun.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiagnosticRunMutation) EdgeCleared(name string) bool {
	switch name {
	case diagnosticrun.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiagnosticRunMutation) ClearEdge(name string) error {
	switch name {
	case diagnosticrun.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiagnosticRunMutation) ResetEdge(name string) error {
	switch name {
	case diagnosticrun.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticRun edge %s", name)
}

// GuardianAnalysisMutation represents an operation that mutates the GuardianAnalysis nodes in the graph.
type GuardianAnalysisMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	agent_id           *string
	timestamp          *time.Time
	current_phase      *string
	alignment_score    *float64
	addalignment_score *float64
	trajectory_aligned *bool
	trajectory_summary *string
	needs_steering     *bool
	steering_type      *guardiananalysis.SteeringType
	steering_message   *string
	details            *map[string]interface{}
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*GuardianAnalysis, error)
	predicates         []predicate.GuardianAnalysis
}

var _ ent.Mutation = (*GuardianAnalysisMutation)(nil)

// guardiananalysisOption allows management of the mutation configuration using functional options.
type guardiananalysisOption func(*GuardianAnalysisMutation)

// newGuardianAnalysisMutation creates new mutation for the GuardianAnalysis entity.
func newGuardianAnalysisMutation(c config, op Op, opts ...guardiananalysisOption) *GuardianAnalysisMutation {
	m := &GuardianAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeGuardianAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGuardianAnalysisID sets the ID field of the mutation.
func withGuardianAnalysisID(id string) guardiananalysisOption {
	return func(m *GuardianAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *GuardianAnalysis
		)
		m.oldValue = func(ctx context.Context) (*GuardianAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GuardianAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGuardianAnalysis sets the old GuardianAnalysis of the mutation.
func withGuardianAnalysis(node *GuardianAnalysis) guardiananalysisOption {
	return func(m *GuardianAnalysisMutation) {
		m.oldValue = func(context.Context) (*GuardianAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GuardianAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GuardianAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GuardianAnalysis entities.
func (m *GuardianAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GuardianAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GuardianAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GuardianAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *GuardianAnalysisMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *GuardianAnalysisMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *GuardianAnalysisMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *GuardianAnalysisMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GuardianAnalysisMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GuardianAnalysisMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *GuardianAnalysisMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *GuardianAnalysisMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldCurrentPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *GuardianAnalysisMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.clearedFields[guardiananalysis.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *GuardianAnalysisMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[guardiananalysis.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *GuardianAnalysisMutation) ResetCurrentPhase() {
	m.current_phase = nil
	delete(m.clearedFields, guardiananalysis.FieldCurrentPhase)
}

// SetAlignmentScore sets the "alignment_score" field.
func (m *GuardianAnalysisMutation) SetAlignmentScore(f float64) {
	m.alignment_score = &f
	m.addalignment_score = nil
}

// AlignmentScore returns the value of the "alignment_score" field in the mutation.
func (m *GuardianAnalysisMutation) AlignmentScore() (r float64, exists bool) {
	v := m.alignment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAlignmentScore returns the old "alignment_score" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldAlignmentScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlignmentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlignmentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlignmentScore: %w", err)
	}
	return oldValue.AlignmentScore, nil
}

// AddAlignmentScore adds f to the "alignment_score" field.
func (m *GuardianAnalysisMutation) AddAlignmentScore(f float64) {
	if m.addalignment_score != nil {
		*m.addalignment_score += f
	} else {
		m.addalignment_score = &f
	}
}

// AddedAlignmentScore returns the value that was added to the "alignment_score" field in this mutation.
func (m *GuardianAnalysisMutation) AddedAlignmentScore() (r float64, exists bool) {
	v := m.addalignment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAlignmentScore resets all changes to the "alignment_score" field.
func (m *GuardianAnalysisMutation) ResetAlignmentScore() {
	m.alignment_score = nil
	m.addalignment_score = nil
}

// SetTrajectoryAligned sets the "trajectory_aligned" field.
func (m *GuardianAnalysisMutation) SetTrajectoryAligned(b bool) {
	m.trajectory_aligned = &b
}

// TrajectoryAligned returns the value of the "trajectory_aligned" field in the mutation.
func (m *GuardianAnalysisMutation) TrajectoryAligned() (r bool, exists bool) {
	v := m.trajectory_aligned
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectoryAligned returns the old "trajectory_aligned" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldTrajectoryAligned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectoryAligned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectoryAligned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectoryAligned: %w", err)
	}
	return oldValue.TrajectoryAligned, nil
}

// ResetTrajectoryAligned resets all changes to the "trajectory_aligned" field.
func (m *GuardianAnalysisMutation) ResetTrajectoryAligned() {
	m.trajectory_aligned = nil
}

// SetTrajectorySummary sets the "trajectory_summary" field.
func (m *GuardianAnalysisMutation) SetTrajectorySummary(s string) {
	m.trajectory_summary = &s
}

// TrajectorySummary returns the value of the "trajectory_summary" field in the mutation.
func (m *GuardianAnalysisMutation) TrajectorySummary() (r string, exists bool) {
	v := m.trajectory_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectorySummary returns the old "trajectory_summary" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldTrajectorySummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectorySummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectorySummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectorySummary: %w", err)
	}
	return oldValue.TrajectorySummary, nil
}

// ResetTrajectorySummary resets all changes to the "trajectory_summary" field.
func (m *GuardianAnalysisMutation) ResetTrajectorySummary() {
	m.trajectory_summary = nil
}

// SetNeedsSteering sets the "needs_steering" field.
func (m *GuardianAnalysisMutation) SetNeedsSteering(b bool) {
	m.needs_steering = &b
}

// NeedsSteering returns the value of the "needs_steering" field in the mutation.
func (m *GuardianAnalysisMutation) NeedsSteering() (r bool, exists bool) {
	v := m.needs_steering
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsSteering returns the old "needs_steering" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldNeedsSteering(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsSteering is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsSteering requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsSteering: %w", err)
	}
	return oldValue.NeedsSteering, nil
}

// ResetNeedsSteering resets all changes to the "needs_steering" field.
func (m *GuardianAnalysisMutation) ResetNeedsSteering() {
	m.needs_steering = nil
}

// SetSteeringType sets the "steering_type" field.
func (m *GuardianAnalysisMutation) SetSteeringType(gt guardiananalysis.SteeringType) {
	m.steering_type = &gt
}

// SteeringType returns the value of the "steering_type" field in the mutation.
func (m *GuardianAnalysisMutation) SteeringType() (r guardiananalysis.SteeringType, exists bool) {
	v := m.steering_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSteeringType returns the old "steering_type" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldSteeringType(ctx context.Context) (v guardiananalysis.SteeringType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteeringType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteeringType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteeringType: %w", err)
	}
	return oldValue.SteeringType, nil
}

// ResetSteeringType resets all changes to the "steering_type" field.
func (m *GuardianAnalysisMutation) ResetSteeringType() {
	m.steering_type = nil
}

// SetSteeringMessage sets the "steering_message" field.
func (m *GuardianAnalysisMutation) SetSteeringMessage(s string) {
	m.steering_message = &s
}

// SteeringMessage returns the value of the "steering_message" field in the mutation.
func (m *GuardianAnalysisMutation) SteeringMessage() (r string, exists bool) {
	v := m.steering_message
	if v == nil {
		return
	}
	return *v, true
}

// OldSteeringMessage returns the old "steering_message" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldSteeringMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteeringMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteeringMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteeringMessage: %w", err)
	}
	return oldValue.SteeringMessage, nil
}

// ClearSteeringMessage clears the value of the "steering_message" field.
func (m *GuardianAnalysisMutation) ClearSteeringMessage() {
	m.steering_message = nil
	m.clearedFields[guardiananalysis.FieldSteeringMessage] = struct{}{}
}

// SteeringMessageCleared returns if the "steering_message" field was cleared in this mutation.
func (m *GuardianAnalysisMutation) SteeringMessageCleared() bool {
	_, ok := m.clearedFields[guardiananalysis.FieldSteeringMessage]
	return ok
}

// ResetSteeringMessage resets all changes to the "steering_message" field.
func (m *GuardianAnalysisMutation) ResetSteeringMessage() {
	m.steering_message = nil
	delete(m.clearedFields, guardiananalysis.FieldSteeringMessage)
}

// SetDetails sets the "details" field.
func (m *GuardianAnalysisMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *GuardianAnalysisMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the GuardianAnalysis entity.
// If the GuardianAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianAnalysisMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *GuardianAnalysisMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[guardiananalysis.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *GuardianAnalysisMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[guardiananalysis.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *GuardianAnalysisMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, guardiananalysis.FieldDetails)
}

// Where appends a list predicates to the GuardianAnalysisMutation builder.
func (m *GuardianAnalysisMutation) Where(ps ...predicate.GuardianAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GuardianAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GuardianAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GuardianAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GuardianAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GuardianAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GuardianAnalysis).
func (m *GuardianAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GuardianAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent_id != nil {
		fields = append(fields, guardiananalysis.FieldAgentID)
	}
	if m.timestamp != nil {
		fields = append(fields, guardiananalysis.FieldTimestamp)
	}
	if m.current_phase != nil {
		fields = append(fields, guardiananalysis.FieldCurrentPhase)
	}
	if m.alignment_score != nil {
		fields = append(fields, guardiananalysis.FieldAlignmentScore)
	}
	if m.trajectory_aligned != nil {
		fields = append(fields, guardiananalysis.FieldTrajectoryAligned)
	}
	if m.trajectory_summary != nil {
		fields = append(fields, guardiananalysis.FieldTrajectorySummary)
	}
	if m.needs_steering != nil {
		fields = append(fields, guardiananalysis.FieldNeedsSteering)
	}
	if m.steering_type != nil {
		fields = append(fields, guardiananalysis.FieldSteeringType)
	}
	if m.steering_message != nil {
		fields = append(fields, guardiananalysis.FieldSteeringMessage)
	}
	if m.details != nil {
		fields = append(fields, guardiananalysis.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GuardianAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case guardiananalysis.FieldAgentID:
		return m.AgentID()
	case guardiananalysis.FieldTimestamp:
		return m.Timestamp()
	case guardiananalysis.FieldCurrentPhase:
		return m.CurrentPhase()
	case guardiananalysis.FieldAlignmentScore:
		return m.AlignmentScore()
	case guardiananalysis.FieldTrajectoryAligned:
		return m.TrajectoryAligned()
	case guardiananalysis.FieldTrajectorySummary:
		return m.TrajectorySummary()
	case guardiananalysis.FieldNeedsSteering:
		return m.NeedsSteering()
	case guardiananalysis.FieldSteeringType:
		return m.SteeringType()
	case guardiananalysis.FieldSteeringMessage:
		return m.SteeringMessage()
	case guardiananalysis.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GuardianAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case guardiananalysis.FieldAgentID:
		return m.OldAgentID(ctx)
	case guardiananalysis.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case guardiananalysis.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case guardiananalysis.FieldAlignmentScore:
		return m.OldAlignmentScore(ctx)
	case guardiananalysis.FieldTrajectoryAligned:
		return m.OldTrajectoryAligned(ctx)
	case guardiananalysis.FieldTrajectorySummary:
		return m.OldTrajectorySummary(ctx)
	case guardiananalysis.FieldNeedsSteering:
		return m.OldNeedsSteering(ctx)
	case guardiananalysis.FieldSteeringType:
		return m.OldSteeringType(ctx)
	case guardiananalysis.FieldSteeringMessage:
		return m.OldSteeringMessage(ctx)
	case guardiananalysis.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown GuardianAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuardianAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case guardiananalysis.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case guardiananalysis.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case guardiananalysis.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case guardiananalysis.FieldAlignmentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlignmentScore(v)
		return nil
	case guardiananalysis.FieldTrajectoryAligned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectoryAligned(v)
		return nil
	case guardiananalysis.FieldTrajectorySummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectorySummary(v)
		return nil
	case guardiananalysis.FieldNeedsSteering:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsSteering(v)
		return nil
	case guardiananalysis.FieldSteeringType:
		v, ok := value.(guardiananalysis.SteeringType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteeringType(v)
		return nil
	case guardiananalysis.FieldSteeringMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteeringMessage(v)
		return nil
	case guardiananalysis.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown GuardianAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GuardianAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addalignment_score != nil {
		fields = append(fields, guardiananalysis.FieldAlignmentScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GuardianAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case guardiananalysis.FieldAlignmentScore:
		return m.AddedAlignmentScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuardianAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case guardiananalysis.FieldAlignmentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAlignmentScore(v)
		return nil
	}
	return fmt.Errorf("unknown GuardianAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GuardianAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(guardiananalysis.FieldCurrentPhase) {
		fields = append(fields, guardiananalysis.FieldCurrentPhase)
	}
	if m.FieldCleared(guardiananalysis.FieldSteeringMessage) {
		fields = append(fields, guardiananalysis.FieldSteeringMessage)
	}
	if m.FieldCleared(guardiananalysis.FieldDetails) {
		fields = append(fields, guardiananalysis.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GuardianAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GuardianAnalysisMutation) ClearField(name string) error {
	switch name {
	case guardiananalysis.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case guardiananalysis.FieldSteeringMessage:
		m.ClearSteeringMessage()
		return nil
	case guardiananalysis.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown GuardianAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GuardianAnalysisMutation) ResetField(name string) error {
	switch name {
	case guardiananalysis.FieldAgentID:
		m.ResetAgentID()
		return nil
	case guardiananalysis.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case guardiananalysis.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case guardiananalysis.FieldAlignmentScore:
		m.ResetAlignmentScore()
		return nil
	case guardiananalysis.FieldTrajectoryAligned:
		m.ResetTrajectoryAligned()
		return nil
	case guardiananalysis.FieldTrajectorySummary:
		m.ResetTrajectorySummary()
		return nil
	case guardiananalysis.FieldNeedsSteering:
		m.ResetNeedsSteering()
		return nil
	case guardiananalysis.FieldSteeringType:
		m.ResetSteeringType()
		return nil
	case guardiananalysis.FieldSteeringMessage:
		m.ResetSteeringMessage()
		return nil
	case guardiananalysis.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown GuardianAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GuardianAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GuardianAnalysisMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GuardianAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GuardianAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GuardianAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GuardianAnalysisMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GuardianAnalysisMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GuardianAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GuardianAnalysisMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GuardianAnalysis edge %s", name)
}

// PhaseMutation represents an operation that mutates the Phase nodes in the graph.
type PhaseMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	number                    *int
	addnumber                 *int
	name                      *string
	description               *string
	done_definitions          *[]string
	appenddone_definitions    []string
	additional_notes          *string
	validation_enabled        *bool
	validation_criteria       *[]string
	appendvalidation_criteria []string
	validator_instructions    *string
	clearedFields             map[string]struct{}
	workflow                  *string
	clearedworkflow           bool
	done                      bool
	oldValue                  func(context.Context) (*Phase, error)
	predicates                []predicate.Phase
}

var _ ent.Mutation = (*PhaseMutation)(nil)

// phaseOption allows management of the mutation configuration using functional options.
type phaseOption func(*PhaseMutation)

// newPhaseMutation creates new mutation for the Phase entity.
func newPhaseMutation(c config, op Op, opts ...phaseOption) *PhaseMutation {
	m := &PhaseMutation{
		config:        c,
		op:            op,
		typ:           TypePhase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhaseID sets the ID field of the mutation.
func withPhaseID(id string) phaseOption {
	return func(m *PhaseMutation) {
		var (
			err   error
			once  sync.Once
			value *Phase
		)
		m.oldValue = func(ctx context.Context) (*Phase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Phase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhase sets the old Phase of the mutation.
func withPhase(node *Phase) phaseOption {
	return func(m *PhaseMutation) {
		m.oldValue = func(context.Context) (*Phase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Phase entities.
func (m *PhaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Phase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *PhaseMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *PhaseMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *PhaseMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetNumber sets the "number" field.
func (m *PhaseMutation) SetNumber(i int) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *PhaseMutation) Number() (r int, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *PhaseMutation) AddNumber(i int) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *PhaseMutation) AddedNumber() (r int, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *PhaseMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetName sets the "name" field.
func (m *PhaseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PhaseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PhaseMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *PhaseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PhaseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *PhaseMutation) ResetDescription() {
	m.description = nil
}

// SetDoneDefinitions sets the "done_definitions" field.
func (m *PhaseMutation) SetDoneDefinitions(s []string) {
	m.done_definitions = &s
	m.appenddone_definitions = nil
}

// DoneDefinitions returns the value of the "done_definitions" field in the mutation.
func (m *PhaseMutation) DoneDefinitions() (r []string, exists bool) {
	v := m.done_definitions
	if v == nil {
		return
	}
	return *v, true
}

// OldDoneDefinitions returns the old "done_definitions" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldDoneDefinitions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoneDefinitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoneDefinitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoneDefinitions: %w", err)
	}
	return oldValue.DoneDefinitions, nil
}

// AppendDoneDefinitions adds s to the "done_definitions" field.
func (m *PhaseMutation) AppendDoneDefinitions(s []string) {
	m.appenddone_definitions = append(m.appenddone_definitions, s...)
}

// AppendedDoneDefinitions returns the list of values that were appended to the "done_definitions" field in this mutation.
func (m *PhaseMutation) AppendedDoneDefinitions() ([]string, bool) {
	if len(m.appenddone_definitions) == 0 {
		return nil, false
	}
	return m.appenddone_definitions, true
}

// ResetDoneDefinitions resets all changes to the "done_definitions" field.
func (m *PhaseMutation) ResetDoneDefinitions() {
	m.done_definitions = nil
	m.appenddone_definitions = nil
}

// SetAdditionalNotes sets the "additional_notes" field.
func (m *PhaseMutation) SetAdditionalNotes(s string) {
	m.additional_notes = &s
}

// AdditionalNotes returns the value of the "additional_notes" field in the mutation.
func (m *PhaseMutation) AdditionalNotes() (r string, exists bool) {
	v := m.additional_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalNotes returns the old "additional_notes" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldAdditionalNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalNotes: %w", err)
	}
	return oldValue.AdditionalNotes, nil
}

// ClearAdditionalNotes clears the value of the "additional_notes" field.
func (m *PhaseMutation) ClearAdditionalNotes() {
	m.additional_notes = nil
	m.clearedFields[phase.FieldAdditionalNotes] = struct{}{}
}

// AdditionalNotesCleared returns if the "additional_notes" field was cleared in this mutation.
func (m *PhaseMutation) AdditionalNotesCleared() bool {
	_, ok := m.clearedFields[phase.FieldAdditionalNotes]
	return ok
}

// ResetAdditionalNotes resets all changes to the "additional_notes" field.
func (m *PhaseMutation) ResetAdditionalNotes() {
	m.additional_notes = nil
	delete(m.clearedFields, phase.FieldAdditionalNotes)
}

// SetValidationEnabled sets the "validation_enabled" field.
func (m *PhaseMutation) SetValidationEnabled(b bool) {
	m.validation_enabled = &b
}

// ValidationEnabled returns the value of the "validation_enabled" field in the mutation.
func (m *PhaseMutation) ValidationEnabled() (r bool, exists bool) {
	v := m.validation_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationEnabled returns the old "validation_enabled" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldValidationEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationEnabled: %w", err)
	}
	return oldValue.ValidationEnabled, nil
}

// ResetValidationEnabled resets all changes to the "validation_enabled" field.
func (m *PhaseMutation) ResetValidationEnabled() {
	m.validation_enabled = nil
}

// SetValidationCriteria sets the "validation_criteria" field.
func (m *PhaseMutation) SetValidationCriteria(s []string) {
	m.validation_criteria = &s
	m.appendvalidation_criteria = nil
}

// ValidationCriteria returns the value of the "validation_criteria" field in the mutation.
func (m *PhaseMutation) ValidationCriteria() (r []string, exists bool) {
	v := m.validation_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationCriteria returns the old "validation_criteria" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldValidationCriteria(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationCriteria: %w", err)
	}
	return oldValue.ValidationCriteria, nil
}

// AppendValidationCriteria adds s to the "validation_criteria" field.
func (m *PhaseMutation) AppendValidationCriteria(s []string) {
	m.appendvalidation_criteria = append(m.appendvalidation_criteria, s...)
}

// AppendedValidationCriteria returns the list of values that were appended to the "validation_criteria" field in this mutation.
func (m *PhaseMutation) AppendedValidationCriteria() ([]string, bool) {
	if len(m.appendvalidation_criteria) == 0 {
		return nil, false
	}
	return m.appendvalidation_criteria, true
}

// ClearValidationCriteria clears the value of the "validation_criteria" field.
func (m *PhaseMutation) ClearValidationCriteria() {
	m.validation_criteria = nil
	m.appendvalidation_criteria = nil
	m.clearedFields[phase.FieldValidationCriteria] = struct{}{}
}

// ValidationCriteriaCleared returns if the "validation_criteria" field was cleared in this mutation.
func (m *PhaseMutation) ValidationCriteriaCleared() bool {
	_, ok := m.clearedFields[phase.FieldValidationCriteria]
	return ok
}

// ResetValidationCriteria resets all changes to the "validation_criteria" field.
func (m *PhaseMutation) ResetValidationCriteria() {
	m.validation_criteria = nil
	m.appendvalidation_criteria = nil
	delete(m.clearedFields, phase.FieldValidationCriteria)
}

// SetValidatorInstructions sets the "validator_instructions" field.
func (m *PhaseMutation) SetValidatorInstructions(s string) {
	m.validator_instructions = &s
}

// ValidatorInstructions returns the value of the "validator_instructions" field in the mutation.
func (m *PhaseMutation) ValidatorInstructions() (r string, exists bool) {
	v := m.validator_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatorInstructions returns the old "validator_instructions" field's value of the Phase entity.
// If the Phase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhaseMutation) OldValidatorInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatorInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatorInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatorInstructions: %w", err)
	}
	return oldValue.ValidatorInstructions, nil
}

// ClearValidatorInstructions clears the value of the "validator_instructions" field.
func (m *PhaseMutation) ClearValidatorInstructions() {
	m.validator_instructions = nil
	m.clearedFields[phase.FieldValidatorInstructions] = struct{}{}
}

// ValidatorInstructionsCleared returns if the "validator_instructions" field was cleared in this mutation.
func (m *PhaseMutation) ValidatorInstructionsCleared() bool {
	_, ok := m.clearedFields[phase.FieldValidatorInstructions]
	return ok
}

// ResetValidatorInstructions resets all changes to the "validator_instructions" field.
func (m *PhaseMutation) ResetValidatorInstructions() {
	m.validator_instructions = nil
	delete(m.clearedFields, phase.FieldValidatorInstructions)
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *PhaseMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[phase.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *PhaseMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *PhaseMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *PhaseMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the PhaseMutation builder.
func (m *PhaseMutation) Where(ps ...predicate.Phase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Phase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Phase).
func (m *PhaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhaseMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.workflow != nil {
		fields = append(fields, phase.FieldWorkflowID)
	}
	if m.number != nil {
		fields = append(fields, phase.FieldNumber)
	}
	if m.name != nil {
		fields = append(fields, phase.FieldName)
	}
	if m.description != nil {
		fields = append(fields, phase.FieldDescription)
	}
	if m.done_definitions != nil {
		fields = append(fields, phase.FieldDoneDefinitions)
	}
	if m.additional_notes != nil {
		fields = append(fields, phase.FieldAdditionalNotes)
	}
	if m.validation_enabled != nil {
		fields = append(fields, phase.FieldValidationEnabled)
	}
	if m.validation_criteria != nil {
		fields = append(fields, phase.FieldValidationCriteria)
	}
	if m.validator_instructions != nil {
		fields = append(fields, phase.FieldValidatorInstructions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case phase.FieldWorkflowID:
		return m.WorkflowID()
	case phase.FieldNumber:
		return m.Number()
	case phase.FieldName:
		return m.Name()
	case phase.FieldDescription:
		return m.Description()
	case phase.FieldDoneDefinitions:
		return m.DoneDefinitions()
	case phase.FieldAdditionalNotes:
		return m.AdditionalNotes()
	case phase.FieldValidationEnabled:
		return m.ValidationEnabled()
	case phase.FieldValidationCriteria:
		return m.ValidationCriteria()
	case phase.FieldValidatorInstructions:
		return m.ValidatorInstructions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case phase.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case phase.FieldNumber:
		return m.OldNumber(ctx)
	case phase.FieldName:
		return m.OldName(ctx)
	case phase.FieldDescription:
		return m.OldDescription(ctx)
	case phase.FieldDoneDefinitions:
		return m.OldDoneDefinitions(ctx)
	case phase.FieldAdditionalNotes:
		return m.OldAdditionalNotes(ctx)
	case phase.FieldValidationEnabled:
		return m.OldValidationEnabled(ctx)
	case phase.FieldValidationCriteria:
		return m.OldValidationCriteria(ctx)
	case phase.FieldValidatorInstructions:
		return m.OldValidatorInstructions(ctx)
	}
	return nil, fmt.Errorf("unknown Phase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case phase.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case phase.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case phase.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case phase.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case phase.FieldDoneDefinitions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoneDefinitions(v)
		return nil
	case phase.FieldAdditionalNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalNotes(v)
		return nil
	case phase.FieldValidationEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationEnabled(v)
		return nil
	case phase.FieldValidationCriteria:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationCriteria(v)
		return nil
	case phase.FieldValidatorInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatorInstructions(v)
		return nil
	}
	return fmt.Errorf("unknown Phase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhaseMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, phase.FieldNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case phase.FieldNumber:
		return m.AddedNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case phase.FieldNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Phase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(phase.FieldAdditionalNotes) {
		fields = append(fields, phase.FieldAdditionalNotes)
	}
	if m.FieldCleared(phase.FieldValidationCriteria) {
		fields = append(fields, phase.FieldValidationCriteria)
	}
	if m.FieldCleared(phase.FieldValidatorInstructions) {
		fields = append(fields, phase.FieldValidatorInstructions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhaseMutation) ClearField(name string) error {
	switch name {
	case phase.FieldAdditionalNotes:
		m.ClearAdditionalNotes()
		return nil
	case phase.FieldValidationCriteria:
		m.ClearValidationCriteria()
		return nil
	case phase.FieldValidatorInstructions:
		m.ClearValidatorInstructions()
		return nil
	}
	return fmt.Errorf("unknown Phase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhaseMutation) ResetField(name string) error {
	switch name {
	case phase.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case phase.FieldNumber:
		m.ResetNumber()
		return nil
	case phase.FieldName:
		m.ResetName()
		return nil
	case phase.FieldDescription:
		m.ResetDescription()
		return nil
	case phase.FieldDoneDefinitions:
		m.ResetDoneDefinitions()
		return nil
	case phase.FieldAdditionalNotes:
		m.ResetAdditionalNotes()
		return nil
	case phase.FieldValidationEnabled:
		m.ResetValidationEnabled()
		return nil
	case phase.FieldValidationCriteria:
		m.ResetValidationCriteria()
		return nil
	case phase.FieldValidatorInstructions:
		m.ResetValidatorInstructions()
		return nil
	}
	return fmt.Errorf("unknown Phase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, phase.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case phase.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, phase.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhaseMutation) EdgeCleared(name string) bool {
	switch name {
	case phase.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhaseMutation) ClearEdge(name string) error {
	switch name {
	case phase.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Phase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhaseMutation) ResetEdge(name string) error {
	switch name {
	case phase.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Phase edge %s", name)
}

// SteeringInterventionMutation represents an operation that mutates the SteeringIntervention nodes in the graph.
type SteeringInterventionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_id             *string
	guardian_analysis_id *string
	timestamp            *time.Time
	steering_type        *string
	message              *string
	was_successful       *bool
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SteeringIntervention, error)
	predicates           []predicate.SteeringIntervention
}

var _ ent.Mutation = (*SteeringInterventionMutation)(nil)

// steeringinterventionOption allows management of the mutation configuration using functional options.
type steeringinterventionOption func(*SteeringInterventionMutation)

// newSteeringInterventionMutation creates new mutation for the SteeringIntervention entity.
func newSteeringInterventionMutation(c config, op Op, opts ...steeringinterventionOption) *SteeringInterventionMutation {
	m := &SteeringInterventionMutation{
		config:        c,
		op:            op,
		typ:           TypeSteeringIntervention,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSteeringInterventionID sets the ID field of the mutation.
func withSteeringInterventionID(id string) steeringinterventionOption {
	return func(m *SteeringInterventionMutation) {
		var (
			err   error
			once  sync.Once
			value *SteeringIntervention
		)
		m.oldValue = func(ctx context.Context) (*SteeringIntervention, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SteeringIntervention.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSteeringIntervention sets the old SteeringIntervention of the mutation.
func withSteeringIntervention(node *SteeringIntervention) steeringinterventionOption {
	return func(m *SteeringInterventionMutation) {
		m.oldValue = func(context.Context) (*SteeringIntervention, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SteeringInterventionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SteeringInterventionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SteeringIntervention entities.
func (m *SteeringInterventionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SteeringInterventionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SteeringInterventionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SteeringIntervention.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *SteeringInterventionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SteeringInterventionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the SteeringIntervention entity.
// If the SteeringIntervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SteeringInterventionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SteeringInterventionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetGuardianAnalysisID sets the "guardian_analysis_id" field.
func (m *SteeringInterventionMutation) SetGuardianAnalysisID(s string) {
	m.guardian_analysis_id = &s
}

// GuardianAnalysisID returns the value of the "guardian_analysis_id" field in the mutation.
func (m *SteeringInterventionMutation) GuardianAnalysisID() (r string, exists bool) {
	v := m.guardian_analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGuardianAnalysisID returns the old "guardian_analysis_id" field's value of the SteeringIntervention entity.
// If the SteeringIntervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SteeringInterventionMutation) OldGuardianAnalysisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuardianAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuardianAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuardianAnalysisID: %w", err)
	}
	return oldValue.GuardianAnalysisID, nil
}

// ResetGuardianAnalysisID resets all changes to the "guardian_analysis_id" field.
func (m *SteeringInterventionMutation) ResetGuardianAnalysisID() {
	m.guardian_analysis_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SteeringInterventionMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SteeringInterventionMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SteeringIntervention entity.
// If the SteeringIntervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SteeringInterventionMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SteeringInterventionMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSteeringType sets the "steering_type" field.
func (m *SteeringInterventionMutation) SetSteeringType(s string) {
	m.steering_type = &s
}

// SteeringType returns the value of the "steering_type" field in the mutation.
func (m *SteeringInterventionMutation) SteeringType() (r string, exists bool) {
	v := m.steering_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSteeringType returns the old "steering_type" field's value of the SteeringIntervention entity.
// If the SteeringIntervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SteeringInterventionMutation) OldSteeringType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteeringType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteeringType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteeringType: %w", err)
	}
	return oldValue.SteeringType, nil
}

// ResetSteeringType resets all changes to the "steering_type" field.
func (m *SteeringInterventionMutation) ResetSteeringType() {
	m.steering_type = nil
}

// SetMessage sets the "message" field.
func (m *SteeringInterventionMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *SteeringInterventionMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the SteeringIntervention entity.
// If the SteeringIntervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SteeringInterventionMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *SteeringInterventionMutation) ResetMessage() {
	m.message = nil
}

// SetWasSuccessful sets the "was_successful" field.
func (m *SteeringInterventionMutation) SetWasSuccessful(b bool) {
	m.was_successful = &b
}

// WasSuccessful returns the value of the "was_successful" field in the mutation.
func (m *SteeringInterventionMutation) WasSuccessful() (r bool, exists bool) {
	v := m.was_successful
	if v == nil {
		return
	}
	return *v, true
}

// OldWasSuccessful returns the old "was_successful" field's value of the SteeringIntervention entity.
// If the SteeringIntervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SteeringInterventionMutation) OldWasSuccessful(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasSuccessful is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasSuccessful requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasSuccessful: %w", err)
	}
	return oldValue.WasSuccessful, nil
}

// ClearWasSuccessful clears the value of the "was_successful" field.
func (m *SteeringInterventionMutation) ClearWasSuccessful() {
	m.was_successful = nil
	m.clearedFields[steeringintervention.FieldWasSuccessful] = struct{}{}
}

// WasSuccessfulCleared returns if the "was_successful" field was cleared in this mutation.
func (m *SteeringInterventionMutation) WasSuccessfulCleared() bool {
	_, ok := m.clearedFields[steeringintervention.FieldWasSuccessful]
	return ok
}

// ResetWasSuccessful resets all changes to the "was_successful" field.
func (m *SteeringInterventionMutation) ResetWasSuccessful() {
	m.was_successful = nil
	delete(m.clearedFields, steeringintervention.FieldWasSuccessful)
}

// Where appends a list predicates to the SteeringInterventionMutation builder.
func (m *SteeringInterventionMutation) Where(ps ...predicate.SteeringIntervention) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SteeringInterventionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SteeringInterventionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SteeringIntervention, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SteeringInterventionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SteeringInterventionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SteeringIntervention).
func (m *SteeringInterventionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SteeringInterventionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent_id != nil {
		fields = append(fields, steeringintervention.FieldAgentID)
	}
	if m.guardian_analysis_id != nil {
		fields = append(fields, steeringintervention.FieldGuardianAnalysisID)
	}
	if m.timestamp != nil {
		fields = append(fields, steeringintervention.FieldTimestamp)
	}
	if m.steering_type != nil {
		fields = append(fields, steeringintervention.FieldSteeringType)
	}
	if m.message != nil {
		fields = append(fields, steeringintervention.FieldMessage)
	}
	if m.was_successful != nil {
		fields = append(fields, steeringintervention.FieldWasSuccessful)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SteeringInterventionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case steeringintervention.FieldAgentID:
		return m.AgentID()
	case steeringintervention.FieldGuardianAnalysisID:
		return m.GuardianAnalysisID()
	case steeringintervention.FieldTimestamp:
		return m.Timestamp()
	case steeringintervention.FieldSteeringType:
		return m.SteeringType()
	case steeringintervention.FieldMessage:
		return m.Message()
	case steeringintervention.FieldWasSuccessful:
		return m.WasSuccessful()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SteeringInterventionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case steeringintervention.FieldAgentID:
		return m.OldAgentID(ctx)
	case steeringintervention.FieldGuardianAnalysisID:
		return m.OldGuardianAnalysisID(ctx)
	case steeringintervention.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case steeringintervention.FieldSteeringType:
		return m.OldSteeringType(ctx)
	case steeringintervention.FieldMessage:
		return m.OldMessage(ctx)
	case steeringintervention.FieldWasSuccessful:
		return m.OldWasSuccessful(ctx)
	}
	return nil, fmt.Errorf("unknown SteeringIntervention field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SteeringInterventionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case steeringintervention.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case steeringintervention.FieldGuardianAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuardianAnalysisID(v)
		return nil
	case steeringintervention.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case steeringintervention.FieldSteeringType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteeringType(v)
		return nil
	case steeringintervention.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case steeringintervention.FieldWasSuccessful:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasSuccessful(v)
		return nil
	}
	return fmt.Errorf("unknown SteeringIntervention field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SteeringInterventionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SteeringInterventionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SteeringInterventionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SteeringIntervention numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SteeringInterventionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(steeringintervention.FieldWasSuccessful) {
		fields = append(fields, steeringintervention.FieldWasSuccessful)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SteeringInterventionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SteeringInterventionMutation) ClearField(name string) error {
	switch name {
	case steeringintervention.FieldWasSuccessful:
		m.ClearWasSuccessful()
		return nil
	}
	return fmt.Errorf("unknown SteeringIntervention nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SteeringInterventionMutation) ResetField(name string) error {
	switch name {
	case steeringintervention.FieldAgentID:
		m.ResetAgentID()
		return nil
	case steeringintervention.FieldGuardianAnalysisID:
		m.ResetGuardianAnalysisID()
		return nil
	case steeringintervention.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case steeringintervention.FieldSteeringType:
		m.ResetSteeringType()
		return nil
	case steeringintervention.FieldMessage:
		m.ResetMessage()
		return nil
	case steeringintervention.FieldWasSuccessful:
		m.ResetWasSuccessful()
		return nil
	}
	return fmt.Errorf("unknown SteeringIntervention field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SteeringInterventionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SteeringInterventionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SteeringInterventionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SteeringInterventionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SteeringInterventionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SteeringInterventionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SteeringInterventionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SteeringIntervention unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SteeringInterventionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SteeringIntervention edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	phase_id                    *string
	ticket_id                   *string
	parent_task_id              *string
	created_by_agent_id         *string
	agent_type                  *task.AgentType
	description                 *string
	done_definition             *string
	priority                    *task.Priority
	description_embedding       *[]float32
	appenddescription_embedding []float32
	status                      *task.Status
	failure_reason              *string
	completion_notes            *string
	duplicate_of_task_id        *string
	similarity_score            *float64
	addsimilarity_score         *float64
	queued_at                   *time.Time
	queue_position              *int
	addqueue_position           *int
	priority_boosted            *bool
	validation_enabled          *bool
	validation_iteration        *int
	addvalidation_iteration     *int
	last_validation_feedback    *string
	review_done                 *bool
	assigned_agent_id           *string
	started_at                  *time.Time
	completed_at                *time.Time
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	workflow                    *string
	clearedworkflow             bool
	results                     map[string]struct{}
	removedresults              map[string]struct{}
	clearedresults              bool
	validation_reviews          map[string]struct{}
	removedvalidation_reviews   map[string]struct{}
	clearedvalidation_reviews   bool
	done                        bool
	oldValue                    func(context.Context) (*Task, error)
	predicates                  []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *TaskMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *TaskMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *TaskMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetPhaseID sets the "phase_id" field.
func (m *TaskMutation) SetPhaseID(s string) {
	m.phase_id = &s
}

// PhaseID returns the value of the "phase_id" field in the mutation.
func (m *TaskMutation) PhaseID() (r string, exists bool) {
	v := m.phase_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseID returns the old "phase_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPhaseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseID: %w", err)
	}
	return oldValue.PhaseID, nil
}

// ClearPhaseID clears the value of the "phase_id" field.
func (m *TaskMutation) ClearPhaseID() {
	m.phase_id = nil
	m.clearedFields[task.FieldPhaseID] = struct{}{}
}

// PhaseIDCleared returns if the "phase_id" field was cleared in this mutation.
func (m *TaskMutation) PhaseIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPhaseID]
	return ok
}

// ResetPhaseID resets all changes to the "phase_id" field.
func (m *TaskMutation) ResetPhaseID() {
	m.phase_id = nil
	delete(m.clearedFields, task.FieldPhaseID)
}

// SetTicketID sets the "ticket_id" field.
func (m *TaskMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TaskMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTicketID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *TaskMutation) ClearTicketID() {
	m.ticket_id = nil
	m.clearedFields[task.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *TaskMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[task.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TaskMutation) ResetTicketID() {
	m.ticket_id = nil
	delete(m.clearedFields, task.FieldTicketID)
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *TaskMutation) SetParentTaskID(s string) {
	m.parent_task_id = &s
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *TaskMutation) ParentTaskID() (r string, exists bool) {
	v := m.parent_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (m *TaskMutation) ClearParentTaskID() {
	m.parent_task_id = nil
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentTaskIDCleared returns if the "parent_task_id" field was cleared in this mutation.
func (m *TaskMutation) ParentTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentTaskID]
	return ok
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *TaskMutation) ResetParentTaskID() {
	m.parent_task_id = nil
	delete(m.clearedFields, task.FieldParentTaskID)
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (m *TaskMutation) SetCreatedByAgentID(s string) {
	m.created_by_agent_id = &s
}

// CreatedByAgentID returns the value of the "created_by_agent_id" field in the mutation.
func (m *TaskMutation) CreatedByAgentID() (r string, exists bool) {
	v := m.created_by_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByAgentID returns the old "created_by_agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedByAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByAgentID: %w", err)
	}
	return oldValue.CreatedByAgentID, nil
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (m *TaskMutation) ClearCreatedByAgentID() {
	m.created_by_agent_id = nil
	m.clearedFields[task.FieldCreatedByAgentID] = struct{}{}
}

// CreatedByAgentIDCleared returns if the "created_by_agent_id" field was cleared in this mutation.
func (m *TaskMutation) CreatedByAgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldCreatedByAgentID]
	return ok
}

// ResetCreatedByAgentID resets all changes to the "created_by_agent_id" field.
func (m *TaskMutation) ResetCreatedByAgentID() {
	m.created_by_agent_id = nil
	delete(m.clearedFields, task.FieldCreatedByAgentID)
}

// SetAgentType sets the "agent_type" field.
func (m *TaskMutation) SetAgentType(tt task.AgentType) {
	m.agent_type = &tt
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *TaskMutation) AgentType() (r task.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentType(ctx context.Context) (v task.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *TaskMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetDoneDefinition sets the "done_definition" field.
func (m *TaskMutation) SetDoneDefinition(s string) {
	m.done_definition = &s
}

// DoneDefinition returns the value of the "done_definition" field in the mutation.
func (m *TaskMutation) DoneDefinition() (r string, exists bool) {
	v := m.done_definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDoneDefinition returns the old "done_definition" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDoneDefinition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoneDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoneDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoneDefinition: %w", err)
	}
	return oldValue.DoneDefinition, nil
}

// ResetDoneDefinition resets all changes to the "done_definition" field.
func (m *TaskMutation) ResetDoneDefinition() {
	m.done_definition = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetDescriptionEmbedding sets the "description_embedding" field.
func (m *TaskMutation) SetDescriptionEmbedding(f []float32) {
	m.description_embedding = &f
	m.appenddescription_embedding = nil
}

// DescriptionEmbedding returns the value of the "description_embedding" field in the mutation.
func (m *TaskMutation) DescriptionEmbedding() (r []float32, exists bool) {
	v := m.description_embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionEmbedding returns the old "description_embedding" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescriptionEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionEmbedding: %w", err)
	}
	return oldValue.DescriptionEmbedding, nil
}

// AppendDescriptionEmbedding adds f to the "description_embedding" field.
func (m *TaskMutation) AppendDescriptionEmbedding(f []float32) {
	m.appenddescription_embedding = append(m.appenddescription_embedding, f...)
}

// AppendedDescriptionEmbedding returns the list of values that were appended to the "description_embedding" field in this mutation.
func (m *TaskMutation) AppendedDescriptionEmbedding() ([]float32, bool) {
	if len(m.appenddescription_embedding) == 0 {
		return nil, false
	}
	return m.appenddescription_embedding, true
}

// ClearDescriptionEmbedding clears the value of the "description_embedding" field.
func (m *TaskMutation) ClearDescriptionEmbedding() {
	m.description_embedding = nil
	m.appenddescription_embedding = nil
	m.clearedFields[task.FieldDescriptionEmbedding] = struct{}{}
}

// DescriptionEmbeddingCleared returns if the "description_embedding" field was cleared in this mutation.
func (m *TaskMutation) DescriptionEmbeddingCleared() bool {
	_, ok := m.clearedFields[task.FieldDescriptionEmbedding]
	return ok
}

// ResetDescriptionEmbedding resets all changes to the "description_embedding" field.
func (m *TaskMutation) ResetDescriptionEmbedding() {
	m.description_embedding = nil
	m.appenddescription_embedding = nil
	delete(m.clearedFields, task.FieldDescriptionEmbedding)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *TaskMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *TaskMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *TaskMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[task.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *TaskMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *TaskMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, task.FieldFailureReason)
}

// SetCompletionNotes sets the "completion_notes" field.
func (m *TaskMutation) SetCompletionNotes(s string) {
	m.completion_notes = &s
}

// CompletionNotes returns the value of the "completion_notes" field in the mutation.
func (m *TaskMutation) CompletionNotes() (r string, exists bool) {
	v := m.completion_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionNotes returns the old "completion_notes" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletionNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionNotes: %w", err)
	}
	return oldValue.CompletionNotes, nil
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (m *TaskMutation) ClearCompletionNotes() {
	m.completion_notes = nil
	m.clearedFields[task.FieldCompletionNotes] = struct{}{}
}

// CompletionNotesCleared returns if the "completion_notes" field was cleared in this mutation.
func (m *TaskMutation) CompletionNotesCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletionNotes]
	return ok
}

// ResetCompletionNotes resets all changes to the "completion_notes" field.
func (m *TaskMutation) ResetCompletionNotes() {
	m.completion_notes = nil
	delete(m.clearedFields, task.FieldCompletionNotes)
}

// SetDuplicateOfTaskID sets the "duplicate_of_task_id" field.
func (m *TaskMutation) SetDuplicateOfTaskID(s string) {
	m.duplicate_of_task_id = &s
}

// DuplicateOfTaskID returns the value of the "duplicate_of_task_id" field in the mutation.
func (m *TaskMutation) DuplicateOfTaskID() (r string, exists bool) {
	v := m.duplicate_of_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateOfTaskID returns the old "duplicate_of_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDuplicateOfTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateOfTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateOfTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateOfTaskID: %w", err)
	}
	return oldValue.DuplicateOfTaskID, nil
}

// ClearDuplicateOfTaskID clears the value of the "duplicate_of_task_id" field.
func (m *TaskMutation) ClearDuplicateOfTaskID() {
	m.duplicate_of_task_id = nil
	m.clearedFields[task.FieldDuplicateOfTaskID] = struct{}{}
}

// DuplicateOfTaskIDCleared returns if the "duplicate_of_task_id" field was cleared in this mutation.
func (m *TaskMutation) DuplicateOfTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldDuplicateOfTaskID]
	return ok
}

// ResetDuplicateOfTaskID resets all changes to the "duplicate_of_task_id" field.
func (m *TaskMutation) ResetDuplicateOfTaskID() {
	m.duplicate_of_task_id = nil
	delete(m.clearedFields, task.FieldDuplicateOfTaskID)
}

// SetSimilarityScore sets the "similarity_score" field.
func (m *TaskMutation) SetSimilarityScore(f float64) {
	m.similarity_score = &f
	m.addsimilarity_score = nil
}

// SimilarityScore returns the value of the "similarity_score" field in the mutation.
func (m *TaskMutation) SimilarityScore() (r float64, exists bool) {
	v := m.similarity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarityScore returns the old "similarity_score" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSimilarityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarityScore: %w", err)
	}
	return oldValue.SimilarityScore, nil
}

// AddSimilarityScore adds f to the "similarity_score" field.
func (m *TaskMutation) AddSimilarityScore(f float64) {
	if m.addsimilarity_score != nil {
		*m.addsimilarity_score += f
	} else {
		m.addsimilarity_score = &f
	}
}

// AddedSimilarityScore returns the value that was added to the "similarity_score" field in this mutation.
func (m *TaskMutation) AddedSimilarityScore() (r float64, exists bool) {
	v := m.addsimilarity_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSimilarityScore clears the value of the "similarity_score" field.
func (m *TaskMutation) ClearSimilarityScore() {
	m.similarity_score = nil
	m.addsimilarity_score = nil
	m.clearedFields[task.FieldSimilarityScore] = struct{}{}
}

// SimilarityScoreCleared returns if the "similarity_score" field was cleared in this mutation.
func (m *TaskMutation) SimilarityScoreCleared() bool {
	_, ok := m.clearedFields[task.FieldSimilarityScore]
	return ok
}

// ResetSimilarityScore resets all changes to the "similarity_score" field.
func (m *TaskMutation) ResetSimilarityScore() {
	m.similarity_score = nil
	m.addsimilarity_score = nil
	delete(m.clearedFields, task.FieldSimilarityScore)
}

// SetQueuedAt sets the "queued_at" field.
func (m *TaskMutation) SetQueuedAt(t time.Time) {
	m.queued_at = &t
}

// QueuedAt returns the value of the "queued_at" field in the mutation.
func (m *TaskMutation) QueuedAt() (r time.Time, exists bool) {
	v := m.queued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedAt returns the old "queued_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQueuedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedAt: %w", err)
	}
	return oldValue.QueuedAt, nil
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (m *TaskMutation) ClearQueuedAt() {
	m.queued_at = nil
	m.clearedFields[task.FieldQueuedAt] = struct{}{}
}

// QueuedAtCleared returns if the "queued_at" field was cleared in this mutation.
func (m *TaskMutation) QueuedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldQueuedAt]
	return ok
}

// ResetQueuedAt resets all changes to the "queued_at" field.
func (m *TaskMutation) ResetQueuedAt() {
	m.queued_at = nil
	delete(m.clearedFields, task.FieldQueuedAt)
}

// SetQueuePosition sets the "queue_position" field.
func (m *TaskMutation) SetQueuePosition(i int) {
	m.queue_position = &i
	m.addqueue_position = nil
}

// QueuePosition returns the value of the "queue_position" field in the mutation.
func (m *TaskMutation) QueuePosition() (r int, exists bool) {
	v := m.queue_position
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuePosition returns the old "queue_position" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldQueuePosition(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuePosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuePosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuePosition: %w", err)
	}
	return oldValue.QueuePosition, nil
}

// AddQueuePosition adds i to the "queue_position" field.
func (m *TaskMutation) AddQueuePosition(i int) {
	if m.addqueue_position != nil {
		*m.addqueue_position += i
	} else {
		m.addqueue_position = &i
	}
}

// AddedQueuePosition returns the value that was added to the "queue_position" field in this mutation.
func (m *TaskMutation) AddedQueuePosition() (r int, exists bool) {
	v := m.addqueue_position
	if v == nil {
		return
	}
	return *v, true
}

// ClearQueuePosition clears the value of the "queue_position" field.
func (m *TaskMutation) ClearQueuePosition() {
	m.queue_position = nil
	m.addqueue_position = nil
	m.clearedFields[task.FieldQueuePosition] = struct{}{}
}

// QueuePositionCleared returns if the "queue_position" field was cleared in this mutation.
func (m *TaskMutation) QueuePositionCleared() bool {
	_, ok := m.clearedFields[task.FieldQueuePosition]
	return ok
}

// ResetQueuePosition resets all changes to the "queue_position" field.
func (m *TaskMutation) ResetQueuePosition() {
	m.queue_position = nil
	m.addqueue_position = nil
	delete(m.clearedFields, task.FieldQueuePosition)
}

// SetPriorityBoosted sets the "priority_boosted" field.
func (m *TaskMutation) SetPriorityBoosted(b bool) {
	m.priority_boosted = &b
}

// PriorityBoosted returns the value of the "priority_boosted" field in the mutation.
func (m *TaskMutation) PriorityBoosted() (r bool, exists bool) {
	v := m.priority_boosted
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityBoosted returns the old "priority_boosted" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriorityBoosted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityBoosted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityBoosted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityBoosted: %w", err)
	}
	return oldValue.PriorityBoosted, nil
}

// ResetPriorityBoosted resets all changes to the "priority_boosted" field.
func (m *TaskMutation) ResetPriorityBoosted() {
	m.priority_boosted = nil
}

// SetValidationEnabled sets the "validation_enabled" field.
func (m *TaskMutation) SetValidationEnabled(b bool) {
	m.validation_enabled = &b
}

// ValidationEnabled returns the value of the "validation_enabled" field in the mutation.
func (m *TaskMutation) ValidationEnabled() (r bool, exists bool) {
	v := m.validation_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationEnabled returns the old "validation_enabled" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldValidationEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationEnabled: %w", err)
	}
	return oldValue.ValidationEnabled, nil
}

// ResetValidationEnabled resets all changes to the "validation_enabled" field.
func (m *TaskMutation) ResetValidationEnabled() {
	m.validation_enabled = nil
}

// SetValidationIteration sets the "validation_iteration" field.
func (m *TaskMutation) SetValidationIteration(i int) {
	m.validation_iteration = &i
	m.addvalidation_iteration = nil
}

// ValidationIteration returns the value of the "validation_iteration" field in the mutation.
func (m *TaskMutation) ValidationIteration() (r int, exists bool) {
	v := m.validation_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationIteration returns the old "validation_iteration" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldValidationIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationIteration: %w", err)
	}
	return oldValue.ValidationIteration, nil
}

// AddValidationIteration adds i to the "validation_iteration" field.
func (m *TaskMutation) AddValidationIteration(i int) {
	if m.addvalidation_iteration != nil {
		*m.addvalidation_iteration += i
	} else {
		m.addvalidation_iteration = &i
	}
}

// AddedValidationIteration returns the value that was added to the "validation_iteration" field in this mutation.
func (m *TaskMutation) AddedValidationIteration() (r int, exists bool) {
	v := m.addvalidation_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidationIteration resets all changes to the "validation_iteration" field.
func (m *TaskMutation) ResetValidationIteration() {
	m.validation_iteration = nil
	m.addvalidation_iteration = nil
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (m *TaskMutation) SetLastValidationFeedback(s string) {
	m.last_validation_feedback = &s
}

// LastValidationFeedback returns the value of the "last_validation_feedback" field in the mutation.
func (m *TaskMutation) LastValidationFeedback() (r string, exists bool) {
	v := m.last_validation_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldLastValidationFeedback returns the old "last_validation_feedback" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastValidationFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastValidationFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastValidationFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastValidationFeedback: %w", err)
	}
	return oldValue.LastValidationFeedback, nil
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (m *TaskMutation) ClearLastValidationFeedback() {
	m.last_validation_feedback = nil
	m.clearedFields[task.FieldLastValidationFeedback] = struct{}{}
}

// LastValidationFeedbackCleared returns if the "last_validation_feedback" field was cleared in this mutation.
func (m *TaskMutation) LastValidationFeedbackCleared() bool {
	_, ok := m.clearedFields[task.FieldLastValidationFeedback]
	return ok
}

// ResetLastValidationFeedback resets all changes to the "last_validation_feedback" field.
func (m *TaskMutation) ResetLastValidationFeedback() {
	m.last_validation_feedback = nil
	delete(m.clearedFields, task.FieldLastValidationFeedback)
}

// SetReviewDone sets the "review_done" field.
func (m *TaskMutation) SetReviewDone(b bool) {
	m.review_done = &b
}

// ReviewDone returns the value of the "review_done" field in the mutation.
func (m *TaskMutation) ReviewDone() (r bool, exists bool) {
	v := m.review_done
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewDone returns the old "review_done" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldReviewDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewDone: %w", err)
	}
	return oldValue.ReviewDone, nil
}

// ResetReviewDone resets all changes to the "review_done" field.
func (m *TaskMutation) ResetReviewDone() {
	m.review_done = nil
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *TaskMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *TaskMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *TaskMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[task.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *TaskMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *TaskMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, task.FieldAssignedAgentID)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *TaskMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[task.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *TaskMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *TaskMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// AddResultIDs adds the "results" edge to the TaskResult entity by ids.
func (m *TaskMutation) AddResultIDs(ids ...string) {
	if m.results == nil {
		m.results = make(map[string]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the TaskResult entity.
func (m *TaskMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the TaskResult entity was cleared.
func (m *TaskMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the TaskResult entity by IDs.
func (m *TaskMutation) RemoveResultIDs(ids ...string) {
	if m.removedresults == nil {
		m.removedresults = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the TaskResult entity.
func (m *TaskMutation) RemovedResultsIDs() (ids []string) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *TaskMutation) ResultsIDs() (ids []string) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *TaskMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by ids.
func (m *TaskMutation) AddValidationReviewIDs(ids ...string) {
	if m.validation_reviews == nil {
		m.validation_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.validation_reviews[ids[i]] = struct{}{}
	}
}

// ClearValidationReviews clears the "validation_reviews" edge to the ValidationReview entity.
func (m *TaskMutation) ClearValidationReviews() {
	m.clearedvalidation_reviews = true
}

// ValidationReviewsCleared reports if the "validation_reviews" edge to the ValidationReview entity was cleared.
func (m *TaskMutation) ValidationReviewsCleared() bool {
	return m.clearedvalidation_reviews
}

// RemoveValidationReviewIDs removes the "validation_reviews" edge to the ValidationReview entity by IDs.
func (m *TaskMutation) RemoveValidationReviewIDs(ids ...string) {
	if m.removedvalidation_reviews == nil {
		m.removedvalidation_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.validation_reviews, ids[i])
		m.removedvalidation_reviews[ids[i]] = struct{}{}
	}
}

// RemovedValidationReviews returns the removed IDs of the "validation_reviews" edge to the ValidationReview entity.
func (m *TaskMutation) RemovedValidationReviewsIDs() (ids []string) {
	for id := range m.removedvalidation_reviews {
		ids = append(ids, id)
	}
	return
}

// ValidationReviewsIDs returns the "validation_reviews" edge IDs in the mutation.
func (m *TaskMutation) ValidationReviewsIDs() (ids []string) {
	for id := range m.validation_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetValidationReviews resets all changes to the "validation_reviews" edge.
func (m *TaskMutation) ResetValidationReviews() {
	m.validation_reviews = nil
	m.clearedvalidation_reviews = false
	m.removedvalidation_reviews = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.workflow != nil {
		fields = append(fields, task.FieldWorkflowID)
	}
	if m.phase_id != nil {
		fields = append(fields, task.FieldPhaseID)
	}
	if m.ticket_id != nil {
		fields = append(fields, task.FieldTicketID)
	}
	if m.parent_task_id != nil {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.created_by_agent_id != nil {
		fields = append(fields, task.FieldCreatedByAgentID)
	}
	if m.agent_type != nil {
		fields = append(fields, task.FieldAgentType)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.done_definition != nil {
		fields = append(fields, task.FieldDoneDefinition)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.description_embedding != nil {
		fields = append(fields, task.FieldDescriptionEmbedding)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.failure_reason != nil {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.completion_notes != nil {
		fields = append(fields, task.FieldCompletionNotes)
	}
	if m.duplicate_of_task_id != nil {
		fields = append(fields, task.FieldDuplicateOfTaskID)
	}
	if m.similarity_score != nil {
		fields = append(fields, task.FieldSimilarityScore)
	}
	if m.queued_at != nil {
		fields = append(fields, task.FieldQueuedAt)
	}
	if m.queue_position != nil {
		fields = append(fields, task.FieldQueuePosition)
	}
	if m.priority_boosted != nil {
		fields = append(fields, task.FieldPriorityBoosted)
	}
	if m.validation_enabled != nil {
		fields = append(fields, task.FieldValidationEnabled)
	}
	if m.validation_iteration != nil {
		fields = append(fields, task.FieldValidationIteration)
	}
	if m.last_validation_feedback != nil {
		fields = append(fields, task.FieldLastValidationFeedback)
	}
	if m.review_done != nil {
		fields = append(fields, task.FieldReviewDone)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldWorkflowID:
		return m.WorkflowID()
	case task.FieldPhaseID:
		return m.PhaseID()
	case task.FieldTicketID:
		return m.TicketID()
	case task.FieldParentTaskID:
		return m.ParentTaskID()
	case task.FieldCreatedByAgentID:
		return m.CreatedByAgentID()
	case task.FieldAgentType:
		return m.AgentType()
	case task.FieldDescription:
		return m.Description()
	case task.FieldDoneDefinition:
		return m.DoneDefinition()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldDescriptionEmbedding:
		return m.DescriptionEmbedding()
	case task.FieldStatus:
		return m.Status()
	case task.FieldFailureReason:
		return m.FailureReason()
	case task.FieldCompletionNotes:
		return m.CompletionNotes()
	case task.FieldDuplicateOfTaskID:
		return m.DuplicateOfTaskID()
	case task.FieldSimilarityScore:
		return m.SimilarityScore()
	case task.FieldQueuedAt:
		return m.QueuedAt()
	case task.FieldQueuePosition:
		return m.QueuePosition()
	case task.FieldPriorityBoosted:
		return m.PriorityBoosted()
	case task.FieldValidationEnabled:
		return m.ValidationEnabled()
	case task.FieldValidationIteration:
		return m.ValidationIteration()
	case task.FieldLastValidationFeedback:
		return m.LastValidationFeedback()
	case task.FieldReviewDone:
		return m.ReviewDone()
	case task.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case task.FieldPhaseID:
		return m.OldPhaseID(ctx)
	case task.FieldTicketID:
		return m.OldTicketID(ctx)
	case task.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case task.FieldCreatedByAgentID:
		return m.OldCreatedByAgentID(ctx)
	case task.FieldAgentType:
		return m.OldAgentType(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldDoneDefinition:
		return m.OldDoneDefinition(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldDescriptionEmbedding:
		return m.OldDescriptionEmbedding(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case task.FieldCompletionNotes:
		return m.OldCompletionNotes(ctx)
	case task.FieldDuplicateOfTaskID:
		return m.OldDuplicateOfTaskID(ctx)
	case task.FieldSimilarityScore:
		return m.OldSimilarityScore(ctx)
	case task.FieldQueuedAt:
		return m.OldQueuedAt(ctx)
	case task.FieldQueuePosition:
		return m.OldQueuePosition(ctx)
	case task.FieldPriorityBoosted:
		return m.OldPriorityBoosted(ctx)
	case task.FieldValidationEnabled:
		return m.OldValidationEnabled(ctx)
	case task.FieldValidationIteration:
		return m.OldValidationIteration(ctx)
	case task.FieldLastValidationFeedback:
		return m.OldLastValidationFeedback(ctx)
	case task.FieldReviewDone:
		return m.OldReviewDone(ctx)
	case task.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case task.FieldPhaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseID(v)
		return nil
	case task.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case task.FieldParentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case task.FieldCreatedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByAgentID(v)
		return nil
	case task.FieldAgentType:
		v, ok := value.(task.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldDoneDefinition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoneDefinition(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldDescriptionEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionEmbedding(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case task.FieldCompletionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionNotes(v)
		return nil
	case task.FieldDuplicateOfTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateOfTaskID(v)
		return nil
	case task.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarityScore(v)
		return nil
	case task.FieldQueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedAt(v)
		return nil
	case task.FieldQueuePosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuePosition(v)
		return nil
	case task.FieldPriorityBoosted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityBoosted(v)
		return nil
	case task.FieldValidationEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationEnabled(v)
		return nil
	case task.FieldValidationIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationIteration(v)
		return nil
	case task.FieldLastValidationFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastValidationFeedback(v)
		return nil
	case task.FieldReviewDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewDone(v)
		return nil
	case task.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addsimilarity_score != nil {
		fields = append(fields, task.FieldSimilarityScore)
	}
	if m.addqueue_position != nil {
		fields = append(fields, task.FieldQueuePosition)
	}
	if m.addvalidation_iteration != nil {
		fields = append(fields, task.FieldValidationIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldSimilarityScore:
		return m.AddedSimilarityScore()
	case task.FieldQueuePosition:
		return m.AddedQueuePosition()
	case task.FieldValidationIteration:
		return m.AddedValidationIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarityScore(v)
		return nil
	case task.FieldQueuePosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueuePosition(v)
		return nil
	case task.FieldValidationIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidationIteration(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldPhaseID) {
		fields = append(fields, task.FieldPhaseID)
	}
	if m.FieldCleared(task.FieldTicketID) {
		fields = append(fields, task.FieldTicketID)
	}
	if m.FieldCleared(task.FieldParentTaskID) {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.FieldCleared(task.FieldCreatedByAgentID) {
		fields = append(fields, task.FieldCreatedByAgentID)
	}
	if m.FieldCleared(task.FieldDescriptionEmbedding) {
		fields = append(fields, task.FieldDescriptionEmbedding)
	}
	if m.FieldCleared(task.FieldFailureReason) {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.FieldCleared(task.FieldCompletionNotes) {
		fields = append(fields, task.FieldCompletionNotes)
	}
	if m.FieldCleared(task.FieldDuplicateOfTaskID) {
		fields = append(fields, task.FieldDuplicateOfTaskID)
	}
	if m.FieldCleared(task.FieldSimilarityScore) {
		fields = append(fields, task.FieldSimilarityScore)
	}
	if m.FieldCleared(task.FieldQueuedAt) {
		fields = append(fields, task.FieldQueuedAt)
	}
	if m.FieldCleared(task.FieldQueuePosition) {
		fields = append(fields, task.FieldQueuePosition)
	}
	if m.FieldCleared(task.FieldLastValidationFeedback) {
		fields = append(fields, task.FieldLastValidationFeedback)
	}
	if m.FieldCleared(task.FieldAssignedAgentID) {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldPhaseID:
		m.ClearPhaseID()
		return nil
	case task.FieldTicketID:
		m.ClearTicketID()
		return nil
	case task.FieldParentTaskID:
		m.ClearParentTaskID()
		return nil
	case task.FieldCreatedByAgentID:
		m.ClearCreatedByAgentID()
		return nil
	case task.FieldDescriptionEmbedding:
		m.ClearDescriptionEmbedding()
		return nil
	case task.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case task.FieldCompletionNotes:
		m.ClearCompletionNotes()
		return nil
	case task.FieldDuplicateOfTaskID:
		m.ClearDuplicateOfTaskID()
		return nil
	case task.FieldSimilarityScore:
		m.ClearSimilarityScore()
		return nil
	case task.FieldQueuedAt:
		m.ClearQueuedAt()
		return nil
	case task.FieldQueuePosition:
		m.ClearQueuePosition()
		return nil
	case task.FieldLastValidationFeedback:
		m.ClearLastValidationFeedback()
		return nil
	case task.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case task.FieldPhaseID:
		m.ResetPhaseID()
		return nil
	case task.FieldTicketID:
		m.ResetTicketID()
		return nil
	case task.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case task.FieldCreatedByAgentID:
		m.ResetCreatedByAgentID()
		return nil
	case task.FieldAgentType:
		m.ResetAgentType()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldDoneDefinition:
		m.ResetDoneDefinition()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldDescriptionEmbedding:
		m.ResetDescriptionEmbedding()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case task.FieldCompletionNotes:
		m.ResetCompletionNotes()
		return nil
	case task.FieldDuplicateOfTaskID:
		m.ResetDuplicateOfTaskID()
		return nil
	case task.FieldSimilarityScore:
		m.ResetSimilarityScore()
		return nil
	case task.FieldQueuedAt:
		m.ResetQueuedAt()
		return nil
	case task.FieldQueuePosition:
		m.ResetQueuePosition()
		return nil
	case task.FieldPriorityBoosted:
		m.ResetPriorityBoosted()
		return nil
	case task.FieldValidationEnabled:
		m.ResetValidationEnabled()
		return nil
	case task.FieldValidationIteration:
		m.ResetValidationIteration()
		return nil
	case task.FieldLastValidationFeedback:
		m.ResetLastValidationFeedback()
		return nil
	case task.FieldReviewDone:
		m.ResetReviewDone()
		return nil
	case task.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workflow != nil {
		edges = append(edges, task.EdgeWorkflow)
	}
	if m.results != nil {
		edges = append(edges, task.EdgeResults)
	}
	if m.validation_reviews != nil {
		edges = append(edges, task.EdgeValidationReviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeValidationReviews:
		ids := make([]ent.Value, 0, len(m.validation_reviews))
		for id := range m.validation_reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedresults != nil {
		edges = append(edges, task.EdgeResults)
	}
	if m.removedvalidation_reviews != nil {
		edges = append(edges, task.EdgeValidationReviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeValidationReviews:
		ids := make([]ent.Value, 0, len(m.removedvalidation_reviews))
		for id := range m.removedvalidation_reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkflow {
		edges = append(edges, task.EdgeWorkflow)
	}
	if m.clearedresults {
		edges = append(edges, task.EdgeResults)
	}
	if m.clearedvalidation_reviews {
		edges = append(edges, task.EdgeValidationReviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeWorkflow:
		return m.clearedworkflow
	case task.EdgeResults:
		return m.clearedresults
	case task.EdgeValidationReviews:
		return m.clearedvalidation_reviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	case task.EdgeResults:
		m.ResetResults()
		return nil
	case task.EdgeValidationReviews:
		m.ResetValidationReviews()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskResultMutation represents an operation that mutates the TaskResult nodes in the graph.
type TaskResultMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	agent_id                  *string
	markdown_path             *string
	markdown_content          *string
	result_type               *taskresult.ResultType
	summary                   *string
	verification_status       *taskresult.VerificationStatus
	created_at                *time.Time
	verified_at               *time.Time
	verified_by_validation_id *string
	clearedFields             map[string]struct{}
	task                      *string
	clearedtask               bool
	done                      bool
	oldValue                  func(context.Context) (*TaskResult, error)
	predicates                []predicate.TaskResult
}

var _ ent.Mutation = (*TaskResultMutation)(nil)

// taskresultOption allows management of the mutation configuration using functional options.
type taskresultOption func(*TaskResultMutation)

// newTaskResultMutation creates new mutation for the TaskResult entity.
func newTaskResultMutation(c config, op Op, opts ...taskresultOption) *TaskResultMutation {
	m := &TaskResultMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskResultID sets the ID field of the mutation.
func withTaskResultID(id string) taskresultOption {
	return func(m *TaskResultMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskResult
		)
		m.oldValue = func(ctx context.Context) (*TaskResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskResult sets the old TaskResult of the mutation.
func withTaskResult(node *TaskResult) taskresultOption {
	return func(m *TaskResultMutation) {
		m.oldValue = func(context.Context) (*TaskResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskResult entities.
func (m *TaskResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *TaskResultMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TaskResultMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TaskResultMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *TaskResultMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskResultMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskResultMutation) ResetTaskID() {
	m.task = nil
}

// SetMarkdownPath sets the "markdown_path" field.
func (m *TaskResultMutation) SetMarkdownPath(s string) {
	m.markdown_path = &s
}

// MarkdownPath returns the value of the "markdown_path" field in the mutation.
func (m *TaskResultMutation) MarkdownPath() (r string, exists bool) {
	v := m.markdown_path
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdownPath returns the old "markdown_path" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldMarkdownPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdownPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdownPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdownPath: %w", err)
	}
	return oldValue.MarkdownPath, nil
}

// ResetMarkdownPath resets all changes to the "markdown_path" field.
func (m *TaskResultMutation) ResetMarkdownPath() {
	m.markdown_path = nil
}

// SetMarkdownContent sets the "markdown_content" field.
func (m *TaskResultMutation) SetMarkdownContent(s string) {
	m.markdown_content = &s
}

// MarkdownContent returns the value of the "markdown_content" field in the mutation.
func (m *TaskResultMutation) MarkdownContent() (r string, exists bool) {
	v := m.markdown_content
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdownContent returns the old "markdown_content" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldMarkdownContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdownContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdownContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdownContent: %w", err)
	}
	return oldValue.MarkdownContent, nil
}

// ResetMarkdownContent resets all changes to the "markdown_content" field.
func (m *TaskResultMutation) ResetMarkdownContent() {
	m.markdown_content = nil
}

// SetResultType sets the "result_type" field.
func (m *TaskResultMutation) SetResultType(tt taskresult.ResultType) {
	m.result_type = &tt
}

// ResultType returns the value of the "result_type" field in the mutation.
func (m *TaskResultMutation) ResultType() (r taskresult.ResultType, exists bool) {
	v := m.result_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResultType returns the old "result_type" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldResultType(ctx context.Context) (v taskresult.ResultType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultType: %w", err)
	}
	return oldValue.ResultType, nil
}

// ResetResultType resets all changes to the "result_type" field.
func (m *TaskResultMutation) ResetResultType() {
	m.result_type = nil
}

// SetSummary sets the "summary" field.
func (m *TaskResultMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TaskResultMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *TaskResultMutation) ResetSummary() {
	m.summary = nil
}

// SetVerificationStatus sets the "verification_status" field.
func (m *TaskResultMutation) SetVerificationStatus(ts taskresult.VerificationStatus) {
	m.verification_status = &ts
}

// VerificationStatus returns the value of the "verification_status" field in the mutation.
func (m *TaskResultMutation) VerificationStatus() (r taskresult.VerificationStatus, exists bool) {
	v := m.verification_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationStatus returns the old "verification_status" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldVerificationStatus(ctx context.Context) (v taskresult.VerificationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationStatus: %w", err)
	}
	return oldValue.VerificationStatus, nil
}

// ResetVerificationStatus resets all changes to the "verification_status" field.
func (m *TaskResultMutation) ResetVerificationStatus() {
	m.verification_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetVerifiedAt sets the "verified_at" field.
func (m *TaskResultMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *TaskResultMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *TaskResultMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[taskresult.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *TaskResultMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[taskresult.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *TaskResultMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, taskresult.FieldVerifiedAt)
}

// SetVerifiedByValidationID sets the "verified_by_validation_id" field.
func (m *TaskResultMutation) SetVerifiedByValidationID(s string) {
	m.verified_by_validation_id = &s
}

// VerifiedByValidationID returns the value of the "verified_by_validation_id" field in the mutation.
func (m *TaskResultMutation) VerifiedByValidationID() (r string, exists bool) {
	v := m.verified_by_validation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedByValidationID returns the old "verified_by_validation_id" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldVerifiedByValidationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedByValidationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedByValidationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedByValidationID: %w", err)
	}
	return oldValue.VerifiedByValidationID, nil
}

// ClearVerifiedByValidationID clears the value of the "verified_by_validation_id" field.
func (m *TaskResultMutation) ClearVerifiedByValidationID() {
	m.verified_by_validation_id = nil
	m.clearedFields[taskresult.FieldVerifiedByValidationID] = struct{}{}
}

// VerifiedByValidationIDCleared returns if the "verified_by_validation_id" field was cleared in this mutation.
func (m *TaskResultMutation) VerifiedByValidationIDCleared() bool {
	_, ok := m.clearedFields[taskresult.FieldVerifiedByValidationID]
	return ok
}

// ResetVerifiedByValidationID resets all changes to the "verified_by_validation_id" field.
func (m *TaskResultMutation) ResetVerifiedByValidationID() {
	m.verified_by_validation_id = nil
	delete(m.clearedFields, taskresult.FieldVerifiedByValidationID)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskResultMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskresult.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskResultMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskResultMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskResultMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskResultMutation builder.
func (m *TaskResultMutation) Where(ps ...predicate.TaskResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskResult).
func (m *TaskResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskResultMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent_id != nil {
		fields = append(fields, taskresult.FieldAgentID)
	}
	if m.task != nil {
		fields = append(fields, taskresult.FieldTaskID)
	}
	if m.markdown_path != nil {
		fields = append(fields, taskresult.FieldMarkdownPath)
	}
	if m.markdown_content != nil {
		fields = append(fields, taskresult.FieldMarkdownContent)
	}
	if m.result_type != nil {
		fields = append(fields, taskresult.FieldResultType)
	}
	if m.summary != nil {
		fields = append(fields, taskresult.FieldSummary)
	}
	if m.verification_status != nil {
		fields = append(fields, taskresult.FieldVerificationStatus)
	}
	if m.created_at != nil {
		fields = append(fields, taskresult.FieldCreatedAt)
	}
	if m.verified_at != nil {
		fields = append(fields, taskresult.FieldVerifiedAt)
	}
	if m.verified_by_validation_id != nil {
		fields = append(fields, taskresult.FieldVerifiedByValidationID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskresult.FieldAgentID:
		return m.AgentID()
	case taskresult.FieldTaskID:
		return m.TaskID()
	case taskresult.FieldMarkdownPath:
		return m.MarkdownPath()
	case taskresult.FieldMarkdownContent:
		return m.MarkdownContent()
	case taskresult.FieldResultType:
		return m.ResultType()
	case taskresult.FieldSummary:
		return m.Summary()
	case taskresult.FieldVerificationStatus:
		return m.VerificationStatus()
	case taskresult.FieldCreatedAt:
		return m.CreatedAt()
	case taskresult.FieldVerifiedAt:
		return m.VerifiedAt()
	case taskresult.FieldVerifiedByValidationID:
		return m.VerifiedByValidationID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskresult.FieldAgentID:
		return m.OldAgentID(ctx)
	case taskresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskresult.FieldMarkdownPath:
		return m.OldMarkdownPath(ctx)
	case taskresult.FieldMarkdownContent:
		return m.OldMarkdownContent(ctx)
	case taskresult.FieldResultType:
		return m.OldResultType(ctx)
	case taskresult.FieldSummary:
		return m.OldSummary(ctx)
	case taskresult.FieldVerificationStatus:
		return m.OldVerificationStatus(ctx)
	case taskresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case taskresult.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case taskresult.FieldVerifiedByValidationID:
		return m.OldVerifiedByValidationID(ctx)
	}
	return nil, fmt.Errorf("unknown TaskResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskresult.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case taskresult.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskresult.FieldMarkdownPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdownPath(v)
		return nil
	case taskresult.FieldMarkdownContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdownContent(v)
		return nil
	case taskresult.FieldResultType:
		v, ok := value.(taskresult.ResultType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultType(v)
		return nil
	case taskresult.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case taskresult.FieldVerificationStatus:
		v, ok := value.(taskresult.VerificationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationStatus(v)
		return nil
	case taskresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case taskresult.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case taskresult.FieldVerifiedByValidationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedByValidationID(v)
		return nil
	}
	return fmt.Errorf("unknown TaskResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskresult.FieldVerifiedAt) {
		fields = append(fields, taskresult.FieldVerifiedAt)
	}
	if m.FieldCleared(taskresult.FieldVerifiedByValidationID) {
		fields = append(fields, taskresult.FieldVerifiedByValidationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskResultMutation) ClearField(name string) error {
	switch name {
	case taskresult.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	case taskresult.FieldVerifiedByValidationID:
		m.ClearVerifiedByValidationID()
		return nil
	}
	return fmt.Errorf("unknown TaskResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskResultMutation) ResetField(name string) error {
	switch name {
	case taskresult.FieldAgentID:
		m.ResetAgentID()
		return nil
	case taskresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskresult.FieldMarkdownPath:
		m.ResetMarkdownPath()
		return nil
	case taskresult.FieldMarkdownContent:
		m.ResetMarkdownContent()
		return nil
	case taskresult.FieldResultType:
		m.ResetResultType()
		return nil
	case taskresult.FieldSummary:
		m.ResetSummary()
		return nil
	case taskresult.FieldVerificationStatus:
		m.ResetVerificationStatus()
		return nil
	case taskresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case taskresult.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case taskresult.FieldVerifiedByValidationID:
		m.ResetVerifiedByValidationID()
		return nil
	}
	return fmt.Errorf("unknown TaskResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskresult.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskresult.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskresult.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskResultMutation) EdgeCleared(name string) bool {
	switch name {
	case taskresult.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskResultMutation) ClearEdge(name string) error {
	switch name {
	case taskresult.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskResultMutation) ResetEdge(name string) error {
	switch name {
	case taskresult.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskResult edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	title                 *string
	description           *string
	ticket_type           *string
	status                *string
	priority              *ticket.Priority
	created_by_agent_id   *string
	resolved              *bool
	resolution_comment    *string
	approval_status       *ticket.ApprovalStatus
	title_embedding       *[]float32
	appendtitle_embedding []float32
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	workflow              *string
	clearedworkflow       bool
	done                  bool
	oldValue              func(context.Context) (*Ticket, error)
	predicates            []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id string) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ticket entities.
func (m *TicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *TicketMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *TicketMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *TicketMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetTitle sets the "title" field.
func (m *TicketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TicketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TicketMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
}

// SetTicketType sets the "ticket_type" field.
func (m *TicketMutation) SetTicketType(s string) {
	m.ticket_type = &s
}

// TicketType returns the value of the "ticket_type" field in the mutation.
func (m *TicketMutation) TicketType() (r string, exists bool) {
	v := m.ticket_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketType returns the old "ticket_type" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTicketType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketType: %w", err)
	}
	return oldValue.TicketType, nil
}

// ResetTicketType resets all changes to the "ticket_type" field.
func (m *TicketMutation) ResetTicketType() {
	m.ticket_type = nil
}

// SetStatus sets the "status" field.
func (m *TicketMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TicketMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TicketMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TicketMutation) SetPriority(t ticket.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TicketMutation) Priority() (r ticket.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPriority(ctx context.Context) (v ticket.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TicketMutation) ResetPriority() {
	m.priority = nil
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (m *TicketMutation) SetCreatedByAgentID(s string) {
	m.created_by_agent_id = &s
}

// CreatedByAgentID returns the value of the "created_by_agent_id" field in the mutation.
func (m *TicketMutation) CreatedByAgentID() (r string, exists bool) {
	v := m.created_by_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByAgentID returns the old "created_by_agent_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedByAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByAgentID: %w", err)
	}
	return oldValue.CreatedByAgentID, nil
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (m *TicketMutation) ClearCreatedByAgentID() {
	m.created_by_agent_id = nil
	m.clearedFields[ticket.FieldCreatedByAgentID] = struct{}{}
}

// CreatedByAgentIDCleared returns if the "created_by_agent_id" field was cleared in this mutation.
func (m *TicketMutation) CreatedByAgentIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldCreatedByAgentID]
	return ok
}

// ResetCreatedByAgentID resets all changes to the "created_by_agent_id" field.
func (m *TicketMutation) ResetCreatedByAgentID() {
	m.created_by_agent_id = nil
	delete(m.clearedFields, ticket.FieldCreatedByAgentID)
}

// SetResolved sets the "resolved" field.
func (m *TicketMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *TicketMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *TicketMutation) ResetResolved() {
	m.resolved = nil
}

// SetResolutionComment sets the "resolution_comment" field.
func (m *TicketMutation) SetResolutionComment(s string) {
	m.resolution_comment = &s
}

// ResolutionComment returns the value of the "resolution_comment" field in the mutation.
func (m *TicketMutation) ResolutionComment() (r string, exists bool) {
	v := m.resolution_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionComment returns the old "resolution_comment" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldResolutionComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionComment: %w", err)
	}
	return oldValue.ResolutionComment, nil
}

// ClearResolutionComment clears the value of the "resolution_comment" field.
func (m *TicketMutation) ClearResolutionComment() {
	m.resolution_comment = nil
	m.clearedFields[ticket.FieldResolutionComment] = struct{}{}
}

// ResolutionCommentCleared returns if the "resolution_comment" field was cleared in this mutation.
func (m *TicketMutation) ResolutionCommentCleared() bool {
	_, ok := m.clearedFields[ticket.FieldResolutionComment]
	return ok
}

// ResetResolutionComment resets all changes to the "resolution_comment" field.
func (m *TicketMutation) ResetResolutionComment() {
	m.resolution_comment = nil
	delete(m.clearedFields, ticket.FieldResolutionComment)
}

// SetApprovalStatus sets the "approval_status" field.
func (m *TicketMutation) SetApprovalStatus(ts ticket.ApprovalStatus) {
	m.approval_status = &ts
}

// ApprovalStatus returns the value of the "approval_status" field in the mutation.
func (m *TicketMutation) ApprovalStatus() (r ticket.ApprovalStatus, exists bool) {
	v := m.approval_status
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalStatus returns the old "approval_status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldApprovalStatus(ctx context.Context) (v ticket.ApprovalStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalStatus: %w", err)
	}
	return oldValue.ApprovalStatus, nil
}

// ResetApprovalStatus resets all changes to the "approval_status" field.
func (m *TicketMutation) ResetApprovalStatus() {
	m.approval_status = nil
}

// SetTitleEmbedding sets the "title_embedding" field.
func (m *TicketMutation) SetTitleEmbedding(f []float32) {
	m.title_embedding = &f
	m.appendtitle_embedding = nil
}

// TitleEmbedding returns the value of the "title_embedding" field in the mutation.
func (m *TicketMutation) TitleEmbedding() (r []float32, exists bool) {
	v := m.title_embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleEmbedding returns the old "title_embedding" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitleEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleEmbedding: %w", err)
	}
	return oldValue.TitleEmbedding, nil
}

// AppendTitleEmbedding adds f to the "title_embedding" field.
func (m *TicketMutation) AppendTitleEmbedding(f []float32) {
	m.appendtitle_embedding = append(m.appendtitle_embedding, f...)
}

// AppendedTitleEmbedding returns the list of values that were appended to the "title_embedding" field in this mutation.
func (m *TicketMutation) AppendedTitleEmbedding() ([]float32, bool) {
	if len(m.appendtitle_embedding) == 0 {
		return nil, false
	}
	return m.appendtitle_embedding, true
}

// ClearTitleEmbedding clears the value of the "title_embedding" field.
func (m *TicketMutation) ClearTitleEmbedding() {
	m.title_embedding = nil
	m.appendtitle_embedding = nil
	m.clearedFields[ticket.FieldTitleEmbedding] = struct{}{}
}

// TitleEmbeddingCleared returns if the "title_embedding" field was cleared in this mutation.
func (m *TicketMutation) TitleEmbeddingCleared() bool {
	_, ok := m.clearedFields[ticket.FieldTitleEmbedding]
	return ok
}

// ResetTitleEmbedding resets all changes to the "title_embedding" field.
func (m *TicketMutation) ResetTitleEmbedding() {
	m.title_embedding = nil
	m.appendtitle_embedding = nil
	delete(m.clearedFields, ticket.FieldTitleEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *TicketMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[ticket.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *TicketMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *TicketMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *TicketMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workflow != nil {
		fields = append(fields, ticket.FieldWorkflowID)
	}
	if m.title != nil {
		fields = append(fields, ticket.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.ticket_type != nil {
		fields = append(fields, ticket.FieldTicketType)
	}
	if m.status != nil {
		fields = append(fields, ticket.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.created_by_agent_id != nil {
		fields = append(fields, ticket.FieldCreatedByAgentID)
	}
	if m.resolved != nil {
		fields = append(fields, ticket.FieldResolved)
	}
	if m.resolution_comment != nil {
		fields = append(fields, ticket.FieldResolutionComment)
	}
	if m.approval_status != nil {
		fields = append(fields, ticket.FieldApprovalStatus)
	}
	if m.title_embedding != nil {
		fields = append(fields, ticket.FieldTitleEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldWorkflowID:
		return m.WorkflowID()
	case ticket.FieldTitle:
		return m.Title()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldTicketType:
		return m.TicketType()
	case ticket.FieldStatus:
		return m.Status()
	case ticket.FieldPriority:
		return m.Priority()
	case ticket.FieldCreatedByAgentID:
		return m.CreatedByAgentID()
	case ticket.FieldResolved:
		return m.Resolved()
	case ticket.FieldResolutionComment:
		return m.ResolutionComment()
	case ticket.FieldApprovalStatus:
		return m.ApprovalStatus()
	case ticket.FieldTitleEmbedding:
		return m.TitleEmbedding()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case ticket.FieldTitle:
		return m.OldTitle(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldTicketType:
		return m.OldTicketType(ctx)
	case ticket.FieldStatus:
		return m.OldStatus(ctx)
	case ticket.FieldPriority:
		return m.OldPriority(ctx)
	case ticket.FieldCreatedByAgentID:
		return m.OldCreatedByAgentID(ctx)
	case ticket.FieldResolved:
		return m.OldResolved(ctx)
	case ticket.FieldResolutionComment:
		return m.OldResolutionComment(ctx)
	case ticket.FieldApprovalStatus:
		return m.OldApprovalStatus(ctx)
	case ticket.FieldTitleEmbedding:
		return m.OldTitleEmbedding(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case ticket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldTicketType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketType(v)
		return nil
	case ticket.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ticket.FieldPriority:
		v, ok := value.(ticket.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ticket.FieldCreatedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByAgentID(v)
		return nil
	case ticket.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case ticket.FieldResolutionComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionComment(v)
		return nil
	case ticket.FieldApprovalStatus:
		v, ok := value.(ticket.ApprovalStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalStatus(v)
		return nil
	case ticket.FieldTitleEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleEmbedding(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldCreatedByAgentID) {
		fields = append(fields, ticket.FieldCreatedByAgentID)
	}
	if m.FieldCleared(ticket.FieldResolutionComment) {
		fields = append(fields, ticket.FieldResolutionComment)
	}
	if m.FieldCleared(ticket.FieldTitleEmbedding) {
		fields = append(fields, ticket.FieldTitleEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldCreatedByAgentID:
		m.ClearCreatedByAgentID()
		return nil
	case ticket.FieldResolutionComment:
		m.ClearResolutionComment()
		return nil
	case ticket.FieldTitleEmbedding:
		m.ClearTitleEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case ticket.FieldTitle:
		m.ResetTitle()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldTicketType:
		m.ResetTicketType()
		return nil
	case ticket.FieldStatus:
		m.ResetStatus()
		return nil
	case ticket.FieldPriority:
		m.ResetPriority()
		return nil
	case ticket.FieldCreatedByAgentID:
		m.ResetCreatedByAgentID()
		return nil
	case ticket.FieldResolved:
		m.ResetResolved()
		return nil
	case ticket.FieldResolutionComment:
		m.ResetResolutionComment()
		return nil
	case ticket.FieldApprovalStatus:
		m.ResetApprovalStatus()
		return nil
	case ticket.FieldTitleEmbedding:
		m.ResetTitleEmbedding()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, ticket.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, ticket.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	case ticket.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}

// TicketBlockMutation represents an operation that mutates the TicketBlock nodes in the graph.
type TicketBlockMutation struct {
	config
	op            Op
	typ           string
	id            *string
	blocker_id    *string
	blocked_id    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TicketBlock, error)
	predicates    []predicate.TicketBlock
}

var _ ent.Mutation = (*TicketBlockMutation)(nil)

// ticketblockOption allows management of the mutation configuration using functional options.
type ticketblockOption func(*TicketBlockMutation)

// newTicketBlockMutation creates new mutation for the TicketBlock entity.
func newTicketBlockMutation(c config, op Op, opts ...ticketblockOption) *TicketBlockMutation {
	m := &TicketBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketBlockID sets the ID field of the mutation.
func withTicketBlockID(id string) ticketblockOption {
	return func(m *TicketBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketBlock
		)
		m.oldValue = func(ctx context.Context) (*TicketBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketBlock sets the old TicketBlock of the mutation.
func withTicketBlock(node *TicketBlock) ticketblockOption {
	return func(m *TicketBlockMutation) {
		m.oldValue = func(context.Context) (*TicketBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TicketBlock entities.
func (m *TicketBlockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketBlockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketBlockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlockerID sets the "blocker_id" field.
func (m *TicketBlockMutation) SetBlockerID(s string) {
	m.blocker_id = &s
}

// BlockerID returns the value of the "blocker_id" field in the mutation.
func (m *TicketBlockMutation) BlockerID() (r string, exists bool) {
	v := m.blocker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockerID returns the old "blocker_id" field's value of the TicketBlock entity.
// If the TicketBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketBlockMutation) OldBlockerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockerID: %w", err)
	}
	return oldValue.BlockerID, nil
}

// ResetBlockerID resets all changes to the "blocker_id" field.
func (m *TicketBlockMutation) ResetBlockerID() {
	m.blocker_id = nil
}

// SetBlockedID sets the "blocked_id" field.
func (m *TicketBlockMutation) SetBlockedID(s string) {
	m.blocked_id = &s
}

// BlockedID returns the value of the "blocked_id" field in the mutation.
func (m *TicketBlockMutation) BlockedID() (r string, exists bool) {
	v := m.blocked_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedID returns the old "blocked_id" field's value of the TicketBlock entity.
// If the TicketBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketBlockMutation) OldBlockedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedID: %w", err)
	}
	return oldValue.BlockedID, nil
}

// ResetBlockedID resets all changes to the "blocked_id" field.
func (m *TicketBlockMutation) ResetBlockedID() {
	m.blocked_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketBlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketBlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TicketBlock entity.
// If the TicketBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketBlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketBlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TicketBlockMutation builder.
func (m *TicketBlockMutation) Where(ps ...predicate.TicketBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketBlock).
func (m *TicketBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketBlockMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.blocker_id != nil {
		fields = append(fields, ticketblock.FieldBlockerID)
	}
	if m.blocked_id != nil {
		fields = append(fields, ticketblock.FieldBlockedID)
	}
	if m.created_at != nil {
		fields = append(fields, ticketblock.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketblock.FieldBlockerID:
		return m.BlockerID()
	case ticketblock.FieldBlockedID:
		return m.BlockedID()
	case ticketblock.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketblock.FieldBlockerID:
		return m.OldBlockerID(ctx)
	case ticketblock.FieldBlockedID:
		return m.OldBlockedID(ctx)
	case ticketblock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketblock.FieldBlockerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockerID(v)
		return nil
	case ticketblock.FieldBlockedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedID(v)
		return nil
	case ticketblock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketBlockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketBlockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TicketBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketBlockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketBlockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TicketBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketBlockMutation) ResetField(name string) error {
	switch name {
	case ticketblock.FieldBlockerID:
		m.ResetBlockerID()
		return nil
	case ticketblock.FieldBlockedID:
		m.ResetBlockedID()
		return nil
	case ticketblock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TicketBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketBlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketBlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketBlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TicketBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketBlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TicketBlock edge %s", name)
}

// TicketCommentMutation represents an operation that mutates the TicketComment nodes in the graph.
type TicketCommentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	ticket_id       *string
	author_agent_id *string
	text            *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TicketComment, error)
	predicates      []predicate.TicketComment
}

var _ ent.Mutation = (*TicketCommentMutation)(nil)

// ticketcommentOption allows management of the mutation configuration using functional options.
type ticketcommentOption func(*TicketCommentMutation)

// newTicketCommentMutation creates new mutation for the TicketComment entity.
func newTicketCommentMutation(c config, op Op, opts ...ticketcommentOption) *TicketCommentMutation {
	m := &TicketCommentMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketCommentID sets the ID field of the mutation.
func withTicketCommentID(id string) ticketcommentOption {
	return func(m *TicketCommentMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketComment
		)
		m.oldValue = func(ctx context.Context) (*TicketComment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketComment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketComment sets the old TicketComment of the mutation.
func withTicketComment(node *TicketComment) ticketcommentOption {
	return func(m *TicketCommentMutation) {
		m.oldValue = func(context.Context) (*TicketComment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketCommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketCommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TicketComment entities.
func (m *TicketCommentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketCommentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketCommentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketComment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TicketCommentMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TicketCommentMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the TicketComment entity.
// If the TicketComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketCommentMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TicketCommentMutation) ResetTicketID() {
	m.ticket_id = nil
}

// SetAuthorAgentID sets the "author_agent_id" field.
func (m *TicketCommentMutation) SetAuthorAgentID(s string) {
	m.author_agent_id = &s
}

// AuthorAgentID returns the value of the "author_agent_id" field in the mutation.
func (m *TicketCommentMutation) AuthorAgentID() (r string, exists bool) {
	v := m.author_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorAgentID returns the old "author_agent_id" field's value of the TicketComment entity.
// If the TicketComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketCommentMutation) OldAuthorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorAgentID: %w", err)
	}
	return oldValue.AuthorAgentID, nil
}

// ClearAuthorAgentID clears the value of the "author_agent_id" field.
func (m *TicketCommentMutation) ClearAuthorAgentID() {
	m.author_agent_id = nil
	m.clearedFields[ticketcomment.FieldAuthorAgentID] = struct{}{}
}

// AuthorAgentIDCleared returns if the "author_agent_id" field was cleared in this mutation.
func (m *TicketCommentMutation) AuthorAgentIDCleared() bool {
	_, ok := m.clearedFields[ticketcomment.FieldAuthorAgentID]
	return ok
}

// ResetAuthorAgentID resets all changes to the "author_agent_id" field.
func (m *TicketCommentMutation) ResetAuthorAgentID() {
	m.author_agent_id = nil
	delete(m.clearedFields, ticketcomment.FieldAuthorAgentID)
}

// SetText sets the "text" field.
func (m *TicketCommentMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *TicketCommentMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the TicketComment entity.
// If the TicketComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketCommentMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *TicketCommentMutation) ResetText() {
	m.text = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketCommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketCommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TicketComment entity.
// If the TicketComment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketCommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketCommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TicketCommentMutation builder.
func (m *TicketCommentMutation) Where(ps ...predicate.TicketComment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketCommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketCommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketComment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketCommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketCommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketComment).
func (m *TicketCommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketCommentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.ticket_id != nil {
		fields = append(fields, ticketcomment.FieldTicketID)
	}
	if m.author_agent_id != nil {
		fields = append(fields, ticketcomment.FieldAuthorAgentID)
	}
	if m.text != nil {
		fields = append(fields, ticketcomment.FieldText)
	}
	if m.created_at != nil {
		fields = append(fields, ticketcomment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketCommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketcomment.FieldTicketID:
		return m.TicketID()
	case ticketcomment.FieldAuthorAgentID:
		return m.AuthorAgentID()
	case ticketcomment.FieldText:
		return m.Text()
	case ticketcomment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketCommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketcomment.FieldTicketID:
		return m.OldTicketID(ctx)
	case ticketcomment.FieldAuthorAgentID:
		return m.OldAuthorAgentID(ctx)
	case ticketcomment.FieldText:
		return m.OldText(ctx)
	case ticketcomment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketComment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketCommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketcomment.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case ticketcomment.FieldAuthorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorAgentID(v)
		return nil
	case ticketcomment.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case ticketcomment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketComment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketCommentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketCommentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketCommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TicketComment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketCommentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticketcomment.FieldAuthorAgentID) {
		fields = append(fields, ticketcomment.FieldAuthorAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketCommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketCommentMutation) ClearField(name string) error {
	switch name {
	case ticketcomment.FieldAuthorAgentID:
		m.ClearAuthorAgentID()
		return nil
	}
	return fmt.Errorf("unknown TicketComment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketCommentMutation) ResetField(name string) error {
	switch name {
	case ticketcomment.FieldTicketID:
		m.ResetTicketID()
		return nil
	case ticketcomment.FieldAuthorAgentID:
		m.ResetAuthorAgentID()
		return nil
	case ticketcomment.FieldText:
		m.ResetText()
		return nil
	case ticketcomment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TicketComment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketCommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketCommentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketCommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketCommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketCommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketCommentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketCommentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TicketComment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketCommentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TicketComment edge %s", name)
}

// ValidationReviewMutation represents an operation that mutates the ValidationReview nodes in the graph.
type ValidationReviewMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	validator_agent_id *string
	iteration          *int
	additeration       *int
	validation_passed  *bool
	feedback           *string
	evidence           *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	task               *string
	clearedtask        bool
	done               bool
	oldValue           func(context.Context) (*ValidationReview, error)
	predicates         []predicate.ValidationReview
}

var _ ent.Mutation = (*ValidationReviewMutation)(nil)

// validationreviewOption allows management of the mutation configuration using functional options.
type validationreviewOption func(*ValidationReviewMutation)

// newValidationReviewMutation creates new mutation for the ValidationReview entity.
func newValidationReviewMutation(c config, op Op, opts ...validationreviewOption) *ValidationReviewMutation {
	m := &ValidationReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationReviewID sets the ID field of the mutation.
func withValidationReviewID(id string) validationreviewOption {
	return func(m *ValidationReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationReview
		)
		m.oldValue = func(ctx context.Context) (*ValidationReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationReview sets the old ValidationReview of the mutation.
func withValidationReview(node *ValidationReview) validationreviewOption {
	return func(m *ValidationReviewMutation) {
		m.oldValue = func(context.Context) (*ValidationReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationReview entities.
func (m *ValidationReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ValidationReviewMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ValidationReviewMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ValidationReviewMutation) ResetTaskID() {
	m.task = nil
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (m *ValidationReviewMutation) SetValidatorAgentID(s string) {
	m.validator_agent_id = &s
}

// ValidatorAgentID returns the value of the "validator_agent_id" field in the mutation.
func (m *ValidationReviewMutation) ValidatorAgentID() (r string, exists bool) {
	v := m.validator_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatorAgentID returns the old "validator_agent_id" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldValidatorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatorAgentID: %w", err)
	}
	return oldValue.ValidatorAgentID, nil
}

// ResetValidatorAgentID resets all changes to the "validator_agent_id" field.
func (m *ValidationReviewMutation) ResetValidatorAgentID() {
	m.validator_agent_id = nil
}

// SetIteration sets the "iteration" field.
func (m *ValidationReviewMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *ValidationReviewMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *ValidationReviewMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *ValidationReviewMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *ValidationReviewMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetValidationPassed sets the "validation_passed" field.
func (m *ValidationReviewMutation) SetValidationPassed(b bool) {
	m.validation_passed = &b
}

// ValidationPassed returns the value of the "validation_passed" field in the mutation.
func (m *ValidationReviewMutation) ValidationPassed() (r bool, exists bool) {
	v := m.validation_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationPassed returns the old "validation_passed" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldValidationPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationPassed: %w", err)
	}
	return oldValue.ValidationPassed, nil
}

// ResetValidationPassed resets all changes to the "validation_passed" field.
func (m *ValidationReviewMutation) ResetValidationPassed() {
	m.validation_passed = nil
}

// SetFeedback sets the "feedback" field.
func (m *ValidationReviewMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *ValidationReviewMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *ValidationReviewMutation) ResetFeedback() {
	m.feedback = nil
}

// SetEvidence sets the "evidence" field.
func (m *ValidationReviewMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *ValidationReviewMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *ValidationReviewMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[validationreview.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *ValidationReviewMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[validationreview.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *ValidationReviewMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, validationreview.FieldEvidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationReview entity.
// If the ValidationReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ValidationReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ValidationReviewMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[validationreview.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ValidationReviewMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ValidationReviewMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ValidationReviewMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ValidationReviewMutation builder.
func (m *ValidationReviewMutation) Where(ps ...predicate.ValidationReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationReview).
func (m *ValidationReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationReviewMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, validationreview.FieldTaskID)
	}
	if m.validator_agent_id != nil {
		fields = append(fields, validationreview.FieldValidatorAgentID)
	}
	if m.iteration != nil {
		fields = append(fields, validationreview.FieldIteration)
	}
	if m.validation_passed != nil {
		fields = append(fields, validationreview.FieldValidationPassed)
	}
	if m.feedback != nil {
		fields = append(fields, validationreview.FieldFeedback)
	}
	if m.evidence != nil {
		fields = append(fields, validationreview.FieldEvidence)
	}
	if m.created_at != nil {
		fields = append(fields, validationreview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationreview.FieldTaskID:
		return m.TaskID()
	case validationreview.FieldValidatorAgentID:
		return m.ValidatorAgentID()
	case validationreview.FieldIteration:
		return m.Iteration()
	case validationreview.FieldValidationPassed:
		return m.ValidationPassed()
	case validationreview.FieldFeedback:
		return m.Feedback()
	case validationreview.FieldEvidence:
		return m.Evidence()
	case validationreview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationreview.FieldTaskID:
		return m.OldTaskID(ctx)
	case validationreview.FieldValidatorAgentID:
		return m.OldValidatorAgentID(ctx)
	case validationreview.FieldIteration:
		return m.OldIteration(ctx)
	case validationreview.FieldValidationPassed:
		return m.OldValidationPassed(ctx)
	case validationreview.FieldFeedback:
		return m.OldFeedback(ctx)
	case validationreview.FieldEvidence:
		return m.OldEvidence(ctx)
	case validationreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationreview.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case validationreview.FieldValidatorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatorAgentID(v)
		return nil
	case validationreview.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case validationreview.FieldValidationPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationPassed(v)
		return nil
	case validationreview.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case validationreview.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case validationreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationReviewMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, validationreview.FieldIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationreview.FieldIteration:
		return m.AddedIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationreview.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationreview.FieldEvidence) {
		fields = append(fields, validationreview.FieldEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationReviewMutation) ClearField(name string) error {
	switch name {
	case validationreview.FieldEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationReviewMutation) ResetField(name string) error {
	switch name {
	case validationreview.FieldTaskID:
		m.ResetTaskID()
		return nil
	case validationreview.FieldValidatorAgentID:
		m.ResetValidatorAgentID()
		return nil
	case validationreview.FieldIteration:
		m.ResetIteration()
		return nil
	case validationreview.FieldValidationPassed:
		m.ResetValidationPassed()
		return nil
	case validationreview.FieldFeedback:
		m.ResetFeedback()
		return nil
	case validationreview.FieldEvidence:
		m.ResetEvidence()
		return nil
	case validationreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, validationreview.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationreview.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, validationreview.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case validationreview.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationReviewMutation) ClearEdge(name string) error {
	switch name {
	case validationreview.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationReviewMutation) ResetEdge(name string) error {
	switch name {
	case validationreview.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ValidationReview edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	goal_text              *string
	result_required        *bool
	result_criteria        *[]string
	appendresult_criteria  []string
	on_result_found        *workflow.OnResultFound
	board_config           *map[string]interface{}
	ticket_human_review    *bool
	status                 *workflow.Status
	created_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	phases                 map[string]struct{}
	removedphases          map[string]struct{}
	clearedphases          bool
	tasks                  map[string]struct{}
	removedtasks           map[string]struct{}
	clearedtasks           bool
	agents                 map[string]struct{}
	removedagents          map[string]struct{}
	clearedagents          bool
	tickets                map[string]struct{}
	removedtickets         map[string]struct{}
	clearedtickets         bool
	results                map[string]struct{}
	removedresults         map[string]struct{}
	clearedresults         bool
	diagnostic_runs        map[string]struct{}
	removeddiagnostic_runs map[string]struct{}
	cleareddiagnostic_runs bool
	done                   bool
	oldValue               func(context.Context) (*Workflow, error)
	predicates             []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetGoalText sets the "goal_text" field.
func (m *WorkflowMutation) SetGoalText(s string) {
	m.goal_text = &s
}

// GoalText returns the value of the "goal_text" field in the mutation.
func (m *WorkflowMutation) GoalText() (r string, exists bool) {
	v := m.goal_text
	if v == nil {
		return
	}
	return *v, true
}

// OldGoalText returns the old "goal_text" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldGoalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoalText: %w", err)
	}
	return oldValue.GoalText, nil
}

// ResetGoalText resets all changes to the "goal_text" field.
func (m *WorkflowMutation) ResetGoalText() {
	m.goal_text = nil
}

// SetResultRequired sets the "result_required" field.
func (m *WorkflowMutation) SetResultRequired(b bool) {
	m.result_required = &b
}

// ResultRequired returns the value of the "result_required" field in the mutation.
func (m *WorkflowMutation) ResultRequired() (r bool, exists bool) {
	v := m.result_required
	if v == nil {
		return
	}
	return *v, true
}

// OldResultRequired returns the old "result_required" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldResultRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultRequired: %w", err)
	}
	return oldValue.ResultRequired, nil
}

// ResetResultRequired resets all changes to the "result_required" field.
func (m *WorkflowMutation) ResetResultRequired() {
	m.result_required = nil
}

// SetResultCriteria sets the "result_criteria" field.
func (m *WorkflowMutation) SetResultCriteria(s []string) {
	m.result_criteria = &s
	m.appendresult_criteria = nil
}

// ResultCriteria returns the value of the "result_criteria" field in the mutation.
func (m *WorkflowMutation) ResultCriteria() (r []string, exists bool) {
	v := m.result_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldResultCriteria returns the old "result_criteria" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldResultCriteria(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultCriteria: %w", err)
	}
	return oldValue.ResultCriteria, nil
}

// AppendResultCriteria adds s to the "result_criteria" field.
func (m *WorkflowMutation) AppendResultCriteria(s []string) {
	m.appendresult_criteria = append(m.appendresult_criteria, s...)
}

// AppendedResultCriteria returns the list of values that were appended to the "result_criteria" field in this mutation.
func (m *WorkflowMutation) AppendedResultCriteria() ([]string, bool) {
	if len(m.appendresult_criteria) == 0 {
		return nil, false
	}
	return m.appendresult_criteria, true
}

// ClearResultCriteria clears the value of the "result_criteria" field.
func (m *WorkflowMutation) ClearResultCriteria() {
	m.result_criteria = nil
	m.appendresult_criteria = nil
	m.clearedFields[workflow.FieldResultCriteria] = struct{}{}
}

// ResultCriteriaCleared returns if the "result_criteria" field was cleared in this mutation.
func (m *WorkflowMutation) ResultCriteriaCleared() bool {
	_, ok := m.clearedFields[workflow.FieldResultCriteria]
	return ok
}

// ResetResultCriteria resets all changes to the "result_criteria" field.
func (m *WorkflowMutation) ResetResultCriteria() {
	m.result_criteria = nil
	m.appendresult_criteria = nil
	delete(m.clearedFields, workflow.FieldResultCriteria)
}

// SetOnResultFound sets the "on_result_found" field.
func (m *WorkflowMutation) SetOnResultFound(wrf workflow.OnResultFound) {
	m.on_result_found = &wrf
}

// OnResultFound returns the value of the "on_result_found" field in the mutation.
func (m *WorkflowMutation) OnResultFound() (r workflow.OnResultFound, exists bool) {
	v := m.on_result_found
	if v == nil {
		return
	}
	return *v, true
}

// OldOnResultFound returns the old "on_result_found" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldOnResultFound(ctx context.Context) (v workflow.OnResultFound, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnResultFound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnResultFound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnResultFound: %w", err)
	}
	return oldValue.OnResultFound, nil
}

// ResetOnResultFound resets all changes to the "on_result_found" field.
func (m *WorkflowMutation) ResetOnResultFound() {
	m.on_result_found = nil
}

// SetBoardConfig sets the "board_config" field.
func (m *WorkflowMutation) SetBoardConfig(value map[string]interface{}) {
	m.board_config = &value
}

// BoardConfig returns the value of the "board_config" field in the mutation.
func (m *WorkflowMutation) BoardConfig() (r map[string]interface{}, exists bool) {
	v := m.board_config
	if v == nil {
		return
	}
	return *v, true
}

// OldBoardConfig returns the old "board_config" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldBoardConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoardConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoardConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoardConfig: %w", err)
	}
	return oldValue.BoardConfig, nil
}

// ClearBoardConfig clears the value of the "board_config" field.
func (m *WorkflowMutation) ClearBoardConfig() {
	m.board_config = nil
	m.clearedFields[workflow.FieldBoardConfig] = struct{}{}
}

// BoardConfigCleared returns if the "board_config" field was cleared in this mutation.
func (m *WorkflowMutation) BoardConfigCleared() bool {
	_, ok := m.clearedFields[workflow.FieldBoardConfig]
	return ok
}

// ResetBoardConfig resets all changes to the "board_config" field.
func (m *WorkflowMutation) ResetBoardConfig() {
	m.board_config = nil
	delete(m.clearedFields, workflow.FieldBoardConfig)
}

// SetTicketHumanReview sets the "ticket_human_review" field.
func (m *WorkflowMutation) SetTicketHumanReview(b bool) {
	m.ticket_human_review = &b
}

// TicketHumanReview returns the value of the "ticket_human_review" field in the mutation.
func (m *WorkflowMutation) TicketHumanReview() (r bool, exists bool) {
	v := m.ticket_human_review
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketHumanReview returns the old "ticket_human_review" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTicketHumanReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketHumanReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketHumanReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketHumanReview: %w", err)
	}
	return oldValue.TicketHumanReview, nil
}

// ResetTicketHumanReview resets all changes to the "ticket_human_review" field.
func (m *WorkflowMutation) ResetTicketHumanReview() {
	m.ticket_human_review = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowMutation) SetStatus(w workflow.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowMutation) Status() (r workflow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStatus(ctx context.Context) (v workflow.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflow.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflow.FieldCompletedAt)
}

// AddPhaseIDs adds the "phases" edge to the Phase entity by ids.
func (m *WorkflowMutation) AddPhaseIDs(ids ...string) {
	if m.phases == nil {
		m.phases = make(map[string]struct{})
	}
	for i := range ids {
		m.phases[ids[i]] = struct{}{}
	}
}

// ClearPhases clears the "phases" edge to the Phase entity.
func (m *WorkflowMutation) ClearPhases() {
	m.clearedphases = true
}

// PhasesCleared reports if the "phases" edge to the Phase entity was cleared.
func (m *WorkflowMutation) PhasesCleared() bool {
	return m.clearedphases
}

// RemovePhaseIDs removes the "phases" edge to the Phase entity by IDs.
func (m *WorkflowMutation) RemovePhaseIDs(ids ...string) {
	if m.removedphases == nil {
		m.removedphases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.phases, ids[i])
		m.removedphases[ids[i]] = struct{}{}
	}
}

// RemovedPhases returns the removed IDs of the "phases" edge to the Phase entity.
func (m *WorkflowMutation) RemovedPhasesIDs() (ids []string) {
	for id := range m.removedphases {
		ids = append(ids, id)
	}
	return
}

// PhasesIDs returns the "phases" edge IDs in the mutation.
func (m *WorkflowMutation) PhasesIDs() (ids []string) {
	for id := range m.phases {
		ids = append(ids, id)
	}
	return
}

// ResetPhases resets all changes to the "phases" edge.
func (m *WorkflowMutation) ResetPhases() {
	m.phases = nil
	m.clearedphases = false
	m.removedphases = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *WorkflowMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *WorkflowMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *WorkflowMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *WorkflowMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *WorkflowMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *WorkflowMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *WorkflowMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *WorkflowMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *WorkflowMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *WorkflowMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *WorkflowMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *WorkflowMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *WorkflowMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *WorkflowMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by ids.
func (m *WorkflowMutation) AddTicketIDs(ids ...string) {
	if m.tickets == nil {
		m.tickets = make(map[string]struct{})
	}
	for i := range ids {
		m.tickets[ids[i]] = struct{}{}
	}
}

// ClearTickets clears the "tickets" edge to the Ticket entity.
func (m *WorkflowMutation) ClearTickets() {
	m.clearedtickets = true
}

// TicketsCleared reports if the "tickets" edge to the Ticket entity was cleared.
func (m *WorkflowMutation) TicketsCleared() bool {
	return m.clearedtickets
}

// RemoveTicketIDs removes the "tickets" edge to the Ticket entity by IDs.
func (m *WorkflowMutation) RemoveTicketIDs(ids ...string) {
	if m.removedtickets == nil {
		m.removedtickets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tickets, ids[i])
		m.removedtickets[ids[i]] = struct{}{}
	}
}

// RemovedTickets returns the removed IDs of the "tickets" edge to the Ticket entity.
func (m *WorkflowMutation) RemovedTicketsIDs() (ids []string) {
	for id := range m.removedtickets {
		ids = append(ids, id)
	}
	return
}

// TicketsIDs returns the "tickets" edge IDs in the mutation.
func (m *WorkflowMutation) TicketsIDs() (ids []string) {
	for id := range m.tickets {
		ids = append(ids, id)
	}
	return
}

// ResetTickets resets all changes to the "tickets" edge.
func (m *WorkflowMutation) ResetTickets() {
	m.tickets = nil
	m.clearedtickets = false
	m.removedtickets = nil
}

// AddResultIDs adds the "results" edge to the WorkflowResult entity by ids.
func (m *WorkflowMutation) AddResultIDs(ids ...string) {
	if m.results == nil {
		m.results = make(map[string]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the WorkflowResult entity.
func (m *WorkflowMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the WorkflowResult entity was cleared.
func (m *WorkflowMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the WorkflowResult entity by IDs.
func (m *WorkflowMutation) RemoveResultIDs(ids ...string) {
	if m.removedresults == nil {
		m.removedresults = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the WorkflowResult entity.
func (m *WorkflowMutation) RemovedResultsIDs() (ids []string) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *WorkflowMutation) ResultsIDs() (ids []string) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *WorkflowMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// AddDiagnosticRunIDs adds the "diagnostic_runs" edge to the DiagnosticRun entity by ids.
func (m *WorkflowMutation) AddDiagnosticRunIDs(ids ...string) {
	if m.diagnostic_runs == nil {
		m.diagnostic_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.diagnostic_runs[ids[i]] = struct{}{}
	}
}

// ClearDiagnosticRuns clears the "diagnostic_runs" edge to the DiagnosticRun entity.
func (m *WorkflowMutation) ClearDiagnosticRuns() {
	m.cleareddiagnostic_runs = true
}

// DiagnosticRunsCleared reports if the "diagnostic_runs" edge to the DiagnosticRun entity was cleared.
func (m *WorkflowMutation) DiagnosticRunsCleared() bool {
	return m.cleareddiagnostic_runs
}

// RemoveDiagnosticRunIDs removes the "diagnostic_runs" edge to the DiagnosticRun entity by IDs.
func (m *WorkflowMutation) RemoveDiagnosticRunIDs(ids ...string) {
	if m.removeddiagnostic_runs == nil {
		m.removeddiagnostic_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.diagnostic_runs, ids[i])
		m.removeddiagnostic_runs[ids[i]] = struct{}{}
	}
}

// RemovedDiagnosticRuns returns the removed IDs of the "diagnostic_runs" edge to the DiagnosticRun entity.
func (m *WorkflowMutation) RemovedDiagnosticRunsIDs() (ids []string) {
	for id := range m.removeddiagnostic_runs {
		ids = append(ids, id)
	}
	return
}

// DiagnosticRunsIDs returns the "diagnostic_runs" edge IDs in the mutation.
func (m *WorkflowMutation) DiagnosticRunsIDs() (ids []string) {
	for id := range m.diagnostic_runs {
		ids = append(ids, id)
	}
	return
}

// ResetDiagnosticRuns resets all changes to the "diagnostic_runs" edge.
func (m *WorkflowMutation) ResetDiagnosticRuns() {
	m.diagnostic_runs = nil
	m.cleareddiagnostic_runs = false
	m.removeddiagnostic_runs = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.goal_text != nil {
		fields = append(fields, workflow.FieldGoalText)
	}
	if m.result_required != nil {
		fields = append(fields, workflow.FieldResultRequired)
	}
	if m.result_criteria != nil {
		fields = append(fields, workflow.FieldResultCriteria)
	}
	if m.on_result_found != nil {
		fields = append(fields, workflow.FieldOnResultFound)
	}
	if m.board_config != nil {
		fields = append(fields, workflow.FieldBoardConfig)
	}
	if m.ticket_human_review != nil {
		fields = append(fields, workflow.FieldTicketHumanReview)
	}
	if m.status != nil {
		fields = append(fields, workflow.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldGoalText:
		return m.GoalText()
	case workflow.FieldResultRequired:
		return m.ResultRequired()
	case workflow.FieldResultCriteria:
		return m.ResultCriteria()
	case workflow.FieldOnResultFound:
		return m.OnResultFound()
	case workflow.FieldBoardConfig:
		return m.BoardConfig()
	case workflow.FieldTicketHumanReview:
		return m.TicketHumanReview()
	case workflow.FieldStatus:
		return m.Status()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldGoalText:
		return m.OldGoalText(ctx)
	case workflow.FieldResultRequired:
		return m.OldResultRequired(ctx)
	case workflow.FieldResultCriteria:
		return m.OldResultCriteria(ctx)
	case workflow.FieldOnResultFound:
		return m.OldOnResultFound(ctx)
	case workflow.FieldBoardConfig:
		return m.OldBoardConfig(ctx)
	case workflow.FieldTicketHumanReview:
		return m.OldTicketHumanReview(ctx)
	case workflow.FieldStatus:
		return m.OldStatus(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldGoalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoalText(v)
		return nil
	case workflow.FieldResultRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultRequired(v)
		return nil
	case workflow.FieldResultCriteria:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultCriteria(v)
		return nil
	case workflow.FieldOnResultFound:
		v, ok := value.(workflow.OnResultFound)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnResultFound(v)
		return nil
	case workflow.FieldBoardConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoardConfig(v)
		return nil
	case workflow.FieldTicketHumanReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketHumanReview(v)
		return nil
	case workflow.FieldStatus:
		v, ok := value.(workflow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldResultCriteria) {
		fields = append(fields, workflow.FieldResultCriteria)
	}
	if m.FieldCleared(workflow.FieldBoardConfig) {
		fields = append(fields, workflow.FieldBoardConfig)
	}
	if m.FieldCleared(workflow.FieldCompletedAt) {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldResultCriteria:
		m.ClearResultCriteria()
		return nil
	case workflow.FieldBoardConfig:
		m.ClearBoardConfig()
		return nil
	case workflow.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldGoalText:
		m.ResetGoalText()
		return nil
	case workflow.FieldResultRequired:
		m.ResetResultRequired()
		return nil
	case workflow.FieldResultCriteria:
		m.ResetResultCriteria()
		return nil
	case workflow.FieldOnResultFound:
		m.ResetOnResultFound()
		return nil
	case workflow.FieldBoardConfig:
		m.ResetBoardConfig()
		return nil
	case workflow.FieldTicketHumanReview:
		m.ResetTicketHumanReview()
		return nil
	case workflow.FieldStatus:
		m.ResetStatus()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.phases != nil {
		edges = append(edges, workflow.EdgePhases)
	}
	if m.tasks != nil {
		edges = append(edges, workflow.EdgeTasks)
	}
	if m.agents != nil {
		edges = append(edges, workflow.EdgeAgents)
	}
	if m.tickets != nil {
		edges = append(edges, workflow.EdgeTickets)
	}
	if m.results != nil {
		edges = append(edges, workflow.EdgeResults)
	}
	if m.diagnostic_runs != nil {
		edges = append(edges, workflow.EdgeDiagnosticRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgePhases:
		ids := make([]ent.Value, 0, len(m.phases))
		for id := range m.phases {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.tickets))
		for id := range m.tickets {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeDiagnosticRuns:
		ids := make([]ent.Value, 0, len(m.diagnostic_runs))
		for id := range m.diagnostic_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedphases != nil {
		edges = append(edges, workflow.EdgePhases)
	}
	if m.removedtasks != nil {
		edges = append(edges, workflow.EdgeTasks)
	}
	if m.removedagents != nil {
		edges = append(edges, workflow.EdgeAgents)
	}
	if m.removedtickets != nil {
		edges = append(edges, workflow.EdgeTickets)
	}
	if m.removedresults != nil {
		edges = append(edges, workflow.EdgeResults)
	}
	if m.removeddiagnostic_runs != nil {
		edges = append(edges, workflow.EdgeDiagnosticRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgePhases:
		ids := make([]ent.Value, 0, len(m.removedphases))
		for id := range m.removedphases {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.removedtickets))
		for id := range m.removedtickets {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeDiagnosticRuns:
		ids := make([]ent.Value, 0, len(m.removeddiagnostic_runs))
		for id := range m.removeddiagnostic_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedphases {
		edges = append(edges, workflow.EdgePhases)
	}
	if m.clearedtasks {
		edges = append(edges, workflow.EdgeTasks)
	}
	if m.clearedagents {
		edges = append(edges, workflow.EdgeAgents)
	}
	if m.clearedtickets {
		edges = append(edges, workflow.EdgeTickets)
	}
	if m.clearedresults {
		edges = append(edges, workflow.EdgeResults)
	}
	if m.cleareddiagnostic_runs {
		edges = append(edges, workflow.EdgeDiagnosticRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgePhases:
		return m.clearedphases
	case workflow.EdgeTasks:
		return m.clearedtasks
	case workflow.EdgeAgents:
		return m.clearedagents
	case workflow.EdgeTickets:
		return m.clearedtickets
	case workflow.EdgeResults:
		return m.clearedresults
	case workflow.EdgeDiagnosticRuns:
		return m.cleareddiagnostic_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgePhases:
		m.ResetPhases()
		return nil
	case workflow.EdgeTasks:
		m.ResetTasks()
		return nil
	case workflow.EdgeAgents:
		m.ResetAgents()
		return nil
	case workflow.EdgeTickets:
		m.ResetTickets()
		return nil
	case workflow.EdgeResults:
		m.ResetResults()
		return nil
	case workflow.EdgeDiagnosticRuns:
		m.ResetDiagnosticRuns()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}

// WorkflowResultMutation represents an operation that mutates the WorkflowResult nodes in the graph.
type WorkflowResultMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	agent_id                  *string
	markdown_path             *string
	markdown_content          *string
	status                    *workflowresult.Status
	validation_feedback       *string
	validation_evidence       *[]string
	appendvalidation_evidence []string
	created_at                *time.Time
	validated_at              *time.Time
	validated_by_agent_id     *string
	clearedFields             map[string]struct{}
	workflow                  *string
	clearedworkflow           bool
	done                      bool
	oldValue                  func(context.Context) (*WorkflowResult, error)
	predicates                []predicate.WorkflowResult
}

var _ ent.Mutation = (*WorkflowResultMutation)(nil)

// workflowresultOption allows management of the mutation configuration using functional options.
type workflowresultOption func(*WorkflowResultMutation)

// newWorkflowResultMutation creates new mutation for the WorkflowResult entity.
func newWorkflowResultMutation(c config, op Op, opts ...workflowresultOption) *WorkflowResultMutation {
	m := &WorkflowResultMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowResultID sets the ID field of the mutation.
func withWorkflowResultID(id string) workflowresultOption {
	return func(m *WorkflowResultMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowResult
		)
		m.oldValue = func(ctx context.Context) (*WorkflowResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowResult sets the old WorkflowResult of the mutation.
func withWorkflowResult(node *WorkflowResult) workflowresultOption {
	return func(m *WorkflowResultMutation) {
		m.oldValue = func(context.Context) (*WorkflowResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowResult entities.
func (m *WorkflowResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowResultMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowResultMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowResultMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetAgentID sets the "agent_id" field.
func (m *WorkflowResultMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *WorkflowResultMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *WorkflowResultMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetMarkdownPath sets the "markdown_path" field.
func (m *WorkflowResultMutation) SetMarkdownPath(s string) {
	m.markdown_path = &s
}

// MarkdownPath returns the value of the "markdown_path" field in the mutation.
func (m *WorkflowResultMutation) MarkdownPath() (r string, exists bool) {
	v := m.markdown_path
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdownPath returns the old "markdown_path" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldMarkdownPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdownPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdownPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdownPath: %w", err)
	}
	return oldValue.MarkdownPath, nil
}

// ResetMarkdownPath resets all changes to the "markdown_path" field.
func (m *WorkflowResultMutation) ResetMarkdownPath() {
	m.markdown_path = nil
}

// SetMarkdownContent sets the "markdown_content" field.
func (m *WorkflowResultMutation) SetMarkdownContent(s string) {
	m.markdown_content = &s
}

// MarkdownContent returns the value of the "markdown_content" field in the mutation.
func (m *WorkflowResultMutation) MarkdownContent() (r string, exists bool) {
	v := m.markdown_content
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdownContent returns the old "markdown_content" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldMarkdownContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdownContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdownContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdownContent: %w", err)
	}
	return oldValue.MarkdownContent, nil
}

// ResetMarkdownContent resets all changes to the "markdown_content" field.
func (m *WorkflowResultMutation) ResetMarkdownContent() {
	m.markdown_content = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowResultMutation) SetStatus(w workflowresult.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowResultMutation) Status() (r workflowresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldStatus(ctx context.Context) (v workflowresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowResultMutation) ResetStatus() {
	m.status = nil
}

// SetValidationFeedback sets the "validation_feedback" field.
func (m *WorkflowResultMutation) SetValidationFeedback(s string) {
	m.validation_feedback = &s
}

// ValidationFeedback returns the value of the "validation_feedback" field in the mutation.
func (m *WorkflowResultMutation) ValidationFeedback() (r string, exists bool) {
	v := m.validation_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationFeedback returns the old "validation_feedback" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldValidationFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationFeedback: %w", err)
	}
	return oldValue.ValidationFeedback, nil
}

// ClearValidationFeedback clears the value of the "validation_feedback" field.
func (m *WorkflowResultMutation) ClearValidationFeedback() {
	m.validation_feedback = nil
	m.clearedFields[workflowresult.FieldValidationFeedback] = struct{}{}
}

// ValidationFeedbackCleared returns if the "validation_feedback" field was cleared in this mutation.
func (m *WorkflowResultMutation) ValidationFeedbackCleared() bool {
	_, ok := m.clearedFields[workflowresult.FieldValidationFeedback]
	return ok
}

// ResetValidationFeedback resets all changes to the "validation_feedback" field.
func (m *WorkflowResultMutation) ResetValidationFeedback() {
	m.validation_feedback = nil
	delete(m.clearedFields, workflowresult.FieldValidationFeedback)
}

// SetValidationEvidence sets the "validation_evidence" field.
func (m *WorkflowResultMutation) SetValidationEvidence(s []string) {
	m.validation_evidence = &s
	m.appendvalidation_evidence = nil
}

// ValidationEvidence returns the value of the "validation_evidence" field in the mutation.
func (m *WorkflowResultMutation) ValidationEvidence() (r []string, exists bool) {
	v := m.validation_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationEvidence returns the old "validation_evidence" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldValidationEvidence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationEvidence: %w", err)
	}
	return oldValue.ValidationEvidence, nil
}

// AppendValidationEvidence adds s to the "validation_evidence" field.
func (m *WorkflowResultMutation) AppendValidationEvidence(s []string) {
	m.appendvalidation_evidence = append(m.appendvalidation_evidence, s...)
}

// AppendedValidationEvidence returns the list of values that were appended to the "validation_evidence" field in this mutation.
func (m *WorkflowResultMutation) AppendedValidationEvidence() ([]string, bool) {
	if len(m.appendvalidation_evidence) == 0 {
		return nil, false
	}
	return m.appendvalidation_evidence, true
}

// ClearValidationEvidence clears the value of the "validation_evidence" field.
func (m *WorkflowResultMutation) ClearValidationEvidence() {
	m.validation_evidence = nil
	m.appendvalidation_evidence = nil
	m.clearedFields[workflowresult.FieldValidationEvidence] = struct{}{}
}

// ValidationEvidenceCleared returns if the "validation_evidence" field was cleared in this mutation.
func (m *WorkflowResultMutation) ValidationEvidenceCleared() bool {
	_, ok := m.clearedFields[workflowresult.FieldValidationEvidence]
	return ok
}

// ResetValidationEvidence resets all changes to the "validation_evidence" field.
func (m *WorkflowResultMutation) ResetValidationEvidence() {
	m.validation_evidence = nil
	m.appendvalidation_evidence = nil
	delete(m.clearedFields, workflowresult.FieldValidationEvidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetValidatedAt sets the "validated_at" field.
func (m *WorkflowResultMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *WorkflowResultMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *WorkflowResultMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[workflowresult.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *WorkflowResultMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[workflowresult.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *WorkflowResultMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, workflowresult.FieldValidatedAt)
}

// SetValidatedByAgentID sets the "validated_by_agent_id" field.
func (m *WorkflowResultMutation) SetValidatedByAgentID(s string) {
	m.validated_by_agent_id = &s
}

// ValidatedByAgentID returns the value of the "validated_by_agent_id" field in the mutation.
func (m *WorkflowResultMutation) ValidatedByAgentID() (r string, exists bool) {
	v := m.validated_by_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedByAgentID returns the old "validated_by_agent_id" field's value of the WorkflowResult entity.
// If the WorkflowResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowResultMutation) OldValidatedByAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedByAgentID: %w", err)
	}
	return oldValue.ValidatedByAgentID, nil
}

// ClearValidatedByAgentID clears the value of the "validated_by_agent_id" field.
func (m *WorkflowResultMutation) ClearValidatedByAgentID() {
	m.validated_by_agent_id = nil
	m.clearedFields[workflowresult.FieldValidatedByAgentID] = struct{}{}
}

// ValidatedByAgentIDCleared returns if the "validated_by_agent_id" field was cleared in this mutation.
func (m *WorkflowResultMutation) ValidatedByAgentIDCleared() bool {
	_, ok := m.clearedFields[workflowresult.FieldValidatedByAgentID]
	return ok
}

// ResetValidatedByAgentID resets all changes to the "validated_by_agent_id" field.
func (m *WorkflowResultMutation) ResetValidatedByAgentID() {
	m.validated_by_agent_id = nil
	delete(m.clearedFields, workflowresult.FieldValidatedByAgentID)
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowResultMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowresult.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowResultMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowResultMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowResultMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowResultMutation builder.
func (m *WorkflowResultMutation) Where(ps ...predicate.WorkflowResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowResult).
func (m *WorkflowResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowResultMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workflow != nil {
		fields = append(fields, workflowresult.FieldWorkflowID)
	}
	if m.agent_id != nil {
		fields = append(fields, workflowresult.FieldAgentID)
	}
	if m.markdown_path != nil {
		fields = append(fields, workflowresult.FieldMarkdownPath)
	}
	if m.markdown_content != nil {
		fields = append(fields, workflowresult.FieldMarkdownContent)
	}
	if m.status != nil {
		fields = append(fields, workflowresult.FieldStatus)
	}
	if m.validation_feedback != nil {
		fields = append(fields, workflowresult.FieldValidationFeedback)
	}
	if m.validation_evidence != nil {
		fields = append(fields, workflowresult.FieldValidationEvidence)
	}
	if m.created_at != nil {
		fields = append(fields, workflowresult.FieldCreatedAt)
	}
	if m.validated_at != nil {
		fields = append(fields, workflowresult.FieldValidatedAt)
	}
	if m.validated_by_agent_id != nil {
		fields = append(fields, workflowresult.FieldValidatedByAgentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowresult.FieldWorkflowID:
		return m.WorkflowID()
	case workflowresult.FieldAgentID:
		return m.AgentID()
	case workflowresult.FieldMarkdownPath:
		return m.MarkdownPath()
	case workflowresult.FieldMarkdownContent:
		return m.MarkdownContent()
	case workflowresult.FieldStatus:
		return m.Status()
	case workflowresult.FieldValidationFeedback:
		return m.ValidationFeedback()
	case workflowresult.FieldValidationEvidence:
		return m.ValidationEvidence()
	case workflowresult.FieldCreatedAt:
		return m.CreatedAt()
	case workflowresult.FieldValidatedAt:
		return m.ValidatedAt()
	case workflowresult.FieldValidatedByAgentID:
		return m.ValidatedByAgentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowresult.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowresult.FieldAgentID:
		return m.OldAgentID(ctx)
	case workflowresult.FieldMarkdownPath:
		return m.OldMarkdownPath(ctx)
	case workflowresult.FieldMarkdownContent:
		return m.OldMarkdownContent(ctx)
	case workflowresult.FieldStatus:
		return m.OldStatus(ctx)
	case workflowresult.FieldValidationFeedback:
		return m.OldValidationFeedback(ctx)
	case workflowresult.FieldValidationEvidence:
		return m.OldValidationEvidence(ctx)
	case workflowresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowresult.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	case workflowresult.FieldValidatedByAgentID:
		return m.OldValidatedByAgentID(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowresult.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowresult.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case workflowresult.FieldMarkdownPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdownPath(v)
		return nil
	case workflowresult.FieldMarkdownContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdownContent(v)
		return nil
	case workflowresult.FieldStatus:
		v, ok := value.(workflowresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowresult.FieldValidationFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationFeedback(v)
		return nil
	case workflowresult.FieldValidationEvidence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationEvidence(v)
		return nil
	case workflowresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowresult.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	case workflowresult.FieldValidatedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedByAgentID(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowresult.FieldValidationFeedback) {
		fields = append(fields, workflowresult.FieldValidationFeedback)
	}
	if m.FieldCleared(workflowresult.FieldValidationEvidence) {
		fields = append(fields, workflowresult.FieldValidationEvidence)
	}
	if m.FieldCleared(workflowresult.FieldValidatedAt) {
		fields = append(fields, workflowresult.FieldValidatedAt)
	}
	if m.FieldCleared(workflowresult.FieldValidatedByAgentID) {
		fields = append(fields, workflowresult.FieldValidatedByAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowResultMutation) ClearField(name string) error {
	switch name {
	case workflowresult.FieldValidationFeedback:
		m.ClearValidationFeedback()
		return nil
	case workflowresult.FieldValidationEvidence:
		m.ClearValidationEvidence()
		return nil
	case workflowresult.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	case workflowresult.FieldValidatedByAgentID:
		m.ClearValidatedByAgentID()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowResultMutation) ResetField(name string) error {
	switch name {
	case workflowresult.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowresult.FieldAgentID:
		m.ResetAgentID()
		return nil
	case workflowresult.FieldMarkdownPath:
		m.ResetMarkdownPath()
		return nil
	case workflowresult.FieldMarkdownContent:
		m.ResetMarkdownContent()
		return nil
	case workflowresult.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowresult.FieldValidationFeedback:
		m.ResetValidationFeedback()
		return nil
	case workflowresult.FieldValidationEvidence:
		m.ResetValidationEvidence()
		return nil
	case workflowresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowresult.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	case workflowresult.FieldValidatedByAgentID:
		m.ResetValidatedByAgentID()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowresult.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowresult.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowresult.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowResultMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowresult.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowResultMutation) ClearEdge(name string) error {
	switch name {
	case workflowresult.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowResultMutation) ResetEdge(name string) error {
	switch name {
	case workflowresult.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowResult edge %s", name)
}

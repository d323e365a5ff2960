// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorkflowID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTaskID, v))
}

// SessionName applies equality check predicate on the "session_name" field. It's identical to SessionNameEQ.
func SessionName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSessionName, v))
}

// WorktreePath applies equality check predicate on the "worktree_path" field. It's identical to WorktreePathEQ.
func WorktreePath(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorktreePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastActivity, v))
}

// KeptAliveForValidation applies equality check predicate on the "kept_alive_for_validation" field. It's identical to KeptAliveForValidationEQ.
func KeptAliveForValidation(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldKeptAliveForValidation, v))
}

// TerminationReason applies equality check predicate on the "termination_reason" field. It's identical to TerminationReasonEQ.
func TerminationReason(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTerminationReason, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldWorkflowID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAgentType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// SessionNameEQ applies the EQ predicate on the "session_name" field.
func SessionNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSessionName, v))
}

// SessionNameNEQ applies the NEQ predicate on the "session_name" field.
func SessionNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSessionName, v))
}

// SessionNameIn applies the In predicate on the "session_name" field.
func SessionNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSessionName, vs...))
}

// SessionNameNotIn applies the NotIn predicate on the "session_name" field.
func SessionNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSessionName, vs...))
}

// SessionNameGT applies the GT predicate on the "session_name" field.
func SessionNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSessionName, v))
}

// SessionNameGTE applies the GTE predicate on the "session_name" field.
func SessionNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSessionName, v))
}

// SessionNameLT applies the LT predicate on the "session_name" field.
func SessionNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSessionName, v))
}

// SessionNameLTE applies the LTE predicate on the "session_name" field.
func SessionNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSessionName, v))
}

// SessionNameContains applies the Contains predicate on the "session_name" field.
func SessionNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSessionName, v))
}

// SessionNameHasPrefix applies the HasPrefix predicate on the "session_name" field.
func SessionNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSessionName, v))
}

// SessionNameHasSuffix applies the HasSuffix predicate on the "session_name" field.
func SessionNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSessionName, v))
}

// SessionNameEqualFold applies the EqualFold predicate on the "session_name" field.
func SessionNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSessionName, v))
}

// SessionNameContainsFold applies the ContainsFold predicate on the "session_name" field.
func SessionNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSessionName, v))
}

// WorktreePathEQ applies the EQ predicate on the "worktree_path" field.
func WorktreePathEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldWorktreePath, v))
}

// WorktreePathNEQ applies the NEQ predicate on the "worktree_path" field.
func WorktreePathNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldWorktreePath, v))
}

// WorktreePathIn applies the In predicate on the "worktree_path" field.
func WorktreePathIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldWorktreePath, vs...))
}

// WorktreePathNotIn applies the NotIn predicate on the "worktree_path" field.
func WorktreePathNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldWorktreePath, vs...))
}

// WorktreePathGT applies the GT predicate on the "worktree_path" field.
func WorktreePathGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldWorktreePath, v))
}

// WorktreePathGTE applies the GTE predicate on the "worktree_path" field.
func WorktreePathGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldWorktreePath, v))
}

// WorktreePathLT applies the LT predicate on the "worktree_path" field.
func WorktreePathLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldWorktreePath, v))
}

// WorktreePathLTE applies the LTE predicate on the "worktree_path" field.
func WorktreePathLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldWorktreePath, v))
}

// WorktreePathContains applies the Contains predicate on the "worktree_path" field.
func WorktreePathContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldWorktreePath, v))
}

// WorktreePathHasPrefix applies the HasPrefix predicate on the "worktree_path" field.
func WorktreePathHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldWorktreePath, v))
}

// WorktreePathHasSuffix applies the HasSuffix predicate on the "worktree_path" field.
func WorktreePathHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldWorktreePath, v))
}

// WorktreePathIsNil applies the IsNil predicate on the "worktree_path" field.
func WorktreePathIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldWorktreePath))
}

// WorktreePathNotNil applies the NotNil predicate on the "worktree_path" field.
func WorktreePathNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldWorktreePath))
}

// WorktreePathEqualFold applies the EqualFold predicate on the "worktree_path" field.
func WorktreePathEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldWorktreePath, v))
}

// WorktreePathContainsFold applies the ContainsFold predicate on the "worktree_path" field.
func WorktreePathContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldWorktreePath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastActivity, v))
}

// KeptAliveForValidationEQ applies the EQ predicate on the "kept_alive_for_validation" field.
func KeptAliveForValidationEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldKeptAliveForValidation, v))
}

// KeptAliveForValidationNEQ applies the NEQ predicate on the "kept_alive_for_validation" field.
func KeptAliveForValidationNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldKeptAliveForValidation, v))
}

// TerminationReasonEQ applies the EQ predicate on the "termination_reason" field.
func TerminationReasonEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTerminationReason, v))
}

// TerminationReasonNEQ applies the NEQ predicate on the "termination_reason" field.
func TerminationReasonNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTerminationReason, v))
}

// TerminationReasonIn applies the In predicate on the "termination_reason" field.
func TerminationReasonIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTerminationReason, vs...))
}

// TerminationReasonNotIn applies the NotIn predicate on the "termination_reason" field.
func TerminationReasonNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTerminationReason, vs...))
}

// TerminationReasonGT applies the GT predicate on the "termination_reason" field.
func TerminationReasonGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTerminationReason, v))
}

// TerminationReasonGTE applies the GTE predicate on the "termination_reason" field.
func TerminationReasonGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTerminationReason, v))
}

// TerminationReasonLT applies the LT predicate on the "termination_reason" field.
func TerminationReasonLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTerminationReason, v))
}

// TerminationReasonLTE applies the LTE predicate on the "termination_reason" field.
func TerminationReasonLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTerminationReason, v))
}

// TerminationReasonContains applies the Contains predicate on the "termination_reason" field.
func TerminationReasonContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTerminationReason, v))
}

// TerminationReasonHasPrefix applies the HasPrefix predicate on the "termination_reason" field.
func TerminationReasonHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTerminationReason, v))
}

// TerminationReasonHasSuffix applies the HasSuffix predicate on the "termination_reason" field.
func TerminationReasonHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTerminationReason, v))
}

// TerminationReasonIsNil applies the IsNil predicate on the "termination_reason" field.
func TerminationReasonIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTerminationReason))
}

// TerminationReasonNotNil applies the NotNil predicate on the "termination_reason" field.
func TerminationReasonNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTerminationReason))
}

// TerminationReasonEqualFold applies the EqualFold predicate on the "termination_reason" field.
func TerminationReasonEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTerminationReason, v))
}

// TerminationReasonContainsFold applies the ContainsFold predicate on the "termination_reason" field.
func TerminationReasonContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTerminationReason, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWorkflowID, v))
}

// PhaseID applies equality check predicate on the "phase_id" field. It's identical to PhaseIDEQ.
func PhaseID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPhaseID, v))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTicketID, v))
}

// ParentTaskID applies equality check predicate on the "parent_task_id" field. It's identical to ParentTaskIDEQ.
func ParentTaskID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// CreatedByAgentID applies equality check predicate on the "created_by_agent_id" field. It's identical to CreatedByAgentIDEQ.
func CreatedByAgentID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedByAgentID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DoneDefinition applies equality check predicate on the "done_definition" field. It's identical to DoneDefinitionEQ.
func DoneDefinition(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDoneDefinition, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFailureReason, v))
}

// CompletionNotes applies equality check predicate on the "completion_notes" field. It's identical to CompletionNotesEQ.
func CompletionNotes(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletionNotes, v))
}

// DuplicateOfTaskID applies equality check predicate on the "duplicate_of_task_id" field. It's identical to DuplicateOfTaskIDEQ.
func DuplicateOfTaskID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDuplicateOfTaskID, v))
}

// SimilarityScore applies equality check predicate on the "similarity_score" field. It's identical to SimilarityScoreEQ.
func SimilarityScore(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSimilarityScore, v))
}

// QueuedAt applies equality check predicate on the "queued_at" field. It's identical to QueuedAtEQ.
func QueuedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuePosition applies equality check predicate on the "queue_position" field. It's identical to QueuePositionEQ.
func QueuePosition(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQueuePosition, v))
}

// PriorityBoosted applies equality check predicate on the "priority_boosted" field. It's identical to PriorityBoostedEQ.
func PriorityBoosted(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityBoosted, v))
}

// ValidationEnabled applies equality check predicate on the "validation_enabled" field. It's identical to ValidationEnabledEQ.
func ValidationEnabled(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationEnabled, v))
}

// ValidationIteration applies equality check predicate on the "validation_iteration" field. It's identical to ValidationIterationEQ.
func ValidationIteration(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationIteration, v))
}

// LastValidationFeedback applies equality check predicate on the "last_validation_feedback" field. It's identical to LastValidationFeedbackEQ.
func LastValidationFeedback(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastValidationFeedback, v))
}

// ReviewDone applies equality check predicate on the "review_done" field. It's identical to ReviewDoneEQ.
func ReviewDone(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewDone, v))
}

// AssignedAgentID applies equality check predicate on the "assigned_agent_id" field. It's identical to AssignedAgentIDEQ.
func AssignedAgentID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgentID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldWorkflowID, v))
}

// PhaseIDEQ applies the EQ predicate on the "phase_id" field.
func PhaseIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPhaseID, v))
}

// PhaseIDNEQ applies the NEQ predicate on the "phase_id" field.
func PhaseIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPhaseID, v))
}

// PhaseIDIn applies the In predicate on the "phase_id" field.
func PhaseIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPhaseID, vs...))
}

// PhaseIDNotIn applies the NotIn predicate on the "phase_id" field.
func PhaseIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPhaseID, vs...))
}

// PhaseIDGT applies the GT predicate on the "phase_id" field.
func PhaseIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPhaseID, v))
}

// PhaseIDGTE applies the GTE predicate on the "phase_id" field.
func PhaseIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPhaseID, v))
}

// PhaseIDLT applies the LT predicate on the "phase_id" field.
func PhaseIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPhaseID, v))
}

// PhaseIDLTE applies the LTE predicate on the "phase_id" field.
func PhaseIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPhaseID, v))
}

// PhaseIDContains applies the Contains predicate on the "phase_id" field.
func PhaseIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPhaseID, v))
}

// PhaseIDHasPrefix applies the HasPrefix predicate on the "phase_id" field.
func PhaseIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPhaseID, v))
}

// PhaseIDHasSuffix applies the HasSuffix predicate on the "phase_id" field.
func PhaseIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPhaseID, v))
}

// PhaseIDIsNil applies the IsNil predicate on the "phase_id" field.
func PhaseIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPhaseID))
}

// PhaseIDNotNil applies the NotNil predicate on the "phase_id" field.
func PhaseIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPhaseID))
}

// PhaseIDEqualFold applies the EqualFold predicate on the "phase_id" field.
func PhaseIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPhaseID, v))
}

// PhaseIDContainsFold applies the ContainsFold predicate on the "phase_id" field.
func PhaseIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPhaseID, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDIsNil applies the IsNil predicate on the "ticket_id" field.
func TicketIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTicketID))
}

// TicketIDNotNil applies the NotNil predicate on the "ticket_id" field.
func TicketIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTicketID))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTicketID, v))
}

// ParentTaskIDEQ applies the EQ predicate on the "parent_task_id" field.
func ParentTaskIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// ParentTaskIDNEQ applies the NEQ predicate on the "parent_task_id" field.
func ParentTaskIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldParentTaskID, v))
}

// ParentTaskIDIn applies the In predicate on the "parent_task_id" field.
func ParentTaskIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldParentTaskID, vs...))
}

// ParentTaskIDNotIn applies the NotIn predicate on the "parent_task_id" field.
func ParentTaskIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldParentTaskID, vs...))
}

// ParentTaskIDGT applies the GT predicate on the "parent_task_id" field.
func ParentTaskIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldParentTaskID, v))
}

// ParentTaskIDGTE applies the GTE predicate on the "parent_task_id" field.
func ParentTaskIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldParentTaskID, v))
}

// ParentTaskIDLT applies the LT predicate on the "parent_task_id" field.
func ParentTaskIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldParentTaskID, v))
}

// ParentTaskIDLTE applies the LTE predicate on the "parent_task_id" field.
func ParentTaskIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldParentTaskID, v))
}

// ParentTaskIDContains applies the Contains predicate on the "parent_task_id" field.
func ParentTaskIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldParentTaskID, v))
}

// ParentTaskIDHasPrefix applies the HasPrefix predicate on the "parent_task_id" field.
func ParentTaskIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldParentTaskID, v))
}

// ParentTaskIDHasSuffix applies the HasSuffix predicate on the "parent_task_id" field.
func ParentTaskIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldParentTaskID, v))
}

// ParentTaskIDIsNil applies the IsNil predicate on the "parent_task_id" field.
func ParentTaskIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldParentTaskID))
}

// ParentTaskIDNotNil applies the NotNil predicate on the "parent_task_id" field.
func ParentTaskIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldParentTaskID))
}

// ParentTaskIDEqualFold applies the EqualFold predicate on the "parent_task_id" field.
func ParentTaskIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldParentTaskID, v))
}

// ParentTaskIDContainsFold applies the ContainsFold predicate on the "parent_task_id" field.
func ParentTaskIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldParentTaskID, v))
}

// CreatedByAgentIDEQ applies the EQ predicate on the "created_by_agent_id" field.
func CreatedByAgentIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDNEQ applies the NEQ predicate on the "created_by_agent_id" field.
func CreatedByAgentIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDIn applies the In predicate on the "created_by_agent_id" field.
func CreatedByAgentIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedByAgentID, vs...))
}

// CreatedByAgentIDNotIn applies the NotIn predicate on the "created_by_agent_id" field.
func CreatedByAgentIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedByAgentID, vs...))
}

// CreatedByAgentIDGT applies the GT predicate on the "created_by_agent_id" field.
func CreatedByAgentIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDGTE applies the GTE predicate on the "created_by_agent_id" field.
func CreatedByAgentIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDLT applies the LT predicate on the "created_by_agent_id" field.
func CreatedByAgentIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDLTE applies the LTE predicate on the "created_by_agent_id" field.
func CreatedByAgentIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDContains applies the Contains predicate on the "created_by_agent_id" field.
func CreatedByAgentIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDHasPrefix applies the HasPrefix predicate on the "created_by_agent_id" field.
func CreatedByAgentIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDHasSuffix applies the HasSuffix predicate on the "created_by_agent_id" field.
func CreatedByAgentIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDIsNil applies the IsNil predicate on the "created_by_agent_id" field.
func CreatedByAgentIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCreatedByAgentID))
}

// CreatedByAgentIDNotNil applies the NotNil predicate on the "created_by_agent_id" field.
func CreatedByAgentIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCreatedByAgentID))
}

// CreatedByAgentIDEqualFold applies the EqualFold predicate on the "created_by_agent_id" field.
func CreatedByAgentIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDContainsFold applies the ContainsFold predicate on the "created_by_agent_id" field.
func CreatedByAgentIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCreatedByAgentID, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v AgentType) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v AgentType) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...AgentType) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...AgentType) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAgentType, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// DoneDefinitionEQ applies the EQ predicate on the "done_definition" field.
func DoneDefinitionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDoneDefinition, v))
}

// DoneDefinitionNEQ applies the NEQ predicate on the "done_definition" field.
func DoneDefinitionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDoneDefinition, v))
}

// DoneDefinitionIn applies the In predicate on the "done_definition" field.
func DoneDefinitionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDoneDefinition, vs...))
}

// DoneDefinitionNotIn applies the NotIn predicate on the "done_definition" field.
func DoneDefinitionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDoneDefinition, vs...))
}

// DoneDefinitionGT applies the GT predicate on the "done_definition" field.
func DoneDefinitionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDoneDefinition, v))
}

// DoneDefinitionGTE applies the GTE predicate on the "done_definition" field.
func DoneDefinitionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDoneDefinition, v))
}

// DoneDefinitionLT applies the LT predicate on the "done_definition" field.
func DoneDefinitionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDoneDefinition, v))
}

// DoneDefinitionLTE applies the LTE predicate on the "done_definition" field.
func DoneDefinitionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDoneDefinition, v))
}

// DoneDefinitionContains applies the Contains predicate on the "done_definition" field.
func DoneDefinitionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDoneDefinition, v))
}

// DoneDefinitionHasPrefix applies the HasPrefix predicate on the "done_definition" field.
func DoneDefinitionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDoneDefinition, v))
}

// DoneDefinitionHasSuffix applies the HasSuffix predicate on the "done_definition" field.
func DoneDefinitionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDoneDefinition, v))
}

// DoneDefinitionEqualFold applies the EqualFold predicate on the "done_definition" field.
func DoneDefinitionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDoneDefinition, v))
}

// DoneDefinitionContainsFold applies the ContainsFold predicate on the "done_definition" field.
func DoneDefinitionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDoneDefinition, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// DescriptionEmbeddingIsNil applies the IsNil predicate on the "description_embedding" field.
func DescriptionEmbeddingIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDescriptionEmbedding))
}

// DescriptionEmbeddingNotNil applies the NotNil predicate on the "description_embedding" field.
func DescriptionEmbeddingNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDescriptionEmbedding))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldFailureReason, v))
}

// CompletionNotesEQ applies the EQ predicate on the "completion_notes" field.
func CompletionNotesEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletionNotes, v))
}

// CompletionNotesNEQ applies the NEQ predicate on the "completion_notes" field.
func CompletionNotesNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletionNotes, v))
}

// CompletionNotesIn applies the In predicate on the "completion_notes" field.
func CompletionNotesIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletionNotes, vs...))
}

// CompletionNotesNotIn applies the NotIn predicate on the "completion_notes" field.
func CompletionNotesNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletionNotes, vs...))
}

// CompletionNotesGT applies the GT predicate on the "completion_notes" field.
func CompletionNotesGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletionNotes, v))
}

// CompletionNotesGTE applies the GTE predicate on the "completion_notes" field.
func CompletionNotesGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletionNotes, v))
}

// CompletionNotesLT applies the LT predicate on the "completion_notes" field.
func CompletionNotesLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletionNotes, v))
}

// CompletionNotesLTE applies the LTE predicate on the "completion_notes" field.
func CompletionNotesLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletionNotes, v))
}

// CompletionNotesContains applies the Contains predicate on the "completion_notes" field.
func CompletionNotesContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCompletionNotes, v))
}

// CompletionNotesHasPrefix applies the HasPrefix predicate on the "completion_notes" field.
func CompletionNotesHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCompletionNotes, v))
}

// CompletionNotesHasSuffix applies the HasSuffix predicate on the "completion_notes" field.
func CompletionNotesHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCompletionNotes, v))
}

// CompletionNotesIsNil applies the IsNil predicate on the "completion_notes" field.
func CompletionNotesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletionNotes))
}

// CompletionNotesNotNil applies the NotNil predicate on the "completion_notes" field.
func CompletionNotesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletionNotes))
}

// CompletionNotesEqualFold applies the EqualFold predicate on the "completion_notes" field.
func CompletionNotesEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCompletionNotes, v))
}

// CompletionNotesContainsFold applies the ContainsFold predicate on the "completion_notes" field.
func CompletionNotesContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCompletionNotes, v))
}

// DuplicateOfTaskIDEQ applies the EQ predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDNEQ applies the NEQ predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDIn applies the In predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDuplicateOfTaskID, vs...))
}

// DuplicateOfTaskIDNotIn applies the NotIn predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDuplicateOfTaskID, vs...))
}

// DuplicateOfTaskIDGT applies the GT predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDGTE applies the GTE predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDLT applies the LT predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDLTE applies the LTE predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDContains applies the Contains predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDHasPrefix applies the HasPrefix predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDHasSuffix applies the HasSuffix predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDIsNil applies the IsNil predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDuplicateOfTaskID))
}

// DuplicateOfTaskIDNotNil applies the NotNil predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDuplicateOfTaskID))
}

// DuplicateOfTaskIDEqualFold applies the EqualFold predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDuplicateOfTaskID, v))
}

// DuplicateOfTaskIDContainsFold applies the ContainsFold predicate on the "duplicate_of_task_id" field.
func DuplicateOfTaskIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDuplicateOfTaskID, v))
}

// SimilarityScoreEQ applies the EQ predicate on the "similarity_score" field.
func SimilarityScoreEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSimilarityScore, v))
}

// SimilarityScoreNEQ applies the NEQ predicate on the "similarity_score" field.
func SimilarityScoreNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSimilarityScore, v))
}

// SimilarityScoreIn applies the In predicate on the "similarity_score" field.
func SimilarityScoreIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreNotIn applies the NotIn predicate on the "similarity_score" field.
func SimilarityScoreNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreGT applies the GT predicate on the "similarity_score" field.
func SimilarityScoreGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSimilarityScore, v))
}

// SimilarityScoreGTE applies the GTE predicate on the "similarity_score" field.
func SimilarityScoreGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSimilarityScore, v))
}

// SimilarityScoreLT applies the LT predicate on the "similarity_score" field.
func SimilarityScoreLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSimilarityScore, v))
}

// SimilarityScoreLTE applies the LTE predicate on the "similarity_score" field.
func SimilarityScoreLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSimilarityScore, v))
}

// SimilarityScoreIsNil applies the IsNil predicate on the "similarity_score" field.
func SimilarityScoreIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSimilarityScore))
}

// SimilarityScoreNotNil applies the NotNil predicate on the "similarity_score" field.
func SimilarityScoreNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSimilarityScore))
}

// QueuedAtEQ applies the EQ predicate on the "queued_at" field.
func QueuedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuedAtNEQ applies the NEQ predicate on the "queued_at" field.
func QueuedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldQueuedAt, v))
}

// QueuedAtIn applies the In predicate on the "queued_at" field.
func QueuedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldQueuedAt, vs...))
}

// QueuedAtNotIn applies the NotIn predicate on the "queued_at" field.
func QueuedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldQueuedAt, vs...))
}

// QueuedAtGT applies the GT predicate on the "queued_at" field.
func QueuedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldQueuedAt, v))
}

// QueuedAtGTE applies the GTE predicate on the "queued_at" field.
func QueuedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldQueuedAt, v))
}

// QueuedAtLT applies the LT predicate on the "queued_at" field.
func QueuedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldQueuedAt, v))
}

// QueuedAtLTE applies the LTE predicate on the "queued_at" field.
func QueuedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldQueuedAt, v))
}

// QueuedAtIsNil applies the IsNil predicate on the "queued_at" field.
func QueuedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldQueuedAt))
}

// QueuedAtNotNil applies the NotNil predicate on the "queued_at" field.
func QueuedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldQueuedAt))
}

// QueuePositionEQ applies the EQ predicate on the "queue_position" field.
func QueuePositionEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQueuePosition, v))
}

// QueuePositionNEQ applies the NEQ predicate on the "queue_position" field.
func QueuePositionNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldQueuePosition, v))
}

// QueuePositionIn applies the In predicate on the "queue_position" field.
func QueuePositionIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldQueuePosition, vs...))
}

// QueuePositionNotIn applies the NotIn predicate on the "queue_position" field.
func QueuePositionNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldQueuePosition, vs...))
}

// QueuePositionGT applies the GT predicate on the "queue_position" field.
func QueuePositionGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldQueuePosition, v))
}

// QueuePositionGTE applies the GTE predicate on the "queue_position" field.
func QueuePositionGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldQueuePosition, v))
}

// QueuePositionLT applies the LT predicate on the "queue_position" field.
func QueuePositionLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldQueuePosition, v))
}

// QueuePositionLTE applies the LTE predicate on the "queue_position" field.
func QueuePositionLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldQueuePosition, v))
}

// QueuePositionIsNil applies the IsNil predicate on the "queue_position" field.
func QueuePositionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldQueuePosition))
}

// QueuePositionNotNil applies the NotNil predicate on the "queue_position" field.
func QueuePositionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldQueuePosition))
}

// PriorityBoostedEQ applies the EQ predicate on the "priority_boosted" field.
func PriorityBoostedEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriorityBoosted, v))
}

// PriorityBoostedNEQ applies the NEQ predicate on the "priority_boosted" field.
func PriorityBoostedNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriorityBoosted, v))
}

// ValidationEnabledEQ applies the EQ predicate on the "validation_enabled" field.
func ValidationEnabledEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationEnabled, v))
}

// ValidationEnabledNEQ applies the NEQ predicate on the "validation_enabled" field.
func ValidationEnabledNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldValidationEnabled, v))
}

// ValidationIterationEQ applies the EQ predicate on the "validation_iteration" field.
func ValidationIterationEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationIteration, v))
}

// ValidationIterationNEQ applies the NEQ predicate on the "validation_iteration" field.
func ValidationIterationNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldValidationIteration, v))
}

// ValidationIterationIn applies the In predicate on the "validation_iteration" field.
func ValidationIterationIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldValidationIteration, vs...))
}

// ValidationIterationNotIn applies the NotIn predicate on the "validation_iteration" field.
func ValidationIterationNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldValidationIteration, vs...))
}

// ValidationIterationGT applies the GT predicate on the "validation_iteration" field.
func ValidationIterationGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldValidationIteration, v))
}

// ValidationIterationGTE applies the GTE predicate on the "validation_iteration" field.
func ValidationIterationGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldValidationIteration, v))
}

// ValidationIterationLT applies the LT predicate on the "validation_iteration" field.
func ValidationIterationLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldValidationIteration, v))
}

// ValidationIterationLTE applies the LTE predicate on the "validation_iteration" field.
func ValidationIterationLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldValidationIteration, v))
}

// LastValidationFeedbackEQ applies the EQ predicate on the "last_validation_feedback" field.
func LastValidationFeedbackEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackNEQ applies the NEQ predicate on the "last_validation_feedback" field.
func LastValidationFeedbackNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackIn applies the In predicate on the "last_validation_feedback" field.
func LastValidationFeedbackIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastValidationFeedback, vs...))
}

// LastValidationFeedbackNotIn applies the NotIn predicate on the "last_validation_feedback" field.
func LastValidationFeedbackNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastValidationFeedback, vs...))
}

// LastValidationFeedbackGT applies the GT predicate on the "last_validation_feedback" field.
func LastValidationFeedbackGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackGTE applies the GTE predicate on the "last_validation_feedback" field.
func LastValidationFeedbackGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackLT applies the LT predicate on the "last_validation_feedback" field.
func LastValidationFeedbackLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackLTE applies the LTE predicate on the "last_validation_feedback" field.
func LastValidationFeedbackLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackContains applies the Contains predicate on the "last_validation_feedback" field.
func LastValidationFeedbackContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackHasPrefix applies the HasPrefix predicate on the "last_validation_feedback" field.
func LastValidationFeedbackHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackHasSuffix applies the HasSuffix predicate on the "last_validation_feedback" field.
func LastValidationFeedbackHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackIsNil applies the IsNil predicate on the "last_validation_feedback" field.
func LastValidationFeedbackIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastValidationFeedback))
}

// LastValidationFeedbackNotNil applies the NotNil predicate on the "last_validation_feedback" field.
func LastValidationFeedbackNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastValidationFeedback))
}

// LastValidationFeedbackEqualFold applies the EqualFold predicate on the "last_validation_feedback" field.
func LastValidationFeedbackEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackContainsFold applies the ContainsFold predicate on the "last_validation_feedback" field.
func LastValidationFeedbackContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldLastValidationFeedback, v))
}

// ReviewDoneEQ applies the EQ predicate on the "review_done" field.
func ReviewDoneEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewDone, v))
}

// ReviewDoneNEQ applies the NEQ predicate on the "review_done" field.
func ReviewDoneNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldReviewDone, v))
}

// AssignedAgentIDEQ applies the EQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDNEQ applies the NEQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDIn applies the In predicate on the "assigned_agent_id" field.
func AssignedAgentIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDNotIn applies the NotIn predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDGT applies the GT predicate on the "assigned_agent_id" field.
func AssignedAgentIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssignedAgentID, v))
}

// AssignedAgentIDGTE applies the GTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDLT applies the LT predicate on the "assigned_agent_id" field.
func AssignedAgentIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssignedAgentID, v))
}

// AssignedAgentIDLTE applies the LTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDContains applies the Contains predicate on the "assigned_agent_id" field.
func AssignedAgentIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasPrefix applies the HasPrefix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasSuffix applies the HasSuffix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssignedAgentID, v))
}

// AssignedAgentIDIsNil applies the IsNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignedAgentID))
}

// AssignedAgentIDNotNil applies the NotNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignedAgentID))
}

// AssignedAgentIDEqualFold applies the EqualFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssignedAgentID, v))
}

// AssignedAgentIDContainsFold applies the ContainsFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssignedAgentID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.TaskResult) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValidationReviews applies the HasEdge predicate on the "validation_reviews" edge.
func HasValidationReviews() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValidationReviewsTable, ValidationReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValidationReviewsWith applies the HasEdge predicate on the "validation_reviews" edge with a given conditions (other predicates).
func HasValidationReviewsWith(preds ...predicate.ValidationReview) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newValidationReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}

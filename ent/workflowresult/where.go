// Code generated by ent, DO NOT EDIT.

package workflowresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldWorkflowID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldAgentID, v))
}

// MarkdownPath applies equality check predicate on the "markdown_path" field. It's identical to MarkdownPathEQ.
func MarkdownPath(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldMarkdownPath, v))
}

// MarkdownContent applies equality check predicate on the "markdown_content" field. It's identical to MarkdownContentEQ.
func MarkdownContent(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldMarkdownContent, v))
}

// ValidationFeedback applies equality check predicate on the "validation_feedback" field. It's identical to ValidationFeedbackEQ.
func ValidationFeedback(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidationFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedByAgentID applies equality check predicate on the "validated_by_agent_id" field. It's identical to ValidatedByAgentIDEQ.
func ValidatedByAgentID(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidatedByAgentID, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldWorkflowID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldAgentID, v))
}

// MarkdownPathEQ applies the EQ predicate on the "markdown_path" field.
func MarkdownPathEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldMarkdownPath, v))
}

// MarkdownPathNEQ applies the NEQ predicate on the "markdown_path" field.
func MarkdownPathNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldMarkdownPath, v))
}

// MarkdownPathIn applies the In predicate on the "markdown_path" field.
func MarkdownPathIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldMarkdownPath, vs...))
}

// MarkdownPathNotIn applies the NotIn predicate on the "markdown_path" field.
func MarkdownPathNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldMarkdownPath, vs...))
}

// MarkdownPathGT applies the GT predicate on the "markdown_path" field.
func MarkdownPathGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldMarkdownPath, v))
}

// MarkdownPathGTE applies the GTE predicate on the "markdown_path" field.
func MarkdownPathGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldMarkdownPath, v))
}

// MarkdownPathLT applies the LT predicate on the "markdown_path" field.
func MarkdownPathLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldMarkdownPath, v))
}

// MarkdownPathLTE applies the LTE predicate on the "markdown_path" field.
func MarkdownPathLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldMarkdownPath, v))
}

// MarkdownPathContains applies the Contains predicate on the "markdown_path" field.
func MarkdownPathContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldMarkdownPath, v))
}

// MarkdownPathHasPrefix applies the HasPrefix predicate on the "markdown_path" field.
func MarkdownPathHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldMarkdownPath, v))
}

// MarkdownPathHasSuffix applies the HasSuffix predicate on the "markdown_path" field.
func MarkdownPathHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldMarkdownPath, v))
}

// MarkdownPathEqualFold applies the EqualFold predicate on the "markdown_path" field.
func MarkdownPathEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldMarkdownPath, v))
}

// MarkdownPathContainsFold applies the ContainsFold predicate on the "markdown_path" field.
func MarkdownPathContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldMarkdownPath, v))
}

// MarkdownContentEQ applies the EQ predicate on the "markdown_content" field.
func MarkdownContentEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldMarkdownContent, v))
}

// MarkdownContentNEQ applies the NEQ predicate on the "markdown_content" field.
func MarkdownContentNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldMarkdownContent, v))
}

// MarkdownContentIn applies the In predicate on the "markdown_content" field.
func MarkdownContentIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldMarkdownContent, vs...))
}

// MarkdownContentNotIn applies the NotIn predicate on the "markdown_content" field.
func MarkdownContentNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldMarkdownContent, vs...))
}

// MarkdownContentGT applies the GT predicate on the "markdown_content" field.
func MarkdownContentGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldMarkdownContent, v))
}

// MarkdownContentGTE applies the GTE predicate on the "markdown_content" field.
func MarkdownContentGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldMarkdownContent, v))
}

// MarkdownContentLT applies the LT predicate on the "markdown_content" field.
func MarkdownContentLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldMarkdownContent, v))
}

// MarkdownContentLTE applies the LTE predicate on the "markdown_content" field.
func MarkdownContentLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldMarkdownContent, v))
}

// MarkdownContentContains applies the Contains predicate on the "markdown_content" field.
func MarkdownContentContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldMarkdownContent, v))
}

// MarkdownContentHasPrefix applies the HasPrefix predicate on the "markdown_content" field.
func MarkdownContentHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldMarkdownContent, v))
}

// MarkdownContentHasSuffix applies the HasSuffix predicate on the "markdown_content" field.
func MarkdownContentHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldMarkdownContent, v))
}

// MarkdownContentEqualFold applies the EqualFold predicate on the "markdown_content" field.
func MarkdownContentEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldMarkdownContent, v))
}

// MarkdownContentContainsFold applies the ContainsFold predicate on the "markdown_content" field.
func MarkdownContentContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldMarkdownContent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldStatus, vs...))
}

// ValidationFeedbackEQ applies the EQ predicate on the "validation_feedback" field.
func ValidationFeedbackEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidationFeedback, v))
}

// ValidationFeedbackNEQ applies the NEQ predicate on the "validation_feedback" field.
func ValidationFeedbackNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldValidationFeedback, v))
}

// ValidationFeedbackIn applies the In predicate on the "validation_feedback" field.
func ValidationFeedbackIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldValidationFeedback, vs...))
}

// ValidationFeedbackNotIn applies the NotIn predicate on the "validation_feedback" field.
func ValidationFeedbackNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldValidationFeedback, vs...))
}

// ValidationFeedbackGT applies the GT predicate on the "validation_feedback" field.
func ValidationFeedbackGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldValidationFeedback, v))
}

// ValidationFeedbackGTE applies the GTE predicate on the "validation_feedback" field.
func ValidationFeedbackGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldValidationFeedback, v))
}

// ValidationFeedbackLT applies the LT predicate on the "validation_feedback" field.
func ValidationFeedbackLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldValidationFeedback, v))
}

// ValidationFeedbackLTE applies the LTE predicate on the "validation_feedback" field.
func ValidationFeedbackLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldValidationFeedback, v))
}

// ValidationFeedbackContains applies the Contains predicate on the "validation_feedback" field.
func ValidationFeedbackContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldValidationFeedback, v))
}

// ValidationFeedbackHasPrefix applies the HasPrefix predicate on the "validation_feedback" field.
func ValidationFeedbackHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldValidationFeedback, v))
}

// ValidationFeedbackHasSuffix applies the HasSuffix predicate on the "validation_feedback" field.
func ValidationFeedbackHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldValidationFeedback, v))
}

// ValidationFeedbackIsNil applies the IsNil predicate on the "validation_feedback" field.
func ValidationFeedbackIsNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIsNull(FieldValidationFeedback))
}

// ValidationFeedbackNotNil applies the NotNil predicate on the "validation_feedback" field.
func ValidationFeedbackNotNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotNull(FieldValidationFeedback))
}

// ValidationFeedbackEqualFold applies the EqualFold predicate on the "validation_feedback" field.
func ValidationFeedbackEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldValidationFeedback, v))
}

// ValidationFeedbackContainsFold applies the ContainsFold predicate on the "validation_feedback" field.
func ValidationFeedbackContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldValidationFeedback, v))
}

// ValidationEvidenceIsNil applies the IsNil predicate on the "validation_evidence" field.
func ValidationEvidenceIsNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIsNull(FieldValidationEvidence))
}

// ValidationEvidenceNotNil applies the NotNil predicate on the "validation_evidence" field.
func ValidationEvidenceNotNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotNull(FieldValidationEvidence))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldCreatedAt, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotNull(FieldValidatedAt))
}

// ValidatedByAgentIDEQ applies the EQ predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDNEQ applies the NEQ predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDIn applies the In predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldValidatedByAgentID, vs...))
}

// ValidatedByAgentIDNotIn applies the NotIn predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldValidatedByAgentID, vs...))
}

// ValidatedByAgentIDGT applies the GT predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDGTE applies the GTE predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDLT applies the LT predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDLTE applies the LTE predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDContains applies the Contains predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDHasPrefix applies the HasPrefix predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDHasSuffix applies the HasSuffix predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDIsNil applies the IsNil predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDIsNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIsNull(FieldValidatedByAgentID))
}

// ValidatedByAgentIDNotNil applies the NotNil predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDNotNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotNull(FieldValidatedByAgentID))
}

// ValidatedByAgentIDEqualFold applies the EqualFold predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldValidatedByAgentID, v))
}

// ValidatedByAgentIDContainsFold applies the ContainsFold predicate on the "validated_by_agent_id" field.
func ValidatedByAgentIDContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldValidatedByAgentID, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.WorkflowResult {
	return predicate.WorkflowResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.WorkflowResult {
	return predicate.WorkflowResult(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowResult) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowResult) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowResult) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.NotPredicates(p))
}

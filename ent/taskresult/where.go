// Code generated by ent, DO NOT EDIT.

package taskresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAgentID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldTaskID, v))
}

// MarkdownPath applies equality check predicate on the "markdown_path" field. It's identical to MarkdownPathEQ.
func MarkdownPath(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMarkdownPath, v))
}

// MarkdownContent applies equality check predicate on the "markdown_content" field. It's identical to MarkdownContentEQ.
func MarkdownContent(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMarkdownContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldCreatedAt, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedByValidationID applies equality check predicate on the "verified_by_validation_id" field. It's identical to VerifiedByValidationIDEQ.
func VerifiedByValidationID(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldVerifiedByValidationID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldAgentID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldTaskID, v))
}

// MarkdownPathEQ applies the EQ predicate on the "markdown_path" field.
func MarkdownPathEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMarkdownPath, v))
}

// MarkdownPathNEQ applies the NEQ predicate on the "markdown_path" field.
func MarkdownPathNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldMarkdownPath, v))
}

// MarkdownPathIn applies the In predicate on the "markdown_path" field.
func MarkdownPathIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldMarkdownPath, vs...))
}

// MarkdownPathNotIn applies the NotIn predicate on the "markdown_path" field.
func MarkdownPathNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldMarkdownPath, vs...))
}

// MarkdownPathGT applies the GT predicate on the "markdown_path" field.
func MarkdownPathGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldMarkdownPath, v))
}

// MarkdownPathGTE applies the GTE predicate on the "markdown_path" field.
func MarkdownPathGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldMarkdownPath, v))
}

// MarkdownPathLT applies the LT predicate on the "markdown_path" field.
func MarkdownPathLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldMarkdownPath, v))
}

// MarkdownPathLTE applies the LTE predicate on the "markdown_path" field.
func MarkdownPathLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldMarkdownPath, v))
}

// MarkdownPathContains applies the Contains predicate on the "markdown_path" field.
func MarkdownPathContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldMarkdownPath, v))
}

// MarkdownPathHasPrefix applies the HasPrefix predicate on the "markdown_path" field.
func MarkdownPathHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldMarkdownPath, v))
}

// MarkdownPathHasSuffix applies the HasSuffix predicate on the "markdown_path" field.
func MarkdownPathHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldMarkdownPath, v))
}

// MarkdownPathEqualFold applies the EqualFold predicate on the "markdown_path" field.
func MarkdownPathEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldMarkdownPath, v))
}

// MarkdownPathContainsFold applies the ContainsFold predicate on the "markdown_path" field.
func MarkdownPathContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldMarkdownPath, v))
}

// MarkdownContentEQ applies the EQ predicate on the "markdown_content" field.
func MarkdownContentEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMarkdownContent, v))
}

// MarkdownContentNEQ applies the NEQ predicate on the "markdown_content" field.
func MarkdownContentNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldMarkdownContent, v))
}

// MarkdownContentIn applies the In predicate on the "markdown_content" field.
func MarkdownContentIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldMarkdownContent, vs...))
}

// MarkdownContentNotIn applies the NotIn predicate on the "markdown_content" field.
func MarkdownContentNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldMarkdownContent, vs...))
}

// MarkdownContentGT applies the GT predicate on the "markdown_content" field.
func MarkdownContentGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldMarkdownContent, v))
}

// MarkdownContentGTE applies the GTE predicate on the "markdown_content" field.
func MarkdownContentGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldMarkdownContent, v))
}

// MarkdownContentLT applies the LT predicate on the "markdown_content" field.
func MarkdownContentLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldMarkdownContent, v))
}

// MarkdownContentLTE applies the LTE predicate on the "markdown_content" field.
func MarkdownContentLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldMarkdownContent, v))
}

// MarkdownContentContains applies the Contains predicate on the "markdown_content" field.
func MarkdownContentContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldMarkdownContent, v))
}

// MarkdownContentHasPrefix applies the HasPrefix predicate on the "markdown_content" field.
func MarkdownContentHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldMarkdownContent, v))
}

// MarkdownContentHasSuffix applies the HasSuffix predicate on the "markdown_content" field.
func MarkdownContentHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldMarkdownContent, v))
}

// MarkdownContentEqualFold applies the EqualFold predicate on the "markdown_content" field.
func MarkdownContentEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldMarkdownContent, v))
}

// MarkdownContentContainsFold applies the ContainsFold predicate on the "markdown_content" field.
func MarkdownContentContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldMarkdownContent, v))
}

// ResultTypeEQ applies the EQ predicate on the "result_type" field.
func ResultTypeEQ(v ResultType) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldResultType, v))
}

// ResultTypeNEQ applies the NEQ predicate on the "result_type" field.
func ResultTypeNEQ(v ResultType) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldResultType, v))
}

// ResultTypeIn applies the In predicate on the "result_type" field.
func ResultTypeIn(vs ...ResultType) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldResultType, vs...))
}

// ResultTypeNotIn applies the NotIn predicate on the "result_type" field.
func ResultTypeNotIn(vs ...ResultType) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldResultType, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldSummary, v))
}

// VerificationStatusEQ applies the EQ predicate on the "verification_status" field.
func VerificationStatusEQ(v VerificationStatus) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldVerificationStatus, v))
}

// VerificationStatusNEQ applies the NEQ predicate on the "verification_status" field.
func VerificationStatusNEQ(v VerificationStatus) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldVerificationStatus, v))
}

// VerificationStatusIn applies the In predicate on the "verification_status" field.
func VerificationStatusIn(vs ...VerificationStatus) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldVerificationStatus, vs...))
}

// VerificationStatusNotIn applies the NotIn predicate on the "verification_status" field.
func VerificationStatusNotIn(vs ...VerificationStatus) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldVerificationStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldCreatedAt, v))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotNull(FieldVerifiedAt))
}

// VerifiedByValidationIDEQ applies the EQ predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDNEQ applies the NEQ predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDIn applies the In predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldVerifiedByValidationID, vs...))
}

// VerifiedByValidationIDNotIn applies the NotIn predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldVerifiedByValidationID, vs...))
}

// VerifiedByValidationIDGT applies the GT predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDGTE applies the GTE predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDLT applies the LT predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDLTE applies the LTE predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDContains applies the Contains predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDHasPrefix applies the HasPrefix predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDHasSuffix applies the HasSuffix predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDIsNil applies the IsNil predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDIsNil() predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIsNull(FieldVerifiedByValidationID))
}

// VerifiedByValidationIDNotNil applies the NotNil predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDNotNil() predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotNull(FieldVerifiedByValidationID))
}

// VerifiedByValidationIDEqualFold applies the EqualFold predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldVerifiedByValidationID, v))
}

// VerifiedByValidationIDContainsFold applies the ContainsFold predicate on the "verified_by_validation_id" field.
func VerifiedByValidationIDContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldVerifiedByValidationID, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskResult {
	return predicate.TaskResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskResult {
	return predicate.TaskResult(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskResult) predicate.TaskResult {
	return predicate.TaskResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskResult) predicate.TaskResult {
	return predicate.TaskResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskResult) predicate.TaskResult {
	return predicate.TaskResult(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldWorkflowID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// TicketType applies equality check predicate on the "ticket_type" field. It's identical to TicketTypeEQ.
func TicketType(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTicketType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStatus, v))
}

// CreatedByAgentID applies equality check predicate on the "created_by_agent_id" field. It's identical to CreatedByAgentIDEQ.
func CreatedByAgentID(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedByAgentID, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResolved, v))
}

// ResolutionComment applies equality check predicate on the "resolution_comment" field. It's identical to ResolutionCommentEQ.
func ResolutionComment(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResolutionComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldWorkflowID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldDescription, v))
}

// TicketTypeEQ applies the EQ predicate on the "ticket_type" field.
func TicketTypeEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTicketType, v))
}

// TicketTypeNEQ applies the NEQ predicate on the "ticket_type" field.
func TicketTypeNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTicketType, v))
}

// TicketTypeIn applies the In predicate on the "ticket_type" field.
func TicketTypeIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTicketType, vs...))
}

// TicketTypeNotIn applies the NotIn predicate on the "ticket_type" field.
func TicketTypeNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTicketType, vs...))
}

// TicketTypeGT applies the GT predicate on the "ticket_type" field.
func TicketTypeGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTicketType, v))
}

// TicketTypeGTE applies the GTE predicate on the "ticket_type" field.
func TicketTypeGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTicketType, v))
}

// TicketTypeLT applies the LT predicate on the "ticket_type" field.
func TicketTypeLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTicketType, v))
}

// TicketTypeLTE applies the LTE predicate on the "ticket_type" field.
func TicketTypeLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTicketType, v))
}

// TicketTypeContains applies the Contains predicate on the "ticket_type" field.
func TicketTypeContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTicketType, v))
}

// TicketTypeHasPrefix applies the HasPrefix predicate on the "ticket_type" field.
func TicketTypeHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTicketType, v))
}

// TicketTypeHasSuffix applies the HasSuffix predicate on the "ticket_type" field.
func TicketTypeHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTicketType, v))
}

// TicketTypeEqualFold applies the EqualFold predicate on the "ticket_type" field.
func TicketTypeEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTicketType, v))
}

// TicketTypeContainsFold applies the ContainsFold predicate on the "ticket_type" field.
func TicketTypeContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTicketType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldStatus, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldPriority, vs...))
}

// CreatedByAgentIDEQ applies the EQ predicate on the "created_by_agent_id" field.
func CreatedByAgentIDEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDNEQ applies the NEQ predicate on the "created_by_agent_id" field.
func CreatedByAgentIDNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDIn applies the In predicate on the "created_by_agent_id" field.
func CreatedByAgentIDIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedByAgentID, vs...))
}

// CreatedByAgentIDNotIn applies the NotIn predicate on the "created_by_agent_id" field.
func CreatedByAgentIDNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedByAgentID, vs...))
}

// CreatedByAgentIDGT applies the GT predicate on the "created_by_agent_id" field.
func CreatedByAgentIDGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDGTE applies the GTE predicate on the "created_by_agent_id" field.
func CreatedByAgentIDGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDLT applies the LT predicate on the "created_by_agent_id" field.
func CreatedByAgentIDLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDLTE applies the LTE predicate on the "created_by_agent_id" field.
func CreatedByAgentIDLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDContains applies the Contains predicate on the "created_by_agent_id" field.
func CreatedByAgentIDContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDHasPrefix applies the HasPrefix predicate on the "created_by_agent_id" field.
func CreatedByAgentIDHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDHasSuffix applies the HasSuffix predicate on the "created_by_agent_id" field.
func CreatedByAgentIDHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDIsNil applies the IsNil predicate on the "created_by_agent_id" field.
func CreatedByAgentIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldCreatedByAgentID))
}

// CreatedByAgentIDNotNil applies the NotNil predicate on the "created_by_agent_id" field.
func CreatedByAgentIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldCreatedByAgentID))
}

// CreatedByAgentIDEqualFold applies the EqualFold predicate on the "created_by_agent_id" field.
func CreatedByAgentIDEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldCreatedByAgentID, v))
}

// CreatedByAgentIDContainsFold applies the ContainsFold predicate on the "created_by_agent_id" field.
func CreatedByAgentIDContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldCreatedByAgentID, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldResolved, v))
}

// ResolutionCommentEQ applies the EQ predicate on the "resolution_comment" field.
func ResolutionCommentEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResolutionComment, v))
}

// ResolutionCommentNEQ applies the NEQ predicate on the "resolution_comment" field.
func ResolutionCommentNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldResolutionComment, v))
}

// ResolutionCommentIn applies the In predicate on the "resolution_comment" field.
func ResolutionCommentIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldResolutionComment, vs...))
}

// ResolutionCommentNotIn applies the NotIn predicate on the "resolution_comment" field.
func ResolutionCommentNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldResolutionComment, vs...))
}

// ResolutionCommentGT applies the GT predicate on the "resolution_comment" field.
func ResolutionCommentGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldResolutionComment, v))
}

// ResolutionCommentGTE applies the GTE predicate on the "resolution_comment" field.
func ResolutionCommentGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldResolutionComment, v))
}

// ResolutionCommentLT applies the LT predicate on the "resolution_comment" field.
func ResolutionCommentLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldResolutionComment, v))
}

// ResolutionCommentLTE applies the LTE predicate on the "resolution_comment" field.
func ResolutionCommentLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldResolutionComment, v))
}

// ResolutionCommentContains applies the Contains predicate on the "resolution_comment" field.
func ResolutionCommentContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldResolutionComment, v))
}

// ResolutionCommentHasPrefix applies the HasPrefix predicate on the "resolution_comment" field.
func ResolutionCommentHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldResolutionComment, v))
}

// ResolutionCommentHasSuffix applies the HasSuffix predicate on the "resolution_comment" field.
func ResolutionCommentHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldResolutionComment, v))
}

// ResolutionCommentIsNil applies the IsNil predicate on the "resolution_comment" field.
func ResolutionCommentIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldResolutionComment))
}

// ResolutionCommentNotNil applies the NotNil predicate on the "resolution_comment" field.
func ResolutionCommentNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldResolutionComment))
}

// ResolutionCommentEqualFold applies the EqualFold predicate on the "resolution_comment" field.
func ResolutionCommentEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldResolutionComment, v))
}

// ResolutionCommentContainsFold applies the ContainsFold predicate on the "resolution_comment" field.
func ResolutionCommentContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldResolutionComment, v))
}

// ApprovalStatusEQ applies the EQ predicate on the "approval_status" field.
func ApprovalStatusEQ(v ApprovalStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldApprovalStatus, v))
}

// ApprovalStatusNEQ applies the NEQ predicate on the "approval_status" field.
func ApprovalStatusNEQ(v ApprovalStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldApprovalStatus, v))
}

// ApprovalStatusIn applies the In predicate on the "approval_status" field.
func ApprovalStatusIn(vs ...ApprovalStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldApprovalStatus, vs...))
}

// ApprovalStatusNotIn applies the NotIn predicate on the "approval_status" field.
func ApprovalStatusNotIn(vs ...ApprovalStatus) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldApprovalStatus, vs...))
}

// TitleEmbeddingIsNil applies the IsNil predicate on the "title_embedding" field.
func TitleEmbeddingIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldTitleEmbedding))
}

// TitleEmbeddingNotNil applies the NotNil predicate on the "title_embedding" field.
func TitleEmbeddingNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldTitleEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.NotPredicates(p))
}

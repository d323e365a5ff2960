// Code generated by ent, DO NOT EDIT.

package ticketcomment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldContainsFold(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldTicketID, v))
}

// AuthorAgentID applies equality check predicate on the "author_agent_id" field. It's identical to AuthorAgentIDEQ.
func AuthorAgentID(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldAuthorAgentID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldContainsFold(FieldTicketID, v))
}

// AuthorAgentIDEQ applies the EQ predicate on the "author_agent_id" field.
func AuthorAgentIDEQ(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldAuthorAgentID, v))
}

// AuthorAgentIDNEQ applies the NEQ predicate on the "author_agent_id" field.
func AuthorAgentIDNEQ(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNEQ(FieldAuthorAgentID, v))
}

// AuthorAgentIDIn applies the In predicate on the "author_agent_id" field.
func AuthorAgentIDIn(vs ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldIn(FieldAuthorAgentID, vs...))
}

// AuthorAgentIDNotIn applies the NotIn predicate on the "author_agent_id" field.
func AuthorAgentIDNotIn(vs ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNotIn(FieldAuthorAgentID, vs...))
}

// AuthorAgentIDGT applies the GT predicate on the "author_agent_id" field.
func AuthorAgentIDGT(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGT(FieldAuthorAgentID, v))
}

// AuthorAgentIDGTE applies the GTE predicate on the "author_agent_id" field.
func AuthorAgentIDGTE(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGTE(FieldAuthorAgentID, v))
}

// AuthorAgentIDLT applies the LT predicate on the "author_agent_id" field.
func AuthorAgentIDLT(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLT(FieldAuthorAgentID, v))
}

// AuthorAgentIDLTE applies the LTE predicate on the "author_agent_id" field.
func AuthorAgentIDLTE(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLTE(FieldAuthorAgentID, v))
}

// AuthorAgentIDContains applies the Contains predicate on the "author_agent_id" field.
func AuthorAgentIDContains(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldContains(FieldAuthorAgentID, v))
}

// AuthorAgentIDHasPrefix applies the HasPrefix predicate on the "author_agent_id" field.
func AuthorAgentIDHasPrefix(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldHasPrefix(FieldAuthorAgentID, v))
}

// AuthorAgentIDHasSuffix applies the HasSuffix predicate on the "author_agent_id" field.
func AuthorAgentIDHasSuffix(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldHasSuffix(FieldAuthorAgentID, v))
}

// AuthorAgentIDIsNil applies the IsNil predicate on the "author_agent_id" field.
func AuthorAgentIDIsNil() predicate.TicketComment {
	return predicate.TicketComment(sql.FieldIsNull(FieldAuthorAgentID))
}

// AuthorAgentIDNotNil applies the NotNil predicate on the "author_agent_id" field.
func AuthorAgentIDNotNil() predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNotNull(FieldAuthorAgentID))
}

// AuthorAgentIDEqualFold applies the EqualFold predicate on the "author_agent_id" field.
func AuthorAgentIDEqualFold(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEqualFold(FieldAuthorAgentID, v))
}

// AuthorAgentIDContainsFold applies the ContainsFold predicate on the "author_agent_id" field.
func AuthorAgentIDContainsFold(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldContainsFold(FieldAuthorAgentID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldContainsFold(FieldText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TicketComment {
	return predicate.TicketComment(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TicketComment) predicate.TicketComment {
	return predicate.TicketComment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TicketComment) predicate.TicketComment {
	return predicate.TicketComment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TicketComment) predicate.TicketComment {
	return predicate.TicketComment(sql.NotPredicates(p))
}

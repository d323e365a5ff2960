// Code generated by ent, DO NOT EDIT.

package ticketblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldContainsFold(FieldID, id))
}

// BlockerID applies equality check predicate on the "blocker_id" field. It's identical to BlockerIDEQ.
func BlockerID(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldBlockerID, v))
}

// BlockedID applies equality check predicate on the "blocked_id" field. It's identical to BlockedIDEQ.
func BlockedID(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldBlockedID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// BlockerIDEQ applies the EQ predicate on the "blocker_id" field.
func BlockerIDEQ(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldBlockerID, v))
}

// BlockerIDNEQ applies the NEQ predicate on the "blocker_id" field.
func BlockerIDNEQ(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNEQ(FieldBlockerID, v))
}

// BlockerIDIn applies the In predicate on the "blocker_id" field.
func BlockerIDIn(vs ...string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldIn(FieldBlockerID, vs...))
}

// BlockerIDNotIn applies the NotIn predicate on the "blocker_id" field.
func BlockerIDNotIn(vs ...string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNotIn(FieldBlockerID, vs...))
}

// BlockerIDGT applies the GT predicate on the "blocker_id" field.
func BlockerIDGT(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGT(FieldBlockerID, v))
}

// BlockerIDGTE applies the GTE predicate on the "blocker_id" field.
func BlockerIDGTE(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGTE(FieldBlockerID, v))
}

// BlockerIDLT applies the LT predicate on the "blocker_id" field.
func BlockerIDLT(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLT(FieldBlockerID, v))
}

// BlockerIDLTE applies the LTE predicate on the "blocker_id" field.
func BlockerIDLTE(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLTE(FieldBlockerID, v))
}

// BlockerIDContains applies the Contains predicate on the "blocker_id" field.
func BlockerIDContains(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldContains(FieldBlockerID, v))
}

// BlockerIDHasPrefix applies the HasPrefix predicate on the "blocker_id" field.
func BlockerIDHasPrefix(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldHasPrefix(FieldBlockerID, v))
}

// BlockerIDHasSuffix applies the HasSuffix predicate on the "blocker_id" field.
func BlockerIDHasSuffix(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldHasSuffix(FieldBlockerID, v))
}

// BlockerIDEqualFold applies the EqualFold predicate on the "blocker_id" field.
func BlockerIDEqualFold(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEqualFold(FieldBlockerID, v))
}

// BlockerIDContainsFold applies the ContainsFold predicate on the "blocker_id" field.
func BlockerIDContainsFold(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldContainsFold(FieldBlockerID, v))
}

// BlockedIDEQ applies the EQ predicate on the "blocked_id" field.
func BlockedIDEQ(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldBlockedID, v))
}

// BlockedIDNEQ applies the NEQ predicate on the "blocked_id" field.
func BlockedIDNEQ(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNEQ(FieldBlockedID, v))
}

// BlockedIDIn applies the In predicate on the "blocked_id" field.
func BlockedIDIn(vs ...string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldIn(FieldBlockedID, vs...))
}

// BlockedIDNotIn applies the NotIn predicate on the "blocked_id" field.
func BlockedIDNotIn(vs ...string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNotIn(FieldBlockedID, vs...))
}

// BlockedIDGT applies the GT predicate on the "blocked_id" field.
func BlockedIDGT(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGT(FieldBlockedID, v))
}

// BlockedIDGTE applies the GTE predicate on the "blocked_id" field.
func BlockedIDGTE(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGTE(FieldBlockedID, v))
}

// BlockedIDLT applies the LT predicate on the "blocked_id" field.
func BlockedIDLT(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLT(FieldBlockedID, v))
}

// BlockedIDLTE applies the LTE predicate on the "blocked_id" field.
func BlockedIDLTE(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLTE(FieldBlockedID, v))
}

// BlockedIDContains applies the Contains predicate on the "blocked_id" field.
func BlockedIDContains(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldContains(FieldBlockedID, v))
}

// BlockedIDHasPrefix applies the HasPrefix predicate on the "blocked_id" field.
func BlockedIDHasPrefix(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldHasPrefix(FieldBlockedID, v))
}

// BlockedIDHasSuffix applies the HasSuffix predicate on the "blocked_id" field.
func BlockedIDHasSuffix(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldHasSuffix(FieldBlockedID, v))
}

// BlockedIDEqualFold applies the EqualFold predicate on the "blocked_id" field.
func BlockedIDEqualFold(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEqualFold(FieldBlockedID, v))
}

// BlockedIDContainsFold applies the ContainsFold predicate on the "blocked_id" field.
func BlockedIDContainsFold(v string) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldContainsFold(FieldBlockedID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TicketBlock {
	return predicate.TicketBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TicketBlock) predicate.TicketBlock {
	return predicate.TicketBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TicketBlock) predicate.TicketBlock {
	return predicate.TicketBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TicketBlock) predicate.TicketBlock {
	return predicate.TicketBlock(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package steeringintervention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldAgentID, v))
}

// GuardianAnalysisID applies equality check predicate on the "guardian_analysis_id" field. It's identical to GuardianAnalysisIDEQ.
func GuardianAnalysisID(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldGuardianAnalysisID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldTimestamp, v))
}

// SteeringType applies equality check predicate on the "steering_type" field. It's identical to SteeringTypeEQ.
func SteeringType(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldSteeringType, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldMessage, v))
}

// WasSuccessful applies equality check predicate on the "was_successful" field. It's identical to WasSuccessfulEQ.
func WasSuccessful(v bool) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldWasSuccessful, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContainsFold(FieldAgentID, v))
}

// GuardianAnalysisIDEQ applies the EQ predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDNEQ applies the NEQ predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDNEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNEQ(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDIn applies the In predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldIn(FieldGuardianAnalysisID, vs...))
}

// GuardianAnalysisIDNotIn applies the NotIn predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDNotIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNotIn(FieldGuardianAnalysisID, vs...))
}

// GuardianAnalysisIDGT applies the GT predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDGT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGT(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDGTE applies the GTE predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDGTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGTE(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDLT applies the LT predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDLT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLT(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDLTE applies the LTE predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDLTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLTE(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDContains applies the Contains predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDContains(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContains(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDHasPrefix applies the HasPrefix predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDHasPrefix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasPrefix(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDHasSuffix applies the HasSuffix predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDHasSuffix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasSuffix(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDEqualFold applies the EqualFold predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDEqualFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEqualFold(FieldGuardianAnalysisID, v))
}

// GuardianAnalysisIDContainsFold applies the ContainsFold predicate on the "guardian_analysis_id" field.
func GuardianAnalysisIDContainsFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContainsFold(FieldGuardianAnalysisID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLTE(FieldTimestamp, v))
}

// SteeringTypeEQ applies the EQ predicate on the "steering_type" field.
func SteeringTypeEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldSteeringType, v))
}

// SteeringTypeNEQ applies the NEQ predicate on the "steering_type" field.
func SteeringTypeNEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNEQ(FieldSteeringType, v))
}

// SteeringTypeIn applies the In predicate on the "steering_type" field.
func SteeringTypeIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldIn(FieldSteeringType, vs...))
}

// SteeringTypeNotIn applies the NotIn predicate on the "steering_type" field.
func SteeringTypeNotIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNotIn(FieldSteeringType, vs...))
}

// SteeringTypeGT applies the GT predicate on the "steering_type" field.
func SteeringTypeGT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGT(FieldSteeringType, v))
}

// SteeringTypeGTE applies the GTE predicate on the "steering_type" field.
func SteeringTypeGTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGTE(FieldSteeringType, v))
}

// SteeringTypeLT applies the LT predicate on the "steering_type" field.
func SteeringTypeLT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLT(FieldSteeringType, v))
}

// SteeringTypeLTE applies the LTE predicate on the "steering_type" field.
func SteeringTypeLTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLTE(FieldSteeringType, v))
}

// SteeringTypeContains applies the Contains predicate on the "steering_type" field.
func SteeringTypeContains(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContains(FieldSteeringType, v))
}

// SteeringTypeHasPrefix applies the HasPrefix predicate on the "steering_type" field.
func SteeringTypeHasPrefix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasPrefix(FieldSteeringType, v))
}

// SteeringTypeHasSuffix applies the HasSuffix predicate on the "steering_type" field.
func SteeringTypeHasSuffix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasSuffix(FieldSteeringType, v))
}

// SteeringTypeEqualFold applies the EqualFold predicate on the "steering_type" field.
func SteeringTypeEqualFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEqualFold(FieldSteeringType, v))
}

// SteeringTypeContainsFold applies the ContainsFold predicate on the "steering_type" field.
func SteeringTypeContainsFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContainsFold(FieldSteeringType, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldContainsFold(FieldMessage, v))
}

// WasSuccessfulEQ applies the EQ predicate on the "was_successful" field.
func WasSuccessfulEQ(v bool) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldEQ(FieldWasSuccessful, v))
}

// WasSuccessfulNEQ applies the NEQ predicate on the "was_successful" field.
func WasSuccessfulNEQ(v bool) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNEQ(FieldWasSuccessful, v))
}

// WasSuccessfulIsNil applies the IsNil predicate on the "was_successful" field.
func WasSuccessfulIsNil() predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldIsNull(FieldWasSuccessful))
}

// WasSuccessfulNotNil applies the NotNil predicate on the "was_successful" field.
func WasSuccessfulNotNil() predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.FieldNotNull(FieldWasSuccessful))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SteeringIntervention) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SteeringIntervention) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SteeringIntervention) predicate.SteeringIntervention {
	return predicate.SteeringIntervention(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package guardiananalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldAgentID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldTimestamp, v))
}

// CurrentPhase applies equality check predicate on the "current_phase" field. It's identical to CurrentPhaseEQ.
func CurrentPhase(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldCurrentPhase, v))
}

// AlignmentScore applies equality check predicate on the "alignment_score" field. It's identical to AlignmentScoreEQ.
func AlignmentScore(v float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldAlignmentScore, v))
}

// TrajectoryAligned applies equality check predicate on the "trajectory_aligned" field. It's identical to TrajectoryAlignedEQ.
func TrajectoryAligned(v bool) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldTrajectoryAligned, v))
}

// TrajectorySummary applies equality check predicate on the "trajectory_summary" field. It's identical to TrajectorySummaryEQ.
func TrajectorySummary(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldTrajectorySummary, v))
}

// NeedsSteering applies equality check predicate on the "needs_steering" field. It's identical to NeedsSteeringEQ.
func NeedsSteering(v bool) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldNeedsSteering, v))
}

// SteeringMessage applies equality check predicate on the "steering_message" field. It's identical to SteeringMessageEQ.
func SteeringMessage(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldSteeringMessage, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContainsFold(FieldAgentID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLTE(FieldTimestamp, v))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseGT applies the GT predicate on the "current_phase" field.
func CurrentPhaseGT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGT(FieldCurrentPhase, v))
}

// CurrentPhaseGTE applies the GTE predicate on the "current_phase" field.
func CurrentPhaseGTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGTE(FieldCurrentPhase, v))
}

// CurrentPhaseLT applies the LT predicate on the "current_phase" field.
func CurrentPhaseLT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLT(FieldCurrentPhase, v))
}

// CurrentPhaseLTE applies the LTE predicate on the "current_phase" field.
func CurrentPhaseLTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLTE(FieldCurrentPhase, v))
}

// CurrentPhaseContains applies the Contains predicate on the "current_phase" field.
func CurrentPhaseContains(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContains(FieldCurrentPhase, v))
}

// CurrentPhaseHasPrefix applies the HasPrefix predicate on the "current_phase" field.
func CurrentPhaseHasPrefix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasPrefix(FieldCurrentPhase, v))
}

// CurrentPhaseHasSuffix applies the HasSuffix predicate on the "current_phase" field.
func CurrentPhaseHasSuffix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasSuffix(FieldCurrentPhase, v))
}

// CurrentPhaseIsNil applies the IsNil predicate on the "current_phase" field.
func CurrentPhaseIsNil() predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIsNull(FieldCurrentPhase))
}

// CurrentPhaseNotNil applies the NotNil predicate on the "current_phase" field.
func CurrentPhaseNotNil() predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotNull(FieldCurrentPhase))
}

// CurrentPhaseEqualFold applies the EqualFold predicate on the "current_phase" field.
func CurrentPhaseEqualFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEqualFold(FieldCurrentPhase, v))
}

// CurrentPhaseContainsFold applies the ContainsFold predicate on the "current_phase" field.
func CurrentPhaseContainsFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContainsFold(FieldCurrentPhase, v))
}

// AlignmentScoreEQ applies the EQ predicate on the "alignment_score" field.
func AlignmentScoreEQ(v float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldAlignmentScore, v))
}

// AlignmentScoreNEQ applies the NEQ predicate on the "alignment_score" field.
func AlignmentScoreNEQ(v float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldAlignmentScore, v))
}

// AlignmentScoreIn applies the In predicate on the "alignment_score" field.
func AlignmentScoreIn(vs ...float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldAlignmentScore, vs...))
}

// AlignmentScoreNotIn applies the NotIn predicate on the "alignment_score" field.
func AlignmentScoreNotIn(vs ...float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldAlignmentScore, vs...))
}

// AlignmentScoreGT applies the GT predicate on the "alignment_score" field.
func AlignmentScoreGT(v float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGT(FieldAlignmentScore, v))
}

// AlignmentScoreGTE applies the GTE predicate on the "alignment_score" field.
func AlignmentScoreGTE(v float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGTE(FieldAlignmentScore, v))
}

// AlignmentScoreLT applies the LT predicate on the "alignment_score" field.
func AlignmentScoreLT(v float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLT(FieldAlignmentScore, v))
}

// AlignmentScoreLTE applies the LTE predicate on the "alignment_score" field.
func AlignmentScoreLTE(v float64) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLTE(FieldAlignmentScore, v))
}

// TrajectoryAlignedEQ applies the EQ predicate on the "trajectory_aligned" field.
func TrajectoryAlignedEQ(v bool) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldTrajectoryAligned, v))
}

// TrajectoryAlignedNEQ applies the NEQ predicate on the "trajectory_aligned" field.
func TrajectoryAlignedNEQ(v bool) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldTrajectoryAligned, v))
}

// TrajectorySummaryEQ applies the EQ predicate on the "trajectory_summary" field.
func TrajectorySummaryEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldTrajectorySummary, v))
}

// TrajectorySummaryNEQ applies the NEQ predicate on the "trajectory_summary" field.
func TrajectorySummaryNEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldTrajectorySummary, v))
}

// TrajectorySummaryIn applies the In predicate on the "trajectory_summary" field.
func TrajectorySummaryIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldTrajectorySummary, vs...))
}

// TrajectorySummaryNotIn applies the NotIn predicate on the "trajectory_summary" field.
func TrajectorySummaryNotIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldTrajectorySummary, vs...))
}

// TrajectorySummaryGT applies the GT predicate on the "trajectory_summary" field.
func TrajectorySummaryGT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGT(FieldTrajectorySummary, v))
}

// TrajectorySummaryGTE applies the GTE predicate on the "trajectory_summary" field.
func TrajectorySummaryGTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGTE(FieldTrajectorySummary, v))
}

// TrajectorySummaryLT applies the LT predicate on the "trajectory_summary" field.
func TrajectorySummaryLT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLT(FieldTrajectorySummary, v))
}

// TrajectorySummaryLTE applies the LTE predicate on the "trajectory_summary" field.
func TrajectorySummaryLTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLTE(FieldTrajectorySummary, v))
}

// TrajectorySummaryContains applies the Contains predicate on the "trajectory_summary" field.
func TrajectorySummaryContains(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContains(FieldTrajectorySummary, v))
}

// TrajectorySummaryHasPrefix applies the HasPrefix predicate on the "trajectory_summary" field.
func TrajectorySummaryHasPrefix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasPrefix(FieldTrajectorySummary, v))
}

// TrajectorySummaryHasSuffix applies the HasSuffix predicate on the "trajectory_summary" field.
func TrajectorySummaryHasSuffix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasSuffix(FieldTrajectorySummary, v))
}

// TrajectorySummaryEqualFold applies the EqualFold predicate on the "trajectory_summary" field.
func TrajectorySummaryEqualFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEqualFold(FieldTrajectorySummary, v))
}

// TrajectorySummaryContainsFold applies the ContainsFold predicate on the "trajectory_summary" field.
func TrajectorySummaryContainsFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContainsFold(FieldTrajectorySummary, v))
}

// NeedsSteeringEQ applies the EQ predicate on the "needs_steering" field.
func NeedsSteeringEQ(v bool) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldNeedsSteering, v))
}

// NeedsSteeringNEQ applies the NEQ predicate on the "needs_steering" field.
func NeedsSteeringNEQ(v bool) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldNeedsSteering, v))
}

// SteeringTypeEQ applies the EQ predicate on the "steering_type" field.
func SteeringTypeEQ(v SteeringType) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldSteeringType, v))
}

// SteeringTypeNEQ applies the NEQ predicate on the "steering_type" field.
func SteeringTypeNEQ(v SteeringType) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldSteeringType, v))
}

// SteeringTypeIn applies the In predicate on the "steering_type" field.
func SteeringTypeIn(vs ...SteeringType) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldSteeringType, vs...))
}

// SteeringTypeNotIn applies the NotIn predicate on the "steering_type" field.
func SteeringTypeNotIn(vs ...SteeringType) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldSteeringType, vs...))
}

// SteeringMessageEQ applies the EQ predicate on the "steering_message" field.
func SteeringMessageEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEQ(FieldSteeringMessage, v))
}

// SteeringMessageNEQ applies the NEQ predicate on the "steering_message" field.
func SteeringMessageNEQ(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNEQ(FieldSteeringMessage, v))
}

// SteeringMessageIn applies the In predicate on the "steering_message" field.
func SteeringMessageIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIn(FieldSteeringMessage, vs...))
}

// SteeringMessageNotIn applies the NotIn predicate on the "steering_message" field.
func SteeringMessageNotIn(vs ...string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotIn(FieldSteeringMessage, vs...))
}

// SteeringMessageGT applies the GT predicate on the "steering_message" field.
func SteeringMessageGT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGT(FieldSteeringMessage, v))
}

// SteeringMessageGTE applies the GTE predicate on the "steering_message" field.
func SteeringMessageGTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldGTE(FieldSteeringMessage, v))
}

// SteeringMessageLT applies the LT predicate on the "steering_message" field.
func SteeringMessageLT(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLT(FieldSteeringMessage, v))
}

// SteeringMessageLTE applies the LTE predicate on the "steering_message" field.
func SteeringMessageLTE(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldLTE(FieldSteeringMessage, v))
}

// SteeringMessageContains applies the Contains predicate on the "steering_message" field.
func SteeringMessageContains(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContains(FieldSteeringMessage, v))
}

// SteeringMessageHasPrefix applies the HasPrefix predicate on the "steering_message" field.
func SteeringMessageHasPrefix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasPrefix(FieldSteeringMessage, v))
}

// SteeringMessageHasSuffix applies the HasSuffix predicate on the "steering_message" field.
func SteeringMessageHasSuffix(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldHasSuffix(FieldSteeringMessage, v))
}

// SteeringMessageIsNil applies the IsNil predicate on the "steering_message" field.
func SteeringMessageIsNil() predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIsNull(FieldSteeringMessage))
}

// SteeringMessageNotNil applies the NotNil predicate on the "steering_message" field.
func SteeringMessageNotNil() predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotNull(FieldSteeringMessage))
}

// SteeringMessageEqualFold applies the EqualFold predicate on the "steering_message" field.
func SteeringMessageEqualFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldEqualFold(FieldSteeringMessage, v))
}

// SteeringMessageContainsFold applies the ContainsFold predicate on the "steering_message" field.
func SteeringMessageContainsFold(v string) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldContainsFold(FieldSteeringMessage, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.FieldNotNull(FieldDetails))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GuardianAnalysis) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GuardianAnalysis) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GuardianAnalysis) predicate.GuardianAnalysis {
	return predicate.GuardianAnalysis(sql.NotPredicates(p))
}

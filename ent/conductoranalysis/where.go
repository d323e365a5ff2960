// Code generated by ent, DO NOT EDIT.

package conductoranalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldContainsFold(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldTimestamp, v))
}

// CoherenceScore applies equality check predicate on the "coherence_score" field. It's identical to CoherenceScoreEQ.
func CoherenceScore(v float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldCoherenceScore, v))
}

// NumAgents applies equality check predicate on the "num_agents" field. It's identical to NumAgentsEQ.
func NumAgents(v int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldNumAgents, v))
}

// SystemStatus applies equality check predicate on the "system_status" field. It's identical to SystemStatusEQ.
func SystemStatus(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldSystemStatus, v))
}

// Recommendations applies equality check predicate on the "recommendations" field. It's identical to RecommendationsEQ.
func Recommendations(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldRecommendations, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLTE(FieldTimestamp, v))
}

// CoherenceScoreEQ applies the EQ predicate on the "coherence_score" field.
func CoherenceScoreEQ(v float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldCoherenceScore, v))
}

// CoherenceScoreNEQ applies the NEQ predicate on the "coherence_score" field.
func CoherenceScoreNEQ(v float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNEQ(FieldCoherenceScore, v))
}

// CoherenceScoreIn applies the In predicate on the "coherence_score" field.
func CoherenceScoreIn(vs ...float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIn(FieldCoherenceScore, vs...))
}

// CoherenceScoreNotIn applies the NotIn predicate on the "coherence_score" field.
func CoherenceScoreNotIn(vs ...float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotIn(FieldCoherenceScore, vs...))
}

// CoherenceScoreGT applies the GT predicate on the "coherence_score" field.
func CoherenceScoreGT(v float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGT(FieldCoherenceScore, v))
}

// CoherenceScoreGTE applies the GTE predicate on the "coherence_score" field.
func CoherenceScoreGTE(v float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGTE(FieldCoherenceScore, v))
}

// CoherenceScoreLT applies the LT predicate on the "coherence_score" field.
func CoherenceScoreLT(v float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLT(FieldCoherenceScore, v))
}

// CoherenceScoreLTE applies the LTE predicate on the "coherence_score" field.
func CoherenceScoreLTE(v float64) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLTE(FieldCoherenceScore, v))
}

// NumAgentsEQ applies the EQ predicate on the "num_agents" field.
func NumAgentsEQ(v int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldNumAgents, v))
}

// NumAgentsNEQ applies the NEQ predicate on the "num_agents" field.
func NumAgentsNEQ(v int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNEQ(FieldNumAgents, v))
}

// NumAgentsIn applies the In predicate on the "num_agents" field.
func NumAgentsIn(vs ...int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIn(FieldNumAgents, vs...))
}

// NumAgentsNotIn applies the NotIn predicate on the "num_agents" field.
func NumAgentsNotIn(vs ...int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotIn(FieldNumAgents, vs...))
}

// NumAgentsGT applies the GT predicate on the "num_agents" field.
func NumAgentsGT(v int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGT(FieldNumAgents, v))
}

// NumAgentsGTE applies the GTE predicate on the "num_agents" field.
func NumAgentsGTE(v int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGTE(FieldNumAgents, v))
}

// NumAgentsLT applies the LT predicate on the "num_agents" field.
func NumAgentsLT(v int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLT(FieldNumAgents, v))
}

// NumAgentsLTE applies the LTE predicate on the "num_agents" field.
func NumAgentsLTE(v int) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLTE(FieldNumAgents, v))
}

// SystemStatusEQ applies the EQ predicate on the "system_status" field.
func SystemStatusEQ(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldSystemStatus, v))
}

// SystemStatusNEQ applies the NEQ predicate on the "system_status" field.
func SystemStatusNEQ(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNEQ(FieldSystemStatus, v))
}

// SystemStatusIn applies the In predicate on the "system_status" field.
func SystemStatusIn(vs ...string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIn(FieldSystemStatus, vs...))
}

// SystemStatusNotIn applies the NotIn predicate on the "system_status" field.
func SystemStatusNotIn(vs ...string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotIn(FieldSystemStatus, vs...))
}

// SystemStatusGT applies the GT predicate on the "system_status" field.
func SystemStatusGT(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGT(FieldSystemStatus, v))
}

// SystemStatusGTE applies the GTE predicate on the "system_status" field.
func SystemStatusGTE(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGTE(FieldSystemStatus, v))
}

// SystemStatusLT applies the LT predicate on the "system_status" field.
func SystemStatusLT(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLT(FieldSystemStatus, v))
}

// SystemStatusLTE applies the LTE predicate on the "system_status" field.
func SystemStatusLTE(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLTE(FieldSystemStatus, v))
}

// SystemStatusContains applies the Contains predicate on the "system_status" field.
func SystemStatusContains(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldContains(FieldSystemStatus, v))
}

// SystemStatusHasPrefix applies the HasPrefix predicate on the "system_status" field.
func SystemStatusHasPrefix(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldHasPrefix(FieldSystemStatus, v))
}

// SystemStatusHasSuffix applies the HasSuffix predicate on the "system_status" field.
func SystemStatusHasSuffix(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldHasSuffix(FieldSystemStatus, v))
}

// SystemStatusEqualFold applies the EqualFold predicate on the "system_status" field.
func SystemStatusEqualFold(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEqualFold(FieldSystemStatus, v))
}

// SystemStatusContainsFold applies the ContainsFold predicate on the "system_status" field.
func SystemStatusContainsFold(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldContainsFold(FieldSystemStatus, v))
}

// RecommendationsEQ applies the EQ predicate on the "recommendations" field.
func RecommendationsEQ(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEQ(FieldRecommendations, v))
}

// RecommendationsNEQ applies the NEQ predicate on the "recommendations" field.
func RecommendationsNEQ(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNEQ(FieldRecommendations, v))
}

// RecommendationsIn applies the In predicate on the "recommendations" field.
func RecommendationsIn(vs ...string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIn(FieldRecommendations, vs...))
}

// RecommendationsNotIn applies the NotIn predicate on the "recommendations" field.
func RecommendationsNotIn(vs ...string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotIn(FieldRecommendations, vs...))
}

// RecommendationsGT applies the GT predicate on the "recommendations" field.
func RecommendationsGT(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGT(FieldRecommendations, v))
}

// RecommendationsGTE applies the GTE predicate on the "recommendations" field.
func RecommendationsGTE(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldGTE(FieldRecommendations, v))
}

// RecommendationsLT applies the LT predicate on the "recommendations" field.
func RecommendationsLT(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLT(FieldRecommendations, v))
}

// RecommendationsLTE applies the LTE predicate on the "recommendations" field.
func RecommendationsLTE(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldLTE(FieldRecommendations, v))
}

// RecommendationsContains applies the Contains predicate on the "recommendations" field.
func RecommendationsContains(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldContains(FieldRecommendations, v))
}

// RecommendationsHasPrefix applies the HasPrefix predicate on the "recommendations" field.
func RecommendationsHasPrefix(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldHasPrefix(FieldRecommendations, v))
}

// RecommendationsHasSuffix applies the HasSuffix predicate on the "recommendations" field.
func RecommendationsHasSuffix(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldHasSuffix(FieldRecommendations, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotNull(FieldRecommendations))
}

// RecommendationsEqualFold applies the EqualFold predicate on the "recommendations" field.
func RecommendationsEqualFold(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldEqualFold(FieldRecommendations, v))
}

// RecommendationsContainsFold applies the ContainsFold predicate on the "recommendations" field.
func RecommendationsContainsFold(v string) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldContainsFold(FieldRecommendations, v))
}

// DetectedDuplicatesIsNil applies the IsNil predicate on the "detected_duplicates" field.
func DetectedDuplicatesIsNil() predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIsNull(FieldDetectedDuplicates))
}

// DetectedDuplicatesNotNil applies the NotNil predicate on the "detected_duplicates" field.
func DetectedDuplicatesNotNil() predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotNull(FieldDetectedDuplicates))
}

// TerminationRecommendationsIsNil applies the IsNil predicate on the "termination_recommendations" field.
func TerminationRecommendationsIsNil() predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldIsNull(FieldTerminationRecommendations))
}

// TerminationRecommendationsNotNil applies the NotNil predicate on the "termination_recommendations" field.
func TerminationRecommendationsNotNil() predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.FieldNotNull(FieldTerminationRecommendations))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConductorAnalysis) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConductorAnalysis) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConductorAnalysis) predicate.ConductorAnalysis {
	return predicate.ConductorAnalysis(sql.NotPredicates(p))
}

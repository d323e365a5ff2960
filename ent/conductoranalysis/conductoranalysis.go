// Code generated by ent, DO NOT EDIT.

package conductoranalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conductoranalysis type in the database.
	Label = "conductor_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conductor_analysis_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCoherenceScore holds the string denoting the coherence_score field in the database.
	FieldCoherenceScore = "coherence_score"
	// FieldNumAgents holds the string denoting the num_agents field in the database.
	FieldNumAgents = "num_agents"
	// FieldSystemStatus holds the string denoting the system_status field in the database.
	FieldSystemStatus = "system_status"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldDetectedDuplicates holds the string denoting the detected_duplicates field in the database.
	FieldDetectedDuplicates = "detected_duplicates"
	// FieldTerminationRecommendations holds the string denoting the termination_recommendations field in the database.
	FieldTerminationRecommendations = "termination_recommendations"
	// Table holds the table name of the conductoranalysis in the database.
	Table = "conductor_analyses"
)

// Columns holds all SQL columns for conductoranalysis fields.
var Columns = []string{
	FieldID,
	FieldTimestamp,
	FieldCoherenceScore,
	FieldNumAgents,
	FieldSystemStatus,
	FieldRecommendations,
	FieldDetectedDuplicates,
	FieldTerminationRecommendations,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the ConductorAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCoherenceScore orders the results by the coherence_score field.
func ByCoherenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoherenceScore, opts...).ToFunc()
}

// ByNumAgents orders the results by the num_agents field.
func ByNumAgents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumAgents, opts...).ToFunc()
}

// BySystemStatus orders the results by the system_status field.
func BySystemStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemStatus, opts...).ToFunc()
}

// ByRecommendations orders the results by the recommendations field.
func ByRecommendations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendations, opts...).ToFunc()
}

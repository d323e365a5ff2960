// Code generated by ent, DO NOT EDIT.

package steeringintervention

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the steeringintervention type in the database.
	Label = "steering_intervention"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "intervention_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldGuardianAnalysisID holds the string denoting the guardian_analysis_id field in the database.
	FieldGuardianAnalysisID = "guardian_analysis_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSteeringType holds the string denoting the steering_type field in the database.
	FieldSteeringType = "steering_type"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldWasSuccessful holds the string denoting the was_successful field in the database.
	FieldWasSuccessful = "was_successful"
	// Table holds the table name of the steeringintervention in the database.
	Table = "steering_interventions"
)

// Columns holds all SQL columns for steeringintervention fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldGuardianAnalysisID,
	FieldTimestamp,
	FieldSteeringType,
	FieldMessage,
	FieldWasSuccessful,
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

// OrderOption defines the ordering options for the SteeringIntervention queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByGuardianAnalysisID orders the results by the guardian_analysis_id field.
func ByGuardianAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuardianAnalysisID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySteeringType orders the results by the steering_type field.
func BySteeringType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSteeringType, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByWasSuccessful orders the results by the was_successful field.
func ByWasSuccessful(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasSuccessful, opts...).ToFunc()
}

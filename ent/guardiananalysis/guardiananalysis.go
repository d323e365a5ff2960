// Code generated by ent, DO NOT EDIT.

package guardiananalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the guardiananalysis type in the database.
	Label = "guardian_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldAlignmentScore holds the string denoting the alignment_score field in the database.
	FieldAlignmentScore = "alignment_score"
	// FieldTrajectoryAligned holds the string denoting the trajectory_aligned field in the database.
	FieldTrajectoryAligned = "trajectory_aligned"
	// FieldTrajectorySummary holds the string denoting the trajectory_summary field in the database.
	FieldTrajectorySummary = "trajectory_summary"
	// FieldNeedsSteering holds the string denoting the needs_steering field in the database.
	FieldNeedsSteering = "needs_steering"
	// FieldSteeringType holds the string denoting the steering_type field in the database.
	FieldSteeringType = "steering_type"
	// FieldSteeringMessage holds the string denoting the steering_message field in the database.
	FieldSteeringMessage = "steering_message"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// Table holds the table name of the guardiananalysis in the database.
	Table = "guardian_analyses"
)

// Columns holds all SQL columns for guardiananalysis fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldTimestamp,
	FieldCurrentPhase,
	FieldAlignmentScore,
	FieldTrajectoryAligned,
	FieldTrajectorySummary,
	FieldNeedsSteering,
	FieldSteeringType,
	FieldSteeringMessage,
	FieldDetails,
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

// SteeringType defines the type for the "steering_type" enum field.
type SteeringType string

// SteeringTypeNone is the default value of the SteeringType enum.
const DefaultSteeringType = SteeringTypeNone

// SteeringType values.
const (
	SteeringTypeStuck                SteeringType = "stuck"
	SteeringTypeDrifting             SteeringType = "drifting"
	SteeringTypeViolatingConstraints SteeringType = "violating_constraints"
	SteeringTypeIdle                 SteeringType = "idle"
	SteeringTypeMissedSteps          SteeringType = "missed_steps"
	SteeringTypeWrongDirection       SteeringType = "wrong_direction"
	SteeringTypeNone                 SteeringType = "none"
)

func (st SteeringType) String() string {
	return string(st)
}

// SteeringTypeValidator is a validator for the "steering_type" field enum values. It is called by the builders before save.
func SteeringTypeValidator(st SteeringType) error {
	switch st {
	case SteeringTypeStuck, SteeringTypeDrifting, SteeringTypeViolatingConstraints, SteeringTypeIdle, SteeringTypeMissedSteps, SteeringTypeWrongDirection, SteeringTypeNone:
		return nil
	default:
		return fmt.Errorf("guardiananalysis: invalid enum value for steering_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the GuardianAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByAlignmentScore orders the results by the alignment_score field.
func ByAlignmentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlignmentScore, opts...).ToFunc()
}

// ByTrajectoryAligned orders the results by the trajectory_aligned field.
func ByTrajectoryAligned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectoryAligned, opts...).ToFunc()
}

// ByTrajectorySummary orders the results by the trajectory_summary field.
func ByTrajectorySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectorySummary, opts...).ToFunc()
}

// ByNeedsSteering orders the results by the needs_steering field.
func ByNeedsSteering(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsSteering, opts...).ToFunc()
}

// BySteeringType orders the results by the steering_type field.
func BySteeringType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSteeringType, opts...).ToFunc()
}

// BySteeringMessage orders the results by the steering_message field.
func BySteeringMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSteeringMessage, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
)

// GuardianAnalysis is the model entity for the GuardianAnalysis schema.
type GuardianAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase string `json:"current_phase,omitempty"`
	// 0..1
	AlignmentScore float64 `json:"alignment_score,omitempty"`
	// TrajectoryAligned holds the value of the "trajectory_aligned" field.
	TrajectoryAligned bool `json:"trajectory_aligned,omitempty"`
	// TrajectorySummary holds the value of the "trajectory_summary" field.
	TrajectorySummary string `json:"trajectory_summary,omitempty"`
	// NeedsSteering holds the value of the "needs_steering" field.
	NeedsSteering bool `json:"needs_steering,omitempty"`
	// SteeringType holds the value of the "steering_type" field.
	SteeringType guardiananalysis.SteeringType `json:"steering_type,omitempty"`
	// SteeringMessage holds the value of the "steering_message" field.
	SteeringMessage string `json:"steering_message,omitempty"`
	// Details holds the value of the "details" field.
	Details      map[string]interface{} `json:"details,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GuardianAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case guardiananalysis.FieldDetails:
			values[i] = new([]byte)
		case guardiananalysis.FieldTrajectoryAligned, guardiananalysis.FieldNeedsSteering:
			values[i] = new(sql.NullBool)
		case guardiananalysis.FieldAlignmentScore:
			values[i] = new(sql.NullFloat64)
		case guardiananalysis.FieldID, guardiananalysis.FieldAgentID, guardiananalysis.FieldCurrentPhase, guardiananalysis.FieldTrajectorySummary, guardiananalysis.FieldSteeringType, guardiananalysis.FieldSteeringMessage:
			values[i] = new(sql.NullString)
		case guardiananalysis.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GuardianAnalysis fields.
func (_m *GuardianAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case guardiananalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case guardiananalysis.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case guardiananalysis.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case guardiananalysis.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = value.String
			}
		case guardiananalysis.FieldAlignmentScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field alignment_score", values[i])
			} else if value.Valid {
				_m.AlignmentScore = value.Float64
			}
		case guardiananalysis.FieldTrajectoryAligned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory_aligned", values[i])
			} else if value.Valid {
				_m.TrajectoryAligned = value.Bool
			}
		case guardiananalysis.FieldTrajectorySummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory_summary", values[i])
			} else if value.Valid {
				_m.TrajectorySummary = value.String
			}
		case guardiananalysis.FieldNeedsSteering:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_steering", values[i])
			} else if value.Valid {
				_m.NeedsSteering = value.Bool
			}
		case guardiananalysis.FieldSteeringType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field steering_type", values[i])
			} else if value.Valid {
				_m.SteeringType = guardiananalysis.SteeringType(value.String)
			}
		case guardiananalysis.FieldSteeringMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field steering_message", values[i])
			} else if value.Valid {
				_m.SteeringMessage = value.String
			}
		case guardiananalysis.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GuardianAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *GuardianAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GuardianAnalysis.
// Note that you need to call GuardianAnalysis.Unwrap() before calling this method if this GuardianAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GuardianAnalysis) Update() *GuardianAnalysisUpdateOne {
	return NewGuardianAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GuardianAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GuardianAnalysis) Unwrap() *GuardianAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GuardianAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GuardianAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("GuardianAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(_m.CurrentPhase)
	builder.WriteString(", ")
	builder.WriteString("alignment_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlignmentScore))
	builder.WriteString(", ")
	builder.WriteString("trajectory_aligned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrajectoryAligned))
	builder.WriteString(", ")
	builder.WriteString("trajectory_summary=")
	builder.WriteString(_m.TrajectorySummary)
	builder.WriteString(", ")
	builder.WriteString("needs_steering=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsSteering))
	builder.WriteString(", ")
	builder.WriteString("steering_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SteeringType))
	builder.WriteString(", ")
	builder.WriteString("steering_message=")
	builder.WriteString(_m.SteeringMessage)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteByte(')')
	return builder.String()
}

// GuardianAnalyses is a parsable slice of GuardianAnalysis.
type GuardianAnalyses []*GuardianAnalysis

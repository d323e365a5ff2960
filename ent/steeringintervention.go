// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
)

// SteeringIntervention is the model entity for the SteeringIntervention schema.
type SteeringIntervention struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// GuardianAnalysisID holds the value of the "guardian_analysis_id" field.
	GuardianAnalysisID string `json:"guardian_analysis_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SteeringType holds the value of the "steering_type" field.
	SteeringType string `json:"steering_type,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// WasSuccessful holds the value of the "was_successful" field.
	WasSuccessful *bool `json:"was_successful,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SteeringIntervention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case steeringintervention.FieldWasSuccessful:
			values[i] = new(sql.NullBool)
		case steeringintervention.FieldID, steeringintervention.FieldAgentID, steeringintervention.FieldGuardianAnalysisID, steeringintervention.FieldSteeringType, steeringintervention.FieldMessage:
			values[i] = new(sql.NullString)
		case steeringintervention.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SteeringIntervention fields.
func (_m *SteeringIntervention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case steeringintervention.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case steeringintervention.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case steeringintervention.FieldGuardianAnalysisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guardian_analysis_id", values[i])
			} else if value.Valid {
				_m.GuardianAnalysisID = value.String
			}
		case steeringintervention.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case steeringintervention.FieldSteeringType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field steering_type", values[i])
			} else if value.Valid {
				_m.SteeringType = value.String
			}
		case steeringintervention.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case steeringintervention.FieldWasSuccessful:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field was_successful", values[i])
			} else if value.Valid {
				_m.WasSuccessful = new(bool)
				*_m.WasSuccessful = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SteeringIntervention.
// This includes values selected through modifiers, order, etc.
func (_m *SteeringIntervention) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SteeringIntervention.
// Note that you need to call SteeringIntervention.Unwrap() before calling this method if this SteeringIntervention
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SteeringIntervention) Update() *SteeringInterventionUpdateOne {
	return NewSteeringInterventionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SteeringIntervention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SteeringIntervention) Unwrap() *SteeringIntervention {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SteeringIntervention is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SteeringIntervention) String() string {
	var builder strings.Builder
	builder.WriteString("SteeringIntervention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("guardian_analysis_id=")
	builder.WriteString(_m.GuardianAnalysisID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("steering_type=")
	builder.WriteString(_m.SteeringType)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	if v := _m.WasSuccessful; v != nil {
		builder.WriteString("was_successful=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SteeringInterventions is a parsable slice of SteeringIntervention.
type SteeringInterventions []*SteeringIntervention

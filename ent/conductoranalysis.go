// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
)

// ConductorAnalysis is the model entity for the ConductorAnalysis schema.
type ConductorAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// 0..1
	CoherenceScore float64 `json:"coherence_score,omitempty"`
	// NumAgents holds the value of the "num_agents" field.
	NumAgents int `json:"num_agents,omitempty"`
	// 3-5 sentence progress narrative
	SystemStatus string `json:"system_status,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations string `json:"recommendations,omitempty"`
	// Pairs (agent_a, agent_b, similarity, work_description) after validator filtering
	DetectedDuplicates []map[string]interface{} `json:"detected_duplicates,omitempty"`
	// TerminationRecommendations holds the value of the "termination_recommendations" field.
	TerminationRecommendations []string `json:"termination_recommendations,omitempty"`
	selectValues               sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConductorAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conductoranalysis.FieldDetectedDuplicates, conductoranalysis.FieldTerminationRecommendations:
			values[i] = new([]byte)
		case conductoranalysis.FieldCoherenceScore:
			values[i] = new(sql.NullFloat64)
		case conductoranalysis.FieldNumAgents:
			values[i] = new(sql.NullInt64)
		case conductoranalysis.FieldID, conductoranalysis.FieldSystemStatus, conductoranalysis.FieldRecommendations:
			values[i] = new(sql.NullString)
		case conductoranalysis.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConductorAnalysis fields.
func (_m *ConductorAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conductoranalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conductoranalysis.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case conductoranalysis.FieldCoherenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coherence_score", values[i])
			} else if value.Valid {
				_m.CoherenceScore = value.Float64
			}
		case conductoranalysis.FieldNumAgents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_agents", values[i])
			} else if value.Valid {
				_m.NumAgents = int(value.Int64)
			}
		case conductoranalysis.FieldSystemStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_status", values[i])
			} else if value.Valid {
				_m.SystemStatus = value.String
			}
		case conductoranalysis.FieldRecommendations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value.Valid {
				_m.Recommendations = value.String
			}
		case conductoranalysis.FieldDetectedDuplicates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_duplicates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedDuplicates); err != nil {
					return fmt.Errorf("unmarshal field detected_duplicates: %w", err)
				}
			}
		case conductoranalysis.FieldTerminationRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field termination_recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TerminationRecommendations); err != nil {
					return fmt.Errorf("unmarshal field termination_recommendations: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConductorAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *ConductorAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConductorAnalysis.
// Note that you need to call ConductorAnalysis.Unwrap() before calling this method if this ConductorAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConductorAnalysis) Update() *ConductorAnalysisUpdateOne {
	return NewConductorAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConductorAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConductorAnalysis) Unwrap() *ConductorAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConductorAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConductorAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("ConductorAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("coherence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoherenceScore))
	builder.WriteString(", ")
	builder.WriteString("num_agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumAgents))
	builder.WriteString(", ")
	builder.WriteString("system_status=")
	builder.WriteString(_m.SystemStatus)
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(_m.Recommendations)
	builder.WriteString(", ")
	builder.WriteString("detected_duplicates=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedDuplicates))
	builder.WriteString(", ")
	builder.WriteString("termination_recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.TerminationRecommendations))
	builder.WriteByte(')')
	return builder.String()
}

// ConductorAnalyses is a parsable slice of ConductorAnalysis.
type ConductorAnalyses []*ConductorAnalysis

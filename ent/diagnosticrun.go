// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
)

// DiagnosticRun is the model entity for the DiagnosticRun schema.
type DiagnosticRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// TriggeredAt holds the value of the "triggered_at" field.
	TriggeredAt time.Time `json:"triggered_at,omitempty"`
	// Task counts and time since last activity at trigger time
	TriggerStats map[string]interface{} `json:"trigger_stats,omitempty"`
	// TasksCreatedIds holds the value of the "tasks_created_ids" field.
	TasksCreatedIds []string `json:"tasks_created_ids,omitempty"`
	// Diagnosis holds the value of the "diagnosis" field.
	Diagnosis string `json:"diagnosis,omitempty"`
	// Status holds the value of the "status" field.
	Status diagnosticrun.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiagnosticRunQuery when eager-loading is set.
	Edges        DiagnosticRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DiagnosticRunEdges holds the relations/edges for other nodes in the graph.
type DiagnosticRunEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DiagnosticRunEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosticRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosticrun.FieldTriggerStats, diagnosticrun.FieldTasksCreatedIds:
			values[i] = new([]byte)
		case diagnosticrun.FieldID, diagnosticrun.FieldWorkflowID, diagnosticrun.FieldDiagnosis, diagnosticrun.FieldStatus:
			values[i] = new(sql.NullString)
		case diagnosticrun.FieldTriggeredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosticRun fields.
func (_m *DiagnosticRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosticrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case diagnosticrun.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case diagnosticrun.FieldTriggeredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_at", values[i])
			} else if value.Valid {
				_m.TriggeredAt = value.Time
			}
		case diagnosticrun.FieldTriggerStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggerStats); err != nil {
					return fmt.Errorf("unmarshal field trigger_stats: %w", err)
				}
			}
		case diagnosticrun.FieldTasksCreatedIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_created_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TasksCreatedIds); err != nil {
					return fmt.Errorf("unmarshal field tasks_created_ids: %w", err)
				}
			}
		case diagnosticrun.FieldDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis", values[i])
			} else if value.Valid {
				_m.Diagnosis = value.String
			}
		case diagnosticrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = diagnosticrun.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosticRun.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosticRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the DiagnosticRun entity.
func (_m *DiagnosticRun) QueryWorkflow() *WorkflowQuery {
	return NewDiagnosticRunClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this DiagnosticRun.
// Note that you need to call DiagnosticRun.Unwrap() before calling this method if this DiagnosticRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosticRun) Update() *DiagnosticRunUpdateOne {
	return NewDiagnosticRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosticRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosticRun) Unwrap() *DiagnosticRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosticRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosticRun) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosticRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("triggered_at=")
	builder.WriteString(_m.TriggeredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("trigger_stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerStats))
	builder.WriteString(", ")
	builder.WriteString("tasks_created_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCreatedIds))
	builder.WriteString(", ")
	builder.WriteString("diagnosis=")
	builder.WriteString(_m.Diagnosis)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosticRuns is a parsable slice of DiagnosticRun.
type DiagnosticRuns []*DiagnosticRun

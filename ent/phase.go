// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
)

// Phase is the model entity for the Phase schema.
type Phase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// Small monotonic integer per workflow: 1, 2, 3...
	Number int `json:"number,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Ordered done-definition sentences
	DoneDefinitions []string `json:"done_definitions,omitempty"`
	// Free-form system-prompt snippet for agents in this phase
	AdditionalNotes string `json:"additional_notes,omitempty"`
	// ValidationEnabled holds the value of the "validation_enabled" field.
	ValidationEnabled bool `json:"validation_enabled,omitempty"`
	// ValidationCriteria holds the value of the "validation_criteria" field.
	ValidationCriteria []string `json:"validation_criteria,omitempty"`
	// ValidatorInstructions holds the value of the "validator_instructions" field.
	ValidatorInstructions string `json:"validator_instructions,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhaseQuery when eager-loading is set.
	Edges        PhaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhaseEdges holds the relations/edges for other nodes in the graph.
type PhaseEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhaseEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Phase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phase.FieldDoneDefinitions, phase.FieldValidationCriteria:
			values[i] = new([]byte)
		case phase.FieldValidationEnabled:
			values[i] = new(sql.NullBool)
		case phase.FieldNumber:
			values[i] = new(sql.NullInt64)
		case phase.FieldID, phase.FieldWorkflowID, phase.FieldName, phase.FieldDescription, phase.FieldAdditionalNotes, phase.FieldValidatorInstructions:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Phase fields.
func (_m *Phase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case phase.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case phase.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = int(value.Int64)
			}
		case phase.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case phase.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case phase.FieldDoneDefinitions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field done_definitions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DoneDefinitions); err != nil {
					return fmt.Errorf("unmarshal field done_definitions: %w", err)
				}
			}
		case phase.FieldAdditionalNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field additional_notes", values[i])
			} else if value.Valid {
				_m.AdditionalNotes = value.String
			}
		case phase.FieldValidationEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validation_enabled", values[i])
			} else if value.Valid {
				_m.ValidationEnabled = value.Bool
			}
		case phase.FieldValidationCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationCriteria); err != nil {
					return fmt.Errorf("unmarshal field validation_criteria: %w", err)
				}
			}
		case phase.FieldValidatorInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validator_instructions", values[i])
			} else if value.Valid {
				_m.ValidatorInstructions = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Phase.
// This includes values selected through modifiers, order, etc.
func (_m *Phase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the Phase entity.
func (_m *Phase) QueryWorkflow() *WorkflowQuery {
	return NewPhaseClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this Phase.
// Note that you need to call Phase.Unwrap() before calling this method if this Phase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Phase) Update() *PhaseUpdateOne {
	return NewPhaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Phase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Phase) Unwrap() *Phase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Phase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Phase) String() string {
	var builder strings.Builder
	builder.WriteString("Phase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("done_definitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoneDefinitions))
	builder.WriteString(", ")
	builder.WriteString("additional_notes=")
	builder.WriteString(_m.AdditionalNotes)
	builder.WriteString(", ")
	builder.WriteString("validation_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationEnabled))
	builder.WriteString(", ")
	builder.WriteString("validation_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationCriteria))
	builder.WriteString(", ")
	builder.WriteString("validator_instructions=")
	builder.WriteString(_m.ValidatorInstructions)
	builder.WriteByte(')')
	return builder.String()
}

// Phases is a parsable slice of Phase.
type Phases []*Phase

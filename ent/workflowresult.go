// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
)

// WorkflowResult is the model entity for the WorkflowResult schema.
type WorkflowResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// MarkdownPath holds the value of the "markdown_path" field.
	MarkdownPath string `json:"markdown_path,omitempty"`
	// MarkdownContent holds the value of the "markdown_content" field.
	MarkdownContent string `json:"markdown_content,omitempty"`
	// Status holds the value of the "status" field.
	Status workflowresult.Status `json:"status,omitempty"`
	// ValidationFeedback holds the value of the "validation_feedback" field.
	ValidationFeedback *string `json:"validation_feedback,omitempty"`
	// ValidationEvidence holds the value of the "validation_evidence" field.
	ValidationEvidence []string `json:"validation_evidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// ValidatedByAgentID holds the value of the "validated_by_agent_id" field.
	ValidatedByAgentID *string `json:"validated_by_agent_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowResultQuery when eager-loading is set.
	Edges        WorkflowResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowResultEdges holds the relations/edges for other nodes in the graph.
type WorkflowResultEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowResultEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowresult.FieldValidationEvidence:
			values[i] = new([]byte)
		case workflowresult.FieldID, workflowresult.FieldWorkflowID, workflowresult.FieldAgentID, workflowresult.FieldMarkdownPath, workflowresult.FieldMarkdownContent, workflowresult.FieldStatus, workflowresult.FieldValidationFeedback, workflowresult.FieldValidatedByAgentID:
			values[i] = new(sql.NullString)
		case workflowresult.FieldCreatedAt, workflowresult.FieldValidatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowResult fields.
func (_m *WorkflowResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowresult.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case workflowresult.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case workflowresult.FieldMarkdownPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown_path", values[i])
			} else if value.Valid {
				_m.MarkdownPath = value.String
			}
		case workflowresult.FieldMarkdownContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown_content", values[i])
			} else if value.Valid {
				_m.MarkdownContent = value.String
			}
		case workflowresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflowresult.Status(value.String)
			}
		case workflowresult.FieldValidationFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_feedback", values[i])
			} else if value.Valid {
				_m.ValidationFeedback = new(string)
				*_m.ValidationFeedback = value.String
			}
		case workflowresult.FieldValidationEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationEvidence); err != nil {
					return fmt.Errorf("unmarshal field validation_evidence: %w", err)
				}
			}
		case workflowresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowresult.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		case workflowresult.FieldValidatedByAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validated_by_agent_id", values[i])
			} else if value.Valid {
				_m.ValidatedByAgentID = new(string)
				*_m.ValidatedByAgentID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowResult.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the WorkflowResult entity.
func (_m *WorkflowResult) QueryWorkflow() *WorkflowQuery {
	return NewWorkflowResultClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this WorkflowResult.
// Note that you need to call WorkflowResult.Unwrap() before calling this method if this WorkflowResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowResult) Update() *WorkflowResultUpdateOne {
	return NewWorkflowResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowResult) Unwrap() *WorkflowResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowResult) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("markdown_path=")
	builder.WriteString(_m.MarkdownPath)
	builder.WriteString(", ")
	builder.WriteString("markdown_content=")
	builder.WriteString(_m.MarkdownContent)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ValidationFeedback; v != nil {
		builder.WriteString("validation_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("validation_evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationEvidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidatedByAgentID; v != nil {
		builder.WriteString("validated_by_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowResults is a parsable slice of WorkflowResult.
type WorkflowResults []*WorkflowResult

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
)

// TaskResult is the model entity for the TaskResult schema.
type TaskResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// MarkdownPath holds the value of the "markdown_path" field.
	MarkdownPath string `json:"markdown_path,omitempty"`
	// MarkdownContent holds the value of the "markdown_content" field.
	MarkdownContent string `json:"markdown_content,omitempty"`
	// ResultType holds the value of the "result_type" field.
	ResultType taskresult.ResultType `json:"result_type,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// VerificationStatus holds the value of the "verification_status" field.
	VerificationStatus taskresult.VerificationStatus `json:"verification_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// VerifiedByValidationID holds the value of the "verified_by_validation_id" field.
	VerifiedByValidationID *string `json:"verified_by_validation_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskResultQuery when eager-loading is set.
	Edges        TaskResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskResultEdges holds the relations/edges for other nodes in the graph.
type TaskResultEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskResultEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskresult.FieldID, taskresult.FieldAgentID, taskresult.FieldTaskID, taskresult.FieldMarkdownPath, taskresult.FieldMarkdownContent, taskresult.FieldResultType, taskresult.FieldSummary, taskresult.FieldVerificationStatus, taskresult.FieldVerifiedByValidationID:
			values[i] = new(sql.NullString)
		case taskresult.FieldCreatedAt, taskresult.FieldVerifiedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskResult fields.
func (_m *TaskResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskresult.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case taskresult.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskresult.FieldMarkdownPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown_path", values[i])
			} else if value.Valid {
				_m.MarkdownPath = value.String
			}
		case taskresult.FieldMarkdownContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown_content", values[i])
			} else if value.Valid {
				_m.MarkdownContent = value.String
			}
		case taskresult.FieldResultType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_type", values[i])
			} else if value.Valid {
				_m.ResultType = taskresult.ResultType(value.String)
			}
		case taskresult.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case taskresult.FieldVerificationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_status", values[i])
			} else if value.Valid {
				_m.VerificationStatus = taskresult.VerificationStatus(value.String)
			}
		case taskresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case taskresult.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		case taskresult.FieldVerifiedByValidationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_by_validation_id", values[i])
			} else if value.Valid {
				_m.VerifiedByValidationID = new(string)
				*_m.VerifiedByValidationID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskResult.
// This includes values selected through modifiers, order, etc.
func (_m *TaskResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskResult entity.
func (_m *TaskResult) QueryTask() *TaskQuery {
	return NewTaskResultClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskResult.
// Note that you need to call TaskResult.Unwrap() before calling this method if this TaskResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskResult) Update() *TaskResultUpdateOne {
	return NewTaskResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskResult) Unwrap() *TaskResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskResult) String() string {
	var builder strings.Builder
	builder.WriteString("TaskResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("markdown_path=")
	builder.WriteString(_m.MarkdownPath)
	builder.WriteString(", ")
	builder.WriteString("markdown_content=")
	builder.WriteString(_m.MarkdownContent)
	builder.WriteString(", ")
	builder.WriteString("result_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultType))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("verification_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationStatus))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.VerifiedByValidationID; v != nil {
		builder.WriteString("verified_by_validation_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// TaskResults is a parsable slice of TaskResult.
type TaskResults []*TaskResult

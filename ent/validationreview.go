// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
)

// ValidationReview is the model entity for the ValidationReview schema.
type ValidationReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// ValidatorAgentID holds the value of the "validator_agent_id" field.
	ValidatorAgentID string `json:"validator_agent_id,omitempty"`
	// Iteration holds the value of the "iteration" field.
	Iteration int `json:"iteration,omitempty"`
	// ValidationPassed holds the value of the "validation_passed" field.
	ValidationPassed bool `json:"validation_passed,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence map[string]interface{} `json:"evidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationReviewQuery when eager-loading is set.
	Edges        ValidationReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationReviewEdges holds the relations/edges for other nodes in the graph.
type ValidationReviewEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationReviewEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationreview.FieldEvidence:
			values[i] = new([]byte)
		case validationreview.FieldValidationPassed:
			values[i] = new(sql.NullBool)
		case validationreview.FieldIteration:
			values[i] = new(sql.NullInt64)
		case validationreview.FieldID, validationreview.FieldTaskID, validationreview.FieldValidatorAgentID, validationreview.FieldFeedback:
			values[i] = new(sql.NullString)
		case validationreview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationReview fields.
func (_m *ValidationReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationreview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case validationreview.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case validationreview.FieldValidatorAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validator_agent_id", values[i])
			} else if value.Valid {
				_m.ValidatorAgentID = value.String
			}
		case validationreview.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case validationreview.FieldValidationPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validation_passed", values[i])
			} else if value.Valid {
				_m.ValidationPassed = value.Bool
			}
		case validationreview.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case validationreview.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case validationreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationReview.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the ValidationReview entity.
func (_m *ValidationReview) QueryTask() *TaskQuery {
	return NewValidationReviewClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this ValidationReview.
// Note that you need to call ValidationReview.Unwrap() before calling this method if this ValidationReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationReview) Update() *ValidationReviewUpdateOne {
	return NewValidationReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationReview) Unwrap() *ValidationReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationReview) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("validator_agent_id=")
	builder.WriteString(_m.ValidatorAgentID)
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("validation_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationPassed))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationReviews is a parsable slice of ValidationReview.
type ValidationReviews []*ValidationReview

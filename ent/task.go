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
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// Null for diagnostic tasks
	PhaseID *string `json:"phase_id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID *string `json:"ticket_id,omitempty"`
	// ParentTaskID holds the value of the "parent_task_id" field.
	ParentTaskID *string `json:"parent_task_id,omitempty"`
	// CreatedByAgentID holds the value of the "created_by_agent_id" field.
	CreatedByAgentID *string `json:"created_by_agent_id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType task.AgentType `json:"agent_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// DoneDefinition holds the value of the "done_definition" field.
	DoneDefinition string `json:"done_definition,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority task.Priority `json:"priority,omitempty"`
	// L2-normalised embedding for semantic dedup
	DescriptionEmbedding []float32 `json:"description_embedding,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// CompletionNotes holds the value of the "completion_notes" field.
	CompletionNotes *string `json:"completion_notes,omitempty"`
	// DuplicateOfTaskID holds the value of the "duplicate_of_task_id" field.
	DuplicateOfTaskID *string `json:"duplicate_of_task_id,omitempty"`
	// SimilarityScore holds the value of the "similarity_score" field.
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	// QueuedAt holds the value of the "queued_at" field.
	QueuedAt *time.Time `json:"queued_at,omitempty"`
	// 1-based dense position among queued tasks
	QueuePosition *int `json:"queue_position,omitempty"`
	// PriorityBoosted holds the value of the "priority_boosted" field.
	PriorityBoosted bool `json:"priority_boosted,omitempty"`
	// ValidationEnabled holds the value of the "validation_enabled" field.
	ValidationEnabled bool `json:"validation_enabled,omitempty"`
	// ValidationIteration holds the value of the "validation_iteration" field.
	ValidationIteration int `json:"validation_iteration,omitempty"`
	// LastValidationFeedback holds the value of the "last_validation_feedback" field.
	LastValidationFeedback *string `json:"last_validation_feedback,omitempty"`
	// ReviewDone holds the value of the "review_done" field.
	ReviewDone bool `json:"review_done,omitempty"`
	// AssignedAgentID holds the value of the "assigned_agent_id" field.
	AssignedAgentID *string `json:"assigned_agent_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// Results holds the value of the results edge.
	Results []*TaskResult `json:"results,omitempty"`
	// ValidationReviews holds the value of the validation_reviews edge.
	ValidationReviews []*ValidationReview `json:"validation_reviews,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ResultsOrErr() ([]*TaskResult, error) {
	if e.loadedTypes[1] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// ValidationReviewsOrErr returns the ValidationReviews value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ValidationReviewsOrErr() ([]*ValidationReview, error) {
	if e.loadedTypes[2] {
		return e.ValidationReviews, nil
	}
	return nil, &NotLoadedError{edge: "validation_reviews"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldDescriptionEmbedding:
			values[i] = new([]byte)
		case task.FieldPriorityBoosted, task.FieldValidationEnabled, task.FieldReviewDone:
			values[i] = new(sql.NullBool)
		case task.FieldSimilarityScore:
			values[i] = new(sql.NullFloat64)
		case task.FieldQueuePosition, task.FieldValidationIteration:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldWorkflowID, task.FieldPhaseID, task.FieldTicketID, task.FieldParentTaskID, task.FieldCreatedByAgentID, task.FieldAgentType, task.FieldDescription, task.FieldDoneDefinition, task.FieldPriority, task.FieldStatus, task.FieldFailureReason, task.FieldCompletionNotes, task.FieldDuplicateOfTaskID, task.FieldLastValidationFeedback, task.FieldAssignedAgentID:
			values[i] = new(sql.NullString)
		case task.FieldQueuedAt, task.FieldStartedAt, task.FieldCompletedAt, task.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case task.FieldPhaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_id", values[i])
			} else if value.Valid {
				_m.PhaseID = new(string)
				*_m.PhaseID = value.String
			}
		case task.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = new(string)
				*_m.TicketID = value.String
			}
		case task.FieldParentTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_task_id", values[i])
			} else if value.Valid {
				_m.ParentTaskID = new(string)
				*_m.ParentTaskID = value.String
			}
		case task.FieldCreatedByAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_agent_id", values[i])
			} else if value.Valid {
				_m.CreatedByAgentID = new(string)
				*_m.CreatedByAgentID = value.String
			}
		case task.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = task.AgentType(value.String)
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldDoneDefinition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field done_definition", values[i])
			} else if value.Valid {
				_m.DoneDefinition = value.String
			}
		case task.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = task.Priority(value.String)
			}
		case task.FieldDescriptionEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field description_embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DescriptionEmbedding); err != nil {
					return fmt.Errorf("unmarshal field description_embedding: %w", err)
				}
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case task.FieldCompletionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_notes", values[i])
			} else if value.Valid {
				_m.CompletionNotes = new(string)
				*_m.CompletionNotes = value.String
			}
		case task.FieldDuplicateOfTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_of_task_id", values[i])
			} else if value.Valid {
				_m.DuplicateOfTaskID = new(string)
				*_m.DuplicateOfTaskID = value.String
			}
		case task.FieldSimilarityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity_score", values[i])
			} else if value.Valid {
				_m.SimilarityScore = new(float64)
				*_m.SimilarityScore = value.Float64
			}
		case task.FieldQueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field queued_at", values[i])
			} else if value.Valid {
				_m.QueuedAt = new(time.Time)
				*_m.QueuedAt = value.Time
			}
		case task.FieldQueuePosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field queue_position", values[i])
			} else if value.Valid {
				_m.QueuePosition = new(int)
				*_m.QueuePosition = int(value.Int64)
			}
		case task.FieldPriorityBoosted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field priority_boosted", values[i])
			} else if value.Valid {
				_m.PriorityBoosted = value.Bool
			}
		case task.FieldValidationEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validation_enabled", values[i])
			} else if value.Valid {
				_m.ValidationEnabled = value.Bool
			}
		case task.FieldValidationIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field validation_iteration", values[i])
			} else if value.Valid {
				_m.ValidationIteration = int(value.Int64)
			}
		case task.FieldLastValidationFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_validation_feedback", values[i])
			} else if value.Valid {
				_m.LastValidationFeedback = new(string)
				*_m.LastValidationFeedback = value.String
			}
		case task.FieldReviewDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field review_done", values[i])
			} else if value.Valid {
				_m.ReviewDone = value.Bool
			}
		case task.FieldAssignedAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent_id", values[i])
			} else if value.Valid {
				_m.AssignedAgentID = new(string)
				*_m.AssignedAgentID = value.String
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case task.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the Task entity.
func (_m *Task) QueryWorkflow() *WorkflowQuery {
	return NewTaskClient(_m.config).QueryWorkflow(_m)
}

// QueryResults queries the "results" edge of the Task entity.
func (_m *Task) QueryResults() *TaskResultQuery {
	return NewTaskClient(_m.config).QueryResults(_m)
}

// QueryValidationReviews queries the "validation_reviews" edge of the Task entity.
func (_m *Task) QueryValidationReviews() *ValidationReviewQuery {
	return NewTaskClient(_m.config).QueryValidationReviews(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	if v := _m.PhaseID; v != nil {
		builder.WriteString("phase_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TicketID; v != nil {
		builder.WriteString("ticket_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentTaskID; v != nil {
		builder.WriteString("parent_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CreatedByAgentID; v != nil {
		builder.WriteString("created_by_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentType))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("done_definition=")
	builder.WriteString(_m.DoneDefinition)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("description_embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.DescriptionEmbedding))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletionNotes; v != nil {
		builder.WriteString("completion_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DuplicateOfTaskID; v != nil {
		builder.WriteString("duplicate_of_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SimilarityScore; v != nil {
		builder.WriteString("similarity_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.QueuedAt; v != nil {
		builder.WriteString("queued_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.QueuePosition; v != nil {
		builder.WriteString("queue_position=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("priority_boosted=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityBoosted))
	builder.WriteString(", ")
	builder.WriteString("validation_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationEnabled))
	builder.WriteString(", ")
	builder.WriteString("validation_iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationIteration))
	builder.WriteString(", ")
	if v := _m.LastValidationFeedback; v != nil {
		builder.WriteString("last_validation_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("review_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewDone))
	builder.WriteString(", ")
	if v := _m.AssignedAgentID; v != nil {
		builder.WriteString("assigned_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task

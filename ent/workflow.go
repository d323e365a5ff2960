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
)

// Workflow is the model entity for the Workflow schema.
type Workflow struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Declared goal injected into every agent prompt
	GoalText string `json:"goal_text,omitempty"`
	// ResultRequired holds the value of the "result_required" field.
	ResultRequired bool `json:"result_required,omitempty"`
	// Verbatim criteria handed to result-validator agents
	ResultCriteria []string `json:"result_criteria,omitempty"`
	// OnResultFound holds the value of the "on_result_found" field.
	OnResultFound workflow.OnResultFound `json:"on_result_found,omitempty"`
	// Kanban column set and ticket types for this workflow
	BoardConfig map[string]interface{} `json:"board_config,omitempty"`
	// TicketHumanReview holds the value of the "ticket_human_review" field.
	TicketHumanReview bool `json:"ticket_human_review,omitempty"`
	// Status holds the value of the "status" field.
	Status workflow.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowQuery when eager-loading is set.
	Edges        WorkflowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowEdges holds the relations/edges for other nodes in the graph.
type WorkflowEdges struct {
	// Phases holds the value of the phases edge.
	Phases []*Phase `json:"phases,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// Tickets holds the value of the tickets edge.
	Tickets []*Ticket `json:"tickets,omitempty"`
	// Results holds the value of the results edge.
	Results []*WorkflowResult `json:"results,omitempty"`
	// DiagnosticRuns holds the value of the diagnostic_runs edge.
	DiagnosticRuns []*DiagnosticRun `json:"diagnostic_runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// PhasesOrErr returns the Phases value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) PhasesOrErr() ([]*Phase, error) {
	if e.loadedTypes[0] {
		return e.Phases, nil
	}
	return nil, &NotLoadedError{edge: "phases"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[2] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// TicketsOrErr returns the Tickets value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) TicketsOrErr() ([]*Ticket, error) {
	if e.loadedTypes[3] {
		return e.Tickets, nil
	}
	return nil, &NotLoadedError{edge: "tickets"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) ResultsOrErr() ([]*WorkflowResult, error) {
	if e.loadedTypes[4] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// DiagnosticRunsOrErr returns the DiagnosticRuns value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowEdges) DiagnosticRunsOrErr() ([]*DiagnosticRun, error) {
	if e.loadedTypes[5] {
		return e.DiagnosticRuns, nil
	}
	return nil, &NotLoadedError{edge: "diagnostic_runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workflow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflow.FieldResultCriteria, workflow.FieldBoardConfig:
			values[i] = new([]byte)
		case workflow.FieldResultRequired, workflow.FieldTicketHumanReview:
			values[i] = new(sql.NullBool)
		case workflow.FieldID, workflow.FieldName, workflow.FieldGoalText, workflow.FieldOnResultFound, workflow.FieldStatus:
			values[i] = new(sql.NullString)
		case workflow.FieldCreatedAt, workflow.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workflow fields.
func (_m *Workflow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflow.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflow.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workflow.FieldGoalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_text", values[i])
			} else if value.Valid {
				_m.GoalText = value.String
			}
		case workflow.FieldResultRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field result_required", values[i])
			} else if value.Valid {
				_m.ResultRequired = value.Bool
			}
		case workflow.FieldResultCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultCriteria); err != nil {
					return fmt.Errorf("unmarshal field result_criteria: %w", err)
				}
			}
		case workflow.FieldOnResultFound:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field on_result_found", values[i])
			} else if value.Valid {
				_m.OnResultFound = workflow.OnResultFound(value.String)
			}
		case workflow.FieldBoardConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field board_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BoardConfig); err != nil {
					return fmt.Errorf("unmarshal field board_config: %w", err)
				}
			}
		case workflow.FieldTicketHumanReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_human_review", values[i])
			} else if value.Valid {
				_m.TicketHumanReview = value.Bool
			}
		case workflow.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflow.Status(value.String)
			}
		case workflow.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflow.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workflow.
// This includes values selected through modifiers, order, etc.
func (_m *Workflow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPhases queries the "phases" edge of the Workflow entity.
func (_m *Workflow) QueryPhases() *PhaseQuery {
	return NewWorkflowClient(_m.config).QueryPhases(_m)
}

// QueryTasks queries the "tasks" edge of the Workflow entity.
func (_m *Workflow) QueryTasks() *TaskQuery {
	return NewWorkflowClient(_m.config).QueryTasks(_m)
}

// QueryAgents queries the "agents" edge of the Workflow entity.
func (_m *Workflow) QueryAgents() *AgentQuery {
	return NewWorkflowClient(_m.config).QueryAgents(_m)
}

// QueryTickets queries the "tickets" edge of the Workflow entity.
func (_m *Workflow) QueryTickets() *TicketQuery {
	return NewWorkflowClient(_m.config).QueryTickets(_m)
}

// QueryResults queries the "results" edge of the Workflow entity.
func (_m *Workflow) QueryResults() *WorkflowResultQuery {
	return NewWorkflowClient(_m.config).QueryResults(_m)
}

// QueryDiagnosticRuns queries the "diagnostic_runs" edge of the Workflow entity.
func (_m *Workflow) QueryDiagnosticRuns() *DiagnosticRunQuery {
	return NewWorkflowClient(_m.config).QueryDiagnosticRuns(_m)
}

// Update returns a builder for updating this Workflow.
// Note that you need to call Workflow.Unwrap() before calling this method if this Workflow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workflow) Update() *WorkflowUpdateOne {
	return NewWorkflowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workflow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workflow) Unwrap() *Workflow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workflow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workflow) String() string {
	var builder strings.Builder
	builder.WriteString("Workflow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("goal_text=")
	builder.WriteString(_m.GoalText)
	builder.WriteString(", ")
	builder.WriteString("result_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultRequired))
	builder.WriteString(", ")
	builder.WriteString("result_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultCriteria))
	builder.WriteString(", ")
	builder.WriteString("on_result_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnResultFound))
	builder.WriteString(", ")
	builder.WriteString("board_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoardConfig))
	builder.WriteString(", ")
	builder.WriteString("ticket_human_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.TicketHumanReview))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Workflows is a parsable slice of Workflow.
type Workflows []*Workflow

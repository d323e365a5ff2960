// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflow type in the database.
	Label = "workflow"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldGoalText holds the string denoting the goal_text field in the database.
	FieldGoalText = "goal_text"
	// FieldResultRequired holds the string denoting the result_required field in the database.
	FieldResultRequired = "result_required"
	// FieldResultCriteria holds the string denoting the result_criteria field in the database.
	FieldResultCriteria = "result_criteria"
	// FieldOnResultFound holds the string denoting the on_result_found field in the database.
	FieldOnResultFound = "on_result_found"
	// FieldBoardConfig holds the string denoting the board_config field in the database.
	FieldBoardConfig = "board_config"
	// FieldTicketHumanReview holds the string denoting the ticket_human_review field in the database.
	FieldTicketHumanReview = "ticket_human_review"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgePhases holds the string denoting the phases edge name in mutations.
	EdgePhases = "phases"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeAgents holds the string denoting the agents edge name in mutations.
	EdgeAgents = "agents"
	// EdgeTickets holds the string denoting the tickets edge name in mutations.
	EdgeTickets = "tickets"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// EdgeDiagnosticRuns holds the string denoting the diagnostic_runs edge name in mutations.
	EdgeDiagnosticRuns = "diagnostic_runs"
	// PhaseFieldID holds the string denoting the ID field of the Phase.
	PhaseFieldID = "phase_id"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// TicketFieldID holds the string denoting the ID field of the Ticket.
	TicketFieldID = "ticket_id"
	// WorkflowResultFieldID holds the string denoting the ID field of the WorkflowResult.
	WorkflowResultFieldID = "workflow_result_id"
	// DiagnosticRunFieldID holds the string denoting the ID field of the DiagnosticRun.
	DiagnosticRunFieldID = "diagnostic_run_id"
	// Table holds the table name of the workflow in the database.
	Table = "workflows"
	// PhasesTable is the table that holds the phases relation/edge.
	PhasesTable = "phases"
	// PhasesInverseTable is the table name for the Phase entity.
	// It exists in this package in order to avoid circular dependency with the "phase" package.
	PhasesInverseTable = "phases"
	// PhasesColumn is the table column denoting the phases relation/edge.
	PhasesColumn = "workflow_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "workflow_id"
	// AgentsTable is the table that holds the agents relation/edge.
	AgentsTable = "agents"
	// AgentsInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentsInverseTable = "agents"
	// AgentsColumn is the table column denoting the agents relation/edge.
	AgentsColumn = "workflow_id"
	// TicketsTable is the table that holds the tickets relation/edge.
	TicketsTable = "tickets"
	// TicketsInverseTable is the table name for the Ticket entity.
	// It exists in this package in order to avoid circular dependency with the "ticket" package.
	TicketsInverseTable = "tickets"
	// TicketsColumn is the table column denoting the tickets relation/edge.
	TicketsColumn = "workflow_id"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "workflow_results"
	// ResultsInverseTable is the table name for the WorkflowResult entity.
	// It exists in this package in order to avoid circular dependency with the "workflowresult" package.
	ResultsInverseTable = "workflow_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "workflow_id"
	// DiagnosticRunsTable is the table that holds the diagnostic_runs relation/edge.
	DiagnosticRunsTable = "diagnostic_runs"
	// DiagnosticRunsInverseTable is the table name for the DiagnosticRun entity.
	// It exists in this package in order to avoid circular dependency with the "diagnosticrun" package.
	DiagnosticRunsInverseTable = "diagnostic_runs"
	// DiagnosticRunsColumn is the table column denoting the diagnostic_runs relation/edge.
	DiagnosticRunsColumn = "workflow_id"
)

// Columns holds all SQL columns for workflow fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldGoalText,
	FieldResultRequired,
	FieldResultCriteria,
	FieldOnResultFound,
	FieldBoardConfig,
	FieldTicketHumanReview,
	FieldStatus,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultResultRequired holds the default value on creation for the "result_required" field.
	DefaultResultRequired bool
	// DefaultTicketHumanReview holds the default value on creation for the "ticket_human_review" field.
	DefaultTicketHumanReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OnResultFound defines the type for the "on_result_found" enum field.
type OnResultFound string

// OnResultFoundStopAll is the default value of the OnResultFound enum.
const DefaultOnResultFound = OnResultFoundStopAll

// OnResultFound values.
const (
	OnResultFoundStopAll   OnResultFound = "stop_all"
	OnResultFoundDoNothing OnResultFound = "do_nothing"
)

func (orf OnResultFound) String() string {
	return string(orf)
}

// OnResultFoundValidator is a validator for the "on_result_found" field enum values. It is called by the builders before save.
func OnResultFoundValidator(orf OnResultFound) error {
	switch orf {
	case OnResultFoundStopAll, OnResultFoundDoNothing:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for on_result_found field: %q", orf)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Workflow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByGoalText orders the results by the goal_text field.
func ByGoalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalText, opts...).ToFunc()
}

// ByResultRequired orders the results by the result_required field.
func ByResultRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultRequired, opts...).ToFunc()
}

// ByOnResultFound orders the results by the on_result_found field.
func ByOnResultFound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnResultFound, opts...).ToFunc()
}

// ByTicketHumanReview orders the results by the ticket_human_review field.
func ByTicketHumanReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketHumanReview, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPhasesCount orders the results by phases count.
func ByPhasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPhasesStep(), opts...)
	}
}

// ByPhases orders the results by phases terms.
func ByPhases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentsCount orders the results by agents count.
func ByAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentsStep(), opts...)
	}
}

// ByAgents orders the results by agents terms.
func ByAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTicketsCount orders the results by tickets count.
func ByTicketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTicketsStep(), opts...)
	}
}

// ByTickets orders the results by tickets terms.
func ByTickets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDiagnosticRunsCount orders the results by diagnostic_runs count.
func ByDiagnosticRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDiagnosticRunsStep(), opts...)
	}
}

// ByDiagnosticRuns orders the results by diagnostic_runs terms.
func ByDiagnosticRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDiagnosticRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPhasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhasesInverseTable, PhaseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PhasesTable, PhasesColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentsInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
	)
}
func newTicketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketsInverseTable, TicketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TicketsTable, TicketsColumn),
	)
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, WorkflowResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
func newDiagnosticRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DiagnosticRunsInverseTable, DiagnosticRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DiagnosticRunsTable, DiagnosticRunsColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldTicketID holds the string denoting the ticket_id field in the database.
	FieldTicketID = "ticket_id"
	// FieldParentTaskID holds the string denoting the parent_task_id field in the database.
	FieldParentTaskID = "parent_task_id"
	// FieldCreatedByAgentID holds the string denoting the created_by_agent_id field in the database.
	FieldCreatedByAgentID = "created_by_agent_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDoneDefinition holds the string denoting the done_definition field in the database.
	FieldDoneDefinition = "done_definition"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDescriptionEmbedding holds the string denoting the description_embedding field in the database.
	FieldDescriptionEmbedding = "description_embedding"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldCompletionNotes holds the string denoting the completion_notes field in the database.
	FieldCompletionNotes = "completion_notes"
	// FieldDuplicateOfTaskID holds the string denoting the duplicate_of_task_id field in the database.
	FieldDuplicateOfTaskID = "duplicate_of_task_id"
	// FieldSimilarityScore holds the string denoting the similarity_score field in the database.
	FieldSimilarityScore = "similarity_score"
	// FieldQueuedAt holds the string denoting the queued_at field in the database.
	FieldQueuedAt = "queued_at"
	// FieldQueuePosition holds the string denoting the queue_position field in the database.
	FieldQueuePosition = "queue_position"
	// FieldPriorityBoosted holds the string denoting the priority_boosted field in the database.
	FieldPriorityBoosted = "priority_boosted"
	// FieldValidationEnabled holds the string denoting the validation_enabled field in the database.
	FieldValidationEnabled = "validation_enabled"
	// FieldValidationIteration holds the string denoting the validation_iteration field in the database.
	FieldValidationIteration = "validation_iteration"
	// FieldLastValidationFeedback holds the string denoting the last_validation_feedback field in the database.
	FieldLastValidationFeedback = "last_validation_feedback"
	// FieldReviewDone holds the string denoting the review_done field in the database.
	FieldReviewDone = "review_done"
	// FieldAssignedAgentID holds the string denoting the assigned_agent_id field in the database.
	FieldAssignedAgentID = "assigned_agent_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// EdgeValidationReviews holds the string denoting the validation_reviews edge name in mutations.
	EdgeValidationReviews = "validation_reviews"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// TaskResultFieldID holds the string denoting the ID field of the TaskResult.
	TaskResultFieldID = "result_id"
	// ValidationReviewFieldID holds the string denoting the ID field of the ValidationReview.
	ValidationReviewFieldID = "review_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "tasks"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "task_results"
	// ResultsInverseTable is the table name for the TaskResult entity.
	// It exists in this package in order to avoid circular dependency with the "taskresult" package.
	ResultsInverseTable = "task_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "task_id"
	// ValidationReviewsTable is the table that holds the validation_reviews relation/edge.
	ValidationReviewsTable = "validation_reviews"
	// ValidationReviewsInverseTable is the table name for the ValidationReview entity.
	// It exists in this package in order to avoid circular dependency with the "validationreview" package.
	ValidationReviewsInverseTable = "validation_reviews"
	// ValidationReviewsColumn is the table column denoting the validation_reviews relation/edge.
	ValidationReviewsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldPhaseID,
	FieldTicketID,
	FieldParentTaskID,
	FieldCreatedByAgentID,
	FieldAgentType,
	FieldDescription,
	FieldDoneDefinition,
	FieldPriority,
	FieldDescriptionEmbedding,
	FieldStatus,
	FieldFailureReason,
	FieldCompletionNotes,
	FieldDuplicateOfTaskID,
	FieldSimilarityScore,
	FieldQueuedAt,
	FieldQueuePosition,
	FieldPriorityBoosted,
	FieldValidationEnabled,
	FieldValidationIteration,
	FieldLastValidationFeedback,
	FieldReviewDone,
	FieldAssignedAgentID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldCreatedAt,
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
	// DefaultPriorityBoosted holds the default value on creation for the "priority_boosted" field.
	DefaultPriorityBoosted bool
	// DefaultValidationEnabled holds the default value on creation for the "validation_enabled" field.
	DefaultValidationEnabled bool
	// DefaultValidationIteration holds the default value on creation for the "validation_iteration" field.
	DefaultValidationIteration int
	// DefaultReviewDone holds the default value on creation for the "review_done" field.
	DefaultReviewDone bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AgentType defines the type for the "agent_type" enum field.
type AgentType string

// AgentTypePhase is the default value of the AgentType enum.
const DefaultAgentType = AgentTypePhase

// AgentType values.
const (
	AgentTypePhase           AgentType = "phase"
	AgentTypeValidator       AgentType = "validator"
	AgentTypeResultValidator AgentType = "result_validator"
	AgentTypeDiagnostic      AgentType = "diagnostic"
)

func (at AgentType) String() string {
	return string(at)
}

// AgentTypeValidator is a validator for the "agent_type" field enum values. It is called by the builders before save.
func ValidateAgentType(at AgentType) error {
	switch at {
	case AgentTypePhase, AgentTypeValidator, AgentTypeResultValidator, AgentTypeDiagnostic:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for agent_type field: %q", at)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMed is the default value of the Priority enum.
const DefaultPriority = PriorityMed

// Priority values.
const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMed, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending              Status = "pending"
	StatusQueued               Status = "queued"
	StatusAssigned             Status = "assigned"
	StatusInProgress           Status = "in_progress"
	StatusUnderReview          Status = "under_review"
	StatusValidationInProgress Status = "validation_in_progress"
	StatusNeedsWork            Status = "needs_work"
	StatusDone                 Status = "done"
	StatusFailed               Status = "failed"
	StatusDuplicated           Status = "duplicated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusQueued, StatusAssigned, StatusInProgress, StatusUnderReview, StatusValidationInProgress, StatusNeedsWork, StatusDone, StatusFailed, StatusDuplicated:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByPhaseID orders the results by the phase_id field.
func ByPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseID, opts...).ToFunc()
}

// ByTicketID orders the results by the ticket_id field.
func ByTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketID, opts...).ToFunc()
}

// ByParentTaskID orders the results by the parent_task_id field.
func ByParentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTaskID, opts...).ToFunc()
}

// ByCreatedByAgentID orders the results by the created_by_agent_id field.
func ByCreatedByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByAgentID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDoneDefinition orders the results by the done_definition field.
func ByDoneDefinition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoneDefinition, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByCompletionNotes orders the results by the completion_notes field.
func ByCompletionNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionNotes, opts...).ToFunc()
}

// ByDuplicateOfTaskID orders the results by the duplicate_of_task_id field.
func ByDuplicateOfTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateOfTaskID, opts...).ToFunc()
}

// BySimilarityScore orders the results by the similarity_score field.
func BySimilarityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityScore, opts...).ToFunc()
}

// ByQueuedAt orders the results by the queued_at field.
func ByQueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuedAt, opts...).ToFunc()
}

// ByQueuePosition orders the results by the queue_position field.
func ByQueuePosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuePosition, opts...).ToFunc()
}

// ByPriorityBoosted orders the results by the priority_boosted field.
func ByPriorityBoosted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityBoosted, opts...).ToFunc()
}

// ByValidationEnabled orders the results by the validation_enabled field.
func ByValidationEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationEnabled, opts...).ToFunc()
}

// ByValidationIteration orders the results by the validation_iteration field.
func ByValidationIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationIteration, opts...).ToFunc()
}

// ByLastValidationFeedback orders the results by the last_validation_feedback field.
func ByLastValidationFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastValidationFeedback, opts...).ToFunc()
}

// ByReviewDone orders the results by the review_done field.
func ByReviewDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewDone, opts...).ToFunc()
}

// ByAssignedAgentID orders the results by the assigned_agent_id field.
func ByAssignedAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgentID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
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

// ByValidationReviewsCount orders the results by validation_reviews count.
func ByValidationReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValidationReviewsStep(), opts...)
	}
}

// ByValidationReviews orders the results by validation_reviews terms.
func ByValidationReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValidationReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, TaskResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
func newValidationReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValidationReviewsInverseTable, ValidationReviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValidationReviewsTable, ValidationReviewsColumn),
	)
}

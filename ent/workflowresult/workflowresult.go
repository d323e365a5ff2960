// Code generated by ent, DO NOT EDIT.

package workflowresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowresult type in the database.
	Label = "workflow_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_result_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldMarkdownPath holds the string denoting the markdown_path field in the database.
	FieldMarkdownPath = "markdown_path"
	// FieldMarkdownContent holds the string denoting the markdown_content field in the database.
	FieldMarkdownContent = "markdown_content"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldValidationFeedback holds the string denoting the validation_feedback field in the database.
	FieldValidationFeedback = "validation_feedback"
	// FieldValidationEvidence holds the string denoting the validation_evidence field in the database.
	FieldValidationEvidence = "validation_evidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldValidatedAt holds the string denoting the validated_at field in the database.
	FieldValidatedAt = "validated_at"
	// FieldValidatedByAgentID holds the string denoting the validated_by_agent_id field in the database.
	FieldValidatedByAgentID = "validated_by_agent_id"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the workflowresult in the database.
	Table = "workflow_results"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "workflow_results"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for workflowresult fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldAgentID,
	FieldMarkdownPath,
	FieldMarkdownContent,
	FieldStatus,
	FieldValidationFeedback,
	FieldValidationEvidence,
	FieldCreatedAt,
	FieldValidatedAt,
	FieldValidatedByAgentID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingValidation is the default value of the Status enum.
const DefaultStatus = StatusPendingValidation

// Status values.
const (
	StatusPendingValidation Status = "pending_validation"
	StatusValidated         Status = "validated"
	StatusRejected          Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingValidation, StatusValidated, StatusRejected:
		return nil
	default:
		return fmt.Errorf("workflowresult: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkflowResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByMarkdownPath orders the results by the markdown_path field.
func ByMarkdownPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdownPath, opts...).ToFunc()
}

// ByMarkdownContent orders the results by the markdown_content field.
func ByMarkdownContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdownContent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByValidationFeedback orders the results by the validation_feedback field.
func ByValidationFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationFeedback, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByValidatedAt orders the results by the validated_at field.
func ByValidatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedAt, opts...).ToFunc()
}

// ByValidatedByAgentID orders the results by the validated_by_agent_id field.
func ByValidatedByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedByAgentID, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package taskresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskresult type in the database.
	Label = "task_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldMarkdownPath holds the string denoting the markdown_path field in the database.
	FieldMarkdownPath = "markdown_path"
	// FieldMarkdownContent holds the string denoting the markdown_content field in the database.
	FieldMarkdownContent = "markdown_content"
	// FieldResultType holds the string denoting the result_type field in the database.
	FieldResultType = "result_type"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldVerificationStatus holds the string denoting the verification_status field in the database.
	FieldVerificationStatus = "verification_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldVerifiedAt holds the string denoting the verified_at field in the database.
	FieldVerifiedAt = "verified_at"
	// FieldVerifiedByValidationID holds the string denoting the verified_by_validation_id field in the database.
	FieldVerifiedByValidationID = "verified_by_validation_id"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskresult in the database.
	Table = "task_results"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_results"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskresult fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldTaskID,
	FieldMarkdownPath,
	FieldMarkdownContent,
	FieldResultType,
	FieldSummary,
	FieldVerificationStatus,
	FieldCreatedAt,
	FieldVerifiedAt,
	FieldVerifiedByValidationID,
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

// ResultType defines the type for the "result_type" enum field.
type ResultType string

// ResultType values.
const (
	ResultTypeImplementation ResultType = "implementation"
	ResultTypeAnalysis       ResultType = "analysis"
	ResultTypeFix            ResultType = "fix"
	ResultTypeDesign         ResultType = "design"
	ResultTypeTest           ResultType = "test"
	ResultTypeDocumentation  ResultType = "documentation"
)

func (rt ResultType) String() string {
	return string(rt)
}

// ResultTypeValidator is a validator for the "result_type" field enum values. It is called by the builders before save.
func ResultTypeValidator(rt ResultType) error {
	switch rt {
	case ResultTypeImplementation, ResultTypeAnalysis, ResultTypeFix, ResultTypeDesign, ResultTypeTest, ResultTypeDocumentation:
		return nil
	default:
		return fmt.Errorf("taskresult: invalid enum value for result_type field: %q", rt)
	}
}

// VerificationStatus defines the type for the "verification_status" enum field.
type VerificationStatus string

// VerificationStatusUnverified is the default value of the VerificationStatus enum.
const DefaultVerificationStatus = VerificationStatusUnverified

// VerificationStatus values.
const (
	VerificationStatusUnverified VerificationStatus = "unverified"
	VerificationStatusVerified   VerificationStatus = "verified"
	VerificationStatusDisputed   VerificationStatus = "disputed"
)

func (vs VerificationStatus) String() string {
	return string(vs)
}

// VerificationStatusValidator is a validator for the "verification_status" field enum values. It is called by the builders before save.
func VerificationStatusValidator(vs VerificationStatus) error {
	switch vs {
	case VerificationStatusUnverified, VerificationStatusVerified, VerificationStatusDisputed:
		return nil
	default:
		return fmt.Errorf("taskresult: invalid enum value for verification_status field: %q", vs)
	}
}

// OrderOption defines the ordering options for the TaskResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByMarkdownPath orders the results by the markdown_path field.
func ByMarkdownPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdownPath, opts...).ToFunc()
}

// ByMarkdownContent orders the results by the markdown_content field.
func ByMarkdownContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdownContent, opts...).ToFunc()
}

// ByResultType orders the results by the result_type field.
func ByResultType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultType, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByVerificationStatus orders the results by the verification_status field.
func ByVerificationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVerifiedAt orders the results by the verified_at field.
func ByVerifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedAt, opts...).ToFunc()
}

// ByVerifiedByValidationID orders the results by the verified_by_validation_id field.
func ByVerifiedByValidationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedByValidationID, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}

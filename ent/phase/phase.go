// Code generated by ent, DO NOT EDIT.

package phase

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the phase type in the database.
	Label = "phase"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "phase_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDoneDefinitions holds the string denoting the done_definitions field in the database.
	FieldDoneDefinitions = "done_definitions"
	// FieldAdditionalNotes holds the string denoting the additional_notes field in the database.
	FieldAdditionalNotes = "additional_notes"
	// FieldValidationEnabled holds the string denoting the validation_enabled field in the database.
	FieldValidationEnabled = "validation_enabled"
	// FieldValidationCriteria holds the string denoting the validation_criteria field in the database.
	FieldValidationCriteria = "validation_criteria"
	// FieldValidatorInstructions holds the string denoting the validator_instructions field in the database.
	FieldValidatorInstructions = "validator_instructions"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the phase in the database.
	Table = "phases"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "phases"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for phase fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldNumber,
	FieldName,
	FieldDescription,
	FieldDoneDefinitions,
	FieldAdditionalNotes,
	FieldValidationEnabled,
	FieldValidationCriteria,
	FieldValidatorInstructions,
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
	// DefaultValidationEnabled holds the default value on creation for the "validation_enabled" field.
	DefaultValidationEnabled bool
)

// OrderOption defines the ordering options for the Phase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAdditionalNotes orders the results by the additional_notes field.
func ByAdditionalNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdditionalNotes, opts...).ToFunc()
}

// ByValidationEnabled orders the results by the validation_enabled field.
func ByValidationEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationEnabled, opts...).ToFunc()
}

// ByValidatorInstructions orders the results by the validator_instructions field.
func ByValidatorInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatorInstructions, opts...).ToFunc()
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

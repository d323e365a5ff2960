// Code generated by ent, DO NOT EDIT.

package phase

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldWorkflowID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldNumber, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldDescription, v))
}

// AdditionalNotes applies equality check predicate on the "additional_notes" field. It's identical to AdditionalNotesEQ.
func AdditionalNotes(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldAdditionalNotes, v))
}

// ValidationEnabled applies equality check predicate on the "validation_enabled" field. It's identical to ValidationEnabledEQ.
func ValidationEnabled(v bool) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldValidationEnabled, v))
}

// ValidatorInstructions applies equality check predicate on the "validator_instructions" field. It's identical to ValidatorInstructionsEQ.
func ValidatorInstructions(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldValidatorInstructions, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldWorkflowID, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldNumber, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldDescription, v))
}

// AdditionalNotesEQ applies the EQ predicate on the "additional_notes" field.
func AdditionalNotesEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldAdditionalNotes, v))
}

// AdditionalNotesNEQ applies the NEQ predicate on the "additional_notes" field.
func AdditionalNotesNEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldAdditionalNotes, v))
}

// AdditionalNotesIn applies the In predicate on the "additional_notes" field.
func AdditionalNotesIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldAdditionalNotes, vs...))
}

// AdditionalNotesNotIn applies the NotIn predicate on the "additional_notes" field.
func AdditionalNotesNotIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldAdditionalNotes, vs...))
}

// AdditionalNotesGT applies the GT predicate on the "additional_notes" field.
func AdditionalNotesGT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldAdditionalNotes, v))
}

// AdditionalNotesGTE applies the GTE predicate on the "additional_notes" field.
func AdditionalNotesGTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldAdditionalNotes, v))
}

// AdditionalNotesLT applies the LT predicate on the "additional_notes" field.
func AdditionalNotesLT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldAdditionalNotes, v))
}

// AdditionalNotesLTE applies the LTE predicate on the "additional_notes" field.
func AdditionalNotesLTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldAdditionalNotes, v))
}

// AdditionalNotesContains applies the Contains predicate on the "additional_notes" field.
func AdditionalNotesContains(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContains(FieldAdditionalNotes, v))
}

// AdditionalNotesHasPrefix applies the HasPrefix predicate on the "additional_notes" field.
func AdditionalNotesHasPrefix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasPrefix(FieldAdditionalNotes, v))
}

// AdditionalNotesHasSuffix applies the HasSuffix predicate on the "additional_notes" field.
func AdditionalNotesHasSuffix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasSuffix(FieldAdditionalNotes, v))
}

// AdditionalNotesIsNil applies the IsNil predicate on the "additional_notes" field.
func AdditionalNotesIsNil() predicate.Phase {
	return predicate.Phase(sql.FieldIsNull(FieldAdditionalNotes))
}

// AdditionalNotesNotNil applies the NotNil predicate on the "additional_notes" field.
func AdditionalNotesNotNil() predicate.Phase {
	return predicate.Phase(sql.FieldNotNull(FieldAdditionalNotes))
}

// AdditionalNotesEqualFold applies the EqualFold predicate on the "additional_notes" field.
func AdditionalNotesEqualFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldAdditionalNotes, v))
}

// AdditionalNotesContainsFold applies the ContainsFold predicate on the "additional_notes" field.
func AdditionalNotesContainsFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldAdditionalNotes, v))
}

// ValidationEnabledEQ applies the EQ predicate on the "validation_enabled" field.
func ValidationEnabledEQ(v bool) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldValidationEnabled, v))
}

// ValidationEnabledNEQ applies the NEQ predicate on the "validation_enabled" field.
func ValidationEnabledNEQ(v bool) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldValidationEnabled, v))
}

// ValidationCriteriaIsNil applies the IsNil predicate on the "validation_criteria" field.
func ValidationCriteriaIsNil() predicate.Phase {
	return predicate.Phase(sql.FieldIsNull(FieldValidationCriteria))
}

// ValidationCriteriaNotNil applies the NotNil predicate on the "validation_criteria" field.
func ValidationCriteriaNotNil() predicate.Phase {
	return predicate.Phase(sql.FieldNotNull(FieldValidationCriteria))
}

// ValidatorInstructionsEQ applies the EQ predicate on the "validator_instructions" field.
func ValidatorInstructionsEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldValidatorInstructions, v))
}

// ValidatorInstructionsNEQ applies the NEQ predicate on the "validator_instructions" field.
func ValidatorInstructionsNEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldValidatorInstructions, v))
}

// ValidatorInstructionsIn applies the In predicate on the "validator_instructions" field.
func ValidatorInstructionsIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldValidatorInstructions, vs...))
}

// ValidatorInstructionsNotIn applies the NotIn predicate on the "validator_instructions" field.
func ValidatorInstructionsNotIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldValidatorInstructions, vs...))
}

// ValidatorInstructionsGT applies the GT predicate on the "validator_instructions" field.
func ValidatorInstructionsGT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldValidatorInstructions, v))
}

// ValidatorInstructionsGTE applies the GTE predicate on the "validator_instructions" field.
func ValidatorInstructionsGTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldValidatorInstructions, v))
}

// ValidatorInstructionsLT applies the LT predicate on the "validator_instructions" field.
func ValidatorInstructionsLT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldValidatorInstructions, v))
}

// ValidatorInstructionsLTE applies the LTE predicate on the "validator_instructions" field.
func ValidatorInstructionsLTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldValidatorInstructions, v))
}

// ValidatorInstructionsContains applies the Contains predicate on the "validator_instructions" field.
func ValidatorInstructionsContains(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContains(FieldValidatorInstructions, v))
}

// ValidatorInstructionsHasPrefix applies the HasPrefix predicate on the "validator_instructions" field.
func ValidatorInstructionsHasPrefix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasPrefix(FieldValidatorInstructions, v))
}

// ValidatorInstructionsHasSuffix applies the HasSuffix predicate on the "validator_instructions" field.
func ValidatorInstructionsHasSuffix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasSuffix(FieldValidatorInstructions, v))
}

// ValidatorInstructionsIsNil applies the IsNil predicate on the "validator_instructions" field.
func ValidatorInstructionsIsNil() predicate.Phase {
	return predicate.Phase(sql.FieldIsNull(FieldValidatorInstructions))
}

// ValidatorInstructionsNotNil applies the NotNil predicate on the "validator_instructions" field.
func ValidatorInstructionsNotNil() predicate.Phase {
	return predicate.Phase(sql.FieldNotNull(FieldValidatorInstructions))
}

// ValidatorInstructionsEqualFold applies the EqualFold predicate on the "validator_instructions" field.
func ValidatorInstructionsEqualFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldValidatorInstructions, v))
}

// ValidatorInstructionsContainsFold applies the ContainsFold predicate on the "validator_instructions" field.
func ValidatorInstructionsContainsFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldValidatorInstructions, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.Phase {
	return predicate.Phase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.Phase {
	return predicate.Phase(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Phase) predicate.Phase {
	return predicate.Phase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Phase) predicate.Phase {
	return predicate.Phase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Phase) predicate.Phase {
	return predicate.Phase(sql.NotPredicates(p))
}

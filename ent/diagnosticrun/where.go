// Code generated by ent, DO NOT EDIT.

package diagnosticrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldWorkflowID, v))
}

// TriggeredAt applies equality check predicate on the "triggered_at" field. It's identical to TriggeredAtEQ.
func TriggeredAt(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTriggeredAt, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldDiagnosis, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldWorkflowID, v))
}

// TriggeredAtEQ applies the EQ predicate on the "triggered_at" field.
func TriggeredAtEQ(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTriggeredAt, v))
}

// TriggeredAtNEQ applies the NEQ predicate on the "triggered_at" field.
func TriggeredAtNEQ(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldTriggeredAt, v))
}

// TriggeredAtIn applies the In predicate on the "triggered_at" field.
func TriggeredAtIn(vs ...time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldTriggeredAt, vs...))
}

// TriggeredAtNotIn applies the NotIn predicate on the "triggered_at" field.
func TriggeredAtNotIn(vs ...time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldTriggeredAt, vs...))
}

// TriggeredAtGT applies the GT predicate on the "triggered_at" field.
func TriggeredAtGT(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldTriggeredAt, v))
}

// TriggeredAtGTE applies the GTE predicate on the "triggered_at" field.
func TriggeredAtGTE(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldTriggeredAt, v))
}

// TriggeredAtLT applies the LT predicate on the "triggered_at" field.
func TriggeredAtLT(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldTriggeredAt, v))
}

// TriggeredAtLTE applies the LTE predicate on the "triggered_at" field.
func TriggeredAtLTE(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldTriggeredAt, v))
}

// TriggerStatsIsNil applies the IsNil predicate on the "trigger_stats" field.
func TriggerStatsIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldTriggerStats))
}

// TriggerStatsNotNil applies the NotNil predicate on the "trigger_stats" field.
func TriggerStatsNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldTriggerStats))
}

// TasksCreatedIdsIsNil applies the IsNil predicate on the "tasks_created_ids" field.
func TasksCreatedIdsIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldTasksCreatedIds))
}

// TasksCreatedIdsNotNil applies the NotNil predicate on the "tasks_created_ids" field.
func TasksCreatedIdsNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldTasksCreatedIds))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisIsNil applies the IsNil predicate on the "diagnosis" field.
func DiagnosisIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldDiagnosis))
}

// DiagnosisNotNil applies the NotNil predicate on the "diagnosis" field.
func DiagnosisNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldDiagnosis))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldDiagnosis, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldStatus, vs...))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosticRun) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosticRun) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosticRun) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.NotPredicates(p))
}

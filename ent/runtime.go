// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/schema"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/ent/ticketblock"
	"github.com/hephaestus-ai/hephaestus/ent/ticketcomment"
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[7].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescLastActivity is the schema descriptor for last_activity field.
	agentDescLastActivity := agentFields[8].Descriptor()
	// agent.DefaultLastActivity holds the default value on creation for the last_activity field.
	agent.DefaultLastActivity = agentDescLastActivity.Default.(func() time.Time)
	// agentDescKeptAliveForValidation is the schema descriptor for kept_alive_for_validation field.
	agentDescKeptAliveForValidation := agentFields[9].Descriptor()
	// agent.DefaultKeptAliveForValidation holds the default value on creation for the kept_alive_for_validation field.
	agent.DefaultKeptAliveForValidation = agentDescKeptAliveForValidation.Default.(bool)
	conductoranalysisFields := schema.ConductorAnalysis{}.Fields()
	_ = conductoranalysisFields
	// conductoranalysisDescTimestamp is the schema descriptor for timestamp field.
	conductoranalysisDescTimestamp := conductoranalysisFields[1].Descriptor()
	// conductoranalysis.DefaultTimestamp holds the default value on creation for the timestamp field.
	conductoranalysis.DefaultTimestamp = conductoranalysisDescTimestamp.Default.(func() time.Time)
	diagnosticrunFields := schema.DiagnosticRun{}.Fields()
	_ = diagnosticrunFields
	// diagnosticrunDescTriggeredAt is the schema descriptor for triggered_at field.
	diagnosticrunDescTriggeredAt := diagnosticrunFields[2].Descriptor()
	// diagnosticrun.DefaultTriggeredAt holds the default value on creation for the triggered_at field.
	diagnosticrun.DefaultTriggeredAt = diagnosticrunDescTriggeredAt.Default.(func() time.Time)
	guardiananalysisFields := schema.GuardianAnalysis{}.Fields()
	_ = guardiananalysisFields
	// guardiananalysisDescTimestamp is the schema descriptor for timestamp field.
	guardiananalysisDescTimestamp := guardiananalysisFields[2].Descriptor()
	// guardiananalysis.DefaultTimestamp holds the default value on creation for the timestamp field.
	guardiananalysis.DefaultTimestamp = guardiananalysisDescTimestamp.Default.(func() time.Time)
	phaseFields := schema.Phase{}.Fields()
	_ = phaseFields
	// phaseDescValidationEnabled is the schema descriptor for validation_enabled field.
	phaseDescValidationEnabled := phaseFields[7].Descriptor()
	// phase.DefaultValidationEnabled holds the default value on creation for the validation_enabled field.
	phase.DefaultValidationEnabled = phaseDescValidationEnabled.Default.(bool)
	steeringinterventionFields := schema.SteeringIntervention{}.Fields()
	_ = steeringinterventionFields
	// steeringinterventionDescTimestamp is the schema descriptor for timestamp field.
	steeringinterventionDescTimestamp := steeringinterventionFields[3].Descriptor()
	// steeringintervention.DefaultTimestamp holds the default value on creation for the timestamp field.
	steeringintervention.DefaultTimestamp = steeringinterventionDescTimestamp.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriorityBoosted is the schema descriptor for priority_boosted field.
	taskDescPriorityBoosted := taskFields[18].Descriptor()
	// task.DefaultPriorityBoosted holds the default value on creation for the priority_boosted field.
	task.DefaultPriorityBoosted = taskDescPriorityBoosted.Default.(bool)
	// taskDescValidationEnabled is the schema descriptor for validation_enabled field.
	taskDescValidationEnabled := taskFields[19].Descriptor()
	// task.DefaultValidationEnabled holds the default value on creation for the validation_enabled field.
	task.DefaultValidationEnabled = taskDescValidationEnabled.Default.(bool)
	// taskDescValidationIteration is the schema descriptor for validation_iteration field.
	taskDescValidationIteration := taskFields[20].Descriptor()
	// task.DefaultValidationIteration holds the default value on creation for the validation_iteration field.
	task.DefaultValidationIteration = taskDescValidationIteration.Default.(int)
	// taskDescReviewDone is the schema descriptor for review_done field.
	taskDescReviewDone := taskFields[22].Descriptor()
	// task.DefaultReviewDone holds the default value on creation for the review_done field.
	task.DefaultReviewDone = taskDescReviewDone.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[26].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	taskresultFields := schema.TaskResult{}.Fields()
	_ = taskresultFields
	// taskresultDescCreatedAt is the schema descriptor for created_at field.
	taskresultDescCreatedAt := taskresultFields[8].Descriptor()
	// taskresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskresult.DefaultCreatedAt = taskresultDescCreatedAt.Default.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescResolved is the schema descriptor for resolved field.
	ticketDescResolved := ticketFields[8].Descriptor()
	// ticket.DefaultResolved holds the default value on creation for the resolved field.
	ticket.DefaultResolved = ticketDescResolved.Default.(bool)
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[12].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[13].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketblockFields := schema.TicketBlock{}.Fields()
	_ = ticketblockFields
	// ticketblockDescCreatedAt is the schema descriptor for created_at field.
	ticketblockDescCreatedAt := ticketblockFields[3].Descriptor()
	// ticketblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketblock.DefaultCreatedAt = ticketblockDescCreatedAt.Default.(func() time.Time)
	ticketcommentFields := schema.TicketComment{}.Fields()
	_ = ticketcommentFields
	// ticketcommentDescCreatedAt is the schema descriptor for created_at field.
	ticketcommentDescCreatedAt := ticketcommentFields[4].Descriptor()
	// ticketcomment.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketcomment.DefaultCreatedAt = ticketcommentDescCreatedAt.Default.(func() time.Time)
	validationreviewFields := schema.ValidationReview{}.Fields()
	_ = validationreviewFields
	// validationreviewDescCreatedAt is the schema descriptor for created_at field.
	validationreviewDescCreatedAt := validationreviewFields[7].Descriptor()
	// validationreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationreview.DefaultCreatedAt = validationreviewDescCreatedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescResultRequired is the schema descriptor for result_required field.
	workflowDescResultRequired := workflowFields[3].Descriptor()
	// workflow.DefaultResultRequired holds the default value on creation for the result_required field.
	workflow.DefaultResultRequired = workflowDescResultRequired.Default.(bool)
	// workflowDescTicketHumanReview is the schema descriptor for ticket_human_review field.
	workflowDescTicketHumanReview := workflowFields[7].Descriptor()
	// workflow.DefaultTicketHumanReview holds the default value on creation for the ticket_human_review field.
	workflow.DefaultTicketHumanReview = workflowDescTicketHumanReview.Default.(bool)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[9].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	workflowresultFields := schema.WorkflowResult{}.Fields()
	_ = workflowresultFields
	// workflowresultDescCreatedAt is the schema descriptor for created_at field.
	workflowresultDescCreatedAt := workflowresultFields[8].Descriptor()
	// workflowresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowresult.DefaultCreatedAt = workflowresultDescCreatedAt.Default.(func() time.Time)
}

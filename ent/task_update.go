// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhaseID sets the "phase_id" field.
func (_u *TaskUpdate) SetPhaseID(v string) *TaskUpdate {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePhaseID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// ClearPhaseID clears the value of the "phase_id" field.
func (_u *TaskUpdate) ClearPhaseID() *TaskUpdate {
	_u.mutation.ClearPhaseID()
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *TaskUpdate) SetTicketID(v string) *TaskUpdate {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTicketID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *TaskUpdate) ClearTicketID() *TaskUpdate {
	_u.mutation.ClearTicketID()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_u *TaskUpdate) SetCreatedByAgentID(v string) *TaskUpdate {
	_u.mutation.SetCreatedByAgentID(v)
	return _u
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatedByAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatedByAgentID(*v)
	}
	return _u
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (_u *TaskUpdate) ClearCreatedByAgentID() *TaskUpdate {
	_u.mutation.ClearCreatedByAgentID()
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *TaskUpdate) SetAgentType(v task.AgentType) *TaskUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentType(v *task.AgentType) *TaskUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDoneDefinition sets the "done_definition" field.
func (_u *TaskUpdate) SetDoneDefinition(v string) *TaskUpdate {
	_u.mutation.SetDoneDefinition(v)
	return _u
}

// SetNillableDoneDefinition sets the "done_definition" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDoneDefinition(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDoneDefinition(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetDescriptionEmbedding sets the "description_embedding" field.
func (_u *TaskUpdate) SetDescriptionEmbedding(v []float32) *TaskUpdate {
	_u.mutation.SetDescriptionEmbedding(v)
	return _u
}

// AppendDescriptionEmbedding appends value to the "description_embedding" field.
func (_u *TaskUpdate) AppendDescriptionEmbedding(v []float32) *TaskUpdate {
	_u.mutation.AppendDescriptionEmbedding(v)
	return _u
}

// ClearDescriptionEmbedding clears the value of the "description_embedding" field.
func (_u *TaskUpdate) ClearDescriptionEmbedding() *TaskUpdate {
	_u.mutation.ClearDescriptionEmbedding()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdate) SetFailureReason(v string) *TaskUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailureReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdate) ClearFailureReason() *TaskUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCompletionNotes sets the "completion_notes" field.
func (_u *TaskUpdate) SetCompletionNotes(v string) *TaskUpdate {
	_u.mutation.SetCompletionNotes(v)
	return _u
}

// SetNillableCompletionNotes sets the "completion_notes" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletionNotes(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCompletionNotes(*v)
	}
	return _u
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (_u *TaskUpdate) ClearCompletionNotes() *TaskUpdate {
	_u.mutation.ClearCompletionNotes()
	return _u
}

// SetDuplicateOfTaskID sets the "duplicate_of_task_id" field.
func (_u *TaskUpdate) SetDuplicateOfTaskID(v string) *TaskUpdate {
	_u.mutation.SetDuplicateOfTaskID(v)
	return _u
}

// SetNillableDuplicateOfTaskID sets the "duplicate_of_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDuplicateOfTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDuplicateOfTaskID(*v)
	}
	return _u
}

// ClearDuplicateOfTaskID clears the value of the "duplicate_of_task_id" field.
func (_u *TaskUpdate) ClearDuplicateOfTaskID() *TaskUpdate {
	_u.mutation.ClearDuplicateOfTaskID()
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *TaskUpdate) SetSimilarityScore(v float64) *TaskUpdate {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSimilarityScore(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *TaskUpdate) AddSimilarityScore(v float64) *TaskUpdate {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// ClearSimilarityScore clears the value of the "similarity_score" field.
func (_u *TaskUpdate) ClearSimilarityScore() *TaskUpdate {
	_u.mutation.ClearSimilarityScore()
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *TaskUpdate) SetQueuedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableQueuedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *TaskUpdate) ClearQueuedAt() *TaskUpdate {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetQueuePosition sets the "queue_position" field.
func (_u *TaskUpdate) SetQueuePosition(v int) *TaskUpdate {
	_u.mutation.ResetQueuePosition()
	_u.mutation.SetQueuePosition(v)
	return _u
}

// SetNillableQueuePosition sets the "queue_position" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableQueuePosition(v *int) *TaskUpdate {
	if v != nil {
		_u.SetQueuePosition(*v)
	}
	return _u
}

// AddQueuePosition adds value to the "queue_position" field.
func (_u *TaskUpdate) AddQueuePosition(v int) *TaskUpdate {
	_u.mutation.AddQueuePosition(v)
	return _u
}

// ClearQueuePosition clears the value of the "queue_position" field.
func (_u *TaskUpdate) ClearQueuePosition() *TaskUpdate {
	_u.mutation.ClearQueuePosition()
	return _u
}

// SetPriorityBoosted sets the "priority_boosted" field.
func (_u *TaskUpdate) SetPriorityBoosted(v bool) *TaskUpdate {
	_u.mutation.SetPriorityBoosted(v)
	return _u
}

// SetNillablePriorityBoosted sets the "priority_boosted" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriorityBoosted(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetPriorityBoosted(*v)
	}
	return _u
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_u *TaskUpdate) SetValidationEnabled(v bool) *TaskUpdate {
	_u.mutation.SetValidationEnabled(v)
	return _u
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableValidationEnabled(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetValidationEnabled(*v)
	}
	return _u
}

// SetValidationIteration sets the "validation_iteration" field.
func (_u *TaskUpdate) SetValidationIteration(v int) *TaskUpdate {
	_u.mutation.ResetValidationIteration()
	_u.mutation.SetValidationIteration(v)
	return _u
}

// SetNillableValidationIteration sets the "validation_iteration" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableValidationIteration(v *int) *TaskUpdate {
	if v != nil {
		_u.SetValidationIteration(*v)
	}
	return _u
}

// AddValidationIteration adds value to the "validation_iteration" field.
func (_u *TaskUpdate) AddValidationIteration(v int) *TaskUpdate {
	_u.mutation.AddValidationIteration(v)
	return _u
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (_u *TaskUpdate) SetLastValidationFeedback(v string) *TaskUpdate {
	_u.mutation.SetLastValidationFeedback(v)
	return _u
}

// SetNillableLastValidationFeedback sets the "last_validation_feedback" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastValidationFeedback(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLastValidationFeedback(*v)
	}
	return _u
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (_u *TaskUpdate) ClearLastValidationFeedback() *TaskUpdate {
	_u.mutation.ClearLastValidationFeedback()
	return _u
}

// SetReviewDone sets the "review_done" field.
func (_u *TaskUpdate) SetReviewDone(v bool) *TaskUpdate {
	_u.mutation.SetReviewDone(v)
	return _u
}

// SetNillableReviewDone sets the "review_done" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableReviewDone(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetReviewDone(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdate) SetAssignedAgentID(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdate) ClearAssignedAgentID() *TaskUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddResultIDs adds the "results" edge to the TaskResult entity by IDs.
func (_u *TaskUpdate) AddResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the TaskResult entity.
func (_u *TaskUpdate) AddResults(v ...*TaskResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by IDs.
func (_u *TaskUpdate) AddValidationReviewIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddValidationReviewIDs(ids...)
	return _u
}

// AddValidationReviews adds the "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdate) AddValidationReviews(v ...*ValidationReview) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationReviewIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the TaskResult entity.
func (_u *TaskUpdate) ClearResults() *TaskUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to TaskResult entities by IDs.
func (_u *TaskUpdate) RemoveResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to TaskResult entities.
func (_u *TaskUpdate) RemoveResults(v ...*TaskResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearValidationReviews clears all "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdate) ClearValidationReviews() *TaskUpdate {
	_u.mutation.ClearValidationReviews()
	return _u
}

// RemoveValidationReviewIDs removes the "validation_reviews" edge to ValidationReview entities by IDs.
func (_u *TaskUpdate) RemoveValidationReviewIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveValidationReviewIDs(ids...)
	return _u
}

// RemoveValidationReviews removes "validation_reviews" edges to ValidationReview entities.
func (_u *TaskUpdate) RemoveValidationReviews(v ...*ValidationReview) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationReviewIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := task.ValidateAgentType(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Task.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.workflow"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(task.FieldPhaseID, field.TypeString, value)
	}
	if _u.mutation.PhaseIDCleared() {
		_spec.ClearField(task.FieldPhaseID, field.TypeString)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(task.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(task.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByAgentID(); ok {
		_spec.SetField(task.FieldCreatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentIDCleared() {
		_spec.ClearField(task.FieldCreatedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(task.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoneDefinition(); ok {
		_spec.SetField(task.FieldDoneDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DescriptionEmbedding(); ok {
		_spec.SetField(task.FieldDescriptionEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDescriptionEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDescriptionEmbedding, value)
		})
	}
	if _u.mutation.DescriptionEmbeddingCleared() {
		_spec.ClearField(task.FieldDescriptionEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletionNotes(); ok {
		_spec.SetField(task.FieldCompletionNotes, field.TypeString, value)
	}
	if _u.mutation.CompletionNotesCleared() {
		_spec.ClearField(task.FieldCompletionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DuplicateOfTaskID(); ok {
		_spec.SetField(task.FieldDuplicateOfTaskID, field.TypeString, value)
	}
	if _u.mutation.DuplicateOfTaskIDCleared() {
		_spec.ClearField(task.FieldDuplicateOfTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(task.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(task.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SimilarityScoreCleared() {
		_spec.ClearField(task.FieldSimilarityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(task.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(task.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QueuePosition(); ok {
		_spec.SetField(task.FieldQueuePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueuePosition(); ok {
		_spec.AddField(task.FieldQueuePosition, field.TypeInt, value)
	}
	if _u.mutation.QueuePositionCleared() {
		_spec.ClearField(task.FieldQueuePosition, field.TypeInt)
	}
	if value, ok := _u.mutation.PriorityBoosted(); ok {
		_spec.SetField(task.FieldPriorityBoosted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationEnabled(); ok {
		_spec.SetField(task.FieldValidationEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationIteration(); ok {
		_spec.SetField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidationIteration(); ok {
		_spec.AddField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastValidationFeedback(); ok {
		_spec.SetField(task.FieldLastValidationFeedback, field.TypeString, value)
	}
	if _u.mutation.LastValidationFeedbackCleared() {
		_spec.ClearField(task.FieldLastValidationFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewDone(); ok {
		_spec.SetField(task.FieldReviewDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationReviewsIDs(); len(nodes) > 0 && !_u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetPhaseID sets the "phase_id" field.
func (_u *TaskUpdateOne) SetPhaseID(v string) *TaskUpdateOne {
	_u.mutation.SetPhaseID(v)
	return _u
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePhaseID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPhaseID(*v)
	}
	return _u
}

// ClearPhaseID clears the value of the "phase_id" field.
func (_u *TaskUpdateOne) ClearPhaseID() *TaskUpdateOne {
	_u.mutation.ClearPhaseID()
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *TaskUpdateOne) SetTicketID(v string) *TaskUpdateOne {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTicketID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *TaskUpdateOne) ClearTicketID() *TaskUpdateOne {
	_u.mutation.ClearTicketID()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_u *TaskUpdateOne) SetCreatedByAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetCreatedByAgentID(v)
	return _u
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatedByAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatedByAgentID(*v)
	}
	return _u
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (_u *TaskUpdateOne) ClearCreatedByAgentID() *TaskUpdateOne {
	_u.mutation.ClearCreatedByAgentID()
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *TaskUpdateOne) SetAgentType(v task.AgentType) *TaskUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentType(v *task.AgentType) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDoneDefinition sets the "done_definition" field.
func (_u *TaskUpdateOne) SetDoneDefinition(v string) *TaskUpdateOne {
	_u.mutation.SetDoneDefinition(v)
	return _u
}

// SetNillableDoneDefinition sets the "done_definition" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDoneDefinition(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDoneDefinition(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetDescriptionEmbedding sets the "description_embedding" field.
func (_u *TaskUpdateOne) SetDescriptionEmbedding(v []float32) *TaskUpdateOne {
	_u.mutation.SetDescriptionEmbedding(v)
	return _u
}

// AppendDescriptionEmbedding appends value to the "description_embedding" field.
func (_u *TaskUpdateOne) AppendDescriptionEmbedding(v []float32) *TaskUpdateOne {
	_u.mutation.AppendDescriptionEmbedding(v)
	return _u
}

// ClearDescriptionEmbedding clears the value of the "description_embedding" field.
func (_u *TaskUpdateOne) ClearDescriptionEmbedding() *TaskUpdateOne {
	_u.mutation.ClearDescriptionEmbedding()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdateOne) SetFailureReason(v string) *TaskUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailureReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdateOne) ClearFailureReason() *TaskUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCompletionNotes sets the "completion_notes" field.
func (_u *TaskUpdateOne) SetCompletionNotes(v string) *TaskUpdateOne {
	_u.mutation.SetCompletionNotes(v)
	return _u
}

// SetNillableCompletionNotes sets the "completion_notes" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletionNotes(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletionNotes(*v)
	}
	return _u
}

// ClearCompletionNotes clears the value of the "completion_notes" field.
func (_u *TaskUpdateOne) ClearCompletionNotes() *TaskUpdateOne {
	_u.mutation.ClearCompletionNotes()
	return _u
}

// SetDuplicateOfTaskID sets the "duplicate_of_task_id" field.
func (_u *TaskUpdateOne) SetDuplicateOfTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetDuplicateOfTaskID(v)
	return _u
}

// SetNillableDuplicateOfTaskID sets the "duplicate_of_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDuplicateOfTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDuplicateOfTaskID(*v)
	}
	return _u
}

// ClearDuplicateOfTaskID clears the value of the "duplicate_of_task_id" field.
func (_u *TaskUpdateOne) ClearDuplicateOfTaskID() *TaskUpdateOne {
	_u.mutation.ClearDuplicateOfTaskID()
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *TaskUpdateOne) SetSimilarityScore(v float64) *TaskUpdateOne {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSimilarityScore(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *TaskUpdateOne) AddSimilarityScore(v float64) *TaskUpdateOne {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// ClearSimilarityScore clears the value of the "similarity_score" field.
func (_u *TaskUpdateOne) ClearSimilarityScore() *TaskUpdateOne {
	_u.mutation.ClearSimilarityScore()
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *TaskUpdateOne) SetQueuedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableQueuedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *TaskUpdateOne) ClearQueuedAt() *TaskUpdateOne {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetQueuePosition sets the "queue_position" field.
func (_u *TaskUpdateOne) SetQueuePosition(v int) *TaskUpdateOne {
	_u.mutation.ResetQueuePosition()
	_u.mutation.SetQueuePosition(v)
	return _u
}

// SetNillableQueuePosition sets the "queue_position" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableQueuePosition(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetQueuePosition(*v)
	}
	return _u
}

// AddQueuePosition adds value to the "queue_position" field.
func (_u *TaskUpdateOne) AddQueuePosition(v int) *TaskUpdateOne {
	_u.mutation.AddQueuePosition(v)
	return _u
}

// ClearQueuePosition clears the value of the "queue_position" field.
func (_u *TaskUpdateOne) ClearQueuePosition() *TaskUpdateOne {
	_u.mutation.ClearQueuePosition()
	return _u
}

// SetPriorityBoosted sets the "priority_boosted" field.
func (_u *TaskUpdateOne) SetPriorityBoosted(v bool) *TaskUpdateOne {
	_u.mutation.SetPriorityBoosted(v)
	return _u
}

// SetNillablePriorityBoosted sets the "priority_boosted" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriorityBoosted(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetPriorityBoosted(*v)
	}
	return _u
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_u *TaskUpdateOne) SetValidationEnabled(v bool) *TaskUpdateOne {
	_u.mutation.SetValidationEnabled(v)
	return _u
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableValidationEnabled(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetValidationEnabled(*v)
	}
	return _u
}

// SetValidationIteration sets the "validation_iteration" field.
func (_u *TaskUpdateOne) SetValidationIteration(v int) *TaskUpdateOne {
	_u.mutation.ResetValidationIteration()
	_u.mutation.SetValidationIteration(v)
	return _u
}

// SetNillableValidationIteration sets the "validation_iteration" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableValidationIteration(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetValidationIteration(*v)
	}
	return _u
}

// AddValidationIteration adds value to the "validation_iteration" field.
func (_u *TaskUpdateOne) AddValidationIteration(v int) *TaskUpdateOne {
	_u.mutation.AddValidationIteration(v)
	return _u
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (_u *TaskUpdateOne) SetLastValidationFeedback(v string) *TaskUpdateOne {
	_u.mutation.SetLastValidationFeedback(v)
	return _u
}

// SetNillableLastValidationFeedback sets the "last_validation_feedback" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastValidationFeedback(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLastValidationFeedback(*v)
	}
	return _u
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (_u *TaskUpdateOne) ClearLastValidationFeedback() *TaskUpdateOne {
	_u.mutation.ClearLastValidationFeedback()
	return _u
}

// SetReviewDone sets the "review_done" field.
func (_u *TaskUpdateOne) SetReviewDone(v bool) *TaskUpdateOne {
	_u.mutation.SetReviewDone(v)
	return _u
}

// SetNillableReviewDone sets the "review_done" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableReviewDone(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetReviewDone(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdateOne) SetAssignedAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdateOne) ClearAssignedAgentID() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddResultIDs adds the "results" edge to the TaskResult entity by IDs.
func (_u *TaskUpdateOne) AddResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the TaskResult entity.
func (_u *TaskUpdateOne) AddResults(v ...*TaskResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by IDs.
func (_u *TaskUpdateOne) AddValidationReviewIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddValidationReviewIDs(ids...)
	return _u
}

// AddValidationReviews adds the "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdateOne) AddValidationReviews(v ...*ValidationReview) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationReviewIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the TaskResult entity.
func (_u *TaskUpdateOne) ClearResults() *TaskUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to TaskResult entities by IDs.
func (_u *TaskUpdateOne) RemoveResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to TaskResult entities.
func (_u *TaskUpdateOne) RemoveResults(v ...*TaskResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearValidationReviews clears all "validation_reviews" edges to the ValidationReview entity.
func (_u *TaskUpdateOne) ClearValidationReviews() *TaskUpdateOne {
	_u.mutation.ClearValidationReviews()
	return _u
}

// RemoveValidationReviewIDs removes the "validation_reviews" edge to ValidationReview entities by IDs.
func (_u *TaskUpdateOne) RemoveValidationReviewIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveValidationReviewIDs(ids...)
	return _u
}

// RemoveValidationReviews removes "validation_reviews" edges to ValidationReview entities.
func (_u *TaskUpdateOne) RemoveValidationReviews(v ...*ValidationReview) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationReviewIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := task.ValidateAgentType(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Task.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.workflow"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PhaseID(); ok {
		_spec.SetField(task.FieldPhaseID, field.TypeString, value)
	}
	if _u.mutation.PhaseIDCleared() {
		_spec.ClearField(task.FieldPhaseID, field.TypeString)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(task.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(task.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByAgentID(); ok {
		_spec.SetField(task.FieldCreatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentIDCleared() {
		_spec.ClearField(task.FieldCreatedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(task.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoneDefinition(); ok {
		_spec.SetField(task.FieldDoneDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DescriptionEmbedding(); ok {
		_spec.SetField(task.FieldDescriptionEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDescriptionEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDescriptionEmbedding, value)
		})
	}
	if _u.mutation.DescriptionEmbeddingCleared() {
		_spec.ClearField(task.FieldDescriptionEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletionNotes(); ok {
		_spec.SetField(task.FieldCompletionNotes, field.TypeString, value)
	}
	if _u.mutation.CompletionNotesCleared() {
		_spec.ClearField(task.FieldCompletionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DuplicateOfTaskID(); ok {
		_spec.SetField(task.FieldDuplicateOfTaskID, field.TypeString, value)
	}
	if _u.mutation.DuplicateOfTaskIDCleared() {
		_spec.ClearField(task.FieldDuplicateOfTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(task.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(task.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if _u.mutation.SimilarityScoreCleared() {
		_spec.ClearField(task.FieldSimilarityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(task.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(task.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.QueuePosition(); ok {
		_spec.SetField(task.FieldQueuePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueuePosition(); ok {
		_spec.AddField(task.FieldQueuePosition, field.TypeInt, value)
	}
	if _u.mutation.QueuePositionCleared() {
		_spec.ClearField(task.FieldQueuePosition, field.TypeInt)
	}
	if value, ok := _u.mutation.PriorityBoosted(); ok {
		_spec.SetField(task.FieldPriorityBoosted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationEnabled(); ok {
		_spec.SetField(task.FieldValidationEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationIteration(); ok {
		_spec.SetField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidationIteration(); ok {
		_spec.AddField(task.FieldValidationIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastValidationFeedback(); ok {
		_spec.SetField(task.FieldLastValidationFeedback, field.TypeString, value)
	}
	if _u.mutation.LastValidationFeedbackCleared() {
		_spec.ClearField(task.FieldLastValidationFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewDone(); ok {
		_spec.SetField(task.FieldReviewDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationReviewsIDs(); len(nodes) > 0 && !_u.mutation.ValidationReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *TaskCreate) SetWorkflowID(v string) *TaskCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *TaskCreate) SetPhaseID(v string) *TaskCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePhaseID(v *string) *TaskCreate {
	if v != nil {
		_c.SetPhaseID(*v)
	}
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *TaskCreate) SetTicketID(v string) *TaskCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTicketID(v *string) *TaskCreate {
	if v != nil {
		_c.SetTicketID(*v)
	}
	return _c
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *TaskCreate) SetParentTaskID(v string) *TaskCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentTaskID(v *string) *TaskCreate {
	if v != nil {
		_c.SetParentTaskID(*v)
	}
	return _c
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_c *TaskCreate) SetCreatedByAgentID(v string) *TaskCreate {
	_c.mutation.SetCreatedByAgentID(v)
	return _c
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedByAgentID(v *string) *TaskCreate {
	if v != nil {
		_c.SetCreatedByAgentID(*v)
	}
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *TaskCreate) SetAgentType(v task.AgentType) *TaskCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAgentType(v *task.AgentType) *TaskCreate {
	if v != nil {
		_c.SetAgentType(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetDoneDefinition sets the "done_definition" field.
func (_c *TaskCreate) SetDoneDefinition(v string) *TaskCreate {
	_c.mutation.SetDoneDefinition(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v task.Priority) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *task.Priority) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDescriptionEmbedding sets the "description_embedding" field.
func (_c *TaskCreate) SetDescriptionEmbedding(v []float32) *TaskCreate {
	_c.mutation.SetDescriptionEmbedding(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *TaskCreate) SetFailureReason(v string) *TaskCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFailureReason(v *string) *TaskCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCompletionNotes sets the "completion_notes" field.
func (_c *TaskCreate) SetCompletionNotes(v string) *TaskCreate {
	_c.mutation.SetCompletionNotes(v)
	return _c
}

// SetNillableCompletionNotes sets the "completion_notes" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletionNotes(v *string) *TaskCreate {
	if v != nil {
		_c.SetCompletionNotes(*v)
	}
	return _c
}

// SetDuplicateOfTaskID sets the "duplicate_of_task_id" field.
func (_c *TaskCreate) SetDuplicateOfTaskID(v string) *TaskCreate {
	_c.mutation.SetDuplicateOfTaskID(v)
	return _c
}

// SetNillableDuplicateOfTaskID sets the "duplicate_of_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDuplicateOfTaskID(v *string) *TaskCreate {
	if v != nil {
		_c.SetDuplicateOfTaskID(*v)
	}
	return _c
}

// SetSimilarityScore sets the "similarity_score" field.
func (_c *TaskCreate) SetSimilarityScore(v float64) *TaskCreate {
	_c.mutation.SetSimilarityScore(v)
	return _c
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSimilarityScore(v *float64) *TaskCreate {
	if v != nil {
		_c.SetSimilarityScore(*v)
	}
	return _c
}

// SetQueuedAt sets the "queued_at" field.
func (_c *TaskCreate) SetQueuedAt(v time.Time) *TaskCreate {
	_c.mutation.SetQueuedAt(v)
	return _c
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableQueuedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetQueuedAt(*v)
	}
	return _c
}

// SetQueuePosition sets the "queue_position" field.
func (_c *TaskCreate) SetQueuePosition(v int) *TaskCreate {
	_c.mutation.SetQueuePosition(v)
	return _c
}

// SetNillableQueuePosition sets the "queue_position" field if the given value is not nil.
func (_c *TaskCreate) SetNillableQueuePosition(v *int) *TaskCreate {
	if v != nil {
		_c.SetQueuePosition(*v)
	}
	return _c
}

// SetPriorityBoosted sets the "priority_boosted" field.
func (_c *TaskCreate) SetPriorityBoosted(v bool) *TaskCreate {
	_c.mutation.SetPriorityBoosted(v)
	return _c
}

// SetNillablePriorityBoosted sets the "priority_boosted" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriorityBoosted(v *bool) *TaskCreate {
	if v != nil {
		_c.SetPriorityBoosted(*v)
	}
	return _c
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_c *TaskCreate) SetValidationEnabled(v bool) *TaskCreate {
	_c.mutation.SetValidationEnabled(v)
	return _c
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_c *TaskCreate) SetNillableValidationEnabled(v *bool) *TaskCreate {
	if v != nil {
		_c.SetValidationEnabled(*v)
	}
	return _c
}

// SetValidationIteration sets the "validation_iteration" field.
func (_c *TaskCreate) SetValidationIteration(v int) *TaskCreate {
	_c.mutation.SetValidationIteration(v)
	return _c
}

// SetNillableValidationIteration sets the "validation_iteration" field if the given value is not nil.
func (_c *TaskCreate) SetNillableValidationIteration(v *int) *TaskCreate {
	if v != nil {
		_c.SetValidationIteration(*v)
	}
	return _c
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (_c *TaskCreate) SetLastValidationFeedback(v string) *TaskCreate {
	_c.mutation.SetLastValidationFeedback(v)
	return _c
}

// SetNillableLastValidationFeedback sets the "last_validation_feedback" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastValidationFeedback(v *string) *TaskCreate {
	if v != nil {
		_c.SetLastValidationFeedback(*v)
	}
	return _c
}

// SetReviewDone sets the "review_done" field.
func (_c *TaskCreate) SetReviewDone(v bool) *TaskCreate {
	_c.mutation.SetReviewDone(v)
	return _c
}

// SetNillableReviewDone sets the "review_done" field if the given value is not nil.
func (_c *TaskCreate) SetNillableReviewDone(v *bool) *TaskCreate {
	if v != nil {
		_c.SetReviewDone(*v)
	}
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *TaskCreate) SetAssignedAgentID(v string) *TaskCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedAgentID(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *TaskCreate) SetWorkflow(v *Workflow) *TaskCreate {
	return _c.SetWorkflowID(v.ID)
}

// AddResultIDs adds the "results" edge to the TaskResult entity by IDs.
func (_c *TaskCreate) AddResultIDs(ids ...string) *TaskCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the TaskResult entity.
func (_c *TaskCreate) AddResults(v ...*TaskResult) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by IDs.
func (_c *TaskCreate) AddValidationReviewIDs(ids ...string) *TaskCreate {
	_c.mutation.AddValidationReviewIDs(ids...)
	return _c
}

// AddValidationReviews adds the "validation_reviews" edges to the ValidationReview entity.
func (_c *TaskCreate) AddValidationReviews(v ...*ValidationReview) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValidationReviewIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.AgentType(); !ok {
		v := task.DefaultAgentType
		_c.mutation.SetAgentType(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PriorityBoosted(); !ok {
		v := task.DefaultPriorityBoosted
		_c.mutation.SetPriorityBoosted(v)
	}
	if _, ok := _c.mutation.ValidationEnabled(); !ok {
		v := task.DefaultValidationEnabled
		_c.mutation.SetValidationEnabled(v)
	}
	if _, ok := _c.mutation.ValidationIteration(); !ok {
		v := task.DefaultValidationIteration
		_c.mutation.SetValidationIteration(v)
	}
	if _, ok := _c.mutation.ReviewDone(); !ok {
		v := task.DefaultReviewDone
		_c.mutation.SetReviewDone(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "Task.workflow_id"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "Task.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := task.ValidateAgentType(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Task.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if _, ok := _c.mutation.DoneDefinition(); !ok {
		return &ValidationError{Name: "done_definition", err: errors.New(`ent: missing required field "Task.done_definition"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityBoosted(); !ok {
		return &ValidationError{Name: "priority_boosted", err: errors.New(`ent: missing required field "Task.priority_boosted"`)}
	}
	if _, ok := _c.mutation.ValidationEnabled(); !ok {
		return &ValidationError{Name: "validation_enabled", err: errors.New(`ent: missing required field "Task.validation_enabled"`)}
	}
	if _, ok := _c.mutation.ValidationIteration(); !ok {
		return &ValidationError{Name: "validation_iteration", err: errors.New(`ent: missing required field "Task.validation_iteration"`)}
	}
	if _, ok := _c.mutation.ReviewDone(); !ok {
		return &ValidationError{Name: "review_done", err: errors.New(`ent: missing required field "Task.review_done"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "Task.workflow"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(task.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = &value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(task.FieldTicketID, field.TypeString, value)
		_node.TicketID = &value
	}
	if value, ok := _c.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
		_node.ParentTaskID = &value
	}
	if value, ok := _c.mutation.CreatedByAgentID(); ok {
		_spec.SetField(task.FieldCreatedByAgentID, field.TypeString, value)
		_node.CreatedByAgentID = &value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(task.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DoneDefinition(); ok {
		_spec.SetField(task.FieldDoneDefinition, field.TypeString, value)
		_node.DoneDefinition = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.DescriptionEmbedding(); ok {
		_spec.SetField(task.FieldDescriptionEmbedding, field.TypeJSON, value)
		_node.DescriptionEmbedding = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.CompletionNotes(); ok {
		_spec.SetField(task.FieldCompletionNotes, field.TypeString, value)
		_node.CompletionNotes = &value
	}
	if value, ok := _c.mutation.DuplicateOfTaskID(); ok {
		_spec.SetField(task.FieldDuplicateOfTaskID, field.TypeString, value)
		_node.DuplicateOfTaskID = &value
	}
	if value, ok := _c.mutation.SimilarityScore(); ok {
		_spec.SetField(task.FieldSimilarityScore, field.TypeFloat64, value)
		_node.SimilarityScore = &value
	}
	if value, ok := _c.mutation.QueuedAt(); ok {
		_spec.SetField(task.FieldQueuedAt, field.TypeTime, value)
		_node.QueuedAt = &value
	}
	if value, ok := _c.mutation.QueuePosition(); ok {
		_spec.SetField(task.FieldQueuePosition, field.TypeInt, value)
		_node.QueuePosition = &value
	}
	if value, ok := _c.mutation.PriorityBoosted(); ok {
		_spec.SetField(task.FieldPriorityBoosted, field.TypeBool, value)
		_node.PriorityBoosted = value
	}
	if value, ok := _c.mutation.ValidationEnabled(); ok {
		_spec.SetField(task.FieldValidationEnabled, field.TypeBool, value)
		_node.ValidationEnabled = value
	}
	if value, ok := _c.mutation.ValidationIteration(); ok {
		_spec.SetField(task.FieldValidationIteration, field.TypeInt, value)
		_node.ValidationIteration = value
	}
	if value, ok := _c.mutation.LastValidationFeedback(); ok {
		_spec.SetField(task.FieldLastValidationFeedback, field.TypeString, value)
		_node.LastValidationFeedback = &value
	}
	if value, ok := _c.mutation.ReviewDone(); ok {
		_spec.SetField(task.FieldReviewDone, field.TypeBool, value)
		_node.ReviewDone = value
	}
	if value, ok := _c.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
		_node.AssignedAgentID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.WorkflowTable,
			Columns: []string{task.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValidationReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

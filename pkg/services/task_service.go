package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/predicate"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// allowedTransitions is the task state machine edge set. Any transition not
// listed here is rejected with ErrInvalidState.
var allowedTransitions = map[task.Status][]task.Status{
	task.StatusPending:              {task.StatusAssigned, task.StatusQueued, task.StatusDuplicated},
	task.StatusQueued:               {task.StatusAssigned, task.StatusFailed},
	task.StatusAssigned:             {task.StatusInProgress, task.StatusFailed},
	task.StatusInProgress:           {task.StatusUnderReview, task.StatusDone, task.StatusFailed},
	task.StatusUnderReview:          {task.StatusValidationInProgress, task.StatusFailed},
	task.StatusValidationInProgress: {task.StatusDone, task.StatusNeedsWork, task.StatusFailed},
	task.StatusNeedsWork:            {task.StatusInProgress, task.StatusFailed},
	task.StatusDone:                 {task.StatusPending},
	task.StatusFailed:               {task.StatusPending},
}

// CanTransition reports whether from -> to is a legal task transition.
func CanTransition(from, to task.Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// priorityRank orders task priorities for queue dequeue. Higher is sooner.
func priorityRank(p task.Priority) int {
	switch p {
	case task.PriorityHigh:
		return 2
	case task.PriorityMed:
		return 1
	default:
		return 0
	}
}

// TaskService manages task rows and the task state machine.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateRow persists a new task in pending. Queue placement and dedup
// marking are the queue engine's responsibility.
func (s *TaskService) CreateRow(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.WorkflowID == "" {
		return nil, NewValidationError("workflow_id", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if req.DoneDefinition == "" {
		return nil, NewValidationError("done_definition", "required")
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(req.WorkflowID).
		SetDescription(req.Description).
		SetDoneDefinition(req.DoneDefinition).
		SetStatus(task.StatusPending).
		SetCreatedAt(time.Now())

	if req.PhaseID != "" {
		builder.SetPhaseID(req.PhaseID)
	}
	if req.TicketID != "" {
		builder.SetTicketID(req.TicketID)
	}
	if req.ParentTaskID != "" {
		builder.SetParentTaskID(req.ParentTaskID)
	}
	if req.CreatedByAgentID != "" {
		builder.SetCreatedByAgentID(req.CreatedByAgentID)
	}
	if req.AgentType != "" {
		builder.SetAgentType(task.AgentType(req.AgentType))
	}
	if req.Priority != "" {
		builder.SetPriority(task.Priority(req.Priority))
	}

	t, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns tasks matching the filters with a total count.
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()
	if filters.WorkflowID != "" {
		query = query.Where(task.WorkflowID(filters.WorkflowID))
	}
	if filters.PhaseID != "" {
		query = query.Where(task.PhaseID(filters.PhaseID))
	}
	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.AgentType != "" {
		query = query.Where(task.AgentTypeEQ(task.AgentType(filters.AgentType)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	tasks, err := query.
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// Transition moves a task along an allowed state-machine edge without agent
// authorization. Used by the engine itself (queue dispatch, reaping,
// validation verdicts).
func (s *TaskService) Transition(ctx context.Context, taskID string, to task.Status) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, t, to, "", "")
}

// UpdateStatusAuthorized applies an agent-requested transition after
// verifying the agent owns the task.
func (s *TaskService) UpdateStatusAuthorized(ctx context.Context, taskID, agentID string, to task.Status, failureReason, completionNotes string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.AssignedAgentID == nil || *t.AssignedAgentID != agentID {
		return nil, fmt.Errorf("%w: task %s is not assigned to agent %s", ErrNotAuthorized, taskID, agentID)
	}
	return s.transition(ctx, t, to, failureReason, completionNotes)
}

func (s *TaskService) transition(ctx context.Context, t *ent.Task, to task.Status, failureReason, completionNotes string) (*ent.Task, error) {
	if !CanTransition(t.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidState, t.Status, to)
	}

	update := t.Update().SetStatus(to)
	switch to {
	case task.StatusInProgress:
		if t.StartedAt == nil {
			update.SetStartedAt(time.Now())
		}
	case task.StatusDone:
		update.SetCompletedAt(time.Now())
		if completionNotes != "" {
			update.SetCompletionNotes(completionNotes)
		}
	case task.StatusFailed:
		update.SetCompletedAt(time.Now())
		update.ClearQueuedAt().ClearQueuePosition()
		if failureReason != "" {
			update.SetFailureReason(failureReason)
		}
	case task.StatusPending:
		// Restart: wipe the prior run's outcome.
		update.ClearFailureReason().
			ClearCompletionNotes().
			ClearCompletedAt().
			ClearStartedAt().
			ClearAssignedAgentID().
			SetValidationIteration(0).
			SetReviewDone(false).
			ClearLastValidationFeedback()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return updated, nil
}

// SetValidationEnabled flags the task for the validation pipeline. Set at
// creation from the phase's validation config.
func (s *TaskService) SetValidationEnabled(ctx context.Context, taskID string, enabled bool) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetValidationEnabled(enabled).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set validation flag: %w", err)
	}
	return nil
}

// SetReviewDone marks the task as having passed validation so a later done
// request completes it directly.
func (s *TaskService) SetReviewDone(ctx context.Context, taskID string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetReviewDone(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set review done: %w", err)
	}
	return nil
}

// RecordValidationFailure stores the validator's feedback and advances the
// iteration counter.
func (s *TaskService) RecordValidationFailure(ctx context.Context, taskID, feedback string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	updated, err := t.Update().
		SetLastValidationFeedback(feedback).
		SetValidationIteration(t.ValidationIteration + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record validation failure: %w", err)
	}
	return updated, nil
}

// Fail moves a task to failed with a reason. Used for queue cancellation
// and agent-death reaping.
func (s *TaskService) Fail(ctx context.Context, taskID, reason string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, t, task.StatusFailed, reason, "")
}

// SetPriorityBoosted flags a task as operator-boosted. Boosted tasks sort
// ahead of everything else in the queue.
func (s *TaskService) SetPriorityBoosted(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.UpdateOneID(taskID).
		SetPriorityBoosted(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to boost task priority: %w", err)
	}
	return t, nil
}

// MarkDuplicate persists the task as a duplicate of an existing one. No
// agent is ever spawned for a duplicated task.
func (s *TaskService) MarkDuplicate(ctx context.Context, taskID, duplicateOfID string, similarity float64) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(t.Status, task.StatusDuplicated) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidState, t.Status, task.StatusDuplicated)
	}
	updated, err := t.Update().
		SetStatus(task.StatusDuplicated).
		SetDuplicateOfTaskID(duplicateOfID).
		SetSimilarityScore(similarity).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark duplicate: %w", err)
	}
	return updated, nil
}

// SetEmbedding stores the task description embedding used for dedup.
func (s *TaskService) SetEmbedding(ctx context.Context, taskID string, embedding []float32) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetDescriptionEmbedding(embedding).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set embedding: %w", err)
	}
	return nil
}

// SetDescription replaces the task description (post-enrichment).
func (s *TaskService) SetDescription(ctx context.Context, taskID, description string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetDescription(description).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set description: %w", err)
	}
	return nil
}

// Enqueue marks a task queued with a timestamp. Position assignment is done
// by RecomputeQueuePositions under the workflow lock.
func (s *TaskService) Enqueue(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(t.Status, task.StatusQueued) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidState, t.Status, task.StatusQueued)
	}
	updated, err := t.Update().
		SetStatus(task.StatusQueued).
		SetQueuedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}
	return updated, nil
}

// Assign moves a task to assigned, clears its queue fields and records the
// owning agent.
func (s *TaskService) Assign(ctx context.Context, taskID, agentID string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(t.Status, task.StatusAssigned) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidState, t.Status, task.StatusAssigned)
	}
	updated, err := t.Update().
		SetStatus(task.StatusAssigned).
		SetAssignedAgentID(agentID).
		ClearQueuedAt().
		ClearQueuePosition().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}
	return updated, nil
}

// QueuedTasks returns a workflow's queued tasks in dequeue order:
// priority_boosted desc, priority desc, queued_at asc.
func (s *TaskService) QueuedTasks(ctx context.Context, workflowID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.WorkflowID(workflowID), task.StatusEQ(task.StatusQueued)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued tasks: %w", err)
	}
	SortQueued(tasks)
	return tasks, nil
}

// SortQueued orders tasks in place by the dequeue order.
func SortQueued(tasks []*ent.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.PriorityBoosted != b.PriorityBoosted {
			return a.PriorityBoosted
		}
		if ra, rb := priorityRank(a.Priority), priorityRank(b.Priority); ra != rb {
			return ra > rb
		}
		at, bt := time.Time{}, time.Time{}
		if a.QueuedAt != nil {
			at = *a.QueuedAt
		}
		if b.QueuedAt != nil {
			bt = *b.QueuedAt
		}
		return at.Before(bt)
	})
}

// RecomputeQueuePositions rewrites queue_position densely as 1..N over the
// workflow's queued tasks in dequeue order. Caller holds the workflow lock.
func (s *TaskService) RecomputeQueuePositions(ctx context.Context, workflowID string) ([]*ent.Task, error) {
	queued, err := s.QueuedTasks(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Two passes: clear first so the partial unique index never sees a
	// transient collision while positions shift.
	for _, t := range queued {
		if err := tx.Task.UpdateOneID(t.ID).ClearQueuePosition().Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear queue position: %w", err)
		}
	}
	for i, t := range queued {
		pos := i + 1
		if err := tx.Task.UpdateOneID(t.ID).SetQueuePosition(pos).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to set queue position: %w", err)
		}
		t.QueuePosition = &pos
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit queue positions: %w", err)
	}
	return queued, nil
}

// OpenTasks returns tasks in any non-terminal status for a workflow. Used
// by the diagnostic trigger predicate.
func (s *TaskService) OpenTasks(ctx context.Context, workflowID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.WorkflowID(workflowID), task.StatusIn(
			task.StatusPending, task.StatusQueued, task.StatusAssigned,
			task.StatusInProgress, task.StatusUnderReview, task.StatusValidationInProgress)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tasks: %w", err)
	}
	return tasks, nil
}

// CreatedByAgent returns the tasks an agent created, oldest first. Used to
// close out diagnostic runs.
func (s *TaskService) CreatedByAgent(ctx context.Context, agentID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.CreatedByAgentID(agentID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by creator: %w", err)
	}
	return tasks, nil
}

// NearestInPhase scans tasks in the same workflow and phase and returns the
// one whose stored embedding is most cosine-similar to the query, with the
// similarity score. Duplicated tasks are excluded so chains always point at
// the original, and excludeTaskID keeps a task whose embedding is already
// stored from matching itself.
func (s *TaskService) NearestInPhase(ctx context.Context, workflowID, phaseID, excludeTaskID string, embedding []float32) (*ent.Task, float64, error) {
	preds := []predicate.Task{
		task.WorkflowID(workflowID),
		task.PhaseID(phaseID),
		task.StatusNEQ(task.StatusDuplicated),
	}
	if excludeTaskID != "" {
		preds = append(preds, task.IDNEQ(excludeTaskID))
	}
	candidates, err := s.client.Task.Query().
		Where(preds...).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query dedup candidates: %w", err)
	}

	var best *ent.Task
	bestScore := -1.0
	for _, c := range candidates {
		if len(c.DescriptionEmbedding) == 0 {
			continue
		}
		score := CosineSimilarity(embedding, c.DescriptionEmbedding)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if best == nil {
		return nil, 0, nil
	}
	return best, bestScore, nil
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 for mismatched or zero-length inputs.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// LatestActivity returns the newest created_at and completed_at across a
// workflow's tasks. Zero times mean no such task exists.
func (s *TaskService) LatestActivity(ctx context.Context, workflowID string) (lastCreated, lastCompleted time.Time, err error) {
	tasks, err := s.client.Task.Query().
		Where(task.WorkflowID(workflowID)).
		All(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	for _, t := range tasks {
		if t.CreatedAt.After(lastCreated) {
			lastCreated = t.CreatedAt
		}
		if t.CompletedAt != nil && t.CompletedAt.After(lastCompleted) {
			lastCompleted = *t.CompletedAt
		}
	}
	return lastCreated, lastCompleted, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to task.Status
		allowed  bool
	}{
		{task.StatusPending, task.StatusQueued, true},
		{task.StatusPending, task.StatusAssigned, true},
		{task.StatusPending, task.StatusDuplicated, true},
		{task.StatusQueued, task.StatusAssigned, true},
		{task.StatusAssigned, task.StatusInProgress, true},
		{task.StatusInProgress, task.StatusDone, true},
		{task.StatusInProgress, task.StatusUnderReview, true},
		{task.StatusUnderReview, task.StatusValidationInProgress, true},
		{task.StatusValidationInProgress, task.StatusNeedsWork, true},
		{task.StatusNeedsWork, task.StatusInProgress, true},
		{task.StatusDone, task.StatusPending, true},
		{task.StatusFailed, task.StatusPending, true},

		{task.StatusPending, task.StatusDone, false},
		{task.StatusQueued, task.StatusDone, false},
		{task.StatusQueued, task.StatusInProgress, false},
		{task.StatusDone, task.StatusInProgress, false},
		{task.StatusDuplicated, task.StatusPending, false},
		{task.StatusUnderReview, task.StatusDone, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestSortQueued(t *testing.T) {
	at := func(sec int) *time.Time {
		ts := time.Date(2026, 1, 1, 0, 0, sec, 0, time.UTC)
		return &ts
	}
	tasks := []*ent.Task{
		{ID: "low-late", Priority: task.PriorityLow, QueuedAt: at(3)},
		{ID: "high", Priority: task.PriorityHigh, QueuedAt: at(2)},
		{ID: "boosted-low", Priority: task.PriorityLow, PriorityBoosted: true, QueuedAt: at(4)},
		{ID: "med-early", Priority: task.PriorityMed, QueuedAt: at(1)},
		{ID: "med-late", Priority: task.PriorityMed, QueuedAt: at(5)},
	}

	SortQueued(tasks)

	got := make([]string, len(tasks))
	for i, tk := range tasks {
		got[i] = tk.ID
	}
	assert.Equal(t, []string{"boosted-low", "high", "med-early", "med-late", "low-late"}, got)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{2, 0}, []float32{5, 0}), 1e-9)
	assert.InDelta(t, 0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Degenerate inputs never divide by zero.
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func seedWorkflow(t *testing.T, client *ent.Client) *ent.Workflow {
	t.Helper()
	wf, err := client.Workflow.Create().
		SetID(uuid.New().String()).
		SetName("test workflow").
		SetGoalText("exercise the task state machine").
		Save(context.Background())
	require.NoError(t, err)
	return wf
}

func seedTask(t *testing.T, svc *TaskService, workflowID string, priority string) *ent.Task {
	t.Helper()
	tk, err := svc.CreateRow(context.Background(), models.CreateTaskRequest{
		WorkflowID:     workflowID,
		Description:    "do the thing",
		DoneDefinition: "the thing is done",
		Priority:       priority,
	})
	require.NoError(t, err)
	return tk
}

func TestTransitionEnforcesStateMachine(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)
	wf := seedWorkflow(t, client)
	tk := seedTask(t, svc, wf.ID, "")

	// pending cannot jump straight to done
	_, err := svc.Transition(ctx, tk.ID, task.StatusDone)
	assert.ErrorIs(t, err, ErrInvalidState)

	// pending -> assigned -> in_progress -> done
	_, err = svc.Assign(ctx, tk.ID, "agent-1")
	require.NoError(t, err)
	_, err = svc.Transition(ctx, tk.ID, task.StatusInProgress)
	require.NoError(t, err)
	done, err := svc.Transition(ctx, tk.ID, task.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, done.Status)
	assert.NotNil(t, done.CompletedAt)

	// done -> pending restart wipes the prior run
	restarted, err := svc.Transition(ctx, tk.ID, task.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, restarted.Status)
	assert.Nil(t, restarted.CompletedAt)
	assert.Nil(t, restarted.StartedAt)
	assert.Nil(t, restarted.AssignedAgentID)
}

func TestUpdateStatusAuthorizedChecksOwnership(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)
	wf := seedWorkflow(t, client)
	tk := seedTask(t, svc, wf.ID, "")

	_, err := svc.Assign(ctx, tk.ID, "agent-owner")
	require.NoError(t, err)

	_, err = svc.UpdateStatusAuthorized(ctx, tk.ID, "agent-impostor", task.StatusInProgress, "", "")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	updated, err := svc.UpdateStatusAuthorized(ctx, tk.ID, "agent-owner", task.StatusInProgress, "", "")
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, updated.Status)
	assert.NotNil(t, updated.StartedAt)
}

func TestRecomputeQueuePositions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)
	wf := seedWorkflow(t, client)

	lowEarly := seedTask(t, svc, wf.ID, "low")
	high := seedTask(t, svc, wf.ID, "high")
	boosted := seedTask(t, svc, wf.ID, "low")

	for _, tk := range []*ent.Task{lowEarly, high, boosted} {
		_, err := svc.Enqueue(ctx, tk.ID)
		require.NoError(t, err)
	}
	_, err := svc.SetPriorityBoosted(ctx, boosted.ID)
	require.NoError(t, err)

	queued, err := svc.RecomputeQueuePositions(ctx, wf.ID)
	require.NoError(t, err)
	require.Len(t, queued, 3)

	// Boosted first, then by priority, and positions dense from 1.
	assert.Equal(t, boosted.ID, queued[0].ID)
	assert.Equal(t, high.ID, queued[1].ID)
	assert.Equal(t, lowEarly.ID, queued[2].ID)
	for i, tk := range queued {
		require.NotNil(t, tk.QueuePosition)
		assert.Equal(t, i+1, *tk.QueuePosition)
	}

	// Assigning the head clears its queue fields; a recompute closes the gap.
	assigned, err := svc.Assign(ctx, boosted.ID, "agent-1")
	require.NoError(t, err)
	assert.Nil(t, assigned.QueuePosition)
	assert.Nil(t, assigned.QueuedAt)

	queued, err = svc.RecomputeQueuePositions(ctx, wf.ID)
	require.NoError(t, err)
	require.Len(t, queued, 2)
	assert.Equal(t, 1, *queued[0].QueuePosition)
	assert.Equal(t, 2, *queued[1].QueuePosition)
}

func TestNearestInPhase(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTaskService(client)
	wf := seedWorkflow(t, client)

	phaseA := uuid.New().String()
	phaseB := uuid.New().String()

	mk := func(phaseID string, embedding []float32) *ent.Task {
		tk, err := svc.CreateRow(ctx, models.CreateTaskRequest{
			WorkflowID:     wf.ID,
			PhaseID:        phaseID,
			Description:    "candidate",
			DoneDefinition: "done",
		})
		require.NoError(t, err)
		require.NoError(t, svc.SetEmbedding(ctx, tk.ID, embedding))
		return tk
	}

	near := mk(phaseA, []float32{0.99, 0.1})
	mk(phaseA, []float32{0, 1})
	otherPhase := mk(phaseB, []float32{1, 0})

	best, score, err := svc.NearestInPhase(ctx, wf.ID, phaseA, "", []float32{1, 0})
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, near.ID, best.ID)
	assert.NotEqual(t, otherPhase.ID, best.ID)
	assert.Greater(t, score, 0.9)

	// A task scanning with its own embedding already stored must not match
	// itself, only its neighbours.
	self := mk(phaseA, []float32{1, 0})
	best, score, err = svc.NearestInPhase(ctx, wf.ID, phaseA, self.ID, []float32{1, 0})
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, near.ID, best.ID)
	assert.Less(t, score, 1.0)
	_, err = svc.MarkDuplicate(ctx, self.ID, near.ID, score)
	require.NoError(t, err)

	// Duplicated tasks are excluded so chains resolve to the original.
	_, err = svc.MarkDuplicate(ctx, near.ID, otherPhase.ID, 0.97)
	require.NoError(t, err)
	best, _, err = svc.NearestInPhase(ctx, wf.ID, phaseA, "", []float32{1, 0})
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.NotEqual(t, near.ID, best.ID)

	// No candidates with embeddings means no match, not an error.
	best, score, err = svc.NearestInPhase(ctx, wf.ID, uuid.New().String(), "", []float32{1, 0})
	require.NoError(t, err)
	assert.Nil(t, best)
	assert.Zero(t, score)
}

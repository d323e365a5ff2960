package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

func workflowFileFixture() *config.WorkflowFileConfig {
	return &config.WorkflowFileConfig{
		Name:           "demo",
		Goal:           "ship the demo",
		ResultRequired: true,
		ResultCriteria: []string{"binary runs"},
		Board: config.BoardConfig{
			Columns:     []string{"backlog", "doing", "done"},
			TicketTypes: []string{"bug", "feature"},
		},
		Phases: []config.PhaseConfig{
			{Number: 1, Name: "implementation", Description: "build", DoneDefinitions: []string{"built"}},
			{
				Number: 2, Name: "verification", Description: "verify",
				DoneDefinitions: []string{"verified"},
				Validation: &config.PhaseValidationConfig{
					Enabled:  true,
					Criteria: []string{"tests pass"},
				},
			},
		},
	}
}

func TestEnsureWorkflow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewWorkflowService(client)

	wf, err := svc.EnsureWorkflow(ctx, workflowFileFixture())
	require.NoError(t, err)
	assert.Equal(t, "demo", wf.Name)
	assert.Equal(t, "ship the demo", wf.GoalText)
	assert.True(t, wf.ResultRequired)
	assert.Equal(t, workflow.OnResultFoundStopAll, wf.OnResultFound)
	assert.Equal(t, workflow.StatusActive, wf.Status)

	phases, err := svc.Phases(ctx, wf.ID)
	require.NoError(t, err)
	require.Len(t, phases, 2)
	assert.Equal(t, 1, phases[0].Number)
	assert.False(t, phases[0].ValidationEnabled)
	assert.True(t, phases[1].ValidationEnabled)
	assert.Equal(t, []string{"tests pass"}, phases[1].ValidationCriteria)

	// A second startup with the same config reuses the active workflow.
	again, err := svc.EnsureWorkflow(ctx, workflowFileFixture())
	require.NoError(t, err)
	assert.Equal(t, wf.ID, again.ID)

	all, err := svc.ActiveWorkflows(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEnsureWorkflowAfterCompletion(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewWorkflowService(client)

	wf, err := svc.EnsureWorkflow(ctx, workflowFileFixture())
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// Completing twice is a no-op.
	_, err = svc.Complete(ctx, wf.ID)
	require.NoError(t, err)

	// A completed workflow is not reused; a fresh run starts clean.
	fresh, err := svc.EnsureWorkflow(ctx, workflowFileFixture())
	require.NoError(t, err)
	assert.NotEqual(t, wf.ID, fresh.ID)
}

func TestGetPhaseChecksOwnership(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewWorkflowService(client)

	wf, err := svc.EnsureWorkflow(ctx, workflowFileFixture())
	require.NoError(t, err)
	phases, err := svc.Phases(ctx, wf.ID)
	require.NoError(t, err)

	p, err := svc.GetPhase(ctx, wf.ID, phases[0].ID)
	require.NoError(t, err)
	assert.Equal(t, phases[0].ID, p.ID)

	_, err = svc.GetPhase(ctx, "other-workflow", phases[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkflowStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewWorkflowService(client)
	tasks := NewTaskService(client)

	wf, err := svc.EnsureWorkflow(ctx, workflowFileFixture())
	require.NoError(t, err)
	phases, err := svc.Phases(ctx, wf.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := tasks.CreateRow(ctx, models.CreateTaskRequest{
			WorkflowID:     wf.ID,
			PhaseID:        phases[0].ID,
			Description:    "task",
			DoneDefinition: "done",
		})
		require.NoError(t, err)
	}

	status, err := svc.Status(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, status.TasksByStatus[string(task.StatusPending)])
	assert.Equal(t, 3, status.TasksByPhase[phases[0].ID])
	assert.Zero(t, status.ActiveAgents)
	assert.Zero(t, status.OpenTickets)
	assert.Zero(t, status.PendingResults)
}

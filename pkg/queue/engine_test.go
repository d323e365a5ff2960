package queue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/embedding"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

// fakeSpawner stands in for the agent manager: it records the agent row and
// assignment the real manager would create, without tmux or worktrees. With
// unwind set, a failing spawn also replays the manager's abort path, which
// fails the task, resets it and puts it back on the queue before returning.
type fakeSpawner struct {
	agents *services.AgentService
	tasks  *services.TaskService
	fail   bool
	unwind bool
	calls  int
}

func (f *fakeSpawner) SpawnForTask(ctx context.Context, t *ent.Task) (*ent.Agent, error) {
	f.calls++
	if f.fail {
		if f.unwind {
			if err := f.abort(ctx, t); err != nil {
				return nil, err
			}
		}
		return nil, errors.New("tmux unavailable")
	}
	a, err := f.agents.CreateAgent(ctx, t.WorkflowID, t.ID, agent.AgentType(t.AgentType), "hephaestus-"+uuid.New().String()[:8])
	if err != nil {
		return nil, err
	}
	if _, err := f.tasks.Assign(ctx, t.ID, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

func (f *fakeSpawner) abort(ctx context.Context, t *ent.Task) error {
	a, err := f.agents.CreateAgent(ctx, t.WorkflowID, t.ID, agent.AgentType(t.AgentType), "hephaestus-"+uuid.New().String()[:8])
	if err != nil {
		return err
	}
	if _, err := f.tasks.Assign(ctx, t.ID, a.ID); err != nil {
		return err
	}
	if _, err := f.agents.MarkTerminated(ctx, a.ID, "spawn failed", false); err != nil {
		return err
	}
	if _, err := f.tasks.Fail(ctx, t.ID, "spawn failed"); err != nil {
		return err
	}
	if _, err := f.tasks.Transition(ctx, t.ID, task.StatusPending); err != nil {
		return err
	}
	if _, err := f.tasks.Enqueue(ctx, t.ID); err != nil {
		return err
	}
	_, err = f.tasks.RecomputeQueuePositions(ctx, t.WorkflowID)
	return err
}

// fakeEmbedder maps each known description to its own vector so tests can
// place texts at controlled similarity to each other. Unknown texts share a
// fallback orthogonal to everything else.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 1}, nil
}

func (f fakeEmbedder) Dimension() int { return 3 }

type engineFixture struct {
	engine    *Engine
	tasks     *services.TaskService
	agents    *services.AgentService
	workflows *services.WorkflowService
	spawner   *fakeSpawner
	client    *ent.Client
	workflow  *ent.Workflow
	phase     *ent.Phase
}

func newEngineFixture(t *testing.T, cfg config.QueueConfig) *engineFixture {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	tasks := services.NewTaskService(client)
	agents := services.NewAgentService(client)
	workflows := services.NewWorkflowService(client)
	analyses := services.NewAnalysisService(client)
	spawner := &fakeSpawner{agents: agents, tasks: tasks}

	wf, err := client.Workflow.Create().
		SetID(uuid.New().String()).
		SetName("queue test").
		SetGoalText("exercise task placement").
		Save(ctx)
	require.NoError(t, err)

	ph, err := client.Phase.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetNumber(1).
		SetName("implementation").
		SetDescription("build it").
		SetDoneDefinitions([]string{"it works"}).
		Save(ctx)
	require.NoError(t, err)

	var embedder embedding.Embedder
	if cfg.DedupEnabled {
		// cos(retry logic, retry handling) = 0.96; the changelog text is
		// orthogonal to both.
		embedder = fakeEmbedder{vectors: map[string][]float32{
			"implement retry logic": {1, 0, 0},
			"add retry handling":    {0.96, 0.28, 0},
			"write the changelog":   {0, 1, 0},
		}}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewEngine(cfg, tasks, workflows, agents, analyses, embedder, nil,
		prompt.NewPromptBuilder(), spawner, events.NewPublisher(db), logger)

	return &engineFixture{
		engine:    e,
		tasks:     tasks,
		agents:    agents,
		workflows: workflows,
		spawner:   spawner,
		client:    client,
		workflow:  wf,
		phase:     ph,
	}
}

func (f *engineFixture) createReq(desc string) models.CreateTaskRequest {
	return models.CreateTaskRequest{
		WorkflowID:     f.workflow.ID,
		PhaseID:        f.phase.ID,
		Description:    desc,
		DoneDefinition: "done when tested",
	}
}

// occupySlot parks an active agent on the workflow without going through the
// dispatch path.
func (f *engineFixture) occupySlot(t *testing.T) *ent.Agent {
	t.Helper()
	a, err := f.agents.CreateAgent(context.Background(), f.workflow.ID, "",
		agent.AgentTypePhase, "hephaestus-"+uuid.New().String()[:8])
	require.NoError(t, err)
	return a
}

func TestCreateTaskSpawnsWithFreeCapacity(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})

	result, err := f.engine.CreateTask(context.Background(), f.createReq("build the parser"))
	require.NoError(t, err)
	assert.Equal(t, models.TaskCreated, result.Status)
	assert.Equal(t, 1, f.spawner.calls)
	assert.Equal(t, task.StatusAssigned, result.Task.Status)
}

func TestCreateTaskQueuesAtCapacity(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})
	f.occupySlot(t)

	result, err := f.engine.CreateTask(context.Background(), f.createReq("second task"))
	require.NoError(t, err)
	assert.Equal(t, models.TaskQueued, result.Status)
	assert.Equal(t, 1, result.QueuePosition)
	assert.Zero(t, f.spawner.calls)
}

func TestCreateTaskQueuesWhenSpawnFails(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})
	f.spawner.fail = true

	result, err := f.engine.CreateTask(context.Background(), f.createReq("spawn will fail"))
	require.NoError(t, err)
	assert.Equal(t, models.TaskQueued, result.Status)
	assert.Equal(t, 1, result.QueuePosition)
	assert.Equal(t, task.StatusQueued, result.Task.Status)
}

func TestCreateTaskSpawnFailureAfterManagerRequeue(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})
	// The real manager requeues the task itself while aborting a failed
	// spawn; the engine must not enqueue it a second time.
	f.spawner.fail = true
	f.spawner.unwind = true

	result, err := f.engine.CreateTask(context.Background(), f.createReq("unwound spawn"))
	require.NoError(t, err)
	assert.Equal(t, models.TaskQueued, result.Status)
	assert.Equal(t, 1, result.QueuePosition)
	assert.Equal(t, task.StatusQueued, result.Task.Status)
}

func TestCreateTaskRequiresPhaseForNonDiagnostic(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})

	req := f.createReq("no phase")
	req.PhaseID = ""
	_, err := f.engine.CreateTask(context.Background(), req)
	assert.True(t, services.IsValidationError(err))

	// A phase from another workflow is rejected the same way.
	req = f.createReq("foreign phase")
	req.PhaseID = uuid.New().String()
	_, err = f.engine.CreateTask(context.Background(), req)
	assert.True(t, services.IsValidationError(err))
}

func TestCreateTaskMarksDuplicates(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{
		MaxConcurrentAgents: 2,
		BumpCeilingFactor:   2,
		DedupEnabled:        true,
		DedupThreshold:      0.9,
	})
	ctx := context.Background()

	first, err := f.engine.CreateTask(ctx, f.createReq("implement retry logic"))
	require.NoError(t, err)
	require.Equal(t, models.TaskCreated, first.Status)

	second, err := f.engine.CreateTask(ctx, f.createReq("add retry handling"))
	require.NoError(t, err)
	assert.Equal(t, models.TaskDuplicate, second.Status)
	assert.Equal(t, first.Task.ID, second.DuplicateOfID)
	assert.GreaterOrEqual(t, second.SimilarityScore, 0.9)
	// The score is against the earlier task, not the new task's own
	// freshly stored embedding.
	assert.Less(t, second.SimilarityScore, 0.99)
	assert.Equal(t, task.StatusDuplicated, second.Task.Status)

	// A dissimilar description sails through.
	third, err := f.engine.CreateTask(ctx, f.createReq("write the changelog"))
	require.NoError(t, err)
	assert.Equal(t, models.TaskCreated, third.Status)

	// Duplicates never consume an agent slot.
	assert.Equal(t, 2, f.spawner.calls)
}

func TestProcessQueueDrainsUpToCapacity(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 2, BumpCeilingFactor: 2})
	ctx := context.Background()

	// Fill the queue while spawning is down.
	f.spawner.fail = true
	for _, desc := range []string{"one", "two", "three"} {
		result, err := f.engine.CreateTask(ctx, f.createReq(desc))
		require.NoError(t, err)
		require.Equal(t, models.TaskQueued, result.Status)
	}

	f.spawner.fail = false
	require.NoError(t, f.engine.ProcessQueue(ctx, f.workflow.ID))

	active, err := f.agents.CountActive(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, active)

	queued, err := f.tasks.QueuedTasks(ctx, f.workflow.ID)
	require.NoError(t, err)
	require.Len(t, queued, 1)
	require.NotNil(t, queued[0].QueuePosition)
	assert.Equal(t, 1, *queued[0].QueuePosition)
}

func TestCancelQueued(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})
	ctx := context.Background()
	f.occupySlot(t)

	queued, err := f.engine.CreateTask(ctx, f.createReq("to be cancelled"))
	require.NoError(t, err)
	require.Equal(t, models.TaskQueued, queued.Status)

	cancelled, err := f.engine.CancelQueued(ctx, queued.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, cancelled.Status)
	require.NotNil(t, cancelled.FailureReason)
	assert.Equal(t, "cancelled", *cancelled.FailureReason)
	assert.Nil(t, cancelled.QueuePosition)

	// Only queued tasks can be cancelled.
	_, err = f.engine.CancelQueued(ctx, queued.Task.ID)
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestBumpTaskPriorityStartsImmediately(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})
	ctx := context.Background()
	f.occupySlot(t)

	queued, err := f.engine.CreateTask(ctx, f.createReq("urgent"))
	require.NoError(t, err)
	require.Equal(t, models.TaskQueued, queued.Status)

	// One active agent, ceiling is 2: the bump overshoots the normal cap.
	resp, err := f.engine.BumpTaskPriority(ctx, queued.Task.ID)
	require.NoError(t, err)
	assert.True(t, resp.Spawned)
	assert.False(t, resp.CapacityExceeded)
	assert.Equal(t, task.StatusAssigned, resp.Task.Status)
}

func TestBumpTaskPriorityHardCeiling(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 1, BumpCeilingFactor: 2})
	ctx := context.Background()
	f.occupySlot(t)
	f.occupySlot(t)

	queued, err := f.engine.CreateTask(ctx, f.createReq("bumped at the ceiling"))
	require.NoError(t, err)
	require.Equal(t, models.TaskQueued, queued.Status)

	resp, err := f.engine.BumpTaskPriority(ctx, queued.Task.ID)
	assert.ErrorIs(t, err, services.ErrCapacityExceeded)
	require.NotNil(t, resp)
	assert.True(t, resp.CapacityExceeded)
	assert.False(t, resp.Spawned)

	// The boost itself survives the refusal: the task sits at the queue
	// head for the next free slot.
	got, err := f.tasks.GetTask(ctx, queued.Task.ID)
	require.NoError(t, err)
	assert.True(t, got.PriorityBoosted)
	assert.Equal(t, task.StatusQueued, got.Status)
	require.NotNil(t, got.QueuePosition)
	assert.Equal(t, 1, *got.QueuePosition)

	// Bumping a non-queued task is rejected outright.
	_, err = f.engine.BumpTaskPriority(ctx, uuid.New().String())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRestartPlacesTaskAgain(t *testing.T) {
	f := newEngineFixture(t, config.QueueConfig{MaxConcurrentAgents: 2, BumpCeilingFactor: 2})
	ctx := context.Background()

	created, err := f.engine.CreateTask(ctx, f.createReq("restartable"))
	require.NoError(t, err)
	require.Equal(t, models.TaskCreated, created.Status)

	// Walk the task to failed, release the agent slot, then restart.
	_, err = f.tasks.Transition(ctx, created.Task.ID, task.StatusInProgress)
	require.NoError(t, err)
	_, err = f.tasks.Fail(ctx, created.Task.ID, "agent crashed")
	require.NoError(t, err)
	agents, err := f.agents.ActiveAgents(ctx, f.workflow.ID)
	require.NoError(t, err)
	for _, a := range agents {
		_, err := f.agents.MarkTerminated(ctx, a.ID, "test cleanup", false)
		require.NoError(t, err)
	}

	restarted, err := f.engine.Restart(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCreated, restarted.Status)
	assert.Equal(t, task.StatusAssigned, restarted.Task.Status)
	assert.Equal(t, 2, f.spawner.calls)
}

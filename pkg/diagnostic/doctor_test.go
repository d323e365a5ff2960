package diagnostic

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
	"github.com/hephaestus-ai/hephaestus/pkg/worktree"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

type okRunner struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *okRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	return "", nil
}

func (r *okRunner) injectedTexts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.calls {
		for i, a := range c {
			if a == "-l" && i+1 < len(c) {
				out = append(out, c[i+1])
			}
		}
	}
	return out
}

type doctorFixture struct {
	doctor   *Doctor
	runner   *okRunner
	client   *ent.Client
	tasks    *services.TaskService
	agents   *services.AgentService
	results  *services.ResultService
	runs     *services.DiagnosticService
	workflow *ent.Workflow
}

func newDoctorFixture(t *testing.T, cfg config.DiagnosticConfig) *doctorFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	tasks := services.NewTaskService(client)
	agents := services.NewAgentService(client)
	workflows := services.NewWorkflowService(client)
	analyses := services.NewAnalysisService(client)
	results := services.NewResultService(client)
	runs := services.NewDiagnosticService(client)

	runner := &okRunner{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	driver := tmux.NewDriver(&config.SessionConfig{TmuxBinary: "tmux", AgentCommand: "agent-cli"}, runner, logger)
	worktrees := worktree.NewManager(&config.WorktreeConfig{RepoPath: t.TempDir(), Root: t.TempDir()}, runner, logger)
	builder := prompt.NewPromptBuilder()
	publisher := events.NewPublisher(db)
	manager := agentmgr.NewManager(agents, tasks, workflows, driver, worktrees, builder, publisher, logger)

	d := NewDoctor(cfg, tasks, agents, workflows, analyses, results, runs, manager, builder, logger)

	wf, err := client.Workflow.Create().
		SetID(uuid.New().String()).
		SetName("stalled workflow").
		SetGoalText("ship the payments feature").
		SetOnResultFound(workflow.OnResultFoundStopAll).
		Save(ctx)
	require.NoError(t, err)

	return &doctorFixture{
		doctor:   d,
		runner:   runner,
		client:   client,
		tasks:    tasks,
		agents:   agents,
		results:  results,
		runs:     runs,
		workflow: wf,
	}
}

// staleFailedTask seeds a terminal task old enough to satisfy the
// stuck-time condition.
func (f *doctorFixture) staleFailedTask(t *testing.T) *ent.Task {
	t.Helper()
	old := time.Now().Add(-time.Hour)
	tk, err := f.client.Task.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(f.workflow.ID).
		SetDescription("build checkout page").
		SetDoneDefinition("checkout renders").
		SetStatus(task.StatusFailed).
		SetCreatedAt(old).
		SetCompletedAt(old).
		Save(context.Background())
	require.NoError(t, err)
	return tk
}

func TestMaybeRunSkipsWorkflowWithNoTasks(t *testing.T) {
	f := newDoctorFixture(t, config.DiagnosticConfig{})
	run, err := f.doctor.MaybeRun(context.Background(), f.workflow.ID)
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestMaybeRunSkipsWhileTasksOpen(t *testing.T) {
	f := newDoctorFixture(t, config.DiagnosticConfig{MinStuckTime: time.Millisecond})
	ctx := context.Background()
	f.staleFailedTask(t)
	_, err := f.tasks.CreateRow(ctx, models.CreateTaskRequest{
		WorkflowID:     f.workflow.ID,
		Description:    "still in flight",
		DoneDefinition: "done",
	})
	require.NoError(t, err)

	run, err := f.doctor.MaybeRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestMaybeRunSkipsAfterValidatedResult(t *testing.T) {
	f := newDoctorFixture(t, config.DiagnosticConfig{MinStuckTime: time.Millisecond})
	ctx := context.Background()
	f.staleFailedTask(t)
	_, err := f.client.WorkflowResult.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(f.workflow.ID).
		SetAgentID(uuid.New().String()).
		SetMarkdownPath("RESULT.md").
		SetMarkdownContent("# Done").
		SetStatus(workflowresult.StatusValidated).
		Save(ctx)
	require.NoError(t, err)

	run, err := f.doctor.MaybeRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestMaybeRunHonorsCooldown(t *testing.T) {
	f := newDoctorFixture(t, config.DiagnosticConfig{
		MinStuckTime: time.Millisecond,
		Cooldown:     time.Hour,
	})
	ctx := context.Background()
	f.staleFailedTask(t)
	_, err := f.runs.CreateRun(ctx, f.workflow.ID, nil)
	require.NoError(t, err)

	run, err := f.doctor.MaybeRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestMaybeRunSkipsRecentActivity(t *testing.T) {
	f := newDoctorFixture(t, config.DiagnosticConfig{}) // default 1m stuck time
	ctx := context.Background()
	// A task that failed moments ago: terminal, but the workflow is not
	// considered stuck yet.
	now := time.Now()
	_, err := f.client.Task.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(f.workflow.ID).
		SetDescription("just failed").
		SetDoneDefinition("n/a").
		SetStatus(task.StatusFailed).
		SetCompletedAt(now).
		Save(ctx)
	require.NoError(t, err)

	run, err := f.doctor.MaybeRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestMaybeRunSpawnsDoctor(t *testing.T) {
	f := newDoctorFixture(t, config.DiagnosticConfig{
		MinStuckTime: time.Millisecond,
		Cooldown:     time.Millisecond,
	})
	ctx := context.Background()
	f.staleFailedTask(t)

	run, err := f.doctor.MaybeRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	require.NotNil(t, run)

	latest, err := f.runs.LatestRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, diagnosticrun.StatusRunning, latest.Status)
	assert.NotEmpty(t, latest.TriggerStats)

	// A diagnostic task was created and handed to a working doctor agent.
	list, err := f.tasks.ListTasks(ctx, models.TaskFilters{
		WorkflowID: f.workflow.ID,
		AgentType:  string(task.AgentTypeDiagnostic),
	})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	doctorTask := list.Tasks[0]
	require.NotNil(t, doctorTask.AssignedAgentID)

	a, err := f.agents.GetAgent(ctx, *doctorTask.AssignedAgentID)
	require.NoError(t, err)
	assert.Equal(t, agent.AgentTypeDiagnostic, a.AgentType)
	assert.Equal(t, agent.StatusWorking, a.Status)

	// The doctor prompt carries the workflow goal so diagnosis stays on
	// target.
	var prompted bool
	for _, text := range f.runner.injectedTexts() {
		if strings.Contains(text, "ship the payments feature") {
			prompted = true
		}
	}
	assert.True(t, prompted, "doctor prompt missing workflow goal")
}

func TestCompleteRun(t *testing.T) {
	f := newDoctorFixture(t, config.DiagnosticConfig{})
	ctx := context.Background()
	_, err := f.runs.CreateRun(ctx, f.workflow.ID, map[string]interface{}{"total_tasks": 3})
	require.NoError(t, err)

	created := []string{uuid.New().String(), uuid.New().String()}
	require.NoError(t, f.doctor.CompleteRun(ctx, f.workflow.ID, "agents kept failing on auth", created, false))

	latest, err := f.runs.LatestRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, diagnosticrun.StatusCompleted, latest.Status)
	assert.Equal(t, "agents kept failing on auth", latest.Diagnosis)
	assert.Equal(t, created, latest.TasksCreatedIds)

	require.NoError(t, f.doctor.CompleteRun(ctx, f.workflow.ID, "", nil, true))
	latest, err = f.runs.LatestRun(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, diagnosticrun.StatusFailed, latest.Status)
}

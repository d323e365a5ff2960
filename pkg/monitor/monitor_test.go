package monitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/conductor"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/diagnostic"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/guardian"
	"github.com/hephaestus-ai/hephaestus/pkg/llm"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/queue"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
	"github.com/hephaestus-ai/hephaestus/pkg/validation"
	"github.com/hephaestus-ai/hephaestus/pkg/worktree"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

// scriptRunner fakes tmux and git, keyed by subcommand so one step can fail
// while the rest succeeds.
type scriptRunner struct {
	mu     sync.Mutex
	calls  [][]string
	fail   map[string]error
	output map[string]string
}

func newScriptRunner() *scriptRunner {
	return &scriptRunner{fail: map[string]error{}, output: map[string]string{}}
}

func (r *scriptRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	key := name
	if len(args) > 0 {
		key = args[0]
	}
	if err, ok := r.fail[key]; ok {
		return "", err
	}
	return r.output[key], nil
}

func (r *scriptRunner) callsTo(sub string) [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out [][]string
	for _, c := range r.calls {
		if len(c) > 1 && c[1] == sub {
			out = append(out, c)
		}
	}
	return out
}

type staticEmbedder struct{}

func (staticEmbedder) Embed(context.Context, string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

func (staticEmbedder) Dimension() int { return 3 }

type monitorFixture struct {
	monitor *Monitor
	runner  *scriptRunner
	client  *ent.Client
	agents  *services.AgentService
	tasks   *services.TaskService
}

// newMonitorFixture wires the full supervision graph onto a scripted
// runner. No LLM or embedding endpoints are reached by the paths these
// tests exercise.
func newMonitorFixture(t *testing.T, cfg config.MonitoringConfig) *monitorFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	tasks := services.NewTaskService(client)
	agents := services.NewAgentService(client)
	workflows := services.NewWorkflowService(client)
	analyses := services.NewAnalysisService(client)
	results := services.NewResultService(client)
	runs := services.NewDiagnosticService(client)

	runner := newScriptRunner()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	driver := tmux.NewDriver(&config.SessionConfig{TmuxBinary: "tmux", AgentCommand: "agent-cli"}, runner, logger)
	worktrees := worktree.NewManager(&config.WorktreeConfig{RepoPath: t.TempDir(), Root: t.TempDir()}, runner, logger)
	builder := prompt.NewPromptBuilder()
	publisher := events.NewPublisher(db)
	llmClient := llm.NewClient(nil, logger)

	manager := agentmgr.NewManager(agents, tasks, workflows, driver, worktrees, builder, publisher, logger)
	taskQueue := queue.NewEngine(config.QueueConfig{}, tasks, workflows, agents, analyses,
		staticEmbedder{}, llmClient, builder, manager, publisher, logger)
	manager.SetQueue(taskQueue)
	pipeline := validation.NewPipeline(config.ValidationConfig{}, tasks, agents, workflows, results,
		manager, worktrees, driver, builder, publisher, logger)
	guard := guardian.NewGuardian(cfg, agents, tasks, workflows, analyses, driver, llmClient, builder, logger)
	cond := conductor.NewConductor(cfg, agents, tasks, workflows, analyses, llmClient, builder, manager, logger)
	doctor := diagnostic.NewDoctor(config.DiagnosticConfig{}, tasks, agents, workflows, analyses,
		results, runs, manager, builder, logger)

	m := NewMonitor(cfg, agents, tasks, workflows, runs, guard, cond, doctor, manager, pipeline, taskQueue, logger)
	return &monitorFixture{monitor: m, runner: runner, client: client, agents: agents, tasks: tasks}
}

func (f *monitorFixture) createWorkflow(t *testing.T) *ent.Workflow {
	t.Helper()
	wf, err := f.client.Workflow.Create().
		SetID(uuid.New().String()).
		SetName("monitored").
		SetGoalText("keep the swarm healthy").
		SetOnResultFound(workflow.OnResultFoundStopAll).
		Save(context.Background())
	require.NoError(t, err)
	return wf
}

func TestOrphanCleanupWaitsForGracePeriod(t *testing.T) {
	f := newMonitorFixture(t, config.MonitoringConfig{})
	f.runner.output["list-sessions"] = "hephaestus-orphan\nuser-shell\n"

	// Inside the grace window orphan sessions are left alone, even though
	// no agent owns them.
	f.monitor.startedAt = time.Now()
	f.monitor.RunCycle(context.Background())
	assert.Empty(t, f.runner.callsTo("kill-session"))

	// Past the grace window the orphan is killed; the user's own session
	// is never touched.
	f.monitor.startedAt = time.Now().Add(-3 * time.Minute)
	f.monitor.RunCycle(context.Background())
	kills := f.runner.callsTo("kill-session")
	require.Len(t, kills, 1)
	assert.Contains(t, kills[0], "hephaestus-orphan")
}

func TestRunCycleReapsDeadSessions(t *testing.T) {
	f := newMonitorFixture(t, config.MonitoringConfig{})
	ctx := context.Background()
	wf := f.createWorkflow(t)
	f.monitor.startedAt = time.Now() // keep orphan cleanup out of the way
	f.runner.fail["has-session"] = errors.New("can't find session")

	tk, err := f.tasks.CreateRow(ctx, models.CreateTaskRequest{
		WorkflowID:     wf.ID,
		Description:    "long running job",
		DoneDefinition: "job finished",
	})
	require.NoError(t, err)
	dead, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetTaskID(tk.ID).
		SetStatus(agent.StatusWorking).
		SetSessionName("hephaestus-dead").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = f.tasks.Assign(ctx, tk.ID, dead.ID)
	require.NoError(t, err)
	_, err = f.tasks.Transition(ctx, tk.ID, task.StatusInProgress)
	require.NoError(t, err)

	f.monitor.RunCycle(ctx)

	got, err := f.agents.GetAgent(ctx, dead.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusFailed, got.Status)
	gotTask, err := f.tasks.GetTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, gotTask.Status)
}

func TestRunCycleSkipsYoungAgents(t *testing.T) {
	f := newMonitorFixture(t, config.MonitoringConfig{})
	ctx := context.Background()
	wf := f.createWorkflow(t)
	f.monitor.startedAt = time.Now()
	f.runner.fail["has-session"] = errors.New("can't find session")

	young, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetStatus(agent.StatusWorking).
		SetSessionName("hephaestus-young").
		Save(ctx)
	require.NoError(t, err)

	f.monitor.RunCycle(ctx)

	// A just-spawned agent whose session has not materialized yet is not
	// treated as dead.
	got, err := f.agents.GetAgent(ctx, young.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, got.Status)
}

func TestConfigDefaults(t *testing.T) {
	m := &Monitor{}
	assert.Equal(t, time.Minute, m.interval())
	assert.Equal(t, time.Minute, m.minAgentAge())
	assert.Equal(t, 2*time.Minute, m.orphanGrace())
	assert.Equal(t, 5, m.maxConcurrent())

	m = &Monitor{cfg: config.MonitoringConfig{
		Interval:            30 * time.Second,
		GuardianMinAgentAge: 90 * time.Second,
		OrphanGracePeriod:   5 * time.Minute,
		MaxConcurrent:       2,
	}}
	assert.Equal(t, 30*time.Second, m.interval())
	assert.Equal(t, 90*time.Second, m.minAgentAge())
	assert.Equal(t, 5*time.Minute, m.orphanGrace())
	assert.Equal(t, 2, m.maxConcurrent())
}

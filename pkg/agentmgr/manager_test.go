package agentmgr

import (
	"context"
	"errors"
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
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
	"github.com/hephaestus-ai/hephaestus/pkg/worktree"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

func TestNewSessionName(t *testing.T) {
	name := NewSessionName()

	assert.True(t, strings.HasPrefix(name, SessionPrefix()))
	assert.Len(t, strings.TrimPrefix(name, SessionPrefix()), 8)

	// Handles are random, two calls must not collide.
	assert.NotEqual(t, name, NewSessionName())
}

func TestIsManagedSession(t *testing.T) {
	assert.True(t, IsManagedSession(NewSessionName()))
	assert.True(t, IsManagedSession("hephaestus-deadbeef"))
	assert.False(t, IsManagedSession("my-dev-session"))
	assert.False(t, IsManagedSession(""))
}

// scriptRunner fakes tmux and git. Behaviour is keyed by subcommand
// ("new-session", "worktree", ...) so a test can fail one step of the spawn
// cascade while the rest succeeds.
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
	key := subcommandOf(name, args)
	if err, ok := r.fail[key]; ok {
		return "", err
	}
	return r.output[key], nil
}

func subcommandOf(name string, args []string) string {
	if name == "git" {
		// git -C <repo> <subcommand> ...
		for i, a := range args {
			if a == "-C" && i+2 < len(args) {
				return args[i+2]
			}
		}
	}
	if len(args) > 0 {
		return args[0]
	}
	return name
}

func (r *scriptRunner) callsTo(sub string) [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out [][]string
	for _, c := range r.calls {
		if subcommandOf(c[0], c[1:]) == sub {
			out = append(out, c)
		}
	}
	return out
}

// injectedText returns the literal text of the nth send-keys -l call.
func (r *scriptRunner) injectedText(n int) string {
	i := 0
	for _, c := range r.callsTo("send-keys") {
		for j, a := range c {
			if a == "-l" && j+1 < len(c) {
				if i == n {
					return c[j+1]
				}
				i++
			}
		}
	}
	return ""
}

type managerFixture struct {
	manager   *Manager
	runner    *scriptRunner
	tasks     *services.TaskService
	agents    *services.AgentService
	workflows *services.WorkflowService
	worktrees *worktree.Manager
	client    *ent.Client
	workflow  *ent.Workflow
	phase     *ent.Phase
}

type fakeKicker struct {
	workflows []string
}

func (f *fakeKicker) ProcessQueue(_ context.Context, workflowID string) error {
	f.workflows = append(f.workflows, workflowID)
	return nil
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	tasks := services.NewTaskService(client)
	agents := services.NewAgentService(client)
	workflows := services.NewWorkflowService(client)

	runner := newScriptRunner()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	driver := tmux.NewDriver(&config.SessionConfig{TmuxBinary: "tmux", AgentCommand: "agent-cli"}, runner, logger)
	worktrees := worktree.NewManager(&config.WorktreeConfig{RepoPath: "/repo", Root: t.TempDir()}, runner, logger)

	m := NewManager(agents, tasks, workflows, driver, worktrees,
		prompt.NewPromptBuilder(), events.NewPublisher(db), logger)

	wf, err := client.Workflow.Create().
		SetID(uuid.New().String()).
		SetName("manager test").
		SetGoalText("exercise the agent lifecycle").
		Save(ctx)
	require.NoError(t, err)

	ph, err := client.Phase.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetNumber(1).
		SetName("building").
		SetDescription("implement the thing").
		SetDoneDefinitions([]string{"it compiles"}).
		Save(ctx)
	require.NoError(t, err)

	return &managerFixture{
		manager:   m,
		runner:    runner,
		tasks:     tasks,
		agents:    agents,
		workflows: workflows,
		worktrees: worktrees,
		client:    client,
		workflow:  wf,
		phase:     ph,
	}
}

func (f *managerFixture) createTask(t *testing.T) *ent.Task {
	t.Helper()
	tk, err := f.tasks.CreateRow(context.Background(), models.CreateTaskRequest{
		WorkflowID:     f.workflow.ID,
		PhaseID:        f.phase.ID,
		Description:    "wire the frobnicator",
		DoneDefinition: "frobnicator wired and tested",
	})
	require.NoError(t, err)
	return tk
}

func TestSpawnForTask(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()
	tk := f.createTask(t)

	a, err := f.manager.SpawnForTask(ctx, tk)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, a.Status)
	assert.Equal(t, f.worktrees.Path(a.ID), a.WorktreePath)

	got, err := f.tasks.GetTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, got.Status)
	require.NotNil(t, got.AssignedAgentID)
	assert.Equal(t, a.ID, *got.AssignedAgentID)

	// Worktree branched, session started in it, prompt injected.
	require.Len(t, f.runner.callsTo("worktree"), 1)
	sessions := f.runner.callsTo("new-session")
	require.Len(t, sessions, 1)
	assert.Contains(t, sessions[0], a.WorktreePath)

	injected := f.runner.injectedText(0)
	assert.Contains(t, injected, a.ID)
	assert.Contains(t, injected, "placeholder")
	assert.Contains(t, injected, "wire the frobnicator")
	assert.Contains(t, injected, "exercise the agent lifecycle")
}

func TestSpawnForTaskSessionFailureRequeues(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()
	tk := f.createTask(t)
	f.runner.fail["new-session"] = errors.New("tmux: server exited unexpectedly")

	_, err := f.manager.SpawnForTask(ctx, tk)
	require.Error(t, err)

	// The task survives the failed spawn: back in the queue at position 1.
	got, err := f.tasks.GetTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, got.Status)
	require.NotNil(t, got.QueuePosition)
	assert.Equal(t, 1, *got.QueuePosition)

	// The half-created worktree is cleaned up and the agent row finalized.
	assert.GreaterOrEqual(t, len(f.runner.callsTo("worktree")), 2)
	active, err := f.agents.CountActive(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Zero(t, active)
}

func TestTerminateAgentIdempotent(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()
	tk := f.createTask(t)

	a, err := f.manager.SpawnForTask(ctx, tk)
	require.NoError(t, err)

	require.NoError(t, f.manager.TerminateAgent(ctx, a.ID, "operator request", TerminateOptions{}))
	require.NoError(t, f.manager.TerminateAgent(ctx, a.ID, "second call", TerminateOptions{}))

	got, err := f.agents.GetAgent(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusTerminated, got.Status)
	require.NotNil(t, got.TerminationReason)
	// The second call is a no-op; the first reason sticks.
	assert.Equal(t, "operator request", *got.TerminationReason)

	// An unknown agent terminates cleanly too.
	assert.NoError(t, f.manager.TerminateAgent(ctx, uuid.New().String(), "gone", TerminateOptions{}))
}

func TestTerminateAgentFailsTaskAndKicksQueue(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()
	kicker := &fakeKicker{}
	f.manager.SetQueue(kicker)

	tk := f.createTask(t)
	a, err := f.manager.SpawnForTask(ctx, tk)
	require.NoError(t, err)
	_, err = f.tasks.Transition(ctx, tk.ID, task.StatusInProgress)
	require.NoError(t, err)

	require.NoError(t, f.manager.TerminateAgent(ctx, a.ID, "conductor: duplicate work", TerminateOptions{FailTask: true}))

	got, err := f.tasks.GetTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Contains(t, *got.FailureReason, "conductor: duplicate work")

	// The freed slot triggers queue dispatch for the workflow.
	assert.Equal(t, []string{f.workflow.ID}, kicker.workflows)
}

func TestReapDeadSessions(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()
	f.runner.fail["has-session"] = errors.New("can't find session")

	// An old agent with a dead session and an in-progress task.
	tk := f.createTask(t)
	old, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(f.workflow.ID).
		SetTaskID(tk.ID).
		SetStatus(agent.StatusWorking).
		SetSessionName("hephaestus-old").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = f.tasks.Assign(ctx, tk.ID, old.ID)
	require.NoError(t, err)
	_, err = f.tasks.Transition(ctx, tk.ID, task.StatusInProgress)
	require.NoError(t, err)

	// A freshly spawned agent, also "dead", but inside the grace window.
	young, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(f.workflow.ID).
		SetStatus(agent.StatusWorking).
		SetSessionName("hephaestus-young").
		Save(ctx)
	require.NoError(t, err)

	// An old agent kept alive while a validator inspects its worktree.
	kept, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(f.workflow.ID).
		SetStatus(agent.StatusWorking).
		SetSessionName("hephaestus-kept").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		SetKeptAliveForValidation(true).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.manager.ReapDeadSessions(ctx, time.Minute))

	gotOld, err := f.agents.GetAgent(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusFailed, gotOld.Status)
	gotTask, err := f.tasks.GetTask(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, gotTask.Status)

	gotYoung, err := f.agents.GetAgent(ctx, young.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, gotYoung.Status)

	gotKept, err := f.agents.GetAgent(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, gotKept.Status)
}

func TestKillOrphanSessions(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()
	f.runner.output["list-sessions"] = "hephaestus-orphan\nhephaestus-owned\nmy-dev-session\n"

	_, err := f.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(f.workflow.ID).
		SetStatus(agent.StatusWorking).
		SetSessionName("hephaestus-owned").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.manager.KillOrphanSessions(ctx))

	kills := f.runner.callsTo("kill-session")
	require.Len(t, kills, 1)
	assert.Contains(t, kills[0], "hephaestus-orphan")
}

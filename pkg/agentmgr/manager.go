// Package agentmgr owns the agent lifecycle: spawning sessions with
// isolated worktrees, injecting prompts and the termination cascade.
package agentmgr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/metrics"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
	"github.com/hephaestus-ai/hephaestus/pkg/worktree"
)

// sessionPrefix namespaces orchestrator-owned tmux sessions so orphan
// cleanup never touches a user's own sessions.
const sessionPrefix = "hephaestus-"

// QueueKicker re-runs queue dispatch after an agent slot frees up.
// Implemented by the queue engine.
type QueueKicker interface {
	ProcessQueue(ctx context.Context, workflowID string) error
}

// Manager spawns and terminates agents.
type Manager struct {
	agents    *services.AgentService
	tasks     *services.TaskService
	workflows *services.WorkflowService
	driver    *tmux.Driver
	worktrees *worktree.Manager
	builder   *prompt.PromptBuilder
	publisher *events.Publisher
	logger    *slog.Logger

	// Set after construction to break the mutual dependency with the
	// queue engine.
	queue QueueKicker
}

// NewManager creates the agent manager. Call SetQueue before first use.
func NewManager(
	agents *services.AgentService,
	tasks *services.TaskService,
	workflows *services.WorkflowService,
	driver *tmux.Driver,
	worktrees *worktree.Manager,
	builder *prompt.PromptBuilder,
	publisher *events.Publisher,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		agents:    agents,
		tasks:     tasks,
		workflows: workflows,
		driver:    driver,
		worktrees: worktrees,
		builder:   builder,
		publisher: publisher,
		logger:    logger.With("component", "agentmgr"),
	}
}

// SetQueue wires the queue engine in after both sides exist.
func (m *Manager) SetQueue(q QueueKicker) {
	m.queue = q
}

// SessionPrefix returns the namespace prefix of orchestrator sessions.
func SessionPrefix() string {
	return sessionPrefix
}

// NewSessionName generates a namespaced session handle.
func NewSessionName() string {
	return sessionPrefix + uuid.New().String()[:8]
}

// IsManagedSession reports whether a tmux session name belongs to the
// orchestrator.
func IsManagedSession(name string) bool {
	return strings.HasPrefix(name, sessionPrefix)
}

// SpawnForTask launches an agent for a phase or diagnostic task: agent row,
// worktree (phase agents only; the doctor works in the main repository),
// tmux session, initial prompt. Any step failing unwinds the ones before it
// and puts the task back in the queue.
func (m *Manager) SpawnForTask(ctx context.Context, t *ent.Task) (*ent.Agent, error) {
	agentType := agent.AgentType(t.AgentType)
	sessionName := NewSessionName()

	a, err := m.agents.CreateAgent(ctx, t.WorkflowID, t.ID, agentType, sessionName)
	if err != nil {
		return nil, err
	}
	if _, err := m.tasks.Assign(ctx, t.ID, a.ID); err != nil {
		_, _ = m.agents.MarkTerminated(ctx, a.ID, "spawn aborted: task assignment failed", true)
		return nil, err
	}

	workDir := m.worktrees.RepoPath()
	if agentType != agent.AgentTypeDiagnostic {
		path, err := m.worktrees.Create(ctx, a.ID)
		if err != nil {
			m.abortSpawn(ctx, a, t, false, fmt.Sprintf("worktree creation failed: %v", err))
			return nil, fmt.Errorf("worktree creation failed: %w", err)
		}
		if err := m.agents.SetWorktreePath(ctx, a.ID, path); err != nil {
			m.abortSpawn(ctx, a, t, true, fmt.Sprintf("recording worktree failed: %v", err))
			return nil, err
		}
		workDir = path
	}

	if err := m.driver.Create(ctx, sessionName, workDir); err != nil {
		m.abortSpawn(ctx, a, t, agentType != agent.AgentTypeDiagnostic,
			fmt.Sprintf("session creation failed: %v", err))
		return nil, fmt.Errorf("session creation failed: %w", err)
	}

	text, err := m.initialPrompt(ctx, a, t)
	if err != nil {
		_ = m.driver.Kill(ctx, sessionName)
		m.abortSpawn(ctx, a, t, agentType != agent.AgentTypeDiagnostic,
			fmt.Sprintf("prompt build failed: %v", err))
		return nil, err
	}
	if err := m.driver.Inject(ctx, sessionName, text); err != nil {
		_ = m.driver.Kill(ctx, sessionName)
		m.abortSpawn(ctx, a, t, agentType != agent.AgentTypeDiagnostic,
			fmt.Sprintf("prompt injection failed: %v", err))
		return nil, fmt.Errorf("prompt injection failed: %w", err)
	}

	working, err := m.agents.SetWorking(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	m.publisher.PublishAsync(events.EventAgentCreated, t.WorkflowID, map[string]any{
		"agent_id":   a.ID,
		"task_id":    t.ID,
		"agent_type": string(agentType),
	})
	metrics.AgentsSpawned.WithLabelValues(string(agentType)).Inc()
	m.logger.Info("agent spawned",
		"agent_id", a.ID, "task_id", t.ID, "agent_type", agentType, "session", sessionName)
	return working, nil
}

// abortSpawn unwinds a partial spawn and requeues the task so the work is
// not lost.
func (m *Manager) abortSpawn(ctx context.Context, a *ent.Agent, t *ent.Task, destroyWorktree bool, reason string) {
	if destroyWorktree {
		if err := m.worktrees.Destroy(ctx, a.ID); err != nil {
			m.logger.Warn("worktree cleanup after failed spawn", "agent_id", a.ID, "error", err)
		}
	}
	if _, err := m.agents.MarkTerminated(ctx, a.ID, reason, true); err != nil {
		m.logger.Warn("agent cleanup after failed spawn", "agent_id", a.ID, "error", err)
	}
	// assigned -> failed -> pending -> queued puts the task back without
	// losing its failure trail.
	if _, err := m.tasks.Fail(ctx, t.ID, reason); err != nil {
		m.logger.Error("failed to fail task after aborted spawn", "task_id", t.ID, "error", err)
		return
	}
	if _, err := m.tasks.Transition(ctx, t.ID, task.StatusPending); err != nil {
		m.logger.Error("failed to reset task after aborted spawn", "task_id", t.ID, "error", err)
		return
	}
	if _, err := m.tasks.Enqueue(ctx, t.ID); err != nil {
		m.logger.Error("failed to requeue task after aborted spawn", "task_id", t.ID, "error", err)
		return
	}
	if _, err := m.tasks.RecomputeQueuePositions(ctx, t.WorkflowID); err != nil {
		m.logger.Warn("queue recompute after aborted spawn", "workflow_id", t.WorkflowID, "error", err)
	}
	m.logger.Warn("spawn aborted, task requeued", "task_id", t.ID, "reason", reason)
}

func (m *Manager) initialPrompt(ctx context.Context, a *ent.Agent, t *ent.Task) (string, error) {
	wf, err := m.workflows.GetWorkflow(ctx, t.WorkflowID)
	if err != nil {
		return "", err
	}
	var phase *ent.Phase
	if t.PhaseID != nil {
		phase, err = m.workflows.GetPhase(ctx, t.WorkflowID, *t.PhaseID)
		if err != nil {
			return "", err
		}
	}
	return m.builder.BuildInitialPrompt(prompt.InitialPromptInput{
		AgentID:      a.ID,
		WorkflowGoal: wf.GoalText,
		Phase:        phase,
		Task:         t,
	}), nil
}

// SpawnDiagnostic launches the workflow doctor for a diagnostic task. The
// doctor works in the main repository without worktree isolation, and its
// prompt carries the stalled-workflow context built by the caller.
func (m *Manager) SpawnDiagnostic(ctx context.Context, t *ent.Task, promptFor func(agentID string) string) (*ent.Agent, error) {
	sessionName := NewSessionName()
	a, err := m.agents.CreateAgent(ctx, t.WorkflowID, t.ID, agent.AgentTypeDiagnostic, sessionName)
	if err != nil {
		return nil, err
	}
	if _, err := m.tasks.Assign(ctx, t.ID, a.ID); err != nil {
		_, _ = m.agents.MarkTerminated(ctx, a.ID, "spawn aborted: task assignment failed", true)
		return nil, err
	}

	if err := m.driver.Create(ctx, sessionName, m.worktrees.RepoPath()); err != nil {
		m.abortSpawn(ctx, a, t, false, fmt.Sprintf("session creation failed: %v", err))
		return nil, fmt.Errorf("session creation failed: %w", err)
	}
	if err := m.driver.Inject(ctx, sessionName, promptFor(a.ID)); err != nil {
		_ = m.driver.Kill(ctx, sessionName)
		m.abortSpawn(ctx, a, t, false, fmt.Sprintf("prompt injection failed: %v", err))
		return nil, fmt.Errorf("prompt injection failed: %w", err)
	}

	working, err := m.agents.SetWorking(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	m.publisher.PublishAsync(events.EventAgentCreated, t.WorkflowID, map[string]any{
		"agent_id":   a.ID,
		"task_id":    t.ID,
		"agent_type": string(agent.AgentTypeDiagnostic),
	})
	m.logger.Info("diagnostic agent spawned", "agent_id", a.ID, "task_id", t.ID)
	return working, nil
}

// SpawnValidator launches a task-level validator against the implementing
// agent's worktree. The implementer is flagged kept-alive so the reaper
// leaves its session and worktree in place while the validator inspects
// them.
func (m *Manager) SpawnValidator(ctx context.Context, t *ent.Task, implementer *ent.Agent, criteria []string, instructions string) (*ent.Agent, error) {
	if implementer.WorktreePath == "" {
		return nil, fmt.Errorf("%w: implementing agent %s has no worktree", services.ErrInvalidState, implementer.ID)
	}
	if err := m.agents.SetKeptAliveForValidation(ctx, implementer.ID, true); err != nil {
		return nil, err
	}

	sessionName := NewSessionName()
	a, err := m.agents.CreateAgent(ctx, t.WorkflowID, t.ID, agent.AgentTypeValidator, sessionName)
	if err != nil {
		return nil, err
	}
	// Validators run inside the worktree they inspect.
	if err := m.driver.Create(ctx, sessionName, implementer.WorktreePath); err != nil {
		_, _ = m.agents.MarkTerminated(ctx, a.ID, "session creation failed", true)
		return nil, fmt.Errorf("session creation failed: %w", err)
	}

	text := m.builder.BuildValidatorPrompt(prompt.ValidatorPromptInput{
		AgentID:               a.ID,
		Task:                  t,
		Criteria:              criteria,
		ValidatorInstructions: instructions,
		WorktreePath:          implementer.WorktreePath,
		Iteration:             t.ValidationIteration + 1,
	})
	if err := m.driver.Inject(ctx, sessionName, text); err != nil {
		_ = m.driver.Kill(ctx, sessionName)
		_, _ = m.agents.MarkTerminated(ctx, a.ID, "prompt injection failed", true)
		return nil, fmt.Errorf("prompt injection failed: %w", err)
	}

	working, err := m.agents.SetWorking(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	m.publisher.PublishAsync(events.EventAgentCreated, t.WorkflowID, map[string]any{
		"agent_id":   a.ID,
		"task_id":    t.ID,
		"agent_type": string(agent.AgentTypeValidator),
	})
	m.logger.Info("validator spawned", "agent_id", a.ID, "task_id", t.ID, "worktree", implementer.WorktreePath)
	return working, nil
}

// SpawnResultValidator launches a workflow-level result validator in the
// main repository.
func (m *Manager) SpawnResultValidator(ctx context.Context, workflowID, resultID, markdownPath string, criteria []string) (*ent.Agent, error) {
	wf, err := m.workflows.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	sessionName := NewSessionName()
	a, err := m.agents.CreateAgent(ctx, workflowID, "", agent.AgentTypeResultValidator, sessionName)
	if err != nil {
		return nil, err
	}
	if err := m.driver.Create(ctx, sessionName, m.worktrees.RepoPath()); err != nil {
		_, _ = m.agents.MarkTerminated(ctx, a.ID, "session creation failed", true)
		return nil, fmt.Errorf("session creation failed: %w", err)
	}

	text := m.builder.BuildResultValidatorPrompt(prompt.ResultValidatorPromptInput{
		AgentID:      a.ID,
		WorkflowGoal: wf.GoalText,
		Criteria:     criteria,
		ResultID:     resultID,
		MarkdownPath: markdownPath,
	})
	if err := m.driver.Inject(ctx, sessionName, text); err != nil {
		_ = m.driver.Kill(ctx, sessionName)
		_, _ = m.agents.MarkTerminated(ctx, a.ID, "prompt injection failed", true)
		return nil, fmt.Errorf("prompt injection failed: %w", err)
	}

	working, err := m.agents.SetWorking(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	m.publisher.PublishAsync(events.EventAgentCreated, workflowID, map[string]any{
		"agent_id":   a.ID,
		"result_id":  resultID,
		"agent_type": string(agent.AgentTypeResultValidator),
	})
	m.logger.Info("result validator spawned", "agent_id", a.ID, "result_id", resultID)
	return working, nil
}

// TerminateOptions controls the termination cascade.
type TerminateOptions struct {
	// FailTask fails the agent's non-terminal task. Set for external
	// terminations (operator, Conductor, reaper); unset when the task
	// already reached a terminal state on its own.
	FailTask bool

	// AgentFailed finalizes the agent row as failed instead of
	// terminated. Set when the agent died rather than being stopped.
	AgentFailed bool

	// KeepWorktree leaves the worktree in place, used while a validator
	// still needs it.
	KeepWorktree bool
}

// TerminateAgent runs the idempotent termination cascade: kill the session,
// destroy the worktree, finalize the agent row, optionally fail the owned
// task, then re-run queue dispatch for the freed slot.
func (m *Manager) TerminateAgent(ctx context.Context, agentID, reason string, opts TerminateOptions) error {
	a, err := m.agents.GetAgent(ctx, agentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := m.driver.Kill(ctx, a.SessionName); err != nil {
		m.logger.Warn("session kill failed", "agent_id", agentID, "session", a.SessionName, "error", err)
	}
	if !opts.KeepWorktree && a.WorktreePath != "" {
		if err := m.worktrees.Destroy(ctx, agentID); err != nil {
			m.logger.Warn("worktree destroy failed", "agent_id", agentID, "error", err)
		}
	}

	if _, err := m.agents.MarkTerminated(ctx, agentID, reason, opts.AgentFailed); err != nil {
		return err
	}

	if opts.FailTask && a.TaskID != nil {
		t, err := m.tasks.GetTask(ctx, *a.TaskID)
		if err == nil && !isTerminalTaskStatus(t.Status) && t.AssignedAgentID != nil && *t.AssignedAgentID == agentID {
			if _, err := m.tasks.Fail(ctx, t.ID, "agent terminated: "+reason); err != nil {
				m.logger.Warn("failed to fail task of terminated agent", "task_id", t.ID, "error", err)
			}
		}
	}

	finalStatus := "terminated"
	if opts.AgentFailed {
		finalStatus = "failed"
	}
	metrics.AgentsTerminated.WithLabelValues(finalStatus).Inc()
	m.publisher.PublishAsync(events.EventAgentStatusChanged, a.WorkflowID, map[string]any{
		"agent_id": agentID,
		"status":   finalStatus,
		"reason":   reason,
	})
	m.logger.Info("agent terminated", "agent_id", agentID, "reason", reason)

	if m.queue != nil {
		if err := m.queue.ProcessQueue(ctx, a.WorkflowID); err != nil {
			m.logger.Warn("queue dispatch after termination", "workflow_id", a.WorkflowID, "error", err)
		}
	}
	return nil
}

// TerminateAllForWorkflow runs the cascade over every active agent of a
// workflow. Used by stop_all when a validated result lands.
func (m *Manager) TerminateAllForWorkflow(ctx context.Context, workflowID, reason string) error {
	active, err := m.agents.ActiveAgents(ctx, workflowID)
	if err != nil {
		return err
	}
	var firstErr error
	for _, a := range active {
		if err := m.TerminateAgent(ctx, a.ID, reason, TerminateOptions{FailTask: true}); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ReapDeadSessions fails agents whose tmux session disappeared without a
// terminal status, and fails their tasks. Agents younger than minAge and
// agents kept alive for validation are skipped.
func (m *Manager) ReapDeadSessions(ctx context.Context, minAge time.Duration) error {
	active, err := m.agents.ActiveAgents(ctx, "")
	if err != nil {
		return err
	}
	for _, a := range active {
		if time.Since(a.CreatedAt) < minAge || a.KeptAliveForValidation {
			continue
		}
		alive, err := m.driver.Alive(ctx, a.SessionName)
		if err != nil {
			m.logger.Warn("session liveness check failed", "agent_id", a.ID, "error", err)
			continue
		}
		if alive {
			continue
		}
		m.logger.Warn("agent session died", "agent_id", a.ID, "session", a.SessionName)
		if err := m.TerminateAgent(ctx, a.ID, "session died", TerminateOptions{FailTask: true, AgentFailed: true}); err != nil {
			m.logger.Error("failed to reap dead agent", "agent_id", a.ID, "error", err)
		}
	}
	return nil
}

// KillOrphanSessions kills managed tmux sessions that no active agent row
// references.
func (m *Manager) KillOrphanSessions(ctx context.Context) error {
	sessions, err := m.driver.List(ctx)
	if err != nil {
		return err
	}
	active, err := m.agents.ActiveAgents(ctx, "")
	if err != nil {
		return err
	}
	owned := make(map[string]bool, len(active))
	for _, a := range active {
		owned[a.SessionName] = true
	}

	for _, s := range sessions {
		if !IsManagedSession(s) || owned[s] {
			continue
		}
		m.logger.Warn("killing orphan session", "session", s)
		if err := m.driver.Kill(ctx, s); err != nil {
			m.logger.Error("orphan session kill failed", "session", s, "error", err)
		}
	}
	return nil
}

func isTerminalTaskStatus(s task.Status) bool {
	switch s {
	case task.StatusDone, task.StatusFailed, task.StatusDuplicated:
		return true
	}
	return false
}

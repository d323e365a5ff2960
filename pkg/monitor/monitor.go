// Package monitor runs the periodic supervision cycle: session reaping,
// Guardian fan-out, Conductor analysis, result-validation retries, the
// stall doctor and queue dispatch.
package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/conductor"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/diagnostic"
	"github.com/hephaestus-ai/hephaestus/pkg/guardian"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/queue"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/validation"
)

// Monitor owns the supervision loop.
type Monitor struct {
	cfg        config.MonitoringConfig
	agents     *services.AgentService
	tasks      *services.TaskService
	workflows  *services.WorkflowService
	runs       *services.DiagnosticService
	guardian   *guardian.Guardian
	conductor  *conductor.Conductor
	doctor     *diagnostic.Doctor
	manager    *agentmgr.Manager
	pipeline   *validation.Pipeline
	queue      *queue.Engine
	logger     *slog.Logger
	startedAt  time.Time
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewMonitor creates the monitor.
func NewMonitor(
	cfg config.MonitoringConfig,
	agents *services.AgentService,
	tasks *services.TaskService,
	workflows *services.WorkflowService,
	runs *services.DiagnosticService,
	g *guardian.Guardian,
	c *conductor.Conductor,
	d *diagnostic.Doctor,
	manager *agentmgr.Manager,
	pipeline *validation.Pipeline,
	q *queue.Engine,
	logger *slog.Logger,
) *Monitor {
	return &Monitor{
		cfg:       cfg,
		agents:    agents,
		tasks:     tasks,
		workflows: workflows,
		runs:      runs,
		guardian:  g,
		conductor: c,
		doctor:    d,
		manager:   manager,
		pipeline:  pipeline,
		queue:     q,
		logger:    logger.With("component", "monitor"),
	}
}

// Start begins the periodic cycle. The first cycle runs one interval after
// start, never immediately, so agents from a previous process get a chance
// to re-register before orphan cleanup sees them.
func (m *Monitor) Start(ctx context.Context) {
	m.startedAt = time.Now()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancelLoop = cancel
	m.loopDone = make(chan struct{})

	go func() {
		defer close(m.loopDone)
		ticker := time.NewTicker(m.interval())
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				m.RunCycle(loopCtx)
			}
		}
	}()
	m.logger.Info("monitoring started", "interval", m.interval())
}

// Stop halts the loop and waits for an in-flight cycle to finish.
func (m *Monitor) Stop(ctx context.Context) {
	if m.cancelLoop != nil {
		m.cancelLoop()
	}
	if m.loopDone != nil {
		select {
		case <-m.loopDone:
		case <-ctx.Done():
		}
	}
}

// RunCycle performs one full supervision pass over every active workflow.
func (m *Monitor) RunCycle(ctx context.Context) {
	start := time.Now()

	if err := m.manager.ReapDeadSessions(ctx, m.minAgentAge()); err != nil {
		m.logger.Error("dead session reaping failed", "error", err)
	}
	if time.Since(m.startedAt) >= m.orphanGrace() {
		if err := m.manager.KillOrphanSessions(ctx); err != nil {
			m.logger.Error("orphan session cleanup failed", "error", err)
		}
	}

	active, err := m.workflows.ActiveWorkflows(ctx)
	if err != nil {
		m.logger.Error("active workflow listing failed", "error", err)
		return
	}
	for _, wf := range active {
		m.superviseWorkflow(ctx, wf)
	}
	m.logger.Debug("monitoring cycle complete", "workflows", len(active), "took", time.Since(start))
}

func (m *Monitor) superviseWorkflow(ctx context.Context, wf *ent.Workflow) {
	analysed := m.runGuardians(ctx, wf.ID)

	if analysed >= 2 {
		if _, err := m.conductor.Run(ctx, wf.ID); err != nil {
			m.logger.Error("conductor run failed", "workflow_id", wf.ID, "error", err)
		}
	}

	if err := m.pipeline.RetryPendingResults(ctx, wf.ID); err != nil {
		m.logger.Error("pending result retry failed", "workflow_id", wf.ID, "error", err)
	}

	m.closeFinishedDiagnostics(ctx, wf.ID)
	if _, err := m.doctor.MaybeRun(ctx, wf.ID); err != nil {
		m.logger.Error("diagnostic check failed", "workflow_id", wf.ID, "error", err)
	}

	if err := m.queue.ProcessQueue(ctx, wf.ID); err != nil {
		m.logger.Error("queue dispatch failed", "workflow_id", wf.ID, "error", err)
	}
}

// runGuardians analyses every eligible agent in parallel, bounded by the
// configured concurrency. Returns how many agents were analysed.
func (m *Monitor) runGuardians(ctx context.Context, workflowID string) int {
	agents, err := m.agents.ActiveAgents(ctx, workflowID)
	if err != nil {
		m.logger.Error("active agent listing failed", "workflow_id", workflowID, "error", err)
		return 0
	}

	eligible := make([]*ent.Agent, 0, len(agents))
	for _, a := range agents {
		if a.Status != agent.StatusWorking {
			continue
		}
		if time.Since(a.CreatedAt) < m.minAgentAge() {
			continue // too young to have meaningful output
		}
		eligible = append(eligible, a)
	}
	if len(eligible) == 0 {
		return 0
	}

	var mu sync.Mutex
	analysed := 0
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.maxConcurrent())
	for _, a := range eligible {
		g.Go(func() error {
			if _, err := m.guardian.AnalyzeAgent(gctx, a); err != nil {
				m.logger.Error("guardian analysis failed", "agent_id", a.ID, "error", err)
				return nil // one agent failing never blocks the rest
			}
			mu.Lock()
			analysed++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return analysed
}

// closeFinishedDiagnostics completes a running diagnostic run once its
// doctor task reached a terminal state.
func (m *Monitor) closeFinishedDiagnostics(ctx context.Context, workflowID string) {
	run, err := m.runs.LatestRun(ctx, workflowID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			m.logger.Error("diagnostic run lookup failed", "workflow_id", workflowID, "error", err)
		}
		return
	}
	if run.Status != diagnosticrun.StatusRunning {
		return
	}

	list, err := m.tasks.ListTasks(ctx, models.TaskFilters{
		WorkflowID: workflowID,
		AgentType:  string(task.AgentTypeDiagnostic),
		Limit:      1,
	})
	if err != nil || len(list.Tasks) == 0 {
		return
	}
	doctorTask := list.Tasks[0]
	if doctorTask.Status != task.StatusDone && doctorTask.Status != task.StatusFailed {
		return
	}

	var createdIDs []string
	diagnosis := ""
	if doctorTask.CompletionNotes != nil {
		diagnosis = *doctorTask.CompletionNotes
	}
	if doctorTask.AssignedAgentID != nil {
		if created, err := m.tasks.CreatedByAgent(ctx, *doctorTask.AssignedAgentID); err == nil {
			for _, t := range created {
				createdIDs = append(createdIDs, t.ID)
			}
		}
	}
	if err := m.doctor.CompleteRun(ctx, workflowID, diagnosis, createdIDs,
		doctorTask.Status == task.StatusFailed); err != nil {
		m.logger.Error("diagnostic run close failed", "run_id", run.ID, "error", err)
		return
	}
	m.logger.Info("diagnostic run closed",
		"run_id", run.ID, "tasks_created", len(createdIDs), "failed", doctorTask.Status == task.StatusFailed)
}

func (m *Monitor) interval() time.Duration {
	if m.cfg.Interval > 0 {
		return m.cfg.Interval
	}
	return time.Minute
}

func (m *Monitor) minAgentAge() time.Duration {
	if m.cfg.GuardianMinAgentAge > 0 {
		return m.cfg.GuardianMinAgentAge
	}
	return time.Minute
}

func (m *Monitor) orphanGrace() time.Duration {
	if m.cfg.OrphanGracePeriod > 0 {
		return m.cfg.OrphanGracePeriod
	}
	return 2 * time.Minute
}

func (m *Monitor) maxConcurrent() int {
	if m.cfg.MaxConcurrent > 0 {
		return m.cfg.MaxConcurrent
	}
	return 5
}

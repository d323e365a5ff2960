// Package diagnostic spawns the "workflow doctor": an agent launched when a
// workflow has stalled (no open tasks, no validated result) whose only job
// is to diagnose the stall and create tasks that unstick it.
package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// Doctor owns the stall detector and the doctor-agent lifecycle.
type Doctor struct {
	cfg       config.DiagnosticConfig
	tasks     *services.TaskService
	agents    *services.AgentService
	workflows *services.WorkflowService
	analyses  *services.AnalysisService
	results   *services.ResultService
	runs      *services.DiagnosticService
	manager   *agentmgr.Manager
	builder   *prompt.PromptBuilder
	logger    *slog.Logger
}

// NewDoctor creates the diagnostic engine.
func NewDoctor(
	cfg config.DiagnosticConfig,
	tasks *services.TaskService,
	agents *services.AgentService,
	workflows *services.WorkflowService,
	analyses *services.AnalysisService,
	results *services.ResultService,
	runs *services.DiagnosticService,
	manager *agentmgr.Manager,
	builder *prompt.PromptBuilder,
	logger *slog.Logger,
) *Doctor {
	return &Doctor{
		cfg:       cfg,
		tasks:     tasks,
		agents:    agents,
		workflows: workflows,
		analyses:  analyses,
		results:   results,
		runs:      runs,
		manager:   manager,
		builder:   builder,
		logger:    logger.With("component", "diagnostic"),
	}
}

// MaybeRun checks the stall predicate and spawns a doctor when every
// condition holds. Returns the run when one was triggered, nil otherwise.
func (d *Doctor) MaybeRun(ctx context.Context, workflowID string) (*ent.DiagnosticRun, error) {
	stats, stalled, err := d.shouldRun(ctx, workflowID)
	if err != nil || !stalled {
		return nil, err
	}

	run, err := d.runs.CreateRun(ctx, workflowID, stats)
	if err != nil {
		return nil, err
	}
	d.logger.Warn("workflow stalled, spawning doctor", "workflow_id", workflowID, "stats", stats)

	t, err := d.tasks.CreateRow(ctx, models.CreateTaskRequest{
		WorkflowID: workflowID,
		Description: "Diagnose why this workflow has stalled and create tasks to get it moving again. " +
			"No open tasks remain but no validated result exists.",
		DoneDefinition: fmt.Sprintf("Between 1 and %d new tasks created and a diagnosis summary reported.",
			d.maxTasks()),
		AgentType: string(task.AgentTypeDiagnostic),
	})
	if err != nil {
		_ = d.runs.SetStatus(ctx, run.ID, diagnosticrun.StatusFailed)
		return nil, err
	}

	promptCtx, err := d.gatherContext(ctx, workflowID)
	if err != nil {
		_ = d.runs.SetStatus(ctx, run.ID, diagnosticrun.StatusFailed)
		return nil, err
	}

	if _, err := d.manager.SpawnDiagnostic(ctx, t, func(agentID string) string {
		promptCtx.AgentID = agentID
		return d.builder.BuildDiagnosticPrompt(promptCtx)
	}); err != nil {
		_ = d.runs.SetStatus(ctx, run.ID, diagnosticrun.StatusFailed)
		return nil, err
	}

	if err := d.runs.SetStatus(ctx, run.ID, diagnosticrun.StatusRunning); err != nil {
		d.logger.Warn("failed to mark diagnostic run running", "run_id", run.ID, "error", err)
	}
	return run, nil
}

// shouldRun evaluates the five stall conditions. All must hold: the
// workflow has seen at least one task, none are open, no result validated,
// the cooldown since the last run passed, and the last task activity is old
// enough.
func (d *Doctor) shouldRun(ctx context.Context, workflowID string) (map[string]interface{}, bool, error) {
	list, err := d.tasks.ListTasks(ctx, models.TaskFilters{WorkflowID: workflowID, Limit: 1})
	if err != nil {
		return nil, false, err
	}
	if list.TotalCount == 0 {
		return nil, false, nil
	}

	open, err := d.tasks.OpenTasks(ctx, workflowID)
	if err != nil {
		return nil, false, err
	}
	if len(open) > 0 {
		return nil, false, nil
	}

	if _, err := d.results.ValidatedWorkflowResult(ctx, workflowID); err == nil {
		return nil, false, nil
	} else if !errors.Is(err, services.ErrNotFound) {
		return nil, false, err
	}

	if last, err := d.runs.LatestRun(ctx, workflowID); err == nil {
		if time.Since(last.TriggeredAt) < d.cooldown() {
			return nil, false, nil
		}
	} else if !errors.Is(err, services.ErrNotFound) {
		return nil, false, err
	}

	lastCreated, lastCompleted, err := d.tasks.LatestActivity(ctx, workflowID)
	if err != nil {
		return nil, false, err
	}
	lastActivity := lastCreated
	if lastCompleted.After(lastActivity) {
		lastActivity = lastCompleted
	}
	stuckFor := time.Since(lastActivity)
	if stuckFor < d.minStuckTime() {
		return nil, false, nil
	}

	stats := map[string]interface{}{
		"total_tasks":       list.TotalCount,
		"open_tasks":        0,
		"stuck_for_seconds": int(stuckFor.Seconds()),
	}
	return stats, true, nil
}

// gatherContext assembles the doctor prompt input: phases, recent agent
// outcomes, recent system analyses and rejected results with feedback.
func (d *Doctor) gatherContext(ctx context.Context, workflowID string) (prompt.DiagnosticPromptInput, error) {
	var in prompt.DiagnosticPromptInput

	wf, err := d.workflows.GetWorkflow(ctx, workflowID)
	if err != nil {
		return in, err
	}
	phases, err := d.workflows.Phases(ctx, workflowID)
	if err != nil {
		return in, err
	}
	in.WorkflowGoal = wf.GoalText
	in.Phases = phases
	in.MaxTasks = d.maxTasks()

	finished, err := d.agents.ListAgents(ctx, models.AgentFilters{
		WorkflowID: workflowID,
		Limit:      d.contextAgents(),
	})
	if err != nil {
		return in, err
	}
	for _, a := range finished.Agents {
		line := fmt.Sprintf("agent %s (%s) ended %s", a.ID, a.AgentType, a.Status)
		if a.TerminationReason != nil && *a.TerminationReason != "" {
			line += ": " + *a.TerminationReason
		}
		in.RecentAgents = append(in.RecentAgents, line)
	}

	analyses, err := d.analyses.RecentConductorAnalyses(ctx, d.cfg.ContextAnalyses)
	if err != nil {
		return in, err
	}
	for _, ca := range analyses {
		in.RecentAnalyses = append(in.RecentAnalyses,
			fmt.Sprintf("coherence %.2f with %d agents: %s", ca.CoherenceScore, ca.NumAgents, ca.SystemStatus))
	}

	rejected, err := d.results.RejectedWorkflowResults(ctx, workflowID, 5)
	if err != nil {
		return in, err
	}
	for _, r := range rejected {
		line := "result " + r.ID + " rejected"
		if r.ValidationFeedback != nil && *r.ValidationFeedback != "" {
			line += ": " + *r.ValidationFeedback
		}
		in.RejectedResults = append(in.RejectedResults, line)
	}

	return in, nil
}

// CompleteRun closes a diagnostic run once the doctor's task finishes,
// recording the diagnosis and the tasks it created.
func (d *Doctor) CompleteRun(ctx context.Context, workflowID, diagnosis string, createdTaskIDs []string, failed bool) error {
	run, err := d.runs.LatestRun(ctx, workflowID)
	if err != nil {
		return err
	}
	status := diagnosticrun.StatusCompleted
	if failed {
		status = diagnosticrun.StatusFailed
	}
	return d.runs.RecordOutcome(ctx, run.ID, diagnosis, createdTaskIDs, status)
}

func (d *Doctor) cooldown() time.Duration {
	if d.cfg.Cooldown > 0 {
		return d.cfg.Cooldown
	}
	return time.Minute
}

func (d *Doctor) minStuckTime() time.Duration {
	if d.cfg.MinStuckTime > 0 {
		return d.cfg.MinStuckTime
	}
	return time.Minute
}

func (d *Doctor) maxTasks() int {
	if d.cfg.MaxTasksPerRun > 0 {
		return d.cfg.MaxTasksPerRun
	}
	return 5
}

func (d *Doctor) contextAgents() int {
	if d.cfg.ContextAgents > 0 {
		return d.cfg.ContextAgents
	}
	return 15
}

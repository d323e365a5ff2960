// Package validation implements both validation tiers: per-task reviews by
// validator agents against the implementer's worktree, and workflow-level
// result validation that gates workflow completion.
package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/metrics"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
	"github.com/hephaestus-ai/hephaestus/pkg/worktree"
)

// Pipeline drives task reviews and workflow result verdicts.
type Pipeline struct {
	cfg       config.ValidationConfig
	tasks     *services.TaskService
	agents    *services.AgentService
	workflows *services.WorkflowService
	results   *services.ResultService
	manager   *agentmgr.Manager
	worktrees *worktree.Manager
	driver    *tmux.Driver
	builder   *prompt.PromptBuilder
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewPipeline creates the validation pipeline.
func NewPipeline(
	cfg config.ValidationConfig,
	tasks *services.TaskService,
	agents *services.AgentService,
	workflows *services.WorkflowService,
	results *services.ResultService,
	manager *agentmgr.Manager,
	worktrees *worktree.Manager,
	driver *tmux.Driver,
	builder *prompt.PromptBuilder,
	publisher *events.Publisher,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		tasks:     tasks,
		agents:    agents,
		workflows: workflows,
		results:   results,
		manager:   manager,
		worktrees: worktrees,
		driver:    driver,
		builder:   builder,
		publisher: publisher,
		logger:    logger.With("component", "validation"),
	}
}

func (p *Pipeline) maxIterations() int {
	if p.cfg.MaxIterations > 0 {
		return p.cfg.MaxIterations
	}
	return 10
}

// CompleteTask handles an agent's done request. Validation-enabled tasks
// whose review has not passed yet go through a validator instead of
// completing directly.
func (p *Pipeline) CompleteTask(ctx context.Context, t *ent.Task, agentID, completionNotes string) (*ent.Task, error) {
	if t.AssignedAgentID == nil || *t.AssignedAgentID != agentID {
		return nil, fmt.Errorf("%w: task %s is not assigned to agent %s", services.ErrNotAuthorized, t.ID, agentID)
	}

	if !t.ValidationEnabled || t.ReviewDone {
		done, err := p.tasks.UpdateStatusAuthorized(ctx, t.ID, agentID, task.StatusDone, "", completionNotes)
		if err != nil {
			return nil, err
		}
		p.publisher.PublishAsync(events.EventTaskCompleted, t.WorkflowID, map[string]any{
			"task_id": t.ID,
		})
		if err := p.manager.TerminateAgent(ctx, agentID, "task complete", agentmgr.TerminateOptions{}); err != nil {
			p.logger.Warn("termination after completion failed", "agent_id", agentID, "error", err)
		}
		return done, nil
	}

	return p.startReview(ctx, t, agentID)
}

// startReview moves the task into review and spawns a validator against the
// implementer's worktree.
func (p *Pipeline) startReview(ctx context.Context, t *ent.Task, implementerID string) (*ent.Task, error) {
	implementer, err := p.agents.GetAgent(ctx, implementerID)
	if err != nil {
		return nil, err
	}

	reviewing, err := p.tasks.Transition(ctx, t.ID, task.StatusUnderReview)
	if err != nil {
		return nil, err
	}

	var criteria []string
	var instructions string
	if t.PhaseID != nil {
		if phase, err := p.workflows.GetPhase(ctx, t.WorkflowID, *t.PhaseID); err == nil {
			criteria = phase.ValidationCriteria
			instructions = phase.ValidatorInstructions
		}
	}

	if _, err := p.manager.SpawnValidator(ctx, reviewing, implementer, criteria, instructions); err != nil {
		// No validator means no verdict will ever arrive; fail the task
		// rather than stranding it in review.
		p.logger.Error("validator spawn failed, failing task", "task_id", t.ID, "error", err)
		if _, ferr := p.tasks.Transition(ctx, t.ID, task.StatusFailed); ferr != nil {
			return nil, errors.Join(err, ferr)
		}
		return nil, fmt.Errorf("validator spawn failed: %w", err)
	}

	inProgress, err := p.tasks.Transition(ctx, t.ID, task.StatusValidationInProgress)
	if err != nil {
		return nil, err
	}
	p.logger.Info("task under validation", "task_id", t.ID, "iteration", t.ValidationIteration+1)
	return inProgress, nil
}

// GiveValidationReview records a validator's verdict. Pass completes the
// task and verifies its results; fail sends feedback to the implementer for
// another iteration, up to the cap.
func (p *Pipeline) GiveValidationReview(ctx context.Context, validatorID string, req models.ValidationReviewRequest) (*ent.Task, error) {
	validator, err := p.agents.GetAgent(ctx, validatorID)
	if err != nil {
		return nil, err
	}
	if validator.AgentType != agent.AgentTypeValidator {
		return nil, fmt.Errorf("%w: agent %s is not a validator", services.ErrNotAuthorized, validatorID)
	}
	if validator.TaskID == nil || *validator.TaskID != req.TaskID {
		return nil, fmt.Errorf("%w: validator %s was not spawned for task %s", services.ErrNotAuthorized, validatorID, req.TaskID)
	}
	t, err := p.tasks.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusValidationInProgress {
		return nil, fmt.Errorf("%w: task %s is %s, expected validation_in_progress",
			services.ErrInvalidState, t.ID, t.Status)
	}

	iteration := t.ValidationIteration + 1
	review, err := p.results.SaveValidationReview(ctx, t.ID, validatorID, iteration, req.ValidationPassed, req.Feedback, req.Evidence)
	if err != nil {
		return nil, err
	}

	implementerID := ""
	if t.AssignedAgentID != nil {
		implementerID = *t.AssignedAgentID
	}

	if req.ValidationPassed {
		metrics.ValidationReviews.WithLabelValues("pass").Inc()
		return p.reviewPassed(ctx, t, review, validatorID, implementerID)
	}
	metrics.ValidationReviews.WithLabelValues("fail").Inc()
	return p.reviewFailed(ctx, t, validatorID, implementerID, req.Feedback, iteration)
}

func (p *Pipeline) reviewPassed(ctx context.Context, t *ent.Task, review *ent.ValidationReview, validatorID, implementerID string) (*ent.Task, error) {
	if err := p.tasks.SetReviewDone(ctx, t.ID); err != nil {
		return nil, err
	}
	done, err := p.tasks.Transition(ctx, t.ID, task.StatusDone)
	if err != nil {
		return nil, err
	}
	if err := p.results.VerifyTaskResults(ctx, t.ID, review.ID); err != nil {
		p.logger.Warn("result verification flagging failed", "task_id", t.ID, "error", err)
	}

	if err := p.manager.TerminateAgent(ctx, validatorID, "validation passed", agentmgr.TerminateOptions{}); err != nil {
		p.logger.Warn("validator termination failed", "agent_id", validatorID, "error", err)
	}
	if implementerID != "" {
		if err := p.agents.SetKeptAliveForValidation(ctx, implementerID, false); err != nil {
			p.logger.Warn("failed to clear keep-alive", "agent_id", implementerID, "error", err)
		}
		if err := p.manager.TerminateAgent(ctx, implementerID, "task complete, validation passed", agentmgr.TerminateOptions{}); err != nil {
			p.logger.Warn("implementer termination failed", "agent_id", implementerID, "error", err)
		}
	}

	p.publisher.PublishAsync(events.EventTaskCompleted, t.WorkflowID, map[string]any{
		"task_id":   t.ID,
		"validated": true,
	})
	p.logger.Info("validation passed", "task_id", t.ID)
	return done, nil
}

func (p *Pipeline) reviewFailed(ctx context.Context, t *ent.Task, validatorID, implementerID, feedback string, iteration int) (*ent.Task, error) {
	if err := p.manager.TerminateAgent(ctx, validatorID, "validation round complete", agentmgr.TerminateOptions{}); err != nil {
		p.logger.Warn("validator termination failed", "agent_id", validatorID, "error", err)
	}

	if iteration >= p.maxIterations() {
		p.logger.Warn("validation iterations exhausted", "task_id", t.ID, "iterations", iteration)
		failed, err := p.tasks.Fail(ctx, t.ID, fmt.Sprintf("validation failed %d times", iteration))
		if err != nil {
			return nil, err
		}
		if implementerID != "" {
			if err := p.agents.SetKeptAliveForValidation(ctx, implementerID, false); err != nil {
				p.logger.Warn("failed to clear keep-alive", "agent_id", implementerID, "error", err)
			}
			if err := p.manager.TerminateAgent(ctx, implementerID, "validation iterations exhausted",
				agentmgr.TerminateOptions{}); err != nil {
				p.logger.Warn("implementer termination failed", "agent_id", implementerID, "error", err)
			}
		}
		return failed, nil
	}

	if _, err := p.tasks.RecordValidationFailure(ctx, t.ID, feedback); err != nil {
		return nil, err
	}
	if _, err := p.tasks.Transition(ctx, t.ID, task.StatusNeedsWork); err != nil {
		return nil, err
	}
	back, err := p.tasks.Transition(ctx, t.ID, task.StatusInProgress)
	if err != nil {
		return nil, err
	}

	if implementerID != "" {
		if err := p.agents.SetKeptAliveForValidation(ctx, implementerID, false); err != nil {
			p.logger.Warn("failed to clear keep-alive", "agent_id", implementerID, "error", err)
		}
		implementer, err := p.agents.GetAgent(ctx, implementerID)
		if err == nil {
			text := p.builder.BuildValidationFeedback(iteration, feedback)
			if err := p.driver.Inject(ctx, implementer.SessionName, text); err != nil {
				p.logger.Error("feedback injection failed", "agent_id", implementerID, "error", err)
			}
		}
	}
	p.logger.Info("validation failed, feedback sent", "task_id", t.ID, "iteration", iteration)
	return back, nil
}

// ReportResults stores an agent's markdown artifacts for its task. Paths
// are resolved inside the agent's worktree; content is read here so results
// survive worktree destruction.
func (p *Pipeline) ReportResults(ctx context.Context, agentID string, req models.ReportResultsRequest) ([]*ent.TaskResult, error) {
	a, err := p.agents.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	t, err := p.tasks.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	if t.AssignedAgentID == nil || *t.AssignedAgentID != agentID {
		return nil, fmt.Errorf("%w: task %s is not assigned to agent %s", services.ErrNotAuthorized, t.ID, agentID)
	}

	baseDir := a.WorktreePath
	if baseDir == "" {
		baseDir = p.worktrees.RepoPath()
	}

	saved := make([]*ent.TaskResult, 0, len(req.Results))
	for _, item := range req.Results {
		content, err := p.readMarkdown(baseDir, item.MarkdownPath)
		if err != nil {
			return nil, err
		}
		r, err := p.results.SaveTaskResult(ctx, t.ID, agentID, item.MarkdownPath, content, item.ResultType, item.Summary)
		if err != nil {
			return nil, err
		}
		saved = append(saved, r)
	}

	p.publisher.PublishAsync(events.EventResultsReported, t.WorkflowID, map[string]any{
		"task_id": t.ID,
		"count":   len(saved),
	})
	return saved, nil
}

// readMarkdown loads a result file, refusing path traversal and oversized
// content.
func (p *Pipeline) readMarkdown(baseDir, relPath string) (string, error) {
	if relPath == "" {
		return "", services.NewValidationError("markdown_path", "required")
	}
	if strings.Contains(relPath, "..") {
		return "", services.NewValidationError("markdown_path", "must not contain '..'")
	}
	full := relPath
	if !filepath.IsAbs(relPath) {
		full = filepath.Join(baseDir, relPath)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("failed to read result markdown %s: %w", relPath, err)
	}
	if len(data) > services.MaxResultBytes {
		return "", services.NewValidationError("markdown_path",
			fmt.Sprintf("result exceeds %d bytes", services.MaxResultBytes))
	}
	return string(data), nil
}

// SubmitResult accepts a candidate final workflow result. With result
// criteria configured a result validator is spawned; without, the result
// validates immediately and the workflow finishes.
func (p *Pipeline) SubmitResult(ctx context.Context, agentID string, req models.SubmitWorkflowResultRequest) (*ent.WorkflowResult, error) {
	a, err := p.agents.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	wf, err := p.workflows.GetWorkflow(ctx, req.WorkflowID)
	if err != nil {
		return nil, err
	}

	baseDir := a.WorktreePath
	if baseDir == "" {
		baseDir = p.worktrees.RepoPath()
	}
	content, err := p.readMarkdown(baseDir, req.MarkdownPath)
	if err != nil {
		return nil, err
	}

	result, err := p.results.SaveWorkflowResult(ctx, wf.ID, agentID, req.MarkdownPath, content)
	if err != nil {
		return nil, err
	}
	p.publisher.PublishAsync(events.EventResultsReported, wf.ID, map[string]any{
		"workflow_result_id": result.ID,
		"agent_id":           agentID,
	})

	if len(wf.ResultCriteria) == 0 {
		// Nothing to verify against; the submission is the verdict.
		validated, err := p.results.SetWorkflowResultVerdict(ctx, result.ID, "", true, "no result criteria configured", nil)
		if err != nil {
			return nil, err
		}
		if err := p.finalizeWorkflow(ctx, wf, validated); err != nil {
			return nil, err
		}
		return validated, nil
	}

	if _, err := p.manager.SpawnResultValidator(ctx, wf.ID, result.ID, req.MarkdownPath, wf.ResultCriteria); err != nil {
		// Result stays pending_validation; the monitor retries the spawn.
		p.logger.Error("result validator spawn failed, will retry", "result_id", result.ID, "error", err)
	}
	return result, nil
}

// SubmitResultValidation records a result-validator's verdict on a
// candidate workflow result.
func (p *Pipeline) SubmitResultValidation(ctx context.Context, validatorID string, req models.WorkflowResultReviewRequest) (*ent.WorkflowResult, error) {
	validator, err := p.agents.GetAgent(ctx, validatorID)
	if err != nil {
		return nil, err
	}
	if validator.AgentType != agent.AgentTypeResultValidator {
		return nil, fmt.Errorf("%w: agent %s is not a result validator", services.ErrNotAuthorized, validatorID)
	}

	evidence := services.EvidenceToStrings(req.Evidence)
	result, err := p.results.SetWorkflowResultVerdict(ctx, req.WorkflowResultID, validatorID, req.Validated, req.Feedback, evidence)
	if err != nil {
		return nil, err
	}

	if err := p.manager.TerminateAgent(ctx, validatorID, "result validation complete", agentmgr.TerminateOptions{}); err != nil {
		p.logger.Warn("result validator termination failed", "agent_id", validatorID, "error", err)
	}

	p.publisher.PublishAsync(events.EventResultValidationCompleted, result.WorkflowID, map[string]any{
		"workflow_result_id": result.ID,
		"validated":          req.Validated,
	})

	if req.Validated {
		wf, err := p.workflows.GetWorkflow(ctx, result.WorkflowID)
		if err != nil {
			return nil, err
		}
		if err := p.finalizeWorkflow(ctx, wf, result); err != nil {
			return nil, err
		}
	} else {
		p.logger.Info("workflow result rejected", "result_id", result.ID, "feedback", req.Feedback)
	}
	return result, nil
}

// finalizeWorkflow applies the on_result_found policy after a result
// validates: stop_all tears the swarm down and completes the workflow;
// do_nothing leaves agents running.
func (p *Pipeline) finalizeWorkflow(ctx context.Context, wf *ent.Workflow, result *ent.WorkflowResult) error {
	p.logger.Info("workflow result validated",
		"workflow_id", wf.ID, "result_id", result.ID, "policy", wf.OnResultFound)

	if wf.OnResultFound == workflow.OnResultFoundStopAll {
		if err := p.manager.TerminateAllForWorkflow(ctx, wf.ID, "workflow goal achieved"); err != nil {
			p.logger.Error("swarm teardown failed", "workflow_id", wf.ID, "error", err)
		}
		open, err := p.tasks.OpenTasks(ctx, wf.ID)
		if err != nil {
			return err
		}
		for _, t := range open {
			if _, err := p.tasks.Fail(ctx, t.ID, "workflow completed"); err != nil {
				p.logger.Warn("failed to close open task", "task_id", t.ID, "error", err)
			}
		}
		if _, err := p.workflows.Complete(ctx, wf.ID); err != nil {
			return err
		}
	}

	p.publisher.PublishAsync(events.EventWorkflowCompleted, wf.ID, map[string]any{
		"workflow_result_id": result.ID,
	})
	return nil
}

// RetryPendingResults re-spawns result validators for candidate results
// whose validator never arrived or died. Called each monitoring cycle.
func (p *Pipeline) RetryPendingResults(ctx context.Context, workflowID string) error {
	wf, err := p.workflows.GetWorkflow(ctx, workflowID)
	if err != nil {
		return err
	}
	if len(wf.ResultCriteria) == 0 {
		return nil
	}
	pending, err := p.results.PendingWorkflowResults(ctx, workflowID)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	active, err := p.agents.ActiveAgents(ctx, workflowID)
	if err != nil {
		return err
	}
	for _, a := range active {
		if a.AgentType == agent.AgentTypeResultValidator {
			return nil // one at a time
		}
	}

	oldest := pending[0]
	p.logger.Info("retrying result validation", "result_id", oldest.ID)
	if _, err := p.manager.SpawnResultValidator(ctx, workflowID, oldest.ID, oldest.MarkdownPath, wf.ResultCriteria); err != nil {
		return fmt.Errorf("result validator respawn failed: %w", err)
	}
	return nil
}

package validation

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
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

// fakeRunner answers every tmux and git invocation with success and keeps
// the injected prompt text for assertions.
type fakeRunner struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	return "", nil
}

func (r *fakeRunner) injectedTexts() []string {
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

type pipelineFixture struct {
	pipeline  *Pipeline
	manager   *agentmgr.Manager
	runner    *fakeRunner
	tasks     *services.TaskService
	agents    *services.AgentService
	workflows *services.WorkflowService
	results   *services.ResultService
	client    *ent.Client
	workflow  *ent.Workflow
	phase     *ent.Phase
	repoDir   string
}

func newPipelineFixture(t *testing.T, cfg config.ValidationConfig, criteria []string) *pipelineFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	tasks := services.NewTaskService(client)
	agents := services.NewAgentService(client)
	workflows := services.NewWorkflowService(client)
	results := services.NewResultService(client)

	runner := &fakeRunner{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	driver := tmux.NewDriver(&config.SessionConfig{TmuxBinary: "tmux", AgentCommand: "agent-cli"}, runner, logger)
	repoDir := t.TempDir()
	worktrees := worktree.NewManager(&config.WorktreeConfig{RepoPath: repoDir, Root: t.TempDir()}, runner, logger)
	builder := prompt.NewPromptBuilder()
	publisher := events.NewPublisher(db)

	manager := agentmgr.NewManager(agents, tasks, workflows, driver, worktrees, builder, publisher, logger)
	p := NewPipeline(cfg, tasks, agents, workflows, results, manager, worktrees, driver, builder, publisher, logger)

	wfBuilder := client.Workflow.Create().
		SetID(uuid.New().String()).
		SetName("pipeline test").
		SetGoalText("find the flag").
		SetOnResultFound(workflow.OnResultFoundStopAll)
	if len(criteria) > 0 {
		wfBuilder.SetResultRequired(true).SetResultCriteria(criteria)
	}
	wf, err := wfBuilder.Save(ctx)
	require.NoError(t, err)

	ph, err := client.Phase.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(wf.ID).
		SetNumber(1).
		SetName("implementation").
		SetDescription("build it").
		SetDoneDefinitions([]string{"it works"}).
		SetValidationEnabled(true).
		SetValidationCriteria([]string{"tests pass"}).
		Save(ctx)
	require.NoError(t, err)

	return &pipelineFixture{
		pipeline:  p,
		manager:   manager,
		runner:    runner,
		tasks:     tasks,
		agents:    agents,
		workflows: workflows,
		results:   results,
		client:    client,
		workflow:  wf,
		phase:     ph,
		repoDir:   repoDir,
	}
}

// implementerWithTask seeds an in-progress task owned by a working agent
// whose worktree is a real temp directory.
func (f *pipelineFixture) implementerWithTask(t *testing.T, validationEnabled bool) (*ent.Task, *ent.Agent, string) {
	t.Helper()
	ctx := context.Background()

	tk, err := f.tasks.CreateRow(ctx, models.CreateTaskRequest{
		WorkflowID:     f.workflow.ID,
		PhaseID:        f.phase.ID,
		Description:    "implement login",
		DoneDefinition: "login works",
	})
	require.NoError(t, err)
	if validationEnabled {
		require.NoError(t, f.tasks.SetValidationEnabled(ctx, tk.ID, true))
	}

	a, err := f.agents.CreateAgent(ctx, f.workflow.ID, tk.ID, agent.AgentTypePhase, "hephaestus-"+uuid.New().String()[:8])
	require.NoError(t, err)
	wt := t.TempDir()
	require.NoError(t, f.agents.SetWorktreePath(ctx, a.ID, wt))
	a, err = f.agents.SetWorking(ctx, a.ID)
	require.NoError(t, err)

	_, err = f.tasks.Assign(ctx, tk.ID, a.ID)
	require.NoError(t, err)
	tk, err = f.tasks.Transition(ctx, tk.ID, task.StatusInProgress)
	require.NoError(t, err)
	a.WorktreePath = wt
	return tk, a, wt
}

func (f *pipelineFixture) validatorFor(t *testing.T, taskID string) *ent.Agent {
	t.Helper()
	validators, err := f.agents.ListAgents(context.Background(), models.AgentFilters{
		WorkflowID: f.workflow.ID,
		AgentType:  string(agent.AgentTypeValidator),
	})
	require.NoError(t, err)
	for _, v := range validators.Agents {
		if v.TaskID != nil && *v.TaskID == taskID && v.Status == agent.StatusWorking {
			return v
		}
	}
	t.Fatalf("no working validator for task %s", taskID)
	return nil
}

func TestCompleteTaskWithoutValidation(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, nil)
	ctx := context.Background()
	tk, impl, _ := f.implementerWithTask(t, false)

	done, err := f.pipeline.CompleteTask(ctx, tk, impl.ID, "implemented and tested")
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, done.Status)
	require.NotNil(t, done.CompletionNotes)
	assert.Equal(t, "implemented and tested", *done.CompletionNotes)

	// The agent is released with the task.
	got, err := f.agents.GetAgent(ctx, impl.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusTerminated, got.Status)
}

func TestCompleteTaskRejectsWrongAgent(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, nil)
	tk, _, _ := f.implementerWithTask(t, false)

	_, err := f.pipeline.CompleteTask(context.Background(), tk, uuid.New().String(), "")
	assert.ErrorIs(t, err, services.ErrNotAuthorized)
}

func TestValidationRoundTripPass(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, nil)
	ctx := context.Background()
	tk, impl, _ := f.implementerWithTask(t, true)

	// The implementer reports a result before claiming completion.
	_, err := f.results.SaveTaskResult(ctx, tk.ID, impl.ID, "notes/login.md", "# Login", "implementation", "login built")
	require.NoError(t, err)

	reviewing, err := f.pipeline.CompleteTask(ctx, tk, impl.ID, "done I think")
	require.NoError(t, err)
	assert.Equal(t, task.StatusValidationInProgress, reviewing.Status)

	// A validator is spawned against the implementer's worktree; the
	// implementer is kept alive for it.
	validator := f.validatorFor(t, tk.ID)
	keptImpl, err := f.agents.GetAgent(ctx, impl.ID)
	require.NoError(t, err)
	assert.True(t, keptImpl.KeptAliveForValidation)
	assert.Equal(t, agent.StatusWorking, keptImpl.Status)

	done, err := f.pipeline.GiveValidationReview(ctx, validator.ID, models.ValidationReviewRequest{
		TaskID:           tk.ID,
		ValidationPassed: true,
		Feedback:         "criteria verified",
		Evidence:         map[string]any{"tests": "ok"},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, done.Status)

	// Task results flip to verified with the review recorded.
	resList, err := f.results.ListTaskResults(ctx, models.ResultFilters{TaskID: tk.ID})
	require.NoError(t, err)
	require.Len(t, resList.Results, 1)
	assert.Equal(t, taskresult.VerificationStatusVerified, resList.Results[0].VerificationStatus)
	require.NotNil(t, resList.Results[0].VerifiedByValidationID)

	// Both agents are released.
	for _, id := range []string{impl.ID, validator.ID} {
		got, err := f.agents.GetAgent(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusTerminated, got.Status)
	}
}

func TestValidationFailureFeedsBack(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, nil)
	ctx := context.Background()
	tk, impl, _ := f.implementerWithTask(t, true)

	_, err := f.pipeline.CompleteTask(ctx, tk, impl.ID, "")
	require.NoError(t, err)
	validator := f.validatorFor(t, tk.ID)

	back, err := f.pipeline.GiveValidationReview(ctx, validator.ID, models.ValidationReviewRequest{
		TaskID:           tk.ID,
		ValidationPassed: false,
		Feedback:         "login form missing CSRF token",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, back.Status)
	assert.Equal(t, 1, back.ValidationIteration)
	require.NotNil(t, back.LastValidationFeedback)
	assert.Equal(t, "login form missing CSRF token", *back.LastValidationFeedback)

	// The feedback reaches the implementer's session verbatim.
	var fed bool
	for _, text := range f.runner.injectedTexts() {
		if bytes.Contains([]byte(text), []byte("login form missing CSRF token")) {
			fed = true
		}
	}
	assert.True(t, fed, "validation feedback was not injected")

	// The validator is gone, the implementer keeps working.
	gotValidator, err := f.agents.GetAgent(ctx, validator.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusTerminated, gotValidator.Status)
	gotImpl, err := f.agents.GetAgent(ctx, impl.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, gotImpl.Status)
	assert.False(t, gotImpl.KeptAliveForValidation)
}

func TestValidationIterationCap(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{MaxIterations: 1}, nil)
	ctx := context.Background()
	tk, impl, _ := f.implementerWithTask(t, true)

	_, err := f.pipeline.CompleteTask(ctx, tk, impl.ID, "")
	require.NoError(t, err)
	validator := f.validatorFor(t, tk.ID)

	failed, err := f.pipeline.GiveValidationReview(ctx, validator.ID, models.ValidationReviewRequest{
		TaskID:           tk.ID,
		ValidationPassed: false,
		Feedback:         "still broken",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failed.Status)

	gotImpl, err := f.agents.GetAgent(ctx, impl.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusTerminated, gotImpl.Status)
}

func TestGiveValidationReviewAuthorization(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, nil)
	ctx := context.Background()
	tk, impl, _ := f.implementerWithTask(t, true)

	// A phase agent cannot deliver verdicts.
	_, err := f.pipeline.GiveValidationReview(ctx, impl.ID, models.ValidationReviewRequest{TaskID: tk.ID, ValidationPassed: true})
	assert.ErrorIs(t, err, services.ErrNotAuthorized)

	// A validator for a different task cannot either.
	other, otherImpl, _ := f.implementerWithTask(t, true)
	_, err = f.pipeline.CompleteTask(ctx, other, otherImpl.ID, "")
	require.NoError(t, err)
	otherValidator := f.validatorFor(t, other.ID)
	_, err = f.pipeline.GiveValidationReview(ctx, otherValidator.ID, models.ValidationReviewRequest{TaskID: tk.ID, ValidationPassed: true})
	assert.ErrorIs(t, err, services.ErrNotAuthorized)
}

func TestReportResultsRejectsTraversalAndOversize(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, nil)
	ctx := context.Background()
	tk, impl, wt := f.implementerWithTask(t, false)

	_, err := f.pipeline.ReportResults(ctx, impl.ID, models.ReportResultsRequest{
		TaskID: tk.ID,
		Results: []models.ReportResultItem{
			{MarkdownPath: "../outside.md", ResultType: "analysis", Summary: "escape"},
		},
	})
	assert.True(t, services.IsValidationError(err))

	big := bytes.Repeat([]byte("a"), services.MaxResultBytes+1)
	require.NoError(t, os.WriteFile(filepath.Join(wt, "big.md"), big, 0o644))
	_, err = f.pipeline.ReportResults(ctx, impl.ID, models.ReportResultsRequest{
		TaskID: tk.ID,
		Results: []models.ReportResultItem{
			{MarkdownPath: "big.md", ResultType: "analysis", Summary: "too big"},
		},
	})
	assert.True(t, services.IsValidationError(err))

	require.NoError(t, os.WriteFile(filepath.Join(wt, "ok.md"), []byte("# Findings"), 0o644))
	saved, err := f.pipeline.ReportResults(ctx, impl.ID, models.ReportResultsRequest{
		TaskID: tk.ID,
		Results: []models.ReportResultItem{
			{MarkdownPath: "ok.md", ResultType: "analysis", Summary: "findings"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "# Findings", saved[0].MarkdownContent)
}

func TestSubmitResultStopAllWithoutCriteria(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, nil)
	ctx := context.Background()

	// Three live implementers; one submits the final result.
	tk1, submitter, wt := f.implementerWithTask(t, false)
	tk2, other1, _ := f.implementerWithTask(t, false)
	tk3, other2, _ := f.implementerWithTask(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(wt, "RESULT.md"), []byte("# Flag found"), 0o644))

	result, err := f.pipeline.SubmitResult(ctx, submitter.ID, models.SubmitWorkflowResultRequest{
		WorkflowID:   f.workflow.ID,
		MarkdownPath: "RESULT.md",
	})
	require.NoError(t, err)
	assert.Equal(t, workflowresult.StatusValidated, result.Status)

	// stop_all tears everything down: agents terminated, open tasks
	// failed, workflow completed.
	for _, id := range []string{submitter.ID, other1.ID, other2.ID} {
		got, err := f.agents.GetAgent(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusTerminated, got.Status)
	}
	for _, taskID := range []string{tk1.ID, tk2.ID, tk3.ID} {
		got, err := f.tasks.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, got.Status)
	}
	wf, err := f.workflows.GetWorkflow(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCompleted, wf.Status)

	// No further results are accepted once one validated.
	_, err = f.pipeline.SubmitResult(ctx, submitter.ID, models.SubmitWorkflowResultRequest{
		WorkflowID:   f.workflow.ID,
		MarkdownPath: "RESULT.md",
	})
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestSubmitResultWithCriteriaSpawnsValidator(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{},
		[]string{"the flag matches flag{...}", "reproduce with ./exploit.sh"})
	ctx := context.Background()

	_, submitter, wt := f.implementerWithTask(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(wt, "RESULT.md"), []byte("# Candidate"), 0o644))

	result, err := f.pipeline.SubmitResult(ctx, submitter.ID, models.SubmitWorkflowResultRequest{
		WorkflowID:   f.workflow.ID,
		MarkdownPath: "RESULT.md",
	})
	require.NoError(t, err)
	assert.Equal(t, workflowresult.StatusPendingValidation, result.Status)

	validators, err := f.agents.ListAgents(ctx, models.AgentFilters{
		WorkflowID: f.workflow.ID,
		AgentType:  string(agent.AgentTypeResultValidator),
	})
	require.NoError(t, err)
	require.Len(t, validators.Agents, 1)
	rv := validators.Agents[0]
	assert.Equal(t, agent.StatusWorking, rv.Status)

	// The criteria reach the validator prompt verbatim.
	var prompted bool
	for _, text := range f.runner.injectedTexts() {
		if bytes.Contains([]byte(text), []byte("reproduce with ./exploit.sh")) {
			prompted = true
		}
	}
	assert.True(t, prompted, "result criteria missing from validator prompt")

	validated, err := f.pipeline.SubmitResultValidation(ctx, rv.ID, models.WorkflowResultReviewRequest{
		WorkflowResultID: result.ID,
		Validated:        true,
		Feedback:         "flag reproduced",
		Evidence:         map[string]any{"exit_code": 0},
	})
	require.NoError(t, err)
	assert.Equal(t, workflowresult.StatusValidated, validated.Status)

	gotRV, err := f.agents.GetAgent(ctx, rv.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusTerminated, gotRV.Status)

	wf, err := f.workflows.GetWorkflow(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusCompleted, wf.Status)
}

func TestSubmitResultValidationRejection(t *testing.T) {
	f := newPipelineFixture(t, config.ValidationConfig{}, []string{"must compile"})
	ctx := context.Background()

	_, submitter, wt := f.implementerWithTask(t, false)
	require.NoError(t, os.WriteFile(filepath.Join(wt, "RESULT.md"), []byte("# Candidate"), 0o644))

	result, err := f.pipeline.SubmitResult(ctx, submitter.ID, models.SubmitWorkflowResultRequest{
		WorkflowID:   f.workflow.ID,
		MarkdownPath: "RESULT.md",
	})
	require.NoError(t, err)

	validators, err := f.agents.ListAgents(ctx, models.AgentFilters{
		WorkflowID: f.workflow.ID,
		AgentType:  string(agent.AgentTypeResultValidator),
	})
	require.NoError(t, err)
	require.Len(t, validators.Agents, 1)

	rejected, err := f.pipeline.SubmitResultValidation(ctx, validators.Agents[0].ID, models.WorkflowResultReviewRequest{
		WorkflowResultID: result.ID,
		Validated:        false,
		Feedback:         "does not compile",
	})
	require.NoError(t, err)
	assert.Equal(t, workflowresult.StatusRejected, rejected.Status)

	// The workflow keeps going: still active, the submitter untouched.
	wf, err := f.workflows.GetWorkflow(ctx, f.workflow.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusActive, wf.Status)
	got, err := f.agents.GetAgent(ctx, submitter.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, got.Status)
}

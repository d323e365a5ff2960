// Package queue is the task engine: capacity-gated dispatch, semantic
// deduplication, priority queueing and bump-and-start.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/embedding"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/llm"
	"github.com/hephaestus-ai/hephaestus/pkg/metrics"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// Spawner launches an agent for a task. Implemented by the agent manager;
// an interface here keeps the dependency one-directional.
type Spawner interface {
	SpawnForTask(ctx context.Context, t *ent.Task) (*ent.Agent, error)
}

// Engine owns task creation and queue dispatch for all workflows.
type Engine struct {
	cfg       config.QueueConfig
	tasks     *services.TaskService
	workflows *services.WorkflowService
	agents    *services.AgentService
	analyses  *services.AnalysisService
	embedder  embedding.Embedder
	llmClient *llm.Client
	builder   *prompt.PromptBuilder
	spawner   Spawner
	publisher *events.Publisher
	logger    *slog.Logger

	// One mutex per workflow serializes placement decisions so the
	// capacity check and the dispatch it gates are atomic.
	locks   map[string]*sync.Mutex
	locksMu sync.Mutex
}

// NewEngine creates the task engine. llmClient may be nil when enrichment
// is disabled; embedder may be nil when dedup is disabled.
func NewEngine(
	cfg config.QueueConfig,
	tasks *services.TaskService,
	workflows *services.WorkflowService,
	agents *services.AgentService,
	analyses *services.AnalysisService,
	embedder embedding.Embedder,
	llmClient *llm.Client,
	builder *prompt.PromptBuilder,
	spawner Spawner,
	publisher *events.Publisher,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		cfg:       cfg,
		tasks:     tasks,
		workflows: workflows,
		agents:    agents,
		analyses:  analyses,
		embedder:  embedder,
		llmClient: llmClient,
		builder:   builder,
		spawner:   spawner,
		publisher: publisher,
		logger:    logger.With("component", "queue"),
		locks:     make(map[string]*sync.Mutex),
	}
}

func (e *Engine) workflowLock(workflowID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	mu, ok := e.locks[workflowID]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[workflowID] = mu
	}
	return mu
}

// CreateTask runs the full creation pipeline: validation, dedup, async
// enrichment and placement. The result carries a tagged status so callers
// can distinguish created / queued / duplicate without inspecting fields.
func (e *Engine) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*models.TaskCreationResult, error) {
	var phase *ent.Phase
	if req.PhaseID != "" {
		var err error
		phase, err = e.workflows.GetPhase(ctx, req.WorkflowID, req.PhaseID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return nil, services.NewValidationError("phase_id",
					fmt.Sprintf("phase %s does not belong to workflow %s", req.PhaseID, req.WorkflowID))
			}
			return nil, err
		}
	} else if req.AgentType != string(task.AgentTypeDiagnostic) {
		return nil, services.NewValidationError("phase_id", "required for non-diagnostic tasks")
	}

	// A "TICKET: <id>" reference in the description links the task to its
	// ticket even when the caller omitted ticket_id.
	if req.TicketID == "" {
		req.TicketID = prompt.ExtractTicketID(req.Description)
	}

	// Embed before creating the row so a hard embedding failure under
	// mandatory dedup leaves no orphan task behind.
	var vec []float32
	if e.dedupActive() {
		raw, err := e.embedder.Embed(ctx, req.Description)
		if err != nil {
			if e.cfg.DedupMandatory {
				return nil, fmt.Errorf("dedup is mandatory and embedding failed: %w", err)
			}
			e.logger.Warn("embedding failed, skipping dedup", "error", err)
		} else {
			vec = embedding.Normalize(raw)
		}
	}

	t, err := e.tasks.CreateRow(ctx, req)
	if err != nil {
		return nil, err
	}
	if phase != nil && phase.ValidationEnabled {
		if err := e.tasks.SetValidationEnabled(ctx, t.ID, true); err != nil {
			return nil, err
		}
		t.ValidationEnabled = true
	}

	if vec != nil {
		if err := e.tasks.SetEmbedding(ctx, t.ID, vec); err != nil {
			e.logger.Warn("failed to store task embedding", "task_id", t.ID, "error", err)
		}
		if t.PhaseID != nil {
			nearest, score, err := e.tasks.NearestInPhase(ctx, t.WorkflowID, *t.PhaseID, t.ID, vec)
			if err != nil {
				e.logger.Warn("dedup scan failed", "task_id", t.ID, "error", err)
			} else if nearest != nil && score >= e.cfg.DedupThreshold {
				dup, err := e.tasks.MarkDuplicate(ctx, t.ID, nearest.ID, score)
				if err != nil {
					return nil, err
				}
				e.logger.Info("task marked duplicate",
					"task_id", t.ID, "duplicate_of", nearest.ID, "similarity", score)
				metrics.TasksCreated.WithLabelValues(string(models.TaskDuplicate)).Inc()
				return &models.TaskCreationResult{
					Status:          models.TaskDuplicate,
					Task:            dup,
					DuplicateOfID:   nearest.ID,
					SimilarityScore: score,
				}, nil
			}
		}
	}

	if e.cfg.EnrichmentEnabled && e.llmClient != nil {
		go e.enrichAsync(t)
	}

	result, err := e.place(ctx, t)
	if err == nil {
		metrics.TasksCreated.WithLabelValues(string(result.Status)).Inc()
	}
	return result, err
}

func (e *Engine) dedupActive() bool {
	return e.cfg.DedupEnabled && e.embedder != nil
}

// place dispatches a new task under the workflow lock: spawn when capacity
// allows, queue otherwise.
func (e *Engine) place(ctx context.Context, t *ent.Task) (*models.TaskCreationResult, error) {
	mu := e.workflowLock(t.WorkflowID)
	mu.Lock()
	defer mu.Unlock()

	active, err := e.agentCount(ctx, t.WorkflowID)
	if err != nil {
		return nil, err
	}

	if active < e.cfg.MaxConcurrentAgents {
		if _, err := e.spawner.SpawnForTask(ctx, t); err != nil {
			e.logger.Error("spawn failed, queueing task instead", "task_id", t.ID, "error", err)
			// The spawner unwinds its own partial work and may already
			// have requeued the task; only enqueue if it hasn't.
			current, getErr := e.tasks.GetTask(ctx, t.ID)
			if getErr != nil {
				return nil, getErr
			}
			if current.Status == task.StatusQueued {
				return e.queuedResult(ctx, current)
			}
			return e.enqueue(ctx, t)
		}
		created, err := e.tasks.GetTask(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		e.publisher.PublishAsync(events.EventTaskCreated, t.WorkflowID, map[string]any{
			"task_id": t.ID,
		})
		return &models.TaskCreationResult{Status: models.TaskCreated, Task: created}, nil
	}
	return e.enqueue(ctx, t)
}

func (e *Engine) enqueue(ctx context.Context, t *ent.Task) (*models.TaskCreationResult, error) {
	queued, err := e.tasks.Enqueue(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	return e.queuedResult(ctx, queued)
}

// queuedResult recomputes positions for an already-queued task and builds
// the queued creation result.
func (e *Engine) queuedResult(ctx context.Context, queued *ent.Task) (*models.TaskCreationResult, error) {
	all, err := e.tasks.RecomputeQueuePositions(ctx, queued.WorkflowID)
	if err != nil {
		return nil, err
	}
	position := 0
	for _, q := range all {
		if q.ID == queued.ID {
			queued = q
			if q.QueuePosition != nil {
				position = *q.QueuePosition
			}
			break
		}
	}
	e.publisher.PublishAsync(events.EventTaskQueued, queued.WorkflowID, map[string]any{
		"task_id":        queued.ID,
		"queue_position": position,
	})
	metrics.QueueLength.WithLabelValues(queued.WorkflowID).Set(float64(len(all)))
	return &models.TaskCreationResult{
		Status:        models.TaskQueued,
		Task:          queued,
		QueuePosition: position,
	}, nil
}

func (e *Engine) agentCount(ctx context.Context, workflowID string) (int, error) {
	return e.agents.CountActive(ctx, workflowID)
}

// ProcessQueue dispatches queued tasks while capacity remains. Called after
// any agent termination and after workflow registration.
func (e *Engine) ProcessQueue(ctx context.Context, workflowID string) error {
	mu := e.workflowLock(workflowID)
	mu.Lock()
	defer mu.Unlock()

	for {
		active, err := e.agentCount(ctx, workflowID)
		if err != nil {
			return err
		}
		if active >= e.cfg.MaxConcurrentAgents {
			return nil
		}
		queued, err := e.tasks.QueuedTasks(ctx, workflowID)
		if err != nil {
			return err
		}
		if len(queued) == 0 {
			return nil
		}

		top := queued[0]
		if _, err := e.spawner.SpawnForTask(ctx, top); err != nil {
			// Leave the task queued; the next cycle retries.
			e.logger.Error("queue dispatch spawn failed", "task_id", top.ID, "error", err)
			return err
		}
		if _, err := e.tasks.RecomputeQueuePositions(ctx, workflowID); err != nil {
			return err
		}
		e.logger.Info("dispatched queued task", "task_id", top.ID, "workflow_id", workflowID)
	}
}

// BumpTaskPriority boosts a queued task and starts it immediately,
// bypassing the normal concurrency cap. The hard ceiling of
// MaxConcurrentAgents * BumpCeilingFactor still applies; at or beyond it
// the task is boosted to the queue head but not started.
func (e *Engine) BumpTaskPriority(ctx context.Context, taskID string) (*models.BumpPriorityResponse, error) {
	t, err := e.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusQueued {
		return nil, fmt.Errorf("%w: task %s is %s, only queued tasks can be bumped",
			services.ErrInvalidState, taskID, t.Status)
	}

	mu := e.workflowLock(t.WorkflowID)
	mu.Lock()
	defer mu.Unlock()

	boosted, err := e.tasks.SetPriorityBoosted(ctx, taskID)
	if err != nil {
		return nil, err
	}

	active, err := e.agentCount(ctx, t.WorkflowID)
	if err != nil {
		return nil, err
	}
	ceiling := e.cfg.MaxConcurrentAgents * e.cfg.BumpCeilingFactor
	if active >= ceiling {
		// The boost itself sticks so the task dispatches first once
		// capacity frees up; only the immediate start is refused.
		if _, err := e.tasks.RecomputeQueuePositions(ctx, t.WorkflowID); err != nil {
			return nil, err
		}
		return &models.BumpPriorityResponse{
			Task:             boosted,
			CapacityExceeded: true,
			Message: fmt.Sprintf("boosted to queue head; %d agents already running, hard ceiling is %d",
				active, ceiling),
		}, services.ErrCapacityExceeded
	}

	if _, err := e.spawner.SpawnForTask(ctx, boosted); err != nil {
		return nil, fmt.Errorf("bump spawn failed: %w", err)
	}
	if _, err := e.tasks.RecomputeQueuePositions(ctx, t.WorkflowID); err != nil {
		return nil, err
	}
	started, err := e.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	e.publisher.PublishAsync(events.EventTaskPriorityBumped, t.WorkflowID, map[string]any{
		"task_id": taskID,
	})
	return &models.BumpPriorityResponse{
		Task:    started,
		Spawned: true,
		Message: "task started immediately",
	}, nil
}

// CancelQueued removes a queued task from the queue, recording it as failed
// with reason "cancelled".
func (e *Engine) CancelQueued(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := e.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusQueued {
		return nil, fmt.Errorf("%w: task %s is %s, only queued tasks can be cancelled",
			services.ErrInvalidState, taskID, t.Status)
	}

	mu := e.workflowLock(t.WorkflowID)
	mu.Lock()
	defer mu.Unlock()

	cancelled, err := e.tasks.Fail(ctx, taskID, "cancelled")
	if err != nil {
		return nil, err
	}
	if _, err := e.tasks.RecomputeQueuePositions(ctx, t.WorkflowID); err != nil {
		return nil, err
	}
	return cancelled, nil
}

// Restart resets a done or failed task to pending, discards the previous
// agent's trajectory history so the Guardian starts clean, and places the
// task again.
func (e *Engine) Restart(ctx context.Context, taskID string) (*models.TaskCreationResult, error) {
	t, err := e.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	var priorAgentID string
	if t.AssignedAgentID != nil {
		priorAgentID = *t.AssignedAgentID
	}

	reset, err := e.tasks.Transition(ctx, taskID, task.StatusPending)
	if err != nil {
		return nil, err
	}
	if priorAgentID != "" {
		if err := e.analyses.DeleteAgentAnalyses(ctx, priorAgentID); err != nil {
			e.logger.Warn("failed to delete prior agent analyses",
				"task_id", taskID, "agent_id", priorAgentID, "error", err)
		}
	}

	return e.place(ctx, reset)
}

// enrichAsync rewrites the task description with workflow context via the
// LLM. Bounded and best-effort; the original description always survives a
// failure.
func (e *Engine) enrichAsync(t *ent.Task) {
	timeout := e.cfg.EnrichmentTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	wf, err := e.workflows.GetWorkflow(ctx, t.WorkflowID)
	if err != nil {
		e.logger.Warn("enrichment skipped, workflow lookup failed", "task_id", t.ID, "error", err)
		return
	}
	var phase *ent.Phase
	if t.PhaseID != nil {
		phase, err = e.workflows.GetPhase(ctx, t.WorkflowID, *t.PhaseID)
		if err != nil {
			e.logger.Warn("enrichment skipped, phase lookup failed", "task_id", t.ID, "error", err)
			return
		}
	}

	messages := e.builder.BuildEnrichmentMessages(wf.GoalText, phase, t.Description, t.DoneDefinition)
	var resp prompt.EnrichmentResponse
	if err := e.llmClient.CompleteStructured(ctx, "task_enrichment", messages, prompt.EnrichmentSchema, &resp); err != nil {
		e.logger.Warn("task enrichment failed", "task_id", t.ID, "error", err)
		return
	}
	if resp.Description == "" {
		return
	}
	// An enrichment that drops the ticket linkage would orphan the task
	// from its ticket; keep the original in that case.
	if ref := prompt.ExtractTicketID(t.Description); ref != "" && prompt.ExtractTicketID(resp.Description) != ref {
		e.logger.Warn("enrichment dropped ticket reference, keeping original", "task_id", t.ID)
		return
	}

	if err := e.tasks.SetDescription(ctx, t.ID, resp.Description); err != nil {
		e.logger.Warn("failed to store enriched description", "task_id", t.ID, "error", err)
		return
	}
	if e.dedupActive() {
		if raw, err := e.embedder.Embed(ctx, resp.Description); err == nil {
			if err := e.tasks.SetEmbedding(ctx, t.ID, embedding.Normalize(raw)); err != nil {
				e.logger.Warn("failed to refresh embedding after enrichment", "task_id", t.ID, "error", err)
			}
		}
	}
	e.logger.Debug("task description enriched", "task_id", t.ID)
}

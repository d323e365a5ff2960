package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// WorkflowService manages workflow and phase rows.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// EnsureWorkflow materializes the configured workflow and its phases in the
// store. Called at startup; idempotent on workflow name.
func (s *WorkflowService) EnsureWorkflow(ctx context.Context, cfg *config.WorkflowFileConfig) (*ent.Workflow, error) {
	existing, err := s.client.Workflow.Query().
		Where(workflow.Name(cfg.Name), workflow.StatusEQ(workflow.StatusActive)).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query workflow: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	onResultFound := cfg.OnResultFound
	if onResultFound == "" {
		onResultFound = string(workflow.OnResultFoundStopAll)
	}

	builder := tx.Workflow.Create().
		SetID(uuid.New().String()).
		SetName(cfg.Name).
		SetGoalText(cfg.Goal).
		SetResultRequired(cfg.ResultRequired).
		SetOnResultFound(workflow.OnResultFound(onResultFound)).
		SetTicketHumanReview(cfg.TicketHumanReview).
		SetStatus(workflow.StatusActive).
		SetCreatedAt(time.Now())

	if len(cfg.ResultCriteria) > 0 {
		builder.SetResultCriteria(cfg.ResultCriteria)
	}
	if len(cfg.Board.Columns) > 0 {
		builder.SetBoardConfig(map[string]interface{}{
			"columns":      cfg.Board.Columns,
			"ticket_types": cfg.Board.TicketTypes,
		})
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	for _, pc := range cfg.Phases {
		phaseBuilder := tx.Phase.Create().
			SetID(uuid.New().String()).
			SetWorkflowID(wf.ID).
			SetNumber(pc.Number).
			SetName(pc.Name).
			SetDescription(pc.Description).
			SetDoneDefinitions(pc.DoneDefinitions)
		if pc.AdditionalNotes != "" {
			phaseBuilder.SetAdditionalNotes(pc.AdditionalNotes)
		}
		if pc.Validation != nil {
			phaseBuilder.SetValidationEnabled(pc.Validation.Enabled)
			if len(pc.Validation.Criteria) > 0 {
				phaseBuilder.SetValidationCriteria(pc.Validation.Criteria)
			}
			if pc.Validation.ValidatorInstructions != "" {
				phaseBuilder.SetValidatorInstructions(pc.Validation.ValidatorInstructions)
			}
		}
		if _, err := phaseBuilder.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create phase %d: %w", pc.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workflow: %w", err)
	}
	return wf, nil
}

// GetWorkflow retrieves a workflow by ID.
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Get(ctx, workflowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	return wf, nil
}

// ActiveWorkflows returns all workflows still accepting work.
func (s *WorkflowService) ActiveWorkflows(ctx context.Context) ([]*ent.Workflow, error) {
	wfs, err := s.client.Workflow.Query().
		Where(workflow.StatusEQ(workflow.StatusActive)).
		Order(ent.Asc(workflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return wfs, nil
}

// GetDetail returns the workflow with its phases ordered by number.
func (s *WorkflowService) GetDetail(ctx context.Context, workflowID string) (*models.WorkflowDetail, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	phases, err := s.Phases(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	return &models.WorkflowDetail{Workflow: wf, Phases: phases}, nil
}

// Phases returns the workflow's phases ordered by number.
func (s *WorkflowService) Phases(ctx context.Context, workflowID string) ([]*ent.Phase, error) {
	phases, err := s.client.Phase.Query().
		Where(phase.WorkflowID(workflowID)).
		Order(ent.Asc(phase.FieldNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	return phases, nil
}

// GetPhase retrieves a single phase by ID and verifies workflow ownership.
func (s *WorkflowService) GetPhase(ctx context.Context, workflowID, phaseID string) (*ent.Phase, error) {
	p, err := s.client.Phase.Query().
		Where(phase.ID(phaseID), phase.WorkflowID(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}
	return p, nil
}

// Status aggregates task, agent, ticket, and result counts for a workflow.
func (s *WorkflowService) Status(ctx context.Context, workflowID string) (*models.WorkflowStatusResponse, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.client.Task.Query().
		Where(task.WorkflowID(workflowID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	byStatus := make(map[string]int)
	byPhase := make(map[string]int)
	for _, t := range tasks {
		byStatus[string(t.Status)]++
		if t.PhaseID != nil {
			byPhase[*t.PhaseID]++
		}
	}

	activeAgents, err := s.client.Agent.Query().
		Where(agent.WorkflowID(workflowID), agent.StatusIn(agent.StatusSpawning, agent.StatusWorking)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}

	openTickets, err := s.client.Ticket.Query().
		Where(ticket.WorkflowID(workflowID), ticket.Resolved(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	pendingResults, err := s.client.WorkflowResult.Query().
		Where(workflowresult.WorkflowID(workflowID),
			workflowresult.StatusEQ(workflowresult.StatusPendingValidation)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending results: %w", err)
	}

	return &models.WorkflowStatusResponse{
		Workflow:       wf,
		TasksByStatus:  byStatus,
		TasksByPhase:   byPhase,
		ActiveAgents:   activeAgents,
		OpenTickets:    openTickets,
		PendingResults: pendingResults,
	}, nil
}

// Complete marks the workflow completed. Idempotent.
func (s *WorkflowService) Complete(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if wf.Status == workflow.StatusCompleted {
		return wf, nil
	}
	updated, err := wf.Update().
		SetStatus(workflow.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete workflow: %w", err)
	}
	return updated, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
)

// DiagnosticService persists workflow-doctor runs.
type DiagnosticService struct {
	client *ent.Client
}

// NewDiagnosticService creates a new DiagnosticService
func NewDiagnosticService(client *ent.Client) *DiagnosticService {
	return &DiagnosticService{client: client}
}

// CreateRun records a new diagnostic run with the stall statistics that
// triggered it.
func (s *DiagnosticService) CreateRun(ctx context.Context, workflowID string, triggerStats map[string]interface{}) (*ent.DiagnosticRun, error) {
	builder := s.client.DiagnosticRun.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetTriggeredAt(time.Now()).
		SetStatus(diagnosticrun.StatusCreated)
	if triggerStats != nil {
		builder.SetTriggerStats(triggerStats)
	}
	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create diagnostic run: %w", err)
	}
	return run, nil
}

// LatestRun returns the newest diagnostic run for a workflow, or
// ErrNotFound.
func (s *DiagnosticService) LatestRun(ctx context.Context, workflowID string) (*ent.DiagnosticRun, error) {
	run, err := s.client.DiagnosticRun.Query().
		Where(diagnosticrun.WorkflowID(workflowID)).
		Order(ent.Desc(diagnosticrun.FieldTriggeredAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest diagnostic run: %w", err)
	}
	return run, nil
}

// SetStatus updates a run's lifecycle status.
func (s *DiagnosticService) SetStatus(ctx context.Context, runID string, status diagnosticrun.Status) error {
	err := s.client.DiagnosticRun.UpdateOneID(runID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update diagnostic run: %w", err)
	}
	return nil
}

// RecordOutcome stores the doctor's diagnosis and the tasks it created.
func (s *DiagnosticService) RecordOutcome(ctx context.Context, runID, diagnosis string, taskIDs []string, status diagnosticrun.Status) error {
	update := s.client.DiagnosticRun.UpdateOneID(runID).SetStatus(status)
	if diagnosis != "" {
		update.SetDiagnosis(diagnosis)
	}
	if taskIDs != nil {
		update.SetTasksCreatedIds(taskIDs)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record diagnostic outcome: %w", err)
	}
	return nil
}

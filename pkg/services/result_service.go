package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// MaxResultBytes caps stored markdown content.
const MaxResultBytes = 100 * 1024

// ResultService persists task-level and workflow-level results and
// validation reviews.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// validateMarkdown enforces the size cap and path traversal rules shared by
// both result kinds.
func validateMarkdown(path, content string) error {
	if path == "" {
		return NewValidationError("markdown_path", "required")
	}
	if strings.Contains(path, "..") {
		return NewValidationError("markdown_path", "must not contain '..'")
	}
	if len(content) > MaxResultBytes {
		return NewValidationError("markdown_content", fmt.Sprintf("exceeds %d byte limit", MaxResultBytes))
	}
	return nil
}

// SaveTaskResult stores one immutable task-level result.
func (s *ResultService) SaveTaskResult(ctx context.Context, taskID, agentID, markdownPath, markdownContent, resultType, summary string) (*ent.TaskResult, error) {
	if err := validateMarkdown(markdownPath, markdownContent); err != nil {
		return nil, err
	}
	if summary == "" {
		return nil, NewValidationError("summary", "required")
	}

	r, err := s.client.TaskResult.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetAgentID(agentID).
		SetMarkdownPath(markdownPath).
		SetMarkdownContent(markdownContent).
		SetResultType(taskresult.ResultType(resultType)).
		SetSummary(summary).
		SetVerificationStatus(taskresult.VerificationStatusUnverified).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save task result: %w", err)
	}
	return r, nil
}

// GetTaskResult retrieves one task result by ID.
func (s *ResultService) GetTaskResult(ctx context.Context, resultID string) (*ent.TaskResult, error) {
	r, err := s.client.TaskResult.Get(ctx, resultID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return r, nil
}

// ListTaskResults returns task results matching the filters.
func (s *ResultService) ListTaskResults(ctx context.Context, filters models.ResultFilters) (*models.ResultListResponse, error) {
	query := s.client.TaskResult.Query()
	if filters.TaskID != "" {
		query = query.Where(taskresult.TaskID(filters.TaskID))
	}
	if filters.ResultType != "" {
		query = query.Where(taskresult.ResultTypeEQ(taskresult.ResultType(filters.ResultType)))
	}
	if filters.VerificationStatus != "" {
		query = query.Where(taskresult.VerificationStatusEQ(taskresult.VerificationStatus(filters.VerificationStatus)))
	}
	if filters.WorkflowID != "" {
		query = query.Where(taskresult.HasTaskWith(task.WorkflowID(filters.WorkflowID)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	results, err := query.
		Order(ent.Desc(taskresult.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return &models.ResultListResponse{Results: results, TotalCount: total}, nil
}

// VerifyTaskResults flips all of a task's results to verified, stamped with
// the passing validation review.
func (s *ResultService) VerifyTaskResults(ctx context.Context, taskID, reviewID string) error {
	_, err := s.client.TaskResult.Update().
		Where(taskresult.TaskID(taskID)).
		SetVerificationStatus(taskresult.VerificationStatusVerified).
		SetVerifiedAt(time.Now()).
		SetVerifiedByValidationID(reviewID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify task results: %w", err)
	}
	return nil
}

// SaveValidationReview stores an immutable validator verdict for a task
// iteration.
func (s *ResultService) SaveValidationReview(ctx context.Context, taskID, validatorAgentID string, iteration int, passed bool, feedback string, evidence map[string]any) (*ent.ValidationReview, error) {
	builder := s.client.ValidationReview.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetValidatorAgentID(validatorAgentID).
		SetIteration(iteration).
		SetValidationPassed(passed).
		SetFeedback(feedback).
		SetCreatedAt(time.Now())
	if evidence != nil {
		builder.SetEvidence(evidence)
	}
	r, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save validation review: %w", err)
	}
	return r, nil
}

// ValidationReviews returns a task's reviews in iteration order.
func (s *ResultService) ValidationReviews(ctx context.Context, taskID string) ([]*ent.ValidationReview, error) {
	reviews, err := s.client.ValidationReview.Query().
		Where(validationreview.TaskID(taskID)).
		Order(ent.Asc(validationreview.FieldIteration)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list validation reviews: %w", err)
	}
	return reviews, nil
}

// SaveWorkflowResult stores a new candidate workflow result in
// pending_validation. Rejected when the workflow already has a validated
// result.
func (s *ResultService) SaveWorkflowResult(ctx context.Context, workflowID, agentID, markdownPath, markdownContent string) (*ent.WorkflowResult, error) {
	if err := validateMarkdown(markdownPath, markdownContent); err != nil {
		return nil, err
	}

	validated, err := s.ValidatedWorkflowResult(ctx, workflowID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if validated != nil {
		return nil, fmt.Errorf("%w: workflow %s already has a validated result (%s)",
			ErrInvalidState, workflowID, validated.ID)
	}

	r, err := s.client.WorkflowResult.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetAgentID(agentID).
		SetMarkdownPath(markdownPath).
		SetMarkdownContent(markdownContent).
		SetStatus(workflowresult.StatusPendingValidation).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save workflow result: %w", err)
	}
	return r, nil
}

// GetWorkflowResult retrieves one workflow result by ID.
func (s *ResultService) GetWorkflowResult(ctx context.Context, resultID string) (*ent.WorkflowResult, error) {
	r, err := s.client.WorkflowResult.Get(ctx, resultID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow result: %w", err)
	}
	return r, nil
}

// ValidatedWorkflowResult returns the workflow's validated result, or
// ErrNotFound when none exists.
func (s *ResultService) ValidatedWorkflowResult(ctx context.Context, workflowID string) (*ent.WorkflowResult, error) {
	r, err := s.client.WorkflowResult.Query().
		Where(workflowresult.WorkflowID(workflowID),
			workflowresult.StatusEQ(workflowresult.StatusValidated)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query validated result: %w", err)
	}
	return r, nil
}

// PendingWorkflowResults returns results still awaiting validation, oldest
// first so retries drain in submission order.
func (s *ResultService) PendingWorkflowResults(ctx context.Context, workflowID string) ([]*ent.WorkflowResult, error) {
	query := s.client.WorkflowResult.Query().
		Where(workflowresult.StatusEQ(workflowresult.StatusPendingValidation))
	if workflowID != "" {
		query = query.Where(workflowresult.WorkflowID(workflowID))
	}
	results, err := query.Order(ent.Asc(workflowresult.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending results: %w", err)
	}
	return results, nil
}

// RejectedWorkflowResults returns rejected results with validator feedback,
// newest first. Used for diagnostic context.
func (s *ResultService) RejectedWorkflowResults(ctx context.Context, workflowID string, limit int) ([]*ent.WorkflowResult, error) {
	if limit <= 0 {
		limit = 5
	}
	results, err := s.client.WorkflowResult.Query().
		Where(workflowresult.WorkflowID(workflowID),
			workflowresult.StatusEQ(workflowresult.StatusRejected)).
		Order(ent.Desc(workflowresult.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejected results: %w", err)
	}
	return results, nil
}

// SetWorkflowResultVerdict records a result-validator's pass or fail. The
// partial unique index backstops the single-validated-result rule under
// concurrent validators.
func (s *ResultService) SetWorkflowResultVerdict(ctx context.Context, resultID, validatorAgentID string, passed bool, feedback string, evidence []string) (*ent.WorkflowResult, error) {
	r, err := s.GetWorkflowResult(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if r.Status != workflowresult.StatusPendingValidation {
		return nil, fmt.Errorf("%w: workflow result %s is already %s", ErrInvalidState, resultID, r.Status)
	}

	status := workflowresult.StatusRejected
	if passed {
		status = workflowresult.StatusValidated
	}
	update := r.Update().SetStatus(status).SetValidatedByAgentID(validatorAgentID)
	if passed {
		update.SetValidatedAt(time.Now())
	}
	if feedback != "" {
		update.SetValidationFeedback(feedback)
	}
	if evidence != nil {
		update.SetValidationEvidence(evidence)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: another result was validated concurrently", ErrConflict)
		}
		return nil, fmt.Errorf("failed to set result verdict: %w", err)
	}
	return updated, nil
}

// EvidenceToStrings flattens structured validator evidence into the string
// list the workflow result row stores.
func EvidenceToStrings(evidence map[string]any) []string {
	if len(evidence) == 0 {
		return nil
	}
	out := make([]string, 0, len(evidence))
	for k, v := range evidence {
		b, err := json.Marshal(v)
		if err != nil {
			out = append(out, fmt.Sprintf("%s: %v", k, v))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", k, b))
	}
	return out
}

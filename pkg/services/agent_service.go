package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// placeholderAgentIDs are strings agents keep inventing instead of using
// the literal ID from their prompt. Each is rejected with a diagnostic
// message rather than a bare 401.
var placeholderAgentIDs = map[string]bool{
	"your-agent-id": true,
	"your_agent_id": true,
	"agent-id":      true,
	"agent_id":      true,
	"<agent_id>":    true,
	"<agent-id>":    true,
	"agent-uuid":    true,
	"placeholder":   true,
	"my-agent-id":   true,
	"xxx":           true,
	"example":       true,
}

// AgentService manages agent rows and agent-ID authorization.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateAgent persists a new agent row in spawning.
func (s *AgentService) CreateAgent(ctx context.Context, workflowID, taskID string, agentType agent.AgentType, sessionName string) (*ent.Agent, error) {
	if workflowID == "" {
		return nil, NewValidationError("workflow_id", "required")
	}
	if sessionName == "" {
		return nil, NewValidationError("session_name", "required")
	}

	now := time.Now()
	builder := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetAgentType(agentType).
		SetStatus(agent.StatusSpawning).
		SetSessionName(sessionName).
		SetCreatedAt(now).
		SetLastActivity(now)
	if taskID != "" {
		builder.SetTaskID(taskID)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return a, nil
}

// GetAgent retrieves an agent by ID.
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// GetBySessionName resolves an agent row from its terminal session handle.
func (s *AgentService) GetBySessionName(ctx context.Context, sessionName string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(agent.SessionName(sessionName)).
		Order(ent.Desc(agent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent by session: %w", err)
	}
	return a, nil
}

// ListAgents returns agents matching the filters.
func (s *AgentService) ListAgents(ctx context.Context, filters models.AgentFilters) (*models.AgentListResponse, error) {
	query := s.client.Agent.Query()
	if filters.WorkflowID != "" {
		query = query.Where(agent.WorkflowID(filters.WorkflowID))
	}
	if filters.Status != "" {
		query = query.Where(agent.StatusEQ(agent.Status(filters.Status)))
	}
	if filters.AgentType != "" {
		query = query.Where(agent.AgentTypeEQ(agent.AgentType(filters.AgentType)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	agents, err := query.
		Order(ent.Desc(agent.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &models.AgentListResponse{Agents: agents, TotalCount: total}, nil
}

// ActiveAgents returns agents in spawning or working for a workflow. Pass
// an empty workflowID for all workflows.
func (s *AgentService) ActiveAgents(ctx context.Context, workflowID string) ([]*ent.Agent, error) {
	query := s.client.Agent.Query().
		Where(agent.StatusIn(agent.StatusSpawning, agent.StatusWorking))
	if workflowID != "" {
		query = query.Where(agent.WorkflowID(workflowID))
	}
	agents, err := query.Order(ent.Asc(agent.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}
	return agents, nil
}

// CountActive returns the number of agents in spawning or working.
func (s *AgentService) CountActive(ctx context.Context, workflowID string) (int, error) {
	query := s.client.Agent.Query().
		Where(agent.StatusIn(agent.StatusSpawning, agent.StatusWorking))
	if workflowID != "" {
		query = query.Where(agent.WorkflowID(workflowID))
	}
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active agents: %w", err)
	}
	return count, nil
}

// SetWorking transitions spawning -> working after the initial prompt has
// been injected.
func (s *AgentService) SetWorking(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if a.Status != agent.StatusSpawning {
		return nil, fmt.Errorf("%w: agent %s is %s, not spawning", ErrInvalidState, agentID, a.Status)
	}
	updated, err := a.Update().
		SetStatus(agent.StatusWorking).
		SetLastActivity(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set agent working: %w", err)
	}
	return updated, nil
}

// Touch updates last_activity for liveness tracking.
func (s *AgentService) Touch(ctx context.Context, agentID string) error {
	err := s.client.Agent.UpdateOneID(agentID).
		SetLastActivity(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch agent: %w", err)
	}
	return nil
}

// SetWorktreePath records the worktree created for the agent.
func (s *AgentService) SetWorktreePath(ctx context.Context, agentID, path string) error {
	err := s.client.Agent.UpdateOneID(agentID).
		SetWorktreePath(path).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set worktree path: %w", err)
	}
	return nil
}

// SetKeptAliveForValidation flags the agent so the reaper leaves its
// session alone while a validator inspects its worktree.
func (s *AgentService) SetKeptAliveForValidation(ctx context.Context, agentID string, keptAlive bool) error {
	err := s.client.Agent.UpdateOneID(agentID).
		SetKeptAliveForValidation(keptAlive).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to flag agent: %w", err)
	}
	return nil
}

// MarkTerminated finalizes an agent row. Idempotent: terminating an
// already-terminal agent returns the row unchanged.
func (s *AgentService) MarkTerminated(ctx context.Context, agentID, reason string, failed bool) (*ent.Agent, error) {
	a, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if a.Status == agent.StatusTerminated || a.Status == agent.StatusFailed {
		return a, nil
	}
	status := agent.StatusTerminated
	if failed {
		status = agent.StatusFailed
	}
	update := a.Update().SetStatus(status)
	if reason != "" {
		update.SetTerminationReason(reason)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to terminate agent: %w", err)
	}
	return updated, nil
}

// Authorize resolves an inbound X-Agent-ID header to a live agent row.
// Placeholder strings get a diagnostic error listing common mistakes; the
// orchestrator's own ID ("system") is accepted for internal calls.
func (s *AgentService) Authorize(ctx context.Context, agentID string) (*ent.Agent, error) {
	trimmed := strings.TrimSpace(agentID)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: missing X-Agent-ID header", ErrNotAuthorized)
	}
	if placeholderAgentIDs[strings.ToLower(trimmed)] {
		return nil, fmt.Errorf(
			"%w: %q is a placeholder, not your agent ID. Your real ID is the UUID stated at the top of your initial prompt (\"Your agent ID is ...\"). Do not substitute values like \"your-agent-id\", \"agent_id\" or \"<agent_id>\"",
			ErrNotAuthorized, trimmed)
	}
	if _, err := uuid.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("%w: %q is not a well-formed agent ID", ErrNotAuthorized, trimmed)
	}

	a, err := s.GetAgent(ctx, trimmed)
	if err != nil {
		if err == ErrNotFound {
			return nil, fmt.Errorf("%w: no agent with ID %s", ErrNotAuthorized, trimmed)
		}
		return nil, err
	}
	if a.Status != agent.StatusWorking && a.Status != agent.StatusSpawning {
		return nil, fmt.Errorf("%w: agent %s is %s", ErrNotAuthorized, trimmed, a.Status)
	}
	return a, nil
}

// ValidateAgentID is the format-only check exposed as a tool so agents can
// verify their ID before making other calls.
func (s *AgentService) ValidateAgentID(agentID string) error {
	trimmed := strings.TrimSpace(agentID)
	if trimmed == "" {
		return NewValidationError("agent_id", "empty")
	}
	if placeholderAgentIDs[strings.ToLower(trimmed)] {
		return NewValidationError("agent_id", fmt.Sprintf("%q is a placeholder, use the UUID from your prompt", trimmed))
	}
	if _, err := uuid.Parse(trimmed); err != nil {
		return NewValidationError("agent_id", "not a well-formed UUID")
	}
	return nil
}

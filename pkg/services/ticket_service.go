package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/ent/ticketblock"
	"github.com/hephaestus-ai/hephaestus/ent/ticketcomment"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// TicketService manages ticket rows, comments and the blocking DAG.
// Approval-gate orchestration lives in the ticketing engine; this layer
// owns persistence and the DAG invariants.
type TicketService struct {
	client *ent.Client
}

// NewTicketService creates a new TicketService
func NewTicketService(client *ent.Client) *TicketService {
	return &TicketService{client: client}
}

// CreateTicket persists a new ticket in the given initial status. The
// caller (ticketing engine) decides the initial column and approval state
// from workflow config.
func (s *TicketService) CreateTicket(ctx context.Context, req models.CreateTicketRequest, initialStatus string, approvalStatus ticket.ApprovalStatus) (*ent.Ticket, error) {
	if req.WorkflowID == "" {
		return nil, NewValidationError("workflow_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.TicketType == "" {
		return nil, NewValidationError("ticket_type", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	builder := tx.Ticket.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(req.WorkflowID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetTicketType(req.TicketType).
		SetStatus(initialStatus).
		SetApprovalStatus(approvalStatus).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if req.Priority != "" {
		builder.SetPriority(ticket.Priority(req.Priority))
	}
	if req.CreatedByAgentID != "" {
		builder.SetCreatedByAgentID(req.CreatedByAgentID)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	for _, blockerID := range req.BlockedBy {
		if err := s.addBlockTx(ctx, tx, blockerID, t.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ticket: %w", err)
	}
	return t, nil
}

// GetTicket retrieves a ticket by ID.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

// GetDetail bundles a ticket with comments, blocking relations and linked
// tasks.
func (s *TicketService) GetDetail(ctx context.Context, ticketID string) (*models.TicketDetail, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	comments, err := s.client.TicketComment.Query().
		Where(ticketcomment.TicketID(ticketID)).
		Order(ent.Asc(ticketcomment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	blockedBy, err := s.blockersOf(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	blocking, err := s.blockedBy(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.client.Task.Query().
		Where(task.TicketID(ticketID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked tasks: %w", err)
	}

	return &models.TicketDetail{
		Ticket:    t,
		Comments:  comments,
		BlockedBy: blockedBy,
		Blocking:  blocking,
		Tasks:     tasks,
	}, nil
}

// ListTickets returns tickets matching the filters.
func (s *TicketService) ListTickets(ctx context.Context, filters models.TicketFilters) (*models.TicketListResponse, error) {
	query := s.client.Ticket.Query()
	if filters.WorkflowID != "" {
		query = query.Where(ticket.WorkflowID(filters.WorkflowID))
	}
	if filters.Status != "" {
		query = query.Where(ticket.Status(filters.Status))
	}
	if filters.TicketType != "" {
		query = query.Where(ticket.TicketType(filters.TicketType))
	}
	if filters.Resolved != nil {
		query = query.Where(ticket.Resolved(*filters.Resolved))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	tickets, err := query.
		Order(ent.Desc(ticket.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &models.TicketListResponse{
		Tickets:    tickets,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// ChangeStatus moves a ticket to a new column and optionally records a
// comment in the same transaction. Column validity is checked by the
// ticketing engine against the workflow's board config.
func (s *TicketService) ChangeStatus(ctx context.Context, ticketID, newStatus, comment, authorAgentID string) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	updated, err := tx.Ticket.UpdateOneID(t.ID).
		SetStatus(newStatus).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to change ticket status: %w", err)
	}

	if comment != "" {
		if err := s.addCommentTx(ctx, tx, ticketID, authorAgentID, comment); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}
	return updated, nil
}

// AddComment appends a comment to a ticket.
func (s *TicketService) AddComment(ctx context.Context, ticketID, authorAgentID, text string) (*ent.TicketComment, error) {
	if text == "" {
		return nil, NewValidationError("text", "required")
	}
	if _, err := s.GetTicket(ctx, ticketID); err != nil {
		return nil, err
	}
	builder := s.client.TicketComment.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetText(text).
		SetCreatedAt(time.Now())
	if authorAgentID != "" {
		builder.SetAuthorAgentID(authorAgentID)
	}
	c, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return c, nil
}

func (s *TicketService) addCommentTx(ctx context.Context, tx *ent.Tx, ticketID, authorAgentID, text string) error {
	builder := tx.TicketComment.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetText(text).
		SetCreatedAt(time.Now())
	if authorAgentID != "" {
		builder.SetAuthorAgentID(authorAgentID)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// AddBlock inserts a blocker edge after verifying both tickets exist in the
// same workflow and the edge does not close a cycle.
func (s *TicketService) AddBlock(ctx context.Context, blockerID, blockedID string) error {
	blocker, err := s.GetTicket(ctx, blockerID)
	if err != nil {
		return fmt.Errorf("blocker: %w", err)
	}
	blocked, err := s.GetTicket(ctx, blockedID)
	if err != nil {
		return fmt.Errorf("blocked: %w", err)
	}
	if blocker.WorkflowID != blocked.WorkflowID {
		return NewValidationError("blocker_id", "tickets belong to different workflows")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.addBlockTx(ctx, tx, blockerID, blockedID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit block edge: %w", err)
	}
	return nil
}

func (s *TicketService) addBlockTx(ctx context.Context, tx *ent.Tx, blockerID, blockedID string) error {
	if blockerID == blockedID {
		return fmt.Errorf("%w: a ticket cannot block itself", ErrConflict)
	}

	// Reject the edge if blocked already reaches blocker: adding
	// blocker -> blocked would then close a cycle.
	reaches, err := s.reachesTx(ctx, tx, blockedID, blockerID)
	if err != nil {
		return err
	}
	if reaches {
		return fmt.Errorf("%w: edge %s -> %s would create a cycle in the blocking graph", ErrConflict, blockerID, blockedID)
	}

	err = tx.TicketBlock.Create().
		SetID(uuid.New().String()).
		SetBlockerID(blockerID).
		SetBlockedID(blockedID).
		SetCreatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create block edge: %w", err)
	}
	return nil
}

// reachesTx reports whether dst is reachable from src following blocker ->
// blocked edges. BFS over the edge table; boards are small.
func (s *TicketService) reachesTx(ctx context.Context, tx *ent.Tx, src, dst string) (bool, error) {
	visited := map[string]bool{src: true}
	frontier := []string{src}
	for len(frontier) > 0 {
		edges, err := tx.TicketBlock.Query().
			Where(ticketblock.BlockerIDIn(frontier...)).
			All(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to walk blocking graph: %w", err)
		}
		frontier = frontier[:0]
		for _, e := range edges {
			if e.BlockedID == dst {
				return true, nil
			}
			if !visited[e.BlockedID] {
				visited[e.BlockedID] = true
				frontier = append(frontier, e.BlockedID)
			}
		}
	}
	return false, nil
}

// blockersOf returns the tickets directly blocking the given ticket.
func (s *TicketService) blockersOf(ctx context.Context, ticketID string) ([]*ent.Ticket, error) {
	edges, err := s.client.TicketBlock.Query().
		Where(ticketblock.BlockedID(ticketID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocker edges: %w", err)
	}
	if len(edges) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.BlockerID)
	}
	tickets, err := s.client.Ticket.Query().Where(ticket.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load blockers: %w", err)
	}
	return tickets, nil
}

// blockedBy returns the tickets the given ticket blocks.
func (s *TicketService) blockedBy(ctx context.Context, ticketID string) ([]*ent.Ticket, error) {
	edges, err := s.client.TicketBlock.Query().
		Where(ticketblock.BlockerID(ticketID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked edges: %w", err)
	}
	if len(edges) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.BlockedID)
	}
	tickets, err := s.client.Ticket.Query().Where(ticket.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked tickets: %w", err)
	}
	return tickets, nil
}

// UnresolvedBlockers returns the unresolved tickets directly blocking the
// given ticket.
func (s *TicketService) UnresolvedBlockers(ctx context.Context, ticketID string) ([]*ent.Ticket, error) {
	blockers, err := s.blockersOf(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	var unresolved []*ent.Ticket
	for _, b := range blockers {
		if !b.Resolved {
			unresolved = append(unresolved, b)
		}
	}
	return unresolved, nil
}

// Resolve marks a ticket resolved and returns the IDs of successor tickets
// that became unblocked (no remaining unresolved blocker). Fails with
// ErrInvalidState when an unresolved blocker remains.
func (s *TicketService) Resolve(ctx context.Context, ticketID, resolutionComment string) (*ent.Ticket, []string, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if t.Resolved {
		return t, nil, nil
	}

	unresolved, err := s.UnresolvedBlockers(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if len(unresolved) > 0 {
		return nil, nil, fmt.Errorf("%w: ticket %s is blocked by %d unresolved ticket(s), e.g. %s",
			ErrInvalidState, ticketID, len(unresolved), unresolved[0].ID)
	}

	updated, err := t.Update().
		SetResolved(true).
		SetResolutionComment(resolutionComment).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve ticket: %w", err)
	}

	// Successors with no other unresolved blocker are now unblocked.
	successors, err := s.blockedBy(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	var unblocked []string
	for _, succ := range successors {
		remaining, err := s.UnresolvedBlockers(ctx, succ.ID)
		if err != nil {
			return nil, nil, err
		}
		if len(remaining) == 0 {
			unblocked = append(unblocked, succ.ID)
		}
	}
	return updated, unblocked, nil
}

// SetApprovalStatus updates the human-review decision on a ticket.
func (s *TicketService) SetApprovalStatus(ctx context.Context, ticketID string, status ticket.ApprovalStatus) (*ent.Ticket, error) {
	updated, err := s.client.Ticket.UpdateOneID(ticketID).
		SetApprovalStatus(status).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set approval status: %w", err)
	}
	return updated, nil
}

// DeleteTicket removes a ticket and its edges and comments. Used when a
// human rejects a pending-review ticket.
func (s *TicketService) DeleteTicket(ctx context.Context, ticketID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.TicketBlock.Delete().
		Where(ticketblock.Or(
			ticketblock.BlockerID(ticketID),
			ticketblock.BlockedID(ticketID))).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete block edges: %w", err)
	}
	if _, err := tx.TicketComment.Delete().
		Where(ticketcomment.TicketID(ticketID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	if err := tx.Ticket.DeleteOneID(ticketID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return tx.Commit()
}

// PendingReviewCount returns the number of tickets awaiting human approval.
func (s *TicketService) PendingReviewCount(ctx context.Context, workflowID string) (int, error) {
	query := s.client.Ticket.Query().
		Where(ticket.ApprovalStatusEQ(ticket.ApprovalStatusPendingReview))
	if workflowID != "" {
		query = query.Where(ticket.WorkflowID(workflowID))
	}
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending reviews: %w", err)
	}
	return count, nil
}

// SetEmbedding stores the title+description embedding used for search.
func (s *TicketService) SetEmbedding(ctx context.Context, ticketID string, embedding []float32) error {
	err := s.client.Ticket.UpdateOneID(ticketID).
		SetTitleEmbedding(embedding).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set ticket embedding: %w", err)
	}
	return nil
}

// Graph returns the full ticket DAG for a workflow.
func (s *TicketService) Graph(ctx context.Context, workflowID string) (*models.TicketGraph, error) {
	tickets, err := s.client.Ticket.Query().
		Where(ticket.WorkflowID(workflowID)).
		Order(ent.Asc(ticket.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	var edges []models.TicketGraphEdge
	if len(ids) > 0 {
		blockEdges, err := s.client.TicketBlock.Query().
			Where(ticketblock.BlockerIDIn(ids...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list block edges: %w", err)
		}
		for _, e := range blockEdges {
			edges = append(edges, models.TicketGraphEdge{BlockerID: e.BlockerID, BlockedID: e.BlockedID})
		}
	}
	return &models.TicketGraph{Tickets: tickets, Edges: edges}, nil
}

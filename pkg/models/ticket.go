package models

import "github.com/hephaestus-ai/hephaestus/ent"

// CreateTicketRequest contains fields for creating a ticket on the board.
type CreateTicketRequest struct {
	WorkflowID       string   `json:"workflow_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	TicketType       string   `json:"ticket_type"`
	Priority         string   `json:"priority,omitempty"`
	CreatedByAgentID string   `json:"created_by_agent_id,omitempty"`
	BlockedBy        []string `json:"blocked_by,omitempty"`
}

// UpdateTicketRequest contains mutable ticket fields. Nil pointers mean
// "leave unchanged".
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

// ResolveTicketRequest closes a ticket with a resolution comment.
type ResolveTicketRequest struct {
	ResolutionComment string `json:"resolution_comment"`
}

// AddCommentRequest appends a comment to a ticket.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// AddBlockRequest records that one ticket blocks another.
type AddBlockRequest struct {
	BlockerID string `json:"blocker_id"`
}

// TicketFilters contains filtering options for listing tickets.
type TicketFilters struct {
	WorkflowID string `json:"workflow_id,omitempty"`
	Status     string `json:"status,omitempty"`
	TicketType string `json:"ticket_type,omitempty"`
	Resolved   *bool  `json:"resolved,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// TicketListResponse contains a paginated ticket list.
type TicketListResponse struct {
	Tickets    []*ent.Ticket `json:"tickets"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// TicketDetail bundles a ticket with its comments and blocking relations.
type TicketDetail struct {
	Ticket    *ent.Ticket          `json:"ticket"`
	Comments  []*ent.TicketComment `json:"comments"`
	BlockedBy []*ent.Ticket        `json:"blocked_by"`
	Blocking  []*ent.Ticket        `json:"blocking"`
	Tasks     []*ent.Task          `json:"tasks,omitempty"`
}

// SearchTicketsRequest is a hybrid semantic plus keyword search.
type SearchTicketsRequest struct {
	WorkflowID string `json:"workflow_id"`
	Query      string `json:"query"`
	Limit      int    `json:"limit,omitempty"`
}

// TicketSearchHit is one scored search result.
type TicketSearchHit struct {
	Ticket *ent.Ticket `json:"ticket"`
	Score  float64     `json:"score"`
}

// ApprovalDecisionRequest records a human approve or reject decision.
type ApprovalDecisionRequest struct {
	Comment string `json:"comment,omitempty"`
}

// TicketGraph is the dependency DAG for a workflow's board.
type TicketGraph struct {
	Tickets []*ent.Ticket      `json:"tickets"`
	Edges   []TicketGraphEdge  `json:"edges"`
}

// TicketGraphEdge is one blocker relation in the graph.
type TicketGraphEdge struct {
	BlockerID string `json:"blocker_id"`
	BlockedID string `json:"blocked_id"`
}

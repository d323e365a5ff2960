// Package ticketing is the kanban board engine: ticket lifecycle against
// the workflow's board layout, the human approval gate, the dependency DAG
// and hybrid search.
package ticketing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/embedding"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// Hybrid search weights: cosine similarity dominates, keyword overlap
// breaks semantic near-ties and catches exact identifiers.
const (
	semanticWeight = 0.7
	keywordWeight  = 0.3
)

// Engine owns the ticket board.
type Engine struct {
	cfg       config.TicketsConfig
	tickets   *services.TicketService
	workflows *services.WorkflowService
	embedder  embedding.Embedder
	publisher *events.Publisher
	broker    *ApprovalBroker
	logger    *slog.Logger
}

// NewEngine creates the ticket engine. embedder may be nil; search then
// falls back to keyword-only scoring.
func NewEngine(
	cfg config.TicketsConfig,
	tickets *services.TicketService,
	workflows *services.WorkflowService,
	embedder embedding.Embedder,
	publisher *events.Publisher,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		cfg:       cfg,
		tickets:   tickets,
		workflows: workflows,
		embedder:  embedder,
		publisher: publisher,
		broker:    NewApprovalBroker(),
		logger:    logger.With("component", "ticketing"),
	}
}

// Broker exposes the approval broker to the API layer's decision endpoints.
func (e *Engine) Broker() *ApprovalBroker {
	return e.broker
}

// boardColumns extracts the column list from the workflow's board config.
func boardColumns(wf *ent.Workflow) []string {
	return stringsFromConfig(wf.BoardConfig, "columns")
}

func boardTicketTypes(wf *ent.Workflow) []string {
	return stringsFromConfig(wf.BoardConfig, "ticket_types")
}

// stringsFromConfig reads a []string out of the board_config JSON map,
// which decodes as []interface{}.
func stringsFromConfig(cfg map[string]interface{}, key string) []string {
	raw, ok := cfg[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// CreateTicket creates a ticket on the board. When the workflow requires
// human review the call blocks until an operator approves or rejects, or
// the approval timeout passes; rejection and timeout both delete the row
// so no unapproved ticket survives.
func (e *Engine) CreateTicket(ctx context.Context, req models.CreateTicketRequest) (*ent.Ticket, error) {
	wf, err := e.workflows.GetWorkflow(ctx, req.WorkflowID)
	if err != nil {
		return nil, err
	}

	columns := boardColumns(wf)
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: workflow %s has no board configured", services.ErrInvalidState, wf.ID)
	}
	if types := boardTicketTypes(wf); len(types) > 0 && !contains(types, req.TicketType) {
		return nil, services.NewValidationError("ticket_type",
			fmt.Sprintf("%q is not one of the board's ticket types %v", req.TicketType, types))
	}
	initialStatus := columns[0]

	review := wf.TicketHumanReview || e.cfg.HumanReview
	approval := ticket.ApprovalStatusNotRequired
	if review {
		approval = ticket.ApprovalStatusPendingReview
	}

	t, err := e.tickets.CreateTicket(ctx, req, initialStatus, approval)
	if err != nil {
		return nil, err
	}
	e.embedAsync(t)

	if !review {
		return t, nil
	}

	ch, cleanup := e.broker.register(t.ID)
	defer cleanup()
	e.publisher.PublishAsync(events.EventTicketPendingReview, wf.ID, map[string]any{
		"ticket_id": t.ID,
		"title":     t.Title,
	})
	e.logger.Info("ticket awaiting human review", "ticket_id", t.ID, "title", t.Title)

	timeout := e.cfg.ApprovalTimeout
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	decision, err := e.broker.await(ctx, ch, timeout)
	if err != nil {
		// Timeout or caller gone: the unreviewed ticket must not linger.
		if delErr := e.tickets.DeleteTicket(context.WithoutCancel(ctx), t.ID); delErr != nil {
			e.logger.Error("failed to delete unreviewed ticket", "ticket_id", t.ID, "error", delErr)
		}
		if errors.Is(err, services.ErrTimeout) {
			return nil, fmt.Errorf("%w: no human decision on ticket %q within %s", services.ErrTimeout, t.Title, timeout)
		}
		return nil, err
	}

	if !decision.Approved {
		if err := e.tickets.DeleteTicket(ctx, t.ID); err != nil {
			e.logger.Error("failed to delete rejected ticket", "ticket_id", t.ID, "error", err)
		}
		e.publisher.PublishAsync(events.EventTicketRejected, wf.ID, map[string]any{
			"ticket_id": t.ID,
			"comment":   decision.Comment,
		})
		return nil, &services.RejectionError{TicketID: t.ID, Reason: decision.Comment}
	}

	approved, err := e.tickets.SetApprovalStatus(ctx, t.ID, ticket.ApprovalStatusApproved)
	if err != nil {
		return nil, err
	}
	if decision.Comment != "" {
		if _, err := e.tickets.AddComment(ctx, t.ID, "", "approved: "+decision.Comment); err != nil {
			e.logger.Warn("failed to record approval comment", "ticket_id", t.ID, "error", err)
		}
	}
	e.publisher.PublishAsync(events.EventTicketApproved, wf.ID, map[string]any{
		"ticket_id": t.ID,
	})
	return approved, nil
}

// Approve delivers a human approval to the blocked create call.
func (e *Engine) Approve(ticketID, comment string) error {
	return e.broker.Decide(ticketID, Decision{Approved: true, Comment: comment})
}

// Reject delivers a human rejection to the blocked create call.
func (e *Engine) Reject(ticketID, comment string) error {
	return e.broker.Decide(ticketID, Decision{Approved: false, Comment: comment})
}

// ChangeStatus moves a ticket to another board column.
func (e *Engine) ChangeStatus(ctx context.Context, ticketID, newStatus, comment, authorAgentID string) (*ent.Ticket, error) {
	t, err := e.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	wf, err := e.workflows.GetWorkflow(ctx, t.WorkflowID)
	if err != nil {
		return nil, err
	}
	if columns := boardColumns(wf); !contains(columns, newStatus) {
		return nil, services.NewValidationError("status",
			fmt.Sprintf("%q is not one of the board columns %v", newStatus, columns))
	}
	return e.tickets.ChangeStatus(ctx, ticketID, newStatus, comment, authorAgentID)
}

// Resolve closes a ticket once every direct blocker is resolved, and
// announces each successor the resolution unblocked.
func (e *Engine) Resolve(ctx context.Context, ticketID, resolutionComment string) (*ent.Ticket, error) {
	resolved, unblocked, err := e.tickets.Resolve(ctx, ticketID, resolutionComment)
	if err != nil {
		return nil, err
	}
	for _, id := range unblocked {
		e.publisher.PublishAsync(events.EventTicketUnblocked, resolved.WorkflowID, map[string]any{
			"ticket_id":   id,
			"resolved_by": ticketID,
		})
	}
	return resolved, nil
}

// AddBlock records a blocker edge, rejecting self-blocks and cycles.
func (e *Engine) AddBlock(ctx context.Context, blockerID, blockedID string) error {
	return e.tickets.AddBlock(ctx, blockerID, blockedID)
}

// Search ranks a workflow's tickets by a blend of semantic similarity and
// keyword overlap.
func (e *Engine) Search(ctx context.Context, req models.SearchTicketsRequest) ([]models.TicketSearchHit, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, services.NewValidationError("query", "required")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	list, err := e.tickets.ListTickets(ctx, models.TicketFilters{
		WorkflowID: req.WorkflowID,
		Limit:      1000,
	})
	if err != nil {
		return nil, err
	}

	var queryVec []float32
	if e.embedder != nil {
		raw, err := e.embedder.Embed(ctx, req.Query)
		if err != nil {
			e.logger.Warn("query embedding failed, keyword-only search", "error", err)
		} else {
			queryVec = embedding.Normalize(raw)
		}
	}
	terms := strings.Fields(strings.ToLower(req.Query))

	hits := make([]models.TicketSearchHit, 0, len(list.Tickets))
	for _, t := range list.Tickets {
		semantic := 0.0
		if queryVec != nil && len(t.TitleEmbedding) > 0 {
			semantic = services.CosineSimilarity(queryVec, t.TitleEmbedding)
		}
		keyword := keywordScore(terms, t.Title+" "+t.Description)

		score := semanticWeight*semantic + keywordWeight*keyword
		if queryVec == nil {
			score = keyword
		}
		if score <= 0 {
			continue
		}
		hits = append(hits, models.TicketSearchHit{Ticket: t, Score: score})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// BM25 term-frequency parameters: k1 controls how fast repeated mentions
// saturate, b how hard long texts are discounted against the pivot length.
const (
	bm25K1    = 1.2
	bm25B     = 0.75
	bm25Pivot = 50.0 // words; a typical ticket title plus description
)

// keywordScore is a BM25-style per-term score averaged over the query
// terms, so it stays in [0, 1). Each term contributes tf/(tf + k1*norm):
// the first mention counts most, repeats saturate, and matches buried in
// long texts are worth less than matches in short ones.
func keywordScore(terms []string, text string) float64 {
	if len(terms) == 0 {
		return 0
	}
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	norm := 1 - bm25B + bm25B*float64(len(words))/bm25Pivot

	var total float64
	for _, term := range terms {
		var tf float64
		for _, w := range words {
			if strings.Contains(w, term) {
				tf++
			}
		}
		if tf > 0 {
			total += tf / (tf + bm25K1*norm)
		}
	}
	return total / float64(len(terms))
}

// embedAsync stores the ticket's search embedding on a best-effort basis.
func (e *Engine) embedAsync(t *ent.Ticket) {
	if e.embedder == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		raw, err := e.embedder.Embed(ctx, t.Title+"\n"+t.Description)
		if err != nil {
			e.logger.Warn("ticket embedding failed", "ticket_id", t.ID, "error", err)
			return
		}
		if err := e.tickets.SetEmbedding(ctx, t.ID, embedding.Normalize(raw)); err != nil {
			e.logger.Warn("failed to store ticket embedding", "ticket_id", t.ID, "error", err)
		}
	}()
}

// TicketContext renders the ticket summary block injected into agent
// prompts for ticketed tasks.
func (e *Engine) TicketContext(ctx context.Context, ticketID string) (string, error) {
	detail, err := e.tickets.GetDetail(ctx, ticketID)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Ticket %s [%s/%s]: %s\n%s\n",
		detail.Ticket.ID, detail.Ticket.TicketType, detail.Ticket.Status,
		detail.Ticket.Title, detail.Ticket.Description)
	if len(detail.BlockedBy) > 0 {
		sb.WriteString("Blocked by:\n")
		for _, b := range detail.BlockedBy {
			fmt.Fprintf(&sb, "- %s (%s, resolved=%t)\n", b.ID, b.Title, b.Resolved)
		}
	}
	for _, c := range detail.Comments {
		fmt.Fprintf(&sb, "Comment: %s\n", c.Text)
	}
	return sb.String(), nil
}

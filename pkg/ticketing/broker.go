package ticketing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// Decision is one human approve/reject verdict.
type Decision struct {
	Approved bool
	Comment  string
}

// ApprovalBroker connects a blocking create_ticket call with the human
// decision arriving on a different HTTP request. One waiter per ticket.
type ApprovalBroker struct {
	mu      sync.Mutex
	waiters map[string]chan Decision
}

// NewApprovalBroker creates an ApprovalBroker.
func NewApprovalBroker() *ApprovalBroker {
	return &ApprovalBroker{waiters: make(map[string]chan Decision)}
}

// register announces a ticket awaiting decision. The returned cleanup must
// run when the wait ends for any reason.
func (b *ApprovalBroker) register(ticketID string) (<-chan Decision, func()) {
	ch := make(chan Decision, 1)
	b.mu.Lock()
	b.waiters[ticketID] = ch
	b.mu.Unlock()
	return ch, func() {
		b.mu.Lock()
		delete(b.waiters, ticketID)
		b.mu.Unlock()
	}
}

// Decide delivers a human verdict to the waiting create call. Returns
// ErrNotFound when no create is waiting on the ticket (already decided,
// timed out, or never gated).
func (b *ApprovalBroker) Decide(ticketID string, d Decision) error {
	b.mu.Lock()
	ch, ok := b.waiters[ticketID]
	if ok {
		delete(b.waiters, ticketID)
	}
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: no pending approval for ticket %s", services.ErrNotFound, ticketID)
	}
	ch <- d
	return nil
}

// await blocks until a decision, the timeout, or context cancellation.
func (b *ApprovalBroker) await(ctx context.Context, ch <-chan Decision, timeout time.Duration) (Decision, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case d := <-ch:
		return d, nil
	case <-timer.C:
		return Decision{}, services.ErrTimeout
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}
}

// PendingCount returns the number of creates currently blocked on review.
func (b *ApprovalBroker) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.waiters)
}

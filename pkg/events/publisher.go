package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyPayloadLimit stays under PostgreSQL's 8000-byte NOTIFY payload cap
// with headroom for the envelope.
const notifyPayloadLimit = 7500

// Publisher broadcasts orchestrator events via PostgreSQL NOTIFY. Events
// are transient; publishing failures are logged by callers, never fatal to
// the operation that produced them.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the shared connection pool.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish broadcasts one event to all listening processes.
func (p *Publisher) Publish(ctx context.Context, eventType, workflowID string, payload map[string]any) error {
	event := Event{
		Type:       eventType,
		WorkflowID: workflowID,
		Payload:    payload,
		Timestamp:  time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
	}
	if len(data) > notifyPayloadLimit {
		data, err = truncatePayload(event)
		if err != nil {
			return err
		}
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", EventsChannel, string(data)); err != nil {
		return fmt.Errorf("pg_notify failed for %s: %w", eventType, err)
	}
	return nil
}

// PublishAsync publishes on a best-effort basis, logging failure instead of
// returning it. Used from paths where event loss is acceptable but blocking
// the caller is not.
func (p *Publisher) PublishAsync(eventType, workflowID string, payload map[string]any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Publish(ctx, eventType, workflowID, payload); err != nil {
			slog.Warn("event publish failed", "event_type", eventType, "error", err)
		}
	}()
}

// truncatePayload drops the payload body when the envelope exceeds the
// NOTIFY limit; the type and workflow ID still reach clients, which reload
// detail via REST.
func truncatePayload(event Event) ([]byte, error) {
	event.Payload = map[string]any{"truncated": true}
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal truncated event: %w", err)
	}
	return data, nil
}

// Package events provides real-time event delivery to UI clients via
// WebSocket, distributed across processes with PostgreSQL NOTIFY/LISTEN.
//
// All events are transient: they describe state changes whose source of
// truth is the store, so a reconnecting client reloads via REST instead of
// replaying missed events.
package events

import "time"

// EventsChannel is the single NOTIFY channel all orchestrator events flow
// through.
const EventsChannel = "hephaestus_events"

// Event types broadcast to UI clients.
const (
	EventTaskQueued                = "task_queued"
	EventTaskCreated               = "task_created"
	EventTaskCompleted             = "task_completed"
	EventTaskPriorityBumped        = "task_priority_bumped"
	EventAgentCreated              = "agent_created"
	EventAgentStatusChanged        = "agent_status_changed"
	EventTicketPendingReview       = "ticket_pending_review"
	EventTicketApproved            = "ticket_approved"
	EventTicketRejected            = "ticket_rejected"
	EventTicketDeleted             = "ticket_deleted"
	EventTicketUnblocked           = "ticket_unblocked"
	EventResultsReported           = "results_reported"
	EventResultValidationCompleted = "result_validation_completed"
	EventWorkflowCompleted         = "workflow_completed"
)

// Event is the envelope every broadcast carries.
type Event struct {
	Type       string         `json:"type"`
	WorkflowID string         `json:"workflow_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

package models

import (
	"github.com/hephaestus-ai/hephaestus/ent"
)

// CreateTaskRequest contains fields for creating a new task.
type CreateTaskRequest struct {
	WorkflowID       string `json:"workflow_id"`
	PhaseID          string `json:"phase_id,omitempty"`
	TicketID         string `json:"ticket_id,omitempty"`
	ParentTaskID     string `json:"parent_task_id,omitempty"`
	CreatedByAgentID string `json:"created_by_agent_id,omitempty"`
	AgentType        string `json:"agent_type,omitempty"`
	Description      string `json:"description"`
	DoneDefinition   string `json:"done_definition"`
	Priority         string `json:"priority,omitempty"`
}

// TaskCreationStatus tags the outcome of a create-task call. Callers branch
// on the tag instead of parsing error strings.
type TaskCreationStatus string

const (
	// TaskCreated means an agent slot was free and the task went straight
	// to an agent.
	TaskCreated TaskCreationStatus = "created"
	// TaskQueued means the task was accepted and placed at a queue position.
	TaskQueued TaskCreationStatus = "queued"
	// TaskDuplicate means a sufficiently similar open task already exists.
	TaskDuplicate TaskCreationStatus = "duplicate"
	// TaskRejected means the task was refused outright (bad phase, closed
	// workflow, invalid fields).
	TaskRejected TaskCreationStatus = "rejected"
)

// TaskCreationResult is the tagged outcome of task creation.
type TaskCreationResult struct {
	Status          TaskCreationStatus `json:"status"`
	Task            *ent.Task          `json:"task,omitempty"`
	DuplicateOfID   string             `json:"duplicate_of_task_id,omitempty"`
	SimilarityScore float64            `json:"similarity_score,omitempty"`
	QueuePosition   int                `json:"queue_position,omitempty"`
	Reason          string             `json:"reason,omitempty"`
}

// TaskFilters contains filtering options for listing tasks.
type TaskFilters struct {
	WorkflowID string `json:"workflow_id,omitempty"`
	PhaseID    string `json:"phase_id,omitempty"`
	Status     string `json:"status,omitempty"`
	AgentType  string `json:"agent_type,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// TaskListResponse contains a paginated task list.
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// UpdateTaskStatusRequest carries a requested task state transition.
type UpdateTaskStatusRequest struct {
	Status          string `json:"status"`
	FailureReason   string `json:"failure_reason,omitempty"`
	CompletionNotes string `json:"completion_notes,omitempty"`
}

// QueueStatusResponse summarizes queue and agent capacity.
type QueueStatusResponse struct {
	ActiveAgents    int         `json:"active_agents"`
	MaxAgents       int         `json:"max_agents"`
	SlotsFree       int         `json:"slots_free"`
	QueuedTasks     []*ent.Task `json:"queued_tasks"`
	QueueLength     int         `json:"queue_length"`
	PendingApproval int         `json:"pending_approval_tickets"`
}

// BumpPriorityResponse reports the bump outcome. CapacityExceeded is set
// when the bump would spawn past the hard agent ceiling.
type BumpPriorityResponse struct {
	Task             *ent.Task `json:"task,omitempty"`
	Spawned          bool      `json:"spawned"`
	CapacityExceeded bool      `json:"capacity_exceeded"`
	Message          string    `json:"message,omitempty"`
}

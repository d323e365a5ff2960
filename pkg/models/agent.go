package models

import "github.com/hephaestus-ai/hephaestus/ent"

// AgentListResponse contains active and recently terminated agents.
type AgentListResponse struct {
	Agents     []*ent.Agent `json:"agents"`
	TotalCount int          `json:"total_count"`
}

// AgentFilters contains filtering options for listing agents.
type AgentFilters struct {
	WorkflowID string `json:"workflow_id,omitempty"`
	Status     string `json:"status,omitempty"`
	AgentType  string `json:"agent_type,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// TerminateAgentRequest carries the operator- or system-supplied reason.
type TerminateAgentRequest struct {
	Reason string `json:"reason"`
}

// AgentStatusUpdate is an agent's self-reported liveness ping.
type AgentStatusUpdate struct {
	Status string `json:"status,omitempty"`
	Note   string `json:"note,omitempty"`
}

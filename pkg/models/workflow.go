package models

import "github.com/hephaestus-ai/hephaestus/ent"

// WorkflowDetail bundles a workflow with its phases.
type WorkflowDetail struct {
	Workflow *ent.Workflow `json:"workflow"`
	Phases   []*ent.Phase  `json:"phases"`
}

// WorkflowStatusResponse summarizes progress across phases.
type WorkflowStatusResponse struct {
	Workflow       *ent.Workflow  `json:"workflow"`
	TasksByStatus  map[string]int `json:"tasks_by_status"`
	TasksByPhase   map[string]int `json:"tasks_by_phase"`
	ActiveAgents   int            `json:"active_agents"`
	OpenTickets    int            `json:"open_tickets"`
	PendingResults int            `json:"pending_results"`
}

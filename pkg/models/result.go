package models

import "github.com/hephaestus-ai/hephaestus/ent"

// ReportResultsRequest contains a batch of markdown results reported by an
// agent at task completion.
type ReportResultsRequest struct {
	TaskID  string             `json:"task_id"`
	Results []ReportResultItem `json:"results"`
}

// ReportResultItem is one markdown artifact within a report.
type ReportResultItem struct {
	MarkdownPath string `json:"markdown_path"`
	ResultType   string `json:"result_type"`
	Summary      string `json:"summary"`
}

// SubmitWorkflowResultRequest submits a candidate final result for the
// workflow goal.
type SubmitWorkflowResultRequest struct {
	WorkflowID   string `json:"workflow_id"`
	MarkdownPath string `json:"markdown_path"`
}

// ResultListResponse contains task results, optionally filtered by type or
// verification status.
type ResultListResponse struct {
	Results    []*ent.TaskResult `json:"results"`
	TotalCount int               `json:"total_count"`
}

// ResultFilters contains filtering options for listing results.
type ResultFilters struct {
	WorkflowID         string `json:"workflow_id,omitempty"`
	TaskID             string `json:"task_id,omitempty"`
	ResultType         string `json:"result_type,omitempty"`
	VerificationStatus string `json:"verification_status,omitempty"`
	Limit              int    `json:"limit,omitempty"`
	Offset             int    `json:"offset,omitempty"`
}

// ValidationReviewRequest is a validator agent's verdict on a task.
type ValidationReviewRequest struct {
	TaskID           string         `json:"task_id"`
	ValidationPassed bool           `json:"validation_passed"`
	Feedback         string         `json:"feedback"`
	Evidence         map[string]any `json:"evidence,omitempty"`
}

// WorkflowResultReviewRequest is a result-validator's verdict on a
// candidate workflow result.
type WorkflowResultReviewRequest struct {
	WorkflowResultID string         `json:"workflow_result_id"`
	Validated        bool           `json:"validated"`
	Feedback         string         `json:"feedback"`
	Evidence         map[string]any `json:"evidence,omitempty"`
}

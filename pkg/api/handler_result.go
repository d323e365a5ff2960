package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// reportResultsHandler handles POST /api/v1/agent/results.
// The markdown files are read from the agent's worktree at report time so
// their content survives worktree destruction.
func (s *Server) reportResultsHandler(c *echo.Context) error {
	var req models.ReportResultsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}
	if len(req.Results) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "results must not be empty")
	}

	saved, err := s.pipeline.ReportResults(c.Request().Context(), currentAgent(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, &models.ResultListResponse{
		Results:    saved,
		TotalCount: len(saved),
	})
}

// giveValidationReviewHandler handles POST /api/v1/agent/validation-reviews.
// Only the validator spawned for the task may call this.
func (s *Server) giveValidationReviewHandler(c *echo.Context) error {
	var req models.ValidationReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}

	t, err := s.pipeline.GiveValidationReview(c.Request().Context(), currentAgent(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// submitResultHandler handles POST /api/v1/agent/workflow-results.
func (s *Server) submitResultHandler(c *echo.Context) error {
	var req models.SubmitWorkflowResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.MarkdownPath == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "markdown_path is required")
	}

	result, err := s.pipeline.SubmitResult(c.Request().Context(), currentAgent(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, result)
}

// submitResultValidationHandler handles
// POST /api/v1/agent/workflow-results/validation.
func (s *Server) submitResultValidationHandler(c *echo.Context) error {
	var req models.WorkflowResultReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.WorkflowResultID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow_result_id is required")
	}

	result, err := s.pipeline.SubmitResultValidation(c.Request().Context(), currentAgent(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// listResultsHandler handles GET /api/v1/results.
func (s *Server) listResultsHandler(c *echo.Context) error {
	filters := models.ResultFilters{
		WorkflowID:         c.QueryParam("workflow_id"),
		TaskID:             c.QueryParam("task_id"),
		ResultType:         c.QueryParam("result_type"),
		VerificationStatus: c.QueryParam("verification_status"),
	}
	filters.Limit = intQueryParam(c, "limit", 50)
	filters.Offset = intQueryParam(c, "offset", 0)

	result, err := s.results.ListTaskResults(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// resultContentHandler handles GET /api/v1/results/:id/content.
// Serves the stored markdown, not the (possibly destroyed) worktree file.
func (s *Server) resultContentHandler(c *echo.Context) error {
	r, err := s.results.GetTaskResult(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(r.MarkdownContent))
}

// resultValidationHandler handles GET /api/v1/results/:id/validation.
// Returns the validation reviews for the result's task, newest first.
func (s *Server) resultValidationHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	r, err := s.results.GetTaskResult(ctx, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	reviews, err := s.results.ValidationReviews(ctx, r.TaskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// listWorkflowResultsHandler handles GET /api/v1/workflow-results.
func (s *Server) listWorkflowResultsHandler(c *echo.Context) error {
	workflowID := c.QueryParam("workflow_id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow_id is required")
	}
	ctx := c.Request().Context()

	pending, err := s.results.PendingWorkflowResults(ctx, workflowID)
	if err != nil {
		return mapServiceError(err)
	}
	rejected, err := s.results.RejectedWorkflowResults(ctx, workflowID, 20)
	if err != nil {
		return mapServiceError(err)
	}
	resp := map[string]any{
		"pending":  pending,
		"rejected": rejected,
	}
	if validated, err := s.results.ValidatedWorkflowResult(ctx, workflowID); err == nil {
		resp["validated"] = validated
	}
	return c.JSON(http.StatusOK, resp)
}

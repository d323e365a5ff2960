package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listWorkflowsHandler handles GET /api/v1/workflows.
func (s *Server) listWorkflowsHandler(c *echo.Context) error {
	workflows, err := s.workflows.ActiveWorkflows(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, workflows)
}

// workflowStatusHandler handles GET /api/v1/workflows/:id/status.
func (s *Server) workflowStatusHandler(c *echo.Context) error {
	workflowID := c.Param("id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow id is required")
	}
	status, err := s.workflows.Status(c.Request().Context(), workflowID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

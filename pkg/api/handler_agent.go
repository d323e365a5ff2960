package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	filters := models.AgentFilters{
		WorkflowID: c.QueryParam("workflow_id"),
		Status:     c.QueryParam("status"),
		AgentType:  c.QueryParam("agent_type"),
	}
	filters.Limit = intQueryParam(c, "limit", 50)
	filters.Offset = intQueryParam(c, "offset", 0)

	result, err := s.agents.ListAgents(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// terminateAgentHandler handles POST /api/v1/agents/:id/terminate.
// External termination fails the agent's in-progress task.
func (s *Server) terminateAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	var req models.TerminateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reason := req.Reason
	if reason == "" {
		reason = "terminated by operator"
	}

	err := s.manager.TerminateAgent(c.Request().Context(), agentID, reason,
		agentmgr.TerminateOptions{FailTask: true})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"agent_id": agentID,
		"status":   "terminated",
	})
}

// validateAgentIDHandler handles GET /api/v1/agents/:id/validate.
// Format check only; used by agents to verify they substituted their real
// ID for the prompt placeholder.
func (s *Server) validateAgentIDHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if err := s.agents.ValidateAgentID(agentID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"agent_id": agentID,
		"valid":    true,
	})
}

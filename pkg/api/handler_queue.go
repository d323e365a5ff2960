package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/pkg/models"
)

// queueStatusHandler handles GET /api/v1/queue_status.
func (s *Server) queueStatusHandler(c *echo.Context) error {
	workflowID := c.QueryParam("workflow_id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow_id is required")
	}
	ctx := c.Request().Context()

	active, err := s.agents.CountActive(ctx, workflowID)
	if err != nil {
		return mapServiceError(err)
	}
	queued, err := s.tasks.QueuedTasks(ctx, workflowID)
	if err != nil {
		return mapServiceError(err)
	}
	pending, err := s.tickets.PendingReviewCount(ctx, workflowID)
	if err != nil {
		return mapServiceError(err)
	}

	maxAgents := s.cfg.Queue.MaxConcurrentAgents
	slotsFree := maxAgents - active
	if slotsFree < 0 {
		slotsFree = 0 // bumped tasks may push active past the limit
	}
	return c.JSON(http.StatusOK, &models.QueueStatusResponse{
		ActiveAgents:    active,
		MaxAgents:       maxAgents,
		SlotsFree:       slotsFree,
		QueuedTasks:     queued,
		QueueLength:     len(queued),
		PendingApproval: pending,
	})
}

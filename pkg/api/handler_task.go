package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// createTaskHandler handles POST /api/v1/agent/tasks.
// Returns a tagged creation outcome; a refused task is a "rejected" result,
// not a transport error.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	req.CreatedByAgentID = currentAgent(c).ID

	result, err := s.queue.CreateTask(c.Request().Context(), req)
	if err != nil {
		if services.IsValidationError(err) {
			return c.JSON(http.StatusOK, &models.TaskCreationResult{
				Status: models.TaskRejected,
				Reason: err.Error(),
			})
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, result)
}

// updateTaskStatusHandler handles POST /api/v1/agent/tasks/:id/status.
// Agents may report in_progress, done, or failed. A done report on a task
// with validation enabled starts the review pipeline instead of completing
// the task directly.
func (s *Server) updateTaskStatusHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}
	var req models.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	agent := currentAgent(c)
	ctx := c.Request().Context()

	switch task.Status(req.Status) {
	case task.StatusDone:
		t, err := s.tasks.GetTask(ctx, taskID)
		if err != nil {
			return mapServiceError(err)
		}
		updated, err := s.pipeline.CompleteTask(ctx, t, agent.ID, req.CompletionNotes)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, updated)
	case task.StatusFailed, task.StatusInProgress:
		updated, err := s.tasks.UpdateStatusAuthorized(ctx, taskID, agent.ID,
			task.Status(req.Status), req.FailureReason, req.CompletionNotes)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, updated)
	default:
		return echo.NewHTTPError(http.StatusBadRequest,
			"status must be in_progress, done, or failed")
	}
}

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	filters := models.TaskFilters{
		WorkflowID: c.QueryParam("workflow_id"),
		PhaseID:    c.QueryParam("phase_id"),
		Status:     c.QueryParam("status"),
		AgentType:  c.QueryParam("agent_type"),
	}
	filters.Limit = intQueryParam(c, "limit", 50)
	filters.Offset = intQueryParam(c, "offset", 0)

	result, err := s.tasks.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	t, err := s.tasks.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// bumpTaskPriorityHandler handles POST /api/v1/tasks/:id/bump.
// The priority boost always sticks; the response reports whether an agent
// was started immediately or the hard capacity ceiling refused the start.
func (s *Server) bumpTaskPriorityHandler(c *echo.Context) error {
	resp, err := s.queue.BumpTaskPriority(c.Request().Context(), c.Param("id"))
	if err != nil {
		if resp != nil && resp.CapacityExceeded {
			return c.JSON(http.StatusTooManyRequests, resp)
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// cancelQueuedTaskHandler handles POST /api/v1/tasks/:id/cancel.
func (s *Server) cancelQueuedTaskHandler(c *echo.Context) error {
	t, err := s.queue.CancelQueued(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// restartTaskHandler handles POST /api/v1/tasks/:id/restart.
func (s *Server) restartTaskHandler(c *echo.Context) error {
	result, err := s.queue.Restart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

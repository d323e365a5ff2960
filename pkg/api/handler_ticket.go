package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// ChangeTicketStatusRequest is the body for ticket column moves.
type ChangeTicketStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// createTicketHandler handles POST /api/v1/agent/tickets.
// With human review enabled this call blocks until a reviewer decides or
// the approval window times out. A rejection is a structured 422 so the
// agent can read the reviewer's reason.
func (s *Server) createTicketHandler(c *echo.Context) error {
	var req models.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	req.CreatedByAgentID = currentAgent(c).ID

	t, err := s.ticketing.CreateTicket(c.Request().Context(), req)
	if err != nil {
		var rejErr *services.RejectionError
		if errors.As(err, &rejErr) {
			return c.JSON(http.StatusUnprocessableEntity, &RejectionResponse{
				TicketID: rejErr.TicketID,
				Rejected: true,
				Reason:   rejErr.Reason,
			})
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, t)
}

// changeTicketStatusHandler handles POST /api/v1/agent/tickets/:id/status.
func (s *Server) changeTicketStatusHandler(c *echo.Context) error {
	var req ChangeTicketStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	t, err := s.ticketing.ChangeStatus(c.Request().Context(), c.Param("id"),
		req.Status, req.Comment, currentAgent(c).ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// addTicketCommentHandler handles POST /api/v1/agent/tickets/:id/comments.
func (s *Server) addTicketCommentHandler(c *echo.Context) error {
	var req models.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	comment, err := s.tickets.AddComment(c.Request().Context(), c.Param("id"),
		currentAgent(c).ID, req.Text)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// resolveTicketHandler handles POST /api/v1/agent/tickets/:id/resolve.
func (s *Server) resolveTicketHandler(c *echo.Context) error {
	var req models.ResolveTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t, err := s.ticketing.Resolve(c.Request().Context(), c.Param("id"), req.ResolutionComment)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// addTicketBlockHandler handles POST /api/v1/agent/tickets/:id/blocks.
// The :id ticket is blocked by the blocker named in the body. Cycles are
// rejected with 409.
func (s *Server) addTicketBlockHandler(c *echo.Context) error {
	var req models.AddBlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.BlockerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "blocker_id is required")
	}
	if err := s.ticketing.AddBlock(c.Request().Context(), req.BlockerID, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"blocker_id": req.BlockerID,
		"blocked_id": c.Param("id"),
	})
}

// searchTicketsHandler handles POST /api/v1/agent/tickets/search.
func (s *Server) searchTicketsHandler(c *echo.Context) error {
	var req models.SearchTicketsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	hits, err := s.ticketing.Search(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, hits)
}

// listTicketsHandler handles GET /api/v1/tickets.
func (s *Server) listTicketsHandler(c *echo.Context) error {
	filters := models.TicketFilters{
		WorkflowID: c.QueryParam("workflow_id"),
		Status:     c.QueryParam("status"),
		TicketType: c.QueryParam("ticket_type"),
	}
	if v := c.QueryParam("resolved"); v != "" {
		resolved, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid resolved: must be true or false")
		}
		filters.Resolved = &resolved
	}
	filters.Limit = intQueryParam(c, "limit", 50)
	filters.Offset = intQueryParam(c, "offset", 0)

	result, err := s.tickets.ListTickets(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getTicketHandler handles GET /api/v1/tickets/:id.
func (s *Server) getTicketHandler(c *echo.Context) error {
	detail, err := s.tickets.GetDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// ticketGraphHandler handles GET /api/v1/tickets/graph.
func (s *Server) ticketGraphHandler(c *echo.Context) error {
	workflowID := c.QueryParam("workflow_id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow_id is required")
	}
	graph, err := s.tickets.Graph(c.Request().Context(), workflowID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, graph)
}

// pendingReviewCountHandler handles GET /api/v1/tickets/pending-review-count.
func (s *Server) pendingReviewCountHandler(c *echo.Context) error {
	workflowID := c.QueryParam("workflow_id")
	if workflowID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workflow_id is required")
	}
	count, err := s.tickets.PendingReviewCount(c.Request().Context(), workflowID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"pending_review_count": count})
}

// approveTicketHandler handles POST /api/v1/tickets/:id/approve.
// Delivers the human decision to the agent blocked in createTicketHandler.
func (s *Server) approveTicketHandler(c *echo.Context) error {
	var req models.ApprovalDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.ticketing.Approve(c.Param("id"), req.Comment); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"ticket_id": c.Param("id"),
		"decision":  "approved",
	})
}

// rejectTicketHandler handles POST /api/v1/tickets/:id/reject.
func (s *Server) rejectTicketHandler(c *echo.Context) error {
	var req models.ApprovalDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.ticketing.Reject(c.Param("id"), req.Comment); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"ticket_id": c.Param("id"),
		"decision":  "rejected",
	})
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// SaveMemoryRequest is the body for the save_memory tool call.
type SaveMemoryRequest struct {
	Content    string   `json:"content"`
	MemoryType string   `json:"memory_type"`
	Tags       []string `json:"tags,omitempty"`
}

// FindMemoriesRequest is the body for the qdrant_find tool call.
type FindMemoriesRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// saveMemoryHandler handles POST /api/v1/agent/memories.
func (s *Server) saveMemoryHandler(c *echo.Context) error {
	if s.memories == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "memory store not configured")
	}
	var req SaveMemoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	m, err := s.memories.Save(c.Request().Context(), currentAgent(c).ID,
		req.Content, req.MemoryType, req.Tags)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

// findMemoriesHandler handles POST /api/v1/agent/memories/find.
func (s *Server) findMemoriesHandler(c *echo.Context) error {
	if s.memories == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "memory store not configured")
	}
	var req FindMemoriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	memories, err := s.memories.Find(c.Request().Context(), req.Query, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, memories)
}

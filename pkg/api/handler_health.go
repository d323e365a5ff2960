package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/pkg/database"
	"github.com/hephaestus-ai/hephaestus/pkg/metrics"
	"github.com/hephaestus-ai/hephaestus/pkg/version"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string               `json:"status"`
	Version  string               `json:"version"`
	Database *database.PoolStatus `json:"database"`
}

// healthHandler handles GET /health. Only the database is checked;
// external providers (LLM, embedding, qdrant) are excluded so an external
// outage does not make the orchestrator itself look dead.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.dbClient.Health(reqCtx)
	resp := &HealthResponse{
		Status:   "healthy",
		Version:  version.Full(),
		Database: dbHealth,
	}
	if err != nil {
		resp.Status = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// metricsHandler handles GET /metrics with the Prometheus text exposition.
func (s *Server) metricsHandler(c *echo.Context) error {
	metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}

package api

import (
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/ent"
)

// agentContextKey is where agentAuth stores the authorized agent row.
const agentContextKey = "authorized_agent"

// agentAuth authenticates agent tool calls via the X-Agent-ID header. The
// agent must exist and be in a working state; placeholder IDs and IDs of
// terminated agents are refused.
func (s *Server) agentAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			agentID := c.Request().Header.Get("X-Agent-ID")
			if agentID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "X-Agent-ID header is required")
			}
			a, err := s.agents.Authorize(c.Request().Context(), agentID)
			if err != nil {
				return mapServiceError(err)
			}
			c.Set(agentContextKey, a)
			return next(c)
		}
	}
}

// currentAgent returns the agent row stored by agentAuth.
func currentAgent(c *echo.Context) *ent.Agent {
	a, _ := c.Get(agentContextKey).(*ent.Agent)
	return a
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requestLogger logs each request at debug level with method, path, and
// duration. Errors are logged by the handlers themselves.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Debug("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration_ms", time.Since(start).Milliseconds())
			return err
		}
	}
}

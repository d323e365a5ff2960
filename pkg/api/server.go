// Package api exposes the HTTP and WebSocket surface: the tool RPC
// endpoints agents call back on, the UI-facing REST endpoints, and the
// event WebSocket. All business logic lives in the engine packages; the
// handlers bind, authorize, delegate, and map errors.
package api

import (
	"context"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/database"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/memory"
	"github.com/hephaestus-ai/hephaestus/pkg/queue"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/ticketing"
	"github.com/hephaestus-ai/hephaestus/pkg/validation"
)

// Server wires the echo router to the engine packages.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	agents    *services.AgentService
	tasks     *services.TaskService
	workflows *services.WorkflowService
	tickets   *services.TicketService
	results   *services.ResultService

	queue       *queue.Engine
	manager     *agentmgr.Manager
	ticketing   *ticketing.Engine
	pipeline    *validation.Pipeline
	memories    *memory.Store
	connManager *events.ConnectionManager

	echo       *echo.Echo
	httpServer *http.Server
	logger     *slog.Logger
}

// Deps bundles the server's collaborators to keep NewServer readable.
type Deps struct {
	Config   *config.Config
	DBClient *database.Client

	Agents    *services.AgentService
	Tasks     *services.TaskService
	Workflows *services.WorkflowService
	Tickets   *services.TicketService
	Results   *services.ResultService

	Queue       *queue.Engine
	Manager     *agentmgr.Manager
	Ticketing   *ticketing.Engine
	Pipeline    *validation.Pipeline
	Memories    *memory.Store
	ConnManager *events.ConnectionManager

	Logger *slog.Logger
}

// NewServer creates the API server and registers all routes.
func NewServer(d Deps) *Server {
	s := &Server{
		cfg:         d.Config,
		dbClient:    d.DBClient,
		agents:      d.Agents,
		tasks:       d.Tasks,
		workflows:   d.Workflows,
		tickets:     d.Tickets,
		results:     d.Results,
		queue:       d.Queue,
		manager:     d.Manager,
		ticketing:   d.Ticketing,
		pipeline:    d.Pipeline,
		memories:    d.Memories,
		connManager: d.ConnManager,
		logger:      d.Logger.With("component", "api"),
	}

	e := echo.New()
	e.Use(securityHeaders())
	e.Use(requestLogger(s.logger))
	s.echo = e
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", s.healthHandler)
	e.GET("/metrics", s.metricsHandler)
	e.GET("/ws", s.wsHandler)

	// UI-facing endpoints.
	ui := e.Group("/api/v1")
	ui.GET("/queue_status", s.queueStatusHandler)
	ui.GET("/tasks", s.listTasksHandler)
	ui.GET("/tasks/:id", s.getTaskHandler)
	ui.POST("/tasks/:id/bump", s.bumpTaskPriorityHandler)
	ui.POST("/tasks/:id/cancel", s.cancelQueuedTaskHandler)
	ui.POST("/tasks/:id/restart", s.restartTaskHandler)
	ui.GET("/agents", s.listAgentsHandler)
	ui.POST("/agents/:id/terminate", s.terminateAgentHandler)
	ui.GET("/agents/:id/validate", s.validateAgentIDHandler)
	ui.GET("/workflows", s.listWorkflowsHandler)
	ui.GET("/workflows/:id/status", s.workflowStatusHandler)
	ui.GET("/tickets", s.listTicketsHandler)
	ui.GET("/tickets/graph", s.ticketGraphHandler)
	ui.GET("/tickets/pending-review-count", s.pendingReviewCountHandler)
	ui.GET("/tickets/:id", s.getTicketHandler)
	ui.POST("/tickets/:id/approve", s.approveTicketHandler)
	ui.POST("/tickets/:id/reject", s.rejectTicketHandler)
	ui.GET("/results", s.listResultsHandler)
	ui.GET("/results/:id/content", s.resultContentHandler)
	ui.GET("/results/:id/validation", s.resultValidationHandler)
	ui.GET("/workflow-results", s.listWorkflowResultsHandler)

	// Agent tool RPC. Every call authenticates via the X-Agent-ID header.
	rpc := e.Group("/api/v1/agent", s.agentAuth())
	rpc.POST("/tasks", s.createTaskHandler)
	rpc.POST("/tasks/:id/status", s.updateTaskStatusHandler)
	rpc.POST("/results", s.reportResultsHandler)
	rpc.POST("/memories", s.saveMemoryHandler)
	rpc.POST("/memories/find", s.findMemoriesHandler)
	rpc.POST("/tickets", s.createTicketHandler)
	rpc.POST("/tickets/search", s.searchTicketsHandler)
	rpc.POST("/tickets/:id/status", s.changeTicketStatusHandler)
	rpc.POST("/tickets/:id/comments", s.addTicketCommentHandler)
	rpc.POST("/tickets/:id/resolve", s.resolveTicketHandler)
	rpc.POST("/tickets/:id/blocks", s.addTicketBlockHandler)
	rpc.POST("/validation-reviews", s.giveValidationReviewHandler)
	rpc.POST("/workflow-results", s.submitResultHandler)
	rpc.POST("/workflow-results/validation", s.submitResultValidationHandler)
}

// Start begins serving on the given address. Blocks until Shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("HTTP server starting", "addr", addr)
	s.httpServer = &http.Server{Addr: addr, Handler: s.echo}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

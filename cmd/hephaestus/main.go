// Hephaestus orchestrator server: runs the task engine, agent manager,
// monitoring loop, and the HTTP/WebSocket API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/api"
	"github.com/hephaestus-ai/hephaestus/pkg/conductor"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/database"
	"github.com/hephaestus-ai/hephaestus/pkg/diagnostic"
	"github.com/hephaestus-ai/hephaestus/pkg/embedding"
	"github.com/hephaestus-ai/hephaestus/pkg/events"
	"github.com/hephaestus-ai/hephaestus/pkg/guardian"
	"github.com/hephaestus-ai/hephaestus/pkg/llm"
	"github.com/hephaestus-ai/hephaestus/pkg/memory"
	"github.com/hephaestus-ai/hephaestus/pkg/monitor"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/queue"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/ticketing"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
	"github.com/hephaestus-ai/hephaestus/pkg/validation"
	"github.com/hephaestus-ai/hephaestus/pkg/version"
	"github.com/hephaestus-ai/hephaestus/pkg/worktree"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env from the config directory; absence is not an error.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting hephaestus", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration. Any hole in the LLM routing table or workflow file
	// is a hard startup failure.
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database. Migrations run here; an unreachable store exits nonzero.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	logger := slog.Default()

	// 3. External providers.
	embedder := embedding.NewClient(cfg.Embedding)
	if cfg.Queue.DedupMandatory {
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := embedder.Ping(pingCtx)
		cancel()
		if err != nil {
			slog.Error("Embedding provider unreachable with mandatory dedup", "error", err)
			os.Exit(1)
		}
		slog.Info("Embedding provider reachable", "model", cfg.Embedding.Model)
	}
	llmClient := llm.NewClient(cfg.LLMProviderRegistry, logger)

	memStore, err := memory.NewStore(ctx, cfg.Memory, embedder)
	if err != nil {
		slog.Error("Failed to initialize memory store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := memStore.Close(); err != nil {
			slog.Error("Error closing memory store", "error", err)
		}
	}()

	// 4. Event infrastructure: Postgres NOTIFY out, LISTEN + WebSocket in.
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(10 * time.Second)
	listener := events.NewListener(dbConfig.DSN(), connManager)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)

	// 5. Services.
	tasks := services.NewTaskService(dbClient.Client)
	agents := services.NewAgentService(dbClient.Client)
	workflows := services.NewWorkflowService(dbClient.Client)
	tickets := services.NewTicketService(dbClient.Client)
	results := services.NewResultService(dbClient.Client)
	analyses := services.NewAnalysisService(dbClient.Client)
	runs := services.NewDiagnosticService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. Session and worktree infrastructure.
	driver := tmux.NewDriver(cfg.Session, nil, logger)
	worktrees := worktree.NewManager(cfg.Worktree, nil, logger)
	builder := prompt.NewPromptBuilder()

	// 7. Engines. Manager and queue reference each other through narrow
	// interfaces; the queue side is wired in after construction.
	manager := agentmgr.NewManager(agents, tasks, workflows, driver, worktrees, builder, publisher, logger)
	taskQueue := queue.NewEngine(*cfg.Queue, tasks, workflows, agents, analyses,
		embedder, llmClient, builder, manager, publisher, logger)
	manager.SetQueue(taskQueue)

	ticketEngine := ticketing.NewEngine(*cfg.Tickets, tickets, workflows, embedder, publisher, logger)
	pipeline := validation.NewPipeline(*cfg.Validation, tasks, agents, workflows, results,
		manager, worktrees, driver, builder, publisher, logger)
	guard := guardian.NewGuardian(*cfg.Monitoring, agents, tasks, workflows, analyses,
		driver, llmClient, builder, logger)
	cond := conductor.NewConductor(*cfg.Monitoring, agents, tasks, workflows, analyses,
		llmClient, builder, manager, logger)
	doctor := diagnostic.NewDoctor(*cfg.Diagnostic, tasks, agents, workflows, analyses,
		results, runs, manager, builder, logger)

	// 8. Register the configured workflow and release anything still queued
	// from a previous process.
	wf, err := workflows.EnsureWorkflow(ctx, cfg.Workflow)
	if err != nil {
		slog.Error("Failed to register workflow", "error", err)
		os.Exit(1)
	}
	slog.Info("Workflow registered", "workflow_id", wf.ID, "name", wf.Name)
	if err := taskQueue.ProcessQueue(ctx, wf.ID); err != nil {
		slog.Warn("Initial queue processing failed", "workflow_id", wf.ID, "error", err)
	}

	// 9. Monitoring loop.
	mon := monitor.NewMonitor(*cfg.Monitoring, agents, tasks, workflows, runs,
		guard, cond, doctor, manager, pipeline, taskQueue, logger)
	mon.Start(ctx)
	defer mon.Stop(ctx)

	// 10. HTTP server.
	httpServer := api.NewServer(api.Deps{
		Config:      cfg,
		DBClient:    dbClient,
		Agents:      agents,
		Tasks:       tasks,
		Workflows:   workflows,
		Tickets:     tickets,
		Results:     results,
		Queue:       taskQueue,
		Manager:     manager,
		Ticketing:   ticketEngine,
		Pipeline:    pipeline,
		Memories:    memStore,
		ConnManager: connManager,
		Logger:      logger,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.Host + ":" + getEnv("HTTP_PORT", strconv.Itoa(cfg.Server.Port))
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Hephaestus started",
		"workflow_id", wf.ID,
		"max_concurrent_agents", cfg.Queue.MaxConcurrentAgents)

	// 11. Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. Agent sessions survive the process; the next
	// start re-adopts them after the orphan grace period.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

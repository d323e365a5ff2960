// Package metrics exposes Prometheus instrumentation for the orchestrator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TasksCreated counts task creation outcomes: created, queued,
	// duplicate, rejected.
	TasksCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hephaestus_tasks_created_total",
		Help: "Task creation outcomes by tagged status.",
	}, []string{"outcome"})

	// QueueLength tracks the number of queued tasks per workflow.
	QueueLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hephaestus_queue_length",
		Help: "Queued tasks per workflow.",
	}, []string{"workflow_id"})

	// AgentsSpawned counts agent spawns by type.
	AgentsSpawned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hephaestus_agents_spawned_total",
		Help: "Agents spawned by type.",
	}, []string{"agent_type"})

	// AgentsTerminated counts terminations by final status.
	AgentsTerminated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hephaestus_agents_terminated_total",
		Help: "Agent terminations by final status.",
	}, []string{"status"})

	// GuardianAnalyses counts Guardian runs and whether steering fired.
	GuardianAnalyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hephaestus_guardian_analyses_total",
		Help: "Guardian trajectory analyses by steering outcome.",
	}, []string{"steering_type"})

	// LLMRequests counts LLM calls by routed component and outcome.
	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hephaestus_llm_requests_total",
		Help: "LLM completions by component and outcome.",
	}, []string{"component", "outcome"})

	// WebsocketConnections tracks currently connected UI clients.
	WebsocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hephaestus_websocket_connections",
		Help: "Currently connected WebSocket clients.",
	})

	// ValidationReviews counts task validation verdicts.
	ValidationReviews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hephaestus_validation_reviews_total",
		Help: "Task validation verdicts.",
	}, []string{"verdict"})
)

// Handler returns the /metrics scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

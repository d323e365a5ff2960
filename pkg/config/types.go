package config

import "time"

// QueueConfig controls the task engine: capacity, queueing, dedup and
// enrichment behaviour.
type QueueConfig struct {
	// MaxConcurrentAgents is the cap on simultaneously working agents.
	// Bump-and-start may exceed it temporarily; see BumpHardCeiling.
	MaxConcurrentAgents int `yaml:"max_concurrent_agents"`

	// BumpCeilingFactor caps how far bump-and-start may overshoot the
	// concurrency limit. Bumps that would reach
	// MaxConcurrentAgents * BumpCeilingFactor are rejected.
	BumpCeilingFactor int `yaml:"bump_ceiling_factor"`

	// DedupEnabled toggles semantic deduplication on task creation.
	DedupEnabled bool `yaml:"dedup_enabled"`

	// DedupThreshold is the cosine similarity at or above which a new task
	// is marked as a duplicate of an existing task in the same phase.
	DedupThreshold float64 `yaml:"dedup_threshold"`

	// DedupMandatory makes an unreachable embedding provider a startup
	// failure instead of a silent dedup skip.
	DedupMandatory bool `yaml:"dedup_mandatory"`

	// EnrichmentEnabled toggles asynchronous LLM enrichment of task
	// descriptions. Enrichment failure is never fatal to the task.
	EnrichmentEnabled bool `yaml:"enrichment_enabled"`

	// EnrichmentTimeout bounds a single enrichment LLM call.
	EnrichmentTimeout time.Duration `yaml:"enrichment_timeout"`
}

// MonitoringConfig controls the Guardian/Conductor monitoring loop.
type MonitoringConfig struct {
	// Interval is the monitoring cycle period.
	Interval time.Duration `yaml:"interval"`

	// MaxConcurrent bounds parallel Guardian analyses within one cycle.
	MaxConcurrent int `yaml:"max_concurrent"`

	// GuardianMinAgentAge skips agents younger than this from analysis
	// and orphan cleanup.
	GuardianMinAgentAge time.Duration `yaml:"guardian_min_agent_age"`

	// OrphanGracePeriod suppresses orphan-session cleanup for this long
	// after process start, so just-registered agents are not killed.
	OrphanGracePeriod time.Duration `yaml:"orphan_grace_period"`

	// GuardianHistoryDepth is how many prior trajectory summaries feed
	// each Guardian analysis.
	GuardianHistoryDepth int `yaml:"guardian_history_depth"`

	// ScrollbackLines is how many lines of session scrollback the
	// Guardian captures per analysis.
	ScrollbackLines int `yaml:"scrollback_lines"`

	// DuplicateSimilarityThreshold is the Conductor similarity at or
	// above which the less-advanced agent of a duplicate pair is
	// terminated.
	DuplicateSimilarityThreshold float64 `yaml:"duplicate_similarity_threshold"`
}

// DiagnosticConfig controls the stalled-workflow doctor agent.
type DiagnosticConfig struct {
	// Cooldown is the minimum time between diagnostic runs.
	Cooldown time.Duration `yaml:"cooldown"`

	// MinStuckTime is how long the workflow must show no task activity
	// before a diagnostic run triggers.
	MinStuckTime time.Duration `yaml:"min_stuck_time"`

	// MaxTasksPerRun caps how many unsticking tasks one doctor agent
	// may create.
	MaxTasksPerRun int `yaml:"max_tasks_per_run"`

	// ContextAgents is how many recent completed/failed agents feed the
	// doctor prompt.
	ContextAgents int `yaml:"context_agents"`

	// ContextAnalyses is how many recent Conductor analyses feed the
	// doctor prompt.
	ContextAnalyses int `yaml:"context_analyses"`
}

// ValidationConfig controls the task-level validation pipeline.
type ValidationConfig struct {
	// MaxIterations caps validate/needs-work round trips per task.
	MaxIterations int `yaml:"max_iterations"`
}

// TicketsConfig controls the human-approval gate for ticket creation.
type TicketsConfig struct {
	// HumanReview makes create_ticket block until a human decision.
	HumanReview bool `yaml:"human_review"`

	// ApprovalTimeout bounds the wait for a human decision.
	ApprovalTimeout time.Duration `yaml:"approval_timeout"`
}

// SessionConfig controls the tmux session driver.
type SessionConfig struct {
	// AgentCommand is the interactive AI coding agent CLI launched in
	// each session.
	AgentCommand string `yaml:"agent_command"`

	// TmuxBinary is the tmux executable; overridable for tests.
	TmuxBinary string `yaml:"tmux_binary"`
}

// WorktreeConfig controls per-agent worktree isolation.
type WorktreeConfig struct {
	// RepoPath is the project git repository agents work on.
	RepoPath string `yaml:"repo_path"`

	// BaseRef is the commit-ish each worktree branches from.
	BaseRef string `yaml:"base_ref"`

	// Root is the directory worktrees are created under.
	Root string `yaml:"root"`
}

// EmbeddingConfig configures the external embedding provider.
type EmbeddingConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Model     string        `yaml:"model"`
	Dimension int           `yaml:"dimension"`
	Timeout   time.Duration `yaml:"timeout"`
}

// MemoryConfig configures the qdrant memory store.
type MemoryConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	APIKeyEnv  string `yaml:"api_key_env"`
	UseTLS     bool   `yaml:"use_tls"`
	Collection string `yaml:"collection"`
}

// ServerConfig configures the HTTP/WebSocket surface.
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	ResultMaxBytes int    `yaml:"result_max_bytes"`
}

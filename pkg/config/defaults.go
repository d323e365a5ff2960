package config

import "time"

// DefaultQueueConfig returns the built-in task engine defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		MaxConcurrentAgents: 5,
		BumpCeilingFactor:   2,
		DedupEnabled:        true,
		DedupThreshold:      0.92,
		DedupMandatory:      false,
		EnrichmentEnabled:   false,
		EnrichmentTimeout:   30 * time.Second,
	}
}

// DefaultMonitoringConfig returns the built-in monitoring loop defaults.
func DefaultMonitoringConfig() *MonitoringConfig {
	return &MonitoringConfig{
		Interval:                     60 * time.Second,
		MaxConcurrent:                5,
		GuardianMinAgentAge:          60 * time.Second,
		OrphanGracePeriod:            120 * time.Second,
		GuardianHistoryDepth:         10,
		ScrollbackLines:              200,
		DuplicateSimilarityThreshold: 0.8,
	}
}

// DefaultDiagnosticConfig returns the built-in diagnostic defaults.
func DefaultDiagnosticConfig() *DiagnosticConfig {
	return &DiagnosticConfig{
		Cooldown:        60 * time.Second,
		MinStuckTime:    60 * time.Second,
		MaxTasksPerRun:  5,
		ContextAgents:   15,
		ContextAnalyses: 5,
	}
}

// DefaultValidationConfig returns the built-in validation defaults.
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{MaxIterations: 10}
}

// DefaultTicketsConfig returns the built-in ticket gate defaults.
func DefaultTicketsConfig() *TicketsConfig {
	return &TicketsConfig{
		HumanReview:     false,
		ApprovalTimeout: 1800 * time.Second,
	}
}

// DefaultSessionConfig returns the built-in session driver defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		AgentCommand: "claude",
		TmuxBinary:   "tmux",
	}
}

// DefaultEmbeddingConfig returns the built-in embedding client defaults.
func DefaultEmbeddingConfig() *EmbeddingConfig {
	return &EmbeddingConfig{
		BaseURL:   "https://api.openai.com/v1",
		APIKeyEnv: "OPENAI_API_KEY",
		Model:     "text-embedding-3-small",
		Dimension: 1536,
		Timeout:   30 * time.Second,
	}
}

// DefaultMemoryConfig returns the built-in qdrant defaults.
func DefaultMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		Host:       "localhost",
		Port:       6334,
		Collection: "hephaestus_memories",
	}
}

// DefaultServerConfig returns the built-in HTTP surface defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:           "0.0.0.0",
		Port:           8000,
		ResultMaxBytes: 100 * 1024,
	}
}

package config

// Config is the umbrella configuration object returned by Initialize and
// passed to the composition root. All registries are ready for use.
type Config struct {
	configDir string

	Queue      *QueueConfig
	Monitoring *MonitoringConfig
	Diagnostic *DiagnosticConfig
	Validation *ValidationConfig
	Tickets    *TicketsConfig
	Session    *SessionConfig
	Worktree   *WorktreeConfig
	Embedding  *EmbeddingConfig
	Memory     *MemoryConfig
	Server     *ServerConfig

	Workflow *WorkflowFileConfig

	LLMProviderRegistry *LLMProviderRegistry
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// PhaseByNumber returns the configured phase with the given number, or nil.
func (c *Config) PhaseByNumber(n int) *PhaseConfig {
	if c.Workflow == nil {
		return nil
	}
	for i := range c.Workflow.Phases {
		if c.Workflow.Phases[i].Number == n {
			return &c.Workflow.Phases[i]
		}
	}
	return nil
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlConfig is the on-disk shape of hephaestus.yaml.
type yamlConfig struct {
	Queue      *QueueConfig      `yaml:"queue"`
	Monitoring *MonitoringConfig `yaml:"monitoring"`
	Diagnostic *DiagnosticConfig `yaml:"diagnostic"`
	Validation *ValidationConfig `yaml:"validation"`
	Tickets    *TicketsConfig    `yaml:"tickets"`
	Session    *SessionConfig    `yaml:"session"`
	Worktree   *WorktreeConfig   `yaml:"worktree"`
	Embedding  *EmbeddingConfig  `yaml:"embedding"`
	Memory     *MemoryConfig     `yaml:"memory"`
	Server     *ServerConfig     `yaml:"server"`
	LLM        *LLMConfig        `yaml:"llm"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read hephaestus.yaml and workflow.yaml from configDir
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML into structs, filling defaults for absent sections
//  4. Build the LLM provider registry
//  5. Validate everything; any hole is a hard failure (the process must
//     not start with an unusable provider routing table)
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	raw, err := readYAML(filepath.Join(configDir, "hephaestus.yaml"))
	if err != nil {
		return nil, err
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(raw, &yc); err != nil {
		return nil, fmt.Errorf("%w: hephaestus.yaml: %v", ErrInvalidYAML, err)
	}

	wfRaw, err := readYAML(filepath.Join(configDir, "workflow.yaml"))
	if err != nil {
		return nil, err
	}
	var wf WorkflowFileConfig
	if err := yaml.Unmarshal(wfRaw, &wf); err != nil {
		return nil, fmt.Errorf("%w: workflow.yaml: %v", ErrInvalidYAML, err)
	}

	cfg := &Config{
		configDir:  configDir,
		Queue:      orDefault(yc.Queue, DefaultQueueConfig),
		Monitoring: orDefault(yc.Monitoring, DefaultMonitoringConfig),
		Diagnostic: orDefault(yc.Diagnostic, DefaultDiagnosticConfig),
		Validation: orDefault(yc.Validation, DefaultValidationConfig),
		Tickets:    orDefault(yc.Tickets, DefaultTicketsConfig),
		Session:    orDefault(yc.Session, DefaultSessionConfig),
		Worktree:   yc.Worktree,
		Embedding:  orDefault(yc.Embedding, DefaultEmbeddingConfig),
		Memory:     orDefault(yc.Memory, DefaultMemoryConfig),
		Server:     orDefault(yc.Server, DefaultServerConfig),
		Workflow:   &wf,
	}

	if yc.LLM == nil {
		return nil, &ValidationError{Component: "llm", ID: "config", Err: ErrMissingRequiredField}
	}
	cfg.LLMProviderRegistry = NewLLMProviderRegistry(yc.LLM.Providers, yc.LLM.Routing)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"phases", len(wf.Phases),
		"llm_providers", cfg.LLMProviderRegistry.Len(),
		"max_concurrent_agents", cfg.Queue.MaxConcurrentAgents)

	return cfg, nil
}

func readYAML(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ExpandEnv(data), nil
}

func orDefault[T any](v *T, def func() *T) *T {
	if v != nil {
		return v
	}
	return def()
}

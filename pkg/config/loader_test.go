package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHephaestusYAML = `
queue:
  max_concurrent_agents: 3
  bump_ceiling_factor: 2
  dedup_enabled: true
  dedup_threshold: 0.92
llm:
  providers:
    default:
      base_url: https://api.example.com/v1
      model: test-model
      api_key_env: LLM_API_KEY
  routing:
    guardian_analysis: default
    conductor_analysis: default
    task_enrichment: default
    agent_prompts: default
`

const validWorkflowYAML = `
name: demo
goal: build the demo system
on_result_found: stop_all
board:
  columns: [backlog, in_progress, done]
  ticket_types: [bug, feature]
phases:
  - number: 1
    name: implementation
    description: build it
    done_definitions:
      - all endpoints respond
  - number: 2
    name: verification
    description: verify it
    done_definitions:
      - tests pass
    validation:
      enabled: true
      criteria:
        - go test ./... exits 0
`

func writeConfigDir(t *testing.T, hephaestus, workflow string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hephaestus.yaml"), []byte(hephaestus), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workflow.yaml"), []byte(workflow), 0o644))
	return dir
}

func TestInitialize(t *testing.T) {
	dir := writeConfigDir(t, validHephaestusYAML, validWorkflowYAML)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.MaxConcurrentAgents)
	assert.Equal(t, 0.92, cfg.Queue.DedupThreshold)
	assert.Equal(t, "demo", cfg.Workflow.Name)
	assert.Len(t, cfg.Workflow.Phases, 2)
	assert.True(t, cfg.Workflow.Phases[1].Validation.Enabled)
	assert.True(t, cfg.Workflow.Board.HasColumn("backlog"))
	assert.False(t, cfg.Workflow.Board.HasColumn("icebox"))

	// Absent sections come back as defaults, not nils.
	require.NotNil(t, cfg.Monitoring)
	require.NotNil(t, cfg.Server)
	assert.Positive(t, cfg.Monitoring.Interval)

	p, err := cfg.LLMProviderRegistry.Route(ComponentGuardianAnalysis)
	require.NoError(t, err)
	assert.Equal(t, "test-model", p.Model)
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeMissingLLMSection(t *testing.T) {
	dir := writeConfigDir(t, "queue:\n  max_concurrent_agents: 2\n", validWorkflowYAML)

	_, err := Initialize(dir)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestInitializeRejectsIncompleteRouting(t *testing.T) {
	broken := `
llm:
  providers:
    default:
      base_url: https://api.example.com/v1
      model: test-model
  routing:
    guardian_analysis: default
`
	dir := writeConfigDir(t, broken, validWorkflowYAML)

	_, err := Initialize(dir)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, ErrComponentNotRouted)
}

func TestInitializeRejectsUnknownRoutedProvider(t *testing.T) {
	broken := `
llm:
  providers:
    default:
      base_url: https://api.example.com/v1
      model: test-model
  routing:
    guardian_analysis: ghost
    conductor_analysis: default
    task_enrichment: default
    agent_prompts: default
`
	dir := writeConfigDir(t, broken, validWorkflowYAML)

	_, err := Initialize(dir)
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "queue: [not a map", validWorkflowYAML)

	_, err := Initialize(dir)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeExpandsEnv(t *testing.T) {
	t.Setenv("TEST_LLM_MODEL", "expanded-model")
	withEnv := `
llm:
  providers:
    default:
      base_url: https://api.example.com/v1
      model: "{{.TEST_LLM_MODEL}}"
  routing:
    guardian_analysis: default
    conductor_analysis: default
    task_enrichment: default
    agent_prompts: default
`
	dir := writeConfigDir(t, withEnv, validWorkflowYAML)

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	p, err := cfg.LLMProviderRegistry.Get("default")
	require.NoError(t, err)
	assert.Equal(t, "expanded-model", p.Model)
}

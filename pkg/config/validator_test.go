package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validWorkflowFile() *WorkflowFileConfig {
	return &WorkflowFileConfig{
		Name:  "demo",
		Goal:  "ship it",
		Board: BoardConfig{Columns: []string{"backlog", "done"}},
		Phases: []PhaseConfig{
			{Number: 1, Name: "impl", DoneDefinitions: []string{"works"}},
		},
	}
}

func TestValidateWorkflow(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WorkflowFileConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(wf *WorkflowFileConfig) {},
		},
		{
			name:    "missing name",
			mutate:  func(wf *WorkflowFileConfig) { wf.Name = "" },
			wantErr: ErrMissingRequiredField,
		},
		{
			name:    "missing goal",
			mutate:  func(wf *WorkflowFileConfig) { wf.Goal = "" },
			wantErr: ErrMissingRequiredField,
		},
		{
			name:    "bad result policy",
			mutate:  func(wf *WorkflowFileConfig) { wf.OnResultFound = "explode" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "no phases",
			mutate:  func(wf *WorkflowFileConfig) { wf.Phases = nil },
			wantErr: ErrMissingRequiredField,
		},
		{
			name: "duplicate phase number",
			mutate: func(wf *WorkflowFileConfig) {
				wf.Phases = append(wf.Phases, PhaseConfig{
					Number: 1, Name: "again", DoneDefinitions: []string{"x"},
				})
			},
			wantErr: ErrInvalidValue,
		},
		{
			name: "phase number below one",
			mutate: func(wf *WorkflowFileConfig) {
				wf.Phases[0].Number = 0
			},
			wantErr: ErrInvalidValue,
		},
		{
			name: "phase without done definitions",
			mutate: func(wf *WorkflowFileConfig) {
				wf.Phases[0].DoneDefinitions = nil
			},
			wantErr: ErrMissingRequiredField,
		},
		{
			name:    "no board columns",
			mutate:  func(wf *WorkflowFileConfig) { wf.Board.Columns = nil },
			wantErr: ErrMissingRequiredField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf := validWorkflowFile()
			tt.mutate(wf)
			err := validateWorkflow(wf)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateQueueBounds(t *testing.T) {
	cfg := &Config{
		Queue:      DefaultQueueConfig(),
		Monitoring: DefaultMonitoringConfig(),
		Diagnostic: DefaultDiagnosticConfig(),
		Validation: DefaultValidationConfig(),
		Workflow:   validWorkflowFile(),
		LLMProviderRegistry: NewLLMProviderRegistry(
			map[string]*LLMProviderConfig{
				"default": {BaseURL: "https://api.example.com/v1", Model: "m"},
			},
			map[string]string{
				ComponentGuardianAnalysis:  "default",
				ComponentConductorAnalysis: "default",
				ComponentTaskEnrichment:    "default",
				ComponentAgentPrompts:      "default",
			},
		),
	}
	assert.NoError(t, validate(cfg))

	cfg.Queue.DedupThreshold = 1.5
	assert.ErrorIs(t, validate(cfg), ErrInvalidValue)
	cfg.Queue.DedupThreshold = 0.9

	cfg.Queue.MaxConcurrentAgents = 0
	assert.ErrorIs(t, validate(cfg), ErrInvalidValue)
}

package config

import "fmt"

// validate checks the assembled configuration. Returns the first problem
// found; the caller wraps it in ErrValidationFailed.
func validate(cfg *Config) error {
	if cfg.Queue.MaxConcurrentAgents < 1 {
		return &ValidationError{Component: "queue", ID: "max_concurrent_agents", Err: ErrInvalidValue}
	}
	if cfg.Queue.BumpCeilingFactor < 1 {
		return &ValidationError{Component: "queue", ID: "bump_ceiling_factor", Err: ErrInvalidValue}
	}
	if cfg.Queue.DedupThreshold <= 0 || cfg.Queue.DedupThreshold > 1 {
		return &ValidationError{Component: "queue", ID: "dedup_threshold", Err: ErrInvalidValue}
	}
	if cfg.Monitoring.Interval <= 0 {
		return &ValidationError{Component: "monitoring", ID: "interval", Err: ErrInvalidValue}
	}
	if cfg.Monitoring.MaxConcurrent < 1 {
		return &ValidationError{Component: "monitoring", ID: "max_concurrent", Err: ErrInvalidValue}
	}
	if cfg.Validation.MaxIterations < 1 {
		return &ValidationError{Component: "validation", ID: "max_iterations", Err: ErrInvalidValue}
	}

	if err := validateWorkflow(cfg.Workflow); err != nil {
		return err
	}

	// Provider routing must be complete at startup. A silent fallback here
	// was a production fault in a previous incarnation of this system.
	if err := cfg.LLMProviderRegistry.ValidateRouting(); err != nil {
		return err
	}
	for name, p := range cfg.LLMProviderRegistry.providers {
		if p.BaseURL == "" {
			return &ValidationError{Component: "llm_provider", ID: name, Field: "base_url", Err: ErrMissingRequiredField}
		}
		if p.Model == "" {
			return &ValidationError{Component: "llm_provider", ID: name, Field: "model", Err: ErrMissingRequiredField}
		}
	}

	return nil
}

func validateWorkflow(wf *WorkflowFileConfig) error {
	if wf.Name == "" {
		return &ValidationError{Component: "workflow", ID: "name", Err: ErrMissingRequiredField}
	}
	if wf.Goal == "" {
		return &ValidationError{Component: "workflow", ID: "goal", Err: ErrMissingRequiredField}
	}
	switch wf.OnResultFound {
	case "", "stop_all", "do_nothing":
	default:
		return &ValidationError{Component: "workflow", ID: "on_result_found", Err: ErrInvalidValue}
	}
	if len(wf.Phases) == 0 {
		return &ValidationError{Component: "workflow", ID: "phases", Err: ErrMissingRequiredField}
	}
	seen := make(map[int]bool, len(wf.Phases))
	for _, p := range wf.Phases {
		id := fmt.Sprintf("phase %d", p.Number)
		if p.Number < 1 {
			return &ValidationError{Component: "phase", ID: id, Field: "number", Err: ErrInvalidValue}
		}
		if seen[p.Number] {
			return &ValidationError{Component: "phase", ID: id, Field: "number", Err: ErrInvalidValue}
		}
		seen[p.Number] = true
		if p.Name == "" {
			return &ValidationError{Component: "phase", ID: id, Field: "name", Err: ErrMissingRequiredField}
		}
		if len(p.DoneDefinitions) == 0 {
			return &ValidationError{Component: "phase", ID: id, Field: "done_definitions", Err: ErrMissingRequiredField}
		}
	}
	if len(wf.Board.Columns) == 0 {
		// Every board needs at least a backlog column for tickets to land in.
		return &ValidationError{Component: "workflow", ID: "board.columns", Err: ErrMissingRequiredField}
	}
	return nil
}

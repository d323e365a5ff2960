package config

import (
	"fmt"
	"sync"
	"time"
)

// LLM component names used for provider routing. Every component listed
// here must resolve to a provider at startup; a missing route fails
// Initialize rather than silently degrading.
const (
	ComponentGuardianAnalysis  = "guardian_analysis"
	ComponentConductorAnalysis = "conductor_analysis"
	ComponentTaskEnrichment    = "task_enrichment"
	ComponentAgentPrompts      = "agent_prompts"
)

// RoutedComponents lists every component that must have a provider route.
var RoutedComponents = []string{
	ComponentGuardianAnalysis,
	ComponentConductorAnalysis,
	ComponentTaskEnrichment,
	ComponentAgentPrompts,
}

// LLMProviderConfig defines one chat-completion provider endpoint.
type LLMProviderConfig struct {
	// BaseURL of the OpenAI-compatible chat completions API (required).
	BaseURL string `yaml:"base_url"`

	// Model name (required).
	Model string `yaml:"model"`

	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Temperature for completions (optional).
	Temperature *float64 `yaml:"temperature,omitempty"`

	// MaxTokens for completions (optional).
	MaxTokens *int `yaml:"max_tokens,omitempty"`

	// Timeout for a single completion call.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// LLMConfig groups the providers map with the per-component routing table.
type LLMConfig struct {
	Providers map[string]*LLMProviderConfig `yaml:"providers"`
	Routing   map[string]string             `yaml:"routing"`
}

// LLMProviderRegistry stores provider configurations and the component
// routing table with thread-safe access.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	routing   map[string]string
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a registry from parsed config. Copies the
// maps to prevent external mutation.
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig, routing map[string]string) *LLMProviderRegistry {
	p := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		p[k] = v
	}
	r := make(map[string]string, len(routing))
	for k, v := range routing {
		r[k] = v
	}
	return &LLMProviderRegistry{providers: p, routing: r}
}

// Get retrieves a provider configuration by name.
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// Route resolves the provider configured for an LLM component.
func (r *LLMProviderRegistry) Route(component string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.routing[component]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrComponentNotRouted, component)
	}
	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s (routed from component %s)", ErrLLMProviderNotFound, name, component)
	}
	return provider, nil
}

// Len returns the number of providers in the registry.
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// ValidateRouting checks that every routed component resolves to a known
// provider. Called at startup; any hole is a hard failure.
func (r *LLMProviderRegistry) ValidateRouting() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, component := range RoutedComponents {
		name, ok := r.routing[component]
		if !ok {
			return &ValidationError{Component: "llm_routing", ID: component, Err: ErrComponentNotRouted}
		}
		if _, exists := r.providers[name]; !exists {
			return &ValidationError{
				Component: "llm_routing",
				ID:        component,
				Field:     name,
				Err:       ErrLLMProviderNotFound,
			}
		}
	}
	return nil
}

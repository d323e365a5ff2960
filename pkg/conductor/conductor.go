// Package conductor implements system-level supervision: one LLM pass per
// monitoring cycle over all active agents of a workflow, detecting
// duplicated effort and terminating the less-advanced of each duplicate
// pair.
package conductor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/pkg/agentmgr"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/llm"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

// llmComponent is the provider-registry key Conductor calls route through.
const llmComponent = "conductor_system_analysis"

// Terminator runs the agent termination cascade.
type Terminator interface {
	TerminateAgent(ctx context.Context, agentID, reason string, opts agentmgr.TerminateOptions) error
}

// Conductor analyses the whole swarm of one workflow at once.
type Conductor struct {
	cfg        config.MonitoringConfig
	agents     *services.AgentService
	tasks      *services.TaskService
	workflows  *services.WorkflowService
	analyses   *services.AnalysisService
	llmClient  *llm.Client
	builder    *prompt.PromptBuilder
	terminator Terminator
	logger     *slog.Logger
}

// NewConductor creates a Conductor.
func NewConductor(
	cfg config.MonitoringConfig,
	agents *services.AgentService,
	tasks *services.TaskService,
	workflows *services.WorkflowService,
	analyses *services.AnalysisService,
	llmClient *llm.Client,
	builder *prompt.PromptBuilder,
	terminator Terminator,
	logger *slog.Logger,
) *Conductor {
	return &Conductor{
		cfg:        cfg,
		agents:     agents,
		tasks:      tasks,
		workflows:  workflows,
		analyses:   analyses,
		llmClient:  llmClient,
		builder:    builder,
		terminator: terminator,
		logger:     logger.With("component", "conductor"),
	}
}

// agentView carries what the duplicate-resolution heuristics need about one
// agent.
type agentView struct {
	agent       *ent.Agent
	phaseNumber int
	alignment   float64
}

// Run performs one system analysis over the workflow's active agents and
// acts on confirmed duplicates. Requires at least two analysable agents;
// fewer is a no-op.
func (c *Conductor) Run(ctx context.Context, workflowID string) (*ent.ConductorAnalysis, error) {
	wf, err := c.workflows.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	active, err := c.agents.ActiveAgents(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	views := make(map[string]agentView)
	summaries := make([]prompt.ConductorAgentSummary, 0, len(active))
	for _, a := range active {
		ga, err := c.analyses.LatestGuardianAnalysis(ctx, a.ID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue // not analysed yet this cycle
			}
			return nil, err
		}

		s := prompt.ConductorAgentSummary{
			AgentID:           a.ID,
			AgentType:         string(a.AgentType),
			TrajectorySummary: ga.TrajectorySummary,
			AlignmentScore:    ga.AlignmentScore,
		}
		view := agentView{agent: a, alignment: ga.AlignmentScore}
		if a.TaskID != nil {
			if t, err := c.tasks.GetTask(ctx, *a.TaskID); err == nil {
				s.TaskDescription = t.Description
				if t.PhaseID != nil {
					if p, err := c.workflows.GetPhase(ctx, workflowID, *t.PhaseID); err == nil {
						s.PhaseName = p.Name
						view.phaseNumber = p.Number
					}
				}
			}
		}
		summaries = append(summaries, s)
		views[a.ID] = view
	}
	if len(summaries) < 2 {
		return nil, nil
	}

	messages := c.builder.BuildConductorMessages(wf.GoalText, summaries)
	var resp prompt.ConductorResponse
	if err := c.llmClient.CompleteStructured(ctx, llmComponent, messages, prompt.ConductorSchema, &resp); err != nil {
		return nil, fmt.Errorf("conductor analysis failed: %w", err)
	}

	pairs := c.filterPairs(resp.DuplicatePairs, views)
	terminated := c.resolveDuplicates(ctx, pairs, views)

	duplicates := make([]map[string]interface{}, 0, len(pairs))
	for _, p := range pairs {
		duplicates = append(duplicates, map[string]interface{}{
			"agent_a":    p.AgentA,
			"agent_b":    p.AgentB,
			"similarity": p.Similarity,
			"reason":     p.Reason,
		})
	}
	recs := make([]string, 0, len(resp.TerminationRecommendations))
	for _, r := range resp.TerminationRecommendations {
		recs = append(recs, fmt.Sprintf("%s: %s", r.AgentID, r.Reason))
	}
	for _, id := range terminated {
		recs = append(recs, fmt.Sprintf("%s: terminated as duplicate", id))
	}

	saved, err := c.analyses.SaveConductorAnalysis(ctx, services.ConductorAnalysisInput{
		CoherenceScore:             resp.CoherenceScore,
		NumAgents:                  len(summaries),
		SystemStatus:               resp.Narrative,
		DetectedDuplicates:         duplicates,
		TerminationRecommendations: recs,
	})
	if err != nil {
		return nil, err
	}
	c.logger.Info("conductor analysis complete",
		"workflow_id", workflowID, "agents", len(summaries),
		"coherence", resp.CoherenceScore, "duplicates", len(pairs), "terminated", len(terminated))
	return saved, nil
}

// filterPairs drops pairs the model should not have proposed: unknown
// agents, and pairs involving a validator or result validator. A validator
// reviewing an implementer's work always looks similar to it; that is its
// job, not duplication.
func (c *Conductor) filterPairs(pairs []prompt.DuplicatePair, views map[string]agentView) []prompt.DuplicatePair {
	out := make([]prompt.DuplicatePair, 0, len(pairs))
	for _, p := range pairs {
		va, okA := views[p.AgentA]
		vb, okB := views[p.AgentB]
		if !okA || !okB || p.AgentA == p.AgentB {
			continue
		}
		if isReviewer(va.agent) || isReviewer(vb.agent) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isReviewer(a *ent.Agent) bool {
	return a.AgentType == agent.AgentTypeValidator || a.AgentType == agent.AgentTypeResultValidator
}

// resolveDuplicates terminates the less-advanced agent of each pair at or
// above the similarity threshold. Advancement order: earlier start, then
// later phase, then higher alignment.
func (c *Conductor) resolveDuplicates(ctx context.Context, pairs []prompt.DuplicatePair, views map[string]agentView) []string {
	done := make(map[string]bool)
	var terminated []string
	for _, p := range pairs {
		if p.Similarity < c.cfg.DuplicateSimilarityThreshold {
			continue
		}
		if done[p.AgentA] || done[p.AgentB] {
			continue
		}
		loser := lessAdvanced(views[p.AgentA], views[p.AgentB])
		reason := fmt.Sprintf("duplicate of agent %s (similarity %.2f)", otherOf(p, loser.agent.ID), p.Similarity)
		if err := c.terminator.TerminateAgent(ctx, loser.agent.ID, reason,
			agentmgr.TerminateOptions{FailTask: true}); err != nil {
			c.logger.Error("duplicate termination failed", "agent_id", loser.agent.ID, "error", err)
			continue
		}
		done[loser.agent.ID] = true
		terminated = append(terminated, loser.agent.ID)
	}
	return terminated
}

func otherOf(p prompt.DuplicatePair, id string) string {
	if p.AgentA == id {
		return p.AgentB
	}
	return p.AgentA
}

// lessAdvanced picks which of two duplicate agents to stop: the later
// arrival loses, then the one in an earlier phase, then the one with the
// lower alignment score.
func lessAdvanced(a, b agentView) agentView {
	if !a.agent.CreatedAt.Equal(b.agent.CreatedAt) {
		if a.agent.CreatedAt.After(b.agent.CreatedAt) {
			return a
		}
		return b
	}
	if a.phaseNumber != b.phaseNumber {
		if a.phaseNumber < b.phaseNumber {
			return a
		}
		return b
	}
	if a.alignment < b.alignment {
		return a
	}
	return b
}

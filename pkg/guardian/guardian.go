// Package guardian implements per-agent trajectory supervision: each
// monitoring cycle the Guardian reads an agent's recent terminal output,
// judges alignment against the task via the LLM, and injects a steering
// message when the agent is off course.
package guardian

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/pkg/config"
	"github.com/hephaestus-ai/hephaestus/pkg/llm"
	"github.com/hephaestus-ai/hephaestus/pkg/metrics"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
	"github.com/hephaestus-ai/hephaestus/pkg/services"
	"github.com/hephaestus-ai/hephaestus/pkg/tmux"
)

// llmComponent is the provider-registry key Guardian calls route through.
const llmComponent = "guardian_trajectory_analysis"

// constraintPattern extracts MUST/NEVER/DO NOT sentences from phase notes
// and the agent-log history so violations stand out in the analysis context.
var constraintPattern = regexp.MustCompile(`(?im)^.*\b(must not|must|cannot|never|do not|don't|forbidden|required)\b.*$`)

// liftedPattern catches earlier constraints being withdrawn, so the
// Guardian stops flagging work the operator has since allowed.
var liftedPattern = regexp.MustCompile(`(?im)^.*\b(you may now|no longer need to|no longer required)\b.*$`)

// standingPattern catches instructions meant to hold for the whole run.
var standingPattern = regexp.MustCompile(`(?im)^.*\b(always|remember)\b.*$`)

// errorLinePattern marks candidate blocker lines; only lines that recur
// across the history are reported.
var errorLinePattern = regexp.MustCompile(`(?im)^.*\b(error|failed|failure|panic|fatal)\b.*$`)

// Guardian analyses one agent at a time. Safe for concurrent use across
// different agents.
type Guardian struct {
	cfg       config.MonitoringConfig
	agents    *services.AgentService
	tasks     *services.TaskService
	workflows *services.WorkflowService
	analyses  *services.AnalysisService
	driver    *tmux.Driver
	llmClient *llm.Client
	builder   *prompt.PromptBuilder
	logger    *slog.Logger
}

// NewGuardian creates a Guardian.
func NewGuardian(
	cfg config.MonitoringConfig,
	agents *services.AgentService,
	tasks *services.TaskService,
	workflows *services.WorkflowService,
	analyses *services.AnalysisService,
	driver *tmux.Driver,
	llmClient *llm.Client,
	builder *prompt.PromptBuilder,
	logger *slog.Logger,
) *Guardian {
	return &Guardian{
		cfg:       cfg,
		agents:    agents,
		tasks:     tasks,
		workflows: workflows,
		analyses:  analyses,
		driver:    driver,
		llmClient: llmClient,
		builder:   builder,
		logger:    logger.With("component", "guardian"),
	}
}

// AnalyzeAgent runs one trajectory analysis for an agent: score the pending
// intervention from last cycle, capture scrollback, ask the LLM, persist the
// verdict, steer if needed.
func (g *Guardian) AnalyzeAgent(ctx context.Context, a *ent.Agent) (*ent.GuardianAnalysis, error) {
	if a.TaskID == nil {
		return nil, fmt.Errorf("agent %s has no task to analyse", a.ID)
	}
	t, err := g.tasks.GetTask(ctx, *a.TaskID)
	if err != nil {
		return nil, err
	}
	wf, err := g.workflows.GetWorkflow(ctx, t.WorkflowID)
	if err != nil {
		return nil, err
	}
	var phase *ent.Phase
	if t.PhaseID != nil {
		phase, err = g.workflows.GetPhase(ctx, t.WorkflowID, *t.PhaseID)
		if err != nil {
			return nil, err
		}
	}

	scrollback, err := g.driver.Capture(ctx, a.SessionName, g.scrollbackLines())
	if err != nil {
		return nil, fmt.Errorf("scrollback capture failed for agent %s: %w", a.ID, err)
	}

	prior, err := g.analyses.RecentGuardianAnalyses(ctx, a.ID, g.historyDepth())
	if err != nil {
		return nil, err
	}
	summaries := make([]string, 0, len(prior))
	for i := len(prior) - 1; i >= 0; i-- { // oldest first for the prompt
		summaries = append(summaries, prior[i].TrajectorySummary)
	}

	hc := extractHistoryContext(summaries, scrollback)
	gc := prompt.GuardianContext{
		AgentID:              a.ID,
		WorkflowGoal:         wf.GoalText,
		TaskDescription:      t.Description,
		DoneDefinition:       t.DoneDefinition,
		PriorSummaries:       summaries,
		Scrollback:           scrollback,
		Constraints:          hc.Persistent,
		LiftedConstraints:    hc.Lifted,
		StandingInstructions: hc.Standing,
		CurrentFocus:         hc.CurrentFocus,
		Blockers:             hc.Blockers,
	}
	if phase != nil {
		gc.PhaseName = phase.Name
		gc.PhaseDescription = phase.Description
		gc.PhaseDoneDefs = phase.DoneDefinitions
		gc.AdditionalNotes = phase.AdditionalNotes
		gc.Constraints = mergeUnique(ExtractConstraints(phase.AdditionalNotes), gc.Constraints)
	}

	messages := g.builder.BuildGuardianMessages(gc)
	var resp prompt.GuardianResponse
	if err := g.llmClient.CompleteStructured(ctx, llmComponent, messages, prompt.GuardianSchema, &resp); err != nil {
		return nil, fmt.Errorf("guardian analysis failed for agent %s: %w", a.ID, err)
	}

	g.scorePendingIntervention(ctx, a.ID, prior, resp.AlignmentScore)

	saved, err := g.analyses.SaveGuardianAnalysis(ctx, services.GuardianAnalysisInput{
		AgentID:           a.ID,
		CurrentPhase:      resp.CurrentPhase,
		AlignmentScore:    resp.AlignmentScore,
		TrajectoryAligned: resp.TrajectoryAligned,
		TrajectorySummary: resp.TrajectorySummary,
		NeedsSteering:     resp.NeedsSteering,
		SteeringType:      resp.SteeringType,
		SteeringMessage:   resp.SteeringMessage,
	})
	if err != nil {
		return nil, err
	}

	metrics.GuardianAnalyses.WithLabelValues(resp.SteeringType).Inc()
	if resp.NeedsSteering && resp.SteeringType != prompt.SteeringNone && resp.SteeringMessage != "" {
		g.steer(ctx, a, saved, resp)
	}
	return saved, nil
}

// scorePendingIntervention closes the loop on last cycle's steering: the
// injection counts as successful when alignment improved since then.
func (g *Guardian) scorePendingIntervention(ctx context.Context, agentID string, prior []*ent.GuardianAnalysis, currentScore float64) {
	iv, err := g.analyses.PendingIntervention(ctx, agentID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			g.logger.Warn("pending intervention lookup failed", "agent_id", agentID, "error", err)
		}
		return
	}

	// Find the alignment at the time of the intervention: the newest
	// analysis not younger than it.
	baseline := -1.0
	for _, p := range prior { // newest first
		if !p.Timestamp.After(iv.Timestamp) {
			baseline = p.AlignmentScore
			break
		}
	}
	if baseline < 0 {
		return
	}
	if err := g.analyses.ScoreIntervention(ctx, iv.ID, currentScore > baseline); err != nil {
		g.logger.Warn("failed to score intervention", "intervention_id", iv.ID, "error", err)
	}
}

// steer injects the steering message into the agent's session and records
// the intervention for next cycle's scoring.
func (g *Guardian) steer(ctx context.Context, a *ent.Agent, analysis *ent.GuardianAnalysis, resp prompt.GuardianResponse) {
	text := fmt.Sprintf("GUARDIAN [%s]: %s", resp.SteeringType, resp.SteeringMessage)
	if err := g.driver.Inject(ctx, a.SessionName, text); err != nil {
		g.logger.Error("steering injection failed", "agent_id", a.ID, "error", err)
		return
	}
	if _, err := g.analyses.RecordIntervention(ctx, a.ID, analysis.ID, resp.SteeringType, resp.SteeringMessage); err != nil {
		g.logger.Error("failed to record intervention", "agent_id", a.ID, "error", err)
		return
	}
	g.logger.Info("agent steered",
		"agent_id", a.ID, "steering_type", resp.SteeringType, "alignment", resp.AlignmentScore)
}

// ExtractConstraints pulls imperative constraint sentences out of phase
// notes. Exposed for the diagnostic context builder.
func ExtractConstraints(notes string) []string {
	matches := constraintPattern.FindAllString(notes, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(m); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// historyContext is what the agent-log history says about the agent right
// now: constraints still in force, constraints since lifted, instructions
// meant to stand for the whole run, the latest focus and recurring failures.
type historyContext struct {
	Persistent   []string
	Lifted       []string
	Standing     []string
	CurrentFocus string
	Blockers     []string
}

// extractHistoryContext scans the prior trajectory summaries (oldest first)
// plus the current scrollback. Constraint and instruction lines accumulate
// across the whole history; the newest summary is the current focus; error
// lines count as blockers only once they repeat.
func extractHistoryContext(summaries []string, scrollback string) historyContext {
	var hc historyContext
	corpus := make([]string, 0, len(summaries)+1)
	corpus = append(corpus, summaries...)
	corpus = append(corpus, scrollback)

	for _, text := range corpus {
		hc.Persistent = appendMatches(hc.Persistent, constraintPattern, text)
		hc.Lifted = appendMatches(hc.Lifted, liftedPattern, text)
		hc.Standing = appendMatches(hc.Standing, standingPattern, text)
	}
	if len(summaries) > 0 {
		hc.CurrentFocus = summaries[len(summaries)-1]
	}

	counts := make(map[string]int)
	var order []string
	for _, text := range corpus {
		for _, m := range errorLinePattern.FindAllString(text, -1) {
			key := strings.ToLower(strings.TrimSpace(m))
			if key == "" {
				continue
			}
			counts[key]++
			if counts[key] == 1 {
				order = append(order, key)
			}
		}
	}
	for _, key := range order {
		if counts[key] >= 2 {
			hc.Blockers = append(hc.Blockers, key)
		}
	}
	return hc
}

func appendMatches(dst []string, re *regexp.Regexp, text string) []string {
	for _, m := range re.FindAllString(text, -1) {
		s := strings.TrimSpace(m)
		if s != "" && !containsString(dst, s) {
			dst = append(dst, s)
		}
	}
	return dst
}

// mergeUnique prepends a before b, dropping duplicates.
func mergeUnique(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !containsString(out, s) {
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !containsString(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func (g *Guardian) scrollbackLines() int {
	if g.cfg.ScrollbackLines > 0 {
		return g.cfg.ScrollbackLines
	}
	return 200
}

func (g *Guardian) historyDepth() int {
	if g.cfg.GuardianHistoryDepth > 0 {
		return g.cfg.GuardianHistoryDepth
	}
	return 10
}

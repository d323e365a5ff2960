package prompt

import (
	"fmt"
	"strings"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/pkg/llm"
)

// Steering types the Guardian may return. "none" means the trajectory is
// fine.
const (
	SteeringStuck                = "stuck"
	SteeringDrifting             = "drifting"
	SteeringViolatingConstraints = "violating_constraints"
	SteeringIdle                 = "idle"
	SteeringMissedSteps          = "missed_steps"
	SteeringWrongDirection       = "wrong_direction"
	SteeringNone                 = "none"
)

// GuardianResponseSchema constrains the Guardian's trajectory analysis.
const GuardianResponseSchema = `{
  "type": "object",
  "properties": {
    "current_phase": {"type": "string"},
    "trajectory_aligned": {"type": "boolean"},
    "alignment_score": {"type": "number", "minimum": 0, "maximum": 1},
    "trajectory_summary": {"type": "string"},
    "needs_steering": {"type": "boolean"},
    "steering_type": {
      "type": "string",
      "enum": ["stuck", "drifting", "violating_constraints", "idle", "missed_steps", "wrong_direction", "none"]
    },
    "steering_message": {"type": "string"}
  },
  "required": ["current_phase", "trajectory_aligned", "alignment_score", "trajectory_summary", "needs_steering", "steering_type"],
  "additionalProperties": false
}`

// GuardianSchema is the compiled form, built once at init.
var GuardianSchema = llm.CompileSchema(GuardianResponseSchema)

// GuardianResponse is the decoded Guardian analysis.
type GuardianResponse struct {
	CurrentPhase       string  `json:"current_phase"`
	TrajectoryAligned  bool    `json:"trajectory_aligned"`
	AlignmentScore     float64 `json:"alignment_score"`
	TrajectorySummary  string  `json:"trajectory_summary"`
	NeedsSteering      bool    `json:"needs_steering"`
	SteeringType       string  `json:"steering_type"`
	SteeringMessage    string  `json:"steering_message"`
}

// GuardianContext is everything the Guardian sees about one agent.
type GuardianContext struct {
	AgentID          string
	WorkflowGoal     string
	PhaseName        string
	PhaseDescription string
	PhaseDoneDefs    []string
	AdditionalNotes  string
	TaskDescription  string
	DoneDefinition   string
	PriorSummaries   []string
	Scrollback       string

	// Distilled from the phase notes and the agent-log history.
	Constraints          []string
	LiftedConstraints    []string
	StandingInstructions []string
	CurrentFocus         string
	Blockers             []string
}

// BuildGuardianMessages composes the trajectory-analysis conversation. The
// system message carries the evaluation rules; the user message carries the
// agent's history and recent terminal output.
func (b *PromptBuilder) BuildGuardianMessages(gc GuardianContext) []llm.Message {
	system := `You are the Guardian: a supervisor analysing the trajectory of one autonomous coding agent.

Given the agent's assignment and its recent terminal output, judge whether it is progressing toward its done definition.

Flag needs_steering=true with the matching steering_type when you observe:
- "stuck": the same error or failing command repeated 5 or more times with no change in approach
- "drifting": sustained work (more than a few minutes of output) on files or topics outside the current phase
- "violating_constraints": an action the phase notes explicitly forbid
- "idle": no meaningful activity in the output although the task is not done
- "missed_steps": a mandatory step from the additional notes was skipped
- "wrong_direction": activity that moves away from the done definition

Otherwise set needs_steering=false and steering_type="none".
alignment_score is 0 to 1: 1 means squarely on track, below 0.5 means seriously off course.
When needs_steering is true, steering_message must be a concrete, actionable instruction addressed to the agent, not a description of the problem.
Respond with JSON only.`

	var u strings.Builder
	fmt.Fprintf(&u, "## Workflow goal\n%s\n\n", gc.WorkflowGoal)
	fmt.Fprintf(&u, "## Phase: %s\n%s\n\n", gc.PhaseName, gc.PhaseDescription)
	if len(gc.PhaseDoneDefs) > 0 {
		u.WriteString("Phase done definitions:\n")
		for _, d := range gc.PhaseDoneDefs {
			fmt.Fprintf(&u, "- %s\n", d)
		}
		u.WriteString("\n")
	}
	if gc.AdditionalNotes != "" {
		fmt.Fprintf(&u, "Mandatory notes:\n%s\n\n", gc.AdditionalNotes)
	}
	if len(gc.Constraints) > 0 {
		u.WriteString("Hard constraints (watch for violations):\n")
		for _, c := range gc.Constraints {
			fmt.Fprintf(&u, "- %s\n", c)
		}
		u.WriteString("\n")
	}
	if len(gc.LiftedConstraints) > 0 {
		u.WriteString("Lifted constraints (no longer in force, do not flag):\n")
		for _, c := range gc.LiftedConstraints {
			fmt.Fprintf(&u, "- %s\n", c)
		}
		u.WriteString("\n")
	}
	if len(gc.StandingInstructions) > 0 {
		u.WriteString("Standing instructions:\n")
		for _, s := range gc.StandingInstructions {
			fmt.Fprintf(&u, "- %s\n", s)
		}
		u.WriteString("\n")
	}
	fmt.Fprintf(&u, "## Agent's task\n%s\n\nDone definition: %s\n\n", gc.TaskDescription, gc.DoneDefinition)
	if len(gc.PriorSummaries) > 0 {
		u.WriteString("## Prior trajectory summaries (oldest first)\n")
		for _, s := range gc.PriorSummaries {
			fmt.Fprintf(&u, "- %s\n", s)
		}
		u.WriteString("\n")
	}
	if gc.CurrentFocus != "" {
		fmt.Fprintf(&u, "Current focus: %s\n\n", gc.CurrentFocus)
	}
	if len(gc.Blockers) > 0 {
		u.WriteString("Recurring blockers seen in the history:\n")
		for _, b := range gc.Blockers {
			fmt.Fprintf(&u, "- %s\n", b)
		}
		u.WriteString("\n")
	}
	fmt.Fprintf(&u, "## Recent terminal output\n```\n%s\n```\n", gc.Scrollback)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: u.String()},
	}
}

// ConductorResponseSchema constrains the Conductor's cross-agent analysis.
const ConductorResponseSchema = `{
  "type": "object",
  "properties": {
    "coherence_score": {"type": "number", "minimum": 0, "maximum": 1},
    "narrative": {"type": "string"},
    "duplicate_pairs": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "agent_a": {"type": "string"},
          "agent_b": {"type": "string"},
          "similarity": {"type": "number", "minimum": 0, "maximum": 1},
          "reason": {"type": "string"}
        },
        "required": ["agent_a", "agent_b", "similarity"],
        "additionalProperties": false
      }
    },
    "termination_recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "agent_id": {"type": "string"},
          "reason": {"type": "string"}
        },
        "required": ["agent_id", "reason"],
        "additionalProperties": false
      }
    }
  },
  "required": ["coherence_score", "narrative", "duplicate_pairs", "termination_recommendations"],
  "additionalProperties": false
}`

// ConductorSchema is the compiled form, built once at init.
var ConductorSchema = llm.CompileSchema(ConductorResponseSchema)

// DuplicatePair is one pair of agents the Conductor judged to be doing
// substantially the same work.
type DuplicatePair struct {
	AgentA     string  `json:"agent_a"`
	AgentB     string  `json:"agent_b"`
	Similarity float64 `json:"similarity"`
	Reason     string  `json:"reason,omitempty"`
}

// TerminationRecommendation names one agent the Conductor thinks should
// stop, with its reason.
type TerminationRecommendation struct {
	AgentID string `json:"agent_id"`
	Reason  string `json:"reason"`
}

// ConductorResponse is the decoded system-level analysis.
type ConductorResponse struct {
	CoherenceScore             float64                     `json:"coherence_score"`
	Narrative                  string                      `json:"narrative"`
	DuplicatePairs             []DuplicatePair             `json:"duplicate_pairs"`
	TerminationRecommendations []TerminationRecommendation `json:"termination_recommendations"`
}

// ConductorAgentSummary is one agent's line in the Conductor's input.
type ConductorAgentSummary struct {
	AgentID           string
	AgentType         string
	PhaseName         string
	TaskDescription   string
	TrajectorySummary string
	AlignmentScore    float64
}

// BuildConductorMessages composes the system-level analysis conversation
// over the latest Guardian summaries of every active agent.
func (b *PromptBuilder) BuildConductorMessages(workflowGoal string, agents []ConductorAgentSummary) []llm.Message {
	system := `You are the Conductor: a system-level supervisor looking across ALL active agents of one workflow at once.

Judge how coherently the swarm advances the workflow goal:
- coherence_score is 0 to 1: 1 means every agent pulls in a distinct, complementary direction.
- narrative is a 3 to 5 sentence account of what the system as a whole is doing.
- duplicate_pairs lists pairs of agents doing substantially the same work, with a 0 to 1 similarity.
  Never pair a validator or result_validator with the agent it reviews; reviewing work is not duplicating it.
- termination_recommendations lists agents whose work is redundant or harmful and should stop.

Respond with JSON only.`

	var u strings.Builder
	fmt.Fprintf(&u, "## Workflow goal\n%s\n\n## Active agents\n", workflowGoal)
	for _, a := range agents {
		fmt.Fprintf(&u, "- agent_id=%s type=%s phase=%q alignment=%.2f\n  task: %s\n  trajectory: %s\n",
			a.AgentID, a.AgentType, a.PhaseName, a.AlignmentScore, a.TaskDescription, a.TrajectorySummary)
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: u.String()},
	}
}

// EnrichmentResponseSchema constrains task-enrichment output.
const EnrichmentResponseSchema = `{
  "type": "object",
  "properties": {
    "description": {"type": "string"}
  },
  "required": ["description"],
  "additionalProperties": false
}`

// EnrichmentSchema is the compiled form, built once at init.
var EnrichmentSchema = llm.CompileSchema(EnrichmentResponseSchema)

// EnrichmentResponse is the decoded enrichment result.
type EnrichmentResponse struct {
	Description string `json:"description"`
}

// BuildEnrichmentMessages composes the task-enrichment conversation. The
// rewrite must preserve every concrete detail of the original; enrichment
// adds context, it never summarises.
func (b *PromptBuilder) BuildEnrichmentMessages(workflowGoal string, phase *ent.Phase, description, doneDefinition string) []llm.Message {
	system := `You rewrite task descriptions for autonomous coding agents.

Expand the description below with context an agent needs to start immediately: the phase it belongs to, how it serves the workflow goal, and any implicit constraints. Preserve every concrete detail of the original verbatim, including file paths, identifiers and any "TICKET: <id>" reference. Do not shorten it. Respond with JSON only.`

	var u strings.Builder
	fmt.Fprintf(&u, "## Workflow goal\n%s\n\n", workflowGoal)
	if phase != nil {
		fmt.Fprintf(&u, "## Phase: %s\n%s\n\n", phase.Name, phase.Description)
	}
	fmt.Fprintf(&u, "## Task description\n%s\n\n## Done definition\n%s\n", description, doneDefinition)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: u.String()},
	}
}

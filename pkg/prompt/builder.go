// Package prompt builds all prompt text injected into agent sessions and
// sent to analysis LLMs. Stateless; all state comes from parameters.
package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hephaestus-ai/hephaestus/ent"
)

// TicketRef matches the mandatory "TICKET: <id>" linkage substring in task
// descriptions for ticketed workflows. The queue engine extracts it and the
// Guardian flags its absence.
var TicketRef = regexp.MustCompile(`TICKET:\s*([A-Za-z0-9-]+)`)

// ExtractTicketID returns the ticket ID referenced in text, or "".
func ExtractTicketID(text string) string {
	m := TicketRef.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// agentToolNames is the exact tool list included in every initial prompt.
var agentToolNames = []string{
	"create_task",
	"update_task_status",
	"save_memory",
	"qdrant_find",
	"create_ticket",
	"change_ticket_status",
	"add_ticket_comment",
	"resolve_ticket",
	"search_tickets",
	"give_validation_review",
	"submit_result",
	"submit_result_validation",
	"validate_agent_id",
}

// PromptBuilder builds prompt text for agent sessions. Stateless and
// thread-safe.
type PromptBuilder struct{}

// NewPromptBuilder creates a PromptBuilder.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// InitialPromptInput carries everything the initial agent prompt needs.
type InitialPromptInput struct {
	AgentID       string
	WorkflowGoal  string
	Phase         *ent.Phase
	Task          *ent.Task
	TicketContext string
	MemoryHints   []string
}

// BuildInitialPrompt composes the prompt injected into a fresh agent
// session. The agent's literal ID comes first with an explicit warning
// against placeholders; agents inventing IDs like "your-agent-id" was a
// recurring failure before the warning was added.
func (b *PromptBuilder) BuildInitialPrompt(in InitialPromptInput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Your agent ID is %s\n", in.AgentID)
	sb.WriteString("IMPORTANT: use this EXACT ID in the X-Agent-ID header of every tool call. ")
	sb.WriteString("Do NOT substitute a placeholder such as \"your-agent-id\", \"agent_id\" or \"<agent_id>\" - ")
	sb.WriteString("calls with placeholder IDs are rejected.\n\n")

	fmt.Fprintf(&sb, "## Workflow goal\n%s\n\n", in.WorkflowGoal)

	if in.Phase != nil {
		fmt.Fprintf(&sb, "## Current phase: %d - %s\n%s\n\n", in.Phase.Number, in.Phase.Name, in.Phase.Description)
		if len(in.Phase.DoneDefinitions) > 0 {
			sb.WriteString("Phase done definitions:\n")
			for _, d := range in.Phase.DoneDefinitions {
				fmt.Fprintf(&sb, "- %s\n", d)
			}
			sb.WriteString("\n")
		}
		if in.Phase.AdditionalNotes != "" {
			fmt.Fprintf(&sb, "Additional notes (mandatory):\n%s\n\n", in.Phase.AdditionalNotes)
		}
	}

	fmt.Fprintf(&sb, "## Your task\n%s\n\n", in.Task.Description)
	fmt.Fprintf(&sb, "Done definition: %s\n\n", in.Task.DoneDefinition)

	if in.Task.LastValidationFeedback != nil && *in.Task.LastValidationFeedback != "" {
		fmt.Fprintf(&sb, "## Previous validation feedback\n%s\n\n", *in.Task.LastValidationFeedback)
	}
	if in.TicketContext != "" {
		fmt.Fprintf(&sb, "## Ticket context\n%s\n\n", in.TicketContext)
	}
	if len(in.MemoryHints) > 0 {
		sb.WriteString("## Relevant memories\n")
		for _, m := range in.MemoryHints {
			fmt.Fprintf(&sb, "- %s\n", m)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Available tools\nYou may call exactly these tools:\n")
	for _, name := range agentToolNames {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	sb.WriteString("\nWhen you create tasks for a ticketed workflow, the task description MUST contain the literal substring \"TICKET: <ticket_id>\".\n")
	sb.WriteString("When your task is complete, call update_task_status with status \"done\" and a summary. ")
	sb.WriteString("If you cannot complete it, call update_task_status with status \"failed\" and the reason.\n")

	return sb.String()
}

// ValidatorPromptInput carries what a task-level validator needs.
type ValidatorPromptInput struct {
	AgentID               string
	Task                  *ent.Task
	Criteria              []string
	ValidatorInstructions string
	WorktreePath          string
	Iteration             int
}

// BuildValidatorPrompt composes the prompt for a task-level validator
// agent. The validator works against the original agent's worktree
// read-only.
func (b *PromptBuilder) BuildValidatorPrompt(in ValidatorPromptInput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Your agent ID is %s\n", in.AgentID)
	sb.WriteString("Use this EXACT ID in the X-Agent-ID header of every tool call; placeholder IDs are rejected.\n\n")

	sb.WriteString("You are a VALIDATOR. Another agent claims the following task is complete; verify it.\n\n")
	fmt.Fprintf(&sb, "## Task under review\n%s\n\nDone definition: %s\n\n", in.Task.Description, in.Task.DoneDefinition)
	fmt.Fprintf(&sb, "The implementing agent's worktree is at %s. Inspect it READ-ONLY; do not modify files.\n\n", in.WorktreePath)

	if len(in.Criteria) > 0 {
		sb.WriteString("## Validation criteria\nCheck each criterion and gather evidence:\n")
		for _, c := range in.Criteria {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
		sb.WriteString("\n")
	}
	if in.ValidatorInstructions != "" {
		fmt.Fprintf(&sb, "## Validator instructions\n%s\n\n", in.ValidatorInstructions)
	}
	fmt.Fprintf(&sb, "This is validation iteration %d for this task.\n\n", in.Iteration)

	fmt.Fprintf(&sb, "When done, call give_validation_review with task_id=%s, pass=true|false, ", in.Task.ID)
	sb.WriteString("feedback describing what you verified or what is missing, and evidence (file paths, command output, exit codes).\n")

	return sb.String()
}

// ResultValidatorPromptInput carries what a workflow result-validator needs.
type ResultValidatorPromptInput struct {
	AgentID      string
	WorkflowGoal string
	Criteria     []string
	ResultID     string
	MarkdownPath string
}

// BuildResultValidatorPrompt composes the prompt for a workflow-level
// result validator. The criteria are included verbatim; they may prescribe
// exact verification commands the validator must execute.
func (b *PromptBuilder) BuildResultValidatorPrompt(in ResultValidatorPromptInput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Your agent ID is %s\n", in.AgentID)
	sb.WriteString("Use this EXACT ID in the X-Agent-ID header of every tool call; placeholder IDs are rejected.\n\n")

	sb.WriteString("You are a RESULT VALIDATOR. An agent submitted a candidate final result for the workflow goal below. ")
	sb.WriteString("Decide whether it genuinely satisfies the goal.\n\n")
	fmt.Fprintf(&sb, "## Workflow goal\n%s\n\n", in.WorkflowGoal)
	fmt.Fprintf(&sb, "## Candidate result\nThe result markdown is at %s.\n\n", in.MarkdownPath)

	sb.WriteString("## Result criteria (verbatim)\n")
	sb.WriteString("Each criterion below must hold. If a criterion prescribes verification steps or commands, execute them exactly:\n")
	for _, c := range in.Criteria {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "When done, call submit_result_validation with result_id=%s, pass=true|false, ", in.ResultID)
	sb.WriteString("feedback, and evidence for every criterion you checked.\n")

	return sb.String()
}

// DiagnosticPromptInput carries the stalled-workflow context for the
// doctor agent.
type DiagnosticPromptInput struct {
	AgentID         string
	WorkflowGoal    string
	Phases          []*ent.Phase
	RecentAgents    []string
	RecentAnalyses  []string
	RejectedResults []string
	MaxTasks        int
}

// BuildDiagnosticPrompt composes the "workflow doctor" prompt. The doctor
// must diagnose why the workflow stalled and create fresh tasks to unstick
// it.
func (b *PromptBuilder) BuildDiagnosticPrompt(in DiagnosticPromptInput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Your agent ID is %s\n", in.AgentID)
	sb.WriteString("Use this EXACT ID in the X-Agent-ID header of every tool call; placeholder IDs are rejected.\n\n")

	sb.WriteString("You are the WORKFLOW DOCTOR. The workflow below has stalled: no open tasks remain, ")
	sb.WriteString("but no validated result exists either. Diagnose why and create new tasks to get it moving again.\n\n")
	fmt.Fprintf(&sb, "## Workflow goal\n%s\n\n", in.WorkflowGoal)

	sb.WriteString("## Phases\n")
	for _, p := range in.Phases {
		fmt.Fprintf(&sb, "- phase_id=%s number=%d name=%q: %s\n", p.ID, p.Number, p.Name, p.Description)
	}
	sb.WriteString("\n")

	if len(in.RecentAgents) > 0 {
		sb.WriteString("## Recent agent outcomes\n")
		for _, a := range in.RecentAgents {
			fmt.Fprintf(&sb, "- %s\n", a)
		}
		sb.WriteString("\n")
	}
	if len(in.RecentAnalyses) > 0 {
		sb.WriteString("## Recent system analyses\n")
		for _, a := range in.RecentAnalyses {
			fmt.Fprintf(&sb, "- %s\n", a)
		}
		sb.WriteString("\n")
	}
	if len(in.RejectedResults) > 0 {
		sb.WriteString("## Rejected workflow results\n")
		for _, r := range in.RejectedResults {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Create between 1 and %d new tasks via create_task, each with a valid phase_id from the phase list above. ", in.MaxTasks)
	sb.WriteString("Then call update_task_status on your own task with status \"done\" and a summary of your diagnosis.\n")

	return sb.String()
}

// BuildValidationFeedback composes the message injected into the original
// agent's session after a failed validation.
func (b *PromptBuilder) BuildValidationFeedback(iteration int, feedback string) string {
	return fmt.Sprintf(
		"VALIDATION FAILED (iteration %d). A validator reviewed your work and found it incomplete:\n\n%s\n\nAddress the feedback above, then call update_task_status with status \"done\" again.",
		iteration, feedback)
}

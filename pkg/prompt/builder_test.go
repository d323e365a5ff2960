package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
)

func TestExtractTicketID(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{
			name:   "plain reference",
			text:   "Implement the login flow. TICKET: abc-123",
			expect: "abc-123",
		},
		{
			name:   "reference mid-text",
			text:   "TICKET: f00d-42 then verify the fix",
			expect: "f00d-42",
		},
		{
			name:   "no space after colon",
			text:   "TICKET:deadbeef",
			expect: "deadbeef",
		},
		{
			name:   "no reference",
			text:   "just a task without any ticket",
			expect: "",
		},
		{
			name:   "lowercase prefix is not a reference",
			text:   "ticket: abc-123",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ExtractTicketID(tt.text))
		})
	}
}

func TestBuildInitialPrompt(t *testing.T) {
	b := NewPromptBuilder()

	feedback := "tests are missing for the error path"
	in := InitialPromptInput{
		AgentID:      "agent-1234",
		WorkflowGoal: "ship the payment service",
		Phase: &ent.Phase{
			Number:          2,
			Name:            "implementation",
			Description:     "write the code",
			DoneDefinitions: []string{"all tests green"},
			AdditionalNotes: "You MUST NOT push directly to main.",
		},
		Task: &ent.Task{
			Description:            "add retry logic to the charge endpoint",
			DoneDefinition:         "retries with backoff, covered by tests",
			LastValidationFeedback: &feedback,
		},
		TicketContext: "Ticket abc: flaky charges",
		MemoryHints:   []string{"stripe sandbox keys live in .env.test"},
	}

	p := b.BuildInitialPrompt(in)

	// The literal ID must come first so the agent cannot miss it.
	require.True(t, strings.HasPrefix(p, "Your agent ID is agent-1234"))
	assert.Contains(t, p, "placeholder")
	assert.Contains(t, p, "ship the payment service")
	assert.Contains(t, p, "Current phase: 2 - implementation")
	assert.Contains(t, p, "all tests green")
	assert.Contains(t, p, "MUST NOT push directly to main")
	assert.Contains(t, p, "add retry logic to the charge endpoint")
	assert.Contains(t, p, "tests are missing for the error path")
	assert.Contains(t, p, "Ticket abc: flaky charges")
	assert.Contains(t, p, "stripe sandbox keys live in .env.test")
	assert.Contains(t, p, `"TICKET: <ticket_id>"`)

	for _, tool := range []string{
		"create_task", "update_task_status", "save_memory", "qdrant_find",
		"create_ticket", "give_validation_review", "submit_result", "validate_agent_id",
	} {
		assert.Contains(t, p, tool)
	}
}

func TestBuildValidatorPromptIsReadOnly(t *testing.T) {
	b := NewPromptBuilder()

	p := b.BuildValidatorPrompt(ValidatorPromptInput{
		AgentID:      "val-1",
		Task:         &ent.Task{Description: "implement parser", DoneDefinition: "parses all fixtures"},
		Criteria:     []string{"go test ./... exits 0"},
		WorktreePath: "/work/agent-x",
		Iteration:    1,
	})

	assert.Contains(t, p, "val-1")
	assert.Contains(t, p, "READ-ONLY")
	assert.Contains(t, p, "/work/agent-x")
	assert.Contains(t, p, "go test ./... exits 0")
	assert.Contains(t, p, "give_validation_review")
}

func TestBuildValidationFeedback(t *testing.T) {
	b := NewPromptBuilder()

	msg := b.BuildValidationFeedback(3, "the CLI flag is not wired")
	assert.Contains(t, msg, "the CLI flag is not wired")
	assert.Contains(t, msg, "3")
}

func TestBuildGuardianMessages(t *testing.T) {
	b := NewPromptBuilder()

	msgs := b.BuildGuardianMessages(GuardianContext{
		AgentID:              "agent-9",
		WorkflowGoal:         "migrate the billing database",
		PhaseName:            "verification",
		TaskDescription:      "verify row counts match",
		DoneDefinition:       "counts equal on both sides",
		Constraints:          []string{"You MUST NOT drop tables."},
		LiftedConstraints:    []string{"you may now write to the replica"},
		StandingInstructions: []string{"always run the row checksum first"},
		CurrentFocus:         "comparing invoice row counts",
		Blockers:             []string{"error: connection to replica refused"},
		PriorSummaries:       []string{"agent started comparing schemas"},
		Scrollback:           "$ psql -c 'select count(*) from invoices'",
	})

	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "migrate the billing database")
	assert.Contains(t, msgs[1].Content, "MUST NOT drop tables")
	assert.Contains(t, msgs[1].Content, "you may now write to the replica")
	assert.Contains(t, msgs[1].Content, "always run the row checksum first")
	assert.Contains(t, msgs[1].Content, "Current focus: comparing invoice row counts")
	assert.Contains(t, msgs[1].Content, "error: connection to replica refused")
	assert.Contains(t, msgs[1].Content, "select count(*) from invoices")
	assert.Contains(t, msgs[1].Content, "agent started comparing schemas")
}

func TestBuildConductorMessagesExcludesReviewerPairing(t *testing.T) {
	b := NewPromptBuilder()

	msgs := b.BuildConductorMessages("build the api", []ConductorAgentSummary{
		{AgentID: "a1", AgentType: "phase", PhaseName: "impl", TaskDescription: "write handlers", AlignmentScore: 0.9},
		{AgentID: "a2", AgentType: "validator", PhaseName: "impl", TaskDescription: "review handlers", AlignmentScore: 0.8},
	})

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "validator")
	assert.Contains(t, msgs[1].Content, "a1")
	assert.Contains(t, msgs[1].Content, "a2")
}

package conductor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/pkg/prompt"
)

func TestLessAdvanced(t *testing.T) {
	now := time.Now()
	mk := func(id string, phase int, alignment float64, created time.Time) agentView {
		return agentView{
			agent:       &ent.Agent{ID: id, CreatedAt: created},
			phaseNumber: phase,
			alignment:   alignment,
		}
	}

	tests := []struct {
		name        string
		a, b        agentView
		expectLoser string
	}{
		{
			name:        "later arrival loses even when further along",
			a:           mk("a", 3, 0.9, now.Add(time.Minute)),
			b:           mk("b", 1, 0.2, now),
			expectLoser: "a",
		},
		{
			name:        "same start, earlier phase loses",
			a:           mk("a", 1, 0.9, now),
			b:           mk("b", 3, 0.2, now),
			expectLoser: "a",
		},
		{
			name:        "same start and phase, lower alignment loses",
			a:           mk("a", 2, 0.8, now),
			b:           mk("b", 2, 0.5, now),
			expectLoser: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectLoser, lessAdvanced(tt.a, tt.b).agent.ID)
		})
	}
}

func TestFilterPairs(t *testing.T) {
	views := map[string]agentView{
		"impl-1": {agent: &ent.Agent{ID: "impl-1", AgentType: agent.AgentTypePhase}},
		"impl-2": {agent: &ent.Agent{ID: "impl-2", AgentType: agent.AgentTypePhase}},
		"val-1":  {agent: &ent.Agent{ID: "val-1", AgentType: agent.AgentTypeValidator}},
		"rv-1":   {agent: &ent.Agent{ID: "rv-1", AgentType: agent.AgentTypeResultValidator}},
	}
	c := &Conductor{}

	pairs := []prompt.DuplicatePair{
		{AgentA: "impl-1", AgentB: "impl-2", Similarity: 0.95},
		{AgentA: "impl-1", AgentB: "val-1", Similarity: 0.99},  // validator reviewing impl-1
		{AgentA: "impl-2", AgentB: "rv-1", Similarity: 0.90},   // result validator
		{AgentA: "impl-1", AgentB: "impl-1", Similarity: 0.99}, // self pair
		{AgentA: "impl-1", AgentB: "ghost", Similarity: 0.99},  // unknown agent
	}

	filtered := c.filterPairs(pairs, views)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "impl-1", filtered[0].AgentA)
	assert.Equal(t, "impl-2", filtered[0].AgentB)
}

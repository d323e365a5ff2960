package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

func seedAgent(t *testing.T, svc *AgentService, workflowID string) *ent.Agent {
	t.Helper()
	a, err := svc.CreateAgent(context.Background(), workflowID, "",
		agent.AgentTypePhase, "hephaestus-"+uuid.New().String()[:8])
	require.NoError(t, err)
	return a
}

func TestValidateAgentID(t *testing.T) {
	svc := &AgentService{}

	assert.NoError(t, svc.ValidateAgentID(uuid.New().String()))
	assert.NoError(t, svc.ValidateAgentID("  "+uuid.New().String()+"  "))

	assert.True(t, IsValidationError(svc.ValidateAgentID("")))
	assert.True(t, IsValidationError(svc.ValidateAgentID("not-a-uuid")))
	assert.True(t, IsValidationError(svc.ValidateAgentID("your-agent-id")))
	assert.True(t, IsValidationError(svc.ValidateAgentID("<agent_id>")))
}

func TestAuthorize(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewAgentService(client)
	wf := seedWorkflow(t, client)
	a := seedAgent(t, svc, wf.ID)

	got, err := svc.Authorize(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	// Placeholders get the diagnostic rejection, not a lookup failure.
	_, err = svc.Authorize(ctx, "your-agent-id")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Contains(t, err.Error(), "placeholder")

	_, err = svc.Authorize(ctx, "")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = svc.Authorize(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Terminated agents lose access.
	_, err = svc.MarkTerminated(ctx, a.ID, "done", false)
	require.NoError(t, err)
	_, err = svc.Authorize(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestCountActive(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewAgentService(client)
	wf := seedWorkflow(t, client)

	a1 := seedAgent(t, svc, wf.ID)
	a2 := seedAgent(t, svc, wf.ID)
	_, err := svc.SetWorking(ctx, a2.ID)
	require.NoError(t, err)

	count, err := svc.CountActive(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Terminated agents free their slot; idempotent re-termination keeps
	// the first reason.
	terminated, err := svc.MarkTerminated(ctx, a1.ID, "first reason", false)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusTerminated, terminated.Status)
	again, err := svc.MarkTerminated(ctx, a1.ID, "second reason", true)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusTerminated, again.Status)

	count, err = svc.CountActive(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

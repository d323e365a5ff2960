package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/ent"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/pkg/models"
	"github.com/hephaestus-ai/hephaestus/test/util"
)

func seedTicket(t *testing.T, svc *TicketService, workflowID, title string) *ent.Ticket {
	t.Helper()
	tk, err := svc.CreateTicket(context.Background(), models.CreateTicketRequest{
		WorkflowID:  workflowID,
		Title:       title,
		Description: "details for " + title,
		TicketType:  "bug",
	}, "open", ticket.ApprovalStatusApproved)
	require.NoError(t, err)
	return tk
}

func TestCreateTicketValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTicketService(client)

	_, err := svc.CreateTicket(context.Background(), models.CreateTicketRequest{
		WorkflowID: "wf", TicketType: "bug",
	}, "open", ticket.ApprovalStatusApproved)
	assert.True(t, IsValidationError(err))
}

func TestAddBlockRejectsCycles(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTicketService(client)
	wf := seedWorkflow(t, client)

	a := seedTicket(t, svc, wf.ID, "a")
	b := seedTicket(t, svc, wf.ID, "b")
	c := seedTicket(t, svc, wf.ID, "c")

	require.NoError(t, svc.AddBlock(ctx, a.ID, b.ID))
	require.NoError(t, svc.AddBlock(ctx, b.ID, c.ID))

	// c -> a would close the cycle a -> b -> c -> a.
	assert.ErrorIs(t, svc.AddBlock(ctx, c.ID, a.ID), ErrConflict)

	// Self edges and duplicate edges are rejected too.
	assert.ErrorIs(t, svc.AddBlock(ctx, a.ID, a.ID), ErrConflict)
	assert.ErrorIs(t, svc.AddBlock(ctx, a.ID, b.ID), ErrAlreadyExists)
}

func TestAddBlockAcrossWorkflows(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTicketService(client)

	wf1 := seedWorkflow(t, client)
	wf2 := seedWorkflow(t, client)
	a := seedTicket(t, svc, wf1.ID, "a")
	b := seedTicket(t, svc, wf2.ID, "b")

	assert.True(t, IsValidationError(svc.AddBlock(ctx, a.ID, b.ID)))
}

func TestResolveRequiresBlockersResolved(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTicketService(client)
	wf := seedWorkflow(t, client)

	blocker := seedTicket(t, svc, wf.ID, "blocker")
	blocked := seedTicket(t, svc, wf.ID, "blocked")
	require.NoError(t, svc.AddBlock(ctx, blocker.ID, blocked.ID))

	_, _, err := svc.Resolve(ctx, blocked.ID, "done")
	assert.ErrorIs(t, err, ErrInvalidState)

	// Resolving the blocker reports the successor as unblocked.
	resolved, unblocked, err := svc.Resolve(ctx, blocker.ID, "fixed upstream")
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	assert.Equal(t, []string{blocked.ID}, unblocked)

	_, _, err = svc.Resolve(ctx, blocked.ID, "done")
	require.NoError(t, err)
}

func TestResolveWithMultipleBlockers(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTicketService(client)
	wf := seedWorkflow(t, client)

	b1 := seedTicket(t, svc, wf.ID, "b1")
	b2 := seedTicket(t, svc, wf.ID, "b2")
	succ := seedTicket(t, svc, wf.ID, "succ")
	require.NoError(t, svc.AddBlock(ctx, b1.ID, succ.ID))
	require.NoError(t, svc.AddBlock(ctx, b2.ID, succ.ID))

	// Resolving one of two blockers does not unblock the successor yet.
	_, unblocked, err := svc.Resolve(ctx, b1.ID, "")
	require.NoError(t, err)
	assert.Empty(t, unblocked)

	_, unblocked, err = svc.Resolve(ctx, b2.ID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{succ.ID}, unblocked)
}

func TestResolveIsIdempotent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTicketService(client)
	wf := seedWorkflow(t, client)
	tk := seedTicket(t, svc, wf.ID, "a")

	_, _, err := svc.Resolve(ctx, tk.ID, "done")
	require.NoError(t, err)
	again, unblocked, err := svc.Resolve(ctx, tk.ID, "done twice")
	require.NoError(t, err)
	assert.True(t, again.Resolved)
	assert.Empty(t, unblocked)
}

func TestPendingReviewCount(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTicketService(client)
	wf := seedWorkflow(t, client)

	for i, st := range []ticket.ApprovalStatus{
		ticket.ApprovalStatusPendingReview,
		ticket.ApprovalStatusPendingReview,
		ticket.ApprovalStatusApproved,
	} {
		_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
			WorkflowID:  wf.ID,
			Title:       "t",
			Description: "d",
			TicketType:  "bug",
		}, "open", st)
		require.NoError(t, err, "ticket %d", i)
	}

	count, err := svc.PendingReviewCount(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = svc.PendingReviewCount(ctx, "other-workflow")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteTicketRemovesEdgesAndComments(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTicketService(client)
	wf := seedWorkflow(t, client)

	a := seedTicket(t, svc, wf.ID, "a")
	b := seedTicket(t, svc, wf.ID, "b")
	require.NoError(t, svc.AddBlock(ctx, a.ID, b.ID))
	_, err := svc.AddComment(ctx, a.ID, "", "a note")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTicket(ctx, a.ID))

	_, err = svc.GetTicket(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	blockers, err := svc.UnresolvedBlockers(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, blockers)
}

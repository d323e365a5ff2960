package ticketing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/pkg/services"
)

func TestApprovalBrokerDeliversDecision(t *testing.T) {
	b := NewApprovalBroker()

	ch, cleanup := b.register("tick-1")
	defer cleanup()
	assert.Equal(t, 1, b.PendingCount())

	go func() {
		_ = b.Decide("tick-1", Decision{Approved: true, Comment: "looks good"})
	}()

	d, err := b.await(context.Background(), ch, time.Second)
	require.NoError(t, err)
	assert.True(t, d.Approved)
	assert.Equal(t, "looks good", d.Comment)
	assert.Equal(t, 0, b.PendingCount())
}

func TestApprovalBrokerDecideWithoutWaiter(t *testing.T) {
	b := NewApprovalBroker()

	err := b.Decide("nobody-waiting", Decision{Approved: true})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApprovalBrokerTimeout(t *testing.T) {
	b := NewApprovalBroker()

	ch, cleanup := b.register("tick-2")
	defer cleanup()

	_, err := b.await(context.Background(), ch, 10*time.Millisecond)
	assert.ErrorIs(t, err, services.ErrTimeout)
}

func TestApprovalBrokerContextCancel(t *testing.T) {
	b := NewApprovalBroker()

	ch, cleanup := b.register("tick-3")
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.await(ctx, ch, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApprovalBrokerSecondDecisionFails(t *testing.T) {
	b := NewApprovalBroker()

	ch, cleanup := b.register("tick-4")
	defer cleanup()

	require.NoError(t, b.Decide("tick-4", Decision{Approved: false, Comment: "no"}))
	assert.ErrorIs(t, b.Decide("tick-4", Decision{Approved: true}), services.ErrNotFound)

	d, err := b.await(context.Background(), ch, time.Second)
	require.NoError(t, err)
	assert.False(t, d.Approved)
}

package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hephaestus-ai/hephaestus/test/util"
)

func TestTruncatePayload(t *testing.T) {
	event := Event{
		Type:       EventResultsReported,
		WorkflowID: "wf-1",
		Payload:    map[string]any{"body": strings.Repeat("x", 10000)},
		Timestamp:  time.Now(),
	}

	data, err := truncatePayload(event)
	require.NoError(t, err)
	assert.Less(t, len(data), notifyPayloadLimit)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, EventResultsReported, decoded.Type)
	assert.Equal(t, "wf-1", decoded.WorkflowID)
	assert.Equal(t, map[string]any{"truncated": true}, decoded.Payload)
}

func TestPublishRoundTrip(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A dedicated connection LISTENs on the channel the publisher targets.
	listenConn, err := pgx.Connect(ctx, util.GetBaseConnectionString(t))
	require.NoError(t, err)
	defer listenConn.Close(context.Background())
	_, err = listenConn.Exec(ctx, "LISTEN "+EventsChannel)
	require.NoError(t, err)

	p := NewPublisher(db)
	require.NoError(t, p.Publish(ctx, EventTaskQueued, "wf-1", map[string]any{
		"task_id":        "t-1",
		"queue_position": 3,
	}))

	n, err := listenConn.WaitForNotification(ctx)
	require.NoError(t, err)
	assert.Equal(t, EventsChannel, n.Channel)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(n.Payload), &event))
	assert.Equal(t, EventTaskQueued, event.Type)
	assert.Equal(t, "wf-1", event.WorkflowID)
	assert.Equal(t, "t-1", event.Payload["task_id"])
	assert.False(t, event.Timestamp.IsZero())
}

func TestPublishTruncatesOversizedEvents(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	listenConn, err := pgx.Connect(ctx, util.GetBaseConnectionString(t))
	require.NoError(t, err)
	defer listenConn.Close(context.Background())
	_, err = listenConn.Exec(ctx, "LISTEN "+EventsChannel)
	require.NoError(t, err)

	p := NewPublisher(db)
	require.NoError(t, p.Publish(ctx, EventResultsReported, "wf-1", map[string]any{
		"content": strings.Repeat("x", 10000),
	}))

	n, err := listenConn.WaitForNotification(ctx)
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(n.Payload), &event))
	assert.Equal(t, map[string]any{"truncated": true}, event.Payload)
}

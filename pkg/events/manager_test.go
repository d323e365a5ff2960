package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesAllClients(t *testing.T) {
	m := NewConnectionManager(time.Second)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		require.NoError(t, err)
		m.HandleConnection(r.Context(), conn)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + srv.URL[len("http"):]
	c1, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer c1.Close(websocket.StatusNormalClosure, "")
	c2, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer c2.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return m.ConnectionCount() == 2 },
		2*time.Second, 10*time.Millisecond)

	m.Broadcast([]byte(`{"type":"task_queued"}`))

	for _, c := range []*websocket.Conn{c1, c2} {
		kind, data, err := c.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, websocket.MessageText, kind)
		assert.JSONEq(t, `{"type":"task_queued"}`, string(data))
	}
}

func TestDisconnectRemovesClient(t *testing.T) {
	m := NewConnectionManager(time.Second)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		require.NoError(t, err)
		m.HandleConnection(r.Context(), conn)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + srv.URL[len("http"):]
	c, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return m.ConnectionCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, c.Close(websocket.StatusNormalClosure, "done"))

	require.Eventually(t, func() bool { return m.ConnectionCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}

package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/hephaestus-ai/hephaestus/pkg/metrics"
)

// ConnectionManager tracks the WebSocket clients of this process. Every
// client receives every event; there is one broadcast channel.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	writeTimeout time.Duration
}

// Connection is one WebSocket client.
type Connection struct {
	ID     string
	Conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

// NewConnectionManager creates a ConnectionManager.
func NewConnectionManager(writeTimeout time.Duration) *ConnectionManager {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages one WebSocket client's lifecycle. Called by the
// HTTP handler after upgrade; blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:     uuid.New().String(),
		Conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()
	metrics.WebsocketConnections.Inc()
	slog.Debug("websocket connected", "connection_id", c.ID)

	defer func() {
		m.mu.Lock()
		delete(m.connections, c.ID)
		m.mu.Unlock()
		cancel()
		metrics.WebsocketConnections.Dec()
		slog.Debug("websocket disconnected", "connection_id", c.ID)
	}()

	// Read loop: clients send nothing meaningful today, but reading is
	// required to notice closes and process control frames.
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// Broadcast sends an event payload to every connected client.
func (m *ConnectionManager) Broadcast(event []byte) {
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		conns = append(conns, c)
	}
	m.mu.RUnlock()

	for _, c := range conns {
		writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
		err := c.Conn.Write(writeCtx, websocket.MessageText, event)
		cancel()
		if err != nil {
			slog.Debug("websocket write failed, dropping connection",
				"connection_id", c.ID, "error", err)
			c.cancel()
		}
	}
}

// ConnectionCount returns the number of connected clients.
func (m *ConnectionManager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

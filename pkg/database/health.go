package database

import (
	"context"
	"time"
)

// PoolStatus reports store reachability and connection pool pressure. The
// wait fields matter most here: a saturated pool shows up as agents timing
// out on tool calls long before the database itself is unhealthy.
type PoolStatus struct {
	Reachable       bool  `json:"reachable"`
	ResponseTimeMs  int64 `json:"response_time_ms"`
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	WaitCount       int64 `json:"wait_count"`
	WaitDurationMs  int64 `json:"wait_duration_ms"`
}

// Health pings the store and returns pool statistics.
func (c *Client) Health(ctx context.Context) (*PoolStatus, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &PoolStatus{ResponseTimeMs: time.Since(start).Milliseconds()}, err
	}

	stats := c.db.Stats()
	return &PoolStatus{
		Reachable:       true,
		ResponseTimeMs:  time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		WaitCount:       stats.WaitCount,
		WaitDurationMs:  stats.WaitDuration.Milliseconds(),
	}, nil
}

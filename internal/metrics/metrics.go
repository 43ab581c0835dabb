// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Balance read metrics
	IncBalanceCacheHit()
	IncBalanceCacheMiss()

	// Mutation metrics
	IncUserCreated()
	IncAccountCreated()
	IncBalanceAdjusted()
	ObserveAdjustDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncBalanceCacheHit is a no-op.
func (n *NoopRecorder) IncBalanceCacheHit() {}

// IncBalanceCacheMiss is a no-op.
func (n *NoopRecorder) IncBalanceCacheMiss() {}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncAccountCreated is a no-op.
func (n *NoopRecorder) IncAccountCreated() {}

// IncBalanceAdjusted is a no-op.
func (n *NoopRecorder) IncBalanceAdjusted() {}

// ObserveAdjustDuration is a no-op.
func (n *NoopRecorder) ObserveAdjustDuration(duration time.Duration) {}

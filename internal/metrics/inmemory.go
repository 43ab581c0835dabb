package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	BalanceCacheHits      uint64
	BalanceCacheMisses    uint64
	UsersCreated          uint64
	AccountsCreated       uint64
	BalancesAdjusted      uint64
	AdjustDurationCount   uint64
	AdjustDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	balanceCacheHits      uint64
	balanceCacheMisses    uint64
	usersCreated          uint64
	accountsCreated       uint64
	balancesAdjusted      uint64
	adjustDurationCount   uint64
	adjustDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		BalanceCacheHits:      atomic.LoadUint64(&m.balanceCacheHits),
		BalanceCacheMisses:    atomic.LoadUint64(&m.balanceCacheMisses),
		UsersCreated:          atomic.LoadUint64(&m.usersCreated),
		AccountsCreated:       atomic.LoadUint64(&m.accountsCreated),
		BalancesAdjusted:      atomic.LoadUint64(&m.balancesAdjusted),
		AdjustDurationCount:   atomic.LoadUint64(&m.adjustDurationCount),
		AdjustDurationTotalNs: atomic.LoadInt64(&m.adjustDurationTotalNs),
	}
}

// IncBalanceCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncBalanceCacheHit() {
	atomic.AddUint64(&m.balanceCacheHits, 1)
}

// IncBalanceCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncBalanceCacheMiss() {
	atomic.AddUint64(&m.balanceCacheMisses, 1)
}

// IncUserCreated increments the users created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncAccountCreated increments the accounts created counter.
func (m *InMemoryRecorder) IncAccountCreated() {
	atomic.AddUint64(&m.accountsCreated, 1)
}

// IncBalanceAdjusted increments the adjustments counter.
func (m *InMemoryRecorder) IncBalanceAdjusted() {
	atomic.AddUint64(&m.balancesAdjusted, 1)
}

// ObserveAdjustDuration records an adjustment duration.
func (m *InMemoryRecorder) ObserveAdjustDuration(duration time.Duration) {
	atomic.AddUint64(&m.adjustDurationCount, 1)
	atomic.AddInt64(&m.adjustDurationTotalNs, duration.Nanoseconds())
}

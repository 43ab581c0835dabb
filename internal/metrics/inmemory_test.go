package metrics

import (
	"testing"
	"time"
)

func TestInMemoryRecorder(t *testing.T) {
	m := NewInMemory()

	m.IncBalanceCacheHit()
	m.IncBalanceCacheHit()
	m.IncBalanceCacheMiss()
	m.IncUserCreated()
	m.IncAccountCreated()
	m.IncBalanceAdjusted()
	m.IncBalanceAdjusted()
	m.ObserveAdjustDuration(2 * time.Millisecond)

	snap := m.Snapshot()

	if snap.BalanceCacheHits != 2 {
		t.Errorf("expected 2 cache hits, got %d", snap.BalanceCacheHits)
	}
	if snap.BalanceCacheMisses != 1 {
		t.Errorf("expected 1 cache miss, got %d", snap.BalanceCacheMisses)
	}
	if snap.UsersCreated != 1 {
		t.Errorf("expected 1 user created, got %d", snap.UsersCreated)
	}
	if snap.AccountsCreated != 1 {
		t.Errorf("expected 1 account created, got %d", snap.AccountsCreated)
	}
	if snap.BalancesAdjusted != 2 {
		t.Errorf("expected 2 adjustments, got %d", snap.BalancesAdjusted)
	}
	if snap.AdjustDurationCount != 1 {
		t.Errorf("expected 1 duration sample, got %d", snap.AdjustDurationCount)
	}
	if snap.AdjustDurationTotalNs != (2 * time.Millisecond).Nanoseconds() {
		t.Errorf("unexpected duration total: %d", snap.AdjustDurationTotalNs)
	}
}

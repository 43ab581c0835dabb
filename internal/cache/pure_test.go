package cache

import "testing"

func TestBalanceKey(t *testing.T) {
	got := balanceKey("acc1")
	want := "account:balance:acc1"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHashIP(t *testing.T) {
	a := hashIP("203.0.113.7")
	b := hashIP("203.0.113.8")

	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("expected different IPs to hash differently")
	}
	if a != hashIP("203.0.113.7") {
		t.Error("expected hash to be deterministic")
	}
}

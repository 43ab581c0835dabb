package model

import "testing"

func TestAccountAdjusted(t *testing.T) {
	acct := Account{ID: "acc1", Balance: 10, OwnerID: "u1"}

	got := acct.Adjusted(50).Adjusted(-20)

	if got.Balance != 40 {
		t.Errorf("expected balance 40, got %v", got.Balance)
	}

	// Original value is untouched.
	if acct.Balance != 10 {
		t.Errorf("expected original balance 10, got %v", acct.Balance)
	}
}

func TestAccountAdjustedNegativeAllowed(t *testing.T) {
	acct := Account{ID: "acc1", Balance: 5}

	got := acct.Adjusted(-30)

	if got.Balance != -25 {
		t.Errorf("expected balance -25, got %v", got.Balance)
	}
}

package game

import "testing"

func TestOutgoingDamageStrength(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusStrength, 2)
	if got := l.ModifyOutgoingDamage(6); got != 8 {
		t.Errorf("Strength 2 on base 6: got %d, want 8", got)
	}
}

func TestOutgoingDamageWeakAfterStrength(t *testing.T) {
	// Strength adds first, then Weak multiplies: (6+2)*3/4 = 6.
	l := NewLedger()
	l.Apply(StatusStrength, 2)
	l.Apply(StatusWeak, 1)
	if got := l.ModifyOutgoingDamage(6); got != 6 {
		t.Errorf("Strength 2 + Weak on base 6: got %d, want 6", got)
	}
}

func TestWeakFloorsTowardZero(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusWeak, 1)
	if got := l.ModifyOutgoingDamage(6); got != 4 {
		t.Errorf("Weak on base 6: got %d, want 4 (6*0.75 floored)", got)
	}
}

func TestIncomingDamageVulnerable(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusVulnerable, 1)
	if got := l.ModifyIncomingDamage(9); got != 13 {
		t.Errorf("Vulnerable on 9: got %d, want 13 (9*1.5 floored)", got)
	}
}

func TestBlockGainDexterityThenFrail(t *testing.T) {
	// Dexterity adds first, then Frail multiplies: (6+3)*3/4 = 6.
	// Multiplying first would give 6*3/4+3 = 7, so the order is observable.
	l := NewLedger()
	l.Apply(StatusDexterity, 3)
	l.Apply(StatusFrail, 1)
	if got := l.ModifyBlockGain(6); got != 6 {
		t.Errorf("Dexterity 3 + Frail on base 6: got %d, want 6", got)
	}
}

func TestTimedDebuffsDecay(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusVulnerable, 2)
	l.Apply(StatusWeak, 1)
	l.Apply(StatusPoison, 3) // does not decay here

	l.DecayTurnStart()
	if got := l.StacksOf(StatusVulnerable); got != 1 {
		t.Errorf("Vulnerable after decay: got %d, want 1", got)
	}
	if l.Has(StatusWeak) {
		t.Error("Weak should be gone after one decay")
	}
	if got := l.StacksOf(StatusPoison); got != 3 {
		t.Errorf("Poison should not decay at turn start: got %d, want 3", got)
	}

	l.DecayTurnStart()
	if l.Has(StatusVulnerable) {
		t.Error("Vulnerable should be gone after two decays")
	}
}

func TestZeroStacksRemovesEntry(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusPoison, 2)
	l.Apply(StatusPoison, -2)
	if l.Has(StatusPoison) {
		t.Error("zero-stack Poison entry should be removed, not stored")
	}
	if len(l.All()) != 0 {
		t.Errorf("ledger should be empty, has %v", l.All())
	}
}

func TestAdditiveStacking(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusPoison, 3)
	l.Apply(StatusPoison, 2)
	if got := l.StacksOf(StatusPoison); got != 5 {
		t.Errorf("Poison 3+2: got %d, want 5", got)
	}
}

func TestThornsRefreshesInsteadOfStacking(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusThorns, 4)
	l.Apply(StatusThorns, 2)
	if got := l.StacksOf(StatusThorns); got != 4 {
		t.Errorf("refresh with smaller stack: got %d, want 4", got)
	}
	l.Apply(StatusThorns, 6)
	if got := l.StacksOf(StatusThorns); got != 6 {
		t.Errorf("refresh with larger stack: got %d, want 6", got)
	}
}

func TestThornsExpiresAtTurnStart(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusThorns, 4)
	l.DecayTurnStart()
	if l.Has(StatusThorns) {
		t.Error("Thorns should expire entirely at the owner's turn start")
	}
}

func TestOutgoingDamageNeverNegative(t *testing.T) {
	l := NewLedger()
	l.Apply(StatusWeak, 1)
	if got := l.ModifyOutgoingDamage(0); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

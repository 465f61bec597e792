package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerAssignsSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnStartEvent(1))
	l.Log(NewDrawEvent(1, "Turn Start", 5))

	events := l.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Seq != 1 || events[1].Seq != 2 {
		t.Errorf("sequence numbers: %d, %d", events[0].Seq, events[1].Seq)
	}
}

func TestEventsOfType(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnStartEvent(1))
	l.Log(NewDamageEvent(1, "Action Phase", "Player", "Cultist", 6, 0))
	l.Log(NewDamageEvent(1, "Action Phase", "Player", "Cultist", 6, 2))

	damage := l.EventsOfType(EventDamage)
	if len(damage) != 2 {
		t.Fatalf("got %d damage events, want 2", len(damage))
	}
	if l.LastEvent().Type != EventDamage {
		t.Errorf("last event type: %v", l.LastEvent().Type)
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewTurnStartEvent(3))

	out := sb.String()
	if !strings.Contains(out, "Turn 3") {
		t.Errorf("output missing turn marker: %q", out)
	}
	// The memory side still records for inspection.
	if len(l.Events()) != 1 {
		t.Errorf("got %d buffered events, want 1", len(l.Events()))
	}
}

func TestDamageEventMentionsBlocked(t *testing.T) {
	e := NewDamageEvent(2, "Enemy Turn", "Cultist", "Player", 3, 5)
	if !strings.Contains(e.Details, "5 blocked") {
		t.Errorf("details: %q", e.Details)
	}
}

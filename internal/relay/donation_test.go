package relay

import (
	"testing"
	"time"
)

func newTestGate(interval time.Duration, probability, roll float64) (*ReminderGate, *time.Time) {
	gate := NewReminderGate(interval, probability)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return now }
	gate.roll = func() float64 { return roll }
	return gate, &now
}

func TestReminderGateFirstSeenOnlyRecords(t *testing.T) {
	gate, _ := newTestGate(time.Hour, 1.0, 0.0)
	if gate.ShouldRemind(1) {
		t.Fatal("first success must not remind")
	}
}

func TestReminderGateIntervalNotElapsed(t *testing.T) {
	gate, now := newTestGate(time.Hour, 1.0, 0.0)
	gate.ShouldRemind(1)

	*now = now.Add(30 * time.Minute)
	if gate.ShouldRemind(1) {
		t.Fatal("interval not elapsed, must not remind")
	}
}

func TestReminderGateFiresAfterInterval(t *testing.T) {
	gate, now := newTestGate(time.Hour, 1.0, 0.0)
	gate.ShouldRemind(1)

	*now = now.Add(2 * time.Hour)
	if !gate.ShouldRemind(1) {
		t.Fatal("expected reminder after interval")
	}

	// таймстамп обновился, сразу повторно не срабатывает
	if gate.ShouldRemind(1) {
		t.Fatal("reminder fired twice in a row")
	}
}

func TestReminderGateProbabilityMiss(t *testing.T) {
	gate, now := newTestGate(time.Hour, 0.3, 0.9)
	gate.ShouldRemind(1)

	*now = now.Add(2 * time.Hour)
	if gate.ShouldRemind(1) {
		t.Fatal("roll above probability must not remind")
	}
}

func TestReminderGateDisabled(t *testing.T) {
	gate, _ := newTestGate(0, 0, 0)
	gate.ShouldRemind(1)
	if gate.ShouldRemind(1) {
		t.Fatal("disabled gate must never remind")
	}
}

package pursuit

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var tm Timer
	if tm.Active(t0) {
		t.Fatal("zero timer must be inactive")
	}

	tm.Arm(t0, 10*time.Second)

	tests := []struct {
		at     time.Duration
		active bool
	}{
		{0, true},
		{5 * time.Second, true},
		{10*time.Second - time.Nanosecond, true},
		{10 * time.Second, false},
		{time.Minute, false},
	}
	for _, tt := range tests {
		if got := tm.Active(t0.Add(tt.at)); got != tt.active {
			t.Errorf("Active(+%v) = %v, want %v", tt.at, got, tt.active)
		}
	}

	if got := tm.Remaining(t0.Add(4 * time.Second)); got != 6*time.Second {
		t.Errorf("Remaining = %v, want 6s", got)
	}
	if got := tm.Remaining(t0.Add(11 * time.Second)); got != 0 {
		t.Errorf("Remaining after expiry = %v, want 0", got)
	}
}

func TestTimerExpireOnce(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var tm Timer
	tm.Arm(t0, time.Second)

	if tm.Expire(t0.Add(500 * time.Millisecond)) {
		t.Error("expired early")
	}
	if !tm.Expire(t0.Add(time.Second)) {
		t.Error("did not expire at deadline")
	}
	if tm.Expire(t0.Add(2 * time.Second)) {
		t.Error("expired twice")
	}
}

func TestTimerRearmExtends(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var tm Timer
	tm.Arm(t0, 10*time.Second)
	tm.Arm(t0.Add(8*time.Second), 10*time.Second)

	if !tm.Active(t0.Add(17 * time.Second)) {
		t.Error("re-armed timer should run 10s from the second pickup")
	}
}

func TestTimerShiftAndClear(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var idle Timer
	idle.Shift(time.Hour)
	if idle.Active(t0) {
		t.Error("shifting an unarmed timer must not arm it")
	}

	var tm Timer
	tm.Arm(t0, time.Second)
	tm.Shift(time.Second)
	if !tm.Active(t0.Add(1500 * time.Millisecond)) {
		t.Error("shifted timer expired at the old deadline")
	}

	tm.Clear()
	if tm.Active(t0) {
		t.Error("cleared timer still active")
	}
}

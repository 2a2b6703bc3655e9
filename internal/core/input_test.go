package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	if f.Direction() != ActionNone {
		t.Fatalf("new frame should have no direction, got %v", f.Direction())
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionRight)

	if f.Direction() != ActionRight {
		t.Errorf("Direction() = %v, expected the latest directional action", f.Direction())
	}
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("all triggered actions should be recorded")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Direction() != ActionNone {
		t.Error("Clear should drop actions and direction")
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionLeft, true},
		{ActionDown, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionPause, false},
	}
	for _, tt := range tests {
		if got := tt.action.IsDirection(); got != tt.want {
			t.Errorf("%v.IsDirection() = %v, expected %v", tt.action, got, tt.want)
		}
	}
}

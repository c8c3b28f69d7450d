package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Coord
	}{
		{"none", nil, DirNone},
		{"up", []Action{ActionUp}, DirUp},
		{"down", []Action{ActionDown}, DirDown},
		{"left", []Action{ActionLeft}, DirLeft},
		{"right", []Action{ActionRight}, DirRight},
		{"fire only", []Action{ActionFire}, DirNone},
		{"up wins over right", []Action{ActionRight, ActionUp}, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should not be affected by Clear on the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame

	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:       "Left",
		ActionFire:       "Fire",
		ActionScoreboard: "Scoreboard",
		Action(99):       "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

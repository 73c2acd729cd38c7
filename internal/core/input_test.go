package core

import "testing"

func TestKeyLatchLastKeyWins(t *testing.T) {
	k := NewKeyLatch(DirRight)
	if k.LatestDirection() != DirRight {
		t.Fatalf("initial direction = %v, expected right", k.LatestDirection())
	}

	k.Press(DirUp)
	k.Press(DirLeft)
	k.Press(DirDown)

	if k.LatestDirection() != DirDown {
		t.Errorf("LatestDirection() = %v, expected down", k.LatestDirection())
	}
	// Sampling does not consume the key
	if k.LatestDirection() != DirDown {
		t.Error("sampling should not reset the latch")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionQuit, DirRight, false},
		{ActionNone, DirRight, false},
	}

	for _, tc := range tests {
		d, ok := tc.action.Direction()
		if ok != tc.ok || (ok && d != tc.dir) {
			t.Errorf("%v.Direction() = (%v, %v), expected (%v, %v)", tc.action, d, ok, tc.dir, tc.ok)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"green", ColorGreen, false},
		{"Blue", ColorBlue, false},
		{" red ", ColorRed, false},
		{"grey", ColorGray, false},
		{"bright_cyan", ColorBrightCyan, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

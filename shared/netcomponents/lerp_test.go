package netcomponents

import "testing"

func TestLerpNetPosition(t *testing.T) {
	got := LerpNetPosition(NetPositionData{X: 0, Y: 10}, NetPositionData{X: 100, Y: -10}, 0.25)
	if got.X != 25 || got.Y != 5 {
		t.Errorf("got %+v", *got)
	}
}

func TestLerpNetVelocity(t *testing.T) {
	from := NetVelocityData{SpeedX: 4, SpeedY: 0}
	to := NetVelocityData{SpeedX: 20, SpeedY: -8}
	if got := LerpNetVelocity(from, to, 0); *got != from {
		t.Errorf("t=0 gave %+v", *got)
	}
	if got := LerpNetVelocity(from, to, 1); *got != to {
		t.Errorf("t=1 gave %+v", *got)
	}
	if got := LerpNetVelocity(from, to, 0.5); got.SpeedX != 12 || got.SpeedY != -4 {
		t.Errorf("t=0.5 gave %+v", *got)
	}
}

func TestJumpsLeft(t *testing.T) {
	tests := []struct {
		count, max, want int
	}{
		{0, 3, 3},
		{2, 3, 1},
		{3, 3, 0},
		{5, 3, 0},
	}
	for _, tt := range tests {
		c := NetCharacterData{JumpCount: tt.count, MaxJumpCount: tt.max}
		if got := c.JumpsLeft(); got != tt.want {
			t.Errorf("JumpsLeft(%d/%d) = %d, want %d", tt.count, tt.max, got, tt.want)
		}
	}
}

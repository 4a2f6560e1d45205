package gamemath

import (
	"testing"

	"github.com/solarlune/resolv"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		speed, friction, want float64
	}{
		{3, 0.5, 2.5},
		{-3, 0.5, -2.5},
		{0.2, 0.5, 0},
		{-0.2, 0.5, 0},
		{0, 0.5, 0},
	}
	for _, tt := range tests {
		if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
			t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
		}
	}
}

func TestAccelerate(t *testing.T) {
	tests := []struct {
		name                   string
		speed, delta, max, want float64
	}{
		{"below max", 1, 0.5, 4, 1.5},
		{"caps at max", 3.8, 0.5, 4, 4},
		{"caps at negative max", -3.8, -0.5, 4, -4},
		{"keeps dash speed", 12, 0.5, 4, 12},
		{"keeps negative dash speed", -12, -0.5, 4, -12},
		{"counter steer during dash", 12, -0.5, 4, 11.5},
		{"reverse", 2, -0.5, 4, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accelerate(tt.speed, tt.delta, tt.max); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBrakeToward(t *testing.T) {
	tests := []struct {
		speed, limit, decel, want float64
	}{
		{10, 4, 1, 9},
		{4.5, 4, 1, 4},
		{-10, 4, 1, -9},
		{-4.2, 4, 1, -4},
		{3, 4, 1, 3},
	}
	for _, tt := range tests {
		if got := BrakeToward(tt.speed, tt.limit, tt.decel); got != tt.want {
			t.Errorf("BrakeToward(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if ClampSpeed(9, 4) != 4 || ClampSpeed(-9, 4) != -4 || ClampSpeed(1, 4) != 1 {
		t.Error("ClampSpeed")
	}
	if ClampFloat(-1, 0, 2) != 0 || ClampFloat(3, 0, 2) != 2 || ClampFloat(1, 0, 2) != 1 {
		t.Error("ClampFloat")
	}
}

func TestGetSlopeSurfaceY(t *testing.T) {
	ramp := resolv.NewObject(0, 100, 32, 32, "ramp", "up-right")
	obj := resolv.NewObject(0, 0, 16, 32)

	// Center at x=8: a quarter of the way up a ramp rising to the right.
	if got := GetSlopeSurfaceY(obj, ramp, "up-right", "up-left"); got != 124 {
		t.Errorf("up-right surface = %v, want 124", got)
	}

	left := resolv.NewObject(0, 100, 32, 32, "ramp", "up-left")
	if got := GetSlopeSurfaceY(obj, left, "up-right", "up-left"); got != 108 {
		t.Errorf("up-left surface = %v, want 108", got)
	}

	flat := resolv.NewObject(0, 100, 32, 32, "ramp")
	if got := GetSlopeSurfaceY(obj, flat, "up-right", "up-left"); got != 100 {
		t.Errorf("untagged surface = %v, want 100", got)
	}

	if got := SnapToSlopeY(32, 124, 1); got != 93 {
		t.Errorf("SnapToSlopeY = %v", got)
	}
}

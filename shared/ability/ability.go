// Package ability holds the character's movement abilities: multi-jump
// counting, the dash and its cooldown, and the facing and animation choices
// derived from velocity. It has no dependency on the renderer or the physics
// engine; both are reached through the MotionProvider and TimerService
// interfaces so the same rules run on the client and on the headless server.
package ability

// Vector is a velocity or impulse in the side-scroller plane.
// X is horizontal, Y is vertical with +Y pointing down.
type Vector struct {
	X, Y float64
}

// ImpulseMode selects how AddImpulse treats its vector.
type ImpulseMode int

const (
	// ImpulseForce is scaled by the body's mass.
	ImpulseForce ImpulseMode = iota
	// ImpulseVelocityChange is added to the velocity unchanged.
	ImpulseVelocityChange
)

// MotionProvider is the physics body a State drives.
type MotionProvider interface {
	Velocity() Vector
	MaxWalkSpeed() float64
	AddImpulse(impulse Vector, mode ImpulseMode)
	IsGrounded() bool
}

// TimerHandle identifies a scheduled callback. The zero handle means none.
type TimerHandle uint64

// TimerService runs one-shot callbacks after a delay in seconds.
type TimerService interface {
	ScheduleOnce(delay float64, fn func()) TimerHandle
	Cancel(h TimerHandle)
}

// Config holds the constants a State is built with.
type Config struct {
	MaxJumpCount        int
	MaxJumpHoldTime     float64 // seconds
	DashCooldown        float64 // seconds
	DashSpeedMultiplier float64
}

// DefaultConfig returns the stock Flint tuning.
func DefaultConfig() Config {
	return Config{
		MaxJumpCount:        3,
		MaxJumpHoldTime:     2.0,
		DashCooldown:        2.0,
		DashSpeedMultiplier: 4.0,
	}
}

// JumpPhase tracks the jump button between a jump and the next landing.
type JumpPhase int

const (
	JumpIdle JumpPhase = iota
	JumpPressed
	JumpReleased
)

func (p JumpPhase) String() string {
	switch p {
	case JumpIdle:
		return "idle"
	case JumpPressed:
		return "pressed"
	case JumpReleased:
		return "released"
	}
	return "unknown"
}

// Facing is the horizontal orientation of the character.
type Facing int

const (
	FacingLeft      Facing = -1
	FacingUnchanged Facing = 0
	FacingRight     Facing = 1
)

// Sign returns -1, 0 or 1.
func (f Facing) Sign() float64 {
	return float64(f)
}

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return "unchanged"
}

// AnimState is the animation the character should be showing.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRunning
)

func (a AnimState) String() string {
	if a == AnimRunning {
		return "running"
	}
	return "idle"
}

// SelectAnimation returns AnimRunning for any non-zero velocity.
func SelectAnimation(v Vector) AnimState {
	if v.X*v.X+v.Y*v.Y > 0 {
		return AnimRunning
	}
	return AnimIdle
}

// ComputeFacing maps the sign of the horizontal velocity to a facing.
// A zero horizontal velocity leaves the orientation alone.
func ComputeFacing(v Vector) Facing {
	switch {
	case v.X < 0:
		return FacingLeft
	case v.X > 0:
		return FacingRight
	}
	return FacingUnchanged
}

package ability

import "math"

// State is the ability bookkeeping of one character. It is not safe for
// concurrent use; the owning game loop is the only writer.
type State struct {
	cfg    Config
	motion MotionProvider
	timers TimerService

	currentJumpCount int
	maxJumpCount     int
	holdRemaining    float64
	phase            JumpPhase

	dashOnCooldown bool
	cooldownTimer  TimerHandle
	// cooldownGen invalidates cooldown callbacks that were superseded by a
	// landing, even if the timer service already fired them.
	cooldownGen uint64

	facing Facing
}

// New returns a State for a freshly spawned character facing right.
func New(cfg Config, motion MotionProvider, timers TimerService) *State {
	return &State{
		cfg:          cfg,
		motion:       motion,
		timers:       timers,
		maxJumpCount: cfg.MaxJumpCount,
		phase:        JumpIdle,
		facing:       FacingRight,
	}
}

// RequestJump starts a jump if one is allowed and reports whether it was.
// The first jump needs the ground; the following ones are gated by the
// jump counter until the next landing.
func (s *State) RequestJump() bool {
	if !s.canJump() {
		return false
	}
	s.phase = JumpPressed
	s.holdRemaining = s.cfg.MaxJumpHoldTime
	s.currentJumpCount++
	return true
}

func (s *State) canJump() bool {
	if s.currentJumpCount == 0 && s.motion.IsGrounded() {
		return true
	}
	return s.currentJumpCount > 0 && s.currentJumpCount < s.maxJumpCount
}

// ReleaseJump stops the jump-height extension.
func (s *State) ReleaseJump() {
	if s.phase == JumpPressed {
		s.phase = JumpReleased
	}
	s.holdRemaining = 0
}

// RequestDash launches the character along its current horizontal direction
// and starts the cooldown. It is rejected while cooling down and when the
// character has no horizontal velocity to take a direction from.
func (s *State) RequestDash() bool {
	if s.dashOnCooldown {
		return false
	}
	vx := s.motion.Velocity().X
	if vx == 0 {
		return false
	}

	s.dashOnCooldown = true
	speed := s.motion.MaxWalkSpeed() * (1 + s.cfg.DashSpeedMultiplier)
	s.motion.AddImpulse(Vector{X: math.Copysign(speed, vx)}, ImpulseVelocityChange)

	s.cooldownGen++
	gen := s.cooldownGen
	s.cooldownTimer = s.timers.ScheduleOnce(s.cfg.DashCooldown, func() {
		if gen != s.cooldownGen {
			return
		}
		s.dashOnCooldown = false
		s.cooldownTimer = 0
	})
	return true
}

// OnLanded resets the jump counter and the dash cooldown.
func (s *State) OnLanded() {
	s.currentJumpCount = 0
	s.dashOnCooldown = false
	if s.cooldownTimer != 0 {
		s.timers.Cancel(s.cooldownTimer)
		s.cooldownTimer = 0
	}
	s.cooldownGen++
	s.phase = JumpIdle
	s.holdRemaining = 0
}

// Tick consumes jump hold time while the button is held.
func (s *State) Tick(dt float64) {
	if s.phase != JumpPressed || s.holdRemaining <= 0 {
		return
	}
	s.holdRemaining -= dt
	if s.holdRemaining < 0 {
		s.holdRemaining = 0
	}
}

// JumpExtending reports whether a held jump should still gain height.
func (s *State) JumpExtending() bool {
	return s.phase == JumpPressed && s.holdRemaining > 0
}

// UpdateFacing turns the character toward its horizontal velocity and
// returns the resulting facing.
func (s *State) UpdateFacing(v Vector) Facing {
	if f := ComputeFacing(v); f != FacingUnchanged {
		s.facing = f
	}
	return s.facing
}

func (s *State) Facing() Facing            { return s.facing }
func (s *State) Phase() JumpPhase          { return s.phase }
func (s *State) RemainingHold() float64    { return s.holdRemaining }
func (s *State) Config() Config            { return s.cfg }
func (s *State) CurrentJumpCount() int     { return s.currentJumpCount }
func (s *State) SetCurrentJumpCount(n int) { s.currentJumpCount = n }
func (s *State) MaxJumpCount() int         { return s.maxJumpCount }
func (s *State) SetMaxJumpCount(n int)     { s.maxJumpCount = n }
func (s *State) DashOnCooldown() bool      { return s.dashOnCooldown }

// CooldownTimer returns the pending dash cooldown timer, or zero.
func (s *State) CooldownTimer() TimerHandle { return s.cooldownTimer }

// DashReadiness maps the time left on the cooldown timer to 0..1, where 1
// means a dash is available. A cooldown with no pending timer reads as 0.
func (s *State) DashReadiness(remaining float64) float64 {
	if !s.dashOnCooldown {
		return 1
	}
	total := s.cfg.DashCooldown
	if s.cooldownTimer == 0 || total <= 0 {
		return 0
	}
	r := 1 - remaining/total
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// SetDashOnCooldown overrides the cooldown flag. Clearing it does not cancel
// a pending cooldown timer; that timer will clear the flag again when it fires.
func (s *State) SetDashOnCooldown(v bool) { s.dashOnCooldown = v }

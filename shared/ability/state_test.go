package ability

import (
	"sort"
	"testing"
)

type fakeMotion struct {
	vel      Vector
	maxWalk  float64
	grounded bool
	impulses []Vector
	modes    []ImpulseMode
}

func (m *fakeMotion) Velocity() Vector      { return m.vel }
func (m *fakeMotion) MaxWalkSpeed() float64 { return m.maxWalk }
func (m *fakeMotion) IsGrounded() bool      { return m.grounded }
func (m *fakeMotion) AddImpulse(v Vector, mode ImpulseMode) {
	m.impulses = append(m.impulses, v)
	m.modes = append(m.modes, mode)
}

type fakeTimer struct {
	due float64
	fn  func()
}

// fakeClock is a manual clock; fired callbacks stay callable through stale
// so tests can replay a callback that raced with a cancel.
type fakeClock struct {
	now       float64
	next      TimerHandle
	pending   map[TimerHandle]fakeTimer
	cancelled []TimerHandle
	stale     []func()
}

func newFakeClock() *fakeClock {
	return &fakeClock{pending: map[TimerHandle]fakeTimer{}}
}

func (c *fakeClock) ScheduleOnce(delay float64, fn func()) TimerHandle {
	c.next++
	c.pending[c.next] = fakeTimer{due: c.now + delay, fn: fn}
	return c.next
}

func (c *fakeClock) Cancel(h TimerHandle) {
	if t, ok := c.pending[h]; ok {
		c.stale = append(c.stale, t.fn)
		delete(c.pending, h)
	}
	c.cancelled = append(c.cancelled, h)
}

func (c *fakeClock) advance(dt float64) {
	c.now += dt
	var due []TimerHandle
	for h, t := range c.pending {
		if t.due <= c.now+1e-9 {
			due = append(due, h)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })
	for _, h := range due {
		fn := c.pending[h].fn
		delete(c.pending, h)
		fn()
	}
}

func newTestState(m *fakeMotion, c *fakeClock) *State {
	return New(DefaultConfig(), m, c)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxJumpCount != 3 || cfg.MaxJumpHoldTime != 2.0 || cfg.DashCooldown != 2.0 || cfg.DashSpeedMultiplier != 4.0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	s := newTestState(&fakeMotion{}, newFakeClock())
	if s.Facing() != FacingRight {
		t.Errorf("expected initial facing right, got %v", s.Facing())
	}
	if s.Phase() != JumpIdle {
		t.Errorf("expected idle phase, got %v", s.Phase())
	}
}

func TestRequestJumpCountsUpToMax(t *testing.T) {
	for _, max := range []int{1, 2, 3, 5} {
		m := &fakeMotion{grounded: true}
		s := New(Config{MaxJumpCount: max, MaxJumpHoldTime: 2}, m, newFakeClock())
		for n := 1; n <= max+2; n++ {
			got := s.RequestJump()
			if want := n <= max; got != want {
				t.Fatalf("max %d: jump %d = %v, want %v", max, n, got, want)
			}
			// Leaving the ground must not matter for the extra jumps.
			m.grounded = false
		}
		if s.CurrentJumpCount() != max {
			t.Errorf("max %d: count = %d", max, s.CurrentJumpCount())
		}
	}
}

func TestThreeJumpsThenRejected(t *testing.T) {
	m := &fakeMotion{grounded: true}
	s := newTestState(m, newFakeClock())
	for want := 1; want <= 3; want++ {
		if !s.RequestJump() {
			t.Fatalf("jump %d rejected", want)
		}
		if s.CurrentJumpCount() != want {
			t.Fatalf("count = %d, want %d", s.CurrentJumpCount(), want)
		}
	}
	if s.RequestJump() {
		t.Fatal("fourth jump accepted")
	}
	if s.CurrentJumpCount() != 3 {
		t.Errorf("count changed on rejection: %d", s.CurrentJumpCount())
	}
}

func TestFirstJumpNeedsGround(t *testing.T) {
	m := &fakeMotion{grounded: false}
	s := newTestState(m, newFakeClock())
	if s.RequestJump() {
		t.Fatal("airborne first jump accepted")
	}
	if s.CurrentJumpCount() != 0 || s.Phase() != JumpIdle || s.RemainingHold() != 0 {
		t.Errorf("rejected jump changed state: count %d phase %v hold %v",
			s.CurrentJumpCount(), s.Phase(), s.RemainingHold())
	}
}

func TestJumpHoldAndRelease(t *testing.T) {
	m := &fakeMotion{grounded: true}
	s := newTestState(m, newFakeClock())
	s.RequestJump()
	if s.Phase() != JumpPressed || s.RemainingHold() != 2.0 {
		t.Fatalf("after jump: phase %v hold %v", s.Phase(), s.RemainingHold())
	}
	if !s.JumpExtending() {
		t.Fatal("expected extension while held")
	}

	s.Tick(0.5)
	if s.RemainingHold() != 1.5 {
		t.Errorf("hold = %v, want 1.5", s.RemainingHold())
	}
	s.Tick(5)
	if s.RemainingHold() != 0 || s.JumpExtending() {
		t.Errorf("hold should run out, got %v", s.RemainingHold())
	}

	s.RequestJump()
	s.ReleaseJump()
	if s.Phase() != JumpReleased || s.RemainingHold() != 0 || s.JumpExtending() {
		t.Errorf("after release: phase %v hold %v", s.Phase(), s.RemainingHold())
	}
	s.ReleaseJump()
	if s.Phase() != JumpReleased {
		t.Errorf("second release changed phase to %v", s.Phase())
	}

	s.Tick(1)
	if s.RemainingHold() != 0 {
		t.Errorf("tick after release consumed hold: %v", s.RemainingHold())
	}
}

func TestReleaseWithoutJump(t *testing.T) {
	s := newTestState(&fakeMotion{}, newFakeClock())
	s.ReleaseJump()
	if s.Phase() != JumpIdle || s.RemainingHold() != 0 {
		t.Errorf("phase %v hold %v", s.Phase(), s.RemainingHold())
	}
}

func TestDashImpulse(t *testing.T) {
	tests := []struct {
		name string
		vx   float64
		want Vector
	}{
		{"left", -250, Vector{X: -3000}},
		{"right", 1, Vector{X: 3000}},
		{"fast right", 600, Vector{X: 3000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMotion{vel: Vector{X: tt.vx, Y: 40}, maxWalk: 600}
			s := newTestState(m, newFakeClock())
			if !s.RequestDash() {
				t.Fatal("dash rejected")
			}
			if len(m.impulses) != 1 {
				t.Fatalf("impulses = %v", m.impulses)
			}
			if m.impulses[0] != tt.want {
				t.Errorf("impulse = %+v, want %+v", m.impulses[0], tt.want)
			}
			if m.modes[0] != ImpulseVelocityChange {
				t.Errorf("mode = %v", m.modes[0])
			}
			if !s.DashOnCooldown() {
				t.Error("expected cooldown")
			}
		})
	}
}

func TestDashRejectedOnZeroVelocity(t *testing.T) {
	m := &fakeMotion{vel: Vector{Y: -10}, maxWalk: 600}
	c := newFakeClock()
	s := newTestState(m, c)
	if s.RequestDash() {
		t.Fatal("dash accepted with zero horizontal velocity")
	}
	if len(m.impulses) != 0 || s.DashOnCooldown() || len(c.pending) != 0 {
		t.Errorf("rejected dash had side effects")
	}
}

func TestDashRejectedDuringCooldown(t *testing.T) {
	m := &fakeMotion{vel: Vector{X: 100}, maxWalk: 600}
	c := newFakeClock()
	s := newTestState(m, c)
	if !s.RequestDash() {
		t.Fatal("first dash rejected")
	}
	c.advance(1.0)
	if s.RequestDash() {
		t.Fatal("dash accepted during cooldown")
	}
	if len(m.impulses) != 1 {
		t.Errorf("impulses = %d, want 1", len(m.impulses))
	}
	if len(c.pending) != 1 {
		t.Errorf("pending timers = %d, want 1", len(c.pending))
	}
}

func TestDashCooldownClearsAfterDuration(t *testing.T) {
	m := &fakeMotion{vel: Vector{X: -5}, maxWalk: 600}
	c := newFakeClock()
	s := newTestState(m, c)
	s.RequestDash()

	c.advance(1.99)
	if !s.DashOnCooldown() {
		t.Fatal("cooldown cleared early")
	}
	c.advance(0.01)
	if s.DashOnCooldown() {
		t.Fatal("cooldown not cleared after 2s")
	}
	if s.CooldownTimer() != 0 {
		t.Errorf("timer handle not cleared")
	}
	if !s.RequestDash() {
		t.Error("dash rejected after cooldown")
	}
}

func TestOnLandedResets(t *testing.T) {
	m := &fakeMotion{grounded: true, vel: Vector{X: 10}, maxWalk: 600}
	c := newFakeClock()
	s := newTestState(m, c)
	s.RequestJump()
	s.RequestJump()
	s.RequestDash()
	handle := s.CooldownTimer()

	s.OnLanded()
	if s.CurrentJumpCount() != 0 || s.DashOnCooldown() {
		t.Fatalf("count %d cooldown %v", s.CurrentJumpCount(), s.DashOnCooldown())
	}
	if s.Phase() != JumpIdle || s.RemainingHold() != 0 {
		t.Errorf("phase %v hold %v", s.Phase(), s.RemainingHold())
	}
	if len(c.cancelled) != 1 || c.cancelled[0] != handle {
		t.Errorf("cancelled = %v, want [%d]", c.cancelled, handle)
	}

	// Landing again with nothing pending is a no-op for the timer service.
	s.OnLanded()
	if len(c.cancelled) != 1 {
		t.Errorf("idle landing cancelled %v", c.cancelled)
	}
}

func TestOnLandedFromArbitraryState(t *testing.T) {
	s := newTestState(&fakeMotion{}, newFakeClock())
	s.SetCurrentJumpCount(42)
	s.SetDashOnCooldown(true)
	s.OnLanded()
	if s.CurrentJumpCount() != 0 || s.DashOnCooldown() {
		t.Errorf("count %d cooldown %v", s.CurrentJumpCount(), s.DashOnCooldown())
	}
}

func TestStaleCooldownCallbackIsNoop(t *testing.T) {
	m := &fakeMotion{vel: Vector{X: 10}, maxWalk: 600}
	c := newFakeClock()
	s := newTestState(m, c)
	s.RequestDash()
	s.OnLanded()
	s.RequestDash()

	for _, fn := range c.stale {
		fn()
	}
	if !s.DashOnCooldown() {
		t.Fatal("stale callback cleared the new cooldown")
	}
	c.advance(2)
	if s.DashOnCooldown() {
		t.Fatal("current callback did not clear the cooldown")
	}
}

func TestSetterDoesNotValidate(t *testing.T) {
	m := &fakeMotion{grounded: true}
	s := newTestState(m, newFakeClock())
	s.SetCurrentJumpCount(7)
	if s.RequestJump() {
		t.Fatal("jump accepted above max")
	}
	s.SetMaxJumpCount(10)
	if !s.RequestJump() || s.CurrentJumpCount() != 8 {
		t.Errorf("count = %d", s.CurrentJumpCount())
	}
	if s.MaxJumpCount() != 10 {
		t.Errorf("max = %d", s.MaxJumpCount())
	}
}

func TestSelectAnimation(t *testing.T) {
	tests := []struct {
		v    Vector
		want AnimState
	}{
		{Vector{}, AnimIdle},
		{Vector{X: 1}, AnimRunning},
		{Vector{X: -0.001}, AnimRunning},
		{Vector{Y: 3}, AnimRunning},
	}
	for _, tt := range tests {
		if got := SelectAnimation(tt.v); got != tt.want {
			t.Errorf("SelectAnimation(%+v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestFacing(t *testing.T) {
	if ComputeFacing(Vector{X: -2}) != FacingLeft ||
		ComputeFacing(Vector{X: 2}) != FacingRight ||
		ComputeFacing(Vector{Y: 2}) != FacingUnchanged {
		t.Fatal("ComputeFacing sign mapping")
	}

	s := newTestState(&fakeMotion{}, newFakeClock())
	steps := []struct {
		vx   float64
		want Facing
	}{
		{-3, FacingLeft},
		{0, FacingLeft},
		{4, FacingRight},
		{0, FacingRight},
		{-0.5, FacingLeft},
	}
	for i, st := range steps {
		if got := s.UpdateFacing(Vector{X: st.vx}); got != st.want {
			t.Errorf("step %d: facing %v, want %v", i, got, st.want)
		}
	}
	if FacingLeft.Sign() != -1 || FacingRight.Sign() != 1 {
		t.Error("facing sign")
	}
}

func TestDashReadiness(t *testing.T) {
	m := &fakeMotion{vel: Vector{X: 3}, maxWalk: 4, grounded: true}
	s := newTestState(m, newFakeClock())

	if got := s.DashReadiness(0); got != 1 {
		t.Errorf("idle readiness = %v, want 1", got)
	}

	s.SetDashOnCooldown(true)
	if got := s.DashReadiness(0); got != 0 {
		t.Errorf("forced cooldown without a timer reads %v, want 0", got)
	}

	s.SetDashOnCooldown(false)
	if !s.RequestDash() {
		t.Fatal("dash rejected")
	}
	tests := []struct{ remaining, want float64 }{
		{2, 0},
		{1.5, 0.25},
		{0.5, 0.75},
		{0, 1},
		{3, 0},
	}
	for _, tt := range tests {
		if got := s.DashReadiness(tt.remaining); got != tt.want {
			t.Errorf("DashReadiness(%v) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

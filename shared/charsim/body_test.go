package charsim

import (
	"math"
	"testing"

	"github.com/flintgame/flint/shared/ability"
	"github.com/solarlune/resolv"
)

func newTestSpace() *resolv.Space {
	space := resolv.NewSpace(640, 320, 16, 16)
	space.Add(resolv.NewObject(0, 200, 640, 16, TagSolid))
	return space
}

func settle(t *testing.T, b *Body) {
	t.Helper()
	for i := 0; i < 120; i++ {
		if b.Step(Intent{}).Landed {
			return
		}
	}
	t.Fatal("body never landed")
}

func TestFallAndLand(t *testing.T) {
	space := newTestSpace()
	b := NewBody(space, 100, 120, DefaultTuning())

	landings := 0
	for i := 0; i < 120; i++ {
		if b.Step(Intent{}).Landed {
			landings++
		}
	}
	if landings != 1 {
		t.Fatalf("landings = %d, want 1", landings)
	}
	if !b.IsGrounded() || b.SpeedY != 0 {
		t.Errorf("grounded %v speedY %v", b.IsGrounded(), b.SpeedY)
	}
	if got := b.Object.Bottom(); math.Abs(got-200) > 1e-9 {
		t.Errorf("bottom = %v, want 200", got)
	}
}

func TestWalkReachesMaxSpeed(t *testing.T) {
	space := newTestSpace()
	tun := DefaultTuning()
	b := NewBody(space, 20, 172, tun)
	settle(t, b)

	for i := 0; i < 60; i++ {
		b.Step(Intent{MoveAxis: 1})
		if b.SpeedX > tun.MaxWalkSpeed {
			t.Fatalf("step %d: speed %v above max", i, b.SpeedX)
		}
	}
	if b.SpeedX != tun.MaxWalkSpeed {
		t.Errorf("speed = %v, want %v", b.SpeedX, tun.MaxWalkSpeed)
	}

	for i := 0; i < 60; i++ {
		b.Step(Intent{})
	}
	if b.SpeedX != 0 {
		t.Errorf("friction left speed %v", b.SpeedX)
	}
}

func TestDashBleedsOffToWalkSpeed(t *testing.T) {
	space := newTestSpace()
	tun := DefaultTuning()
	b := NewBody(space, 20, 172, tun)
	settle(t, b)
	b.SpeedX = 1

	st := ability.New(ability.DefaultConfig(), b, noTimers{})
	if !st.RequestDash() {
		t.Fatal("dash rejected")
	}
	if b.SpeedX != 21 {
		t.Fatalf("speed after dash = %v, want 21", b.SpeedX)
	}

	prev := b.SpeedX
	for i := 0; i < 60; i++ {
		b.Step(Intent{MoveAxis: 1})
		if b.SpeedX > prev {
			t.Fatalf("step %d: speed grew from %v to %v", i, prev, b.SpeedX)
		}
		prev = b.SpeedX
	}
	if b.SpeedX != tun.MaxWalkSpeed {
		t.Errorf("speed = %v, want %v", b.SpeedX, tun.MaxWalkSpeed)
	}
}

func TestDashDoesNotTunnel(t *testing.T) {
	space := newTestSpace()
	wall := resolv.NewObject(150, 100, 4, 100, TagSolid)
	space.Add(wall)

	b := NewBody(space, 100, 172, DefaultTuning())
	settle(t, b)
	b.SpeedX = 40
	b.Step(Intent{MoveAxis: 1})

	if right := b.Object.X + b.Object.W; right > wall.X+1e-9 {
		t.Fatalf("body passed into the wall: right edge %v", right)
	}
	if b.SpeedX != 0 {
		t.Errorf("speed = %v after hitting the wall", b.SpeedX)
	}
}

func TestJumpHoldReachesHigher(t *testing.T) {
	apex := func(extend bool) float64 {
		space := newTestSpace()
		b := NewBody(space, 100, 172, DefaultTuning())
		settle(t, b)
		b.Jump()
		res := b.Step(Intent{Extending: extend})
		if !res.LeftGround {
			t.Fatal("jump did not leave the ground")
		}
		top := b.Object.Y
		for i := 0; i < 200 && !b.IsGrounded(); i++ {
			b.Step(Intent{Extending: extend})
			top = math.Min(top, b.Object.Y)
		}
		if !b.IsGrounded() {
			t.Fatal("never came back down")
		}
		return 172 - top
	}

	short, long := apex(false), apex(true)
	if short <= 0 || long <= short {
		t.Errorf("apex without hold %v, with hold %v", short, long)
	}
}

func TestOneWayPlatform(t *testing.T) {
	space := newTestSpace()
	platform := resolv.NewObject(80, 150, 64, 8, TagPlatform)
	space.Add(platform)

	b := NewBody(space, 100, 172, DefaultTuning())
	settle(t, b)
	b.Jump()
	for i := 0; i < 200; i++ {
		if b.Step(Intent{}).Landed {
			break
		}
	}
	if b.OnGround != platform {
		t.Fatalf("landed on %v, want the platform", b.OnGround)
	}
	if math.Abs(b.Object.Bottom()-150) > 1e-9 {
		t.Errorf("bottom = %v, want 150", b.Object.Bottom())
	}
}

func TestCeilingStopsJump(t *testing.T) {
	space := newTestSpace()
	space.Add(resolv.NewObject(64, 150, 96, 16, TagSolid))

	b := NewBody(space, 100, 172, DefaultTuning())
	settle(t, b)
	b.Jump()
	b.Step(Intent{})
	for i := 0; i < 10; i++ {
		b.Step(Intent{})
		if b.Object.Y < 166-1e-9 {
			t.Fatalf("body entered the ceiling: y = %v", b.Object.Y)
		}
	}
}

func TestWalkUpRamp(t *testing.T) {
	space := newTestSpace()
	space.Add(resolv.NewObject(200, 168, 32, 32, TagRamp, TagSlopeUpRight))
	space.Add(resolv.NewObject(232, 168, 400, 32, TagSolid))

	b := NewBody(space, 150, 172, DefaultTuning())
	settle(t, b)
	for i := 0; i < 90; i++ {
		b.Step(Intent{MoveAxis: 1})
	}
	if b.Object.X < 260 {
		t.Fatalf("body stuck at x = %v", b.Object.X)
	}
	if !b.IsGrounded() || math.Abs(b.Object.Bottom()-168) > 1e-6 {
		t.Errorf("bottom = %v grounded %v, want on the plateau", b.Object.Bottom(), b.IsGrounded())
	}
}

func TestRideMovingPlatform(t *testing.T) {
	space := newTestSpace()
	platform := resolv.NewObject(80, 150, 64, 8, TagPlatform)
	space.Add(platform)

	b := NewBody(space, 100, 122, DefaultTuning())
	settle(t, b)
	if b.OnGround != platform {
		t.Fatal("not on the platform")
	}
	platform.X += 10
	platform.Update()
	b.Step(Intent{})
	if math.Abs(b.Object.X-110) > 1e-9 {
		t.Errorf("x = %v, want 110", b.Object.X)
	}
}

func TestImpulseModes(t *testing.T) {
	tun := DefaultTuning()
	tun.Mass = 4
	b := NewBody(newTestSpace(), 0, 0, tun)

	b.AddImpulse(ability.Vector{X: 8, Y: -4}, ability.ImpulseForce)
	if b.SpeedX != 2 || b.SpeedY != -1 {
		t.Errorf("force impulse gave %v, %v", b.SpeedX, b.SpeedY)
	}
	b.AddImpulse(ability.Vector{X: 8}, ability.ImpulseVelocityChange)
	if b.SpeedX != 10 {
		t.Errorf("velocity change gave %v", b.SpeedX)
	}
	if v := b.Velocity(); v.X != 10 || v.Y != -1 {
		t.Errorf("velocity = %+v", v)
	}
	if b.MaxWalkSpeed() != tun.MaxWalkSpeed {
		t.Errorf("max walk = %v", b.MaxWalkSpeed())
	}
}

func TestRemove(t *testing.T) {
	space := newTestSpace()
	b := NewBody(space, 0, 0, DefaultTuning())
	n := len(space.Objects())
	b.Remove()
	if len(space.Objects()) != n-1 {
		t.Errorf("objects = %d, want %d", len(space.Objects()), n-1)
	}
}

type noTimers struct{}

func (noTimers) ScheduleOnce(float64, func()) ability.TimerHandle { return 1 }
func (noTimers) Cancel(ability.TimerHandle)                      {}

// Package charsim is the character movement simulation shared by the client
// and the headless server. A Body is a resolv object with velocity; it
// implements ability.MotionProvider so the ability rules can drive it.
package charsim

import (
	"math"

	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags understood by the simulation.
const (
	TagSolid     = "solid"
	TagPlatform  = "platform"
	TagRamp      = "ramp"
	TagCharacter = "character"

	TagSlopeUpRight = "45_up_right"
	TagSlopeUpLeft  = "45_up_left"
)

const (
	// maxStepX bounds a single horizontal move so a dash cannot skip a wall.
	maxStepX = 8.0
	// maxStepY is the hard clamp on vertical movement per step.
	maxStepY = 16.0

	// maxStepUp is the tallest ledge a walking body climbs without jumping.
	maxStepUp = 12.0

	platformTolerance = 4.0
	rampTolerance     = 4.0
	overlapEpsilon    = 0.01
)

// Tuning holds the per-step movement constants. Speeds are pixels per 60 Hz
// step, accelerations pixels per step squared.
type Tuning struct {
	MaxWalkSpeed         float64
	Acceleration         float64
	AirControl           float64
	GroundFriction       float64
	BrakingDeceleration  float64
	Gravity              float64
	JumpSpeed            float64
	JumpHoldGravityScale float64
	MaxFallSpeed         float64
	Mass                 float64
	Width                float64
	Height               float64
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxWalkSpeed:         4,
		Acceleration:         0.5,
		AirControl:           0.8,
		GroundFriction:       0.4,
		BrakingDeceleration:  0.8,
		Gravity:              0.6,
		JumpSpeed:            10,
		JumpHoldGravityScale: 0.5,
		MaxFallSpeed:         12,
		Mass:                 1,
		Width:                14,
		Height:               28,
	}
}

// Intent is what the controller wants from one step.
type Intent struct {
	MoveAxis  float64 // -1..1
	Extending bool    // jump held and still within its hold time
}

// StepResult reports ground contact changes during a step.
type StepResult struct {
	Landed     bool
	LeftGround bool
}

type Body struct {
	Object   *resolv.Object
	SpeedX   float64
	SpeedY   float64
	OnGround *resolv.Object
	Tuning   Tuning

	space            *resolv.Space
	groundX, groundY float64
}

var _ ability.MotionProvider = (*Body)(nil)

// NewBody creates a body at (x, y) and adds it to space.
func NewBody(space *resolv.Space, x, y float64, tuning Tuning, tags ...string) *Body {
	obj := resolv.NewObject(x, y, tuning.Width, tuning.Height, append([]string{TagCharacter}, tags...)...)
	obj.SetShape(resolv.NewRectangle(0, 0, tuning.Width, tuning.Height))
	b := &Body{
		Object: obj,
		Tuning: tuning,
		space:  space,
	}
	obj.Data = b
	if space != nil {
		space.Add(obj)
	}
	return b
}

// Remove takes the body out of its space.
func (b *Body) Remove() {
	if b.space != nil {
		b.space.Remove(b.Object)
	}
}

func (b *Body) Velocity() ability.Vector {
	return ability.Vector{X: b.SpeedX, Y: b.SpeedY}
}

func (b *Body) MaxWalkSpeed() float64 {
	return b.Tuning.MaxWalkSpeed
}

func (b *Body) IsGrounded() bool {
	return b.OnGround != nil
}

// AddImpulse changes the velocity. Force impulses are divided by mass.
func (b *Body) AddImpulse(impulse ability.Vector, mode ability.ImpulseMode) {
	if mode == ability.ImpulseForce && b.Tuning.Mass > 0 {
		impulse.X /= b.Tuning.Mass
		impulse.Y /= b.Tuning.Mass
	}
	b.SpeedX += impulse.X
	b.SpeedY += impulse.Y
}

// Jump launches the body upward. Ground contact is cleared by the next Step.
func (b *Body) Jump() {
	b.SpeedY = -b.Tuning.JumpSpeed
}

// SetPosition teleports the body.
func (b *Body) SetPosition(x, y float64) {
	b.Object.X = x
	b.Object.Y = y
	b.Object.Update()
}

// Step advances the body by one 60 Hz step.
func (b *Body) Step(in Intent) StepResult {
	t := b.Tuning
	wasGrounded := b.OnGround != nil

	b.rideGround()

	axis := gamemath.ClampFloat(in.MoveAxis, -1, 1)
	accel := t.Acceleration
	if !wasGrounded {
		accel *= t.AirControl
	}
	if axis != 0 {
		b.SpeedX = gamemath.Accelerate(b.SpeedX, axis*accel, t.MaxWalkSpeed)
	} else if wasGrounded {
		b.SpeedX = gamemath.ApplyFriction(b.SpeedX, t.GroundFriction)
	}
	b.SpeedX = gamemath.BrakeToward(b.SpeedX, t.MaxWalkSpeed, t.BrakingDeceleration)

	gravity := t.Gravity
	if in.Extending && b.SpeedY < 0 {
		gravity *= t.JumpHoldGravityScale
	}
	b.SpeedY = math.Min(b.SpeedY+gravity, t.MaxFallSpeed)

	b.moveX(wasGrounded)
	b.moveY()

	if b.OnGround != nil {
		b.groundX, b.groundY = b.OnGround.X, b.OnGround.Y
	}

	grounded := b.OnGround != nil
	return StepResult{
		Landed:     !wasGrounded && grounded,
		LeftGround: wasGrounded && !grounded,
	}
}

// rideGround carries the body along with a moving floor.
func (b *Body) rideGround() {
	if b.OnGround == nil {
		return
	}
	dx := b.OnGround.X - b.groundX
	dy := b.OnGround.Y - b.groundY
	if dx == 0 && dy == 0 {
		return
	}
	b.Object.X += dx
	b.Object.Y += dy
	b.Object.Update()
}

func (b *Body) moveX(grounded bool) {
	if b.SpeedX == 0 {
		return
	}
	steps := int(math.Ceil(math.Abs(b.SpeedX) / maxStepX))
	dx := b.SpeedX / float64(steps)
	for i := 0; i < steps; i++ {
		if !b.stepX(dx, grounded) {
			b.SpeedX = 0
			return
		}
		if grounded && b.SpeedY >= 0 {
			b.followRamp(math.Abs(dx))
		}
	}
}

// stepX moves horizontally by dx and reports whether the move was free.
// A grounded body climbs ledges up to maxStepUp, which is also what carries
// it from the top of a ramp onto the floor behind it.
func (b *Body) stepX(dx float64, grounded bool) bool {
	o := b.Object
	check := o.Check(dx, 0, TagSolid)
	if check == nil {
		o.X += dx
		o.Update()
		return true
	}

	hit := false
	best := dx
	lift := 0.0
	for _, s := range check.ObjectsByTags(TagSolid) {
		if !overlaps(o.X+dx, o.Y, o.W, o.H, s) {
			continue
		}
		c := check.ContactWithObject(s).X()
		if !hit || math.Abs(c) < math.Abs(best) {
			best = c
		}
		hit = true
		lift = math.Max(lift, o.Bottom()-s.Y)
	}
	if !hit {
		o.X += dx
		o.Update()
		return true
	}

	if grounded && lift > 0 && lift <= maxStepUp && !b.solidAt(dx, -lift) {
		o.X += dx
		o.Y -= lift
		o.Update()
		return true
	}

	o.X += best
	o.Update()
	return false
}

// solidAt reports whether the body would overlap a solid if moved by dx, dy.
func (b *Body) solidAt(dx, dy float64) bool {
	o := b.Object
	check := o.Check(dx, dy, TagSolid)
	if check == nil {
		return false
	}
	for _, s := range check.ObjectsByTags(TagSolid) {
		if overlaps(o.X+dx, o.Y+dy, o.W, o.H, s) {
			return true
		}
	}
	return false
}

// followRamp keeps a walking body glued to a slope it is on or walks onto.
func (b *Body) followRamp(reach float64) {
	o := b.Object
	check := o.Check(0, reach+1, TagRamp)
	if check == nil {
		return
	}
	centerX := o.X + o.W/2
	for _, r := range check.ObjectsByTags(TagRamp) {
		if centerX < r.X || centerX > r.X+r.W {
			continue
		}
		surface := gamemath.GetSlopeSurfaceY(o, r, TagSlopeUpRight, TagSlopeUpLeft)
		if math.Abs(o.Bottom()-surface) > reach+1 {
			continue
		}
		y := gamemath.SnapToSlopeY(o.H, surface, 0)
		if b.solidAt(0, y-o.Y) {
			continue
		}
		o.Y = y
		o.Update()
		b.OnGround = r
		b.SpeedY = 0
		return
	}
}

func (b *Body) moveY() {
	o := b.Object
	dy := gamemath.ClampSpeed(b.SpeedY, maxStepY)
	b.OnGround = nil

	if dy < 0 {
		b.moveUp(dy)
		return
	}

	reach := dy + 1
	check := o.Check(0, reach, TagSolid, TagPlatform, TagRamp)
	if check == nil {
		o.Y += dy
		o.Update()
		return
	}

	bottom := o.Bottom()
	best := math.Inf(1)
	var ground *resolv.Object
	consider := func(surface, tolerance float64, obj *resolv.Object) {
		d := surface - bottom
		if d < -tolerance || d > reach || d >= best {
			return
		}
		best = d
		ground = obj
	}

	for _, s := range check.ObjectsByTags(TagSolid) {
		if overlapsX(o, s) {
			consider(s.Y, overlapEpsilon, s)
		}
	}
	for _, p := range check.ObjectsByTags(TagPlatform) {
		if overlapsX(o, p) {
			consider(p.Y, platformTolerance, p)
		}
	}
	centerX := o.X + o.W/2
	for _, r := range check.ObjectsByTags(TagRamp) {
		if centerX < r.X || centerX > r.X+r.W {
			continue
		}
		consider(gamemath.GetSlopeSurfaceY(o, r, TagSlopeUpRight, TagSlopeUpLeft), rampTolerance, r)
	}

	if ground == nil {
		o.Y += dy
		o.Update()
		return
	}
	o.Y += best
	o.Update()
	b.OnGround = ground
	b.SpeedY = 0
}

func (b *Body) moveUp(dy float64) {
	o := b.Object
	move := dy
	if check := o.Check(0, dy, TagSolid); check != nil {
		for _, s := range check.ObjectsByTags(TagSolid) {
			if !overlapsX(o, s) {
				continue
			}
			ceiling := s.Y + s.H
			if ceiling > o.Y+overlapEpsilon || o.Y+dy >= ceiling {
				continue
			}
			if d := ceiling - o.Y; d > move {
				move = d
				b.SpeedY = 0
			}
		}
	}
	o.Y += move
	o.Update()
}

func overlapsX(o, other *resolv.Object) bool {
	return o.X < other.X+other.W-overlapEpsilon && o.X+o.W > other.X+overlapEpsilon
}

func overlaps(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.X+other.W-overlapEpsilon && x+w > other.X+overlapEpsilon &&
		y < other.Y+other.H-overlapEpsilon && y+h > other.Y+overlapEpsilon
}

package charsim

import (
	"github.com/flintgame/flint/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const cellSize = 16

// MovingPlatform is a one-way platform that floats back and forth along X.
type MovingPlatform struct {
	Object *resolv.Object
	seq    *gween.Sequence
}

func newMovingPlatform(obj *resolv.Object, travel, period float64) *MovingPlatform {
	half := float32(period / 2)
	from := float32(obj.X)
	to := float32(obj.X + travel)
	seq := gween.NewSequence(
		gween.New(from, to, half, ease.InOutSine),
		gween.New(to, from, half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	return &MovingPlatform{Object: obj, seq: seq}
}

// Update advances the platform by dt seconds.
func (p *MovingPlatform) Update(dt float64) {
	x, _, _ := p.seq.Update(float32(dt))
	p.Object.X = float64(x)
	p.Object.Update()
}

// Level is the collision world built from a parsed level.
type Level struct {
	Data      *leveldata.CollisionData
	Space     *resolv.Space
	Platforms []*MovingPlatform
}

// NewLevel fills a fresh resolv space with the level's solids, ramps and
// platforms.
func NewLevel(data *leveldata.CollisionData) *Level {
	cw, ch := data.TileWidth, data.TileHeight
	if cw <= 0 || ch <= 0 {
		cw, ch = cellSize, cellSize
	}
	l := &Level{
		Data:  data,
		Space: resolv.NewSpace(data.MapWidth, data.MapHeight, cw, ch),
	}

	for _, r := range data.SolidRects {
		var obj *resolv.Object
		switch r.SlopeType {
		case TagSlopeUpRight, TagSlopeUpLeft:
			obj = resolv.NewObject(r.X, r.Y, r.W, r.H, TagRamp, r.SlopeType)
		default:
			obj = resolv.NewObject(r.X, r.Y, r.W, r.H, TagSolid)
		}
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		l.Space.Add(obj)
	}

	for _, p := range data.Platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, TagPlatform)
		obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
		l.Space.Add(obj)
		if p.Floating {
			l.Platforms = append(l.Platforms, newMovingPlatform(obj, p.Travel, p.Period))
		}
	}

	return l
}

// Update moves the floating platforms by dt seconds.
func (l *Level) Update(dt float64) {
	for _, p := range l.Platforms {
		p.Update(dt)
	}
}

// SpawnBody creates a body at the n-th spawn point.
func (l *Level) SpawnBody(n int, tuning Tuning, tags ...string) *Body {
	sp := l.Data.Spawn(n)
	return NewBody(l.Space, sp.X, sp.Y, tuning, tags...)
}

// Objects returns every object in the level space.
func (l *Level) Objects() []*resolv.Object {
	return l.Space.Objects()
}

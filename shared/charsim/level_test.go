package charsim

import (
	"math"
	"testing"

	"github.com/flintgame/flint/shared/leveldata"
)

func testLevelData() *leveldata.CollisionData {
	data := &leveldata.CollisionData{
		Name:       "test",
		MapWidth:   320,
		MapHeight:  240,
		TileWidth:  16,
		TileHeight: 16,
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 32, Y: 100},
			{X: 200, Y: 100},
		},
		Platforms: []leveldata.PlatformRect{
			{X: 100, Y: 120, W: 48, H: 8},
			{X: 200, Y: 80, W: 48, H: 8, Floating: true, Travel: 64, Period: 2},
		},
	}
	for x := 0; x < 320; x += 16 {
		data.SolidRects = append(data.SolidRects, leveldata.SolidRect{X: float64(x), Y: 208, W: 16, H: 16})
	}
	data.SolidRects = append(data.SolidRects, leveldata.SolidRect{X: 160, Y: 192, W: 16, H: 16, SlopeType: TagSlopeUpRight})
	return data
}

func TestNewLevel(t *testing.T) {
	l := NewLevel(testLevelData())

	var solids, ramps, platforms int
	for _, o := range l.Objects() {
		switch {
		case o.HasTags(TagSolid):
			solids++
		case o.HasTags(TagRamp):
			ramps++
			if !o.HasTags(TagSlopeUpRight) {
				t.Errorf("ramp missing slope tag")
			}
		case o.HasTags(TagPlatform):
			platforms++
		}
	}
	if solids != 20 || ramps != 1 || platforms != 2 {
		t.Errorf("solids %d ramps %d platforms %d", solids, ramps, platforms)
	}
	if len(l.Platforms) != 1 {
		t.Fatalf("moving platforms = %d, want 1", len(l.Platforms))
	}
}

func TestMovingPlatformLoops(t *testing.T) {
	l := NewLevel(testLevelData())
	p := l.Platforms[0]

	l.Update(1)
	if math.Abs(p.Object.X-264) > 0.01 {
		t.Errorf("after half a period x = %v, want 264", p.Object.X)
	}
	l.Update(1)
	if math.Abs(p.Object.X-200) > 0.01 {
		t.Errorf("after a full period x = %v, want 200", p.Object.X)
	}
	l.Update(0.5)
	if p.Object.X <= 200 || p.Object.X >= 264 {
		t.Errorf("platform stopped looping: x = %v", p.Object.X)
	}
}

func TestSpawnBodyLands(t *testing.T) {
	l := NewLevel(testLevelData())
	b := l.SpawnBody(0, DefaultTuning(), "player")
	if b.Object.X != 32 || b.Object.Y != 100 {
		t.Fatalf("spawned at %v,%v", b.Object.X, b.Object.Y)
	}
	if !b.Object.HasTags("player") || !b.Object.HasTags(TagCharacter) {
		t.Error("body missing its tags")
	}
	settle(t, b)
	if math.Abs(b.Object.Bottom()-208) > 1e-9 {
		t.Errorf("bottom = %v, want 208", b.Object.Bottom())
	}
}

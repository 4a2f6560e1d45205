// Package leveldata parses Tiled levels into plain collision data shared by
// the client and the server. It does not depend on ebiten, donburi or resolv.
package leveldata

import "errors"

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn point")

// Layer and object group names read from the TMX files.
const (
	SolidLayer       = "wg-tiles"
	SpawnGroup       = "PlayerSpawn"
	PlatformGroup    = "Platforms"
	DefaultTravel    = 64.0
	DefaultPeriodSec = 3.0
)

// CollisionData holds everything the simulation needs from one level.
type CollisionData struct {
	Name        string
	SolidRects  []SolidRect
	Platforms   []PlatformRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
	TileWidth   int
	TileHeight  int
}

// SolidRect is one solid tile. Ramps carry their slope direction.
type SolidRect struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
}

// IsRamp reports whether the tile is a slope rather than a full block.
func (r SolidRect) IsRamp() bool {
	return r.SlopeType != ""
}

// PlatformRect is a one-way platform. Floating platforms travel Travel pixels
// to the right and back, once every Period seconds.
type PlatformRect struct {
	X, Y, W, H float64
	Floating   bool
	Travel     float64
	Period     float64
}

type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the n-th spawn point, wrapping around when there are more
// characters than spawn points.
func (d *CollisionData) Spawn(n int) SpawnPoint {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{}
	}
	if n < 0 {
		n = -n
	}
	return d.SpawnPoints[n%len(d.SpawnPoints)]
}

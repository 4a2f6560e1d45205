package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadCollisionData parses a TMX file from fsys. Callers pass embed.FS on the
// client and os.DirFS on the server.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	data.SolidRects = parseSolids(levelMap)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			data.SpawnPoints = append(data.SpawnPoints, parseSpawns(og)...)
		case PlatformGroup:
			data.Platforms = append(data.Platforms, parsePlatforms(og)...)
		}
	}

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	// Left to right, so spawn assignment is stable.
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

func parseSolids(levelMap *tiled.Map) []SolidRect {
	var solids []SolidRect
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			var slope string
			if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				slope = tt.Properties.GetString("slope")
			}
			solids = append(solids, SolidRect{
				X:         float64(i%levelMap.Width) * tileW,
				Y:         float64(i/levelMap.Width) * tileH,
				W:         tileW,
				H:         tileH,
				SlopeType: slope,
			})
		}
		break
	}
	return solids
}

func parseSpawns(og *tiled.ObjectGroup) []SpawnPoint {
	spawns := make([]SpawnPoint, 0, len(og.Objects))
	for _, o := range og.Objects {
		spawns = append(spawns, SpawnPoint{
			X:     o.X,
			Y:     o.Y,
			Index: o.Properties.GetInt("spawnIndex"),
		})
	}
	return spawns
}

func parsePlatforms(og *tiled.ObjectGroup) []PlatformRect {
	platforms := make([]PlatformRect, 0, len(og.Objects))
	for _, o := range og.Objects {
		p := PlatformRect{
			X:        o.X,
			Y:        o.Y,
			W:        o.Width,
			H:        o.Height,
			Floating: o.Properties.GetBool("floating"),
		}
		if p.Floating {
			p.Travel = o.Properties.GetFloat("travel")
			if p.Travel == 0 {
				p.Travel = DefaultTravel
			}
			p.Period = o.Properties.GetFloat("period")
			if p.Period <= 0 {
				p.Period = DefaultPeriodSec
			}
		}
		platforms = append(platforms, p)
	}
	return platforms
}

// LoadAllLevels loads every .tmx file in levelsDir. It returns the levels
// keyed by file stem and the sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		data, err := LoadCollisionData(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

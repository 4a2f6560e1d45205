package core

import (
	"fmt"
	"log"
	"os"

	"github.com/flintgame/flint/shared/charsim"
	"github.com/flintgame/flint/shared/leveldata"
)

// LoadServerLevel loads the named level from the assets directory and builds
// its collision space.
func LoadServerLevel(assetsDir, name string) (*charsim.Level, error) {
	levels, names, err := leveldata.LoadAllLevels(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}
	if name == "" {
		name = names[0]
	}
	data, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found (have %v)", name, names)
	}

	level := charsim.NewLevel(data)
	log.Printf("[server] loaded level %s: %d solid tiles, %d platforms, %d spawn points, %dx%d map",
		name, len(data.SolidRects), len(data.Platforms), len(data.SpawnPoints), data.MapWidth, data.MapHeight)
	return level, nil
}

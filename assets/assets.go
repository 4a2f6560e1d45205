package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/flintgame/flint/config"
	"github.com/flintgame/flint/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

const levelsDir = "levels"

// Level is a parsed level plus its pre-rendered background.
type Level struct {
	Name       string
	Data       *leveldata.CollisionData
	Background *ebiten.Image
}

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// ListLevelNames returns the embedded level names, sorted.
func ListLevelNames() []string {
	entries, err := assetFS.ReadDir(levelsDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(e.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadLevel parses the named level and renders its visible tile layers.
// An empty name loads the first level.
func LoadLevel(name string) (*Level, error) {
	if name == "" {
		names := ListLevelNames()
		if len(names) == 0 {
			return nil, fmt.Errorf("no level files in %s", levelsDir)
		}
		name = names[0]
	}
	levelPath := path.Join(levelsDir, name+".tmx")

	data, err := leveldata.LoadCollisionData(assetFS, levelPath)
	if err != nil {
		return nil, err
	}

	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}
	bg, err := renderBackground(levelMap)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", levelPath, err)
	}

	return &Level{Name: data.Name, Data: data, Background: bg}, nil
}

// MustLoadLevel is LoadLevel for start-up paths that cannot continue without
// a level.
func MustLoadLevel(name string) *Level {
	l, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return l
}

func renderBackground(levelMap *tiled.Map) (*ebiten.Image, error) {
	bg := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, err
	}

	// Only layers flagged with the custom "render" property are drawn.
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("[assets] skipping layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return bg, nil
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to decode image %s: %v", path, err))
	}

	l.cache[path] = img
	return img
}

// GetFrame returns a cached sub-image for one animation frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	frame := l.MustLoadImage(sheetPath(dir, state)).SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

func sheetPath(dir string, state config.StateID) string {
	return fmt.Sprintf("images/spritesheets/%s/%s.png", dir, state)
}

var (
	animationLoader = NewAnimationLoader()
)

func GetSheet(dir string, state config.StateID) *ebiten.Image {
	return animationLoader.MustLoadImage(sheetPath(dir, state))
}

func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, state, frameIndex, srcRect)
}

// PreloadAnimations decodes every sheet of key and caches its frames so the
// first draw does not stall.
func PreloadAnimations(key string, frameWidth, frameHeight int) {
	defs, ok := config.CharacterAnimations[key]
	if !ok {
		return
	}
	for state, def := range defs {
		step := def.Step
		if step <= 0 {
			step = 1
		}
		for i := def.First; i <= def.Last; i += step {
			sx := i * frameWidth
			_ = GetFrame(key, state, i, image.Rect(sx, 0, sx+frameWidth, frameHeight))
		}
	}
}

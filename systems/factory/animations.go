package factory

import (
	"fmt"
	"image"

	"github.com/flintgame/flint/assets"
	"github.com/flintgame/flint/assets/animations"
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds the flipbooks for a sprite key from the
// definitions in config and slices every frame up front.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		Frames:       make(map[cfg.StateID]map[int]*ebiten.Image),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.StateNone,
	}

	for state, def := range defs {
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		animData.Animations[state] = anim

		frames := make(map[int]*ebiten.Image)
		for i := def.First; i <= def.Last; i += anim.Step {
			sx := i * frameWidth
			frames[i] = assets.GetFrame(key, state, i, image.Rect(sx, 0, sx+frameWidth, frameHeight))
		}
		animData.Frames[state] = frames
	}

	animData.SetAnimation(cfg.Idle)
	return animData
}

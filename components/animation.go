package components

import (
	"github.com/flintgame/flint/assets/animations"
	"github.com/flintgame/flint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Frames           map[config.StateID]map[int]*ebiten.Image // sub-images keyed by sheet index
	Animations       map[config.StateID]*animations.Animation
	FrameWidth       int
	FrameHeight      int
}

// SetAnimation swaps the active flipbook. Asking for the state already
// playing keeps its frame position. It reports whether the flipbook changed.
func (a *AnimationData) SetAnimation(state config.StateID) bool {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return false
	}
	anim, ok := a.Animations[state]
	if !ok {
		return false
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	anim.Restart()
	return true
}

// Frame returns the image for the current frame, or nil.
func (a *AnimationData) Frame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.Frames[a.CurrentSheet][a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()

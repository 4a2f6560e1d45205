package components

import (
	cfg "github.com/flintgame/flint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog axis and touch edges of this frame.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	MoveAxis float64 // -1..1, analog stick or digital left/right

	TouchStarted bool
	TouchStopped bool
	Touches      []ebiten.TouchID // touches currently held

	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

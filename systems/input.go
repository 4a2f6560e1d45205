package systems

import (
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid per-frame allocations
var (
	gamepadIDs   []ebiten.GamepadID
	touchIDs     []ebiten.TouchID
	justTouchIDs []ebiten.TouchID
)

// UpdateInput polls keyboard, gamepads and touch into the Input component.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	axis := analogAxis(gamepadIDs)
	if axis != 0 {
		gamepadUsed = true
	} else {
		if input.Current[cfg.ActionMoveLeft] {
			axis--
		}
		if input.Current[cfg.ActionMoveRight] {
			axis++
		}
	}
	input.MoveAxis = axis

	touchUsed := updateTouches(input)

	switch {
	case touchUsed:
		input.LastInputMethod = components.InputTouch
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// updateTouches records touch begin/end edges for this frame.
func updateTouches(input *components.InputData) bool {
	justTouchIDs = inpututil.AppendJustPressedTouchIDs(justTouchIDs[:0])
	input.TouchStarted = len(justTouchIDs) > 0

	input.TouchStopped = false
	for _, id := range input.Touches {
		if inpututil.IsTouchJustReleased(id) {
			input.TouchStopped = true
		}
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	input.Touches = append(input.Touches[:0], touchIDs...)
	return input.TouchStarted || input.TouchStopped || len(input.Touches) > 0
}

// analogAxis returns the first left stick outside the deadzone, or 0.
func analogAxis(gamepads []ebiten.GamepadID) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -deadzone || h > deadzone {
			return h
		}
	}
	return 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

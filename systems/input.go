package systems

import (
	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// ButtonSource fills in which logical actions are held this frame.
type ButtonSource interface {
	Poll(input *components.InputData)
}

// DeviceInput polls the keyboard and standard-layout gamepads through ebiten.
type DeviceInput struct{}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

func (DeviceInput) Poll(input *components.InputData) {
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

	// Merge the left stick into the directional actions
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveUp] = true
			gamepadUsed = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveDown] = true
			gamepadUsed = true
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// UpdateInputFrom returns a system that samples src once per tick.
// Must run BEFORE RecordMovementController and RecordDashIntent.
func UpdateInputFrom(src ButtonSource) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		src.Poll(input)
	}
}

// RecordMovementController turns the directional actions into a normalized
// intent and broadcasts it to every controlled entity.
func RecordMovementController(e *ecs.ECS) {
	input := getOrCreateInput(e)

	var intent math2.Vec2
	if input.Current[cfg.ActionMoveUp] {
		intent.Y -= 1
	}
	if input.Current[cfg.ActionMoveDown] {
		intent.Y += 1
	}
	if input.Current[cfg.ActionMoveLeft] {
		intent.X -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		intent.X += 1
	}

	// Diagonal movement must not be faster than axis-aligned movement.
	intent = gamemath.NormalizeOrZero(intent)

	components.MovementController.Each(e.World, func(entry *donburi.Entry) {
		components.MovementController.Get(entry).Intent = intent
	})
}

// RecordDashIntent stamps the clock time of a dash button press into the
// shared request buffer.
func RecordDashIntent(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !input.Action(cfg.ActionDash).JustPressed {
		return
	}
	getOrCreateDashRequest(e).Record(getOrCreateClock(e).TickEnd())
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input, components.DashRequest))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// getOrCreateDashRequest returns the singleton dash request buffer
func getOrCreateDashRequest(e *ecs.ECS) *components.DashRequestData {
	entry, ok := components.DashRequest.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.DashRequest))
	}
	return components.DashRequest.Get(entry)
}

package components

import (
	"time"

	cfg "github.com/automoto/quackdash/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

// Action returns the full ActionState for an action ID.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	curr := i.Current[id]
	prev := i.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()

// DashRequestData is the process-wide buffer holding the clock time of the
// last dash button press. It is shared by every dash-capable entity.
type DashRequestData struct {
	At      time.Duration
	Pending bool
}

// Time returns the buffered press time, if any.
func (d *DashRequestData) Time() (time.Duration, bool) {
	return d.At, d.Pending
}

// Record stores a press at clock time at.
func (d *DashRequestData) Record(at time.Duration) {
	d.At = at
	d.Pending = true
}

var DashRequest = donburi.NewComponentType[DashRequestData]()

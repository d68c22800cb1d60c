package components

import (
	"time"

	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/yohamta/donburi"
)

// PlayerAnimationData tracks the player's locomotion animation. It is tightly
// bound to the atlas layout in cfg.Animation.
type PlayerAnimationData struct {
	timer gametime.Timer
	frame int
	state AnimationState
}

// NewPlayerAnimation returns an animation in the Idling state.
func NewPlayerAnimation() PlayerAnimationData {
	return newIdling()
}

func newIdling() PlayerAnimationData {
	return PlayerAnimationData{
		timer: gametime.NewTimer(cfg.Animation.Idle.Interval, gametime.Repeating),
		state: Idling,
	}
}

func newWalking() PlayerAnimationData {
	return PlayerAnimationData{
		timer: gametime.NewTimer(cfg.Animation.Walk.Interval, gametime.Repeating),
		state: Walking,
	}
}

func newDashing() PlayerAnimationData {
	a := newWalking()
	a.timer.Pause()
	a.state = Dashing
	return a
}

// UpdateTimer advances the frame timer and steps the frame once when an
// interval completes.
func (a *PlayerAnimationData) UpdateTimer(delta time.Duration) {
	a.timer.Tick(delta)
	if !a.timer.Finished() {
		return
	}
	a.frame = (a.frame + 1) % a.frameCount()
}

// UpdateState switches to state if it differs from the current one.
func (a *PlayerAnimationData) UpdateState(state AnimationState) {
	if a.state == state {
		return
	}
	if transition, ok := animationTransitions[stateTransition{a.state, state}]; ok {
		transition(a)
	}
}

// Changed reports whether the frame advanced this tick.
func (a *PlayerAnimationData) Changed() bool {
	return a.timer.Finished()
}

// AtlasIndex returns the sprite cell for the current state and frame.
func (a *PlayerAnimationData) AtlasIndex() int {
	switch a.state {
	case Walking, Dashing:
		return cfg.Animation.Walk.AtlasOffset + a.frame
	default:
		return cfg.Animation.Idle.AtlasOffset + a.frame
	}
}

func (a *PlayerAnimationData) State() AnimationState { return a.state }
func (a *PlayerAnimationData) Frame() int            { return a.frame }

// Phase returns the time accumulated toward the next frame.
func (a *PlayerAnimationData) Phase() time.Duration { return a.timer.Elapsed() }

func (a *PlayerAnimationData) frameCount() int {
	n := cfg.Animation.Idle.Frames
	if a.state != Idling {
		n = cfg.Animation.Walk.Frames
	}
	if n <= 0 {
		return 1
	}
	return n
}

var PlayerAnimation = donburi.NewComponentType[PlayerAnimationData]()

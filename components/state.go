package components

// AnimationState is the locomotion state shown by the player sprite.
type AnimationState int

const (
	Idling AnimationState = iota
	Walking
	Dashing
)

func (s AnimationState) String() string {
	switch s {
	case Idling:
		return "idling"
	case Walking:
		return "walking"
	case Dashing:
		return "dashing"
	}
	return "unknown"
}

type stateTransition struct {
	from, to AnimationState
}

// animationTransitions lists every state change. Anything leaving or entering
// Idling starts a fresh cadence; Walking and Dashing share one timer, so
// switching between them only pauses or resumes it and keeps the frame.
var animationTransitions = map[stateTransition]func(a *PlayerAnimationData){
	{Idling, Walking}: func(a *PlayerAnimationData) { *a = newWalking() },
	{Idling, Dashing}: func(a *PlayerAnimationData) { *a = newDashing() },
	{Walking, Idling}: func(a *PlayerAnimationData) { *a = newIdling() },
	{Dashing, Idling}: func(a *PlayerAnimationData) { *a = newIdling() },
	{Walking, Dashing}: func(a *PlayerAnimationData) {
		a.timer.Pause()
		a.state = Dashing
	},
	{Dashing, Walking}: func(a *PlayerAnimationData) {
		a.timer.Unpause()
		a.state = Walking
	},
}

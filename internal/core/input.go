package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionShoot            // Space, P - fire a projectile from the first player
	ActionTurnLeft         // Left arrow, A - rotate the first player counter-clockwise
	ActionTurnRight        // Right arrow, D - rotate the first player clockwise
	ActionRestart          // R - restart the current level
	ActionNextLevel        // N - advance to the next level
	ActionPause            // Esc - pause/unpause
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShoot:
		return "Shoot"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered since the previous tick.
// Shoot is counted so that several key presses between two ticks each spawn a projectile.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

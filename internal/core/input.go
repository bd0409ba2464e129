package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left (held)
	ActionRight          // D, Right arrow - move paddle right (held)
	ActionUp             // W, Up arrow, k - menu cursor up
	ActionDown           // S, Down arrow, j - menu cursor down
	ActionLaunch         // Space - launch the ball
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause
	ActionMute           // M - toggle sound
	ActionQuit           // Q, Ctrl+C - exit
	ActionAnyKey         // Any key without a binding
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLaunch:
		return "Launch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	case ActionAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered or held during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Any reports whether any action other than the ignored ones was triggered.
func (f InputFrame) Any(ignore ...Action) bool {
	for a, on := range f.Actions {
		if !on || a == ActionNone {
			continue
		}
		skip := false
		for _, ig := range ignore {
			if a == ig {
				skip = true
				break
			}
		}
		if !skip {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

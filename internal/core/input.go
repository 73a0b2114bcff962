package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionPrimary          // 1 - attack
	ActionSecondary        // 2 - special ability
	ActionTertiary         // 3
	ActionConfirm          // Enter
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P, Space
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionTertiary:
		return "Tertiary"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered since the previous tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Last is the most recently triggered directional action, so games that
	// accept one heading change per tick can honour key order.
	Last Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsDirection() {
		f.Last = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Last = ActionNone
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Last = f.Last
	return clone
}

// IsDirection reports whether the action is one of the four movement intents.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

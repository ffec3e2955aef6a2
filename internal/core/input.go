package core

// Action represents a semantic input action, abstracted from physical key presses.
// Scenes react to high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - nudge the pointer left
	ActionRight          // Right arrow, D - nudge the pointer right
	ActionConfirm        // Enter, Space - press the first button
	ActionBack           // B, Escape - press the exit button
	ActionQuit           // Q, Ctrl+C - close the session immediately
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the cursor position in world units.
	Pointer Vec2

	// Click is true when the primary button went down this frame.
	Click bool
}

// NewInputFrame creates an empty input frame with the pointer at p.
func NewInputFrame(p Vec2) InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Pointer: p,
	}
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

// Clear resets actions and the click for the next frame. The pointer persists.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = false
}

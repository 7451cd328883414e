package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (Axe)
	ActionRight          // D, Right arrow - move right (Axe)
	ActionJump           // Space, W, Up - jump (Dasher)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionJump:
		return "Jump"
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

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Dt is the time in seconds since the previous tick.
	// Zero means the game should fall back to its nominal tick length.
	Dt float64

	// Actions holds actions that were pressed this frame (rising edge).
	Actions map[Action]bool

	// Held holds actions whose key is currently down.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed (and therefore held) for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Holding returns true if the given action's key is down this frame.
func (f InputFrame) Holding(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Dt = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Dt = f.Dt
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// Default grace windows for terminals, which report auto-repeat key presses
// but never key releases.
const (
	DefaultHoldGrace   = 0.12 // seconds a key stays held after its last sighting
	DefaultRepeatGrace = 0.6  // seconds of silence before a sighting is a new press
)

// KeyTracker derives held and pressed state from raw key sightings by
// comparing each frame with the previous ones.
type KeyTracker struct {
	HoldGrace   float64
	RepeatGrace float64

	sinceSeen map[Action]float64 // seconds since each action was last seen
}

// NewKeyTracker creates a tracker with the default terminal grace windows.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{
		HoldGrace:   DefaultHoldGrace,
		RepeatGrace: DefaultRepeatGrace,
		sinceSeen:   make(map[Action]float64),
	}
}

// Frame converts the actions sighted during the last tick into an InputFrame.
// An action is pressed when it is sighted after more than RepeatGrace seconds
// of silence, and held while it was sighted within HoldGrace seconds.
func (k *KeyTracker) Frame(sighted []Action, dt float64) InputFrame {
	if k.sinceSeen == nil {
		k.sinceSeen = make(map[Action]float64)
	}

	out := NewInputFrame()
	out.Dt = dt

	for a := range k.sinceSeen {
		k.sinceSeen[a] += dt
	}

	for _, a := range sighted {
		if a == ActionNone {
			continue
		}
		since, known := k.sinceSeen[a]
		if !known || since > k.RepeatGrace {
			out.Set(a)
		}
		k.sinceSeen[a] = 0
	}

	for a, since := range k.sinceSeen {
		if since <= k.HoldGrace {
			out.Hold(a)
		}
		if since > k.RepeatGrace {
			delete(k.sinceSeen, a)
		}
	}

	return out
}

// Reset forgets all previously seen keys.
func (k *KeyTracker) Reset() {
	for a := range k.sinceSeen {
		delete(k.sinceSeen, a)
	}
}

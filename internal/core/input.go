package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionRestart        // R - start a new session after game over
	ActionQuit           // Q, Esc, Ctrl+C, window close
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// opposite returns the direction pointing the other way, or ActionNone.
func (a Action) opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}

// InputFrame is the set of actions held during one simulation tick.
// Directional actions are non-exclusive: Left and Up together move diagonally.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
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
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// KeyState turns key-press events into a per-frame held set.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held for holdFrames ticks after its latest press. Sources that
// know real key state can call Release directly.
type KeyState struct {
	holdFrames int
	remaining  map[Action]int
}

// NewKeyState creates a key tracker. holdFrames below 1 is treated as 1.
func NewKeyState(holdFrames int) *KeyState {
	return &KeyState{
		holdFrames: Max(holdFrames, 1),
		remaining:  make(map[Action]int),
	}
}

// Press marks an action held. A direction press releases its opposite,
// since a terminal only repeats the most recent key.
func (k *KeyState) Press(a Action) {
	if a == ActionNone {
		return
	}
	if opp := a.opposite(); opp != ActionNone {
		delete(k.remaining, opp)
	}
	k.remaining[a] = k.holdFrames
}

// Release marks an action as no longer held.
func (k *KeyState) Release(a Action) {
	delete(k.remaining, a)
}

// Held reports whether an action is currently held.
func (k *KeyState) Held(a Action) bool {
	return k.remaining[a] > 0
}

// Reset releases every action.
func (k *KeyState) Reset() {
	for a := range k.remaining {
		delete(k.remaining, a)
	}
}

// Frame returns the held actions for this tick and ages every hold by one.
func (k *KeyState) Frame() InputFrame {
	frame := NewInputFrame()
	for a, n := range k.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(k.remaining, a)
		} else {
			k.remaining[a] = n - 1
		}
	}
	return frame
}

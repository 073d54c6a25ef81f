package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit // q

	// Paddle motion
	IntentLeftUp    // w
	IntentLeftDown  // s
	IntentRightUp   // Up arrow
	IntentRightDown // Down arrow
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentQuit:      "quit",
	IntentLeftUp:    "left-up",
	IntentLeftDown:  "left-down",
	IntentRightUp:   "right-up",
	IntentRightDown: "right-down",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Paddle returns the paddle index an intent moves and its row delta
// ok is false for intents that do not move a paddle
func (t IntentType) Paddle() (index, delta int, ok bool) {
	switch t {
	case IntentLeftUp:
		return 0, -1, true
	case IntentLeftDown:
		return 0, 1, true
	case IntentRightUp:
		return 1, -1, true
	case IntentRightDown:
		return 1, 1, true
	}
	return 0, 0, false
}

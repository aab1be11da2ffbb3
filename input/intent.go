package input

// Intent is the semantic meaning of a key press
type Intent uint8

const (
	IntentNone Intent = iota

	// System-level intents
	IntentQuit // Ctrl+C, Ctrl+Q, ESC

	// Steering, named after the arrow key pressed
	IntentKeyUp    // Up arrow, k
	IntentKeyDown  // Down arrow, j
	IntentKeyLeft  // Left arrow, h
	IntentKeyRight // Right arrow, l
)

var intentNames = [...]string{
	IntentNone:     "none",
	IntentQuit:     "quit",
	IntentKeyUp:    "key-up",
	IntentKeyDown:  "key-down",
	IntentKeyLeft:  "key-left",
	IntentKeyRight: "key-right",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Directional reports whether the intent is a steering key
func (i Intent) Directional() bool {
	return i >= IntentKeyUp && i <= IntentKeyRight
}

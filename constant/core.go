package constant

import "time"

// Playfield
const (
	// GridWidth is the number of columns in the playfield
	GridWidth = 60

	// GridHeight is the number of rows in the playfield
	GridHeight = 30
)

// Game Loop Timing
const (
	// InputPollTimeout bounds the wait for a key event each frame (~30 Hz)
	InputPollTimeout = 33 * time.Millisecond
)

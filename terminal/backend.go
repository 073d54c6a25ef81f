package terminal

import "time"

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read waits up to timeout for input; a timeout returns no data and no error
	Read(timeout time.Duration) ([]byte, error)
}

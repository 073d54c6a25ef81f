package terminal

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrInputClosed is returned when stdin reaches end of file
var ErrInputClosed = errors.New("terminal input closed")

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times; only the first call after Init acts
	Fini()

	// PollKey waits up to timeout for one key event; nil event on timeout
	PollKey(timeout time.Duration) (*tcell.EventKey, error)

	// Writer returns the raw output stream for frame data
	Writer() io.Writer
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	parser  *keyParser

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a new Terminal instance on stdin/stdout
func New() Terminal {
	return newTerminal(newBackend())
}

func newTerminal(b Backend) *termImpl {
	return &termImpl{
		backend: b,
		parser:  newKeyParser(),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}
	t.initialized = true

	// Enter alternate screen, hide cursor
	// DISABLE AUTO-WRAP: prevents scroll when writing to the bottom-right corner
	for _, seq := range [][]byte{csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, CSIClear} {
		if _, err := t.backend.Write(seq); err != nil {
			return errors.Wrap(err, "terminal setup write")
		}
	}
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Output may already be broken on this path; restoration continues regardless
	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	t.backend.Write(csiAutoWrapOn)
	t.backend.Write(csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

// PollKey returns a queued event immediately, otherwise waits on the backend
// Events arriving together are queued and handed out one per call
func (t *termImpl) PollKey(timeout time.Duration) (*tcell.EventKey, error) {
	if ev := t.parser.next(); ev != nil {
		return ev, nil
	}

	data, err := t.backend.Read(timeout)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		t.parser.flushEscape()
	} else {
		t.parser.feed(data)
	}
	return t.parser.next(), nil
}

// Writer returns the backend output; Backend satisfies io.Writer
func (t *termImpl) Writer() io.Writer {
	return t.backend
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

package terminal

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// keyParser assembles raw stdin bytes into key events
// Incomplete sequences stay buffered until more bytes arrive or a poll times out
type keyParser struct {
	// Persistent buffer for stream assembly; partial UTF-8 and escape sequences survive across reads
	buf     []byte
	pending []*tcell.EventKey
}

func newKeyParser() *keyParser {
	return &keyParser{
		buf: make([]byte, 0, 256),
	}
}

// next pops the oldest parsed event, nil if none
func (p *keyParser) next() *tcell.EventKey {
	if len(p.pending) == 0 {
		return nil
	}
	ev := p.pending[0]
	p.pending[0] = nil
	p.pending = p.pending[1:]
	return ev
}

// feed appends data and parses as much as possible
func (p *keyParser) feed(data []byte) {
	p.buf = append(p.buf, data...)
	consumed := p.parse(p.buf)

	if consumed >= len(p.buf) {
		p.buf = p.buf[:0]
		return
	}
	copy(p.buf, p.buf[consumed:])
	p.buf = p.buf[:len(p.buf)-consumed]
}

// flushEscape resolves an unfinished escape prefix once input went quiet
// A lone ESC is the Escape key; ESC [ and ESC O with nothing after are Alt+[ and Alt+O
func (p *keyParser) flushEscape() {
	if len(p.buf) == 0 || p.buf[0] != 0x1b {
		return
	}
	switch {
	case len(p.buf) == 1:
		p.emit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	case len(p.buf) == 2 && (p.buf[1] == '[' || p.buf[1] == 'O'):
		p.emit(tcell.NewEventKey(tcell.KeyRune, rune(p.buf[1]), tcell.ModAlt))
	default:
		return
	}
	p.buf = p.buf[:0]
}

func (p *keyParser) emit(ev *tcell.EventKey) {
	p.pending = append(p.pending, ev)
}

// parse parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (p *keyParser) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			p.emit(tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone))
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}

			consumed, ev := p.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev != nil {
				p.emit(ev)
			}
			i += consumed
			continue
		}

		// Control characters and DEL
		if b < 0x20 || b == 0x7f {
			p.emit(parseControl(b))
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return i
		}
		r, size := utf8.DecodeRune(data[i:])
		if r != utf8.RuneError {
			p.emit(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		}
		i += size
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
// A nil event with non-zero length is a swallowed unknown sequence
func (p *keyParser) parseEscape(data []byte) (int, *tcell.EventKey) {
	if len(data) < 2 {
		return 0, nil
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModAlt)
	}

	if data[1] == '[' {
		return parseCSI(data)
	}
	if data[1] == 'O' {
		return parseSS3(data)
	}

	// Alt+Control character (ESC + 0x00-0x1F)
	if data[1] < 0x20 {
		ev := parseControl(data[1])
		return 2, tcell.NewEventKey(ev.Key(), ev.Rune(), ev.Modifiers()|tcell.ModAlt)
	}

	// Alt+printable
	if data[1] < 0x7f {
		return 2, tcell.NewEventKey(tcell.KeyRune, rune(data[1]), tcell.ModAlt)
	}

	// ESC followed by DEL or a non-ASCII byte: report ESC, reparse the rest
	return 1, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
}

// parseCSI parses CSI sequence without allocation
func parseCSI(data []byte) (int, *tcell.EventKey) {
	if len(data) < 3 {
		return 0, nil
	}

	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	terminated := false
	for end < maxScan {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			terminated = true
			break
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer
			return 2, nil
		}
	}

	if !terminated {
		if len(data) >= 16 {
			// Overlong garbage, drop the introducer
			return 2, nil
		}
		return 0, nil
	}

	if s, ok := lookupCSI(data[2:end]); ok {
		return end, tcell.NewEventKey(s.key, 0, s.mod)
	}

	// Unknown but valid CSI syntax - consume silently
	return end, nil
}

// parseSS3 parses SS3 sequence, returns length even for unknown sequences
func parseSS3(data []byte) (int, *tcell.EventKey) {
	if len(data) < 3 {
		return 0, nil
	}
	if s, ok := lookupSS3(data[2:3]); ok {
		return 3, tcell.NewEventKey(s.key, 0, s.mod)
	}
	return 3, nil
}

// parseControl maps control characters to keys
// Ctrl+A..Ctrl+Z are reported as the lowercase letter with ModCtrl, which tcell
// turns into KeyCtrlA..KeyCtrlZ; LF is folded into Enter
func parseControl(b byte) *tcell.EventKey {
	switch {
	case b == 0x0a || b == 0x0d:
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	case b == 0x7f:
		return tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	case b == 0x08 || b == 0x09:
		// Backspace and Tab are typeable without Ctrl
		return tcell.NewEventKey(tcell.Key(b), 0, tcell.ModNone)
	case b >= 0x01 && b <= 0x1a:
		return tcell.NewEventKey(tcell.KeyRune, rune(b)+'`', tcell.ModCtrl)
	}
	// NUL and 0x1c-0x1f keep tcell's raw control codes
	return tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone)
}

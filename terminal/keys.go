package terminal

import "github.com/gdamore/tcell/v2"

// escapeSequence maps escape sequences to keys
// Key: sequence after ESC [ (e.g., "A" for up arrow)
type escapeSequence struct {
	seq string
	key tcell.Key
	mod tcell.ModMask
}

// Known escape sequences (CSI sequences: ESC [ ...)
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", tcell.KeyUp, tcell.ModNone},
	{"B", tcell.KeyDown, tcell.ModNone},
	{"C", tcell.KeyRight, tcell.ModNone},
	{"D", tcell.KeyLeft, tcell.ModNone},
	{"Z", tcell.KeyBacktab, tcell.ModShift}, // Shift+Tab

	// Arrow keys with modifiers (xterm style: ESC [ 1 ; mod X)
	{"1;2A", tcell.KeyUp, tcell.ModShift},
	{"1;2B", tcell.KeyDown, tcell.ModShift},
	{"1;2C", tcell.KeyRight, tcell.ModShift},
	{"1;2D", tcell.KeyLeft, tcell.ModShift},
	{"1;3A", tcell.KeyUp, tcell.ModAlt},
	{"1;3B", tcell.KeyDown, tcell.ModAlt},
	{"1;3C", tcell.KeyRight, tcell.ModAlt},
	{"1;3D", tcell.KeyLeft, tcell.ModAlt},
	{"1;5A", tcell.KeyUp, tcell.ModCtrl},
	{"1;5B", tcell.KeyDown, tcell.ModCtrl},
	{"1;5C", tcell.KeyRight, tcell.ModCtrl},
	{"1;5D", tcell.KeyLeft, tcell.ModCtrl},

	// Navigation
	{"H", tcell.KeyHome, tcell.ModNone},
	{"F", tcell.KeyEnd, tcell.ModNone},
	{"1~", tcell.KeyHome, tcell.ModNone},
	{"4~", tcell.KeyEnd, tcell.ModNone},
	{"5~", tcell.KeyPgUp, tcell.ModNone},
	{"6~", tcell.KeyPgDn, tcell.ModNone},
	{"2~", tcell.KeyInsert, tcell.ModNone},
	{"3~", tcell.KeyDelete, tcell.ModNone},
}

// SS3 sequences (ESC O ...), sent by terminals in application cursor mode
var ss3Sequences = []escapeSequence{
	{"A", tcell.KeyUp, tcell.ModNone},
	{"B", tcell.KeyDown, tcell.ModNone},
	{"C", tcell.KeyRight, tcell.ModNone},
	{"D", tcell.KeyLeft, tcell.ModNone},
	{"H", tcell.KeyHome, tcell.ModNone},
	{"F", tcell.KeyEnd, tcell.ModNone},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]escapeSequence {
	m := make(map[string]escapeSequence, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
func lookupCSI(seq []byte) (escapeSequence, bool) {
	s, ok := csiMap[string(seq)]
	return s, ok
}

func lookupSS3(seq []byte) (escapeSequence, bool) {
	s, ok := ss3Map[string(seq)]
	return s, ok
}

package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps unmodified keys to intents
type KeyTable struct {
	// Special keys (arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Character bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:   IntentRightUp,
			tcell.KeyDown: IntentRightDown,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'w': IntentLeftUp,
			's': IntentLeftDown,
		},
	}
}

// Resolve maps a key event to an intent
// Any held modifier disqualifies the key, so Shift+Up or Alt+w resolve to IntentNone
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	if ev == nil || ev.Modifiers() != tcell.ModNone {
		return IntentNone
	}

	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

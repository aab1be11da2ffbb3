package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, ESC)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings: arrows plus vi-style hjkl
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentKeyUp,
			tcell.KeyDown:   IntentKeyDown,
			tcell.KeyLeft:   IntentKeyLeft,
			tcell.KeyRight:  IntentKeyRight,
		},
		Runes: map[rune]Intent{
			'h': IntentKeyLeft,
			'j': IntentKeyDown,
			'k': IntentKeyUp,
			'l': IntentKeyRight,
		},
	}
}

// Lookup resolves a key event; unbound keys give IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

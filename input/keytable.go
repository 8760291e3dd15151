package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Plain rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: any of space, enter, right or
// j advances; left, backspace or k goes back
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyCtrlQ:      IntentQuit,
			tcell.KeyEscape:     IntentQuit,
			tcell.KeyEnter:      IntentAdvance,
			tcell.KeyRight:      IntentAdvance,
			tcell.KeyDown:       IntentAdvance,
			tcell.KeyPgDn:       IntentAdvance,
			tcell.KeyLeft:       IntentBack,
			tcell.KeyUp:         IntentBack,
			tcell.KeyPgUp:       IntentBack,
			tcell.KeyBackspace:  IntentBack,
			tcell.KeyBackspace2: IntentBack,
			tcell.KeyHome:       IntentRestart,
		},
		Runes: map[rune]Intent{
			' ': IntentAdvance,
			'j': IntentAdvance,
			'n': IntentAdvance,
			'k': IntentBack,
			'p': IntentBack,
			'r': IntentRestart,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Resolve maps a tcell event to an intent; non-key events resolve to IntentNone
func (t *KeyTable) Resolve(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return IntentNone
	}
	if key.Key() == tcell.KeyRune {
		return t.Runes[key.Rune()]
	}
	return t.SpecialKeys[key.Key()]
}

// Package input maps terminal key events to simulation intents.
package input

// Intent is the action a key press requests
type Intent uint8

const (
	IntentNone Intent = iota
	IntentAdvance
	IntentBack
	IntentRestart
	IntentToggleMute
	IntentQuit
)

var intentNames = map[Intent]string{
	IntentNone:       "none",
	IntentAdvance:    "advance",
	IntentBack:       "back",
	IntentRestart:    "restart",
	IntentToggleMute: "mute",
	IntentQuit:       "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

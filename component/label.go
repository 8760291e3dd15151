package component

// LabelComponent is the optional caption attached to an agent
// Agents outside the labelled tier carry no LabelComponent at all, so
// visibility toggles on them have a defined no-op path
type LabelComponent struct {
	Text    string
	Visible bool
}

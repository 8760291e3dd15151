package parameter

// RingLabelOffset is how many scenes must pass before ring i is labelled
// Ring i is visible when i <= currentIndex - RingLabelOffset
const RingLabelOffset = 3

// Special scene identifiers
const (
	SceneBand    = "band"
	SceneBig     = "big"
	SceneExplore = "explore"
)

// ChartSize is the side of the square chart in chart units
const ChartSize = 600.0

// Default ring factors, outermost first
var DefaultRingFactors = []float64{0.9, 0.6, 0.3}

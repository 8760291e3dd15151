package parameter

import "time"

// Animation loop timing
const (
	// FrameInterval is the animation tick period (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxDeltaTime caps dt after stalls so integration stays stable (seconds)
	MaxDeltaTime = 0.1

	// FrameRateSmoothing is the moving-average weight of the loop.fps gauge
	FrameRateSmoothing = 0.1

	// DefaultSeed seeds agent placement when none is given
	DefaultSeed = 20170301
)

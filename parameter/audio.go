package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default gain (0..1)
	AudioMasterVolume = 0.3
)

// Cue shapes
const (
	CueToneDuration  = 90 * time.Millisecond
	CueTickDuration  = 25 * time.Millisecond
	CueSweepDuration = 160 * time.Millisecond
	CueAttack        = 5 * time.Millisecond
	CueRelease       = 40 * time.Millisecond

	CueChimeLowHz  = 660.0
	CueChimeHighHz = 990.0
	CueTickHz      = 1760.0
)

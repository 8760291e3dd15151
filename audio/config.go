package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/flock/parameter"
)

// Config controls transition cue playback
type Config struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioMasterVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadConfig reads FLOCK_AUDIO_ENABLED, FLOCK_AUDIO_VOLUME (0-100) and
// FLOCK_SAMPLE_RATE over the defaults; malformed values are ignored
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("FLOCK_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("FLOCK_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv("FLOCK_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

package audio

import (
	"fmt"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/scene"
)

// Cue is a short sound marking a scene transition
type Cue uint8

const (
	CueTick Cue = iota
	CueRise
	CueFall
	CueSweep
)

func (c Cue) String() string {
	switch c {
	case CueTick:
		return "tick"
	case CueRise:
		return "rise"
	case CueFall:
		return "fall"
	case CueSweep:
		return "sweep"
	default:
		return fmt.Sprintf("cue(%d)", c)
	}
}

// CueFor maps a transition's highlight effect to its cue
func CueFor(t scene.Transition) Cue {
	switch t.Effect {
	case scene.EffectPush:
		return CueRise
	case scene.EffectPop:
		return CueFall
	case scene.EffectClear:
		return CueSweep
	default:
		return CueTick
	}
}

// Synthesize builds the streamer for c at the given rate and volume
func Synthesize(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch c {
	case CueTick:
		s, err = tone(parameter.CueTickHz, parameter.CueTickDuration, parameter.CueAttack, parameter.CueRelease, rate)
	case CueRise:
		s, err = chime(parameter.CueChimeLowHz, parameter.CueChimeHighHz, rate)
	case CueFall:
		s, err = chime(parameter.CueChimeHighHz, parameter.CueChimeLowHz, rate)
	case CueSweep:
		// noise under a falling tone
		sweep, terr := tone(parameter.CueChimeLowHz/2, parameter.CueSweepDuration, parameter.CueAttack, parameter.CueSweepDuration/2, rate)
		if terr != nil {
			return nil, terr
		}
		hiss := newEnvelope(newNoise(parameter.CueSweepDuration, rate, uint64(parameter.DefaultSeed)),
			parameter.CueSweepDuration, parameter.CueAttack, parameter.CueSweepDuration, rate)
		s = beep.Mix(withVolume(sweep, 0.6), withVolume(hiss, 0.4))
	default:
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	if err != nil {
		return nil, err
	}
	return withVolume(s, volume), nil
}

func chime(first, second float64, rate beep.SampleRate) (beep.Streamer, error) {
	a, err := tone(first, parameter.CueToneDuration, parameter.CueAttack, parameter.CueRelease, rate)
	if err != nil {
		return nil, err
	}
	b, err := tone(second, parameter.CueToneDuration, parameter.CueAttack, parameter.CueRelease, rate)
	if err != nil {
		return nil, err
	}
	return beep.Seq(a, b), nil
}

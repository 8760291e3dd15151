// Package audio synthesizes short cues for scene transitions and plays them
// through the system speaker when one is available.
package audio

import (
	"log/slog"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/scene"
)

// Player turns transitions into cues
// Without a working speaker it stays silent; playback never blocks the caller
type Player struct {
	cfg  Config
	rate beep.SampleRate
	log  *slog.Logger

	sink    func(beep.Streamer)
	speaker bool
	ready   atomic.Bool
	played  atomic.Int64
}

func NewPlayer(cfg Config, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &Player{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
		log:  logger.With("component", "audio"),
	}
}

// Start opens the speaker; on failure the player stays silent and the error is returned for logging
func (p *Player) Start() error {
	if !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		p.log.Warn("speaker unavailable, audio disabled", "error", err)
		return err
	}
	p.speaker = true
	p.attach(func(s beep.Streamer) { speaker.Play(s) })
	return nil
}

// attach routes cues to sink and enables playback
func (p *Player) attach(sink func(beep.Streamer)) {
	p.sink = sink
	p.ready.Store(true)
}

// Play synthesizes and queues c
func (p *Player) Play(c Cue) {
	if !p.ready.Load() {
		return
	}
	s, err := Synthesize(c, p.rate, p.cfg.Volume)
	if err != nil {
		p.log.Warn("cue synthesis failed", "cue", c.String(), "error", err)
		return
	}
	p.sink(s)
	p.played.Add(1)
}

// Observe plays the cue for t; suitable as a scene.Observer
func (p *Player) Observe(t scene.Transition) {
	p.Play(CueFor(t))
}

// Played returns the number of cues queued so far
func (p *Player) Played() int64 { return p.played.Load() }

// Close releases the speaker
func (p *Player) Close() {
	if p.ready.CompareAndSwap(true, false) && p.speaker {
		speaker.Close()
	}
}

package render

import (
	"errors"
	"sync"

	"github.com/lixenwraith/flock/flock"
)

// ErrClosed is returned when drawing to a closed adapter
var ErrClosed = errors.New("render: adapter closed")

// Recorded is one completed frame
type Recorded struct {
	Frame  Frame
	Agents []flock.Snapshot
}

// Recorder keeps completed frames in memory; safe for concurrent reads
type Recorder struct {
	mu      sync.Mutex
	limit   int
	pending *Recorded
	frames  []Recorded
	closed  bool
}

// NewRecorder keeps at most limit frames, dropping the oldest; limit <= 0 keeps all
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) BeginFrame(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.pending = &Recorded{Frame: f}
	return nil
}

func (r *Recorder) DrawAgent(s flock.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending != nil {
		r.pending.Agents = append(r.pending.Agents, s)
	}
}

func (r *Recorder) EndFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return errors.New("render: EndFrame without BeginFrame")
	}
	r.frames = append(r.frames, *r.pending)
	r.pending = nil
	if r.limit > 0 && len(r.frames) > r.limit {
		r.frames = r.frames[len(r.frames)-r.limit:]
	}
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Frames returns a copy of the retained frames, oldest first
func (r *Recorder) Frames() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Recorded(nil), r.frames...)
}

// Last returns the most recent completed frame
func (r *Recorder) Last() (Recorded, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Recorded{}, false
	}
	return r.frames[len(r.frames)-1], true
}

func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

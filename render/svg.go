package render

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/parameter"
)

// SVG renders each frame to an SVG document and writes the last completed
// frame to its writer on Close
type SVG struct {
	w      io.Writer
	buf    bytes.Buffer
	last   []byte
	canvas *svg.SVG
	closed bool
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (s *SVG) BeginFrame(f Frame) error {
	if s.closed {
		return ErrClosed
	}
	size := int(math.Ceil(f.Size))
	s.buf.Reset()
	s.canvas = svg.New(&s.buf)
	s.canvas.Start(size, size)
	s.canvas.Rect(0, 0, size, size, "fill:"+parameter.SVGBackground)

	for _, r := range f.Rings {
		cx, cy := int(math.Round(r.Center.X)), int(math.Round(r.Center.Y))
		s.canvas.Circle(cx, cy, int(math.Round(r.Radius)),
			fmt.Sprintf("fill:none;stroke:%s;stroke-dasharray:2,4", parameter.SVGRingStroke))
		if r.LabelVisible && r.Caption != "" {
			s.canvas.Text(cx, cy-int(math.Round(r.Radius))-4, r.Caption,
				fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace;text-anchor:middle", parameter.SVGTextFill))
		}
	}
	if f.Caption != "" {
		s.canvas.Text(8, 16, f.Caption,
			fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", parameter.SVGTextFill))
	}
	return nil
}

func (s *SVG) DrawAgent(a flock.Snapshot) {
	if s.canvas == nil {
		return
	}
	x, y := int(math.Round(a.Pos.X)), int(math.Round(a.Pos.Y))
	r := max(1, int(math.Round(a.Radius)))

	fill := parameter.SVGAgentFill
	if a.Highlighted {
		fill = parameter.SVGHighlight
	}
	s.canvas.Circle(x, y, r, fmt.Sprintf("fill:%s;fill-opacity:0.85", fill))
	if a.HasLabel && a.LabelVisible {
		s.canvas.Text(x+r+3, y+4, a.Label,
			fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace", parameter.SVGTextFill))
	}
}

func (s *SVG) EndFrame() error {
	if s.canvas == nil {
		return fmt.Errorf("render: EndFrame without BeginFrame")
	}
	s.canvas.End()
	s.canvas = nil
	s.last = append(s.last[:0], s.buf.Bytes()...)
	return nil
}

// Close writes the last completed frame, if any
func (s *SVG) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if len(s.last) == 0 {
		return nil
	}
	_, err := s.w.Write(s.last)
	return err
}

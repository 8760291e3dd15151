package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flock/flock"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/vmath"
)

// Terminal draws frames onto a tcell screen
// Chart coordinates are scaled to fit above the status bar, compensating for cell aspect
type Terminal struct {
	screen tcell.Screen
	closed bool

	width  int
	height int
	scaleX float64
	scaleY float64
	offX   float64
	offY   float64
}

// NewTerminal takes ownership of an initialized screen; Close finalizes it
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// CellOf maps a chart position to a screen cell for the current frame
func (t *Terminal) CellOf(p vmath.Vec) (int, int) {
	return int(math.Floor(t.offX + p.X*t.scaleX)), int(math.Floor(t.offY + p.Y*t.scaleY))
}

func (t *Terminal) layout(size float64) {
	t.width, t.height = t.screen.Size()
	area := max(t.height-parameter.StatusBarHeight, 1)

	t.scaleY = float64(area) / size
	t.scaleX = t.scaleY * parameter.CellAspect
	if t.scaleX*size > float64(t.width) {
		t.scaleX = float64(t.width) / size
		t.scaleY = t.scaleX / parameter.CellAspect
	}
	t.offX = (float64(t.width) - size*t.scaleX) / 2
	t.offY = (float64(area) - size*t.scaleY) / 2
}

func (t *Terminal) BeginFrame(f Frame) error {
	if t.closed {
		return ErrClosed
	}
	if !(f.Size > 0) {
		return fmt.Errorf("render: frame size %v", f.Size)
	}
	t.screen.SetStyle(styleBase)
	t.screen.Clear()
	t.layout(f.Size)

	for _, r := range f.Rings {
		t.drawRing(r)
	}
	t.drawStatus(f)
	return nil
}

func (t *Terminal) drawRing(r RingView) {
	// one sample per horizontal cell along the circumference
	steps := max(16, int(r.Radius*vmath.TwoPi*t.scaleX))
	for i := range steps {
		p := vmath.Polar(r.Center, r.Radius, vmath.TwoPi*float64(i)/float64(steps))
		x, y := t.CellOf(p)
		t.put(x, y, '·', styleRing)
	}
	if r.LabelVisible && r.Caption != "" {
		x, y := t.CellOf(vmath.V(r.Center.X, r.Center.Y-r.Radius))
		t.text(x-len([]rune(r.Caption))/2, y-1, r.Caption, styleRingLabel)
	}
}

func (t *Terminal) drawStatus(f Frame) {
	y := t.height - 1
	if y < 0 {
		return
	}
	for x := range t.width {
		t.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	var b strings.Builder
	fmt.Fprintf(&b, " [%d] %s", f.SceneIndex, f.SceneID)
	if f.Caption != "" {
		fmt.Fprintf(&b, " - %s", f.Caption)
	}
	for _, m := range f.Metrics {
		fmt.Fprintf(&b, "  %s=%s", m.Key, m.Value)
	}
	t.text(0, y, b.String(), styleStatus)
}

func (t *Terminal) DrawAgent(a flock.Snapshot) {
	x, y := t.CellOf(a.Pos)

	glyph := parameter.GlyphSmall
	switch {
	case a.Radius >= parameter.RadiusMax*0.7:
		glyph = parameter.GlyphLarge
	case a.Radius >= parameter.RadiusMax*0.4:
		glyph = parameter.GlyphMedium
	}
	style := styleAgent
	if a.Highlighted {
		style = styleHighlight
	}
	t.put(x, y, glyph, style)

	if a.HasLabel && a.LabelVisible && y < t.height-parameter.StatusBarHeight {
		t.text(x+2, y, a.Label, styleLabel)
	}
}

func (t *Terminal) EndFrame() error {
	if t.closed {
		return ErrClosed
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.screen.Fini()
	return nil
}

// put clips to the chart area above the status bar
func (t *Terminal) put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height-parameter.StatusBarHeight {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= t.height {
		return
	}
	for _, r := range s {
		if x >= t.width {
			return
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

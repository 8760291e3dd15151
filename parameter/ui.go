package parameter

// Terminal rendering
const (
	// CellAspect is terminal cell height divided by width
	CellAspect = 2.0

	// StatusBarHeight reserves rows at the bottom of the terminal
	StatusBarHeight = 1

	// LabelMaxLen truncates agent labels drawn in the terminal
	LabelMaxLen = 24
)

// Agent glyphs by radius band
const (
	GlyphSmall  = '·'
	GlyphMedium = '•'
	GlyphLarge  = '●'
)

// SVG export
const (
	SVGBackground = "#111111"
	SVGAgentFill  = "#ff9696"
	SVGHighlight  = "#ff3030"
	SVGRingStroke = "#555555"
	SVGTextFill   = "#dddddd"
)

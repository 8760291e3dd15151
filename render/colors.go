package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(17, 17, 17)
	RgbRing       = tcell.NewRGBColor(85, 85, 85)
	RgbRingLabel  = tcell.NewRGBColor(150, 150, 150)
	RgbAgent      = tcell.NewRGBColor(255, 150, 150)
	RgbHighlight  = tcell.NewRGBColor(255, 48, 48)
	RgbLabel      = tcell.NewRGBColor(221, 221, 221)
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBG   = tcell.NewRGBColor(40, 42, 54)
)

var (
	styleBase      = tcell.StyleDefault.Background(RgbBackground)
	styleRing      = styleBase.Foreground(RgbRing)
	styleRingLabel = styleBase.Foreground(RgbRingLabel).Italic(true)
	styleAgent     = styleBase.Foreground(RgbAgent)
	styleHighlight = styleBase.Foreground(RgbHighlight).Bold(true)
	styleLabel     = styleBase.Foreground(RgbLabel)
	styleStatus    = tcell.StyleDefault.Background(RgbStatusBG).Foreground(RgbStatusBar)
)

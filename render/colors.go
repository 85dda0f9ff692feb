package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB palette, greens follow the pump theme
var (
	RgbBackground = tcell.NewRGBColor(20, 30, 22)    // Deep green-black
	RgbTitle      = tcell.NewRGBColor(129, 199, 132) // Light green
	RgbText       = tcell.NewRGBColor(230, 230, 230) // Off-white
	RgbTextDim    = tcell.NewRGBColor(140, 150, 140) // Gray-green

	RgbButton        = tcell.NewRGBColor(76, 175, 80) // Pump green
	RgbButtonPressed = tcell.NewRGBColor(46, 125, 50) // Dark green
	RgbButtonText    = tcell.NewRGBColor(255, 255, 255)

	RgbClickEffect = tcell.NewRGBColor(102, 187, 106) // Floating "+1"

	RgbProgressFill  = tcell.NewRGBColor(67, 160, 71)
	RgbProgressEmpty = tcell.NewRGBColor(60, 70, 60)

	RgbMilestone        = tcell.NewRGBColor(120, 130, 120) // Not yet reached
	RgbMilestoneReached = tcell.NewRGBColor(255, 229, 180) // Peach
	RgbMilestoneAccent  = tcell.NewRGBColor(255, 71, 87)   // Highlight background

	RgbPopupBg     = tcell.NewRGBColor(255, 255, 255)
	RgbPopupTitle  = tcell.NewRGBColor(67, 160, 71)
	RgbPopupText   = tcell.NewRGBColor(46, 125, 50)
	RgbPopupBorder = tcell.NewRGBColor(255, 215, 0) // Gold
)

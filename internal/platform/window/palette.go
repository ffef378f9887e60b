package window

import (
	"image/color"

	"github.com/vovakirdan/intruders/internal/core"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
	overlayColor    = color.RGBA{0, 0, 0, 160}
)

// palette maps core.Color to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {220, 220, 220, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorBlue:    {63, 72, 204, 255},
	core.ColorWhite:   {220, 220, 220, 255},
	core.ColorOrange:  {255, 165, 0, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

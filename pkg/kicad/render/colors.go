package render

import "image/color"

// Classic pcbnew palette, trimmed to the layers the painter draws.
var layerColors = map[string]color.NRGBA{
	"F.Cu":      {R: 200, G: 52, B: 52, A: 255},
	"B.Cu":      {R: 77, G: 127, B: 196, A: 255},
	"F.SilkS":   {R: 242, G: 237, B: 161, A: 255},
	"B.SilkS":   {R: 232, G: 178, B: 167, A: 255},
	"F.Mask":    {R: 216, G: 100, B: 255, A: 102},
	"B.Mask":    {R: 2, G: 255, B: 238, A: 102},
	"Edge.Cuts": {R: 208, G: 210, B: 205, A: 255},
	"Dwgs.User": {R: 194, G: 194, B: 194, A: 255},
	"Cmts.User": {R: 89, G: 148, B: 220, A: 255},
}

// Element colors
var (
	ColorBackground = color.NRGBA{R: 0, G: 16, B: 35, A: 255}
	ColorVia        = color.NRGBA{R: 190, G: 190, B: 190, A: 255}
	ColorViaDrill   = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	ColorFootprint  = color.NRGBA{R: 132, G: 132, B: 132, A: 255}
	colorFallback   = color.NRGBA{R: 132, G: 132, B: 132, A: 255}
)

// LayerColor returns the display color for a layer name.
func LayerColor(name string) color.NRGBA {
	if c, ok := layerColors[name]; ok {
		return c
	}
	return colorFallback
}

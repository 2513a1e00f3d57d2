package eagle

import "image/color"

// Eagle colour indices of the standard 16-entry palette
const (
	ColorBlack = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

// Default palette for a black background
var blackPalette = [16]color.NRGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 255},
	{R: 0x23, G: 0x23, B: 0x8d, A: 255},
	{R: 0x23, G: 0x8d, B: 0x23, A: 255},
	{R: 0x23, G: 0x8d, B: 0x8d, A: 255},
	{R: 0x8d, G: 0x23, B: 0x23, A: 255},
	{R: 0x8d, G: 0x23, B: 0x8d, A: 255},
	{R: 0x8d, G: 0x8d, B: 0x23, A: 255},
	{R: 0x8d, G: 0x8d, B: 0x8d, A: 255},
	{R: 0x27, G: 0x27, B: 0x27, A: 255},
	{R: 0x00, G: 0x00, B: 0xb4, A: 255},
	{R: 0x00, G: 0xb4, B: 0x00, A: 255},
	{R: 0x00, G: 0xb4, B: 0xb4, A: 255},
	{R: 0xb4, G: 0x00, B: 0x00, A: 255},
	{R: 0xb4, G: 0x00, B: 0xb4, A: 255},
	{R: 0xb4, G: 0xb4, B: 0x00, A: 255},
	{R: 0xb4, G: 0xb4, B: 0xb4, A: 255},
}

// fallbackColor is used for indices outside the palette
var fallbackColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// PaletteColor returns the RGB value of an Eagle colour index
func PaletteColor(index int) color.NRGBA {
	if index < 0 || index >= len(blackPalette) {
		return fallbackColor
	}
	return blackPalette[index]
}

// RGB returns the layer's display colour
func (l *Layer) RGB() color.NRGBA {
	return PaletteColor(l.Color)
}

// Package palette provides the shades the 4 colour numbers of the
// Game Boy are displayed with.
package palette

import "image/color"

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
)

// Palette represents a palette. A palette is an array of 4 RGB values,
// that can be used to represent a colour.
type Palette struct {
	Colors [4][3]uint8
}

// Palettes is a list of all available palettes.
var Palettes = [...]Palette{
	Greyscale: {
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	Green: {
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
}

// ByteToPalette creates a new palette from the value of a palette
// register such as BGP, using base for the 4 shades.
func ByteToPalette(b byte, base Palette) Palette {
	var palette Palette
	palette.Colors[0] = base.Colors[b&0x03]
	palette.Colors[1] = base.Colors[(b>>2)&0x03]
	palette.Colors[2] = base.Colors[(b>>4)&0x03]
	palette.Colors[3] = base.Colors[(b>>6)&0x03]
	return palette
}

// GetColour returns the colour for the given colour number.
func (p Palette) GetColour(index uint8) color.RGBA {
	rgb := p.Colors[index&0x03]
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
}

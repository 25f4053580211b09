// Package ppu provides a background compositor for the frame driver. It
// renders the background layer one scanline at a time from video memory,
// which is enough to inspect what a game has drawn from the debugger.
package ppu

import (
	"image"

	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// Background renders the background of each visible line into a frame of
// colour numbers. The background is a 256x256 pixel map of 8x8 tiles,
// of which SCX and SCY select the 160x144 visible part.
type Background struct {
	frame [ScreenHeight][ScreenWidth]uint8
	base  palette.Palette
	bgp   uint8
}

// NewBackground returns a new Background that shades pixels with base.
func NewBackground(base palette.Palette) *Background {
	return &Background{base: base}
}

// RenderScanline renders the line LY currently points to. Lines in the
// vertical blank period are ignored.
func (b *Background) RenderScanline(bus mmu.Reader) {
	ly := bus.Read(types.LY)
	if ly >= ScreenHeight {
		return
	}

	lcdc := bus.Read(types.LCDC)
	b.bgp = bus.Read(types.BGP)
	line := &b.frame[ly]
	if !bits.Test(lcdc, 7) || !bits.Test(lcdc, 0) {
		*line = [ScreenWidth]uint8{}
		return
	}

	tileMap := types.TileMap0
	if bits.Test(lcdc, 3) {
		tileMap = types.TileMap1
	}
	unsigned := bits.Test(lcdc, 4)

	y := ly + bus.Read(types.SCY)
	scx := bus.Read(types.SCX)

	for x := uint8(0); x < ScreenWidth; x++ {
		mapX := x + scx
		index := bus.Read(tileMap + uint16(y/8)*32 + uint16(mapX/8))

		var tile uint16
		if unsigned {
			tile = types.TileData0 + uint16(index)*16
		} else {
			tile = uint16(int32(types.TileData1) + int32(int8(index))*16)
		}

		row := tile + uint16(y%8)*2
		lo, hi := bus.Read(row), bus.Read(row+1)
		bit := 7 - mapX%8
		line[x] = bits.Val(lo, bit) | bits.Val(hi, bit)<<1
	}
}

// ColourNumber returns the colour number (0-3) of the given pixel of the
// last rendered frame, before the BGP palette is applied.
func (b *Background) ColourNumber(x, y int) uint8 {
	return b.frame[y][x]
}

// Image returns the last rendered frame, shaded with the most recently
// seen BGP value.
func (b *Background) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	p := palette.ByteToPalette(b.bgp, b.base)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			img.SetRGBA(x, y, p.GetColour(b.frame[y][x]))
		}
	}
	return img
}

// Package glass emulates a 128x64 page-addressed monochrome display for
// the host-side front-ends. It decodes the same addressing commands the
// real glass understands and keeps the page RAM in memory.
package glass

import (
	"image"
	"image/color"
)

const (
	// Cols is the display width in pixels.
	Cols = 128
	// Rows is the display height in pixels.
	Rows = 64
	// Pages is the number of 8-row bands in the page RAM.
	Pages = Rows / 8
)

// Glass implements transfer.Link against an in-memory page RAM.
type Glass struct {
	page uint8
	col  uint8
	ram  [Pages][Cols]byte
}

// New returns a blank display.
func New() *Glass {
	return &Glass{}
}

// Start consumes one command or data burst and invokes done inline.
func (g *Glass) Start(command bool, p []byte, done func()) {
	if command {
		for _, c := range p {
			switch {
			case c&0xF0 == 0xB0:
				g.page = c & 0x0F
			case c&0xF0 == 0x10:
				g.col = g.col&0x0F | c<<4
			case c&0xF0 == 0x00:
				g.col = g.col&0xF0 | c&0x0F
			}
		}
	} else {
		for _, b := range p {
			if g.page < Pages && g.col < Cols {
				g.ram[g.page][g.col] = b
			}
			g.col++
		}
	}
	done()
}

// Pixel reports whether the pixel at (x, y) is lit.
func (g *Glass) Pixel(x, y int) bool {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return false
	}
	return g.ram[y/8][x]&(1<<(y%8)) != 0
}

// Image snapshots the page RAM as an 8-bit grayscale image, white on
// black like the real backlit panel.
func (g *Glass) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Cols, Rows))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if g.Pixel(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return img
}

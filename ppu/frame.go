package ppu

import (
	"image"
	"image/color"
)

// Screen dimensions in pixels.
const (
	FrameWidth  = 256
	FrameHeight = 240
)

// Frame is a FrameSink backed by an RGBA image. It is owned by the host
// and handed to the PPU at construction; the PPU itself only ever sees the
// FrameSink interface.
type Frame struct {
	img *image.RGBA
}

// NewFrame creates an empty frame buffer.
func NewFrame() *Frame {
	return &Frame{img: image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))}
}

// SetPixel maps a system palette color to RGBA and stores it. Pixels
// outside the visible area are discarded.
func (f *Frame) SetPixel(x, y int, colorIndex byte) {
	if x < 0 || x >= FrameWidth || y < 0 || y >= FrameHeight {
		return
	}
	f.img.SetRGBA(x, y, SystemPalette[colorIndex&0x3F])
}

// At returns the color of a single pixel.
func (f *Frame) At(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// Image returns the backing image.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Pixels returns the raw RGBA pixel data.
func (f *Frame) Pixels() []byte {
	return f.img.Pix
}

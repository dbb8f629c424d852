package bmp

import (
	"fmt"

	"github.com/anas-shakeel/bmpedit/internal/utils"
)

// Color is a 24-bit pixel value, in the on-disk BGR channel order.
type Color struct {
	B, G, R byte
}

// Some handy colors
var (
	Black = Color{}
	White = Color{B: 255, G: 255, R: 255}
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// RGB builds a color from red, green and blue channel values.
func RGB(r, g, b byte) Color {
	return Color{B: b, G: g, R: r}
}

// Returns the Pixel in bytes as BGR (Blue, Green, Red)
func (c Color) BytesBGR() []byte {
	return []byte{c.B, c.G, c.R}
}

// Scale multiplies every channel by factor, clamping to [0, 255]
// before truncating.
func (c Color) Scale(factor float64) Color {
	return Color{
		B: utils.Clamp(float64(c.B) * factor),
		G: utils.Clamp(float64(c.G) * factor),
		R: utils.Clamp(float64(c.R) * factor),
	}
}

// Returns the number of zero bytes appended to each scanline of a
// 24-bit bitmap that is width pixels wide.
func RowPadding(width int) int {
	return (4 - (width*3)%4) % 4
}

// Grid is the decoded pixel array.
//
// Rows are kept in storage order: Rows[0] is the first scanline in the
// file (the bottom row of a bottom-up bitmap). Padding bytes are not
// stored; Padding only records how many zero bytes follow each scanline.
type Grid struct {
	Width   int
	Height  int
	Padding int
	Rows    [][]Color // Rows[y][x]
}

// NewGrid returns a black grid of the given size
func NewGrid(width, height int) *Grid {
	rows := make([][]Color, height)
	for i := range height {
		rows[i] = make([]Color, width)
	}

	return &Grid{
		Width:   width,
		Height:  height,
		Padding: RowPadding(width),
		Rows:    rows,
	}
}

// Stride is the stored length of one scanline (incl. padding)
func (g *Grid) Stride() int {
	return g.Width*3 + g.Padding
}

// Size is the number of bytes the grid occupies when encoded
func (g *Grid) Size() int {
	return g.Stride() * g.Height
}

// In reports whether (x, y) addresses a pixel of the grid
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// DecodeGrid reads the pixel array of a width x height 24-bit bitmap
// from data, which must start at the first pixel byte. Bytes past the
// pixel array are ignored.
func DecodeGrid(width, height int, data []byte) (*Grid, error) {
	if width <= 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d pixel array", ErrUnsupportedFormat, width, height)
	}

	// Checked before allocating; height*stride may not fit in an int
	stride := uint64(width)*3 + uint64(RowPadding(width))
	if uint64(height) > uint64(len(data))/stride {
		return nil, fmt.Errorf("%w: pixel array needs %d rows of %d bytes, got %d bytes",
			ErrTruncatedInput, height, stride, len(data))
	}

	g := NewGrid(width, height)

	cursor := 0
	for y := range height {
		row := g.Rows[y]
		for x := range width {
			row[x] = Color{B: data[cursor], G: data[cursor+1], R: data[cursor+2]}
			cursor += 3
		}

		// Skip over padding bytes
		cursor += g.Padding
	}

	return g, nil
}

// Encode returns the pixel array: every scanline as BGR triples followed
// by Padding zero bytes.
func (g *Grid) Encode() []byte {
	return g.AppendTo(make([]byte, 0, g.Size()))
}

// AppendTo appends the encoded pixel array to buf
func (g *Grid) AppendTo(buf []byte) []byte {
	var padding [3]byte
	for _, row := range g.Rows {
		for _, c := range row {
			buf = append(buf, c.B, c.G, c.R)
		}
		buf = append(buf, padding[:g.Padding]...)
	}
	return buf
}

// Returns a deep copy of the grid
func (g *Grid) Copy() *Grid {
	dup := &Grid{
		Width:   g.Width,
		Height:  g.Height,
		Padding: g.Padding,
		Rows:    make([][]Color, len(g.Rows)),
	}
	for y, row := range g.Rows {
		dup.Rows[y] = make([]Color, len(row))
		copy(dup.Rows[y], row)
	}
	return dup
}

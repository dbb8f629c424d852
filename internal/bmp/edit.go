package bmp

import "fmt"

// Editing operations. Coordinates are in storage order: x is the column
// in [0, width), y the scanline in [0, height) with y = 0 the first
// scanline in the file (the bottom row).

// At returns the color at (x, y)
func (b *BitmapImage) At(x, y int) (Color, error) {
	if !b.Grid.In(x, y) {
		return Color{}, fmt.Errorf("%w: pixel (%d, %d) in %dx%d image", ErrOutOfBounds, x, y, b.Grid.Width, b.Grid.Height)
	}
	return b.Grid.Rows[y][x], nil
}

// SetPixel overwrites the pixel at (x, y) with c
func (b *BitmapImage) SetPixel(x, y int, c Color) error {
	if !b.Grid.In(x, y) {
		return fmt.Errorf("%w: pixel (%d, %d) in %dx%d image", ErrOutOfBounds, x, y, b.Grid.Width, b.Grid.Height)
	}
	b.Grid.Rows[y][x] = c
	return nil
}

// Returns the half-open range [center - thickness/2, center + thickness/2).
// A thickness below 2 still covers the center.
func lineSpan(center, thickness, limit int) (int, int, error) {
	if thickness < 0 {
		return 0, 0, fmt.Errorf("%w: negative thickness %d", ErrOutOfBounds, thickness)
	}
	lo, hi := center-thickness/2, center+thickness/2
	if lo == hi {
		hi++
	}
	if lo < 0 || hi > limit {
		return 0, 0, fmt.Errorf("%w: line [%d, %d) outside [0, %d)", ErrOutOfBounds, lo, hi, limit)
	}
	return lo, hi, nil
}

// DrawVerticalLine paints columns [x - thickness/2, x + thickness/2)
// across all rows.
func (b *BitmapImage) DrawVerticalLine(x, thickness int, c Color) error {
	lo, hi, err := lineSpan(x, thickness, b.Grid.Width)
	if err != nil {
		return err
	}

	for _, row := range b.Grid.Rows {
		for col := lo; col < hi; col++ {
			row[col] = c
		}
	}
	return nil
}

// DrawHorizontalLine paints rows [y - thickness/2, y + thickness/2)
// across all columns.
func (b *BitmapImage) DrawHorizontalLine(y, thickness int, c Color) error {
	lo, hi, err := lineSpan(y, thickness, b.Grid.Height)
	if err != nil {
		return err
	}

	for _, row := range b.Grid.Rows[lo:hi] {
		for col := range row {
			row[col] = c
		}
	}
	return nil
}

// MirrorHorizontal flips the image left to right, in place
func (b *BitmapImage) MirrorHorizontal() {
	width := b.Grid.Width
	for _, row := range b.Grid.Rows {
		for i := range width / 2 {
			row[i], row[width-1-i] = row[width-1-i], row[i]
		}
	}
}

// FadeHorizontal darkens the image towards the left edge: column x is
// scaled by x / (width - 1), so the first column turns black and the last
// one is unchanged. Single-column images are left as they are.
func (b *BitmapImage) FadeHorizontal() {
	width := b.Grid.Width
	if width < 2 {
		return
	}

	for _, row := range b.Grid.Rows {
		for x := range row {
			factor := float64(x) / float64(width-1)
			row[x] = row[x].Scale(factor)
		}
	}
}

// Fill paints every pixel with c
func (b *BitmapImage) Fill(c Color) {
	for _, row := range b.Grid.Rows {
		for x := range row {
			row[x] = c
		}
	}
}

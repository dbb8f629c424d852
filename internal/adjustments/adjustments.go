// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"fmt"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
)

// Crops a region in the bitmap image, in place. (x, y) is the first
// column and scanline of the region, in storage order (0,0 is the
// bottom-left of a bottom-up bitmap).
func Crop(b *bmp.BitmapImage, x, y, width, height int) error {
	// Validate bounds
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: empty crop %dx%d", bmp.ErrOutOfBounds, width, height)
	} else if x < 0 || width+x > b.Width() {
		return fmt.Errorf("%w: columns [%d, %d) outside width %d", bmp.ErrOutOfBounds, x, x+width, b.Width())
	} else if y < 0 || height+y > b.Height() {
		return fmt.Errorf("%w: rows [%d, %d) outside height %d", bmp.ErrOutOfBounds, y, y+height, b.Height())
	}

	// Crop the bitmap
	cropped := bmp.NewGrid(width, height)
	for row := range height { // Height | Rows
		copy(cropped.Rows[row], b.Grid.Rows[row+y][x:x+width])
	}
	b.Grid = cropped

	// Header must follow the new geometry
	b.UpdateMeta()

	return nil
}

// Copies the left half of every row onto the right half (mirrored),
// so the image becomes symmetric around its vertical axis.
func MirrorLeft(b *bmp.BitmapImage) {
	width := b.Width()
	for _, row := range b.Grid.Rows {
		for i := range width / 2 {
			row[width-1-i] = row[i]
		}
	}
}

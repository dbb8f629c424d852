// Filters perform color manipulation and per-pixel operations
package filters

import (
	"errors"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/utils"
)

// Applies fn to every pixel of the bitmap, in place
func apply(b *bmp.BitmapImage, fn func(p bmp.Color) bmp.Color) {
	for _, row := range b.Grid.Rows {
		for col := range row {
			row[col] = fn(row[col])
		}
	}
}

// Inverts (negates) the bitmap image
func Invert(b *bmp.BitmapImage) {
	apply(b, func(p bmp.Color) bmp.Color {
		return bmp.Color{B: 255 - p.B, G: 255 - p.G, R: 255 - p.R}
	})
}

// Converts a bitmap to Black-and-White
func Grayscale(b *bmp.BitmapImage) {
	apply(b, func(p bmp.Color) bmp.Color {
		avg := byte(utils.Average(int(p.R), int(p.G), int(p.B)))
		return bmp.Color{B: avg, G: avg, R: avg}
	})
}

// Converts a bitmap to Black-and-White (with ITU-R 601-2 Luma Transform)
func GrayscaleLuma(b *bmp.BitmapImage) {
	apply(b, func(p bmp.Color) bmp.Color {
		L := byte(int(p.R)*299/1000 + int(p.G)*587/1000 + int(p.B)*114/1000)
		return bmp.Color{B: L, G: L, R: L}
	})
}

// Adjusts the Brightness of a Bitmap in-place.
//
// method can be "add" (adds value to each channel) or "multiply" (multiplies each channel by value).
// Pixel values are clipped to [0, 255].
func Brightness(b *bmp.BitmapImage, factor float64, method string) error {
	switch method {
	case "add":
		apply(b, func(p bmp.Color) bmp.Color {
			return bmp.Color{
				B: utils.Clamp(float64(p.B) + factor),
				G: utils.Clamp(float64(p.G) + factor),
				R: utils.Clamp(float64(p.R) + factor),
			}
		})
	case "multiply":
		apply(b, func(p bmp.Color) bmp.Color {
			return p.Scale(factor)
		})
	default:
		return errors.New("invalid method: method must be add or multiply")
	}

	return nil
}

// Adjusts the Contrast of a Bitmap in-place.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(b *bmp.BitmapImage, factor float64) {
	// Compute mean for each channel
	var sumR, sumG, sumB int
	for _, row := range b.Grid.Rows {
		for _, p := range row {
			sumR += int(p.R)
			sumG += int(p.G)
			sumB += int(p.B)
		}
	}
	totalPixels := b.Width() * b.Height()
	meanR := float64(sumR / totalPixels) // Average of all R pixels
	meanG := float64(sumG / totalPixels) // Average of all G pixels
	meanB := float64(sumB / totalPixels) // Average of all B pixels

	// Apply contrast
	apply(b, func(p bmp.Color) bmp.Color {
		return bmp.Color{
			B: utils.Clamp(float64(p.B)*factor + (1-factor)*meanB),
			G: utils.Clamp(float64(p.G)*factor + (1-factor)*meanG),
			R: utils.Clamp(float64(p.R)*factor + (1-factor)*meanR),
		}
	})
}

// Keeps a single channel of the source image, zeroing the others.
// channel can one of (`red`, `green`, and `blue`)
func Channel(b *bmp.BitmapImage, channel string) error {
	var keep func(p bmp.Color) bmp.Color
	switch channel {
	case "red":
		keep = func(p bmp.Color) bmp.Color { return bmp.Color{R: p.R} }
	case "green":
		keep = func(p bmp.Color) bmp.Color { return bmp.Color{G: p.G} }
	case "blue":
		keep = func(p bmp.Color) bmp.Color { return bmp.Color{B: p.B} }
	default:
		return errors.New("invalid color channel: only red, green, and blue are supported")
	}

	apply(b, keep)
	return nil
}

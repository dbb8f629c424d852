package recipe

import (
	"fmt"

	"github.com/anas-shakeel/bmpedit/internal/adjustments"
	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/filters"
)

type operation struct {
	args  []string          // required numeric arguments
	color bool              // color is required
	check func(*Step) error // extra load-time validation
	run   func(b *bmp.BitmapImage, s *Step, v values, c bmp.Color) error
}

var operations = map[string]operation{
	"set": {
		args:  []string{"x", "y"},
		color: true,
		run: func(b *bmp.BitmapImage, _ *Step, v values, c bmp.Color) error {
			return b.SetPixel(v.integer("x", 0), v.integer("y", 0), c)
		},
	},
	"vline": {
		args:  []string{"x"},
		color: true,
		run: func(b *bmp.BitmapImage, _ *Step, v values, c bmp.Color) error {
			return b.DrawVerticalLine(v.integer("x", 0), v.integer("thickness", 1), c)
		},
	},
	"hline": {
		args:  []string{"y"},
		color: true,
		run: func(b *bmp.BitmapImage, _ *Step, v values, c bmp.Color) error {
			return b.DrawHorizontalLine(v.integer("y", 0), v.integer("thickness", 1), c)
		},
	},
	"mirror": {
		run: func(b *bmp.BitmapImage, _ *Step, _ values, _ bmp.Color) error {
			b.MirrorHorizontal()
			return nil
		},
	},
	"mirror_left": {
		run: func(b *bmp.BitmapImage, _ *Step, _ values, _ bmp.Color) error {
			adjustments.MirrorLeft(b)
			return nil
		},
	},
	"fade": {
		run: func(b *bmp.BitmapImage, _ *Step, _ values, _ bmp.Color) error {
			b.FadeHorizontal()
			return nil
		},
	},
	"fill": {
		color: true,
		run: func(b *bmp.BitmapImage, _ *Step, _ values, c bmp.Color) error {
			b.Fill(c)
			return nil
		},
	},
	"invert": {
		run: func(b *bmp.BitmapImage, _ *Step, _ values, _ bmp.Color) error {
			filters.Invert(b)
			return nil
		},
	},
	"grayscale": {
		run: func(b *bmp.BitmapImage, _ *Step, _ values, _ bmp.Color) error {
			filters.Grayscale(b)
			return nil
		},
	},
	"grayscale_luma": {
		run: func(b *bmp.BitmapImage, _ *Step, _ values, _ bmp.Color) error {
			filters.GrayscaleLuma(b)
			return nil
		},
	},
	"brightness": {
		args: []string{"factor"},
		check: func(s *Step) error {
			switch s.Method {
			case "", "add", "multiply":
				return nil
			}
			return fmt.Errorf("invalid method %q: method must be add or multiply", s.Method)
		},
		run: func(b *bmp.BitmapImage, s *Step, v values, _ bmp.Color) error {
			method := s.Method
			if method == "" {
				method = "multiply"
			}
			return filters.Brightness(b, v["factor"], method)
		},
	},
	"contrast": {
		args: []string{"factor"},
		run: func(b *bmp.BitmapImage, _ *Step, v values, _ bmp.Color) error {
			filters.Contrast(b, v["factor"])
			return nil
		},
	},
	"channel": {
		check: func(s *Step) error {
			switch s.Channel {
			case "red", "green", "blue":
				return nil
			}
			return fmt.Errorf("invalid channel %q: only red, green, and blue are supported", s.Channel)
		},
		run: func(b *bmp.BitmapImage, s *Step, _ values, _ bmp.Color) error {
			return filters.Channel(b, s.Channel)
		},
	},
	"crop": {
		args: []string{"x", "y", "width", "height"},
		run: func(b *bmp.BitmapImage, _ *Step, v values, _ bmp.Color) error {
			return adjustments.Crop(b, v.integer("x", 0), v.integer("y", 0), v.integer("width", 0), v.integer("height", 0))
		},
	},
}

package filters

import (
	"testing"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
)

// Returns a 2x1 bitmap holding the two given colors
func pair(t *testing.T, a, b bmp.Color) *bmp.BitmapImage {
	t.Helper()
	img, err := bmp.CreateBitmap(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixel(0, 0, a)
	img.SetPixel(1, 0, b)
	return img
}

func pixels(img *bmp.BitmapImage) []bmp.Color {
	return img.Grid.Rows[0]
}

func TestInvert(t *testing.T) {
	img := pair(t, bmp.RGB(0, 100, 255), bmp.White)
	Invert(img)

	if got := pixels(img); got[0] != bmp.RGB(255, 155, 0) || got[1] != bmp.Black {
		t.Fatalf("unexpected pixels %+v", got)
	}
}

func TestGrayscale(t *testing.T) {
	img := pair(t, bmp.RGB(30, 60, 90), bmp.RGB(255, 255, 254))
	Grayscale(img)

	if got := pixels(img); got[0] != bmp.RGB(60, 60, 60) || got[1] != bmp.RGB(254, 254, 254) {
		t.Fatalf("unexpected pixels %+v", got)
	}
}

func TestGrayscaleLuma(t *testing.T) {
	img := pair(t, bmp.RGB(255, 0, 0), bmp.White)
	GrayscaleLuma(img)

	// 255*299/1000 = 76; white rounds down to 76+149+29
	if got := pixels(img); got[0] != bmp.RGB(76, 76, 76) || got[1] != bmp.RGB(254, 254, 254) {
		t.Fatalf("unexpected pixels %+v", got)
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name   string
		method string
		factor float64
		want   bmp.Color
	}{
		{"add", "add", 10, bmp.RGB(110, 255, 10)},
		{"subtract", "add", -20, bmp.RGB(80, 230, 0)},
		{"multiply", "multiply", 2, bmp.RGB(200, 255, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := pair(t, bmp.RGB(100, 250, 0), bmp.Black)
			if err := Brightness(img, tt.factor, tt.method); err != nil {
				t.Fatal(err)
			}
			if got := pixels(img)[0]; got != tt.want {
				t.Fatalf("expected %+v, actual %+v", tt.want, got)
			}
		})
	}

	if err := Brightness(pair(t, bmp.Black, bmp.Black), 1, "divide"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestContrast(t *testing.T) {
	img := pair(t, bmp.RGB(100, 100, 100), bmp.RGB(200, 200, 200))

	// mean is 150: factor 2 pushes the pixels 2x further from it
	Contrast(img, 2)
	if got := pixels(img); got[0] != bmp.RGB(50, 50, 50) || got[1] != bmp.RGB(250, 250, 250) {
		t.Fatalf("unexpected pixels %+v", got)
	}

	// factor 0 collapses everything to the mean
	Contrast(img, 0)
	if got := pixels(img); got[0] != got[1] || got[0] != bmp.RGB(150, 150, 150) {
		t.Fatalf("unexpected pixels %+v", got)
	}
}

func TestChannel(t *testing.T) {
	tests := map[string]bmp.Color{
		"red":   bmp.RGB(1, 0, 0),
		"green": bmp.RGB(0, 2, 0),
		"blue":  bmp.RGB(0, 0, 3),
	}
	for channel, want := range tests {
		t.Run(channel, func(t *testing.T) {
			img := pair(t, bmp.RGB(1, 2, 3), bmp.RGB(1, 2, 3))
			if err := Channel(img, channel); err != nil {
				t.Fatal(err)
			}
			if got := pixels(img)[1]; got != want {
				t.Fatalf("expected %+v, actual %+v", want, got)
			}
		})
	}

	if err := Channel(pair(t, bmp.Black, bmp.Black), "alpha"); err == nil {
		t.Error("expected error for unknown channel")
	}
}

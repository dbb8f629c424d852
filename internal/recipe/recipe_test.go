package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
)

const crossRecipe = `
name: cross
steps:
  - op: fill
    color: {r: 10, g: 20, b: 30}
  - op: vline
    x: "width / 2"
    thickness: 2
    color: {r: 255, g: 255, b: 255}
  - op: hline
    y: "height - 1"
    color: {r: 255, g: 0, b: 0}
`

func blank(t *testing.T, width, height int) *bmp.BitmapImage {
	t.Helper()
	b, err := bmp.CreateBitmap(width, height)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestParseAndApply(t *testing.T) {
	// given
	r, err := Parse([]byte(crossRecipe))
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "cross" || len(r.Steps) != 3 {
		t.Fatalf("unexpected recipe %+v", r)
	}
	b := blank(t, 10, 4)

	// when
	if err := r.Apply(b); err != nil {
		t.Fatal(err)
	}

	// then
	for y := range 4 {
		for x := range 10 {
			want := bmp.RGB(10, 20, 30)
			switch {
			case y == 3:
				want = bmp.Red
			case x == 4 || x == 5:
				want = bmp.White
			}
			if got, _ := b.At(x, y); got != want {
				t.Fatalf("invalid pixel at (%d, %d): expected %+v, actual %+v", x, y, want, got)
			}
		}
	}
}

func TestExpressionsFollowImageSize(t *testing.T) {
	r, err := Parse([]byte(`
steps:
  - op: set
    x: "width - 1"
    y: "(height - 1) / 2"
    color: {r: 1, g: 1, b: 1}
`))
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range [][2]int{{3, 3}, {8, 5}} {
		b := blank(t, size[0], size[1])
		if err := r.Apply(b); err != nil {
			t.Fatal(err)
		}
		x, y := size[0]-1, (size[1]-1)/2
		if c, _ := b.At(x, y); c != bmp.RGB(1, 1, 1) {
			t.Errorf("%dx%d: expected pixel (%d, %d) set", size[0], size[1], x, y)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown op":       "steps: [{op: blur}]",
		"missing color":    "steps: [{op: fill}]",
		"missing argument": "steps: [{op: vline, color: {r: 1, g: 1, b: 1}}]",
		"bad expression":   `steps: [{op: contrast, factor: "width +* 2"}]`,
		"bad method":       "steps: [{op: brightness, factor: '2', method: divide}]",
		"bad channel":      "steps: [{op: channel, channel: alpha}]",
		"unknown field":    "steps: [{op: fade, speed: '3'}]",
		"not yaml":         "steps: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			if !errors.Is(err, ErrInvalidRecipe) {
				t.Fatalf("expected %v, actual %v", ErrInvalidRecipe, err)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := map[string]struct {
		recipe string
		want   error
	}{
		"line outside": {
			recipe: `steps: [{op: vline, x: "width", color: {r: 1, g: 1, b: 1}}]`,
			want:   bmp.ErrOutOfBounds,
		},
		"crop too large": {
			recipe: `steps: [{op: crop, x: "0", y: "0", width: "width + 1", height: "height"}]`,
			want:   bmp.ErrOutOfBounds,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := Parse([]byte(tt.recipe))
			if err != nil {
				t.Fatal(err)
			}
			if err := r.Apply(blank(t, 4, 4)); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, actual %v", tt.want, err)
			}
		})
	}

	r, err := Parse([]byte(`steps: [{op: contrast, factor: "width > 2"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Apply(blank(t, 4, 4)); err == nil {
		t.Error("expected error for a non-numeric factor")
	}
}

func TestEveryOperation(t *testing.T) {
	r, err := Parse([]byte(`
steps:
  - {op: fill, color: {r: 100, g: 50, b: 200}}
  - {op: set, x: "0", y: "0", color: {r: 0, g: 0, b: 0}}
  - {op: mirror}
  - {op: mirror_left}
  - {op: fade}
  - {op: invert}
  - {op: grayscale}
  - {op: grayscale_luma}
  - {op: brightness, factor: "10", method: add}
  - {op: brightness, factor: "0.5"}
  - {op: contrast, factor: "1.5"}
  - {op: channel, channel: green}
  - {op: crop, x: "1", y: "1", width: "width - 2", height: "height - 2"}
`))
	if err != nil {
		t.Fatal(err)
	}

	b := blank(t, 6, 5)
	if err := r.Apply(b); err != nil {
		t.Fatal(err)
	}
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("expected 4x3 after crop, actual %dx%d", b.Width(), b.Height())
	}
	for _, row := range b.Grid.Rows {
		for _, c := range row {
			if c.R != 0 || c.B != 0 {
				t.Fatalf("expected only the green channel, actual %+v", c)
			}
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.yaml")
	if err := os.WriteFile(path, []byte(crossRecipe), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "cross" {
		t.Errorf("expected name cross, actual %q", r.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

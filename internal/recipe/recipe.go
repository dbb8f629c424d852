// Package recipe loads edit recipes (ordered lists of image operations)
// from YAML and applies them to bitmaps.
//
// Numeric arguments are arithmetic expressions evaluated against the
// image they are applied to, with the parameters width and height:
//
//	name: center-cross
//	steps:
//	  - op: vline
//	    x: "width / 2"
//	    thickness: 3
//	    color: {r: 255, g: 255, b: 255}
//	  - op: hline
//	    y: "height / 2"
//	    thickness: 3
//	    color: {r: 255, g: 255, b: 255}
//	  - op: fade
package recipe

import (
	"errors"
	"fmt"
	"os"

	"github.com/knetic/govaluate"
	"gopkg.in/yaml.v2"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/logging"
)

// ErrInvalidRecipe is returned for recipes that fail validation at load time
var ErrInvalidRecipe = errors.New("invalid recipe")

type Recipe struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation of a recipe. Which fields are used depends on Op.
type Step struct {
	Op        string `yaml:"op"`
	X         string `yaml:"x,omitempty"`
	Y         string `yaml:"y,omitempty"`
	Thickness string `yaml:"thickness,omitempty"`
	Width     string `yaml:"width,omitempty"`
	Height    string `yaml:"height,omitempty"`
	Factor    string `yaml:"factor,omitempty"`
	Method    string `yaml:"method,omitempty"`
	Channel   string `yaml:"channel,omitempty"`
	Color     *Color `yaml:"color,omitempty"`

	exprs map[string]*govaluate.EvaluableExpression
}

// Color as written in recipes (RGB order)
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

func (c Color) toBMP() bmp.Color {
	return bmp.RGB(c.R, c.G, c.B)
}

// Load reads and validates a recipe file
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe '%s': %w", path, err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("recipe '%s': %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a YAML recipe
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.UnmarshalStrict(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}

	for i := range r.Steps {
		if err := r.Steps[i].compile(); err != nil {
			return nil, fmt.Errorf("%w: step %d (%s): %v", ErrInvalidRecipe, i+1, r.Steps[i].Op, err)
		}
	}
	return &r, nil
}

// Apply runs every step on b, in order. It stops at the first failing step.
func (r *Recipe) Apply(b *bmp.BitmapImage) error {
	for i := range r.Steps {
		s := &r.Steps[i]
		logging.Debug("%s: step %d: %s", b.Filename, i+1, s.Op)
		if err := s.apply(b); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
		}
	}
	return nil
}

// Returns the raw expression of a numeric argument
func (s *Step) arg(name string) string {
	switch name {
	case "x":
		return s.X
	case "y":
		return s.Y
	case "thickness":
		return s.Thickness
	case "width":
		return s.Width
	case "height":
		return s.Height
	case "factor":
		return s.Factor
	}
	return ""
}

var argNames = []string{"x", "y", "thickness", "width", "height", "factor"}

// Checks the step against its operation and compiles its expressions
func (s *Step) compile() error {
	op, ok := operations[s.Op]
	if !ok {
		return fmt.Errorf("unknown operation %q", s.Op)
	}

	for _, name := range op.args {
		if s.arg(name) == "" {
			return fmt.Errorf("missing argument %q", name)
		}
	}
	if op.color && s.Color == nil {
		return errors.New("missing color")
	}
	if op.check != nil {
		if err := op.check(s); err != nil {
			return err
		}
	}

	s.exprs = make(map[string]*govaluate.EvaluableExpression)
	for _, name := range argNames {
		src := s.arg(name)
		if src == "" {
			continue
		}
		expr, err := govaluate.NewEvaluableExpression(src)
		if err != nil {
			return fmt.Errorf("argument %q: %v", name, err)
		}
		s.exprs[name] = expr
	}
	return nil
}

// Evaluates the step's expressions for b
func (s *Step) evaluate(b *bmp.BitmapImage) (values, error) {
	params := map[string]interface{}{
		"width":  float64(b.Width()),
		"height": float64(b.Height()),
	}

	v := make(values, len(s.exprs))
	for name, expr := range s.exprs {
		result, err := expr.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		f, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("argument %q: %q is not a number", name, expr.String())
		}
		v[name] = f
	}
	return v, nil
}

func (s *Step) apply(b *bmp.BitmapImage) error {
	v, err := s.evaluate(b)
	if err != nil {
		return err
	}

	var c bmp.Color
	if s.Color != nil {
		c = s.Color.toBMP()
	}
	return operations[s.Op].run(b, s, v, c)
}

// Evaluated numeric arguments
type values map[string]float64

// Returns the argument truncated to an int, or def when absent
func (v values) integer(name string, def int) int {
	f, ok := v[name]
	if !ok {
		return def
	}
	return int(f)
}

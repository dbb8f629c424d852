// Package batch runs the decode, edit, encode cycle over many bitmap
// files in parallel. Files are independent of each other; a failing file
// does not stop the others.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/logging"
	"github.com/anas-shakeel/bmpedit/internal/recipe"
)

// Prefix of edited files written next to their input
const outputPrefix = "manipulated-"

// ErrDuplicateOutput is reported for an input whose output path was
// already claimed by an earlier input of the same run.
var ErrDuplicateOutput = errors.New("output path already used by another input")

// Result of processing one file
type Result struct {
	Input  string
	Output string
	Err    error
}

// Find expands paths into the list of .bmp files they name. Directories
// are walked recursively, skipping the outputs of earlier runs.
func Find(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".bmp") {
				return nil
			}
			if strings.HasPrefix(d.Name(), outputPrefix) {
				logging.Debug("skipping earlier output %s", path)
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// OutputPath returns where the edited version of input is written:
// inside outDir when set, otherwise next to input with a prefix.
func OutputPath(input, outDir string) string {
	if outDir != "" {
		return filepath.Join(outDir, filepath.Base(input))
	}
	return filepath.Join(filepath.Dir(input), outputPrefix+filepath.Base(input))
}

// Process applies r to a single file and saves the result to output
func Process(input, output string, r *recipe.Recipe) error {
	b, err := bmp.ReadBitmap(input)
	if err != nil {
		return err
	}
	if err := r.Apply(b); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	return b.Save(output)
}

// Run processes every file with at most workers files in flight and
// returns one result per file, in input order. Files not yet started
// when ctx is cancelled report ctx.Err(). When two inputs map to the same
// output, only the first one is processed; the others report
// ErrDuplicateOutput.
func Run(ctx context.Context, files []string, outDir string, r *recipe.Recipe, workers int) []Result {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			results := make([]Result, len(files))
			for i, f := range files {
				results[i] = Result{Input: f, Err: err}
			}
			return results
		}
	}

	results := make([]Result, len(files))
	claimed := make(map[string]string, len(files))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, file := range files {
		output := OutputPath(file, outDir)
		results[i] = Result{Input: file, Output: output}

		if first, ok := claimed[filepath.Clean(output)]; ok {
			logging.Warn("not processing %s: %s already writes to %s", file, first, output)
			results[i].Err = fmt.Errorf("%s: %w: %s", file, ErrDuplicateOutput, first)
			continue
		}
		claimed[filepath.Clean(output)] = file

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			logging.Info("processing: %s", filepath.Base(file))
			if err := Process(file, output, r); err != nil {
				logging.Error("failed to process %s: %v", file, err)
				results[i].Err = err
				return nil
			}
			logging.Debug("wrote %s", output)
			return nil
		})
	}
	g.Wait()

	return results
}

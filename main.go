// bmpedit reads 24-bit bitmaps, edits them with a YAML recipe and writes them back.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/anas-shakeel/bmpedit/internal/batch"
	"github.com/anas-shakeel/bmpedit/internal/bmp"
	"github.com/anas-shakeel/bmpedit/internal/logging"
	"github.com/anas-shakeel/bmpedit/internal/recipe"
)

func main() {
	recipePath := flag.String("recipe", "", "YAML recipe with the edits to apply")
	outDir := flag.String("out-dir", "", "output directory (default: next to each input, prefixed with manipulated-)")
	workers := flag.Int("workers", 4, "number of files processed in parallel")
	logLevel := flag.String("log-level", "info", "logging level: debug, info, warn, error")
	info := flag.Bool("info", false, "print the metadata of every input")
	preview := flag.Bool("print", false, "print every input in the terminal (small images only)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.bmp|dir ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level)

	if flag.NArg() == 0 || (*recipePath == "" && !*info && !*preview) {
		flag.Usage()
		os.Exit(2)
	}

	files, err := batch.Find(flag.Args())
	if err != nil {
		log.Fatalf("failed to find bitmaps: %v", err)
	}
	if len(files) == 0 {
		log.Fatal("no .bmp files found")
	}
	logging.Info("Found %d bitmap(s)", len(files))

	if *info || *preview {
		if err := inspect(os.Stdout, files, *info, *preview); err != nil {
			log.Fatal(err)
		}
	}

	if *recipePath == "" {
		return
	}
	r, err := recipe.Load(*recipePath)
	if err != nil {
		log.Fatal(err)
	}
	logging.Info("Applying recipe %q (%d steps)", r.Name, len(r.Steps))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, res := range batch.Run(ctx, files, *outDir, r, *workers) {
		if res.Err != nil {
			failed++
			continue
		}
		logging.Info("%s -> %s", res.Input, res.Output)
	}
	if failed > 0 {
		stop()
		log.Fatalf("%d of %d file(s) failed", failed, len(files))
	}
}

// Prints metadata and/or a terminal preview of every file
func inspect(w io.Writer, files []string, info, preview bool) error {
	for _, file := range files {
		b, err := bmp.ReadBitmap(file)
		if err != nil {
			return err
		}
		if info {
			b.PrintMetadata(w)
		}
		if preview {
			b.PrintBitmap(w)
		}
		fmt.Fprintln(w)
	}
	return nil
}

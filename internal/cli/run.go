// Package cli implements the ocr-extractor command: gathering image paths
// from the selected input source, running extractions sequentially, and
// routing results to stdout or output files.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Amruth22/ocr-extractor-gpt4o/pkg/ocr"
)

// Options carries the parsed command-line flags. Exactly one of Image, Dir,
// or List must be set.
type Options struct {
	Image string // single image file
	Dir   string // directory scanned for supported images
	List  string // text file with one image path per line

	Prompt     string // custom instruction, overrides Structured
	Structured bool   // extract structured data instead of plain text
	DataFormat string // structure name for Structured mode, e.g. "table"

	// Output is a file path in single-image mode and a directory in batch
	// mode; empty means print to stdout.
	Output string
}

var errNoInput = errors.New("no image input: use -image, -dir, or -list")

// CollectPaths resolves the input selection to a concrete list of image
// paths. Directory scans keep only supported image extensions; list files
// skip missing entries with a warning. An empty final list is an error.
func CollectPaths(opts Options) ([]string, error) {
	set := 0
	for _, v := range []string{opts.Image, opts.Dir, opts.List} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return nil, errNoInput
	}
	if set > 1 {
		return nil, errors.New("-image, -dir, and -list are mutually exclusive")
	}

	switch {
	case opts.Image != "":
		if _, err := os.Stat(opts.Image); err != nil {
			return nil, fmt.Errorf("image file: %w", err)
		}
		return []string{opts.Image}, nil

	case opts.Dir != "":
		entries, err := os.ReadDir(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("read directory: %w", err)
		}
		var paths []string
		for _, entry := range entries {
			if entry.IsDir() || !ocr.SupportedImage(entry.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(opts.Dir, entry.Name()))
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no image files found in directory: %s", opts.Dir)
		}
		return paths, nil

	default:
		file, err := os.Open(opts.List)
		if err != nil {
			return nil, fmt.Errorf("open list file: %w", err)
		}
		defer file.Close()

		var paths []string
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if _, err := os.Stat(line); err != nil {
				log.Printf("skipping %s: %v", line, err)
				continue
			}
			paths = append(paths, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read list file: %w", err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no valid image paths in list: %s", opts.List)
		}
		return paths, nil
	}
}

// Run extracts text from every collected path in order, one request at a
// time, and writes results to out or to files under opts.Output. It returns
// an error when any extraction failed, after processing the remaining files.
func Run(ctx context.Context, extractor *ocr.Extractor, opts Options, out io.Writer) error {
	paths, err := CollectPaths(opts)
	if err != nil {
		return err
	}

	extractOpts := ocr.Options{Prompt: opts.Prompt, DataFormat: opts.DataFormat}
	if opts.Structured {
		extractOpts.Mode = ocr.ModeStructured
	}

	batch := len(paths) > 1 || opts.Dir != "" || opts.List != ""
	if batch && opts.Output != "" {
		if err := os.MkdirAll(opts.Output, 0o755); err != nil {
			return fmt.Errorf("ensure output dir: %w", err)
		}
	}

	failed := 0
	for i, path := range paths {
		jobID := uuid.NewString()[:8]
		log.Printf("[%s] extracting %s (%d/%d)", jobID, path, i+1, len(paths))

		text, err := extractor.ExtractText(ctx, path, extractOpts)
		if err != nil {
			failed++
			log.Printf("[%s] %s failed: %v", jobID, path, err)
			fmt.Fprintf(out, "Error processing %s: %v\n", path, err)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		if opts.Output == "" {
			printBlock(out, path, text, batch)
			continue
		}

		target := opts.Output
		if batch {
			base := filepath.Base(path)
			name := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
			target = filepath.Join(opts.Output, name)
		}
		if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
			failed++
			log.Printf("[%s] write %s: %v", jobID, target, err)
			continue
		}
		log.Printf("[%s] saved results for %s to %s", jobID, path, target)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d extractions failed", failed, len(paths))
	}
	return nil
}

func printBlock(out io.Writer, path, text string, batch bool) {
	rule := strings.Repeat("-", 50)
	if batch {
		fmt.Fprintf(out, "\nResults for %s:\n", path)
	} else {
		fmt.Fprintf(out, "\nExtracted Text:\n")
	}
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, text)
	fmt.Fprintln(out, rule)
}

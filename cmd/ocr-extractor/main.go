package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Amruth22/ocr-extractor-gpt4o/internal/cli"
	"github.com/Amruth22/ocr-extractor-gpt4o/internal/config"
	"github.com/Amruth22/ocr-extractor-gpt4o/pkg/ocr"
)

func main() {
	var (
		image      = flag.String("image", "", "path to a single image file")
		dir        = flag.String("dir", "", "path to a directory containing images")
		list       = flag.String("list", "", "path to a text file with image paths (one per line)")
		prompt     = flag.String("prompt", "", "custom prompt for the model")
		structured = flag.Bool("structured", false, "extract structured data (like tables)")
		format     = flag.String("format", "table", "structure to extract in structured mode (table, form)")
		model      = flag.String("model", "", "OpenAI model to use (default: gpt-4o)")
		apiKey     = flag.String("api-key", "", "OpenAI API key (if not set in environment variable)")
		cfgPath    = flag.String("config", "", "path to an optional YAML config file")
		output     = flag.String("output", "", "output file for single image or directory for batch processing")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("ocr-extractor: ")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	// Flags override both file and environment.
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if *model != "" {
		cfg.Model = *model
	}

	extractor, err := ocr.New(ocr.Config{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.Endpoint,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Detail:    cfg.Detail,
	})
	if err != nil {
		if errors.Is(err, ocr.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "Error: OpenAI API key is required. Provide it with -api-key or set OPENAI_API_KEY.")
			os.Exit(2)
		}
		log.Fatalf("init extractor: %v", err)
	}

	opts := cli.Options{
		Image:      *image,
		Dir:        *dir,
		List:       *list,
		Prompt:     *prompt,
		Structured: *structured,
		DataFormat: *format,
		Output:     *output,
	}

	if err := cli.Run(context.Background(), extractor, opts, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

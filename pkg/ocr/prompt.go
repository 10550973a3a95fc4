package ocr

import "fmt"

// buildPrompt resolves the instruction text for a call. An explicit Prompt
// wins; otherwise the mode decides. Structured mode only changes this string,
// nothing else about the request.
func buildPrompt(opts Options) string {
	if opts.Prompt != "" {
		return opts.Prompt
	}
	if opts.Mode == ModeStructured {
		format := opts.DataFormat
		if format == "" {
			format = "table"
		}
		return fmt.Sprintf("Extract the %s data from this image and format it as JSON.", format)
	}
	return DefaultPrompt
}

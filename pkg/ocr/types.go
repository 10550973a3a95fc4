package ocr

import "errors"

// Mode selects the extraction instruction sent to the model. It changes only
// the prompt text; the result is always a plain string either way.
type Mode int

const (
	// ModePlainText asks the model for a verbatim transcription of all text.
	ModePlainText Mode = iota
	// ModeStructured asks the model to format the extracted data (a table,
	// a form, ...) as JSON. The response is NOT validated or parsed locally.
	ModeStructured
)

// DefaultPrompt is the instruction used when the caller supplies none.
const DefaultPrompt = "Extract all text from this image."

var (
	// ErrMissingAPIKey is returned by New when no API credential is configured.
	ErrMissingAPIKey = errors.New("openai api key is required: pass it in Config or set OPENAI_API_KEY")

	// ErrNoChoices is returned when the API response contains no completion choices.
	ErrNoChoices = errors.New("vision api returned no choices")

	// ErrUnsupportedFormat is returned for files whose extension is not a
	// raster image format the vision endpoint accepts.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Config holds construction-time configuration for an Extractor. The zero
// value is not usable; at minimum APIKey must be set.
type Config struct {
	// APIKey is the OpenAI API credential. Required.
	APIKey string
	// BaseURL overrides the API endpoint, e.g. for a proxy or a test server.
	// Defaults to https://api.openai.com/v1.
	BaseURL string
	// Model is the vision-capable model identifier. Defaults to gpt-4o.
	Model string
	// MaxTokens caps the completion length. Defaults to 1000.
	MaxTokens int
	// Detail is the image detail level sent with the image. Defaults to "high".
	Detail string
}

// Options adjusts a single extraction call.
type Options struct {
	// Prompt replaces the default instruction entirely when non-empty.
	Prompt string
	// Mode selects plain-text vs structured extraction. Ignored when Prompt
	// is set.
	Mode Mode
	// DataFormat names the structure to extract in ModeStructured, e.g.
	// "table" or "form". Defaults to "table".
	DataFormat string
}

// Result is the outcome of one file in a batch: extracted text or an error,
// never both.
type Result struct {
	Path string
	Text string
	Err  error
}

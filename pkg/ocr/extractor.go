// Package ocr extracts text from images by delegating the actual character
// recognition to a vision-capable OpenAI chat model (GPT-4o by default).
// There is no local OCR engine: each call reads one image, sends one
// synchronous chat-completion request, and returns the model's answer
// verbatim. Failed calls surface immediately; there are no retries.
package ocr

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultBaseURL   = "https://api.openai.com/v1"
	defaultModel     = openai.GPT4o
	defaultMaxTokens = 1000
)

// completer is the narrow slice of the OpenAI client the extractor needs.
// Tests substitute a fake without real network I/O.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Extractor sends images to the vision model and returns extracted text.
// It holds no mutable state; a single Extractor is safe for concurrent use,
// though calls themselves are independent one-shot exchanges.
type Extractor struct {
	client    completer
	model     string
	maxTokens int
	detail    openai.ImageURLDetail
}

// New builds an Extractor from cfg. It fails with ErrMissingAPIKey before any
// request can be constructed when no credential is present.
func New(cfg Config) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	} else {
		clientCfg.BaseURL = defaultBaseURL
	}

	e := &Extractor{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		detail:    openai.ImageURLDetail(cfg.Detail),
	}
	if e.model == "" {
		e.model = defaultModel
	}
	if e.maxTokens == 0 {
		e.maxTokens = defaultMaxTokens
	}
	if e.detail == "" {
		e.detail = openai.ImageURLDetailHigh
	}
	return e, nil
}

// ExtractText reads the image at path and returns the text the model found
// in it free of any post-processing. The optional Options select a custom
// prompt or the structured extraction mode.
//
// Exactly one network call is made per invocation. Errors fall into four
// groups: local file errors (errors.Is against fs.ErrNotExist works, and
// ErrUnsupportedFormat for non-image extensions), remote-service errors
// (*openai.APIError with the HTTP status), transport errors, and ErrNoChoices
// when the response carries no completion.
func (e *Extractor) ExtractText(ctx context.Context, path string, opts ...Options) (string, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	dataURI, err := encodeImage(path)
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model:     e.model,
		MaxTokens: e.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: buildPrompt(o),
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURI,
							Detail: e.detail,
						},
					},
				},
			},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision request for %s: %w", path, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w (model %s)", ErrNoChoices, e.model)
	}

	return resp.Choices[0].Message.Content, nil
}

// ExtractStructured asks the model to return the image's data in the named
// format ("table", "form", ...) as JSON. Only the prompt differs from
// ExtractText; the result is still an unvalidated string and may or may not
// actually be JSON.
func (e *Extractor) ExtractStructured(ctx context.Context, path string, dataFormat string) (string, error) {
	return e.ExtractText(ctx, path, Options{Mode: ModeStructured, DataFormat: dataFormat})
}

// ExtractBatch processes paths sequentially, one request at a time. A failed
// file is recorded in its Result and does not abort the rest; cancelling ctx
// does. Results are returned in input order.
func (e *Extractor) ExtractBatch(ctx context.Context, paths []string, opts ...Options) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		select {
		case <-ctx.Done():
			results = append(results, Result{Path: path, Err: ctx.Err()})
			continue
		default:
		}

		text, err := e.ExtractText(ctx, path, opts...)
		results = append(results, Result{Path: path, Text: text, Err: err})
	}
	return results
}

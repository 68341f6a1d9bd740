// Package anthropic implements the Reviewer port using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/diffwatch/reviewbot/internal/domain/model"
	"github.com/diffwatch/reviewbot/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Reviewer = (*Client)(nil)

// systemPrompt pins the response shape. The per-chunk review instructions
// live in the rendered user prompt; this block only constrains the output
// format so every response is machine-checkable.
const systemPrompt = `You are a code review assistant. Respond with a JSON object of exactly this shape:
{"reviews": [{"lineNumber": "<line number as string>", "reviewComment": "<review comment in GitHub Markdown>"}]}

Rules:
- Return valid JSON only, no markdown fencing or prose around it
- If there is nothing to flag, return {"reviews": []}
- Every lineNumber must be the decimal line number the comment refers to`

// reviewTemperature keeps decoding deterministic-leaning; reviews should
// not vary wildly between identical runs.
const reviewTemperature = 0.2

// Client wraps the Anthropic API for chunk review requests.
type Client struct {
	api       *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewClient creates a reviewer client with the given API key, model
// identifier, and per-response token budget.
func NewClient(apiKey, model string, maxTokens int64) *Client {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client := anthropic.NewClient(opts...)
	return &Client{
		api:       &client,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

// Review sends one rendered chunk prompt and returns the model's
// findings. Any transport error, empty response, or response that does
// not match the required shape is returned as an error; the caller
// decides whether that is fatal. A conforming response with zero reviews
// yields an empty non-nil slice.
func (c *Client) Review(ctx context.Context, prompt string) ([]model.ReviewFinding, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(reviewTemperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API call: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}

	if text == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return parseReviews(text)
}

// parseReviews validates the raw response text against the required
// {"reviews": [...]} shape. Markdown fencing is tolerated because models
// wrap JSON in fences despite instructions not to.
func parseReviews(text string) ([]model.ReviewFinding, error) {
	text = stripFences(text)

	var parsed struct {
		Reviews *[]model.ReviewFinding `json:"reviews"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("parse model response as JSON: %w\nraw response: %s", err, text)
	}
	if parsed.Reviews == nil {
		return nil, fmt.Errorf("model response missing \"reviews\" field: %s", text)
	}

	if len(*parsed.Reviews) == 0 {
		return []model.ReviewFinding{}, nil
	}
	return *parsed.Reviews, nil
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.SplitN(text, "\n", 2)
	if len(lines) > 1 {
		text = lines[1]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

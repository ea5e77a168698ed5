// Package gemini is a thin client for Google's Gemini text-generation API.
// It exposes exactly the operations this application needs: free-form text
// generation, library-JSON generation with a response schema, and a
// connection check.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jamshu/librarium/config"
)

// ErrEmptyResponse is returned when the API answers with no usable text.
var ErrEmptyResponse = errors.New("no response text received from Gemini")

const connectionProbe = "Hello, Gemini! Please respond with 'Connection successful!'"

// Client talks to the Gemini API with a fixed model and token budget.
type Client struct {
	c         *client
	model     string
	maxTokens int
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	model      string
	maxTokens  int
}

// WithBaseURL sets a custom base URL, used by tests to point at a fake server.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithModel overrides the model identifier.
func WithModel(model string) Option {
	return func(c *clientConfig) {
		c.model = model
	}
}

// WithMaxTokens overrides the response token budget.
func WithMaxTokens(n int) Option {
	return func(c *clientConfig) {
		c.maxTokens = n
	}
}

// New creates a Client from application configuration.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	cc := &clientConfig{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
	for _, opt := range opts {
		opt(cc)
	}

	if cfg.APIKey == "" {
		return nil, config.ErrAPIKeyMissing
	}

	return &Client{
		c:         newClient(cfg.APIKey, cc.baseURL, cc.httpClient),
		model:     cc.model,
		maxTokens: cc.maxTokens,
	}, nil
}

// GenerateText sends a free-form prompt and returns the generated text.
// An answer with no candidates or no text is reported as ErrEmptyResponse.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := &generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
	}
	if c.maxTokens > 0 {
		req.GenerationConfig = &generationConfig{MaxOutputTokens: &c.maxTokens}
	}

	resp, err := c.c.generateContent(ctx, c.model, req)
	if err != nil {
		return "", err
	}

	text := firstCandidateText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateLibrary asks the model for a JSON library of numBooks books. The
// request carries a JSON response schema derived from the domain types, so a
// well-behaved model answers with raw JSON; the normalizer downstream still
// copes with fenced output.
func (c *Client) GenerateLibrary(ctx context.Context, numBooks int) (string, error) {
	schema, err := librarySchema()
	if err != nil {
		return "", fmt.Errorf("building response schema: %w", err)
	}

	req := &generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: libraryPrompt(numBooks)}},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}
	if c.maxTokens > 0 {
		req.GenerationConfig.MaxOutputTokens = &c.maxTokens
	}

	resp, err := c.c.generateContent(ctx, c.model, req)
	if err != nil {
		return "", err
	}

	text := firstCandidateText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// TestConnection verifies the API is reachable with the configured key.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.GenerateText(ctx, connectionProbe)
	return err
}

func firstCandidateText(resp *generateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

func libraryPrompt(numBooks int) string {
	return fmt.Sprintf(`Generate a JSON object representing a library with the following structure:
- A name (string) - make it creative and interesting
- A list of exactly %d books, where each book has:
  - title (string)
  - author (string)
  - year (integer between 1000 and %d)

Include books from different time periods and genres for variety.

IMPORTANT: Return ONLY the raw JSON, no backticks, no markdown formatting, no additional text.

Example format:
{
    "name": "The Grand Library",
    "books": [
        {"title": "Example Title", "author": "Example Author", "year": 1999}
    ]
}`, numBooks, time.Now().Year())
}

// Package ai wraps the Gemini generateContent endpoint as an opaque
// text-in/text-out collaborator. Calls always resolve: any failure is
// logged and collapsed into a fixed user-facing fallback string, so the UI
// never sees an error state from this package.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/vibra-app/vibra/internal/sanitize"
)

// Client calls the generative-text API. The endpoint is a field so tests
// can point it at an httptest server.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	sanitizer  *sanitize.Caption

	apiKey   string
	model    string
	endpoint string
	timeout  time.Duration
}

// NewClient builds a Client. An empty apiKey is allowed; every call then
// degrades to its fallback string.
func NewClient(httpClient *http.Client, logger *slog.Logger, apiKey, model, endpoint string, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		sanitizer:  sanitize.NewCaption(),
		apiKey:     apiKey,
		model:      model,
		endpoint:   strings.TrimRight(endpoint, "/"),
		timeout:    timeout,
	}
}

// VibeCheck rewrites a raw caption draft into a polished one. The result is
// sanitized to plain text before it is handed back to the composer.
func (c *Client) VibeCheck(ctx context.Context, input string) string {
	text, err := c.generate(ctx, vibeCheckPrompt(input), 0.9)
	if err != nil {
		c.logger.Error("caption rewrite failed",
			slog.String("error", err.Error()),
		)
		return fallbackVibeError
	}
	text = c.sanitizer.Clean(text)
	if text == "" {
		return fallbackVibeEmpty
	}
	return text
}

// Ask answers a free-form assistant question in the Vibra persona.
func (c *Client) Ask(ctx context.Context, input string) string {
	text, err := c.generate(ctx, assistantPrompt(input), 0.8)
	if err != nil {
		c.logger.Error("assistant request failed",
			slog.String("error", err.Error()),
		)
		return fallbackAskError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackAskEmpty
	}
	return text
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent call. No retry: the caller's
// fallback string is the whole failure policy.
func (c *Client) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait aborted: %w", err)
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature: temperature,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("response contained no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Package sanitize cleans collaborator output before it re-enters the UI.
// Generated captions are treated as untrusted text: any markup is stripped
// with an allowlist-free bluemonday policy and surrounding whitespace is
// trimmed. Same input always yields the same output.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Caption struct {
	policy *bluemonday.Policy
}

// NewCaption returns a sanitizer for AI-rewritten captions. The strict
// policy removes every tag; captions are plain text with emoji and hashtags.
func NewCaption() *Caption {
	return &Caption{policy: bluemonday.StrictPolicy()}
}

// Clean strips markup and trims whitespace. Empty input returns empty.
func (c *Caption) Clean(raw string) string {
	cleaned := c.policy.Sanitize(raw)
	// StrictPolicy escapes entities it keeps; captions should read as text.
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}

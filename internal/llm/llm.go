// Package llm abstracts the external text-completion provider used for
// per-field resume suggestions.
package llm

import (
	"context"
	"errors"
)

// SuggestInput carries one suggestion request: the resume field being edited,
// its current text, and an optional steering instruction.
type SuggestInput struct {
	Field       string
	CurrentText string
	Context     string
}

// Client produces exactly one suggested replacement string per call. Output
// is untrusted free text; callers must not parse it further. Calls are never
// retried or cached.
type Client interface {
	Suggest(ctx context.Context, input SuggestInput) (string, error)
}

// ErrNotConfigured is returned when no provider is wired.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is the stub used when no provider is configured.
type PlaceholderClient struct{}

// Suggest returns ErrNotConfigured.
func (PlaceholderClient) Suggest(ctx context.Context, input SuggestInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

// Package llm defines the minimal client contract for optional remote
// language-model calls. Consumers must treat every call as best-effort:
// a failed or disabled client degrades to local deterministic logic.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrDisabled is returned by the Disabled client when no provider is
// configured.
var ErrDisabled = errors.New("llm: no provider configured")

// Client produces a JSON completion for a prompt pair.
type Client interface {
	CompleteJSON(ctx context.Context, system, prompt string) (json.RawMessage, error)
}

// Disabled is the null client used when remote augmentation is not
// configured.
type Disabled struct{}

// CompleteJSON always fails with ErrDisabled.
func (Disabled) CompleteJSON(context.Context, string, string) (json.RawMessage, error) {
	return nil, ErrDisabled
}

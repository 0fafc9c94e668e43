// Package explain turns a structured assessment into natural-language
// rationale. A pluggable text-generation provider only narrates facts
// the scorer already produced; its output never flows back into scores.
// Provider failures are absorbed here with a templated fallback, never
// surfaced to the caller.
package explain

import (
	"context"
	"errors"

	"github.com/makaolabs/makao/pkg/types"
)

type ResponseFormat string

const (
	FormatText ResponseFormat = "text"
	FormatJSON ResponseFormat = "json"
)

var ErrProviderUnavailable = errors.New("explanation provider unavailable")

// Provider is the single-operation text-generation capability. It must
// be swappable without any change to the rule engine or scorer.
type Provider interface {
	Name() string
	Generate(ctx context.Context, messages []types.Message, temperature float64, format ResponseFormat) (string, error)
}

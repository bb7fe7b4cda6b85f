package render

import (
	"github.com/linealabs/code39/pkg/code39"
	"github.com/linealabs/code39/pkg/errors"
)

// Render validates cfg and dispatches seq to the sink selected by
// cfg.Format. An unknown format is a programmer error surfaced with the
// INVALID_CONFIG code; there is no fallback format.
func Render(seq code39.Sequence, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	switch cfg.Format {
	case FormatText:
		return Text(seq, cfg), nil
	case FormatSVG:
		return SVG(seq, cfg), nil
	default:
		// Unreachable while Validate and this switch agree on ValidFormats.
		return "", errors.New(errors.ErrCodeInvalidConfig, "invalid format: %q", cfg.Format)
	}
}

// Package pipeline provides the core generation pipeline for code39.
//
// This package implements the complete validate → encode → render
// pipeline used by the CLI and the HTTP surface. By centralizing this
// logic, every entry point reports the same errors for the same input.
//
// # Usage
//
//	cfg := render.DefaultConfig()
//	cfg.Format = render.FormatSVG
//	out, err := pipeline.Generate("CODE 39", cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Generate returns errors as values; MustGenerate is its exception-style
// twin for callers that treat any failure as fatal.
package pipeline

import (
	"github.com/linealabs/code39/pkg/code39"
	"github.com/linealabs/code39/pkg/errors"
	"github.com/linealabs/code39/pkg/render"
)

// Generate validates input, encodes it, and renders it with cfg after
// applying defaults to unset fields.
//
// Unsupported characters in input are recoverable data errors carrying
// the INVALID_CHARACTER code and naming the first offender. A bad
// configuration is a caller programming error carrying INVALID_CONFIG;
// no fallback rendering is attempted. All validation happens before any
// encoding work, so a failed call produces no partial output.
func Generate(input string, cfg render.Config) (string, error) {
	cfg.ApplyDefaults()

	if err := code39.Validate(input); err != nil {
		return "", err
	}
	return render.Render(code39.Encode(input), cfg)
}

// MustGenerate is Generate for exception-style control flow: it returns
// the rendered output and panics on any error, including invalid input.
func MustGenerate(input string, cfg render.Config) string {
	out, err := Generate(input, cfg)
	if err != nil {
		panic(err)
	}
	return out
}

// ValidateInput checks input against the supported repertoire without
// rendering anything. The returned error, if any, carries the
// INVALID_CHARACTER code and names the first offending character.
func ValidateInput(input string) error {
	return code39.Validate(input)
}

// SupportedCharacters returns the user-enterable repertoire in stable
// order, re-exported for callers that only import the pipeline.
func SupportedCharacters() []string {
	return code39.SupportedCharacters()
}

// IsInputError reports whether err is a recoverable input validation
// error, as opposed to a configuration or internal error.
func IsInputError(err error) bool {
	return errors.Is(err, errors.ErrCodeInvalidCharacter)
}

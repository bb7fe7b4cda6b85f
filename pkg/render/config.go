package render

import (
	"github.com/linealabs/code39/pkg/errors"
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatSVG  = "svg"

	// FormatVector is accepted as an input alias for FormatSVG.
	FormatVector = "vector"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatSVG:  true,
}

// Default geometry values, shared by CLI, HTTP, and library callers.
const (
	// DefaultModuleWidth is the narrow element width in distance units
	// (SVG only). Wide elements are always three modules.
	DefaultModuleWidth = 2

	// DefaultBarHeight is the bar height in distance units (SVG only).
	DefaultBarHeight = 100

	// DefaultQuietZone is the blank margin on each side of the symbol:
	// character count for text output, distance units for SVG.
	DefaultQuietZone = 10
)

// wideRatio is the wide-to-narrow element width ratio. It is a Code 39
// structural constant and deliberately not configurable.
const wideRatio = 3

// Config controls how an encoded sequence is rendered.
// Use DefaultConfig for the documented defaults; a zero QuietZone is a
// valid explicit choice, not an unset value.
type Config struct {
	Format      string // "text" or "svg"
	ModuleWidth int    // narrow element width (SVG only)
	BarHeight   int    // bar height (SVG only)
	QuietZone   int    // blank margin on each side
}

// DefaultConfig returns a Config with all documented defaults applied.
func DefaultConfig() Config {
	return Config{
		Format:      FormatText,
		ModuleWidth: DefaultModuleWidth,
		BarHeight:   DefaultBarHeight,
		QuietZone:   DefaultQuietZone,
	}
}

// ApplyDefaults fills unset fields. QuietZone is left alone: zero means
// no quiet zone, and callers wanting the default start from DefaultConfig.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Format == FormatVector {
		c.Format = FormatSVG
	}
	if c.ModuleWidth == 0 {
		c.ModuleWidth = DefaultModuleWidth
	}
	if c.BarHeight == 0 {
		c.BarHeight = DefaultBarHeight
	}
}

// Validate checks the configuration. Failures are caller programming
// errors, reported with the INVALID_CONFIG code and never worked around
// with a best-effort fallback.
func (c Config) Validate() error {
	if !ValidFormats[c.Format] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid format: %q (must be %q or %q)", c.Format, FormatText, FormatSVG)
	}
	if c.ModuleWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid module width: %d (must be positive)", c.ModuleWidth)
	}
	if c.BarHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid bar height: %d (must be positive)", c.BarHeight)
	}
	if c.QuietZone < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid quiet zone: %d (must be non-negative)", c.QuietZone)
	}
	return nil
}

// ValidateFormat checks that a format name is valid, accepting the
// "vector" alias for svg.
func ValidateFormat(format string) error {
	if format == FormatVector {
		return nil
	}
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be %q or %q)", format, FormatText, FormatSVG)
	}
	return nil
}

package render

import (
	"strings"

	"github.com/linealabs/code39/pkg/code39"
)

// barGlyph is the solid block used for one narrow bar unit in text
// output. Wide bars repeat it; spaces use the ordinary blank.
const barGlyph = "█"

// Text renders seq as a single line of block-character art with
// cfg.QuietZone blanks on each side. Narrow elements occupy one glyph
// unit, wide elements two. No newline is appended.
func Text(seq code39.Sequence, cfg Config) string {
	quiet := strings.Repeat(" ", cfg.QuietZone)

	var b strings.Builder
	b.Grow(2*cfg.QuietZone + 2*len(seq)*len(barGlyph))
	b.WriteString(quiet)
	for i, wide := range seq {
		glyph := " "
		if i%2 == 0 {
			glyph = barGlyph
		}
		b.WriteString(glyph)
		if wide {
			b.WriteString(glyph)
		}
	}
	b.WriteString(quiet)
	return b.String()
}

package render

import (
	"bytes"
	"fmt"

	"github.com/linealabs/code39/pkg/code39"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// SVG renders seq as a standalone SVG document. Bars become filled
// <rect> elements, one per line; spaces only advance the horizontal
// cursor. The declared document width is the final cursor position plus
// the trailing quiet zone, so both margins are accounted for by width
// alone.
func SVG(seq code39.Sequence, cfg Config) string {
	var buf bytes.Buffer

	buf.WriteString(xmlDeclaration + "\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		Width(seq, cfg), cfg.BarHeight)

	x := cfg.QuietZone
	for i, wide := range seq {
		w := elementWidth(wide, cfg)
		if i%2 == 0 {
			fmt.Fprintf(&buf, `  <rect x="%d" y="0" width="%d" height="%d" fill="black"/>`+"\n",
				x, w, cfg.BarHeight)
		}
		x += w
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

// Width returns the total document width for seq under cfg: both quiet
// zones plus the sum of all element widths.
func Width(seq code39.Sequence, cfg Config) int {
	w := 2 * cfg.QuietZone
	for _, wide := range seq {
		w += elementWidth(wide, cfg)
	}
	return w
}

func elementWidth(wide bool, cfg Config) int {
	if wide {
		return cfg.ModuleWidth * wideRatio
	}
	return cfg.ModuleWidth
}

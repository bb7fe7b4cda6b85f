package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/linealabs/code39/pkg/code39"
)

func TestSVGDocumentShape(t *testing.T) {
	out := SVG(code39.Encode("TEST"), DefaultConfig())

	if !strings.HasPrefix(out, xmlDeclaration+"\n") {
		t.Error("output does not start with the XML declaration")
	}
	if !strings.Contains(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("svg root element or namespace missing")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output does not end with the closing svg tag")
	}
}

func TestSVGWidthAndHeight(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		moduleWidth int
		barHeight   int
		quietZone   int
	}{
		{"defaults", "TEST", DefaultModuleWidth, DefaultBarHeight, DefaultQuietZone},
		{"scaled", "HELLO", 3, 150, 10},
		{"no quiet zone", "A", 1, 40, 0},
		{"empty input", "", 2, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := code39.Encode(tt.input)
			cfg := Config{
				Format:      FormatSVG,
				ModuleWidth: tt.moduleWidth,
				BarHeight:   tt.barHeight,
				QuietZone:   tt.quietZone,
			}

			// Element widths: narrow = one module, wide = three.
			want := 2 * tt.quietZone
			for _, wide := range seq {
				if wide {
					want += 3 * tt.moduleWidth
				} else {
					want += tt.moduleWidth
				}
			}

			out := SVG(seq, cfg)
			rootAttrs := fmt.Sprintf(`width="%d" height="%d"`, want, tt.barHeight)
			if !strings.Contains(out, rootAttrs) {
				t.Errorf("svg root missing %q", rootAttrs)
			}
			if got := Width(seq, cfg); got != want {
				t.Errorf("Width() = %d, want %d", got, want)
			}
		})
	}
}

func TestSVGRectCount(t *testing.T) {
	tests := []struct {
		input string
	}{
		{""},
		{"A"},
		{"TEST"},
		{"CODE 39"},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			seq := code39.Encode(tt.input)
			out := SVG(seq, DefaultConfig())

			// Five bars per character, sentinels included.
			want := 5 * (len(tt.input) + 2)
			if got := strings.Count(out, "<rect "); got != want {
				t.Errorf("rect count = %d, want %d", got, want)
			}
		})
	}
}

func TestSVGRectAttributes(t *testing.T) {
	cfg := Config{Format: FormatSVG, ModuleWidth: 3, BarHeight: 150, QuietZone: 10}
	out := SVG(code39.Encode("HELLO"), cfg)

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "<rect ") {
			continue
		}
		if !strings.Contains(line, `height="150"`) {
			t.Errorf("rect without height=\"150\": %s", line)
		}
		if !strings.Contains(line, `y="0"`) {
			t.Errorf("rect without y=\"0\": %s", line)
		}
		if !strings.Contains(line, `fill="black"`) {
			t.Errorf("rect without fill=\"black\": %s", line)
		}
	}
}

func TestSVGFirstBarStartsAfterQuietZone(t *testing.T) {
	cfg := Config{Format: FormatSVG, ModuleWidth: 2, BarHeight: 100, QuietZone: 7}
	out := SVG(code39.Encode("A"), cfg)

	if !strings.Contains(out, `<rect x="7" `) {
		t.Error("first rect does not start at the quiet zone boundary")
	}
}

func TestSVGOneRectPerLine(t *testing.T) {
	out := SVG(code39.Encode("AB"), DefaultConfig())
	for _, line := range strings.Split(out, "\n") {
		if strings.Count(line, "<rect ") > 1 {
			t.Errorf("multiple rects on one line: %s", line)
		}
	}
}

package code39

import (
	"strings"
	"testing"
)

func TestTableCompleteness(t *testing.T) {
	if got := len(entries); got != 43 {
		t.Fatalf("symbol table has %d entries, want 43", got)
	}

	seen := make(map[rune]bool, len(entries))
	for _, e := range entries {
		if seen[e.ch] {
			t.Errorf("duplicate symbol %q", e.ch)
		}
		seen[e.ch] = true
	}

	for _, ch := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%*" {
		if !seen[ch] {
			t.Errorf("symbol %q missing from table", ch)
		}
	}
}

// Every Code 39 pattern has exactly three wide elements. This is a
// structural property of the symbology, checked once here rather than
// enforced at runtime.
func TestPatternsHaveThreeWideElements(t *testing.T) {
	for _, e := range entries {
		if len(e.pattern) != PatternLength {
			t.Errorf("%q: pattern length = %d, want %d", e.ch, len(e.pattern), PatternLength)
			continue
		}
		if wide := strings.Count(e.pattern, "1"); wide != 3 {
			t.Errorf("%q: %d wide elements, want 3", e.ch, wide)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
		want string // wide-flag notation, empty for a miss
		ok   bool
	}{
		{"digit", '0', "000110100", true},
		{"letter", 'A', "100001001", true},
		{"special", '$', "010101000", true},
		{"sentinel", '*', "010010100", true},
		{"lowercase", 'a', "", false},
		{"unsupported", '@', "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Lookup(tt.ch)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.ch, ok, tt.ok)
			}
			if !ok {
				return
			}
			for i := 0; i < PatternLength; i++ {
				if p[i] != (tt.want[i] == '1') {
					t.Errorf("Lookup(%q)[%d] = %v, want %c", tt.ch, i, p[i], tt.want[i])
				}
			}
		})
	}
}

func TestSupportedCharacters(t *testing.T) {
	chars := SupportedCharacters()

	if got := len(chars); got != 42 {
		t.Fatalf("SupportedCharacters() returned %d entries, want 42", got)
	}

	// Stable order: digits ascending, letters A-Z, then the specials in
	// table-declaration order.
	want := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"
	if got := strings.Join(chars, ""); got != want {
		t.Errorf("SupportedCharacters() order = %q, want %q", got, want)
	}

	for _, c := range chars {
		if c == string(Sentinel) {
			t.Error("SupportedCharacters() includes the sentinel")
		}
	}
}

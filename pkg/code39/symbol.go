package code39

// Sentinel is the reserved start/stop character bracketing every encoded
// message. It is not user-enterable: Validate rejects it, but Encode
// resolves it through the same table as any other symbol.
const Sentinel = '*'

// PatternLength is the number of elements per symbol: five bars and four
// spaces, alternating and starting with a bar.
const PatternLength = 9

// Pattern is the ordered width classes of one symbol's nine elements.
// Even indices are bars, odd indices are spaces; true means wide.
// Every valid pattern has exactly three wide elements.
type Pattern [PatternLength]bool

// entry pairs a symbol with its pattern in the canonical wide-flag
// notation: nine '0'/'1' characters, '1' marking a wide element.
type entry struct {
	ch      rune
	pattern string
}

// entries is the full Code 39 symbol table in declaration order:
// digits, letters, the seven specials, then the sentinel.
// SupportedCharacters derives its stable ordering from this slice.
var entries = []entry{
	{'0', "000110100"},
	{'1', "100100001"},
	{'2', "001100001"},
	{'3', "101100000"},
	{'4', "000110001"},
	{'5', "100110000"},
	{'6', "001110000"},
	{'7', "000100101"},
	{'8', "100100100"},
	{'9', "001100100"},
	{'A', "100001001"},
	{'B', "001001001"},
	{'C', "101001000"},
	{'D', "000011001"},
	{'E', "100011000"},
	{'F', "001011000"},
	{'G', "000001101"},
	{'H', "100001100"},
	{'I', "001001100"},
	{'J', "000011100"},
	{'K', "100000011"},
	{'L', "001000011"},
	{'M', "101000010"},
	{'N', "000010011"},
	{'O', "100010010"},
	{'P', "001010010"},
	{'Q', "000000111"},
	{'R', "100000110"},
	{'S', "001000110"},
	{'T', "000010110"},
	{'U', "110000001"},
	{'V', "011000001"},
	{'W', "111000000"},
	{'X', "010010001"},
	{'Y', "110010000"},
	{'Z', "011010000"},
	{'-', "010000101"},
	{'.', "110000100"},
	{' ', "011000100"},
	{'$', "010101000"},
	{'/', "010100010"},
	{'+', "010001010"},
	{'%', "000101010"},
	{Sentinel, "010010100"},
}

// table maps each symbol to its parsed pattern for constant-time lookup.
var table = func() map[rune]Pattern {
	m := make(map[rune]Pattern, len(entries))
	for _, e := range entries {
		var p Pattern
		for i := 0; i < PatternLength; i++ {
			p[i] = e.pattern[i] == '1'
		}
		m[e.ch] = p
	}
	return m
}()

// Lookup returns the element pattern for ch.
// The second return value is false if ch is not in the symbol table.
func Lookup(ch rune) (Pattern, bool) {
	p, ok := table[ch]
	return p, ok
}

// SupportedCharacters returns the user-enterable repertoire as
// single-character strings in stable order: digits ascending, letters
// A-Z, then the seven specials in table-declaration order. The sentinel
// is excluded.
func SupportedCharacters() []string {
	chars := make([]string, 0, len(entries)-1)
	for _, e := range entries {
		if e.ch == Sentinel {
			continue
		}
		chars = append(chars, string(e.ch))
	}
	return chars
}

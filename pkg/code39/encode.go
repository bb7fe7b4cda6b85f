package code39

import "strings"

// Sequence is the flat element stream for an encoded message. Elements
// alternate bar/space starting with a bar, and the parity holds globally
// across the whole stream: even indices are bars, odd indices are
// spaces. true means wide. Both renderers rely on this parity.
type Sequence []bool

// Bars returns the number of bar elements (even indices) in the stream.
// Every Code 39 character contributes five bars, so a message of n
// characters yields 5*(n+2) bars including the sentinels.
func (s Sequence) Bars() int {
	return (len(s) + 1) / 2
}

// Encode builds the element stream for input: the message is uppercased,
// bracketed with the sentinel, and each character's pattern is appended
// with a single narrow space element between adjacent characters.
//
// Encode assumes input has already passed Validate; that is the caller's
// contract, and callers must validate before uppercasing so the
// lowercase-rejection policy of Validate is preserved.
func Encode(input string) Sequence {
	msg := string(Sentinel) + strings.ToUpper(input) + string(Sentinel)

	seq := make(Sequence, 0, len(msg)*(PatternLength+1)-1)
	first := true
	for _, ch := range msg {
		if !first {
			seq = append(seq, false) // narrow inter-character gap
		}
		first = false

		p := table[ch]
		seq = append(seq, p[:]...)
	}
	return seq
}

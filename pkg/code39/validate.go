package code39

import (
	"github.com/linealabs/code39/pkg/errors"
)

// Validate checks every character of input against the supported
// repertoire, scanning runes left to right and failing on the first
// character without a symbol table entry. The sentinel counts as
// unsupported: it is reserved and not user-enterable.
//
// The reported position is a character index, not a byte offset.
// Empty input is valid and encodes to a sentinel-only barcode.
// Lowercase letters are rejected rather than case-folded, so data is
// never silently transformed before encoding.
func Validate(input string) error {
	pos := 0
	for _, ch := range input {
		if _, ok := table[ch]; !ok || ch == Sentinel {
			return errors.New(errors.ErrCodeInvalidCharacter,
				"unsupported character %q at position %d", ch, pos)
		}
		pos++
	}
	return nil
}

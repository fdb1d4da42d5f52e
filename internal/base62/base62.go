// Package base62 implements the alphabet, header characters, and
// bit-accumulation primitives that back the rpmss set-string wire
// format: a 62-symbol alphabet (digits, then A-Z, then a-z) where the
// two symbols at positions 30 and 31 ('U' and 'V') double as 5-bit
// "irregular" flush markers whenever the pending bits would otherwise
// need a 6-bit group with no representable symbol.
//
// This matches rpmss.c's bits2char table and flush loop, but
// the decode side trades the original's word2bits[65536] two-byte
// dispatch table for a simpler one-character-at-a-time reader, in
// place of the goto-heavy, word-dispatch original.
package base62

// Alphabet is the 62-symbol set-string character set. Position 30 is
// 'U' and position 31 is 'V', the two irregular-flush markers.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	CharU byte = 'U' // 5-bit irregular flush, value 30
	CharV byte = 'V' // 5-bit irregular flush, value 31
)

// charValue maps a byte to its alphabet position, or -1 if the byte is
// not part of the alphabet.
var charValue [256]int8

func init() {
	for i := range charValue {
		charValue[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		charValue[Alphabet[i]] = int8(i)
	}
}

// CharValue returns the alphabet position of c, or -1 if c is not a
// valid set-string character.
func CharValue(c byte) int8 {
	return charValue[c]
}

// BppChar and MChar implement the header character formulas:
// bpp-char = 'a' + (bpp-7), m-char = 'A' + (m-5). This is the
// wide-range variant, distinct from the original C code's
// 'a'+(bpp-7)/'a'+(m-7) single-alphabet-base scheme.
func BppChar(bpp int) byte {
	return byte('a' + (bpp - 7))
}

func MChar(m int) byte {
	return byte('A' + (m - 5))
}

// ParseBppChar inverts BppChar, returning (bpp, ok).
func ParseBppChar(c byte) (int, bool) {
	bpp := int(c) - 'a' + 7
	if bpp < 7 || bpp > 32 {
		return 0, false
	}
	return bpp, true
}

// ParseMChar inverts MChar, returning (m, ok).
func ParseMChar(c byte) (int, bool) {
	m := int(c) - 'A' + 5
	if m < 5 || m > 30 {
		return 0, false
	}
	return m, true
}

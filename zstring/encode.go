package zstring

import (
	"slices"
	"strings"
)

// WORD_LENGTH is the number of Z-characters in a version 1-3 dictionary key.
const WORD_LENGTH = 6

// shifts returns the single-character shifts into the upper and
// punctuation alphabets.
func shifts(version uint8) (upper uint8, punctuation uint8) {
	if version < 3 {
		return ZCHAR_SHIFT_UP, ZCHAR_SHIFT_DOWN
	}
	return ZCHAR_SHIFT_LOCK_UP, ZCHAR_SHIFT_LOCK_DOWN
}

// encodeCharacter appends the Z-characters for one input byte.
func encodeCharacter(zchars []uint8, c byte, version uint8, alphabet [3]string) []uint8 {
	upper, punctuation := shifts(version)

	switch {
	case c == ' ':
		return append(zchars, ZCHAR_SPACE)
	case c >= 'a' && c <= 'z':
		return append(zchars, ZCHAR_FIRST+(c-'a'))
	case c >= 'A' && c <= 'Z':
		return append(zchars, upper, ZCHAR_FIRST+(c-'A'))
	case c == '\n' && version < 2:
		return append(zchars, ZCHAR_NEWLINE)
	}

	index := strings.IndexByte(alphabet[ALPHABET_PUNCTUATION][1:], c)
	if index >= 0 {
		return append(zchars, punctuation, ZCHAR_FIRST+1+uint8(index))
	}

	return append(zchars, punctuation, ZCHAR_ESCAPE, (c>>5)&0x1f, c&0x1f)
}

// Encode converts ZSCII text to Z-characters for a story version.
// If length is positive the result is truncated, or padded with
// ZCHAR_SHIFT_LOCK_DOWN, to exactly length Z-characters.
func Encode(text string, version uint8, length int) (zchars []uint8) {
	alphabet := Alphabet(version)

	for n := range len(text) {
		if length > 0 && len(zchars) >= length {
			break
		}
		zchars = encodeCharacter(zchars, text[n], version, alphabet)
	}

	if length > 0 {
		for len(zchars) < length {
			zchars = append(zchars, ZCHAR_SHIFT_LOCK_DOWN)
		}
		zchars = zchars[:length]
	}

	return
}

// Pack packs Z-characters three to a word, padding the final word with
// ZCHAR_SHIFT_LOCK_DOWN and setting its terminator bit.
func Pack(zchars []uint8) (words []uint16) {
	zchars = slices.Clone(zchars)
	for len(zchars) == 0 || len(zchars)%3 != 0 {
		zchars = append(zchars, ZCHAR_SHIFT_LOCK_DOWN)
	}

	for n := 0; n < len(zchars); n += 3 {
		word := (uint16(zchars[n]&0x1f) << 10) |
			(uint16(zchars[n+1]&0x1f) << 5) |
			(uint16(zchars[n+2] & 0x1f))
		words = append(words, word)
	}

	words[len(words)-1] |= 0x8000

	return
}

// EncodeWord encodes an input word the way dictionary keys are encoded.
func EncodeWord(word string, version uint8) []uint16 {
	return Pack(Encode(word, version, WORD_LENGTH))
}

// Package zstring decodes and encodes the packed 5-bit text of a story.
//
// Each 16-bit word holds three Z-characters (bits 14-10, 9-5 and 4-0); the
// top bit marks the last word of a string. Z-characters 6-31 select from one
// of three alphabets, the others shift alphabets, start an abbreviation or
// start a 10-bit ZSCII escape.
package zstring

import (
	"slices"
)

// Alphabet indexes.
const (
	ALPHABET_LOWER       = 0
	ALPHABET_UPPER       = 1
	ALPHABET_PUNCTUATION = 2
)

// Special Z-characters.
const (
	ZCHAR_SPACE           = 0
	ZCHAR_NEWLINE         = 1
	ZCHAR_SHIFT_UP        = 2
	ZCHAR_SHIFT_DOWN      = 3
	ZCHAR_SHIFT_LOCK_UP   = 4
	ZCHAR_SHIFT_LOCK_DOWN = 5
	ZCHAR_ESCAPE          = 6 // ZSCII escape, in the punctuation alphabet only.
	ZCHAR_FIRST           = 6 // First Z-character printed from an alphabet.
)

// ZSCII codes.
const (
	ZSCII_NULL    = 0
	ZSCII_NEWLINE = 13
	ZSCII_SPACE   = 32
)

// Position 0 of the punctuation row is never printed; Z-character 6 there is
// the ZSCII escape.
var alphabetV1 = [3]string{
	"abcdefghijklmnopqrstuvwxyz",
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	" 0123456789.,!?_#'\"/\\<-:()",
}

var alphabetV2 = [3]string{
	"abcdefghijklmnopqrstuvwxyz",
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	" \n0123456789.,!?_#'\"/\\-:()",
}

// Alphabet returns the alphabet table used by a story version.
func Alphabet(version uint8) [3]string {
	if version < 2 {
		return alphabetV1
	}
	return alphabetV2
}

// extra is the default table of ZSCII codes 155 to 223.
var extra = []rune("äöüÄÖÜß»«ëïÿËÏáéíóúýÁÉÍÓÚÝàèìòùÀÈÌÒÙâêîôûÂÊÎÔÛåÅøØãñõÃÑÕæÆçÇþðÞÐ£œŒ¡¿")

const (
	ZSCII_EXTRA_FIRST = 155
	ZSCII_EXTRA_LAST  = 223
)

// Rune maps a ZSCII output code to a rune.
// ok is false for codes that produce no output.
func Rune(zscii uint16) (r rune, ok bool) {
	ok = true
	switch {
	case zscii == ZSCII_NULL:
		ok = false
	case zscii == ZSCII_NEWLINE, zscii == '\n':
		r = '\n'
	case zscii >= ZSCII_SPACE && zscii <= '~':
		r = rune(zscii)
	case zscii >= ZSCII_EXTRA_FIRST && zscii <= ZSCII_EXTRA_LAST:
		r = extra[zscii-ZSCII_EXTRA_FIRST]
	default:
		r = '?'
	}

	return
}

// FromRune maps an input rune to ZSCII, using '?' for unrepresentable runes.
func FromRune(r rune) (zscii uint8) {
	switch {
	case r == '\n':
		return ZSCII_NEWLINE
	case r >= ZSCII_SPACE && r <= '~':
		return uint8(r)
	}

	index := slices.Index(extra, r)
	if index < 0 {
		return '?'
	}

	return uint8(ZSCII_EXTRA_FIRST + index)
}

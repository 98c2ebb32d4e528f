package zstring

import (
	"strings"

	"github.com/ezrec/zmachine/memory"
)

// Decoder prints Z-strings stored in story memory.
type Decoder struct {
	Memory        *memory.Memory // Story memory.
	Version       uint8          // Story version; selects alphabets and shift rules.
	Abbreviations uint32         // Abbreviation table address.
}

type decodeState int

const (
	decodeNormal decodeState = iota
	decodeAbbreviation
	decodeZsciiHigh
	decodeZsciiLow
)

// decoding is the state of one string (or abbreviation) being decoded.
type decoding struct {
	dec          *Decoder
	out          *strings.Builder
	abbreviation bool // Inside an abbreviation; abbreviations do not nest.

	alphabet [3]string
	previous int
	current  int

	state        decodeState
	intermediate uint16
}

// Decode decodes the string at address. next is the address following the
// string's terminating word. On error, text holds the output produced before
// the failure.
func (dec *Decoder) Decode(address uint32) (text string, next uint32, err error) {
	var out strings.Builder

	next, err = dec.decode(&out, address, false)
	text = out.String()

	return
}

// Abbreviation returns the address of abbreviation index.
func (dec *Decoder) Abbreviation(index uint16) (address uint32, err error) {
	word, err := dec.Memory.Word(dec.Abbreviations + 2*uint32(index))
	if err != nil {
		return
	}

	address = 2 * uint32(word)
	return
}

func (dec *Decoder) decode(out *strings.Builder, address uint32, abbreviation bool) (next uint32, err error) {
	ds := &decoding{
		dec:          dec,
		out:          out,
		abbreviation: abbreviation,
		alphabet:     Alphabet(dec.Version),
		previous:     ALPHABET_LOWER,
		current:      ALPHABET_LOWER,
	}

	next = address
	for done := false; !done; {
		var word uint16
		word, err = dec.Memory.Word(next)
		if err != nil {
			return
		}
		next += 2
		done = (word & 0x8000) != 0

		for _, shift := range [...]int{10, 5, 0} {
			err = ds.step(uint8((word >> shift) & 0x1f))
			if err != nil {
				return
			}
		}
	}

	if abbreviation && ds.state != decodeNormal {
		err = ErrAbbreviationIncomplete
	}

	return
}

func (ds *decoding) emit(zscii uint16) {
	r, ok := Rune(zscii)
	if ok {
		ds.out.WriteRune(r)
	}
}

func (ds *decoding) step(c uint8) (err error) {
	switch ds.state {
	case decodeNormal:
		if ds.dec.Version < 3 {
			err = ds.characterV2(c)
		} else {
			err = ds.characterV3(c)
		}
	case decodeAbbreviation:
		ds.state = decodeNormal
		var address uint32
		address, err = ds.dec.Abbreviation(ds.intermediate + uint16(c))
		if err != nil {
			return
		}
		_, err = ds.dec.decode(ds.out, address, true)
	case decodeZsciiHigh:
		ds.state = decodeZsciiLow
		ds.intermediate = uint16(c) << 5
	case decodeZsciiLow:
		ds.state = decodeNormal
		ds.emit(ds.intermediate | uint16(c))
	}

	return
}

func shiftUp(alphabet int) int {
	return (alphabet + 1) % 3
}

func shiftDown(alphabet int) int {
	return (alphabet + 2) % 3
}

// printable emits an alphabet character, or starts a ZSCII escape.
func (ds *decoding) printable(c uint8) {
	if ds.current == ALPHABET_PUNCTUATION && c == ZCHAR_ESCAPE {
		ds.state = decodeZsciiHigh
		return
	}

	ds.emit(uint16(ds.alphabet[ds.current][c-ZCHAR_FIRST]))
}

// characterV2 decodes for versions 1 and 2, which have temporary shifts
// (2, 3) and shift locks (4, 5).
func (ds *decoding) characterV2(c uint8) (err error) {
	switch c {
	case ZCHAR_SPACE:
		ds.emit(ZSCII_SPACE)
	case ZCHAR_NEWLINE:
		switch {
		case ds.dec.Version < 2:
			ds.emit(ZSCII_NEWLINE)
		case ds.abbreviation:
			err = ErrNestedAbbreviation
		default:
			ds.state = decodeAbbreviation
			ds.intermediate = 0
		}
	case ZCHAR_SHIFT_UP:
		ds.previous = ds.current
		ds.current = shiftUp(ds.current)
	case ZCHAR_SHIFT_DOWN:
		ds.previous = ds.current
		ds.current = shiftDown(ds.current)
	case ZCHAR_SHIFT_LOCK_UP:
		ds.previous = shiftUp(ds.current)
		ds.current = ds.previous
	case ZCHAR_SHIFT_LOCK_DOWN:
		ds.previous = shiftDown(ds.current)
		ds.current = ds.previous
	default:
		ds.printable(c)
		ds.current = ds.previous
	}

	return
}

// characterV3 decodes for version 3: 1-3 are abbreviations, 4 and 5 shift
// for one character only.
func (ds *decoding) characterV3(c uint8) (err error) {
	switch {
	case c == ZCHAR_SPACE:
		ds.emit(ZSCII_SPACE)
	case c < ZCHAR_SHIFT_LOCK_UP:
		if ds.abbreviation {
			err = ErrNestedAbbreviation
			return
		}
		ds.state = decodeAbbreviation
		ds.intermediate = uint16(c-1) << 5
	case c == ZCHAR_SHIFT_LOCK_UP:
		ds.current = ALPHABET_UPPER
	case c == ZCHAR_SHIFT_LOCK_DOWN:
		ds.current = ALPHABET_PUNCTUATION
	default:
		ds.printable(c)
		ds.current = ALPHABET_LOWER
	}

	return
}

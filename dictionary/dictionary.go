// Package dictionary looks up input words in the story dictionary.
//
// The dictionary is laid out as:
//
//	n          separator count
//	n bytes    separator characters
//	1 byte     entry length
//	1 word     entry count
//	entries    packed key, then story-specific data
package dictionary

import (
	"iter"
	"strings"

	"github.com/ezrec/zmachine/memory"
	"github.com/ezrec/zmachine/zstring"
)

// Dictionary is a view of a dictionary table in story memory.
type Dictionary struct {
	Memory  *memory.Memory // Story memory.
	Address uint32         // Dictionary table address.
	Version uint8          // Story version; selects the key encoding.
}

// Word is one word split out of an input line.
type Word struct {
	Text  string
	Start int // Zero based byte offset in the line.
}

// Token is a tokenized input word.
type Token struct {
	Address uint16 // Dictionary entry address, 0 if not recognised.
	Length  uint8  // Length of the word text.
	Start   uint8  // One based offset of the word in the line.
}

// Separators returns the word separator characters.
func (dict *Dictionary) Separators() (separators string, err error) {
	count, err := dict.Memory.Byte(dict.Address)
	if err != nil {
		return
	}

	var sb strings.Builder
	for n := range uint32(count) {
		var c uint8
		c, err = dict.Memory.Byte(dict.Address + 1 + n)
		if err != nil {
			return
		}
		sb.WriteByte(c)
	}

	separators = sb.String()
	return
}

// entries returns the entry table address, entry length and count.
func (dict *Dictionary) entries() (address uint32, length uint8, count uint16, err error) {
	separators, err := dict.Memory.Byte(dict.Address)
	if err != nil {
		return
	}

	at := dict.Address + 1 + uint32(separators)
	length, err = dict.Memory.Byte(at)
	if err != nil {
		return
	}

	count, err = dict.Memory.Word(at + 1)
	if err != nil {
		return
	}

	address = at + 3
	return
}

// Len returns the number of dictionary entries.
func (dict *Dictionary) Len() (count int, err error) {
	_, _, n, err := dict.entries()
	count = int(n)
	return
}

// Entries iterates over the entry addresses and their keys.
// Iteration stops early on a memory error.
func (dict *Dictionary) Entries() iter.Seq2[uint16, []uint16] {
	return func(yield func(uint16, []uint16) bool) {
		address, length, count, err := dict.entries()
		if err != nil {
			return
		}
		for range count {
			key := make([]uint16, 0, 2)
			for n := range uint32(2) {
				word, err := dict.Memory.Word(address + 2*n)
				if err != nil {
					return
				}
				key = append(key, word)
			}
			if !yield(uint16(address), key) {
				return
			}
			address += uint32(length)
		}
	}
}

// Lookup linearly searches for an entry whose leading words match key.
// An unknown key returns address 0.
func (dict *Dictionary) Lookup(key []uint16) (address uint16, err error) {
	at, length, count, err := dict.entries()
	if err != nil {
		return
	}

	if int(length) < 2*len(key) {
		err = ErrEntryLength
		return
	}

	for range count {
		match := true
		for n, want := range key {
			var word uint16
			word, err = dict.Memory.Word(at + 2*uint32(n))
			if err != nil {
				return
			}
			if word != want {
				match = false
				break
			}
		}
		if match {
			address = uint16(at)
			return
		}
		at += uint32(length)
	}

	return
}

// Split breaks a line into words. Spaces and NUL end a word. A separator
// ends the previous word and is also a word of its own.
func Split(line string, separators string) (words []Word) {
	start := 0
	flush := func(end int) {
		if end > start {
			words = append(words, Word{Text: line[start:end], Start: start})
		}
	}

	for n := range len(line) {
		c := line[n]
		switch {
		case c == ' ' || c == 0:
			flush(n)
			start = n + 1
		case strings.IndexByte(separators, c) >= 0:
			flush(n)
			words = append(words, Word{Text: line[n : n+1], Start: n})
			start = n + 1
		}
	}
	flush(len(line))

	return
}

// Tokenize splits a line with the dictionary's separators and looks up
// each word.
func (dict *Dictionary) Tokenize(line string) (tokens []Token, err error) {
	separators, err := dict.Separators()
	if err != nil {
		return
	}

	for _, word := range Split(line, separators) {
		var address uint16
		address, err = dict.Lookup(zstring.EncodeWord(word.Text, dict.Version))
		if err != nil {
			return
		}
		tokens = append(tokens, Token{
			Address: address,
			Length:  uint8(len(word.Text)),
			Start:   uint8(1 + word.Start),
		})
	}

	return
}

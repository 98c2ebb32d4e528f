// Package storytest builds small story images for tests.
package storytest

import (
	"encoding/binary"
	"slices"

	"github.com/ezrec/zmachine/memory"
	"github.com/ezrec/zmachine/zstring"
)

// Fixed layout of a built story.
const (
	ABBREVIATIONS = 0x0040 // 96 abbreviation words.
	GLOBALS       = 0x0100 // 240 global words.
	OBJECTS       = 0x02e0 // Default properties, then object entries.
	PROPERTIES    = 0x0600 // Property tables.
	DICTIONARY    = 0x0a00
	STRINGS       = 0x0c00
	CODE          = 0x1000
	SIZE          = 0x2000

	ENTRY_LENGTH = 7 // Dictionary entry: 4 byte key and 3 data bytes.
)

// Property is one property of a built object.
type Property struct {
	Number uint8
	Data   []byte
}

// Object is a built object entry.
type Object struct {
	Attributes []uint8
	Parent     uint8
	Sibling    uint8
	Child      uint8
	Name       string
	Properties []Property // Written in the order given.
}

// Builder assembles a story image.
type Builder struct {
	Version uint8

	data       []byte
	objects    int
	properties uint32
	strings    uint32
	code       uint32
	pc         uint32
	dictionary bool
}

// New returns an empty story builder.
func New(version uint8) (b *Builder) {
	b = &Builder{
		Version:    version,
		data:       make([]byte, SIZE),
		properties: PROPERTIES,
		strings:    STRINGS,
		code:       CODE,
		pc:         CODE,
	}
	return
}

func (b *Builder) SetByte(address uint32, value uint8) {
	b.data[address] = value
}

func (b *Builder) SetWord(address uint32, value uint16) {
	binary.BigEndian.PutUint16(b.data[address:], value)
}

func (b *Builder) setWords(address uint32, words []uint16) uint32 {
	for _, word := range words {
		b.SetWord(address, word)
		address += 2
	}
	return address
}

// Global sets the initial value of a global variable (16..255).
func (b *Builder) Global(variable uint8, value uint16) {
	b.SetWord(GLOBALS+2*uint32(variable-16), value)
}

// Default sets a default property value (1..31).
func (b *Builder) Default(property uint8, value uint16) {
	b.SetWord(OBJECTS+2*uint32(property-1), value)
}

// String stores an encoded Z-string and returns its address.
func (b *Builder) String(text string) (address uint32) {
	address = b.strings
	b.strings = b.setWords(address, zstring.Pack(zstring.Encode(text, b.Version, 0)))
	return
}

// Abbreviation stores text as abbreviation index (0..95).
func (b *Builder) Abbreviation(index int, text string) {
	address := b.String(text)
	b.SetWord(ABBREVIATIONS+2*uint32(index), uint16(address/2))
}

// Object appends the next object entry and returns its number.
func (b *Builder) Object(obj Object) (number uint16) {
	b.objects++
	number = uint16(b.objects)

	entry := OBJECTS + 31*2 + 9*uint32(number-1)
	for _, attr := range obj.Attributes {
		b.data[entry+uint32(attr>>3)] |= 0x80 >> (attr & 7)
	}
	b.data[entry+4] = obj.Parent
	b.data[entry+5] = obj.Sibling
	b.data[entry+6] = obj.Child
	b.SetWord(entry+7, uint16(b.properties))

	at := b.properties
	var name []uint16
	if len(obj.Name) > 0 {
		name = zstring.Pack(zstring.Encode(obj.Name, b.Version, 0))
	}
	b.data[at] = uint8(len(name))
	at = b.setWords(at+1, name)
	for _, prop := range obj.Properties {
		b.data[at] = uint8(len(prop.Data)-1)<<5 | prop.Number
		at++
		at += uint32(copy(b.data[at:], prop.Data))
	}
	b.data[at] = 0
	b.properties = at + 1

	return
}

// Dictionary writes the dictionary with the given word separators.
func (b *Builder) Dictionary(separators string, words ...string) {
	b.dictionary = true

	keys := make([][]uint16, len(words))
	for n, word := range words {
		keys[n] = zstring.EncodeWord(word, b.Version)
	}
	slices.SortFunc(keys, slices.Compare)
	keys = slices.CompactFunc(keys, slices.Equal)

	at := uint32(DICTIONARY)
	b.data[at] = uint8(len(separators))
	at++
	at += uint32(copy(b.data[at:], separators))
	b.data[at] = ENTRY_LENGTH
	b.SetWord(at+1, uint16(len(keys)))
	at += 3
	for _, key := range keys {
		b.setWords(at, key)
		at += ENTRY_LENGTH
	}
}

// WordAddress returns the dictionary entry address of a word, or 0.
func (b *Builder) WordAddress(word string) uint16 {
	at := uint32(DICTIONARY)
	at += 1 + uint32(b.data[at])
	count := binary.BigEndian.Uint16(b.data[at+1:])
	at += 3
	key := zstring.EncodeWord(word, b.Version)
	for range count {
		if binary.BigEndian.Uint16(b.data[at:]) == key[0] &&
			binary.BigEndian.Uint16(b.data[at+2:]) == key[1] {
			return uint16(at)
		}
		at += ENTRY_LENGTH
	}
	return 0
}

// Code appends raw instruction bytes to the code area and returns
// their address.
func (b *Builder) Code(code ...byte) (address uint32) {
	address = b.code
	b.code += uint32(copy(b.data[b.code:], code))
	return
}

// Main appends code and makes it the initial program counter.
func (b *Builder) Main(code ...byte) (address uint32) {
	address = b.Code(code...)
	b.pc = address
	return
}

// Routine appends a routine header with the given local initial values,
// then its code, and returns the packed routine address.
func (b *Builder) Routine(locals []uint16, code ...byte) (packed uint16) {
	if b.code%2 != 0 {
		b.code++
	}
	address := b.code
	b.data[b.code] = uint8(len(locals))
	b.code = b.setWords(b.code+1, locals)
	b.Code(code...)
	packed = uint16(address / 2)
	return
}

// Bytes returns the finished story image with the header, file size and
// checksum filled in.
func (b *Builder) Bytes() (story []byte) {
	if !b.dictionary {
		b.Dictionary("")
	}

	b.data[memory.HEADER_VERSION] = b.Version
	b.SetWord(memory.HEADER_HIGH_MEMORY, CODE)
	b.SetWord(memory.HEADER_PC, uint16(b.pc))
	b.SetWord(memory.HEADER_DICTIONARY, DICTIONARY)
	b.SetWord(memory.HEADER_OBJECT_TABLE, OBJECTS)
	b.SetWord(memory.HEADER_GLOBALS, GLOBALS)
	b.SetWord(memory.HEADER_STATIC_MEMORY, DICTIONARY)
	copy(b.data[memory.HEADER_SERIAL:], "261016")
	b.SetWord(memory.HEADER_ABBREVIATIONS, ABBREVIATIONS)
	b.SetWord(memory.HEADER_FILE_SIZE, SIZE/2)

	var sum uint16
	for _, v := range b.data[memory.HEADER_SIZE:] {
		sum += uint16(v)
	}
	b.SetWord(memory.HEADER_CHECKSUM, sum)

	story = slices.Clone(b.data)
	return
}

// Memory returns the finished story as memory.
func (b *Builder) Memory() *memory.Memory {
	return memory.New(b.Bytes())
}

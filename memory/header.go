package memory

import (
	"fmt"
	"iter"
)

// Header field offsets.
const (
	HEADER_VERSION       = 0x00
	HEADER_FLAGS         = 0x01
	HEADER_RELEASE       = 0x02
	HEADER_HIGH_MEMORY   = 0x04
	HEADER_PC            = 0x06
	HEADER_DICTIONARY    = 0x08
	HEADER_OBJECT_TABLE  = 0x0a
	HEADER_GLOBALS       = 0x0c
	HEADER_STATIC_MEMORY = 0x0e
	HEADER_SERIAL        = 0x12
	HEADER_ABBREVIATIONS = 0x18
	HEADER_FILE_SIZE     = 0x1a
	HEADER_CHECKSUM      = 0x1c

	HEADER_SIZE = 0x40 // Size of the header; the checksum starts here.
)

// Header holds the configuration read once from the start of the story.
type Header struct {
	Version       uint8   // Story format version.
	Flags         uint8   // Flags 1.
	Release       uint16  // Release number.
	HighMemory    uint16  // Base of high memory.
	Pc            uint16  // Initial program counter.
	Dictionary    uint16  // Dictionary table address.
	ObjectTable   uint16  // Object table address.
	Globals       uint16  // Global variable table address.
	StaticMemory  uint16  // Base of static memory.
	Serial        [6]byte // Serial code, usually a date.
	Abbreviations uint16  // Abbreviation table address.
	FileSize      uint16  // File size, divided by 2.
	Checksum      uint16  // Checksum of bytes past the header.
}

// ParseHeader reads the header fields from memory.
func ParseHeader(mem *Memory) (hdr Header, err error) {
	if mem.Len() < HEADER_SIZE {
		err = ErrHeaderShort
		return
	}

	word := func(offset uint32) uint16 {
		value, _ := mem.Word(offset)
		return value
	}

	hdr.Version, _ = mem.Byte(HEADER_VERSION)
	hdr.Flags, _ = mem.Byte(HEADER_FLAGS)
	hdr.Release = word(HEADER_RELEASE)
	hdr.HighMemory = word(HEADER_HIGH_MEMORY)
	hdr.Pc = word(HEADER_PC)
	hdr.Dictionary = word(HEADER_DICTIONARY)
	hdr.ObjectTable = word(HEADER_OBJECT_TABLE)
	hdr.Globals = word(HEADER_GLOBALS)
	hdr.StaticMemory = word(HEADER_STATIC_MEMORY)
	copy(hdr.Serial[:], mem.data[HEADER_SERIAL:HEADER_SERIAL+len(hdr.Serial)])
	hdr.Abbreviations = word(HEADER_ABBREVIATIONS)
	hdr.FileSize = word(HEADER_FILE_SIZE)
	hdr.Checksum = word(HEADER_CHECKSUM)

	return
}

// Supported is true for the story versions this machine executes.
func (hdr Header) Supported() bool {
	return hdr.Version >= 1 && hdr.Version <= 3
}

// FileLength returns the declared story length in bytes.
func (hdr Header) FileLength() uint32 {
	return 2 * uint32(hdr.FileSize)
}

// Verify compares the declared checksum against the story contents.
func (hdr Header) Verify(mem *Memory) (ok bool, err error) {
	sum, err := mem.Checksum(HEADER_SIZE, hdr.FileLength())
	if err != nil {
		return
	}

	ok = sum == hdr.Checksum
	return
}

// Fields returns the header as printable name, value pairs.
func (hdr Header) Fields() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		fields := []struct {
			name  string
			value string
		}{
			{"version", fmt.Sprintf("%d", hdr.Version)},
			{"release", fmt.Sprintf("%d", hdr.Release)},
			{"serial", string(hdr.Serial[:])},
			{"pc", fmt.Sprintf("0x%04x", hdr.Pc)},
			{"high memory", fmt.Sprintf("0x%04x", hdr.HighMemory)},
			{"static memory", fmt.Sprintf("0x%04x", hdr.StaticMemory)},
			{"dictionary", fmt.Sprintf("0x%04x", hdr.Dictionary)},
			{"objects", fmt.Sprintf("0x%04x", hdr.ObjectTable)},
			{"globals", fmt.Sprintf("0x%04x", hdr.Globals)},
			{"abbreviations", fmt.Sprintf("0x%04x", hdr.Abbreviations)},
			{"file length", fmt.Sprintf("%d", hdr.FileLength())},
			{"checksum", fmt.Sprintf("0x%04x", hdr.Checksum)},
		}
		for _, field := range fields {
			if !yield(field.name, field.value) {
				return
			}
		}
	}
}

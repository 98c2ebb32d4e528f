// Package memory holds the byte addressable story image of a Z-machine.
//
// Every table the machine uses (objects, properties, dictionary, globals,
// abbreviations) is a view computed from header offsets into the single
// buffer owned by Memory, so a write through one view is immediately
// visible through all others.
package memory

// Memory is the story image. It is never resized after creation.
type Memory struct {
	data []byte
}

// New creates a Memory from a copy of the story image.
func New(story []byte) (mem *Memory) {
	mem = &Memory{
		data: make([]byte, len(story)),
	}
	copy(mem.data, story)

	return
}

// Len returns the size of memory in bytes.
func (mem *Memory) Len() int {
	return len(mem.data)
}

// check verifies that [address, address+size) is inside memory.
func (mem *Memory) check(address uint32, size uint32) (err error) {
	if uint64(address)+uint64(size) > uint64(len(mem.data)) {
		err = ErrAddress(address)
	}
	return
}

// Byte reads the byte at address.
func (mem *Memory) Byte(address uint32) (value uint8, err error) {
	err = mem.check(address, 1)
	if err != nil {
		return
	}

	value = mem.data[address]
	return
}

// Word reads the big-endian word at address.
func (mem *Memory) Word(address uint32) (value uint16, err error) {
	err = mem.check(address, 2)
	if err != nil {
		return
	}

	value = (uint16(mem.data[address]) << 8) | uint16(mem.data[address+1])
	return
}

// SetByte writes the byte at address.
func (mem *Memory) SetByte(address uint32, value uint8) (err error) {
	err = mem.check(address, 1)
	if err != nil {
		return
	}

	mem.data[address] = value
	return
}

// SetWord writes value as a big-endian word at address.
func (mem *Memory) SetWord(address uint32, value uint16) (err error) {
	err = mem.check(address, 2)
	if err != nil {
		return
	}

	mem.data[address] = uint8(value >> 8)
	mem.data[address+1] = uint8(value)
	return
}

// Checksum sums the bytes in [start, end), modulo 0x10000.
func (mem *Memory) Checksum(start uint32, end uint32) (sum uint16, err error) {
	if end < start {
		return
	}

	err = mem.check(start, end-start)
	if err != nil {
		return
	}

	for _, b := range mem.data[start:end] {
		sum += uint16(b)
	}

	return
}

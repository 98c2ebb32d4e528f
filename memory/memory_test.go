package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	mem := New([]byte{0x12, 0x34, 0x56})

	value, err := mem.Word(0)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), value)

	value, err = mem.Word(1)
	assert.NoError(err)
	assert.Equal(uint16(0x3456), value)

	err = mem.SetWord(1, 0xabcd)
	assert.NoError(err)

	b, err := mem.Byte(1)
	assert.NoError(err)
	assert.Equal(uint8(0xab), b)
	b, err = mem.Byte(2)
	assert.NoError(err)
	assert.Equal(uint8(0xcd), b)
}

func TestMemory_Copy(t *testing.T) {
	assert := assert.New(t)

	story := []byte{1, 2, 3}
	mem := New(story)

	assert.NoError(mem.SetByte(0, 9))
	assert.Equal(byte(1), story[0])
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := New(make([]byte, 4))

	table := [](struct {
		name string
		call func() error
	}){
		{"byte", func() error { _, err := mem.Byte(4); return err }},
		{"word", func() error { _, err := mem.Word(3); return err }},
		{"set_byte", func() error { return mem.SetByte(4, 0) }},
		{"set_word", func() error { return mem.SetWord(3, 0) }},
		{"huge", func() error { _, err := mem.Word(0xffffffff); return err }},
	}

	for _, entry := range table {
		err := entry.call()
		assert.Error(err, entry.name)
		assert.True(errors.Is(err, ErrAddress(0)), entry.name)
	}

	_, err := mem.Word(2)
	assert.NoError(err)
}

func TestMemory_Checksum(t *testing.T) {
	assert := assert.New(t)

	data := make([]byte, 0x200)
	for n := range data {
		data[n] = 0xff
	}
	mem := New(data)

	sum, err := mem.Checksum(0x40, 0x200)
	assert.NoError(err)
	assert.Equal(uint16(((0x200-0x40)*0xff)&0xffff), sum)

	sum, err = mem.Checksum(0, 0x200)
	assert.NoError(err)
	assert.Equal(uint16((0x200*0xff)&0xffff), sum)

	_, err = mem.Checksum(0x40, 0x201)
	assert.Error(err)
}

func TestHeader(t *testing.T) {
	assert := assert.New(t)

	data := make([]byte, 0x80)
	data[HEADER_VERSION] = 3
	data[HEADER_PC] = 0x12
	data[HEADER_PC+1] = 0x34
	data[HEADER_DICTIONARY+1] = 0x50
	data[HEADER_OBJECT_TABLE+1] = 0x60
	data[HEADER_GLOBALS+1] = 0x70
	data[HEADER_ABBREVIATIONS+1] = 0x42
	data[HEADER_FILE_SIZE+1] = 0x40
	copy(data[HEADER_SERIAL:], "861231")
	data[0x40] = 0x05
	data[0x7f] = 0x06
	data[HEADER_CHECKSUM+1] = 0x0b

	mem := New(data)
	hdr, err := ParseHeader(mem)
	assert.NoError(err)

	assert.Equal(uint8(3), hdr.Version)
	assert.True(hdr.Supported())
	assert.Equal(uint16(0x1234), hdr.Pc)
	assert.Equal(uint16(0x50), hdr.Dictionary)
	assert.Equal(uint16(0x60), hdr.ObjectTable)
	assert.Equal(uint16(0x70), hdr.Globals)
	assert.Equal(uint16(0x42), hdr.Abbreviations)
	assert.Equal(uint32(0x80), hdr.FileLength())
	assert.Equal("861231", string(hdr.Serial[:]))

	ok, err := hdr.Verify(mem)
	assert.NoError(err)
	assert.True(ok)

	assert.NoError(mem.SetByte(0x41, 1))
	ok, err = hdr.Verify(mem)
	assert.NoError(err)
	assert.False(ok)

	fields := map[string]string{}
	for name, value := range hdr.Fields() {
		fields[name] = value
	}
	assert.Equal("3", fields["version"])
	assert.Equal("0x1234", fields["pc"])
}

func TestHeader_Versions(t *testing.T) {
	assert := assert.New(t)

	for version := range 9 {
		hdr := Header{Version: uint8(version)}
		assert.Equal(version >= 1 && version <= 3, hdr.Supported(), version)
	}
}

func TestHeader_Short(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseHeader(New(make([]byte, 0x3f)))
	assert.ErrorIs(err, ErrHeaderShort)
}

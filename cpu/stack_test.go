package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	_, ok := s.Peek()
	assert.False(ok)

	for _, value := range []uint16{0x1234, 0xabcd, 0x0000} {
		s.Push(value)
	}
	assert.Equal([]uint16{0x1234, 0xabcd, 0x0000}, s.Data)

	top, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint16(0), top)
	assert.Len(s.Data, 3)

	var popped []uint16
	for value, ok := s.Pop(); ok; value, ok = s.Pop() {
		popped = append(popped, value)
	}
	assert.Equal([]uint16{0x0000, 0xabcd, 0x1234}, popped)
	assert.True(s.Empty())
}

func TestStack_Capacity(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}

	for i := 0; i < STACK_LIMIT; i++ {
		assert.False(s.Full())
		s.Push(uint16(i))
	}

	assert.True(s.Full())
	assert.Equal(STACK_LIMIT, len(s.Data))

	s.Reset()
	assert.True(s.Empty())
}

func TestFrames(t *testing.T) {
	assert := assert.New(t)

	fs := &Frames{}
	fs.Reset()
	assert.Equal(1, fs.Depth())

	_, ok := fs.Pop()
	assert.False(ok, "main frame stays")

	fs.Push(Frame{ReturnAddress: 0x1234, Store: 3, Locals: []uint16{1, 2}})
	assert.Equal(2, fs.Depth())
	fs.Top().Stack.Push(7)
	fs.Top().Locals[0] = 9

	frame, ok := fs.Pop()
	assert.True(ok)
	assert.Equal(uint32(0x1234), frame.ReturnAddress)
	assert.Equal(uint8(3), frame.Store)
	assert.Equal([]uint16{9, 2}, frame.Locals)
	assert.Equal([]uint16{7}, frame.Stack.Data)
	assert.Equal(1, fs.Depth())

	fs.Push(Frame{})
	fs.Reset()
	assert.Equal(1, fs.Depth())
	assert.True(fs.Top().Stack.Empty())
}

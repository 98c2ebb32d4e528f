package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/zmachine/internal/storytest"
)

func FuzzCpu(f *testing.F) {
	for opcode := range 0x100 {
		f.Add([]byte{uint8(opcode), 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
		f.Add([]byte{uint8(opcode), 0x55, 0x10, 0x00, 0x10, 0x01, 0xc0, 0x00})
	}

	f.Fuzz(func(t *testing.T, code []byte) {
		assert := assert.New(t)

		if len(code) > 32 {
			code = code[:32]
		}

		b := storytest.New(3)
		b.Dictionary(".,", "take", "lamp")
		b.Object(storytest.Object{
			Name:       "lamp",
			Attributes: []uint8{3},
			Properties: []storytest.Property{{Number: 5, Data: []byte{0x12, 0x34}}},
		})
		b.Global(0x10, 1)
		b.Global(0x11, 0x0900)

		cp, _ := machine(b, code...)
		start := cp.Pc

		err := cp.Tick()

		code_str := fmt.Sprintf("% x: %v", code, cp.Instruction)

		assert.Equal(start, cp.Instruction.Address, code_str)
		assert.LessOrEqual(len(cp.Instruction.Operands), 4, code_str)

		if err != nil {
			assert.False(cp.Running, code_str)
			assert.Equal(0, cp.Ticks, code_str)
			return
		}

		assert.Equal(1, cp.Ticks, code_str)
		if !cp.Running {
			assert.Equal("quit", cp.Instruction.Operation().Name, code_str)
			return
		}

		assert.NotEqual(uint32(0), cp.Pc, code_str)
	})
}

package cpu

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/ezrec/zmachine/dictionary"
	zio "github.com/ezrec/zmachine/io"
	"github.com/ezrec/zmachine/memory"
	"github.com/ezrec/zmachine/object"
	"github.com/ezrec/zmachine/zstring"
)

// Keyboard is the line input collaborator.
type Keyboard zio.Keyboard

var log = commonlog.GetLogger("zmachine.cpu")

// Cpu is the machine state for one loaded story.
type Cpu struct {
	Verbose bool // Set to enable instruction tracing.

	Memory     *memory.Memory         // Story memory.
	Header     memory.Header          // Header read at load.
	Objects    *object.Table          // Object table view.
	Dictionary *dictionary.Dictionary // Dictionary view.
	Text       *zstring.Decoder       // Z-string decoder.
	Random     *Random                // Source for the random instruction.

	Screen   io.Writer // Story text output.
	Keyboard Keyboard  // Story text input.

	Pc          uint32      // Program counter.
	Frames      Frames      // Call stack.
	Running     bool        // Cleared by quit, end of input, or a fatal error.
	Ticks       int         // Instructions executed.
	Instruction Instruction // Last decoded instruction.
}

// NewCpu creates a processor for story memory.
func NewCpu(mem *memory.Memory) (cpu *Cpu, err error) {
	hdr, err := memory.ParseHeader(mem)
	if err != nil {
		return
	}

	cpu = &Cpu{
		Memory: mem,
		Header: hdr,
		Objects: &object.Table{
			Memory:  mem,
			Address: uint32(hdr.ObjectTable),
		},
		Dictionary: &dictionary.Dictionary{
			Memory:  mem,
			Address: uint32(hdr.Dictionary),
			Version: hdr.Version,
		},
		Text: &zstring.Decoder{
			Memory:        mem,
			Version:       hdr.Version,
			Abbreviations: uint32(hdr.Abbreviations),
		},
		Random: NewRandom(0),
		Screen: io.Discard,
	}

	cpu.Reset()

	return
}

// Reset the processor to the story's entry point with only the main frame.
// Memory is not restored.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Debugf("reset")
	}

	cpu.Pc = uint32(cpu.Header.Pc)
	cpu.Frames.Reset()
	cpu.Running = cpu.Header.Supported()
	cpu.Ticks = 0
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		return
	}

	ins, err := cpu.Decode()
	cpu.Instruction = ins
	if err != nil {
		cpu.Running = false
		return
	}

	op := ins.Operation()

	if cpu.Verbose {
		log.Debugf("%05x: %v", ins.Address, ins)
	}

	switch {
	case op.Exec == nil:
		err = ErrIllegal(ins.Opcode)
	case len(ins.Operands) < op.Args:
		err = fmt.Errorf("%w: %w", ErrIllegal(ins.Opcode), ErrOperands)
	default:
		err = op.Exec(cpu, ins.Operands)
	}
	if err != nil {
		cpu.Running = false
		return
	}

	cpu.Ticks++

	return
}

func (cpu *Cpu) fetchByte() (value uint8, err error) {
	value, err = cpu.Memory.Byte(cpu.Pc)
	if err != nil {
		return
	}

	cpu.Pc++
	return
}

func (cpu *Cpu) fetchWord() (value uint16, err error) {
	value, err = cpu.Memory.Word(cpu.Pc)
	if err != nil {
		return
	}

	cpu.Pc += 2
	return
}

// setPc moves the program counter. Address 0 is never a valid target.
func (cpu *Cpu) setPc(address uint32) (err error) {
	if address == 0 {
		err = ErrPcZero
		return
	}

	cpu.Pc = address
	return
}

// store writes value to the variable named by the store byte.
func (cpu *Cpu) store(value uint16) (err error) {
	variable, err := cpu.fetchByte()
	if err != nil {
		return
	}

	err = cpu.SetVariable(variable, value)
	return
}

// branch reads the branch bytes and branches if cond matches the branch
// sense. Offsets 0 and 1 return false or true from the current routine.
func (cpu *Cpu) branch(cond bool) (err error) {
	first, err := cpu.fetchByte()
	if err != nil {
		return
	}

	onTrue := (first & 0x80) != 0

	var offset int32
	if (first & 0x40) != 0 {
		offset = int32(first & 0x3f)
	} else {
		var second uint8
		second, err = cpu.fetchByte()
		if err != nil {
			return
		}
		offset = int32(uint16(first&0x3f)<<8 | uint16(second))
		offset = (offset ^ 0x2000) - 0x2000
	}

	if cond != onTrue {
		return
	}

	switch offset {
	case 0, 1:
		err = cpu.ret(uint16(offset))
	default:
		err = cpu.setPc(uint32(int32(cpu.Pc) + offset - 2))
	}

	return
}

// call enters the routine at a packed address. The store byte follows the
// operands. Calling address 0 stores 0 without entering a routine.
func (cpu *Cpu) call(packed uint16, args []uint16) (err error) {
	variable, err := cpu.fetchByte()
	if err != nil {
		return
	}

	if packed == 0 {
		err = cpu.SetVariable(variable, 0)
		return
	}

	address := 2 * uint32(packed)
	count, err := cpu.Memory.Byte(address)
	if err != nil {
		return
	}
	if count > LOCALS_LIMIT {
		err = ErrLocals
		return
	}
	address++

	locals := make([]uint16, count)
	for n := range locals {
		locals[n], err = cpu.Memory.Word(address)
		if err != nil {
			return
		}
		address += 2
	}
	copy(locals, args)

	if cpu.Verbose {
		log.Debugf("call %05x %v", 2*uint32(packed), locals)
	}

	cpu.Frames.Push(Frame{
		ReturnAddress: cpu.Pc,
		Store:         variable,
		Locals:        locals,
	})

	err = cpu.setPc(address)
	return
}

// ret leaves the current routine, storing value in the caller.
func (cpu *Cpu) ret(value uint16) (err error) {
	frame, ok := cpu.Frames.Pop()
	if !ok {
		err = ErrFrameEmpty
		return
	}

	if cpu.Verbose {
		log.Debugf("ret %04x to %05x", value, frame.ReturnAddress)
	}

	err = cpu.SetVariable(frame.Store, value)
	if err != nil {
		return
	}

	err = cpu.setPc(frame.ReturnAddress)
	return
}

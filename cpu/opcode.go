package cpu

import (
	"fmt"
	"strings"
)

// CodeForm is the operand count class of an instruction.
type CodeForm int

//go:generate go tool stringer -linecomment -type=CodeForm
const (
	FORM_2OP = CodeForm(0) // 2OP
	FORM_1OP = CodeForm(1) // 1OP
	FORM_0OP = CodeForm(2) // 0OP
	FORM_VAR = CodeForm(3) // VAR
)

// CodeOperand is an operand type.
type CodeOperand int

//go:generate go tool stringer -linecomment -type=CodeOperand
const (
	OPERAND_LARGE    = CodeOperand(0) // large
	OPERAND_SMALL    = CodeOperand(1) // small
	OPERAND_VARIABLE = CodeOperand(2) // var
	OPERAND_OMITTED  = CodeOperand(3) // omit
)

// Operand type bytes implied by the long form (indexed by opcode bits 6-5)
// and the short form (indexed by opcode bits 5-4).
var (
	longTypes  = [4]uint8{0x5f, 0x6f, 0x9f, 0xaf}
	shortTypes = [4]uint8{0x3f, 0x7f, 0xbf, 0xff}
)

// Instruction is a decoded opcode and its operand values. Store and branch
// bytes are read by the instruction itself.
type Instruction struct {
	Address  uint32   // Address of the opcode byte.
	Opcode   uint8    // Opcode byte.
	Form     CodeForm // Operand count class.
	Number   uint8    // Index in the form's table.
	Types    []CodeOperand
	Operands []uint16
}

// Operation returns the table entry for the instruction.
func (ins Instruction) Operation() Operation {
	return Lookup(ins.Form, ins.Number)
}

func (ins Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(ins.Operation().Name)
	for n, value := range ins.Operands {
		if n < len(ins.Types) && ins.Types[n] == OPERAND_SMALL {
			fmt.Fprintf(&sb, " 0x%02x", value)
		} else {
			fmt.Fprintf(&sb, " 0x%04x", value)
		}
	}
	return sb.String()
}

// decodeForm classifies an opcode byte. hasTypes is set when an operand
// type byte follows the opcode.
func decodeForm(opcode uint8) (form CodeForm, number uint8, types uint8, hasTypes bool) {
	switch {
	case opcode < 0x80:
		form = FORM_2OP
		number = opcode & 0x1f
		types = longTypes[opcode>>5]
	case opcode < 0xc0:
		form = FORM_1OP
		number = opcode & 0x0f
		kind := (opcode >> 4) & 3
		if kind == uint8(OPERAND_OMITTED) {
			form = FORM_0OP
		}
		types = shortTypes[kind]
	case opcode < 0xe0:
		form = FORM_2OP
		number = opcode & 0x1f
		hasTypes = true
	default:
		form = FORM_VAR
		number = opcode & 0x1f
		hasTypes = true
	}

	return
}

// Decode reads the instruction at the program counter, leaving the program
// counter at its store or branch bytes, if any. Variable operands are read
// as they are decoded.
func (cpu *Cpu) Decode() (ins Instruction, err error) {
	ins.Address = cpu.Pc

	ins.Opcode, err = cpu.fetchByte()
	if err != nil {
		return
	}

	var types uint8
	var hasTypes bool
	ins.Form, ins.Number, types, hasTypes = decodeForm(ins.Opcode)
	if hasTypes {
		types, err = cpu.fetchByte()
		if err != nil {
			return
		}
	}

	for shift := 6; shift >= 0; shift -= 2 {
		kind := CodeOperand((types >> shift) & 3)
		if kind == OPERAND_OMITTED {
			break
		}

		var value uint16
		switch kind {
		case OPERAND_LARGE:
			value, err = cpu.fetchWord()
		case OPERAND_SMALL:
			var b uint8
			b, err = cpu.fetchByte()
			value = uint16(b)
		case OPERAND_VARIABLE:
			var b uint8
			b, err = cpu.fetchByte()
			if err == nil {
				value, err = cpu.Variable(b)
			}
		}
		if err != nil {
			return
		}

		ins.Types = append(ins.Types, kind)
		ins.Operands = append(ins.Operands, value)
	}

	return
}

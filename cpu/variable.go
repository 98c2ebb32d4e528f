package cpu

// Variable numbers.
const (
	VARIABLE_STACK  = 0  // Top of the evaluation stack.
	VARIABLE_LOCAL  = 1  // First local.
	VARIABLE_GLOBAL = 16 // First global.
)

// Variable reads a variable. Variable 0 pops the evaluation stack.
func (cpu *Cpu) Variable(variable uint8) (value uint16, err error) {
	frame := cpu.Frames.Top()

	switch {
	case variable == VARIABLE_STACK:
		var ok bool
		value, ok = frame.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
		}
	case variable < VARIABLE_GLOBAL:
		index := int(variable - VARIABLE_LOCAL)
		if index >= len(frame.Locals) {
			err = ErrVariable(variable)
			return
		}
		value = frame.Locals[index]
	default:
		value, err = cpu.Memory.Word(cpu.global(variable))
	}

	return
}

// SetVariable writes a variable. Variable 0 pushes onto the evaluation stack.
func (cpu *Cpu) SetVariable(variable uint8, value uint16) (err error) {
	frame := cpu.Frames.Top()

	switch {
	case variable == VARIABLE_STACK:
		if frame.Stack.Full() {
			err = ErrStackFull
			return
		}
		frame.Stack.Push(value)
	case variable < VARIABLE_GLOBAL:
		index := int(variable - VARIABLE_LOCAL)
		if index >= len(frame.Locals) {
			err = ErrVariable(variable)
			return
		}
		frame.Locals[index] = value
	default:
		err = cpu.Memory.SetWord(cpu.global(variable), value)
	}

	return
}

func (cpu *Cpu) global(variable uint8) uint32 {
	return uint32(cpu.Header.Globals) + 2*uint32(variable-VARIABLE_GLOBAL)
}

package cpu

func (cpu *Cpu) opCall(args []uint16) error {
	return cpu.call(args[0], args[1:])
}

func (cpu *Cpu) opRet(args []uint16) error {
	return cpu.ret(args[0])
}

func (cpu *Cpu) opRtrue([]uint16) error {
	return cpu.ret(1)
}

func (cpu *Cpu) opRfalse([]uint16) error {
	return cpu.ret(0)
}

func (cpu *Cpu) opRetPopped([]uint16) (err error) {
	value, err := cpu.Variable(VARIABLE_STACK)
	if err != nil {
		return
	}

	err = cpu.ret(value)
	return
}

func (cpu *Cpu) opJump(args []uint16) error {
	return cpu.setPc(uint32(int32(cpu.Pc) + int32(int16(args[0])) - 2))
}

func (cpu *Cpu) opNop([]uint16) error {
	return nil
}

func (cpu *Cpu) opQuit([]uint16) error {
	cpu.Running = false
	return nil
}

func (cpu *Cpu) opVerify([]uint16) (err error) {
	ok, err := cpu.Header.Verify(cpu.Memory)
	if err != nil {
		return
	}

	err = cpu.branch(ok)
	return
}

func (cpu *Cpu) opStore(args []uint16) error {
	return cpu.SetVariable(uint8(args[0]), args[1])
}

func (cpu *Cpu) opLoad(args []uint16) (err error) {
	value, err := cpu.Variable(uint8(args[0]))
	if err != nil {
		return
	}

	err = cpu.store(value)
	return
}

func (cpu *Cpu) opPush(args []uint16) error {
	return cpu.SetVariable(VARIABLE_STACK, args[0])
}

func (cpu *Cpu) opPull(args []uint16) (err error) {
	value, err := cpu.Variable(VARIABLE_STACK)
	if err != nil {
		return
	}

	err = cpu.SetVariable(uint8(args[0]), value)
	return
}

func (cpu *Cpu) opLoadw(args []uint16) (err error) {
	value, err := cpu.Memory.Word(uint32(args[0]) + 2*uint32(args[1]))
	if err != nil {
		return
	}

	err = cpu.store(value)
	return
}

func (cpu *Cpu) opLoadb(args []uint16) (err error) {
	value, err := cpu.Memory.Byte(uint32(args[0]) + uint32(args[1]))
	if err != nil {
		return
	}

	err = cpu.store(uint16(value))
	return
}

func (cpu *Cpu) opStorew(args []uint16) error {
	return cpu.Memory.SetWord(uint32(args[0])+2*uint32(args[1]), args[2])
}

func (cpu *Cpu) opStoreb(args []uint16) error {
	return cpu.Memory.SetByte(uint32(args[0])+uint32(args[1]), uint8(args[2]))
}

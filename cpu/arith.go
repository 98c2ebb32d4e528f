package cpu

func (cpu *Cpu) opJe(args []uint16) (err error) {
	cond := false
	for _, arg := range args[1:] {
		if args[0] == arg {
			cond = true
			break
		}
	}

	err = cpu.branch(cond)
	return
}

func (cpu *Cpu) opJl(args []uint16) error {
	return cpu.branch(int16(args[0]) < int16(args[1]))
}

func (cpu *Cpu) opJg(args []uint16) error {
	return cpu.branch(int16(args[0]) > int16(args[1]))
}

func (cpu *Cpu) opJz(args []uint16) error {
	return cpu.branch(args[0] == 0)
}

func (cpu *Cpu) opTest(args []uint16) error {
	return cpu.branch(args[0]&args[1] == args[1])
}

// adjust adds delta to a variable, returning the new value.
func (cpu *Cpu) adjust(variable uint16, delta int16) (value uint16, err error) {
	value, err = cpu.Variable(uint8(variable))
	if err != nil {
		return
	}

	value = uint16(int16(value) + delta)
	err = cpu.SetVariable(uint8(variable), value)
	return
}

func (cpu *Cpu) opDecChk(args []uint16) (err error) {
	value, err := cpu.adjust(args[0], -1)
	if err != nil {
		return
	}

	err = cpu.branch(int16(value) < int16(args[1]))
	return
}

func (cpu *Cpu) opIncChk(args []uint16) (err error) {
	value, err := cpu.adjust(args[0], 1)
	if err != nil {
		return
	}

	err = cpu.branch(int16(value) > int16(args[1]))
	return
}

func (cpu *Cpu) opInc(args []uint16) (err error) {
	_, err = cpu.adjust(args[0], 1)
	return
}

func (cpu *Cpu) opDec(args []uint16) (err error) {
	_, err = cpu.adjust(args[0], -1)
	return
}

func (cpu *Cpu) opOr(args []uint16) error {
	return cpu.store(args[0] | args[1])
}

func (cpu *Cpu) opAnd(args []uint16) error {
	return cpu.store(args[0] & args[1])
}

func (cpu *Cpu) opAdd(args []uint16) error {
	return cpu.store(args[0] + args[1])
}

func (cpu *Cpu) opSub(args []uint16) error {
	return cpu.store(args[0] - args[1])
}

func (cpu *Cpu) opMul(args []uint16) error {
	return cpu.store(uint16(int16(args[0]) * int16(args[1])))
}

func (cpu *Cpu) opDiv(args []uint16) (err error) {
	if args[1] == 0 {
		err = ErrDivideByZero
		return
	}

	err = cpu.store(uint16(int16(args[0]) / int16(args[1])))
	return
}

func (cpu *Cpu) opMod(args []uint16) (err error) {
	if args[1] == 0 {
		err = ErrDivideByZero
		return
	}

	err = cpu.store(uint16(int16(args[0]) % int16(args[1])))
	return
}

func (cpu *Cpu) opRandom(args []uint16) error {
	return cpu.store(cpu.Random.Next(int16(args[0])))
}

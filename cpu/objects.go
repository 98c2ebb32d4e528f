package cpu

func (cpu *Cpu) opJin(args []uint16) (err error) {
	parent, err := cpu.Objects.Parent(args[0])
	if err != nil {
		return
	}

	err = cpu.branch(args[0] != 0 && parent == args[1])
	return
}

func (cpu *Cpu) opTestAttr(args []uint16) (err error) {
	set, err := cpu.Objects.Attribute(args[0], args[1])
	if err != nil {
		return
	}

	err = cpu.branch(set)
	return
}

func (cpu *Cpu) opSetAttr(args []uint16) error {
	return cpu.Objects.SetAttribute(args[0], args[1], true)
}

func (cpu *Cpu) opClearAttr(args []uint16) error {
	return cpu.Objects.SetAttribute(args[0], args[1], false)
}

func (cpu *Cpu) opInsertObj(args []uint16) error {
	return cpu.Objects.Insert(args[0], args[1])
}

func (cpu *Cpu) opRemoveObj(args []uint16) error {
	return cpu.Objects.Remove(args[0])
}

// storeBranch stores an object link and branches if it is not 0.
func (cpu *Cpu) storeBranch(object uint16, err error) error {
	if err != nil {
		return err
	}

	err = cpu.store(object)
	if err != nil {
		return err
	}

	return cpu.branch(object != 0)
}

func (cpu *Cpu) opGetSibling(args []uint16) error {
	return cpu.storeBranch(cpu.Objects.Sibling(args[0]))
}

func (cpu *Cpu) opGetChild(args []uint16) error {
	return cpu.storeBranch(cpu.Objects.Child(args[0]))
}

func (cpu *Cpu) opGetParent(args []uint16) (err error) {
	parent, err := cpu.Objects.Parent(args[0])
	if err != nil {
		return
	}

	err = cpu.store(parent)
	return
}

func (cpu *Cpu) opGetProp(args []uint16) (err error) {
	value, err := cpu.Objects.Property(args[0], args[1])
	if err != nil {
		return
	}

	err = cpu.store(value)
	return
}

func (cpu *Cpu) opGetPropAddr(args []uint16) (err error) {
	address, _, err := cpu.Objects.PropertyAddress(args[0], args[1])
	if err != nil {
		return
	}

	err = cpu.store(uint16(address))
	return
}

func (cpu *Cpu) opGetNextProp(args []uint16) (err error) {
	next, err := cpu.Objects.NextProperty(args[0], args[1])
	if err != nil {
		return
	}

	err = cpu.store(next)
	return
}

func (cpu *Cpu) opGetPropLen(args []uint16) (err error) {
	size, err := cpu.Objects.PropertyLength(uint32(args[0]))
	if err != nil {
		return
	}

	err = cpu.store(size)
	return
}

func (cpu *Cpu) opPutProp(args []uint16) error {
	return cpu.Objects.SetProperty(args[0], args[1], args[2])
}

package object

// header returns the address of an object's property table header.
func (tbl *Table) header(object uint16) (address uint32, err error) {
	entry, err := tbl.entry(object)
	if err != nil {
		return
	}

	word, err := tbl.Memory.Word(entry + ENTRY_PROPERTIES)
	address = uint32(word)
	return
}

// NameAddress returns the address of the object's short name Z-string.
func (tbl *Table) NameAddress(object uint16) (address uint32, length uint8, err error) {
	header, err := tbl.header(object)
	if err != nil {
		return
	}

	length, err = tbl.Memory.Byte(header)
	address = header + 1
	return
}

// first returns the address of the first property size byte.
func (tbl *Table) first(object uint16) (address uint32, err error) {
	name, length, err := tbl.NameAddress(object)
	if err != nil {
		return
	}

	address = name + 2*uint32(length)
	return
}

// sizeByte decodes a property size byte.
func (tbl *Table) sizeByte(address uint32) (number uint16, size uint16, err error) {
	b, err := tbl.Memory.Byte(address)
	if err != nil {
		return
	}

	number = uint16(b & 0x1f)
	size = 1 + uint16(b>>5)
	return
}

// PropertyAddress finds the data address and size of a property.
// A missing property has address 0.
func (tbl *Table) PropertyAddress(object uint16, property uint16) (address uint32, size uint16, err error) {
	if property == 0 || property > PROPERTY_MAX {
		err = ErrPropertyInvalid(property)
		return
	}

	at, err := tbl.first(object)
	if err != nil {
		return
	}

	for range PROPERTY_LIMIT {
		var number uint16
		number, size, err = tbl.sizeByte(at)
		if err != nil {
			return
		}
		at++
		if number == 0 {
			break
		}
		if number == property {
			address = at
			return
		}
		at += uint32(size)
	}

	size = 0
	return
}

// Property reads a property value, falling back to the default when the
// object does not have the property. One byte properties are zero extended.
func (tbl *Table) Property(object uint16, property uint16) (value uint16, err error) {
	address, size, err := tbl.PropertyAddress(object, property)
	if err != nil {
		return
	}

	switch {
	case address == 0:
		value, err = tbl.Memory.Word(tbl.Address + DEFAULT_SIZE*uint32(property-1))
	case size == 1:
		var b uint8
		b, err = tbl.Memory.Byte(address)
		value = uint16(b)
	default:
		value, err = tbl.Memory.Word(address)
	}

	return
}

// SetProperty writes a property value. One byte properties keep the low byte.
func (tbl *Table) SetProperty(object uint16, property uint16, value uint16) (err error) {
	address, size, err := tbl.PropertyAddress(object, property)
	if err != nil {
		return
	}

	switch {
	case address == 0:
		err = ErrPropertyMissing{Object: object, Property: property}
	case size == 1:
		err = tbl.Memory.SetByte(address, uint8(value))
	default:
		err = tbl.Memory.SetWord(address, value)
	}

	return
}

// PropertyLength returns the data size of the property whose data starts
// at address. Address 0 has length 0.
func (tbl *Table) PropertyLength(address uint32) (size uint16, err error) {
	if address == 0 {
		return
	}

	_, size, err = tbl.sizeByte(address - 1)
	return
}

// NextProperty returns the property number following property on object.
// Property 0 returns the first property. A result of 0 ends the list.
func (tbl *Table) NextProperty(object uint16, property uint16) (next uint16, err error) {
	var at uint32
	if property == 0 {
		at, err = tbl.first(object)
		if err != nil {
			return
		}
	} else {
		var size uint16
		at, size, err = tbl.PropertyAddress(object, property)
		if err != nil {
			return
		}
		if at == 0 {
			err = ErrPropertyMissing{Object: object, Property: property}
			return
		}
		at += uint32(size)
	}

	next, _, err = tbl.sizeByte(at)
	return
}

// Properties returns the property numbers of an object, in table order.
func (tbl *Table) Properties(object uint16) (numbers []uint16, err error) {
	var number uint16
	for range PROPERTY_LIMIT {
		number, err = tbl.NextProperty(object, number)
		if err != nil || number == 0 {
			return
		}
		numbers = append(numbers, number)
	}

	return
}

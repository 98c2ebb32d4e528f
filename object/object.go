// Package object implements the version 1-3 object table.
//
// The table starts with 31 default property words, followed by one 9 byte
// entry per object:
//
//	+0 attributes 0-31, attribute 0 is the top bit of the first byte
//	+4 parent
//	+5 sibling
//	+6 child
//	+7 property table address
//
// A property table is a short name (a length byte counting words, then the
// Z-string), then properties in descending number order, each a size/number
// byte followed by 1 to 8 bytes of data, ending with a zero byte.
package object

import (
	"github.com/ezrec/zmachine/memory"
)

const (
	DEFAULT_COUNT = 31 // Number of default property words.
	DEFAULT_SIZE  = 2  // Size of a default property.

	ENTRY_SIZE       = 9
	ENTRY_ATTRIBUTES = 0
	ENTRY_PARENT     = 4
	ENTRY_SIBLING    = 5
	ENTRY_CHILD      = 6
	ENTRY_PROPERTIES = 7

	OBJECT_MAX     = 255
	ATTRIBUTE_MAX  = 31
	PROPERTY_MAX   = 31
	PROPERTY_LIMIT = 32 // Properties scanned before giving up.
)

// Table is a view of the object table in story memory.
type Table struct {
	Memory  *memory.Memory // Story memory.
	Address uint32         // Object table address.
}

// entry returns the address of an object's entry.
func (tbl *Table) entry(object uint16) (address uint32, err error) {
	if object == 0 || object > OBJECT_MAX {
		err = ErrObjectInvalid(object)
		return
	}

	address = tbl.Address + DEFAULT_COUNT*DEFAULT_SIZE + ENTRY_SIZE*uint32(object-1)
	return
}

// Attribute reads an object attribute.
func (tbl *Table) Attribute(object uint16, attribute uint16) (set bool, err error) {
	address, bit, err := tbl.attribute(object, attribute)
	if err != nil {
		return
	}

	flags, err := tbl.Memory.Byte(address)
	if err != nil {
		return
	}

	set = ((flags >> bit) & 1) != 0
	return
}

// SetAttribute sets or clears an object attribute.
func (tbl *Table) SetAttribute(object uint16, attribute uint16, set bool) (err error) {
	address, bit, err := tbl.attribute(object, attribute)
	if err != nil {
		return
	}

	flags, err := tbl.Memory.Byte(address)
	if err != nil {
		return
	}

	flags &^= 1 << bit
	if set {
		flags |= 1 << bit
	}

	err = tbl.Memory.SetByte(address, flags)
	return
}

// attribute returns the byte address and bit number of an attribute.
func (tbl *Table) attribute(object uint16, attribute uint16) (address uint32, bit uint8, err error) {
	if attribute > ATTRIBUTE_MAX {
		err = ErrAttributeInvalid(attribute)
		return
	}

	address, err = tbl.entry(object)
	if err != nil {
		return
	}

	address += ENTRY_ATTRIBUTES + uint32(attribute>>3)
	bit = uint8((attribute ^ 7) & 7)
	return
}

func (tbl *Table) link(object uint16, offset uint32) (value uint16, err error) {
	if object == 0 {
		return
	}

	address, err := tbl.entry(object)
	if err != nil {
		return
	}

	b, err := tbl.Memory.Byte(address + offset)
	value = uint16(b)
	return
}

func (tbl *Table) setLink(object uint16, offset uint32, value uint16) (err error) {
	address, err := tbl.entry(object)
	if err != nil {
		return
	}

	err = tbl.Memory.SetByte(address+offset, uint8(value))
	return
}

// Parent returns the parent of object, 0 if none. Object 0 has no parent.
func (tbl *Table) Parent(object uint16) (uint16, error) {
	return tbl.link(object, ENTRY_PARENT)
}

// Sibling returns the next sibling of object, 0 if none.
func (tbl *Table) Sibling(object uint16) (uint16, error) {
	return tbl.link(object, ENTRY_SIBLING)
}

// Child returns the first child of object, 0 if none.
func (tbl *Table) Child(object uint16) (uint16, error) {
	return tbl.link(object, ENTRY_CHILD)
}

// Remove detaches object from its parent. The object keeps its children.
func (tbl *Table) Remove(object uint16) (err error) {
	parent, err := tbl.Parent(object)
	if err != nil || parent == 0 {
		return
	}

	sibling, err := tbl.Sibling(object)
	if err != nil {
		return
	}

	first, err := tbl.Child(parent)
	if err != nil {
		return
	}

	if first == object {
		err = tbl.setLink(parent, ENTRY_CHILD, sibling)
		if err != nil {
			return
		}
	} else {
		previous := first
		for n := 0; ; n++ {
			if previous == 0 || n > OBJECT_MAX {
				err = ErrTreeCorrupt
				return
			}
			var next uint16
			next, err = tbl.Sibling(previous)
			if err != nil {
				return
			}
			if next == object {
				break
			}
			previous = next
		}
		err = tbl.setLink(previous, ENTRY_SIBLING, sibling)
		if err != nil {
			return
		}
	}

	err = tbl.setLink(object, ENTRY_PARENT, 0)
	if err != nil {
		return
	}

	err = tbl.setLink(object, ENTRY_SIBLING, 0)
	return
}

// Insert makes object the first child of destination.
// A destination of 0 only removes the object from its parent.
func (tbl *Table) Insert(object uint16, destination uint16) (err error) {
	if destination != 0 {
		_, err = tbl.entry(destination)
		if err != nil {
			return
		}
	}

	err = tbl.Remove(object)
	if err != nil || destination == 0 {
		return
	}

	first, err := tbl.Child(destination)
	if err != nil {
		return
	}

	err = tbl.setLink(object, ENTRY_PARENT, destination)
	if err != nil {
		return
	}

	err = tbl.setLink(object, ENTRY_SIBLING, first)
	if err != nil {
		return
	}

	err = tbl.setLink(destination, ENTRY_CHILD, object)
	return
}

// Count estimates the number of objects. The object entries end where the
// first property table begins, or at an entry without a property table.
func (tbl *Table) Count() (count uint16, err error) {
	end := uint32(0xffffffff)
	for object := uint16(1); object <= OBJECT_MAX; object++ {
		var address uint32
		address, err = tbl.entry(object)
		if err != nil {
			return
		}
		if address+ENTRY_SIZE > end || int(address+ENTRY_SIZE) > tbl.Memory.Len() {
			break
		}
		var properties uint16
		properties, err = tbl.Memory.Word(address + ENTRY_PROPERTIES)
		if err != nil {
			return
		}
		if properties == 0 {
			break
		}
		end = min(end, uint32(properties))
		count = object
	}

	return
}

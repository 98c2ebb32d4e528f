package emulator

import (
	"fmt"
	"iter"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/ezrec/zmachine/internal"
	"github.com/ezrec/zmachine/object"
)

// statistics returns table summaries as name, value pairs.
func (emu *Emulator) statistics() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		objects, err := emu.Objects.Count()
		if err == nil && !yield("object count", fmt.Sprintf("%d", objects)) {
			return
		}

		words, err := emu.Dictionary.Len()
		if err == nil && !yield("word count", fmt.Sprintf("%d", words)) {
			return
		}

		separators, err := emu.Dictionary.Separators()
		if err == nil && !yield("separators", fmt.Sprintf("%q", separators)) {
			return
		}

		ok, err := emu.Header.Verify(emu.Memory)
		if err == nil {
			yield("checksum valid", fmt.Sprintf("%v", ok))
		}
	}
}

// Describe returns the header fields and table statistics.
func (emu *Emulator) Describe() iter.Seq2[string, string] {
	return internal.Concat(emu.Header.Fields(), emu.statistics())
}

// ObjectName decodes an object's short name.
func (emu *Emulator) ObjectName(obj uint16) (name string, err error) {
	address, _, err := emu.Objects.NameAddress(obj)
	if err != nil {
		return
	}

	name, _, err = emu.Text.Decode(address)
	return
}

// ObjectTree renders the object tree, one branch per root object.
func (emu *Emulator) ObjectTree() (tree treeprint.Tree, err error) {
	count, err := emu.Objects.Count()
	if err != nil {
		return
	}

	tree = treeprint.New()
	tree.SetValue(fmt.Sprintf("%d objects", count))

	for obj := uint16(1); obj <= count; obj++ {
		var parent uint16
		parent, err = emu.Objects.Parent(obj)
		if err != nil {
			return
		}
		if parent != 0 {
			continue
		}
		err = emu.addObject(tree, obj, 0)
		if err != nil {
			return
		}
	}

	return
}

func (emu *Emulator) addObject(tree treeprint.Tree, obj uint16, depth int) (err error) {
	if depth > object.OBJECT_MAX {
		err = ErrTreeLoop
		return
	}

	name, err := emu.ObjectName(obj)
	if err != nil {
		return
	}

	branch := tree.AddMetaBranch(obj, fmt.Sprintf("%q", name))

	var attributes []string
	for attr := range uint16(object.ATTRIBUTE_MAX + 1) {
		var set bool
		set, err = emu.Objects.Attribute(obj, attr)
		if err != nil {
			return
		}
		if set {
			attributes = append(attributes, fmt.Sprintf("%d", attr))
		}
	}
	if len(attributes) > 0 {
		branch.AddNode("attributes " + strings.Join(attributes, " "))
	}

	numbers, err := emu.Objects.Properties(obj)
	if err != nil {
		return
	}
	for _, number := range numbers {
		var address uint32
		var size uint16
		address, size, err = emu.Objects.PropertyAddress(obj, number)
		if err != nil {
			return
		}
		var data []string
		for n := range uint32(size) {
			var b uint8
			b, err = emu.Memory.Byte(address + n)
			if err != nil {
				return
			}
			data = append(data, fmt.Sprintf("%02x", b))
		}
		branch.AddMetaNode(number, strings.Join(data, " "))
	}

	child, err := emu.Objects.Child(obj)
	for n := 0; err == nil && child != 0; n++ {
		if n > object.OBJECT_MAX {
			err = ErrTreeLoop
			return
		}
		err = emu.addObject(branch, child, depth+1)
		if err != nil {
			return
		}
		child, err = emu.Objects.Sibling(child)
	}

	return
}

// Words decodes the dictionary entries in table order.
func (emu *Emulator) Words() (words []string, err error) {
	for address := range emu.Dictionary.Entries() {
		var word string
		word, _, err = emu.Text.Decode(uint32(address))
		if err != nil {
			return
		}
		words = append(words, word)
	}

	return
}

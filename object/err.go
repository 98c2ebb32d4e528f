package object

import (
	"errors"

	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

var (
	ErrTreeCorrupt = errors.New(f("object tree corrupt"))
)

// ErrObjectInvalid is a reference to an object number outside 1..255.
type ErrObjectInvalid uint16

func (eo ErrObjectInvalid) Error() string {
	return f("invalid object %d", uint16(eo))
}

func (eo ErrObjectInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrObjectInvalid)
	return
}

// ErrAttributeInvalid is a reference to an attribute outside 0..31.
type ErrAttributeInvalid uint16

func (ea ErrAttributeInvalid) Error() string {
	return f("invalid attribute %d", uint16(ea))
}

func (ea ErrAttributeInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrAttributeInvalid)
	return
}

// ErrPropertyInvalid is a reference to a property outside 1..31.
type ErrPropertyInvalid uint16

func (ep ErrPropertyInvalid) Error() string {
	return f("invalid property %d", uint16(ep))
}

func (ep ErrPropertyInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrPropertyInvalid)
	return
}

// ErrPropertyMissing is a property the object does not have.
type ErrPropertyMissing struct {
	Object   uint16
	Property uint16
}

func (ep ErrPropertyMissing) Error() string {
	return f("property %d not found on object %d", ep.Property, ep.Object)
}

func (ep ErrPropertyMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrPropertyMissing)
	return
}

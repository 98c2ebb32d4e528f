package memory

import (
	"errors"

	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

var (
	ErrHeaderShort = errors.New(f("story shorter than header"))
)

// ErrAddress is an access outside of the story memory.
type ErrAddress uint32

func (ea ErrAddress) Error() string {
	return f("address 0x%05x out of range", uint32(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

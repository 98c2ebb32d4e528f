package emulator

import (
	"errors"

	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

var (
	ErrTreeLoop = errors.New(f("object tree loop"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc   uint32 // Address of the failing instruction.
	Code string // Instruction name.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%05x %v: %v", err.Pc, err.Code, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

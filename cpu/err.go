package cpu

import (
	"errors"

	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

var (
	ErrStackEmpty     = errors.New(f("stack empty"))
	ErrStackFull      = errors.New(f("stack full"))
	ErrFrameEmpty     = errors.New(f("return from main routine"))
	ErrDivideByZero   = errors.New(f("division by zero"))
	ErrPcZero         = errors.New(f("program counter set to 0"))
	ErrLocals         = errors.New(f("routine has too many locals"))
	ErrKeyboard       = errors.New(f("no keyboard attached"))
	ErrBufferTooSmall = errors.New(f("text buffer too small"))
	ErrOperands       = errors.New(f("missing operands"))
)

// ErrIllegal is an opcode with no instruction.
type ErrIllegal uint8

func (ei ErrIllegal) Error() string {
	return f("illegal instruction 0x%02x", uint8(ei))
}

func (ei ErrIllegal) Is(err error) (ok bool) {
	_, ok = err.(ErrIllegal)
	return
}

// ErrUnimplemented is a legal instruction this machine does not support.
type ErrUnimplemented string

func (eu ErrUnimplemented) Error() string {
	return f("unimplemented feature: %v", string(eu))
}

func (eu ErrUnimplemented) Is(err error) (ok bool) {
	_, ok = err.(ErrUnimplemented)
	return
}

// ErrVariable is a reference to a local the current routine does not have.
type ErrVariable uint8

func (ev ErrVariable) Error() string {
	return f("variable %d not available", uint8(ev))
}

func (ev ErrVariable) Is(err error) (ok bool) {
	_, ok = err.(ErrVariable)
	return
}

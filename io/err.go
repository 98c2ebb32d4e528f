package io

import (
	"errors"

	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

var (
	ErrScriptCommands = errors.New(f("script commands must be a list of strings"))
	ErrScriptCommand  = errors.New(f("script command must be callable"))
)

// ErrScriptLine is a script input that is not a string.
type ErrScriptLine int

func (es ErrScriptLine) Error() string {
	return f("script turn %d is not a string", int(es))
}

func (es ErrScriptLine) Is(err error) (ok bool) {
	_, ok = err.(ErrScriptLine)
	return
}

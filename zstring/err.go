package zstring

import (
	"errors"

	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

var (
	ErrNestedAbbreviation     = errors.New(f("nested abbreviation"))
	ErrAbbreviationIncomplete = errors.New(f("abbreviation ended in incomplete zscii character"))
)

package dictionary

import (
	"errors"

	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

var (
	ErrEntryLength = errors.New(f("dictionary entry too short for key"))
)

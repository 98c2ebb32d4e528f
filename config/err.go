package config

import (
	"github.com/ezrec/zmachine/translate"
)

var f = translate.From

// ErrConfig is a configuration file that could not be read or parsed.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

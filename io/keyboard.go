// Package io provides the text input collaborators of the machine: a tape
// reading lines from any reader, an interactive terminal, and a scripted
// walkthrough.
package io

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("zmachine.io")

// Keyboard supplies one line of player input per read instruction.
// io.EOF ends the story cleanly.
type Keyboard interface {
	ReadLine() (line string, err error)
}

package io

import (
	"fmt"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Script replays a walkthrough written in Starlark. The script defines
// `commands`, a list of input lines, and may define `command(turn)`, which
// is called once the list is used up and returns the next line, or None to
// end input.
type Script struct {
	Output io.Writer // If set, lines are echoed here.

	commands []string
	command  starlark.Callable
	thread   *starlark.Thread
	turn     int
}

// LoadScript runs a script source. src may be nil to read filename.
func LoadScript(filename string, src any) (sc *Script, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Infof("%v: %v", filename, msg)
		},
	}

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	dict, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	sc = &Script{thread: thread}

	if value, ok := dict["commands"]; ok {
		iter := starlark.Iterate(value)
		if iter == nil {
			err = ErrScriptCommands
			return
		}
		defer iter.Done()

		var x starlark.Value
		for iter.Next(&x) {
			line, ok := starlark.AsString(x)
			if !ok {
				err = ErrScriptCommands
				return
			}
			sc.commands = append(sc.commands, line)
		}
	}

	if value, ok := dict["command"]; ok {
		sc.command, ok = value.(starlark.Callable)
		if !ok {
			err = ErrScriptCommand
			return
		}
	}

	return
}

// ReadLine returns the next scripted line, or io.EOF when the script ends.
func (sc *Script) ReadLine() (line string, err error) {
	turn := sc.turn

	switch {
	case turn < len(sc.commands):
		line = sc.commands[turn]
	case sc.command != nil:
		var value starlark.Value
		value, err = starlark.Call(sc.thread, sc.command, starlark.Tuple{starlark.MakeInt(turn)}, nil)
		if err != nil {
			return
		}
		if value == starlark.None {
			err = io.EOF
			return
		}
		var ok bool
		line, ok = starlark.AsString(value)
		if !ok {
			err = ErrScriptLine(turn)
			return
		}
	default:
		err = io.EOF
		return
	}

	sc.turn++

	if sc.Output != nil {
		_, err = fmt.Fprintln(sc.Output, line)
	}

	return
}

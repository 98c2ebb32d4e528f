package io

import (
	"bytes"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// Terminal is an interactive console. It is also the story's screen: the
// text after the last newline is held back and used as the input prompt.
type Terminal struct {
	Output      io.Writer // Story text destination.
	HistoryFile string    // Input history file; empty for none.

	rl      *readline.Instance
	pending []byte
}

// Write sends complete lines of story text to the output.
func (term *Terminal) Write(p []byte) (n int, err error) {
	n = len(p)
	term.pending = append(term.pending, p...)

	last := bytes.LastIndexByte(term.pending, '\n')
	if last < 0 {
		return
	}

	_, err = term.Output.Write(term.pending[:last+1])
	rest := copy(term.pending, term.pending[last+1:])
	term.pending = term.pending[:rest]

	return
}

// Prompt returns the held back partial line.
func (term *Terminal) Prompt() string {
	return string(term.pending)
}

// ReadLine reads a line with editing and history. Interrupt ends input.
func (term *Terminal) ReadLine() (line string, err error) {
	if term.rl == nil {
		term.rl, err = readline.NewEx(&readline.Config{
			HistoryFile: term.HistoryFile,
			Stdout:      term.Output,
		})
		if err != nil {
			return
		}
	}

	term.rl.SetPrompt(term.Prompt())
	term.pending = term.pending[:0]

	line, err = term.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		log.Infof("interrupted")
		err = io.EOF
	}

	return
}

// Close flushes any partial line and releases the console.
func (term *Terminal) Close() (err error) {
	if len(term.pending) > 0 {
		_, err = term.Output.Write(term.pending)
		term.pending = term.pending[:0]
	}

	if term.rl != nil {
		err = errors.Join(err, term.rl.Close())
		term.rl = nil
	}

	return
}

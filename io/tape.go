package io

import (
	"bufio"
	"fmt"
	"io"
)

// Tape reads input lines from a reader, such as a pipe or a file.
type Tape struct {
	Input  io.Reader // Source of lines.
	Output io.Writer // If set, lines read are echoed here.

	scanner *bufio.Scanner
}

// ReadLine returns the next line, or io.EOF at the end of input.
func (tc *Tape) ReadLine() (line string, err error) {
	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = tc.scanner.Text()

	if tc.Output != nil {
		_, err = fmt.Fprintln(tc.Output, line)
	}

	return
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator loads a story and runs it to completion.
package emulator

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/ezrec/zmachine/cpu"
	"github.com/ezrec/zmachine/memory"
)

var log = commonlog.GetLogger("zmachine.emulator")

// Emulator state. The processor plus its diagnostic output.
type Emulator struct {
	Verbose  bool // If set, enables instruction tracing.
	*cpu.Cpu      // Reference to the processor.

	Diagnostic io.Writer // Receives one line per fatal error.
}

// NewEmulator loads a story image. The image is copied.
func NewEmulator(story []byte) (emu *Emulator, err error) {
	cp, err := cpu.NewCpu(memory.New(story))
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:        cp,
		Diagnostic: io.Discard,
	}

	if !cp.Header.Supported() {
		log.Infof("story version %d is not supported", cp.Header.Version)
	}

	return
}

// Tick performs a single instruction. done is set once the story has
// stopped.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Tick()
	if err != nil {
		ins := emu.Cpu.Instruction
		err = &ErrRuntime{Pc: ins.Address, Code: ins.Operation().Name, Err: err}
	}

	done = !emu.Cpu.Running
	return
}

// Run executes until the story quits, input ends, or a fatal error occurs.
// A fatal error is written to the diagnostic output and returned.
// Unsupported story versions return without executing.
func (emu *Emulator) Run() (err error) {
	if !emu.Header.Supported() {
		return
	}

	if emu.Verbose {
		log.Debugf("run from 0x%05x", emu.Cpu.Pc)
	}

	for {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			log.Infof("%v", err)
			_, _ = fmt.Fprintf(emu.Diagnostic, "\n%v\n", err)
			return
		}
		if done {
			break
		}
	}

	if emu.Verbose {
		log.Debugf("stopped after %d instructions", emu.Cpu.Ticks)
	}

	return
}

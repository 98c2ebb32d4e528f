package cpu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/zmachine/zstring"
)

// write sends story text to the screen.
func (cpu *Cpu) write(text string) (err error) {
	_, err = io.WriteString(cpu.Screen, text)
	return
}

// printString prints the Z-string at address, returning the address past it.
func (cpu *Cpu) printString(address uint32) (next uint32, err error) {
	text, next, err := cpu.Text.Decode(address)
	werr := cpu.write(text)
	if err == nil {
		err = werr
	}
	return
}

func (cpu *Cpu) opPrint([]uint16) (err error) {
	next, err := cpu.printString(cpu.Pc)
	if err != nil {
		return
	}

	cpu.Pc = next
	return
}

func (cpu *Cpu) opPrintRet(args []uint16) (err error) {
	err = cpu.opPrint(args)
	if err != nil {
		return
	}

	err = cpu.write("\n")
	if err != nil {
		return
	}

	err = cpu.ret(1)
	return
}

func (cpu *Cpu) opPrintAddr(args []uint16) (err error) {
	_, err = cpu.printString(uint32(args[0]))
	return
}

func (cpu *Cpu) opPrintPaddr(args []uint16) (err error) {
	_, err = cpu.printString(2 * uint32(args[0]))
	return
}

func (cpu *Cpu) opPrintObj(args []uint16) (err error) {
	address, _, err := cpu.Objects.NameAddress(args[0])
	if err != nil {
		return
	}

	_, err = cpu.printString(address)
	return
}

func (cpu *Cpu) opNewLine([]uint16) error {
	return cpu.write("\n")
}

func (cpu *Cpu) opPrintChar(args []uint16) (err error) {
	r, ok := zstring.Rune(args[0])
	if !ok {
		return
	}

	err = cpu.write(string(r))
	return
}

func (cpu *Cpu) opPrintNum(args []uint16) error {
	return cpu.write(fmt.Sprintf("%d", int16(args[0])))
}

// opSread reads a line into the text buffer, then tokenizes it into the
// parse buffer. End of input stops the machine.
func (cpu *Cpu) opSread(args []uint16) (err error) {
	text, parse := uint32(args[0]), uint32(args[1])

	if cpu.Keyboard == nil {
		err = ErrKeyboard
		return
	}

	limit, err := cpu.Memory.Byte(text)
	if err != nil {
		return
	}
	if limit < 1 {
		err = ErrBufferTooSmall
		return
	}

	line, err := cpu.Keyboard.ReadLine()
	if errors.Is(err, io.EOF) {
		if cpu.Verbose {
			log.Debugf("end of input")
		}
		cpu.Running = false
		err = nil
		return
	}
	if err != nil {
		return
	}

	var input []byte
	for _, r := range strings.ToLower(strings.TrimRight(line, "\r\n")) {
		if len(input) >= int(limit)-1 {
			break
		}
		input = append(input, zstring.FromRune(r))
	}
	input = append(input, zstring.ZSCII_NULL)

	for n, c := range input {
		err = cpu.Memory.SetByte(text+1+uint32(n), c)
		if err != nil {
			return
		}
	}

	tokens, err := cpu.Dictionary.Tokenize(string(input))
	if err != nil {
		return
	}

	words, err := cpu.Memory.Byte(parse)
	if err != nil {
		return
	}
	if len(tokens) > int(words) {
		tokens = tokens[:words]
	}

	err = cpu.Memory.SetByte(parse+1, uint8(len(tokens)))
	if err != nil {
		return
	}

	for n, token := range tokens {
		record := parse + 2 + 4*uint32(n)
		err = cpu.Memory.SetWord(record, token.Address)
		if err != nil {
			return
		}
		err = cpu.Memory.SetByte(record+2, token.Length)
		if err != nil {
			return
		}
		err = cpu.Memory.SetByte(record+3, token.Start)
		if err != nil {
			return
		}
	}

	return
}

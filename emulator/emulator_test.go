package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/zmachine/cpu"
	"github.com/ezrec/zmachine/internal/storytest"
	zio "github.com/ezrec/zmachine/io"
	"github.com/ezrec/zmachine/memory"
	"github.com/ezrec/zmachine/zstring"
)

const QUIT = 0xba

func text(s string) (code []byte) {
	for _, word := range zstring.Pack(zstring.Encode(s, 3, 0)) {
		code = append(code, byte(word>>8), byte(word))
	}
	return
}

// emulate builds a story with main as its entry point.
func emulate(b *storytest.Builder, main ...byte) (emu *Emulator, screen *bytes.Buffer, diagnostic *bytes.Buffer) {
	b.Main(main...)

	emu, err := NewEmulator(b.Bytes())
	if err != nil {
		panic(err)
	}

	screen = &bytes.Buffer{}
	diagnostic = &bytes.Buffer{}
	emu.Screen = screen
	emu.Diagnostic = diagnostic
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, _, _ := emulate(storytest.New(3), QUIT)

	assert.False(emu.Verbose)
	assert.True(emu.Running)
	assert.Equal(uint8(3), emu.Header.Version)
	assert.Equal(uint32(storytest.CODE), emu.Pc)

	_, err := NewEmulator(make([]byte, 10))
	assert.ErrorIs(err, memory.ErrHeaderShort)
}

func TestEmulator_Hello(t *testing.T) {
	assert := assert.New(t)

	code := append([]byte{0xb2}, text("Hi\n")...)
	code = append(code, QUIT)
	emu, screen, diagnostic := emulate(storytest.New(3), code...)

	assert.NoError(emu.Run())
	assert.Equal("Hi\n", screen.String())
	assert.Equal("", diagnostic.String())
	assert.False(emu.Running)
	assert.Equal(2, emu.Ticks)
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu, _, _ := emulate(storytest.New(3), 0xbb, QUIT)
	emu.Verbose = true

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulator_Fatal(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name       string
		code       []byte
		err        error
		diagnostic string
	}){
		{"div", []byte{0x17, 5, 0, 0x10}, cpu.ErrDivideByZero, "\npc 0x01000 div: division by zero\n"},
		{"save", []byte{0xbb, 0xb5}, cpu.ErrUnimplemented(""), "\npc 0x01001 save: unimplemented feature: save\n"},
		{"illegal", []byte{0xbe}, cpu.ErrIllegal(0), "\npc 0x01000 illegal: illegal instruction 0xbe\n"},
		{"operands", []byte{0xd4, 0x7f, 0x05, 0x10}, cpu.ErrOperands, "\npc 0x01000 add: illegal instruction 0xd4: missing operands\n"},
	}

	for _, entry := range table {
		emu, _, diagnostic := emulate(storytest.New(3), append(entry.code, QUIT)...)

		err := emu.Run()
		assert.ErrorIs(err, entry.err, entry.name)

		var runtime *ErrRuntime
		assert.True(errors.As(err, &runtime), entry.name)
		assert.Equal(entry.diagnostic, diagnostic.String(), entry.name)
		assert.Equal(2, strings.Count(diagnostic.String(), "\n"), entry.name)
		assert.False(emu.Running, entry.name)
	}
}

func TestEmulator_Unsupported(t *testing.T) {
	assert := assert.New(t)

	for _, version := range []uint8{4, 5, 8} {
		emu, screen, diagnostic := emulate(storytest.New(version), 0xbb, QUIT)

		assert.NoError(emu.Run())
		assert.Equal(0, emu.Ticks)
		assert.Equal("", screen.String())
		assert.Equal("", diagnostic.String())
	}
}

func TestEmulator_Input(t *testing.T) {
	assert := assert.New(t)

	b := storytest.New(3)
	b.Dictionary(".", "look")
	b.SetByte(0x0900, 20)
	b.SetByte(0x0980, 4)

	// loop: sread; print "."; jump loop
	code := []byte{0xe4, 0x0f, 0x09, 0x00, 0x09, 0x80}
	code = append(code, 0xb2)
	code = append(code, text(".")...)
	code = append(code, 0x8c, 0xff, 0xf6)
	emu, screen, diagnostic := emulate(b, code...)
	emu.Keyboard = &zio.Tape{Input: strings.NewReader("look\nlook\n")}

	assert.NoError(emu.Run())
	assert.Equal("..", screen.String())
	assert.Equal("", diagnostic.String())
	assert.False(emu.Running)
}

func buildWorld() (b *storytest.Builder) {
	b = storytest.New(3)
	b.Dictionary(",", "take", "lamp", "north")
	b.Object(storytest.Object{Name: "room", Child: 2})
	b.Object(storytest.Object{
		Name:       "lamp",
		Parent:     1,
		Sibling:    3,
		Attributes: []uint8{5},
		Properties: []storytest.Property{{Number: 18, Data: []byte{0xab, 0xcd}}},
	})
	b.Object(storytest.Object{Name: "box", Parent: 1})
	b.Object(storytest.Object{Name: "sky"})
	return
}

func TestEmulator_Describe(t *testing.T) {
	assert := assert.New(t)

	emu, _, _ := emulate(buildWorld(), QUIT)

	fields := map[string]string{}
	var names []string
	for name, value := range emu.Describe() {
		fields[name] = value
		names = append(names, name)
	}

	assert.Equal("3", fields["version"])
	assert.Equal("4", fields["object count"])
	assert.Equal("3", fields["word count"])
	assert.Equal(`","`, fields["separators"])
	assert.Equal("true", fields["checksum valid"])
	assert.Equal("version", names[0])
	assert.Equal("checksum valid", names[len(names)-1])
}

func TestEmulator_ObjectTree(t *testing.T) {
	assert := assert.New(t)

	emu, _, _ := emulate(buildWorld(), QUIT)

	name, err := emu.ObjectName(2)
	assert.NoError(err)
	assert.Equal("lamp", name)

	tree, err := emu.ObjectTree()
	assert.NoError(err)

	text := tree.String()
	assert.Contains(text, "4 objects")
	assert.Contains(text, `[1]  "room"`)
	assert.Contains(text, `[2]  "lamp"`)
	assert.Contains(text, `[3]  "box"`)
	assert.Contains(text, `[4]  "sky"`)
	assert.Contains(text, "attributes 5")
	assert.Contains(text, "[18]  ab cd")
	assert.Less(strings.Index(text, "room"), strings.Index(text, "lamp"))
	assert.Less(strings.Index(text, "box"), strings.Index(text, "sky"))
}

func TestEmulator_ObjectTreeLoop(t *testing.T) {
	assert := assert.New(t)

	b := storytest.New(3)
	b.Object(storytest.Object{Name: "a", Child: 2})
	b.Object(storytest.Object{Name: "b", Parent: 1, Sibling: 2})

	emu, _, _ := emulate(b, QUIT)

	_, err := emu.ObjectTree()
	assert.ErrorIs(err, ErrTreeLoop)
}

func TestEmulator_Words(t *testing.T) {
	assert := assert.New(t)

	emu, _, _ := emulate(buildWorld(), QUIT)

	words, err := emu.Words()
	assert.NoError(err)
	assert.ElementsMatch([]string{"take", "lamp", "north"}, words)
}

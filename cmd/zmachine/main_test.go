package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/zmachine/config"
	"github.com/ezrec/zmachine/cpu"
	"github.com/ezrec/zmachine/internal/storytest"
	"github.com/ezrec/zmachine/zstring"
)

// execute runs the command tree on a story built from b, with an empty
// configuration directory.
func execute(t *testing.T, b *storytest.Builder, args ...string) (stdout string, stderr string, err error) {
	dir := t.TempDir()
	if err = os.WriteFile(filepath.Join(dir, config.FILENAME), nil, 0o644); err != nil {
		return
	}

	story := filepath.Join(dir, "story.z3")
	if b != nil {
		if err = os.WriteFile(story, b.Bytes(), 0o644); err != nil {
			return
		}
		args = append(args, story)
	}

	var out, errOut bytes.Buffer
	cmd := rootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append(args, "--config", dir))

	err = cmd.Execute()
	stdout, stderr = out.String(), errOut.String()
	return
}

func TestRoot_Fatal(t *testing.T) {
	assert := assert.New(t)

	b := storytest.New(3)
	b.Main(0x17, 5, 0, 0x10, 0xba)

	stdout, stderr, err := execute(t, b)
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	assert.Equal("\npc 0x01000 div: division by zero\n", stderr)
	assert.Equal("", stdout)
}

func TestRoot_Play(t *testing.T) {
	assert := assert.New(t)

	code := []byte{0xb2}
	for _, word := range zstring.Pack(zstring.Encode("Hi\n", 3, 0)) {
		code = append(code, byte(word>>8), byte(word))
	}
	b := storytest.New(3)
	b.Main(append(code, 0xba)...)

	stdout, stderr, err := execute(t, b)
	assert.NoError(err)
	assert.Equal("Hi\n", stdout)
	assert.Equal("", stderr)
}

func TestRoot_NoStory(t *testing.T) {
	assert := assert.New(t)

	stdout, stderr, err := execute(t, nil)
	assert.NoError(err)
	assert.Equal("No story file specified\n", stderr)
	assert.Equal("", stdout)
}

func TestWords(t *testing.T) {
	assert := assert.New(t)

	b := storytest.New(3)
	b.Dictionary(",", "lamp")
	b.Main(0xba)

	stdout, _, err := execute(t, b, "words")
	assert.NoError(err)
	assert.Equal("lamp\n", stdout)
}

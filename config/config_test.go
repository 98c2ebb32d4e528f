package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const SAMPLE = `
verbosity = 2
trace = true
history = "/tmp/zmachine.history"

[random]
seed = 42

[input]
script = "walkthrough.star"
`

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, FILENAME), []byte(SAMPLE), 0o644))

	cfg, err := Load(dir)
	assert.NoError(err)
	assert.Equal(2, cfg.Verbosity)
	assert.True(cfg.Trace)
	assert.Equal("/tmp/zmachine.history", cfg.History)
	assert.Equal(uint64(42), cfg.Random.Seed)
	assert.Equal(filepath.Join(dir, "walkthrough.star"), cfg.Input.Script)
	assert.Equal(dir, cfg.Dir)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := Load(dir)
	assert.ErrorIs(err, os.ErrNotExist)

	assert.NoError(os.WriteFile(filepath.Join(dir, FILENAME), []byte("verbosity = \"loud\""), 0o644))
	cfg, err := Load(dir)
	assert.Nil(cfg)
	var ec *ErrConfig
	assert.ErrorAs(err, &ec)
	assert.Equal(filepath.Join(dir, FILENAME), ec.Path)
}

func TestFindAndLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	assert.NoError(os.MkdirAll(nested, 0o755))
	assert.NoError(os.WriteFile(filepath.Join(dir, FILENAME), []byte("[random]\nseed = 7\n"), 0o644))

	cfg, err := FindAndLoad(nested)
	assert.NoError(err)
	assert.Equal(uint64(7), cfg.Random.Seed)
	assert.Equal(dir, cfg.Dir)
	assert.Equal("", cfg.Input.Script)
}

func TestFindAndLoad_Missing(t *testing.T) {
	assert := assert.New(t)

	cfg, err := FindAndLoad(t.TempDir())
	assert.NoError(err)
	assert.Equal(&Config{}, cfg)
}

// Package config loads zmachine.toml settings.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FILENAME is the configuration file searched for by FindAndLoad.
const FILENAME = "zmachine.toml"

// Config holds interpreter settings.
type Config struct {
	Verbosity int    `toml:"verbosity"` // Log verbosity, as for commonlog.Configure.
	Trace     bool   `toml:"trace"`     // Trace every instruction.
	History   string `toml:"history"`   // Terminal history file.
	Random    Random `toml:"random"`
	Input     Input  `toml:"input"`

	// Dir is the directory holding the configuration file, if one was loaded.
	Dir string `toml:"-"`
}

// Random configures the random instruction.
type Random struct {
	Seed uint64 `toml:"seed"` // 0 seeds from the clock.
}

// Input configures where story input comes from.
type Input struct {
	Script string `toml:"script"` // Starlark walkthrough script.
}

// Load parses the configuration file in dir.
func Load(dir string) (cfg *Config, err error) {
	path := filepath.Join(dir, FILENAME)
	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	cfg = &Config{}
	err = toml.Unmarshal(data, cfg)
	if err != nil {
		cfg = nil
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	cfg.Dir, err = filepath.Abs(dir)
	if err != nil {
		cfg = nil
		return
	}

	if cfg.Input.Script != "" && !filepath.IsAbs(cfg.Input.Script) {
		cfg.Input.Script = filepath.Join(cfg.Dir, cfg.Input.Script)
	}

	return
}

// FindAndLoad walks up from dir to the first configuration file and loads
// it. With no configuration file found, the default configuration is
// returned.
func FindAndLoad(dir string) (cfg *Config, err error) {
	dir, err = filepath.Abs(dir)
	if err != nil {
		return
	}

	for {
		_, err = os.Stat(filepath.Join(dir, FILENAME))
		if err == nil {
			return Load(dir)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			cfg = &Config{}
			err = nil
			return
		}
		dir = parent
	}
}

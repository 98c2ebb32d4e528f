// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/term"

	_ "github.com/tliron/commonlog/simple"

	"github.com/ezrec/zmachine/config"
	"github.com/ezrec/zmachine/emulator"
	zio "github.com/ezrec/zmachine/io"
)

var log = commonlog.GetLogger("zmachine")

type options struct {
	config    string
	seed      uint64
	script    string
	verbosity int
	trace     bool
}

func main() {
	err := rootCommand().Execute()
	if err == nil {
		return
	}

	var runtime *emulator.ErrRuntime
	if !errors.As(err, &runtime) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// rootCommand builds the command tree. Errors are printed by main; fatal
// story errors are already on the diagnostic output.
func rootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "zmachine [STORY]",
		Short:         "Play a version 1-3 Z-machine story",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No story file specified")
				return
			}

			cfg, err := opts.load(cmd)
			if err != nil {
				return
			}

			return play(cmd, cfg, args[0])
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", "", "configuration directory (default: search upwards for zmachine.toml)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	flags.StringVar(&opts.script, "script", "", "Starlark walkthrough script supplying input")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")
	flags.BoolVar(&opts.trace, "trace", false, "trace every instruction")

	rootCmd.AddCommand(infoCommand(opts), objectsCommand(opts), wordsCommand(opts))

	return rootCmd
}

// load reads the configuration, applies flag overrides and configures
// logging.
func (opts *options) load(cmd *cobra.Command) (cfg *config.Config, err error) {
	if opts.config != "" {
		cfg, err = config.Load(opts.config)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err != nil {
			return
		}
		cfg, err = config.FindAndLoad(dir)
	}
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Random.Seed = opts.seed
	}
	if flags.Changed("script") {
		cfg.Input.Script = opts.script
	}
	if flags.Changed("verbose") {
		cfg.Verbosity = opts.verbosity
	}
	if flags.Changed("trace") {
		cfg.Trace = opts.trace
	}

	commonlog.Configure(cfg.Verbosity, nil)
	if cfg.Trace && cfg.Verbosity < 2 {
		commonlog.SetMaxLevel(commonlog.Debug, "zmachine", "cpu")
	}

	if cfg.Dir != "" {
		log.Infof("configuration from %v", cfg.Dir)
	}

	return
}

// open loads a story file into a new emulator.
func open(filename string) (emu *emulator.Emulator, err error) {
	story, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	emu, err = emulator.NewEmulator(story)
	if err != nil {
		err = fmt.Errorf("%v: %w", filename, err)
	}

	return
}

// play runs a story with console or scripted input.
func play(cmd *cobra.Command, cfg *config.Config, filename string) (err error) {
	emu, err := open(filename)
	if err != nil {
		return
	}

	stdout := cmd.OutOrStdout()
	stdin := cmd.InOrStdin()

	emu.Verbose = cfg.Trace
	emu.Random.Reseed(cfg.Random.Seed)
	emu.Screen = stdout
	emu.Diagnostic = cmd.ErrOrStderr()

	console, interactive := stdin.(*os.File)
	interactive = interactive && term.IsTerminal(int(console.Fd()))

	switch {
	case cfg.Input.Script != "":
		var script *zio.Script
		script, err = zio.LoadScript(cfg.Input.Script, nil)
		if err != nil {
			return
		}
		script.Output = stdout
		emu.Keyboard = script
	case interactive:
		terminal := &zio.Terminal{
			Output:      stdout,
			HistoryFile: cfg.History,
		}
		defer terminal.Close()
		emu.Screen = terminal
		emu.Keyboard = terminal
	default:
		emu.Keyboard = &zio.Tape{Input: stdin}
	}

	return emu.Run()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func infoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info STORY",
		Short: "Show the story header and table statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, err = opts.load(cmd)
			if err != nil {
				return
			}

			emu, err := open(args[0])
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for name, value := range emu.Describe() {
				fmt.Fprintf(out, "%-16s %v\n", name+":", value)
			}
			return
		},
	}
}

func objectsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "objects STORY",
		Short: "Print the object tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, err = opts.load(cmd)
			if err != nil {
				return
			}

			emu, err := open(args[0])
			if err != nil {
				return
			}

			tree, err := emu.ObjectTree()
			if err != nil {
				return
			}

			fmt.Fprint(cmd.OutOrStdout(), tree.String())
			return
		},
	}
}

func wordsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "words STORY",
		Short: "List the dictionary words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, err = opts.load(cmd)
			if err != nil {
				return
			}

			emu, err := open(args[0])
			if err != nil {
				return
			}

			words, err := emu.Words()
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for _, word := range words {
				fmt.Fprintln(out, word)
			}
			return
		},
	}
}

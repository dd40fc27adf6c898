package main

import (
	"github.com/cloudcmds/brainfoam/ascii"
	"github.com/spf13/cobra"
)

func newASCIICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ascii",
		Short: "Print the ASCII reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ascii.Render(cmd.OutOrStdout())
		},
	}
}

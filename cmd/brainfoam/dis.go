package main

import (
	"github.com/cloudcmds/brainfoam/dis"
	"github.com/cloudcmds/brainfoam/program"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dis [file]",
		Short: "Print a listing of a program with resolved loop targets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			source, err := getSource(cmd, args)
			if err != nil {
				return err
			}
			p, err := program.Parse(source)
			if err != nil {
				return err
			}
			return dis.Disassemble(p, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("code", "c", "", "Program source to disassemble")
	cmd.Flags().Bool("stdin", false, "Read program source from stdin")
	return cmd
}

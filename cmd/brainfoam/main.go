// Command brainfoam runs programs written in the 8-symbol tape language.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:   "brainfoam [file]",
		Short: "A bit-accurate virtual machine for the 8-symbol tape language",
		Long: "Brainfoam executes programs written in the 8-symbol tape language " +
			"(> < + - . , [ ]) on a fixed-size circular memory tape.",
		Args:          cobra.MaximumNArgs(1),
		RunE:          runHandler,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.PersistentFlags().Int("tape-length", 0, "Tape length (default 30000)")

	root.Flags().StringP("code", "c", "", "Program source to execute")
	root.Flags().Bool("stdin", false, "Read program source from stdin")
	root.Flags().String("input", "", "Program input as a string")
	root.Flags().Bool("trace", false, "Log every executed instruction")

	fatal := func(err error) {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}

	cobra.OnInitialize(func() {
		if err := viper.BindPFlags(root.PersistentFlags()); err != nil {
			fatal(err)
		}
		if err := viper.BindPFlags(root.Flags()); err != nil {
			fatal(err)
		}
		viper.SetEnvPrefix("brainfoam")
		if err := viper.BindEnv("no-color", "NO_COLOR"); err != nil {
			fatal(err)
		}
		configureOutput()
	})

	root.AddCommand(newStepCmd())
	root.AddCommand(newDisCmd())
	root.AddCommand(newASCIICmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fatal(err)
	}
}

// configureOutput sets up the logger and global color behavior from the
// bound flags and the terminal state.
func configureOutput() {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") || viper.GetBool("trace") {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if viper.GetBool("no-color") || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("brainfoam %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

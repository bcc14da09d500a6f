package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK          = 0
	ExitProgram     = 1 // syntax or semantic error in the program
	ExitFailure     = 2 // configuration, IO and usage errors
	ExitInterrupted = 130
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sbml [FILE]",
	Short: "SBML interpreter",
	Long: `sbml runs programs written in SBML, a small block structured
language with integers, reals, strings, lists and tuples.

A program is a single block:

  {
    x = [1, 2, 3];
    print(x[0] + x[2]);
  }

Without a subcommand the given FILE is run.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return loadEnvironment() },
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runFile(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
	},
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !isProgramError(err) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return exitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.sbml.toml or ~/.sbml.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show source snippets for errors")
}

// isProgramError reports errors already shown as a program diagnostic
func isProgramError(err error) bool {
	return sbmlerror.IsSyntax(err) || sbmlerror.IsSemantic(err) ||
		sbmlerror.HasCode(err, sbmlerror.CodeInterrupted)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case sbmlerror.HasCode(err, sbmlerror.CodeInterrupted):
		return ExitInterrupted
	case sbmlerror.IsSyntax(err), sbmlerror.IsSemantic(err):
		return ExitProgram
	}
	return ExitFailure
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle().Render("Error: "+err.Error()))
}

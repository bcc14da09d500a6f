package cmd

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/msto63/sbml/internal/repl"
	"github.com/spf13/cobra"
)

var replPlain bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Starts an interactive session. Bindings persist between inputs and
input with open braces continues on the next line. Type :help for the
session commands.

The full screen interface is used when stdin is a terminal; --plain
switches to a line editor with history in ~/.sbml_history. Piped input is
read line by line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger := newRunID()
		session := repl.NewSession(repl.Options{
			Logger:        logger,
			MaxIterations: app.settings.MaxIterations,
		})

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return repl.RunPlain(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout())
		}
		if replPlain {
			// Ctrl+C interrupts single evaluations, not the session
			return repl.RunLine(context.WithoutCancel(cmd.Context()), session, cmd.OutOrStdout())
		}
		return repl.Run(cmd.Context(), session, Version)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replPlain, "plain", false, "use the line editor instead of the full screen interface")
}

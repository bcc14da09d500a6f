package cmd

import (
	"fmt"
	"strings"

	"github.com/msto63/sbml/foundation/sbml"
	"github.com/msto63/sbml/foundation/sbml/value"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval SNIPPET...",
	Short: "Evaluate statements or an expression",
	Long: `Evaluates a snippet of statements in a fresh environment. Unlike a
program the snippet needs no enclosing block and may end in a bare
expression, whose value is printed.

  sbml eval 'x = [1, 2]; x[1] * 10'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snippet := strings.Join(args, " ")
		_, logger := newRunID()

		interp := sbml.New(sbml.Options{
			Logger:        logger,
			Output:        cmd.OutOrStdout(),
			MaxIterations: app.settings.MaxIterations,
		})
		v, err := interp.Eval(cmd.Context(), snippet)
		if err != nil {
			if isProgramError(err) {
				reportProgramError(cmd.OutOrStdout(), cmd.ErrOrStderr(), err, snippet)
			}
			return err
		}
		if v != nil {
			fmt.Fprintln(cmd.OutOrStdout(), value.Repr(v))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

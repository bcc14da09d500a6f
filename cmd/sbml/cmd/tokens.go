package cmd

import (
	"fmt"

	"github.com/msto63/sbml/foundation/sbml"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		interp := sbml.New(sbml.Options{Logger: app.logger})
		tokens, skipped := interp.Tokenize(source)

		out := cmd.OutOrStdout()
		for _, tok := range tokens {
			fmt.Fprintf(out, "%4d:%-4d %-14s %s\n", tok.Line, tok.Column, tok.Type, tok.Text())
		}
		for _, err := range skipped {
			fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle().Render("skipped: "+err.Error()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

package cmd

import (
	"fmt"

	"github.com/msto63/sbml/internal/playground"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket playground",
	Long: `Starts an HTTP server with a websocket endpoint at /ws. Every message
{"source": "..."} is run in a fresh environment and answered with the
printed lines, the status and the diagnostic.

Example:
  sbml serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := playground.DefaultConfig()
		cfg.Addr = app.settings.PlaygroundAddr
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		cfg.MaxSourceBytes = app.settings.PlaygroundMaxSize
		cfg.Timeout = app.settings.PlaygroundTimeout
		cfg.MaxIterations = app.settings.MaxIterations
		cfg.Version = Version

		store, err := openJournal()
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}

		srv := playground.New(cfg, store, app.logger)
		fmt.Fprintf(cmd.ErrOrStderr(), "playground listening on ws://%s/ws\n", srv.Address())
		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from playground.addr)")
}

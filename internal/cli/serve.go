package cli

import (
	"github.com/spf13/cobra"

	"github.com/mhuggins102-sudo/Estimate-Game/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes board generation and measurement over HTTP:

  GET  /styles          list the generator styles
  GET  /boards/{seed}   generate a board (?style=&format=svg|png|json)
  POST /boards          generate from a JSON request
  POST /measure         measure a board sent as JSON

All requests share one style selector.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr != "" {
				c.cfg.Server.Addr = addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv, err := server.New(c.cfg, runner, c.Logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the measurement cache")

	return cmd
}

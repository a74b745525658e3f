package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reckon.dev/pkg/reckon/internal/domain"
	"reckon.dev/pkg/reckon/internal/server"
)

var serveAddrFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve evaluations over HTTP",
		Long:  "Run an HTTP server that streams evaluations over a websocket and exposes health and metrics endpoints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			streamer := domain.NewResultStreamer(domain.NewEvaluator(configuredLimits()))
			srv := server.New(
				viper.GetString(serveAddrConfigKey),
				viper.GetFloat64(serveRateLimitConfigKey),
				streamer,
			)

			cmd.Printf("listening on %s\n", viper.GetString(serveAddrConfigKey))

			return srv.Run(ctx)
		},
	}

	configureServeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func configureServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&serveAddrFlag, serveAddrFlagName, viper.GetString(serveAddrConfigKey), "listen address")
	bindFlagToConfig(cmd.Flags().Lookup(serveAddrFlagName), serveAddrConfigKey)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/navstack-dev/navstack/pkg/server"
)

func serveCmd(configSource *string) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the navigation service",
		Long: `Run the HTTP/WebSocket navigation service over the configured
route table.

Endpoints include /api/parse, /api/serialize, /api/href, /api/routes,
/live (WebSocket), and /metrics (Prometheus).

Examples:
  navstack serve
  navstack serve --port=8080
  navstack serve --config=s3://cfg-bucket/navstack.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, views, cfg, err := loadMatcher(cmd.Context(), *configSource)
			if err != nil {
				return err
			}

			if host == "" {
				host = cfg.Server.Host
			}
			if port == 0 {
				port = cfg.Server.Port
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := server.New(server.Config{
				Address: fmt.Sprintf("%s:%d", host, port),
			}, matcher, views, logger)

			return srv.Run()
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	return cmd
}

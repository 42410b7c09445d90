package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/door-configurator/price-engine/pkg/api"
	"github.com/door-configurator/price-engine/pkg/config"
	"github.com/door-configurator/price-engine/pkg/engine"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP API server",
	Long: `Start the price engine HTTP API server.

The server exposes REST endpoints for:
  - Price computation for a selection
  - Relaxation ladder diagnostics
  - Price diff between two selections

Examples:
  # Start server on default port
  price-engine server

  # Start server on custom port
  price-engine server --port 9090

Environment variables:
  DATABASE_URL  - PostgreSQL connection string (required)
  CORS_ORIGINS  - Comma-separated CORS origins (default: localhost dev ports)
  CURRENCY      - Quote currency (default: RUB)
  AUDIT_DIR     - Directory for JSON quote audit records (off when empty)
  LOG_LEVEL     - Logging level (debug/info/warn/error)`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&serverPort, "port", "8080", "HTTP server port")
}

func runServer(cmd *cobra.Command, args []string) error {
	log.Info("Initializing price engine HTTP API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	service, err := engine.NewService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer service.Close()

	log.WithFields(log.Fields{
		"port":     serverPort,
		"currency": cfg.Currency,
	}).Info("Server configuration loaded")

	// Create and start server
	server := api.New(cfg, service)

	log.Info("Server started successfully - ready to receive requests")

	return server.Start(serverPort)
}

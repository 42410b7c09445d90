package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/door-configurator/price-engine/pkg/config"
	"github.com/door-configurator/price-engine/pkg/store"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check catalog database connectivity",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	catalog, err := store.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("catalog store unreachable: %w", err)
	}
	defer catalog.Close()

	fmt.Println("catalog store: ok")
	return nil
}

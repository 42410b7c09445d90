package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "price-engine",
	Short: "Door configurator price engine",
	Long:  `Variant resolution and price computation for the door configurator catalog`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(serverCmd) // HTTP API server
}

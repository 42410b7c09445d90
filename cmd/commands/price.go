package commands

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/door-configurator/price-engine/pkg/catalogfile"
	"github.com/door-configurator/price-engine/pkg/config"
	"github.com/door-configurator/price-engine/pkg/engine"
	"github.com/door-configurator/price-engine/pkg/types"
)

var (
	selectionFile string
	catalogFile   string
	outputFormat  string
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a door selection",
	Long: `Resolve a selection to one catalog variant and compute its price
breakdown.

By default candidate rows are fetched from the catalog database.
With --catalog the calculation runs offline against a JSON fixture.

Examples:
  # Price against the live catalog
  price-engine price --selection selection.json

  # Offline run against a fixture
  price-engine price --selection selection.json --catalog catalog.json

  # JSON output
  price-engine price --selection selection.json --format json`,
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVar(&selectionFile, "selection", "", "Path to selection JSON file (required)")
	priceCmd.Flags().StringVar(&catalogFile, "catalog", "", "Path to catalog fixture JSON file (offline mode)")
	priceCmd.Flags().StringVar(&outputFormat, "format", "cli", "Output format (cli, json)")
}

func runPrice(cmd *cobra.Command, args []string) error {
	if selectionFile == "" {
		return fmt.Errorf("--selection must be specified")
	}

	sel, err := catalogfile.LoadSelection(selectionFile)
	if err != nil {
		return err
	}

	var result *types.PriceResult
	if catalogFile != "" {
		result, err = priceOffline(sel)
	} else {
		result, err = priceAgainstStore(cmd.Context(), sel)
	}
	if err != nil {
		return fmt.Errorf("price computation failed: %w", err)
	}

	switch outputFormat {
	case "json":
		return engine.OutputJSON(result)
	case "cli":
		return engine.OutputCLI(result)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func priceOffline(sel types.Selection) (*types.PriceResult, error) {
	fixture, err := catalogfile.LoadCatalog(catalogFile)
	if err != nil {
		return nil, err
	}
	log.WithField("rows", len(fixture.Rows)).Info("Loaded catalog fixture")
	return engine.Calculate(fixture.Request(sel, ""))
}

func priceAgainstStore(ctx context.Context, sel types.Selection) (*types.PriceResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	service, err := engine.NewService(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer service.Close()

	return service.Price(ctx, sel, "cli")
}

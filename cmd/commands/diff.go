package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/door-configurator/price-engine/pkg/catalogfile"
	"github.com/door-configurator/price-engine/pkg/engine"
	"github.com/door-configurator/price-engine/pkg/types"
)

var (
	diffBeforeFile  string
	diffAfterFile   string
	diffCatalogFile string
	diffFormat      string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the price of two selections",
	Long: `Price two selections against the same catalog fixture and report the
total and per-line deltas, e.g. the same door with and without a mirror.

Examples:
  price-engine diff --before plain.json --after mirrored.json --catalog catalog.json`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffBeforeFile, "before", "", "Path to baseline selection JSON file (required)")
	diffCmd.Flags().StringVar(&diffAfterFile, "after", "", "Path to changed selection JSON file (required)")
	diffCmd.Flags().StringVar(&diffCatalogFile, "catalog", "", "Path to catalog fixture JSON file (required)")
	diffCmd.Flags().StringVar(&diffFormat, "format", "cli", "Output format (cli, json)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	if diffBeforeFile == "" || diffAfterFile == "" || diffCatalogFile == "" {
		return fmt.Errorf("--before, --after and --catalog must all be specified")
	}

	fixture, err := catalogfile.LoadCatalog(diffCatalogFile)
	if err != nil {
		return err
	}

	price := func(path string) (*types.PriceResult, error) {
		sel, err := catalogfile.LoadSelection(path)
		if err != nil {
			return nil, err
		}
		return engine.Calculate(fixture.Request(sel, ""))
	}

	before, err := price(diffBeforeFile)
	if err != nil {
		return fmt.Errorf("failed to price baseline selection: %w", err)
	}
	after, err := price(diffAfterFile)
	if err != nil {
		return fmt.Errorf("failed to price changed selection: %w", err)
	}

	result := engine.Diff(before, after)

	if diffFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Printf("  before: %.2f\n  after:  %.2f\n  delta:  %+.2f\n", result.BeforeTotal, result.AfterTotal, result.Delta)
	for _, line := range result.Lines {
		fmt.Printf("    %-28s %+.2f\n", line.Label, line.Delta)
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/door-configurator/price-engine/pkg/catalogfile"
	"github.com/door-configurator/price-engine/pkg/config"
	"github.com/door-configurator/price-engine/pkg/engine"
)

var (
	explainSelectionFile string
	explainCatalogFile   string
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show relaxation ladder match counts for a selection",
	Long: `Run every filter relaxation step for a selection and report how many
catalog rows each step matches. Diagnostics only: the priced result is
not affected.

Examples:
  price-engine explain --selection selection.json
  price-engine explain --selection selection.json --catalog catalog.json`,
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainSelectionFile, "selection", "", "Path to selection JSON file (required)")
	explainCmd.Flags().StringVar(&explainCatalogFile, "catalog", "", "Path to catalog fixture JSON file (offline mode)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	if explainSelectionFile == "" {
		return fmt.Errorf("--selection must be specified")
	}

	sel, err := catalogfile.LoadSelection(explainSelectionFile)
	if err != nil {
		return err
	}

	var steps []engine.FilterStep
	if explainCatalogFile != "" {
		fixture, err := catalogfile.LoadCatalog(explainCatalogFile)
		if err != nil {
			return err
		}
		steps = engine.Explain(fixture.Rows, sel)
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		service, err := engine.NewService(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer service.Close()

		steps, err = service.ExplainSelection(cmd.Context(), sel)
		if err != nil {
			return err
		}
	}

	for _, step := range steps {
		fmt.Printf("  %-12s %d rows\n", step.Name, step.Matches)
	}
	return nil
}

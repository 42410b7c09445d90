package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/door-configurator/price-engine/pkg/types"
)

// OutputJSON writes the result as indented JSON to stdout.
func OutputJSON(result *types.PriceResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// OutputCLI renders a human-readable breakdown table.
func OutputCLI(result *types.PriceResult) error {
	fmt.Printf("Quote %s\n", result.QuoteID)
	if result.ResolvedName != "" {
		fmt.Printf("Variant: %s", result.ResolvedName)
		if result.ResolvedSKU != "" {
			fmt.Printf(" (%s)", result.ResolvedSKU)
		}
		fmt.Println()
	}
	fmt.Println()

	for _, line := range result.Breakdown {
		fmt.Printf("  %-28s %12.2f %s\n", line.Label, line.Amount, result.Currency)
	}
	fmt.Printf("  %-28s %12.2f %s\n", "TOTAL", result.Total, result.Currency)

	for _, warning := range result.Warnings {
		fmt.Printf("\n  warning: %s\n", warning)
	}
	return nil
}

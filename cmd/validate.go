package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck]",
	Short: "Validate a deck file",
	Long: `Validate checks that a deck file holds each of the 26 cards exactly once
and reports anything unusual about the deal it produces.

The deck is looked up in your deck library or as a path. Without an argument
the default deck from your config is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		deckPath, err := resolveDeckPath(cfg, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		// Create validator and run validation
		v := validator.NewValidator(deckPath)
		results, err := v.Validate()
		if err != nil {
			return invalidFile(err)
		}

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Deck '%s' is valid.\n", deckPath)
		} else {
			fmt.Fprintf(out, "❌ Deck '%s' has %d validation errors:\n", deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return invalidFile(fmt.Errorf("validation failed"))
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

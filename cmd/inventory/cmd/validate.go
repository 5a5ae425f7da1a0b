// Package cmd implements CLI commands for the inventory tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and machine list",
	Long:  "Load the configuration, parse and classify the machine list, and report problems without writing the inventory.",
	Args:  cobra.NoArgs,
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate executes the validate command logic.
func runValidate(cmd *cobra.Command, args []string) {
	cfg, logger := loadConfig(cmd)

	inv, err := buildInventory(cmd.Context(), cfg, logger)
	if err != nil {
		reportBuildError(logger, err)
		os.Exit(1)
	}

	fmt.Printf("✅ machine list is valid: %d machines classified\n", inv.Count())
	for _, rec := range inv.Unclassified() {
		fmt.Printf("⚠️  %s (%s) matches no role\n", rec.Name, rec.Address)
	}
}

package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "construct-ia-cli",
		Short:         "Operator utilities for Construct-IA",
		Long:          `Operator utilities for Construct-IA: cost estimates, design reports and the assistant catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddGroup(designGroup, catalogGroup)
	root.AddCommand(newEstimateCmd(), newRenderPdfCmd(), newImageCmd(), newCatalogCmd())
	return root
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

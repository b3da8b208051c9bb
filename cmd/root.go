package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fastener-resolver",
		Short: "Turn free-text fastener requests into catalog-valid part specs",
		Long: `Fastener-resolver parses informal requests like "M6 socket screw 20mm that
fits a matching nut" into fully specified fastener parts, validates the thread
size against the sizes each standard actually offers, and resolves each part
against a McMaster-Carr vendor catalog.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newSizesCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}

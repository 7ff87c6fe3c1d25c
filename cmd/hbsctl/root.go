package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hbsctl",
		Short:         "Hotel quote service administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", defaultConfigPath, "Path to config.toml")
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newMigrateLegacyCmd(),
		newExportCmd(),
		newImportCmd(),
		newTokenCmd(),
		newQuoteCmd(),
	)

	return root
}

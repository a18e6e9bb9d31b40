package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ident",
	Short: "Generate portable UAX #31 identifier tables from the UCD",
	Long: `ident provides two features:
- Compiles DerivedCoreProperties.txt into portable ID_Start/ID_Continue tables.
- Checks whether a string is a default Unicode identifier using compiled tables.
  This feature is primarily aimed at debugging the tables.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"github.com/nihei9/ident/driver/classifier"
	"github.com/nihei9/ident/spec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check whether strings are default Unicode identifiers",
		Example: `  ident check props.json naïve _tmp 9lives`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	tabs, err := readCompiledPropTables(args[0])
	if err != nil {
		return fmt.Errorf("cannot read the compiled tables: %w", err)
	}
	c, err := classifier.NewClassifier(tabs)
	if err != nil {
		return err
	}

	invalid := false
	for _, id := range args[1:] {
		if c.IsIdentifier(id) {
			fmt.Fprintf(os.Stdout, "valid\t%v\n", id)
		} else {
			fmt.Fprintf(os.Stdout, "invalid\t%v\n", id)
			invalid = true
		}
	}
	if invalid {
		return fmt.Errorf("some strings are not identifiers")
	}
	return nil
}

func readCompiledPropTables(path string) (*spec.CompiledPropTables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return spec.ReadCompiledPropTables(f)
}

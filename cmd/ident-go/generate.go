package main

import (
	"fmt"
	"os"

	"github.com/nihei9/ident/driver/classifier"
	"github.com/nihei9/ident/spec"
	"github.com/spf13/cobra"
)

func Execute() error {
	return generateCmd.Execute()
}

var generateFlags = struct {
	pkgName *string
}{}

var generateCmd = &cobra.Command{
	Use:           "ident-go",
	Short:         "Generate an identifier classifier for Go",
	Long:          `ident-go generates an identifier classifier for Go.`,
	Example:       `  ident-go props.json`,
	Args:          cobra.ExactArgs(1),
	RunE:          runGenerate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	generateFlags.pkgName = generateCmd.Flags().StringP("package", "p", "main", "package name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tabs, err := readCompiledPropTables(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read the compiled tables: %w", err)
	}

	b, err := classifier.GenClassifier(tabs, *generateFlags.pkgName)
	if err != nil {
		return fmt.Errorf("Failed to generate a classifier: %w", err)
	}

	filePath := fmt.Sprintf("%v_props.go", tabs.Name)

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Failed to create an output file: %v", err)
	}
	defer f.Close()

	_, err = f.Write(b)
	if err != nil {
		return fmt.Errorf("Failed to write classifier source code: %v", err)
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

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	ierr "github.com/nihei9/ident/error"
	"github.com/nihei9/ident/spec"
	"github.com/nihei9/ident/trie"
	"github.com/nihei9/ident/ucd"
	"github.com/spf13/cobra"
)

const defaultUnicodeVersion = "15.0.0"

var compileFlags = struct {
	output  *string
	name    *string
	version *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile",
		Short:   "Compile DerivedCoreProperties.txt into identifier property tables",
		Example: `  ident compile DerivedCoreProperties.txt -o props.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	compileFlags.name = cmd.Flags().StringP("name", "n", "ident", "name of the compiled tables")
	compileFlags.version = cmd.Flags().StringP("unicode-version", "u", defaultUnicodeVersion, "UCD version to download when no input file is given")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) (retErr error) {
	var dataPath string
	if len(args) > 0 {
		dataPath = args[0]
	}
	defer func() {
		dataErr, ok := retErr.(*ierr.DataError)
		if !ok {
			return
		}
		if dataPath != "" {
			dataErr.FilePath = dataPath
			dataErr.SourceName = dataPath
		} else {
			dataErr.SourceName = "DerivedCoreProperties.txt"
		}
	}()

	var src io.Reader
	if dataPath != "" {
		f, err := os.Open(dataPath)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	} else {
		url := fmt.Sprintf("https://www.unicode.org/Public/%v/ucd/DerivedCoreProperties.txt", *compileFlags.version)
		resp, err := http.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("failed to download %v: %v", url, resp.Status)
		}
		src = resp.Body
	}

	dcp, err := ucd.ParseDerivedCoreProperties(src)
	if err != nil {
		return err
	}

	tabs, err := compile(dcp)
	if err != nil {
		return err
	}

	w := os.Stdout
	if *compileFlags.output != "" {
		f, err := os.OpenFile(*compileFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("failed to create an output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return spec.WriteCompiledPropTables(w, tabs)
}

func compile(dcp *ucd.DerivedCoreProperties) (*spec.CompiledPropTables, error) {
	startTrie, err := buildTrie(dcp.IDStart)
	if err != nil {
		return nil, fmt.Errorf("failed to build the ID_Start trie: %w", err)
	}
	contTrie, err := buildTrie(dcp.IDContinue)
	if err != nil {
		return nil, fmt.Errorf("failed to build the ID_Continue trie: %w", err)
	}

	return &spec.CompiledPropTables{
		Name:           *compileFlags.name,
		UnicodeVersion: *compileFlags.version,
		IsIDStart:      spec.NewPropTable(startTrie),
		IsIDContinue:   spec.NewPropTable(contTrie),
	}, nil
}

func buildTrie(ranges []*ucd.CodePointRange) (*trie.Trie, error) {
	set := trie.NewCodePointSet()
	for _, r := range ranges {
		set.AddRange(r.From, r.To)
	}
	return trie.Build(set)
}

package spec

import (
	"encoding/json"
	"io"

	"github.com/nihei9/ident/trie"
)

// CompiledPropTables is the persisted artifact of a generation run. It holds
// one trie per identifier property and is everything the runtime classifier
// needs.
type CompiledPropTables struct {
	Name           string     `json:"name"`
	UnicodeVersion string     `json:"unicode_version"`
	IsIDStart      *PropTable `json:"is_id_start"`
	IsIDContinue   *PropTable `json:"is_id_continue"`
}

// PropTable is the serialized form of one trie. Root entries are bare chunk
// slot indexes; a reader scales them by trie.WordsPerChunk to address Leaf.
type PropTable struct {
	Root []int    `json:"root"`
	Leaf []uint32 `json:"leaf"`
}

func NewPropTable(t *trie.Trie) *PropTable {
	root := make([]int, len(t.Root))
	for i, e := range t.Root {
		root[i] = int(e)
	}
	leaf := make([]uint32, len(t.Leaf))
	copy(leaf, t.Leaf)
	return &PropTable{
		Root: root,
		Leaf: leaf,
	}
}

// WriteCompiledPropTables serializes the tables as JSON.
func WriteCompiledPropTables(w io.Writer, tabs *CompiledPropTables) error {
	out, err := json.Marshal(tabs)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// ReadCompiledPropTables deserializes tables written by
// WriteCompiledPropTables.
func ReadCompiledPropTables(r io.Reader) (*CompiledPropTables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tabs := &CompiledPropTables{}
	err = json.Unmarshal(data, tabs)
	if err != nil {
		return nil, err
	}
	return tabs, nil
}

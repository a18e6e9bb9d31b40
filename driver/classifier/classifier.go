package classifier

import (
	"fmt"

	"github.com/nihei9/ident/spec"
)

const (
	codePointMax = 0x10FFFF

	wordBits      = 32
	wordsPerChunk = 16
	chunkSize     = wordBits * wordsPerChunk
	windowCount   = 4096
)

// U+200C ZERO WIDTH NON-JOINER and U+200D ZERO WIDTH JOINER don't have the
// ID_Continue property but UAX31-R1-1 allows them inside an identifier, never
// first or last.
const (
	zwnj = 0x200C
	zwj  = 0x200D
)

type propTable struct {
	root []int
	leaf []uint32
}

// contains resolves a code point in two array reads and a bit test. The root
// entry is a bare chunk slot, so it is scaled by wordsPerChunk before the
// sub-chunk word offset is added.
func (t *propTable) contains(cp rune) bool {
	window := int(cp) / chunkSize
	local := int(cp) - window*chunkSize
	word := t.leaf[t.root[window]*wordsPerChunk+local/wordBits]
	return word&(1<<(local%wordBits)) != 0
}

// Classifier answers the UAX #31 identifier properties of code points using
// compiled tables. The tables are never mutated after NewClassifier, so any
// number of goroutines may share one Classifier without synchronization.
type Classifier struct {
	start propTable
	cont  propTable
}

// NewClassifier validates the shape of the compiled tables and wraps them.
// Validating every root entry here is what makes the lookup methods total: a
// malformed artifact is rejected up front instead of panicking mid-lookup.
func NewClassifier(tabs *spec.CompiledPropTables) (*Classifier, error) {
	start, err := newPropTable(tabs.IsIDStart)
	if err != nil {
		return nil, fmt.Errorf("invalid is_id_start table: %w", err)
	}
	cont, err := newPropTable(tabs.IsIDContinue)
	if err != nil {
		return nil, fmt.Errorf("invalid is_id_continue table: %w", err)
	}
	return &Classifier{
		start: start,
		cont:  cont,
	}, nil
}

func newPropTable(tab *spec.PropTable) (propTable, error) {
	if tab == nil {
		return propTable{}, fmt.Errorf("table is missing")
	}
	if len(tab.Root) != windowCount {
		return propTable{}, fmt.Errorf("root must have %v entries but has %v", windowCount, len(tab.Root))
	}
	if len(tab.Leaf) == 0 || len(tab.Leaf)%wordsPerChunk != 0 {
		return propTable{}, fmt.Errorf("leaf length must be a positive multiple of %v but is %v", wordsPerChunk, len(tab.Leaf))
	}
	chunkCount := len(tab.Leaf) / wordsPerChunk
	for window, slot := range tab.Root {
		if slot < 0 || slot >= chunkCount {
			return propTable{}, fmt.Errorf("root entry %v of window %v exceeds the chunk count %v", slot, window, chunkCount)
		}
	}
	return propTable{
		root: tab.Root,
		leaf: tab.Leaf,
	}, nil
}

// CanStartIdentifier reports whether a code point has the ID_Start property.
// Code points outside the Unicode codespace never have it.
//
// ASCII takes a fixed fast path instead of the trie: letters, `_`, and `$`
// may start an identifier.
func (c *Classifier) CanStartIdentifier(cp rune) bool {
	if cp < 0x80 {
		return isASCIIIDStart(cp)
	}
	if cp > codePointMax {
		return false
	}
	return c.start.contains(cp)
}

// CanContinueIdentifier reports whether a code point has the ID_Continue
// property. Code points outside the Unicode codespace never have it.
//
// ASCII takes a fixed fast path instead of the trie: letters, digits, and `_`
// may continue an identifier. Unlike the start rule, `$` may not.
func (c *Classifier) CanContinueIdentifier(cp rune) bool {
	if cp < 0x80 {
		return isASCIIIDContinue(cp)
	}
	if cp > codePointMax {
		return false
	}
	return c.cont.contains(cp)
}

// IsIdentifier reports whether a string is a default identifier as defined by
// UAX31-R1-1: an ID_Start code point followed by ID_Continue code points, with
// ZWNJ and ZWJ additionally allowed in medial position.
func (c *Classifier) IsIdentifier(s string) bool {
	rs := []rune(s)
	if len(rs) == 0 {
		return false
	}
	if !c.CanStartIdentifier(rs[0]) {
		return false
	}
	for i, cp := range rs[1:] {
		if c.CanContinueIdentifier(cp) {
			continue
		}
		if cp != zwnj && cp != zwj {
			return false
		}
		if i+1 == len(rs)-1 {
			// The joiners are only allowed in the middle, not at the end.
			return false
		}
	}
	return true
}

func isASCIIIDStart(cp rune) bool {
	return cp >= 'a' && cp <= 'z' ||
		cp >= 'A' && cp <= 'Z' ||
		cp == '_' || cp == '$'
}

func isASCIIIDContinue(cp rune) bool {
	return cp >= 'a' && cp <= 'z' ||
		cp >= 'A' && cp <= 'Z' ||
		cp >= '0' && cp <= '9' ||
		cp == '_'
}

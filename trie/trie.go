package trie

import "fmt"

const (
	// WordBits is the width of one leaf word.
	WordBits = 32
	// WordsPerChunk is the number of leaf words covering one chunk.
	WordsPerChunk = 16
	// ChunkSize is the number of consecutive code points covered by one chunk.
	ChunkSize = WordBits * WordsPerChunk
	// WindowCount is the number of chunk-sized windows the trie addresses.
	// 4096 windows cover every 21-bit input, so a root lookup never goes out
	// of bounds even for indexes past the last valid code point.
	WindowCount = 4096
	// MaxUniqueChunks is the number of distinct chunks representable by a
	// uint8 root entry.
	MaxUniqueChunks = 256
)

// Trie is a two-level lookup structure over the code point domain. Root maps a
// 512-code-point window to the slot of its chunk, and Leaf stores each unique
// chunk's 16 words once, in slot order. A root entry holds the bare slot
// index; a reader must scale it by WordsPerChunk to address Leaf.
type Trie struct {
	Root []uint8
	Leaf []uint32
}

// Contains reports whether the trie has the bit for a code point set. Code
// points outside the Unicode codespace are never members.
func (t *Trie) Contains(cp rune) bool {
	if cp < 0 || cp > codePointMax {
		return false
	}
	window := int(cp) / ChunkSize
	local := int(cp) - window*ChunkSize
	word := t.Leaf[int(t.Root[window])*WordsPerChunk+local/WordBits]
	return word&(1<<(local%WordBits)) != 0
}

// chunk resolves the chunk a root entry refers to.
func (t *Trie) chunk(window int) ([]uint32, error) {
	if window < 0 || window >= len(t.Root) {
		return nil, fmt.Errorf("window is out of range: %v", window)
	}
	offset := int(t.Root[window]) * WordsPerChunk
	if offset+WordsPerChunk > len(t.Leaf) {
		return nil, fmt.Errorf("root entry %v of window %v exceeds the leaf", t.Root[window], window)
	}
	return t.Leaf[offset : offset+WordsPerChunk], nil
}

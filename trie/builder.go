package trie

import "fmt"

type chunk [WordsPerChunk]uint32

// Build compresses a code point set into a trie. It materializes the chunk of
// every window, deduplicates bit-identical chunks by assigning slots in
// first-seen order, and flattens the unique chunks into the leaf. Windows past
// the last valid code point have no members, so they all share the slot of the
// all-zero chunk.
//
// Build fails when the set needs more than MaxUniqueChunks unique chunks
// because a root entry must fit a uint8. Widening the root would be a format
// change, not something to do silently.
func Build(set CodePointSet) (*Trie, error) {
	root := make([]uint8, WindowCount)
	var leaf []uint32
	chunk2Slot := map[chunk]int{}
	nextSlot := 0
	for window := 0; window < WindowCount; window++ {
		var c chunk
		base := window * ChunkSize
		for i := 0; i < ChunkSize; i++ {
			if set.Contains(rune(base + i)) {
				c[i/WordBits] |= 1 << (i % WordBits)
			}
		}

		slot, ok := chunk2Slot[c]
		if !ok {
			slot = nextSlot
			nextSlot++
			if nextSlot > MaxUniqueChunks {
				return nil, fmt.Errorf("unique chunk count exceeds %v; the root entries no longer fit a uint8", MaxUniqueChunks)
			}
			chunk2Slot[c] = slot
			leaf = append(leaf, c[:]...)
		}
		root[window] = uint8(slot)
	}

	return &Trie{
		Root: root,
		Leaf: leaf,
	}, nil
}

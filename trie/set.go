package trie

const codePointMax = 0x10FFFF

// CodePointSet is an unordered set of code points carrying one property. It is
// a transient, generation-time value; the builder turns it into a Trie and the
// set is discarded.
type CodePointSet map[rune]struct{}

func NewCodePointSet() CodePointSet {
	return CodePointSet{}
}

func (s CodePointSet) Add(cp rune) {
	s[cp] = struct{}{}
}

// AddRange adds every code point of an inclusive range.
func (s CodePointSet) AddRange(from, to rune) {
	for cp := from; cp <= to; cp++ {
		s[cp] = struct{}{}
	}
}

func (s CodePointSet) Contains(cp rune) bool {
	_, ok := s[cp]
	return ok
}

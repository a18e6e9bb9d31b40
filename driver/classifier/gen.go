package classifier

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/nihei9/ident/spec"
)

// GenClassifier generates a standalone Go source file embedding the compiled
// tables along with lookup functions equivalent to Classifier's. The generated
// file has no dependencies outside the standard library.
func GenClassifier(tabs *spec.CompiledPropTables, pkgName string) ([]byte, error) {
	start, err := newPropTable(tabs.IsIDStart)
	if err != nil {
		return nil, fmt.Errorf("invalid is_id_start table: %w", err)
	}
	cont, err := newPropTable(tabs.IsIDContinue)
	if err != nil {
		return nil, fmt.Errorf("invalid is_id_continue table: %w", err)
	}
	for _, t := range []propTable{start, cont} {
		if chunkCount := len(t.leaf) / wordsPerChunk; chunkCount > 256 {
			return nil, fmt.Errorf("chunk count %v doesn't fit the uint8 root entries of the generated source", chunkCount)
		}
	}

	tmpl, err := template.New("classifier").Parse(classifierTmpl)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	err = tmpl.Execute(&b, struct {
		PkgName        string
		Name           string
		UnicodeVersion string
		WindowCount    int
		StartRoot      string
		StartLeaf      string
		ContinueRoot   string
		ContinueLeaf   string
	}{
		PkgName:        pkgName,
		Name:           tabs.Name,
		UnicodeVersion: tabs.UnicodeVersion,
		WindowCount:    windowCount,
		StartRoot:      renderRootRows(start.root),
		StartLeaf:      renderLeafRows(start.leaf),
		ContinueRoot:   renderRootRows(cont.root),
		ContinueLeaf:   renderLeafRows(cont.leaf),
	})
	if err != nil {
		return nil, err
	}

	return []byte(b.String()), nil
}

func renderRootRows(entries []int) string {
	var b strings.Builder
	for i, e := range entries {
		if i%16 == 0 {
			fmt.Fprint(&b, "\t")
		}
		fmt.Fprintf(&b, "%v,", e)
		if i%16 == 15 {
			fmt.Fprint(&b, "\n")
		} else {
			fmt.Fprint(&b, " ")
		}
	}
	return b.String()
}

func renderLeafRows(words []uint32) string {
	var b strings.Builder
	for i, w := range words {
		if i%8 == 0 {
			fmt.Fprint(&b, "\t")
		}
		fmt.Fprintf(&b, "0x%08X,", w)
		if i%8 == 7 {
			fmt.Fprint(&b, "\n")
		} else {
			fmt.Fprint(&b, " ")
		}
	}
	if len(words)%8 != 0 {
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

const classifierTmpl = `// Code generated by ident-go; DO NOT EDIT.
// Name: {{ .Name }}
// Unicode version: {{ .UnicodeVersion }}

package {{ .PkgName }}

const (
	_identWordBits      = 32
	_identWordsPerChunk = 16
	_identChunkSize     = _identWordBits * _identWordsPerChunk
)

var _idStartRoot = [{{ .WindowCount }}]uint8{
{{ .StartRoot }}}

var _idStartLeaf = []uint32{
{{ .StartLeaf }}}

var _idContinueRoot = [{{ .WindowCount }}]uint8{
{{ .ContinueRoot }}}

var _idContinueLeaf = []uint32{
{{ .ContinueLeaf }}}

func _identContains(root *[{{ .WindowCount }}]uint8, leaf []uint32, cp rune) bool {
	window := int(cp) / _identChunkSize
	local := int(cp) - window*_identChunkSize
	word := leaf[int(root[window])*_identWordsPerChunk+local/_identWordBits]
	return word&(1<<(local%_identWordBits)) != 0
}

// CanStartIdentifier reports whether a code point has the ID_Start property.
func CanStartIdentifier(cp rune) bool {
	if cp < 0x80 {
		return cp >= 'a' && cp <= 'z' ||
			cp >= 'A' && cp <= 'Z' ||
			cp == '_' || cp == '$'
	}
	if cp > 0x10FFFF {
		return false
	}
	return _identContains(&_idStartRoot, _idStartLeaf, cp)
}

// CanContinueIdentifier reports whether a code point has the ID_Continue property.
func CanContinueIdentifier(cp rune) bool {
	if cp < 0x80 {
		return cp >= 'a' && cp <= 'z' ||
			cp >= 'A' && cp <= 'Z' ||
			cp >= '0' && cp <= '9' ||
			cp == '_'
	}
	if cp > 0x10FFFF {
		return false
	}
	return _identContains(&_idContinueRoot, _idContinueLeaf, cp)
}
`

package ucd

import (
	"errors"
	"strings"
	"testing"

	ierr "github.com/nihei9/ident/error"
)

func TestParseDerivedCoreProperties(t *testing.T) {
	src := `# DerivedCoreProperties-15.0.0.txt
# ================================================

# Derived Property: Alphabetic
0041..005A    ; Alphabetic # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z

# Derived Property: ID_Start
0041..005A    ; ID_Start # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
00AA          ; ID_Start # Lo       FEMININE ORDINAL INDICATOR
03A3..03F5    ; ID_Start # L&  [83] GREEK CAPITAL LETTER SIGMA..GREEK LUNATE EPSILON SYMBOL

# Derived Property: ID_Continue
0030..0039    ; ID_Continue # Nd  [10] DIGIT ZERO..DIGIT NINE
005F          ; ID_Continue # Pc       LOW LINE

# Derived Property: XID_Start
1885..1886    ; XID_Start # Mn   [2] MONGOLIAN LETTER ALI GALI BALUDA..MONGOLIAN LETTER TODO ALI GALI BALUDA

# Derived Property: XID_Continue
E0100..E01EF  ; XID_Continue # Mn [240] VARIATION SELECTOR-17..VARIATION SELECTOR-256

# Derived Property: Math
002B          ; Math # Sm        PLUS SIGN
`

	dcp, err := ParseDerivedCoreProperties(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	expectedStart := []*CodePointRange{
		{From: 0x0041, To: 0x005A},
		{From: 0x00AA, To: 0x00AA},
		{From: 0x03A3, To: 0x03F5},
		{From: 0x1885, To: 0x1886},
	}
	expectedCont := []*CodePointRange{
		{From: 0x0030, To: 0x0039},
		{From: 0x005F, To: 0x005F},
		{From: 0xE0100, To: 0xE01EF},
	}

	if len(dcp.IDStart) != len(expectedStart) {
		t.Fatalf("unexpected ID_Start range count; want: %v, got: %v", len(expectedStart), len(dcp.IDStart))
	}
	for i, e := range expectedStart {
		if dcp.IDStart[i].From != e.From || dcp.IDStart[i].To != e.To {
			t.Fatalf("unexpected ID_Start range; want: %X..%X, got: %X..%X", e.From, e.To, dcp.IDStart[i].From, dcp.IDStart[i].To)
		}
	}
	if len(dcp.IDContinue) != len(expectedCont) {
		t.Fatalf("unexpected ID_Continue range count; want: %v, got: %v", len(expectedCont), len(dcp.IDContinue))
	}
	for i, e := range expectedCont {
		if dcp.IDContinue[i].From != e.From || dcp.IDContinue[i].To != e.To {
			t.Fatalf("unexpected ID_Continue range; want: %X..%X, got: %X..%X", e.From, e.To, dcp.IDContinue[i].From, dcp.IDContinue[i].To)
		}
	}
}

func TestParseDerivedCoreProperties_MalformedCodePoint(t *testing.T) {
	tests := []struct {
		name string
		src  string
		row  int
	}{
		{
			name: "malformed hex literal",
			src: `0041..005A    ; ID_Start
004G          ; ID_Start
`,
			row: 2,
		},
		{
			name: "code point out of range",
			src: `110000        ; ID_Continue
`,
			row: 1,
		},
		{
			name: "descending range",
			src: `# a header comment
005A..0041    ; ID_Start
`,
			row: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dcp, err := ParseDerivedCoreProperties(strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("expected error didn't occur; got: %#v", dcp)
			}
			var dataErr *ierr.DataError
			if !errors.As(err, &dataErr) {
				t.Fatalf("unexpected error type: %T", err)
			}
			if dataErr.Row != tt.row {
				t.Fatalf("unexpected row; want: %v, got: %v", tt.row, dataErr.Row)
			}
		})
	}
}

func TestParseDerivedCoreProperties_IgnoresMalformedFieldsOfOtherProperties(t *testing.T) {
	// A malformed code point is detected only on lines naming an identifier
	// property; the parser doesn't look at the other lines' fields.
	src := `004G          ; Alphabetic
0041..005A    ; ID_Start
`
	dcp, err := ParseDerivedCoreProperties(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(dcp.IDStart) != 1 || len(dcp.IDContinue) != 0 {
		t.Fatalf("unexpected ranges: %#v", dcp)
	}
}

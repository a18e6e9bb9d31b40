package ucd

import (
	"io"

	ierr "github.com/nihei9/ident/error"
)

// DerivedCoreProperties holds the code point ranges of the two identifier
// properties defined by UAX #31. Following the original classification, the
// ID_Start bucket also contains XID_Start ranges, and the ID_Continue bucket
// also contains XID_Continue ranges.
//
// https://www.unicode.org/reports/tr31/
type DerivedCoreProperties struct {
	IDStart    []*CodePointRange
	IDContinue []*CodePointRange
}

// ParseDerivedCoreProperties parses the DerivedCoreProperties.txt.
func ParseDerivedCoreProperties(r io.Reader) (*DerivedCoreProperties, error) {
	var start []*CodePointRange
	var cont []*CodePointRange
	p := newParser(r)
	for p.parse() {
		if len(p.fields) < 2 {
			continue
		}

		var ranges *[]*CodePointRange
		switch p.fields[1].symbol() {
		case "ID_Start", "XID_Start":
			ranges = &start
		case "ID_Continue", "XID_Continue":
			ranges = &cont
		default:
			continue
		}

		cp, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, &ierr.DataError{
				Cause: err,
				Row:   p.row,
			}
		}

		*ranges = append(*ranges, cp)
	}
	if p.err != nil {
		return nil, p.err
	}

	return &DerivedCoreProperties{
		IDStart:    start,
		IDContinue: cont,
	}, nil
}

package ucd

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	// https://www.unicode.org/versions/Unicode13.0.0/ch03.pdf
	// 3.4  Characters and Encoding
	// > D9 Unicode codespace: A range of integers from 0 to 10FFFF16.
	codePointMin = 0x0
	codePointMax = 0x10FFFF
)

type CodePointRange struct {
	From rune
	To   rune
}

var codePointRangeNil = &CodePointRange{
	From: 0,
	To:   0,
}

type field string

func (f field) codePointRange() (*CodePointRange, error) {
	var from, to rune
	var err error
	cp := reCodePointRange.FindStringSubmatch(string(f))
	if cp == nil {
		return codePointRangeNil, fmt.Errorf("invalid code point range: %v", string(f))
	}
	from, err = decodeHexToRune(cp[1])
	if err != nil {
		return codePointRangeNil, err
	}
	if cp[2] != "" {
		to, err = decodeHexToRune(cp[2])
		if err != nil {
			return codePointRangeNil, err
		}
	} else {
		to = from
	}
	if from > to {
		return codePointRangeNil, fmt.Errorf("descending code point range: %v", string(f))
	}
	return &CodePointRange{
		From: from,
		To:   to,
	}, nil
}

func decodeHexToRune(hexCodePoint string) (rune, error) {
	h := hexCodePoint
	if len(h)%2 != 0 {
		h = "0" + h
	}
	if len(h) > 8 {
		return 0, fmt.Errorf("invalid code point: %v", hexCodePoint)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return 0, fmt.Errorf("invalid code point: %v", hexCodePoint)
	}
	l := len(b)
	for i := 0; i < 4-l; i++ {
		b = append([]byte{0}, b...)
	}
	n := binary.BigEndian.Uint32(b)
	if n > codePointMax {
		return 0, fmt.Errorf("code point out of range: %v", hexCodePoint)
	}
	return rune(n), nil
}

func (f field) symbol() string {
	return string(f)
}

var (
	reLine           = regexp.MustCompile(`^\s*(.*?)\s*(#.*)?$`)
	reCodePointRange = regexp.MustCompile(`^([[:xdigit:]]+)(?:\.\.([[:xdigit:]]+))?$`)

	specialCommentPrefix = "# @missing:"
)

// This parser can parse data files of Unicode Character Database (UCD).
// Specifically, it has the following two functions:
// - Converts each line of the data files into a slice of fields.
// - Recognizes specially-formatted comments starting `@missing` and generates a slice of fields.
//
// However, for practical purposes, each field needs to be analyzed more specifically.
// For instance, in DerivedCoreProperties.txt, the first field represents a range of code points,
// so it needs to be recognized as a hexadecimal string.
// You can perform more specific parsing for each file by implementing a dedicated parser that wraps this parser.
//
// https://www.unicode.org/reports/tr44/#Format_Conventions
type parser struct {
	scanner       *bufio.Scanner
	fields        []field
	defaultFields []field
	row           int
	err           error

	fieldBuf        []field
	defaultFieldBuf []field
}

func newParser(r io.Reader) *parser {
	return &parser{
		scanner:         bufio.NewScanner(r),
		fieldBuf:        make([]field, 50),
		defaultFieldBuf: make([]field, 50),
	}
}

func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.row++
		p.parseRecord(p.scanner.Text())
		if p.fields != nil || p.defaultFields != nil {
			return true
		}
	}
	p.err = p.scanner.Err()
	return false
}

func (p *parser) parseRecord(src string) {
	ms := reLine.FindStringSubmatch(src)
	mFields := ms[1]
	mComment := ms[2]
	if mFields != "" {
		p.fields = parseFields(p.fieldBuf, mFields)
	} else {
		p.fields = nil
	}
	if strings.HasPrefix(mComment, specialCommentPrefix) {
		p.defaultFields = parseFields(p.defaultFieldBuf, strings.Replace(mComment, specialCommentPrefix, "", -1))
	} else {
		p.defaultFields = nil
	}
}

func parseFields(buf []field, src string) []field {
	n := 0
	for _, f := range strings.Split(src, ";") {
		buf[n] = field(strings.TrimSpace(f))
		n++
	}

	return buf[:n]
}

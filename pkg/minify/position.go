package minify

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a 1-based location in the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("{line:%d,col:%d}", p.Line, p.Column)
}

// Locate returns the position of the byte index within text.
// Lines are separated by eol; a terminator counts only when it ends at or before
// index. Columns count runes, so a multi-byte character takes one column.
func Locate(text string, index int, eol EOL) Position {
	if index < 0 {
		index = 0
	}
	if index > len(text) {
		index = len(text)
	}
	if eol == "" {
		eol = LF
	}

	line, start := 1, 0
	for start < index {
		n := strings.Index(text[start:], string(eol))
		if n == -1 || index < start+n+len(eol) {
			break
		}

		line++
		start += n + len(eol)
	}

	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(text[start:index]) + 1,
	}
}

// A locator maps non-decreasing offsets of text to positions, resuming from
// the previous offset, so locating every span of a pass is linear in total.
type locator struct {
	text    string
	eol     EOL
	line    int
	start   int // offset of the current line
	scanned int // last located offset
	runes   int // runes between start and scanned
}

func newLocator(text string, eol EOL) *locator {
	if eol == "" {
		eol = LF
	}
	return &locator{text: text, eol: eol, line: 1}
}

// at returns the position of index. An index before the previous one falls
// back to Locate.
func (l *locator) at(index int) Position {
	if index > len(l.text) {
		index = len(l.text)
	}
	if index < l.scanned {
		return Locate(l.text, index, l.eol)
	}

	// a terminator may straddle the previous offset
	from := l.scanned - (len(l.eol) - 1)
	if from < l.start {
		from = l.start
	}
	for {
		n := strings.Index(l.text[from:index], string(l.eol))
		if n == -1 {
			break
		}
		l.line++
		l.start = from + n + len(l.eol)
		from = l.start
	}

	if l.start > l.scanned {
		l.runes = utf8.RuneCountInString(l.text[l.start:index])
	} else {
		l.runes += utf8.RuneCountInString(l.text[l.scanned:index])
	}
	l.scanned = index

	return Position{Line: l.line, Column: l.runes + 1}
}

package minify

import (
	"strings"

	"github.com/itcomusic/sqlmin/internal/trace"
)

// compressors are the symbols that need no spaces around them.
const compressors = ".,;:()[]=<>+-*/|!?@#"

func isGap(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isCompressor(c byte) bool {
	return strings.IndexByte(compressors, c) >= 0
}

// A scanner walks the source once, left to right.
// pos is the index of the next byte to look at, it never decreases.
type scanner struct {
	src      string
	pos      int
	eol      EOL
	compress bool
	trace    *trace.Writer
	loc      *locator

	out   strings.Builder
	space bool // a separating space is owed before the next output
	err   error
}

func newScanner(src string, opts *Options) *scanner {
	s := &scanner{
		src: src,
		eol: DetectEOL(src),
	}
	s.loc = newLocator(src, s.eol)
	if opts != nil {
		s.compress = opts.Compress
		s.trace = trace.New(opts.Debug)
	}
	s.out.Grow(len(src))
	return s
}

// run scans the whole source. The first malformed span stops it.
func (s *scanner) run() error {
	for s.pos < len(s.src) && s.err == nil {
		c := s.src[s.pos]
		switch {
		case isGap(c):
			s.scanGap()
		case c == '-' && s.next() == '-':
			if !s.scanLineComment() {
				return nil
			}
		case c == '/' && s.next() == '*':
			s.scanBlockComment()
		case c == '"':
			s.scanQuotedIdentifier()
		case c == '\'':
			s.scanString()
		case s.compress && isCompressor(c):
			s.space = false
			s.out.WriteByte(c)
			s.pos++
			s.skipGaps()
		default:
			s.addSpace()
			s.out.WriteByte(c)
			s.pos++
		}
	}
	return s.err
}

func (s *scanner) next() byte {
	if s.pos+1 < len(s.src) {
		return s.src[s.pos+1]
	}
	return 0
}

// scanGap consumes a run of whitespace. It owes a space unless the run ends the input.
func (s *scanner) scanGap() {
	for s.pos < len(s.src) && isGap(s.src[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.src) {
		s.space = true
	}
}

// skipGaps consumes whitespace without owing a space, in compress mode only.
func (s *scanner) skipGaps() {
	if !s.compress {
		return
	}
	for s.pos < len(s.src) && isGap(s.src[s.pos]) {
		s.pos++
	}
}

// addSpace writes the owed space, if any. Nothing is written at the start of the output.
func (s *scanner) addSpace() {
	if s.space {
		if s.out.Len() > 0 {
			s.out.WriteByte(' ')
		}
		s.space = false
	}
}

// scanLineComment drops a "--" comment up to the end of line.
// It reports false when the comment runs to the end of the input.
func (s *scanner) scanLineComment() bool {
	n := strings.Index(s.src[s.pos+2:], string(s.eol))
	if n == -1 {
		s.debug(trace.LineComment, s.src[s.pos:])
		s.pos = len(s.src)
		return false
	}

	end := s.pos + 2 + n
	s.debug(trace.LineComment, s.src[s.pos:end])
	s.pos = end
	s.skipGaps()
	return true
}

func (s *scanner) scanBlockComment() {
	n := strings.Index(s.src[s.pos+2:], "*/")
	if n == -1 {
		s.fail(UnclosedBlockComment)
		return
	}

	end := s.pos + 2 + n + 2
	s.debug(trace.BlockComment, s.src[s.pos:end])
	s.pos = end
	s.skipGaps()
}

func (s *scanner) scanQuotedIdentifier() {
	n := strings.IndexByte(s.src[s.pos+1:], '"')
	if n == -1 {
		s.fail(UnclosedQuotedIdentifier)
		return
	}

	end := s.pos + 1 + n + 1
	text := s.src[s.pos:end]
	if strings.Contains(text, string(s.eol)) {
		s.fail(MultilineQuotedIdentifier)
		return
	}

	s.debug(trace.QuotedIdentifier, text)
	if s.compress {
		s.space = false
	}
	s.addSpace()
	s.out.WriteString(text)
	s.pos = end
	s.skipGaps()
}

// closeString returns the index of the quote closing the literal opened at
// s.pos, or -1. A run of quotes of even length is a sequence of escaped quotes;
// an odd run closes the literal at its last quote.
func (s *scanner) closeString() int {
	i := s.pos + 1
	for i < len(s.src) {
		n := strings.IndexByte(s.src[i:], '\'')
		if n == -1 {
			return -1
		}

		start := i + n
		end := start
		for end < len(s.src) && s.src[end] == '\'' {
			end++
		}
		if (end-start)%2 == 1 {
			return end - 1
		}
		i = end
	}
	return -1
}

func (s *scanner) scanString() {
	closeIdx := s.closeString()
	if closeIdx == -1 {
		s.fail(UnclosedStringLiteral)
		return
	}

	text := s.src[s.pos : closeIdx+1]
	s.debug(trace.StringLiteral, text)
	if s.compress {
		s.space = false
	}
	s.addSpace()

	multiline := strings.Contains(text, string(s.eol))
	if multiline {
		lines := strings.Split(text, string(s.eol))
		for i := range lines {
			lines[i] = strings.TrimSpace(lines[i])
		}
		text = strings.Join(lines, `\n`)
	}

	tabs := strings.IndexByte(text, '\t') >= 0
	if tabs {
		text = strings.Replace(text, "\t", `\t`, -1)
	}

	if (multiline || tabs) && !s.escaped() {
		s.markEscape()
		s.debug(trace.EscapeString, "E"+text)
	}

	s.out.WriteString(text)
	s.pos = closeIdx + 1
	s.skipGaps()
}

// escaped reports whether the literal at s.pos is already an E'...' string.
func (s *scanner) escaped() bool {
	if s.pos == 0 {
		return false
	}
	prev := s.src[s.pos-1]
	return prev == 'E' || prev == 'e'
}

// markEscape writes the E prefix, separated from a preceding word by one space.
func (s *scanner) markEscape() {
	if n := s.out.Len(); n > 0 {
		last := s.out.String()[n-1]
		if last != ' ' && !isCompressor(last) {
			s.out.WriteByte(' ')
		}
	}
	s.out.WriteByte('E')
}

// fail records a parse error located at the current span start.
func (s *scanner) fail(code ErrorCode) {
	s.err = &ParseError{
		Code:     code,
		Position: s.loc.at(s.pos),
	}
}

func (s *scanner) debug(kind, text string) {
	if s.trace == nil {
		return
	}
	p := s.loc.at(s.pos)
	s.trace.Span(kind, p.Line, p.Column, text)
}

// Package minify reduces PostgreSQL scripts to a compact form of the same meaning.
//
// Comments are removed and every run of whitespace outside of quoted
// identifiers and string literals becomes a single space. Multi-line string
// literals are joined into one line and turned into escape strings (E'...'),
// so the result always fits a single line.
package minify

import (
	"bytes"
	"io"
)

// Options controls minification. A nil *Options means the defaults.
type Options struct {
	// Compress removes spaces around the symbols .,;:()[]=<>+-*/|!?@#
	// and before quoted identifiers and string literals.
	Compress bool

	// Debug receives one line for every comment, quoted identifier and
	// string literal met in the source.
	Debug io.Writer
}

// Minify returns sql without comments and redundant whitespace.
// Malformed input is reported as a *ParseError and no output is returned.
func Minify(sql string, opts *Options) (string, error) {
	if sql == "" {
		return "", nil
	}

	s := newScanner(sql, opts)
	if err := s.run(); err != nil {
		return "", err
	}
	return s.out.String(), nil
}

// Compact appends to dst the minified src.
// On error dst is left as it was.
func Compact(dst *bytes.Buffer, src []byte, opts *Options) error {
	out, err := Minify(string(src), opts)
	if err != nil {
		return err
	}

	dst.WriteString(out)
	return nil
}

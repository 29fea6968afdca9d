// Package sqlmin minifies PostgreSQL scripts for tools that embed SQL in other
// artifacts.
//
//	out, err := sqlmin.New().Compress().Minify(sql)
//
// The scanning itself lives in pkg/minify.
package sqlmin

import (
	"io"

	"github.com/itcomusic/sqlmin/pkg/minify"
)

// Minifier holds the options of minification. It is never changed after
// creation, the builder methods return modified copies.
// A Minifier is safe for concurrent use.
type Minifier struct {
	compress bool
	debug    io.Writer
	cache    *cache
}

// New creates a minifier with default options: comments and redundant
// whitespace are removed, symbols keep their spaces.
func New() *Minifier {
	return &Minifier{}
}

func (m *Minifier) clone() *Minifier {
	c := *m
	return &c
}

// Compress returns a minifier which also removes spaces around the symbols
// .,;:()[]=<>+-*/|!?@# and before quoted identifiers and string literals.
func (m *Minifier) Compress() *Minifier {
	if m.compress {
		return m
	}

	c := m.clone()
	c.compress = true
	return c
}

// Debug returns a minifier logging in w every comment, quoted identifier
// and string literal it meets.
func (m *Minifier) Debug(w io.Writer) *Minifier {
	c := m.clone()
	c.debug = w
	return c
}

// Cache returns a minifier remembering its results in the shared Results cache.
// Parse errors are not remembered, and results found in the cache are not logged.
// Entries are kept until Results.Reset is called, so long-running callers
// minifying ever new scripts should reset it from time to time.
func (m *Minifier) Cache() *Minifier {
	c := m.clone()
	c.cache = Results
	return c
}

func (m *Minifier) options() *minify.Options {
	return &minify.Options{
		Compress: m.compress,
		Debug:    m.debug,
	}
}

// Minify returns sql without comments and redundant whitespace.
// Malformed sql is reported by *minify.ParseError and no output is returned.
func (m *Minifier) Minify(sql string) (string, error) {
	if m.cache != nil {
		if out, ok := m.cache.Find(m.compress, sql); ok {
			return out, nil
		}
	}

	out, err := minify.Minify(sql, m.options())
	if err != nil {
		return "", err
	}

	if m.cache != nil {
		m.cache.Store(m.compress, sql, out)
	}
	return out, nil
}

// Minify minifies sql with default options.
func Minify(sql string) (string, error) {
	return minify.Minify(sql, nil)
}

// Compress minifies sql removing spaces around symbols as well.
func Compress(sql string) (string, error) {
	return minify.Minify(sql, &minify.Options{Compress: true})
}

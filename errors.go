package sqlmin

import (
	"errors"

	"github.com/itcomusic/sqlmin/pkg/minify"
)

// ParseErrorOf returns the parse error in the chain of err.
func ParseErrorOf(err error) (*minify.ParseError, bool) {
	var perr *minify.ParseError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// MinifyOrKeep returns sql minified by m, or sql itself when it can not be
// minified. The parse error, if any, is returned as well.
func (m *Minifier) MinifyOrKeep(sql string) (string, error) {
	out, err := m.Minify(sql)
	if err != nil {
		return sql, err
	}
	return out, nil
}

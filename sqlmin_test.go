package sqlmin

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/itcomusic/sqlmin/pkg/minify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifier_Builder(t *testing.T) {
	t.Parallel()

	var w bytes.Buffer
	m := New()
	c := m.Compress()
	d := c.Debug(&w)

	assert.False(t, m.compress)
	assert.True(t, c.compress)
	assert.Nil(t, c.debug)
	assert.True(t, d.compress)
	assert.Equal(t, &w, d.debug)
	assert.True(t, c == c.Compress())
}

func TestMinifier_Minify(t *testing.T) {
	t.Parallel()

	const sql = "SELECT a , b\n  FROM t -- all rows\n"
	for i, tt := range []struct {
		m   *Minifier
		exp string
	}{
		{m: New(), exp: "SELECT a , b FROM t"},
		{m: New().Compress(), exp: "SELECT a,b FROM t"},
	} {
		out, err := tt.m.Minify(sql)
		require.NoError(t, err, fmt.Sprintf("#%d", i))
		assert.Equal(t, tt.exp, out, fmt.Sprintf("#%d", i))
	}

	out, err := Minify(sql)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a , b FROM t", out)

	out, err = Compress(sql)
	require.NoError(t, err)
	assert.Equal(t, "SELECT a,b FROM t", out)
}

func TestMinifier_Debug(t *testing.T) {
	t.Parallel()

	var w bytes.Buffer
	out, err := New().Debug(&w).Minify(`SELECT "id" /* key */`)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id"`, out)
	assert.Equal(t, `debug-identifier(4-bytes) at 1:8: "\"id\""`+"\n"+
		`debug-block-comment(9-bytes) at 1:13: "/* key */"`+"\n", w.String())
}

func TestMinifier_Error(t *testing.T) {
	t.Parallel()

	out, err := New().Compress().Minify("SELECT 1;\n/* open")
	assert.Equal(t, "", out)
	assert.Equal(t, &minify.ParseError{Code: minify.UnclosedBlockComment, Position: minify.Position{Line: 2, Column: 1}}, err)
}

func TestMinifier_Concurrent(t *testing.T) {
	t.Parallel()

	m := New().Compress()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			out, err := m.Minify(fmt.Sprintf("SELECT %d ,\t'x'", i))
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("SELECT %d,'x'", i), out)
		}(i)
	}
	wg.Wait()
}

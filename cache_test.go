package sqlmin

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Find(t *testing.T) {
	t.Parallel()

	c := &cache{}
	c.Store(false, "SELECT  1", "SELECT 1")
	c.Store(true, "SELECT 1 , 2", "SELECT 1,2")

	for i, tt := range []struct {
		compress bool
		sql      string
		exp      string
		ok       bool
	}{
		{compress: false, sql: "SELECT  1", exp: "SELECT 1", ok: true},
		{compress: true, sql: "SELECT  1", exp: "", ok: false},
		{compress: true, sql: "SELECT 1 , 2", exp: "SELECT 1,2", ok: true},
		{compress: false, sql: "SELECT 1 , 2", exp: "", ok: false},
	} {
		out, ok := c.Find(tt.compress, tt.sql)
		assert.Equal(t, tt.ok, ok, fmt.Sprintf("#%d", i))
		assert.Equal(t, tt.exp, out, fmt.Sprintf("#%d", i))
	}

	c.Reset()
	_, ok := c.Find(false, "SELECT  1")
	assert.False(t, ok)
}

func TestMinifier_Cache(t *testing.T) {
	t.Parallel()

	const sql = "SELECT  'cached'  -- test\n"
	var w bytes.Buffer
	m := New().Cache().Debug(&w)

	out, err := m.Minify(sql)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'cached'", out)

	cached, ok := Results.Find(false, sql)
	require.True(t, ok)
	assert.Equal(t, "SELECT 'cached'", cached)

	// the second call is answered by the cache and writes no debug lines
	n := w.Len()
	out, err = m.Minify(sql)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'cached'", out)
	assert.Equal(t, n, w.Len())

	_, err = m.Minify("SELECT 'not cached")
	require.Error(t, err)
	_, ok = Results.Find(false, "SELECT 'not cached")
	assert.False(t, ok)
}

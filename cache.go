package sqlmin

import "sync"

type cacheKey struct {
	compress bool
	sql      string
}

type cache struct {
	res sync.Map
}

// Store saves the minified sql in the cache.
func (c *cache) Store(compress bool, sql, out string) {
	c.res.Store(cacheKey{compress: compress, sql: sql}, out)
}

// Find returns the minified sql remembered for the source.
func (c *cache) Find(compress bool, sql string) (string, bool) {
	v, ok := c.res.Load(cacheKey{compress: compress, sql: sql})
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Reset forgets every result.
func (c *cache) Reset() {
	c.res.Range(func(k, _ interface{}) bool {
		c.res.Delete(k)
		return true
	})
}

// Results is a cache of the minified scripts, used by Minifier.Cache.
var Results = &cache{}

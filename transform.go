package sqlmin

import "golang.org/x/text/transform"

// Transformer returns a transform.Transformer minifying its whole input.
// The input is held until EOF, since the end-of-line convention depends on
// all of it; the minified script is written afterwards.
func (m *Minifier) Transformer() transform.Transformer {
	return &transformer{m: m}
}

type transformer struct {
	m    *Minifier
	src  []byte
	out  []byte
	done bool
}

// Transform implements [transform.Transformer.Transform].
func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.done {
		t.src = append(t.src, src...)
		nSrc = len(src)
		if !atEOF {
			return 0, nSrc, nil
		}

		out, err := t.m.Minify(string(t.src))
		if err != nil {
			return 0, nSrc, err
		}
		t.out = []byte(out)
		t.src = nil
		t.done = true
	}

	nDst = copy(dst, t.out)
	t.out = t.out[nDst:]
	if len(t.out) > 0 {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (t *transformer) Reset() {
	t.src = nil
	t.out = nil
	t.done = false
}

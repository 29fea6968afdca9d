package trace

import (
	"fmt"
	"io"
	"strconv"
	"sync"
)

// Span kinds written by the scanner.
const (
	LineComment      = "line-comment"
	BlockComment     = "block-comment"
	QuotedIdentifier = "identifier"
	StringLiteral    = "string"
	EscapeString     = "escape"
)

// A Writer represents a log in Out of the spans recognized while minifying.
// debug-<kind> shows count bytes of the span in the source and where it starts.
// A nil *Writer discards everything. Errors of Out are ignored, logging never
// fails the minification.
type Writer struct {
	mu  sync.Mutex
	Out io.Writer
}

// New returns a writer logging to w, or nil when w is nil.
func New(w io.Writer) *Writer {
	if w == nil {
		return nil
	}
	return &Writer{Out: w}
}

// Span writes one line about the span text of the given kind starting at line:col.
func (w *Writer) Span(kind string, line, col int, text string) {
	if w == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.Out, "debug-%s(%d-bytes) at %d:%d: %s\n", kind, len(text), line, col, strconv.Quote(text))
}

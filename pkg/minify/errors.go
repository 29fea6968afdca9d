package minify

import "strconv"

// ErrorCode identifies the kind of malformed span found by the scanner.
// Codes are errors themselves, so they can be matched with errors.Is.
type ErrorCode int

const (
	UnclosedBlockComment ErrorCode = iota
	UnclosedStringLiteral
	UnclosedQuotedIdentifier
	MultilineQuotedIdentifier
)

var errorCodes = [...]struct {
	name    string
	message string
}{
	UnclosedBlockComment:      {"UnclosedBlockComment", "unclosed multi-line comment"},
	UnclosedStringLiteral:     {"UnclosedStringLiteral", "unclosed text block"},
	UnclosedQuotedIdentifier:  {"UnclosedQuotedIdentifier", "unclosed quoted identifier"},
	MultilineQuotedIdentifier: {"MultilineQuotedIdentifier", "multi-line quoted identifiers are not supported"},
}

func (c ErrorCode) valid() bool {
	return c >= 0 && int(c) < len(errorCodes)
}

// String returns the stable identifier of the code.
func (c ErrorCode) String() string {
	if !c.valid() {
		return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
	}
	return errorCodes[c].name
}

// Error returns the description of the code.
func (c ErrorCode) Error() string {
	if !c.valid() {
		return "unknown parse error " + strconv.Itoa(int(c))
	}
	return errorCodes[c].message
}

// A ParseError describes malformed SQL. Position points at the opening
// delimiter of the offending span.
type ParseError struct {
	Code     ErrorCode
	Position Position
}

func (e *ParseError) Error() string {
	return "minify: " + e.Code.Error() + " at " + e.Position.String()
}

// Unwrap returns the error code.
func (e *ParseError) Unwrap() error {
	return e.Code
}

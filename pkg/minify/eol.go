package minify

import "strings"

// EOL is an end-of-line sequence.
type EOL string

const (
	LF   EOL = "\n"
	CRLF EOL = "\r\n"
)

// DetectEOL reports the end-of-line convention used by text.
// Every line feed preceded by a carriage return counts for CRLF, any other one
// counts for LF. The majority wins; balanced counts (no line feeds at all
// included) resolve to LF.
func DetectEOL(text string) EOL {
	unix, windows := 0, 0
	for i := 0; i < len(text); i++ {
		n := strings.IndexByte(text[i:], '\n')
		if n == -1 {
			break
		}

		i += n
		if i > 0 && text[i-1] == '\r' {
			windows++
		} else {
			unix++
		}
	}

	if windows > unix {
		return CRLF
	}
	return LF
}

package token

import (
	"unicode"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
)

// Parse tokenizes a single command line into a token vector. Whitespace
// outside quotes separates tokens; a double-quoted run groups whitespace
// into one token, and a doubled quote `""` inside a quoted run is a
// literal quote rather than the end of the run.
func Parse(line string) ([]string, error) {
	runes := []rune(line)
	n := len(runes)
	var tokens []string

	i := 0
	for i < n {
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= n {
			break
		}

		var token []rune
		for i < n && !unicode.IsSpace(runes[i]) {
			if runes[i] != '"' {
				token = append(token, runes[i])
				i++
				continue
			}

			i++ // consume opening quote
			closed := false
			for i < n {
				if runes[i] == '"' {
					if i+1 < n && runes[i+1] == '"' {
						token = append(token, '"')
						i += 2
						continue
					}
					i++ // consume closing quote
					closed = true
					break
				}
				token = append(token, runes[i])
				i++
			}
			if !closed {
				return nil, cmderr.New(cmderr.KindInvalidInput, "unterminated quoted token")
			}
		}

		tokens = append(tokens, string(token))
	}

	return tokens, nil
}

// ParseString is Parse's nil-aware sibling: a host that can only hand an
// interpreter an optional line (e.g. *string from an FFI boundary) gets
// the §4.1 "Parse(null) fails with an invalid-input error" contract
// without Go's non-nullable string type standing in the way.
func ParseString(line *string) ([]string, error) {
	if line == nil {
		return nil, cmderr.New(cmderr.KindInvalidInput, "input line is required")
	}
	return Parse(*line)
}

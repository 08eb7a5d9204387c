// Package macro implements the "$(Name)"/"$$" substitution applied to
// each REPL input line before pipeline splitting (§4.7).
package macro

import (
	"fmt"
	"strings"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/cmderr"
)

// Expand substitutes "$(Name)" with the current string value of the
// option named Name (quoted via join when the value contains whitespace
// or a quote) and "$$" with a literal "$". join is injected so callers
// can pass token.Join without this package importing it back for nothing
// but that one call.
//
// "$$" is recognized before "$(Name)" is attempted, so "$$(Name)"
// expands to the literal "$(Name)" rather than looking Name up — an
// escaped dollar always wins over a macro open.
//
// An unknown option name produces a *cmderr.CommandError of
// cmderr.KindUnknownOption and line is not executed by the caller.
func Expand(line string, opts bind.OptionReader, join func([]string) string) (string, error) {
	runes := []rune(line)
	var out strings.Builder

	i := 0
	for i < len(runes) {
		switch {
		case runes[i] == '$' && i+1 < len(runes) && runes[i+1] == '$':
			out.WriteByte('$')
			i += 2
		case runes[i] == '$' && i+1 < len(runes) && runes[i+1] == '(':
			end := indexRune(runes, i+2, ')')
			if end < 0 {
				out.WriteRune(runes[i])
				i++
				continue
			}
			name := string(runes[i+2 : end])
			opt := opts.Option(name)
			if opt == nil {
				return "", cmderr.UnknownOption(name)
			}
			out.WriteString(join([]string{fmt.Sprint(opt.Get())}))
			i = end + 1
		default:
			out.WriteRune(runes[i])
			i++
		}
	}

	return out.String(), nil
}

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

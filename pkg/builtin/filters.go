package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

// Find emits input lines containing pattern as a literal substring,
// reading from streams.In unless f names a file to read instead. /V
// inverts the match, /I makes it case-insensitive.
func (h *Handler) Find(interp bind.Interpreter, streams stdio.StdIO, pattern string, invert, insensitive bool, f string) error {
	var src io.Reader = streams.In
	if f != "" {
		file, err := os.Open(f)
		if err != nil {
			return cmderr.Application(err.Error())
		}
		defer file.Close()
		src = file
	}

	needle := pattern
	if insensitive {
		needle = strings.ToLower(needle)
	}

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		haystack := line
		if insensitive {
			haystack = strings.ToLower(haystack)
		}
		if strings.Contains(haystack, needle) != invert {
			fmt.Fprintf(streams.Out, "%s%s", line, crlf)
		}
	}
	return scanner.Err()
}

// More paginates streams.In: it emits Height-1 lines, then a
// "-- More --" prompt that blocks on a single keystroke via
// ReadNextChar before continuing. A prompt with no configured reader
// fails with KindConsoleIOUnavailable rather than hanging forever.
func (h *Handler) More(interp bind.Interpreter, streams stdio.StdIO) error {
	height := h.Height
	if height <= 1 {
		height = 24
	}
	window := height - 1

	scanner := bufio.NewScanner(streams.In)
	hasNext := scanner.Scan()
	printed := 0

	for hasNext {
		line := scanner.Text()
		hasNext = scanner.Scan()

		fmt.Fprintf(streams.Out, "%s%s", line, crlf)
		printed++

		if printed == window && hasNext {
			if h.ReadNextChar == nil {
				return cmderr.New(cmderr.KindConsoleIOUnavailable, "more: no next-character reader configured")
			}
			fmt.Fprint(streams.Out, "-- More --")
			if _, err := h.ReadNextChar(); err != nil {
				return err
			}
			fmt.Fprint(streams.Out, crlf)
			printed = 0
		}
	}

	return scanner.Err()
}

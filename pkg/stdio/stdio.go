// Package stdio carries the three process streams as an explicit value
// threaded through each dispatch call, rather than swapped in and out of
// package-level globals. §9's Design Notes call the global-swap approach
// a design smell inherited from the original source; StdIO is the
// "cleaner re-architecture" it recommends, with process streams merely
// the default.
package stdio

import (
	"io"
	"os"
)

// StdIO bundles the three streams a command, filter or pipeline stage
// reads and writes.
type StdIO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Default returns an StdIO backed by the process's own stdin/stdout/stderr.
func Default() StdIO {
	return StdIO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

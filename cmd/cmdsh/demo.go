package main

import (
	"fmt"
	"strconv"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

// demoCommands is a small sample handler exercising every binding shape
// the reflection binder supports: scalar and accumulating arguments,
// interpreter and stdio injection, an application-level failure, and a
// hidden command. It exists to give the run/repl subcommands something
// to dispatch against out of the box.
type demoCommands struct {
	// Other is an int option with no particular meaning beyond
	// demonstrating a non-string option field.
	Other int
	// SomeData is a string option, settable via `set SomeData value` and
	// readable in macros as $(SomeData).
	SomeData string
}

// demoRegOptions supplies the per-parameter metadata reflect cannot
// recover for demoCommands' methods.
func demoRegOptions() []bind.RegOption {
	return []bind.RegOption{
		bind.WithArgs("Count", bind.ArgSpec{}, bind.ArgSpec{},
			bind.ArgSpec{Name: "number"},
			bind.ArgSpec{Name: "backwards", HasDefault: true, Default: false},
			bind.ArgSpec{Name: "t"},
		),
		bind.WithArgs("ForXtoYbyZ", bind.ArgSpec{},
			bind.ArgSpec{Name: "x"},
			bind.ArgSpec{Name: "y"},
			bind.ArgSpec{Name: "z", HasDefault: true, Default: 1},
		),
		bind.WithCommandMeta("Hidden", bind.CommandMeta{Hidden: true}),
	}
}

// Count prints the integers from 1 to number, one per line, optionally
// reversed, each optionally followed by the matching value bound to t.
func (d *demoCommands) Count(interp bind.Interpreter, io stdio.StdIO, number int, backwards bool, t []string) error {
	for i := 1; i <= number; i++ {
		n := i
		if backwards {
			n = number - i + 1
		}
		line := strconv.Itoa(n)
		if i-1 < len(t) {
			line += " " + t[i-1]
		}
		fmt.Fprintf(io.Out, "%s\r\n", line)
	}
	return nil
}

// ForXtoYbyZ prints the arithmetic sequence x, x+z, x+2z, … up to and
// including y.
func (d *demoCommands) ForXtoYbyZ(io stdio.StdIO, x, y, z int) error {
	if z == 0 {
		return cmderr.New(cmderr.KindInvalidArgumentValue, "z must not be zero")
	}
	for n := x; (z > 0 && n <= y) || (z < 0 && n >= y); n += z {
		fmt.Fprintf(io.Out, "%d\r\n", n)
	}
	return nil
}

// BlowUp always fails with an application-level error, to exercise the
// "message only, no type name" reporting path.
func (d *demoCommands) BlowUp() error {
	return cmderr.Application("the demo handler blew up on purpose")
}

// Hidden is registered but omitted from listings (see demoRegOptions),
// invocable only by exact name.
func (d *demoCommands) Hidden() error {
	return nil
}

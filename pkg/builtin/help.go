package builtin

import (
	"fmt"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/render"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

// Help lists every visible command and option, or detailed help for a
// single name when given.
func (h *Handler) Help(interp bind.Interpreter, io stdio.StdIO, name string) error {
	fmt.Fprint(io.Out, render.TextHelp(interp.Registry(), name))
	return nil
}

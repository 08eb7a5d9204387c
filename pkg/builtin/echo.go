package builtin

import (
	"fmt"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/stdio"
	"github.com/aiseeq/cmdsh/pkg/token"
)

// Echo prints tokens joined with single spaces, quoting as needed per
// token.Join.
func (h *Handler) Echo(interp bind.Interpreter, io stdio.StdIO, tokens []string) error {
	fmt.Fprintf(io.Out, "%s%s", token.Join(tokens), crlf)
	return nil
}

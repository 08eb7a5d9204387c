package builtin

import (
	"fmt"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

// Prompt gets or sets the REPL's prompt string: bare, it prints the
// current prompt; given text, it replaces it for every subsequent read.
// Only meaningful inside an interactive loop, which wires PromptRef to
// its own live prompt storage at construction time.
func (h *Handler) Prompt(io stdio.StdIO, text string) error {
	if h.PromptRef == nil {
		return cmderr.New(cmderr.KindConsoleIOUnavailable, "prompt is not available outside an interactive loop")
	}
	if text == "" {
		fmt.Fprintf(io.Out, "%s%s", *h.PromptRef, crlf)
		return nil
	}
	*h.PromptRef = text
	return nil
}

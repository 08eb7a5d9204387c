package dispatch

import "github.com/aiseeq/cmdsh/pkg/bind"

// chainLink is the index-into-array filter chain: each link knows its
// position among the registered filters and the terminal closure to run
// once they're exhausted. This is the Go-idiomatic rendering of the
// Design Notes' "cons of closures" recommendation — an index plus a
// shared terminal, rather than allocating one closure per filter up
// front.
type chainLink struct {
	filters  []bind.Filter
	idx      int
	interp   bind.Interpreter
	terminal func([]string) error
}

// Next implements bind.Chain: it runs the next filter in line (passing
// itself, advanced by one, as that filter's Chain), or the terminal once
// every filter has run.
func (c *chainLink) Next(tokens []string) error {
	if c.idx >= len(c.filters) {
		return c.terminal(tokens)
	}

	f := c.filters[c.idx]
	next := &chainLink{filters: c.filters, idx: c.idx + 1, interp: c.interp, terminal: c.terminal}
	return f.Fn(c.interp, next, tokens)
}

func newChain(interp bind.Interpreter, filters []bind.Filter, terminal func([]string) error) *chainLink {
	return &chainLink{filters: filters, interp: interp, terminal: terminal}
}

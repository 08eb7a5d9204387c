package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/render"
)

// Dispatcher is the default bind.Interpreter implementation: a registry
// of handlers plus a filter chain, dispatched one token vector at a time.
type Dispatcher struct {
	mu       sync.Mutex
	registry *bind.Registry
	filters  []bind.Filter
	cfg      Config
	exitCode int
}

// New builds a Dispatcher with an empty registry and no filters. The
// registry resolves command and option names with cfg.TokenizerConfig's
// own comparer, so a case-sensitive tokenizer configuration applies at
// the resolution layer too, not just inside an already-resolved
// command's ArgumentList.
func New(cfg Config) *Dispatcher {
	return &Dispatcher{registry: bind.NewRegistryWithComparer(cfg.TokenizerConfig.Comparer), cfg: cfg}
}

// Registry returns the dispatcher's handler registry.
func (d *Dispatcher) Registry() *bind.Registry { return d.registry }

// ExitCode returns the exit code of the most recently completed Dispatch.
func (d *Dispatcher) ExitCode() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.exitCode
}

// AddFilter appends f to the end of the dispatcher's filter chain.
func (d *Dispatcher) AddFilter(f bind.Filter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filters = append(d.filters, f)
}

// Dispatch implements §4.4: apply top-level option setters, resolve the
// first remaining token as a command name, build its ArgumentList and
// coerce its formal parameters, then invoke it through the filter chain.
// It returns the resulting process-style exit code (0 on success).
func (d *Dispatcher) Dispatch(ctx context.Context, io StdIO, tokens []string) int {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(tokens) == 0 {
		return d.finish(0)
	}
	if err := ctx.Err(); err != nil {
		d.reportError(io, cmderr.Unhandled(err, d.cfg.Verbose, ""))
		return d.ExitCode()
	}

	remaining, err := d.applyTopLevelOptions(tokens)
	if err != nil {
		d.reportError(io, err)
		return d.ExitCode()
	}
	if len(remaining) == 0 {
		return d.finish(0)
	}

	name := remaining[0]
	cmd := d.registry.Command(name)
	if cmd == nil {
		d.reportError(io, cmderr.UnknownCommand(name))
		fmt.Fprint(io.Err, render.TextHelp(d.registry, ""))
		return d.ExitCode()
	}

	if err := d.invoke(io, cmd, remaining[1:]); err != nil {
		d.reportError(io, err)
		return d.ExitCode()
	}

	return d.finish(0)
}

func (d *Dispatcher) finish(code int) int {
	d.mu.Lock()
	d.exitCode = code
	d.mu.Unlock()
	return code
}

func (d *Dispatcher) reportError(io StdIO, err error) {
	ce, ok := err.(*cmderr.CommandError)
	if !ok {
		ce = cmderr.Unhandled(err, d.cfg.Verbose, "")
	}
	d.mu.Lock()
	d.exitCode = ce.Kind.ExitCode()
	d.mu.Unlock()
	fmt.Fprintln(io.Err, ce.Error())
	if ce.Stack != "" {
		fmt.Fprintln(io.Err, ce.Stack)
	}
}

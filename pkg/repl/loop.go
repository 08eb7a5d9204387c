// Package repl implements the interactive read-eval loop (§4.8): read one
// logical line, expand macros, split it into pipeline stages, dispatch
// each stage, repeat.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/builtin"
	"github.com/aiseeq/cmdsh/pkg/macro"
	"github.com/aiseeq/cmdsh/pkg/pipeline"
	"github.com/aiseeq/cmdsh/pkg/render"
	"github.com/aiseeq/cmdsh/pkg/stdio"
	"github.com/aiseeq/cmdsh/pkg/token"
)

// Loop is the interactive command loop. A Loop owns one builtin.Handler
// so exit/quit (and, with Config.DefaultBuiltins, the rest of §6's
// built-ins) are registered on the interpreter it drives.
type Loop struct {
	interp  bind.Interpreter
	handler *builtin.Handler
	cfg     Config

	scanner    *bufio.Scanner
	showPrompt bool
	out, errw  io.Writer
}

// New registers the built-ins on interp's registry and returns a Loop
// reading lines from in and writing to out/errw. exit/quit is registered
// unconditionally; help/get/set/echo/more/find only when
// cfg.DefaultBuiltins is set.
func New(interp bind.Interpreter, cfg Config, in io.Reader, out, errw io.Writer) (*Loop, error) {
	handler := builtin.NewHandler()
	reg := interp.Registry()

	var regErr error
	if cfg.DefaultBuiltins {
		regErr = reg.AddHandler(handler, builtin.RegOptions()...)
	} else {
		regErr = reg.AddHandler(handler,
			bind.WithArgs("Exit", bind.ArgSpec{Name: "code", HasDefault: true, Default: 0}),
			bind.WithCommandMeta("Exit", bind.CommandMeta{Aliases: []string{"quit"}}),
			bind.Ignore("Help"), bind.Ignore("Get"), bind.Ignore("Set"),
			bind.Ignore("Echo"), bind.Ignore("More"), bind.Ignore("Find"),
			bind.Ignore("Prompt"),
		)
	}
	if regErr != nil {
		return nil, regErr
	}

	scanner := bufio.NewScanner(in)
	// more's pagination prompt waits for a keystroke; a line-buffered
	// console has no raw single-key read available in this stack, so an
	// Enter press (one more Scan) stands in for it.
	handler.ReadNextChar = func() (rune, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		return '\n', nil
	}

	loop := &Loop{
		interp:     interp,
		handler:    handler,
		cfg:        cfg,
		scanner:    scanner,
		showPrompt: isTerminal(in),
		out:        out,
		errw:       errw,
	}
	handler.PromptRef = &loop.cfg.Prompt
	return loop, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run reads and dispatches lines until input is exhausted, a read error
// occurs, or a dispatched line invokes exit/quit, returning the resulting
// process exit code.
func (l *Loop) Run(ctx context.Context) int {
	for {
		if l.showPrompt {
			fmt.Fprint(l.out, l.expandPrompt())
		}

		if !l.scanner.Scan() {
			if err := l.scanner.Err(); err != nil {
				fmt.Fprintln(l.errw, err.Error())
			}
			return 0
		}

		line := l.scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprint(l.out, render.TextHelp(l.interp.Registry(), ""))
			continue
		}

		if code, exit := l.dispatchLine(ctx, line); exit {
			return code
		}
	}
}

func (l *Loop) expandPrompt() string {
	expanded, err := macro.Expand(l.cfg.Prompt, l.interp.Registry(), token.Join)
	if err != nil {
		return l.cfg.Prompt
	}
	return expanded
}

func (l *Loop) dispatchLine(ctx context.Context, line string) (code int, exit bool) {
	expanded, err := macro.Expand(line, l.interp.Registry(), token.Join)
	if err != nil {
		fmt.Fprintln(l.errw, err.Error())
		return 0, false
	}

	tokens, err := token.Parse(expanded)
	if err != nil {
		fmt.Fprintln(l.errw, err.Error())
		return 0, false
	}
	if len(tokens) == 0 {
		return 0, false
	}

	stages, err := pipeline.SplitStages(tokens, l.cfg.Precedence)
	if err != nil {
		fmt.Fprintln(l.errw, err.Error())
		return 0, false
	}

	result := pipeline.Run(ctx, l.interp, stdio.StdIO{In: strings.NewReader(""), Out: l.out, Err: l.errw}, stages)

	if l.handler.ExitRequested {
		return l.handler.RequestedExitCode, true
	}
	return result, false
}

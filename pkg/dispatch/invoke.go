package dispatch

import (
	"fmt"
	"reflect"
	"runtime/debug"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/coerce"
	"github.com/aiseeq/cmdsh/pkg/token"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// invoke runs cmd through the dispatcher's filter chain, recovering any
// panic raised by a filter or the command itself into a
// cmderr.KindUnhandled error (§7).
func (d *Dispatcher) invoke(io StdIO, cmd *bind.Command, argTokens []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = d.panicToError(r)
		}
	}()

	d.mu.Lock()
	filters := append([]bind.Filter(nil), d.filters...)
	d.mu.Unlock()

	terminal := func(tokens []string) error {
		return d.callCommand(io, cmd, tokens)
	}

	return newChain(d, filters, terminal).Next(argTokens)
}

func (d *Dispatcher) panicToError(r any) *cmderr.CommandError {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}
	var stack string
	if d.cfg.Verbose {
		stack = string(debug.Stack())
	}
	return cmderr.Unhandled(cause, d.cfg.Verbose, stack)
}

// callCommand builds the ArgumentList over tokens and binds each of
// cmd's formal parameters: the injected Interpreter, the "all arguments"
// capture, or a value looked up by name/alias/position and coerced to
// its declared type.
func (d *Dispatcher) callCommand(io StdIO, cmd *bind.Command, tokens []string) error {
	al := token.BuildArgumentList(tokens, d.cfg.TokenizerConfig)
	positional := 0

	args := make([]reflect.Value, len(cmd.Params))
	for i, p := range cmd.Params {
		switch {
		case p.IsInterpreter:
			args[i] = reflect.ValueOf(bind.Interpreter(d))

		case p.IsStdIO:
			args[i] = reflect.ValueOf(io)

		case p.CapturesAll:
			args[i] = reflect.ValueOf(append([]string(nil), tokens...))

		default:
			item := al.Get(p.Name)
			for _, alias := range p.Aliases {
				if item != nil {
					break
				}
				item = al.Get(alias)
			}
			if item == nil && positional < len(al.Unnamed) {
				v := al.Unnamed[positional]
				positional++
				item = &token.Item{Name: p.Name, Values: []*string{&v}}
			}

			val, err := coerce.Coerce(item, p.Type, p.HasDefault, p.Default, p.Name)
			if err != nil {
				return err
			}
			args[i] = val
		}
	}

	return interpretResults(cmd.Method.Call(args))
}

// interpretResults looks for the single error return value idiomatic
// handler methods declare, per §3's "formal return type" note; a handler
// with no error return (or a nil one) always succeeds.
func interpretResults(results []reflect.Value) error {
	for _, r := range results {
		if r.Kind() == reflect.Interface && r.Type() == errorType && !r.IsNil() {
			return r.Interface().(error)
		}
	}
	return nil
}

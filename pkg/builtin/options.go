package builtin

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/coerce"
	"github.com/aiseeq/cmdsh/pkg/stdio"
	"github.com/aiseeq/cmdsh/pkg/token"
)

func setOptionLiteral(opt *bind.Option, literal string) error {
	item := &token.Item{Name: opt.Name, Values: []*string{&literal}}
	v, err := coerce.Coerce(item, opt.Type, true, opt.Default, opt.Name)
	if err != nil {
		return err
	}
	opt.Set(v)
	return nil
}

// Get prints the current value of a single option.
func (h *Handler) Get(interp bind.Interpreter, io stdio.StdIO, option string) error {
	opt := interp.Registry().Option(option)
	if opt == nil {
		return cmderr.UnknownOption(option)
	}
	fmt.Fprintf(io.Out, "%v%s", opt.Get(), crlf)
	return nil
}

// Set implements every §6 form: bare (list all), option-only (print),
// option+value (assign), and `/readInput` (read name=value lines from
// stdin and apply each).
func (h *Handler) Set(interp bind.Interpreter, io stdio.StdIO, option, value *string, readInput bool) error {
	reg := interp.Registry()

	switch {
	case readInput:
		return setFromStdin(reg, io)
	case option == nil:
		return listOptions(reg, io)
	case value == nil:
		return h.Get(interp, io, *option)
	default:
		return assignOption(reg, *option, *value)
	}
}

func listOptions(reg *bind.Registry, io stdio.StdIO) error {
	for _, opt := range reg.Options() {
		fmt.Fprintf(io.Out, "%s=%v%s", opt.Name, opt.Get(), crlf)
	}
	return nil
}

func assignOption(reg *bind.Registry, name, literal string) error {
	opt := reg.Option(name)
	if opt == nil {
		return cmderr.UnknownOption(name)
	}
	return setOptionLiteral(opt, literal)
}

func setFromStdin(reg *bind.Registry, io stdio.StdIO) error {
	scanner := bufio.NewScanner(io.In)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, literal, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if err := assignOption(reg, name, literal); err != nil {
			return err
		}
	}
	return scanner.Err()
}

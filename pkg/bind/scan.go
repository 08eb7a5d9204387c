package bind

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

const tagKey = "cmdsh"

var (
	interpreterType = reflect.TypeOf((*Interpreter)(nil)).Elem()
	chainType       = reflect.TypeOf((*Chain)(nil)).Elem()
	errorType       = reflect.TypeOf((*error)(nil)).Elem()
	stringSliceType = reflect.TypeOf([]string(nil))
	stdioType       = reflect.TypeOf(stdio.StdIO{})
)

type scanResult struct {
	options  []*Option
	commands []*Command
	filters  []*Filter
}

// scanHandler reflects over instance's exported fields (→ Options) and
// exported methods (→ Commands and/or Filters), applying the registration
// overrides in cfg.
func scanHandler(instance any, regOpts []RegOption) (*scanResult, error) {
	cfg := newRegConfig()
	for _, o := range regOpts {
		o(cfg)
	}

	val := reflect.ValueOf(instance)
	typ := val.Type()

	result := &scanResult{}

	structVal := val
	if structVal.Kind() == reflect.Ptr {
		structVal = structVal.Elem()
	}
	if structVal.Kind() == reflect.Struct {
		opts, err := scanOptions(structVal, cfg)
		if err != nil {
			return nil, err
		}
		result.options = opts
	}

	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if cfg.ignore[m.Name] {
			continue
		}

		methodVal := val.Method(i)
		ft := methodVal.Type()

		if isFilterSignature(ft) {
			result.filters = append(result.filters, &Filter{
				Name: m.Name,
				Fn:   adaptFilterFunc(methodVal),
			})
			if !cfg.alsoCommand[m.Name] {
				continue
			}
		}

		cmd, err := buildCommand(m.Name, methodVal, cfg)
		if err != nil {
			return nil, err
		}
		result.commands = append(result.commands, cmd)

		if cfg.alsoCommand[m.Name] {
			result.filters[len(result.filters)-1].Command = cmd
		}
	}

	return result, nil
}

func scanOptions(structVal reflect.Value, cfg *regConfig) ([]*Option, error) {
	structType := structVal.Type()
	var opts []*Option

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() || cfg.ignore[field.Name] {
			continue
		}

		tag, hasTag := field.Tag.Lookup(tagKey)
		if hasTag && tag == "-" {
			continue
		}

		opt := &Option{
			Name:    field.Name,
			Type:    field.Type,
			Default: structVal.Field(i).Interface(),
			owner:   structVal,
			index:   i,
		}
		applyOptionTag(opt, tag)
		if meta, ok := cfg.optMeta[field.Name]; ok {
			applyOptionMeta(opt, meta)
		}

		opts = append(opts, opt)
	}

	return opts, nil
}

func applyOptionTag(opt *Option, tag string) {
	if tag == "" {
		return
	}
	for _, part := range strings.Split(tag, ",") {
		if part == "option" || part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		key := kv[0]
		val := ""
		if len(kv) == 2 {
			val = kv[1]
		}
		switch key {
		case "name":
			opt.Name = val
		case "alias":
			opt.Aliases = append(opt.Aliases, val)
		case "desc", "description":
			opt.Description = val
		case "category":
			opt.Category = val
		case "hidden":
			opt.Hidden = true
		}
	}
}

func applyOptionMeta(opt *Option, meta OptionMeta) {
	if meta.Name != "" {
		opt.Name = meta.Name
	}
	if len(meta.Aliases) > 0 {
		opt.Aliases = meta.Aliases
	}
	if meta.Description != "" {
		opt.Description = meta.Description
	}
	if meta.Category != "" {
		opt.Category = meta.Category
	}
	if meta.Hidden {
		opt.Hidden = true
	}
}

func isFilterSignature(ft reflect.Type) bool {
	return ft.NumIn() == 3 &&
		ft.In(0) == interpreterType &&
		ft.In(1) == chainType &&
		ft.In(2) == stringSliceType &&
		ft.NumOut() == 1 &&
		ft.Out(0) == errorType
}

// nopChain is the Chain handed to a filter invoked without one: its Next
// does nothing and reports no error.
type nopChain struct{}

func (nopChain) Next([]string) error { return nil }

// adaptFilterFunc wraps a bound filter method value as a directly
// callable FilterFunc. A nil chain (the terminal invocation when a
// filter is also invoked directly as a command, §4.6 Open Question) is
// replaced by nopChain, so the filter's call to Next is a no-op.
func adaptFilterFunc(methodVal reflect.Value) FilterFunc {
	return func(interp Interpreter, chain Chain, tokens []string) error {
		interpArg := reflect.Zero(interpreterType)
		if interp != nil {
			interpArg = reflect.ValueOf(interp)
		}
		chainArg := reflect.ValueOf(Chain(nopChain{}))
		if chain != nil {
			chainArg = reflect.ValueOf(chain)
		}

		out := methodVal.Call([]reflect.Value{interpArg, chainArg, reflect.ValueOf(tokens)})
		if out[0].IsNil() {
			return nil
		}
		return out[0].Interface().(error)
	}
}

func buildCommand(name string, methodVal reflect.Value, cfg *regConfig) (*Command, error) {
	ft := methodVal.Type()
	specs := cfg.argSpecs[name]

	params := make([]Param, ft.NumIn())
	for i := 0; i < ft.NumIn(); i++ {
		pt := ft.In(i)
		p := Param{Type: pt, Position: i}

		if pt == interpreterType {
			p.IsInterpreter = true
			p.Name = "interpreter"
			params[i] = p
			continue
		}
		if pt == stdioType {
			p.IsStdIO = true
			p.Name = "stdio"
			params[i] = p
			continue
		}

		var spec ArgSpec
		if i < len(specs) {
			spec = specs[i]
		}

		p.Name = spec.Name
		if p.Name == "" {
			p.Name = fmt.Sprintf("arg%d", i)
		}
		p.Aliases = spec.Aliases
		p.Description = spec.Description
		p.Hidden = spec.Hidden
		p.HasDefault = spec.HasDefault
		p.Default = spec.Default
		p.CapturesAll = spec.CapturesAll
		p.Required = !p.HasDefault && pt.Kind() != reflect.Ptr && pt.Kind() != reflect.Slice

		if p.CapturesAll && !(pt.Kind() == reflect.Slice && pt.Elem().Kind() == reflect.String) {
			return nil, cmderr.New(cmderr.KindInvalidInput,
				"parameter %s of %s must be []string to capture all arguments", p.Name, name)
		}

		params[i] = p
	}

	meta := cfg.cmdMeta[name]
	cmdName := meta.Name
	if cmdName == "" {
		cmdName = name
	}

	return &Command{
		Name:        cmdName,
		Aliases:     meta.Aliases,
		Description: meta.Description,
		Category:    meta.Category,
		Hidden:      meta.Hidden,
		Params:      params,
		Method:      methodVal,
	}, nil
}

package bind

// regConfig accumulates the per-handler registration overrides supplied
// through RegOption values, keyed by the Go field/method name being
// described.
type regConfig struct {
	argSpecs    map[string][]ArgSpec
	cmdMeta     map[string]CommandMeta
	optMeta     map[string]OptionMeta
	ignore      map[string]bool
	alsoCommand map[string]bool
}

func newRegConfig() *regConfig {
	return &regConfig{
		argSpecs:    make(map[string][]ArgSpec),
		cmdMeta:     make(map[string]CommandMeta),
		optMeta:     make(map[string]OptionMeta),
		ignore:      make(map[string]bool),
		alsoCommand: make(map[string]bool),
	}
}

// RegOption customizes how AddHandler binds a single handler instance.
type RegOption func(*regConfig)

// WithArgs attaches per-parameter metadata to method's Command, positional
// by index. This is the registration-time substitute for the parameter
// names reflect cannot recover.
func WithArgs(method string, specs ...ArgSpec) RegOption {
	return func(c *regConfig) { c.argSpecs[method] = specs }
}

// WithCommandMeta overrides a method's exposed command name, aliases,
// description, category and visibility.
func WithCommandMeta(method string, meta CommandMeta) RegOption {
	return func(c *regConfig) { c.cmdMeta[method] = meta }
}

// WithOptionMeta overrides a field's exposed option name, aliases,
// description, category and visibility beyond its struct tag.
func WithOptionMeta(field string, meta OptionMeta) RegOption {
	return func(c *regConfig) { c.optMeta[field] = meta }
}

// Ignore excludes a field or method by name from scanning entirely.
func Ignore(member string) RegOption {
	return func(c *regConfig) { c.ignore[member] = true }
}

// AsCommand opts a filter-signature method into dual registration: it
// remains callable as a filter and is additionally exposed as an
// invocable Command (§4.6's "not mutually exclusive" allowance).
func AsCommand(method string) RegOption {
	return func(c *regConfig) { c.alsoCommand[method] = true }
}

package bind

import "reflect"

// ArgSpec supplies the metadata reflect cannot recover for a single
// command method parameter: its bound name, aliases, description, and
// whether it has an explicit default. Specs are positional — the i'th
// ArgSpec in a WithArgs(...) call describes the method's i'th parameter,
// including parameters (interpreter injection) that ignore most of the
// spec's fields.
type ArgSpec struct {
	Name        string
	Aliases     []string
	Description string
	HasDefault  bool
	Default     any
	Hidden      bool
	// CapturesAll marks the "all arguments" parameter (§4.5): the
	// parameter type must be []string, and it receives every token
	// following the command name verbatim rather than a bound argument.
	CapturesAll bool
}

// CommandMeta overrides the display name/aliases/description/category of
// a scanned method; the zero value keeps the method's own name with no
// aliases.
type CommandMeta struct {
	Name        string
	Aliases     []string
	Description string
	Category    string
	Hidden      bool
}

// OptionMeta overrides a scanned field's exposed option metadata beyond
// what its `cmdsh` struct tag already states.
type OptionMeta struct {
	Name        string
	Aliases     []string
	Description string
	Category    string
	Hidden      bool
}

// Param is one resolved formal parameter of a Command: either bound from
// the token vector (by name, alias or position), the injected Interpreter,
// or the "all arguments" capture.
type Param struct {
	Name          string
	Aliases       []string
	Description   string
	Hidden        bool
	Required      bool
	HasDefault    bool
	Default       any
	Type          reflect.Type
	Position      int
	IsInterpreter bool
	IsStdIO       bool
	CapturesAll   bool
}

// Command is a bound, invocable operation discovered from a handler
// method. Method is the already-receiver-bound reflect.Value (so
// Method.Call only needs the formal parameter values, one per Params
// entry).
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Category    string
	Hidden      bool
	Params      []Param
	Method      reflect.Value
}

// Option is a bound, read/write named value discovered from an exported
// handler struct field.
type Option struct {
	Name        string
	Aliases     []string
	Description string
	Category    string
	Hidden      bool
	Type        reflect.Type
	Default     any

	owner reflect.Value // addressable struct value the field lives on
	index int
}

// Value returns the addressable reflect.Value of the bound field.
func (o *Option) Value() reflect.Value { return o.owner.Field(o.index) }

// Get returns the option's current value.
func (o *Option) Get() any { return o.Value().Interface() }

// Set assigns v (already of the option's Type) to the bound field.
func (o *Option) Set(v reflect.Value) { o.Value().Set(v) }

// Filter is a bound filter discovered from a handler method whose
// signature matches func(Interpreter, Chain, []string) error exactly.
// Command is non-nil only when the handler also opted the method into
// dual command+filter registration.
type Filter struct {
	Name    string
	Fn      FilterFunc
	Command *Command
}

package bind

import (
	"sort"
	"strings"
	"sync"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
)

// Registry is the binder's accumulated output across every registered
// handler: every Option, Command and Filter, name/alias-unique within a
// single handler's own registration. Cross-handler collisions are
// resolved by last-registration-wins, so a host registering its own
// handlers after the built-ins overrides them by name — the §3 "a
// user-defined command with the same name replaces a built-in" rule.
//
// Name resolution — both across handlers here and within a single
// ArgumentList in pkg/token — is governed by one configurable comparer,
// so a host that sets TokenizerConfig.CaseSensitive gets consistent
// behavior at every name-matching layer, not just argument binding.
type Registry struct {
	mu       sync.RWMutex
	comparer func(a, b string) bool
	commands map[string]*Command // keyed by the literal name/alias it was registered under
	options  map[string]*Option
	filters  []*Filter
}

// NewRegistry returns an empty Registry using case-insensitive name
// resolution, the interpreter's default comparer.
func NewRegistry() *Registry {
	return NewRegistryWithComparer(nil)
}

// NewRegistryWithComparer returns an empty Registry resolving command and
// option names with cmp. A nil cmp falls back to strings.EqualFold.
func NewRegistryWithComparer(cmp func(a, b string) bool) *Registry {
	if cmp == nil {
		cmp = strings.EqualFold
	}
	return &Registry{
		comparer: cmp,
		commands: make(map[string]*Command),
		options:  make(map[string]*Option),
	}
}

// AddHandler scans instance's exported fields and methods and merges the
// result into the registry. Registering a bare type value (rather than a
// pointer) is legal but its options are then read-only snapshots, since
// there is no addressable instance to write back into.
func (r *Registry) AddHandler(instance any, opts ...RegOption) error {
	scanned, err := scanHandler(instance, opts)
	if err != nil {
		return err
	}
	if err := checkInternalCollisions(scanned, r.comparer); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range scanned.options {
		r.putOption(o.Name, o)
		for _, a := range o.Aliases {
			r.putOption(a, o)
		}
	}

	for _, c := range scanned.commands {
		r.putCommand(c.Name, c)
		for _, a := range c.Aliases {
			r.putCommand(a, c)
		}
	}

	r.filters = append(r.filters, scanned.filters...)

	return nil
}

// putCommand inserts c under name, first evicting any existing entry the
// comparer treats as the same name so re-registration under a differently
// cased spelling still overwrites rather than accumulating stale keys.
func (r *Registry) putCommand(name string, c *Command) {
	for existing := range r.commands {
		if r.comparer(existing, name) {
			delete(r.commands, existing)
			break
		}
	}
	r.commands[name] = c
}

func (r *Registry) putOption(name string, o *Option) {
	for existing := range r.options {
		if r.comparer(existing, name) {
			delete(r.options, existing)
			break
		}
	}
	r.options[name] = o
}

func checkInternalCollisions(s *scanResult, cmp func(a, b string) bool) error {
	var cmdNames, cmdOwners []string
	for _, c := range s.commands {
		names := append([]string{c.Name}, c.Aliases...)
		for _, n := range names {
			for i, existing := range cmdNames {
				if cmp(existing, n) && cmdOwners[i] != c.Name {
					return cmderr.New(cmderr.KindInvalidInput, "command name %q collides with %q", n, cmdOwners[i])
				}
			}
			cmdNames = append(cmdNames, n)
			cmdOwners = append(cmdOwners, c.Name)
		}
	}

	var optNames, optOwners []string
	for _, o := range s.options {
		names := append([]string{o.Name}, o.Aliases...)
		for _, n := range names {
			for i, existing := range optNames {
				if cmp(existing, n) && optOwners[i] != o.Name {
					return cmderr.New(cmderr.KindInvalidInput, "option name %q collides with %q", n, optOwners[i])
				}
			}
			optNames = append(optNames, n)
			optOwners = append(optOwners, o.Name)
		}
	}

	return nil
}

// Command resolves name (or alias) to its Command, or nil.
func (r *Registry) Command(name string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.commands[name]; ok {
		return c
	}
	for k, c := range r.commands {
		if r.comparer(k, name) {
			return c
		}
	}
	return nil
}

// Option resolves name (or alias) to its Option, or nil.
func (r *Registry) Option(name string) *Option {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.options[name]; ok {
		return o
	}
	for k, o := range r.options {
		if r.comparer(k, name) {
			return o
		}
	}
	return nil
}

// OptionReader is the minimal option lookup surface pkg/macro depends on,
// so it can expand "$(Name)" without importing the rest of Registry's
// API. *Registry satisfies it directly.
type OptionReader interface {
	Option(name string) *Option
}

// Commands returns every distinct registered command, sorted by name.
func (r *Registry) Commands() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[*Command]bool)
	var out []*Command
	for _, c := range r.commands {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Options returns every distinct registered option, sorted by name.
func (r *Registry) Options() []*Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[*Option]bool)
	var out []*Option
	for _, o := range r.options {
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Filters returns every registered filter, in registration order.
func (r *Registry) Filters() []*Filter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Filter(nil), r.filters...)
}

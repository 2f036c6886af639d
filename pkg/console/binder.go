package console

import (
	"fmt"
	"strings"

	"cmdkit/pkg/args"
	"cmdkit/pkg/errors"
)

// Call carries everything an entry point is invoked with.
type Call struct {
	// Args are the positional arguments left after command (and
	// sub-command) resolution.
	Args []string
	// Options are all options given on the command line.
	Options args.Options
	// Console is the dispatcher running the call.
	Console *Console
	// Command is the name the command was resolved under.
	Command string
	// Subcommand is the routed sub-command name, if any.
	Subcommand string

	names  []string
	values map[string]any
}

// Bind builds the call for e. Raw entries receive positional and options
// untouched. Computed entries bind each declared value parameter from a
// same-named option, else the next positional argument, else its default;
// rest-args and all-options parameters are filled afterwards.
func Bind(e Entry, positional []string, options args.Options) (*Call, error) {
	if positional == nil {
		positional = []string{}
	}
	if options == nil {
		options = args.Options{}
	}
	call := &Call{Args: positional, Options: options}
	if !e.Computed {
		return call, nil
	}

	call.values = make(map[string]any, len(e.Params))
	next := 0
	for _, p := range e.Params {
		if p.Source != FromValue {
			continue
		}
		switch {
		case options.Has(p.Name):
			call.values[p.Name] = options[p.Name]
		case next < len(positional):
			call.values[p.Name] = positional[next]
			next++
		case p.HasDefault:
			call.values[p.Name] = p.Default
		default:
			return nil, errors.Newf(errors.KindArity, "missing required parameter '%s'", p.Name).WithSubject(p.Name)
		}
	}

	rest := append([]string{}, positional[next:]...)
	for _, p := range e.Params {
		switch p.Source {
		case FromRestArgs:
			call.values[p.Name] = rest
		case FromAllOptions:
			call.values[p.Name] = options
		}
		call.names = append(call.names, p.Name)
	}
	call.Args = rest
	return call, nil
}

// Values returns the bound parameters in declaration order.
func (c *Call) Values() []any {
	out := make([]any, len(c.names))
	for i, name := range c.names {
		out[i] = c.values[name]
	}
	return out
}

// Get returns a bound parameter.
func (c *Call) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// String returns a bound parameter as text. Rest arguments are joined with
// spaces; an absent parameter yields "".
func (c *Call) String(name string) string {
	v, ok := c.values[name]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprint(val)
	}
}

// Bool interprets a bound parameter as a flag.
func (c *Call) Bool(name string) bool {
	v, ok := c.values[name]
	if !ok {
		return false
	}
	return args.Options{name: v}.Bool(name)
}

// Strings returns a rest-args parameter.
func (c *Call) Strings(name string) []string {
	if v, ok := c.values[name].([]string); ok {
		return v
	}
	return nil
}

// Opts returns an all-options parameter.
func (c *Call) Opts(name string) args.Options {
	if v, ok := c.values[name].(args.Options); ok {
		return v
	}
	return nil
}

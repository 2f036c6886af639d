package console

import "strings"

// HandlerFunc is the signature shared by every entry point.
type HandlerFunc func(call *Call) (any, error)

// Source tells the binder where a computed parameter takes its value from.
type Source int

const (
	// FromValue binds from a same-named option, else the next positional
	// argument, else the default.
	FromValue Source = iota
	// FromRestArgs receives the positional arguments no value parameter consumed.
	FromRestArgs
	// FromAllOptions receives the complete option map.
	FromAllOptions
)

// Param declares one parameter of a computed entry.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
	Source     Source
}

// Required declares a value parameter without default.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a value parameter with a default.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// RestArgs declares the catch-all for unconsumed positional arguments.
func RestArgs(name string) Param {
	return Param{Name: name, Source: FromRestArgs}
}

// AllOptions declares a parameter receiving every option.
func AllOptions(name string) Param {
	return Param{Name: name, Source: FromAllOptions}
}

// Entry is one invocable entry point.
type Entry struct {
	Func     HandlerFunc
	Computed bool
	Params   []Param
	Summary  string
	Help     string
}

// Raw creates an entry receiving positional arguments and options as-is.
func Raw(fn HandlerFunc) Entry {
	return Entry{Func: fn}
}

// Computed creates an entry whose declared params are bound by name and position.
func Computed(fn HandlerFunc, params ...Param) Entry {
	return Entry{Func: fn, Computed: true, Params: params}
}

// WithDoc returns a copy of the entry with documentation attached.
func (e Entry) WithDoc(summary, help string) Entry {
	e.Summary = summary
	e.Help = help
	return e
}

// Usage renders the declared parameters, e.g. "<name> [color] [args...]".
// Raw entries have no declared parameters and yield "".
func (e Entry) Usage() string {
	var parts []string
	for _, p := range e.Params {
		switch {
		case p.Source == FromRestArgs:
			parts = append(parts, "["+p.Name+"...]")
		case p.Source == FromAllOptions:
			parts = append(parts, "[--options]")
		case p.HasDefault:
			parts = append(parts, "["+p.Name+"]")
		default:
			parts = append(parts, "<"+p.Name+">")
		}
	}
	return strings.Join(parts, " ")
}

// Entries maps entry-point keys ("Execute", "ExecuteHello") to entries.
type Entries map[string]Entry

// Command is implemented by class commands. A command without an "Execute"
// entry routes its first positional argument to an "Execute<Name>" entry.
type Command interface {
	Entries() Entries
}

// Describer is optionally implemented by class commands to document themselves.
type Describer interface {
	Describe() (summary, help string)
}

package console

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"cmdkit/pkg/errors"
)

// Kind is the shape of a registered handler.
type Kind int

const (
	KindClass Kind = iota + 1
	KindFunc
	KindMethod
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunc:
		return "function"
	case KindMethod:
		return "static method"
	case KindClosure:
		return "closure"
	default:
		return "unknown"
	}
}

// Descriptor describes a registered handler. Build it with Class, Func,
// Method or Closure; it must not be changed after registration.
type Descriptor struct {
	Kind   Kind
	Ident  string
	Hidden bool

	summary string
	help    string
	command Command
	entries Entries
	entry   Entry
}

// Class describes a class command. The identifier is the command's type
// name, so a *SayHelloCommand registers as "say-hello".
func Class(cmd Command) *Descriptor {
	ident := ""
	if cmd != nil {
		ident = strings.TrimLeft(fmt.Sprintf("%T", cmd), "*")
	}
	return NamedClass(ident, cmd)
}

// NamedClass describes a class command with an explicit identifier.
func NamedClass(ident string, cmd Command) *Descriptor {
	d := &Descriptor{Kind: KindClass, Ident: ident, command: cmd}
	if doc, ok := cmd.(Describer); ok {
		d.summary, d.help = doc.Describe()
	}
	return d
}

// Func describes a free function handler.
func Func(ident string, e Entry) *Descriptor {
	return &Descriptor{Kind: KindFunc, Ident: ident, entry: e}
}

// Method describes a static method handler; it registers under the
// inferred method name.
func Method(typeName, method string, e Entry) *Descriptor {
	return &Descriptor{Kind: KindMethod, Ident: typeName + "::" + method, entry: e}
}

// Closure describes an anonymous handler. It has no identifier and can only
// be registered under an explicit alias.
func Closure(e Entry) *Descriptor {
	return &Descriptor{Kind: KindClosure, entry: e}
}

// Hide keeps the command out of the help listing.
func (d *Descriptor) Hide() *Descriptor {
	d.Hidden = true
	return d
}

// Doc sets the summary and help text shown by the help command.
func (d *Descriptor) Doc(summary, help string) *Descriptor {
	d.summary = summary
	d.help = help
	return d
}

// Summary returns the one-line description.
func (d *Descriptor) Summary() string {
	if d.summary != "" {
		return d.summary
	}
	if e, ok := d.main(); ok {
		return e.Summary
	}
	return ""
}

// Help returns the long description.
func (d *Descriptor) Help() string {
	if d.help != "" {
		return d.help
	}
	if e, ok := d.main(); ok {
		return e.Help
	}
	return ""
}

// IsRouter reports whether the descriptor dispatches to sub-command entries.
func (d *Descriptor) IsRouter() bool {
	if d.Kind != KindClass {
		return false
	}
	_, ok := d.entries[EntryPrefix]
	return !ok
}

// Main returns the top-level entry point; routers have none.
func (d *Descriptor) Main() (Entry, bool) {
	return d.main()
}

func (d *Descriptor) main() (Entry, bool) {
	if d.Kind != KindClass {
		return d.entry, true
	}
	e, ok := d.entries[EntryPrefix]
	return e, ok
}

// Subcommand returns the entry registered for a sub-command name.
func (d *Descriptor) Subcommand(name string) (Entry, bool) {
	if d.Kind != KindClass {
		return Entry{}, false
	}
	e, ok := d.entries[EntryName(name)]
	return e, ok
}

// Subcommands lists the sub-command names of a class, sorted.
func (d *Descriptor) Subcommands() []string {
	var names []string
	for key := range d.entries {
		if key != EntryPrefix {
			names = append(names, SubcommandName(key))
		}
	}
	sort.Strings(names)
	return names
}

// prepare validates the descriptor and snapshots a class's entry table.
// It panics with a registration failure.
func (d *Descriptor) prepare() {
	if d.Kind != KindClass {
		if d.entry.Func == nil {
			panic(errors.Newf(errors.KindRegistration, "%s '%s' has no handler function", d.Kind, d.Ident).
				WithSubject(d.Ident))
		}
		return
	}

	if d.command == nil {
		panic(errors.Newf(errors.KindRegistration, "'%s' is not a command", d.Ident).WithSubject(d.Ident))
	}
	table := d.command.Entries()
	if len(table) == 0 {
		panic(errors.Newf(errors.KindRegistration, "'%s' must declare an %s entry point", d.Ident, EntryPrefix).
			WithSubject(d.Ident))
	}
	entries := make(Entries, len(table))
	for key, e := range table {
		if !validEntryKey(key) {
			panic(errors.Newf(errors.KindRegistration, "'%s' declares invalid entry point '%s'", d.Ident, key).
				WithSubject(d.Ident))
		}
		if e.Func == nil {
			panic(errors.Newf(errors.KindRegistration, "entry point '%s' of '%s' has no handler function", key, d.Ident).
				WithSubject(d.Ident))
		}
		entries[key] = e
	}
	d.entries = entries
}

// validEntryKey accepts "Execute" and "Execute" followed by an uppercase letter.
func validEntryKey(key string) bool {
	if key == EntryPrefix {
		return true
	}
	rest, ok := strings.CutPrefix(key, EntryPrefix)
	if !ok || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

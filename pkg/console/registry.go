package console

import (
	"strconv"

	"github.com/tidwall/btree"

	"cmdkit/pkg/errors"
)

// Listing is one registered command.
type Listing struct {
	Name       string
	Descriptor *Descriptor
}

// Registry maps command names to descriptors, ordered by name.
type Registry struct {
	commands btree.Map[string, *Descriptor]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds d under alias, or under the name inferred from its
// identifier when no alias is given. An existing entry with the same name
// is replaced. Invalid descriptors panic with a registration failure.
func (r *Registry) Register(d *Descriptor, alias ...string) string {
	if d == nil {
		panic(errors.New(errors.KindRegistration, "cannot register a nil handler"))
	}

	var name string
	switch {
	case len(alias) > 0:
		name = alias[0]
		if name == "" {
			panic(errors.Newf(errors.KindRegistration, "empty alias for '%s'", d.Ident).WithSubject(d.Ident))
		}
	case d.Kind == KindClosure:
		panic(errors.New(errors.KindRegistration, "a closure must be registered under an alias"))
	case d.Ident == "":
		panic(errors.Newf(errors.KindRegistration, "%s handler has no identifier", d.Kind))
	default:
		name = Infer(d.Ident)
		if name == "" {
			panic(errors.Newf(errors.KindRegistration, "cannot infer a command name from '%s'", d.Ident).
				WithSubject(d.Ident))
		}
	}

	d.prepare()
	r.commands.Set(name, d)
	return name
}

// RegisterMany registers each descriptor under its inferred name.
func (r *Registry) RegisterMany(ds ...*Descriptor) {
	for _, d := range ds {
		r.Register(d)
	}
}

// RegisterAliases registers each descriptor under its key. Numeric keys
// carry no alias and fall back to inference.
func (r *Registry) RegisterAliases(m map[string]*Descriptor) {
	for key, d := range m {
		if _, err := strconv.Atoi(key); err == nil {
			r.Register(d)
			continue
		}
		r.Register(d, key)
	}
}

// Resolve returns the descriptor registered under name.
func (r *Registry) Resolve(name string) (*Descriptor, error) {
	if d, ok := r.commands.Get(name); ok {
		return d, nil
	}
	return nil, errors.Newf(errors.KindLookup, "command '%s' does not exist", name).WithSubject(name)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands.Get(name)
	return ok
}

// List returns all registered commands sorted by name.
func (r *Registry) List() []Listing {
	out := make([]Listing, 0, r.commands.Len())
	r.commands.Scan(func(name string, d *Descriptor) bool {
		out = append(out, Listing{Name: name, Descriptor: d})
		return true
	})
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return r.commands.Len()
}

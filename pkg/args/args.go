// Package args tokenizes raw command-line vectors into positional arguments
// and named options.
//
// Options can be of the form:
//
//	--key=value
//	--key
//	-a
//	-ab (equivalent of -a -b)
//
// An option without a value is boolean true. A bare "--" joins every
// following token into a single trailing positional argument.
package args

import (
	"strings"
)

// Terminator ends option parsing.
const Terminator = "--"

// Options maps option keys to their values. A value is either a string or
// boolean true.
type Options map[string]any

// Has reports whether key was given.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the value of key as a string. Boolean options yield "true".
func (o Options) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// Bool reports whether key was given as a flag or with a truthy value.
func (o Options) Bool(key string) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch strings.ToLower(val) {
		case "", "0", "false", "no", "off":
			return false
		}
		return true
	}
	return false
}

// Clone returns a shallow copy.
func (o Options) Clone() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// Parse splits vector into positional arguments and options. It never fails
// and never modifies vector.
func Parse(vector []string) ([]string, Options) {
	positional := []string{}
	options := make(Options)

	for i := 0; i < len(vector); i++ {
		arg := vector[i]

		if arg == Terminator {
			positional = append(positional, strings.Join(vector[i+1:], " "))
			break
		}

		if strings.HasPrefix(arg, "--") {
			key, value, hasValue := strings.Cut(arg[2:], "=")
			if hasValue {
				options[key] = value
			} else {
				options[key] = true
			}
			continue
		}

		if strings.HasPrefix(arg, "-") {
			for _, r := range arg[1:] {
				options[string(r)] = true
			}
			continue
		}

		positional = append(positional, arg)
	}

	return positional, options
}

package commands

import (
	"cmdkit/pkg/console"
	"cmdkit/pkg/errors"
	"cmdkit/pkg/terminal"
	"cmdkit/pkg/version"
)

// Box prints its arguments framed in a box. Use "--" to pass text that
// looks like options.
var Box = console.Computed(func(call *console.Call) (any, error) {
	text := call.String("text")
	if text == "" {
		return nil, errors.New(errors.KindArity, "nothing to put in the box").WithSubject("text")
	}
	box := terminal.NewBox(text)
	box.Write(call.Console.Writer(), terminal.Stdout)
	return box.Render(), nil
}, console.RestArgs("text")).WithDoc("Frame text in a box", "")

// Version prints the version.
var Version = console.Raw(func(call *console.Call) (any, error) {
	call.Console.Writeln("cmdkit " + version.Version)
	return version.Version, nil
}).WithDoc("Show version", "")

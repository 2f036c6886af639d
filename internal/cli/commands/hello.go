// Package commands implements the bundled demo commands. Together they
// cover every handler shape the console supports: class commands, a
// sub-command router, free functions, a static method and a closure.
package commands

import (
	"fmt"

	"cmdkit/pkg/console"
	"cmdkit/pkg/terminal"
)

// HelloWorldCommand prints a greeting.
type HelloWorldCommand struct{}

func (HelloWorldCommand) Describe() (string, string) {
	return "Print hello world", ""
}

func (h HelloWorldCommand) Entries() console.Entries {
	return console.Entries{
		console.EntryPrefix: console.Raw(h.execute),
	}
}

func (HelloWorldCommand) execute(call *console.Call) (any, error) {
	call.Console.Writeln("hello world!", terminal.Style{Fg: "green"})
	return nil, nil
}

// SayHelloCommand greets someone in a color.
type SayHelloCommand struct{}

func (s SayHelloCommand) Entries() console.Entries {
	return console.Entries{
		console.EntryPrefix: console.Computed(s.execute,
			console.Required("name"),
			console.Optional("color", "green"),
		).WithDoc("Greet someone", "The greeting is printed in --color (default green)."),
	}
}

func (SayHelloCommand) execute(call *console.Call) (any, error) {
	greeting := fmt.Sprintf("hello %s!", call.String("name"))
	text, err := call.Console.Styler().Colorize(greeting, call.String("color"))
	if err != nil {
		return nil, err
	}
	call.Console.Writeln(text)
	return greeting, nil
}

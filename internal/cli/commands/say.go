package commands

import (
	"fmt"

	"cmdkit/pkg/console"
)

// unknownName is offered when the user is asked for a name.
const unknownName = "unknown"

// SayCommand routes to its hello and hi sub-commands.
type SayCommand struct{}

func (SayCommand) Describe() (string, string) {
	return "Say something to someone", ""
}

func (s SayCommand) Entries() console.Entries {
	return console.Entries{
		"ExecuteHello": console.Computed(s.hello, console.Optional("name", "")).
			WithDoc("Say hello", "Asks for the name when none is given."),
		"ExecuteHi": console.Computed(s.hi, console.Required("name")).
			WithDoc("Say hi", ""),
	}
}

func (SayCommand) hello(call *console.Call) (any, error) {
	name := call.String("name")
	if name == "" {
		answer, err := call.Console.Dialog().Ask("What is your name?", unknownName)
		if err != nil {
			return nil, fmt.Errorf("read name: %w", err)
		}
		name = answer
	}
	greeting := fmt.Sprintf("hello %s!", name)
	call.Console.Writeln(greeting)
	return greeting, nil
}

func (SayCommand) hi(call *console.Call) (any, error) {
	greeting := fmt.Sprintf("hi %s!", call.String("name"))
	call.Console.Writeln(greeting)
	return greeting, nil
}

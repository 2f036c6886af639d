package commands

import (
	"os"

	"cmdkit/internal/config"
	"cmdkit/pkg/console"
	"cmdkit/pkg/terminal"
)

// Tasks groups maintenance helpers exposed as static methods.
type Tasks struct{}

// TasksChecklist checks the environment the binary runs in.
var TasksChecklist = console.Raw(Tasks{}.Checklist).
	WithDoc("Check the local environment", "")

// Checklist runs each environment check and reports OK or FAIL.
func (Tasks) Checklist(call *console.Call) (any, error) {
	c := call.Console
	list := terminal.NewChecklist(c.Writer(), c.Styler())
	ok := list.Run([]terminal.Step{
		{Message: "Resolving home directory", Check: func() bool {
			_, err := os.UserHomeDir()
			return err == nil
		}},
		{Message: "Checking state directory", Check: func() bool {
			info, err := os.Stat(config.Dir())
			return err == nil && info.IsDir()
		}},
		{Message: "Checking interactive terminal", Check: terminal.IsTerminal},
		{Message: "Checking color output", Check: c.Styler().Enabled},
	})
	return ok, nil
}

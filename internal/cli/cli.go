// Package cli wires the bundled cmdkit application: it builds a console
// from the runtime configuration, registers the demo command set and
// installs crash reporting.
//
// The registered commands are:
//   - hello: class command registered under an alias
//   - say-hello: class command with computed parameters
//   - say: sub-command router (say hello, say hi)
//   - progress, version: free functions
//   - checklist: static method
//   - box: closure
package cli

import (
	"os"
	"path/filepath"

	"cmdkit/internal/cli/commands"
	"cmdkit/internal/config"
	"cmdkit/pkg/console"
	"cmdkit/pkg/logger"
	"cmdkit/pkg/terminal"
)

// CLI represents the command-line interface
type CLI struct {
	config  *config.Config
	console *console.Console
}

// New creates a new CLI instance. Extra options are applied after the
// configuration-derived ones.
func New(cfg *config.Config, opts ...console.Option) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	base := []console.Option{
		console.ExitOnFailure(cfg.ExitOnFailure),
		console.WithLogger(logger.Named("console")),
		console.WithScriptName(filepath.Base(os.Args[0])),
	}
	if cfg.NoColor {
		base = append(base, console.WithColor(false))
	} else {
		base = append(base, console.WithColor(terminal.ColorEnabled(os.Stdout)))
	}

	c := &CLI{config: cfg, console: console.New(append(base, opts...)...)}
	c.registerCommands()
	return c
}

// registerCommands registers all available commands
func (c *CLI) registerCommands() {
	c.console.Register(console.Class(commands.HelloWorldCommand{}), "hello")
	c.console.Registry().RegisterMany(
		console.Class(commands.SayHelloCommand{}),
		console.Class(commands.SayCommand{}),
		console.Func("progress", commands.Progress),
		console.Method("Tasks", "checklist", commands.TasksChecklist),
		console.Func("version", commands.Version),
	)
	c.console.Register(console.Closure(commands.Box), "box")
}

// Console returns the underlying dispatcher.
func (c *CLI) Console() *console.Console {
	return c.console
}

// Run executes the CLI with given arguments (without the program name).
func (c *CLI) Run(args []string) error {
	logger.StartTimer("dispatch")
	defer logger.EndTimer("dispatch")
	_, err := c.console.Run(args)
	return err
}

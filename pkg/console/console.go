// Package console resolves command names to registered handlers, binds
// their parameters and invokes them.
//
// A Console owns one Registry. Handlers come in four shapes (class, free
// function, static method, closure) described by a Descriptor. A run goes
// through the steps
//
//	tokenize -> resolve -> bind -> invoke
//
// and any failure on the way is reported once, boxed and bold, on the error
// stream. The process then exits with status 1 unless exit-on-failure is
// disabled, in which case Run returns the failure.
package console

import (
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"cmdkit/pkg/args"
	"cmdkit/pkg/errors"
	"cmdkit/pkg/logger"
	"cmdkit/pkg/terminal"
)

// HelpCommand is the reserved name of the help command.
const HelpCommand = "help"

// Console is the dispatcher. It is not safe for concurrent use.
type Console struct {
	registry *Registry
	out      terminal.Writer
	styler   *terminal.Styler
	input    io.Reader
	dialog   *terminal.Dialog
	log      *log.Entry

	exit          func(int)
	exitOnFailure bool

	single      bool
	defaultName string
	scriptName  string
}

// Option configures a Console.
type Option func(*Console)

// WithWriter sets the output sink.
func WithWriter(w terminal.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// WithStyler sets the text styler used for banners and command output.
func WithStyler(s *terminal.Styler) Option {
	return func(c *Console) {
		c.styler = s
	}
}

// WithColor enables or disables colored output.
func WithColor(enabled bool) Option {
	return WithStyler(terminal.NewStyler(enabled))
}

// WithInput sets where prompts read answers from.
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.input = r
	}
}

// WithExit replaces os.Exit.
func WithExit(exit func(int)) Option {
	return func(c *Console) {
		c.exit = exit
	}
}

// ExitOnFailure selects whether a failed run terminates the process (the
// default) or returns the failure to the caller.
func ExitOnFailure(enabled bool) Option {
	return func(c *Console) {
		c.exitOnFailure = enabled
	}
}

// SingleCommand makes every run invoke one command without consuming a
// name. With an empty name the sole registered command is used.
func SingleCommand(name string) Option {
	return func(c *Console) {
		c.single = true
		c.defaultName = name
	}
}

// WithScriptName sets the program name shown in help output.
func WithScriptName(name string) Option {
	return func(c *Console) {
		c.scriptName = name
	}
}

// WithLogger sets the diagnostic log entry.
func WithLogger(entry *log.Entry) Option {
	return func(c *Console) {
		c.log = entry
	}
}

// New creates a Console with the built-in help command registered.
func New(opts ...Option) *Console {
	c := &Console{
		registry:      NewRegistry(),
		out:           terminal.NewStdWriter(),
		input:         os.Stdin,
		log:           logger.Named("console"),
		exit:          os.Exit,
		exitOnFailure: true,
		scriptName:    filepath.Base(os.Args[0]),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.styler == nil {
		c.styler = terminal.NewStyler(terminal.ColorEnabled(os.Stdout))
	}
	c.registry.Register(NamedClass("HelpCommand", &helpCommand{}).Hide(), HelpCommand)
	return c
}

// Registry returns the command registry.
func (c *Console) Registry() *Registry {
	return c.registry
}

// Register adds a handler; see Registry.Register.
func (c *Console) Register(d *Descriptor, alias ...string) string {
	return c.registry.Register(d, alias...)
}

// Writer returns the output sink.
func (c *Console) Writer() terminal.Writer {
	return c.out
}

// Styler returns the text styler.
func (c *Console) Styler() *terminal.Styler {
	return c.styler
}

// ScriptName returns the program name used in help output.
func (c *Console) ScriptName() string {
	return c.scriptName
}

// Dialog returns the prompt helper reading from the configured input.
func (c *Console) Dialog() *terminal.Dialog {
	if c.dialog == nil {
		c.dialog = terminal.NewDialog(c.input, c.out)
	}
	return c.dialog
}

// Run dispatches an argument vector (without the program name).
func (c *Console) Run(argv []string) (any, error) {
	entry := c.log.WithField("invocation", uuid.NewString())
	positional, options := args.Parse(argv)
	entry.WithFields(log.Fields{"args": positional, "options": options}).Debug("tokenized")

	name, positional := c.selectName(positional)
	return c.dispatch(entry, name, positional, options)
}

// RunLine splits a command line the way a shell would and runs it.
func (c *Console) RunLine(line string) (any, error) {
	vector, err := args.Split(line)
	if err != nil {
		return c.fail(c.log, errors.Wrap(err, errors.KindParse, ""))
	}
	return c.Run(vector)
}

// Execute invokes the command registered under name directly.
func (c *Console) Execute(name string, positional []string, options args.Options) (any, error) {
	entry := c.log.WithField("invocation", uuid.NewString())
	return c.dispatch(entry, name, positional, options)
}

// selectName picks the command to run and returns the remaining arguments.
func (c *Console) selectName(positional []string) (string, []string) {
	if c.single {
		if c.defaultName != "" {
			return c.defaultName, positional
		}
		for _, l := range c.registry.List() {
			if l.Name != HelpCommand {
				return l.Name, positional
			}
		}
		return HelpCommand, positional
	}
	if len(positional) == 0 {
		c.WriteErr("No command given, showing help", terminal.Style{Fg: "yellow"})
		return HelpCommand, positional
	}
	return positional[0], positional[1:]
}

func (c *Console) dispatch(entry *log.Entry, name string, positional []string, options args.Options) (any, error) {
	entry = entry.WithField("command", name)

	d, err := c.registry.Resolve(name)
	if err != nil {
		return c.fail(entry, err)
	}
	entry.WithField("kind", d.Kind).Debug("resolved")

	result, err := c.invoke(entry, name, d, positional, options)
	if err != nil {
		return c.fail(entry, err)
	}
	entry.Debug("succeeded")
	return result, nil
}

// invoke binds and calls the entry point. Panics become handler failures,
// except registration failures, which keep unwinding.
func (c *Console) invoke(entry *log.Entry, name string, d *Descriptor, positional []string, options args.Options) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*errors.Error); ok && e.Kind == errors.KindRegistration {
				panic(r)
			}
			err = errors.FromPanic(r, debug.Stack()).WithContext("command", name)
		}
	}()

	e, sub, rest, err := c.route(name, d, positional)
	if err != nil {
		return nil, err
	}

	call, err := Bind(e, rest, options)
	if err != nil {
		return nil, err
	}
	call.Console = c
	call.Command = name
	call.Subcommand = sub
	entry.WithField("subcommand", sub).Debug("bound")

	result, err = e.Func(call)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindHandler, "").WithContext("command", name)
	}
	return result, nil
}

// route selects the entry point. A class without an Execute entry treats
// its first positional argument as a sub-command.
func (c *Console) route(name string, d *Descriptor, positional []string) (Entry, string, []string, error) {
	if e, ok := d.Main(); ok {
		return e, "", positional, nil
	}
	if len(positional) == 0 {
		return Entry{}, "", nil, errors.Newf(errors.KindArity, "missing sub-command name for '%s'", name).
			WithSubject(name)
	}
	sub := positional[0]
	e, ok := d.Subcommand(sub)
	if !ok {
		return Entry{}, "", nil, errors.Newf(errors.KindLookup, "sub-command '%s' of '%s' does not exist", sub, name).
			WithSubject(sub).
			WithSuggestion("Run 'help " + name + "' to list its sub-commands")
	}
	return e, sub, positional[1:], nil
}

func (c *Console) fail(entry *log.Entry, err error) (any, error) {
	failure := errors.Wrap(err, errors.KindUnknown, "")
	entry.WithError(failure).WithField("kind", failure.Kind).Debug("failed")
	c.report(failure)
	if c.exitOnFailure {
		c.exit(1)
	}
	return nil, failure
}

// Write writes styled text to stdout.
func (c *Console) Write(text string, style ...terminal.Style) {
	c.out.Write(c.format(text, style), terminal.Stdout)
}

// Writeln writes styled text and a newline to stdout.
func (c *Console) Writeln(text string, style ...terminal.Style) {
	c.out.Writeln(c.format(text, style), terminal.Stdout)
}

// WriteErr writes a line to stderr, red and bold unless a style is given.
func (c *Console) WriteErr(text string, style ...terminal.Style) {
	if len(style) == 0 {
		style = []terminal.Style{{Fg: "red", Bold: true}}
	}
	c.out.Writeln(c.format(text, style), terminal.Stderr)
}

// Formatted returns a writer applying style to everything written through
// it, for blocks of output sharing one format.
func (c *Console) Formatted(style terminal.Style) *terminal.FormattedWriter {
	return terminal.NewFormattedWriter(c.out, c.styler, style)
}

func (c *Console) format(text string, style []terminal.Style) string {
	if len(style) == 0 {
		return text
	}
	return c.styler.Format(text, style[0])
}

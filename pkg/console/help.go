package console

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"cmdkit/pkg/errors"
	"cmdkit/pkg/terminal"
)

var headingStyle = terminal.Style{Bold: true}

// helpCommand lists commands and prints their documentation.
type helpCommand struct{}

func (h *helpCommand) Describe() (string, string) {
	return "Show the available commands or the documentation of one",
		"help [command [sub-command]]"
}

func (h *helpCommand) Entries() Entries {
	return Entries{
		EntryPrefix: Raw(h.execute),
	}
}

func (h *helpCommand) execute(call *Call) (any, error) {
	c := call.Console
	switch len(call.Args) {
	case 0:
		h.list(c)
		return nil, nil
	case 1:
		return nil, h.command(c, call.Args[0])
	default:
		return nil, h.subcommand(c, call.Args[0], call.Args[1])
	}
}

func (h *helpCommand) list(c *Console) {
	c.Writeln("Available commands:", headingStyle)

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, l := range c.registry.List() {
		if l.Name == HelpCommand || l.Descriptor.Hidden {
			continue
		}
		fmt.Fprintf(w, " * %s\t%s\n", l.Name, l.Descriptor.Summary())
	}
	_ = w.Flush()
	c.Write(trimRows(buf.String()))

	c.Writeln(fmt.Sprintf("Use '%s %s <command>' for more info", c.scriptName, HelpCommand))
}

func (h *helpCommand) command(c *Console, name string) error {
	d, err := c.registry.Resolve(name)
	if err != nil {
		return err
	}

	c.Writeln(name, headingStyle)
	if s := d.Summary(); s != "" {
		c.Writeln(s, terminal.Style{Indent: 1})
	}
	if body := d.Help(); body != "" {
		c.Writeln("")
		c.Writeln(body, terminal.Style{Indent: 1})
	}
	c.Writeln("")

	if e, ok := d.Main(); ok {
		c.Writeln("Usage: " + usageLine(c.scriptName, name, e.Usage()))
		return nil
	}

	c.Writeln("Usage: " + usageLine(c.scriptName, name, "<sub-command>"))
	c.Writeln("")
	c.Writeln("Sub-commands:", headingStyle)
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, sub := range d.Subcommands() {
		e, _ := d.Subcommand(sub)
		fmt.Fprintf(w, " * %s\t%s\n", sub, e.Summary)
	}
	_ = w.Flush()
	c.Write(trimRows(buf.String()))
	return nil
}

func (h *helpCommand) subcommand(c *Console, name, sub string) error {
	d, err := c.registry.Resolve(name)
	if err != nil {
		return err
	}
	e, ok := d.Subcommand(sub)
	if !ok {
		return errors.Newf(errors.KindLookup, "sub-command '%s' of '%s' does not exist", sub, name).WithSubject(sub)
	}

	c.Writeln(name+" "+sub, headingStyle)
	if e.Summary != "" {
		c.Writeln(e.Summary, terminal.Style{Indent: 1})
	}
	if e.Help != "" {
		c.Writeln("")
		c.Writeln(e.Help, terminal.Style{Indent: 1})
	}
	c.Writeln("")
	c.Writeln("Usage: " + usageLine(c.scriptName, name+" "+sub, e.Usage()))
	return nil
}

func usageLine(script, name, params string) string {
	return strings.TrimSpace(strings.Join([]string{script, name, params}, " "))
}

// trimRows drops the padding tabwriter leaves after empty last columns.
func trimRows(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

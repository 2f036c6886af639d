package commands

import (
	"bytes"
	stdErrors "errors"
	"strings"
	"testing"
	"time"

	"cmdkit/pkg/console"
	"cmdkit/pkg/errors"
	"cmdkit/pkg/terminal"
	"cmdkit/pkg/version"
)

func newTestConsole(input string) (*console.Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	c := console.New(
		console.WithWriter(terminal.NewWriter(&out, &errOut)),
		console.WithColor(false),
		console.ExitOnFailure(false),
		console.WithInput(strings.NewReader(input)),
		console.WithScriptName("cmdkit"),
	)
	c.Register(console.Class(HelloWorldCommand{}), "hello")
	c.Registry().RegisterMany(
		console.Class(SayHelloCommand{}),
		console.Class(SayCommand{}),
		console.Func("progress", Progress),
		console.Method("Tasks", "checklist", TasksChecklist),
		console.Func("version", Version),
	)
	c.Register(console.Closure(Box), "box")
	return c, &out, &errOut
}

func TestHelloWorld(t *testing.T) {
	c, out, _ := newTestConsole("")
	if _, err := c.Run([]string{"hello"}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello world!\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestSayHello(t *testing.T) {
	c, out, _ := newTestConsole("")
	got, err := c.Run([]string{"say-hello", "Ann", "--color=red"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello Ann!" || out.String() != "hello Ann!\n" {
		t.Errorf("result = %v, output = %q", got, out.String())
	}

	_, err = c.Run([]string{"say-hello", "Ann", "--color=purple"})
	if !stdErrors.Is(err, errors.ErrHandler) {
		t.Errorf("unknown color should be a handler failure, got %v", err)
	}
}

func TestSay(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		input  string
		want   string
		prompt bool
	}{
		{"hello with name", []string{"say", "hello", "Ann"}, "", "hello Ann!", false},
		{"hello asks", []string{"say", "hello"}, "Zed\n", "hello Zed!", true},
		{"hello default answer", []string{"say", "hello"}, "", "hello unknown!", true},
		{"hi", []string{"say", "hi", "Bob"}, "", "hi Bob!", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, _ := newTestConsole(tt.input)
			got, err := c.Run(tt.argv)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Run() = %v, want %v", got, tt.want)
			}
			asked := strings.Contains(out.String(), "What is your name? [unknown] ")
			if asked != tt.prompt {
				t.Errorf("prompt shown = %v, output %q", asked, out.String())
			}
		})
	}

	c, _, _ := newTestConsole("")
	_, err := c.Run([]string{"say", "hi"})
	if !stdErrors.Is(err, errors.ErrArity) {
		t.Errorf("say hi without a name: %v", err)
	}
}

func TestProgress(t *testing.T) {
	var slept []time.Duration
	sleep = func(d time.Duration) { slept = append(slept, d) }
	defer func() { sleep = time.Sleep }()

	c, out, _ := newTestConsole("")
	got, err := c.Run([]string{"progress", "--total=3", "--usleep=5"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("Run() = %v, want 3", got)
	}
	if len(slept) != 3 || slept[0] != 5*time.Microsecond {
		t.Errorf("sleeps = %v", slept)
	}
	if !strings.Contains(out.String(), "] 100% 3/3") || !strings.HasSuffix(out.String(), "\n") {
		t.Errorf("output = %q", out.String())
	}

	_, err = c.Run([]string{"progress", "--total=many"})
	if !stdErrors.Is(err, errors.ErrHandler) {
		t.Errorf("invalid total: %v", err)
	}
}

func TestChecklist(t *testing.T) {
	c, out, _ := newTestConsole("")
	if _, err := c.Run([]string{"checklist"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 checks, got %q", out.String())
	}
	for _, l := range lines {
		if !strings.HasSuffix(l, "OK") && !strings.HasSuffix(l, "FAIL") {
			t.Errorf("check line without status: %q", l)
		}
	}
	// colors are disabled in this console
	if !strings.HasSuffix(lines[3], "FAIL") {
		t.Errorf("color check should fail: %q", lines[3])
	}
}

func TestBox(t *testing.T) {
	c, out, _ := newTestConsole("")
	if _, err := c.Run([]string{"box", "hi", "there"}); err != nil {
		t.Fatal(err)
	}
	want := "**************\n*  hi there  *\n**************\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}

	_, err := c.Run([]string{"box"})
	if !stdErrors.Is(err, errors.ErrArity) {
		t.Errorf("empty box: %v", err)
	}
}

func TestVersion(t *testing.T) {
	original := version.Version
	defer func() { version.Version = original }()
	version.Version = "1.2.3"

	c, out, _ := newTestConsole("")
	if _, err := c.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "cmdkit 1.2.3\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	c, out, _ := newTestConsole("")
	if _, err := c.Run([]string{"help"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"box", "checklist", "hello", "progress", "say", "say-hello", "version"} {
		if !strings.Contains(out.String(), " * "+name+" ") {
			t.Errorf("help missing %q:\n%s", name, out.String())
		}
	}
}

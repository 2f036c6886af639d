package cli

import (
	"bytes"
	stdErrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cmdkit/internal/config"
	"cmdkit/pkg/console"
	"cmdkit/pkg/errors"
	"cmdkit/pkg/terminal"
)

func newTestCLI(cfg *config.Config) (*CLI, *bytes.Buffer, *bytes.Buffer, *[]int) {
	var out, errOut bytes.Buffer
	var exits []int
	c := New(cfg,
		console.WithWriter(terminal.NewWriter(&out, &errOut)),
		console.WithColor(false),
		console.WithScriptName("cmdkit"),
		console.WithInput(strings.NewReader("")),
		console.WithExit(func(code int) { exits = append(exits, code) }),
	)
	return c, &out, &errOut, &exits
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config *config.Config
	}{
		{name: "with nil config", config: nil},
		{name: "with defaults", config: config.Default()},
		{name: "without colors", config: &config.Config{NoColor: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.config)
			if c == nil || c.Console() == nil {
				t.Fatal("New() returned nil")
			}
			if c.config == nil {
				t.Error("New() should fall back to the default config")
			}
			want := []string{"box", "checklist", "hello", "help", "progress", "say", "say-hello", "version"}
			var got []string
			for _, l := range c.Console().Registry().List() {
				got = append(got, l.Name)
			}
			if strings.Join(got, ",") != strings.Join(want, ",") {
				t.Errorf("registered commands = %v, want %v", got, want)
			}
		})
	}
}

func TestCLI_HandlerShapes(t *testing.T) {
	c, _, _, _ := newTestCLI(&config.Config{})
	reg := c.Console().Registry()
	tests := []struct {
		name string
		kind console.Kind
	}{
		{"hello", console.KindClass},
		{"say", console.KindClass},
		{"progress", console.KindFunc},
		{"checklist", console.KindMethod},
		{"box", console.KindClosure},
	}
	for _, tt := range tests {
		d, err := reg.Resolve(tt.name)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", tt.name, err)
		}
		if d.Kind != tt.kind {
			t.Errorf("%s kind = %v, want %v", tt.name, d.Kind, tt.kind)
		}
	}
}

func TestCLI_Run(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		exitOnErr bool
		wantErr   bool
		wantOut   string
		wantExits []int
	}{
		{name: "hello", args: []string{"hello"}, wantOut: "hello world!"},
		{name: "say hi", args: []string{"say", "hi", "Ann"}, wantOut: "hi Ann!"},
		{name: "help", args: []string{"help"}, wantOut: "Available commands:"},
		{name: "unknown returns", args: []string{"nope"}, wantErr: true},
		{name: "unknown exits", args: []string{"nope"}, exitOnErr: true, wantErr: true, wantExits: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, errOut, exits := newTestCLI(&config.Config{ExitOnFailure: tt.exitOnErr})
			err := c.Run(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !stdErrors.Is(err, errors.ErrLookup) {
					t.Errorf("expected lookup failure, got %v", err)
				}
				if !strings.Contains(errOut.String(), "command 'nope' does not exist") {
					t.Errorf("missing report: %q", errOut.String())
				}
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOut)
			}
			if len(*exits) != len(tt.wantExits) {
				t.Errorf("exits = %v, want %v", *exits, tt.wantExits)
			}
		})
	}
}

func TestPanicHandler(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "crashes")
	var out bytes.Buffer
	var code int
	p := &PanicHandler{CrashDir: dir, Out: &out, Exit: func(c int) { code = c }}

	func() {
		defer p.Recover()
		panic("something broke")
	}()

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(out.String(), "cmdkit crashed unexpectedly") || !strings.Contains(out.String(), "Error: something broke") {
		t.Errorf("output = %q", out.String())
	}

	files, err := os.ReadDir(dir)
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one crash report, got %v (%v)", files, err)
	}
	if !strings.HasPrefix(files[0].Name(), "crash-") {
		t.Errorf("report name = %q", files[0].Name())
	}
	data, _ := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if !strings.Contains(string(data), "cmdkit Crash Report") || !strings.Contains(string(data), "something broke") {
		t.Errorf("report = %s", data)
	}
}

func TestPanicHandler_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	p := &PanicHandler{CrashDir: filepath.Join(file, "crashes"), Out: &out, Exit: func(int) {}}
	p.handlePanic(stdErrors.New("bad"), []byte("stack"))
	if !strings.Contains(out.String(), "could not be saved") {
		t.Errorf("output = %q", out.String())
	}
}

func TestSignature(t *testing.T) {
	a := Signature("boom", "goroutine 1 [running]:\nmain.f(0xc000012345)\n\t/src/main.go:10 +0x1d")
	b := Signature("boom", "goroutine 7 [running]:\nmain.f(0xc000099999)\n\t/src/main.go:10 +0x2f")
	if a != b {
		t.Errorf("signatures differ for the same crash: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("signature length = %d", len(a))
	}
	if Signature("other", "x") == a {
		t.Error("different crashes should not share a signature")
	}
}

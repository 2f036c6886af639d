package terminal

import (
	"os"
	"strings"
	"testing"
)

func TestColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(os.Stdout) {
		t.Error("expected colors disabled when NO_COLOR=1")
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		spec    string
		want    Style
		wantErr bool
	}{
		{spec: "", want: Style{}},
		{spec: "red", want: Style{Fg: "red"}},
		{spec: "red+bold", want: Style{Fg: "red", Bold: true}},
		{spec: "Bold", want: Style{Bold: true}},
		{spec: "white+blue", want: Style{Fg: "white", Bg: "blue"}},
		{spec: "bright_green", want: Style{Fg: "bright_green"}},
		{spec: "purple", wantErr: true},
		{spec: "red+blink", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseStyle(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseStyle(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestStylerFormat(t *testing.T) {
	plain := NewStyler(false)
	tests := []struct {
		name  string
		text  string
		style Style
		want  string
	}{
		{"unstyled", "hello", Style{Fg: "red", Bold: true}, "hello"},
		{"indent", "a\nb", Style{Indent: 1}, "  a\n  b"},
		{"quote", "a\nb\n", Style{Quote: " * "}, " * a\n * b\n"},
		{"indent and quote", "x", Style{Indent: 2, Quote: "> "}, "    > x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain.Format(tt.text, tt.style); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStylerColorsWhenEnabled(t *testing.T) {
	s := NewStyler(true)
	got := s.Format("hello", Style{Fg: "red", Bold: true})
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "hello") {
		t.Errorf("expected ANSI sequences around text, got %q", got)
	}
	if got := s.Format("hello", Style{}); got != "hello" {
		t.Errorf("empty style should not add sequences, got %q", got)
	}
	if _, err := s.Colorize("x", "nope"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestFormattedWriter(t *testing.T) {
	var out, errOut strings.Builder
	w := NewFormattedWriter(NewWriter(&out, &errOut), NewStyler(false), Style{Indent: 1})
	w.Writeln("one", Stdout)
	w.Write("two", Stderr)

	if out.String() != "  one\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if errOut.String() != "  two" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestNewWriterNilDiscards(t *testing.T) {
	w := NewWriter(nil, nil)
	w.Writeln("ignored", Stdout)
	w.Writeln("ignored", Stderr)
}

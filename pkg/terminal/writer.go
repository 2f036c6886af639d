package terminal

import (
	"fmt"
	"io"
	"os"
)

// Stream selects the output channel.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Writer is the output sink used by commands and the dispatcher.
type Writer interface {
	Write(text string, stream Stream)
	Writeln(text string, stream Stream)
}

// StreamWriter writes to a pair of io.Writers.
type StreamWriter struct {
	out io.Writer
	err io.Writer
}

// NewWriter creates a StreamWriter; a nil writer discards its stream.
func NewWriter(out, err io.Writer) *StreamWriter {
	if out == nil {
		out = io.Discard
	}
	if err == nil {
		err = io.Discard
	}
	return &StreamWriter{out: out, err: err}
}

// NewStdWriter writes to the process stdout and stderr.
func NewStdWriter() *StreamWriter {
	return NewWriter(os.Stdout, os.Stderr)
}

func (w *StreamWriter) Write(text string, stream Stream) {
	if stream == Stderr {
		fmt.Fprint(w.err, text)
		return
	}
	fmt.Fprint(w.out, text)
}

func (w *StreamWriter) Writeln(text string, stream Stream) {
	w.Write(text+"\n", stream)
}

// FormattedWriter applies a Style to everything written through it.
type FormattedWriter struct {
	w      Writer
	styler *Styler
	style  Style
}

// NewFormattedWriter wraps w.
func NewFormattedWriter(w Writer, styler *Styler, style Style) *FormattedWriter {
	return &FormattedWriter{w: w, styler: styler, style: style}
}

func (f *FormattedWriter) Write(text string, stream Stream) {
	f.w.Write(f.styler.Format(text, f.style), stream)
}

func (f *FormattedWriter) Writeln(text string, stream Stream) {
	f.w.Writeln(f.styler.Format(text, f.style), stream)
}

// Package errors provides the failure taxonomy used by cmdkit. Every failure
// raised while resolving, binding or invoking a command is an *Error carrying
// a Kind, a human readable message and, for failures that need diagnostics,
// a lightweight stack trace.
package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind categorizes failures for reporting
type Kind string

const (
	// KindParse is reserved for strict tokenizer modes; the default tokenizer never fails.
	KindParse Kind = "PARSE_AMBIGUITY"

	// KindLookup means a command or sub-command name is not registered.
	KindLookup Kind = "LOOKUP"

	// KindArity means a required parameter could not be bound.
	KindArity Kind = "ARITY"

	// KindRegistration means a registration target is not a usable handler.
	KindRegistration Kind = "REGISTRATION"

	// KindHandler covers anything raised from a handler's own logic.
	KindHandler Kind = "HANDLER"

	// KindUnknown is used for failures of unknown origin.
	KindUnknown Kind = "UNKNOWN"
)

// Sentinels for use with errors.Is; they match any *Error of the same Kind.
var (
	ErrParse        = &Error{Kind: KindParse}
	ErrLookup       = &Error{Kind: KindLookup}
	ErrArity        = &Error{Kind: KindArity}
	ErrRegistration = &Error{Kind: KindRegistration}
	ErrHandler      = &Error{Kind: KindHandler}
)

// StackFrame represents a single stack frame
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Error is the failure type returned by the dispatcher
type Error struct {
	Kind       Kind              `json:"kind"`
	Message    string            `json:"message"`
	Subject    string            `json:"subject,omitempty"`
	Details    string            `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      error             `json:"-"`
	Context    map[string]string `json:"context,omitempty"`
	Stack      []StackFrame      `json:"stack,omitempty"`
	Panicked   bool              `json:"panicked,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the originating condition.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a sentinel of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Label returns the user-facing name of the failure kind.
func (e *Error) Label() string {
	switch e.Kind {
	case KindParse:
		return "Parse ambiguity"
	case KindLookup:
		return "Lookup failure"
	case KindArity:
		return "Arity failure"
	case KindRegistration:
		return "Registration failure"
	case KindHandler:
		return "Handler failure"
	default:
		return "Unexpected failure"
	}
}

// Detailed reports whether the failure is reported with full diagnostics.
// Lookup and arity failures are operator mistakes and get a single line.
func (e *Error) Detailed() bool {
	switch e.Kind {
	case KindLookup, KindArity, KindParse:
		return false
	default:
		return true
	}
}

// WithSuggestion adds a suggestion for fixing the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// WithContext adds contextual information
func (e *Error) WithContext(key, value string) *Error {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps another error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails adds detailed information
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// WithSubject records the command, sub-command or parameter name the failure is about.
func (e *Error) WithSubject(subject string) *Error {
	e.Subject = subject
	return e
}

// New creates a new Error
func New(kind Kind, message string) *Error {
	err := &Error{
		Kind:    kind,
		Message: message,
		Context: make(map[string]string),
	}
	err.captureStack(3)
	err.Suggestion = defaultSuggestion(kind)
	return err
}

// Newf creates a new Error with a formatted message.
func Newf(kind Kind, format string, a ...any) *Error {
	err := &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
		Context: make(map[string]string),
	}
	err.captureStack(3)
	err.Suggestion = defaultSuggestion(kind)
	return err
}

// Wrap adopts err as an Error of the given kind. An *Error keeps its own
// kind; the result is always a copy, so sentinels and shared failures are
// never modified.
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		c := e.clone()
		if message != "" {
			c.Message = message + ": " + c.Message
		}
		return c
	}
	if message == "" {
		message = err.Error()
	}
	w := &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
		Context: make(map[string]string),
	}
	w.captureStack(3)
	w.Suggestion = defaultSuggestion(kind)
	return w
}

// FromPanic converts a recovered panic value into a handler failure. The
// stack is the one captured at the recovery point (runtime/debug.Stack).
func FromPanic(r any, stack []byte) *Error {
	var message string
	var cause error
	switch v := r.(type) {
	case *Error:
		return v.clone()
	case error:
		message, cause = v.Error(), v
	case string:
		message = v
	default:
		message = fmt.Sprintf("%v", r)
	}
	e := &Error{
		Kind:     KindHandler,
		Message:  message,
		Cause:    cause,
		Context:  make(map[string]string),
		Panicked: true,
		Stack:    parseStack(stack),
	}
	return e
}

// clone copies e. A sentinel, which has no message, gets the default
// message of its kind.
func (e *Error) clone() *Error {
	c := *e
	c.Context = make(map[string]string, len(e.Context))
	for k, v := range e.Context {
		c.Context[k] = v
	}
	c.Stack = append([]StackFrame(nil), e.Stack...)
	if c.Message == "" {
		c.Message = defaultMessage(c.Kind)
	}
	if c.Suggestion == "" {
		c.Suggestion = defaultSuggestion(c.Kind)
	}
	return &c
}

func defaultMessage(kind Kind) string {
	switch kind {
	case KindParse:
		return "the command line could not be parsed"
	case KindLookup:
		return "command not found"
	case KindArity:
		return "a required argument is missing"
	case KindRegistration:
		return "invalid command registration"
	case KindHandler:
		return "command failed"
	default:
		return "unexpected failure"
	}
}

// captureStack captures the current stack trace
func (e *Error) captureStack(skip int) {
	const maxFrames = 10
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			if !more {
				break
			}
			continue
		}
		e.Stack = append(e.Stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
}

// parseStack reads the output of runtime/debug.Stack into frames, skipping
// the runtime and the recovery machinery itself.
func parseStack(stack []byte) []StackFrame {
	const maxFrames = 10
	var frames []StackFrame
	lines := strings.Split(strings.TrimSpace(string(stack)), "\n")
	// first line is the goroutine header; then function/location pairs
	for i := 1; i+1 < len(lines) && len(frames) < maxFrames; i += 2 {
		fn := strings.TrimSpace(lines[i])
		loc := strings.TrimSpace(lines[i+1])
		if idx := strings.LastIndex(fn, "("); idx > 0 {
			fn = fn[:idx]
		}
		if strings.HasPrefix(fn, "runtime/debug.") || strings.HasPrefix(fn, "runtime.") || strings.HasPrefix(fn, "panic") {
			continue
		}
		if idx := strings.Index(loc, " +0x"); idx >= 0 {
			loc = loc[:idx]
		}
		frame := StackFrame{Function: fn, File: loc}
		if idx := strings.LastIndex(loc, ":"); idx >= 0 {
			var line int
			if _, err := fmt.Sscanf(loc[idx+1:], "%d", &line); err == nil {
				frame.File, frame.Line = loc[:idx], line
			}
		}
		frames = append(frames, frame)
	}
	return frames
}

// defaultSuggestion provides default fix suggestions
func defaultSuggestion(kind Kind) string {
	suggestions := map[Kind]string{
		KindLookup: "Run 'help' to list the available commands",
		KindArity:  "Run 'help <command>' to see the expected arguments",
	}
	if s, ok := suggestions[kind]; ok {
		return s
	}
	return ""
}

package console

import (
	stdErrors "errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"cmdkit/pkg/errors"
	"cmdkit/pkg/terminal"
)

// maxReportFrames bounds the stack summary in a failure report.
const maxReportFrames = 5

// reportStyle is applied to the whole failure box.
var reportStyle = terminal.Style{Fg: "red", Bold: true}

// report writes one boxed block describing err to stderr.
func (c *Console) report(err *errors.Error) {
	box := terminal.NewBox(FormatFailure(err))
	c.out.Writeln(c.styler.Format(box.Render(), reportStyle), terminal.Stderr)
}

// FormatFailure renders the text of a failure report. Lookup and arity
// failures are a single line; everything else carries its origin, cause
// chain and a stack summary.
func FormatFailure(err *errors.Error) string {
	headline := fmt.Sprintf("%s: %s", err.Label(), err.Message)
	if !err.Detailed() {
		return headline
	}

	lines := []string{headline}
	if err.Details != "" {
		lines = append(lines, "", err.Details)
	}
	if len(err.Stack) > 0 {
		lines = append(lines, "", "Origin: "+formatStackFrame(err.Stack[0]))
	}

	if causes := causeChain(err.Cause); len(causes) > 0 {
		lines = append(lines, "", "Caused by:")
		for depth, cause := range causes {
			lines = append(lines, fmt.Sprintf("%s%s %s", strings.Repeat("  ", depth+1), terminal.IconDot, cause))
		}
	}

	if len(err.Context) > 0 {
		lines = append(lines, "", "Context:")
		keys := make([]string, 0, len(err.Context))
		for k := range err.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("  %s: %s", k, err.Context[k]))
		}
	}

	if len(err.Stack) > 1 {
		lines = append(lines, "", "Stack trace:")
		for i, f := range err.Stack {
			if i == maxReportFrames {
				lines = append(lines, fmt.Sprintf("  ... %d more", len(err.Stack)-i))
				break
			}
			lines = append(lines, "  "+formatStackFrame(f))
		}
	}

	if err.Suggestion != "" {
		lines = append(lines, "", err.Suggestion)
	}
	return strings.Join(lines, "\n")
}

func causeChain(err error) []string {
	var chain []string
	for err != nil {
		if e, ok := err.(*errors.Error); ok {
			chain = append(chain, e.Message)
			err = e.Cause
			continue
		}
		chain = append(chain, err.Error())
		err = stdErrors.Unwrap(err)
	}
	return chain
}

func formatStackFrame(frame errors.StackFrame) string {
	fn := frame.Function
	if idx := strings.LastIndex(fn, "/"); idx >= 0 {
		fn = fn[idx+1:]
	}
	if frame.Line == 0 {
		return fmt.Sprintf("%s() %s", fn, filepath.Base(frame.File))
	}
	return fmt.Sprintf("%s() %s:%d", fn, filepath.Base(frame.File), frame.Line)
}

package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"cmdkit/pkg/logger"
	"cmdkit/pkg/terminal"
	"cmdkit/pkg/version"
)

// PanicHandler recovers from panics that escape the dispatcher (for example
// registration failures) and shows friendly errors
type PanicHandler struct {
	// CrashDir receives crash reports.
	CrashDir string
	// Out defaults to os.Stderr.
	Out io.Writer
	// Exit defaults to os.Exit.
	Exit func(int)
}

// Recover catches panics and converts them to friendly output. It must be
// deferred directly.
func (p *PanicHandler) Recover() { //nolint:revive
	if r := recover(); r != nil {
		p.handlePanic(r, debug.Stack())
	}
}

func (p *PanicHandler) handlePanic(r interface{}, stack []byte) {
	var message string
	switch v := r.(type) {
	case string:
		message = v
	case error:
		message = v.Error()
	default:
		message = fmt.Sprintf("%v", r)
	}

	out := p.Out
	if out == nil {
		out = os.Stderr
	}
	logger.Named("panic").WithField("panic", message).Error("cmdkit crashed")

	crashReport, err := p.saveCrashReport(message, string(stack))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", terminal.IconError, terminal.BoldText(terminal.Error("cmdkit crashed unexpectedly")))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Error: %s\n", message)
	fmt.Fprintln(out)
	if err != nil {
		fmt.Fprintf(out, "The crash report could not be saved: %v\n", err)
	} else {
		fmt.Fprintf(out, "A crash report has been saved to:\n%s\n", crashReport)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Include the crash report and what you were doing when this happened.")

	exit := p.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(2)
}

// Signature identifies a crash by its message and stack, so repeated
// crashes of the same kind share one report file.
func Signature(message, stack string) string {
	hasher := blake3.New()
	fmt.Fprintf(hasher, "%s\x00%s", message, stripAddresses(stack))
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}

// stripAddresses drops goroutine ids and pc offsets that differ between runs.
func stripAddresses(stack string) string {
	lines := strings.Split(stack, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "goroutine ") {
			continue
		}
		if idx := strings.Index(line, " +0x"); idx >= 0 {
			line = line[:idx]
		}
		if idx := strings.Index(line, "(0x"); idx >= 0 {
			line = line[:idx]
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (p *PanicHandler) saveCrashReport(message, stack string) (string, error) {
	if err := os.MkdirAll(p.CrashDir, 0o755); err != nil {
		return "", err
	}
	fp := filepath.Join(p.CrashDir, fmt.Sprintf("crash-%s.txt", Signature(message, stack)))
	report := fmt.Sprintf(`cmdkit Crash Report
===================
Time: %s
Version: %s
OS: %s
Arch: %s

Error:
%s

Stack Trace:
%s

Environment:
%s
`, time.Now().Format(time.RFC3339), version.Version, runtime.GOOS, runtime.GOARCH, message, stack, p.getEnvironmentInfo())
	if err := os.WriteFile(fp, []byte(report), 0o644); err != nil {
		return "", err
	}
	return fp, nil
}

func (p *PanicHandler) getEnvironmentInfo() string {
	var info []string
	for _, key := range []string{"CMDKIT_VERBOSE", "CMDKIT_DEBUG", "CMDKIT_EXIT_ON_FAILURE", "NO_COLOR", "TERM"} {
		if v := os.Getenv(key); v != "" {
			info = append(info, fmt.Sprintf("%s=%s", key, v))
		}
	}
	return strings.Join(info, "\n")
}

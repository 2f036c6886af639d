// Package logger provides leveled diagnostic logging on top of logrus.
// It supports -v (verbose) and --debug flags. In debug mode, logs are also
// written to a rotating file for troubleshooting. Until Initialize is called
// all output is discarded, so library code can log unconditionally.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the global logger.
type Options struct {
	Verbose bool
	Debug   bool
	// LogFile receives a copy of every entry in debug mode.
	LogFile string
	// Output defaults to os.Stderr.
	Output io.Writer
}

var (
	mu      sync.Mutex
	base    = newBase()
	file    *lumberjack.Logger
	verbose bool
	timings = make(map[string]time.Time)
)

func newBase() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.InfoLevel)
	return l
}

// Initialize sets up the global logger
func Initialize(verbose, debug bool, logFile string) {
	Configure(Options{Verbose: verbose, Debug: debug, LogFile: logFile})
}

// Configure sets up the global logger. It may be called again to reconfigure;
// entries obtained from Named keep working.
func Configure(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	closeFile()

	out := opts.Output
	colors := false
	if out == nil {
		out = os.Stderr
		colors = isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("NO_COLOR") == ""
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	if opts.Debug {
		level = log.TraceLevel
	}
	verbose = opts.Verbose || opts.Debug

	writer := out
	if opts.Debug && opts.LogFile != "" {
		file = &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		writer = io.MultiWriter(out, file)
	}

	base.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		DisableColors:   !colors,
	})
	base.SetOutput(writer)
	base.SetLevel(level)
	base.SetReportCaller(opts.Debug)

	if file != nil {
		base.WithField("file", opts.LogFile).Trace("logging to file")
	}
}

// Close closes any resources used by the logger
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
}

func closeFile() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// Named returns an entry tagged with a component name.
func Named(component string) *log.Entry {
	return base.WithField("component", component)
}

// Info logs at info level (always shown)
func Info(msg string) { base.Info(msg) }
func Infof(format string, args ...interface{}) { base.Infof(format, args...) }

// Verbose logs at verbose level (shown with -v)
func Verbose(msg string) { base.Debug(msg) }
func Verbosef(format string, args ...interface{}) { base.Debugf(format, args...) }

// Debug logs at debug level (shown with --debug)
func Debug(msg string) { base.Trace(msg) }
func Debugf(format string, args ...interface{}) { base.Tracef(format, args...) }

// Warn logs warnings
func Warn(msg string) { base.Warn(msg) }
func Warnf(format string, args ...interface{}) { base.Warnf(format, args...) }

// Error logs errors (always shown)
func Error(msg string) { base.Error(msg) }
func Errorf(format string, args ...interface{}) { base.Errorf(format, args...) }

// StartTimer begins timing an operation
func StartTimer(operation string) {
	mu.Lock()
	if !verbose {
		mu.Unlock()
		return
	}
	timings[operation] = time.Now()
	mu.Unlock()
	Verbose(fmt.Sprintf("starting %s", operation))
}

// EndTimer logs the duration of an operation
func EndTimer(operation string) {
	mu.Lock()
	start, ok := timings[operation]
	delete(timings, operation)
	mu.Unlock()
	if ok {
		base.WithField("elapsed", time.Since(start).Round(time.Microsecond)).Debugf("completed %s", operation)
	}
}

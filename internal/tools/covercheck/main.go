// Command covercheck enforces a per-file statement coverage floor on a
// profile written by "go test -coverprofile".
//
//	covercheck --profile=coverage.out --threshold=85 'pkg/*' 'internal/cli/*'
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gobwas/glob"

	"cmdkit/pkg/args"
	"cmdkit/pkg/console"
	"cmdkit/pkg/errors"
	"cmdkit/pkg/terminal"
)

type fileCov struct {
	total   int
	covered int
}

var check = console.Computed(func(call *console.Call) (any, error) {
	flags := call.Opts("flags")
	profile := option(flags, "profile", "coverage.out")
	raw := option(flags, "threshold", "85")
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Newf(errors.KindArity, "threshold must be a number, got '%s'", raw).WithSubject("threshold")
	}
	var filters []glob.Glob
	for _, p := range call.Strings("include") {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, errors.Wrap(err, errors.KindArity, "invalid include pattern "+p)
		}
		filters = append(filters, g)
	}

	f, err := os.Open(profile)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	cov, err := readProfile(f, filters)
	if err != nil {
		return nil, err
	}
	failed := evaluate(cov, threshold)
	if len(failed) > 0 {
		call.Console.WriteErr("Per-file coverage check failed:")
		for _, msg := range failed {
			call.Console.WriteErr("  " + msg)
		}
		return nil, errors.Newf(errors.KindHandler, "%d file(s) below %.1f%%", len(failed), threshold)
	}
	call.Console.Writeln(fmt.Sprintf("%s %d file(s) at or above %.1f%%", terminal.IconSuccess, len(cov), threshold))
	return len(cov), nil
}, console.RestArgs("include"), console.AllOptions("flags")).
	WithDoc("Check per-file coverage", "Patterns select files by their profile path; all files are checked when none are given.")

func option(flags args.Options, key, def string) string {
	if v, ok := flags.String(key); ok && v != "" && v != "true" {
		return v
	}
	return def
}

// readProfile sums statements per non-test file. Lines look like
// "file.go:startLine.startCol,endLine.endCol numStatements count".
func readProfile(r io.Reader, filters []glob.Glob) (map[string]*fileCov, error) {
	cov := make(map[string]*fileCov)
	s := bufio.NewScanner(r)
	first := true
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if first {
			// mode: set/count/atomic
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		i := strings.Index(fields[0], ":")
		if i <= 0 {
			continue
		}
		filename := filepath.ToSlash(fields[0][:i])
		if strings.HasSuffix(filename, "_test.go") || !included(filename, filters) {
			continue
		}
		numStmt, err1 := strconv.Atoi(fields[1])
		cnt, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			continue
		}
		fc := cov[filename]
		if fc == nil {
			fc = &fileCov{}
			cov[filename] = fc
		}
		fc.total += numStmt
		if cnt > 0 {
			fc.covered += numStmt
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return cov, nil
}

func included(filename string, filters []glob.Glob) bool {
	if len(filters) == 0 {
		return true
	}
	for _, g := range filters {
		if g.Match(filename) {
			return true
		}
	}
	return false
}

// evaluate lists files under the threshold, sorted by name.
func evaluate(cov map[string]*fileCov, threshold float64) []string {
	var failed []string
	for file, fc := range cov {
		if fc.total == 0 {
			continue
		}
		pct := float64(fc.covered) * 100.0 / float64(fc.total)
		if pct+1e-9 < threshold {
			failed = append(failed, fmt.Sprintf("%s: %.1f%% < %.1f%%", file, pct, threshold))
		}
	}
	sort.Strings(failed)
	return failed
}

func newConsole(opts ...console.Option) *console.Console {
	base := []console.Option{
		console.SingleCommand("covercheck"),
		console.WithScriptName("covercheck"),
		console.WithColor(terminal.ColorEnabled(os.Stdout)),
	}
	c := console.New(append(base, opts...)...)
	c.Register(console.Func("covercheck", check))
	return c
}

func main() {
	_, _ = newConsole().Run(os.Args[1:])
}

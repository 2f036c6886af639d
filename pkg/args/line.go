package args

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Split breaks a shell-like command line into a vector. Quotes and
// backslash escapes are honored; environment variables and backticks are not
// expanded.
func Split(line string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false

	vector, err := parser.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("split command line: %w", err)
	}
	return vector, nil
}

// ParseLine splits line with Split and tokenizes the result with Parse.
func ParseLine(line string) ([]string, Options, error) {
	vector, err := Split(line)
	if err != nil {
		return nil, nil, err
	}
	positional, options := Parse(vector)
	return positional, options, nil
}

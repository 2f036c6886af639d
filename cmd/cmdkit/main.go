package main

import (
	"fmt"
	"os"

	"cmdkit/internal/cli"
	"cmdkit/internal/config"
	"cmdkit/pkg/console"
	"cmdkit/pkg/logger"
	"cmdkit/pkg/terminal"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one invocation and returns the process exit status. Extra
// console options are applied after the configuration-derived ones.
func run(argv []string, opts ...console.Option) int {
	cfg, err := config.Load()
	if err != nil {
		// keep the defaults that Load returned alongside the error
		fmt.Fprintln(os.Stderr, terminal.Warning(fmt.Sprintf("ignoring invalid environment: %v", err)))
	}

	args, verbose, debug := globalFlags(argv)
	verbose = verbose || cfg.Verbose
	debug = debug || cfg.Debug

	logger.Initialize(verbose, debug, cfg.LogFile)
	defer logger.Close()

	ph := cli.PanicHandler{CrashDir: cfg.CrashDir}
	defer ph.Recover()

	// the console has already reported the failure
	if err := cli.New(cfg, opts...).Run(args); err != nil {
		return 1
	}
	return 0
}

// globalFlags strips the logging flags that apply to every command.
func globalFlags(argv []string) (args []string, verbose, debug bool) {
	args = make([]string, 0, len(argv))
	for i, a := range argv {
		if a == "--" {
			args = append(args, argv[i:]...)
			break
		}
		switch a {
		case "--verbose", "-v":
			verbose = true
		case "--debug":
			debug = true
		default:
			args = append(args, a)
		}
	}
	return args, verbose, debug
}

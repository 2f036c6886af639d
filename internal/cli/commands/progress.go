package commands

import (
	"fmt"
	"strconv"
	"time"

	"cmdkit/pkg/console"
	"cmdkit/pkg/terminal"
)

// Progress renders a progress bar counting to --total, pausing --usleep
// microseconds per step.
var Progress = console.Computed(progress,
	console.Optional("total", "100"),
	console.Optional("usleep", "10000"),
).WithDoc("Show a progress bar", "Options: --total=<steps> --usleep=<microseconds per step>")

// sleep is replaced in tests.
var sleep = time.Sleep

func progress(call *console.Call) (any, error) {
	total, err := positiveInt(call, "total")
	if err != nil {
		return nil, err
	}
	usleep, err := positiveInt(call, "usleep")
	if err != nil {
		return nil, err
	}

	bar := terminal.NewProgressBar(call.Console.Writer(), total)
	for i := 0; i < total; i++ {
		bar.Increment(1)
		sleep(time.Duration(usleep) * time.Microsecond)
	}
	bar.Finish()
	return bar.Value(), nil
}

func positiveInt(call *console.Call, name string) (int, error) {
	n, err := strconv.Atoi(call.String(name))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("--%s must be a non-negative number, got %q", name, call.String(name))
	}
	return n, nil
}

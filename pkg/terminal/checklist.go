package terminal

import (
	"fmt"
)

// Step is one checklist item; Check reports success.
type Step struct {
	Message string
	Check   func() bool
}

// Checklist prints each step followed by a colored status.
type Checklist struct {
	w                Writer
	styler           *Styler
	MaxMessageLength int
	SuccessText      string
	SuccessStyle     Style
	ErrorText        string
	ErrorStyle       Style
}

// NewChecklist creates a checklist writing to w.
func NewChecklist(w Writer, styler *Styler) *Checklist {
	return &Checklist{
		w:                w,
		styler:           styler,
		MaxMessageLength: 100,
		SuccessText:      "OK",
		SuccessStyle:     Style{Fg: "green"},
		ErrorText:        "FAIL",
		ErrorStyle:       Style{Fg: "red"},
	}
}

// Run executes steps in order and reports whether all of them succeeded.
// Messages are padded to the longest one, capped at MaxMessageLength.
func (c *Checklist) Run(steps []Step) bool {
	width := 0
	for _, s := range steps {
		width = max(width, len(s.Message))
	}
	width = min(width, c.MaxMessageLength)

	ok := true
	for _, s := range steps {
		if !c.Step(s.Message, s.Check, width) {
			ok = false
		}
	}
	return ok
}

// Step runs a single check. A width of zero uses MaxMessageLength.
func (c *Checklist) Step(message string, check func() bool, width int) bool {
	if width <= 0 {
		width = c.MaxMessageLength
	}
	c.w.Write(fmt.Sprintf("%-*s", width, message), Stdout)

	passed := check != nil && check()
	if passed {
		c.w.Write(c.styler.Format(c.SuccessText, c.SuccessStyle), Stdout)
	} else {
		c.w.Write(c.styler.Format(c.ErrorText, c.ErrorStyle), Stdout)
	}
	c.w.Write("\n", Stdout)
	return passed
}

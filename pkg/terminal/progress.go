package terminal

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ProgressBar represents a terminal progress bar
type ProgressBar struct {
	w             Writer
	total         int
	current       int
	size          int
	showRemaining bool
	start         time.Time
	now           func() time.Time
}

// NewProgressBar creates a new progress bar
func NewProgressBar(w Writer, total int) *ProgressBar {
	p := &ProgressBar{
		w:             w,
		size:          50,
		showRemaining: true,
		now:           time.Now,
	}
	p.Start(total)
	return p
}

// WithSize sets the bar width in characters.
func (p *ProgressBar) WithSize(size int) *ProgressBar {
	p.size = size
	return p
}

// ShowRemainingTime toggles the time estimate.
func (p *ProgressBar) ShowRemainingTime(show bool) *ProgressBar {
	p.showRemaining = show
	return p
}

// WithClock replaces the time source.
func (p *ProgressBar) WithClock(now func() time.Time) *ProgressBar {
	p.now = now
	p.start = now()
	return p
}

// Start resets the bar for a new run.
func (p *ProgressBar) Start(total int) {
	p.current = 0
	p.total = total
	p.start = p.now()
}

// Value returns the current progress.
func (p *ProgressBar) Value() int {
	return p.current
}

// Update updates the progress bar
func (p *ProgressBar) Update(current int) {
	p.current = current
	p.render()
}

// Increment increments the progress by n
func (p *ProgressBar) Increment(n int) {
	p.current += n
	p.render()
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.w.Writeln("", Stdout)
}

// Render returns the current bar, starting with a carriage return.
func (p *ProgressBar) Render() string {
	percent := 1.0
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total)
	}
	filled := int(math.Floor(percent * float64(p.size)))
	filled = max(0, min(filled, p.size))

	var sb strings.Builder
	sb.WriteString("\r[")
	sb.WriteString(strings.Repeat("=", filled))
	if filled < p.size {
		sb.WriteString(">")
		sb.WriteString(strings.Repeat(" ", p.size-filled))
	} else {
		sb.WriteString("=")
	}
	fmt.Fprintf(&sb, "] %d%% %d/%d", int(math.Round(percent*100)), p.current, p.total)

	if p.showRemaining && p.current > 0 {
		speed := p.now().Sub(p.start).Seconds() / float64(p.current)
		remaining := speed * float64(p.total-p.current)
		fmt.Fprintf(&sb, " - %.2f sec remaining", remaining)
	}
	return sb.String()
}

func (p *ProgressBar) render() {
	p.w.Write(p.Render(), Stdout)
}

package terminal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// IndentWidth is the number of spaces per indentation level.
const IndentWidth = 2

// Style describes how a piece of text is rendered.
type Style struct {
	Fg     string
	Bg     string
	Bold   bool
	Indent int
	Quote  string
}

// ParseStyle parses a compact style such as "red", "red+bold" or "bold".
// Colors are the names listed in colorNames; the first color
// is the foreground, a second one is the background.
func ParseStyle(spec string) (Style, error) {
	var st Style
	if strings.TrimSpace(spec) == "" {
		return st, nil
	}
	for _, part := range strings.Split(strings.ToLower(spec), "+") {
		part = strings.TrimSpace(part)
		switch {
		case part == "bold":
			st.Bold = true
		case colorNames[part] != 0:
			if st.Fg == "" {
				st.Fg = part
			} else {
				st.Bg = part
			}
		default:
			return Style{}, fmt.Errorf("color name '%s' does not exist", part)
		}
	}
	return st, nil
}

// Styler formats text. A disabled Styler only applies indentation and quoting.
type Styler struct {
	enabled bool
}

// NewStyler creates a Styler; pass ColorEnabled(os.Stdout) for auto-detection.
func NewStyler(enabled bool) *Styler {
	return &Styler{enabled: enabled}
}

// Enabled reports whether colors are emitted.
func (s *Styler) Enabled() bool {
	return s != nil && s.enabled
}

// Format renders text with st. Each line is indented, quoted and colored on
// its own so a multi-line block keeps its shape.
func (s *Styler) Format(text string, st Style) string {
	c := s.color(st)
	prefix := strings.Repeat(" ", st.Indent*IndentWidth)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" && i == len(lines)-1 && i > 0 {
			continue
		}
		line = st.Quote + line
		if c != nil && line != "" {
			line = c.Sprint(line)
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Colorize renders text with a compact style spec.
func (s *Styler) Colorize(text, spec string) (string, error) {
	st, err := ParseStyle(spec)
	if err != nil {
		return "", err
	}
	return s.Format(text, st), nil
}

func (s *Styler) color(st Style) *color.Color {
	if !s.Enabled() {
		return nil
	}
	var attrs []color.Attribute
	if fg, ok := colorNames[st.Fg]; ok {
		attrs = append(attrs, fg)
	}
	if bg, ok := colorNames[st.Bg]; ok {
		attrs = append(attrs, bg+bgOffset)
	}
	if st.Bold {
		attrs = append(attrs, color.Bold)
	}
	if len(attrs) == 0 {
		return nil
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

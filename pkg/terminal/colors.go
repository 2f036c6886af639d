// Package terminal provides terminal output utilities.
package terminal

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// colorNames maps style color names to foreground attributes.
var colorNames = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_grey":    color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// bgOffset converts a foreground attribute into its background counterpart.
const bgOffset = color.BgBlack - color.FgBlack

// IsTerminal checks if output is to a terminal
func IsTerminal() bool {
	return isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether styled output should be produced for f.
// NO_COLOR disables colors regardless of the terminal.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY(f)
}

// Success prints green text
func Success(text string) string {
	return color.GreenString("%s", text)
}

// Error prints red text
func Error(text string) string {
	return color.RedString("%s", text)
}

// Warning prints yellow text
func Warning(text string) string {
	return color.YellowString("%s", text)
}

// Info prints cyan text
func Info(text string) string {
	return color.CyanString("%s", text)
}

// BoldText returns bold text
func BoldText(text string) string {
	return color.New(color.Bold).Sprint(text)
}

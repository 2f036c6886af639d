package terminal

import (
	"bufio"
	"errors"
	"io"
	"slices"
	"strings"
)

// maxDefaultDisplay is how much of a default answer is shown in a prompt.
const maxDefaultDisplay = 30

// Dialog asks the user questions on a line-oriented input.
type Dialog struct {
	in *bufio.Reader
	w  Writer

	// InvalidChoice is printed when Confirm receives an unknown answer.
	InvalidChoice string
}

// NewDialog reads answers from r and writes prompts to w.
func NewDialog(r io.Reader, w Writer) *Dialog {
	return &Dialog{in: bufio.NewReader(r), w: w, InvalidChoice: "Invalid choice"}
}

// Ask prompts with text and returns the trimmed answer, or def when the
// answer is empty. A non-empty default is shown in brackets.
func (d *Dialog) Ask(text, def string) (string, error) {
	if def != "" {
		shown := def
		if r := []rune(shown); len(r) > maxDefaultDisplay {
			shown = string(r[:maxDefaultDisplay]) + "..."
		}
		text += " [" + shown + "]"
	}
	return d.prompt(text, def)
}

func (d *Dialog) prompt(text, def string) (string, error) {
	d.w.Write(text+" ", Stdout)

	line, err := d.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) && def != "" {
			return def, nil
		}
		return "", err
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return def, nil
}

// Confirm asks a yes/no question; an empty answer means yes.
func (d *Dialog) Confirm(text string) (bool, error) {
	return d.Choose(text, "y", []string{"Y", "n"}, "y")
}

// Choose asks until one of choices (case-insensitive) is given and reports
// whether it equals expected. An empty answer selects def when set.
func (d *Dialog) Choose(text, expected string, choices []string, def string) (bool, error) {
	text += " [" + strings.Join(choices, "/") + "]"

	lowered := make([]string, len(choices))
	for i, c := range choices {
		lowered[i] = strings.ToLower(c)
	}
	expected = strings.ToLower(expected)
	def = strings.ToLower(def)

	for {
		answer, err := d.prompt(text, "")
		if err != nil {
			if errors.Is(err, io.EOF) && def != "" {
				return def == expected, nil
			}
			return false, err
		}
		answer = strings.ToLower(answer)
		if slices.Contains(lowered, answer) {
			return answer == expected, nil
		}
		if answer == "" && def != "" {
			return def == expected, nil
		}
		d.w.Writeln(d.InvalidChoice, Stdout)
	}
}

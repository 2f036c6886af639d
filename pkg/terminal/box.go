package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

// Box frames text with a line character.
type Box struct {
	Text          string
	LineCharacter string
	Padding       int
}

// NewBox creates a box with the default '*' frame and a padding of 2.
func NewBox(text string) *Box {
	return &Box{Text: text, LineCharacter: "*", Padding: 2}
}

// Render returns the framed text. Every line is padded to the widest one.
func (b *Box) Render() string {
	c := b.LineCharacter
	if c == "" {
		c = "*"
	}
	border := lipgloss.Border{
		Top:         c,
		Bottom:      c,
		Left:        c,
		Right:       c,
		TopLeft:     c,
		TopRight:    c,
		BottomLeft:  c,
		BottomRight: c,
	}
	return lipgloss.NewStyle().
		Border(border).
		Padding(0, b.Padding).
		Render(b.Text)
}

func (b *Box) String() string {
	return b.Render()
}

// Write renders the box to w followed by a newline.
func (b *Box) Write(w Writer, stream Stream) {
	w.Writeln(b.Render(), stream)
}

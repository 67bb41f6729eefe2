package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders route descriptions (markdown)
// using glamour. Auto style detects light/dark terminal backgrounds.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		// fall back to raw text
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

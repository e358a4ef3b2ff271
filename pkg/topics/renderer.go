package topics

import (
	"github.com/charmbracelet/glamour"
)

// Render converts a topic's markdown to terminal output. Falls back to
// the raw markdown when the renderer cannot be built.
func Render(t *Topic) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return t.Content
	}

	rendered, err := renderer.Render(t.Content)
	if err != nil {
		return t.Content
	}
	return rendered
}

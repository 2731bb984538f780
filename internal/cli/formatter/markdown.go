package formatter

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders model-written prose for the terminal.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer wrapping at width. auto selects the style
// from the terminal background; otherwise the dark style is used, which
// keeps output deterministic when no terminal is attached.
func NewMarkdown(width int, auto bool) *Markdown {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width, 20))}
	if auto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("dark"))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return &Markdown{}
	}
	return &Markdown{renderer: r}
}

// Render returns the styled text, or the input unchanged if rendering fails.
func (m *Markdown) Render(text string) string {
	if m == nil || m.renderer == nil {
		return text + "\n"
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}
	return strings.TrimLeft(out, "\n")
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Field renders a "label value" line with a dimmed label.
func Field(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "--"
	}
	return Dim(label) + " " + value
}

// Bullets renders items as an indented bulleted list. Empty input yields "".
func Bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("•"), item))
	}
	return b.String()
}

// Numbered renders items as "1. item" lines.
func Numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), item))
	}
	return b.String()
}

// Score renders a numeric score without a trailing ".0".
func Score(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

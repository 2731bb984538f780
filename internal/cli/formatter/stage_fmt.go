package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/domain"
)

// Stage progress markers.
const (
	MarkCompleted = "✔"
	MarkCurrent   = "●"
	MarkUnlocked  = "○"
	MarkLocked    = "⊘"
)

// StageMarker returns the marker for s given the displayed stage and the
// furthest stage reached.
func StageMarker(s, current, maxReached domain.Stage) string {
	switch {
	case s < current:
		return MarkCompleted
	case s == current:
		return MarkCurrent
	case s > maxReached:
		return MarkLocked
	default:
		return MarkUnlocked
	}
}

// FormatStageProgress renders the eight-stage progress strip. Each entry is
// prefixed with its number key.
func FormatStageProgress(current, maxReached domain.Stage) string {
	stages := domain.ProgressStages()
	parts := make([]string, 0, len(stages))
	for i, s := range stages {
		mark := StageMarker(s, current, maxReached)
		label := fmt.Sprintf("%d %s %s", i+1, mark, s.Label())
		switch mark {
		case MarkCompleted:
			label = StyleGreen.Render(label)
		case MarkCurrent:
			label = StyleBlue.Bold(true).Render(label)
		case MarkLocked:
			label = StyleDim.Faint(true).Render(label)
		default:
			label = StyleFg.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, Dim(" ─ "))
}

// StageCounter renders the footer counter, e.g. "阶段 3 / 8".
func StageCounter(current domain.Stage) string {
	return fmt.Sprintf("阶段 %d / %d", int(current), len(domain.ProgressStages()))
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// ScoreMax is the top of the review score scale.
const ScoreMax = 100.0

// RenderScoreBar renders a review score like [████░░░░] 82/100. The fill is
// clamped to the scale but the printed number is not, so an out-of-range
// model score stays visible. Green from 80, yellow from 60, red below.
func RenderScoreBar(score float64, width int) string {
	width = max(width, 2)
	frac := min(max(score/ScoreMax, 0), 1)
	filled := min(int(frac*float64(width)), width)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %s%s", scoreStyle(score).Render(bar), Bold(Score(score)), Dim("/100"))
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return StyleGreen
	case score >= 60:
		return StyleYellow
	default:
		return StyleRed
	}
}

package app

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/domain"
)

// ContextSummary condenses an analysis into the style brief a review is graded
// against. The output depends only on the analysis, so it is stable across calls.
func ContextSummary(a *domain.Analysis) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("Style: %s. Key Rules: %s. Structure: %s. Pacing: %s. Avg Shot Length: %s.",
		a.CaseCard.Name,
		strings.Join(a.RuleNames(), "; "),
		strings.Join(a.StructurePurposes(), " -> "),
		a.DNA.Pacing,
		a.DNA.AvgShotLength,
	)
}

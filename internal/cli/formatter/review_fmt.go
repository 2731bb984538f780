package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/domain"
)

// FormatReview renders a homework review. md renders the free-text
// feedback; nil prints it as a quoted line.
func FormatReview(r *domain.Review, md *Markdown) string {
	var b strings.Builder

	b.WriteString(Header("模仿评分 (Score)"))
	b.WriteString("\n")
	b.WriteString(RenderScoreBar(r.Score, 30) + "\n\n")
	if md != nil {
		b.WriteString(md.Render(r.Feedback))
	} else {
		b.WriteString(StyleFg.Italic(true).Render(fmt.Sprintf("“%s”", r.Feedback)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("优先级修改计划 (Revision Plan)"))
	b.WriteString("\n")
	if len(r.RevisionPlan) == 0 {
		b.WriteString(Dim("  无") + "\n")
	}
	for i, item := range r.RevisionPlan {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			PriorityColor(item.Priority).Bold(true).Render(fmt.Sprintf("%d.", i+1)),
			Bold(item.Problem),
			PriorityBadge(item.Priority)))
		b.WriteString("   " + StyleGreen.Render("修改建议: ") + item.Solution + "\n")
		if item.Example != "" {
			b.WriteString("   " + Dim("示例: "+item.Example) + "\n")
		}
	}

	if shots, ok := r.SuggestedShotList.Get(); ok {
		b.WriteString("\n")
		b.WriteString(Header("建议分镜 (Suggested Shots)"))
		b.WriteString("\n")
		rows := make([][]string, len(shots))
		for i, s := range shots {
			rows[i] = []string{s.ScriptSegment, s.VisualSuggestion, StylePurple.Render(s.ShotType), s.Reasoning}
		}
		b.WriteString(RenderTable([]string{"脚本片段", "画面建议", "景别", "理由"}, rows, tableCellMax))
	}
	return b.String()
}

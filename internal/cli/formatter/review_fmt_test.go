package formatter

import (
	"testing"

	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func fmtReview() *domain.Review {
	return &domain.Review{
		Score:    82,
		Feedback: "整体节奏不错",
		RevisionPlan: []domain.RevisionItem{
			{Problem: "开头太慢", Solution: "剪掉前两秒", Example: "0:00-0:02", Priority: domain.PriorityHigh},
			{Problem: "字幕太小", Solution: "放大", Priority: domain.PriorityLow},
		},
	}
}

func TestFormatReview_Video(t *testing.T) {
	out := stripANSI(FormatReview(fmtReview(), nil))
	assert.Contains(t, out, "82/100")
	assert.Contains(t, out, "“整体节奏不错”")
	assert.Contains(t, out, "1. 开头太慢  ● High")
	assert.Contains(t, out, "修改建议: 剪掉前两秒")
	assert.Contains(t, out, "2. 字幕太小  ● Low")
	assert.NotContains(t, out, "建议分镜")
}

func TestFormatReview_ScriptShots(t *testing.T) {
	r := fmtReview()
	r.SuggestedShotList = domain.Some([]domain.SuggestedShot{{ScriptSegment: "第一句", VisualSuggestion: "推镜", ShotType: "特写", Reasoning: "抓眼球"}})
	out := stripANSI(FormatReview(r, nil))
	assert.Contains(t, out, "建议分镜")
	assert.Contains(t, out, "推镜")
}

func TestFormatReview_Markdown(t *testing.T) {
	r := fmtReview()
	r.Feedback = "**节奏** 很好"
	out := stripANSI(FormatReview(r, NewMarkdown(60, false)))
	assert.Contains(t, out, "节奏")
	assert.NotContains(t, out, "**")
}

func TestRenderScoreBar(t *testing.T) {
	assert.Contains(t, stripANSI(RenderScoreBar(50, 10)), "[█████░░░░░] 50/100")
	assert.Contains(t, stripANSI(RenderScoreBar(140, 4)), "[████] 140/100")
	assert.Contains(t, stripANSI(RenderScoreBar(-5, 4)), "[░░░░] -5/100")
	assert.Contains(t, stripANSI(RenderScoreBar(72.5, 2)), "72.5/100")
}

func TestScore(t *testing.T) {
	assert.Equal(t, "82", Score(82))
	assert.Equal(t, "64.5", Score(64.5))
}

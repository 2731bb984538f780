package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func fmtAnalysis() *domain.Analysis {
	return &domain.Analysis{
		CaseCard: domain.CaseCard{Name: "快切教程", Platform: "抖音", Duration: "45s", TargetAudience: "新手", LearningPoints: []string{"卡点"}},
		Verdict:  domain.Verdict{WorthLearning: true, Reasons: []string{"节奏紧凑"}},
		Structure: []domain.StructureBeat{
			{Segment: "开场", Timestamp: "0:00-0:03", Purpose: "引入", Psychology: "好奇", VisualStrategy: "特写"},
		},
		DNA:      domain.EditingDNA{AvgShotLength: "1.2s", Pacing: "快", SoundStrategy: "鼓点"},
		ShotList: []domain.Shot{{ID: 3, TimeRange: "0:01-0:02", Duration: "1s", Visual: "手部特写", Audio: "咔嚓", Action: "切"}},
		SOP:      []domain.EditingRule{{Rule: "三秒钩子", HowTo: "前三秒给结果", Example: "先展示成品"}},
		ScriptTemplate: domain.ScriptTemplate{
			Hook: "H", Setup: "S", Core1: "C1", Core2: "C2", Twist: "T", CTA: "CTA值",
		},
		Homework: domain.HomeworkBrief{Goal: "复刻开场", Constraints: "30秒内", Rubric: []domain.RubricCriterion{
			{Criteria: "节奏", MaxScore: 40}, {Criteria: "钩子", MaxScore: 60},
		}},
	}
}

func TestFormatVerdict(t *testing.T) {
	a := fmtAnalysis()
	out := stripANSI(FormatVerdict(a))
	assert.Contains(t, out, "名称： 快切教程")
	assert.Contains(t, out, "值得学习")
	assert.Contains(t, out, "节奏紧凑")
	assert.NotContains(t, out, "替代建议")

	a.Verdict.WorthLearning = false
	a.Verdict.Alternative = domain.Some("换个参考")
	out = stripANSI(FormatVerdict(a))
	assert.Contains(t, out, "跳过")
	assert.Contains(t, out, "替代建议： 换个参考")
}

func TestFormatPlaybook_SlotOrder(t *testing.T) {
	a := fmtAnalysis()
	out := stripANSI(FormatPlaybook(a.ScriptTemplate, a.SOP))

	last := -1
	for _, key := range []string{"HOOK\n", "SETUP\n", "CORE1\n", "CORE2\n", "TWIST\n", "CTA\n"} {
		idx := strings.Index(out, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
	assert.Contains(t, out, "1. 三秒钩子")
	assert.Contains(t, out, "示例: 先展示成品")
}

func TestFormatShotList_Table(t *testing.T) {
	out := stripANSI(FormatShotList(fmtAnalysis().ShotList))
	assert.Contains(t, out, "编号")
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "手部特写")
}

func TestFormatHomework_RubricTotal(t *testing.T) {
	out := stripANSI(FormatHomework(fmtAnalysis().Homework))
	assert.Contains(t, out, "节奏")
	assert.Contains(t, out, "40 分")
	assert.Contains(t, out, "合计 100 分")
}

func TestFormatAnalysis_AllSections(t *testing.T) {
	out := stripANSI(FormatAnalysis(fmtAnalysis()))
	for _, h := range []string{"案例卡片", "结构时间轴", "剪辑DNA", "分镜表", "填空脚本", "任务简报"} {
		assert.Contains(t, out, h)
	}
}

func TestRenderTable_AlignsAndTruncates(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"宽字", "x"}, {strings.Repeat("z", 20), "y"}}, 8))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[3], "zzzzzzz…")
	col := func(line, s string) int { return lipgloss.Width(line[:strings.Index(line, s)]) }
	assert.Equal(t, col(lines[2], "x"), col(lines[3], "y"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil, 0))
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/domain"
)

// Widest a table cell may grow before truncation.
const tableCellMax = 40

// FormatVerdict renders the case card and the coach's verdict.
func FormatVerdict(a *domain.Analysis) string {
	var b strings.Builder
	cc := a.CaseCard

	b.WriteString(Header("案例卡片 (Case Card)"))
	b.WriteString("\n")
	b.WriteString(Field("名称：", cc.Name) + "\n")
	b.WriteString(Field("平台：", cc.Platform) + "\n")
	b.WriteString(Field("时长：", cc.Duration) + "\n")
	b.WriteString(Field("目标受众：", cc.TargetAudience) + "\n")
	if len(cc.LearningPoints) > 0 {
		b.WriteString("\n" + Dim("学习要点") + "\n")
		b.WriteString(Bullets(cc.LearningPoints))
	}
	if len(cc.Risks) > 0 {
		b.WriteString("\n" + Dim("风险") + "\n")
		b.WriteString(Bullets(cc.Risks))
	}

	b.WriteString("\n")
	b.WriteString(Header("教练判定"))
	b.WriteString("\n")
	b.WriteString(VerdictBadge(a.Verdict.WorthLearning) + "\n")
	b.WriteString(Bullets(a.Verdict.Reasons))
	if alt, ok := a.Verdict.Alternative.Get(); ok {
		b.WriteString("\n" + Field("替代建议：", alt) + "\n")
	}
	return b.String()
}

// FormatStructure renders the structure timeline as a table.
func FormatStructure(beats []domain.StructureBeat) string {
	rows := make([][]string, len(beats))
	for i, s := range beats {
		rows[i] = []string{StyleBlue.Render(s.Timestamp), s.Segment, s.Purpose, s.Psychology, s.VisualStrategy}
	}
	return Header("结构时间轴") + "\n" +
		RenderTable([]string{"时间戳", "段落", "目的", "观众心理", "画面策略"}, rows, tableCellMax)
}

// FormatDNA renders the three descriptive editing DNA fields.
func FormatDNA(dna domain.EditingDNA) string {
	var b strings.Builder
	b.WriteString(Header("剪辑DNA"))
	b.WriteString("\n")
	b.WriteString(Dim("平均镜头时长") + "\n  " + StyleYellow.Bold(true).Render(dna.AvgShotLength) + "\n\n")
	b.WriteString(Dim("剪辑密度/节奏") + "\n  " + dna.Pacing + "\n\n")
	b.WriteString(Dim("声音策略") + "\n  " + dna.SoundStrategy + "\n")
	return b.String()
}

// FormatShotList renders the shot list as a table.
func FormatShotList(shots []domain.Shot) string {
	rows := make([][]string, len(shots))
	for i, s := range shots {
		rows[i] = []string{
			Dim(fmt.Sprintf("#%d", s.ID)),
			StyleBlue.Render(s.TimeRange),
			s.Duration,
			s.Visual,
			StylePurple.Render(s.Action) + " " + s.Audio,
		}
	}
	return Header("分镜表 (Shot List)") + "\n" +
		RenderTable([]string{"编号", "时间", "时长", "画面内容", "动作/音频"}, rows, tableCellMax)
}

// FormatPlaybook renders the script template slots in narrative order
// followed by the numbered SOP rules.
func FormatPlaybook(tmpl domain.ScriptTemplate, sop []domain.EditingRule) string {
	var b strings.Builder
	b.WriteString(Header("填空脚本 (Script Template)"))
	b.WriteString("\n")
	for _, slot := range tmpl.Slots() {
		b.WriteString(StylePurple.Bold(true).Render(strings.ToUpper(slot.Key)) + "\n")
		b.WriteString("  " + slot.Value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("剪辑 SOP (操作规范)"))
	b.WriteString("\n")
	for i, r := range sop {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), Bold(r.Rule)))
		if r.HowTo != "" {
			b.WriteString("   " + r.HowTo + "\n")
		}
		if r.Example != "" {
			b.WriteString("   " + Dim("示例: "+r.Example) + "\n")
		}
	}
	return b.String()
}

// FormatHomework renders the mission brief and its grading rubric.
func FormatHomework(h domain.HomeworkBrief) string {
	var b strings.Builder
	b.WriteString(Header("任务简报 (Mission Brief)"))
	b.WriteString("\n")
	b.WriteString(Dim("目标 (Goal)") + "\n  " + h.Goal + "\n\n")
	b.WriteString(Dim("限制条件 (Constraints)") + "\n  " + h.Constraints + "\n\n")
	b.WriteString(Dim("评分标准 (Grading Rubric)") + "\n")
	for _, r := range h.Rubric {
		line := fmt.Sprintf("  %s %s", StyleYellow.Render("•"), r.Criteria)
		if r.Description != "" {
			line += Dim(" · " + r.Description)
		}
		b.WriteString(line + "  " + StyleBlue.Render(Score(r.MaxScore)+" 分") + "\n")
	}
	if total := h.MaxRubricScore(); total > 0 {
		b.WriteString(Dim(fmt.Sprintf("  合计 %s 分", Score(total))) + "\n")
	}
	return b.String()
}

// FormatAnalysis renders every section of an analysis, for one-shot output.
func FormatAnalysis(a *domain.Analysis) string {
	return strings.Join([]string{
		FormatVerdict(a),
		FormatStructure(a.Structure),
		FormatDNA(a.DNA),
		FormatShotList(a.ShotList),
		FormatPlaybook(a.ScriptTemplate, a.SOP),
		FormatHomework(a.Homework),
	}, "\n")
}

package cli

import (
	"strings"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/cli/formatter"
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/dustin/go-humanize"
)

const (
	loadingAnalysis = "正在分析视频 DNA..."
	loadingReview   = "正在批改作业..."
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	body := m.content.View()
	if m.height == 0 {
		body = m.renderSection(m.session.Section())
	}
	result := strings.Join([]string{m.renderHeader(), body, m.renderFooter()}, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m *appModel) separator() string {
	return formatter.Dim(strings.Repeat("─", max(m.width, 20)))
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Bold(true).Render("cutcoach") + " " + formatter.Dim("视频剪辑学习教练")
	progress := formatter.FormatStageProgress(m.session.Stage(), m.session.Nav.Max())
	return title + "\n" + progress + "\n" + m.separator()
}

func (m *appModel) renderFooter() string {
	hints := []string{formatter.StageCounter(m.session.Stage())}
	for _, b := range m.shortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+" "+b.Help().Desc))
	}

	var errLine string
	if m.session.Err != nil {
		errLine = formatter.StyleRed.Render("✖ " + app.UserMessage(m.session.Err, m.coach.MaxMediaBytes()))
	}
	return m.separator() + "\n" + strings.Join(hints, "  ") + "\n" + errLine
}

// shortHelp returns the key hints relevant to the current focus and stage.
func (m *appModel) shortHelp() []key.Binding {
	k := m.keys
	switch m.focus {
	case focusContext, focusPath:
		return []key.Binding{k.Submit, k.Cycle, k.Blur}
	case focusHomework:
		return []key.Binding{k.Submit, k.ToggleMode, k.Blur}
	case focusScript:
		return []key.Binding{k.SubmitScript, k.ToggleMode, k.Blur}
	}

	bindings := []key.Binding{k.Left, k.Right, k.Jump}
	if len(m.inputs()) > 0 {
		bindings = append(bindings, k.Focus)
	}
	if m.session.Stage() == domain.StageReview && m.session.Review != nil {
		bindings = append(bindings, k.Resubmit)
	}
	if m.session.Err != nil {
		bindings = append(bindings, k.Dismiss)
	}
	return append(bindings, k.Quit)
}

// ── sections ─────────────────────────────────────────────────────────────────

func (m *appModel) renderSection(sec app.Section) string {
	a := m.session.Analysis
	switch sec {
	case app.SectionIntake:
		return m.renderIntake()
	case app.SectionVerdict:
		return formatter.FormatVerdict(a)
	case app.SectionStructure:
		return formatter.FormatStructure(a.Structure)
	case app.SectionDNA:
		return formatter.FormatDNA(a.DNA)
	case app.SectionShotList:
		return formatter.FormatShotList(a.ShotList)
	case app.SectionPlaybook:
		return formatter.FormatPlaybook(a.ScriptTemplate, a.SOP)
	case app.SectionAssignment:
		return m.renderAssignment()
	case app.SectionReview:
		return m.renderReview()
	default:
		return m.renderEmpty()
	}
}

func (m *appModel) renderIntake() string {
	var b strings.Builder
	b.WriteString(formatter.Header("上传参考视频"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("选择一个想要学习的短视频，教练会拆解它的结构、节奏和剪辑 DNA。") + "\n\n")
	b.WriteString(m.contextInput.View() + "\n")
	b.WriteString(m.pathInput.View() + "\n\n")
	b.WriteString(formatter.Dim("支持 mp4 / mov / webm，最大 "+m.limitText()) + "\n")
	if m.session.Busy == app.OpAnalyze {
		b.WriteString("\n" + m.spinner.View() + " " + loadingAnalysis + "\n")
	}
	return b.String()
}

func (m *appModel) renderAssignment() string {
	var b strings.Builder
	b.WriteString(formatter.FormatHomework(m.session.Analysis.Homework))
	b.WriteString("\n")
	b.WriteString(formatter.Header("提交作业"))
	b.WriteString("\n")

	var modes []string
	for _, mode := range []domain.SubmissionMode{domain.ModeVideo, domain.ModeScript} {
		if mode == m.session.Mode {
			modes = append(modes, formatter.StyleGreen.Bold(true).Render("["+mode.Label()+"]"))
		} else {
			modes = append(modes, formatter.Dim(" "+mode.Label()+" "))
		}
	}
	b.WriteString(formatter.Dim("提交方式：") + " " + strings.Join(modes, " ") + "\n\n")

	if m.session.Mode == domain.ModeScript {
		b.WriteString(m.scriptInput.View() + "\n")
	} else {
		b.WriteString(m.homeworkInput.View() + "\n")
		b.WriteString(formatter.Dim("最大 "+m.limitText()) + "\n")
	}
	if m.session.Busy == app.OpReview {
		b.WriteString("\n" + m.spinner.View() + " " + loadingReview + "\n")
	}
	return b.String()
}

// renderReview formats the review once per review and terminal width.
func (m *appModel) renderReview() string {
	if m.reviewFor != m.session.Review {
		m.reviewFor = m.session.Review
		m.reviewOut = formatter.FormatReview(m.session.Review, m.md)
	}
	return m.reviewOut
}

func (m *appModel) renderEmpty() string {
	switch {
	case m.session.Stage() == domain.StageLibrary:
		return formatter.Dim("案例库暂未开放。")
	case m.session.Stage() == domain.StageReview:
		return formatter.Dim("提交作业后在这里查看批改结果。")
	default:
		return formatter.Dim("暂无内容。请先在「案例建档」上传参考视频。")
	}
}

func (m *appModel) limitText() string {
	return humanize.IBytes(uint64(m.coach.MaxMediaBytes()))
}

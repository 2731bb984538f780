package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/cli/formatter"
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// coachHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func coachHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// submission is a homework attempt collected from flags or prompts.
// Exactly one of video, scriptPath or scriptText is set once complete.
type submission struct {
	video      string
	scriptPath string
	scriptText string
}

func (s submission) empty() bool {
	return s.video == "" && s.scriptPath == "" && s.scriptText == ""
}

func (s submission) mode() domain.SubmissionMode {
	if s.video != "" {
		return domain.ModeVideo
	}
	return domain.ModeScript
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + "不能为空")
		}
		return nil
	}
}

// wizardContext creates a huh form for the optional learning context.
func wizardContext(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("学习背景 (可选)").
				Description("你想从这个视频里学到什么？").
				Placeholder("例如：快节奏转场").
				Value(result),
		),
	).WithTheme(coachHuhTheme()).WithShowHelp(false)
}

// wizardSubmission creates a huh form that picks the submission mode and
// then asks for a video path or the script text.
func wizardSubmission(sub *submission) *huh.Form {
	mode := string(domain.DefaultSubmissionMode)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("提交方式").
				Options(
					huh.NewOption(domain.ModeVideo.Label(), string(domain.ModeVideo)),
					huh.NewOption(domain.ModeScript.Label(), string(domain.ModeScript)),
				).
				Value(&mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("作业视频路径").
				Value(&sub.video).
				Validate(validateRequired("视频路径")),
		).WithHideFunc(func() bool { return mode != string(domain.ModeVideo) }),
		huh.NewGroup(
			huh.NewText().
				Title("分镜脚本").
				Placeholder("在此粘贴或输入你的分镜脚本...").
				Value(&sub.scriptText).
				Validate(validateRequired("脚本")),
		).WithHideFunc(func() bool { return mode != string(domain.ModeScript) }),
	).WithTheme(coachHuhTheme()).WithShowHelp(false)
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/cli/formatter"
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/media"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// focusField names the input that currently receives keystrokes.
type focusField int

const (
	focusNone focusField = iota
	focusContext
	focusPath
	focusHomework
	focusScript
)

const (
	headerLines    = 3 // title, stage strip, separator
	footerLines    = 3 // separator, status line, error line
	maxReadable    = 100
	defaultMDWidth = 80
)

// analysisDoneMsg carries the outcome of the analysis boundary call.
type analysisDoneMsg struct {
	analysis *domain.Analysis
	err      error
	start    time.Time
}

// reviewDoneMsg carries the outcome of either review boundary call.
type reviewDoneMsg struct {
	op     string
	review *domain.Review
	err    error
	start  time.Time
}

// appModel is the root bubbletea Model for the TUI. It owns the session;
// boundary calls run as Cmds and report back through done messages, so the
// session is only ever mutated inside Update.
type appModel struct {
	ctx     context.Context
	coach   *app.Coach
	logger  *zap.Logger
	session app.Session
	keys    keyMap

	width, height int

	contextInput  textinput.Model
	pathInput     textinput.Model
	homeworkInput textinput.Model
	scriptInput   textarea.Model
	focus         focusField

	spinner spinner.Model
	content viewport.Model
	md      *formatter.Markdown

	shown      app.Section
	shownStage domain.Stage

	reviewFor *domain.Review
	reviewOut string

	quitting bool
}

func newAppModel(ctx context.Context, a *App) appModel {
	if ctx == nil {
		ctx = context.Background()
	}

	ci := textinput.New()
	ci.Prompt = "学习背景 › "
	ci.Placeholder = "可选，例如：想学习这个视频的快节奏转场"
	ci.CharLimit = 500

	pi := textinput.New()
	pi.Prompt = "参考视频 › "
	pi.Placeholder = "视频文件路径"
	pi.CharLimit = 1024

	hi := textinput.New()
	hi.Prompt = "作业视频 › "
	hi.Placeholder = "视频文件路径"
	hi.CharLimit = 1024

	ta := textarea.New()
	ta.Placeholder = "在此粘贴或输入你的分镜脚本..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(formatter.ColorHeader)),
	)

	vp := viewport.New(0, 0)
	vp.KeyMap = contentKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := appModel{
		ctx:           ctx,
		coach:         a.Coach,
		logger:        a.logger(),
		session:       app.NewSession(),
		keys:          defaultKeyMap(),
		contextInput:  ci,
		pathInput:     pi,
		homeworkInput: hi,
		scriptInput:   ta,
		spinner:       sp,
		content:       vp,
		md:            formatter.NewMarkdown(defaultMDWidth, false),
		shown:         app.SectionIntake,
	}
	m.focusInput(focusPath)
	m.syncContent()
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncContent()
	return m, cmd
}

func (m appModel) update(msg tea.Msg) (appModel, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.session.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		m.session = m.session.FinishIntake(msg.analysis, msg.err)
		app.LogOutcome(m.logger, m.session, "intake", msg.start)
		if m.session.Err != nil {
			return m, m.focusInput(focusPath)
		}
		m.blurAll()
		return m, nil

	case reviewDoneMsg:
		m.session = m.session.FinishReview(msg.review, msg.err)
		app.LogOutcome(m.logger, m.session, msg.op, msg.start)
		if m.session.Err != nil {
			return m, m.focusInput(m.defaultFocus())
		}
		m.blurAll()
		m.scriptInput.Reset()
		m.homeworkInput.Reset()
		return m, nil
	}

	// Cursor blink and other ticks go to the focused input.
	return m.updateFocused(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	// Global keys, regardless of focus.
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.navigate(m.session.Advance())
	case key.Matches(msg, m.keys.Back):
		return m.navigate(m.session.Retreat())
	case key.Matches(msg, m.keys.ToggleMode):
		return m.toggleMode()
	}

	if m.focus != focusNone {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		return m.navigate(m.session.Retreat())
	case key.Matches(msg, m.keys.Right):
		return m.navigate(m.session.Advance())
	case key.Matches(msg, m.keys.Jump):
		stage := domain.Stage(msg.String()[0] - '1')
		if s, ok := m.session.JumpTo(stage); ok {
			return m.navigate(s)
		}
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		return m, m.focusInput(m.defaultFocus())
	case key.Matches(msg, m.keys.Resubmit):
		if m.session.Stage() == domain.StageReview {
			m.session = m.session.Resubmit()
		}
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.session = m.session.ClearError()
		return m, nil
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m appModel) handleInputKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Blur):
		m.blurAll()
		return m, nil
	case key.Matches(msg, m.keys.Cycle):
		return m, m.focusInput(m.nextFocus())
	case key.Matches(msg, m.keys.Submit) && m.focus == focusContext:
		return m, m.focusInput(focusPath)
	case key.Matches(msg, m.keys.Submit) && m.focus == focusPath:
		return m.startIntake()
	case key.Matches(msg, m.keys.Submit) && m.focus == focusHomework:
		return m.startVideoReview()
	case key.Matches(msg, m.keys.SubmitScript) && m.focus == focusScript:
		return m.startScriptReview()
	}
	return m.updateFocused(msg)
}

// ── actions ──────────────────────────────────────────────────────────────────

// navigate commits a navigation result. Inputs belong to their stage, so a
// stage change drops focus.
func (m appModel) navigate(s app.Session) (appModel, tea.Cmd) {
	if s.Stage() != m.session.Stage() {
		m.blurAll()
	}
	m.session = s
	return m, nil
}

func (m appModel) toggleMode() (appModel, tea.Cmd) {
	s, err := m.session.SelectMode(m.session.Mode.Toggle())
	m.session = s
	if err != nil {
		app.LogRejected(m.logger, s, "select_mode", err)
		return m, nil
	}
	if m.focus != focusNone {
		return m, m.focusInput(m.defaultFocus())
	}
	return m, nil
}

func (m appModel) startIntake() (appModel, tea.Cmd) {
	ref, ok := m.stat(m.pathInput.Value())
	if !ok {
		return m, nil
	}
	s, err := m.session.SetContext(strings.TrimSpace(m.contextInput.Value())).BeginIntake(ref, m.coach.MaxMediaBytes())
	m.session = s
	if err != nil {
		app.LogRejected(m.logger, s, "intake", err)
		return m, nil
	}
	m.blurAll()

	ctx, c, contextText, start := m.ctx, m.coach, s.ContextText, time.Now()
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		analysis, err := c.AnalyzeFile(ctx, ref, contextText)
		return analysisDoneMsg{analysis: analysis, err: err, start: start}
	})
}

func (m appModel) startVideoReview() (appModel, tea.Cmd) {
	ref, ok := m.stat(m.homeworkInput.Value())
	if !ok {
		return m, nil
	}
	s, err := m.session.BeginVideoReview(ref, m.coach.MaxMediaBytes())
	m.session = s
	if err != nil {
		app.LogRejected(m.logger, s, "review_video", err)
		return m, nil
	}
	m.blurAll()

	ctx, c, summary, start := m.ctx, m.coach, s.Summary(), time.Now()
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		review, err := c.ReviewFile(ctx, summary, ref)
		return reviewDoneMsg{op: "review_video", review: review, err: err, start: start}
	})
}

func (m appModel) startScriptReview() (appModel, tea.Cmd) {
	text := m.scriptInput.Value()
	s, err := m.session.BeginScriptReview(text)
	m.session = s
	if err != nil {
		app.LogRejected(m.logger, s, "review_script", err)
		return m, nil
	}
	m.blurAll()

	ctx, c, summary, start := m.ctx, m.coach, s.Summary(), time.Now()
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		review, err := c.ReviewText(ctx, summary, text)
		return reviewDoneMsg{op: "review_script", review: review, err: err, start: start}
	})
}

// stat resolves a typed path. A blank path is ignored; an unreadable one is
// recorded as the inline error.
func (m *appModel) stat(path string) (domain.FileRef, bool) {
	if strings.TrimSpace(path) == "" {
		return domain.FileRef{}, false
	}
	ref, err := media.Stat(path)
	if err != nil {
		m.session = m.session.Reject(fmt.Errorf("%w: %v", app.ErrUnreadable, err))
		app.LogRejected(m.logger, m.session, "stat", err)
		return domain.FileRef{}, false
	}
	return ref, true
}

// ── focus ────────────────────────────────────────────────────────────────────

// inputs returns the focusable inputs of the displayed stage, in tab order.
func (m *appModel) inputs() []focusField {
	switch m.session.Stage() {
	case domain.StageIntake:
		return []focusField{focusContext, focusPath}
	case domain.StageAssignment:
		if m.session.Analysis == nil {
			return nil
		}
		if m.session.Mode == domain.ModeScript {
			return []focusField{focusScript}
		}
		return []focusField{focusHomework}
	}
	return nil
}

func (m *appModel) defaultFocus() focusField {
	in := m.inputs()
	if len(in) == 0 {
		return focusNone
	}
	return in[len(in)-1]
}

func (m *appModel) nextFocus() focusField {
	in := m.inputs()
	for i, f := range in {
		if f == m.focus {
			return in[(i+1)%len(in)]
		}
	}
	return m.defaultFocus()
}

func (m *appModel) focusInput(f focusField) tea.Cmd {
	m.blurAll()
	m.focus = f
	switch f {
	case focusContext:
		return m.contextInput.Focus()
	case focusPath:
		return m.pathInput.Focus()
	case focusHomework:
		return m.homeworkInput.Focus()
	case focusScript:
		return m.scriptInput.Focus()
	}
	return nil
}

func (m *appModel) blurAll() {
	m.focus = focusNone
	m.contextInput.Blur()
	m.pathInput.Blur()
	m.homeworkInput.Blur()
	m.scriptInput.Blur()
}

func (m appModel) updateFocused(msg tea.Msg) (appModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusContext:
		m.contextInput, cmd = m.contextInput.Update(msg)
	case focusPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case focusHomework:
		m.homeworkInput, cmd = m.homeworkInput.Update(msg)
	case focusScript:
		m.scriptInput, cmd = m.scriptInput.Update(msg)
	}
	return m, cmd
}

// ── layout ───────────────────────────────────────────────────────────────────

func (m *appModel) resize(w, h int) {
	m.width, m.height = w, h
	m.content.Width = w
	m.content.Height = m.contentHeight()

	readable := min(max(w-4, 20), maxReadable)
	for _, in := range []*textinput.Model{&m.contextInput, &m.pathInput, &m.homeworkInput} {
		in.Width = max(readable-lipgloss.Width(in.Prompt)-1, 10)
	}
	m.scriptInput.SetWidth(readable)
	m.md = formatter.NewMarkdown(readable, false)
	m.reviewFor = nil
}

func (m *appModel) contentHeight() int {
	return max(m.height-headerLines-footerLines, 1)
}

// syncContent refreshes the viewport for the current section, scrolling
// back to the top whenever the displayed stage changes.
func (m *appModel) syncContent() {
	sec, stage := m.session.Section(), m.session.Stage()
	m.content.SetContent(m.renderSection(sec))
	if sec != m.shown || stage != m.shownStage {
		m.content.GotoTop()
		m.shown, m.shownStage = sec, stage
	}
}

// contentKeyMap keeps letter keys free for navigation.
func contentKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

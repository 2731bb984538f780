package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if stdin != nil {
		root.SetIn(stdin)
	}
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- Root command ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	an, rv := newStubs()
	out, err := executeCmd(t, testApp(an, rv), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "analyze")
	assert.Contains(t, out, "review")
}

func TestRootCmd_HelpSkipsSetup(t *testing.T) {
	called := false
	a := &App{Setup: func(string, bool) error {
		called = true
		return errors.New("missing api key")
	}}

	out, err := executeCmd(t, a, nil)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Contains(t, out, "analyze")

	_, err = executeCmd(t, a, nil, "analyze", "x.mp4")
	assert.EqualError(t, err, "missing api key")
	assert.True(t, called)
}

func TestRootCmd_SetupReceivesFlags(t *testing.T) {
	an, rv := newStubs()
	a := &App{}
	var gotPath string
	var gotVerbose bool
	a.Setup = func(configPath string, verbose bool) error {
		gotPath, gotVerbose = configPath, verbose
		a.Coach = app.NewCoach(an, rv, nil)
		return nil
	}

	_, err := executeCmd(t, a, nil, "--config", "/tmp/c.yaml", "-v", "analyze", "/does/not/exist.mp4")
	require.Error(t, err)
	assert.Equal(t, "/tmp/c.yaml", gotPath)
	assert.True(t, gotVerbose)
	assert.ErrorIs(t, err, app.ErrUnreadable)
}

func TestRootCmd_WithoutCoach(t *testing.T) {
	_, err := executeCmd(t, &App{}, nil, "analyze", "x.mp4")
	assert.ErrorIs(t, err, errNotConfigured)
}

// --- analyze ---

func TestAnalyzeCmd_PrintsAnalysis(t *testing.T) {
	an, rv := newStubs()
	out, err := executeCmd(t, testApp(an, rv), nil, "analyze", writeFile(t, "ref.mp4", 16), "--context", " 转场 ")
	require.NoError(t, err)

	assert.Equal(t, "转场", an.context)
	assert.Contains(t, out, "开箱快剪")
	assert.Contains(t, out, "结构时间轴")
	assert.Contains(t, out, "任务简报")
}

func TestAnalyzeCmd_OversizedUsesInlineMessage(t *testing.T) {
	an, rv := newStubs()
	a := testApp(an, rv, app.WithMaxMediaBytes(4))

	_, err := executeCmd(t, a, nil, "analyze", writeFile(t, "ref.mp4", 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrOversized)
	assert.True(t, strings.HasPrefix(err.Error(), "文件过大"))
	assert.Zero(t, an.calls)
}

func TestAnalyzeCmd_FailureIsGeneric(t *testing.T) {
	an, rv := newStubs()
	an.err = assert.AnError
	_, err := executeCmd(t, testApp(an, rv), nil, "analyze", writeFile(t, "ref.mp4", 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrAnalysisFailed)
	assert.NotContains(t, err.Error(), assert.AnError.Error())
}

// --- review ---

func TestAnalyzeJSON_FeedsReview(t *testing.T) {
	an, rv := newStubs()
	a := testApp(an, rv)

	out, err := executeCmd(t, a, nil, "analyze", writeFile(t, "ref.mp4", 16), "--json")
	require.NoError(t, err)
	analysisPath := writeJSONFile(t, out)

	out, err = executeCmd(t, a, strings.NewReader("镜头一：特写"), "review", "--analysis", analysisPath, "--script", "-")
	require.NoError(t, err)

	assert.Equal(t, "镜头一：特写", rv.script)
	assert.Equal(t, app.ContextSummary(cliAnalysis()), rv.summary)
	assert.Contains(t, out, "82/100")
	assert.Contains(t, out, "开头太慢")
}

func TestReviewCmd_VideoJSON(t *testing.T) {
	an, rv := newStubs()
	a := testApp(an, rv)
	analysisPath := writeJSONFile(t, mustAnalysisJSON(t))

	out, err := executeCmd(t, a, nil, "review", "--analysis", analysisPath, "--video", writeFile(t, "hw.mp4", 8), "--json")
	require.NoError(t, err)

	assert.Equal(t, 1, rv.videoCalls)
	assert.Contains(t, out, `"score": 82`)
	assert.NotContains(t, out, "suggestedShotList")
}

func TestReviewCmd_ScriptFile(t *testing.T) {
	an, rv := newStubs()
	a := testApp(an, rv)
	script := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(script, []byte("分镜"), 0o644))

	_, err := executeCmd(t, a, nil, "review", "--analysis", writeJSONFile(t, mustAnalysisJSON(t)), "--script", script)
	require.NoError(t, err)
	assert.Equal(t, "分镜", rv.script)
}

func TestReviewCmd_EmptyScript(t *testing.T) {
	an, rv := newStubs()
	_, err := executeCmd(t, testApp(an, rv), strings.NewReader(" \n\t"),
		"review", "--analysis", writeJSONFile(t, mustAnalysisJSON(t)), "--script", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrEmptyScript)
	assert.Zero(t, rv.scriptCalls)
}

func TestReviewCmd_RequiresSubmission(t *testing.T) {
	an, rv := newStubs()
	_, err := executeCmd(t, testApp(an, rv), nil, "review", "--analysis", writeJSONFile(t, mustAnalysisJSON(t)))
	assert.ErrorIs(t, err, errNoSubmission)
}

func TestReviewCmd_RequiresAnalysisFlag(t *testing.T) {
	an, rv := newStubs()
	_, err := executeCmd(t, testApp(an, rv), nil, "review", "--script", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis")
}

func TestReviewCmd_VideoAndScriptExclusive(t *testing.T) {
	an, rv := newStubs()
	_, err := executeCmd(t, testApp(an, rv), nil, "review", "--analysis", "a.json", "--video", "v.mp4", "--script", "-")
	require.Error(t, err)
	assert.Zero(t, rv.videoCalls+rv.scriptCalls)
}

func TestReviewCmd_IncompleteAnalysis(t *testing.T) {
	an, rv := newStubs()
	_, err := executeCmd(t, testApp(an, rv), strings.NewReader("x"),
		"review", "--analysis", writeJSONFile(t, `{"caseCard":{"name":"x"}}`), "--script", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing sections")
	assert.Zero(t, rv.scriptCalls)
}

func mustAnalysisJSON(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, cliAnalysis()))
	return buf.String()
}

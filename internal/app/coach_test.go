package app

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCoach_Intake_ExactLimitInvokesBoundary(t *testing.T) {
	analyzer := &fakeAnalyzer{result: testAnalysis()}
	c, loader := newTestCoach(analyzer, &fakeReviewer{})

	s := NewSession().SetContext("想用在烹饪频道")
	s = c.Intake(context.Background(), s, domain.FileRef{Path: "ref.mp4", Size: 9 * mib})

	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, 1, loader.loads)
	assert.Equal(t, "想用在烹饪频道", analyzer.context)
	assert.Equal(t, "video/mp4", analyzer.media.MIMEType)
	assert.Equal(t, domain.StageVerdict, s.Stage())
	assert.Equal(t, domain.StageAssignment, s.Nav.Max())
	assert.False(t, s.InFlight())
}

func TestCoach_Intake_OneByteOverLimitSkipsBoundary(t *testing.T) {
	analyzer := &fakeAnalyzer{result: testAnalysis()}
	c, loader := newTestCoach(analyzer, &fakeReviewer{})

	s := c.Intake(context.Background(), NewSession(), domain.FileRef{Path: "big.mp4", Size: 9*mib + 1})

	assert.Zero(t, analyzer.calls)
	assert.Zero(t, loader.loads)
	assert.ErrorIs(t, s.Err, ErrOversized)
	assert.Equal(t, domain.StageIntake, s.Stage())
}

func TestCoach_Intake_BoundaryFailureLeavesStage(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errBoundary}
	c, _ := newTestCoach(analyzer, &fakeReviewer{})
	before := NewSession()

	after := c.Intake(context.Background(), before, domain.FileRef{Size: 10})

	assert.Equal(t, before.Nav, after.Nav)
	assert.ErrorIs(t, after.Err, ErrAnalysisFailed)
	assert.False(t, after.InFlight())
}

func TestCoach_Intake_LoadFailureIsBoundaryFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{result: testAnalysis()}
	loader := &fakeLoader{err: errors.New("permission denied")}
	c := NewCoach(analyzer, &fakeReviewer{}, loader)

	s := c.Intake(context.Background(), NewSession(), domain.FileRef{Size: 10})

	assert.Zero(t, analyzer.calls)
	assert.ErrorIs(t, s.Err, ErrAnalysisFailed)
	assert.Equal(t, domain.StageIntake, s.Stage())
}

func TestCoach_Intake_PanicStillClearsLoading(t *testing.T) {
	c, _ := newTestCoach(&fakeAnalyzer{panics: true}, &fakeReviewer{})

	s := c.Intake(context.Background(), NewSession(), domain.FileRef{Size: 10})

	assert.False(t, s.InFlight())
	assert.ErrorIs(t, s.Err, ErrAnalysisFailed)
}

func TestCoach_Intake_RetryAfterFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errBoundary}
	c, _ := newTestCoach(analyzer, &fakeReviewer{})

	s := c.Intake(context.Background(), NewSession(), domain.FileRef{Size: 10})
	require.Error(t, s.Err)

	analyzer.err = nil
	analyzer.result = testAnalysis()
	s = c.Intake(context.Background(), s, domain.FileRef{Size: 10})

	assert.NoError(t, s.Err)
	assert.Equal(t, 2, analyzer.calls)
	assert.Equal(t, domain.StageVerdict, s.Stage())
}

func TestCoach_SubmitVideo(t *testing.T) {
	reviewer := &fakeReviewer{result: testReview()}
	c, _ := newTestCoach(&fakeAnalyzer{}, reviewer)
	s := analyzedSession(t)
	analysis := *s.Analysis

	s = c.SubmitVideo(context.Background(), s, domain.FileRef{Path: "hw.mp4", Size: 9 * mib})

	assert.Equal(t, 1, reviewer.videoCalls)
	assert.Equal(t, domain.StageReview, s.Stage())
	assert.Equal(t, analysis, *s.Analysis, "review must not mutate the analysis")
	require.Len(t, reviewer.summaries, 1)
	assert.Contains(t, reviewer.summaries[0], "快切; 特写转场")
	assert.Contains(t, reviewer.summaries[0], "引入 -> 展开")
}

func TestCoach_SubmitVideo_Oversized(t *testing.T) {
	reviewer := &fakeReviewer{result: testReview()}
	c, _ := newTestCoach(&fakeAnalyzer{}, reviewer)

	s := c.SubmitVideo(context.Background(), analyzedSession(t), domain.FileRef{Size: 9*mib + 1})

	assert.Zero(t, reviewer.videoCalls)
	assert.ErrorIs(t, s.Err, ErrOversized)
	assert.Equal(t, domain.StageAssignment, s.Stage())
}

func TestCoach_SubmitVideo_Failure(t *testing.T) {
	c, _ := newTestCoach(&fakeAnalyzer{}, &fakeReviewer{err: errBoundary})

	s := c.SubmitVideo(context.Background(), analyzedSession(t), domain.FileRef{Size: 1})

	assert.ErrorIs(t, s.Err, ErrReviewFailed)
	assert.Equal(t, domain.StageAssignment, s.Stage())
	assert.False(t, s.InFlight())
}

func TestCoach_SubmitScript(t *testing.T) {
	review := testReview()
	review.SuggestedShotList = domain.Some([]domain.SuggestedShot{{ScriptSegment: "开场", ShotType: "特写"}})
	reviewer := &fakeReviewer{result: review}
	c, loader := newTestCoach(&fakeAnalyzer{}, reviewer)
	s, err := analyzedSession(t).SelectMode(domain.ModeScript)
	require.NoError(t, err)

	s = c.SubmitScript(context.Background(), s, "开场：手部特写拆封")

	assert.Equal(t, 1, reviewer.scriptCalls)
	assert.Zero(t, reviewer.videoCalls)
	assert.Zero(t, loader.loads)
	assert.Equal(t, "开场：手部特写拆封", reviewer.script)
	assert.Equal(t, domain.StageReview, s.Stage())
	assert.True(t, s.Review.SuggestedShotList.IsSet())
}

func TestCoach_SubmitScript_BlankNeverCallsBoundary(t *testing.T) {
	reviewer := &fakeReviewer{result: testReview()}
	c, _ := newTestCoach(&fakeAnalyzer{}, reviewer)
	s, err := analyzedSession(t).SelectMode(domain.ModeScript)
	require.NoError(t, err)

	for _, text := range []string{"", " ", "\n\n", "\t "} {
		got := c.SubmitScript(context.Background(), s, text)
		assert.ErrorIs(t, got.Err, ErrEmptyScript)
		assert.Equal(t, domain.StageAssignment, got.Stage())
	}
	assert.Zero(t, reviewer.scriptCalls)
}

func TestCoach_SummaryStableAcrossSubmissions(t *testing.T) {
	reviewer := &fakeReviewer{result: testReview()}
	c, _ := newTestCoach(&fakeAnalyzer{}, reviewer)
	s := analyzedSession(t)

	for i := 0; i < 3; i++ {
		s = c.SubmitVideo(context.Background(), s, domain.FileRef{Size: 1})
		s = s.Resubmit()
	}

	require.Len(t, reviewer.summaries, 3)
	assert.Equal(t, reviewer.summaries[0], reviewer.summaries[1])
	assert.Equal(t, reviewer.summaries[1], reviewer.summaries[2])
}

func TestCoach_LogsOutcomes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewCoach(&fakeAnalyzer{err: errBoundary}, &fakeReviewer{}, &fakeLoader{}, WithLogger(zap.New(core)))

	s := c.Intake(context.Background(), NewSession(), domain.FileRef{Size: 1})

	failed := logs.FilterMessage("boundary call failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, s.ID, failed[0].ContextMap()["session"])
	assert.Equal(t, "intake", failed[0].ContextMap()["op"])
}

func TestCoach_WithMaxMediaBytes(t *testing.T) {
	analyzer := &fakeAnalyzer{result: testAnalysis()}
	c := NewCoach(analyzer, &fakeReviewer{}, &fakeLoader{}, WithMaxMediaBytes(100))
	assert.Equal(t, int64(100), c.MaxMediaBytes())

	s := c.Intake(context.Background(), NewSession(), domain.FileRef{Size: 101})
	assert.ErrorIs(t, s.Err, ErrOversized)
	assert.Zero(t, analyzer.calls)
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/media"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result  *domain.Analysis
	err     error
	calls   int
	context string
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ domain.Media, contextText string) (*domain.Analysis, error) {
	s.calls++
	s.context = contextText
	return s.result, s.err
}

type stubReviewer struct {
	result      *domain.Review
	err         error
	videoCalls  int
	scriptCalls int
	summary     string
	script      string
}

func (s *stubReviewer) ReviewVideo(_ context.Context, summary string, _ domain.Media) (*domain.Review, error) {
	s.videoCalls++
	s.summary = summary
	return s.result, s.err
}

func (s *stubReviewer) ReviewScript(_ context.Context, summary, text string) (*domain.Review, error) {
	s.scriptCalls++
	s.summary = summary
	s.script = text
	return s.result, s.err
}

func cliAnalysis() *domain.Analysis {
	return &domain.Analysis{
		CaseCard: domain.CaseCard{Name: "开箱快剪", Platform: "抖音", Duration: "0:30", TargetAudience: "数码爱好者"},
		Verdict:  domain.Verdict{WorthLearning: true, Reasons: []string{"节奏紧凑"}},
		Structure: []domain.StructureBeat{
			{Segment: "钩子", Timestamp: "0:00-0:03", Purpose: "悬念"},
		},
		DNA:            domain.EditingDNA{AvgShotLength: "1.1s", Pacing: "快", SoundStrategy: "鼓点"},
		ShotList:       []domain.Shot{{ID: 1, TimeRange: "0:00-0:01", Visual: "手部特写"}},
		SOP:            []domain.EditingRule{{Rule: "三秒钩子"}},
		ScriptTemplate: domain.ScriptTemplate{Hook: "先给结果"},
		Homework: domain.HomeworkBrief{Goal: "复刻开头", Constraints: "30秒", Rubric: []domain.RubricCriterion{
			{Criteria: "节奏", MaxScore: 100},
		}},
	}
}

func cliReview() *domain.Review {
	return &domain.Review{
		Score:    82,
		Feedback: "整体节奏不错",
		RevisionPlan: []domain.RevisionItem{
			{Problem: "开头太慢", Solution: "剪掉前两秒", Priority: domain.PriorityHigh},
		},
	}
}

func newStubs() (*stubAnalyzer, *stubReviewer) {
	return &stubAnalyzer{result: cliAnalysis()}, &stubReviewer{result: cliReview()}
}

// testApp wires an App around stub boundary calls and the real file loader.
func testApp(an *stubAnalyzer, rv *stubReviewer, opts ...app.CoachOption) *App {
	return &App{Coach: app.NewCoach(an, rv, media.NewLoader(), opts...)}
}

// writeFile creates a temp file of size bytes and returns its path.
func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0x42}, size), 0o644))
	return path
}

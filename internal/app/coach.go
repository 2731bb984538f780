package app

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cutcoach/internal/domain"
	"go.uber.org/zap"
)

// DefaultMaxMediaBytes is the default inline media cap (9 MiB). Base64
// encoding inflates the payload by a third, which keeps the request body
// under the model API's inline limit.
const DefaultMaxMediaBytes int64 = 9 * 1024 * 1024

// Coach wires user actions to the boundary calls. Each action is a single
// attempt; failures are recorded on the session and never retried.
type Coach struct {
	analyzer AnalyzeUseCase
	reviewer ReviewUseCase
	loader   MediaLoader
	logger   *zap.Logger
	maxMedia int64
}

// CoachOption configures a Coach.
type CoachOption func(*Coach)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *zap.Logger) CoachOption {
	return func(c *Coach) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxMediaBytes overrides the inline media cap.
func WithMaxMediaBytes(n int64) CoachOption {
	return func(c *Coach) {
		if n > 0 {
			c.maxMedia = n
		}
	}
}

// NewCoach creates a Coach backed by the given boundary implementations.
func NewCoach(analyzer AnalyzeUseCase, reviewer ReviewUseCase, loader MediaLoader, opts ...CoachOption) *Coach {
	c := &Coach{
		analyzer: analyzer,
		reviewer: reviewer,
		loader:   loader,
		logger:   zap.NewNop(),
		maxMedia: DefaultMaxMediaBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxMediaBytes returns the configured inline media cap.
func (c *Coach) MaxMediaBytes() int64 { return c.maxMedia }

// ── synchronous flows ────────────────────────────────────────────────────────

// Intake runs the whole initial analysis flow for a reference video.
func (c *Coach) Intake(ctx context.Context, s Session, ref domain.FileRef) Session {
	s, err := s.BeginIntake(ref, c.maxMedia)
	if err != nil {
		c.rejected(s, "intake", err)
		return s
	}
	analysis, err := c.AnalyzeFile(ctx, ref, s.ContextText)
	return c.logOutcome(s.FinishIntake(analysis, err), "intake")
}

// SubmitVideo runs the homework review flow for a practice video.
func (c *Coach) SubmitVideo(ctx context.Context, s Session, ref domain.FileRef) Session {
	s, err := s.BeginVideoReview(ref, c.maxMedia)
	if err != nil {
		c.rejected(s, "review_video", err)
		return s
	}
	review, err := c.ReviewFile(ctx, s.Summary(), ref)
	return c.logOutcome(s.FinishReview(review, err), "review_video")
}

// SubmitScript runs the homework review flow for a practice script.
func (c *Coach) SubmitScript(ctx context.Context, s Session, text string) Session {
	s, err := s.BeginScriptReview(text)
	if err != nil {
		c.rejected(s, "review_script", err)
		return s
	}
	review, err := c.ReviewText(ctx, s.Summary(), text)
	return c.logOutcome(s.FinishReview(review, err), "review_script")
}

// ── boundary calls ───────────────────────────────────────────────────────────

// AnalyzeFile loads the reference file and invokes the analysis call.
func (c *Coach) AnalyzeFile(ctx context.Context, ref domain.FileRef, contextText string) (analysis *domain.Analysis, err error) {
	defer recoverBoundary(&err)
	media, err := c.loader.Load(ref)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ref.Path, err)
	}
	return c.analyzer.Analyze(ctx, media, contextText)
}

// ReviewFile loads a homework video and invokes the video review call.
func (c *Coach) ReviewFile(ctx context.Context, summary string, ref domain.FileRef) (review *domain.Review, err error) {
	defer recoverBoundary(&err)
	media, err := c.loader.Load(ref)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ref.Path, err)
	}
	return c.reviewer.ReviewVideo(ctx, summary, media)
}

// ReviewText invokes the script review call.
func (c *Coach) ReviewText(ctx context.Context, summary, text string) (review *domain.Review, err error) {
	defer recoverBoundary(&err)
	return c.reviewer.ReviewScript(ctx, summary, text)
}

// recoverBoundary folds a panic in a collaborator into an ordinary failure
// so the session always leaves its in-flight state.
func recoverBoundary(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("boundary call panicked: %v", r)
	}
}

// ── logging ──────────────────────────────────────────────────────────────────

// Logger returns the coach's logger, for components that report on its behalf.
func (c *Coach) Logger() *zap.Logger { return c.logger }

func (c *Coach) rejected(s Session, op string, err error) {
	LogRejected(c.logger, s, op, err)
}

// LogRejected records an action refused before any boundary call was made.
func LogRejected(logger *zap.Logger, s Session, op string, err error) {
	logger.Info("action rejected",
		zap.String("session", s.ID),
		zap.String("op", op),
		zap.Stringer("stage", s.Stage()),
		zap.Error(err),
	)
}

func (c *Coach) logOutcome(s Session, op string) Session {
	LogOutcome(c.logger, s, op, time.Time{})
	return s
}

// LogOutcome records the result of a finished boundary call. A zero start
// time omits the latency field.
func LogOutcome(logger *zap.Logger, s Session, op string, start time.Time) {
	fields := []zap.Field{
		zap.String("session", s.ID),
		zap.String("op", op),
		zap.Stringer("stage", s.Stage()),
		zap.Stringer("max_stage", s.Nav.Max()),
	}
	if !start.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(start)))
	}
	if s.Err != nil {
		logger.Warn("boundary call failed", append(fields, zap.Error(s.Err))...)
		return
	}
	logger.Info("boundary call succeeded", fields...)
}

package app

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/google/uuid"
)

// Operation names the boundary call currently outstanding, if any.
type Operation int

const (
	OpNone Operation = iota
	OpAnalyze
	OpReview
)

func (o Operation) String() string {
	switch o {
	case OpAnalyze:
		return "analyze"
	case OpReview:
		return "review"
	default:
		return "none"
	}
}

// Session is the complete state of one coaching session. Every transition is
// a method returning a new Session, so the owner decides when to commit it.
// There is at most one outstanding boundary call per session, tracked by Busy.
type Session struct {
	ID          string
	Nav         Navigator
	Analysis    *domain.Analysis
	Review      *domain.Review
	Mode        domain.SubmissionMode
	Busy        Operation
	Err         error
	ContextText string
}

// NewSession returns a fresh session at Intake in video mode.
func NewSession() Session {
	return Session{
		ID:   uuid.NewString(),
		Nav:  NewNavigator(),
		Mode: domain.DefaultSubmissionMode,
	}
}

// ResumeSession returns a session that already holds a, positioned at
// Assignment with every analysis stage unlocked.
func ResumeSession(a *domain.Analysis) Session {
	s := NewSession().FinishIntake(a, nil)
	if s.Analysis != nil {
		s.Nav.current = domain.StageAssignment
	}
	return s
}

// Stage is shorthand for the displayed stage.
func (s Session) Stage() domain.Stage { return s.Nav.Current() }

// InFlight reports whether a boundary call is outstanding.
func (s Session) InFlight() bool { return s.Busy != OpNone }

// ── navigation ───────────────────────────────────────────────────────────────

func (s Session) Advance() Session {
	s.Nav = s.Nav.Advance()
	return s
}

func (s Session) Retreat() Session {
	s.Nav = s.Nav.Retreat()
	return s
}

// JumpTo moves to stage if unlocked; the boolean reports success.
func (s Session) JumpTo(stage domain.Stage) (Session, bool) {
	var ok bool
	s.Nav, ok = s.Nav.JumpTo(stage)
	return s, ok
}

// SetContext records the optional free-text learning context for intake.
func (s Session) SetContext(text string) Session {
	s.ContextText = text
	return s
}

// ClearError dismisses the inline error.
func (s Session) ClearError() Session {
	s.Err = nil
	return s
}

// Reject records err as the inline error without changing any other state.
func (s Session) Reject(err error) Session {
	s.Err = err
	return s
}

func (s Session) fail(err error) (Session, error) {
	s.Err = err
	return s, err
}

// ── intake ───────────────────────────────────────────────────────────────────

// BeginIntake validates a reference upload and enters the loading state.
// A file larger than limit bytes is rejected before any boundary call.
func (s Session) BeginIntake(ref domain.FileRef, limit int64) (Session, error) {
	if s.InFlight() {
		return s.fail(ErrBusy)
	}
	if s.Stage() != domain.StageIntake {
		return s.fail(ErrWrongStage)
	}
	if ref.Size > limit {
		return s.fail(fmt.Errorf("%w: %d > %d bytes", ErrOversized, ref.Size, limit))
	}
	s.Err = nil
	s.Busy = OpAnalyze
	return s, nil
}

// FinishIntake leaves the loading state and applies the analysis outcome.
// On success the analysis is stored, the view moves to Verdict and stages
// up to Assignment unlock. On failure the stage is left unchanged.
func (s Session) FinishIntake(analysis *domain.Analysis, err error) Session {
	s.Busy = OpNone
	if err == nil && analysis == nil {
		err = fmt.Errorf("empty analysis result")
	}
	if err != nil {
		s.Err = fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
		return s
	}
	s.Err = nil
	s.Analysis = analysis
	s.Review = nil
	s.Nav = s.Nav.UnlockUpTo(domain.StageAssignment)
	s.Nav.current = domain.StageVerdict
	return s
}

// ── homework ─────────────────────────────────────────────────────────────────

// SelectMode switches the submission mode. It is only allowed at the
// Assignment stage while nothing is being submitted; no result is discarded.
func (s Session) SelectMode(mode domain.SubmissionMode) (Session, error) {
	if !mode.Valid() || s.Stage() != domain.StageAssignment || s.InFlight() {
		return s.fail(ErrModeLocked)
	}
	s.Mode = mode
	s.Err = nil
	return s, nil
}

func (s Session) beginReview(mode domain.SubmissionMode) (Session, error) {
	if s.InFlight() {
		return s.fail(ErrBusy)
	}
	if s.Analysis == nil {
		return s.fail(ErrNoAnalysis)
	}
	if s.Stage() != domain.StageAssignment {
		return s.fail(ErrWrongStage)
	}
	if s.Mode != mode {
		return s.fail(ErrWrongMode)
	}
	return s, nil
}

// BeginVideoReview validates a homework video under the same size cap as intake.
func (s Session) BeginVideoReview(ref domain.FileRef, limit int64) (Session, error) {
	s, err := s.beginReview(domain.ModeVideo)
	if err != nil {
		return s, err
	}
	if ref.Size > limit {
		return s.fail(fmt.Errorf("%w: %d > %d bytes", ErrOversized, ref.Size, limit))
	}
	s.Err = nil
	s.Busy = OpReview
	return s, nil
}

// BeginScriptReview validates a homework script. Whitespace-only text is rejected.
func (s Session) BeginScriptReview(text string) (Session, error) {
	s, err := s.beginReview(domain.ModeScript)
	if err != nil {
		return s, err
	}
	if strings.TrimSpace(text) == "" {
		return s.fail(ErrEmptyScript)
	}
	s.Err = nil
	s.Busy = OpReview
	return s, nil
}

// FinishReview leaves the submitting state and applies the review outcome.
// The stored analysis is never touched.
func (s Session) FinishReview(review *domain.Review, err error) Session {
	s.Busy = OpNone
	if err == nil && review == nil {
		err = fmt.Errorf("empty review result")
	}
	if err != nil {
		s.Err = fmt.Errorf("%w: %v", ErrReviewFailed, err)
		return s
	}
	s.Err = nil
	s.Review = review
	s.Nav = s.Nav.show(domain.StageReview)
	return s
}

// Resubmit discards the review and returns to Assignment. The unlocked
// range is left as is, so the user can resubmit indefinitely.
func (s Session) Resubmit() Session {
	if s.Stage() != domain.StageReview || s.InFlight() {
		return s
	}
	s.Review = nil
	s.Err = nil
	s.Nav.current = domain.StageAssignment
	return s
}

// Summary returns the review context summary for the stored analysis.
func (s Session) Summary() string {
	return ContextSummary(s.Analysis)
}

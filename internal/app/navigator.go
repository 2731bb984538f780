package app

import "github.com/alexanderramin/cutcoach/internal/domain"

// Navigator tracks the displayed stage and the highest unlocked stage.
// All transitions are clamped and return a new Navigator; none fail.
// Invariant: current <= max.
type Navigator struct {
	current domain.Stage
	max     domain.Stage
}

// NewNavigator starts at Intake with nothing unlocked beyond it.
func NewNavigator() Navigator {
	return Navigator{current: domain.StageIntake, max: domain.StageIntake}
}

// Current returns the displayed stage.
func (n Navigator) Current() domain.Stage { return n.current }

// Max returns the highest stage the user may navigate to.
func (n Navigator) Max() domain.Stage { return n.max }

// Unlocked reports whether s can be navigated to.
func (n Navigator) Unlocked(s domain.Stage) bool {
	return s.Valid() && s <= n.max
}

// Advance moves forward one stage, never past max or the terminal stage.
func (n Navigator) Advance() Navigator {
	next := n.current + 1
	if next > n.max || next > domain.LastStage {
		return n
	}
	n.current = next
	return n
}

// Retreat moves back one stage but never below Verdict.
func (n Navigator) Retreat() Navigator {
	if n.current <= domain.StageVerdict {
		return n
	}
	n.current--
	return n
}

// JumpTo moves to s if it is unlocked. The boolean reports success;
// a locked target leaves the navigator unchanged.
func (n Navigator) JumpTo(s domain.Stage) (Navigator, bool) {
	if !n.Unlocked(s) {
		return n, false
	}
	n.current = s
	return n, true
}

// UnlockUpTo raises max to s. It never lowers max.
func (n Navigator) UnlockUpTo(s domain.Stage) Navigator {
	s = s.Clamp()
	if s > n.max {
		n.max = s
	}
	return n
}

// show moves current to s, unlocking it first so the invariant holds.
func (n Navigator) show(s domain.Stage) Navigator {
	n = n.UnlockUpTo(s)
	n.current = s.Clamp()
	return n
}

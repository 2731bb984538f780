package domain

// SubmissionMode selects how a homework attempt is handed in.
type SubmissionMode string

const (
	ModeVideo  SubmissionMode = "video"
	ModeScript SubmissionMode = "script"
)

// DefaultSubmissionMode is the mode a new session starts in.
const DefaultSubmissionMode = ModeVideo

// Valid reports whether m is a known submission mode.
func (m SubmissionMode) Valid() bool {
	return m == ModeVideo || m == ModeScript
}

// Toggle returns the other submission mode.
func (m SubmissionMode) Toggle() SubmissionMode {
	if m == ModeScript {
		return ModeVideo
	}
	return ModeScript
}

// Label returns the display name shown in the assignment view.
func (m SubmissionMode) Label() string {
	switch m {
	case ModeScript:
		return "脚本"
	default:
		return "视频"
	}
}

// Priority ranks a revision plan item.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

// PriorityValues lists the priorities in descending order, for schemas.
func PriorityValues() []string {
	return []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}
}

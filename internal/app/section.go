package app

import "github.com/alexanderramin/cutcoach/internal/domain"

// Section identifies which slice of session data a stage displays.
type Section int

const (
	SectionEmpty Section = iota
	SectionIntake
	SectionVerdict
	SectionStructure
	SectionDNA
	SectionShotList
	SectionPlaybook
	SectionAssignment
	SectionReview
)

var analysisSections = map[domain.Stage]Section{
	domain.StageVerdict:      SectionVerdict,
	domain.StageStructure:    SectionStructure,
	domain.StageDNA:          SectionDNA,
	domain.StageExtractables: SectionShotList,
	domain.StagePlaybook:     SectionPlaybook,
	domain.StageAssignment:   SectionAssignment,
}

// SelectSection maps the displayed stage and the presence of each contract to
// the section to render. Missing data degrades to SectionEmpty.
func SelectSection(stage domain.Stage, hasAnalysis, hasReview bool) Section {
	switch {
	case stage == domain.StageIntake:
		return SectionIntake
	case stage == domain.StageReview:
		if hasReview {
			return SectionReview
		}
		return SectionEmpty
	}
	if sec, ok := analysisSections[stage]; ok && hasAnalysis {
		return sec
	}
	return SectionEmpty
}

// Section returns the section for the session's current state.
func (s Session) Section() Section {
	return SelectSection(s.Stage(), s.Analysis != nil, s.Review != nil)
}

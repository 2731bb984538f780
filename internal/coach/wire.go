package coach

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/llm"
)

// analysisWire mirrors domain.Analysis with pointer sections so that a
// missing section can be told apart from an empty one.
type analysisWire struct {
	CaseCard       *domain.CaseCard        `json:"caseCard"`
	Verdict        *domain.Verdict         `json:"verdict"`
	Structure      *[]domain.StructureBeat `json:"structure"`
	DNA            *domain.EditingDNA      `json:"dna"`
	ShotList       *[]domain.Shot          `json:"shotList"`
	SOP            *[]domain.EditingRule   `json:"sop"`
	ScriptTemplate *domain.ScriptTemplate  `json:"scriptTemplate"`
	Homework       *domain.HomeworkBrief   `json:"homework"`
}

func validateAnalysis(w analysisWire) error {
	var missing []string
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	check("caseCard", w.CaseCard != nil)
	check("verdict", w.Verdict != nil)
	check("structure", w.Structure != nil)
	check("dna", w.DNA != nil)
	check("shotList", w.ShotList != nil)
	check("sop", w.SOP != nil)
	check("scriptTemplate", w.ScriptTemplate != nil)
	check("homework", w.Homework != nil)
	if len(missing) > 0 {
		return fmt.Errorf("missing sections: %s", strings.Join(missing, ", "))
	}
	return nil
}

// toDomain assumes validateAnalysis passed.
func (w analysisWire) toDomain() *domain.Analysis {
	a := &domain.Analysis{
		CaseCard:       *w.CaseCard,
		Verdict:        *w.Verdict,
		Structure:      *w.Structure,
		DNA:            *w.DNA,
		ShotList:       *w.ShotList,
		SOP:            *w.SOP,
		ScriptTemplate: *w.ScriptTemplate,
		Homework:       *w.Homework,
	}
	if alt, ok := a.Verdict.Alternative.Get(); ok && strings.TrimSpace(alt) == "" {
		a.Verdict.Alternative = domain.None[string]()
	}
	return a
}

type reviewWire struct {
	Score             *float64                                `json:"score"`
	Feedback          *string                                 `json:"feedback"`
	RevisionPlan      []domain.RevisionItem                   `json:"revisionPlan"`
	SuggestedShotList domain.Optional[[]domain.SuggestedShot] `json:"suggestedShotList"`
}

func validateReview(w reviewWire) error {
	var errs []error
	switch {
	case w.Score == nil:
		errs = append(errs, errors.New("missing score"))
	case math.IsNaN(*w.Score) || math.IsInf(*w.Score, 0):
		errs = append(errs, fmt.Errorf("score is not finite: %v", *w.Score))
	}
	if w.Feedback == nil {
		errs = append(errs, errors.New("missing feedback"))
	}
	for i, item := range w.RevisionPlan {
		if !domain.ValidPriorities[item.Priority] {
			errs = append(errs, fmt.Errorf("revisionPlan[%d]: invalid priority %q", i, item.Priority))
		}
	}
	return errors.Join(errs...)
}

// toDomain assumes validateReview passed.
func (w reviewWire) toDomain() *domain.Review {
	return &domain.Review{
		Score:             *w.Score,
		Feedback:          *w.Feedback,
		RevisionPlan:      w.RevisionPlan,
		SuggestedShotList: w.SuggestedShotList,
	}
}

// DecodeAnalysis parses a saved analysis, such as the output of
// `cutcoach analyze --json`, applying the same checks as a model response.
func DecodeAnalysis(data []byte) (*domain.Analysis, error) {
	wire, err := llm.ExtractJSON(string(data), validateAnalysis)
	if err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	return wire.toDomain(), nil
}

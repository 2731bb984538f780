package domain

// Review is the grading of one homework attempt returned by a review
// boundary call. Score is intended to be 0-100 but the range is not enforced.
type Review struct {
	Score        float64        `json:"score"`
	Feedback     string         `json:"feedback"`
	RevisionPlan []RevisionItem `json:"revisionPlan"`

	// SuggestedShotList is present only for script submissions.
	SuggestedShotList Optional[[]SuggestedShot] `json:"suggestedShotList,omitzero"`
}

// RevisionItem is one prioritized fix in the revision plan.
type RevisionItem struct {
	Problem  string   `json:"problem"`
	Solution string   `json:"solution"`
	Example  string   `json:"example"`
	Priority Priority `json:"priority"`
}

// SuggestedShot maps a script segment to a shooting suggestion.
type SuggestedShot struct {
	ScriptSegment    string `json:"scriptSegment"`
	VisualSuggestion string `json:"visualSuggestion"`
	ShotType         string `json:"shotType"`
	Reasoning        string `json:"reasoning"`
}

// MaxRevisionItems is the conventional cap on revision plan length.
const MaxRevisionItems = 10

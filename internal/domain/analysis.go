package domain

// Analysis is the deconstruction of a reference video returned by the
// analysis boundary call. It is created wholesale from one response and
// replaced, never merged, by a later successful analysis.
type Analysis struct {
	CaseCard       CaseCard        `json:"caseCard"`
	Verdict        Verdict         `json:"verdict"`
	Structure      []StructureBeat `json:"structure"`
	DNA            EditingDNA      `json:"dna"`
	ShotList       []Shot          `json:"shotList"`
	SOP            []EditingRule   `json:"sop"`
	ScriptTemplate ScriptTemplate  `json:"scriptTemplate"`
	Homework       HomeworkBrief   `json:"homework"`
}

// CaseCard summarises the reference video.
type CaseCard struct {
	Name           string   `json:"name"`
	Platform       string   `json:"platform"`
	Duration       string   `json:"duration"`
	TargetAudience string   `json:"targetAudience"`
	LearningPoints []string `json:"learningPoints"`
	Risks          []string `json:"risks"`
}

// Verdict says whether the reference is worth studying.
type Verdict struct {
	WorthLearning bool             `json:"worthLearning"`
	Reasons       []string         `json:"reasons"`
	Alternative   Optional[string] `json:"alternative,omitzero"`
}

// StructureBeat is one segment of the structure timeline.
type StructureBeat struct {
	Segment        string `json:"segment"`
	Timestamp      string `json:"timestamp"`
	Purpose        string `json:"purpose"`
	Psychology     string `json:"psychology"`
	VisualStrategy string `json:"visualStrategy"`
}

// EditingDNA is descriptive; none of these are computed metrics.
type EditingDNA struct {
	AvgShotLength string `json:"avgShotLength"`
	Pacing        string `json:"pacing"`
	SoundStrategy string `json:"soundStrategy"`
}

// Shot is one row of the extracted shot list.
type Shot struct {
	ID        int    `json:"id"`
	TimeRange string `json:"timeRange"`
	Duration  string `json:"duration"`
	Visual    string `json:"visual"`
	Audio     string `json:"audio"`
	Action    string `json:"action"`
}

// EditingRule is one SOP rule for replicating the style.
type EditingRule struct {
	Rule    string `json:"rule"`
	HowTo   string `json:"howTo"`
	Example string `json:"example"`
}

// ScriptTemplate is a fill-in-the-blank script with six fixed slots.
type ScriptTemplate struct {
	Hook  string `json:"hook"`
	Setup string `json:"setup"`
	Core1 string `json:"core1"`
	Core2 string `json:"core2"`
	Twist string `json:"twist"`
	CTA   string `json:"cta"`
}

// TemplateSlot is a named script template slot.
type TemplateSlot struct {
	Key   string
	Value string
}

// Slots returns the template slots in narrative order.
func (t ScriptTemplate) Slots() []TemplateSlot {
	return []TemplateSlot{
		{Key: "hook", Value: t.Hook},
		{Key: "setup", Value: t.Setup},
		{Key: "core1", Value: t.Core1},
		{Key: "core2", Value: t.Core2},
		{Key: "twist", Value: t.Twist},
		{Key: "cta", Value: t.CTA},
	}
}

// HomeworkBrief is the replication assignment.
type HomeworkBrief struct {
	Goal        string            `json:"goal"`
	Constraints string            `json:"constraints"`
	Rubric      []RubricCriterion `json:"rubric"`
}

// RubricCriterion is one grading line of the homework rubric.
type RubricCriterion struct {
	Criteria    string  `json:"criteria"`
	Description string  `json:"description"`
	MaxScore    float64 `json:"maxScore"`
}

// RuleNames returns the SOP rule names in order.
func (a *Analysis) RuleNames() []string {
	names := make([]string, len(a.SOP))
	for i, r := range a.SOP {
		names[i] = r.Rule
	}
	return names
}

// StructurePurposes returns the timeline purposes in order.
func (a *Analysis) StructurePurposes() []string {
	purposes := make([]string, len(a.Structure))
	for i, s := range a.Structure {
		purposes[i] = s.Purpose
	}
	return purposes
}

// MaxRubricScore sums the rubric's maximum scores.
func (h HomeworkBrief) MaxRubricScore() float64 {
	var total float64
	for _, r := range h.Rubric {
		total += r.MaxScore
	}
	return total
}

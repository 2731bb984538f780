package domain

import "fmt"

// Stage is one step of the linear coaching workflow. Stages are totally
// ordered; comparisons drive both rendering and unlock checks.
type Stage int

const (
	StageIntake Stage = iota
	StageVerdict
	StageStructure
	StageDNA
	StageExtractables
	StagePlaybook
	StageAssignment
	StageReview
	StageLibrary // reserved terminal level
)

// FirstStage and LastStage bound the valid range.
const (
	FirstStage = StageIntake
	LastStage  = StageLibrary
)

var stageNames = map[Stage]string{
	StageIntake:       "intake",
	StageVerdict:      "verdict",
	StageStructure:    "structure",
	StageDNA:          "dna",
	StageExtractables: "extractables",
	StagePlaybook:     "playbook",
	StageAssignment:   "assignment",
	StageReview:       "review",
	StageLibrary:      "library",
}

var stageLabels = map[Stage]string{
	StageIntake:       "案例建档",
	StageVerdict:      "价值判断",
	StageStructure:    "结构拆解",
	StageDNA:          "剪辑DNA",
	StageExtractables: "素材提取",
	StagePlaybook:     "流程复制",
	StageAssignment:   "模仿作业",
	StageReview:       "对比复盘",
	StageLibrary:      "案例库",
}

// Valid reports whether s lies within Intake..Library.
func (s Stage) Valid() bool {
	return s >= FirstStage && s <= LastStage
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Label returns the user-facing stage name.
func (s Stage) Label() string {
	return stageLabels[s]
}

// Clamp limits s to the valid range.
func (s Stage) Clamp() Stage {
	if s < FirstStage {
		return FirstStage
	}
	if s > LastStage {
		return LastStage
	}
	return s
}

// ProgressStages returns the stages shown in the progress bar, in order.
// Library is reserved and never displayed.
func ProgressStages() []Stage {
	return []Stage{
		StageIntake, StageVerdict, StageStructure, StageDNA,
		StageExtractables, StagePlaybook, StageAssignment, StageReview,
	}
}
